package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutGet(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocal(root)
	require.NoError(t, err)
	ctx := context.Background()

	info, err := s.Put(ctx, "receipts/abc.pdf", strings.NewReader("%PDF-1.3"), PutObjectOptions{Size: 8, ContentType: "application/pdf"})
	require.NoError(t, err)
	assert.Equal(t, "receipts/abc.pdf", info.Key)
	assert.Equal(t, int64(8), info.Size)
	assert.Equal(t, filepath.Join(root, "receipts", "abc.pdf"), info.Path)

	rc, got, err := s.Get(ctx, "receipts/abc.pdf")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(body))
	assert.Equal(t, int64(8), got.Size)
	assert.Equal(t, "application/pdf", got.ContentType)
}

func TestLocalStorage_PutNeverOverwrites(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Put(ctx, "agreements/x.pdf", strings.NewReader("first"), PutObjectOptions{Size: 5})
	require.NoError(t, err)

	_, err = s.Put(ctx, "agreements/x.pdf", strings.NewReader("second"), PutObjectOptions{Size: 6})
	assert.ErrorIs(t, err, ErrObjectExists)

	rc, _, err := s.Get(ctx, "agreements/x.pdf")
	require.NoError(t, err)
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	assert.Equal(t, "first", string(body))
}

func TestLocalStorage_GetMissing(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, _, err = s.Get(context.Background(), "receipts/missing.pdf")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	_, _, err = s.Get(context.Background(), "receipts")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStorage_KeysStayInsideRoot(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocal(filepath.Join(root, "public"))
	require.NoError(t, err)

	info, err := s.Put(context.Background(), "../../escape.pdf", strings.NewReader("x"), PutObjectOptions{Size: 1})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "public", "escape.pdf"), info.Path)

	_, err = os.Stat(filepath.Join(root, "escape.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_WriteFailure(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocal(root)
	require.NoError(t, err)

	// A regular file where the category directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(root, "receipts"), []byte("x"), 0o644))

	_, err = s.Put(context.Background(), "receipts/a.pdf", strings.NewReader("x"), PutObjectOptions{Size: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrObjectExists)
}

func TestNewLocal_RequiresRoot(t *testing.T) {
	_, err := NewLocal("")
	assert.Error(t, err)
}
