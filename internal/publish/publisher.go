// Package publish writes generated documents to public storage and builds
// the links callers use to fetch them.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentdocs/internal/model"
	"rentdocs/internal/storage"
)

const (
	// FilesPrefix is the URL path generated files are served under.
	FilesPrefix = "/files"

	contentTypePDF = "application/pdf"
	fileExt        = ".pdf"
	maxAttempts    = 3
)

// WriteError reports a storage failure while publishing. It is not retried.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Publisher names, stores and links generated documents.
type Publisher struct {
	store   storage.Storage
	baseURL string
	newID   func() string
	now     func() time.Time
}

// Option customizes a Publisher.
type Option func(*Publisher)

// WithIDGenerator replaces the uuid based file id source.
func WithIDGenerator(f func() string) Option {
	return func(p *Publisher) { p.newID = f }
}

// WithClock replaces time.Now.
func WithClock(f func() time.Time) Option {
	return func(p *Publisher) { p.now = f }
}

// New returns a Publisher writing to store. baseURL may be empty, in which
// case returned URLs are root-relative paths.
func New(store storage.Storage, baseURL string, opts ...Option) *Publisher {
	p := &Publisher{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Key returns the storage key of a file in a category.
func Key(category model.Category, filename string) string {
	return string(category) + "/" + filename
}

// Publish stores data as <category>/<id>.pdf. A key the storage reports as
// taken (storage.ErrObjectExists) makes Publish draw a new id.
//
// With the local backend the existence check and the write are one
// exclusive create, so two publishes never share a filename. The MinIO
// backend checks and then writes in two requests; there the guarantee rests
// on the random uuid names alone.
func (p *Publisher) Publish(ctx context.Context, category model.Category, data []byte) (*model.GeneratedFile, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		id := p.newID()
		filename := id + fileExt
		key := Key(category, filename)

		info, err := p.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
			Size:        int64(len(data)),
			ContentType: contentTypePDF,
			Metadata:    map[string]string{"category": string(category)},
		})
		if errors.Is(err, storage.ErrObjectExists) {
			continue
		}
		if err != nil {
			return nil, &WriteError{Key: key, Err: err}
		}

		return &model.GeneratedFile{
			ID:        id,
			Category:  category,
			Filename:  filename,
			Path:      info.Path,
			URL:       p.URL(category, filename),
			Size:      info.Size,
			CreatedAt: p.now().UTC(),
		}, nil
	}
	return nil, &WriteError{Key: string(category), Err: fmt.Errorf("no free filename after %d attempts", maxAttempts)}
}

// URL joins the base URL with /files/<category>/<filename>.
func (p *Publisher) URL(category model.Category, filename string) string {
	return p.baseURL + FilesPrefix + "/" + Key(category, filename)
}
