package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocuments_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	d, err := NewDocuments(reg)
	require.NoError(t, err)

	d.Observe("receipts", 20*time.Millisecond, nil)
	d.Observe("receipts", 5*time.Millisecond, errors.New("boom"))
	d.Observe("agreements", time.Millisecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(d.generated.WithLabelValues("receipts", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.generated.WithLabelValues("receipts", OutcomeError)))
	assert.Equal(t, 2, testutil.CollectAndCount(d.duration))
}

func TestDocuments_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewDocuments(reg)
	require.NoError(t, err)

	_, err = NewDocuments(reg)
	assert.Error(t, err)
}

func TestDocuments_NilIsNoop(t *testing.T) {
	var d *Documents
	assert.NotPanics(t, func() { d.Observe("receipts", time.Second, nil) })
}
