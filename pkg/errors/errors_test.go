package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineErrorMessage(t *testing.T) {
	err := NewStore("worker", "cannot load seen store", errors.New("permission denied"))
	assert.Equal(t, "[store] worker: cannot load seen store - permission denied", err.Error())

	bare := NewNetwork("scraper", "homepage unreachable", nil)
	assert.Equal(t, "[network] scraper: homepage unreachable", bare.Error())
}

func TestPipelineErrorUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := NewExport("worker", "cannot write export file", inner)

	wrapped := fmt.Errorf("run failed: %w", err)
	assert.True(t, errors.Is(wrapped, inner))

	var pe *PipelineError
	assert.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, ErrorTypeExport, pe.Type)
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(NewNetwork("scraper", "one category down", nil)))
	assert.False(t, IsFatal(NewParsing("scraper", "unexpected markup", nil)))
	assert.False(t, IsFatal(NewNotify("notifier", "send failed", nil)))
	assert.True(t, IsFatal(NewStore("worker", "corrupt store", nil)))
	assert.True(t, IsFatal(NewExport("worker", "write failed", nil)))
	assert.True(t, IsFatal(NewConfiguration("config", "bad base URL", nil)))

	// Errors outside the taxonomy are fatal by default.
	assert.True(t, IsFatal(errors.New("unknown")))
}
