package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryServiceSetGet(t *testing.T) {
	svc := NewMemoryService()

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	err = svc.Set("key", []byte("value"), time.Minute)
	assert.NoError(t, err)

	value, err := svc.Get("key")
	assert.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
}

func TestMemoryServiceExpiration(t *testing.T) {
	svc := NewMemoryService()

	err := svc.Set("key", []byte("value"), 10*time.Millisecond)
	assert.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = svc.Get("key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryServiceDelete(t *testing.T) {
	svc := NewMemoryService()

	assert.NoError(t, svc.Set("key", []byte("value"), 0))
	assert.NoError(t, svc.Delete("key"))

	_, err := svc.Get("key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
