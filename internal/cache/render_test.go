package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCache(t *testing.T) {
	c := NewRenderCache()

	_, ok := c.Get("/topics")
	assert.False(t, ok)

	c.Set("/topics", []byte("topics payload"))
	c.Set("/ask", []byte("ask payload"))

	payload, ok := c.Get("/topics")
	assert.True(t, ok)
	assert.Equal(t, []byte("topics payload"), payload)

	c.Invalidate("/topics", "/never-cached")

	_, ok = c.Get("/topics")
	assert.False(t, ok)

	// Unrelated entries survive invalidation
	_, ok = c.Get("/ask")
	assert.True(t, ok)
}
