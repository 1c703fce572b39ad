package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	c := New[string, int]()
	assert.Equal(t, 0, c.Size())

	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, 2, c.Size())
	assert.ElementsMatch(t, []string{"a", "b"}, c.Keys())

	c.Delete("a")
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Size())
}

func TestCacheOverwrite(t *testing.T) {
	c := New[string, string]()
	c.Set("k", "first")
	c.Set("k", "second")

	v, _ := c.Get("k")
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, c.Size())
}
