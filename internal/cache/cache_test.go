package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetValue(t *testing.T) {
	c := Get()
	c.Set("goodie:test-slug", "payload")

	value, found := c.GetValue("goodie:test-slug")
	require.True(t, found)
	assert.Equal(t, "payload", value)
}

func TestGetValueExpired(t *testing.T) {
	c := Get()
	c.Set("goodie:expired", "payload", time.Millisecond)

	time.Sleep(5 * time.Millisecond)

	_, found := c.GetValue("goodie:expired")
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	c := Get()
	c.Set("goodie:deleted", "payload")
	c.Delete("goodie:deleted")

	_, found := c.GetValue("goodie:deleted")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	c := Get()
	c.Set("goodies:hot:0", "a")
	c.Set("goodies:hot:8", "b")
	c.Set("goodies:new:0", "c")

	c.DeleteByPrefix("goodies:hot:")

	_, found := c.GetValue("goodies:hot:0")
	assert.False(t, found)
	_, found = c.GetValue("goodies:hot:8")
	assert.False(t, found)
	_, found = c.GetValue("goodies:new:0")
	assert.True(t, found)
}
