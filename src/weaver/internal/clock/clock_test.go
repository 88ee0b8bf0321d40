package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowAdvances(t *testing.T) {
	c := New()
	first := c.Now()
	c.Sleep(time.Millisecond)
	assert.True(t, c.Now().After(first))
}

func TestFixedIsPinned(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := Fixed(at)
	c.Sleep(time.Hour)
	assert.Equal(t, at, c.Now())
}
