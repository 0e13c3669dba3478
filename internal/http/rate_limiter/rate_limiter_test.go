package rate_limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_Burst(t *testing.T) {
	l := New(1, 2)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "visitors have separate buckets")
}

func TestLimiter_CleanupIdle(t *testing.T) {
	clock := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	l := New(1, 1)
	l.now = func() time.Time { return clock }

	l.GetVisitor("a")
	clock = clock.Add(4 * time.Minute)
	l.GetVisitor("b")
	clock = clock.Add(2 * time.Minute)

	assert.Equal(t, 1, l.CleanupIdle())
	assert.Equal(t, 1, l.Visitors())
}
