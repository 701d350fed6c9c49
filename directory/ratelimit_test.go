package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Virtual time throughout: the limiter's explicit-time APIs make these tests
// deterministic without sleeping.

func TestRateLimiter_FullBurstIsImmediate(t *testing.T) {
	lim := NewRateLimiter()
	now := time.Now()

	for i := 0; i < requestsPerMinute; i++ {
		require.True(t, lim.AllowN(now, 1), "permit %d should be granted without waiting", i+1)
	}

	assert.False(t, lim.AllowN(now, 1), "61st permit in the same instant must wait")
}

func TestRateLimiter_61stCallWaitsForRefill(t *testing.T) {
	lim := NewRateLimiter()
	now := time.Now()

	for i := 0; i < requestsPerMinute; i++ {
		require.True(t, lim.AllowN(now, 1))
	}

	r := lim.ReserveN(now, 1)
	require.True(t, r.OK())
	defer r.CancelAt(now)

	delay := r.DelayFrom(now)
	assert.Greater(t, delay, time.Duration(0))
	assert.LessOrEqual(t, delay, time.Second, "continuous refill frees one permit per second")
}

func TestRateLimiter_RefillIsContinuous(t *testing.T) {
	lim := NewRateLimiter()
	now := time.Now()

	for i := 0; i < requestsPerMinute; i++ {
		require.True(t, lim.AllowN(now, 1))
	}
	require.False(t, lim.AllowN(now, 1))

	// one second later exactly one permit is back, not a whole window
	later := now.Add(time.Second)
	assert.True(t, lim.AllowN(later, 1))
	assert.False(t, lim.AllowN(later, 1))

	// a full minute of quiet restores the entire burst
	rested := later.Add(time.Minute)
	for i := 0; i < requestsPerMinute; i++ {
		require.True(t, lim.AllowN(rested, 1), "permit %d after a quiet minute", i+1)
	}
}
