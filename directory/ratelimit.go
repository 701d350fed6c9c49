package directory

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter grants one permit per outbound request. Wait blocks until a permit
// is available or the context is done; there is no non-blocking mode.
type Limiter interface {
	Wait(ctx context.Context) error
}

// The directory allows 60 requests per minute per token. The bucket refills
// continuously (one permit per second) so a quiet client can still burst up
// to the full window back-to-back.
const requestsPerMinute = 60

// NewRateLimiter returns the default per-client token bucket. Permits are
// granted fairly in request order; calls may still complete out of order.
func NewRateLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), requestsPerMinute)
}
