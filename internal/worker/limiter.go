package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles the number of texts analyzed per second across all
// workers
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter. A non-positive rate means unlimited.
func NewLimiter(textsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}

	limit := rate.Limit(textsPerSecond)
	if textsPerSecond <= 0 {
		limit = rate.Inf
	}

	return &Limiter{limiter: rate.NewLimiter(limit, burst)}
}

// Wait blocks until the next text may be processed
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a text may be processed now, consuming a token
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Unlimited reports whether the limiter never throttles
func (l *Limiter) Unlimited() bool {
	return l.limiter.Limit() == rate.Inf
}

// SetRate changes the rate and burst in place
func (l *Limiter) SetRate(textsPerSecond float64, burst int) {
	limit := rate.Limit(textsPerSecond)
	if textsPerSecond <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	l.limiter.SetLimit(limit)
	l.limiter.SetBurst(burst)
}
