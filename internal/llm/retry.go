package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with capped exponential backoff.
// It works inside the caller's deadline: a wait that would leave less than
// MinRemaining for the next attempt is not taken, and the last error is
// returned instead. The advisor's timeout therefore bounds the whole
// exchange, retries included.
type RetryProvider struct {
	inner  Provider
	config RetryConfig

	sleep  func(ctx context.Context, d time.Duration) error
	jitter func() float64 // in [-1, 1)
}

// WithRetry wraps p with the retry policy in cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return newRetryProvider(p, cfg)
}

func newRetryProvider(p Provider, cfg RetryConfig) *RetryProvider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{
		inner:  p,
		config: cfg,
		sleep:  sleepContext,
		jitter: func() float64 { return 2*rand.Float64() - 1 },
	}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	invalidSeen := false
	for attempt := 0; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch classify(err) {
		case failPermanent:
			return nil, err
		case failInvalid:
			if invalidSeen {
				return nil, err
			}
			invalidSeen = true
		}

		if attempt+1 >= r.config.MaxAttempts {
			return nil, err
		}
		wait := r.backoff(attempt, err)
		if !r.fits(ctx, wait) {
			return nil, err
		}
		if serr := r.sleep(ctx, wait); serr != nil {
			return nil, serr
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// fits reports whether waiting d still leaves MinRemaining before the
// context deadline.
func (r *RetryProvider) fits(ctx context.Context, d time.Duration) bool {
	deadline, ok := ctx.Deadline()
	if !ok {
		return true
	}
	return time.Until(deadline)-d >= r.config.MinRemaining
}

// backoff returns the wait before attempt+1. A provider's Retry-After is
// honoured but never beyond MaxWait.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	if rl, ok := asRateLimit(err); ok && rl.RetryAfter > 0 {
		return min(rl.RetryAfter, r.config.MaxWait)
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = min(wait, float64(r.config.MaxWait))
	wait += wait * 0.2 * r.jitter()
	return time.Duration(max(wait, 0))
}

func asRateLimit(err error) (*ErrRateLimit, bool) {
	var rl *ErrRateLimit
	ok := errors.As(err, &rl)
	return rl, ok
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
