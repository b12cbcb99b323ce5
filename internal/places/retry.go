package places

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"

	"medi-assist/internal/providers/overpass"
	"medi-assist/internal/types"
)

// RetryPolicy bounds retries of a single search
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// AttemptTimeout caps each upstream call; zero means no per-attempt limit
	AttemptTimeout time.Duration
}

// RetryingSource retries transient upstream failures (network errors,
// timeouts, 429 and 5xx) with exponential backoff
type RetryingSource struct {
	next   PlaceSource
	policy RetryPolicy
	logger *slog.Logger
}

func NewRetryingSource(next PlaceSource, policy RetryPolicy, logger *slog.Logger) *RetryingSource {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &RetryingSource{
		next:   next,
		policy: policy,
		logger: logger.With("component", "place-retry"),
	}
}

func (s *RetryingSource) Name() string {
	return s.next.Name()
}

func (s *RetryingSource) Search(ctx context.Context, center types.Coords, q Query) ([]types.Candidate, error) {
	var (
		result  []types.Candidate
		attempt int
	)

	operation := func() error {
		attempt++
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}

		attemptCtx, cancel := s.attemptContext(ctx)
		defer cancel()

		candidates, err := s.next.Search(attemptCtx, center, q)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		result = candidates
		return nil
	}

	notify := func(err error, wait time.Duration) {
		s.logger.Warn("place search failed, retrying",
			"source", s.next.Name(),
			"attempt", attempt,
			"max_attempts", s.policy.MaxAttempts,
			"wait", wait,
			"error", err,
		)
	}

	if err := backoff.RetryNotify(operation, s.backOff(ctx), notify); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *RetryingSource) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if s.policy.InitialInterval > 0 {
		b.InitialInterval = s.policy.InitialInterval
	}
	if s.policy.MaxInterval > 0 {
		b.MaxInterval = s.policy.MaxInterval
	}
	b.MaxElapsedTime = 0 // bounded by attempts instead
	b.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.policy.MaxAttempts-1)), ctx)
}

func (s *RetryingSource) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.policy.AttemptTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.policy.AttemptTimeout)
}

func retryable(err error) bool {
	var statusErr *overpass.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
