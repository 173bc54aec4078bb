// Package retry is a small wrapper on top of "cenkalti/backoff". Unlike the
// underlying library, only errors wrapped with Retryable are retried; any
// other error aborts immediately. Retries stop once the configured number of
// attempts is exhausted.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

type (
	// OperationFn is an operation returning a result of type T.
	OperationFn[T any] func(ctx context.Context) (T, error)

	// BackoffFactory returns a new instance of a backoff policy.
	BackoffFactory func() backoff.BackOff

	// RetryableError marks its cause as safe to retry.
	RetryableError struct {
		Err error
	}

	Option func(o *options)

	options struct {
		maxAttempts    int
		backoffFactory BackoffFactory
		logger         *zap.Logger
	}
)

const (
	// DefaultMaxAttempts bounds the total number of executions, the first
	// attempt included.
	DefaultMaxAttempts = 4

	defaultInitialInterval     = 100 * time.Millisecond
	defaultRandomizationFactor = 0.5
	defaultMultiplier          = 2
	defaultMaxInterval         = 2 * time.Second
)

// Retryable wraps err so that Do retries the operation.
func Retryable(err error) error {
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// WithMaxAttempts sets the maximum number of attempts. When maxAttempts is
// 1, the operation is executed only once without any retry.
func WithMaxAttempts(maxAttempts int) Option {
	return func(o *options) {
		if maxAttempts >= 1 {
			o.maxAttempts = maxAttempts
		}
	}
}

// WithBackoffFactory overrides the exponential backoff policy.
func WithBackoffFactory(backoffFactory BackoffFactory) Option {
	return func(o *options) {
		o.backoffFactory = backoffFactory
	}
}

// WithLogger sets the logger used to report retried attempts.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Do runs the operation, retrying with backoff while it returns a retryable
// error, until it succeeds, fails permanently, the attempts are exhausted,
// or the context is done.
func Do[T any](ctx context.Context, operation OperationFn[T], opts ...Option) (T, error) {
	o := &options{
		maxAttempts:    DefaultMaxAttempts,
		backoffFactory: defaultBackoffFactory,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	var result T
	attempts := 0
	err := backoff.Retry(func() error {
		attempts++
		var err error
		result, err = operation(ctx)
		if err == nil {
			return nil
		}

		var retryable *RetryableError
		if !xerrors.As(err, &retryable) {
			return backoff.Permanent(err)
		}
		if attempts >= o.maxAttempts {
			return backoff.Permanent(err)
		}

		o.logger.Warn(
			"retrying operation",
			zap.Int("attempt", attempts),
			zap.Int("max_attempts", o.maxAttempts),
			zap.Error(err),
		)
		return err
	}, backoff.WithContext(o.backoffFactory(), ctx))
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

func defaultBackoffFactory() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = defaultInitialInterval
	b.RandomizationFactor = defaultRandomizationFactor
	b.Multiplier = defaultMultiplier
	b.MaxInterval = defaultMaxInterval
	return b
}
