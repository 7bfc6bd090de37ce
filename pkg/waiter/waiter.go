package waiter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrymomot/pagekit/pkg/config"
	"github.com/dmitrymomot/pagekit/pkg/loadable"
)

var (
	// ErrNotReady is the retryable failure recorded on each polling attempt;
	// it is also what Until wraps when the deadline passes.
	ErrNotReady = errors.New("condition not met")

	// ErrNilCondition is returned when Until is called without a condition.
	ErrNilCondition = errors.New("condition cannot be nil")
)

// Settings holds the environment-driven polling defaults.
type Settings struct {
	Timeout  time.Duration `env:"PAGEKIT_WAIT_TIMEOUT" envDefault:"10s"`
	Interval time.Duration `env:"PAGEKIT_POLL_INTERVAL" envDefault:"100ms"`
}

// Waiter repeatedly evaluates a condition at a fixed interval until it holds
// or the timeout elapses. Waiter is immutable and safe for concurrent use.
type Waiter struct {
	timeout  time.Duration
	interval time.Duration
	log      *slog.Logger
}

// Option configures a waiter during construction.
type Option func(*Waiter)

func WithTimeout(d time.Duration) Option {
	return func(w *Waiter) {
		if d > 0 {
			w.timeout = d
		}
	}
}

func WithInterval(d time.Duration) Option {
	return func(w *Waiter) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithLogger attaches a logger that reports polling attempts at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(w *Waiter) {
		if log != nil {
			w.log = log
		}
	}
}

// New creates a waiter with a 10s timeout and 100ms interval unless
// overridden by options.
func New(opts ...Option) *Waiter {
	w := &Waiter{
		timeout:  10 * time.Second,
		interval: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// FromEnv builds a waiter from Settings read out of the environment.
func FromEnv(opts ...Option) (*Waiter, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return nil, err
	}
	return New(append([]Option{WithTimeout(s.Timeout), WithInterval(s.Interval)}, opts...)...), nil
}

// Until polls fn until it returns true, the timeout elapses, or ctx is
// cancelled. The returned error wraps ErrNotReady when the deadline passed
// with the condition still false.
func (w *Waiter) Until(ctx context.Context, fn func(ctx context.Context) bool) error {
	if fn == nil {
		return ErrNilCondition
	}

	backoff := retry.WithMaxDuration(w.timeout, retry.NewConstant(w.interval))
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if fn(ctx) {
			return nil
		}
		if w.log != nil {
			w.log.Debug("condition not met yet", slog.Int("attempt", attempt))
		}
		return retry.RetryableError(ErrNotReady)
	})
	if err != nil {
		return fmt.Errorf("gave up after %d attempts in %s: %w", attempt, w.timeout, err)
	}
	return nil
}

// UntilLoaded polls the host's readiness evaluation until it passes. On
// timeout it returns a loadable.NotLoadedError carrying the diagnostic of
// the last failing check, so callers inspect the failure the same way they
// would after WhenLoaded.
func (w *Waiter) UntilLoaded(ctx context.Context, reg *loadable.Registry, host loadable.Host) error {
	err := w.Until(ctx, func(context.Context) bool {
		return reg.Loaded(host)
	})
	if err != nil {
		return fmt.Errorf("wait for load: %w", loadable.NewNotLoadedError(host.LoadState().LoadError()))
	}
	return nil
}
