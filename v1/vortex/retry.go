package vortex

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//
// ──────────────────────────────────────────────────────────────
//   RETRY EXECUTION POLICY
// ──────────────────────────────────────────────────────────────
//
// Every remote call the client issues runs through executeWithRetry: a
// bounded retry loop with exponential backoff, multiplicative jitter, and
// status-code classification. The loop is written once and parameterized
// over a sleeper, so the blocking and the context-aware execution modes
// share the decision logic, ordering, and attempt counts.
//

// RetryPolicy configures how failed remote calls are retried.
//
// The zero value disables retries; use DefaultRetryPolicy for the standard
// settings. initial > max is tolerated: the first delay is used as-is, the
// cap only prevents growth beyond max.
type RetryPolicy struct {
	// Enabled turns the retry loop on. When false every call is attempted
	// exactly once.
	Enabled bool `yaml:"enabled" env:"VORTEX_RETRIES_ENABLED"`

	// MaxRetries is the number of retries after the first attempt, so a
	// call is attempted at most MaxRetries+1 times.
	MaxRetries int `yaml:"max_retries" env:"VORTEX_MAX_RETRIES"`

	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration `yaml:"initial_backoff" env:"VORTEX_INITIAL_BACKOFF"`

	// MaxBackoff caps the stored backoff base. The cap applies before
	// jitter, so an actual sleep may slightly exceed it when jitter lands
	// positive.
	MaxBackoff time.Duration `yaml:"max_backoff" env:"VORTEX_MAX_BACKOFF"`

	// BackoffMultiplier grows the backoff base after every retry.
	BackoffMultiplier float64 `yaml:"backoff_multiplier" env:"VORTEX_BACKOFF_MULTIPLIER"`

	// Jitter applies ±10% uniform multiplicative jitter to every sleep.
	Jitter bool `yaml:"jitter" env:"VORTEX_RETRY_JITTER"`

	// RetryableStatusCodes are the gRPC codes worth retrying. Any other
	// classified failure fails the call immediately.
	RetryableStatusCodes []codes.Code `yaml:"retryable_status_codes"`
}

// DefaultRetryPolicy returns the standard retry settings: 3 retries from a
// 200ms base, 1.5x growth capped at 5s, jitter on, retrying UNAVAILABLE and
// RESOURCE_EXHAUSTED.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Enabled:           true,
		MaxRetries:        3,
		InitialBackoff:    200 * time.Millisecond,
		MaxBackoff:        5 * time.Second,
		BackoffMultiplier: 1.5,
		Jitter:            true,
		RetryableStatusCodes: []codes.Code{
			codes.Unavailable,
			codes.ResourceExhausted,
		},
	}
}

// snapshot copies the policy, including the code slice, so an in-flight
// invocation is immune to concurrent policy mutation on the client.
func (p RetryPolicy) snapshot() RetryPolicy {
	out := p
	out.RetryableStatusCodes = make([]codes.Code, len(p.RetryableStatusCodes))
	copy(out.RetryableStatusCodes, p.RetryableStatusCodes)
	return out
}

func (p RetryPolicy) isRetryable(c codes.Code) bool {
	for _, rc := range p.RetryableStatusCodes {
		if rc == c {
			return true
		}
	}
	return false
}

// ── Sleepers ─────────────────────────────────────────────────────────────

// sleeper abstracts the delay between attempts so the retry loop is
// testable and so both execution modes share one implementation.
type sleeper interface {
	sleep(ctx context.Context, d time.Duration) error
}

// blockingSleeper blocks the calling goroutine for the full duration.
type blockingSleeper struct{}

func (blockingSleeper) sleep(_ context.Context, d time.Duration) error {
	time.Sleep(d)
	return nil
}

// contextSleeper waits on a timer but aborts as soon as the context is
// done, returning the context's error unchanged.
type contextSleeper struct{}

func (contextSleeper) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ── Outcome classification ──────────────────────────────────────────────

type outcomeKind int

const (
	// outcomeRetryable is a classified failure whose code is in the
	// policy's retryable set.
	outcomeRetryable outcomeKind = iota

	// outcomeFatal is a classified failure outside the retryable set.
	outcomeFatal

	// outcomeUnexpected is any failure not carrying a gRPC status.
	outcomeUnexpected

	// outcomeCancelled means the invocation's own context ended; the
	// cancellation is propagated unchanged, never wrapped.
	outcomeCancelled
)

type outcome struct {
	kind   outcomeKind
	status *status.Status
}

// classify maps one attempt's failure onto an explicit outcome, so the
// retry loop branches on a closed set instead of re-inspecting the error
// at every site.
func classify(ctx context.Context, err error, policy RetryPolicy) outcome {
	if ctx.Err() != nil {
		return outcome{kind: outcomeCancelled}
	}
	st, ok := status.FromError(err)
	if !ok {
		return outcome{kind: outcomeUnexpected}
	}
	if policy.isRetryable(st.Code()) {
		return outcome{kind: outcomeRetryable, status: st}
	}
	return outcome{kind: outcomeFatal, status: st}
}

// ── Executor ─────────────────────────────────────────────────────────────

// retryExecutor carries the per-invocation collaborators of the retry
// loop: the policy snapshot, the sleeper, and the jitter source.
type retryExecutor struct {
	policy RetryPolicy
	sleep  sleeper

	// jitter returns a uniform sample from [-0.1, 0.1].
	jitter func() float64
}

// defaultJitter is the production jitter source.
func defaultJitter() float64 {
	return (rand.Float64() - 0.5) / 5
}

// executeWithRetry runs call up to policy.MaxRetries+1 times and returns
// its value, the number of attempts issued, and the terminal error.
//
// The contract:
//   - disabled policy: exactly one attempt, no sleeping;
//   - success at any attempt returns immediately;
//   - a classified failure outside the retryable set fails immediately
//     with an APIError;
//   - a retryable failure before the final attempt sleeps the jittered
//     backoff and advances the base by min(max, base*multiplier);
//   - a retryable failure at the final attempt fails with an APIError
//     noting exhaustion;
//   - a failure without a gRPC status fails immediately with an
//     UnexpectedError, regardless of remaining budget;
//   - cancellation of ctx is propagated unchanged.
//
// operation is a descriptive label used only in error messages, e.g.
// "create collection 'docs'".
func executeWithRetry[T any](ctx context.Context, ex retryExecutor, operation string, call func(ctx context.Context) (T, error)) (T, int, error) {
	var zero T
	policy := ex.policy

	if !policy.Enabled {
		v, err := call(ctx)
		if err == nil {
			return v, 1, nil
		}
		oc := classify(ctx, err, policy)
		switch oc.kind {
		case outcomeCancelled:
			return zero, 1, ctx.Err()
		case outcomeUnexpected:
			return zero, 1, newUnexpectedError(operation, err)
		default:
			return zero, 1, newAPIError("Failed to "+operation, oc.status, err)
		}
	}

	var lastStatus *status.Status
	var lastErr error
	currentBackoff := policy.InitialBackoff

	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		v, err := call(ctx)
		if err == nil {
			return v, attempt + 1, nil
		}

		oc := classify(ctx, err, policy)
		switch oc.kind {
		case outcomeCancelled:
			return zero, attempt + 1, ctx.Err()
		case outcomeUnexpected:
			return zero, attempt + 1, newUnexpectedError(operation, err)
		case outcomeFatal:
			return zero, attempt + 1, newAPIError("Failed to "+operation, oc.status, err)
		}

		lastStatus = oc.status
		lastErr = err
		if attempt == policy.MaxRetries {
			break
		}

		// Jitter is computed fresh from the pre-jitter base and never
		// folded back into it.
		delay := currentBackoff
		if policy.Jitter {
			delay = time.Duration(float64(delay) * (1 + ex.jitter()))
		}
		if err := ex.sleep.sleep(ctx, delay); err != nil {
			return zero, attempt + 1, err
		}

		next := time.Duration(float64(currentBackoff) * policy.BackoffMultiplier)
		if next > policy.MaxBackoff {
			next = policy.MaxBackoff
		}
		currentBackoff = next
	}

	if lastStatus != nil {
		msg := fmt.Sprintf("Failed to %s after %d retries", operation, policy.MaxRetries)
		return zero, policy.MaxRetries + 1, newAPIError(msg, lastStatus, lastErr)
	}

	// Unreachable given the contract above; kept so a logic regression
	// surfaces as a diagnosable error instead of a zero value.
	return zero, policy.MaxRetries + 1, &UnexpectedError{
		Message: fmt.Sprintf("Failed to %s after all retries, but no status error was captured", operation),
	}
}
