// Package waiter polls a condition until it holds or a deadline passes,
// which is how callers are expected to wrap load-readiness evaluation: the
// evaluator itself never retries, so waiting is applied around the whole
// evaluation from the outside.
//
// # Usage
//
//	w := waiter.New(
//	    waiter.WithTimeout(5*time.Second),
//	    waiter.WithInterval(100*time.Millisecond),
//	)
//
//	if err := w.UntilLoaded(ctx, registry, page); err != nil {
//	    // err carries the diagnostic of the last failing check
//	}
//
// Timeout and interval can also come from PAGEKIT_WAIT_TIMEOUT and
// PAGEKIT_POLL_INTERVAL via FromEnv.
package waiter
