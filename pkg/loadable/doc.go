// Package loadable implements a load-readiness state machine for page-like
// objects in automated testing: a host type declares an ordered chain of
// readiness checks, the package evaluates them lazily with short-circuiting,
// and exposes a single answer to "is this object ready to act on?" together
// with a diagnostic message on failure.
//
// The package performs no I/O and knows nothing about browsers, elements or
// URLs; every check is an opaque predicate supplied by the host object.
// Retry and backoff around a failed evaluation are deliberately left to the
// caller (see pkg/waiter).
//
// # Architecture
//
// Two cooperating pieces:
//
//  1. Registry: a per-type table of checks keyed by the reflect.Type of a
//     host prototype. A type's effective check list is its ancestor chain's
//     lists, most-ancestral first, followed by its own checks in declaration
//     order. Root types are seeded with the built-in DisplayedCheck unless
//     the registry was built with WithoutDefaultCheck; children inherit it
//     and never gain a second copy.
//  2. Evaluator: Loaded runs the effective checks in order, stops at the
//     first failure and records its message on the host's State; WhenLoaded
//     wraps an action in a scoped, re-entrant memoization of the outcome and
//     fails with a NotLoadedError when the host is not ready.
//
// Registration is expected to happen at suite setup time, before any
// evaluation runs. Per-instance State is not safe for concurrent use.
//
// # Usage
//
//	type BasePage struct {
//	    loadable.State
//	    // Displayed, Location, ExpectedLocation ...
//	}
//
//	type LoginPage struct {
//	    BasePage
//	}
//
//	reg := loadable.NewRegistry()
//	_ = reg.AddRoot((*BasePage)(nil))
//	_ = reg.AddChild((*LoginPage)(nil), (*BasePage)(nil))
//	_ = reg.Register((*LoginPage)(nil), loadable.Check(func(h loadable.Host) bool {
//	    return h.(*LoginPage).FormVisible()
//	}))
//
//	err := reg.WhenLoaded(page, func(h loadable.Host) error {
//	    return h.(*LoginPage).SignIn(user, pass)
//	})
//
// # Error Handling
//
//	if loadable.IsNotLoadedError(err) {
//	    // err.(*loadable.NotLoadedError).Message names the failing check
//	}
//
// ErrNilAction is returned when WhenLoaded is called without an action. A
// panic inside a check or action is not caught; the memoized flag is still
// restored on the way out.
package loadable
