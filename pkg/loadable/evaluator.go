package loadable

import (
	"log/slog"
	"reflect"
)

// Loaded evaluates the host's readiness checks in registry order and reports
// whether all of them passed.
//
// The host's load error is cleared first, so a cached-true read never reports
// a stale diagnostic. When the memoized loaded flag is true the checks are
// skipped entirely. Otherwise checks run in effective order and evaluation
// stops at the first failure, whose message (if any) becomes the host's load
// error; checks after the failing one are never run. With no checks resolved
// for the host's type the evaluation passes vacuously.
//
// Loaded never writes the memoized flag itself; memoization is scoped inside
// WhenLoaded.
func (r *Registry) Loaded(host Host) bool {
	st := host.LoadState()
	st.loadErr = ""

	if st.loaded != nil && *st.loaded {
		return true
	}

	for i, rule := range r.EffectiveRules(host) {
		out := rule(host)
		if out.Passed() {
			continue
		}
		st.loadErr = out.Message()
		if r.log != nil {
			r.log.Debug("readiness check failed",
				slog.String("host", reflect.TypeOf(host).String()),
				slog.Int("check", i),
				slog.String("reason", out.Message()),
			)
		}
		return false
	}
	return true
}

// WhenLoaded runs fn only if the host passes its readiness checks, and fails
// with a NotLoadedError otherwise.
//
// The memoized loaded flag is set to the evaluation's outcome for the
// duration of the call and restored to its previous value on every exit path,
// including a NotLoadedError and a panic inside fn. Nested WhenLoaded calls
// therefore see the outer evaluation's cached result and cannot leak a stale
// flag to their caller: the flag behaves as a single-slot stack keyed by call
// depth, not a persistent cache.
//
// fn receives the host and its return value is propagated unchanged. Calling
// WhenLoaded without an action returns ErrNilAction before any state is
// touched.
func (r *Registry) WhenLoaded(host Host, fn func(host Host) error) error {
	if fn == nil {
		return ErrNilAction
	}

	st := host.LoadState()
	prev := st.loaded
	defer func() { st.loaded = prev }()

	loaded := r.Loaded(host)
	st.loaded = &loaded
	if !loaded {
		return NewNotLoadedError(st.loadErr)
	}
	return fn(host)
}
