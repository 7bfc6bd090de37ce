package loadable

// State carries the per-instance readiness outcome: the memoized loaded flag
// and the diagnostic from the most recent failing check. Embed it in a page
// or component struct to satisfy the Host interface:
//
//	type LoginPage struct {
//	    loadable.State
//	    // ...
//	}
//
// The zero value is ready to use: the loaded flag is unset and no load error
// is recorded. State is mutated only by the evaluator and only for the host
// passed in; it is not safe for concurrent use.
type State struct {
	loaded  *bool
	loadErr string
}

// LoadState returns the state itself, satisfying Host via embedding.
func (s *State) LoadState() *State { return s }

// Loaded returns the memoized readiness outcome. ok is false while the flag
// is unset, which forces the next evaluation to run every check.
func (s *State) Loaded() (value, ok bool) {
	if s.loaded == nil {
		return false, false
	}
	return *s.loaded, true
}

// LoadError returns the diagnostic captured from the first failing check of
// the most recent evaluation, or the empty string when the last evaluation
// passed, has not run yet, or the failing check supplied no message.
func (s *State) LoadError() string {
	return s.loadErr
}

// Host is implemented by any object that carries load-readiness state.
// Embedding State satisfies it.
type Host interface {
	LoadState() *State
}
