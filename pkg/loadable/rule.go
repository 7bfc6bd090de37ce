package loadable

// Outcome is the result of a single readiness check: either a pass, or a
// failure optionally carrying a diagnostic message.
type Outcome struct {
	passed  bool
	message string
}

// Pass reports a successful check.
func Pass() Outcome {
	return Outcome{passed: true}
}

// Fail reports a failed check. The message becomes the host's load error and
// the payload of the NotLoadedError surfaced to callers; an empty message
// leaves the load error cleared.
func Fail(message string) Outcome {
	return Outcome{message: message}
}

// Passed reports whether the check succeeded.
func (o Outcome) Passed() bool {
	return o.passed
}

// Message returns the diagnostic attached to a failed check. A message on a
// passing outcome is discarded and never surfaces.
func (o Outcome) Message() string {
	if o.passed {
		return ""
	}
	return o.message
}

// Rule is a single readiness check evaluated against a host instance. Rules
// must not mutate the host's load state; any panic inside a rule propagates
// to the caller unchanged.
type Rule func(host Host) Outcome

// Check adapts a plain boolean predicate into a Rule. A false result fails
// without a diagnostic message.
func Check(fn func(host Host) bool) Rule {
	return func(h Host) Outcome {
		if fn(h) {
			return Pass()
		}
		return Fail("")
	}
}
