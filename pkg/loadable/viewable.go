package loadable

import "fmt"

// Viewable is the optional surface consulted by the default display check.
// Hosts that do not implement it fail the default check with a fixed
// diagnostic, so hierarchies whose roots rely on the seeded check should
// implement Viewable on their host type.
type Viewable interface {
	// Displayed reports whether the host's primary display/match check passes.
	Displayed() bool
	// Location returns the address currently observed for the host.
	Location() string
	// ExpectedLocation describes the address the host expects to be at.
	ExpectedLocation() string
}

// DisplayedCheck is the built-in check seeded at the root of a host
// hierarchy: it passes when the host reports itself displayed and otherwise
// fails with a diagnostic naming the observed and expected locations.
func DisplayedCheck(h Host) Outcome {
	v, ok := h.(Viewable)
	if !ok {
		return Fail("host does not implement a display check")
	}
	if v.Displayed() {
		return Pass()
	}
	return Fail(fmt.Sprintf("Expected %q to match %q but it did not.", v.Location(), v.ExpectedLocation()))
}
