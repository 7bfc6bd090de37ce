package urlmatch

import (
	"errors"
	"fmt"

	"github.com/yosida95/uritemplate/v3"
)

// ErrInvalidTemplate is returned when a pattern cannot be parsed as an
// RFC 6570 URI template.
var ErrInvalidTemplate = errors.New("invalid URI template")

// Matcher matches observed addresses against an RFC 6570 URI template and
// expands the template back into concrete addresses. Matcher is immutable
// and safe for concurrent use.
type Matcher struct {
	raw  string
	tmpl *uritemplate.Template
}

// New parses pattern into a Matcher.
func New(pattern string) (*Matcher, error) {
	tmpl, err := uritemplate.New(pattern)
	if err != nil {
		return nil, errors.Join(ErrInvalidTemplate, err)
	}
	return &Matcher{raw: pattern, tmpl: tmpl}, nil
}

// MustNew works like New but panics on an invalid pattern. Intended for
// templates declared as package-level page definitions.
func MustNew(pattern string) *Matcher {
	m, err := New(pattern)
	if err != nil {
		panic(fmt.Sprintf("urlmatch: %v", err))
	}
	return m
}

// Matches reports whether the observed address satisfies the template.
func (m *Matcher) Matches(observed string) bool {
	return m.tmpl.Match(observed) != nil
}

// Mappings returns the template variable values extracted from the observed
// address. ok is false when the address does not satisfy the template.
func (m *Matcher) Mappings(observed string) (vars map[string]string, ok bool) {
	match := m.tmpl.Match(observed)
	if match == nil {
		return nil, false
	}
	vars = make(map[string]string, len(match))
	for name, value := range match {
		vars[name] = value.String()
	}
	return vars, true
}

// Expand substitutes vars into the template, producing a concrete address.
func (m *Matcher) Expand(vars map[string]string) (string, error) {
	values := make(uritemplate.Values, len(vars))
	for name, value := range vars {
		values[name] = uritemplate.String(value)
	}
	expanded, err := m.tmpl.Expand(values)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", m.raw, err)
	}
	return expanded, nil
}

// String returns the raw template, used in readiness diagnostics.
func (m *Matcher) String() string {
	return m.raw
}
