// Package urlmatch wraps RFC 6570 URI templates into matchers page objects
// use to describe where they expect to live.
//
// A Matcher is built from a template such as
// "https://example.com/users/{id}" and answers two questions: does an
// observed address satisfy the template, and what variable values did it
// carry. The same template expands back into a concrete address for
// navigation.
//
// # Usage
//
//	m := urlmatch.MustNew("https://example.com/users/{id}")
//
//	m.Matches("https://example.com/users/42")        // true
//	vars, _ := m.Mappings("https://example.com/users/42") // {"id": "42"}
//	url, _ := m.Expand(map[string]string{"id": "42"})
//
// # See Also
//
//   - https://github.com/yosida95/uritemplate – the underlying template engine.
package urlmatch
