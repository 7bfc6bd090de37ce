package page

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/pagekit/pkg/loadable"
	"github.com/dmitrymomot/pagekit/pkg/logger"
	"github.com/dmitrymomot/pagekit/pkg/urlmatch"
)

// Driver is the narrow surface a page needs from the underlying automation
// tool. Implementations wrap whatever drives the browser; this package never
// talks to one directly.
type Driver interface {
	// Location returns the address currently presented to the user.
	Location() string
	// Visible reports whether the element identified by selector is rendered.
	Visible(selector string) bool
	// Visit navigates to the given address.
	Visit(url string) error
}

// Page is the base type for page objects. It embeds loadable.State and
// implements loadable.Viewable, so types built on it participate in
// load-readiness evaluation with the default display check.
type Page struct {
	loadable.State

	id       string
	name     string
	root     string
	matcher  *urlmatch.Matcher
	driver   Driver
	log      *slog.Logger
	template string
}

// Option configures a page during construction.
type Option func(*Page)

// WithURLTemplate declares the RFC 6570 template the page expects its
// address to satisfy. The template is parsed by New; an invalid one fails
// construction.
func WithURLTemplate(pattern string) Option {
	return func(p *Page) { p.template = pattern }
}

// WithMatcher sets an already-built matcher, taking precedence over
// WithURLTemplate.
func WithMatcher(m *urlmatch.Matcher) Option {
	return func(p *Page) {
		if m != nil {
			p.matcher = m
		}
	}
}

// WithRootSelector declares the element whose visibility marks the page as
// rendered.
func WithRootSelector(selector string) Option {
	return func(p *Page) { p.root = selector }
}

// WithLogger attaches a logger used for navigation events at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(p *Page) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a page bound to the given driver. Each instance gets a unique
// id for log correlation.
func New(name string, driver Driver, opts ...Option) (*Page, error) {
	if driver == nil {
		return nil, ErrNilDriver
	}

	p := &Page{
		id:     uuid.NewString(),
		name:   name,
		driver: driver,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.matcher == nil && p.template != "" {
		m, err := urlmatch.New(p.template)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", name, err)
		}
		p.matcher = m
	}
	return p, nil
}

// Name returns the page's declared name.
func (p *Page) Name() string { return p.name }

// ID returns the instance identifier used in log correlation.
func (p *Page) ID() string { return p.id }

// Displayed reports whether the page's declared expectations hold: the
// current address satisfies the URL matcher and the root element is visible.
// A page that declares neither expectation is never considered displayed.
func (p *Page) Displayed() bool {
	if p.matcher == nil && p.root == "" {
		return false
	}
	if p.matcher != nil && !p.matcher.Matches(p.driver.Location()) {
		return false
	}
	if p.root != "" && !p.driver.Visible(p.root) {
		return false
	}
	return true
}

// Location returns the address currently observed by the driver.
func (p *Page) Location() string {
	return p.driver.Location()
}

// ExpectedLocation describes where the page expects to be, for readiness
// diagnostics.
func (p *Page) ExpectedLocation() string {
	if p.matcher != nil {
		return p.matcher.String()
	}
	if p.root != "" {
		return fmt.Sprintf("a view with root element %q", p.root)
	}
	return "an undeclared location"
}

// Visit expands the page's URL template with vars and navigates the driver
// there. Pages without a template cannot be visited directly.
func (p *Page) Visit(vars map[string]string) error {
	if p.matcher == nil {
		return fmt.Errorf("visit %q: %w", p.name, ErrNoTemplate)
	}
	url, err := p.matcher.Expand(vars)
	if err != nil {
		return fmt.Errorf("visit %q: %w", p.name, err)
	}
	if p.log != nil {
		p.log.Debug("visiting page", logger.Page(p.name), logger.PageID(p.id), logger.Location(url))
	}
	return p.driver.Visit(url)
}
