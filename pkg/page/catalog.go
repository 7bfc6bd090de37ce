package page

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/pagekit/pkg/urlmatch"
)

// Definition describes a single page in a catalog: the URI template its
// address must satisfy and, optionally, the root element marking it as
// rendered.
type Definition struct {
	URL  string `yaml:"url"`
	Root string `yaml:"root,omitempty"`
}

type catalogFile struct {
	Pages map[string]Definition `yaml:"pages"`
}

// Catalog holds named page definitions shared by a suite, usually loaded
// from a YAML file checked in next to the tests.
type Catalog struct {
	defs map[string]Definition
}

// LoadCatalog reads and parses a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog parses YAML catalog content. Every URL template is validated
// up front so a broken definition fails at suite setup, not mid-test.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	for name, def := range file.Pages {
		if _, err := urlmatch.New(def.URL); err != nil {
			return nil, fmt.Errorf("page %q: %w", name, err)
		}
	}

	if file.Pages == nil {
		file.Pages = make(map[string]Definition)
	}
	return &Catalog{defs: file.Pages}, nil
}

// Definition returns the named page definition.
func (c *Catalog) Definition(name string) (Definition, bool) {
	def, ok := c.defs[name]
	return def, ok
}

// Names returns the defined page names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds a page from the named definition, bound to the given driver.
// Extra options are applied after the definition's own.
func (c *Catalog) New(name string, driver Driver, opts ...Option) (*Page, error) {
	def, ok := c.defs[name]
	if !ok {
		return nil, fmt.Errorf("page %q: %w", name, ErrUnknownPage)
	}

	defOpts := []Option{WithURLTemplate(def.URL)}
	if def.Root != "" {
		defOpts = append(defOpts, WithRootSelector(def.Root))
	}
	return New(name, driver, append(defOpts, opts...)...)
}
