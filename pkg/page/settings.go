package page

import (
	"github.com/dmitrymomot/pagekit/pkg/config"
	"github.com/dmitrymomot/pagekit/pkg/loadable"
)

// Settings holds the environment-driven toggles for page hierarchies.
type Settings struct {
	// DefaultValidation decides whether root types are seeded with the
	// built-in display check.
	DefaultValidation bool `env:"PAGEKIT_DEFAULT_VALIDATION" envDefault:"true"`
}

// RegistryFromEnv builds a loadable.Registry honoring the
// PAGEKIT_DEFAULT_VALIDATION toggle. Extra options are applied on top.
func RegistryFromEnv(opts ...loadable.Option) (*loadable.Registry, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return nil, err
	}
	if !s.DefaultValidation {
		opts = append([]loadable.Option{loadable.WithoutDefaultCheck()}, opts...)
	}
	return loadable.NewRegistry(opts...), nil
}
