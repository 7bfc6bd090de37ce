package loadable

import (
	"log/slog"
	"reflect"
	"sync"
)

// Registry stores readiness checks per host type and resolves a type's
// effective check list through its ancestor chain, most-ancestral first.
//
// Types are identified by the reflect.Type of a host prototype, so the same
// pointer shape must be used for registration and evaluation (register with
// (*LoginPage)(nil) or &LoginPage{}, evaluate with a *LoginPage).
type Registry struct {
	mu       sync.RWMutex
	types    map[reflect.Type]*typeEntry
	defaults bool
	log      *slog.Logger
}

type typeEntry struct {
	parent reflect.Type
	rules  []Rule
}

// Option configures a registry during construction.
type Option func(*Registry)

// WithoutDefaultCheck disables seeding of the built-in display check on root
// types. Explicitly registered checks are unaffected.
func WithoutDefaultCheck() Option {
	return func(r *Registry) { r.defaults = false }
}

// WithLogger attaches a logger used to report failing checks at debug level.
// The registry is silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry creates a registry with the default display check enabled for
// root types.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		types:    make(map[reflect.Type]*typeEntry),
		defaults: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddRoot declares the prototype's type as a hierarchy root. Unless the
// registry was built with WithoutDefaultCheck, the built-in display check is
// seeded as the root's sole initial entry, at most once; repeated calls for
// the same type are no-ops. Non-root types must be declared with AddChild so
// they inherit the root's default instead of gaining a second copy.
func (r *Registry) AddRoot(prototype Host) error {
	t, err := typeOf(prototype)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[t]; ok {
		return nil
	}

	entry := &typeEntry{}
	if r.defaults {
		entry.rules = []Rule{DisplayedCheck}
	}
	r.types[t] = entry
	return nil
}

// AddChild declares the prototype's type as a descendant of parent. The
// parent must have been declared first, either as a root or as a child of
// another declared type. A child never receives its own default check.
func (r *Registry) AddChild(prototype, parent Host) error {
	t, err := typeOf(prototype)
	if err != nil {
		return err
	}
	pt, err := typeOf(parent)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[pt]; !ok {
		return ErrUnknownParent
	}
	if _, ok := r.types[t]; ok {
		return nil
	}
	r.types[t] = &typeEntry{parent: pt}
	return nil
}

// Register appends a check to the prototype's own list, preserving
// registration order. A type that was never declared with AddRoot or
// AddChild is treated as a standalone root without the default check.
// Duplicates are not filtered; the rule's shape is only exercised at
// evaluation time.
func (r *Registry) Register(prototype Host, rule Rule) error {
	if rule == nil {
		return ErrNilRule
	}
	t, err := typeOf(prototype)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.types[t]
	if !ok {
		entry = &typeEntry{}
		r.types[t] = entry
	}
	entry.rules = append(entry.rules, rule)
	return nil
}

// EffectiveRules resolves the full ordered check list for the prototype's
// type: the ancestor chain's checks first, most-ancestral at the head, then
// the type's own checks in declaration order. The list is computed on each
// call, so checks registered after an earlier read are picked up. An
// undeclared type yields nil.
func (r *Registry) EffectiveRules(prototype Host) []Rule {
	t, err := typeOf(prototype)
	if err != nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.resolve(t)
}

// resolve walks the parent chain recursively. Callers must hold at least a
// read lock.
func (r *Registry) resolve(t reflect.Type) []Rule {
	entry, ok := r.types[t]
	if !ok {
		return nil
	}

	var rules []Rule
	if entry.parent != nil {
		rules = r.resolve(entry.parent)
	}
	return append(rules, entry.rules...)
}

func typeOf(prototype Host) (reflect.Type, error) {
	if prototype == nil {
		return nil, ErrNilPrototype
	}
	t := reflect.TypeOf(prototype)
	if t == nil {
		return nil, ErrNilPrototype
	}
	return t, nil
}
