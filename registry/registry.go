// Package registry maps dotted module names such as "translator.nodes" to
// the Go values that implement them.
//
// Packages register themselves from init, so whatever is linked into the
// binary is what Load can find. A name that was never registered resolves to
// an error wrapping ErrModuleNotFound.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agentuity/translator-check/sys"
	"github.com/cockroachdb/errors"
)

// ErrModuleNotFound is returned (wrapped) by Load when no module is registered under a name.
var ErrModuleNotFound = errors.New("module not found")

// Module is a named unit that can be registered.
type Module interface {
	Name() string
}

// Informer is implemented by modules that can describe themselves.
type Informer interface {
	Info() string
}

// Loader resolves a module on demand.
type Loader func() (Module, error)

// Registry is a name keyed set of module loaders. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{loaders: make(map[string]Loader)}
}

// Register adds an already constructed module under name.
func (r *Registry) Register(name string, m Module) {
	if m == nil {
		panic(fmt.Sprintf("module '%s' registered as nil", name))
	}
	r.RegisterLoader(name, func() (Module, error) { return m, nil })
}

// RegisterLoader adds a lazily resolved module under name. Registering the
// same name twice panics.
func (r *Registry) RegisterLoader(name string, fn Loader) {
	if fn == nil {
		panic(fmt.Sprintf("loader for module '%s' is nil", name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.loaders[name]; exists {
		panic(fmt.Sprintf("module with name '%s' already registered", name))
	}
	r.loaders[name] = fn
}

// Load resolves the module registered under name. A loader that panics is
// reported as an error.
func (r *Registry) Load(name string) (Module, error) {
	r.mu.RLock()
	fn, ok := r.loaders[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrModuleNotFound, "no module named '%s'", name)
	}
	var m Module
	err := sys.Guard(func() error {
		var err error
		m, err = fn()
		return err
	})
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.Newf("module '%s' loader returned no module", name)
	}
	return m, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.loaders))
	for name := range r.loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the process wide registry that linked packages register into.
var Default = New()

// Register adds m to the Default registry.
func Register(name string, m Module) {
	Default.Register(name, m)
}

// RegisterLoader adds fn to the Default registry.
func RegisterLoader(name string, fn Loader) {
	Default.RegisterLoader(name, fn)
}

// Load resolves name from the Default registry.
func Load(name string) (Module, error) {
	return Default.Load(name)
}
