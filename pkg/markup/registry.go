package markup

import (
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vnode/internal/errors"
	"github.com/vango-dev/vnode/pkg/vdom"
)

// Registry maps component names to components. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	components map[string]*vdom.Component
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]*vdom.Component)}
}

// Register adds c under c.Name.
func (r *Registry) Register(c *vdom.Component) error {
	if c == nil || c.Name == "" {
		return errors.New("E120").WithDetail("A component needs a non-empty name.")
	}
	if c.Name == vdom.Fragment.String() {
		return errors.New("E121").WithPath(c.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[c.Name]; exists {
		return errors.New("E122").WithPath(c.Name)
	}
	r.components[c.Name] = c
	return nil
}

// Lookup returns the component registered under name.
func (r *Registry) Lookup(name string) (*vdom.Component, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[name]
	return c, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.components)
}

// componentFile is the YAML shape of a component definitions file.
type componentFile struct {
	Components []componentDef `yaml:"components"`
}

type componentDef struct {
	Name         string         `yaml:"name"`
	DefaultProps map[string]any `yaml:"defaultProps"`
}

// Load registers the components defined in a YAML document:
//
//	components:
//	  - name: Badge
//	    defaultProps: {tone: neutral}
//
// Declared components render their children unchanged.
// Load stops at the first invalid definition.
func (r *Registry) Load(rd io.Reader) error {
	var file componentFile
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil
		}
		return errors.New("E120").Wrap(err)
	}

	for _, def := range file.Components {
		c := vdom.Func(def.Name, renderChildren)
		if def.DefaultProps != nil {
			c.WithDefaults(vdom.Props(def.DefaultProps))
		}
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile is Load for a file path.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.New("E120").WithDetail("Could not open " + path).Wrap(err)
	}
	defer f.Close()
	return r.Load(f)
}

func renderChildren(props vdom.Props) any {
	return props[vdom.ChildrenKey]
}
