package markup

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vnode/internal/errors"
	"github.com/vango-dev/vnode/pkg/vdom"
)

// DefaultMaxDepth bounds element and list nesting.
const DefaultMaxDepth = 256

// DefaultMaxNodes bounds the values one document may expand to.
// Aliases are expanded at each use, so this also caps alias fan-out.
const DefaultMaxNodes = 100000

// Element field names.
const (
	fieldTag      = "tag"
	fieldKey      = "key"
	fieldProps    = "props"
	fieldChildren = "children"
)

// Decoder builds VNodes from element descriptions.
type Decoder struct {
	registry *Registry
	maxDepth int
	maxNodes int
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithMaxDepth sets the maximum element nesting depth.
// Nested child lists count as a level.
func WithMaxDepth(depth int) Option {
	return func(d *Decoder) {
		if depth > 0 {
			d.maxDepth = depth
		}
	}
}

// WithMaxNodes sets how many elements, lists and scalar children one
// document may produce after alias expansion.
func WithMaxNodes(n int) Option {
	return func(d *Decoder) {
		if n > 0 {
			d.maxNodes = n
		}
	}
}

// NewDecoder creates a decoder resolving component tags through registry.
// A nil registry resolves every non-Fragment tag as a host tag.
func NewDecoder(registry *Registry, opts ...Option) *Decoder {
	d := &Decoder{
		registry: registry,
		maxDepth: DefaultMaxDepth,
		maxNodes: DefaultMaxNodes,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads one document from r.
func (d *Decoder) Decode(r io.Reader) (*vdom.VNode, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.New("E105")
		}
		return nil, errors.New("E101").Wrap(err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, errors.New("E105")
		}
		root = root.Content[0]
	}
	root = resolve(root)
	if isNull(root) {
		return nil, errors.New("E105").At(root.Line, root.Column)
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("E102").
			At(root.Line, root.Column).
			WithDetail("The document root must be an element mapping.")
	}
	st := &decodeState{Decoder: d, active: make(map[*yaml.Node]bool)}
	return st.element(root, "", 1)
}

// DecodeBytes is Decode for an in-memory document.
func (d *Decoder) DecodeBytes(data []byte) (*vdom.VNode, error) {
	return d.Decode(bytes.NewReader(data))
}

// Resolve maps a tag name to a Tag.
func (d *Decoder) Resolve(name string) vdom.Tag {
	if name == vdom.Fragment.String() {
		return vdom.Fragment
	}
	if c, ok := d.registry.Lookup(name); ok {
		return c
	}
	return vdom.HostTag(name)
}

// decodeState is the per-document state of one Decode call.
type decodeState struct {
	*Decoder
	nodes  int
	active map[*yaml.Node]bool // elements and lists being decoded
}

// enter checks the limits before n is decoded and marks it in progress.
// The returned func must be called when n is done.
func (d *decodeState) enter(n *yaml.Node, path string, depth int) (func(), error) {
	if depth > d.maxDepth {
		return nil, errors.New("E106").At(n.Line, n.Column).WithPath(pathOrRoot(path))
	}
	if d.active[n] {
		return nil, errors.New("E108").At(n.Line, n.Column).WithPath(pathOrRoot(path))
	}
	if err := d.count(n, path); err != nil {
		return nil, err
	}
	d.active[n] = true
	return func() { delete(d.active, n) }, nil
}

func (d *decodeState) count(n *yaml.Node, path string) error {
	d.nodes++
	if d.nodes > d.maxNodes {
		return errors.New("E107").
			At(n.Line, n.Column).
			WithPath(pathOrRoot(path)).
			WithDetail(fmt.Sprintf("The document expands to more than %d nodes.", d.maxNodes))
	}
	return nil
}

func (d *decodeState) element(n *yaml.Node, path string, depth int) (*vdom.VNode, error) {
	leave, err := d.enter(n, path, depth)
	if err != nil {
		return nil, err
	}
	defer leave()

	var (
		tagName  string
		hasTag   bool
		key      *yaml.Node
		props    vdom.Props
		children []any
	)

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], resolve(n.Content[i+1])
		switch k.Value {
		case fieldTag:
			if v.Kind != yaml.ScalarNode || isNull(v) || v.Value == "" {
				return nil, errors.New("E102").At(v.Line, v.Column).WithPath(join(path, fieldTag))
			}
			tagName, hasTag = v.Value, true
		case fieldKey:
			key = v
		case fieldProps:
			p, err := decodeProps(v, join(path, fieldProps))
			if err != nil {
				return nil, err
			}
			props = p
		case fieldChildren:
			c, err := d.children(v, join(path, fieldChildren), depth)
			if err != nil {
				return nil, err
			}
			children = c
		default:
			return nil, errors.New("E104").
				At(k.Line, k.Column).
				WithPath(join(path, k.Value)).
				WithDetail(fmt.Sprintf("Unknown element field %q; attributes belong under props.", k.Value))
		}
	}

	if !hasTag {
		return nil, errors.New("E102").At(n.Line, n.Column).WithPath(pathOrRoot(path))
	}

	if key != nil && !isNull(key) {
		var v any
		if err := key.Decode(&v); err != nil {
			return nil, errors.New("E104").At(key.Line, key.Column).WithPath(join(path, fieldKey)).Wrap(err)
		}
		if props == nil {
			props = vdom.Props{}
		}
		props["key"] = v
	}

	return vdom.CreateElement(d.Resolve(tagName), props, children), nil
}

func (d *decodeState) children(n *yaml.Node, path string, depth int) ([]any, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		child, err := d.child(n, index(path, 0), depth)
		if err != nil {
			return nil, err
		}
		return []any{child}, nil
	}
	leave, err := d.enter(n, path, depth)
	if err != nil {
		return nil, err
	}
	defer leave()

	children := make([]any, 0, len(n.Content))
	for i, c := range n.Content {
		child, err := d.child(resolve(c), index(path, i), depth)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func (d *decodeState) child(n *yaml.Node, path string, depth int) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		node, err := d.element(n, path, depth+1)
		if err != nil {
			return nil, err
		}
		return node, nil
	case yaml.SequenceNode:
		// Nested lists stay nested; consumers flatten them.
		return d.children(n, path, depth+1)
	case yaml.ScalarNode:
		if err := d.count(n, path); err != nil {
			return nil, err
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, errors.New("E103").At(n.Line, n.Column).WithPath(path).Wrap(err)
		}
		return v, nil
	default:
		return nil, errors.New("E103").At(n.Line, n.Column).WithPath(path)
	}
}

func decodeProps(n *yaml.Node, path string) (vdom.Props, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, errors.New("E104").At(n.Line, n.Column).WithPath(path)
	}
	var m map[string]any
	if err := n.Decode(&m); err != nil {
		return nil, errors.New("E104").At(n.Line, n.Column).WithPath(path).Wrap(err)
	}
	return vdom.Props(m), nil
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func pathOrRoot(path string) string {
	if path == "" {
		return "$"
	}
	return path
}
