package vdom

// VKind is the node type discriminator derived from a node's tag.
type VKind uint8

const (
	KindText      VKind = iota // Tag is nil
	KindElement                // HostTag
	KindFragment               // Fragment marker
	KindComponent              // *Component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindElement:
		return "Element"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Props holds attributes, event handlers and the "children" list.
type Props map[string]any

// EmptyProps is the props value shared by every text node.
// It is a nil map: reads see an empty mapping and any write panics.
var EmptyProps Props

// ChildrenKey is the props key holding the normalized children.
const ChildrenKey = "children"

// Children returns the children list stored in props, or nil.
func (p Props) Children() []any {
	children, _ := p[ChildrenKey].([]any)
	return children
}

// VNode is the virtual DOM node.
//
// Key is "" both when props has no key and when props["key"] is "".
// Read props["key"] directly to tell the two apart.
type VNode struct {
	Tag   Tag    // nil for text nodes
	Props Props  // EmptyProps for text nodes
	Text  any    // string or number for text nodes, nil otherwise
	Key   string // Reconciliation key, "" when absent

	// Reconciler bookkeeping, nil until the reconciler writes it.
	children  []*VNode
	el        any
	component any
}

// newVNode is the single allocation site for VNode.
// Keep every construction path going through here so all nodes share one layout.
func newVNode(tag Tag, props Props, text any, key string) *VNode {
	return &VNode{
		Tag:       tag,
		Props:     props,
		Text:      text,
		Key:       key,
		children:  nil,
		el:        nil,
		component: nil,
	}
}

// Kind reports what the node renders as.
func (v *VNode) Kind() VKind {
	switch v.Tag.(type) {
	case nil:
		return KindText
	case HostTag:
		return KindElement
	case FragmentMarker:
		return KindFragment
	case *Component:
		return KindComponent
	default:
		return KindElement
	}
}

// IsText returns true for text nodes.
func (v *VNode) IsText() bool {
	return v != nil && v.Tag == nil
}

// Children returns the authored children held in the node's props.
func (v *VNode) Children() []any {
	if v == nil {
		return nil
	}
	return v.Props.Children()
}
