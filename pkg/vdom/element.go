package vdom

import "fmt"

// CreateElement creates a VNode for tag with the given props and children.
//
// A nil props is replaced by a fresh map. A non-nil children slice is
// stored as props["children"], replacing any previous value. For
// *Component tags, DefaultProps fill every key absent from props. The
// node key is read from props["key"] and left in place.
//
// props is written to; do not share one props map between elements.
func CreateElement(tag Tag, props Props, children []any) *VNode {
	if props == nil {
		props = Props{}
	}
	if children != nil {
		props[ChildrenKey] = children
	}
	if c, ok := tag.(*Component); ok && c != nil {
		mergeDefaults(props, c.DefaultProps)
	}
	return newVNode(tag, props, nil, keyOf(props))
}

// H is CreateElement with children as trailing arguments.
//
// A single []any or []*VNode argument is flattened, so
// H(t, p, "a", "b") and H(t, p, []any{"a", "b"}) produce the same
// children. A single nil argument means no children.
func H(tag Tag, props Props, children ...any) *VNode {
	return CreateElement(tag, props, collectChildren(children))
}

func collectChildren(args []any) []any {
	switch len(args) {
	case 0:
		return nil
	case 1:
		switch v := args[0].(type) {
		case nil:
			return nil
		case []any:
			return v
		case []*VNode:
			children := make([]any, len(v))
			for i, n := range v {
				children[i] = n
			}
			return children
		default:
			return []any{v}
		}
	default:
		children := make([]any, len(args))
		copy(children, args)
		return children
	}
}

// mergeDefaults copies every default whose key is absent from props.
// A key present with a nil value counts as set.
func mergeDefaults(props, defaults Props) {
	for k, v := range defaults {
		if _, ok := props[k]; !ok {
			props[k] = v
		}
	}
}

func keyOf(props Props) string {
	switch k := props["key"].(type) {
	case nil:
		return ""
	case string:
		return k
	default:
		return fmt.Sprint(k)
	}
}
