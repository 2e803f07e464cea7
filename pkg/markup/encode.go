package markup

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/vango-dev/vnode/pkg/vdom"
)

// Snapshot is a plain, serializable view of a node tree.
type Snapshot struct {
	Kind     string         `json:"kind" yaml:"kind"`
	Tag      string         `json:"tag,omitempty" yaml:"tag,omitempty"`
	Key      string         `json:"key,omitempty" yaml:"key,omitempty"`
	Text     any            `json:"text,omitempty" yaml:"text,omitempty"`
	Props    map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
	Children []*Snapshot    `json:"children,omitempty" yaml:"children,omitempty"`
}

// Encode snapshots v. The value is coerced first, so booleans and nil
// encode as nil and primitives as text snapshots. Children are coerced
// and nested []any or []*vdom.VNode lists flattened; values that coerce
// to nothing are dropped.
//
// Prop values that cannot be serialized (functions, channels) are
// replaced by their type name. The key prop is reported in Key only.
func Encode(v any) *Snapshot {
	node := vdom.CoerceNode(v)
	if node == nil {
		return nil
	}
	return encodeNode(node)
}

func encodeNode(node *vdom.VNode) *Snapshot {
	s := &Snapshot{
		Kind: node.Kind().String(),
		Key:  node.Key,
	}
	if node.IsText() {
		s.Text = node.Text
		return s
	}
	s.Tag = vdom.TagName(node.Tag)
	for k, v := range node.Props {
		if k == vdom.ChildrenKey || k == "key" {
			continue
		}
		if s.Props == nil {
			s.Props = make(map[string]any, len(node.Props))
		}
		s.Props[k] = plain(v)
	}
	s.Children = encodeChildren(node.Children(), nil)
	return s
}

func encodeChildren(children []any, out []*Snapshot) []*Snapshot {
	for _, child := range children {
		switch list := child.(type) {
		case []any:
			out = encodeChildren(list, out)
			continue
		case []*vdom.VNode:
			for _, n := range list {
				out = encodeChildren([]any{n}, out)
			}
			continue
		}
		if n := vdom.CoerceNode(child); n != nil {
			out = append(out, encodeNode(n))
		}
	}
	return out
}

// plain replaces values encoding/json and yaml cannot marshal.
func plain(v any) any {
	switch x := v.(type) {
	case nil, bool, string, int, int64, float64:
		return v
	case *vdom.VNode:
		return encodeNode(x)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = plain(e)
		}
		return out
	case map[any]any:
		// YAML mappings with non-string keys decode to this shape.
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = plain(e)
		}
		return out
	case vdom.Props:
		return plain(map[string]any(x))
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%T", v)
	default:
		return v
	}
}

// Count returns how many snapshots of each kind the tree holds.
func (s *Snapshot) Count() map[string]int {
	counts := make(map[string]int)
	s.count(counts)
	return counts
}

func (s *Snapshot) count(counts map[string]int) {
	if s == nil {
		return
	}
	counts[s.Kind]++
	for _, c := range s.Children {
		c.count(counts)
	}
}

// PropNames returns the snapshot's prop names in sorted order.
func (s *Snapshot) PropNames() []string {
	names := make([]string, 0, len(s.Props))
	for k := range s.Props {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
