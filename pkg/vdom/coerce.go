package vdom

import (
	"fmt"
	"reflect"
)

// Coerce normalizes an untrusted child value for the reconciler.
//
//   - bool: nil, so conditions render nothing
//   - string or any number: a new text node
//   - named string, number or bool types (type Label string): as their
//     underlying kind, keeping the original value in Text
//   - *VNode already committed to a tree: a detached copy
//   - anything else, including unattached nodes: returned unchanged
//
// Coerce never fails and never modifies its argument.
func Coerce(v any) any {
	switch x := v.(type) {
	case bool:
		return nil
	case string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return newVNode(nil, EmptyProps, x, "")
	case *VNode:
		// A node that was committed once must not share bookkeeping with a second position.
		if x != nil && x.Attached() {
			return newVNode(x.Tag, x.Props, x.Text, x.Key)
		}
		return v
	default:
		return coerceKind(v)
	}
}

// coerceKind handles named types whose underlying kind is a primitive.
func coerceKind(v any) any {
	if v == nil {
		return nil
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool:
		return nil
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return newVNode(nil, EmptyProps, v, "")
	default:
		return v
	}
}

// CoerceNode is Coerce for callers that only want nodes.
// It returns nil when the coerced value is not a non-nil *VNode.
func CoerceNode(v any) *VNode {
	n, _ := Coerce(v).(*VNode)
	return n
}

// Text creates a text node, the same node Coerce builds for a string.
func Text(content string) *VNode {
	return newVNode(nil, EmptyProps, content, "")
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}
