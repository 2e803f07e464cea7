package vdom

import "fmt"

// If returns child if condition is true, false otherwise.
// Coerce turns the false into nothing.
func If(condition bool, child any) any {
	if condition {
		return child
	}
	return false
}

// IfElse returns the first child if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() any) any {
	if condition {
		return fn()
	}
	return false
}

// Unless is the inverse of If.
func Unless(condition bool, child any) any {
	return If(!condition, child)
}

// Range maps a slice to a children list.
func Range[T any](items []T, fn func(item T, index int) any) []any {
	result := make([]any, 0, len(items))
	for i, item := range items {
		result = append(result, fn(item, i))
	}
	return result
}

// Repeat creates n children using the given function.
func Repeat(n int, fn func(i int) any) []any {
	if n <= 0 {
		return nil
	}
	result := make([]any, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, fn(i))
	}
	return result
}

// Group creates a Fragment node holding children.
func Group(children ...any) *VNode {
	return H(Fragment, nil, children...)
}

// Walk visits node and its authored descendants in pre-order.
// Nested []any and []*VNode lists are flattened and every child is passed through
// Coerce first; values that do not coerce to a node are skipped.
// Returning false from fn skips that subtree.
//
// Walk only reads nodes. Attached children are visited as their
// detached copies.
func Walk(node *VNode, fn func(n *VNode, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node *VNode, depth int, fn func(n *VNode, depth int) bool) {
	if node == nil || !fn(node, depth) {
		return
	}
	if node.IsText() {
		return
	}
	walkChildren(node.Children(), depth+1, fn)
}

func walkChildren(children []any, depth int, fn func(n *VNode, depth int) bool) {
	for _, child := range children {
		switch list := child.(type) {
		case []any:
			walkChildren(list, depth, fn)
		case []*VNode:
			for _, n := range list {
				walk(CoerceNode(n), depth, fn)
			}
		default:
			walk(CoerceNode(child), depth, fn)
		}
	}
}

// Count returns the number of nodes of each kind reachable through Walk.
func Count(node *VNode) map[VKind]int {
	counts := make(map[VKind]int)
	Walk(node, func(n *VNode, _ int) bool {
		counts[n.Kind()]++
		return true
	})
	return counts
}

// Key creates a key attribute for reconciliation.
// The key is converted to a string using fmt.Sprintf.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}
