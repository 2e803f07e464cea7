// Package vdom builds virtual nodes for the reconciler.
//
// A VNode is the uniform description of one position in a UI tree:
// an element, a component, a fragment, or a text node. This package is
// the construction boundary only. It turns authored input into VNodes
// and never diffs, mounts, or mutates a rendered tree.
//
// # Core Types
//
// VNode is the node record. Tag is a closed union of HostTag, the
// Fragment marker, and *Component. Props holds attributes and the
// normalized children list under the "children" key.
//
// # Element API
//
// Elements are created with H or CreateElement:
//
//	H(HostTag("ul"), Props{"class": "list"},
//	    H(HostTag("li"), Props{"key": "a"}, "first"),
//	    H(HostTag("li"), Props{"key": "b"}, "second"),
//	)
//
// The host shorthands (Div, Span, Li, ...) wrap H for common tags.
//
// # Coercion
//
// Children stay as authored in props. The reconciler passes each child
// through Coerce, which turns strings and numbers into text nodes,
// suppresses booleans, and clones nodes that were already committed
// to a tree.
//
// # Reconciler Bookkeeping
//
// Every VNode carries unexported bookkeeping (rendered children, the
// committed host handle, and the component instance). It starts empty
// and is written only through Commit, SetRendered, SetInstance and
// Release, which belong to the reconciler.
package vdom
