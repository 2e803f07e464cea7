package vdom

// Reconciler bookkeeping.
//
// The accessors below are safe for anyone to call. The writers belong to
// the reconciler: nothing in this package calls them, and no other code
// should. A node's fields here are nil from construction until the
// reconciler commits it.

// Attached returns true once the node has been committed to a host tree.
// It is the only check Coerce uses to decide whether a node must be copied.
func (v *VNode) Attached() bool {
	return v != nil && v.el != nil
}

// El returns the host handle the node was committed to, or nil.
func (v *VNode) El() any {
	if v == nil {
		return nil
	}
	return v.el
}

// Rendered returns the resolved child nodes recorded by the reconciler.
func (v *VNode) Rendered() []*VNode {
	if v == nil {
		return nil
	}
	return v.children
}

// Instance returns the component instance recorded by the reconciler.
func (v *VNode) Instance() any {
	if v == nil {
		return nil
	}
	return v.component
}

// Commit records the host handle the node was mounted as.
// A nil el is ignored; use Release to detach.
func (v *VNode) Commit(el any) {
	if el == nil {
		return
	}
	v.el = el
}

// SetRendered records the node's resolved children.
func (v *VNode) SetRendered(children []*VNode) {
	v.children = children
}

// SetInstance records the component instance rendering the node.
func (v *VNode) SetInstance(instance any) {
	v.component = instance
}

// Release clears all bookkeeping after the node is unmounted.
func (v *VNode) Release() {
	v.children = nil
	v.el = nil
	v.component = nil
}
