// Package markup decodes declarative element descriptions into VNodes.
//
// A description is a YAML (or JSON) document whose root is an element
// mapping:
//
//	tag: ul
//	props: {class: list}
//	children:
//	  - {tag: li, key: a, children: [first]}
//	  - {tag: Badge, props: {label: new}}
//	  - true
//	  - 42
//
// Every element is built with vdom.CreateElement, so children are kept
// exactly as authored. Booleans, numbers and strings are left for the
// consumer to coerce. The tag "Fragment" selects vdom.Fragment, names
// found in the Registry select that component, and anything else is a
// host tag.
//
// Encode turns a node back into a plain Snapshot tree suitable for JSON
// or YAML output, coercing each child on the way.
package markup
