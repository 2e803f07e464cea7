// Package errors provides structured, actionable errors for vnode tooling.
//
// The construction layer in pkg/vdom never fails. Errors come from the
// surfaces around it: decoding markup documents, loading component
// definitions and configuration, and the HTTP service.
//
// # Error Categories
//
//   - markup: a description document could not be turned into nodes
//   - component: a component definition is invalid
//   - config: vnode.json could not be loaded or is invalid
//   - request: an HTTP request was malformed
//
// # Error Codes
//
// Each error has a code (e.g., "E102") that maps to a short message, a
// detailed explanation and a suggestion.
//
// # Usage
//
//	err := errors.New("E102").
//	    At(4, 3).
//	    WithPath("children[1]")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E102: Element is missing a tag
//	//
//	//   line 4, column 3 (children[1])
//	//
//	//   Every element mapping needs a "tag" field.
//	//
//	//   Hint: Add tag: div, or write the child as a plain string.
package errors
