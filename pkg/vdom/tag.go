package vdom

import "fmt"

// Tag identifies what a VNode renders as.
// The set of implementations is closed: HostTag, FragmentMarker and *Component.
type Tag interface {
	isTag()
}

// HostTag names a host element, e.g. "div".
type HostTag string

func (HostTag) isTag() {}

// FragmentMarker is the type of Fragment.
type FragmentMarker struct{}

func (FragmentMarker) isTag() {}

// Fragment groups children without introducing a host element.
// The reconciler inlines the children of a Fragment-tagged node into the parent.
var Fragment FragmentMarker

// Render returns the children from props unchanged.
func (FragmentMarker) Render(props Props) any {
	return props[ChildrenKey]
}

// String implements fmt.Stringer.
func (FragmentMarker) String() string {
	return "Fragment"
}

// Component is a user-defined rendering unit usable as a Tag.
type Component struct {
	// Name is used for display and registry lookup.
	Name string

	// Render produces the component's output from its props.
	Render func(props Props) any

	// DefaultProps are copied into props for every key the caller left absent.
	DefaultProps Props
}

func (*Component) isTag() {}

// Func creates a component from a render function.
func Func(name string, render func(props Props) any) *Component {
	return &Component{Name: name, Render: render}
}

// WithDefaults sets the component's default props and returns it.
func (c *Component) WithDefaults(defaults Props) *Component {
	c.DefaultProps = defaults
	return c
}

// String implements fmt.Stringer.
func (c *Component) String() string {
	if c == nil || c.Name == "" {
		return "Component"
	}
	return c.Name
}

// TagName returns a display name for tag. Text nodes (nil tag) return "#text".
func TagName(tag Tag) string {
	switch t := tag.(type) {
	case nil:
		return "#text"
	case HostTag:
		return string(t)
	case FragmentMarker:
		return t.String()
	case *Component:
		return t.String()
	default:
		return fmt.Sprintf("%T", tag)
	}
}
