package vdom

import (
	"reflect"
	"testing"
)

func TestCoerceText(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"string", "hello"},
		{"empty string", ""},
		{"int", 42},
		{"negative int", -3},
		{"int64", int64(1) << 40},
		{"uint8", uint8(7)},
		{"float64", 3.5},
		{"float32", float32(0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := CoerceNode(tt.value)
			second := CoerceNode(tt.value)
			if first == nil || second == nil {
				t.Fatalf("Coerce(%v) did not produce a node", tt.value)
			}
			if first == second {
				t.Error("each call should allocate a new node")
			}
			for _, n := range []*VNode{first, second} {
				if n.Tag != nil {
					t.Errorf("Tag = %v, want nil", n.Tag)
				}
				if n.Text != tt.value {
					t.Errorf("Text = %v (%T), want %v (%T)", n.Text, n.Text, tt.value, tt.value)
				}
				if n.Key != "" {
					t.Errorf("Key = %q, want empty", n.Key)
				}
				if !n.IsText() {
					t.Error("IsText() = false")
				}
			}
		})
	}
}

func TestCoerceBoolean(t *testing.T) {
	for _, b := range []bool{true, false} {
		if got := Coerce(b); got != nil {
			t.Errorf("Coerce(%v) = %v, want nil", b, got)
		}
	}
}

func TestCoerceSharedEmptyProps(t *testing.T) {
	a := CoerceNode("a")
	b := CoerceNode(1)
	c := Text("c")

	for _, n := range []*VNode{a, b, c} {
		if n.Props != nil {
			t.Fatalf("text node props = %v, want EmptyProps", n.Props)
		}
		if reflect.ValueOf(n.Props).Pointer() != reflect.ValueOf(EmptyProps).Pointer() {
			t.Error("text nodes should share EmptyProps")
		}
	}

	// Building elements around text nodes never writes into EmptyProps.
	Div(nil, a, b, c, "d")
	Coerce(Div(nil, "x"))
	if len(EmptyProps) != 0 {
		t.Errorf("EmptyProps = %v, want empty", EmptyProps)
	}
}

func TestCoerceCloneOnReuse(t *testing.T) {
	t.Run("attached node is cloned", func(t *testing.T) {
		n := H(HostTag("li"), Props{"key": "a", "class": "x"}, "text")
		n.el = struct{ id int }{1}
		n.children = []*VNode{Text("text")}
		n.component = "instance"

		got := CoerceNode(n)
		if got == nil {
			t.Fatal("Coerce returned nil")
		}
		if got == n {
			t.Fatal("attached node should be cloned")
		}
		if got.Tag != n.Tag || got.Key != n.Key || got.Text != n.Text {
			t.Errorf("clone = %+v, want fields of %+v", got, n)
		}
		if reflect.ValueOf(got.Props).Pointer() != reflect.ValueOf(n.Props).Pointer() {
			t.Error("clone should share the original props")
		}
		if got.el != nil || got.children != nil || got.component != nil {
			t.Error("clone should start unattached")
		}
		if n.el == nil || n.component == nil || n.children == nil {
			t.Error("original bookkeeping should be untouched")
		}
	})

	t.Run("unattached node is returned as is", func(t *testing.T) {
		n := H(HostTag("li"), nil, "text")
		if got := Coerce(n); got != n {
			t.Errorf("Coerce() = %p, want %p", got, n)
		}
	})

	t.Run("attached text node keeps text", func(t *testing.T) {
		n := Text("hi")
		n.Commit("host")
		got := CoerceNode(n)
		if got == n || got.Text != "hi" || got.Tag != nil {
			t.Errorf("clone = %+v", got)
		}
	})

	t.Run("released node is not cloned", func(t *testing.T) {
		n := Div(nil)
		n.Commit("host")
		n.Release()
		if got := Coerce(n); got != n {
			t.Error("released node should be returned as is")
		}
	})
}

func TestCoerceOther(t *testing.T) {
	var nilNode *VNode
	type custom struct{ tag string }
	c := &custom{tag: "div"}
	m := map[string]any{"tag": "div"}

	if got := Coerce(nil); got != nil {
		t.Errorf("Coerce(nil) = %v, want nil", got)
	}
	if got := Coerce(nilNode); got != any(nilNode) {
		t.Errorf("Coerce(typed nil) = %v, want typed nil", got)
	}
	if got := Coerce(c); got != any(c) {
		t.Errorf("Coerce(custom) = %v, want same value", got)
	}
	if got := Coerce(m); reflect.ValueOf(got).Pointer() != reflect.ValueOf(m).Pointer() {
		t.Error("Coerce(map) should return the same map")
	}
	if CoerceNode(c) != nil {
		t.Error("CoerceNode(custom) should be nil")
	}
	if CoerceNode(true) != nil {
		t.Error("CoerceNode(true) should be nil")
	}
}

func TestCoerceNamedKinds(t *testing.T) {
	type label string
	type count int
	type ratio float32
	type flag bool

	tests := []struct {
		name  string
		value any
	}{
		{"named string", label("hi")},
		{"named int", count(3)},
		{"named float", ratio(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := CoerceNode(tt.value)
			if n == nil || !n.IsText() {
				t.Fatalf("Coerce(%v) = %v, want a text node", tt.value, n)
			}
			if n.Text != tt.value {
				t.Errorf("Text = %v (%T), want %v (%T)", n.Text, n.Text, tt.value, tt.value)
			}
		})
	}

	if got := Coerce(flag(true)); got != nil {
		t.Errorf("Coerce(flag) = %v, want nil", got)
	}
}

func TestTextf(t *testing.T) {
	node := Textf("Count: %d", 42)
	if node.Text != "Count: 42" {
		t.Errorf("Text = %v, want 'Count: 42'", node.Text)
	}
	if !node.IsText() {
		t.Error("Textf should build a text node")
	}
}
