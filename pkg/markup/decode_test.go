package markup

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/vango-dev/vnode/internal/errors"
	"github.com/vango-dev/vnode/pkg/vdom"
)

const listDoc = `
tag: ul
props:
  class: list
children:
  - tag: li
    key: a
    children: [first]
  - tag: li
    props: {key: b}
    children: second
  - true
  - 42
  - null
`

func TestDecode(t *testing.T) {
	node, err := NewDecoder(nil).DecodeBytes([]byte(listDoc))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if node.Tag != vdom.Tag(vdom.HostTag("ul")) {
		t.Errorf("Tag = %v, want ul", node.Tag)
	}
	if node.Props["class"] != "list" {
		t.Errorf("class = %v, want list", node.Props["class"])
	}

	children := node.Children()
	if len(children) != 5 {
		t.Fatalf("children len = %d, want 5", len(children))
	}

	first, ok := children[0].(*vdom.VNode)
	if !ok {
		t.Fatalf("children[0] = %T, want *vdom.VNode", children[0])
	}
	if first.Key != "a" || first.Props["key"] != "a" {
		t.Errorf("first key = %q, props key = %v", first.Key, first.Props["key"])
	}
	if !reflect.DeepEqual(first.Children(), []any{"first"}) {
		t.Errorf("first children = %v", first.Children())
	}

	second := children[1].(*vdom.VNode)
	if second.Key != "b" {
		t.Errorf("second key = %q, want b", second.Key)
	}
	if !reflect.DeepEqual(second.Children(), []any{"second"}) {
		t.Errorf("single child should be wrapped, got %v", second.Children())
	}

	if children[2] != true || children[3] != 42 || children[4] != nil {
		t.Errorf("scalars = %v, %v, %v; want raw values", children[2], children[3], children[4])
	}
}

func TestDecodeJSON(t *testing.T) {
	doc := `{"tag": "p", "props": {"id": "x"}, "children": ["a", 1.5, false]}`

	node, err := NewDecoder(nil).DecodeBytes([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if node.Props["id"] != "x" {
		t.Errorf("id = %v", node.Props["id"])
	}
	if !reflect.DeepEqual(node.Children(), []any{"a", 1.5, false}) {
		t.Errorf("children = %v", node.Children())
	}
}

func TestDecodeResolvesTags(t *testing.T) {
	reg := NewRegistry()
	badge := vdom.Func("Badge", nil).WithDefaults(vdom.Props{"tone": "neutral"})
	if err := reg.Register(badge); err != nil {
		t.Fatal(err)
	}

	doc := `
tag: Fragment
children:
  - {tag: Badge, props: {label: new}}
  - {tag: Badge, props: {tone: loud}}
  - {tag: badge}
`
	node, err := NewDecoder(reg).DecodeBytes([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if node.Kind() != vdom.KindFragment {
		t.Errorf("root kind = %v, want Fragment", node.Kind())
	}

	children := node.Children()
	b1 := children[0].(*vdom.VNode)
	if b1.Tag != vdom.Tag(badge) {
		t.Errorf("Tag = %v, want Badge component", b1.Tag)
	}
	if b1.Props["tone"] != "neutral" || b1.Props["label"] != "new" {
		t.Errorf("props = %v, want defaults merged", b1.Props)
	}
	if b2 := children[1].(*vdom.VNode); b2.Props["tone"] != "loud" {
		t.Errorf("explicit tone = %v, want loud", b2.Props["tone"])
	}
	if b3 := children[2].(*vdom.VNode); b3.Kind() != vdom.KindElement {
		t.Errorf("lowercase badge kind = %v, want host element", b3.Kind())
	}
}

func TestDecodeNestedLists(t *testing.T) {
	doc := `
tag: div
children:
  - a
  - [b, [c]]
`
	node, err := NewDecoder(nil).DecodeBytes([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	want := []any{"a", []any{"b", []any{"c"}}}
	if !reflect.DeepEqual(node.Children(), want) {
		t.Errorf("children = %#v, want %#v", node.Children(), want)
	}
}

func TestDecodeAliases(t *testing.T) {
	doc := `
tag: ul
children:
  - &item {tag: li, children: [same]}
  - *item
`
	node, err := NewDecoder(nil).DecodeBytes([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	children := node.Children()
	if len(children) != 2 {
		t.Fatalf("children len = %d, want 2", len(children))
	}
	a, b := children[0].(*vdom.VNode), children[1].(*vdom.VNode)
	if a == b {
		t.Error("each alias use should build its own node")
	}
	if a.Tag != b.Tag {
		t.Errorf("tags differ: %v vs %v", a.Tag, b.Tag)
	}
}

// doublingDoc builds a document whose list anchors each reference the
// previous one twice, so levels anchors expand to about 2^levels values.
func doublingDoc(levels int) string {
	var b strings.Builder
	b.WriteString("tag: div\nchildren:\n  - &a0 [x, x]\n")
	for i := 1; i < levels; i++ {
		fmt.Fprintf(&b, "  - &a%d [*a%d, *a%d]\n", i, i-1, i-1)
	}
	return b.String()
}

func TestDecodeAliasCycles(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"self-referencing list", "tag: div\nchildren: &a [*a]\n"},
		{"list nested in itself", "tag: div\nchildren: &a [x, [y, *a]]\n"},
		{"element containing itself", "tag: div\nchildren:\n  - &el {tag: li, children: [*el]}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder(nil).DecodeBytes([]byte(tt.doc))
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Code != "E108" {
				t.Errorf("error = %v, want E108", err)
			}
		})
	}
}

func TestDecodeAliasExpansionLimit(t *testing.T) {
	// root + children list + a0 (list, 2 scalars) + a1 (list, 2 x a0)
	const twoLevelNodes = 1 + 1 + 3 + 7

	node, err := NewDecoder(nil, WithMaxNodes(twoLevelNodes)).DecodeBytes([]byte(doublingDoc(2)))
	if err != nil {
		t.Fatalf("Decode() within limit: %v", err)
	}
	if got := len(node.Children()); got != 2 {
		t.Errorf("children len = %d, want 2", got)
	}

	_, err = NewDecoder(nil, WithMaxNodes(twoLevelNodes-1)).DecodeBytes([]byte(doublingDoc(2)))
	if err == nil || !strings.HasPrefix(err.Error(), "E107") {
		t.Errorf("error = %v, want E107", err)
	}

	// A few hundred bytes that would expand to billions of values.
	doc := doublingDoc(40)
	if len(doc) > 2000 {
		t.Fatalf("document is %d bytes, want a small one", len(doc))
	}
	_, err = NewDecoder(nil).DecodeBytes([]byte(doc))
	if err == nil || !strings.HasPrefix(err.Error(), "E107") {
		t.Errorf("error = %v, want E107", err)
	}
}

func TestDecodeMaxDepthNestedLists(t *testing.T) {
	doc := "tag: div\nchildren: [[[[[x]]]]]\n"

	if _, err := NewDecoder(nil, WithMaxDepth(6)).DecodeBytes([]byte(doc)); err != nil {
		t.Fatalf("five list levels within limit 6: %v", err)
	}
	_, err := NewDecoder(nil, WithMaxDepth(3)).DecodeBytes([]byte(doc))
	if err == nil || !strings.HasPrefix(err.Error(), "E106") {
		t.Errorf("error = %v, want E106", err)
	}
}

func TestDecoderReusable(t *testing.T) {
	d := NewDecoder(nil, WithMaxNodes(5))
	for i := 0; i < 3; i++ {
		if _, err := d.DecodeBytes([]byte("tag: p\nchildren: [a, b]\n")); err != nil {
			t.Fatalf("decode %d: %v", i, err)
		}
	}
}

func TestDecodeNoChildren(t *testing.T) {
	node, err := NewDecoder(nil).DecodeBytes([]byte("tag: br"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if _, ok := node.Props["children"]; ok {
		t.Error("children key should be absent")
	}
	if node.Props == nil {
		t.Error("props should be a fresh map")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		code     string
		path     string
		wantLine int
	}{
		{"empty", "", "E105", "", 0},
		{"null root", "~", "E105", "", 1},
		{"scalar root", "hello", "E102", "", 1},
		{"invalid yaml", "tag: [", "E101", "", 0},
		{"missing tag", "props: {a: 1}", "E102", "$", 1},
		{"null tag", "tag: ~", "E102", "tag", 1},
		{"missing nested tag", "tag: ul\nchildren:\n  - {props: {}}\n", "E102", "children[0]", 3},
		{"props not mapping", "tag: div\nprops: [1, 2]\n", "E104", "props", 2},
		{"unknown field", "tag: div\nclass: x\n", "E104", "class", 2},
		{"nested props error", "tag: ul\nchildren:\n  - tag: li\n    props: 3\n", "E104", "children[0].props", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder(nil).DecodeBytes([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error %T is not *errors.Error", err)
			}
			if e.Code != tt.code {
				t.Errorf("Code = %s, want %s (%v)", e.Code, tt.code, err)
			}
			if tt.path != "" && e.Path != tt.path {
				t.Errorf("Path = %q, want %q", e.Path, tt.path)
			}
			if tt.wantLine > 0 {
				if e.Location == nil || e.Location.Line != tt.wantLine {
					t.Errorf("Location = %v, want line %d", e.Location, tt.wantLine)
				}
			}
		})
	}
}

func TestDecodeMaxDepth(t *testing.T) {
	var b strings.Builder
	b.WriteString("tag: div\n")
	indent := ""
	for i := 0; i < 5; i++ {
		b.WriteString(indent + "children:\n")
		indent += "  "
		b.WriteString(indent + "- tag: div\n")
		indent += "  "
	}

	if _, err := NewDecoder(nil, WithMaxDepth(10)).DecodeBytes([]byte(b.String())); err != nil {
		t.Fatalf("depth 6 within limit 10: %v", err)
	}

	_, err := NewDecoder(nil, WithMaxDepth(3)).DecodeBytes([]byte(b.String()))
	if err == nil || !strings.HasPrefix(err.Error(), "E106") {
		t.Errorf("error = %v, want E106", err)
	}
}

func TestResolve(t *testing.T) {
	reg := NewRegistry()
	card := vdom.Func("Card", nil)
	_ = reg.Register(card)
	d := NewDecoder(reg)

	if d.Resolve("Fragment") != vdom.Tag(vdom.Fragment) {
		t.Error("Fragment should resolve to the marker")
	}
	if d.Resolve("Card") != vdom.Tag(card) {
		t.Error("Card should resolve to the registered component")
	}
	if d.Resolve("section") != vdom.Tag(vdom.HostTag("section")) {
		t.Error("unknown names should resolve to host tags")
	}
}
