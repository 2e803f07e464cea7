package vdom

import "testing"

func BenchmarkElementCreation(b *testing.B) {
	b.Run("simple div", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Div(Props{"class": "card"})
		}
	})

	b.Run("with children", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Div(Props{"class": "card"},
				H1(nil, "Title"),
				P(nil, "Content"),
			)
		}
	})

	b.Run("with defaults", func(b *testing.B) {
		card := Func("Card", nil).WithDefaults(Props{"variant": "plain", "elevation": 1})
		for i := 0; i < b.N; i++ {
			_ = H(card, Props{"variant": "wide"}, "body")
		}
	})

	b.Run("complex card", func(b *testing.B) {
		handler := func() {}
		for i := 0; i < b.N; i++ {
			_ = Div(Props{"class": "card"},
				Header(nil,
					H2(nil, "Card Title"),
				),
				Main(nil,
					P(nil, "Card content goes here"),
					P(nil, "More content"),
				),
				Footer(nil,
					Button(Attrs(OnClick(handler)), "Save"),
					Button(Attrs(OnClick(handler)), "Cancel"),
				),
			)
		}
	})
}

func BenchmarkDeepTreeCreation(b *testing.B) {
	b.Run("depth 5", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = createDeepTree(5)
		}
	})

	b.Run("depth 10", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = createDeepTree(10)
		}
	})
}

func createDeepTree(depth int) *VNode {
	if depth == 0 {
		return Text("Leaf")
	}
	return Div(Props{"class": "level"}, createDeepTree(depth-1))
}

func BenchmarkWideTreeCreation(b *testing.B) {
	b.Run("10 children", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = createWideTree(10)
		}
	})

	b.Run("100 children", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = createWideTree(100)
		}
	})
}

func createWideTree(width int) *VNode {
	children := make([]*VNode, width)
	for i := 0; i < width; i++ {
		children[i] = Li(Props{"key": i}, "Item ", i)
	}
	return Ul(nil, children)
}

func BenchmarkCoerce(b *testing.B) {
	b.Run("string", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Coerce("text")
		}
	})

	b.Run("unattached node", func(b *testing.B) {
		node := Div(nil)
		for i := 0; i < b.N; i++ {
			_ = Coerce(node)
		}
	})

	b.Run("attached node", func(b *testing.B) {
		node := Div(nil)
		node.Commit("host")
		for i := 0; i < b.N; i++ {
			_ = Coerce(node)
		}
	})
}

func BenchmarkWalk(b *testing.B) {
	tree := createWideTree(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Walk(tree, func(*VNode, int) bool { return true })
	}
}
