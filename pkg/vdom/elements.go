package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Document structure elements

func Html(props Props, children ...any) *VNode  { return H(HostTag("html"), props, children...) }
func Head(props Props, children ...any) *VNode  { return H(HostTag("head"), props, children...) }
func Body(props Props, children ...any) *VNode  { return H(HostTag("body"), props, children...) }
func Title(props Props, children ...any) *VNode { return H(HostTag("title"), props, children...) }
func Meta(props Props, children ...any) *VNode  { return H(HostTag("meta"), props, children...) }
func Link(props Props, children ...any) *VNode  { return H(HostTag("link"), props, children...) }
func Base(props Props, children ...any) *VNode  { return H(HostTag("base"), props, children...) }

// Content sectioning elements

func Header(props Props, children ...any) *VNode  { return H(HostTag("header"), props, children...) }
func Footer(props Props, children ...any) *VNode  { return H(HostTag("footer"), props, children...) }
func Main(props Props, children ...any) *VNode    { return H(HostTag("main"), props, children...) }
func Nav(props Props, children ...any) *VNode     { return H(HostTag("nav"), props, children...) }
func Section(props Props, children ...any) *VNode { return H(HostTag("section"), props, children...) }
func Article(props Props, children ...any) *VNode { return H(HostTag("article"), props, children...) }
func Aside(props Props, children ...any) *VNode   { return H(HostTag("aside"), props, children...) }
func Address(props Props, children ...any) *VNode { return H(HostTag("address"), props, children...) }
func H1(props Props, children ...any) *VNode      { return H(HostTag("h1"), props, children...) }
func H2(props Props, children ...any) *VNode      { return H(HostTag("h2"), props, children...) }
func H3(props Props, children ...any) *VNode      { return H(HostTag("h3"), props, children...) }
func H4(props Props, children ...any) *VNode      { return H(HostTag("h4"), props, children...) }
func H5(props Props, children ...any) *VNode      { return H(HostTag("h5"), props, children...) }
func H6(props Props, children ...any) *VNode      { return H(HostTag("h6"), props, children...) }
func Hgroup(props Props, children ...any) *VNode  { return H(HostTag("hgroup"), props, children...) }

// Text content elements

func Div(props Props, children ...any) *VNode        { return H(HostTag("div"), props, children...) }
func P(props Props, children ...any) *VNode          { return H(HostTag("p"), props, children...) }
func Span(props Props, children ...any) *VNode       { return H(HostTag("span"), props, children...) }
func Pre(props Props, children ...any) *VNode        { return H(HostTag("pre"), props, children...) }
func Blockquote(props Props, children ...any) *VNode { return H(HostTag("blockquote"), props, children...) }
func Ul(props Props, children ...any) *VNode         { return H(HostTag("ul"), props, children...) }
func Ol(props Props, children ...any) *VNode         { return H(HostTag("ol"), props, children...) }
func Li(props Props, children ...any) *VNode         { return H(HostTag("li"), props, children...) }
func Dl(props Props, children ...any) *VNode         { return H(HostTag("dl"), props, children...) }
func Dt(props Props, children ...any) *VNode         { return H(HostTag("dt"), props, children...) }
func Dd(props Props, children ...any) *VNode         { return H(HostTag("dd"), props, children...) }
func Hr(props Props, children ...any) *VNode         { return H(HostTag("hr"), props, children...) }
func Figure(props Props, children ...any) *VNode     { return H(HostTag("figure"), props, children...) }
func Figcaption(props Props, children ...any) *VNode { return H(HostTag("figcaption"), props, children...) }

// Inline text semantics

func A(props Props, children ...any) *VNode      { return H(HostTag("a"), props, children...) }
func Strong(props Props, children ...any) *VNode { return H(HostTag("strong"), props, children...) }
func Em(props Props, children ...any) *VNode     { return H(HostTag("em"), props, children...) }
func B(props Props, children ...any) *VNode      { return H(HostTag("b"), props, children...) }
func I(props Props, children ...any) *VNode      { return H(HostTag("i"), props, children...) }
func U(props Props, children ...any) *VNode      { return H(HostTag("u"), props, children...) }
func S(props Props, children ...any) *VNode      { return H(HostTag("s"), props, children...) }
func Small(props Props, children ...any) *VNode  { return H(HostTag("small"), props, children...) }
func Mark(props Props, children ...any) *VNode   { return H(HostTag("mark"), props, children...) }
func Sub(props Props, children ...any) *VNode    { return H(HostTag("sub"), props, children...) }
func Sup(props Props, children ...any) *VNode    { return H(HostTag("sup"), props, children...) }
func Code(props Props, children ...any) *VNode   { return H(HostTag("code"), props, children...) }
func Kbd(props Props, children ...any) *VNode    { return H(HostTag("kbd"), props, children...) }
func Samp(props Props, children ...any) *VNode   { return H(HostTag("samp"), props, children...) }
func Var(props Props, children ...any) *VNode    { return H(HostTag("var"), props, children...) }
func Abbr(props Props, children ...any) *VNode   { return H(HostTag("abbr"), props, children...) }
func Time_(props Props, children ...any) *VNode  { return H(HostTag("time"), props, children...) }
func Cite(props Props, children ...any) *VNode   { return H(HostTag("cite"), props, children...) }
func Q(props Props, children ...any) *VNode      { return H(HostTag("q"), props, children...) }
func Dfn(props Props, children ...any) *VNode    { return H(HostTag("dfn"), props, children...) }
func Ruby(props Props, children ...any) *VNode   { return H(HostTag("ruby"), props, children...) }
func Rt(props Props, children ...any) *VNode     { return H(HostTag("rt"), props, children...) }
func Rp(props Props, children ...any) *VNode     { return H(HostTag("rp"), props, children...) }
func Bdi(props Props, children ...any) *VNode    { return H(HostTag("bdi"), props, children...) }
func Bdo(props Props, children ...any) *VNode    { return H(HostTag("bdo"), props, children...) }

// DataElement creates a <data> HTML element.
// Note: For data-* attributes, use Data(key, value) from attributes.go instead.
func DataElement(props Props, children ...any) *VNode { return H(HostTag("data"), props, children...) }
func Br(props Props, children ...any) *VNode          { return H(HostTag("br"), props, children...) }
func Wbr(props Props, children ...any) *VNode         { return H(HostTag("wbr"), props, children...) }

// Form elements

func Form(props Props, children ...any) *VNode     { return H(HostTag("form"), props, children...) }
func Input(props Props, children ...any) *VNode    { return H(HostTag("input"), props, children...) }
func Textarea(props Props, children ...any) *VNode { return H(HostTag("textarea"), props, children...) }
func Select(props Props, children ...any) *VNode   { return H(HostTag("select"), props, children...) }
func Option(props Props, children ...any) *VNode   { return H(HostTag("option"), props, children...) }
func Optgroup(props Props, children ...any) *VNode { return H(HostTag("optgroup"), props, children...) }
func Button(props Props, children ...any) *VNode   { return H(HostTag("button"), props, children...) }
func Label(props Props, children ...any) *VNode    { return H(HostTag("label"), props, children...) }
func Fieldset(props Props, children ...any) *VNode { return H(HostTag("fieldset"), props, children...) }
func Legend(props Props, children ...any) *VNode   { return H(HostTag("legend"), props, children...) }
func Datalist(props Props, children ...any) *VNode { return H(HostTag("datalist"), props, children...) }
func Output(props Props, children ...any) *VNode   { return H(HostTag("output"), props, children...) }
func Progress(props Props, children ...any) *VNode { return H(HostTag("progress"), props, children...) }
func Meter(props Props, children ...any) *VNode    { return H(HostTag("meter"), props, children...) }

// Table elements

func Table(props Props, children ...any) *VNode    { return H(HostTag("table"), props, children...) }
func Thead(props Props, children ...any) *VNode    { return H(HostTag("thead"), props, children...) }
func Tbody(props Props, children ...any) *VNode    { return H(HostTag("tbody"), props, children...) }
func Tfoot(props Props, children ...any) *VNode    { return H(HostTag("tfoot"), props, children...) }
func Tr(props Props, children ...any) *VNode       { return H(HostTag("tr"), props, children...) }
func Th(props Props, children ...any) *VNode       { return H(HostTag("th"), props, children...) }
func Td(props Props, children ...any) *VNode       { return H(HostTag("td"), props, children...) }
func Caption(props Props, children ...any) *VNode  { return H(HostTag("caption"), props, children...) }
func Colgroup(props Props, children ...any) *VNode { return H(HostTag("colgroup"), props, children...) }
func Col(props Props, children ...any) *VNode      { return H(HostTag("col"), props, children...) }

// Media elements

func Img(props Props, children ...any) *VNode     { return H(HostTag("img"), props, children...) }
func Picture(props Props, children ...any) *VNode { return H(HostTag("picture"), props, children...) }
func Source(props Props, children ...any) *VNode  { return H(HostTag("source"), props, children...) }
func Video(props Props, children ...any) *VNode   { return H(HostTag("video"), props, children...) }
func Audio(props Props, children ...any) *VNode   { return H(HostTag("audio"), props, children...) }
func Track(props Props, children ...any) *VNode   { return H(HostTag("track"), props, children...) }
func Iframe(props Props, children ...any) *VNode  { return H(HostTag("iframe"), props, children...) }
func Embed(props Props, children ...any) *VNode   { return H(HostTag("embed"), props, children...) }
func Object(props Props, children ...any) *VNode  { return H(HostTag("object"), props, children...) }
func Param(props Props, children ...any) *VNode   { return H(HostTag("param"), props, children...) }
func Canvas(props Props, children ...any) *VNode  { return H(HostTag("canvas"), props, children...) }
func Svg(props Props, children ...any) *VNode     { return H(HostTag("svg"), props, children...) }
func Math(props Props, children ...any) *VNode    { return H(HostTag("math"), props, children...) }
func Map_(props Props, children ...any) *VNode    { return H(HostTag("map"), props, children...) }
func Area(props Props, children ...any) *VNode    { return H(HostTag("area"), props, children...) }

// Interactive elements

func Details(props Props, children ...any) *VNode { return H(HostTag("details"), props, children...) }
func Summary(props Props, children ...any) *VNode { return H(HostTag("summary"), props, children...) }
func Dialog(props Props, children ...any) *VNode  { return H(HostTag("dialog"), props, children...) }
func Menu(props Props, children ...any) *VNode    { return H(HostTag("menu"), props, children...) }

// Scripting elements

func Script(props Props, children ...any) *VNode   { return H(HostTag("script"), props, children...) }
func Noscript(props Props, children ...any) *VNode { return H(HostTag("noscript"), props, children...) }
func Template(props Props, children ...any) *VNode { return H(HostTag("template"), props, children...) }
func Slot(props Props, children ...any) *VNode     { return H(HostTag("slot"), props, children...) }
func Style(props Props, children ...any) *VNode    { return H(HostTag("style"), props, children...) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, props Props, children ...any) *VNode {
	return H(HostTag(tag), props, children...)
}
