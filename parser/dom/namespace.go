package dom

// Namespace is the small, closed set of namespace URIs the tree
// constructor ever assigns to an Element. https://dom.spec.whatwg.org/#concept-element-namespace
type Namespace uint8

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

func (n Namespace) String() string {
	switch n {
	case Htmlns:
		return "http://www.w3.org/1999/xhtml"
	case Mathmlns:
		return "http://www.w3.org/1998/Math/MathML"
	case Svgns:
		return "http://www.w3.org/2000/svg"
	case Xlinkns:
		return "http://www.w3.org/1999/xlink"
	case Xmlns:
		return "http://www.w3.org/XML/1998/namespace"
	case Xmlnsns:
		return "http://www.w3.org/2000/xmlns/"
	default:
		return ""
	}
}
