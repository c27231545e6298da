package dom

import "strings"

// Attribute is a plain (name, value) pair as produced by the tokenizer. It
// carries an optional namespace/prefix/local-name split, filled in only when the tree
// constructor runs the foreign-content "adjust foreign attributes" step for
// an SVG or MathML element (xlink:href, xml:lang, xmlns, ...).
type Attribute struct {
	Name      string
	Value     string
	Namespace Namespace
	HasNS     bool
	Prefix    string
	LocalName string
}

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace    Namespace
	HasNS        bool
	Prefix       string
	LocalName    string
	Name         string
	Value        string
	OwnerElement *Node
}

// NamedNodeMap is https://dom.spec.whatwg.org/#interface-namednodemap. It
// preserves attribute insertion order, which the tree constructor's debug
// serialization relies on being reproducible.
type NamedNodeMap struct {
	order   []*Attr
	byName  map[string]*Attr
	OwnerEl *Node
}

// NewNamedNodeMap builds a NamedNodeMap from an ordered attribute list,
// dropping duplicates: a name that appears twice on the same tag keeps
// only the first occurrence.
func NewNamedNodeMap(owner *Node, attrs []Attribute) *NamedNodeMap {
	m := &NamedNodeMap{byName: make(map[string]*Attr, len(attrs)), OwnerEl: owner}
	for _, a := range attrs {
		if _, ok := m.byName[a.Name]; ok {
			continue
		}
		localName := a.LocalName
		if localName == "" {
			localName = a.Name
		}
		attr := &Attr{
			Namespace:    a.Namespace,
			HasNS:        a.HasNS,
			Prefix:       a.Prefix,
			LocalName:    localName,
			Name:         a.Name,
			Value:        a.Value,
			OwnerElement: owner,
		}
		m.byName[a.Name] = attr
		m.order = append(m.order, attr)
	}
	return m
}

// Length is the number of attributes.
func (m *NamedNodeMap) Length() int { return len(m.order) }

// Items returns the attributes in insertion order.
func (m *NamedNodeMap) Items() []*Attr { return m.order }

// GetNamedItem looks an attribute up by its qualified name. HTML elements in
// an HTML document compare case-insensitively per
// https://dom.spec.whatwg.org/#dom-namednodemap-getnameditem; other
// elements (foreign content) compare case-sensitively.
func (m *NamedNodeMap) GetNamedItem(qualifiedName string) (*Attr, bool) {
	if m.OwnerEl != nil && m.OwnerEl.Element != nil && m.OwnerEl.Element.NamespaceURI == Htmlns {
		qualifiedName = strings.ToLower(qualifiedName)
	}
	a, ok := m.byName[qualifiedName]
	return a, ok
}

// SetNamedItem adds attr if no attribute with the same qualified name
// exists yet, returning the attribute actually stored.
func (m *NamedNodeMap) SetNamedItem(attr *Attr) *Attr {
	attr.OwnerElement = m.OwnerEl
	if existing, ok := m.byName[attr.Name]; ok {
		return existing
	}
	m.byName[attr.Name] = attr
	m.order = append(m.order, attr)
	return attr
}
