// Package dom implements the tagged-union node model the tree constructor
// reads and writes: Document, DocumentType, Element, Text and Comment share
// a single Node struct via embedded, variant-specific pointer fields rather
// than an interface hierarchy, so the parser's dispatch predicates ("is an
// element", "is character data") are plain nil checks instead of type
// switches or assertions.
package dom

import (
	"sort"
	"strings"
)

// NodeType is https://dom.spec.whatwg.org/#dom-node-nodetype
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	ScopeMarkerNode
)

// ScopeMarker is the distinguished "marker" sentinel pushed onto the active
// formatting elements list at the boundary of a table cell, object, applet
// or caption.
var ScopeMarker = &Node{NodeType: ScopeMarkerNode, NodeName: "marker"}

// Node is the single concrete type behind every kind of DOM node the parser
// produces. Only the fields relevant to NodeType are meaningful; the
// embedded *Element/*Text/*Comment/*Document/*DocumentType pointers are
// nil for every node that isn't that variant.
type Node struct {
	NodeType      NodeType
	NodeName      string
	OwnerDocument *Node

	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	*Element
	*Document
	*DocumentType
	*Text
	*Comment
}

// NewDOMElement creates an element node in the given namespace. attrs may
// be nil; it is copied into an insertion-ordered NamedNodeMap.
func NewDOMElement(ownerDocument *Node, localName string, ns Namespace, prefix string, attrs []Attribute) *Node {
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      localName,
		OwnerDocument: ownerDocument,
		Element: &Element{
			NamespaceURI: ns,
			Prefix:       prefix,
			LocalName:    localName,
		},
	}
	n.Element.Attributes = NewNamedNodeMap(n, attrs)
	n.Element.applyElementSpecificData(localName, ns)
	return n
}

// NewTextNode creates a detached Text node.
func NewTextNode(ownerDocument *Node, data string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: ownerDocument,
		Text:          &Text{CharacterData: CharacterData{Data: data}},
	}
}

// NewCommentNode creates a detached Comment node.
func NewCommentNode(ownerDocument *Node, data string) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: ownerDocument,
		Comment:       &Comment{CharacterData: CharacterData{Data: data}},
	}
}

// NewDocTypeNode creates a detached DocumentType node.
func NewDocTypeNode(name, publicID, systemID string) *Node {
	return &Node{
		NodeType:     DocumentTypeNode,
		NodeName:     name,
		DocumentType: &DocumentType{Name: name, PublicID: publicID, SystemID: systemID},
	}
}

// NewHTMLDocumentNode creates the Document node that owns every other node
// produced by a parse.
func NewHTMLDocumentNode() *Node {
	d := &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{Type: "html", QuirksMode: NoQuirks},
	}
	d.OwnerDocument = d
	return d
}

// HasChildNodes reports whether the node has at least one child.
func (n *Node) HasChildNodes() bool { return len(n.ChildNodes) > 0 }

// AppendChild appends on as the new last child of n, fixing up sibling and
// parent pointers on both sides. It implements the parser's subset of
// https://dom.spec.whatwg.org/#concept-node-append.
func (n *Node) AppendChild(on *Node) *Node {
	on.ParentNode = n
	if n.LastChild != nil {
		n.LastChild.NextSibling = on
		on.PreviousSibling = n.LastChild
	} else {
		n.FirstChild = on
		on.PreviousSibling = nil
	}
	on.NextSibling = nil
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

// InsertBefore inserts on as a child of n immediately before child, fixing
// up every sibling/parent pointer. If child is nil, on is appended.
// https://dom.spec.whatwg.org/#concept-node-insert
func (n *Node) InsertBefore(on, child *Node) *Node {
	if child == nil {
		return n.AppendChild(on)
	}

	idx := n.ChildNodes.Contains(child)
	if idx == -1 {
		return n.AppendChild(on)
	}

	before := child.PreviousSibling
	on.ParentNode = n
	on.PreviousSibling = before
	on.NextSibling = child
	child.PreviousSibling = on
	if before != nil {
		before.NextSibling = on
	} else {
		n.FirstChild = on
	}

	newChildren := make(NodeList, 0, len(n.ChildNodes)+1)
	newChildren = append(newChildren, n.ChildNodes[:idx]...)
	newChildren = append(newChildren, on)
	newChildren = append(newChildren, n.ChildNodes[idx:]...)
	n.ChildNodes = newChildren
	return on
}

// RemoveChild detaches child from n, fixing up sibling and parent/first/last
// pointers. https://dom.spec.whatwg.org/#concept-node-remove
func (n *Node) RemoveChild(child *Node) *Node {
	idx := n.ChildNodes.Contains(child)
	if idx == -1 {
		return nil
	}

	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = child.NextSibling
	} else {
		n.FirstChild = child.NextSibling
	}
	if child.NextSibling != nil {
		child.NextSibling.PreviousSibling = child.PreviousSibling
	} else {
		n.LastChild = child.PreviousSibling
	}
	n.ChildNodes.Remove(idx)

	child.ParentNode = nil
	child.PreviousSibling = nil
	child.NextSibling = nil
	return child
}

// Root walks ParentNode links to the topmost ancestor (normally the owning
// Document).
func (n *Node) Root() *Node {
	cur := n
	for cur.ParentNode != nil {
		cur = cur.ParentNode
	}
	return cur
}

// String renders an indented debug tree, used by tests to compare parsed
// structure against the html5lib-style expected-tree fixtures.
func (n *Node) String() string {
	var b strings.Builder
	n.serialize(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (n *Node) serialize(b *strings.Builder, depth int) {
	if n.NodeType == DocumentNode {
		b.WriteString(n.NodeName)
		b.WriteByte('\n')
	} else {
		b.WriteString("| ")
		b.WriteString(strings.Repeat("  ", depth))
		writeNodeLabel(b, n, depth)
		b.WriteByte('\n')
		depth++
	}
	for _, c := range n.ChildNodes {
		c.serialize(b, depth)
	}
}

func writeNodeLabel(b *strings.Builder, n *Node, depth int) {
	switch n.NodeType {
	case ElementNode:
		switch n.Element.NamespaceURI {
		case Svgns:
			b.WriteString("<svg ")
		case Mathmlns:
			b.WriteString("<math ")
		default:
			b.WriteByte('<')
		}
		b.WriteString(n.NodeName)
		b.WriteByte('>')
		names := make([]string, 0, len(n.Attributes.order))
		for _, a := range n.Attributes.order {
			names = append(names, a.Name)
		}
		sort.Strings(names)
		for _, name := range names {
			attr, _ := n.Attributes.GetNamedItem(name)
			b.WriteString("\n| ")
			b.WriteString(strings.Repeat("  ", depth+1))
			b.WriteString(attr.Name)
			b.WriteString(`="`)
			b.WriteString(attr.Value)
			b.WriteByte('"')
		}
	case TextNode:
		b.WriteByte('"')
		b.WriteString(n.Text.Data)
		b.WriteByte('"')
	case CommentNode:
		b.WriteString("<!-- ")
		b.WriteString(n.Comment.Data)
		b.WriteString(" -->")
	case DocumentTypeNode:
		b.WriteString("<!DOCTYPE ")
		b.WriteString(n.DocumentType.Name)
		b.WriteByte('>')
	}
}
