package dom

// Element is https://dom.spec.whatwg.org/#interface-element. Namespace and
// local name are set once at creation time by the tree constructor's
// "create an element for a token" algorithm; Attributes is the element's
// ordered attribute list.
type Element struct {
	NamespaceURI Namespace
	Prefix       string
	LocalName    string
	Attributes   *NamedNodeMap

	// Script is non-nil only for `script` elements; it carries the
	// "already started" and "parser-inserted" flags.
	Script *ScriptFlags
	// Template is non-nil only for `template` elements and holds a content
	// fragment root created with the element. The tree constructor does not
	// insert into it: a template's parsed children are appended to the
	// template element itself.
	Template *TemplateData
}

// ScriptFlags is the subset of HTMLScriptElement state the tree
// constructor, not the (absent) scripting engine, is responsible for
// maintaining.
type ScriptFlags struct {
	AlreadyStarted bool
	ParserInserted bool
}

// TemplateData holds a `template` element's content document fragment.
type TemplateData struct {
	Content *Node
}

func (e *Element) applyElementSpecificData(localName string, ns Namespace) {
	if ns != Htmlns {
		return
	}
	switch localName {
	case "script":
		e.Script = &ScriptFlags{ParserInserted: true}
	case "template":
		e.Template = &TemplateData{Content: &Node{
			NodeType: DocumentNode,
			NodeName: "#document-fragment",
			Document: &Document{Type: "html"},
		}}
	}
}

// GetAttribute returns an attribute's value, and whether it was present, by
// qualified name.
func (e *Element) GetAttribute(qualifiedName string) (string, bool) {
	if e.Attributes == nil {
		return "", false
	}
	a, ok := e.Attributes.GetNamedItem(qualifiedName)
	if !ok {
		return "", false
	}
	return a.Value, true
}

// HasAttribute reports whether qualifiedName is present.
func (e *Element) HasAttribute(qualifiedName string) bool {
	_, ok := e.GetAttribute(qualifiedName)
	return ok
}
