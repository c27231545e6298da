package parser

import (
	"strings"

	"github.com/heathj/html5parse/parser/dom"
	"golang.org/x/net/html/atom"
)

// voidElementAtoms is the closed void-element set, keyed by atom.Atom
// rather than a raw string so the self-closing-flag check on every start
// tag is an integer comparison instead of a string compare.
var voidElementAtoms = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true, atom.Embed: true,
	atom.Hr: true, atom.Img: true, atom.Input: true, atom.Link: true, atom.Meta: true,
	atom.Param: true, atom.Source: true, atom.Track: true, atom.Wbr: true,
}

func isVoidElement(name string) bool { return voidElementAtoms[atomOf(name)] }

// appropriateInsertionLocation implements "appropriate place for inserting
// a node": normally the current node, but foster-parented to just before
// the last table on the stack when fosterParenting is enabled and the
// current insertion target is a table-family element.
func (c *treeConstructor) appropriateInsertionLocation(override *dom.Node) (parent, beforeChild *dom.Node) {
	target := override
	if target == nil {
		target = c.currentNode()
	}

	if !c.fosterParenting || target == nil {
		return target, nil
	}
	switch target.NodeName {
	case "table", "tbody", "tfoot", "thead", "tr":
	default:
		return target, nil
	}

	lastTemplate, lastTemplateIdx := c.lastOnStack("template")
	lastTable, lastTableIdx := c.lastOnStack("table")

	if lastTemplate != nil && (lastTable == nil || lastTemplateIdx > lastTableIdx) {
		return lastTemplate, nil
	}
	if lastTable == nil {
		return c.openElements.NodeList[0], nil
	}
	if lastTable.ParentNode != nil {
		return lastTable.ParentNode, lastTable
	}
	// lastTable has no parent (hasn't been inserted, e.g. template content):
	// fall back to the element immediately above it on the stack.
	if lastTableIdx > 0 {
		prev := c.openElements.NodeList[lastTableIdx-1]
		return prev, nil
	}
	return target, nil
}

func (c *treeConstructor) lastOnStack(name string) (*dom.Node, int) {
	for i := len(c.openElements.NodeList) - 1; i >= 0; i-- {
		if c.openElements.NodeList[i].NodeName == name {
			return c.openElements.NodeList[i], i
		}
	}
	return nil, -1
}

// insertAt inserts on into parent, before beforeChild if non-nil, else
// appended. Never inserts under a Document (the insertion-location rules
// never target one outside Initial, which is handled separately).
func insertAt(parent, beforeChild, on *dom.Node) {
	if parent.NodeType == dom.DocumentNode {
		return
	}
	parent.InsertBefore(on, beforeChild)
}

// insertCharacter implements "insert a character": coalesces into the Text
// node immediately before the insertion location when one exists, else
// creates a new Text node.
func (c *treeConstructor) insertCharacter(r rune) {
	parent, before := c.appropriateInsertionLocation(nil)
	if parent == nil || parent.NodeType == dom.DocumentNode {
		return
	}

	var prev *dom.Node
	if before != nil {
		prev = before.PreviousSibling
	} else {
		prev = parent.LastChild
	}
	if prev != nil && prev.NodeType == dom.TextNode {
		prev.Text.AppendData(string(r))
		return
	}
	t := dom.NewTextNode(c.doc, string(r))
	insertAt(parent, before, t)
}

// insertComment implements "insert a comment", optionally at an overridden
// location (used by the Initial/AfterAfterBody/AfterAfterFrameset modes,
// which append directly to the Document).
func (c *treeConstructor) insertComment(data string, override *dom.Node) {
	parent, before := c.appropriateInsertionLocation(override)
	n := dom.NewCommentNode(c.doc, data)
	if override != nil {
		override.AppendChild(n)
		return
	}
	insertAt(parent, before, n)
}

// createElementForToken implements "create an element for a token":
// resolves namespace/local-name/attributes without executing scripts or
// consulting a custom element registry (no script runs in this parser).
func (c *treeConstructor) createElementForToken(tok Token, ns dom.Namespace, intendedParent *dom.Node) *dom.Node {
	attrs := make([]dom.Attribute, len(tok.Attributes))
	copy(attrs, tok.Attributes)
	n := dom.NewDOMElement(c.doc, tok.TagName, ns, "", attrs)
	if n.Element.Script != nil {
		n.Element.Script.ParserInserted = true
	}
	return n
}

// insertHTMLElement implements "insert an HTML element": create, insert at
// the appropriate location, and push onto the open-element stack.
func (c *treeConstructor) insertHTMLElement(tok Token) *dom.Node {
	return c.insertForeignElement(tok, dom.Htmlns)
}

// insertForeignElement implements "insert a foreign element": like insert
// an HTML element but in an explicit namespace, used for MathML/SVG.
func (c *treeConstructor) insertForeignElement(tok Token, ns dom.Namespace) *dom.Node {
	parent, before := c.appropriateInsertionLocation(nil)
	n := c.createElementForToken(tok, ns, parent)
	insertAt(parent, before, n)
	c.openElements.Push(n)
	return n
}

// acknowledgeSelfClosingIfSet is called by the handlers that acknowledge a
// start tag's self-closing flag. It records a parse error when the flag is
// set on a non-foreign element outside voidElementAtoms; it sets no field
// on the token, and start tags whose handlers do not call it record no
// error for the flag.
func (c *treeConstructor) acknowledgeSelfClosingIfSet(tok Token, foreign bool) {
	if !tok.SelfClosing {
		return
	}
	if foreign || isVoidElement(tok.TagName) {
		return
	}
	c.recordError(dom.NonVoidHTMLElementStartTagWithTrailingSolidus)
}

// closePElement implements "close a p element": generate implied end tags
// except p, then pop until a p element has been popped.
func (c *treeConstructor) closePElement() {
	c.generateImpliedEndTags("p")
	if c.currentNode() == nil || c.currentNode().NodeName != "p" {
		c.recordError(dom.UnexpectedEndTag)
	}
	c.openElements.PopUntil("p")
}

var impliedEndTagNames = []string{
	"dd", "dt", "li", "optgroup", "option", "p", "rb", "rp", "rt", "rtc",
}

// generateImpliedEndTags pops dd/dt/li/optgroup/option/p/rb/rp/rt/rtc from
// the stack while the current node matches that set, minus any names
// passed in except.
func (c *treeConstructor) generateImpliedEndTags(except ...string) {
	for {
		cur := c.currentNode()
		if cur == nil {
			return
		}
		if !containsStr(impliedEndTagNames, cur.NodeName) {
			return
		}
		if containsStr(except, cur.NodeName) {
			return
		}
		c.openElements.Pop()
	}
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// reconstructActiveFormattingElements re-inserts formatting elements after
// a scope break so inline formatting re-opens correctly:
// https://html.spec.whatwg.org/multipage/parsing.html#reconstruct-the-active-formatting-elements
func (c *treeConstructor) reconstructActiveFormattingElements() {
	if len(c.afe.NodeList) == 0 {
		return
	}
	last := c.afe.NodeList.Last()
	if last == dom.ScopeMarker || c.openElements.NodeList.Contains(last) != -1 {
		return
	}

	i := len(c.afe.NodeList) - 1
	for i > 0 {
		i--
		entry := c.afe.NodeList[i]
		if entry == dom.ScopeMarker || c.openElements.NodeList.Contains(entry) != -1 {
			i++
			break
		}
	}

	for ; i < len(c.afe.NodeList); i++ {
		entry := c.afe.NodeList[i]
		clone := c.cloneElementShallow(entry)
		parent, before := c.appropriateInsertionLocation(nil)
		insertAt(parent, before, clone)
		c.openElements.Push(clone)
		c.afe.NodeList[i] = clone
	}
}

func (c *treeConstructor) cloneElementShallow(n *dom.Node) *dom.Node {
	attrs := make([]dom.Attribute, 0, n.Attributes.Length())
	for _, a := range n.Attributes.Items() {
		attrs = append(attrs, dom.Attribute{Name: a.Name, Value: a.Value, Namespace: a.Namespace, HasNS: a.HasNS, Prefix: a.Prefix, LocalName: a.LocalName})
	}
	return dom.NewDOMElement(c.doc, n.NodeName, n.Element.NamespaceURI, n.Element.Prefix, attrs)
}

// resetInsertionModeAppropriately restores the correct mode from the
// open-element stack, used on `</template>`, at end of file inside a
// template, and by the select- and table-family handlers that close a
// `<select>` or `<table>`:
// https://html.spec.whatwg.org/multipage/parsing.html#reset-the-insertion-mode-appropriately
func (c *treeConstructor) resetInsertionModeAppropriately() {
	for i := len(c.openElements.NodeList) - 1; i >= 0; i-- {
		node := c.openElements.NodeList[i]
		last := i == 0

		switch node.NodeName {
		case "select":
			for j := i; j > 0; j-- {
				ancestor := c.openElements.NodeList[j-1]
				switch ancestor.NodeName {
				case "template":
					c.mode = inSelectMode
					return
				case "table":
					c.mode = inSelectInTableMode
					return
				}
			}
			c.mode = inSelectMode
			return
		case "td", "th":
			if !last {
				c.mode = inCellMode
				return
			}
		case "tr":
			c.mode = inRowMode
			return
		case "tbody", "thead", "tfoot":
			c.mode = inTableBodyMode
			return
		case "caption":
			c.mode = inCaptionMode
			return
		case "colgroup":
			c.mode = inColumnGroupMode
			return
		case "table":
			c.mode = inTableMode
			return
		case "template":
			c.mode = c.templateModeStack[len(c.templateModeStack)-1]
			return
		case "head":
			if !last {
				c.mode = inHeadMode
				return
			}
		case "body":
			c.mode = inBodyMode
			return
		case "frameset":
			c.mode = inFramesetMode
			return
		case "html":
			if c.headPointer == nil {
				c.mode = beforeHeadMode
			} else {
				c.mode = afterHeadMode
			}
			return
		}
		if last {
			c.mode = inBodyMode
			return
		}
	}
}

// stepsForCharacterToken is InBody's handling of a non-NUL Character
// token: it reconstructs the active formatting elements and inserts the
// character, setting frameset-ok to not-ok when the character is not
// whitespace.
func (c *treeConstructor) stepsForCharacterToken(r rune) {
	c.reconstructActiveFormattingElements()
	c.insertCharacter(r)
	if !isHTMLWhitespace(r) {
		c.frameset = framesetNotOK
	}
}

func isHTMLWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// switchTokenizerStateForGenericElement implements the tree builder's half of the
// state-override contract: for the generic text elements and a handful of
// element-specific exceptions, switch the tokenizer into RCDATA, RAWTEXT,
// ScriptData or PLAINTEXT before the next character is consumed.
func (c *treeConstructor) switchTokenizerStateForGenericElement(tagName string) {
	switch tagName {
	case "title", "textarea":
		c.tok.SetState(rcDataState)
	case "style", "xmp", "iframe", "noembed", "noframes":
		c.tok.SetState(rawTextState)
	case "noscript":
		if c.scripting {
			c.tok.SetState(rawTextState)
		}
	case "script":
		c.tok.SetState(scriptDataState)
	case "plaintext":
		c.tok.SetState(plaintextState)
	}
}

// genericTextElementParsing implements the two shared "generic raw
// text/RCDATA element parsing algorithms": insert the element, switch the
// tokenizer, stash the current mode as original, and enter Text mode.
func (c *treeConstructor) genericTextElementParsing(tok Token, rcdata bool) {
	c.insertHTMLElement(tok)
	if rcdata {
		c.tok.SetState(rcDataState)
	} else {
		c.tok.SetState(rawTextState)
	}
	c.originalMode = c.mode
	c.mode = textMode
}

func tokenIsWhitespaceChar(tok Token) bool {
	return tok.TokenType == characterToken && len(tok.Data) == 1 && isHTMLWhitespace(rune(tok.Data[0]))
}

func trimmedLowerAttr(tok Token, name string) (string, bool) {
	v, ok := tok.attr(name)
	if !ok {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(v)), true
}
