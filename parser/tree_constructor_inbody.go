package parser

import (
	"strings"

	"github.com/heathj/html5parse/parser/dom"
)

var headingNames = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// inBodyModeHandler implements "the in body insertion mode", the
// long-running mode that handles nearly all markup.
func (c *treeConstructor) inBodyModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case characterToken:
		r := []rune(tok.Data)[0]
		if r == 0 {
			c.recordError(dom.UnexpectedNullCharacter)
			return false
		}
		c.stepsForCharacterToken(r)
		return false

	case commentToken:
		c.insertComment(tok.Data, nil)
		return false

	case docTypeToken:
		c.recordError(dom.GenericParseError)
		return false

	case startTagToken:
		return c.inBodyStartTag(tok)

	case endTagToken:
		return c.inBodyEndTag(tok)

	case endOfFileToken:
		if len(c.templateModeStack) > 0 {
			return c.inTemplateModeHandler(tok)
		}
		for _, n := range c.openElements.NodeList {
			switch n.NodeName {
			case "dd", "dt", "li", "optgroup", "option", "p", "rb", "rp", "rt",
				"rtc", "tbody", "td", "tfoot", "th", "thead", "tr", "body", "html":
			default:
				c.recordError(dom.GenericParseError)
			}
		}
		c.stopParsing()
		return false
	}
	return false
}

func (c *treeConstructor) inBodyStartTag(tok *Token) bool {
	switch tok.TagName {
	case "html":
		c.recordError(dom.GenericParseError)
		if c.openElements.ContainsName("template") {
			return false
		}
		html := c.openElements.NodeList[0]
		for _, a := range tok.Attributes {
			html.Attributes.SetNamedItem(&dom.Attr{Name: a.Name, Value: a.Value})
		}
		return false

	case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
		"style", "template", "title":
		return c.inHeadModeHandler(tok)

	case "body":
		c.recordError(dom.GenericParseError)
		if len(c.openElements.NodeList) < 2 || c.openElements.NodeList[1].NodeName != "body" ||
			c.openElements.ContainsName("template") {
			return false
		}
		c.frameset = framesetNotOK
		body := c.openElements.NodeList[1]
		for _, a := range tok.Attributes {
			body.Attributes.SetNamedItem(&dom.Attr{Name: a.Name, Value: a.Value})
		}
		return false

	case "frameset":
		c.recordError(dom.GenericParseError)
		if len(c.openElements.NodeList) < 2 || c.openElements.NodeList[1].NodeName != "body" ||
			c.frameset == framesetNotOK {
			return false
		}
		body := c.openElements.NodeList[1]
		if body.ParentNode != nil {
			body.ParentNode.RemoveChild(body)
		}
		c.openElements.NodeList = c.openElements.NodeList[:1]
		c.insertHTMLElement(*tok)
		c.mode = inFramesetMode
		return false

	case "address", "article", "aside", "blockquote", "center", "details",
		"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure",
		"footer", "header", "hgroup", "main", "menu", "nav", "ol", "p",
		"section", "summary", "ul":
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.insertHTMLElement(*tok)
		return false

	case "h1", "h2", "h3", "h4", "h5", "h6":
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		if cur := c.currentNode(); cur != nil && headingNames[cur.NodeName] {
			c.recordError(dom.GenericParseError)
			c.openElements.Pop()
		}
		c.insertHTMLElement(*tok)
		return false

	case "pre", "listing":
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.insertHTMLElement(*tok)
		c.ignoreNextLF = true
		c.frameset = framesetNotOK
		return false

	case "form":
		if c.formPointer != nil && !c.openElements.ContainsName("template") {
			c.recordError(dom.GenericParseError)
			return false
		}
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		form := c.insertHTMLElement(*tok)
		if !c.openElements.ContainsName("template") {
			c.formPointer = form
		}
		return false

	case "li":
		return c.inBodyListItem(tok, []string{"li"})

	case "dd", "dt":
		return c.inBodyListItem(tok, []string{"dd", "dt"})

	case "plaintext":
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.insertHTMLElement(*tok)
		c.tok.SetState(plaintextState)
		return false

	case "button":
		if c.openElements.ContainsElementInScope("button") {
			c.recordError(dom.GenericParseError)
			c.generateImpliedEndTags()
			c.openElements.PopUntil("button")
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(*tok)
		c.frameset = framesetNotOK
		return false

	case "a":
		if last, _ := c.lastFormattingElementBefore("a"); last != nil {
			c.recordError(dom.GenericParseError)
			c.adoptionAgencyAlgorithm("a")
			if idx := c.afe.NodeList.Contains(last); idx != -1 {
				c.afe.NodeList.Remove(idx)
			}
			c.openElements.RemoveNode(last)
		}
		c.reconstructActiveFormattingElements()
		n := c.insertHTMLElement(*tok)
		c.afe.Push(n)
		return false

	case "b", "big", "code", "em", "font", "i", "s", "small", "strike",
		"strong", "tt", "u":
		c.reconstructActiveFormattingElements()
		n := c.insertHTMLElement(*tok)
		c.afe.Push(n)
		return false

	case "nobr":
		c.reconstructActiveFormattingElements()
		if c.openElements.ContainsElementInScope("nobr") {
			c.recordError(dom.GenericParseError)
			c.adoptionAgencyAlgorithm("nobr")
			c.reconstructActiveFormattingElements()
		}
		n := c.insertHTMLElement(*tok)
		c.afe.Push(n)
		return false

	case "applet", "marquee", "object":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(*tok)
		c.afe.Push(dom.ScopeMarker)
		c.frameset = framesetNotOK
		return false

	case "table":
		if c.doc.QuirksMode != dom.Quirks && c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.insertHTMLElement(*tok)
		c.frameset = framesetNotOK
		c.mode = inTableMode
		return false

	case "area", "br", "embed", "img", "keygen", "wbr":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(*tok)
		c.openElements.Pop()
		c.acknowledgeSelfClosingIfSet(*tok, false)
		c.frameset = framesetNotOK
		return false

	case "input":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(*tok)
		c.openElements.Pop()
		c.acknowledgeSelfClosingIfSet(*tok, false)
		if v, ok := tok.attr("type"); !ok || !strings.EqualFold(v, "hidden") {
			c.frameset = framesetNotOK
		}
		return false

	case "param", "source", "track":
		c.insertHTMLElement(*tok)
		c.openElements.Pop()
		c.acknowledgeSelfClosingIfSet(*tok, false)
		return false

	case "hr":
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.insertHTMLElement(*tok)
		c.openElements.Pop()
		c.acknowledgeSelfClosingIfSet(*tok, false)
		c.frameset = framesetNotOK
		return false

	case "image":
		c.recordError(dom.GenericParseError)
		tok.TagName = "img"
		return true

	case "textarea":
		c.insertHTMLElement(*tok)
		c.ignoreNextLF = true
		c.tok.SetState(rcDataState)
		c.originalMode = c.mode
		c.frameset = framesetNotOK
		c.mode = textMode
		return false

	case "xmp":
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.reconstructActiveFormattingElements()
		c.frameset = framesetNotOK
		c.genericTextElementParsing(*tok, false)
		return false

	case "iframe":
		c.frameset = framesetNotOK
		c.genericTextElementParsing(*tok, false)
		return false

	case "noembed":
		c.genericTextElementParsing(*tok, false)
		return false

	case "noscript":
		if c.scripting {
			c.genericTextElementParsing(*tok, false)
			return false
		}

	case "select":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(*tok)
		c.frameset = framesetNotOK
		switch c.mode {
		case inTableMode, inCaptionMode, inTableBodyMode, inRowMode, inCellMode:
			c.mode = inSelectInTableMode
		default:
			c.mode = inSelectMode
		}
		return false

	case "optgroup", "option":
		if c.currentNode() != nil && c.currentNode().NodeName == "option" {
			c.openElements.Pop()
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(*tok)
		return false

	case "rb", "rtc":
		if c.openElements.ContainsElementInScope("ruby") {
			c.generateImpliedEndTags()
			if cur := c.currentNode(); cur == nil || cur.NodeName != "ruby" {
				c.recordError(dom.GenericParseError)
			}
		}
		c.insertHTMLElement(*tok)
		return false

	case "rp", "rt":
		if c.openElements.ContainsElementInScope("ruby") {
			c.generateImpliedEndTags("rtc")
			if cur := c.currentNode(); cur == nil || (cur.NodeName != "ruby" && cur.NodeName != "rtc") {
				c.recordError(dom.GenericParseError)
			}
		}
		c.insertHTMLElement(*tok)
		return false

	case "math":
		c.reconstructActiveFormattingElements()
		adjustMathMLAttributes(tok)
		adjustForeignAttributes(tok)
		n := c.insertForeignElement(*tok, dom.Mathmlns)
		if tok.SelfClosing {
			c.openElements.RemoveNode(n)
			c.acknowledgeSelfClosingIfSet(*tok, true)
		}
		return false

	case "svg":
		c.reconstructActiveFormattingElements()
		adjustSVGAttributes(tok)
		adjustForeignAttributes(tok)
		n := c.insertForeignElement(*tok, dom.Svgns)
		if tok.SelfClosing {
			c.openElements.RemoveNode(n)
			c.acknowledgeSelfClosingIfSet(*tok, true)
		}
		return false

	case "caption", "col", "colgroup", "frame", "head", "tbody", "td",
		"tfoot", "th", "thead", "tr":
		c.recordError(dom.GenericParseError)
		return false
	}

	c.reconstructActiveFormattingElements()
	c.insertHTMLElement(*tok)
	return false
}

// inBodyListItem implements the shared shape of the "li" and "dd"/"dt"
// start-tag steps: walk the stack looking for a matching list-item-ish
// element, closing it (and anything generated above it) before inserting
// the new one, stopping early at any special element outside the given
// exemption set.
func (c *treeConstructor) inBodyListItem(tok *Token, names []string) bool {
	c.frameset = framesetNotOK
	for i := len(c.openElements.NodeList) - 1; i >= 0; i-- {
		node := c.openElements.NodeList[i]
		if containsStr(names, node.NodeName) {
			c.generateImpliedEndTags(names...)
			if cur := c.currentNode(); cur == nil || !containsStr(names, cur.NodeName) {
				c.recordError(dom.GenericParseError)
			}
			c.openElements.PopUntil(names...)
			break
		}
		if isSpecialElement(node) && node.NodeName != "address" && node.NodeName != "div" && node.NodeName != "p" {
			break
		}
	}
	if c.openElements.ContainsElementInButtonScope("p") {
		c.closePElement()
	}
	c.insertHTMLElement(*tok)
	return false
}

func (c *treeConstructor) inBodyEndTag(tok *Token) bool {
	switch tok.TagName {
	case "template":
		return c.inHeadModeHandler(tok)

	case "body":
		if !c.openElements.ContainsElementInScope("body") {
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
		for _, n := range c.openElements.NodeList {
			switch n.NodeName {
			case "dd", "dt", "li", "optgroup", "option", "p", "rb", "rp", "rt",
				"rtc", "tbody", "td", "tfoot", "th", "thead", "tr", "body", "html":
			default:
				c.recordError(dom.UnexpectedEndTag)
			}
		}
		c.mode = afterBodyMode
		return false

	case "html":
		if !c.openElements.ContainsElementInScope("body") {
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
		c.mode = afterBodyMode
		return true

	case "address", "article", "aside", "blockquote", "button", "center",
		"details", "dialog", "dir", "div", "dl", "fieldset", "figcaption",
		"figure", "footer", "header", "hgroup", "listing", "main", "menu",
		"nav", "ol", "pre", "section", "summary", "ul":
		if !c.openElements.ContainsElementInScope(tok.TagName) {
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
		c.generateImpliedEndTags()
		if cur := c.currentNode(); cur == nil || cur.NodeName != tok.TagName {
			c.recordError(dom.UnexpectedEndTag)
		}
		c.openElements.PopUntil(tok.TagName)
		return false

	case "form":
		if !c.openElements.ContainsName("template") {
			node := c.formPointer
			c.formPointer = nil
			if node == nil || c.openElements.NodeList.Contains(node) == -1 ||
				!c.openElements.ContainsElementInScope(node.NodeName) {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.generateImpliedEndTags()
			if cur := c.currentNode(); cur != node {
				c.recordError(dom.UnexpectedEndTag)
			}
			c.openElements.RemoveNode(node)
			return false
		}
		if !c.openElements.ContainsElementInScope("form") {
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
		c.generateImpliedEndTags()
		if cur := c.currentNode(); cur == nil || cur.NodeName != "form" {
			c.recordError(dom.UnexpectedEndTag)
		}
		c.openElements.PopUntil("form")
		return false

	case "p":
		if !c.openElements.ContainsElementInButtonScope("p") {
			c.recordError(dom.UnexpectedEndTag)
			c.insertHTMLElement(Token{TokenType: startTagToken, TagName: "p"})
		}
		c.closePElement()
		return false

	case "li":
		if !c.openElements.ContainsElementInListItemScope("li") {
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
		c.generateImpliedEndTags("li")
		if cur := c.currentNode(); cur == nil || cur.NodeName != "li" {
			c.recordError(dom.UnexpectedEndTag)
		}
		c.openElements.PopUntil("li")
		return false

	case "dd", "dt":
		if !c.openElements.ContainsElementInScope(tok.TagName) {
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
		c.generateImpliedEndTags(tok.TagName)
		if cur := c.currentNode(); cur == nil || cur.NodeName != tok.TagName {
			c.recordError(dom.UnexpectedEndTag)
		}
		c.openElements.PopUntil(tok.TagName)
		return false

	case "h1", "h2", "h3", "h4", "h5", "h6":
		if !c.openElements.ContainsElementsInScope("h1", "h2", "h3", "h4", "h5", "h6") {
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
		c.generateImpliedEndTags()
		if cur := c.currentNode(); cur == nil || cur.NodeName != tok.TagName {
			c.recordError(dom.UnexpectedEndTag)
		}
		c.openElements.PopUntilConditions(func(e *dom.Node) bool { return headingNames[e.NodeName] })
		c.openElements.Pop()
		return false

	case "a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small",
		"strike", "strong", "tt", "u":
		c.adoptionAgencyAlgorithm(tok.TagName)
		return false

	case "applet", "marquee", "object":
		if !c.openElements.ContainsElementInScope(tok.TagName) {
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
		c.generateImpliedEndTags()
		if cur := c.currentNode(); cur == nil || cur.NodeName != tok.TagName {
			c.recordError(dom.UnexpectedEndTag)
		}
		c.openElements.PopUntil(tok.TagName)
		c.afe.ClearToLastMarker()
		return false

	case "br":
		c.recordError(dom.UnexpectedEndTag)
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(Token{TokenType: startTagToken, TagName: "br"})
		c.openElements.Pop()
		c.frameset = framesetNotOK
		return false
	}

	c.inBodyAnyOtherEndTag(tok.TagName)
	return false
}

// inBodyAnyOtherEndTag implements the in-body "anything else" end-tag
// algorithm, also reused by the adoption agency algorithm when no matching
// formatting element is on the active-formatting-elements list.
func (c *treeConstructor) inBodyAnyOtherEndTag(name string) {
	for i := len(c.openElements.NodeList) - 1; i >= 0; i-- {
		node := c.openElements.NodeList[i]
		if node.NodeName == name {
			c.generateImpliedEndTags(name)
			if cur := c.currentNode(); cur != node {
				c.recordError(dom.UnexpectedEndTag)
			}
			c.openElements.PopUntilConditions(func(e *dom.Node) bool { return e == node })
			c.openElements.Pop()
			return
		}
		if isSpecialElement(node) {
			c.recordError(dom.UnexpectedEndTag)
			return
		}
	}
}

// textModeHandler implements "the text insertion mode": used inside
// RCDATA/RAWTEXT/ScriptData elements, where only character and EOF tokens
// (plus the element's own end tag) are expected.
func (c *treeConstructor) textModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case characterToken:
		c.insertCharacter(rune(tok.Data[0]))
		return false
	case endOfFileToken:
		c.recordError(dom.GenericParseError)
		if cur := c.currentNode(); cur != nil && cur.NodeName == "script" && cur.Element.Script != nil {
			cur.Element.Script.AlreadyStarted = true
		}
		c.openElements.Pop()
		c.mode = c.originalMode
		return true
	case endTagToken:
		if tok.TagName == "script" {
			c.openElements.Pop()
			c.mode = c.originalMode
			return false
		}
		c.openElements.Pop()
		c.mode = c.originalMode
		return false
	}
	return false
}
