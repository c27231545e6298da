package parser

import "github.com/heathj/html5parse/parser/dom"

// initialModeHandler implements "the initial insertion mode":
// https://html.spec.whatwg.org/multipage/parsing.html#the-initial-insertion-mode
func (c *treeConstructor) initialModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case characterToken:
		if tokenIsWhitespaceChar(*tok) {
			return false
		}
	case commentToken:
		c.insertComment(tok.Data, c.doc)
		return false
	case docTypeToken:
		name := tok.TagName
		pub := tok.PublicIdentifier
		sys := tok.SystemIdentifier
		if name != "html" || pub != missing || (sys != missing && sys != "about:legacy-compat") {
			c.recordError(dom.GenericParseError)
		}
		dt := dom.NewDocTypeNode(name, publicOrEmpty(pub), publicOrEmpty(sys))
		dt.OwnerDocument = c.doc
		c.doc.AppendChild(dt)
		c.doc.Doctype = dt
		quirks, limited := classifyDoctypeQuirks(*tok)
		switch {
		case quirks:
			c.doc.QuirksMode = dom.Quirks
		case limited:
			c.doc.QuirksMode = dom.LimitedQuirks
		}
		c.mode = beforeHTMLMode
		return false
	}
	c.mode = beforeHTMLMode
	return true
}

func publicOrEmpty(s string) string {
	if s == missing {
		return ""
	}
	return s
}

// beforeHTMLModeHandler implements "the before html insertion mode".
func (c *treeConstructor) beforeHTMLModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case docTypeToken:
		c.recordError(dom.GenericParseError)
		return false
	case commentToken:
		c.insertComment(tok.Data, c.doc)
		return false
	case characterToken:
		if tokenIsWhitespaceChar(*tok) {
			return false
		}
	case startTagToken:
		if tok.TagName == "html" {
			html := c.createElementForToken(*tok, dom.Htmlns, c.doc)
			c.doc.AppendChild(html)
			c.openElements.Push(html)
			c.mode = beforeHeadMode
			return false
		}
	case endTagToken:
		switch tok.TagName {
		case "head", "body", "html", "br":
		default:
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
	case endOfFileToken:
	}
	html := dom.NewDOMElement(c.doc, "html", dom.Htmlns, "", nil)
	c.doc.AppendChild(html)
	c.openElements.Push(html)
	c.mode = beforeHeadMode
	return true
}

// beforeHeadModeHandler implements "the before head insertion mode".
func (c *treeConstructor) beforeHeadModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case characterToken:
		if tokenIsWhitespaceChar(*tok) {
			return false
		}
	case commentToken:
		c.insertComment(tok.Data, nil)
		return false
	case docTypeToken:
		c.recordError(dom.GenericParseError)
		return false
	case startTagToken:
		switch tok.TagName {
		case "html":
			return c.inBodyModeHandler(tok)
		case "head":
			head := c.insertHTMLElement(*tok)
			c.headPointer = head
			c.mode = inHeadMode
			return false
		}
	case endTagToken:
		switch tok.TagName {
		case "head", "body", "html", "br":
		default:
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
	case endOfFileToken:
	}
	head := c.insertHTMLElement(Token{TokenType: startTagToken, TagName: "head"})
	c.headPointer = head
	c.mode = inHeadMode
	return true
}

// inHeadModeHandler implements "the in head insertion mode".
func (c *treeConstructor) inHeadModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case characterToken:
		if tokenIsWhitespaceChar(*tok) {
			c.insertCharacter(rune(tok.Data[0]))
			return false
		}
	case commentToken:
		c.insertComment(tok.Data, nil)
		return false
	case docTypeToken:
		c.recordError(dom.GenericParseError)
		return false
	case startTagToken:
		switch tok.TagName {
		case "html":
			return c.inBodyModeHandler(tok)
		case "base", "basefont", "bgsound", "link":
			c.insertHTMLElement(*tok)
			c.openElements.Pop()
			c.acknowledgeSelfClosingIfSet(*tok, false)
			return false
		case "meta":
			c.insertHTMLElement(*tok)
			c.openElements.Pop()
			c.acknowledgeSelfClosingIfSet(*tok, false)
			return false
		case "title":
			c.genericTextElementParsing(*tok, true)
			return false
		case "noscript":
			if c.scripting {
				c.genericTextElementParsing(*tok, false)
				return false
			}
			c.insertHTMLElement(*tok)
			c.mode = inHeadNoScriptMode
			return false
		case "noframes", "style":
			c.genericTextElementParsing(*tok, false)
			return false
		case "script":
			parent, before := c.appropriateInsertionLocation(nil)
			n := c.createElementForToken(*tok, dom.Htmlns, parent)
			if n.Element.Script != nil {
				n.Element.Script.ParserInserted = true
			}
			insertAt(parent, before, n)
			c.openElements.Push(n)
			c.tok.SetState(scriptDataState)
			c.originalMode = c.mode
			c.mode = textMode
			return false
		case "template":
			c.insertHTMLElement(*tok)
			c.afe.Push(dom.ScopeMarker)
			c.frameset = framesetOK
			c.mode = inTemplateMode
			c.pushTemplateInsertionMode(inTemplateMode)
			return false
		case "head":
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
	case endTagToken:
		switch tok.TagName {
		case "head":
			c.openElements.Pop()
			c.mode = afterHeadMode
			return false
		case "body", "html", "br":
		case "template":
			if !c.openElements.ContainsName("template") {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.generateImpliedEndTags()
			if c.currentNode() == nil || c.currentNode().NodeName != "template" {
				c.recordError(dom.UnexpectedEndTag)
			}
			c.openElements.PopUntil("template")
			c.afe.ClearToLastMarker()
			c.popTemplateInsertionMode()
			c.resetInsertionModeAppropriately()
			return false
		default:
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
	case endOfFileToken:
	}
	c.openElements.Pop()
	c.mode = afterHeadMode
	return true
}

// inHeadNoScriptModeHandler implements "the in head noscript insertion
// mode".
func (c *treeConstructor) inHeadNoScriptModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case docTypeToken:
		c.recordError(dom.GenericParseError)
		return false
	case startTagToken:
		switch tok.TagName {
		case "html":
			return c.inBodyModeHandler(tok)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return c.inHeadModeHandler(tok)
		case "head", "noscript":
			c.recordError(dom.NestedNoscriptInHead)
			return false
		}
	case endTagToken:
		switch tok.TagName {
		case "noscript":
			c.openElements.Pop()
			c.mode = inHeadMode
			return false
		case "br":
		default:
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
	case commentToken:
		return c.inHeadModeHandler(tok)
	case characterToken:
		if tokenIsWhitespaceChar(*tok) {
			return c.inHeadModeHandler(tok)
		}
	case endOfFileToken:
	}
	c.recordError(dom.NestedNoscriptInHead)
	c.openElements.Pop()
	c.mode = inHeadMode
	return true
}

// afterHeadModeHandler implements "the after head insertion mode".
func (c *treeConstructor) afterHeadModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case characterToken:
		if tokenIsWhitespaceChar(*tok) {
			c.insertCharacter(rune(tok.Data[0]))
			return false
		}
	case commentToken:
		c.insertComment(tok.Data, nil)
		return false
	case docTypeToken:
		c.recordError(dom.GenericParseError)
		return false
	case startTagToken:
		switch tok.TagName {
		case "html":
			return c.inBodyModeHandler(tok)
		case "body":
			c.insertHTMLElement(*tok)
			c.frameset = framesetNotOK
			c.doc.Body = c.currentNode()
			c.mode = inBodyMode
			return false
		case "frameset":
			c.insertHTMLElement(*tok)
			c.mode = inFramesetMode
			return false
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
			"style", "template", "title":
			c.recordError(dom.UnexpectedEndTag)
			if c.headPointer == nil {
				return false
			}
			c.openElements.Push(c.headPointer)
			c.inHeadModeHandler(tok)
			c.openElements.RemoveNode(c.headPointer)
			return false
		case "head":
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
	case endTagToken:
		switch tok.TagName {
		case "template":
			return c.inHeadModeHandler(tok)
		case "body", "html", "br":
		default:
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
	case endOfFileToken:
	}
	body := c.insertHTMLElement(Token{TokenType: startTagToken, TagName: "body"})
	c.doc.Body = body
	c.mode = inBodyMode
	return true
}
