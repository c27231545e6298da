package parser

import "github.com/heathj/html5parse/parser/dom"

// inTableModeHandler implements "the in table insertion mode":
// https://html.spec.whatwg.org/multipage/parsing.html#the-in-table-insertion-mode
func (c *treeConstructor) inTableModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case characterToken:
		switch c.currentNode().NodeName {
		case "table", "tbody", "tfoot", "thead", "tr":
			c.pendingTableChars.Reset()
			c.pendingTableCharsNonWS = false
			c.originalMode = c.mode
			c.mode = inTableTextMode
			return true
		}
	case commentToken:
		c.insertComment(tok.Data, nil)
		return false
	case docTypeToken:
		c.recordError(dom.GenericParseError)
		return false
	case startTagToken:
		switch tok.TagName {
		case "caption":
			c.openElements.ClearToContextTable()
			c.afe.Push(dom.ScopeMarker)
			c.insertHTMLElement(*tok)
			c.mode = inCaptionMode
			return false
		case "colgroup":
			c.openElements.ClearToContextTable()
			c.insertHTMLElement(*tok)
			c.mode = inColumnGroupMode
			return false
		case "col":
			c.openElements.ClearToContextTable()
			c.insertHTMLElement(Token{TokenType: startTagToken, TagName: "colgroup"})
			c.mode = inColumnGroupMode
			return true
		case "tbody", "tfoot", "thead":
			c.openElements.ClearToContextTable()
			c.insertHTMLElement(*tok)
			c.mode = inTableBodyMode
			return false
		case "td", "th", "tr":
			c.openElements.ClearToContextTable()
			c.insertHTMLElement(Token{TokenType: startTagToken, TagName: "tbody"})
			c.mode = inTableBodyMode
			return true
		case "table":
			c.recordError(dom.GenericParseError)
			if !c.openElements.ContainsElementInTableScope("table") {
				return false
			}
			c.openElements.PopUntil("table")
			c.resetInsertionModeAppropriately()
			return true
		case "style", "script", "template":
			return c.inHeadModeHandler(tok)
		case "input":
			if v, ok := trimmedLowerAttr(*tok, "type"); !ok || v != "hidden" {
				break
			}
			c.recordError(dom.GenericParseError)
			c.insertHTMLElement(*tok)
			c.openElements.Pop()
			c.acknowledgeSelfClosingIfSet(*tok, false)
			return false
		case "form":
			c.recordError(dom.GenericParseError)
			if c.formPointer != nil || c.openElements.ContainsName("template") {
				return false
			}
			form := c.insertHTMLElement(*tok)
			c.formPointer = form
			c.openElements.Pop()
			return false
		}
	case endTagToken:
		switch tok.TagName {
		case "table":
			if !c.openElements.ContainsElementInTableScope("table") {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.openElements.PopUntil("table")
			c.resetInsertionModeAppropriately()
			return false
		case "body", "caption", "col", "colgroup", "html", "tbody", "td",
			"tfoot", "th", "thead", "tr":
			c.recordError(dom.UnexpectedEndTag)
			return false
		case "template":
			return c.inHeadModeHandler(tok)
		}
	case endOfFileToken:
		return c.inBodyModeHandler(tok)
	}
	c.recordError(dom.GenericParseError)
	prev := c.fosterParenting
	c.fosterParenting = true
	c.inBodyModeHandler(tok)
	c.fosterParenting = prev
	return false
}

// inTableTextModeHandler implements "the in table text insertion mode":
// accumulate character tokens, then decide on the next non-character token
// whether to foster-parent them (any non-whitespace seen) or insert them
// normally (all whitespace).
func (c *treeConstructor) inTableTextModeHandler(tok *Token) bool {
	if tok.TokenType == characterToken {
		r := []rune(tok.Data)[0]
		if r == 0 {
			c.recordError(dom.UnexpectedNullCharacter)
			return false
		}
		c.pendingTableChars.WriteRune(r)
		if !isHTMLWhitespace(r) {
			c.pendingTableCharsNonWS = true
		}
		return false
	}

	if c.pendingTableCharsNonWS {
		prev := c.fosterParenting
		c.fosterParenting = true
		for _, r := range c.pendingTableChars.String() {
			c.reconstructActiveFormattingElements()
			c.insertCharacter(r)
		}
		c.frameset = framesetNotOK
		c.fosterParenting = prev
	} else {
		for _, r := range c.pendingTableChars.String() {
			c.insertCharacter(r)
		}
	}
	c.mode = c.originalMode
	return true
}

// inCaptionModeHandler implements "the in caption insertion mode".
func (c *treeConstructor) inCaptionModeHandler(tok *Token) bool {
	endCaption := func() bool {
		if !c.openElements.ContainsElementInTableScope("caption") {
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
		c.generateImpliedEndTags()
		if cur := c.currentNode(); cur == nil || cur.NodeName != "caption" {
			c.recordError(dom.UnexpectedEndTag)
		}
		c.openElements.PopUntil("caption")
		c.afe.ClearToLastMarker()
		c.mode = inTableMode
		return true
	}

	switch tok.TokenType {
	case startTagToken:
		switch tok.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if endCaption() {
				return true
			}
			return false
		}
	case endTagToken:
		switch tok.TagName {
		case "caption":
			endCaption()
			return false
		case "table":
			if endCaption() {
				return true
			}
			return false
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
	}
	return c.inBodyModeHandler(tok)
}

// inColumnGroupModeHandler implements "the in column group insertion mode".
func (c *treeConstructor) inColumnGroupModeHandler(tok *Token) bool {
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
		case "col":
			c.insertHTMLElement(*tok)
			c.openElements.Pop()
			c.acknowledgeSelfClosingIfSet(*tok, false)
			return false
		case "template":
			return c.inHeadModeHandler(tok)
		}
	case endTagToken:
		switch tok.TagName {
		case "colgroup":
			if c.currentNode() == nil || c.currentNode().NodeName != "colgroup" {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.openElements.Pop()
			c.mode = inTableMode
			return false
		case "col":
			c.recordError(dom.UnexpectedEndTag)
			return false
		case "template":
			return c.inHeadModeHandler(tok)
		}
	case endOfFileToken:
		return c.inBodyModeHandler(tok)
	}
	if c.currentNode() == nil || c.currentNode().NodeName != "colgroup" {
		c.recordError(dom.UnexpectedEndTag)
		return false
	}
	c.openElements.Pop()
	c.mode = inTableMode
	return true
}

// inTableBodyModeHandler implements "the in table body insertion mode".
func (c *treeConstructor) inTableBodyModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case startTagToken:
		switch tok.TagName {
		case "tr":
			c.openElements.ClearToContextTableBody()
			c.insertHTMLElement(*tok)
			c.mode = inRowMode
			return false
		case "th", "td":
			c.recordError(dom.GenericParseError)
			c.openElements.ClearToContextTableBody()
			c.insertHTMLElement(Token{TokenType: startTagToken, TagName: "tr"})
			c.mode = inRowMode
			return true
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !c.openElements.ContainsElementsInScope("tbody", "thead", "tfoot") {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.openElements.ClearToContextTableBody()
			c.openElements.Pop()
			c.mode = inTableMode
			return true
		}
	case endTagToken:
		switch tok.TagName {
		case "tbody", "tfoot", "thead":
			if !c.openElements.ContainsElementInTableScope(tok.TagName) {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.openElements.ClearToContextTableBody()
			c.openElements.Pop()
			c.mode = inTableMode
			return false
		case "table":
			if !c.openElements.ContainsElementsInScope("tbody", "thead", "tfoot") {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.openElements.ClearToContextTableBody()
			c.openElements.Pop()
			c.mode = inTableMode
			return true
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
	}
	return c.inTableModeHandler(tok)
}

// inRowModeHandler implements "the in row insertion mode".
func (c *treeConstructor) inRowModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case startTagToken:
		switch tok.TagName {
		case "th", "td":
			c.openElements.ClearToContextRow()
			c.insertHTMLElement(*tok)
			c.mode = inCellMode
			c.afe.Push(dom.ScopeMarker)
			return false
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !c.openElements.ContainsElementInTableScope("tr") {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.openElements.ClearToContextRow()
			c.openElements.Pop()
			c.mode = inTableBodyMode
			return true
		}
	case endTagToken:
		switch tok.TagName {
		case "tr":
			if !c.openElements.ContainsElementInTableScope("tr") {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.openElements.ClearToContextRow()
			c.openElements.Pop()
			c.mode = inTableBodyMode
			return false
		case "table":
			if !c.openElements.ContainsElementInTableScope("tr") {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.openElements.ClearToContextRow()
			c.openElements.Pop()
			c.mode = inTableBodyMode
			return true
		case "tbody", "tfoot", "thead":
			if !c.openElements.ContainsElementInTableScope(tok.TagName) ||
				!c.openElements.ContainsElementInTableScope("tr") {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.openElements.ClearToContextRow()
			c.openElements.Pop()
			c.mode = inTableBodyMode
			return true
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			c.recordError(dom.UnexpectedEndTag)
			return false
		}
	}
	return c.inTableModeHandler(tok)
}

// inCellModeHandler implements "the in cell insertion mode".
func (c *treeConstructor) inCellModeHandler(tok *Token) bool {
	closeCell := func() {
		c.generateImpliedEndTags()
		cur := c.currentNode()
		if cur == nil || (cur.NodeName != "td" && cur.NodeName != "th") {
			c.recordError(dom.UnexpectedEndTag)
		}
		c.openElements.PopUntilConditions(func(e *dom.Node) bool { return e.NodeName == "td" || e.NodeName == "th" })
		c.openElements.Pop()
		c.afe.ClearToLastMarker()
		c.mode = inRowMode
	}

	switch tok.TokenType {
	case startTagToken:
		switch tok.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !c.openElements.ContainsElementsInScope("td", "th") {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			closeCell()
			return true
		}
	case endTagToken:
		switch tok.TagName {
		case "td", "th":
			if !c.openElements.ContainsElementInTableScope(tok.TagName) {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			closeCell()
			return false
		case "body", "caption", "col", "colgroup", "html":
			c.recordError(dom.UnexpectedEndTag)
			return false
		case "table", "tbody", "tfoot", "thead", "tr":
			if !c.openElements.ContainsElementInTableScope(tok.TagName) {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			closeCell()
			return true
		}
	}
	return c.inBodyModeHandler(tok)
}
