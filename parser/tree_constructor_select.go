package parser

import "github.com/heathj/html5parse/parser/dom"

// inSelectModeHandler implements "the in select insertion mode".
func (c *treeConstructor) inSelectModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case characterToken:
		r := []rune(tok.Data)[0]
		if r == 0 {
			c.recordError(dom.UnexpectedNullCharacter)
			return false
		}
		c.insertCharacter(r)
		return false
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
		case "option":
			if c.currentNode() != nil && c.currentNode().NodeName == "option" {
				c.openElements.Pop()
			}
			c.insertHTMLElement(*tok)
			return false
		case "optgroup":
			if c.currentNode() != nil && c.currentNode().NodeName == "option" {
				c.openElements.Pop()
			}
			if c.currentNode() != nil && c.currentNode().NodeName == "optgroup" {
				c.openElements.Pop()
			}
			c.insertHTMLElement(*tok)
			return false
		case "select":
			c.recordError(dom.GenericParseError)
			if !c.openElements.ContainsElementInSelectScope("select") {
				return false
			}
			c.openElements.PopUntil("select")
			c.resetInsertionModeAppropriately()
			return false
		case "input", "keygen", "textarea":
			c.recordError(dom.GenericParseError)
			if !c.openElements.ContainsElementInSelectScope("select") {
				return false
			}
			c.openElements.PopUntil("select")
			c.resetInsertionModeAppropriately()
			return true
		case "script", "template":
			return c.inHeadModeHandler(tok)
		}
	case endTagToken:
		switch tok.TagName {
		case "optgroup":
			nl := c.openElements.NodeList
			if len(nl) >= 2 && nl[len(nl)-1].NodeName == "option" && nl[len(nl)-2].NodeName == "optgroup" {
				c.openElements.Pop()
			}
			if c.currentNode() != nil && c.currentNode().NodeName == "optgroup" {
				c.openElements.Pop()
			} else {
				c.recordError(dom.UnexpectedEndTag)
			}
			return false
		case "option":
			if c.currentNode() != nil && c.currentNode().NodeName == "option" {
				c.openElements.Pop()
			} else {
				c.recordError(dom.UnexpectedEndTag)
			}
			return false
		case "select":
			if !c.openElements.ContainsElementInSelectScope("select") {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.openElements.PopUntil("select")
			c.resetInsertionModeAppropriately()
			return false
		case "template":
			return c.inHeadModeHandler(tok)
		}
	case endOfFileToken:
		return c.inBodyModeHandler(tok)
	}
	c.recordError(dom.GenericParseError)
	return false
}

// inSelectInTableModeHandler implements "the in select in table insertion
// mode".
func (c *treeConstructor) inSelectInTableModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case startTagToken:
		switch tok.TagName {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			c.recordError(dom.GenericParseError)
			c.openElements.PopUntil("select")
			c.resetInsertionModeAppropriately()
			return true
		}
	case endTagToken:
		switch tok.TagName {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			c.recordError(dom.GenericParseError)
			if !c.openElements.ContainsElementInTableScope(tok.TagName) {
				return false
			}
			c.openElements.PopUntil("select")
			c.resetInsertionModeAppropriately()
			return true
		}
	}
	return c.inSelectModeHandler(tok)
}
