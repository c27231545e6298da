package parser

import "github.com/heathj/html5parse/parser/dom"

// inTemplateModeHandler implements "the in template insertion mode".
func (c *treeConstructor) inTemplateModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case characterToken, commentToken, docTypeToken:
		return c.inBodyModeHandler(tok)

	case startTagToken:
		switch tok.TagName {
		case "base", "basefont", "bgsound", "link", "meta", "noframes",
			"script", "style", "template", "title":
			return c.inHeadModeHandler(tok)
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			c.popTemplateInsertionMode()
			c.pushTemplateInsertionMode(inTableMode)
			c.mode = inTableMode
			return true
		case "col":
			c.popTemplateInsertionMode()
			c.pushTemplateInsertionMode(inColumnGroupMode)
			c.mode = inColumnGroupMode
			return true
		case "tr":
			c.popTemplateInsertionMode()
			c.pushTemplateInsertionMode(inTableBodyMode)
			c.mode = inTableBodyMode
			return true
		case "td", "th":
			c.popTemplateInsertionMode()
			c.pushTemplateInsertionMode(inRowMode)
			c.mode = inRowMode
			return true
		default:
			c.popTemplateInsertionMode()
			c.pushTemplateInsertionMode(inBodyMode)
			c.mode = inBodyMode
			return true
		}

	case endTagToken:
		if tok.TagName == "template" {
			return c.inHeadModeHandler(tok)
		}
		c.recordError(dom.UnexpectedEndTag)
		return false

	case endOfFileToken:
		if !c.openElements.ContainsName("template") {
			c.stopParsing()
			return false
		}
		c.recordError(dom.GenericParseError)
		c.openElements.PopUntil("template")
		c.afe.ClearToLastMarker()
		c.popTemplateInsertionMode()
		c.resetInsertionModeAppropriately()
		return true
	}
	return false
}
