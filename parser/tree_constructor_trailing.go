package parser

import "github.com/heathj/html5parse/parser/dom"

// afterBodyModeHandler implements "the after body insertion mode".
func (c *treeConstructor) afterBodyModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case characterToken:
		if tokenIsWhitespaceChar(*tok) {
			return c.inBodyModeHandler(tok)
		}
	case commentToken:
		c.openElements.NodeList[0].AppendChild(dom.NewCommentNode(c.doc, tok.Data))
		return false
	case docTypeToken:
		c.recordError(dom.GenericParseError)
		return false
	case startTagToken:
		if tok.TagName == "html" {
			return c.inBodyModeHandler(tok)
		}
	case endTagToken:
		if tok.TagName == "html" {
			c.mode = afterAfterBodyMode
			return false
		}
	case endOfFileToken:
		c.stopParsing()
		return false
	}
	c.recordError(dom.GenericParseError)
	c.mode = inBodyMode
	return true
}

// inFramesetModeHandler implements "the in frameset insertion mode".
func (c *treeConstructor) inFramesetModeHandler(tok *Token) bool {
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
		case "frameset":
			c.insertHTMLElement(*tok)
			return false
		case "frame":
			c.insertHTMLElement(*tok)
			c.openElements.Pop()
			c.acknowledgeSelfClosingIfSet(*tok, false)
			return false
		case "noframes":
			return c.inHeadModeHandler(tok)
		}
	case endTagToken:
		if tok.TagName == "frameset" {
			if c.currentNode() != nil && c.currentNode().NodeName == "html" {
				c.recordError(dom.UnexpectedEndTag)
				return false
			}
			c.openElements.Pop()
			if c.currentNode() != nil && c.currentNode().NodeName != "frameset" {
				c.mode = afterFramesetMode
			}
			return false
		}
	case endOfFileToken:
		c.stopParsing()
		return false
	}
	c.recordError(dom.GenericParseError)
	return false
}

// afterFramesetModeHandler implements "the after frameset insertion mode".
func (c *treeConstructor) afterFramesetModeHandler(tok *Token) bool {
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
		case "noframes":
			return c.inHeadModeHandler(tok)
		}
	case endTagToken:
		if tok.TagName == "html" {
			c.mode = afterAfterFramesetMode
			return false
		}
	case endOfFileToken:
		c.stopParsing()
		return false
	}
	c.recordError(dom.GenericParseError)
	return false
}

// afterAfterBodyModeHandler implements "the after after body insertion
// mode".
func (c *treeConstructor) afterAfterBodyModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case commentToken:
		c.insertComment(tok.Data, c.doc)
		return false
	case docTypeToken:
		return c.inBodyModeHandler(tok)
	case characterToken:
		if tokenIsWhitespaceChar(*tok) {
			return c.inBodyModeHandler(tok)
		}
	case startTagToken:
		if tok.TagName == "html" {
			return c.inBodyModeHandler(tok)
		}
	case endOfFileToken:
		c.stopParsing()
		return false
	}
	c.recordError(dom.GenericParseError)
	c.mode = inBodyMode
	return true
}

// afterAfterFramesetModeHandler implements "the after after frameset
// insertion mode".
func (c *treeConstructor) afterAfterFramesetModeHandler(tok *Token) bool {
	switch tok.TokenType {
	case commentToken:
		c.insertComment(tok.Data, c.doc)
		return false
	case docTypeToken:
		return c.inBodyModeHandler(tok)
	case characterToken:
		if tokenIsWhitespaceChar(*tok) {
			return c.inBodyModeHandler(tok)
		}
	case startTagToken:
		switch tok.TagName {
		case "html":
			return c.inBodyModeHandler(tok)
		case "noframes":
			return c.inHeadModeHandler(tok)
		}
	case endOfFileToken:
		c.stopParsing()
		return false
	}
	c.recordError(dom.GenericParseError)
	return false
}
