package parser

import "github.com/heathj/html5parse/parser/dom"

// stepAttributeFamily implements the attribute-name/attribute-value state
// group shared by every tag-producing state:
// https://html.spec.whatwg.org/multipage/parsing.html#before-attribute-name-state
//
// Attributes accumulate into TokenBuilder's single attributeKey/Value pair
// rather than a fresh struct per attribute; CommitAttribute flushes that
// pair into the token's attribute list and is therefore called at every
// point it would otherwise "start a new attribute" or finish the tag.
func (t *HTMLTokenizer) stepAttributeFamily() {
	c := t.input.consume()
	switch t.state {
	case beforeAttributeNameState:
		switch {
		case isWhitespace(c):
		case c == '/' || c == '>' || c == eof:
			t.input.reconsume()
			t.state = afterAttributeNameState
		case c == '=':
			t.recordError(dom.UnexpectedEqualsSignBeforeAttributeName)
			t.tokenBuilder.CommitAttribute()
			t.tokenBuilder.WriteAttributeName('=')
			t.state = attributeNameState
		default:
			t.tokenBuilder.CommitAttribute()
			t.input.reconsume()
			t.state = attributeNameState
		}

	case attributeNameState:
		switch {
		case isWhitespace(c) || c == '/' || c == '>' || c == eof:
			if t.tokenBuilder.RemoveDuplicateAttributeName() {
				t.recordError(dom.DuplicateAttribute)
			}
			t.input.reconsume()
			t.state = afterAttributeNameState
		case c == '=':
			if t.tokenBuilder.RemoveDuplicateAttributeName() {
				t.recordError(dom.DuplicateAttribute)
			}
			t.state = beforeAttributeValueState
		case isASCIIUpper(c):
			t.tokenBuilder.WriteAttributeName(asciiLower(c))
		case c == 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.tokenBuilder.WriteAttributeName(0xFFFD)
		case c == '"' || c == '\'' || c == '<':
			t.recordError(dom.UnexpectedCharacterInAttributeName)
			t.tokenBuilder.WriteAttributeName(c)
		default:
			t.tokenBuilder.WriteAttributeName(c)
		}

	case afterAttributeNameState:
		switch {
		case isWhitespace(c):
		case c == '/':
			t.tokenBuilder.CommitAttribute()
			t.state = selfClosingStartTagState
		case c == '=':
			t.state = beforeAttributeValueState
		case c == '>':
			t.tokenBuilder.CommitAttribute()
			t.state = t.emitCurrentTag()
		case c == eof:
			t.recordError(dom.EOFInTag)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.tokenBuilder.CommitAttribute()
			t.input.reconsume()
			t.state = attributeNameState
		}

	case beforeAttributeValueState:
		switch {
		case isWhitespace(c):
		case c == '"':
			t.state = attributeValueDoubleQuotedState
		case c == '\'':
			t.state = attributeValueSingleQuotedState
		case c == '>':
			t.recordError(dom.MissingAttributeValue)
			t.tokenBuilder.CommitAttribute()
			t.state = t.emitCurrentTag()
		default:
			t.input.reconsume()
			t.state = attributeValueUnquotedState
		}

	case attributeValueDoubleQuotedState:
		switch c {
		case '"':
			t.tokenBuilder.CommitAttribute()
			t.state = afterAttributeValueQuotedState
		case '&':
			t.returnState = attributeValueDoubleQuotedState
			t.state = characterReferenceState
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.tokenBuilder.WriteAttributeValue(0xFFFD)
		case eof:
			t.recordError(dom.EOFInTag)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.tokenBuilder.WriteAttributeValue(c)
		}

	case attributeValueSingleQuotedState:
		switch c {
		case '\'':
			t.tokenBuilder.CommitAttribute()
			t.state = afterAttributeValueQuotedState
		case '&':
			t.returnState = attributeValueSingleQuotedState
			t.state = characterReferenceState
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.tokenBuilder.WriteAttributeValue(0xFFFD)
		case eof:
			t.recordError(dom.EOFInTag)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.tokenBuilder.WriteAttributeValue(c)
		}

	case attributeValueUnquotedState:
		switch {
		case isWhitespace(c):
			t.tokenBuilder.CommitAttribute()
			t.state = beforeAttributeNameState
		case c == '&':
			t.returnState = attributeValueUnquotedState
			t.state = characterReferenceState
		case c == '>':
			t.tokenBuilder.CommitAttribute()
			t.state = t.emitCurrentTag()
		case c == 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.tokenBuilder.WriteAttributeValue(0xFFFD)
		case c == '"' || c == '\'' || c == '<' || c == '=' || c == '`':
			t.recordError(dom.UnexpectedCharacterInUnquotedAttributeValue)
			t.tokenBuilder.WriteAttributeValue(c)
		case c == eof:
			t.recordError(dom.EOFInTag)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.tokenBuilder.WriteAttributeValue(c)
		}

	case afterAttributeValueQuotedState:
		switch {
		case isWhitespace(c):
			t.state = beforeAttributeNameState
		case c == '/':
			t.state = selfClosingStartTagState
		case c == '>':
			t.state = t.emitCurrentTag()
		case c == eof:
			t.recordError(dom.EOFInTag)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.recordError(dom.MissingWhitespaceBetweenAttributes)
			t.input.reconsume()
			t.state = beforeAttributeNameState
		}

	case selfClosingStartTagState:
		switch c {
		case '>':
			t.tokenBuilder.EnableSelfClosing()
			t.state = t.emitCurrentTag()
		case eof:
			t.recordError(dom.EOFInTag)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.recordError(dom.UnexpectedSolidusInTag)
			t.input.reconsume()
			t.state = beforeAttributeNameState
		}
	}
}
