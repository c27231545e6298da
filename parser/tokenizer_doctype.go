package parser

import "github.com/heathj/html5parse/parser/dom"

// stepDoctypeFamily implements the DOCTYPE state group:
// https://html.spec.whatwg.org/multipage/parsing.html#doctype-state
func (t *HTMLTokenizer) stepDoctypeFamily() {
	c := t.input.consume()
	switch t.state {
	case doctypeState:
		switch {
		case isWhitespace(c):
			t.state = beforeDoctypeNameState
		case c == '>':
			t.input.reconsume()
			t.state = beforeDoctypeNameState
		case c == eof:
			t.recordError(dom.EOFInDOCTYPE)
			t.tokenBuilder.Reset()
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.recordError(dom.MissingWhitespaceBeforeDOCTYPEName)
			t.input.reconsume()
			t.state = beforeDoctypeNameState
		}

	case beforeDoctypeNameState:
		switch {
		case isWhitespace(c):
		case isASCIIUpper(c):
			t.tokenBuilder.Reset()
			t.tokenBuilder.WriteName(asciiLower(c))
			t.state = doctypeNameState
		case c == 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.tokenBuilder.Reset()
			t.tokenBuilder.WriteName(0xFFFD)
			t.state = doctypeNameState
		case c == '>':
			t.recordError(dom.MissingDOCTYPEName)
			t.tokenBuilder.Reset()
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.state = dataState
		case c == eof:
			t.recordError(dom.EOFInDOCTYPE)
			t.tokenBuilder.Reset()
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.tokenBuilder.Reset()
			t.tokenBuilder.WriteName(c)
			t.state = doctypeNameState
		}

	case doctypeNameState:
		switch {
		case isWhitespace(c):
			t.state = afterDoctypeNameState
		case c == '>':
			t.emit(t.tokenBuilder.DocTypeToken())
			t.state = dataState
		case isASCIIUpper(c):
			t.tokenBuilder.WriteName(asciiLower(c))
		case c == 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.tokenBuilder.WriteName(0xFFFD)
		case c == eof:
			t.recordError(dom.EOFInDOCTYPE)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.tokenBuilder.WriteName(c)
		}

	case afterDoctypeNameState:
		switch {
		case isWhitespace(c):
		case c == '>':
			t.emit(t.tokenBuilder.DocTypeToken())
			t.state = dataState
		case c == eof:
			t.recordError(dom.EOFInDOCTYPE)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.input.reconsume()
			switch {
			case t.input.nextMatches("public", caseInsensitiveASCII):
				for i := 0; i < len("public"); i++ {
					t.input.consume()
				}
				t.state = afterDoctypePublicKeywordState
			case t.input.nextMatches("system", caseInsensitiveASCII):
				for i := 0; i < len("system"); i++ {
					t.input.consume()
				}
				t.state = afterDoctypeSystemKeywordState
			default:
				t.recordError(dom.GenericParseError)
				t.tokenBuilder.EnableForceQuirks()
				t.state = bogusDoctypeState
			}
		}

	case afterDoctypePublicKeywordState:
		switch c {
		case ' ', '\t', '\n', '\f':
			t.state = beforeDoctypePublicIdentifierState
		case '"':
			t.recordError(dom.MissingWhitespaceAfterDOCTYPEPublicKeyword)
			t.tokenBuilder.WritePublicIdentifierEmpty()
			t.state = doctypePublicIdentifierDoubleQuotedState
		case '\'':
			t.recordError(dom.MissingWhitespaceAfterDOCTYPEPublicKeyword)
			t.tokenBuilder.WritePublicIdentifierEmpty()
			t.state = doctypePublicIdentifierSingleQuotedState
		case '>':
			t.recordError(dom.GenericParseError)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.state = dataState
		case eof:
			t.recordError(dom.EOFInDOCTYPE)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.recordError(dom.MissingQuoteBeforeDOCTYPEPublicIdentifier)
			t.tokenBuilder.EnableForceQuirks()
			t.input.reconsume()
			t.state = bogusDoctypeState
		}

	case beforeDoctypePublicIdentifierState:
		switch {
		case isWhitespace(c):
		case c == '"':
			t.tokenBuilder.WritePublicIdentifierEmpty()
			t.state = doctypePublicIdentifierDoubleQuotedState
		case c == '\'':
			t.tokenBuilder.WritePublicIdentifierEmpty()
			t.state = doctypePublicIdentifierSingleQuotedState
		case c == '>':
			t.recordError(dom.GenericParseError)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.state = dataState
		case c == eof:
			t.recordError(dom.EOFInDOCTYPE)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.recordError(dom.MissingQuoteBeforeDOCTYPEPublicIdentifier)
			t.tokenBuilder.EnableForceQuirks()
			t.input.reconsume()
			t.state = bogusDoctypeState
		}

	case doctypePublicIdentifierDoubleQuotedState:
		t.doctypeIdentifierQuoted(c, '"', true, afterDoctypePublicIdentifierState)
	case doctypePublicIdentifierSingleQuotedState:
		t.doctypeIdentifierQuoted(c, '\'', true, afterDoctypePublicIdentifierState)

	case afterDoctypePublicIdentifierState:
		switch {
		case isWhitespace(c):
			t.state = betweenDoctypePublicAndSystemIdentifiersState
		case c == '>':
			t.emit(t.tokenBuilder.DocTypeToken())
			t.state = dataState
		case c == '"':
			t.recordError(dom.MissingWhitespaceBeforeDOCTYPESystemIdentifier)
			t.tokenBuilder.WriteSystemIdentifierEmpty()
			t.state = doctypeSystemIdentifierDoubleQuotedState
		case c == '\'':
			t.recordError(dom.MissingWhitespaceBeforeDOCTYPESystemIdentifier)
			t.tokenBuilder.WriteSystemIdentifierEmpty()
			t.state = doctypeSystemIdentifierSingleQuotedState
		case c == eof:
			t.recordError(dom.EOFInDOCTYPE)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.recordError(dom.GenericParseError)
			t.tokenBuilder.EnableForceQuirks()
			t.input.reconsume()
			t.state = bogusDoctypeState
		}

	case betweenDoctypePublicAndSystemIdentifiersState:
		switch {
		case isWhitespace(c):
		case c == '>':
			t.emit(t.tokenBuilder.DocTypeToken())
			t.state = dataState
		case c == '"':
			t.tokenBuilder.WriteSystemIdentifierEmpty()
			t.state = doctypeSystemIdentifierDoubleQuotedState
		case c == '\'':
			t.tokenBuilder.WriteSystemIdentifierEmpty()
			t.state = doctypeSystemIdentifierSingleQuotedState
		case c == eof:
			t.recordError(dom.EOFInDOCTYPE)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.recordError(dom.GenericParseError)
			t.tokenBuilder.EnableForceQuirks()
			t.input.reconsume()
			t.state = bogusDoctypeState
		}

	case afterDoctypeSystemKeywordState:
		switch c {
		case ' ', '\t', '\n', '\f':
			t.state = beforeDoctypeSystemIdentifierState
		case '"':
			t.recordError(dom.MissingWhitespaceAfterDOCTYPESystemKeyword)
			t.tokenBuilder.WriteSystemIdentifierEmpty()
			t.state = doctypeSystemIdentifierDoubleQuotedState
		case '\'':
			t.recordError(dom.MissingWhitespaceAfterDOCTYPESystemKeyword)
			t.tokenBuilder.WriteSystemIdentifierEmpty()
			t.state = doctypeSystemIdentifierSingleQuotedState
		case '>':
			t.recordError(dom.GenericParseError)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.state = dataState
		case eof:
			t.recordError(dom.EOFInDOCTYPE)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.recordError(dom.MissingQuoteBeforeDOCTYPESystemIdentifier)
			t.tokenBuilder.EnableForceQuirks()
			t.input.reconsume()
			t.state = bogusDoctypeState
		}

	case beforeDoctypeSystemIdentifierState:
		switch {
		case isWhitespace(c):
		case c == '"':
			t.tokenBuilder.WriteSystemIdentifierEmpty()
			t.state = doctypeSystemIdentifierDoubleQuotedState
		case c == '\'':
			t.tokenBuilder.WriteSystemIdentifierEmpty()
			t.state = doctypeSystemIdentifierSingleQuotedState
		case c == '>':
			t.recordError(dom.GenericParseError)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.state = dataState
		case c == eof:
			t.recordError(dom.EOFInDOCTYPE)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.recordError(dom.MissingQuoteBeforeDOCTYPESystemIdentifier)
			t.tokenBuilder.EnableForceQuirks()
			t.input.reconsume()
			t.state = bogusDoctypeState
		}

	case doctypeSystemIdentifierDoubleQuotedState:
		t.doctypeIdentifierQuoted(c, '"', false, afterDoctypeSystemIdentifierState)
	case doctypeSystemIdentifierSingleQuotedState:
		t.doctypeIdentifierQuoted(c, '\'', false, afterDoctypeSystemIdentifierState)

	case afterDoctypeSystemIdentifierState:
		switch {
		case isWhitespace(c):
		case c == '>':
			t.emit(t.tokenBuilder.DocTypeToken())
			t.state = dataState
		case c == eof:
			t.recordError(dom.EOFInDOCTYPE)
			t.tokenBuilder.EnableForceQuirks()
			t.emit(t.tokenBuilder.DocTypeToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.recordError(dom.UnexpectedCharacterAfterDOCTYPESystemIdentifier)
			t.input.reconsume()
			t.state = bogusDoctypeState
		}

	case bogusDoctypeState:
		switch c {
		case '>':
			t.emit(t.tokenBuilder.DocTypeToken())
			t.state = dataState
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
		case eof:
			t.emit(t.tokenBuilder.DocTypeToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		}
	}
}

// doctypeIdentifierQuoted implements the four near-identical
// public/system-identifier-quoted states.
func (t *HTMLTokenizer) doctypeIdentifierQuoted(c, quote rune, public bool, doneState tokenizerState) {
	write := t.tokenBuilder.WriteSystemIdentifier
	if public {
		write = t.tokenBuilder.WritePublicIdentifier
	}
	switch c {
	case quote:
		t.state = doneState
	case 0:
		t.recordError(dom.UnexpectedNullCharacter)
		write(0xFFFD)
	case '>':
		t.recordError(dom.GenericParseError)
		t.tokenBuilder.EnableForceQuirks()
		t.emit(t.tokenBuilder.DocTypeToken())
		t.state = dataState
	case eof:
		t.recordError(dom.EOFInDOCTYPE)
		t.tokenBuilder.EnableForceQuirks()
		t.emit(t.tokenBuilder.DocTypeToken())
		t.emit(t.tokenBuilder.EndOfFileToken())
	default:
		write(c)
	}
}
