package parser

import "github.com/heathj/html5parse/parser/dom"

// stepCDATAFamily implements the CDATA section states, reached only from
// markupDeclarationOpenState when the adjusted current node is foreign:
// https://html.spec.whatwg.org/multipage/parsing.html#cdata-section-state
func (t *HTMLTokenizer) stepCDATAFamily() {
	c := t.input.consume()
	switch t.state {
	case cdataSectionState:
		switch c {
		case ']':
			t.state = cdataSectionBracketState
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.emit(t.tokenBuilder.CharacterToken(0xFFFD))
		case eof:
			t.recordError(dom.EOFInCDATA)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.emit(t.tokenBuilder.CharacterToken(c))
		}

	case cdataSectionBracketState:
		if c == ']' {
			t.state = cdataSectionEndState
		} else {
			t.emit(t.tokenBuilder.CharacterToken(']'))
			t.input.reconsume()
			t.state = cdataSectionState
		}

	case cdataSectionEndState:
		switch c {
		case ']':
			t.emit(t.tokenBuilder.CharacterToken(']'))
		case '>':
			t.state = dataState
		default:
			t.emit(t.tokenBuilder.CharacterToken(']'))
			t.emit(t.tokenBuilder.CharacterToken(']'))
			t.input.reconsume()
			t.state = cdataSectionState
		}
	}
}
