package parser

import "github.com/heathj/html5parse/parser/dom"

// stepDataFamily implements the Data, RCDATA, RAWTEXT, ScriptData and
// PLAINTEXT states: https://html.spec.whatwg.org/multipage/parsing.html#data-state
func (t *HTMLTokenizer) stepDataFamily() {
	c := t.input.consume()
	switch t.state {
	case dataState:
		switch c {
		case '&':
			t.returnState = dataState
			t.state = characterReferenceState
		case '<':
			t.state = tagOpenState
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.emit(t.tokenBuilder.CharacterToken(0xFFFD))
		case eof:
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.emit(t.tokenBuilder.CharacterToken(c))
		}
	case rcDataState:
		switch c {
		case '&':
			t.returnState = rcDataState
			t.state = characterReferenceState
		case '<':
			t.state = rcDataLessThanSignState
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.emit(t.tokenBuilder.CharacterToken(0xFFFD))
		case eof:
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.emit(t.tokenBuilder.CharacterToken(c))
		}
	case rawTextState:
		switch c {
		case '<':
			t.state = rawTextLessThanSignState
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.emit(t.tokenBuilder.CharacterToken(0xFFFD))
		case eof:
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.emit(t.tokenBuilder.CharacterToken(c))
		}
	case scriptDataState:
		switch c {
		case '<':
			t.state = scriptDataLessThanSignState
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.emit(t.tokenBuilder.CharacterToken(0xFFFD))
		case eof:
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.emit(t.tokenBuilder.CharacterToken(c))
		}
	case plaintextState:
		switch c {
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.emit(t.tokenBuilder.CharacterToken(0xFFFD))
		case eof:
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.emit(t.tokenBuilder.CharacterToken(c))
		}
	}
}
