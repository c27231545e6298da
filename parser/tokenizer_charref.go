package parser

import "github.com/heathj/html5parse/parser/dom"

// stepCharRefFamily implements character- and numeric-character-reference
// resolution: https://html.spec.whatwg.org/multipage/parsing.html#character-reference-state
func (t *HTMLTokenizer) stepCharRefFamily() {
	switch t.state {
	case characterReferenceState:
		t.tokenBuilder.ResetTempBuffer()
		t.tokenBuilder.WriteTempBuffer('&')
		c := t.input.consume()
		switch {
		case isASCIIAlphanumeric(c):
			t.input.reconsume()
			t.state = namedCharacterReferenceState
		case c == '#':
			t.tokenBuilder.WriteTempBuffer('#')
			t.state = numericCharacterReferenceState
		default:
			t.input.reconsume()
			t.flushCodePointsAsCharacterReference()
			t.state = t.returnState
		}

	case namedCharacterReferenceState:
		t.namedCharacterReference()

	case ambiguousAmpersandState:
		c := t.input.consume()
		switch {
		case isASCIIAlphanumeric(c):
			if wasConsumedByAttribute(t.returnState) {
				t.tokenBuilder.WriteAttributeValue(c)
			} else {
				t.emit(t.tokenBuilder.CharacterToken(c))
			}
		case c == ';':
			t.recordError(dom.UnknownNamedCharacterReference)
			t.input.reconsume()
			t.state = t.returnState
		default:
			t.input.reconsume()
			t.state = t.returnState
		}

	case numericCharacterReferenceState:
		t.tokenBuilder.SetCharRef(0)
		c := t.input.consume()
		if c == 'x' || c == 'X' {
			t.tokenBuilder.WriteTempBuffer(c)
			t.state = hexadecimalCharacterReferenceStartState
		} else {
			t.input.reconsume()
			t.state = decimalCharacterReferenceStartState
		}

	case hexadecimalCharacterReferenceStartState:
		c := t.input.consume()
		if isASCIIHexDigit(c) {
			t.input.reconsume()
			t.state = hexadecimalCharacterReferenceState
		} else {
			t.recordError(dom.AbsenceOfDigitsInNumericCharacterReference)
			t.input.reconsume()
			t.flushCodePointsAsCharacterReference()
			t.state = t.returnState
		}

	case decimalCharacterReferenceStartState:
		c := t.input.consume()
		if isASCIIDigit(c) {
			t.input.reconsume()
			t.state = decimalCharacterReferenceState
		} else {
			t.recordError(dom.AbsenceOfDigitsInNumericCharacterReference)
			t.input.reconsume()
			t.flushCodePointsAsCharacterReference()
			t.state = t.returnState
		}

	case hexadecimalCharacterReferenceState:
		c := t.input.consume()
		switch {
		case isASCIIDigit(c):
			t.tokenBuilder.MultByCharRef(16)
			t.tokenBuilder.AddToCharRef(c - '0')
		case c >= 'A' && c <= 'F':
			t.tokenBuilder.MultByCharRef(16)
			t.tokenBuilder.AddToCharRef(c - 'A' + 10)
		case c >= 'a' && c <= 'f':
			t.tokenBuilder.MultByCharRef(16)
			t.tokenBuilder.AddToCharRef(c - 'a' + 10)
		case c == ';':
			t.state = numericCharacterReferenceEndState
		default:
			t.recordError(dom.MissingSemicolonAfterCharacterReference)
			t.input.reconsume()
			t.state = numericCharacterReferenceEndState
		}

	case decimalCharacterReferenceState:
		c := t.input.consume()
		switch {
		case isASCIIDigit(c):
			t.tokenBuilder.MultByCharRef(10)
			t.tokenBuilder.AddToCharRef(c - '0')
		case c == ';':
			t.state = numericCharacterReferenceEndState
		default:
			t.recordError(dom.MissingSemicolonAfterCharacterReference)
			t.input.reconsume()
			t.state = numericCharacterReferenceEndState
		}

	case numericCharacterReferenceEndState:
		t.numericCharacterReferenceEnd()
	}
}

// namedCharacterReference implements the longest-prefix match against
// namedCharacterReferences, including the in-attribute "ambiguous
// ampersand" exception for a matched name with no trailing semicolon
// immediately followed by '=' or an alphanumeric.
func (t *HTMLTokenizer) namedCharacterReference() {
	lookahead := t.input.peekN(maxNamedCharacterReferenceLen)
	name, resolved, ok := longestNamedCharacterReferenceMatch(lookahead)
	if !ok {
		t.flushCodePointsAsCharacterReference()
		t.state = ambiguousAmpersandState
		return
	}
	for range name {
		t.input.consume()
	}

	if wasConsumedByAttribute(t.returnState) && name[len(name)-1] != ';' {
		next := t.input.peek()
		if next == '=' || isASCIIAlphanumeric(next) {
			for _, r := range name {
				t.tokenBuilder.WriteTempBuffer(r)
			}
			t.flushCodePointsAsCharacterReference()
			t.state = t.returnState
			return
		}
	}

	if name[len(name)-1] != ';' {
		t.recordError(dom.MissingSemicolonAfterCharacterReference)
	}
	t.tokenBuilder.ResetTempBuffer()
	for _, r := range resolved {
		t.tokenBuilder.WriteTempBuffer(r)
	}
	t.flushCodePointsAsCharacterReference()
	t.state = t.returnState
}

// numericCharacterReferenceEnd applies the fixups required before a
// numeric character reference's code point is usable: the
// null/out-of-range/surrogate substitutions, the noncharacter warning, and
// the Windows-1252 override table for control code points.
func (t *HTMLTokenizer) numericCharacterReferenceEnd() {
	tb := t.tokenBuilder
	code := tb.GetCharRef()

	switch {
	case tb.Cmp(0) == 0:
		t.recordError(dom.NullCharacterReference)
		code = 0xFFFD
	case tb.Cmp(0x10FFFF) > 0:
		t.recordError(dom.CharacterReferenceOutsideUnicodeRange)
		code = 0xFFFD
	case isSurrogate(rune(code)):
		t.recordError(dom.SurrogateCharacterReference)
		code = 0xFFFD
	case isNonCharacter(rune(code)):
		t.recordError(dom.NoncharacterCharacterReference)
	case code == 0x0D || (isControl(rune(code)) && !isWhitespace(rune(code))):
		t.recordError(dom.ControlCharacterReference)
		if repl, ok := windows1252NumericOverride[code]; ok {
			code = int32(repl)
		}
	}

	tb.SetCharRef(code)
	tb.ResetTempBuffer()
	tb.WriteTempBuffer(rune(code))
	t.flushCodePointsAsCharacterReference()
	t.state = t.returnState
}
