package parser

import "github.com/heathj/html5parse/parser/dom"

// stepTagOpenAndScriptFamily implements tag-open/end-tag-open/tag-name and
// the RCDATA, RAWTEXT and ScriptData "less-than sign" triads, including the
// full script-data (double-)escape machinery:
// https://html.spec.whatwg.org/multipage/parsing.html#tag-open-state
func (t *HTMLTokenizer) stepTagOpenAndScriptFamily() {
	c := t.input.consume()
	switch t.state {
	case tagOpenState:
		switch {
		case c == '!':
			t.state = markupDeclarationOpenState
		case c == '/':
			t.state = endTagOpenState
		case isASCIIAlpha(c):
			t.tokenBuilder.Reset()
			t.tokenBuilder.curTagType = startTag
			t.input.reconsume()
			t.state = tagNameState
		case c == '?':
			t.recordError(dom.UnexpectedQuestionMarkInsteadOfTagName)
			t.tokenBuilder.Reset()
			t.input.reconsume()
			t.state = bogusCommentState
		case c == eof:
			t.recordError(dom.EOFBeforeTagName)
			t.emit(t.tokenBuilder.CharacterToken('<'))
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.recordError(dom.InvalidFirstCharacterOfTagName)
			t.emit(t.tokenBuilder.CharacterToken('<'))
			t.input.reconsume()
			t.state = dataState
		}
	case endTagOpenState:
		switch {
		case isASCIIAlpha(c):
			t.tokenBuilder.Reset()
			t.tokenBuilder.curTagType = endTag
			t.input.reconsume()
			t.state = tagNameState
		case c == '>':
			t.recordError(dom.MissingEndTagName)
			t.state = dataState
		case c == eof:
			t.recordError(dom.EOFBeforeTagName)
			t.emit(t.tokenBuilder.CharacterToken('<'))
			t.emit(t.tokenBuilder.CharacterToken('/'))
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.recordError(dom.InvalidFirstCharacterOfTagName)
			t.tokenBuilder.Reset()
			t.input.reconsume()
			t.state = bogusCommentState
		}
	case tagNameState:
		switch {
		case isWhitespace(c):
			t.state = beforeAttributeNameState
		case c == '/':
			t.state = selfClosingStartTagState
		case c == '>':
			t.state = t.emitCurrentTag()
		case isASCIIUpper(c):
			t.tokenBuilder.WriteName(asciiLower(c))
		case c == 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.tokenBuilder.WriteName(0xFFFD)
		case c == eof:
			t.recordError(dom.EOFInTag)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.tokenBuilder.WriteName(c)
		}

	case rcDataLessThanSignState:
		if c == '/' {
			t.tokenBuilder.ResetTempBuffer()
			t.state = rcDataEndTagOpenState
		} else {
			t.emit(t.tokenBuilder.CharacterToken('<'))
			t.input.reconsume()
			t.state = rcDataState
		}
	case rcDataEndTagOpenState:
		t.endTagOpenCommon(c, rcDataEndTagNameState, rcDataState)
	case rcDataEndTagNameState:
		t.endTagNameCommon(c, rcDataState)

	case rawTextLessThanSignState:
		if c == '/' {
			t.tokenBuilder.ResetTempBuffer()
			t.state = rawTextEndTagOpenState
		} else {
			t.emit(t.tokenBuilder.CharacterToken('<'))
			t.input.reconsume()
			t.state = rawTextState
		}
	case rawTextEndTagOpenState:
		t.endTagOpenCommon(c, rawTextEndTagNameState, rawTextState)
	case rawTextEndTagNameState:
		t.endTagNameCommon(c, rawTextState)

	case scriptDataLessThanSignState:
		switch c {
		case '/':
			t.tokenBuilder.ResetTempBuffer()
			t.state = scriptDataEndTagOpenState
		case '!':
			t.state = scriptDataEscapeStartState
			t.emit(t.tokenBuilder.CharacterToken('<'))
			t.emit(t.tokenBuilder.CharacterToken('!'))
		default:
			t.emit(t.tokenBuilder.CharacterToken('<'))
			t.input.reconsume()
			t.state = scriptDataState
		}
	case scriptDataEndTagOpenState:
		t.endTagOpenCommon(c, scriptDataEndTagNameState, scriptDataState)
	case scriptDataEndTagNameState:
		t.endTagNameCommon(c, scriptDataState)

	case scriptDataEscapeStartState:
		if c == '-' {
			t.state = scriptDataEscapeStartDashState
			t.emit(t.tokenBuilder.CharacterToken('-'))
		} else {
			t.input.reconsume()
			t.state = scriptDataState
		}
	case scriptDataEscapeStartDashState:
		if c == '-' {
			t.state = scriptDataEscapedDashDashState
			t.emit(t.tokenBuilder.CharacterToken('-'))
		} else {
			t.input.reconsume()
			t.state = scriptDataState
		}

	case scriptDataEscapedState:
		switch c {
		case '-':
			t.state = scriptDataEscapedDashState
			t.emit(t.tokenBuilder.CharacterToken('-'))
		case '<':
			t.state = scriptDataEscapedLessThanSignState
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.emit(t.tokenBuilder.CharacterToken(0xFFFD))
		case eof:
			t.recordError(dom.EOFInScriptHTMLCommentLikeText)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.emit(t.tokenBuilder.CharacterToken(c))
		}
	case scriptDataEscapedDashState:
		switch c {
		case '-':
			t.state = scriptDataEscapedDashDashState
			t.emit(t.tokenBuilder.CharacterToken('-'))
		case '<':
			t.state = scriptDataEscapedLessThanSignState
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.state = scriptDataEscapedState
			t.emit(t.tokenBuilder.CharacterToken(0xFFFD))
		case eof:
			t.recordError(dom.EOFInScriptHTMLCommentLikeText)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.state = scriptDataEscapedState
			t.emit(t.tokenBuilder.CharacterToken(c))
		}
	case scriptDataEscapedDashDashState:
		switch c {
		case '-':
			t.emit(t.tokenBuilder.CharacterToken('-'))
		case '<':
			t.state = scriptDataEscapedLessThanSignState
		case '>':
			t.state = scriptDataState
			t.emit(t.tokenBuilder.CharacterToken('>'))
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.state = scriptDataEscapedState
			t.emit(t.tokenBuilder.CharacterToken(0xFFFD))
		case eof:
			t.recordError(dom.EOFInScriptHTMLCommentLikeText)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.state = scriptDataEscapedState
			t.emit(t.tokenBuilder.CharacterToken(c))
		}
	case scriptDataEscapedLessThanSignState:
		switch {
		case c == '/':
			t.tokenBuilder.ResetTempBuffer()
			t.state = scriptDataEscapedEndTagOpenState
		case isASCIIAlpha(c):
			t.tokenBuilder.ResetTempBuffer()
			t.emit(t.tokenBuilder.CharacterToken('<'))
			t.input.reconsume()
			t.state = scriptDataDoubleEscapeStartState
		default:
			t.emit(t.tokenBuilder.CharacterToken('<'))
			t.input.reconsume()
			t.state = scriptDataEscapedState
		}
	case scriptDataEscapedEndTagOpenState:
		t.endTagOpenCommon(c, scriptDataEscapedEndTagNameState, scriptDataEscapedState)
	case scriptDataEscapedEndTagNameState:
		t.endTagNameCommon(c, scriptDataEscapedState)

	case scriptDataDoubleEscapeStartState:
		switch {
		case isWhitespace(c) || c == '/' || c == '>':
			if t.tokenBuilder.TempBuffer() == "script" {
				t.state = scriptDataDoubleEscapedState
			} else {
				t.state = scriptDataEscapedState
			}
			t.emit(t.tokenBuilder.CharacterToken(c))
		case isASCIIUpper(c):
			t.tokenBuilder.WriteTempBuffer(asciiLower(c))
			t.emit(t.tokenBuilder.CharacterToken(c))
		case isASCIILower(c):
			t.tokenBuilder.WriteTempBuffer(c)
			t.emit(t.tokenBuilder.CharacterToken(c))
		default:
			t.input.reconsume()
			t.state = scriptDataEscapedState
		}
	case scriptDataDoubleEscapedState:
		switch c {
		case '-':
			t.state = scriptDataDoubleEscapedDashState
			t.emit(t.tokenBuilder.CharacterToken('-'))
		case '<':
			t.state = scriptDataDoubleEscapedLessThanSignState
			t.emit(t.tokenBuilder.CharacterToken('<'))
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.emit(t.tokenBuilder.CharacterToken(0xFFFD))
		case eof:
			t.recordError(dom.EOFInScriptHTMLCommentLikeText)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.emit(t.tokenBuilder.CharacterToken(c))
		}
	case scriptDataDoubleEscapedDashState:
		switch c {
		case '-':
			t.state = scriptDataDoubleEscapedDashDashState
			t.emit(t.tokenBuilder.CharacterToken('-'))
		case '<':
			t.state = scriptDataDoubleEscapedLessThanSignState
			t.emit(t.tokenBuilder.CharacterToken('<'))
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.state = scriptDataDoubleEscapedState
			t.emit(t.tokenBuilder.CharacterToken(0xFFFD))
		case eof:
			t.recordError(dom.EOFInScriptHTMLCommentLikeText)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.state = scriptDataDoubleEscapedState
			t.emit(t.tokenBuilder.CharacterToken(c))
		}
	case scriptDataDoubleEscapedDashDashState:
		switch c {
		case '-':
			t.emit(t.tokenBuilder.CharacterToken('-'))
		case '<':
			t.state = scriptDataDoubleEscapedLessThanSignState
			t.emit(t.tokenBuilder.CharacterToken('<'))
		case '>':
			t.state = scriptDataState
			t.emit(t.tokenBuilder.CharacterToken('>'))
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.state = scriptDataDoubleEscapedState
			t.emit(t.tokenBuilder.CharacterToken(0xFFFD))
		case eof:
			t.recordError(dom.EOFInScriptHTMLCommentLikeText)
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.state = scriptDataDoubleEscapedState
			t.emit(t.tokenBuilder.CharacterToken(c))
		}
	case scriptDataDoubleEscapedLessThanSignState:
		if c == '/' {
			t.tokenBuilder.ResetTempBuffer()
			t.state = scriptDataDoubleEscapeEndState
			t.emit(t.tokenBuilder.CharacterToken('/'))
		} else {
			t.input.reconsume()
			t.state = scriptDataDoubleEscapedState
		}
	case scriptDataDoubleEscapeEndState:
		switch {
		case isWhitespace(c) || c == '/' || c == '>':
			if t.tokenBuilder.TempBuffer() == "script" {
				t.state = scriptDataEscapedState
			} else {
				t.state = scriptDataDoubleEscapedState
			}
			t.emit(t.tokenBuilder.CharacterToken(c))
		case isASCIIUpper(c):
			t.tokenBuilder.WriteTempBuffer(asciiLower(c))
			t.emit(t.tokenBuilder.CharacterToken(c))
		case isASCIILower(c):
			t.tokenBuilder.WriteTempBuffer(c)
			t.emit(t.tokenBuilder.CharacterToken(c))
		default:
			t.input.reconsume()
			t.state = scriptDataDoubleEscapedState
		}
	}
}

// endTagOpenCommon implements the shared shape of the RCDATA/RAWTEXT/
// ScriptData(-escaped) "end tag open" states: an ASCII letter starts a real
// end tag token and falls through to the matching end-tag-name state;
// anything else is a failed match that flushes "</" back as characters.
func (t *HTMLTokenizer) endTagOpenCommon(c rune, matchState, fallbackState tokenizerState) {
	if isASCIIAlpha(c) {
		t.tokenBuilder.Reset()
		t.tokenBuilder.curTagType = endTag
		t.input.reconsume()
		t.state = matchState
		return
	}
	t.emit(t.tokenBuilder.CharacterToken('<'))
	t.emit(t.tokenBuilder.CharacterToken('/'))
	t.input.reconsume()
	t.state = fallbackState
}

// endTagNameCommon implements the shared shape of the RCDATA/RAWTEXT/
// ScriptData(-escaped) "end tag name" states: delimiters only complete the
// tag if it is the appropriate end tag token for the most recently emitted
// start tag; otherwise the accumulated text is flushed back as characters.
func (t *HTMLTokenizer) endTagNameCommon(c rune, fallbackState tokenizerState) {
	switch {
	case isWhitespace(c):
		if t.isApprEndTagToken() {
			t.state = beforeAttributeNameState
			return
		}
		t.flushFailedEndTagMatch(fallbackState)
	case c == '/':
		if t.isApprEndTagToken() {
			t.state = selfClosingStartTagState
			return
		}
		t.flushFailedEndTagMatch(fallbackState)
	case c == '>':
		if t.isApprEndTagToken() {
			t.state = t.emitCurrentTag()
			return
		}
		t.flushFailedEndTagMatch(fallbackState)
	case isASCIIUpper(c):
		t.tokenBuilder.WriteName(asciiLower(c))
		t.tokenBuilder.WriteTempBuffer(c)
	case isASCIILower(c):
		t.tokenBuilder.WriteName(c)
		t.tokenBuilder.WriteTempBuffer(c)
	default:
		t.flushFailedEndTagMatch(fallbackState)
	}
}

func (t *HTMLTokenizer) flushFailedEndTagMatch(fallbackState tokenizerState) {
	t.emit(t.tokenBuilder.CharacterToken('<'))
	t.emit(t.tokenBuilder.CharacterToken('/'))
	t.emitMany(t.tokenBuilder.TempBufferCharTokens()...)
	t.input.reconsume()
	t.state = fallbackState
}
