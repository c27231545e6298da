package parser

import "github.com/heathj/html5parse/parser/dom"

// stepCommentFamily implements bogus-comment, markup-declaration-open and
// the full comment state group:
// https://html.spec.whatwg.org/multipage/parsing.html#markup-declaration-open-state
func (t *HTMLTokenizer) stepCommentFamily() {
	if t.state == markupDeclarationOpenState {
		t.markupDeclarationOpen()
		return
	}

	c := t.input.consume()
	switch t.state {
	case bogusCommentState:
		switch c {
		case '>':
			t.emit(t.tokenBuilder.CommentToken())
			t.state = dataState
		case eof:
			t.emit(t.tokenBuilder.CommentToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.tokenBuilder.WriteData(0xFFFD)
		default:
			t.tokenBuilder.WriteData(c)
		}

	case commentStartState:
		switch c {
		case '-':
			t.state = commentStartDashState
		case '>':
			t.recordError(dom.AbruptClosingOfEmptyComment)
			t.emit(t.tokenBuilder.CommentToken())
			t.state = dataState
		default:
			t.input.reconsume()
			t.state = commentState
		}

	case commentStartDashState:
		switch c {
		case '-':
			t.state = commentEndState
		case '>':
			t.recordError(dom.AbruptClosingOfEmptyComment)
			t.emit(t.tokenBuilder.CommentToken())
			t.state = dataState
		case eof:
			t.recordError(dom.EOFInComment)
			t.emit(t.tokenBuilder.CommentToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.tokenBuilder.WriteData('-')
			t.input.reconsume()
			t.state = commentState
		}

	case commentState:
		switch c {
		case '<':
			t.tokenBuilder.WriteData(c)
			t.state = commentLessThanSignState
		case '-':
			t.state = commentEndDashState
		case 0:
			t.recordError(dom.UnexpectedNullCharacter)
			t.tokenBuilder.WriteData(0xFFFD)
		case eof:
			t.recordError(dom.EOFInComment)
			t.emit(t.tokenBuilder.CommentToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.tokenBuilder.WriteData(c)
		}

	case commentLessThanSignState:
		switch c {
		case '!':
			t.tokenBuilder.WriteData(c)
			t.state = commentLessThanSignBangState
		case '<':
			t.tokenBuilder.WriteData(c)
		default:
			t.input.reconsume()
			t.state = commentState
		}

	case commentLessThanSignBangState:
		if c == '-' {
			t.state = commentLessThanSignBangDashState
		} else {
			t.input.reconsume()
			t.state = commentState
		}

	case commentLessThanSignBangDashState:
		if c == '-' {
			t.state = commentLessThanSignBangDashDashState
		} else {
			t.input.reconsume()
			t.state = commentEndDashState
		}

	case commentLessThanSignBangDashDashState:
		switch c {
		case '>', eof:
			t.input.reconsume()
			t.state = commentEndState
		default:
			t.recordError(dom.NestedComment)
			t.input.reconsume()
			t.state = commentEndState
		}

	case commentEndDashState:
		switch c {
		case '-':
			t.state = commentEndState
		case eof:
			t.recordError(dom.EOFInComment)
			t.emit(t.tokenBuilder.CommentToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.tokenBuilder.WriteData('-')
			t.input.reconsume()
			t.state = commentState
		}

	case commentEndState:
		switch c {
		case '>':
			t.emit(t.tokenBuilder.CommentToken())
			t.state = dataState
		case '!':
			t.state = commentEndBangState
		case '-':
			t.tokenBuilder.WriteData('-')
		case eof:
			t.recordError(dom.EOFInComment)
			t.emit(t.tokenBuilder.CommentToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.tokenBuilder.WriteData('-')
			t.tokenBuilder.WriteData('-')
			t.input.reconsume()
			t.state = commentState
		}

	case commentEndBangState:
		switch c {
		case '-':
			t.tokenBuilder.WriteData('-')
			t.tokenBuilder.WriteData('-')
			t.tokenBuilder.WriteData('!')
			t.state = commentEndDashState
		case '>':
			t.recordError(dom.IncorrectlyClosedComment)
			t.emit(t.tokenBuilder.CommentToken())
			t.state = dataState
		case eof:
			t.recordError(dom.EOFInComment)
			t.emit(t.tokenBuilder.CommentToken())
			t.emit(t.tokenBuilder.EndOfFileToken())
		default:
			t.tokenBuilder.WriteData('-')
			t.tokenBuilder.WriteData('-')
			t.tokenBuilder.WriteData('!')
			t.input.reconsume()
			t.state = commentState
		}
	}
}

// markupDeclarationOpen dispatches "<!" to a comment, DOCTYPE or CDATA
// section depending on what follows. It is a lookahead-based state: it
// checks the upcoming characters without consuming them, consumes the
// matched keyword only once a match is found, and otherwise switches to the
// bogus comment state without consuming anything.
func (t *HTMLTokenizer) markupDeclarationOpen() {
	if t.input.nextMatches("--", caseExact) {
		t.input.consume()
		t.input.consume()
		t.tokenBuilder.Reset()
		t.state = commentStartState
		return
	}
	if t.input.nextMatches("doctype", caseInsensitiveASCII) {
		for i := 0; i < len("doctype"); i++ {
			t.input.consume()
		}
		t.state = doctypeState
		return
	}
	foreign := t.adjustedCurrentNodeForeign != nil && t.adjustedCurrentNodeForeign()
	if foreign && t.input.nextMatches("[CDATA[", caseExact) {
		for i := 0; i < len("[CDATA["); i++ {
			t.input.consume()
		}
		t.state = cdataSectionState
		return
	}
	t.recordError(dom.IncorrectlyOpenedComment)
	t.tokenBuilder.Reset()
	t.state = bogusCommentState
}
