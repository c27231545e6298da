package parser

import "github.com/sirupsen/logrus"

// tokenizerState is the full ~70-member state set from 
type tokenizerState uint8

const (
	dataState tokenizerState = iota
	rcDataState
	rawTextState
	scriptDataState
	plaintextState

	tagOpenState
	endTagOpenState
	tagNameState

	rcDataLessThanSignState
	rcDataEndTagOpenState
	rcDataEndTagNameState

	rawTextLessThanSignState
	rawTextEndTagOpenState
	rawTextEndTagNameState

	scriptDataLessThanSignState
	scriptDataEndTagOpenState
	scriptDataEndTagNameState
	scriptDataEscapeStartState
	scriptDataEscapeStartDashState
	scriptDataEscapedState
	scriptDataEscapedDashState
	scriptDataEscapedDashDashState
	scriptDataEscapedLessThanSignState
	scriptDataEscapedEndTagOpenState
	scriptDataEscapedEndTagNameState
	scriptDataDoubleEscapeStartState
	scriptDataDoubleEscapedState
	scriptDataDoubleEscapedDashState
	scriptDataDoubleEscapedDashDashState
	scriptDataDoubleEscapedLessThanSignState
	scriptDataDoubleEscapeEndState

	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState

	bogusCommentState
	markupDeclarationOpenState
	commentStartState
	commentStartDashState
	commentState
	commentLessThanSignState
	commentLessThanSignBangState
	commentLessThanSignBangDashState
	commentLessThanSignBangDashDashState
	commentEndDashState
	commentEndState
	commentEndBangState

	doctypeState
	beforeDoctypeNameState
	doctypeNameState
	afterDoctypeNameState
	afterDoctypePublicKeywordState
	beforeDoctypePublicIdentifierState
	doctypePublicIdentifierDoubleQuotedState
	doctypePublicIdentifierSingleQuotedState
	afterDoctypePublicIdentifierState
	betweenDoctypePublicAndSystemIdentifiersState
	afterDoctypeSystemKeywordState
	beforeDoctypeSystemIdentifierState
	doctypeSystemIdentifierDoubleQuotedState
	doctypeSystemIdentifierSingleQuotedState
	afterDoctypeSystemIdentifierState
	bogusDoctypeState

	cdataSectionState
	cdataSectionBracketState
	cdataSectionEndState

	characterReferenceState
	namedCharacterReferenceState
	ambiguousAmpersandState
	numericCharacterReferenceState
	hexadecimalCharacterReferenceStartState
	decimalCharacterReferenceStartState
	hexadecimalCharacterReferenceState
	decimalCharacterReferenceState
	numericCharacterReferenceEndState
)

// HTMLTokenizer is a deterministic state machine driven by the current
// character, holding at most one in-progress tag, DOCTYPE or comment token
// at a time.
type HTMLTokenizer struct {
	state, returnState tokenizerState
	input              *inputStream
	tokenBuilder       *TokenBuilder

	// lastEmittedStartTagName backs the "appropriate end tag" test.
	lastEmittedStartTagName string

	// adjustedCurrentNodeForeign lets markupDeclarationOpenState decide
	// whether a "[CDATA[" sequence opens CDATASection or BogusComment: per
	// that depends on whether the adjusted current node
	// (owned by the tree builder) is in the HTML namespace. nil means
	// "treat as HTML" (the common, non-fragment, non-foreign case).
	adjustedCurrentNodeForeign func() bool

	pending []Token
	atEOF   bool

	// log traces tokenizer-level events at Debug using a threaded
	// *logrus.Entry rather than package-global calls.
	log *logrus.Entry

	errSink errorSink
}

// newHTMLTokenizer constructs a tokenizer over already-normalized input.
func newHTMLTokenizer(is *inputStream, errSink errorSink, log *logrus.Entry) *HTMLTokenizer {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &HTMLTokenizer{
		state:        dataState,
		input:        is,
		tokenBuilder: newTokenBuilder(),
		errSink:      errSink,
		log:          log,
	}
}

// SetState is the tree builder's state-override operation ():
// the only caller is the tree constructor, switching the tokenizer into
// RCDATA/RAWTEXT/ScriptData/PLAINTEXT/CDATA-section mode at element-specific
// boundaries, or back to Data.
func (t *HTMLTokenizer) SetState(s tokenizerState) {
	t.log.WithField("state", s).Debug("tokenizer state override")
	t.state = s
}

// SetAdjustedCurrentNodeForeign installs the tree builder's predicate for
// "the adjusted current node is not in the HTML namespace", consulted only
// from markupDeclarationOpenState's CDATA-section branch.
func (t *HTMLTokenizer) SetAdjustedCurrentNodeForeign(f func() bool) {
	t.adjustedCurrentNodeForeign = f
}

// NextToken drives the state machine until at least one token is ready and
// returns the oldest one.
func (t *HTMLTokenizer) NextToken() Token {
	for len(t.pending) == 0 {
		t.step()
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok
}

// emit queues a token for NextToken to hand back, and updates the
// "appropriate end tag token" bookkeeping slot.
func (t *HTMLTokenizer) emit(tok Token) {
	if tok.TokenType == startTagToken {
		t.lastEmittedStartTagName = tok.TagName
	}
	t.pending = append(t.pending, tok)
}

func (t *HTMLTokenizer) emitMany(toks ...Token) {
	for _, tok := range toks {
		t.emit(tok)
	}
}

// emitCurrentTag emits the in-progress tag as a start or end tag per
// TokenBuilder's curTagType, resets the builder, and returns Data, the
// state every tag-completing state transitions to.
func (t *HTMLTokenizer) emitCurrentTag() tokenizerState {
	switch t.tokenBuilder.curTagType {
	case startTag:
		t.emit(t.tokenBuilder.StartTagToken())
	case endTag:
		t.emit(t.tokenBuilder.EndTagToken())
	}
	return dataState
}

// isApprEndTagToken reports whether the in-progress end tag's name matches
// the most recently emitted start tag's name ("appropriate
// end tag token" test, which gates the RCDATA/RAWTEXT/ScriptData end-tag
// triads).
func (t *HTMLTokenizer) isApprEndTagToken() bool {
	return t.tokenBuilder.name.String() == t.lastEmittedStartTagName
}

// flushCodePointsAsCharacterReference emits the temporary buffer either as
// character tokens, or (if a character reference was consumed inside an
// attribute value) appends it to the in-progress attribute value instead.
func (t *HTMLTokenizer) flushCodePointsAsCharacterReference() {
	s := t.tokenBuilder.TempBuffer()
	if wasConsumedByAttribute(t.returnState) {
		for _, r := range s {
			t.tokenBuilder.WriteAttributeValue(r)
		}
		return
	}
	for _, r := range s {
		t.emit(t.tokenBuilder.CharacterToken(r))
	}
}

func wasConsumedByAttribute(s tokenizerState) bool {
	switch s {
	case attributeValueDoubleQuotedState, attributeValueSingleQuotedState, attributeValueUnquotedState:
		return true
	}
	return false
}

// step advances the state machine by exactly one state-family dispatch.
// Each family function owns consuming its own input rune (and may call
// input.reconsume() before changing t.state, Reconsume
// primitive) and may or may not emit a token before returning.
func (t *HTMLTokenizer) step() {
	switch {
	case t.state <= plaintextState:
		t.stepDataFamily()
	case t.state <= scriptDataDoubleEscapeEndState:
		t.stepTagOpenAndScriptFamily()
	case t.state <= selfClosingStartTagState:
		t.stepAttributeFamily()
	case t.state <= commentEndBangState:
		t.stepCommentFamily()
	case t.state <= bogusDoctypeState:
		t.stepDoctypeFamily()
	case t.state <= cdataSectionEndState:
		t.stepCDATAFamily()
	default:
		t.stepCharRefFamily()
	}
}
