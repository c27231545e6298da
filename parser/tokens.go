package parser

import (
	"strings"

	"github.com/heathj/html5parse/parser/dom"
)

// tokenType is the closed sum: DOCTYPE, StartTag, EndTag, Comment,
// Character, EOF.
type tokenType uint8

const (
	characterToken tokenType = iota
	startTagToken
	endTagToken
	commentToken
	docTypeToken
	endOfFileToken
)

const missing = "MISSING"

// tagType records whether the in-progress tag token being built by
// TokenBuilder is a start or end tag; TagOpen/EndTagOpen set it before
// TagName accumulates the name, and emitCurrentTag reads it back.
type tagType uint8

const (
	startTag tagType = iota
	endTag
)

// Token is a concrete, fully-built token ready for the tree constructor.
type Token struct {
	TokenType        tokenType
	Attributes       []dom.Attribute
	TagName          string
	PublicIdentifier string
	SystemIdentifier string
	ForceQuirks      bool
	SelfClosing      bool
	SelfClosingAck   bool
	Data             string
}

// attr returns the value of the named attribute, if present.
func (t *Token) attr(name string) (string, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// TokenBuilder accumulates the in-progress tag/DOCTYPE/comment token; the
// tokenizer holds at most one of these at a time.
type TokenBuilder struct {
	attrSeen               map[string]bool
	attrs                  []dom.Attribute
	attributeKey           strings.Builder
	attributeValue         strings.Builder
	name                   strings.Builder
	data                   strings.Builder
	tempBuffer             strings.Builder
	publicID               strings.Builder
	systemID               strings.Builder
	selfClosing            bool
	forceQuirks            bool
	duplicateAttr          bool
	publicIDSet            bool
	systemIDSet            bool
	characterReferenceCode int32
	curTagType             tagType
}

// newTokenBuilder constructs an empty TokenBuilder.
func newTokenBuilder() *TokenBuilder {
	return &TokenBuilder{}
}

// Reset clears every field in preparation for a new tag/DOCTYPE/comment
// token. The temporary buffer is managed separately by ResetTempBuffer
// since its lifetime spans multiple tokens in some states.
func (t *TokenBuilder) Reset() {
	t.attrSeen = nil
	t.attrs = nil
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.publicID.Reset()
	t.systemID.Reset()
	t.publicIDSet = false
	t.systemIDSet = false
	t.data.Reset()
	t.name.Reset()
	t.selfClosing = false
	t.forceQuirks = false
	t.duplicateAttr = false
}

func (t *TokenBuilder) EnableSelfClosing() { t.selfClosing = true }
func (t *TokenBuilder) EnableForceQuirks() { t.forceQuirks = true }

func (t *TokenBuilder) WritePublicIdentifier(r rune) {
	t.publicIDSet = true
	t.publicID.WriteRune(r)
}
func (t *TokenBuilder) WriteSystemIdentifier(r rune) {
	t.systemIDSet = true
	t.systemID.WriteRune(r)
}

// WritePublicIdentifierEmpty marks the public identifier present but empty,
// matching the "set the DOCTYPE token's public identifier to the empty
// string" steps.
func (t *TokenBuilder) WritePublicIdentifierEmpty() { t.publicIDSet = true }
func (t *TokenBuilder) WriteSystemIdentifierEmpty() { t.systemIDSet = true }

func (t *TokenBuilder) WriteAttributeName(r rune)  { t.attributeKey.WriteRune(r) }
func (t *TokenBuilder) WriteAttributeValue(r rune) { t.attributeValue.WriteRune(r) }
func (t *TokenBuilder) WriteData(r rune)           { t.data.WriteRune(r) }
func (t *TokenBuilder) WriteName(r rune)           { t.name.WriteRune(r) }

// RemoveDuplicateAttributeName checks whether the attribute name just
// completed already occurred on this tag. If so, the duplicate is
// dropped (the CommitAttribute call that follows becomes a no-op) and the
// caller is responsible for recording the duplicate-attribute parse error.
func (t *TokenBuilder) RemoveDuplicateAttributeName() bool {
	if t.attrSeen == nil {
		t.attrSeen = make(map[string]bool)
	}
	name := t.attributeKey.String()
	if t.attrSeen[name] {
		t.duplicateAttr = true
		return true
	}
	return false
}

// CommitAttribute finalizes the current attribute name/value pair into the
// ordered attribute list, unless it was flagged as a duplicate.
func (t *TokenBuilder) CommitAttribute() {
	name := t.attributeKey.String()
	if !t.duplicateAttr && name != "" {
		if t.attrSeen == nil {
			t.attrSeen = make(map[string]bool)
		}
		t.attrSeen[name] = true
		t.attrs = append(t.attrs, dom.Attribute{Name: name, Value: t.attributeValue.String()})
	}
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.duplicateAttr = false
}

func (t *TokenBuilder) WriteTempBuffer(r rune) { t.tempBuffer.WriteRune(r) }
func (t *TokenBuilder) ResetTempBuffer()       { t.tempBuffer.Reset() }
func (t *TokenBuilder) TempBuffer() string     { return t.tempBuffer.String() }

// TempBufferCharTokens returns the temporary buffer's contents as a slice
// of single-rune character tokens, used to flush a failed named-reference
// or end-tag-open match back into the character stream.
func (t *TokenBuilder) TempBufferCharTokens() []Token {
	s := t.tempBuffer.String()
	toks := make([]Token, 0, len(s))
	for _, r := range s {
		toks = append(toks, Token{TokenType: characterToken, Data: string(r)})
	}
	return toks
}

func (t *TokenBuilder) SetCharRef(i int32)   { t.characterReferenceCode = i }
func (t *TokenBuilder) GetCharRef() int32    { return t.characterReferenceCode }
func (t *TokenBuilder) AddToCharRef(i int32) { t.characterReferenceCode += i }
func (t *TokenBuilder) MultByCharRef(i int32) {
	t.characterReferenceCode *= i
}

// Cmp compares the accumulated character reference code point against i.
// The numeric-character-reference-end-state fixups need exact boundary
// tests (0, 0x10FFFF) without exposing the raw field.
func (t *TokenBuilder) Cmp(i int32) int {
	switch {
	case t.characterReferenceCode < i:
		return -1
	case t.characterReferenceCode > i:
		return 1
	default:
		return 0
	}
}

func (t *TokenBuilder) StartTagToken() Token {
	return Token{TokenType: startTagToken, TagName: t.name.String(), Attributes: t.attrs, SelfClosing: t.selfClosing}
}

func (t *TokenBuilder) EndTagToken() Token {
	return Token{TokenType: endTagToken, TagName: t.name.String(), Attributes: t.attrs, SelfClosing: t.selfClosing}
}

func (t *TokenBuilder) CharacterToken(r rune) Token {
	return Token{TokenType: characterToken, Data: string(r)}
}

func (t *TokenBuilder) EndOfFileToken() Token {
	return Token{TokenType: endOfFileToken}
}

func (t *TokenBuilder) CommentToken() Token {
	return Token{TokenType: commentToken, Data: t.data.String()}
}

func (t *TokenBuilder) DocTypeToken() Token {
	pub := missing
	if t.publicIDSet {
		pub = t.publicID.String()
	}
	sys := missing
	if t.systemIDSet {
		sys = t.systemID.String()
	}
	return Token{
		TokenType:        docTypeToken,
		TagName:          t.name.String(),
		ForceQuirks:      t.forceQuirks,
		PublicIdentifier: pub,
		SystemIdentifier: sys,
	}
}
