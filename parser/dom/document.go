package dom

// QuirksMode is the Document-level compatibility flag derived from the
// DOCTYPE, set once and consulted by nothing else in this parser.
type QuirksMode uint8

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

func (q QuirksMode) String() string {
	switch q {
	case LimitedQuirks:
		return "limited-quirks"
	case Quirks:
		return "quirks"
	default:
		return "no-quirks"
	}
}

// ParseErrorKind is a closed enumeration of recoverable parse errors.
type ParseErrorKind string

const (
	EOFBeforeTagName                        ParseErrorKind = "eof-before-tag-name"
	UnexpectedNullCharacter                 ParseErrorKind = "unexpected-null-character"
	MissingAttributeValue                   ParseErrorKind = "missing-attribute-value"
	UnexpectedSolidusInTag                  ParseErrorKind = "unexpected-solidus-in-tag"
	MissingSemicolonAfterCharacterReference ParseErrorKind = "missing-semicolon-after-character-reference"
	DuplicateAttribute                      ParseErrorKind = "duplicate-attribute"
	AbruptClosingOfEmptyComment             ParseErrorKind = "abrupt-closing-of-empty-comment"
	NestedNoscriptInHead                    ParseErrorKind = "nested-noscript-in-head"
	UnexpectedEndTag                        ParseErrorKind = "unexpected-end-tag"
	NonVoidHTMLElementStartTagWithTrailingSolidus ParseErrorKind = "non-void-html-element-start-tag-with-trailing-solidus"
	EOFInTag                                ParseErrorKind = "eof-in-tag"
	EOFInComment                            ParseErrorKind = "eof-in-comment"
	EOFInDOCTYPE                            ParseErrorKind = "eof-in-doctype"
	EOFInScriptHTMLCommentLikeText          ParseErrorKind = "eof-in-script-html-comment-like-text"
	MissingWhitespaceBeforeDOCTYPEName      ParseErrorKind = "missing-whitespace-before-doctype-name"
	MissingDOCTYPEName                      ParseErrorKind = "missing-doctype-name"
	MissingWhitespaceAfterDOCTYPEPublicKeyword ParseErrorKind = "missing-whitespace-after-doctype-public-keyword"
	MissingWhitespaceAfterDOCTYPESystemKeyword ParseErrorKind = "missing-whitespace-after-doctype-system-keyword"
	MissingQuoteBeforeDOCTYPEPublicIdentifier  ParseErrorKind = "missing-quote-before-doctype-public-identifier"
	MissingQuoteBeforeDOCTYPESystemIdentifier  ParseErrorKind = "missing-quote-before-doctype-system-identifier"
	AbsenceOfDigitsInNumericCharacterReference  ParseErrorKind = "absence-of-digits-in-numeric-character-reference"
	UnknownNamedCharacterReference              ParseErrorKind = "unknown-named-character-reference"
	ControlCharacterReference                   ParseErrorKind = "control-character-reference"
	SurrogateCharacterReference                 ParseErrorKind = "surrogate-character-reference"
	NoncharacterCharacterReference              ParseErrorKind = "noncharacter-character-reference"
	NullCharacterReference                      ParseErrorKind = "null-character-reference"
	CharacterReferenceOutsideUnicodeRange       ParseErrorKind = "character-reference-outside-unicode-range"
	GenericParseError                           ParseErrorKind = "parse-error"

	UnexpectedQuestionMarkInsteadOfTagName ParseErrorKind = "unexpected-question-mark-instead-of-tag-name"
	InvalidFirstCharacterOfTagName         ParseErrorKind = "invalid-first-character-of-tag-name"
	MissingEndTagName                      ParseErrorKind = "missing-end-tag-name"
	MissingWhitespaceBetweenAttributes     ParseErrorKind = "missing-whitespace-between-attributes"
	UnexpectedCharacterInAttributeName     ParseErrorKind = "unexpected-character-in-attribute-name"
	UnexpectedEqualsSignBeforeAttributeName ParseErrorKind = "unexpected-equals-sign-before-attribute-name"
	UnexpectedCharacterInUnquotedAttributeValue ParseErrorKind = "unexpected-character-in-unquoted-attribute-value"
	MissingWhitespaceBeforeDOCTYPEPublicIdentifier ParseErrorKind = "missing-whitespace-before-doctype-public-identifier"
	MissingWhitespaceBeforeDOCTYPESystemIdentifier ParseErrorKind = "missing-whitespace-before-doctype-system-identifier"
	MissingWhitespaceAfterDOCTYPEPublicIdentifier  ParseErrorKind = "missing-whitespace-after-doctype-public-identifier"
	UnexpectedCharacterAfterDOCTYPESystemIdentifier ParseErrorKind = "unexpected-character-after-doctype-system-identifier"
	IncorrectlyOpenedComment      ParseErrorKind = "incorrectly-opened-comment"
	IncorrectlyClosedComment      ParseErrorKind = "incorrectly-closed-comment"
	NestedComment                 ParseErrorKind = "nested-comment"
	CDATAInHTMLContent             ParseErrorKind = "cdata-in-html-content"
	EOFInCDATA                     ParseErrorKind = "eof-in-cdata"
)

// ParseError is a recorded, recoverable deviation from the input: a kind
// plus a byte offset. Line/Column are a superset addition for diagnostics.
type ParseError struct {
	Kind   ParseErrorKind
	Offset int
	Line   int
	Column int
}

// Document is https://dom.spec.whatwg.org/#interface-document, extended
// with the parser's bookkeeping fields.
type Document struct {
	Implementation  string
	URL, DocumentURI string
	CharacterSet    string
	ContentType     string
	Type            string // "html" for this parser; mirrors the dual HTML/XML Document distinction

	Doctype         *Node
	DocumentElement *Node

	Head, Body *Node
	Scripting  bool
	QuirksMode QuirksMode

	ParseErrors []ParseError
}

// AddParseError appends a recorded parse error; it never aborts parsing.
func (d *Document) AddParseError(kind ParseErrorKind, offset, line, col int) {
	d.ParseErrors = append(d.ParseErrors, ParseError{Kind: kind, Offset: offset, Line: line, Column: col})
}

// DocumentType is https://dom.spec.whatwg.org/#documenttype
type DocumentType struct {
	Name     string
	PublicID string
	SystemID string
}
