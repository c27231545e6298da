package parser

import (
	"strings"

	"github.com/heathj/html5parse/parser/dom"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/atom"
)

// insertionMode is the tree constructor's current state; it selects which
// mode handler receives the next token.
type insertionMode uint8

const (
	initialMode insertionMode = iota
	beforeHTMLMode
	beforeHeadMode
	inHeadMode
	inHeadNoScriptMode
	afterHeadMode
	inBodyMode
	textMode
	inTableMode
	inTableTextMode
	inCaptionMode
	inColumnGroupMode
	inTableBodyMode
	inRowMode
	inCellMode
	inSelectMode
	inSelectInTableMode
	inTemplateMode
	afterBodyMode
	inFramesetMode
	afterFramesetMode
	afterAfterBodyMode
	afterAfterFramesetMode
)

// framesetOKFlag is the {ok, not-ok} flag from spec §3.
type framesetOKFlag uint8

const (
	framesetOK framesetOKFlag = iota
	framesetNotOK
)

// treeConstructor drives the insertion-mode state machine: it consumes
// tokens from an HTMLTokenizer and mutates a dom.Node document tree. It
// owns every piece of parser bookkeeping state named by the data model:
// the open-element stack, the active-formatting-elements list, the
// head/form pointers, the scripting/frameset-ok flags and the current and
// original insertion modes.
type treeConstructor struct {
	tok *HTMLTokenizer
	doc *dom.Node

	openElements dom.StackOfOpenElements
	afe          dom.ActiveFormattingElements

	headPointer, formPointer *dom.Node

	mode, originalMode insertionMode
	templateModeStack  []insertionMode

	scripting  bool
	frameset   framesetOKFlag
	fosterParenting bool

	// pendingTableChars accumulates character tokens seen in InTableText
	// until a non-character token forces a decision between foster-parenting
	// them (any non-whitespace seen) or inserting them normally (all
	// whitespace).
	pendingTableChars        strings.Builder
	pendingTableCharsNonWS   bool

	fragmentContext *dom.Node // non-nil only for fragment parsing; always nil here (Non-goal)

	// ignoreNextLF implements the "if the next token is a line feed, ignore
	// it" step that follows inserting a pre, listing or textarea element.
	ignoreNextLF bool

	abort func() bool

	log *logrus.Entry
}

func newTreeConstructor(tok *HTMLTokenizer, scripting bool, abort func() bool, log *logrus.Entry) *treeConstructor {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	doc := dom.NewHTMLDocumentNode()
	doc.Document.Scripting = scripting
	tc := &treeConstructor{
		tok:       tok,
		doc:       doc,
		mode:      initialMode,
		scripting: scripting,
		frameset:  framesetOK,
		abort:     abort,
		log:       log,
	}
	tok.SetAdjustedCurrentNodeForeign(tc.adjustedCurrentNodeIsForeign)
	return tc
}

// run drives the tokenizer to EOF (or to an abort), dispatching every
// emitted token through the tree construction dispatcher.
func (c *treeConstructor) run() *dom.Node {
	for {
		if c.abort != nil && c.abort() {
			break
		}
		tok := c.tok.NextToken()
		if c.ignoreNextLF {
			c.ignoreNextLF = false
			if tok.TokenType == characterToken && tok.Data == "\n" {
				continue
			}
		}
		c.dispatch(&tok)
		if tok.TokenType == endOfFileToken {
			break
		}
	}
	return c.doc
}

// dispatch implements the tree construction dispatcher: it chooses
// HTML-content or foreign-content rules based on the adjusted current
// node, invokes the appropriate handler, and reprocesses the same token
// when a handler asks for it without consuming further input. tok is
// passed by pointer because a small number of algorithms (the "image"
// start-tag misnomer) rewrite the token in place before reprocessing it.
func (c *treeConstructor) dispatch(tok *Token) {
	for {
		var reprocess bool
		if c.useForeignContentRules(*tok) {
			reprocess = c.foreignContent(tok)
		} else {
			reprocess = c.dispatchHTML(tok)
		}
		if !reprocess {
			return
		}
	}
}

func (c *treeConstructor) dispatchHTML(tok *Token) bool {
	switch c.mode {
	case initialMode:
		return c.initialModeHandler(tok)
	case beforeHTMLMode:
		return c.beforeHTMLModeHandler(tok)
	case beforeHeadMode:
		return c.beforeHeadModeHandler(tok)
	case inHeadMode:
		return c.inHeadModeHandler(tok)
	case inHeadNoScriptMode:
		return c.inHeadNoScriptModeHandler(tok)
	case afterHeadMode:
		return c.afterHeadModeHandler(tok)
	case inBodyMode:
		return c.inBodyModeHandler(tok)
	case textMode:
		return c.textModeHandler(tok)
	case inTableMode:
		return c.inTableModeHandler(tok)
	case inTableTextMode:
		return c.inTableTextModeHandler(tok)
	case inCaptionMode:
		return c.inCaptionModeHandler(tok)
	case inColumnGroupMode:
		return c.inColumnGroupModeHandler(tok)
	case inTableBodyMode:
		return c.inTableBodyModeHandler(tok)
	case inRowMode:
		return c.inRowModeHandler(tok)
	case inCellMode:
		return c.inCellModeHandler(tok)
	case inSelectMode:
		return c.inSelectModeHandler(tok)
	case inSelectInTableMode:
		return c.inSelectInTableModeHandler(tok)
	case inTemplateMode:
		return c.inTemplateModeHandler(tok)
	case afterBodyMode:
		return c.afterBodyModeHandler(tok)
	case inFramesetMode:
		return c.inFramesetModeHandler(tok)
	case afterFramesetMode:
		return c.afterFramesetModeHandler(tok)
	case afterAfterBodyMode:
		return c.afterAfterBodyModeHandler(tok)
	case afterAfterFramesetMode:
		return c.afterAfterFramesetModeHandler(tok)
	}
	return false
}

// currentNode is the bottommost entry of the open-element stack.
func (c *treeConstructor) currentNode() *dom.Node {
	return c.openElements.Current()
}

// adjustedCurrentNode is the GLOSSARY's "adjusted current node": the
// context element when parsing a fragment with a single-element stack,
// otherwise the current node. Fragment parsing is out of scope, so this
// always reduces to currentNode.
func (c *treeConstructor) adjustedCurrentNode() *dom.Node {
	if c.fragmentContext != nil && len(c.openElements.NodeList) == 1 {
		return c.fragmentContext
	}
	return c.currentNode()
}

func (c *treeConstructor) adjustedCurrentNodeIsForeign() bool {
	n := c.adjustedCurrentNode()
	return n != nil && n.Element != nil && n.Element.NamespaceURI != dom.Htmlns
}

// atomOf looks up the tag name's well-known atom, falling back to the zero
// Atom for custom/foreign names atom.Lookup does not know. Its only caller
// is isVoidElement; every other tag-name test in the tree constructor still
// compares raw strings.
func atomOf(tagName string) atom.Atom {
	return atom.Lookup([]byte(tagName))
}

func (c *treeConstructor) recordError(kind dom.ParseErrorKind) {
	c.doc.AddParseError(kind, c.tok.input.offset(), c.tok.input.line, c.tok.input.col)
}

// pushTemplateInsertionMode pushes m onto the stack of template insertion
// modes, used whenever a <template> start tag enters InTemplateMode.
func (c *treeConstructor) pushTemplateInsertionMode(m insertionMode) {
	c.templateModeStack = append(c.templateModeStack, m)
}

// popTemplateInsertionMode pops the stack of template insertion modes,
// used by </template>, by InTemplate's end-of-file handling, and when
// InTemplate replaces the current template insertion mode.
func (c *treeConstructor) popTemplateInsertionMode() {
	if len(c.templateModeStack) == 0 {
		return
	}
	c.templateModeStack = c.templateModeStack[:len(c.templateModeStack)-1]
}

// stopParsing implements "the end" / stop parsing: pop every open element.
// No scripts run in this parser, so the algorithm reduces to this.
func (c *treeConstructor) stopParsing() {
	for len(c.openElements.NodeList) > 0 {
		c.openElements.Pop()
	}
}
