package parser

import "github.com/heathj/html5parse/parser/dom"

// recordError appends a parse error at the tokenizer's current input
// position. Parse errors are accumulated and never short-circuit parsing.
func (t *HTMLTokenizer) recordError(kind dom.ParseErrorKind) {
	if t.errSink == nil {
		return
	}
	t.errSink(dom.ParseError{
		Kind:   kind,
		Offset: t.input.offset(),
		Line:   t.input.line,
		Column: t.input.col,
	})
}

// errorSink receives parse errors as they are recorded. The tree
// constructor wires this to append onto the Document's ParseErrors list.
type errorSink func(dom.ParseError)
