package parser

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/html5parse/parser/dom"
)

// Charset is the caller-declared input encoding. Encoding sniffing is out
// of scope; UTF-8 is assumed unless the caller says otherwise.
type Charset uint8

const (
	UTF8 Charset = iota
	Windows1252
	ISO8859_1
)

// Options configures a single Parse call.
type Options struct {
	// Scripting is the scripting flag (spec.md §3): when true, <noscript>
	// is parsed as raw text instead of markup.
	Scripting bool
	Charset   Charset

	// Log receives tokenizer/tree-builder tracing; nil attaches the
	// standard logger.
	Log *logrus.Entry

	// Abort, polled between tokens, stops the run early if it returns
	// true; Parse still returns whatever Document has been built so far.
	Abort func() bool
}

// Parse tokenizes and tree-constructs input, returning a Document. It
// always returns a non-nil Document; conformance of that Document, not an
// error return, is the measure of success.
func Parse(input []byte, opts Options) *dom.Node {
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	s := stripBOM(decode(input, opts.Charset))
	is := newInputStream(s)

	tok := newHTMLTokenizer(is, nil, log)
	tc := newTreeConstructor(tok, opts.Scripting, opts.Abort, log)
	tok.errSink = func(e dom.ParseError) {
		tc.doc.AddParseError(e.Kind, e.Offset, e.Line, e.Column)
	}

	return tc.run()
}

// ParseReader is Parse's io.Reader overload, matching the teacher's
// NewParser(io.Reader) ergonomics.
func ParseReader(r io.Reader, opts Options) (*dom.Node, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return Parse(b, opts), nil
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

// decode converts raw input bytes to Unicode scalar values under the
// declared charset. Undecodable UTF-8 bytes become U+FFFD; single-byte
// charsets never fail to decode.
func decode(input []byte, cs Charset) string {
	switch cs {
	case Windows1252:
		return decodeSingleByte(input, windows1252HighTable)
	case ISO8859_1:
		return decodeSingleByte(input, nil)
	default:
		return decodeUTF8Lenient(input)
	}
}

func decodeUTF8Lenient(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			sb.WriteRune(0xFFFD)
			b = b[1:]
			continue
		}
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

// decodeSingleByte maps each input byte to a rune: bytes 0x00-0x7F and
// 0xA0-0xFF are Latin-1-identical in both charsets this parser supports;
// high carries an override table for the 0x80-0x9F block (nil for plain
// ISO-8859-1, where that block is the C1 controls).
func decodeSingleByte(b []byte, high map[byte]rune) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if c >= 0x80 && c <= 0x9F {
			if r, ok := high[c]; ok {
				sb.WriteRune(r)
				continue
			}
		}
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// windows1252HighTable is the WHATWG Encoding Standard's index-windows-1252
// override for the 0x80-0x9F byte range.
var windows1252HighTable = map[byte]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E, 0x85: 0x2026,
	0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6, 0x89: 0x2030, 0x8A: 0x0160,
	0x8B: 0x2039, 0x8C: 0x0152, 0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019,
	0x93: 0x201C, 0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A, 0x9C: 0x0153,
	0x9E: 0x017E, 0x9F: 0x0178,
}
