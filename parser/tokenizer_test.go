package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectTokens drives a tokenizer over in to completion, including the
// trailing EOF token.
func collectTokens(in string) []Token {
	tok := newHTMLTokenizer(newInputStream(in), nil, nil)
	var toks []Token
	for {
		tk := tok.NextToken()
		toks = append(toks, tk)
		if tk.TokenType == endOfFileToken {
			return toks
		}
	}
}

type tokenizerAttributeAccuracyTestcase struct {
	inHTML string
	attrs  map[string]string
}

var tokenizerAttributeAccuracyTests = []tokenizerAttributeAccuracyTestcase{
	{"<head></head>", map[string]string{}},
	{"<script src='123' onload='test'></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<a href='https://google.com' onclick='alert(1)'>Click this</a>", map[string]string{
		"href":    "https://google.com",
		"onclick": "alert(1)",
	}},
	{"<script src='123' src='456'></script>", map[string]string{
		"src": "123",
	}},
	{"<script src=123 onload=test></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<script =src='123'onload='test' ></script>", map[string]string{
		"=src":   "123",
		"onload": "test",
	}},
	{"<script src></script>", map[string]string{
		"src": "",
	}},
	{"<script ABC=123></script>", map[string]string{
		"abc": "123",
	}},
	{"<script abc='\x00123'></script>", map[string]string{
		"abc": "�123",
	}},
}

// TestTokenizerAttributeAccuracy checks that the first start tag token
// produced from each snippet carries exactly the expected attribute values.
func TestTokenizerAttributeAccuracy(t *testing.T) {
	for _, tt := range tokenizerAttributeAccuracyTests {
		tt := tt
		t.Run(tt.inHTML, func(t *testing.T) {
			t.Parallel()
			var first *Token
			for _, tk := range collectTokens(tt.inHTML) {
				if tk.TokenType == startTagToken {
					first = &tk
					break
				}
			}
			require.NotNil(t, first, "no start tag token produced")
			for k, v := range tt.attrs {
				got, ok := first.attr(k)
				if !assert.True(t, ok, "expected to find attribute %q", k) {
					continue
				}
				assert.Equal(t, v, got, "attribute %q", k)
			}
		})
	}
}

// TestTokenizerDuplicateAttributeDropped checks that a second occurrence of
// an already-seen attribute name is dropped rather than overwriting the
// first (the "duplicate-attribute" parse error path).
func TestTokenizerDuplicateAttributeDropped(t *testing.T) {
	toks := collectTokens("<script src='123' src='456'></script>")
	v, ok := toks[0].attr("src")
	assert.True(t, ok)
	assert.Equal(t, "123", v, "first-seen attribute value should win")
	assert.Len(t, toks[0].Attributes, 1)
}

type tokenizerTagNameTestcase struct {
	in   string
	want []Token
}

var tokenizerTagNameTests = []tokenizerTagNameTestcase{
	{
		in: "<DIV><P>x</P></DIV>",
		want: []Token{
			{TokenType: startTagToken, TagName: "div"},
			{TokenType: startTagToken, TagName: "p"},
			{TokenType: characterToken, Data: "x"},
			{TokenType: endTagToken, TagName: "p"},
			{TokenType: endTagToken, TagName: "div"},
			{TokenType: endOfFileToken},
		},
	},
	{
		in: "<!--comment-->",
		want: []Token{
			{TokenType: commentToken, Data: "comment"},
			{TokenType: endOfFileToken},
		},
	},
	{
		in: "<!DOCTYPE html>",
		want: []Token{
			{TokenType: docTypeToken, TagName: "html", PublicIdentifier: missing, SystemIdentifier: missing},
			{TokenType: endOfFileToken},
		},
	},
}

// TestTokenizerTagNames checks tag-name lowercasing and basic token-stream
// shape for a handful of representative inputs.
func TestTokenizerTagNames(t *testing.T) {
	for _, tt := range tokenizerTagNameTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := collectTokens(tt.in)
			require.Len(t, got, len(tt.want))
			for i := range got {
				if !assert.Equal(t, tt.want[i].TokenType, got[i].TokenType, "token %d", i) {
					continue
				}
				switch got[i].TokenType {
				case startTagToken, endTagToken, docTypeToken:
					assert.Equal(t, tt.want[i].TagName, got[i].TagName, "token %d tag name", i)
				case characterToken, commentToken:
					assert.Equal(t, tt.want[i].Data, got[i].Data, "token %d data", i)
				}
			}
		})
	}
}

// TestTokenizerNullCharacterReplacement checks the data-state U+0000
// replacement: every NUL in character data becomes U+FFFD.
func TestTokenizerNullCharacterReplacement(t *testing.T) {
	toks := collectTokens("a\x00b")
	var data string
	for _, tk := range toks {
		if tk.TokenType == characterToken {
			data += tk.Data
		}
	}
	assert.Equal(t, "a�b", data)
}

// TestTokenizerAppropriateEndTag checks the "appropriate end tag token"
// test gating RAWTEXT's end-tag-name state: an end tag whose name doesn't
// match the most recently emitted start tag is just text inside RAWTEXT.
func TestTokenizerAppropriateEndTag(t *testing.T) {
	tok := newHTMLTokenizer(newInputStream("<style>a</b>b</style>"), nil, nil)
	start := tok.NextToken()
	require.Equal(t, startTagToken, start.TokenType)
	require.Equal(t, "style", start.TagName)
	tok.SetState(rawTextState)

	var data string
	for {
		tk := tok.NextToken()
		if tk.TokenType == endTagToken {
			assert.Equal(t, "style", tk.TagName, "expected the appropriate end tag to be style")
			break
		}
		if tk.TokenType == characterToken {
			data += tk.Data
		}
	}
	assert.Equal(t, "a</b>b", data, "expected the non-matching end tag to be literal text")
}
