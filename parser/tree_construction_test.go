package parser

import (
	"strings"
	"testing"

	"github.com/heathj/html5parse/parser/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type treeTest struct {
	in       string
	expected string
}

var treeConstructionTests = []treeTest{
	{
		in: "<!DOCTYPE html><html><head></head><body>hi</body></html>",
		expected: `#document
| <!DOCTYPE html>
| <html>
|   <head>
|   <body>
|     "hi"`,
	},
	{
		// no explicit head/body: both are implicitly opened.
		in: "<!DOCTYPE html><p>hello</p>",
		expected: `#document
| <!DOCTYPE html>
| <html>
|   <head>
|   <body>
|     <p>
|       "hello"`,
	},
	{
		// tag and attribute names are ASCII-lowercased on the way in.
		in: "<!DOCTYPE html><DIV CLASS=Outer><P>x</P></DIV>",
		expected: `#document
| <!DOCTYPE html>
| <html>
|   <head>
|   <body>
|     <div>
|       class="Outer"
|       <p>
|         "x"`,
	},
	{
		// a comment before the root element attaches to the Document, not html.
		in: "<!--c--><!DOCTYPE html><html></html>",
		expected: `#document
| <!-- c -->
| <!DOCTYPE html>
| <html>
|   <head>
|   <body>`,
	},
	{
		// trailing comment after </html> goes to "after after body".
		in: "<!DOCTYPE html><html><body>x</body></html><!--trailing-->",
		expected: `#document
| <!DOCTYPE html>
| <html>
|   <head>
|   <body>
|     "x"
| <!-- trailing -->`,
	},
}

// TestNamedCharacterReferenceWithoutSemicolon exercises the legacy named
// character reference table entries that omit the trailing semicolon:
// the reference still resolves, but a missing-semicolon-after-character-
// reference error is recorded.
func TestNamedCharacterReferenceWithoutSemicolon(t *testing.T) {
	doc := Parse([]byte("<!DOCTYPE html><p>&amp</p>"), Options{})

	p := findFirst(doc, "p")
	require.NotNil(t, p)
	require.NotNil(t, p.FirstChild)
	require.NotNil(t, p.FirstChild.Text)
	assert.Equal(t, "&", p.FirstChild.Text.Data)

	var found bool
	for _, pe := range doc.ParseErrors {
		if pe.Kind == dom.MissingSemicolonAfterCharacterReference {
			found = true
			break
		}
	}
	assert.True(t, found, "expected a missing-semicolon-after-character-reference parse error, got %v", doc.ParseErrors)
}

func TestTreeConstructor(t *testing.T) {
	for _, tt := range treeConstructionTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			doc := Parse([]byte(tt.in), Options{})
			got := doc.String()
			want := strings.TrimRight(tt.expected, "\n")
			assert.Equal(t, want, got, "Parse(%q)", tt.in)
		})
	}
}

// TestFosterParenting exercises the "foster parent" branch of
// appropriateInsertionLocation: a character token that shows up while the
// current node is a table (not a cell or caption) is relocated to just
// before the table rather than becoming the table's text content.
func TestFosterParenting(t *testing.T) {
	doc := Parse([]byte(`<!DOCTYPE html><table>foo<tr><td>bar</td></tr></table>`), Options{})

	body := findFirst(doc, "body")
	require.NotNil(t, body, "no body in parsed tree")

	table := findFirst(body, "table")
	require.NotNil(t, table, "no table in parsed tree")

	if assert.NotNil(t, table.PreviousSibling, "expected a foster-parented sibling before <table>") {
		assert.Equal(t, dom.TextNode, table.PreviousSibling.NodeType)
		require.NotNil(t, table.PreviousSibling.Text)
		assert.Equal(t, "foo", table.PreviousSibling.Text.Data)
	}

	td := findFirst(table, "td")
	require.NotNil(t, td)
	require.NotNil(t, td.FirstChild)
	require.NotNil(t, td.FirstChild.Text)
	assert.Equal(t, "bar", td.FirstChild.Text.Data)
}

// TestForeignContentSVG exercises foreign-content dispatch and the SVG
// attribute/tag-name adjustment tables: foreignObject is an HTML integration
// point, so the <div> inside it parses under the normal HTML rules again,
// and viewBox survives camel case instead of being lowercased like an HTML
// attribute would be.
func TestForeignContentSVG(t *testing.T) {
	doc := Parse([]byte(`<!DOCTYPE html><body><svg viewBox="0 0 1 1"><foreignObject><div>hi</div></foreignObject></svg></body>`), Options{})

	svg := findFirst(doc, "svg")
	require.NotNil(t, svg, "no svg element in parsed tree")
	assert.Equal(t, dom.Svgns, svg.Element.NamespaceURI)
	v, ok := svg.GetAttribute("viewBox")
	assert.True(t, ok)
	assert.Equal(t, "0 0 1 1", v, "expected viewBox attribute to survive camel case")

	div := findFirst(doc, "div")
	require.NotNil(t, div, "expected a div inside foreignObject")
	assert.Equal(t, dom.Htmlns, div.Element.NamespaceURI, "expected div under foreignObject to be parsed as HTML")
}

// TestSelectMode exercises InSelect: option elements implicitly close one
// another, so two <option> start tags yield two sibling options under the
// <select>.
func TestSelectMode(t *testing.T) {
	doc := Parse([]byte(`<!DOCTYPE html><body><select><option>a<option>b</select></body>`), Options{})

	sel := findFirst(doc, "select")
	require.NotNil(t, sel, "no select element in parsed tree")

	var opts []*dom.Node
	for c := sel.FirstChild; c != nil; c = c.NextSibling {
		if c.NodeName == "option" {
			opts = append(opts, c)
		}
	}
	assert.Len(t, opts, 2, "expected 2 sibling <option> elements under <select>")
}

// TestTemplateMode exercises InTemplate: a <tr> start tag seen while a
// <template> is the current node pushes the "in table body" template
// insertion mode instead of falling through to InBody's handling.
func TestTemplateMode(t *testing.T) {
	doc := Parse([]byte(`<!DOCTYPE html><body><template><tr><td>x</td></tr></template></body>`), Options{})

	tpl := findFirst(doc, "template")
	require.NotNil(t, tpl, "no template element in parsed tree")
	assert.NotNil(t, findFirst(tpl, "td"), "expected a <td> reachable from the parsed <template>")
}

func findFirst(n *dom.Node, name string) *dom.Node {
	if n.NodeName == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, name); found != nil {
			return found
		}
	}
	return nil
}
