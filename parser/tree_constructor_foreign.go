package parser

import "github.com/heathj/html5parse/parser/dom"

// mathMLTextIntegrationPointNames is the GLOSSARY's "MathML text
// integration point" set: https://html.spec.whatwg.org/multipage/parsing.html#mathml-text-integration-point
var mathMLTextIntegrationPointNames = map[string]bool{
	"mi": true, "mo": true, "mn": true, "ms": true, "mtext": true,
}

func isMathMLTextIntegrationPoint(n *dom.Node) bool {
	return n != nil && n.Element != nil && n.Element.NamespaceURI == dom.Mathmlns &&
		mathMLTextIntegrationPointNames[n.NodeName]
}

// isHTMLIntegrationPoint implements https://html.spec.whatwg.org/multipage/parsing.html#html-integration-point
func isHTMLIntegrationPoint(n *dom.Node) bool {
	if n == nil || n.Element == nil {
		return false
	}
	switch n.Element.NamespaceURI {
	case dom.Mathmlns:
		if n.NodeName != "annotation-xml" {
			return false
		}
		enc, ok := n.Element.GetAttribute("encoding")
		if !ok {
			return false
		}
		enc = asciiLowerString(enc)
		return enc == "text/html" || enc == "application/xhtml+xml"
	case dom.Svgns:
		switch n.NodeName {
		case "foreignObject", "desc", "title":
			return true
		}
	}
	return false
}

func asciiLowerString(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 0x20
		}
	}
	return string(b)
}

// useForeignContentRules implements the "use foreign content rules" half
// of the tree construction dispatcher:
// https://html.spec.whatwg.org/multipage/parsing.html#tree-construction-dispatcher
func (c *treeConstructor) useForeignContentRules(tok Token) bool {
	if len(c.openElements.NodeList) == 0 {
		return false
	}
	n := c.adjustedCurrentNode()
	if n == nil || n.Element == nil || n.Element.NamespaceURI == dom.Htmlns {
		return false
	}
	if isMathMLTextIntegrationPoint(n) {
		if tok.TokenType == startTagToken && tok.TagName != "mglyph" && tok.TagName != "malignmark" {
			return false
		}
		if tok.TokenType == characterToken {
			return false
		}
	}
	if n.NodeName == "annotation-xml" && n.Element.NamespaceURI == dom.Mathmlns &&
		tok.TokenType == startTagToken && tok.TagName == "svg" {
		return false
	}
	if isHTMLIntegrationPoint(n) && (tok.TokenType == startTagToken || tok.TokenType == characterToken) {
		return false
	}
	if tok.TokenType == endOfFileToken {
		return false
	}
	return true
}

// foreignBreakoutStartTags is the set of start tags that, per "the rules
// for parsing tokens in foreign content", always break out of foreign
// content and reprocess under HTML content rules.
var foreignBreakoutStartTags = map[string]bool{
	"b": true, "big": true, "blockquote": true, "body": true, "br": true,
	"center": true, "code": true, "dd": true, "div": true, "dl": true,
	"dt": true, "em": true, "embed": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "head": true, "hr": true, "i": true,
	"img": true, "li": true, "listing": true, "menu": true, "meta": true,
	"nobr": true, "ol": true, "p": true, "pre": true, "ruby": true, "s": true,
	"small": true, "span": true, "strong": true, "strike": true, "sub": true,
	"sup": true, "table": true, "tt": true, "u": true, "ul": true, "var": true,
}

// foreignContent implements "the rules for parsing tokens in foreign
// content": https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-incdata
func (c *treeConstructor) foreignContent(tok *Token) bool {
	switch tok.TokenType {
	case characterToken:
		r := []rune(tok.Data)[0]
		if r == 0 {
			c.recordError(dom.UnexpectedNullCharacter)
			c.insertCharacter(0xFFFD)
			return false
		}
		c.insertCharacter(r)
		if !isHTMLWhitespace(r) {
			c.frameset = framesetNotOK
		}
		return false

	case commentToken:
		c.insertComment(tok.Data, nil)
		return false

	case docTypeToken:
		c.recordError(dom.GenericParseError)
		return false

	case startTagToken:
		breakout := foreignBreakoutStartTags[tok.TagName]
		if tok.TagName == "font" {
			if _, ok := tok.attr("color"); ok {
				breakout = true
			}
			if _, ok := tok.attr("face"); ok {
				breakout = true
			}
			if _, ok := tok.attr("size"); ok {
				breakout = true
			}
		}
		if breakout {
			c.recordError(dom.GenericParseError)
			for {
				cur := c.currentNode()
				if cur == nil {
					break
				}
				if isMathMLTextIntegrationPoint(cur) || isHTMLIntegrationPoint(cur) ||
					(cur.Element != nil && cur.Element.NamespaceURI == dom.Htmlns) {
					break
				}
				c.openElements.Pop()
			}
			return true
		}

		cur := c.adjustedCurrentNode()
		ns := dom.Htmlns
		if cur != nil && cur.Element != nil {
			ns = cur.Element.NamespaceURI
		}
		switch ns {
		case dom.Mathmlns:
			adjustMathMLAttributes(tok)
		case dom.Svgns:
			tok.TagName = adjustSVGTagName(tok.TagName)
			adjustSVGAttributes(tok)
		}
		adjustForeignAttributes(tok)
		c.insertForeignElement(*tok, ns)
		if tok.SelfClosing {
			if ns == dom.Svgns && tok.TagName == "script" {
				c.openElements.Pop()
			} else {
				c.openElements.Pop()
			}
			c.acknowledgeSelfClosingIfSet(*tok, true)
		}
		return false

	case endTagToken:
		if tok.TagName == "script" {
			if cur := c.currentNode(); cur != nil && cur.NodeName == "script" &&
				cur.Element != nil && cur.Element.NamespaceURI == dom.Svgns {
				c.openElements.Pop()
				return false
			}
		}

		node := c.currentNode()
		if node == nil {
			return false
		}
		if asciiLowerString(node.NodeName) != tok.TagName {
			c.recordError(dom.UnexpectedEndTag)
		}
		for i := len(c.openElements.NodeList) - 1; i >= 0; i-- {
			node = c.openElements.NodeList[i]
			if i == 0 {
				return false
			}
			if asciiLowerString(node.NodeName) == tok.TagName {
				c.openElements.PopUntilConditions(func(e *dom.Node) bool { return e == node })
				c.openElements.Pop()
				return false
			}
			if c.openElements.NodeList[i-1].Element != nil && c.openElements.NodeList[i-1].Element.NamespaceURI == dom.Htmlns {
				return c.dispatchHTML(tok)
			}
		}
		return false

	case endOfFileToken:
		return c.dispatchHTML(tok)
	}
	return false
}

// adjustMathMLAttributes implements "adjust MathML attributes": rename a
// token's definitionurl attribute to definitionURL.
// https://html.spec.whatwg.org/multipage/parsing.html#adjust-mathml-attributes
func adjustMathMLAttributes(tok *Token) {
	for i := range tok.Attributes {
		if tok.Attributes[i].Name == "definitionurl" {
			tok.Attributes[i].Name = "definitionURL"
		}
	}
}

// svgAttributeAdjustments is "adjust SVG attributes":
// https://html.spec.whatwg.org/multipage/parsing.html#adjust-svg-attributes
var svgAttributeAdjustments = map[string]string{
	"attributename": "attributeName", "attributetype": "attributeType",
	"basefrequency": "baseFrequency", "baseprofile": "baseProfile",
	"calcmode": "calcMode", "clippathunits": "clipPathUnits",
	"diffuseconstant": "diffuseConstant", "edgemode": "edgeMode",
	"filterunits": "filterUnits", "glyphref": "glyphRef",
	"gradienttransform": "gradientTransform", "gradientunits": "gradientUnits",
	"kernelmatrix": "kernelMatrix", "kernelunitlength": "kernelUnitLength",
	"keypoints": "keyPoints", "keysplines": "keySplines", "keytimes": "keyTimes",
	"lengthadjust": "lengthAdjust", "limitingconeangle": "limitingConeAngle",
	"markerheight": "markerHeight", "markerunits": "markerUnits",
	"markerwidth": "markerWidth", "maskcontentunits": "maskContentUnits",
	"maskunits": "maskUnits", "numoctaves": "numOctaves", "pathlength": "pathLength",
	"patterncontentunits": "patternContentUnits", "patterntransform": "patternTransform",
	"patternunits": "patternUnits", "pointsatx": "pointsAtX", "pointsaty": "pointsAtY",
	"pointsatz": "pointsAtZ", "preservealpha": "preserveAlpha",
	"preserveaspectratio": "preserveAspectRatio", "primitiveunits": "primitiveUnits",
	"refx": "refX", "refy": "refY", "repeatcount": "repeatCount", "repeatdur": "repeatDur",
	"requiredextensions": "requiredExtensions", "requiredfeatures": "requiredFeatures",
	"specularconstant": "specularConstant", "specularexponent": "specularExponent",
	"spreadmethod": "spreadMethod", "startoffset": "startOffset",
	"stddeviation": "stdDeviation", "stitchtiles": "stitchTiles",
	"surfacescale": "surfaceScale", "systemlanguage": "systemLanguage",
	"tablevalues": "tableValues", "targetx": "targetX", "targety": "targetY",
	"textlength": "textLength", "viewbox": "viewBox", "viewtarget": "viewTarget",
	"xchannelselector": "xChannelSelector", "ychannelselector": "yChannelSelector",
	"zoomandpan": "zoomAndPan",
}

func adjustSVGAttributes(tok *Token) {
	for i := range tok.Attributes {
		if fixed, ok := svgAttributeAdjustments[tok.Attributes[i].Name]; ok {
			tok.Attributes[i].Name = fixed
		}
	}
}

// svgTagNameAdjustments is the case-sensitive SVG tag name table:
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inforeign
var svgTagNameAdjustments = map[string]string{
	"altglyph": "altGlyph", "altglyphdef": "altGlyphDef", "altglyphitem": "altGlyphItem",
	"animatecolor": "animateColor", "animatemotion": "animateMotion",
	"animatetransform": "animateTransform", "clippath": "clipPath",
	"feblend": "feBlend", "fecolormatrix": "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer", "fecomposite": "feComposite",
	"feconvolvematrix": "feConvolveMatrix", "fediffuselighting": "feDiffuseLighting",
	"fedisplacementmap": "feDisplacementMap", "fedistantlight": "feDistantLight",
	"fedropshadow": "feDropShadow", "feflood": "feFlood", "fefunca": "feFuncA",
	"fefuncb": "feFuncB", "fefuncg": "feFuncG", "fefuncr": "feFuncR",
	"fegaussianblur": "feGaussianBlur", "feimage": "feImage", "femerge": "feMerge",
	"femergenode": "feMergeNode", "femorphology": "feMorphology", "feoffset": "feOffset",
	"fepointlight": "fePointLight", "fespecularlighting": "feSpecularLighting",
	"fespotlight": "feSpotLight", "fetile": "feTile", "feturbulence": "feTurbulence",
	"foreignobject": "foreignObject", "glyphref": "glyphRef",
	"lineargradient": "linearGradient", "radialgradient": "radialGradient",
	"textpath": "textPath",
}

func adjustSVGTagName(name string) string {
	if fixed, ok := svgTagNameAdjustments[name]; ok {
		return fixed
	}
	return name
}

// foreignAttributeNamespaces is "adjust foreign attributes":
// https://html.spec.whatwg.org/multipage/parsing.html#adjust-foreign-attributes
var foreignAttributeNamespaces = map[string]struct {
	ns        dom.Namespace
	prefix    string
	localName string
}{
	"xlink:actuate": {dom.Xlinkns, "xlink", "actuate"},
	"xlink:arcrole": {dom.Xlinkns, "xlink", "arcrole"},
	"xlink:href":    {dom.Xlinkns, "xlink", "href"},
	"xlink:role":    {dom.Xlinkns, "xlink", "role"},
	"xlink:show":    {dom.Xlinkns, "xlink", "show"},
	"xlink:title":   {dom.Xlinkns, "xlink", "title"},
	"xlink:type":    {dom.Xlinkns, "xlink", "type"},
	"xml:lang":      {dom.Xmlns, "xml", "lang"},
	"xml:space":     {dom.Xmlns, "xml", "space"},
	"xmlns":         {dom.Xmlnsns, "", "xmlns"},
	"xmlns:xlink":   {dom.Xmlnsns, "xmlns", "xlink"},
}

func adjustForeignAttributes(tok *Token) {
	for i := range tok.Attributes {
		if adj, ok := foreignAttributeNamespaces[tok.Attributes[i].Name]; ok {
			tok.Attributes[i].HasNS = true
			tok.Attributes[i].Namespace = adj.ns
			tok.Attributes[i].Prefix = adj.prefix
			tok.Attributes[i].LocalName = adj.localName
		}
	}
}
