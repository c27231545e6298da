package parser

import "github.com/heathj/html5parse/parser/dom"

var formattingElementNames = map[string]bool{
	"a": true, "b": true, "big": true, "code": true, "em": true, "font": true,
	"i": true, "nobr": true, "s": true, "small": true, "strike": true,
	"strong": true, "tt": true, "u": true,
}

func isFormattingElement(n *dom.Node) bool {
	return n != nil && n.Element != nil && formattingElementNames[n.NodeName]
}

var specialElementNames = map[string]bool{
	"address": true, "applet": true, "area": true, "article": true, "aside": true,
	"base": true, "basefont": true, "bgsound": true, "blockquote": true, "body": true,
	"br": true, "button": true, "caption": true, "center": true, "col": true,
	"colgroup": true, "dd": true, "details": true, "dir": true, "div": true,
	"dl": true, "dt": true, "embed": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "frame": true, "frameset": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "header": true, "hgroup": true, "hr": true, "html": true,
	"iframe": true, "img": true, "input": true, "keygen": true, "li": true,
	"link": true, "listing": true, "main": true, "marquee": true, "menu": true,
	"meta": true, "nav": true, "noembed": true, "noframes": true, "noscript": true,
	"object": true, "ol": true, "p": true, "param": true, "plaintext": true,
	"pre": true, "script": true, "section": true, "select": true, "source": true,
	"style": true, "summary": true, "table": true, "tbody": true, "td": true,
	"template": true, "textarea": true, "tfoot": true, "th": true, "thead": true,
	"title": true, "tr": true, "track": true, "ul": true, "wbr": true, "xmp": true,
}

func isSpecialElement(n *dom.Node) bool {
	return n != nil && n.Element != nil && n.Element.NamespaceURI == dom.Htmlns && specialElementNames[n.NodeName]
}

// adoptionAgencyAlgorithm handles mis-nested formatting elements on an end
// tag, bounded to an outer loop of 8 and an inner loop of 3 per the HTML
// Standard's complexity ceilings:
// https://html.spec.whatwg.org/multipage/parsing.html#adoption-agency-algorithm
func (c *treeConstructor) adoptionAgencyAlgorithm(subject string) {
	if c.currentNode() != nil && c.currentNode().NodeName == subject && c.afe.NodeList.Contains(c.currentNode()) == -1 {
		c.openElements.Pop()
		return
	}

	for outer := 0; outer < 8; outer++ {
		formattingElement, feIndex := c.lastFormattingElementBefore(subject)
		if formattingElement == nil {
			c.inBodyAnyOtherEndTag(subject)
			return
		}
		feStackIdx := c.openElements.NodeList.Contains(formattingElement)
		if feStackIdx == -1 {
			c.recordError(dom.UnexpectedEndTag)
			c.afe.NodeList.Remove(feIndex)
			return
		}
		if !c.openElements.ContainsElementInScope(formattingElement.NodeName) {
			c.recordError(dom.UnexpectedEndTag)
			return
		}

		furthestBlock, fbStackIdx := c.furthestBlockAbove(feStackIdx)
		if furthestBlock == nil {
			c.popStackUpToAndIncluding(formattingElement)
			c.afe.NodeList.Remove(c.afe.NodeList.Contains(formattingElement))
			return
		}

		commonAncestor := c.openElements.NodeList[feStackIdx-1]
		bookmark := c.afe.NodeList.Contains(formattingElement)

		lastNode := furthestBlock
		node := furthestBlock
		nodeStackIdx := fbStackIdx
		for inner := 0; inner < 3; inner++ {
			nodeStackIdx--
			node = c.openElements.NodeList[nodeStackIdx]
			if node == formattingElement {
				break
			}
			afeIdx := c.afe.NodeList.Contains(node)
			if afeIdx == -1 {
				// Only entries below nodeStackIdx shift; the next element toward
				// the root stays at nodeStackIdx-1.
				c.openElements.NodeList.Remove(nodeStackIdx)
				continue
			}
			clone := c.cloneElementShallow(node)
			c.afe.NodeList[afeIdx] = clone
			c.openElements.NodeList[nodeStackIdx] = clone
			if bookmark >= afeIdx {
				bookmark++
			}
			node = clone
			if lastNode == furthestBlock {
				bookmark = afeIdx + 1
			}
			node.AppendChild(lastNode)
			lastNode = node
		}

		parent, before := c.appropriateInsertionLocation(commonAncestor)
		insertAt(parent, before, lastNode)

		clone := c.cloneElementShallow(formattingElement)
		for _, child := range append([]*dom.Node{}, furthestBlock.ChildNodes...) {
			clone.AppendChild(child)
		}
		furthestBlock.AppendChild(clone)

		feAfeIdx := c.afe.NodeList.Contains(formattingElement)
		if feAfeIdx != -1 {
			c.afe.NodeList.Remove(feAfeIdx)
			if bookmark > feAfeIdx {
				bookmark--
			}
		}
		c.afe.NodeList.InsertAt(bookmark, clone)

		feIdxOnStack := c.openElements.NodeList.Contains(formattingElement)
		if feIdxOnStack != -1 {
			c.openElements.NodeList.Remove(feIdxOnStack)
		}
		fbIdxOnStack := c.openElements.NodeList.Contains(furthestBlock)
		c.openElements.NodeList.InsertAt(fbIdxOnStack+1, clone)
	}
}

func (c *treeConstructor) lastFormattingElementBefore(name string) (*dom.Node, int) {
	for i := len(c.afe.NodeList) - 1; i >= 0; i-- {
		entry := c.afe.NodeList[i]
		if entry == dom.ScopeMarker {
			return nil, -1
		}
		if entry.NodeName == name {
			return entry, i
		}
	}
	return nil, -1
}

// furthestBlockAbove finds the topmost special element lower in the
// open-element stack than the formatting element (between it and the
// current node).
func (c *treeConstructor) furthestBlockAbove(feStackIdx int) (*dom.Node, int) {
	var furthest *dom.Node
	var furthestIdx int
	for i := feStackIdx + 1; i < len(c.openElements.NodeList); i++ {
		if isSpecialElement(c.openElements.NodeList[i]) {
			furthest = c.openElements.NodeList[i]
			furthestIdx = i
			break
		}
	}
	return furthest, furthestIdx
}

func (c *treeConstructor) popStackUpToAndIncluding(n *dom.Node) {
	for {
		popped := c.openElements.Pop()
		if popped == n || popped == nil {
			return
		}
	}
}
