package dom

// NodeList is https://dom.spec.whatwg.org/#nodelist, used both as a plain
// child list and, via StackOfOpenElements / ActiveFormattingElements, as
// the tree constructor's two parallel bookkeeping stacks.
type NodeList []*Node

// Contains returns the index of n, or -1.
func (h *NodeList) Contains(n *Node) int {
	for i := range *h {
		if n == (*h)[i] {
			return i
		}
	}
	return -1
}

// Remove deletes the entry at index i, if in range, and returns it.
func (h *NodeList) Remove(i int) *Node {
	if i < 0 || i >= len(*h) {
		return nil
	}
	node := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	return node
}

// InsertAt inserts n at index i, shifting later entries right.
func (h *NodeList) InsertAt(i int, n *Node) {
	if i < 0 {
		return
	}
	if i >= len(*h) {
		*h = append(*h, n)
		return
	}
	*h = append(*h, nil)
	copy((*h)[i+1:], (*h)[i:])
	(*h)[i] = n
}

// Last returns the bottommost (current) entry, or nil if empty.
func (h *NodeList) Last() *Node {
	if len(*h) == 0 {
		return nil
	}
	return (*h)[len(*h)-1]
}

// Pop removes and returns the bottommost entry.
func (h *NodeList) Pop() *Node {
	if len(*h) == 0 {
		return nil
	}
	popped := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return popped
}

// PopUntil pops repeatedly until (and including) a node whose NodeName
// matches one of the given names, returning that node, or nil if the list
// is exhausted first.
func (h *NodeList) PopUntil(names ...string) *Node {
	for {
		popped := h.Pop()
		if popped == nil {
			return nil
		}
		for _, name := range names {
			if popped.NodeName == name {
				return popped
			}
		}
	}
}

// PopUntilConditions pops while none of funcs matches the current
// bottommost entry, then stops without popping the matching entry.
func (h *NodeList) PopUntilConditions(funcs ...func(e *Node) bool) *Node {
	for {
		last := len(*h) - 1
		if last < 0 {
			return nil
		}
		for _, f := range funcs {
			if f((*h)[last]) {
				return (*h)[last]
			}
		}
		h.Pop()
	}
}

// StackOfOpenElements is the ordered sequence of currently unclosed
// elements; the bottommost entry is the current node.
type StackOfOpenElements struct {
	NodeList
}

// Push pushes n onto the stack (the new current node).
func (s *StackOfOpenElements) Push(n *Node) { s.NodeList = append(s.NodeList, n) }

// Current returns the current node (bottommost / most-recently pushed).
func (s *StackOfOpenElements) Current() *Node { return s.NodeList.Last() }

// ContainsName reports whether any entry's NodeName equals name.
func (s *StackOfOpenElements) ContainsName(name string) bool {
	for _, n := range s.NodeList {
		if n.NodeName == name {
			return true
		}
	}
	return false
}

// RemoveNode removes n from the stack by identity, wherever it sits; a
// no-op if n is not present. Used by algorithms that remove a node the
// spec names directly rather than by stack position, such as removing the
// head element pointer's node after a detour through "the rules for the
// in head insertion mode".
func (s *StackOfOpenElements) RemoveNode(n *Node) {
	idx := s.NodeList.Contains(n)
	if idx != -1 {
		s.NodeList.Remove(idx)
	}
}

// ClearToContextTable implements "clear the stack back to a table
// context": pop until the current node is table, template or html.
func (s *StackOfOpenElements) ClearToContextTable() {
	s.clearToContext("table", "template", "html")
}

// ClearToContextTableBody implements "clear the stack back to a table body
// context": pop until the current node is tbody, tfoot, thead, template or
// html.
func (s *StackOfOpenElements) ClearToContextTableBody() {
	s.clearToContext("tbody", "tfoot", "thead", "template", "html")
}

// ClearToContextRow implements "clear the stack back to a table row
// context": pop until the current node is tr, template or html.
func (s *StackOfOpenElements) ClearToContextRow() {
	s.clearToContext("tr", "template", "html")
}

func (s *StackOfOpenElements) clearToContext(names ...string) {
	for {
		cur := s.Current()
		if cur == nil {
			return
		}
		for _, n := range names {
			if cur.NodeName == n {
				return
			}
		}
		s.Pop()
	}
}

var elementInScopeList = []string{
	"applet", "caption", "html", "table", "td", "th", "marquee", "object",
	"template", "mi", "mo", "mn", "ms", "mtext", "annotation-xml",
	"foreignObject", "desc", "title",
}

func appendCopy(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}

var listItemScopeList = appendCopy(elementInScopeList, "ol", "ul")
var buttonScopeList = appendCopy(elementInScopeList, "button")

// inSpecificScope implements the generic "has an element in the specific
// scope" algorithm: walk the stack from the current node toward the root,
// returning true on reaching target, false on reaching any element in list
// first.
func (s *StackOfOpenElements) inSpecificScope(target string, list []string) bool {
	for i := len(s.NodeList) - 1; i >= 0; i-- {
		name := s.NodeList[i].NodeName
		if name == target {
			return true
		}
		for _, stop := range list {
			if name == stop {
				return false
			}
		}
	}
	return false
}

// ContainsElementInScope is "has an element in scope".
func (s *StackOfOpenElements) ContainsElementInScope(target string) bool {
	return s.inSpecificScope(target, elementInScopeList)
}

// ContainsElementInListItemScope is "has an element in list item scope".
func (s *StackOfOpenElements) ContainsElementInListItemScope(target string) bool {
	return s.inSpecificScope(target, listItemScopeList)
}

// ContainsElementInButtonScope is "has an element in button scope".
func (s *StackOfOpenElements) ContainsElementInButtonScope(target string) bool {
	return s.inSpecificScope(target, buttonScopeList)
}

// ContainsElementInTableScope is "has an element in table scope".
func (s *StackOfOpenElements) ContainsElementInTableScope(target string) bool {
	return s.inSpecificScope(target, []string{"html", "table", "template"})
}

// ContainsElementInSelectScope is "has an element in select scope": unlike
// the others, this is defined by exclusion of everything except optgroup
// and option, rather than a fixed stop-list.
func (s *StackOfOpenElements) ContainsElementInSelectScope(target string) bool {
	for i := len(s.NodeList) - 1; i >= 0; i-- {
		name := s.NodeList[i].NodeName
		if name == target {
			return true
		}
		if name != "optgroup" && name != "option" {
			return false
		}
	}
	return false
}

// ContainsElementsInScope reports whether any of elems is in scope.
func (s *StackOfOpenElements) ContainsElementsInScope(elems ...string) bool {
	for _, e := range elems {
		if s.ContainsElementInScope(e) {
			return true
		}
	}
	return false
}

// ActiveFormattingElements is the ordered list of formatting elements (or
// markers) used by the adoption-agency algorithm.
type ActiveFormattingElements struct {
	NodeList
}

// Push implements https://html.spec.whatwg.org/multipage/parsing.html#push-onto-the-list-of-active-formatting-elements
// including the Noah's Ark clause: if three elements after the last marker
// already match n on tag name, namespace and attributes, the earliest of
// them is dropped from the list before n is appended.
func (s *ActiveFormattingElements) Push(n *Node) {
	if len(s.NodeList) < 3 {
		s.NodeList = append(s.NodeList, n)
		return
	}

	start := 0
	for i := len(s.NodeList) - 1; i >= 0; i-- {
		if s.NodeList[i] == ScopeMarker {
			start = i + 1
			break
		}
	}

	var similar []*Node
	for i := start; i < len(s.NodeList); i++ {
		node := s.NodeList[i]
		if !sameFormattingElement(node, n) {
			continue
		}
		similar = append(similar, node)
		if len(similar) >= 3 {
			s.NodeList.Remove(s.NodeList.Contains(similar[0]))
			similar = similar[1:]
		}
	}

	s.NodeList = append(s.NodeList, n)
}

// InsertAfter inserts n immediately after the entry at index i (used when
// reconstructing or wedging in a formatting element at a known position).
func (s *ActiveFormattingElements) InsertAfter(i int, n *Node) {
	s.NodeList.InsertAt(i+1, n)
}

// ClearToLastMarker removes entries back to and including the last marker,
// per "clear the list of active formatting elements up to the last marker".
func (s *ActiveFormattingElements) ClearToLastMarker() {
	for len(s.NodeList) > 0 {
		entry := s.NodeList.Pop()
		if entry == ScopeMarker {
			return
		}
	}
}

func sameFormattingElement(a, b *Node) bool {
	if a.NodeName != b.NodeName || a.Element == nil || b.Element == nil {
		return false
	}
	if a.Element.NamespaceURI != b.Element.NamespaceURI {
		return false
	}
	if a.Attributes.Length() != b.Attributes.Length() {
		return false
	}
	for _, v := range b.Attributes.Items() {
		e, ok := a.Attributes.GetNamedItem(v.Name)
		if !ok || e.Namespace != v.Namespace || e.Name != v.Name || e.Value != v.Value {
			return false
		}
	}
	return true
}
