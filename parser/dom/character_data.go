package dom

// CharacterData is the abstract parent of Text and Comment.
// https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data string
}

// Text is https://dom.spec.whatwg.org/#text
type Text struct {
	CharacterData
}

// Comment is https://dom.spec.whatwg.org/#interface-comment
type Comment struct {
	CharacterData
}

// AppendData appends s to the character data, used by the tree
// constructor's text-coalescing insertion primitive to merge a character
// token into the Text node immediately before the insertion point.
func (c *CharacterData) AppendData(s string) { c.Data += s }
