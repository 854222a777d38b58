package property

import "strings"

// Tokenizer splits a property path into its head segment and the remaining children.
// Supports: "name", "items[0]", "order.items[2].price", "attrs[a.b].value", "[3].name".
//
// A Tokenizer is immutable; Next returns a fresh Tokenizer over the children.
type Tokenizer struct {
	name        string
	index       string
	hasIndex    bool
	indexedName string
	children    string
	hasChildren bool
}

// NewTokenizer tokenizes the head segment of path.
// The head ends at the first '.' that is not enclosed in brackets.
// Malformed brackets are not validated: an unterminated index is passed through literally.
func NewTokenizer(path string) *Tokenizer {
	t := &Tokenizer{}

	head := path
	if delim := splitIndex(path); delim > -1 {
		head = path[:delim]
		t.children = path[delim+1:]
		t.hasChildren = true
	}

	t.name = head
	t.indexedName = head

	if open := strings.IndexByte(head, '['); open > -1 {
		t.name = head[:open]
		t.index = strings.TrimSuffix(head[open+1:], "]")
		t.hasIndex = true
	}

	return t
}

// splitIndex returns the position of the first '.' outside brackets, or -1.
func splitIndex(path string) int {
	depth := 0

	for i := range len(path) {
		switch path[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '.':
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// Name returns the bare property name of the head segment, without any index.
func (t *Tokenizer) Name() string {
	return t.name
}

// Index returns the bracket content of the head segment; empty when there is none.
func (t *Tokenizer) Index() string {
	return t.index
}

// HasIndex reports whether the head segment carries a bracketed index or key.
func (t *Tokenizer) HasIndex() bool {
	return t.hasIndex
}

// IndexedName returns the head segment including its bracketed index, e.g. "items[0]".
func (t *Tokenizer) IndexedName() string {
	return t.indexedName
}

// Children returns the remainder of the path after the head segment.
func (t *Tokenizer) Children() string {
	return t.children
}

// HasNext reports whether a remainder follows the head segment.
func (t *Tokenizer) HasNext() bool {
	return t.hasChildren
}

// Next tokenizes the remainder. It returns nil when HasNext is false.
func (t *Tokenizer) Next() *Tokenizer {
	if !t.hasChildren {
		return nil
	}

	return NewTokenizer(t.children)
}

// String returns the path this tokenizer was built from.
func (t *Tokenizer) String() string {
	if t.hasChildren {
		return t.indexedName + "." + t.children
	}

	return t.indexedName
}
