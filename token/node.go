package token

// unknownStrKind is the string returned for unknown kind enum values.
const unknownStrKind = "Unknown"

// Kind classifies a Node.
type Kind int

const (
	// Text is a run of plain characters rendered with the font.
	Text Kind = iota

	// Emoji is a Unicode emoji sequence (single or multi-codepoint).
	Emoji

	// CustomEmoji is a platform emoji reference carrying a display
	// name and a numeric ID, e.g. <:smile:123456789>.
	CustomEmoji
)

// kindNames maps Kind to string names.
var kindNames = [...]string{
	Text:        "Text",
	Emoji:       "Emoji",
	CustomEmoji: "CustomEmoji",
}

// String returns the string name of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return unknownStrKind
}

// Node is one classified unit of a text line.
// Nodes are immutable once produced by Tokenize.
type Node struct {
	// Kind determines how the node is rendered: Text nodes are drawn
	// with the font, emoji nodes are drawn as bitmaps when resolved.
	Kind Kind

	// Content is the literal source text of the node. Concatenating
	// the Content of every node in a Line reproduces the input exactly.
	Content string

	// Name is the display name of a CustomEmoji node ("smile" in
	// <:smile:123456789>). Empty for other kinds.
	Name string

	// ID is the numeric reference of a CustomEmoji node.
	// Zero for other kinds.
	ID uint64
}

// Fallback returns the text drawn in place of the node when no bitmap
// is available. Custom emoji fall back to the bracketed display name;
// all other nodes fall back to their literal content.
func (n Node) Fallback() string {
	if n.Kind == CustomEmoji {
		return "[:" + n.Name + ":]"
	}
	return n.Content
}

// Line is an ordered sequence of nodes. Rendering order is strictly
// left to right; lines are not reorderable.
type Line []Node

// HasEmoji reports whether the line contains at least one emoji node.
func (l Line) HasEmoji() bool {
	for _, n := range l {
		if n.Kind != Text {
			return true
		}
	}
	return false
}

// String reassembles the original source text of the line.
func (l Line) String() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Content
	}
	size := 0
	for _, n := range l {
		size += len(n.Content)
	}
	buf := make([]byte, 0, size)
	for _, n := range l {
		buf = append(buf, n.Content...)
	}
	return string(buf)
}
