package urlmatch

import "regexp"

// Kind is the tag of the sum type the tree's nodes and the parser's parts are
// built from. It deliberately excludes Root: Root is a node-only concept with
// no corresponding Part.
type Kind uint8

const (
	Fixed Kind = iota
	SegmentWildcard
	FullWildcard
	Regex
)

// Modifier is the repetition/optionality suffix a Part carries, independent
// of its Kind.
type Modifier uint8

const (
	ModNone Modifier = iota
	ModOptional
	ModZeroOrMore
	ModOneOrMore
)

// Part is the tree's alphabet: one element of a pattern's parsed form. Two
// Parts are structurally equivalent iff Equal reports true for them, which
// ignores Name - this is what lets differently-named captures share tree
// structure.
type Part struct {
	Kind      Kind
	Component Component
	Value     string // literal text (Fixed) or regex source without anchors (Regex)
	Prefix    string // literal preceding a SegmentWildcard capture, may be empty
	Suffix    string // literal following a SegmentWildcard capture, may be empty
	Name      string // capture name; irrelevant to tree structure
	Modifier  Modifier

	// re is the compiled form of Value for Regex parts. It is populated once,
	// when newNode builds a tree node from this Part, and stored in that
	// node's copy of the Part; parsers leave it nil. A nil re
	// with Kind == Regex means the source failed to compile; per §7 the node
	// built from it becomes permissively matching rather than raising an error.
	re *regexp.Regexp
}

// Equal reports whether p and o are structurally equivalent per §3: equal by
// Kind, Component, Modifier, Value, Prefix and Suffix. Name is excluded.
func (p Part) Equal(o Part) bool {
	return p.Kind == o.Kind &&
		p.Component == o.Component &&
		p.Modifier == o.Modifier &&
		p.Value == o.Value &&
		p.Prefix == o.Prefix &&
		p.Suffix == o.Suffix
}

// zeroMatchOK reports whether the Part's modifier allows the hole it governs
// to consume nothing at all.
func (p Part) zeroMatchOK() bool {
	return p.Modifier == ModOptional || p.Modifier == ModZeroOrMore
}

// repeats reports whether the Part's modifier allows more than one repetition.
func (p Part) repeats() bool {
	return p.Modifier == ModZeroOrMore || p.Modifier == ModOneOrMore
}
