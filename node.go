package urlmatch

import "regexp"

// noSequence is the minSequence of a node whose subtree holds no registered
// patterns yet. It must compare greater than any real sequence so that the
// min() in insert and the pruning check in match both behave correctly.
const noSequence = ^uint64(0)

// registeredPattern is the (sequence, compiled pattern handle, payload)
// triple of §3. Sequence is assigned once, by the owning Index, and never
// changes thereafter.
type registeredPattern struct {
	sequence uint64
	handle   PatternHandle
	payload  any
}

// node is the tree's discriminated variant over {Root, Fixed, SegmentWildcard,
// FullWildcard, Regex}. Root is represented by isRoot == true with a zero
// Part; every other node carries the Part it was built from directly, since
// the Part already holds all of the kind-specific matching data (literal
// value, prefix/suffix, compiled regex, modifier).
//
// children is kept in insertion order and, by construction of insert, with
// non-decreasing Part.Component - the matcher's walk over components[] is a
// merge against this order, not a search.
type node struct {
	isRoot bool
	part   Part

	patterns []registeredPattern
	children []*node

	// minSequence is the minimum sequence number across patterns at this node
	// and every sequence reachable from its children. It is the basis for
	// the matcher's subtree pruning (§4.3, §9 "why sort-pruning works").
	minSequence uint64
}

func newRootNode() *node {
	return &node{isRoot: true, minSequence: noSequence}
}

func newNode(part Part) *node {
	if part.Kind == Regex && part.Value != "" {
		part.re = compilePartRegex(part.Value)
	}
	return &node{part: part, minSequence: noSequence}
}

// compilePartRegex anchors and wraps a Part's raw regex source before
// compiling it, per §4.1: "The core wraps alternations in a non-capturing
// group and anchors both ends before compiling." A compile failure yields a
// nil *regexp.Regexp; per §7 the node then falls back to permissive matching
// rather than surfacing an error, relying on the evaluator to reject the
// final candidate.
func compilePartRegex(source string) *regexp.Regexp {
	re, err := regexp.Compile("^(?:" + source + ")$")
	if err != nil {
		return nil
	}
	return re
}

// findEquivalentChild returns the first child structurally equivalent to
// part, or nil. Per §3/§4.2, children of a node are pairwise structurally
// non-equivalent, so the first match is the only match.
func (n *node) findEquivalentChild(part Part) *node {
	for _, c := range n.children {
		if c.part.Equal(part) {
			return c
		}
	}
	return nil
}

// touch folds sequence into minSequence, maintaining the P5 invariant.
func (n *node) touch(sequence uint64) {
	if sequence < n.minSequence {
		n.minSequence = sequence
	}
}
