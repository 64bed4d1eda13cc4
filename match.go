package urlmatch

import "strings"

// matchCandidate is the "best (lowest-sequence) terminating pattern found"
// of §4.3 - a zero value means no candidate yet (found is false).
type matchCandidate struct {
	found    bool
	sequence uint64
	handle   PatternHandle
	payload  any
}

// betterThan reports whether c should replace other as the best candidate,
// i.e. other is unset or c is set with c.sequence < other.sequence.
func (c matchCandidate) betterThan(other matchCandidate) bool {
	return !other.found || (c.found && c.sequence < other.sequence)
}

// matchState carries everything the recursive walk needs that does not
// change across calls: the URL's decomposed components (indexed directly by
// Component, empty string standing in for "absent" per §4.4), the evaluator,
// and a shared backtracking budget (§9 open question: FullWildcard/
// SegmentWildcard fanout must be bounded).
type matchState struct {
	components  [8]string
	lastPresent int // highest Component index with non-empty text, or -1
	rawURL      string
	base        string
	evaluator   Evaluator
	budget      int
	exhausted   bool
}

func newMatchState(comps []urlComponent, rawURL, base string, evaluator Evaluator, budget int) *matchState {
	s := &matchState{rawURL: rawURL, base: base, evaluator: evaluator, budget: budget, lastPresent: -1}
	for _, c := range comps {
		s.components[c.tag] = c.text
		if int(c.tag) > s.lastPresent {
			s.lastPresent = int(c.tag)
		}
	}
	return s
}

// consumeBudget returns true if another backtracking attempt may be spent,
// decrementing the shared budget. Once exhausted, further attempts at any
// node in this match call are skipped - the affected subtree becomes a local
// miss, never a panic or an error (§9).
func (s *matchState) consumeBudget() bool {
	if s.budget <= 0 {
		s.exhausted = true
		return false
	}
	s.budget--
	return true
}

// walk is the entry point of §4.3's recursive step: called with the root, it
// returns the best candidate found in the whole tree. Non-root nodes are
// handled by consumeAndDescend; walk returns a zero candidate for them.
func (s *matchState) walk(n *node) matchCandidate {
	if n.isRoot {
		return s.tryChildrenAndPatterns(n, 0)
	}
	return matchCandidate{}
}

// consumeAndDescend tries every valid consumption outcome of n's own Part,
// in priority order, and for each calls tryChildrenAndPatterns - returning as
// soon as one attempt yields a candidate (the "first successful result" rule
// of §4.3's SegmentWildcard/FullWildcard prose, applied uniformly).
func (s *matchState) consumeAndDescend(n *node, startPos int) matchCandidate {
	text := s.components[n.part.Component]
	pathComponent := n.part.Component == Pathname
	hasChildren := len(n.children) > 0

	var ends []int
	switch n.part.Kind {
	case Fixed:
		ends = fixedConsumptions(n.part, text, startPos)
	case SegmentWildcard:
		ends = s.segmentWildcardConsumptions(n.part, text, startPos, hasChildren, pathComponent)
	case FullWildcard:
		ends = s.fullWildcardConsumptions(n.part, text, startPos, hasChildren)
	case Regex:
		ends = s.regexConsumptions(n.part, text, startPos, pathComponent)
	}

	for _, end := range ends {
		if result := s.tryChildrenAndPatternsFrom(n, end); result.found {
			return result
		}
	}
	return matchCandidate{}
}

// tryChildrenAndPatternsFrom is a helper bridging consumeAndDescend's "end
// position within n's own component" back into the shared children+patterns
// discipline, which needs to know both the new position and which component
// each child should start evaluating at.
func (s *matchState) tryChildrenAndPatternsFrom(n *node, endPos int) matchCandidate {
	return s.tryChildrenAndPatterns(n, endPos)
}

// tryChildrenAndPatterns implements §4.3's shared discipline: children are
// tried first (in insertion order, pruned by min_sequence), then the node's
// own terminating patterns are considered, in that order, so that a
// lower-sequence pattern deeper in the tree always beats a higher-sequence
// pattern at this node.
func (s *matchState) tryChildrenAndPatterns(n *node, endPos int) matchCandidate {
	var best matchCandidate

	componentDone := n.isRoot || endPos >= len(s.components[n.part.Component])

	for _, child := range n.children {
		if best.found && child.minSequence > best.sequence {
			continue // subtree cannot improve on best (§9 "why sort-pruning works")
		}

		var childStart int
		if !n.isRoot && child.part.Component == n.part.Component {
			childStart = endPos
		} else {
			childStart = 0
		}

		result := s.consumeAndDescend(child, childStart)
		if result.betterThan(best) {
			best = result
		}
	}

	if !componentDone {
		return best
	}

	for _, p := range n.patterns {
		if best.found && p.sequence >= best.sequence {
			continue
		}
		ok, err := s.evaluator.Test(p.handle, s.rawURL, s.base)
		if err != nil || !ok {
			continue
		}
		best = matchCandidate{found: true, sequence: p.sequence, handle: p.handle, payload: p.payload}
	}

	return best
}

// fixedConsumptions implements the Fixed node rules of §4.3. It never
// backtracks: each modifier produces at most one outcome.
func fixedConsumptions(part Part, text string, pos int) []int {
	L := part.Value
	switch part.Modifier {
	case ModOptional:
		if strings.HasPrefix(text[pos:], L) {
			return []int{pos + len(L)}
		}
		return []int{pos}
	case ModZeroOrMore, ModOneOrMore:
		reps := 0
		p := pos
		for L != "" && strings.HasPrefix(text[p:], L) {
			p += len(L)
			reps++
		}
		if part.Modifier == ModOneOrMore && reps == 0 {
			return nil
		}
		return []int{p}
	default:
		if strings.HasPrefix(text[pos:], L) {
			return []int{pos + len(L)}
		}
		return nil
	}
}

// segmentWildcardConsumptions implements the SegmentWildcard rules of §4.3,
// returning candidate end-positions (within n's own component text) in the
// priority order the spec prescribes: shortest content first, since later
// fixed literals should get the longest possible residual to bind against.
func (s *matchState) segmentWildcardConsumptions(part Part, text string, pos int, hasChildren, pathComponent bool) []int {
	if part.Prefix != "" && !strings.HasPrefix(text[pos:], part.Prefix) {
		return nil
	}
	contentStart := pos + len(part.Prefix)

	apply := func(contentLen int) (int, bool) {
		if !s.consumeBudget() {
			return 0, false
		}
		end := contentStart + contentLen
		if end > len(text) {
			return 0, false
		}
		content := text[contentStart:end]
		if pathComponent && part.Prefix == "" && strings.ContainsRune(content, '/') {
			return 0, false
		}
		if part.Suffix != "" {
			if !strings.HasPrefix(text[end:], part.Suffix) {
				return 0, false
			}
			end += len(part.Suffix)
		}
		return end, true
	}

	var out []int
	addIfOK := func(contentLen int) {
		if end, ok := apply(contentLen); ok {
			out = append(out, end)
		}
	}

	maxLen := len(text) - contentStart

	switch {
	case part.Modifier == ModOptional:
		addIfOK(0)
		if !hasChildren {
			addIfOK(naturalBoundary(text, contentStart, pathComponent))
			return out
		}
		for k := 1; k <= maxLen; k++ {
			addIfOK(k)
		}
	case part.repeats():
		segments := pathSegmentBoundaries(text, contentStart, part.Prefix, pathComponent)
		if part.Modifier == ModZeroOrMore {
			addIfOK(0)
		}
		for _, segEnd := range segments {
			addIfOK(segEnd - contentStart)
		}
		if len(segments) == 0 && !hasChildren {
			addIfOK(maxLen)
		}
	default: // ModNone
		if !hasChildren {
			addIfOK(naturalBoundary(text, contentStart, pathComponent))
			return out
		}
		for k := 1; k <= maxLen; k++ {
			addIfOK(k)
		}
	}
	return out
}

// naturalBoundary returns the content length, starting at contentStart, up to
// the next '/' (for pathname components) or end of text otherwise.
func naturalBoundary(text string, contentStart int, pathComponent bool) int {
	if pathComponent {
		if idx := strings.IndexByte(text[contentStart:], '/'); idx >= 0 {
			return idx
		}
	}
	return len(text) - contentStart
}

// pathSegmentBoundaries returns the cumulative end-offsets, within text, of
// each successive '/'-delimited segment starting at contentStart - or, when
// prefix is a non-'/' literal, each successive "prefix + content-until-next-
// boundary" repetition (§4.3's prefix-anchored multi-segment consumption).
func pathSegmentBoundaries(text string, contentStart int, prefix string, pathComponent bool) []int {
	var offsets []int
	if !pathComponent {
		return offsets
	}
	if prefix != "" && prefix != "/" {
		pos := contentStart
		for {
			end := naturalBoundary(text, pos, true) + pos
			if end == pos {
				break
			}
			offsets = append(offsets, end)
			if end >= len(text) || !strings.HasPrefix(text[end:], prefix) {
				break
			}
			pos = end + len(prefix)
		}
		return offsets
	}
	pos := contentStart
	for pos < len(text) {
		end := pos
		if text[pos] == '/' {
			if idx := strings.IndexByte(text[pos+1:], '/'); idx >= 0 {
				end = pos + 1 + idx
			} else {
				end = len(text)
			}
		} else {
			end = naturalBoundary(text, pos, true) + pos
		}
		if end == pos {
			break
		}
		offsets = append(offsets, end)
		pos = end
	}
	return offsets
}

// fullWildcardConsumptions implements the FullWildcard rules of §4.3: a
// zero-match attempt first for Optional, ZeroOrMore and OneOrMore, then
// lengths from longest to shortest (greedy-then-shrink), bounded by the shared
// backtracking budget.
func (s *matchState) fullWildcardConsumptions(part Part, text string, pos int, hasChildren bool) []int {
	remaining := len(text) - pos
	var out []int

	if part.zeroMatchOK() || part.Modifier == ModOneOrMore {
		out = append(out, pos)
	}

	if !hasChildren {
		if remaining > 0 || part.Modifier == ModNone {
			out = append(out, len(text))
		}
		return out
	}

	for k := remaining; k >= 1; k-- {
		if !s.consumeBudget() {
			break
		}
		out = append(out, pos+k)
	}
	return out
}

// regexConsumptions implements the Regex rules of §4.3. Pathname components
// are matched one '/'-bounded segment at a time; other components are
// matched against the entire remainder. A nil compiled regex (compile-time
// failure, §7) falls back to accepting any non-empty content.
func (s *matchState) regexConsumptions(part Part, text string, pos int, pathComponent bool) []int {
	candidate := func(end int) (int, bool) {
		content := text[pos:end]
		if part.re == nil {
			return end, content != ""
		}
		return end, part.re.MatchString(content)
	}

	var ends []int
	if part.zeroMatchOK() {
		if end, ok := candidate(pos); ok {
			ends = append(ends, end)
		} else if pos == len(text) {
			ends = append(ends, pos)
		}
	}

	if part.repeats() {
		for _, segEnd := range pathSegmentBoundaries(text, pos, "", pathComponent) {
			if !s.consumeBudget() {
				break
			}
			if end, ok := candidate(segEnd); ok {
				ends = append(ends, end)
			} else {
				break
			}
		}
		if len(ends) == 0 {
			if end, ok := candidate(singleSegmentEnd(text, pos, pathComponent)); ok {
				ends = append(ends, end)
			}
		}
		return ends
	}

	if end, ok := candidate(singleSegmentEnd(text, pos, pathComponent)); ok {
		ends = append(ends, end)
	}
	return ends
}

func singleSegmentEnd(text string, pos int, pathComponent bool) int {
	if pathComponent {
		start := pos
		if start < len(text) && text[start] == '/' {
			start++
		}
		if idx := strings.IndexByte(text[start:], '/'); idx >= 0 {
			return start + idx
		}
	}
	return len(text)
}
