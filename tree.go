package urlmatch

// prefixTree is the core data structure of §3: a tree of node values keyed by
// structurally-distinct Parts, append-only, never pruned or rebalanced.
type prefixTree struct {
	root *node
}

func newPrefixTree() *prefixTree {
	return &prefixTree{root: newRootNode()}
}

// insert is the Inserter of §4.2. It walks parts down the tree, reusing
// structurally equivalent child nodes and otherwise appending a new one, then
// records (sequence, handle, payload) at the final node. It never splits or
// reorders an existing node - appending is the only structural mutation.
func (t *prefixTree) insert(parts []Part, handle PatternHandle, payload any, sequence uint64) {
	current := t.root
	for _, part := range parts {
		child := current.findEquivalentChild(part)
		if child == nil {
			child = newNode(part)
			current.children = append(current.children, child)
		}
		current.touch(sequence)
		current = child
	}
	current.touch(sequence)
	current.patterns = append(current.patterns, registeredPattern{
		sequence: sequence,
		handle:   handle,
		payload:  payload,
	})
}

// nodeCount walks the whole tree; used only by Index.Stats for introspection
// (§12), never on the match hot path.
func (t *prefixTree) nodeCount() int {
	var count func(n *node) int
	count = func(n *node) int {
		total := 1
		for _, c := range n.children {
			total += count(c)
		}
		return total
	}
	return count(t.root)
}

// patternCount sums the patterns registered across every node; used only by
// Index.Stats.
func (t *prefixTree) patternCount() int {
	var total int
	var walk func(n *node)
	walk = func(n *node) {
		total += len(n.patterns)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
	return total
}
