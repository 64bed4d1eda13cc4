// Package urlmatch implements a prefix-tree index over parsed URL patterns:
// patterns are inserted in registration order, and a Match picks the
// lowest-sequence (first-registered) pattern whose parts the walk can
// satisfy and the configured Evaluator confirms.
package urlmatch

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// defaultBacktrackBudget bounds the number of SegmentWildcard/FullWildcard
// consumption-length attempts a single Match call may spend across the whole
// walk (§9, §10.4) - a guard against pathological patterns with many
// unanchored wildcards over long inputs, not a tuning knob most callers need.
const defaultBacktrackBudget = 20000

// Index is the top-level structure: a prefix tree plus the Parser and
// Evaluator collaborators needed to build and confirm matches against it.
type Index struct {
	mu   sync.RWMutex
	tree *prefixTree

	parser    PartParser
	evaluator Evaluator
	logger    *slog.Logger
	budget    int

	nextSequence uint64

	// budgetExhausted counts, across every Match call, how many times the
	// backtracking budget ran out before the walk finished exploring every
	// candidate consumption length (§9, §10.4). Match calls may run
	// concurrently, so this is updated with atomic.AddUint64 rather than
	// under mu.
	budgetExhausted uint64
}

// Option configures an Index at construction time.
type Option func(*Index)

// WithParser overrides the default PartParser (§6.1).
func WithParser(p PartParser) Option {
	return func(idx *Index) { idx.parser = p }
}

// WithEvaluator overrides the default Evaluator (§6.2).
func WithEvaluator(e Evaluator) Option {
	return func(idx *Index) { idx.evaluator = e }
}

// WithLogger overrides the Index's structured logger, used only to report
// the internal-inconsistency and budget-exhaustion conditions of §4.5/§9 -
// never for ordinary match misses, which are a normal return value.
func WithLogger(logger *slog.Logger) Option {
	return func(idx *Index) { idx.logger = logger }
}

// WithBacktrackBudget overrides defaultBacktrackBudget.
func WithBacktrackBudget(budget int) Option {
	return func(idx *Index) { idx.budget = budget }
}

// New builds an empty Index, ready to Add patterns to.
func New(opts ...Option) *Index {
	idx := &Index{
		tree:      newPrefixTree(),
		parser:    NewDefaultParser(),
		evaluator: NewDefaultEvaluator(),
		logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
		budget:    defaultBacktrackBudget,
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Add registers a pattern, in object form, against payload. Patterns are
// ordered by registration: the sequence assigned here is permanent and is
// what Match uses to break ties in favor of whichever pattern was added
// first (§3, §9).
func (idx *Index) Add(pattern Input, payload any) error {
	if idx.parser == nil {
		return ErrNoParser
	}
	if idx.evaluator == nil {
		return ErrNoEvaluator
	}

	compiled, err := idx.evaluator.Compile(pattern)
	if err != nil {
		return &ParseError{Pattern: pattern, Err: err}
	}
	handle := PatternHandle{Input: pattern, Compiled: compiled}

	parts, err := idx.parser.Parse(handle)
	if err != nil {
		return &ParseError{Pattern: pattern, Err: err}
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	sequence := idx.nextSequence
	idx.nextSequence++
	idx.tree.insert(parts, handle, payload, sequence)
	return nil
}

// AddString is the single-string convenience form of Add, parsing pattern
// (optionally resolved against base) via ParseString first.
func (idx *Index) AddString(pattern string, payload any, base ...string) error {
	var baseURL string
	if len(base) > 0 {
		baseURL = base[0]
	}
	in, err := ParseString(pattern, baseURL)
	if err != nil {
		return err
	}
	return idx.Add(in, payload)
}

// Match resolves target (a string or *url.URL, per §4.4) and walks the tree
// for the lowest-sequence pattern whose parts the walk can satisfy and the
// Evaluator confirms. It returns (nil, false) on any miss - an unresolvable
// target, no structural candidate, or an Evaluator whose Exec rejects the
// one candidate the walk selected - never an error.
func (idx *Index) Match(target any, base ...string) (*Result, bool) {
	var baseURL string
	if len(base) > 0 {
		baseURL = base[0]
	}

	resolved, err := resolveURL(target, baseURL)
	if err != nil {
		return nil, false
	}
	comps := decomposeComponents(resolved)
	rawURL := resolved.String()

	idx.mu.RLock()
	state := newMatchState(comps, rawURL, baseURL, idx.evaluator, idx.budget)
	candidate := state.walk(idx.tree.root)
	idx.mu.RUnlock()

	if state.exhausted {
		atomic.AddUint64(&idx.budgetExhausted, 1)
		logBudgetExhausted(idx.logger, rawURL, idx.budget)
	}
	if !candidate.found {
		return nil, false
	}

	output, err := idx.evaluator.Exec(candidate.handle, rawURL, baseURL)
	if err != nil || output == nil {
		logInconsistency(idx.logger, candidate.sequence, rawURL)
		return nil, false
	}

	return &Result{Output: output, Value: candidate.payload, Pattern: candidate.handle.Input}, true
}

// Stats is a read-only snapshot of the tree's shape plus cumulative
// match-time counters, for introspection and tests - never consulted by
// Match itself.
type Stats struct {
	Nodes    int
	Patterns int

	// BudgetExhausted is the cumulative count, across every Match call this
	// Index has served, of the backtracking budget (§9, §10.4) running out
	// before the walk finished exploring every candidate consumption length.
	BudgetExhausted uint64
}

func (idx *Index) Stats() Stats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return Stats{
		Nodes:           idx.tree.nodeCount(),
		Patterns:        idx.tree.patternCount(),
		BudgetExhausted: atomic.LoadUint64(&idx.budgetExhausted),
	}
}

// dumpNode is the serializable mirror of node, used by DumpJSON/DumpXML.
type dumpNode struct {
	XMLName     xml.Name   `json:"-" xml:"node"`
	Kind        string     `json:"kind,omitempty" xml:"kind,attr,omitempty"`
	Component   string     `json:"component,omitempty" xml:"component,attr,omitempty"`
	Value       string     `json:"value,omitempty" xml:"value,attr,omitempty"`
	MinSequence *uint64    `json:"minSequence,omitempty" xml:"minSequence,attr,omitempty"`
	Patterns    []uint64   `json:"patterns,omitempty" xml:"patterns>sequence,omitempty"`
	Children    []dumpNode `json:"children,omitempty" xml:"children>node,omitempty"`
}

func toDumpNode(n *node) dumpNode {
	d := dumpNode{}
	if n.isRoot {
		d.Kind = "root"
	} else {
		d.Kind = kindName(n.part.Kind)
		d.Component = n.part.Component.String()
		d.Value = n.part.Value
	}
	if n.minSequence != noSequence {
		seq := n.minSequence
		d.MinSequence = &seq
	}
	for _, p := range n.patterns {
		d.Patterns = append(d.Patterns, p.sequence)
	}
	for _, c := range n.children {
		d.Children = append(d.Children, toDumpNode(c))
	}
	return d
}

func kindName(k Kind) string {
	switch k {
	case Fixed:
		return "fixed"
	case SegmentWildcard:
		return "segment"
	case FullWildcard:
		return "full"
	case Regex:
		return "regex"
	default:
		return "unknown"
	}
}

// DumpJSON writes the tree's structure, for debugging - never used by Match.
func (idx *Index) DumpJSON(w io.Writer) error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDumpNode(idx.tree.root))
}

// DumpXML is DumpJSON's XML counterpart.
func (idx *Index) DumpXML(w io.Writer) error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(toDumpNode(idx.tree.root))
}
