package urlmatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// linearOracle re-implements Match the naive way: scan every registered
// pattern in registration order and return the first one the Evaluator
// confirms. It exists only for this test, to check the tree-based Index
// against an implementation with no tree, no pruning and no backtracking -
// the tree's only job is to reach the same answer faster.
type linearOracle struct {
	evaluator Evaluator
	entries   []struct {
		handle  PatternHandle
		payload any
	}
}

func (o *linearOracle) add(input Input, payload any) {
	compiled, err := o.evaluator.Compile(input)
	if err != nil {
		panic(err)
	}
	o.entries = append(o.entries, struct {
		handle  PatternHandle
		payload any
	}{handle: PatternHandle{Input: input, Compiled: compiled}, payload: payload})
}

func (o *linearOracle) match(rawURL string) (any, bool) {
	for _, e := range o.entries {
		ok, err := o.evaluator.Test(e.handle, rawURL, "")
		if err == nil && ok {
			return e.payload, true
		}
	}
	return nil, false
}

func TestLinearEquivalenceOracle(t *testing.T) {
	patterns := []struct {
		pathname string
		payload  string
	}{
		{"/books/:id", "by-id"},
		{"/books/featured", "featured"},
		{"/books/*", "catch-all"},
		{"/authors/:id/books", "author-books"},
		{"/authors/:id/books/:bookId", "author-book"},
	}

	idx := New(WithEvaluator(fakeEvaluator{}))
	oracle := &linearOracle{evaluator: fakeEvaluator{}}
	for _, p := range patterns {
		require.NoError(t, idx.Add(Input{Pathname: p.pathname}, p.payload))
		oracle.add(Input{Pathname: p.pathname}, p.payload)
	}

	urls := []string{
		"https://example.com/books/42",
		"https://example.com/books/featured",
		"https://example.com/books/anything/else",
		"https://example.com/authors/7/books",
		"https://example.com/authors/7/books/99",
		"https://example.com/nope",
	}

	for _, u := range urls {
		wantPayload, wantOK := oracle.match(u)
		result, gotOK := idx.Match(u)

		if gotOK != wantOK {
			t.Errorf("Match(%q) ok = %v, oracle ok = %v", u, gotOK, wantOK)
			continue
		}
		if gotOK && result.Value != wantPayload {
			t.Errorf("Match(%q) = %v, oracle = %v", u, result.Value, wantPayload)
		}
	}
}
