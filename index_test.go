package urlmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex() *Index {
	return New(WithEvaluator(fakeEvaluator{}))
}

func TestFirstRegisteredPatternWins(t *testing.T) {
	idx := newTestIndex()
	require.NoError(t, idx.AddString("https://example.com/books/:id", "by-id"))
	require.NoError(t, idx.AddString("https://example.com/books/featured", "featured"))

	result, ok := idx.Match("https://example.com/books/featured")
	require.True(t, ok)
	assert.Equal(t, "by-id", result.Value)
}

func TestLaterRegisteredMoreSpecificPatternStillLosesToEarlierGeneric(t *testing.T) {
	idx := newTestIndex()
	require.NoError(t, idx.AddString("https://example.com/books/*", "catch-all"))
	require.NoError(t, idx.AddString("https://example.com/books/featured", "featured"))

	result, ok := idx.Match("https://example.com/books/featured")
	require.True(t, ok)
	assert.Equal(t, "catch-all", result.Value)
}

func TestNoMatchWhenNothingFits(t *testing.T) {
	idx := newTestIndex()
	require.NoError(t, idx.AddString("https://example.com/books/:id", "by-id"))

	_, ok := idx.Match("https://example.com/authors/42")
	assert.False(t, ok)
}

func TestSegmentWildcardCaptures(t *testing.T) {
	idx := newTestIndex()
	require.NoError(t, idx.AddString("https://example.com/books/:id", "by-id"))

	result, ok := idx.Match("https://example.com/books/42")
	require.True(t, ok)
	require.Len(t, result.Output.Captures, 1)
	assert.Equal(t, "id", result.Output.Captures[0].Name)
	assert.Equal(t, "42", result.Output.Captures[0].Value)
}

func TestStructurallyEquivalentPatternsShareTreeNodes(t *testing.T) {
	idx := newTestIndex()
	require.NoError(t, idx.Add(Input{Pathname: "/books/:id"}, "by-id"))
	require.NoError(t, idx.Add(Input{Pathname: "/books/:slug"}, "by-slug"))

	stats := idx.Stats()
	// root + "/books" fixed segment + "/" fixed segment + one shared
	// segment-wildcard node (pathname is split per §4.1, so the wildcard's
	// leading "/" is its own Fixed node rather than folded into "/books").
	assert.Equal(t, 4, stats.Nodes)
	assert.Equal(t, 2, stats.Patterns)
}

func TestRelativeTargetRequiresBase(t *testing.T) {
	idx := newTestIndex()
	require.NoError(t, idx.AddString("https://example.com/books/:id", "by-id"))

	_, ok := idx.Match("/books/42")
	assert.False(t, ok, "a relative target with no base must miss, not panic")

	result, ok := idx.Match("/books/42", "https://example.com")
	require.True(t, ok)
	assert.Equal(t, "by-id", result.Value)
}

func TestStatsCountsBudgetExhaustion(t *testing.T) {
	idx := New(WithEvaluator(fakeEvaluator{}), WithBacktrackBudget(0))
	require.NoError(t, idx.Add(Input{Pathname: "/books/:id"}, "by-id"))

	_, ok := idx.Match("https://example.com/books/42")
	assert.False(t, ok, "a zero backtracking budget must turn a wildcard attempt into a miss, not a panic")

	stats := idx.Stats()
	assert.Equal(t, uint64(1), stats.BudgetExhausted)

	_, ok = idx.Match("https://example.com/books/43")
	assert.False(t, ok)
	assert.Equal(t, uint64(2), idx.Stats().BudgetExhausted, "the counter accumulates across Match calls")
}

func TestRelativeTargetWithoutBaseIsInvalidURL(t *testing.T) {
	_, err := resolveURL("/books/42", "")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestAddWithNilParserOrEvaluatorIsRejected(t *testing.T) {
	idx := New(WithParser(nil), WithEvaluator(fakeEvaluator{}))
	err := idx.Add(Input{Pathname: "/books/:id"}, "by-id")
	assert.ErrorIs(t, err, ErrNoParser)

	idx = New(WithEvaluator(nil))
	err = idx.Add(Input{Pathname: "/books/:id"}, "by-id")
	assert.ErrorIs(t, err, ErrNoEvaluator)
}

func TestMultiSegmentWildcards(t *testing.T) {
	idx := newTestIndex()
	require.NoError(t, idx.AddString("https://example.com/users/:userId/orders/:orderId", "user-order"))

	result, ok := idx.Match("https://example.com/users/7/orders/99")
	require.True(t, ok)
	require.Len(t, result.Output.Captures, 2)
	assert.Equal(t, "7", result.Output.Captures[0].Value)
	assert.Equal(t, "99", result.Output.Captures[1].Value)
}
