package urlmatch

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrInvalidURL is returned (wrapped) when a match target cannot be resolved
// to a usable URL - an unparsable string, or a relative string given without
// a base. Per §7 this is never a panic: Index.Match simply reports a miss.
var ErrInvalidURL = errors.New("urlmatch: invalid match target")

// ErrNoParser and ErrNoEvaluator mark a misconfigured Index: one constructed
// without a default or supplied collaborator for the given kind.
var (
	ErrNoParser    = errors.New("urlmatch: no PartParser configured")
	ErrNoEvaluator = errors.New("urlmatch: no Evaluator configured")
)

// ParseError reports a pattern that Index.Add could not register because the
// Evaluator's Compile or the configured PartParser rejected it. It wraps that
// collaborator's own error so callers can still errors.Is/As through it.
type ParseError struct {
	Pattern Input
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("urlmatch: parse pattern %q: %v", e.Pattern.Pathname, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// logInconsistency records the case §4.5 calls out explicitly: the tree
// believed a pattern matched (Test agreed during the walk) but the final
// Exec confirmation disagreed. This is never a match-time error - the match
// is simply reported as a miss - but it signals a bug in the Parser/
// Evaluator pairing worth a human's attention.
func logInconsistency(logger *slog.Logger, sequence uint64, rawURL string) {
	logger.Warn("urlmatch: evaluator disagreed with tree candidate",
		slog.Uint64("sequence", sequence),
		slog.String("url", rawURL),
	)
}

// logBudgetExhausted is emitted at most once per Match call when the
// backtracking budget (§9, §10.4) ran out before the walk finished exploring
// every candidate consumption length.
func logBudgetExhausted(logger *slog.Logger, rawURL string, budget int) {
	logger.Warn("urlmatch: backtracking budget exhausted",
		slog.String("url", rawURL),
		slog.Int("budget", budget),
	)
}
