package urlmatch

// Input is the object form of a pattern, one literal-or-pattern string per
// URL component, mirroring the object-init form §8 scenario 6 exercises.
// A zero-valued field means "match-all" for that component - per §4.1 the
// parser omits a Part entirely for a catch-all component, so such fields
// never contribute tree structure.
type Input struct {
	Protocol string
	Username string
	Password string
	Hostname string
	Port     string
	Pathname string
	Search   string
	Hash     string

	// BaseURL resolves a relative Pathname/Search/Hash-only Input the same
	// way a relative match target is resolved (§4.4).
	BaseURL string
}

// ParseString builds an Input out of a single combined pattern string (the
// common case: a full URL pattern such as "https://example.com/books/:id"),
// optionally resolved against base when the pattern omits protocol/hostname.
// It only splits the string into components; tokenizing happens later in
// internal/patternlang and component tagging in the default PartParser.
func ParseString(pattern string, base ...string) (Input, error) {
	var baseURL string
	if len(base) > 0 {
		baseURL = base[0]
	}
	return splitPatternString(pattern, baseURL)
}

// PatternHandle is what the tree stores per registered pattern and what it
// hands back to the Parser and Evaluator: the pattern's own source (Input)
// plus whatever opaque compiled form the active Evaluator produced for it.
// Parser and Evaluator are independent collaborators (§6.1, §6.2); neither is
// required to understand the other's internals, which is why Compiled is
// opaque to the core.
type PatternHandle struct {
	Input    Input
	Compiled any
}

// PartParser is the external collaborator of §6.1: given a pattern, produce
// its ordered, tagged Parts. The core never re-derives this decomposition -
// it trusts the Parser completely and only ever walks the Parts it returns.
type PartParser interface {
	Parse(handle PatternHandle) ([]Part, error)
}

// Capture is one named binding produced by a successful Evaluator.Exec,
// e.g. {Name: "id", Component: Pathname, Value: "42"}.
type Capture struct {
	Name      string
	Component Component
	Value     string
}

// MatchOutput is the rich result §4.5 describes the evaluator as producing:
// confirmation that the pattern matches plus the named captures extracted
// along the way.
type MatchOutput struct {
	Captures []Capture
}

// Evaluator is the external collaborator of §6.2. The tree only ever
// consults it to confirm or deny a candidate pattern - it never drives the
// tree's own structure or pruning. Compile runs once, at registration time,
// producing the opaque value Index.Add stores in PatternHandle.Compiled.
// Test is the cheap boolean form used while ranking same-node candidates
// during the walk; Exec is the richer form used once, on the final best
// candidate, to build the Result (§4.5).
type Evaluator interface {
	Compile(input Input) (any, error)
	Test(handle PatternHandle, rawURL string, base string) (bool, error)
	Exec(handle PatternHandle, rawURL string, base string) (*MatchOutput, error)
}

// Result is what Index.Match returns on a hit: the evaluator's confirmation
// output plus the payload the caller registered the winning pattern with.
type Result struct {
	Output  *MatchOutput
	Value   any
	Pattern Input
}
