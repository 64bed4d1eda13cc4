package urlmatch

import "github.com/briarwood-dev/urlmatch/internal/patternlang"

// defaultParser is the built-in PartParser (§6.1): it tokenizes each
// component of a pattern's Input independently with internal/patternlang and
// tags the resulting tokens with that component, in the fixed component
// order §4.1 requires. A component whose text is empty or the bare catch-all
// "*" contributes no Parts at all - the pattern simply doesn't constrain
// that component, matching any value.
type defaultParser struct{}

// NewDefaultParser returns the PartParser used when an Index is built
// without an explicit WithParser option.
func NewDefaultParser() PartParser { return defaultParser{} }

func (defaultParser) Parse(handle PatternHandle) ([]Part, error) {
	in := handle.Input
	var parts []Part

	componentSources := []struct {
		tag  Component
		text string
	}{
		{Protocol, in.Protocol},
		{Username, in.Username},
		{Password, in.Password},
		{Hostname, in.Hostname},
		{Port, in.Port},
		{Pathname, in.Pathname},
		{Search, in.Search},
		{Hash, in.Hash},
	}

	for _, src := range componentSources {
		if src.text == "" || src.text == "*" {
			continue
		}
		for _, segment := range segmentsOf(src.tag, src.text) {
			for _, tok := range patternlang.Tokenize(segment) {
				part, err := partFromToken(src.tag, tok)
				if err != nil {
					return nil, err
				}
				parts = append(parts, part)
			}
		}
	}

	return parts, nil
}

// segmentsOf applies §4.1's per-segment splitting: pathname text must be cut
// into distinct `/segment` pieces so that registrations sharing a multi-
// segment prefix ("/api/v1/users/:id", "/api/v1/orders/:id") still share
// tree structure down to the first segment where they diverge, rather than
// the whole run becoming one monolithic Fixed literal. Search and hash are
// split the same way as the optional sharing aid §4.1 allows for them; the
// remaining components are never path-like and are tokenized whole.
func segmentsOf(tag Component, text string) []string {
	switch tag {
	case Pathname, Search, Hash:
		return patternlang.SplitPathSegments(text)
	default:
		return []string{text}
	}
}

func partFromToken(tag Component, tok patternlang.Token) (Part, error) {
	part := Part{Component: tag, Modifier: convertModifier(tok.Modifier)}

	switch tok.Kind {
	case patternlang.TokenFixed:
		part.Kind = Fixed
		part.Value = tok.Literal
	case patternlang.TokenSegmentWildcard:
		part.Kind = SegmentWildcard
		part.Name = tok.Name
	case patternlang.TokenFullWildcard:
		part.Kind = FullWildcard
		part.Name = tok.Name
	case patternlang.TokenRegex:
		part.Kind = Regex
		part.Name = tok.Name
		part.Value = tok.Regex
	}

	return part, nil
}

func convertModifier(m patternlang.Modifier) Modifier {
	switch m {
	case patternlang.ModifierOptional:
		return ModOptional
	case patternlang.ModifierZeroOrMore:
		return ModZeroOrMore
	case patternlang.ModifierOneOrMore:
		return ModOneOrMore
	default:
		return ModNone
	}
}
