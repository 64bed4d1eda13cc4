package urlmatch

import (
	"fmt"

	"github.com/briarwood-dev/urlmatch/internal/patternengine"
)

// defaultEvaluator is the built-in Evaluator (§6.2), backed by
// github.com/dunglas/go-urlpattern - a real implementation of the WHATWG URL
// Pattern standard the core's own Part vocabulary was modeled on. The tree
// never calls into go-urlpattern directly; patternengine is the only thing
// that does, so a caller who supplies their own Evaluator never calls into
// it at run time. The package still imports it, so it is always needed to
// build.
type defaultEvaluator struct{}

// NewDefaultEvaluator returns the Evaluator used when an Index is built
// without an explicit WithEvaluator option.
func NewDefaultEvaluator() Evaluator { return defaultEvaluator{} }

func (defaultEvaluator) Compile(input Input) (any, error) {
	return patternengine.Compile(patternengine.ComponentPattern{
		Protocol: input.Protocol,
		Username: input.Username,
		Password: input.Password,
		Hostname: input.Hostname,
		Port:     input.Port,
		Pathname: input.Pathname,
		Search:   input.Search,
		Hash:     input.Hash,
		BaseURL:  input.BaseURL,
	})
}

func (defaultEvaluator) Test(handle PatternHandle, rawURL, base string) (bool, error) {
	compiled, ok := handle.Compiled.(*patternengine.Compiled)
	if !ok || compiled == nil {
		return false, fmt.Errorf("urlmatch: pattern handle has no compiled go-urlpattern value")
	}
	return compiled.Test(rawURL, base)
}

func (defaultEvaluator) Exec(handle PatternHandle, rawURL, base string) (*MatchOutput, error) {
	compiled, ok := handle.Compiled.(*patternengine.Compiled)
	if !ok || compiled == nil {
		return nil, fmt.Errorf("urlmatch: pattern handle has no compiled go-urlpattern value")
	}
	groups, matched, err := compiled.Exec(rawURL, base)
	if err != nil || !matched {
		return nil, err
	}

	out := &MatchOutput{Captures: make([]Capture, 0, len(groups))}
	for _, g := range groups {
		out.Captures = append(out.Captures, Capture{
			Name:      g.Name,
			Component: componentFromString(g.Component),
			Value:     g.Value,
		})
	}
	return out, nil
}

func componentFromString(s string) Component {
	for c := Protocol; c <= Hash; c++ {
		if c.String() == s {
			return c
		}
	}
	return Pathname
}
