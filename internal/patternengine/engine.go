// Package patternengine adapts github.com/dunglas/go-urlpattern, a Go port
// of the WHATWG URL Pattern standard, into the narrow confirm-and-extract
// shape the urlmatch package's default Evaluator needs (§6.2): compile a
// pattern once, then repeatedly Test or Exec it against candidate URLs. It
// knows nothing about urlmatch's own Part/node/tree types - it only ever
// sees pattern component strings and URLs - which is what keeps it free to
// import go-urlpattern without creating an import cycle back into the
// package that implements Evaluator.
package patternengine

import (
	"fmt"

	urlpattern "github.com/dunglas/go-urlpattern"
)

// ComponentPattern is the component-wise source of a pattern, independent of
// how urlmatch's Input type is shaped.
type ComponentPattern struct {
	Protocol, Username, Password string
	Hostname, Port               string
	Pathname, Search, Hash       string
	BaseURL                      string
}

// Group is one named capture, tagged with the component it came from.
type Group struct {
	Component string
	Name      string
	Value     string
}

// Compiled wraps a compiled go-urlpattern pattern.
type Compiled struct {
	pattern *urlpattern.URLPattern
}

// Compile builds a Compiled from a ComponentPattern. A component left empty
// is treated by go-urlpattern, as by the JS standard, as a catch-all "*".
func Compile(p ComponentPattern) (*Compiled, error) {
	init := urlpattern.URLPatternInit{
		Protocol: p.Protocol,
		Username: p.Username,
		Password: p.Password,
		Hostname: p.Hostname,
		Port:     p.Port,
		Pathname: p.Pathname,
		Search:   p.Search,
		Hash:     p.Hash,
		BaseURL:  p.BaseURL,
	}
	up, err := urlpattern.New(init, nil)
	if err != nil {
		return nil, fmt.Errorf("patternengine: compile: %w", err)
	}
	return &Compiled{pattern: up}, nil
}

// Test reports whether rawURL (optionally resolved against base) matches,
// without extracting captures - the cheap form used while ranking several
// same-node candidates during a tree walk.
func (c *Compiled) Test(rawURL, base string) (bool, error) {
	input := urlpattern.URLPatternInput{Input: rawURL, BaseURL: base}
	ok, err := c.pattern.Test(input)
	if err != nil {
		return false, fmt.Errorf("patternengine: test: %w", err)
	}
	return ok, nil
}

// Exec confirms the match and extracts every named group, tagged by the
// component it was captured from.
func (c *Compiled) Exec(rawURL, base string) ([]Group, bool, error) {
	input := urlpattern.URLPatternInput{Input: rawURL, BaseURL: base}
	result, err := c.pattern.Exec(input)
	if err != nil {
		return nil, false, fmt.Errorf("patternengine: exec: %w", err)
	}
	if result == nil {
		return nil, false, nil
	}

	var groups []Group
	collect := func(component string, cr *urlpattern.URLPatternComponentResult) {
		if cr == nil {
			return
		}
		for name, value := range cr.Groups {
			groups = append(groups, Group{Component: component, Name: name, Value: value})
		}
	}
	collect("protocol", result.Protocol)
	collect("username", result.Username)
	collect("password", result.Password)
	collect("hostname", result.Hostname)
	collect("port", result.Port)
	collect("pathname", result.Pathname)
	collect("search", result.Search)
	collect("hash", result.Hash)

	return groups, true, nil
}
