package urlmatch

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// fakeEvaluator is a tiny, self-contained Evaluator used only by this
// package's own tests, so they exercise the tree/matcher logic without
// depending on github.com/dunglas/go-urlpattern's exact behavior. It
// compiles a pattern's pathname into a standard-library regexp, translating
// ":name" segments into named capture groups - a deliberately narrow stand-in
// for the real default Evaluator, covering exactly the pathname-only
// patterns this package's own tests register.
type fakeEvaluator struct{}

type fakeCompiled struct {
	re    *regexp.Regexp
	names []string
}

func (fakeEvaluator) Compile(input Input) (any, error) {
	pattern := input.Pathname
	var b strings.Builder
	var names []string
	b.WriteString("^")
	i := 0
	for i < len(pattern) {
		if pattern[i] == ':' {
			j := i + 1
			for j < len(pattern) && isFakeIdentByte(pattern[j]) {
				j++
			}
			name := pattern[i+1 : j]
			names = append(names, name)
			b.WriteString("([^/]+)")
			i = j
			continue
		}
		if pattern[i] == '*' {
			names = append(names, fmt.Sprintf("wildcard%d", len(names)))
			b.WriteString("(.*)")
			i++
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(pattern[i])))
		i++
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, err
	}
	return &fakeCompiled{re: re, names: names}, nil
}

func isFakeIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func (fakeEvaluator) Test(handle PatternHandle, rawURL, base string) (bool, error) {
	path, ok := fakePathOf(rawURL)
	if !ok {
		return false, nil
	}
	c := handle.Compiled.(*fakeCompiled)
	return c.re.MatchString(path), nil
}

func (fakeEvaluator) Exec(handle PatternHandle, rawURL, base string) (*MatchOutput, error) {
	path, ok := fakePathOf(rawURL)
	if !ok {
		return nil, nil
	}
	c := handle.Compiled.(*fakeCompiled)
	m := c.re.FindStringSubmatch(path)
	if m == nil {
		return nil, nil
	}
	out := &MatchOutput{}
	for i, name := range c.names {
		out.Captures = append(out.Captures, Capture{Name: name, Component: Pathname, Value: m[i+1]})
	}
	return out, nil
}

func fakePathOf(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	return u.EscapedPath(), true
}
