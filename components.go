package urlmatch

import (
	"fmt"
	"net/url"
)

// urlComponent is one (component_tag, text) pair of §4.4, in the same fixed
// component order the parser tags Parts with.
type urlComponent struct {
	tag  Component
	text string
}

// resolveURL implements §4.4's "the matcher first resolves it": a parsed
// *url.URL is used as-is, a string is parsed and, if relative, resolved
// against base. A URL that cannot be resolved yields an error wrapping
// ErrInvalidURL; per §7, Index.Match turns that into a match miss rather
// than surfacing it.
func resolveURL(target any, base string) (*url.URL, error) {
	switch v := target.(type) {
	case *url.URL:
		return v, nil
	case url.URL:
		return &v, nil
	case string:
		u, err := url.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURL, v, err)
		}
		if u.IsAbs() {
			return u, nil
		}
		if base == "" {
			return nil, fmt.Errorf("%w: relative URL %q requires a base URL", ErrInvalidURL, v)
		}
		baseURL, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("%w: base %q: %v", ErrInvalidURL, base, err)
		}
		return baseURL.ResolveReference(u), nil
	default:
		return nil, fmt.Errorf("%w: unsupported match input type %T", ErrInvalidURL, target)
	}
}

// decomposeComponents produces components[] per §4.4: protocol (sans trailing
// ':', which net/url's Scheme already omits), username, password, hostname,
// port, pathname, search (sans leading '?'), hash (sans leading '#'); each
// included only when non-empty.
func decomposeComponents(u *url.URL) []urlComponent {
	comps := make([]urlComponent, 0, 8)
	add := func(tag Component, text string) {
		if text != "" {
			comps = append(comps, urlComponent{tag: tag, text: text})
		}
	}

	add(Protocol, u.Scheme)
	if u.User != nil {
		add(Username, u.User.Username())
		if pw, ok := u.User.Password(); ok {
			add(Password, pw)
		}
	}
	add(Hostname, u.Hostname())
	add(Port, u.Port())
	add(Pathname, u.EscapedPath())
	add(Search, u.RawQuery)
	add(Hash, u.EscapedFragment())

	return comps
}
