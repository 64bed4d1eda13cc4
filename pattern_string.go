package urlmatch

import "strings"

// splitPatternString decomposes a single combined pattern string into an
// Input, the way github.com/dunglas/go-urlpattern's tokenizer scans a
// URLPattern constructor string: it looks for the same structural delimiters
// ("://", "@", ":", "/", "?", "#") a real URL uses, rather than attempting to
// parse pattern syntax itself (that stays entirely inside internal/
// patternlang, which only ever sees one component's worth of string at a
// time). A pattern that is just a path ("/books/:id") is returned with only
// Pathname set, to be completed against base at resolve time.
func splitPatternString(pattern, base string) (Input, error) {
	in := Input{BaseURL: base}

	rest := pattern
	if idx := strings.Index(rest, "://"); idx >= 0 {
		in.Protocol = rest[:idx]
		rest = rest[idx+3:]

		authority := rest
		pathStart := strings.IndexAny(rest, "/?#")
		if pathStart >= 0 {
			authority = rest[:pathStart]
			rest = rest[pathStart:]
		} else {
			rest = ""
		}

		userinfo := ""
		if at := strings.LastIndex(authority, "@"); at >= 0 {
			userinfo = authority[:at]
			authority = authority[at+1:]
		}
		if userinfo != "" {
			if colon := strings.Index(userinfo, ":"); colon >= 0 {
				in.Username = userinfo[:colon]
				in.Password = userinfo[colon+1:]
			} else {
				in.Username = userinfo
			}
		}

		if strings.HasPrefix(authority, "[") {
			if end := strings.Index(authority, "]"); end >= 0 {
				in.Hostname = authority[:end+1]
				authority = authority[end+1:]
				authority = strings.TrimPrefix(authority, ":")
				in.Port = authority
			} else {
				in.Hostname = authority
			}
		} else if colon := strings.LastIndex(authority, ":"); colon >= 0 {
			in.Hostname = authority[:colon]
			in.Port = authority[colon+1:]
		} else {
			in.Hostname = authority
		}
	}

	if rest == "" {
		return in, nil
	}

	if hash := strings.Index(rest, "#"); hash >= 0 {
		in.Hash = rest[hash+1:]
		rest = rest[:hash]
	}
	if search := strings.Index(rest, "?"); search >= 0 {
		in.Search = rest[search+1:]
		rest = rest[:search]
	}
	in.Pathname = rest

	return in, nil
}
