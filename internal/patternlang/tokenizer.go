// Package patternlang tokenizes a single URL-pattern component string into
// the ordered run of literal/placeholder tokens it contains, following the
// scanning rules of the WHATWG URL Pattern grammar (as implemented by
// github.com/dunglas/go-urlpattern's tokenizer): a literal run of characters,
// a "{name}" or "{name:regex}" placeholder optionally suffixed with "?", "*"
// or "+", or a bare "*" full-wildcard. It knows nothing about URL components
// or trees - that tagging happens one layer up, in the urlmatch package's
// default parser - so it can be reused unchanged for pathname, search or
// hash component text alike.
package patternlang

import "strings"

// TokenKind discriminates the shape of a Token.
type TokenKind int

const (
	TokenFixed TokenKind = iota
	TokenSegmentWildcard
	TokenFullWildcard
	TokenRegex
)

// Modifier mirrors the trailing repetition/optionality marker a placeholder
// may carry: "", "?", "*" or "+".
type Modifier int

const (
	ModifierNone Modifier = iota
	ModifierOptional
	ModifierZeroOrMore
	ModifierOneOrMore
)

// Token is one scanned element of a pattern component string.
type Token struct {
	Kind     TokenKind
	Literal  string // TokenFixed: the literal text itself
	Name     string // TokenSegmentWildcard/TokenRegex: capture name, if any
	Regex    string // TokenRegex: the regex source, between ':' and '}' or inside ":name(...)"
	Prefix   string // TokenSegmentWildcard: framing literal before the capture; Tokenize leaves it empty
	Suffix   string // TokenSegmentWildcard: framing literal after the capture; Tokenize leaves it empty
	Modifier Modifier
}

// Tokenize scans s into its Token run. It is a direct, simplified reading of
// the reference tokenizer: '{' opens a placeholder, ':' inside one separates
// name from an explicit regex, '}' closes it, and a following '?'/'*'/'+' is
// consumed as the modifier. A bare run of ':' + identifier characters with no
// braces is also accepted as a named segment wildcard ("/users/:id"), which
// is the common sugar most URL pattern libraries support alongside the
// brace form; when the name is directly followed by "(...)" the token is a
// named regex instead ("/product/:id(\d+)"). That regex ends at the first
// ')', so regex sources containing their own parentheses are not supported
// in this form.
func Tokenize(s string) []Token {
	var tokens []Token
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenFixed, Literal: literal.String()})
			literal.Reset()
		}
	}

	i := 0
	for i < len(s) {
		switch {
		case s[i] == '{':
			flushLiteral()
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				literal.WriteString(s[i:])
				i = len(s)
				continue
			}
			body := s[i+1 : i+end]
			i += end + 1
			tok := parsePlaceholder(body)
			tok.Modifier, i = readModifier(s, i)
			tokens = append(tokens, tok)

		case s[i] == '*':
			flushLiteral()
			tokens = append(tokens, Token{Kind: TokenFullWildcard, Name: "0"})
			i++

		case s[i] == ':':
			name, end := readIdentifier(s, i+1)
			if name == "" {
				literal.WriteByte(s[i])
				i++
				continue
			}
			flushLiteral()
			tok := Token{Kind: TokenSegmentWildcard, Name: name}
			if end < len(s) && s[end] == '(' {
				if closing := strings.IndexByte(s[end:], ')'); closing > 0 {
					tok.Kind, tok.Regex = TokenRegex, s[end+1:end+closing]
					end += closing + 1
				}
			}
			tok.Modifier, end = readModifier(s, end)
			tokens = append(tokens, tok)
			i = end

		default:
			literal.WriteByte(s[i])
			i++
		}
	}
	flushLiteral()
	return tokens
}

func parsePlaceholder(body string) Token {
	if colon := strings.IndexByte(body, ':'); colon >= 0 {
		return Token{Kind: TokenRegex, Name: body[:colon], Regex: body[colon+1:]}
	}
	if body == "" {
		return Token{Kind: TokenFullWildcard}
	}
	return Token{Kind: TokenSegmentWildcard, Name: body}
}

func readModifier(s string, i int) (Modifier, int) {
	if i >= len(s) {
		return ModifierNone, i
	}
	switch s[i] {
	case '?':
		return ModifierOptional, i + 1
	case '*':
		return ModifierZeroOrMore, i + 1
	case '+':
		return ModifierOneOrMore, i + 1
	default:
		return ModifierNone, i
	}
}

func readIdentifier(s string, i int) (string, int) {
	start := i
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	return s[start:i], i
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// SplitPathSegments splits a pathname pattern into its '/'-delimited
// segments, preserving each segment's leading '/' as part of the following
// segment's literal prefix the way path-to-regexp-style libraries do, so
// that a segment wildcard's Prefix field can later be derived from it.
func SplitPathSegments(pathname string) []string {
	if pathname == "" {
		return nil
	}
	var segments []string
	start := 0
	for i := 1; i < len(pathname); i++ {
		if pathname[i] == '/' {
			segments = append(segments, pathname[start:i])
			start = i
		}
	}
	segments = append(segments, pathname[start:])
	return segments
}
