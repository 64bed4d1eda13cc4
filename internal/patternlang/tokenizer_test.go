package patternlang

import "testing"

func TestTokenizeFixedAndSegmentWildcard(t *testing.T) {
	tokens := Tokenize("/books/:id")

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %+v", len(tokens), tokens)
	}
	if tokens[0].Kind != TokenFixed || tokens[0].Literal != "/books/" {
		t.Errorf("token 0 = %+v, want fixed literal /books/", tokens[0])
	}
	if tokens[1].Kind != TokenSegmentWildcard || tokens[1].Name != "id" {
		t.Errorf("token 1 = %+v, want segment wildcard named id", tokens[1])
	}
}

func TestTokenizeModifiers(t *testing.T) {
	tokens := Tokenize("/files/:path*")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[1].Modifier != ModifierZeroOrMore {
		t.Errorf("expected ZeroOrMore modifier, got %v", tokens[1].Modifier)
	}
}

func TestTokenizeBracedRegex(t *testing.T) {
	tokens := Tokenize("/items/{id:[0-9]+}")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[1].Kind != TokenRegex || tokens[1].Regex != "[0-9]+" || tokens[1].Name != "id" {
		t.Errorf("token 1 = %+v, want regex [0-9]+ named id", tokens[1])
	}
}

func TestTokenizeFullWildcard(t *testing.T) {
	tokens := Tokenize("/books/*")
	if len(tokens) != 2 || tokens[1].Kind != TokenFullWildcard {
		t.Fatalf("expected fixed + full wildcard, got %+v", tokens)
	}
}

func TestSplitPathSegments(t *testing.T) {
	segments := SplitPathSegments("/books/:id/reviews")
	want := []string{"/books", "/:id", "/reviews"}
	if len(segments) != len(want) {
		t.Fatalf("got %v, want %v", segments, want)
	}
	for i := range want {
		if segments[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, segments[i], want[i])
		}
	}
}
