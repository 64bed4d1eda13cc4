package urlmatch

import "testing"

func TestPartEqualIgnoresName(t *testing.T) {
	a := Part{Kind: SegmentWildcard, Component: Pathname, Name: "id"}
	b := Part{Kind: SegmentWildcard, Component: Pathname, Name: "slug"}

	if !a.Equal(b) {
		t.Fatalf("expected parts differing only by Name to be structurally equal")
	}
}

func TestPartEqualComparesStructuralFields(t *testing.T) {
	tests := []struct {
		name string
		a, b Part
		want bool
	}{
		{
			name: "different kind",
			a:    Part{Kind: Fixed, Value: "books"},
			b:    Part{Kind: SegmentWildcard, Name: "books"},
			want: false,
		},
		{
			name: "different component",
			a:    Part{Kind: Fixed, Component: Pathname, Value: "x"},
			b:    Part{Kind: Fixed, Component: Search, Value: "x"},
			want: false,
		},
		{
			name: "different modifier",
			a:    Part{Kind: SegmentWildcard, Modifier: ModNone},
			b:    Part{Kind: SegmentWildcard, Modifier: ModOptional},
			want: false,
		},
		{
			name: "different value",
			a:    Part{Kind: Fixed, Value: "books"},
			b:    Part{Kind: Fixed, Value: "users"},
			want: false,
		},
		{
			name: "identical modulo name",
			a:    Part{Kind: Regex, Value: "[0-9]+", Name: "id"},
			b:    Part{Kind: Regex, Value: "[0-9]+", Name: "other"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModifierHelpers(t *testing.T) {
	if !(Part{Modifier: ModOptional}).zeroMatchOK() {
		t.Error("Optional should allow zero-match")
	}
	if !(Part{Modifier: ModZeroOrMore}).zeroMatchOK() {
		t.Error("ZeroOrMore should allow zero-match")
	}
	if (Part{Modifier: ModOneOrMore}).zeroMatchOK() {
		t.Error("OneOrMore should not allow zero-match")
	}
	if !(Part{Modifier: ModOneOrMore}).repeats() {
		t.Error("OneOrMore should repeat")
	}
	if (Part{Modifier: ModOptional}).repeats() {
		t.Error("Optional should not repeat")
	}
}
