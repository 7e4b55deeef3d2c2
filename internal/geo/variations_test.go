package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchVariations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "abbreviation adds expansion",
			input: "st lou",
			want:  []string{"st lou", "saint lou"},
		},
		{
			name:  "full word adds contraction",
			input: "saint lou",
			want:  []string{"saint lou", "st lou"},
		},
		{
			name:  "fallon adds apostrophe city",
			input: "fallon",
			want:  []string{"fallon", "ofallon"},
		},
		{
			name:  "spring prefix adds springfield",
			input: "spring",
			want:  []string{"spring", "springfield"},
		},
		{
			name:  "long springfield input stays literal",
			input: "springfield",
			want:  []string{"springfield"},
		},
		{
			name:  "kansas prefix adds kansas city",
			input: "kansas",
			want:  []string{"kansas", "kansas city"},
		},
		{
			name:  "plain input stays literal",
			input: "Columbia Falls",
			want:  []string{"columbia falls"},
		},
		{
			name:  "empty yields nothing",
			input: "  ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchVariations(tt.input))
		})
	}
}

func TestSearchVariations_Deduplicated(t *testing.T) {
	variations := SearchVariations("ofallon")

	seen := make(map[string]int)
	for _, v := range variations {
		seen[v]++
	}
	for v, count := range seen {
		assert.Equal(t, 1, count, "variation %q appears more than once", v)
	}
}
