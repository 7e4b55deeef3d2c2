package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"two-letter code", "MO", "MO", true},
		{"lowercase code", "mo", "MO", true},
		{"full name", "Missouri", "MO", true},
		{"full name lowercase", "illinois", "IL", true},
		{"two-word name", "New Hampshire", "NH", true},
		{"dc alias", "Washington DC", "DC", true},
		{"padded", "  Missouri  ", "MO", true},
		{"unknown name", "Atlantis", "", false},
		{"unknown code", "ZZ", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := StateCode(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, code)
		})
	}
}
