package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCityName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"expands st with period", "St. Louis", "saint louis"},
		{"expands st without period", "st louis", "saint louis"},
		{"already canonical", "Saint Louis", "saint louis"},
		{"expands ft", "Ft. Wright", "fort wright"},
		{"expands directional", "N Kansas City", "north kansas city"},
		{"collapses whitespace", "  saint   louis  ", "saint louis"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCityName(tt.input))
		})
	}
}

func TestContractCityName(t *testing.T) {
	assert.Equal(t, "st louis", ContractCityName("Saint Louis"))
	assert.Equal(t, "ft wright", ContractCityName("fort wright"))
	assert.Equal(t, "mt vernon", ContractCityName("Mount Vernon"))
}

func TestCitiesMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"abbreviation equivalence", "St. Louis", "Saint Louis", true},
		{"partial containment", "Saint Louis", "Louis", true},
		{"reverse containment", "Louis", "Saint Louis", true},
		{"different cities", "Kansas City", "Jefferson City", false},
		{"case insensitive", "SAINT LOUIS", "saint louis", true},
		{"empty never matches", "", "Saint Louis", false},
		{"both empty never match", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CitiesMatch(tt.a, tt.b))
		})
	}
}
