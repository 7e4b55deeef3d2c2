// Package geo contains the pure geographic primitives used by event search:
// city-name normalization and fuzzy matching, great-circle distance, state
// resolution, and autocomplete search-term expansion.
package geo

import (
	"regexp"
	"strings"
)

// cityAbbreviations expands common abbreviations to canonical full words using
// whole-word matching. Order matters: later replacements operate on the
// already-partially-expanded string. A city literally named "N" collides with
// the directional expansion; accepted limitation.
var cityAbbreviations = []struct {
	pattern *regexp.Regexp
	full    string
}{
	{regexp.MustCompile(`\bst\b\.?`), "saint"},
	{regexp.MustCompile(`\bft\b\.?`), "fort"},
	{regexp.MustCompile(`\bmt\b\.?`), "mount"},
	{regexp.MustCompile(`\bn\b\.?`), "north"},
	{regexp.MustCompile(`\bs\b\.?`), "south"},
	{regexp.MustCompile(`\be\b\.?`), "east"},
	{regexp.MustCompile(`\bw\b\.?`), "west"},
}

// cityContractions is the reverse mapping, used to generate abbreviation
// counterparts for autocomplete queries.
var cityContractions = []struct {
	pattern *regexp.Regexp
	abbr    string
}{
	{regexp.MustCompile(`\bsaint\b`), "st"},
	{regexp.MustCompile(`\bfort\b`), "ft"},
	{regexp.MustCompile(`\bmount\b`), "mt"},
	{regexp.MustCompile(`\bnorth\b`), "n"},
	{regexp.MustCompile(`\bsouth\b`), "s"},
	{regexp.MustCompile(`\beast\b`), "e"},
	{regexp.MustCompile(`\bwest\b`), "w"},
}

// NormalizeCityName lowercases, trims, expands whole-word abbreviations
// (st -> saint, ft -> fort, mt -> mount, n/s/e/w -> north/south/east/west)
// and collapses repeated whitespace. Empty input yields an empty string.
func NormalizeCityName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}

	for _, abbr := range cityAbbreviations {
		s = abbr.pattern.ReplaceAllString(s, abbr.full)
	}

	return strings.Join(strings.Fields(s), " ")
}

// ContractCityName replaces canonical full words with their abbreviations,
// producing the contraction counterpart of a search term ("saint louis" ->
// "st louis").
func ContractCityName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}

	for _, c := range cityContractions {
		s = c.pattern.ReplaceAllString(s, c.abbr)
	}

	return strings.Join(strings.Fields(s), " ")
}

// CitiesMatch reports whether two city names refer to the same place, using
// bidirectional substring containment over normalized names. Deliberately
// loose: "Saint Louis" matches both "Louis" and "Saint Louis City".
func CitiesMatch(a, b string) bool {
	na := NormalizeCityName(a)
	nb := NormalizeCityName(b)
	if na == "" || nb == "" {
		return false
	}

	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
