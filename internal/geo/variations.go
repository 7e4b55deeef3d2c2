package geo

import "strings"

// specialPrefixes are prefix expansions for searches the lookup API handles
// poorly: a short prefix of a common Missouri/Illinois city name also queries
// the full city name. Each entry applies only while the typed partial is
// still shorter than the cutoff.
var specialPrefixes = []struct {
	prefix    string
	maxLen    int
	expansion string
}{
	{"spring", 10, "springfield"},
	{"columb", 8, "columbia"},
	{"jefferson", 12, "jefferson city"},
	{"kansas", 10, "kansas city"},
}

// SearchVariations generates the deduplicated set of search terms to query
// for a partial city string: the literal partial, its abbreviation expansion
// or contraction counterpart, and hardcoded special-case expansions.
func SearchVariations(partial string) []string {
	p := strings.ToLower(strings.TrimSpace(partial))
	if p == "" {
		return nil
	}

	variations := []string{p}

	if expanded := NormalizeCityName(p); expanded != p {
		variations = append(variations, expanded)
	}
	if contracted := ContractCityName(p); contracted != p {
		variations = append(variations, contracted)
	}

	// "fallon" also searches "ofallon": the apostrophe city (O'Fallon) is
	// usually typed without its leading letter.
	if strings.Contains(p, "fallon") && !strings.Contains(p, "ofallon") {
		variations = append(variations, "o"+p)
	}

	for _, special := range specialPrefixes {
		if strings.HasPrefix(p, special.prefix) && len(p) < special.maxLen {
			variations = append(variations, special.expansion)
		}
	}

	return dedupeStrings(variations)
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}

	return out
}
