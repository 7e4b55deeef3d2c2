package geo

import "strings"

// stateAbbreviations maps lowercase full state names to their two-letter
// codes, covering all 50 states plus DC and the common "washington dc" alias.
var stateAbbreviations = map[string]string{
	"alabama":              "AL",
	"alaska":               "AK",
	"arizona":              "AZ",
	"arkansas":             "AR",
	"california":           "CA",
	"colorado":             "CO",
	"connecticut":          "CT",
	"delaware":             "DE",
	"florida":              "FL",
	"georgia":              "GA",
	"hawaii":               "HI",
	"idaho":                "ID",
	"illinois":             "IL",
	"indiana":              "IN",
	"iowa":                 "IA",
	"kansas":               "KS",
	"kentucky":             "KY",
	"louisiana":            "LA",
	"maine":                "ME",
	"maryland":             "MD",
	"massachusetts":        "MA",
	"michigan":             "MI",
	"minnesota":            "MN",
	"mississippi":          "MS",
	"missouri":             "MO",
	"montana":              "MT",
	"nebraska":             "NE",
	"nevada":               "NV",
	"new hampshire":        "NH",
	"new jersey":           "NJ",
	"new mexico":           "NM",
	"new york":             "NY",
	"north carolina":       "NC",
	"north dakota":         "ND",
	"ohio":                 "OH",
	"oklahoma":             "OK",
	"oregon":               "OR",
	"pennsylvania":         "PA",
	"rhode island":         "RI",
	"south carolina":       "SC",
	"south dakota":         "SD",
	"tennessee":            "TN",
	"texas":                "TX",
	"utah":                 "UT",
	"vermont":              "VT",
	"virginia":             "VA",
	"washington":           "WA",
	"west virginia":        "WV",
	"wisconsin":            "WI",
	"wyoming":              "WY",
	"district of columbia": "DC",
	"washington dc":        "DC",
}

// validStateCodes is derived from the abbreviation table for 2-letter lookups.
var validStateCodes = func() map[string]bool {
	codes := make(map[string]bool, len(stateAbbreviations))
	for _, code := range stateAbbreviations {
		codes[code] = true
	}

	return codes
}()

// StateCode resolves a state given either a two-letter code or a full state
// name, case-insensitively. Returns the uppercase code and whether resolution
// succeeded.
func StateCode(state string) (string, bool) {
	s := strings.TrimSpace(state)
	if s == "" {
		return "", false
	}

	if len(s) == 2 {
		code := strings.ToUpper(s)
		if validStateCodes[code] {
			return code, true
		}

		return "", false
	}

	code, ok := stateAbbreviations[strings.ToLower(s)]

	return code, ok
}
