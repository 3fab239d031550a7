package models

import (
	"sort"
	"strings"
)

// PreferredCountries is the fixed set of client countries eligible for the
// best-fit tier. The extractor and the fit classifier must share this table
// so they never disagree on what counts as preferred.
var PreferredCountries = []string{
	"Australia",
	"Austria",
	"Belgium",
	"Canada",
	"Denmark",
	"Finland",
	"France",
	"Germany",
	"Ireland",
	"Israel",
	"Italy",
	"Japan",
	"Luxembourg",
	"Netherlands",
	"New Zealand",
	"Norway",
	"Saudi Arabia",
	"Singapore",
	"South Korea",
	"Spain",
	"Sweden",
	"Switzerland",
	"United Arab Emirates",
	"United Kingdom",
	"United States",
}

// CountryAbbreviations maps common short forms to the canonical country name
var CountryAbbreviations = map[string]string{
	"USA": "United States",
	"US":  "United States",
	"UK":  "United Kingdom",
	"UAE": "United Arab Emirates",
}

var (
	countriesByLength []string
	preferredSet      map[string]bool
)

func init() {
	countriesByLength = make([]string, len(PreferredCountries))
	copy(countriesByLength, PreferredCountries)
	// Longest name first so "United States" wins over a bare "United" prefix
	sort.SliceStable(countriesByLength, func(i, j int) bool {
		return len(countriesByLength[i]) > len(countriesByLength[j])
	})

	preferredSet = make(map[string]bool, len(PreferredCountries))
	for _, c := range PreferredCountries {
		preferredSet[strings.ToLower(c)] = true
	}
}

// PreferredCountriesByLength returns the preferred countries sorted longest
// name first. Callers must not mutate the returned slice.
func PreferredCountriesByLength() []string {
	return countriesByLength
}

// IsPreferredCountry reports whether name is in the preferred set
func IsPreferredCountry(name string) bool {
	return preferredSet[strings.ToLower(strings.TrimSpace(name))]
}

// CanonicalCountry resolves a common abbreviation ("USA", "UK", "UAE") to the
// full country name. Names that are not abbreviations pass through trimmed.
func CanonicalCountry(name string) string {
	trimmed := strings.TrimSpace(name)
	if full, ok := CountryAbbreviations[strings.ToUpper(trimmed)]; ok {
		return full
	}
	return trimmed
}
