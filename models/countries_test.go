package models_test

import (
	"testing"

	"github.com/gigfit/backend/models"
)

func TestIsPreferredCountry(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Germany", true},
		{"germany", true},
		{"  United States  ", true},
		{"United Arab Emirates", true},
		{"Atlantis", false},
		{"", false},
		{"United", false}, // prefix of a preferred name is not preferred
	}
	for _, c := range cases {
		if got := models.IsPreferredCountry(c.name); got != c.want {
			t.Errorf("IsPreferredCountry(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestPreferredCountriesByLength_LongestFirst(t *testing.T) {
	ordered := models.PreferredCountriesByLength()
	if len(ordered) != len(models.PreferredCountries) {
		t.Fatalf("ordered list has %d entries, want %d", len(ordered), len(models.PreferredCountries))
	}
	for i := 1; i < len(ordered); i++ {
		if len(ordered[i]) > len(ordered[i-1]) {
			t.Fatalf("order broken at %d: %q after %q", i, ordered[i], ordered[i-1])
		}
	}
	if ordered[0] != "United Arab Emirates" {
		t.Errorf("longest country = %q, want United Arab Emirates", ordered[0])
	}
}

func TestCanonicalCountry(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"UAE", "United Arab Emirates"},
		{"uae", "United Arab Emirates"},
		{"USA", "United States"},
		{"us", "United States"},
		{" UK ", "United Kingdom"},
		{"Germany", "Germany"},
		{"  Canada  ", "Canada"},
		{"Atlantis", "Atlantis"},
		{"", ""},
	}
	for _, c := range cases {
		if got := models.CanonicalCountry(c.in); got != c.want {
			t.Errorf("CanonicalCountry(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCountryAbbreviations_ResolveToPreferred(t *testing.T) {
	for abbrev, full := range models.CountryAbbreviations {
		if !models.IsPreferredCountry(full) {
			t.Errorf("abbreviation %s resolves to %q, which is not preferred", abbrev, full)
		}
	}
}
