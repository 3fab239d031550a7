package guardrail

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gigfit/backend/models"
)

// RedactionMarker replaces every detected piece of contact information. It
// contains no digits, no "@" and no TLD-like token, so no sanitizer category
// can ever re-match it; that is what makes sanitization idempotent.
const RedactionMarker = "[contact removed]"

// Options carries the sanitizer policy. The social and address heuristics
// are hand-tuned thresholds, not fixed logic, so they live here.
type Options struct {
	// AllowGithub keeps github.com links intact (neither redacted nor
	// reported), useful when a proposal legitimately cites a portfolio repo.
	AllowGithub bool

	// PlatformKeywords are the messaging/social platform names that must
	// immediately precede a handle for it to count as contact info.
	PlatformKeywords []string

	// AddressMinSpan and AddressMaxSpan bound the text span after a location
	// cue that is treated as an address, limiting false positives.
	AddressMinSpan int
	AddressMaxSpan int
}

// DefaultOptions returns the standard sanitizer policy
func DefaultOptions() Options {
	return Options{
		PlatformKeywords: []string{
			"telegram", "whatsapp", "skype", "signal", "viber",
			"wechat", "discord", "instagram", "twitter", "facebook",
		},
		AddressMinSpan: 10,
		AddressMaxSpan: 100,
	}
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Loose digit grouping; candidates are validated by digit count before
	// anything is redacted.
	phoneRe      = regexp.MustCompile(`\+?\d[\d ().\-]*\d`)
	yearRe       = regexp.MustCompile(`^(19|20)\d{2}$`)
	digitGroupRe = regexp.MustCompile(`\d+`)

	websiteRe = regexp.MustCompile(`(?i)\b(?:https?://\S+|www\.\S+|[a-z0-9][a-z0-9\-]*(?:\.[a-z0-9\-]+)*\.(?:com|net|org|io|dev|co|me|app|site|online|info|biz)\b(?:/[^\s]*)?)`)

	addressCues = `based in|located in|located at|my location(?: is)?|my address(?: is)?|i am from|i'm from|coming from`
)

// SanitizeContacts strips contact information from text, replacing each
// match with RedactionMarker. Categories are applied in a fixed order
// (email, phone, website, social, address) so overlapping spans resolve the
// same way on every run, and the whole operation is idempotent.
func SanitizeContacts(text string, opts Options) models.SanitizationResult {
	defaults := DefaultOptions()
	if opts.PlatformKeywords == nil {
		opts.PlatformKeywords = defaults.PlatformKeywords
	}
	if opts.AddressMinSpan == 0 {
		opts.AddressMinSpan = defaults.AddressMinSpan
	}
	if opts.AddressMaxSpan == 0 {
		opts.AddressMaxSpan = defaults.AddressMaxSpan
	}

	found := []models.ContactMatch{}
	record := func(contactType, raw string) string {
		found = append(found, models.ContactMatch{Type: contactType, RawValue: raw})
		return RedactionMarker
	}

	// Email
	text = emailRe.ReplaceAllStringFunc(text, func(m string) string {
		return record(models.ContactTypeEmail, m)
	})

	// Phone: a candidate is kept only when its stripped digit count is in
	// [7,15], and it is neither a bare 1900-2099 year nor a bare 4-6 digit
	// number (both would be IDs or dates, not phone numbers).
	text = phoneRe.ReplaceAllStringFunc(text, func(m string) string {
		digits := stripNonDigits(m)
		if len(digits) < 7 || len(digits) > 15 {
			return m
		}
		bare := strings.TrimSpace(m)
		if yearRe.MatchString(bare) {
			return m
		}
		if isBareDigits(bare) && len(bare) >= 4 && len(bare) <= 6 {
			return m
		}
		// The loose separators can fuse adjacent years ("2020 2021",
		// "2019-2022") into one candidate; a run of year-only groups is a
		// date range, not a phone number.
		if allYearGroups(m) {
			return m
		}
		return record(models.ContactTypePhone, m)
	})

	// Website
	text = websiteRe.ReplaceAllStringFunc(text, func(m string) string {
		if opts.AllowGithub && strings.Contains(strings.ToLower(m), "github.com") {
			return m
		}
		if strings.Contains(m, RedactionMarker) {
			return m
		}
		return record(models.ContactTypeWebsite, m)
	})

	// Social: a handle counts only when immediately preceded by a platform
	// keyword; a bare "@handle" with no platform context is never flagged.
	socialRe := regexp.MustCompile(fmt.Sprintf(
		`(?i)\b(?:%s)\b\s*(?::\s*@?|@)[A-Za-z0-9_.]{3,}`,
		strings.Join(opts.PlatformKeywords, "|")))
	text = socialRe.ReplaceAllStringFunc(text, func(m string) string {
		if strings.Contains(m, RedactionMarker) {
			return m
		}
		return record(models.ContactTypeSocial, m)
	})

	// Address: only after a location cue, and only when the span stays
	// inside the configured bounds.
	addressRe := regexp.MustCompile(fmt.Sprintf(
		`(?i)\b(?:%s)\s+[^\n.,;!?]{%d,%d}`,
		addressCues, opts.AddressMinSpan, opts.AddressMaxSpan))
	text = addressRe.ReplaceAllStringFunc(text, func(m string) string {
		if strings.Contains(m, RedactionMarker) {
			return m
		}
		return record(models.ContactTypeAddress, m)
	})

	// Overlapping matches can leave adjacent markers; collapse each run
	text = markerRunRe.ReplaceAllString(text, RedactionMarker)

	return models.SanitizationResult{
		SanitizedText: text,
		FoundContacts: found,
	}
}

var markerRunRe = regexp.MustCompile(`\[contact removed\](?:\s*\[contact removed\])+`)

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allYearGroups reports whether every digit group in s is a 1900-2099 year
func allYearGroups(s string) bool {
	groups := digitGroupRe.FindAllString(s, -1)
	if len(groups) == 0 {
		return false
	}
	for _, g := range groups {
		if !yearRe.MatchString(g) {
			return false
		}
	}
	return true
}

func isBareDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
