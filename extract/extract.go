// Package extract parses unstructured, pasted job-board postings into
// structured records. Each field has its own independent extraction rule; a
// rule that finds nothing leaves its field at the documented empty default,
// so one malformed subsection never fails the whole posting.
package extract

import (
	"regexp"
	"strings"

	"github.com/gigfit/backend/models"
	"github.com/gigfit/backend/normalize"
)

var (
	// postedMarkerRe locates the "Posted ..."/"Summary" marker that ends the title block
	postedMarkerRe = regexp.MustCompile(`(?im)^\s*(Posted\b|Summary\b)`)

	postedTimeRe   = regexp.MustCompile(`(?i)Posted\s+([^\n]*?\bago\b|yesterday|today)`)
	fixedPriceRe   = regexp.MustCompile(`(?i)fixed[\s-]?price`)
	hourlyRe       = regexp.MustCompile(`(?i)\bhourly\b`)
	budgetRangeRe  = regexp.MustCompile(`\$\s*[\d,]+(?:\.\d+)?\s*[KkMm]?\s*[-–]\s*\$\s*[\d,]+(?:\.\d+)?\s*[KkMm]?`)
	budgetSingleRe = regexp.MustCompile(`\$\s*[\d,]+(?:\.\d+)?\s*[KkMm]?`)
	levelRe        = regexp.MustCompile(`(?i)\b(Entry|Intermediate|Expert)[\s-]level\b`)
	durationRe     = regexp.MustCompile(`(?i)(?:Duration:?\s*([^\n]+)|\b(\d+\s+to\s+\d+\s+months?|less than a month|less than \d+ months?|more than \d+ months?)\b)`)

	clientSectionRe = regexp.MustCompile(`(?i)About the client`)
	summaryLineRe   = regexp.MustCompile(`(?im)^\s*Summary\s*$`)

	notVerifiedRe = regexp.MustCompile(`(?i)payment\s+(?:method\s+)?(?:not\s+verified|unverified)`)
	verifiedRe    = regexp.MustCompile(`(?i)payment\s+(?:method\s+)?verified`)
	ratingRe      = regexp.MustCompile(`(?i)(\d(?:\.\d+)?)\s*(?:of|out of|/)\s*5`)
	ratingLabelRe = regexp.MustCompile(`(?i)rating[:\s]+(\d(?:\.\d+)?)`)
	hireRateRe    = regexp.MustCompile(`(?i)(\d{1,3})%\s*hire\s*rate`)
	jobsPostedRe  = regexp.MustCompile(`(?i)(\d+)\s+jobs?\s+posted`)
	totalSpentRe  = regexp.MustCompile(`(?i)\$\s*([\d,]+(?:\.\d+)?\s*[KkMm]?)\+?\s*(?:total\s+)?spent`)
	hiresRe       = regexp.MustCompile(`(?i)(\d+)\s+hires?\b`)
	avgRateRe     = regexp.MustCompile(`(?i)\$\s*([\d,]+(?:\.\d+)?)\s*(?:/|per\s+)hr(?:[\s.]+avg)?`)

	// clockRe anchors the positional country fallback near the section end
	clockRe      = regexp.MustCompile(`\b\d{1,2}:\d{2}\s*(?:AM|PM|am|pm)\b`)
	abbrevRe     = regexp.MustCompile(`\b(USA|US|UK|UAE)\b`)
	worldwideRe  = regexp.MustCompile(`(?i)\bWorldwide\b`)
	enumPrefixRe = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*•])\s*`)
)

// sectionHeaders terminate free-text blocks like the description
var sectionHeaders = []string{
	"about the client",
	"mandatory skills",
	"nice-to-have skills",
	"skills and expertise",
	"tools",
	"deliverables",
	"screening questions",
	"activity on this job",
	"summary",
}

// ExtractPosting parses raw pasted posting text into a structured record.
// It is a total function: malformed or incomplete input yields a posting
// with default-valued fields, never an error.
func ExtractPosting(rawText string) models.JobPosting {
	text := strings.ReplaceAll(rawText, "\r\n", "\n")

	// Budget, pricing and duration rules only look at the posting body so a
	// "$10K total spent" in the client block never reads as a budget.
	clientSec := ""
	body := text
	if loc := clientSectionRe.FindStringIndex(text); loc != nil {
		clientSec = text[loc[0]:]
		body = text[:loc[0]]
	}

	p := models.JobPosting{
		Title:              extractTitle(text),
		PostedTime:         extractPostedTime(text),
		PricingType:        extractPricingType(body),
		BudgetRange:        extractBudget(body),
		Level:              extractLevel(body),
		Description:        extractDescription(text),
		Skills:             extractSkills(text),
		Deliverables:       sectionItems(text, "Deliverables"),
		ScreeningQuestions: sectionItems(text, "Screening questions"),
		DurationText:       extractDuration(body),
		ClientCountry:      extractCountry(clientSec),
		PaymentVerified:    extractPaymentVerified(clientSec),
		ClientRating:       extractRating(clientSec),
		HireRatePercent:    extractHireRate(clientSec),
		JobsPostedCount:    extractJobsPosted(clientSec),
		TotalSpentUSD:      extractTotalSpent(clientSec),
		TotalHiresCount:    extractHires(clientSec),
		AvgHourlyRateUSD:   extractAvgHourlyRate(clientSec),
	}
	return p
}

// extractTitle takes the text before the first "Posted"/"Summary" marker,
// falling back to the first non-empty line.
func extractTitle(text string) string {
	if loc := postedMarkerRe.FindStringIndex(text); loc != nil {
		title := strings.TrimSpace(text[:loc[0]])
		if title != "" {
			// A multi-line preamble keeps only its first line as the title
			if i := strings.IndexByte(title, '\n'); i >= 0 {
				title = strings.TrimSpace(title[:i])
			}
			return title
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func extractPostedTime(text string) string {
	if m := postedTimeRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractPricingType(text string) string {
	if fixedPriceRe.MatchString(text) {
		return models.PricingTypeFixed
	}
	if hourlyRe.MatchString(text) {
		return models.PricingTypeHourly
	}
	return ""
}

// extractBudget prefers a "$X - $Y" range over a single "$X" amount
func extractBudget(text string) string {
	if m := budgetRangeRe.FindString(text); m != "" {
		return condenseSpaces(m)
	}
	if m := budgetSingleRe.FindString(text); m != "" {
		return condenseSpaces(m)
	}
	return ""
}

func extractLevel(text string) string {
	if m := levelRe.FindStringSubmatch(text); m != nil {
		return models.NormalizeLevel(strings.ToLower(m[1]))
	}
	return ""
}

func extractDuration(text string) string {
	if m := durationRe.FindStringSubmatch(text); m != nil {
		if m[1] != "" {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[2])
	}
	return ""
}

// extractDescription takes the free text after the "Summary" marker (or the
// title line when there is none) up to the next known section header.
func extractDescription(text string) string {
	start := 0
	if loc := summaryLineRe.FindStringIndex(text); loc != nil {
		start = loc[1]
	} else if i := strings.IndexByte(text, '\n'); i >= 0 {
		start = i + 1
	}

	rest := text[start:]
	end := len(rest)
	lower := strings.ToLower(rest)
	for _, h := range sectionHeaders {
		if i := indexOfHeader(lower, h); i >= 0 && i < end {
			end = i
		}
	}
	return strings.TrimSpace(rest[:end])
}

// extractSkills prefers the "Mandatory skills" and "Nice-to-have skills"
// subsections, falling back to a "Tools" section, else an empty list.
func extractSkills(text string) []string {
	skills := sectionItems(text, "Mandatory skills")
	skills = append(skills, sectionItems(text, "Nice-to-have skills")...)
	if len(skills) > 0 {
		return skills
	}
	if tools := sectionItems(text, "Tools"); len(tools) > 0 {
		return tools
	}
	return []string{}
}

// extractCountry resolves the client country from the "About the client"
// section. Match order: preferred-country names longest first, then the
// abbreviation map, then a best-effort positional fallback that searches the
// ~100 characters before a time-of-day pattern near the end of the section.
// A literal "Worldwide" resolves to no country rather than a guess.
func extractCountry(clientSec string) string {
	if clientSec == "" {
		return ""
	}
	lower := strings.ToLower(clientSec)

	for _, country := range models.PreferredCountriesByLength() {
		if strings.Contains(lower, strings.ToLower(country)) {
			return country
		}
	}

	if m := abbrevRe.FindString(clientSec); m != "" {
		return models.CountryAbbreviations[m]
	}

	// An explicit "Worldwide" resolves to no country; never guess past it
	if worldwideRe.MatchString(clientSec) {
		return ""
	}

	// Last-resort heuristic: a posting's client block usually ends with the
	// client's local time, with the country shortly before it.
	if locs := clockRe.FindAllStringIndex(clientSec, -1); len(locs) > 0 {
		end := locs[len(locs)-1][0]
		start := end - 100
		if start < 0 {
			start = 0
		}
		window := strings.ToLower(clientSec[start:end])
		for _, country := range models.PreferredCountriesByLength() {
			if strings.Contains(window, strings.ToLower(country)) {
				return country
			}
		}
	}

	return ""
}

func extractPaymentVerified(clientSec string) bool {
	if clientSec == "" {
		return false
	}
	if notVerifiedRe.MatchString(clientSec) {
		return false
	}
	return verifiedRe.MatchString(clientSec)
}

func extractRating(clientSec string) float64 {
	for _, re := range []*regexp.Regexp{ratingRe, ratingLabelRe} {
		if m := re.FindStringSubmatch(clientSec); m != nil {
			if n, ok := normalize.Number(m[1]); ok {
				return n
			}
		}
	}
	return 0
}

func extractHireRate(clientSec string) *float64 {
	if m := hireRateRe.FindStringSubmatch(clientSec); m != nil {
		if pct, ok := normalize.Percent(m[1] + "%"); ok {
			return &pct
		}
	}
	return nil
}

func extractJobsPosted(clientSec string) int {
	if m := jobsPostedRe.FindStringSubmatch(clientSec); m != nil {
		if n, ok := normalize.Number(m[1]); ok {
			return int(n)
		}
	}
	return 0
}

func extractTotalSpent(clientSec string) float64 {
	if m := totalSpentRe.FindStringSubmatch(clientSec); m != nil {
		if n, ok := normalize.Number(m[1]); ok {
			return n
		}
	}
	return 0
}

func extractHires(clientSec string) int {
	if m := hiresRe.FindStringSubmatch(clientSec); m != nil {
		if n, ok := normalize.Number(m[1]); ok {
			return int(n)
		}
	}
	return 0
}

func extractAvgHourlyRate(clientSec string) float64 {
	if m := avgRateRe.FindStringSubmatch(clientSec); m != nil {
		if n, ok := normalize.Number(m[1]); ok {
			return n
		}
	}
	return 0
}

// sectionItems returns the list items under a line-anchored header, split on
// newlines and commas, with enumeration prefixes stripped.
func sectionItems(text, header string) []string {
	lower := strings.ToLower(text)
	start := indexOfHeader(lower, strings.ToLower(header))
	if start < 0 {
		return nil
	}

	// Skip past the header line itself
	rest := text[start:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[i+1:]
	} else {
		return nil
	}

	var items []string
	for _, line := range strings.Split(rest, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			break
		}
		if isSectionHeader(trimmed) {
			break
		}
		trimmed = enumPrefixRe.ReplaceAllString(trimmed, "")
		for _, part := range strings.Split(trimmed, ",") {
			if item := strings.TrimSpace(part); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// indexOfHeader finds a header on its own line in already-lowercased text
func indexOfHeader(lower, header string) int {
	offset := 0
	for {
		i := strings.Index(lower[offset:], header)
		if i < 0 {
			return -1
		}
		abs := offset + i
		lineStart := abs == 0 || lower[abs-1] == '\n'
		if lineStart {
			return abs
		}
		offset = abs + len(header)
	}
}

func isSectionHeader(line string) bool {
	lower := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	for _, h := range sectionHeaders {
		if lower == h {
			return true
		}
	}
	return false
}

func condenseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
