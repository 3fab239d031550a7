// Package guardrail detects solicitation of off-platform contact in job
// postings and strips contact information out of generated proposal text.
// Both operations are stateless, deterministic, and safe for any number of
// concurrent callers.
package guardrail

import (
	"regexp"

	"github.com/gigfit/backend/models"
)

// Solicitation category tags
const (
	CategoryEmail          = "email"
	CategoryPhone          = "phone"
	CategoryMessagingApp   = "messaging_app"
	CategoryWebsite        = "website"
	CategorySocialProfile  = "social_profile"
	CategoryDirectContact  = "direct_contact"
	CategoryContactDetails = "contact_details"
	CategoryLocation       = "location"
)

// solicitationPatterns are applied in a fixed order; the result carries
// category tags only, never raw matched spans.
var solicitationPatterns = []struct {
	tag string
	re  *regexp.Regexp
}{
	{CategoryEmail, regexp.MustCompile(`(?i)(?:send|share|include|provide|leave)[^.\n]{0,40}\be-?mail\b|\be-?mail\s+(?:me|us)\b|[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)},
	{CategoryPhone, regexp.MustCompile(`(?i)\b(?:phone|mobile|cell)\s*(?:number|no\.?)?\b|\bcall\s+(?:me|us)\b|\btext\s+(?:me|us)\b`)},
	{CategoryMessagingApp, regexp.MustCompile(`(?i)\b(?:whats\s?app|telegram|skype|signal|viber|wechat|discord|zoom)\b`)},
	{CategoryWebsite, regexp.MustCompile(`(?i)(?:visit|check(?:\s+out)?|apply\s+(?:on|at|via)|go\s+to)[^.\n]{0,40}\b(?:website|webpage|site)\b|\bour\s+website\b|\byour\s+portfolio\s+(?:site|website|link|url)\b`)},
	{CategorySocialProfile, regexp.MustCompile(`(?i)\blinked\s?in\b|\b(?:instagram|facebook|twitter)\s+(?:profile|page|handle)\b|\bsocial\s+(?:media\s+)?profile\b`)},
	{CategoryDirectContact, regexp.MustCompile(`(?i)\bcontact\s+(?:me|us)\s+(?:directly|outside)\b|\boff[\s-]?platform\b|\boutside\s+(?:of\s+)?the\s+platform\b|\bdirect\s+contact\b|\breach\s+(?:me|us)\s+(?:directly|at|on)\b`)},
	{CategoryContactDetails, regexp.MustCompile(`(?i)\bcontact\s+(?:details|info|information)\b|\b(?:your|best)\s+contact\b`)},
	{CategoryLocation, regexp.MustCompile(`(?i)where\s+are\s+you\s+(?:located|based)\b|\byour\s+(?:location|address|city)\b|\bhome\s+address\b`)},
}

// DetectSolicitation scans job text for requests for off-platform contact.
// The result is advisory only: callers log the warning, the text is never
// mutated here.
func DetectSolicitation(jobText string) models.SolicitationResult {
	matched := []string{}
	seen := make(map[string]bool)

	for _, p := range solicitationPatterns {
		if seen[p.tag] {
			continue
		}
		if p.re.MatchString(jobText) {
			seen[p.tag] = true
			matched = append(matched, p.tag)
		}
	}

	return models.SolicitationResult{
		Requested:      len(matched) > 0,
		MatchedPhrases: matched,
	}
}
