package models

// Contact type constants
const (
	ContactTypeEmail   = "email"
	ContactTypePhone   = "phone"
	ContactTypeWebsite = "website"
	ContactTypeSocial  = "social"
	ContactTypeAddress = "address"
)

// SolicitationResult reports whether a posting solicits off-platform contact
// @Description Solicitation detection result with matched category tags
type SolicitationResult struct {
	Requested      bool     `json:"requested" firestore:"requested"`
	MatchedPhrases []string `json:"matched_phrases" firestore:"matchedPhrases"` // category tags, deduplicated
}

// ContactMatch is a single piece of contact information found in text
type ContactMatch struct {
	Type     string `json:"type" example:"email"`
	RawValue string `json:"raw_value" example:"jane@example.com"`
}

// SanitizationResult is the outcome of stripping contact info from text
// @Description Sanitized text plus the contacts that were redacted
type SanitizationResult struct {
	SanitizedText string         `json:"sanitized_text"`
	FoundContacts []ContactMatch `json:"found_contacts"`
}
