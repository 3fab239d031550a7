package models

// TriageRequest represents the API request for triaging a pasted posting
// @Description Posting triage request with raw pasted text
type TriageRequest struct {
	RawText string `json:"raw_text" binding:"required" example:"Senior Go Developer\nPosted 2 hours ago..."`
	Save    bool   `json:"save,omitempty" example:"false"` // Persist the triaged job (requires authentication)
	// Optional AI-match percentage from an upstream matcher; accepts "75%",
	// 0.75 or 75, absent means not provided
	AIMatch interface{} `json:"ai_match,omitempty" swaggertype:"string" example:"75%"`
}

// TriageResponse represents the API response for a triaged posting
// @Description Structured posting, fit classification, and solicitation warning
type TriageResponse struct {
	Posting      JobPosting         `json:"posting"`
	Fit          FitResult          `json:"fit"`
	Solicitation SolicitationResult `json:"solicitation"`
	JobID        string             `json:"job_id,omitempty"` // Set when the job was saved
}

// EvaluateFitRequest carries raw, possibly mixed-representation client-quality
// fields. Booleans may arrive as "Yes"/"No", numbers as "$1,200" or "10K",
// percentages as "55%", 0.55 or 55; the normalization boundary sorts them out.
type EvaluateFitRequest struct {
	ClientCountry   string      `json:"client_country" example:"Germany"`
	PaymentVerified interface{} `json:"payment_verified" swaggertype:"string" example:"Yes"`
	ClientRating    interface{} `json:"client_rating" swaggertype:"string" example:"4.8"`
	JobsPosted      interface{} `json:"jobs_posted,omitempty" swaggertype:"string" example:"12"`
	HireRate        interface{} `json:"hire_rate,omitempty" swaggertype:"string" example:"60%"`
	TotalSpent      interface{} `json:"total_spent,omitempty" swaggertype:"string" example:"$15K"`
	AIMatch         interface{} `json:"ai_match,omitempty" swaggertype:"string" example:"0.8"`
}

// GenerateProposalRequest represents a proposal generation request
// @Description Proposal generation request for a saved job or raw posting text
type GenerateProposalRequest struct {
	JobID       string              `json:"job_id,omitempty" example:"a1b2c3"`
	RawText     string              `json:"raw_text,omitempty"`
	Skills      FlexibleStringSlice `json:"skills,omitempty"` // Extra skills to emphasise; accepts string or list
	Tone        string              `json:"tone,omitempty" example:"friendly"`
	AllowGithub bool                `json:"allow_github,omitempty" example:"true"` // Keep github.com links in the proposal
}

// GenerateProposalResponse represents a generated, sanitized proposal
// @Description Sanitized proposal text with redacted-contact report
type GenerateProposalResponse struct {
	CoverLetter     string         `json:"cover_letter"`
	QuestionAnswers []string       `json:"question_answers,omitempty"`
	FoundContacts   []ContactMatch `json:"found_contacts,omitempty"` // Contacts stripped from the LLM output
	ProposalURL     string         `json:"proposal_url,omitempty"`   // Archive location when saved
}

// RefineProposalRequest represents a proposal rewrite request
// @Description Rewrite an existing proposal following free-form instructions
type RefineProposalRequest struct {
	Proposal     string `json:"proposal" binding:"required"`
	Instructions string `json:"instructions" binding:"required" example:"Make it shorter and mention the deadline"`
	AllowGithub  bool   `json:"allow_github,omitempty"`
}

// RefineProposalResponse represents a rewritten, sanitized proposal
type RefineProposalResponse struct {
	Proposal      string         `json:"proposal"`
	FoundContacts []ContactMatch `json:"found_contacts,omitempty"`
}

// ProposalArchiveResponse represents an archived proposal fetched back from storage
// @Description Archived proposal content with a temporary signed link
type ProposalArchiveResponse struct {
	JobID     string `json:"job_id"`
	Content   string `json:"content"`
	SignedURL string `json:"signed_url,omitempty"` // Expiring link for sharing
}

// SanitizeRequest represents a standalone sanitization request
type SanitizeRequest struct {
	Text        string `json:"text" binding:"required"`
	AllowGithub bool   `json:"allow_github,omitempty"`
}

// JobListResponse represents a page of saved jobs
// @Description Saved jobs for the authenticated user
type JobListResponse struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total" example:"10"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"raw_text is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
