package models

import (
	"encoding/json"
	"time"
)

// FlexibleStringSlice can unmarshal from either a string or []string
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as []string first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	// Try to unmarshal as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	// If both fail, return empty slice
	*f = []string{}
	return nil
}

// PricingType constants
const (
	PricingTypeFixed  = "fixed"
	PricingTypeHourly = "hourly"
)

// Level constants
const (
	LevelEntry        = "entry"
	LevelIntermediate = "intermediate"
	LevelExpert       = "expert"
)

// JobPosting represents a job posting extracted from pasted job-board text.
// Every field has a defined empty default; a field the extractor cannot
// confidently fill stays at that default rather than failing the posting.
type JobPosting struct {
	Title              string   `json:"title" firestore:"title"`
	PostedTime         string   `json:"posted_time,omitempty" firestore:"postedTime"`
	PricingType        string   `json:"pricing_type,omitempty" firestore:"pricingType"` // fixed, hourly
	BudgetRange        string   `json:"budget_range,omitempty" firestore:"budgetRange"`
	Level              string   `json:"level,omitempty" firestore:"level"` // entry, intermediate, expert
	Description        string   `json:"description,omitempty" firestore:"description"`
	Skills             []string `json:"skills,omitempty" firestore:"skills"`
	Deliverables       []string `json:"deliverables,omitempty" firestore:"deliverables"`
	ScreeningQuestions []string `json:"screening_questions,omitempty" firestore:"screeningQuestions"`
	DurationText       string   `json:"duration,omitempty" firestore:"duration"`

	// Client-quality fields scraped from the "About the client" section
	ClientCountry    string   `json:"client_country,omitempty" firestore:"clientCountry"`
	PaymentVerified  bool     `json:"payment_verified" firestore:"paymentVerified"`
	ClientRating     float64  `json:"client_rating,omitempty" firestore:"clientRating"`
	HireRatePercent  *float64 `json:"hire_rate,omitempty" firestore:"hireRate"` // fraction in [0,1]; nil = not provided
	JobsPostedCount  int      `json:"jobs_posted,omitempty" firestore:"jobsPosted"`
	TotalSpentUSD    float64  `json:"total_spent_usd,omitempty" firestore:"totalSpentUsd"`
	TotalHiresCount  int      `json:"total_hires,omitempty" firestore:"totalHires"`
	AvgHourlyRateUSD float64  `json:"avg_hourly_rate_usd,omitempty" firestore:"avgHourlyRateUsd"`
}

// NormalizePricingType normalizes various pricing type strings to standard values
func NormalizePricingType(raw string) string {
	switch raw {
	case "fixed", "Fixed", "FIXED", "fixed-price", "Fixed-price", "Fixed Price", "fixed price":
		return PricingTypeFixed
	case "hourly", "Hourly", "HOURLY", "per hour", "Per Hour":
		return PricingTypeHourly
	default:
		return raw
	}
}

// NormalizeLevel normalizes experience level strings to standard values
func NormalizeLevel(raw string) string {
	switch raw {
	case "entry", "Entry", "Entry Level", "Entry level", "ENTRY":
		return LevelEntry
	case "intermediate", "Intermediate", "INTERMEDIATE", "mid", "Mid":
		return LevelIntermediate
	case "expert", "Expert", "EXPERT", "senior", "Senior":
		return LevelExpert
	default:
		return raw
	}
}

// Job is a triaged posting persisted in Firestore
type Job struct {
	ID           string              `json:"id" firestore:"-"`
	OwnerEmail   string              `json:"owner_email" firestore:"ownerEmail"`
	RawText      string              `json:"raw_text,omitempty" firestore:"rawText"`
	Posting      JobPosting          `json:"posting" firestore:"posting"`
	Fit          *FitResult          `json:"fit,omitempty" firestore:"fit"`
	Solicitation *SolicitationResult `json:"solicitation,omitempty" firestore:"solicitation"`
	ProposalURL  string              `json:"proposal_url,omitempty" firestore:"proposalUrl"`
	CreatedAt    time.Time           `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time           `json:"updated_at" firestore:"updatedAt"`
}
