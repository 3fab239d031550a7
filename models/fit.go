package models

// Bucket constants for fit classification
const (
	BucketNotFit    = "NOT_FIT"
	BucketMediumFit = "MEDIUM_FIT"
	BucketBestFit   = "BEST_FIT"
)

// Fit scores paired one-to-one with buckets; no other value is ever produced
const (
	FitScoreNotFit    = 0
	FitScoreMediumFit = 70
	FitScoreBestFit   = 100
)

// FitScoreFor returns the score paired with a bucket
func FitScoreFor(bucket string) int {
	switch bucket {
	case BucketBestFit:
		return FitScoreBestFit
	case BucketMediumFit:
		return FitScoreMediumFit
	default:
		return FitScoreNotFit
	}
}

// FitInput is the normalized subset of client-quality fields consumed by
// the fit classifier. Optional percentage fields are nil when not provided,
// which is a distinct state from zero.
type FitInput struct {
	ClientCountry   string   `json:"client_country"`
	PaymentVerified bool     `json:"payment_verified"`
	ClientRating    float64  `json:"client_rating"`
	JobsPostedCount int      `json:"jobs_posted"`
	HireRate        *float64 `json:"hire_rate,omitempty"` // fraction in [0,1]
	TotalSpentUSD   float64  `json:"total_spent_usd"`
	AIMatch         *float64 `json:"ai_match,omitempty"` // fraction in [0,1]
}

// FitResult is the outcome of fit classification
// @Description Fit bucket, paired score, and human-readable reasons
type FitResult struct {
	Bucket   string   `json:"bucket" firestore:"bucket" example:"BEST_FIT"`
	FitScore int      `json:"fit_score" firestore:"fitScore" example:"100"`
	Reasons  []string `json:"reasons" firestore:"reasons"`
}
