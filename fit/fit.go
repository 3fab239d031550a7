// Package fit buckets a posting's client-quality signals into one of three
// discrete tiers. Classification is pure and deterministic: same input,
// same bucket, same reasons, every time.
package fit

import (
	"fmt"

	"github.com/gigfit/backend/models"
)

// Classification thresholds
const (
	minRating        = 4.0
	bestFitRating    = 4.7
	bestFitHireRate  = 0.60
	bestFitSpentUSD  = 10000.0
	bestFitJobsCount = 50
	bestFitAIMatch   = 0.75
)

// EvaluateFit classifies normalized client-quality fields into a bucket with
// its paired score and an ordered list of human-readable reasons.
//
// Stage 1 hard-rejects on any disqualifying signal and lists every failing
// one. Stage 2 grants BEST_FIT only when all excellence signals hold, where
// an absent optional field (hire rate, AI match) counts as holding.
// Everything else is MEDIUM_FIT with the failed stage-2 conditions as
// reasons.
func EvaluateFit(in models.FitInput) models.FitResult {
	// Abbreviated country names ("UAE") resolve against the same table the
	// extractor uses, so both agree on what counts as preferred.
	country := models.CanonicalCountry(in.ClientCountry)

	// Stage 1: hard rejects. All failing conditions are reported, not just
	// the first.
	var rejects []string
	if !in.PaymentVerified {
		rejects = append(rejects, "Payment not verified")
	}
	if !models.IsPreferredCountry(country) {
		rejects = append(rejects, fmt.Sprintf("Client country %q is not in the preferred list", country))
	}
	if in.ClientRating < minRating {
		rejects = append(rejects, fmt.Sprintf("Client rating %.1f is below the minimum %.1f", in.ClientRating, minRating))
	}
	if len(rejects) > 0 {
		return models.FitResult{
			Bucket:   models.BucketNotFit,
			FitScore: models.FitScoreNotFit,
			Reasons:  rejects,
		}
	}

	// Stage 2: best-fit gate. Absent optional fields are non-blocking here;
	// only present out-of-range values fail.
	var failed []string
	var confirmed []string

	confirmed = append(confirmed, "Payment verified")
	confirmed = append(confirmed, fmt.Sprintf("Client country %s is preferred", country))

	if in.ClientRating >= bestFitRating {
		confirmed = append(confirmed, fmt.Sprintf("Client rating %.1f meets the best-fit threshold %.1f", in.ClientRating, bestFitRating))
	} else {
		failed = append(failed, fmt.Sprintf("Client rating %.1f is below the best-fit threshold %.1f", in.ClientRating, bestFitRating))
	}

	if in.HireRate == nil {
		confirmed = append(confirmed, "Hire rate not provided (allowed)")
	} else if *in.HireRate >= bestFitHireRate {
		confirmed = append(confirmed, fmt.Sprintf("Hire rate %.0f%% meets the best-fit threshold %.0f%%", *in.HireRate*100, bestFitHireRate*100))
	} else {
		failed = append(failed, fmt.Sprintf("Hire rate %.0f%% is below the best-fit threshold %.0f%%", *in.HireRate*100, bestFitHireRate*100))
	}

	if in.TotalSpentUSD >= bestFitSpentUSD || in.JobsPostedCount >= bestFitJobsCount {
		confirmed = append(confirmed, fmt.Sprintf("Client history is established ($%.0f spent, %d jobs posted)", in.TotalSpentUSD, in.JobsPostedCount))
	} else {
		failed = append(failed, fmt.Sprintf("Client history is thin ($%.0f spent and %d jobs posted, need $%.0f spent or %d jobs)",
			in.TotalSpentUSD, in.JobsPostedCount, bestFitSpentUSD, bestFitJobsCount))
	}

	if in.AIMatch == nil {
		confirmed = append(confirmed, "AI match not provided (allowed)")
	} else if *in.AIMatch >= bestFitAIMatch {
		confirmed = append(confirmed, fmt.Sprintf("AI match %.0f%% meets the best-fit threshold %.0f%%", *in.AIMatch*100, bestFitAIMatch*100))
	} else {
		failed = append(failed, fmt.Sprintf("AI match %.0f%% is below the best-fit threshold %.0f%%", *in.AIMatch*100, bestFitAIMatch*100))
	}

	if len(failed) == 0 {
		return models.FitResult{
			Bucket:   models.BucketBestFit,
			FitScore: models.FitScoreBestFit,
			Reasons:  confirmed,
		}
	}

	return models.FitResult{
		Bucket:   models.BucketMediumFit,
		FitScore: models.FitScoreMediumFit,
		Reasons:  failed,
	}
}

// InputFromPosting builds a classifier input from an extracted posting.
// aiMatch is an optional upstream match fraction; nil means not provided.
func InputFromPosting(p models.JobPosting, aiMatch *float64) models.FitInput {
	return models.FitInput{
		ClientCountry:   p.ClientCountry,
		PaymentVerified: p.PaymentVerified,
		ClientRating:    p.ClientRating,
		JobsPostedCount: p.JobsPostedCount,
		HireRate:        p.HireRatePercent,
		TotalSpentUSD:   p.TotalSpentUSD,
		AIMatch:         aiMatch,
	}
}
