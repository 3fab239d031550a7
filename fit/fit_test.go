package fit_test

import (
	"strings"
	"testing"

	"github.com/gigfit/backend/fit"
	"github.com/gigfit/backend/models"
)

func ptr(f float64) *float64 { return &f }

func bestFitInput() models.FitInput {
	return models.FitInput{
		ClientCountry:   "Germany",
		PaymentVerified: true,
		ClientRating:    4.7,
		JobsPostedCount: 0,
		HireRate:        nil,
		TotalSpentUSD:   15000,
		AIMatch:         nil,
	}
}

func reasonsContain(reasons []string, substr string) bool {
	for _, r := range reasons {
		if strings.Contains(r, substr) {
			return true
		}
	}
	return false
}

// ── Stage 1: hard rejects ──────────────────────────────────────────────────

func TestEvaluateFit_UnverifiedPaymentAlwaysRejects(t *testing.T) {
	in := bestFitInput()
	in.PaymentVerified = false

	got := fit.EvaluateFit(in)
	if got.Bucket != models.BucketNotFit || got.FitScore != 0 {
		t.Fatalf("EvaluateFit = (%s, %d), want (NOT_FIT, 0)", got.Bucket, got.FitScore)
	}
	if !reasonsContain(got.Reasons, "Payment not verified") {
		t.Errorf("reasons %v should mention payment not verified", got.Reasons)
	}
}

func TestEvaluateFit_HardRejectListsEveryFailure(t *testing.T) {
	in := models.FitInput{
		ClientCountry:   "Atlantis",
		PaymentVerified: false,
		ClientRating:    3.2,
	}

	got := fit.EvaluateFit(in)
	if got.Bucket != models.BucketNotFit {
		t.Fatalf("Bucket = %s, want NOT_FIT", got.Bucket)
	}
	if len(got.Reasons) != 3 {
		t.Errorf("expected all 3 failing conditions listed, got %d: %v", len(got.Reasons), got.Reasons)
	}
}

func TestEvaluateFit_NonPreferredCountryRejects(t *testing.T) {
	in := bestFitInput()
	in.ClientCountry = "Elbonia"

	got := fit.EvaluateFit(in)
	if got.Bucket != models.BucketNotFit {
		t.Fatalf("Bucket = %s, want NOT_FIT", got.Bucket)
	}
	if !reasonsContain(got.Reasons, "preferred") {
		t.Errorf("reasons %v should mention the preferred list", got.Reasons)
	}
}

func TestEvaluateFit_AbbreviatedCountryResolvesBeforeCheck(t *testing.T) {
	for abbrev, full := range map[string]string{
		"UAE": "United Arab Emirates",
		"USA": "United States",
		"UK":  "United Kingdom",
	} {
		in := bestFitInput()
		in.ClientCountry = abbrev

		got := fit.EvaluateFit(in)
		if got.Bucket != models.BucketBestFit {
			t.Errorf("ClientCountry %q: Bucket = %s, want BEST_FIT, reasons: %v",
				abbrev, got.Bucket, got.Reasons)
			continue
		}
		if !reasonsContain(got.Reasons, full) {
			t.Errorf("ClientCountry %q: reasons %v should name the resolved country %q",
				abbrev, got.Reasons, full)
		}
	}
}

// ── Stage 2: best-fit gate ─────────────────────────────────────────────────

func TestEvaluateFit_AbsentOptionalFieldsAreNonBlocking(t *testing.T) {
	got := fit.EvaluateFit(bestFitInput())
	if got.Bucket != models.BucketBestFit || got.FitScore != 100 {
		t.Fatalf("EvaluateFit = (%s, %d), want (BEST_FIT, 100), reasons: %v",
			got.Bucket, got.FitScore, got.Reasons)
	}
	if len(got.Reasons) == 0 {
		t.Error("BEST_FIT reasons should be confirmatory, not empty")
	}
	if !reasonsContain(got.Reasons, "Hire rate not provided") {
		t.Errorf("reasons %v should note the absent hire rate was allowed", got.Reasons)
	}
}

func TestEvaluateFit_RatingBelowBestFitIsMedium(t *testing.T) {
	in := bestFitInput()
	in.ClientRating = 4.5

	got := fit.EvaluateFit(in)
	if got.Bucket != models.BucketMediumFit || got.FitScore != 70 {
		t.Fatalf("EvaluateFit = (%s, %d), want (MEDIUM_FIT, 70)", got.Bucket, got.FitScore)
	}
	if !reasonsContain(got.Reasons, "rating 4.5 is below the best-fit threshold") {
		t.Errorf("reasons %v should mention the rating shortfall", got.Reasons)
	}
}

func TestEvaluateFit_PresentLowHireRateFails(t *testing.T) {
	in := bestFitInput()
	in.HireRate = ptr(0.30)

	got := fit.EvaluateFit(in)
	if got.Bucket != models.BucketMediumFit {
		t.Fatalf("Bucket = %s, want MEDIUM_FIT", got.Bucket)
	}
	if !reasonsContain(got.Reasons, "Hire rate 30%") {
		t.Errorf("reasons %v should mention the low hire rate", got.Reasons)
	}
}

func TestEvaluateFit_JobsPostedSatisfiesHistoryGate(t *testing.T) {
	in := bestFitInput()
	in.TotalSpentUSD = 0
	in.JobsPostedCount = 50

	got := fit.EvaluateFit(in)
	if got.Bucket != models.BucketBestFit {
		t.Fatalf("Bucket = %s, want BEST_FIT (50 jobs posted satisfies the history gate), reasons: %v",
			got.Bucket, got.Reasons)
	}
}

// ── Invariants ─────────────────────────────────────────────────────────────

func TestEvaluateFit_BucketScorePairingIsExhaustive(t *testing.T) {
	countries := []string{"Germany", "Elbonia", ""}
	ratings := []float64{0, 3.9, 4.0, 4.5, 4.7, 5.0}
	hireRates := []*float64{nil, ptr(0.2), ptr(0.6), ptr(1.0)}
	spends := []float64{0, 9999, 10000, 250000}
	aiMatches := []*float64{nil, ptr(0.5), ptr(0.75)}

	for _, verified := range []bool{true, false} {
		for _, country := range countries {
			for _, rating := range ratings {
				for _, hr := range hireRates {
					for _, spent := range spends {
						for _, ai := range aiMatches {
							got := fit.EvaluateFit(models.FitInput{
								ClientCountry:   country,
								PaymentVerified: verified,
								ClientRating:    rating,
								HireRate:        hr,
								TotalSpentUSD:   spent,
								AIMatch:         ai,
							})
							want := models.FitScoreFor(got.Bucket)
							if got.FitScore != want {
								t.Fatalf("bucket %s paired with score %d, want %d", got.Bucket, got.FitScore, want)
							}
							if got.Bucket != models.BucketBestFit && len(got.Reasons) == 0 {
								t.Fatalf("bucket %s produced empty reasons", got.Bucket)
							}
						}
					}
				}
			}
		}
	}
}

func TestInputFromPosting(t *testing.T) {
	hr := 0.8
	p := models.JobPosting{
		ClientCountry:   "Canada",
		PaymentVerified: true,
		ClientRating:    4.9,
		JobsPostedCount: 12,
		HireRatePercent: &hr,
		TotalSpentUSD:   42000,
	}

	in := fit.InputFromPosting(p, nil)
	if in.ClientCountry != "Canada" || !in.PaymentVerified || in.ClientRating != 4.9 {
		t.Errorf("InputFromPosting dropped client fields: %+v", in)
	}
	if in.HireRate == nil || *in.HireRate != 0.8 {
		t.Errorf("InputFromPosting should carry the hire rate pointer through")
	}
	if in.AIMatch != nil {
		t.Errorf("AIMatch should stay nil when not provided")
	}
}
