package agent_test

import (
	"testing"

	"github.com/gigfit/backend/agent"
	"github.com/gigfit/backend/config"
	"github.com/gigfit/backend/models"
)

func newTestAgent() *agent.TriageAgent {
	return agent.NewTriageAgent(&config.Config{
		MaxJobResults:        50,
		MaxConcurrentReclass: 4,
	})
}

// ── Full pipeline ──────────────────────────────────────────────────────────

func TestTriagePosting_BestFitClient(t *testing.T) {
	raw := `Go microservices consultant
Posted 1 hour ago
Summary
Refactor our billing services.

Fixed-price
$2,000 - $4,000
Expert level

About the client
Payment method verified
4.8 of 5 reviews
Germany
62% hire rate, 1 open job
$18K total spent
12 jobs posted
`
	result := newTestAgent().TriagePosting(raw, nil)

	if result.Posting.Title != "Go microservices consultant" {
		t.Errorf("Title = %q", result.Posting.Title)
	}
	if result.Fit.Bucket != models.BucketBestFit {
		t.Errorf("Bucket = %s, want BEST_FIT; reasons: %v", result.Fit.Bucket, result.Fit.Reasons)
	}
	if result.Fit.FitScore != models.FitScoreBestFit {
		t.Errorf("FitScore = %d, want %d", result.Fit.FitScore, models.FitScoreBestFit)
	}
	if result.Solicitation.Requested {
		t.Errorf("clean posting flagged as soliciting contact: %v", result.Solicitation.MatchedPhrases)
	}
}

func TestTriagePosting_UnverifiedClientIsNotFit(t *testing.T) {
	raw := `Quick logo tweak
Posted today
About the client
Payment method not verified
Germany
5.0 of 5 reviews
`
	result := newTestAgent().TriagePosting(raw, nil)

	if result.Fit.Bucket != models.BucketNotFit {
		t.Errorf("Bucket = %s, want NOT_FIT for unverified payment", result.Fit.Bucket)
	}
	if result.Fit.FitScore != models.FitScoreNotFit {
		t.Errorf("FitScore = %d, want 0", result.Fit.FitScore)
	}
}

func TestTriagePosting_FlagsSolicitation(t *testing.T) {
	raw := `Data scraping task
Posted today
Summary
Before we start, send your WhatsApp number so we can discuss details.

About the client
Payment method verified
4.9 of 5 reviews
United States
$30K total spent
`
	result := newTestAgent().TriagePosting(raw, nil)

	if !result.Solicitation.Requested {
		t.Fatal("expected solicitation warning for WhatsApp request")
	}
	// Advisory only: fit classification still runs on its own merits
	if result.Fit.Bucket == models.BucketNotFit {
		t.Errorf("solicitation must not affect the fit bucket, got %s", result.Fit.Bucket)
	}
}

// ── AI match passthrough ───────────────────────────────────────────────────

func TestTriagePosting_LowAIMatchDemotesBestFit(t *testing.T) {
	raw := `Platform migration
Posted today
About the client
Payment method verified
4.9 of 5 reviews
United Kingdom
80% hire rate
$50K total spent
`
	low := 0.5
	result := newTestAgent().TriagePosting(raw, &low)

	if result.Fit.Bucket != models.BucketMediumFit {
		t.Errorf("Bucket = %s, want MEDIUM_FIT when AI match is below threshold", result.Fit.Bucket)
	}
}
