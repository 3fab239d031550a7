package agent

import (
	"context"
	"log"
	"sync"

	"github.com/gigfit/backend/config"
	"github.com/gigfit/backend/extract"
	"github.com/gigfit/backend/fit"
	"github.com/gigfit/backend/guardrail"
	"github.com/gigfit/backend/models"
	"github.com/gigfit/backend/storage"
)

// TriageAgent runs the posting analysis pipeline: extraction, fit
// classification, and the solicitation check. The pipeline itself is pure
// and needs no coordination between callers.
type TriageAgent struct {
	cfg           *config.Config
	maxConcurrent int
}

// NewTriageAgent creates a new triage agent
func NewTriageAgent(cfg *config.Config) *TriageAgent {
	return &TriageAgent{
		cfg:           cfg,
		maxConcurrent: cfg.MaxConcurrentReclass,
	}
}

// TriageResult is the outcome of analysing one pasted posting
type TriageResult struct {
	Posting      models.JobPosting         `json:"posting"`
	Fit          models.FitResult          `json:"fit"`
	Solicitation models.SolicitationResult `json:"solicitation"`
}

// TriagePosting analyses raw pasted posting text. aiMatch is an optional
// upstream match fraction; nil means not provided.
func (a *TriageAgent) TriagePosting(rawText string, aiMatch *float64) TriageResult {
	posting := extract.ExtractPosting(rawText)
	result := TriageResult{
		Posting:      posting,
		Fit:          fit.EvaluateFit(fit.InputFromPosting(posting, aiMatch)),
		Solicitation: guardrail.DetectSolicitation(rawText),
	}

	if result.Solicitation.Requested {
		// Advisory only: log the warning, never block the triage
		log.Printf("[Agent] Posting %q solicits off-platform contact: %v",
			posting.Title, result.Solicitation.MatchedPhrases)
	}

	return result
}

// ReclassifyStats summarises a bulk reclassification run
type ReclassifyStats struct {
	JobsSeen    int `json:"jobs_seen"`
	JobsUpdated int `json:"jobs_updated"`
	Errors      int `json:"errors"`
}

// ReclassifyJobs re-runs the fit classifier over a user's saved jobs and
// persists any changed results. Jobs are processed in parallel with bounded
// concurrency; the classifier itself is safe for concurrent use.
func (a *TriageAgent) ReclassifyJobs(ctx context.Context, store *storage.FirestoreClient, ownerEmail string) (ReclassifyStats, error) {
	jobs, err := store.ListJobsByOwner(ctx, ownerEmail, a.cfg.MaxJobResults)
	if err != nil {
		return ReclassifyStats{}, err
	}

	stats := ReclassifyStats{JobsSeen: len(jobs)}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, a.maxConcurrent)

	for _, job := range jobs {
		wg.Add(1)
		go func(job models.Job) {
			defer wg.Done()

			// Acquire semaphore
			sem <- struct{}{}
			defer func() { <-sem }()

			result := fit.EvaluateFit(fit.InputFromPosting(job.Posting, nil))
			if job.Fit != nil && job.Fit.Bucket == result.Bucket {
				return
			}

			if err := store.UpdateJobFit(ctx, job.ID, &result); err != nil {
				log.Printf("[Agent] Failed to update fit for job %s: %v", job.ID, err)
				mu.Lock()
				stats.Errors++
				mu.Unlock()
				return
			}

			mu.Lock()
			stats.JobsUpdated++
			mu.Unlock()
		}(job)
	}

	wg.Wait()

	log.Printf("[Agent] Reclassified jobs for %s: seen=%d updated=%d errors=%d",
		ownerEmail, stats.JobsSeen, stats.JobsUpdated, stats.Errors)
	return stats, nil
}
