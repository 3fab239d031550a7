package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gigfit/backend/fit"
	"github.com/gigfit/backend/models"
	"github.com/gigfit/backend/normalize"
)

// EvaluateFitTool classifies client-quality fields into a fit bucket
type EvaluateFitTool struct{}

// NewEvaluateFitTool creates a new fit evaluation tool
func NewEvaluateFitTool() *EvaluateFitTool {
	return &EvaluateFitTool{}
}

func (t *EvaluateFitTool) Name() string {
	return "evaluate_fit"
}

func (t *EvaluateFitTool) Description() string {
	return `Classify a client into NOT_FIT, MEDIUM_FIT or BEST_FIT from their posting statistics.
Fields tolerate mixed representations: booleans as Yes/No, amounts as $15K, percentages as 60% or 0.6.
Omit optional fields that are unknown; an omitted field is treated as not provided, not as zero.
Returns the bucket, its paired score and the reasons behind the decision.`
}

func (t *EvaluateFitTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"client_country": map[string]interface{}{
				"type":        "string",
				"description": "Client country name or common abbreviation (USA, UK, UAE)",
			},
			"payment_verified": map[string]interface{}{
				"description": "Whether the client's payment method is verified (true/false or Yes/No)",
			},
			"client_rating": map[string]interface{}{
				"description": "Client rating on a 0-5 scale",
			},
			"jobs_posted": map[string]interface{}{
				"description": "Number of jobs the client has posted",
			},
			"hire_rate": map[string]interface{}{
				"description": "Client hire rate as a percentage or fraction; omit if unknown",
			},
			"total_spent": map[string]interface{}{
				"description": "Total amount spent in USD, e.g. 15000 or $15K",
			},
			"ai_match": map[string]interface{}{
				"description": "Optional upstream AI match percentage or fraction; omit if unknown",
			},
		},
		"required": []string{"client_country", "payment_verified", "client_rating"},
	}
}

func (t *EvaluateFitTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req models.EvaluateFitRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	fitInput := models.FitInput{ClientCountry: req.ClientCountry}
	if v, ok := normalize.Bool(req.PaymentVerified); ok {
		fitInput.PaymentVerified = v
	}
	if v, ok := normalize.Number(req.ClientRating); ok {
		fitInput.ClientRating = v
	}
	if v, ok := normalize.Number(req.JobsPosted); ok {
		fitInput.JobsPostedCount = int(v)
	}
	if v, ok := normalize.Percent(req.HireRate); ok {
		fitInput.HireRate = &v
	}
	if v, ok := normalize.Number(req.TotalSpent); ok {
		fitInput.TotalSpentUSD = v
	}
	if v, ok := normalize.Percent(req.AIMatch); ok {
		fitInput.AIMatch = &v
	}

	return NewSuccessResult(fit.EvaluateFit(fitInput))
}
