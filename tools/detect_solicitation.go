package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gigfit/backend/guardrail"
)

// DetectSolicitationTool flags postings that solicit off-platform contact
type DetectSolicitationTool struct{}

// NewDetectSolicitationTool creates a new solicitation detection tool
func NewDetectSolicitationTool() *DetectSolicitationTool {
	return &DetectSolicitationTool{}
}

func (t *DetectSolicitationTool) Name() string {
	return "detect_solicitation"
}

func (t *DetectSolicitationTool) Description() string {
	return `Check whether job posting text asks applicants for off-platform contact details.
Input is the posting text. Returns whether contact was requested and the matched
category tags (email, phone, messaging_app, website, social_profile, ...).
The result is an advisory warning, not a block.`
}

func (t *DetectSolicitationTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"job_text": map[string]interface{}{
				"type":        "string",
				"description": "Job posting text to check",
			},
		},
		"required": []string{"job_text"},
	}
}

// DetectSolicitationInput represents the input for solicitation detection
type DetectSolicitationInput struct {
	JobText string `json:"job_text"`
}

func (t *DetectSolicitationTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var detectInput DetectSolicitationInput
	if err := json.Unmarshal(input, &detectInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	return NewSuccessResult(guardrail.DetectSolicitation(detectInput.JobText))
}
