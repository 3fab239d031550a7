package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gigfit/backend/gemini"
	"github.com/gigfit/backend/guardrail"
	"github.com/gigfit/backend/models"
)

// GenerateProposalTool drafts a proposal for a posting using Gemini
type GenerateProposalTool struct {
	geminiClient *gemini.Client
}

// NewGenerateProposalTool creates a new proposal generation tool
func NewGenerateProposalTool(geminiClient *gemini.Client) *GenerateProposalTool {
	return &GenerateProposalTool{
		geminiClient: geminiClient,
	}
}

func (t *GenerateProposalTool) Name() string {
	return "generate_proposal"
}

func (t *GenerateProposalTool) Description() string {
	return `Draft a cover letter and screening-question answers for a structured job posting.
Input includes the posting, an optional freelancer overview, extra skills to emphasise
and an optional tone. The draft is sanitized for off-platform contact details before
it is returned.`
}

func (t *GenerateProposalTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"posting": map[string]interface{}{
				"type":        "object",
				"description": "Structured job posting (output of extract_posting)",
			},
			"overview": map[string]interface{}{
				"type":        "string",
				"description": "Freelancer overview used to personalise the draft",
			},
			"skills": map[string]interface{}{
				"type":        "array",
				"description": "Extra skills to emphasise",
				"items":       map[string]interface{}{"type": "string"},
			},
			"tone": map[string]interface{}{
				"type":        "string",
				"description": "Desired tone, e.g. friendly or formal",
			},
			"allow_github": map[string]interface{}{
				"type":        "boolean",
				"description": "Keep github.com links in the sanitized draft",
			},
		},
		"required": []string{"posting"},
	}
}

// GenerateProposalInput represents the input for proposal generation
type GenerateProposalInput struct {
	Posting     models.JobPosting `json:"posting"`
	Overview    string            `json:"overview,omitempty"`
	Skills      []string          `json:"skills,omitempty"`
	Tone        string            `json:"tone,omitempty"`
	AllowGithub bool              `json:"allow_github,omitempty"`
}

func (t *GenerateProposalTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var genInput GenerateProposalInput
	if err := json.Unmarshal(input, &genInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	draft, err := t.geminiClient.DraftProposal(ctx, genInput.Posting, genInput.Overview, genInput.Skills, genInput.Tone)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("proposal generation failed: %v", err))
	}

	opts := guardrail.DefaultOptions()
	opts.AllowGithub = genInput.AllowGithub

	sanitized := guardrail.SanitizeContacts(draft.CoverLetter, opts)
	response := models.GenerateProposalResponse{
		CoverLetter:   sanitized.SanitizedText,
		FoundContacts: sanitized.FoundContacts,
	}
	for _, answer := range draft.QuestionAnswers {
		res := guardrail.SanitizeContacts(answer, opts)
		response.QuestionAnswers = append(response.QuestionAnswers, res.SanitizedText)
		response.FoundContacts = append(response.FoundContacts, res.FoundContacts...)
	}

	return NewSuccessResult(response)
}
