package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gigfit/backend/extract"
)

// ExtractPostingTool extracts structured fields from raw pasted posting text
type ExtractPostingTool struct{}

// NewExtractPostingTool creates a new posting extraction tool
func NewExtractPostingTool() *ExtractPostingTool {
	return &ExtractPostingTool{}
}

func (t *ExtractPostingTool) Name() string {
	return "extract_posting"
}

func (t *ExtractPostingTool) Description() string {
	return `Extract structured fields from raw job posting text pasted from a freelance marketplace.
Input is the raw text as copied from the posting page.
Returns title, pricing type, budget, level, skills, screening questions and client statistics.
Fields that cannot be found are left empty rather than guessed.`
}

func (t *ExtractPostingTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"raw_text": map[string]interface{}{
				"type":        "string",
				"description": "Raw posting text as pasted by the user",
			},
		},
		"required": []string{"raw_text"},
	}
}

// ExtractPostingInput represents the input for posting extraction
type ExtractPostingInput struct {
	RawText string `json:"raw_text"`
}

func (t *ExtractPostingTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var extractInput ExtractPostingInput
	if err := json.Unmarshal(input, &extractInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	posting := extract.ExtractPosting(extractInput.RawText)
	return NewSuccessResult(posting)
}
