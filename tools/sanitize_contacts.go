package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gigfit/backend/guardrail"
)

// SanitizeContactsTool redacts contact details from proposal text
type SanitizeContactsTool struct{}

// NewSanitizeContactsTool creates a new contact sanitization tool
func NewSanitizeContactsTool() *SanitizeContactsTool {
	return &SanitizeContactsTool{}
}

func (t *SanitizeContactsTool) Name() string {
	return "sanitize_contacts"
}

func (t *SanitizeContactsTool) Description() string {
	return `Redact emails, phone numbers, websites, social handles and physical addresses
from text before it is sent to a client. Each contact is replaced with a redaction
marker and reported back with its type. Sanitizing already-sanitized text is a no-op.
Set allow_github to keep github.com links.`
}

func (t *SanitizeContactsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to sanitize",
			},
			"allow_github": map[string]interface{}{
				"type":        "boolean",
				"description": "Keep github.com links instead of redacting them",
			},
		},
		"required": []string{"text"},
	}
}

// SanitizeContactsInput represents the input for contact sanitization
type SanitizeContactsInput struct {
	Text        string `json:"text"`
	AllowGithub bool   `json:"allow_github,omitempty"`
}

func (t *SanitizeContactsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var sanitizeInput SanitizeContactsInput
	if err := json.Unmarshal(input, &sanitizeInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	opts := guardrail.DefaultOptions()
	opts.AllowGithub = sanitizeInput.AllowGithub

	return NewSuccessResult(guardrail.SanitizeContacts(sanitizeInput.Text, opts))
}
