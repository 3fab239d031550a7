package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/gigfit/backend/config"
	"github.com/gigfit/backend/models"
)

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	projectID string
	location  string
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)

	// Configure model parameters
	model.SetTemperature(0.4) // Some variety in proposals, but stay on-message
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(4096)

	return &Client{
		client:    client,
		model:     model,
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

// ProposalDraft is the raw LLM output for a proposal. Callers must pipe
// every field through the contact sanitizer before showing it to a user.
type ProposalDraft struct {
	CoverLetter     string   `json:"cover_letter"`
	QuestionAnswers []string `json:"question_answers"`
}

// DraftProposal generates a proposal for a posting on behalf of a freelancer.
// overview is the freelancer's own bio; extraSkills and tone are optional.
func (c *Client) DraftProposal(ctx context.Context, posting models.JobPosting, overview string, extraSkills []string, tone string) (*ProposalDraft, error) {
	postingJSON, _ := json.Marshal(posting)

	if tone == "" {
		tone = "professional and direct"
	}

	prompt := fmt.Sprintf(`Write a job proposal for the freelancer described below, responding to the job posting.

JOB POSTING:
%s

FREELANCER OVERVIEW:
%s

EXTRA SKILLS TO EMPHASISE: %s

Return a JSON object with:
{
  "cover_letter": "The proposal text, 150-250 words, tone: %s. Open with the client's actual problem, reference 1-2 concrete details from the posting, close with a clear next step.",
  "question_answers": ["One answer per screening question, in order. Empty array when the posting has none."]
}

Rules:
- Never invent credentials or past clients not present in the overview.
- Never include email addresses, phone numbers, links, or any other contact information.
- Do not mention that you are an AI or that this was generated.

Return ONLY the JSON object, no markdown formatting, no explanation.`,
		postingJSON, overview, strings.Join(extraSkills, ", "), tone)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from Gemini")
	}

	text := extractText(resp)
	text = cleanJSON(text)

	var draft ProposalDraft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		log.Printf("Failed to parse proposal response: %s", text)
		return nil, fmt.Errorf("failed to parse proposal JSON: %w", err)
	}

	log.Printf("[Gemini] Drafted proposal for %q: %d chars, %d answers",
		posting.Title, len(draft.CoverLetter), len(draft.QuestionAnswers))

	return &draft, nil
}

// RefineProposal rewrites an existing proposal following the given instructions
func (c *Client) RefineProposal(ctx context.Context, proposal, instructions string) (string, error) {
	prompt := fmt.Sprintf(`Rewrite the proposal below following the instructions. Keep it the same length unless told otherwise.

PROPOSAL:
%s

INSTRUCTIONS: %s

Rules:
- Never include email addresses, phone numbers, links, or any other contact information.
- Do not mention that you are an AI.

Return ONLY the rewritten proposal text, no markdown formatting, no explanation.`, proposal, instructions)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	return strings.TrimSpace(extractText(resp)), nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}
