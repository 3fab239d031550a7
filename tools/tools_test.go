package tools_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gigfit/backend/models"
	"github.com/gigfit/backend/tools"
)

func execute(t *testing.T, tool tools.Tool, input string) tools.ToolResult {
	t.Helper()
	raw, err := tool.Execute(context.Background(), json.RawMessage(input))
	if err != nil {
		t.Fatalf("%s execute: %v", tool.Name(), err)
	}
	var result tools.ToolResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("%s result unmarshal: %v", tool.Name(), err)
	}
	return result
}

// ── Registry ───────────────────────────────────────────────────────────────

func TestToolRegistry_RegisterAndGet(t *testing.T) {
	registry := tools.NewToolRegistry()
	registry.Register(tools.NewExtractPostingTool())
	registry.Register(tools.NewEvaluateFitTool())
	registry.Register(tools.NewDetectSolicitationTool())
	registry.Register(tools.NewSanitizeContactsTool())

	if _, ok := registry.Get("evaluate_fit"); !ok {
		t.Error("evaluate_fit not found in registry")
	}
	if _, ok := registry.Get("no_such_tool"); ok {
		t.Error("unknown tool should not resolve")
	}
	if got := len(registry.GetToolDefinitions()); got != 4 {
		t.Errorf("definitions = %d, want 4", got)
	}
}

func TestToolRegistry_ListIsSortedByName(t *testing.T) {
	registry := tools.NewToolRegistry()
	registry.Register(tools.NewSanitizeContactsTool())
	registry.Register(tools.NewExtractPostingTool())
	registry.Register(tools.NewEvaluateFitTool())
	registry.Register(tools.NewDetectSolicitationTool())

	listed := registry.List()
	for i := 1; i < len(listed); i++ {
		if listed[i-1].Name() > listed[i].Name() {
			t.Fatalf("List not sorted: %q before %q", listed[i-1].Name(), listed[i].Name())
		}
	}
	defs := registry.GetToolDefinitions()
	for i, tool := range listed {
		if defs[i]["name"] != tool.Name() {
			t.Errorf("definition %d = %v, want %q", i, defs[i]["name"], tool.Name())
		}
	}
}

// ── Tool execution ─────────────────────────────────────────────────────────

func TestExtractPostingTool_Execute(t *testing.T) {
	result := execute(t, tools.NewExtractPostingTool(),
		`{"raw_text": "React dashboard build\nPosted 3 hours ago\nHourly: $30.00 - $50.00\n"}`)
	if !result.Success {
		t.Fatalf("execute failed: %s", result.Error)
	}

	var posting models.JobPosting
	if err := json.Unmarshal(result.Data, &posting); err != nil {
		t.Fatalf("posting unmarshal: %v", err)
	}
	if posting.Title != "React dashboard build" {
		t.Errorf("Title = %q", posting.Title)
	}
	if posting.PricingType != models.PricingTypeHourly {
		t.Errorf("PricingType = %q, want hourly", posting.PricingType)
	}
}

func TestEvaluateFitTool_MixedRepresentations(t *testing.T) {
	result := execute(t, tools.NewEvaluateFitTool(),
		`{"client_country": "UAE", "payment_verified": "Yes", "client_rating": "4.8", "hire_rate": "65%", "total_spent": "$12K"}`)
	if !result.Success {
		t.Fatalf("execute failed: %s", result.Error)
	}

	var fitResult models.FitResult
	if err := json.Unmarshal(result.Data, &fitResult); err != nil {
		t.Fatalf("fit result unmarshal: %v", err)
	}
	if fitResult.Bucket != models.BucketBestFit {
		t.Errorf("Bucket = %s, want BEST_FIT; reasons: %v", fitResult.Bucket, fitResult.Reasons)
	}
}

func TestEvaluateFitTool_InvalidInput(t *testing.T) {
	result := execute(t, tools.NewEvaluateFitTool(), `{"client_country": 12`)
	if result.Success {
		t.Error("truncated JSON should produce an error result")
	}
	if result.Error == "" {
		t.Error("error result should carry a message")
	}
}

func TestDetectSolicitationTool_Execute(t *testing.T) {
	result := execute(t, tools.NewDetectSolicitationTool(),
		`{"job_text": "Contact me directly on Telegram before applying."}`)
	if !result.Success {
		t.Fatalf("execute failed: %s", result.Error)
	}

	var solicitation models.SolicitationResult
	if err := json.Unmarshal(result.Data, &solicitation); err != nil {
		t.Fatalf("solicitation unmarshal: %v", err)
	}
	if !solicitation.Requested {
		t.Error("Telegram request should be flagged")
	}
}

func TestSanitizeContactsTool_Execute(t *testing.T) {
	result := execute(t, tools.NewSanitizeContactsTool(),
		`{"text": "Reach me at jane@example.com for details."}`)
	if !result.Success {
		t.Fatalf("execute failed: %s", result.Error)
	}

	var sanitized models.SanitizationResult
	if err := json.Unmarshal(result.Data, &sanitized); err != nil {
		t.Fatalf("sanitization unmarshal: %v", err)
	}
	if strings.Contains(sanitized.SanitizedText, "jane@example.com") {
		t.Errorf("email survived sanitization: %q", sanitized.SanitizedText)
	}
	if len(sanitized.FoundContacts) != 1 || sanitized.FoundContacts[0].Type != models.ContactTypeEmail {
		t.Errorf("FoundContacts = %+v, want one email", sanitized.FoundContacts)
	}
}
