package extract_test

import (
	"reflect"
	"testing"

	"github.com/gigfit/backend/extract"
)

const samplePosting = `Senior Go Developer for Payment Gateway Integration
Posted 2 hours ago
Summary
We are looking for an experienced Go developer to integrate our payment
gateway with several providers.

Fixed-price
$1,500 - $3,000
Expert level
Duration: 1 to 3 months

Mandatory skills
Go, PostgreSQL
gRPC

Nice-to-have skills
Docker

Deliverables
1. Integration service
2. Test suite

Screening questions
1. Describe a similar integration you completed.

About the client
Payment method verified
4.9 of 5 reviews
United States
San Francisco 6:23 AM
75% hire rate, 3 open jobs
$25K total spent
87 hires
38 jobs posted
$35.00 /hr avg hourly rate
`

// ── Full posting ───────────────────────────────────────────────────────────

func TestExtractPosting_SamplePosting(t *testing.T) {
	p := extract.ExtractPosting(samplePosting)

	if p.Title != "Senior Go Developer for Payment Gateway Integration" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.PostedTime != "2 hours ago" {
		t.Errorf("PostedTime = %q", p.PostedTime)
	}
	if p.PricingType != "fixed" {
		t.Errorf("PricingType = %q, want fixed", p.PricingType)
	}
	if p.BudgetRange != "$1,500 - $3,000" {
		t.Errorf("BudgetRange = %q", p.BudgetRange)
	}
	if p.Level != "expert" {
		t.Errorf("Level = %q, want expert", p.Level)
	}
	if p.DurationText != "1 to 3 months" {
		t.Errorf("DurationText = %q", p.DurationText)
	}

	wantSkills := []string{"Go", "PostgreSQL", "gRPC", "Docker"}
	if !reflect.DeepEqual(p.Skills, wantSkills) {
		t.Errorf("Skills = %v, want %v", p.Skills, wantSkills)
	}
	wantDeliverables := []string{"Integration service", "Test suite"}
	if !reflect.DeepEqual(p.Deliverables, wantDeliverables) {
		t.Errorf("Deliverables = %v, want %v", p.Deliverables, wantDeliverables)
	}
	if len(p.ScreeningQuestions) != 1 || p.ScreeningQuestions[0] != "Describe a similar integration you completed." {
		t.Errorf("ScreeningQuestions = %v", p.ScreeningQuestions)
	}

	if p.ClientCountry != "United States" {
		t.Errorf("ClientCountry = %q, want United States", p.ClientCountry)
	}
	if !p.PaymentVerified {
		t.Error("PaymentVerified should be true")
	}
	if p.ClientRating != 4.9 {
		t.Errorf("ClientRating = %v, want 4.9", p.ClientRating)
	}
	if p.HireRatePercent == nil || *p.HireRatePercent != 0.75 {
		t.Errorf("HireRatePercent = %v, want 0.75", p.HireRatePercent)
	}
	if p.JobsPostedCount != 38 {
		t.Errorf("JobsPostedCount = %d, want 38", p.JobsPostedCount)
	}
	if p.TotalSpentUSD != 25000 {
		t.Errorf("TotalSpentUSD = %v, want 25000 (K-suffixed amount)", p.TotalSpentUSD)
	}
	if p.TotalHiresCount != 87 {
		t.Errorf("TotalHiresCount = %d, want 87", p.TotalHiresCount)
	}
	if p.AvgHourlyRateUSD != 35 {
		t.Errorf("AvgHourlyRateUSD = %v, want 35", p.AvgHourlyRateUSD)
	}
}

// ── Country resolution ─────────────────────────────────────────────────────

func TestExtractPosting_LongestCountryNameWins(t *testing.T) {
	text := `United we build dashboards
Posted yesterday
About the client
Payment method verified
United States
`
	p := extract.ExtractPosting(text)
	if p.ClientCountry != "United States" {
		t.Errorf("ClientCountry = %q, want the full %q, never a truncated match", p.ClientCountry, "United States")
	}
}

func TestExtractPosting_CountryAbbreviations(t *testing.T) {
	cases := []struct {
		abbrev string
		want   string
	}{
		{"USA", "United States"},
		{"UK", "United Kingdom"},
		{"UAE", "United Arab Emirates"},
	}
	for _, c := range cases {
		text := "Some job\nPosted today\nAbout the client\nLocation: " + c.abbrev + "\n"
		p := extract.ExtractPosting(text)
		if p.ClientCountry != c.want {
			t.Errorf("abbreviation %s resolved to %q, want %q", c.abbrev, p.ClientCountry, c.want)
		}
	}
}

func TestExtractPosting_WorldwideMeansNoCountry(t *testing.T) {
	text := "Some job\nPosted today\nAbout the client\nWorldwide\n5:00 PM\n"
	p := extract.ExtractPosting(text)
	if p.ClientCountry != "" {
		t.Errorf("ClientCountry = %q, want empty for Worldwide", p.ClientCountry)
	}
}

// ── Degraded input ─────────────────────────────────────────────────────────

func TestExtractPosting_NoClientSection(t *testing.T) {
	p := extract.ExtractPosting("Build me a website\nPosted 3 days ago\nNeeds to be fast.")

	if p.Title != "Build me a website" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.ClientCountry != "" || p.PaymentVerified || p.ClientRating != 0 {
		t.Errorf("client fields should default when section is absent: %+v", p)
	}
	if p.HireRatePercent != nil {
		t.Error("HireRatePercent should be nil, not zero, when absent")
	}
	if len(p.Skills) != 0 {
		t.Errorf("Skills = %v, want empty", p.Skills)
	}
}

func TestExtractPosting_EmptyInput(t *testing.T) {
	p := extract.ExtractPosting("")
	if p.Title != "" || len(p.Skills) != 0 || p.ClientCountry != "" {
		t.Errorf("empty input should yield a fully defaulted posting: %+v", p)
	}
}

func TestExtractPosting_TitleFallsBackToFirstLine(t *testing.T) {
	p := extract.ExtractPosting("Logo designer needed\nNo markers here at all")
	if p.Title != "Logo designer needed" {
		t.Errorf("Title = %q, want first line fallback", p.Title)
	}
}

// ── Field rules ────────────────────────────────────────────────────────────

func TestExtractPosting_SingleBudgetWhenNoRange(t *testing.T) {
	p := extract.ExtractPosting("Fix my script\nPosted today\nBudget: $250\n")
	if p.BudgetRange != "$250" {
		t.Errorf("BudgetRange = %q, want $250", p.BudgetRange)
	}
}

func TestExtractPosting_BudgetRangeBeatsSingleAmount(t *testing.T) {
	p := extract.ExtractPosting("Job\nPosted today\nPays $100 bonus. Budget $500 - $900 total.\n")
	if p.BudgetRange != "$500 - $900" {
		t.Errorf("BudgetRange = %q, want the range to win", p.BudgetRange)
	}
}

func TestExtractPosting_ToolsFallbackForSkills(t *testing.T) {
	text := `Data entry work
Posted today
Tools
Excel, Google Sheets

About the client
Payment method verified
`
	p := extract.ExtractPosting(text)
	want := []string{"Excel", "Google Sheets"}
	if !reflect.DeepEqual(p.Skills, want) {
		t.Errorf("Skills = %v, want %v from Tools fallback", p.Skills, want)
	}
}

func TestExtractPosting_UnverifiedPayment(t *testing.T) {
	text := "Job\nPosted today\nAbout the client\nPayment method not verified\nGermany\n"
	p := extract.ExtractPosting(text)
	if p.PaymentVerified {
		t.Error("PaymentVerified should be false for 'not verified'")
	}
	if p.ClientCountry != "Germany" {
		t.Errorf("ClientCountry = %q, want Germany", p.ClientCountry)
	}
}

func TestExtractPosting_CommaFormattedSpend(t *testing.T) {
	text := "Job\nPosted today\nAbout the client\nPayment method verified\n$12,500 total spent\n"
	p := extract.ExtractPosting(text)
	if p.TotalSpentUSD != 12500 {
		t.Errorf("TotalSpentUSD = %v, want 12500", p.TotalSpentUSD)
	}
}
