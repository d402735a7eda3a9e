package output

import (
	"testing"

	"github.com/rpgo/tco-parity/internal/domain"
)

func TestSummarizeDefaultScenario(t *testing.T) {
	report := buildTestReport()
	s := Summarize(&report.Comparisons[0])
	if s.Cheaper != domain.Electric {
		t.Fatalf("expected electric cheaper at horizon, got %s", s.Cheaper)
	}
	if s.Savings.StringFixed(2) != "6750.00" {
		t.Fatalf("savings = %s", s.Savings)
	}
	// 6750 / 55000
	if s.SavingsPercent.StringFixed(2) != "12.27" {
		t.Fatalf("savings percent = %s", s.SavingsPercent)
	}
	if !s.BreakEven.Reached || s.BreakEven.Year != 1 {
		t.Fatalf("unexpected break-even %+v", s.BreakEven)
	}
}

func TestAnalyzeComparisons_SelectsLargestElectricSaving(t *testing.T) {
	rec := AnalyzeComparisons(buildTestReport())
	if rec.ScenarioName != "Cheap EV" {
		t.Fatalf("expected Cheap EV, got %q", rec.ScenarioName)
	}
	// 42500 - 24125
	if rec.Savings.StringFixed(2) != "18375.00" {
		t.Fatalf("savings = %s", rec.Savings)
	}
}

func TestAnalyzeComparisons_DieselEverywhere(t *testing.T) {
	report := buildTestReport()
	for i := range report.Comparisons {
		report.Comparisons[i].CheaperAtHorizon = domain.Diesel
	}
	if rec := AnalyzeComparisons(report); rec.ScenarioName != "" {
		t.Fatalf("expected empty recommendation, got %q", rec.ScenarioName)
	}
}
