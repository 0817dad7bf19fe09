package insights

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	s := Summarize(sampleMonthly)
	if s.TotalRevenue != 9650 || s.TotalOrders != 193 {
		t.Fatalf("unexpected totals %+v", s)
	}
	if math.Abs(s.AverageOrderValue-50) > 1e-9 {
		t.Fatalf("expected AOV 50, got %v", s.AverageOrderValue)
	}
	if empty := Summarize(nil); empty.AverageOrderValue != 0 {
		t.Fatalf("expected zero AOV without orders")
	}
}

func TestPercentChange(t *testing.T) {
	if got := PercentChange(200, 250); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
	if got := PercentChange(0, 100); got != 0 {
		t.Fatalf("expected 0 for zero baseline, got %v", got)
	}
}

func TestParseTimeRange(t *testing.T) {
	if r, err := ParseTimeRange(""); err != nil || r != Last30Days {
		t.Fatalf("expected default 30d, got %q (%v)", r, err)
	}
	if r, err := ParseTimeRange("YEAR"); err != nil || r.Label() != "This Year" {
		t.Fatalf("expected This Year, got %q (%v)", r, err)
	}
	if _, err := ParseTimeRange("1h"); err == nil {
		t.Fatalf("expected error for unknown range")
	}
}

func TestSampleReportIsCopy(t *testing.T) {
	r := SampleReport(Last7Days)
	r.Monthly[0].Revenue = 0
	if sampleMonthly[0].Revenue != 1200 {
		t.Fatalf("sample data mutated through report")
	}
}
