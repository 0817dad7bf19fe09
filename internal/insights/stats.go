// Package insights computes the influencer statistics views.
package insights

import (
	"fmt"
	"strings"
)

// TimeRange selects the statistics window.
type TimeRange string

const (
	Last7Days  TimeRange = "7d"
	Last30Days TimeRange = "30d"
	Last90Days TimeRange = "90d"
	ThisYear   TimeRange = "year"
)

var rangeLabels = map[TimeRange]string{
	Last7Days:  "Last 7 Days",
	Last30Days: "Last 30 Days",
	Last90Days: "Last 90 Days",
	ThisYear:   "This Year",
}

// TimeRanges lists the selectable ranges in display order.
func TimeRanges() []TimeRange {
	return []TimeRange{Last7Days, Last30Days, Last90Days, ThisYear}
}

// Label is the human-readable name of r.
func (r TimeRange) Label() string {
	return rangeLabels[r]
}

// ParseTimeRange accepts 7d, 30d, 90d or year. Empty defaults to 30d.
func ParseTimeRange(s string) (TimeRange, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Last30Days, nil
	}
	r := TimeRange(s)
	if _, ok := rangeLabels[r]; !ok {
		return "", fmt.Errorf("unknown time range %q", s)
	}
	return r, nil
}

// MonthlyPoint is one month of revenue (dollars) and order count.
type MonthlyPoint struct {
	Month   string
	Revenue float64
	Orders  int
}

// TopProduct ranks a product by attributed sales.
type TopProduct struct {
	ID      int
	Name    string
	Sales   int
	Revenue float64
}

// Engagement summarises chat activity.
type Engagement struct {
	TotalChats      int
	AvgResponseTime string
	ConversionRate  string
	ActiveUsers     int
}

// Summary aggregates monthly points.
type Summary struct {
	TotalRevenue      float64
	TotalOrders       int
	AverageOrderValue float64
}

// Summarize totals revenue and orders. AverageOrderValue is 0 without orders.
func Summarize(points []MonthlyPoint) Summary {
	var s Summary
	for _, p := range points {
		s.TotalRevenue += p.Revenue
		s.TotalOrders += p.Orders
	}
	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalRevenue / float64(s.TotalOrders)
	}
	return s
}

// PercentChange is the relative change from prev to cur in percent; 0 when
// prev is 0.
func PercentChange(prev, cur float64) float64 {
	if prev == 0 {
		return 0
	}
	return (cur - prev) / prev * 100
}

// Report bundles the statistics screen data.
type Report struct {
	Range       TimeRange
	Monthly     []MonthlyPoint
	TopProducts []TopProduct
	Engagement  Engagement
	Summary     Summary
}

// SampleReport returns the demonstration statistics for r. The backend has
// no statistics endpoint yet, so every range shows the same figures.
func SampleReport(r TimeRange) Report {
	monthly := append([]MonthlyPoint(nil), sampleMonthly...)
	return Report{
		Range:       r,
		Monthly:     monthly,
		TopProducts: append([]TopProduct(nil), sampleTopProducts...),
		Engagement:  sampleEngagement,
		Summary:     Summarize(monthly),
	}
}

var sampleMonthly = []MonthlyPoint{
	{Month: "Jan", Revenue: 1200, Orders: 24},
	{Month: "Feb", Revenue: 1400, Orders: 28},
	{Month: "Mar", Revenue: 1100, Orders: 22},
	{Month: "Apr", Revenue: 1800, Orders: 36},
	{Month: "May", Revenue: 2200, Orders: 44},
	{Month: "Jun", Revenue: 1950, Orders: 39},
}

var sampleTopProducts = []TopProduct{
	{ID: 1, Name: "Wireless Headphones", Sales: 42, Revenue: 3360},
	{ID: 2, Name: "Smart Watch", Sales: 38, Revenue: 7600},
	{ID: 3, Name: "Bluetooth Speaker", Sales: 35, Revenue: 2450},
	{ID: 4, Name: "Phone Case", Sales: 29, Revenue: 580},
	{ID: 5, Name: "Power Bank", Sales: 24, Revenue: 960},
}

var sampleEngagement = Engagement{
	TotalChats:      247,
	AvgResponseTime: "2.3 min",
	ConversionRate:  "12.4%",
	ActiveUsers:     185,
}
