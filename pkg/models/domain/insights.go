package domain

// NormalizedReport is the provider-agnostic view of a single reporting
// window. Expenses is the provider's headline expense figure;
// OperatingExpenses strips cost of sales so it can be summed with
// CostOfGoodsSold without double counting. Missing sections stay zero.
type NormalizedReport struct {
	Revenue           float64
	Expenses          float64
	OperatingExpenses float64
	CostOfGoodsSold   float64
	NetProfit         float64
	CashBalance       float64
}

// ExpenseLineItem is one ranked entry of an expense or COGS breakdown.
// Percentage is relative to the breakdown total; for a non-empty breakdown
// with a positive total the percentages sum to 100 up to rounding.
type ExpenseLineItem struct {
	Name       string
	Value      float64
	Percentage float64
	Category   string
}

// KPISet is the unified numeric summary shown on the dashboard.
// CashRunway is nil when it cannot be computed (no expense history).
type KPISet struct {
	Revenue         float64
	Expenses        float64
	CostOfGoodsSold float64
	NetProfit       float64
	NetMargin       float64
	CashBalance     float64
	CashRunway      *float64
}

// TrendPoint is one calendar month of the trend series. A point exists for
// every requested month whether or not the underlying fetch succeeded;
// failed months carry zero values.
type TrendPoint struct {
	Month           string
	Revenue         float64
	Expenses        float64
	CostOfGoodsSold float64
	Breakdown       []ExpenseLineItem
}

// CashflowPoint is one calendar month of the cash-movement series.
type CashflowPoint struct {
	Month   string
	CashIn  float64
	CashOut float64
	Net     float64
}

// Insights is the assembled dashboard result for one request. Err carries
// the degrade-gracefully annotation when upstream fetches failed; the rest
// of the structure is complete (zero-valued) regardless.
type Insights struct {
	KPIs      KPISet
	Breakdown []ExpenseLineItem
	Trend     []TrendPoint
	Window    TimeWindow
	Timeframe Timeframe
	Err       string
}
