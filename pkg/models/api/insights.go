package api

type KPISet struct {
	Revenue         float64  `json:"revenue"`
	Expenses        float64  `json:"expenses"`
	CostOfGoodsSold float64  `json:"costOfGoodsSold,omitempty"`
	NetProfit       float64  `json:"netProfit"`
	NetMargin       float64  `json:"netMargin"`
	CashBalance     float64  `json:"cashBalance"`
	CashRunway      *float64 `json:"cashRunway"`
}

type ExpenseLineItem struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Category   string  `json:"category,omitempty"`
}

type TrendPoint struct {
	Month            string            `json:"month"`
	Revenue          float64           `json:"revenue"`
	Expenses         float64           `json:"expenses"`
	CostOfGoodsSold  float64           `json:"costOfGoodsSold,omitempty"`
	ExpenseBreakdown []ExpenseLineItem `json:"expenseBreakdown,omitempty"`
}

type Timeframe struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// InsightsResponse is the full dashboard payload. A request that could not
// reach the accounting provider still yields a structurally complete
// zero-valued response with Error describing what went wrong.
type InsightsResponse struct {
	KPIs             KPISet            `json:"kpis"`
	ExpenseBreakdown []ExpenseLineItem `json:"expenseBreakdown"`
	TrendData        []TrendPoint      `json:"trendData"`
	Timeframe        Timeframe         `json:"timeframe"`
	Error            string            `json:"error,omitempty"`
}

type CashflowPoint struct {
	Month   string  `json:"month"`
	CashIn  float64 `json:"cashIn"`
	CashOut float64 `json:"cashOut"`
	Net     float64 `json:"net"`
}

type CashflowResponse struct {
	Points    []CashflowPoint `json:"points"`
	Timeframe Timeframe       `json:"timeframe"`
	Error     string          `json:"error,omitempty"`
}

type TrendResponse struct {
	TrendData []TrendPoint `json:"trendData"`
	Timeframe Timeframe    `json:"timeframe"`
	Error     string       `json:"error,omitempty"`
}
