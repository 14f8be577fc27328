package providers

import (
	"context"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/reporttree"
)

// ExpenseFigures carries a provider's expense totals. Headline is the figure
// the provider presents as its expense total; Operating strips cost of sales
// so derived arithmetic counts each outflow exactly once.
type ExpenseFigures struct {
	Headline  float64
	Operating float64
}

// Adapter maps one provider's report vocabulary onto the unified financial
// model.
type Adapter interface {
	// AccountValue finds the first node whose title equals any candidate,
	// in candidate order, and returns its numeric value. Missing accounts
	// are 0.
	AccountValue(report *reporttree.Report, titles []string) float64
	OperatingExpenses(report *reporttree.Report) ExpenseFigures
	ExpenseBreakdown(report *reporttree.Report) []domain.ExpenseLineItem
	COGSBreakdown(report *reporttree.Report) []domain.ExpenseLineItem
}

// ReportFetcher retrieves already-authorized provider reports for a window.
// Implementations return a *RateLimitedError on a 429 and an
// *AuthExpiredError on a 401.
type ReportFetcher interface {
	FetchProfitAndLoss(ctx context.Context, window domain.TimeWindow) (*reporttree.Report, error)
	FetchBalanceSheet(ctx context.Context, window domain.TimeWindow) (*reporttree.Report, error)
}

// Connection is one linked accounting provider.
type Connection struct {
	Name    string
	Fetcher ReportFetcher
	Adapter Adapter
}
