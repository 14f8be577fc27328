package insights

import (
	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/providers"
	"github.com/fin-tools/finsight/pkg/services/reporttree"
)

// Candidate account titles per unified figure, both provider vocabularies,
// matched exactly in candidate order.
var (
	revenueTitles = []string{"Total Income", "Total Trading Income", "Total Revenue"}
	cogsTitles    = []string{"Total Cost of Goods Sold", "Total Cost of Sales"}
	profitTitles  = []string{"Net Profit", "Net Income", "PROFIT"}
	cashTitles    = []string{"Total Bank", "Total Cash and Cash Equivalent", "Total Cash and Cash Equivalents"}
)

// ExtractReport normalizes a P&L-shaped and a Balance-Sheet-shaped report
// into the unified financial model. Either report may be nil; missing
// figures stay zero.
func ExtractReport(a providers.Adapter, pl, bs *reporttree.Report) domain.NormalizedReport {
	var r domain.NormalizedReport
	if pl != nil {
		fig := a.OperatingExpenses(pl)
		r.Revenue = a.AccountValue(pl, revenueTitles)
		r.Expenses = fig.Headline
		r.OperatingExpenses = fig.Operating
		r.CostOfGoodsSold = a.AccountValue(pl, cogsTitles)
		r.NetProfit = a.AccountValue(pl, profitTitles)
		if r.NetProfit == 0 {
			// No explicit profit row; derive it.
			r.NetProfit = r.Revenue - r.OperatingExpenses - r.CostOfGoodsSold
		}
	}
	if bs != nil {
		r.CashBalance = a.AccountValue(bs, cashTitles)
	}
	return r
}

// BuildKPIs derives the dashboard KPI set from a normalized report.
// lastMonthExpenses comes from a secondary prior-month extraction and may
// legitimately be zero, in which case the runway is not computable.
func BuildKPIs(r domain.NormalizedReport, lastMonthExpenses float64) domain.KPISet {
	kpis := domain.KPISet{
		Revenue:         r.Revenue,
		Expenses:        r.Expenses,
		CostOfGoodsSold: r.CostOfGoodsSold,
		NetProfit:       r.NetProfit,
		CashBalance:     r.CashBalance,
	}
	if r.Revenue > 0 {
		kpis.NetMargin = r.NetProfit / r.Revenue * 100
	}
	if lastMonthExpenses > 0 {
		runway := abs(r.CashBalance) / lastMonthExpenses
		kpis.CashRunway = &runway
	}
	return kpis
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
