package adapters

import (
	"github.com/fin-tools/finsight/pkg/models/api"
	"github.com/fin-tools/finsight/pkg/models/domain"
)

const dateFormat = "2006-01-02"

func MapInsightsDomainToApi(in *domain.Insights) api.InsightsResponse {
	return api.InsightsResponse{
		KPIs:             MapKPISetDomainToApi(in.KPIs),
		ExpenseBreakdown: MapLineItemsDomainToApi(in.Breakdown),
		TrendData:        MapTrendPointsDomainToApi(in.Trend),
		Timeframe:        MapTimeframeDomainToApi(in.Timeframe, in.Window),
		Error:            in.Err,
	}
}

func MapKPISetDomainToApi(k domain.KPISet) api.KPISet {
	return api.KPISet{
		Revenue:         k.Revenue,
		Expenses:        k.Expenses,
		CostOfGoodsSold: k.CostOfGoodsSold,
		NetProfit:       k.NetProfit,
		NetMargin:       k.NetMargin,
		CashBalance:     k.CashBalance,
		CashRunway:      k.CashRunway,
	}
}

func MapLineItemsDomainToApi(items []domain.ExpenseLineItem) []api.ExpenseLineItem {
	out := make([]api.ExpenseLineItem, 0, len(items))
	for _, it := range items {
		out = append(out, api.ExpenseLineItem{
			Name:       it.Name,
			Value:      it.Value,
			Percentage: it.Percentage,
			Category:   it.Category,
		})
	}
	return out
}

func MapTrendPointsDomainToApi(points []domain.TrendPoint) []api.TrendPoint {
	out := make([]api.TrendPoint, 0, len(points))
	for _, p := range points {
		out = append(out, api.TrendPoint{
			Month:            p.Month,
			Revenue:          p.Revenue,
			Expenses:         p.Expenses,
			CostOfGoodsSold:  p.CostOfGoodsSold,
			ExpenseBreakdown: MapLineItemsDomainToApi(p.Breakdown),
		})
	}
	return out
}

func MapCashflowPointsDomainToApi(points []domain.CashflowPoint) []api.CashflowPoint {
	out := make([]api.CashflowPoint, 0, len(points))
	for _, p := range points {
		out = append(out, api.CashflowPoint{
			Month:   p.Month,
			CashIn:  p.CashIn,
			CashOut: p.CashOut,
			Net:     p.Net,
		})
	}
	return out
}

func MapTimeframeDomainToApi(tf domain.Timeframe, window domain.TimeWindow) api.Timeframe {
	return api.Timeframe{
		From: window.Start.Format(dateFormat),
		To:   window.End.Format(dateFormat),
		Type: string(tf),
	}
}

// ZeroInsights builds the structurally complete zero-valued response used
// when no provider is linked or an upstream failure was caught at the fetch
// boundary. The trend carries one zero point per requested month so the
// presentation layer always sees a full-length series.
func ZeroInsights(tf domain.Timeframe, window domain.TimeWindow, errMsg string) api.InsightsResponse {
	months := window.Months()
	trend := make([]api.TrendPoint, 0, len(months))
	for _, m := range months {
		trend = append(trend, api.TrendPoint{Month: m.Label()})
	}
	return api.InsightsResponse{
		KPIs:             api.KPISet{},
		ExpenseBreakdown: []api.ExpenseLineItem{},
		TrendData:        trend,
		Timeframe:        MapTimeframeDomainToApi(tf, window),
		Error:            errMsg,
	}
}
