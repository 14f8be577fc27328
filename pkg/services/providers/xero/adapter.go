package xero

import (
	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/providers"
	"github.com/fin-tools/finsight/pkg/services/reporttree"
)

const (
	operatingExpensesSection = "less operating expenses"
	operatingExpensesTotal   = "total operating expenses"
	costOfSalesSection       = "less cost of sales"
	costOfSalesTotal         = "total cost of sales"
)

// Adapter reads Xero-grammar report trees: sections carry a Title, summary
// rows name themselves in their first cell, and cost of sales is reported
// apart from operating expenses.
type Adapter struct {
	categorizer *providers.Categorizer
}

func NewAdapter(c *providers.Categorizer) *Adapter {
	if c == nil {
		c = providers.DefaultCategorizer()
	}
	return &Adapter{categorizer: c}
}

func (a *Adapter) AccountValue(report *reporttree.Report, titles []string) float64 {
	return providers.ExtractAccountValue(report, titles)
}

// OperatingExpenses combines the two summaries Xero reports apart: the
// headline figure is operating expenses plus cost of sales.
func (a *Adapter) OperatingExpenses(report *reporttree.Report) providers.ExpenseFigures {
	opex := a.AccountValue(report, []string{operatingExpensesTotal})
	return providers.ExpenseFigures{
		Headline:  opex + a.AccountValue(report, []string{costOfSalesTotal}),
		Operating: opex,
	}
}

func (a *Adapter) ExpenseBreakdown(report *reporttree.Report) []domain.ExpenseLineItem {
	return a.sectionBreakdown(report, operatingExpensesSection)
}

func (a *Adapter) COGSBreakdown(report *reporttree.Report) []domain.ExpenseLineItem {
	return a.sectionBreakdown(report, costOfSalesSection)
}

func (a *Adapter) sectionBreakdown(report *reporttree.Report, sectionTitle string) []domain.ExpenseLineItem {
	if report == nil {
		return nil
	}
	section := reporttree.FindFirst(
		report.Roots,
		reporttree.KindIs(reporttree.KindSection, reporttree.TitleContains(sectionTitle)),
		reporttree.DefaultMaxDepth,
	)
	if section == nil {
		return nil
	}

	var items []domain.ExpenseLineItem
	for _, row := range section.Children {
		if row.Kind != reporttree.KindRow || providers.IsTotalRow(row.Title) {
			continue
		}
		value, ok := providers.AbsAmount(row.LastCell())
		if !ok {
			continue
		}
		items = append(items, domain.ExpenseLineItem{
			Name:     row.Title,
			Value:    value,
			Category: a.categorizer.Classify(row.Title),
		})
	}
	return providers.RankLineItems(items)
}
