package qbo

import (
	"strings"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/providers"
	"github.com/fin-tools/finsight/pkg/services/reporttree"
)

// Section headers QBO uses for the two expense families, matched exactly
// after upper-casing.
var (
	expenseSections = []string{"EXPENSES", "OTHER EXPENSES"}
	cogsSections    = []string{"COST OF GOODS SOLD", "COST OF SALES", "COGS"}
)

// Adapter reads QBO-grammar report trees: Rows.Row nesting, Data leaves
// with ColData pairs and per-section Summary rows.
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

// OperatingExpenses is "Total Expenses", which QBO reports without cost of
// goods sold, so both figures coincide.
func (a *Adapter) OperatingExpenses(report *reporttree.Report) providers.ExpenseFigures {
	v := a.AccountValue(report, []string{"Total Expenses"})
	return providers.ExpenseFigures{Headline: v, Operating: v}
}

func (a *Adapter) ExpenseBreakdown(report *reporttree.Report) []domain.ExpenseLineItem {
	return a.sectionBreakdown(report, expenseSections)
}

func (a *Adapter) COGSBreakdown(report *reporttree.Report) []domain.ExpenseLineItem {
	return a.sectionBreakdown(report, cogsSections)
}

func (a *Adapter) sectionBreakdown(report *reporttree.Report, headers []string) []domain.ExpenseLineItem {
	if report == nil {
		return nil
	}
	sections := reporttree.FindAll(
		report.Roots,
		reporttree.KindIs(reporttree.KindSection, headerMatch(headers)),
		reporttree.DefaultMaxDepth,
	)

	var items []domain.ExpenseLineItem
	for _, section := range sections {
		leaves := reporttree.FindAll(
			section.Children,
			func(n *reporttree.Node) bool { return n.Kind == reporttree.KindData },
			reporttree.DefaultMaxDepth,
		)
		for _, leaf := range leaves {
			if providers.IsTotalRow(leaf.Title) {
				continue
			}
			value, ok := providers.AbsAmount(leaf.LastCell())
			if !ok {
				continue
			}
			items = append(items, domain.ExpenseLineItem{
				Name:     leaf.Title,
				Value:    value,
				Category: a.categorizer.Classify(leaf.Title),
			})
		}
	}
	return providers.RankLineItems(items)
}

func headerMatch(headers []string) reporttree.Match {
	return func(n *reporttree.Node) bool {
		title := strings.ToUpper(strings.TrimSpace(n.Title))
		for _, h := range headers {
			if title == h {
				return true
			}
		}
		return false
	}
}
