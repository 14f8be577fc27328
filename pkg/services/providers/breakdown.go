package providers

import (
	"sort"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/reporttree"
)

// ExtractAccountValue resolves candidate titles in priority order. Titles
// match exactly (case-insensitive), so a "Gross Profit" row never satisfies
// a "Net Profit" candidate. Matches without a parseable cell are skipped;
// no usable match yields 0.
func ExtractAccountValue(report *reporttree.Report, titles []string) float64 {
	if report == nil {
		return 0
	}
	for _, title := range titles {
		nodes := reporttree.FindAll(report.Roots, reporttree.TitleEquals(title), reporttree.DefaultMaxDepth)
		for _, node := range nodes {
			if v, ok := AbsAmount(node.LastCell()); ok {
				return v
			}
		}
	}
	return 0
}

// RankLineItems orders items by descending value and assigns each a
// percentage of the total. Zero-total breakdowns keep zero percentages.
func RankLineItems(items []domain.ExpenseLineItem) []domain.ExpenseLineItem {
	if len(items) == 0 {
		return nil
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Value > items[j].Value
	})

	var total float64
	for _, it := range items {
		total += it.Value
	}
	if total <= 0 {
		return items
	}
	for i := range items {
		items[i].Percentage = items[i].Value / total * 100
	}
	return items
}
