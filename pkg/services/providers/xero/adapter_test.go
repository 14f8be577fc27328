package xero

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profitAndLossPayload = `{
  "Reports": [
    {
      "ReportID": "ProfitAndLoss",
      "ReportName": "Profit and Loss",
      "Rows": [
        {"RowType": "Header", "Cells": [{"Value": ""}, {"Value": "30 Jun 2025"}]},
        {
          "RowType": "Section",
          "Title": "Income",
          "Rows": [
            {"RowType": "Row", "Cells": [{"Value": "Sales"}, {"Value": "2,000.00"}]},
            {"RowType": "SummaryRow", "Cells": [{"Value": "Total Income"}, {"Value": "2,000.00"}]}
          ]
        },
        {
          "RowType": "Section",
          "Title": "Less Cost of Sales",
          "Rows": [
            {"RowType": "Row", "Cells": [{"Value": "Materials"}, {"Value": "100.00"}]},
            {"RowType": "SummaryRow", "Cells": [{"Value": "Total Cost of Sales"}, {"Value": "100.00"}]}
          ]
        },
        {
          "RowType": "Section",
          "Title": "Less Operating Expenses",
          "Rows": [
            {"RowType": "Row", "Cells": [{"Value": "Rent"}, {"Value": "300.00"}]},
            {"RowType": "Row", "Cells": [{"Value": "Subcontractor Fees"}, {"Value": "150.00"}]},
            {"RowType": "Row", "Cells": [{"Value": "Wages"}, {"Value": "50.00"}]},
            {"RowType": "Row", "Cells": [{"Value": "Pending Adjustment"}, {"Value": "n/a"}]},
            {"RowType": "SummaryRow", "Cells": [{"Value": "Total Operating Expenses"}, {"Value": "500.00"}]}
          ]
        },
        {"RowType": "SummaryRow", "Cells": [{"Value": "Net Profit"}, {"Value": "1,400.00"}]}
      ]
    }
  ]
}`

const balanceSheetPayload = `{
  "Reports": [
    {
      "ReportID": "BalanceSheet",
      "ReportName": "Balance Sheet",
      "Rows": [
        {
          "RowType": "Section",
          "Title": "Bank",
          "Rows": {"RowType": "SummaryRow", "Cells": [{"Value": "Total Bank"}, {"Value": "12,500.00"}]}
        }
      ]
    }
  ]
}`

func TestDecode(t *testing.T) {
	report, err := Decode([]byte(profitAndLossPayload))
	require.NoError(t, err)
	require.Len(t, report.Roots, 1)
	assert.Equal(t, "Profit and Loss", report.Roots[0].Title)
	require.Len(t, report.Roots[0].Children, 5)
}

func TestDecode_SingleRowObject(t *testing.T) {
	// Single-row sections arrive as a lone object rather than an array.
	report, err := Decode([]byte(balanceSheetPayload))
	require.NoError(t, err)
	require.Len(t, report.Roots, 1)
	section := report.Roots[0].Children[0]
	require.Len(t, section.Children, 1)
	assert.Equal(t, "Total Bank", section.Children[0].Title)
}

func TestAdapter_OperatingExpenses(t *testing.T) {
	report, err := Decode([]byte(profitAndLossPayload))
	require.NoError(t, err)

	a := NewAdapter(nil)

	// The headline combines the operating total with the separately
	// reported cost of sales; the operating figure excludes it.
	fig := a.OperatingExpenses(report)
	assert.Equal(t, 600.0, fig.Headline)
	assert.Equal(t, 500.0, fig.Operating)
}

func TestAdapter_AccountValue(t *testing.T) {
	report, err := Decode([]byte(profitAndLossPayload))
	require.NoError(t, err)

	a := NewAdapter(nil)

	assert.Equal(t, 2000.0, a.AccountValue(report, []string{"Total Income"}))
	assert.Equal(t, 1400.0, a.AccountValue(report, []string{"Net Profit"}))
	assert.Zero(t, a.AccountValue(report, []string{"No Such Account"}))
	assert.Zero(t, a.AccountValue(nil, []string{"Total Income"}))
}

func TestAdapter_ExpenseBreakdown(t *testing.T) {
	report, err := Decode([]byte(profitAndLossPayload))
	require.NoError(t, err)

	a := NewAdapter(nil)
	items := a.ExpenseBreakdown(report)

	// The summary row and the non-numeric row are excluded.
	require.Len(t, items, 3)
	assert.Equal(t, "Rent", items[0].Name)
	assert.Equal(t, 300.0, items[0].Value)
	assert.Equal(t, "subcontractor", items[1].Category)

	var sum float64
	for _, it := range items {
		sum += it.Percentage
	}
	assert.InDelta(t, 100, sum, 0.01)
}

func TestAdapter_COGSBreakdown(t *testing.T) {
	report, err := Decode([]byte(profitAndLossPayload))
	require.NoError(t, err)

	a := NewAdapter(nil)
	items := a.COGSBreakdown(report)
	require.Len(t, items, 1)
	assert.Equal(t, "Materials", items[0].Name)
	assert.Equal(t, 100.0, items[0].Value)
}

func TestAdapter_MissingSections(t *testing.T) {
	report, err := Decode([]byte(`{"Reports": []}`))
	require.NoError(t, err)

	a := NewAdapter(nil)
	assert.Zero(t, a.OperatingExpenses(report).Headline)
	assert.Empty(t, a.ExpenseBreakdown(report))
	assert.Empty(t, a.COGSBreakdown(report))
}
