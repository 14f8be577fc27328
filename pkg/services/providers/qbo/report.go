package qbo

import (
	"encoding/json"

	"github.com/fin-tools/finsight/pkg/services/reporttree"
)

// Wire shapes of the QuickBooks Online reporting API. Children live under a
// `Rows.Row` wrapper object; leaf rows are tagged `type: "Data"` and carry
// their cells in ColData; sections carry a Header and a Summary row.
type payload struct {
	Header  wireHeader  `json:"Header"`
	Rows    rowsWrapper `json:"Rows"`
	Columns struct {
		Column []struct {
			ColTitle string `json:"ColTitle"`
		} `json:"Column"`
	} `json:"Columns"`
}

type wireHeader struct {
	ReportName string `json:"ReportName"`
	StartDate  string `json:"StartPeriod"`
	EndDate    string `json:"EndPeriod"`
}

type wireRow struct {
	Type    string      `json:"type"`
	Group   string      `json:"group"`
	ColData []wireCol   `json:"ColData"`
	Header  *wireRowHdr `json:"Header"`
	Summary *wireRowHdr `json:"Summary"`
	Rows    rowsWrapper `json:"Rows"`
}

type wireRowHdr struct {
	ColData []wireCol `json:"ColData"`
}

type wireCol struct {
	Value string `json:"value"`
	ID    string `json:"id"`
}

// rowsWrapper absorbs the `{"Row": [...]}` object wrapper, including the
// single-object variant some report shapes emit.
type rowsWrapper struct {
	Row []wireRow
}

func (rw *rowsWrapper) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Row json.RawMessage `json:"Row"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if len(wrapped.Row) == 0 {
		return nil
	}
	var many []wireRow
	if err := json.Unmarshal(wrapped.Row, &many); err == nil {
		rw.Row = many
		return nil
	}
	var one wireRow
	if err := json.Unmarshal(wrapped.Row, &one); err != nil {
		return err
	}
	rw.Row = []wireRow{one}
	return nil
}

// Decode parses a raw QBO report payload into the provider-agnostic tree.
func Decode(data []byte) (*reporttree.Report, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	root := &reporttree.Node{
		Kind:  reporttree.KindSection,
		Title: p.Header.ReportName,
	}
	for _, row := range p.Rows.Row {
		root.Children = append(root.Children, normalizeRow(row))
	}
	return &reporttree.Report{Roots: []*reporttree.Node{root}}, nil
}

func normalizeRow(row wireRow) *reporttree.Node {
	node := &reporttree.Node{Kind: rowKind(row)}

	switch {
	case row.Header != nil:
		node.Title = firstValue(row.Header.ColData)
	case len(row.ColData) > 0:
		node.Title = row.ColData[0].Value
	}
	for _, col := range row.ColData {
		node.Cells = append(node.Cells, reporttree.Cell{Value: col.Value})
	}

	for _, child := range row.Rows.Row {
		node.Children = append(node.Children, normalizeRow(child))
	}

	// The section summary becomes a child summary node.
	if row.Summary != nil {
		summary := &reporttree.Node{
			Kind:  reporttree.KindSummary,
			Title: firstValue(row.Summary.ColData),
		}
		for _, col := range row.Summary.ColData {
			summary.Cells = append(summary.Cells, reporttree.Cell{Value: col.Value})
		}
		node.Children = append(node.Children, summary)
	}

	return node
}

func rowKind(row wireRow) reporttree.Kind {
	switch row.Type {
	case "Section":
		return reporttree.KindSection
	case "Data":
		return reporttree.KindData
	default:
		if row.Header != nil || len(row.Rows.Row) > 0 {
			return reporttree.KindSection
		}
		return reporttree.KindRow
	}
}

func firstValue(cols []wireCol) string {
	if len(cols) == 0 {
		return ""
	}
	return cols[0].Value
}
