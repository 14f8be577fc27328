package xero

import (
	"encoding/json"

	"github.com/fin-tools/finsight/pkg/services/reporttree"
)

// Wire shapes of the Xero reporting API: a list of report objects, rows
// tagged with a RowType, sections nesting one extra level of rows.
type payload struct {
	Reports []wireReport `json:"Reports"`
}

type wireReport struct {
	ReportID   string  `json:"ReportID"`
	ReportName string  `json:"ReportName"`
	Rows       rowList `json:"Rows"`
}

type wireRow struct {
	RowType string     `json:"RowType"`
	Title   string     `json:"Title"`
	Cells   []wireCell `json:"Cells"`
	Rows    rowList    `json:"Rows"`
}

type wireCell struct {
	Value string `json:"Value"`
}

// rowList absorbs both encodings Xero emits: an array of rows or a lone row
// object.
type rowList []wireRow

func (rl *rowList) UnmarshalJSON(data []byte) error {
	var many []wireRow
	if err := json.Unmarshal(data, &many); err == nil {
		*rl = many
		return nil
	}
	var one wireRow
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*rl = rowList{one}
	return nil
}

// Decode parses a raw Xero report payload into the provider-agnostic tree.
func Decode(data []byte) (*reporttree.Report, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	report := &reporttree.Report{}
	for _, wr := range p.Reports {
		root := &reporttree.Node{
			Kind:  reporttree.KindSection,
			Title: wr.ReportName,
		}
		for _, row := range wr.Rows {
			root.Children = append(root.Children, normalizeRow(row))
		}
		report.Roots = append(report.Roots, root)
	}
	return report, nil
}

func normalizeRow(row wireRow) *reporttree.Node {
	node := &reporttree.Node{
		Kind:  rowKind(row.RowType),
		Title: row.Title,
	}
	for _, c := range row.Cells {
		node.Cells = append(node.Cells, reporttree.Cell{Value: c.Value})
	}
	// Plain and summary rows carry their name in the first cell.
	if node.Title == "" && len(node.Cells) > 0 {
		node.Title = node.Cells[0].Value
	}
	for _, child := range row.Rows {
		node.Children = append(node.Children, normalizeRow(child))
	}
	return node
}

func rowKind(rowType string) reporttree.Kind {
	switch rowType {
	case "Header":
		return reporttree.KindHeader
	case "Section":
		return reporttree.KindSection
	case "SummaryRow":
		return reporttree.KindSummary
	default:
		return reporttree.KindRow
	}
}
