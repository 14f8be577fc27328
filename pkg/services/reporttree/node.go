package reporttree

// Kind tags a node with the provider's structural role for the row.
type Kind string

const (
	KindHeader  Kind = "Header"
	KindSummary Kind = "Summary"
	KindData    Kind = "Data"
	KindSection Kind = "Section"
	KindRow     Kind = "Row"
)

// Cell is one name/value pair of a row. Values arrive as strings even when
// they are numeric ("1,234.56").
type Cell struct {
	Name  string
	Value string
}

// Node is a provider-agnostic report tree node. Providers normalize their
// wire shapes into this structure once per request.
type Node struct {
	Kind     Kind
	Title    string
	Cells    []Cell
	Children []*Node
}

// Report is a normalized provider report: one or more root nodes.
type Report struct {
	Roots []*Node
}

// FirstCell returns the value of the first cell, or "" for a cell-less node.
func (n *Node) FirstCell() string {
	if len(n.Cells) == 0 {
		return ""
	}
	return n.Cells[0].Value
}

// LastCell returns the value of the last cell, or "" for a cell-less node.
func (n *Node) LastCell() string {
	if len(n.Cells) == 0 {
		return ""
	}
	return n.Cells[len(n.Cells)-1].Value
}
