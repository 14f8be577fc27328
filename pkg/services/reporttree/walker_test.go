package reporttree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() []*Node {
	return []*Node{
		{
			Kind:  KindSection,
			Title: "Profit and Loss",
			Children: []*Node{
				{
					Kind:  KindSection,
					Title: "Income",
					Children: []*Node{
						{Kind: KindRow, Title: "Sales", Cells: []Cell{{Value: "Sales"}, {Value: "1,000.00"}}},
						{Kind: KindSummary, Title: "Total Income", Cells: []Cell{{Value: "Total Income"}, {Value: "1,000.00"}}},
					},
				},
				{
					Kind:  KindSection,
					Title: "Less Operating Expenses",
					Children: []*Node{
						{Kind: KindRow, Title: "Rent"},
						{Kind: KindRow, Title: "Wages"},
						{Kind: KindSummary, Title: "Total Operating Expenses"},
					},
				},
			},
		},
	}
}

func TestFindFirst(t *testing.T) {
	roots := sampleTree()

	t.Run("case-insensitive substring match", func(t *testing.T) {
		node := FindFirst(roots, TitleContains("total income"), 0)
		require.NotNil(t, node)
		assert.Equal(t, "Total Income", node.Title)
	})

	t.Run("first match in document order", func(t *testing.T) {
		node := FindFirst(roots, TitleContains("expenses"), 0)
		require.NotNil(t, node)
		assert.Equal(t, "Less Operating Expenses", node.Title)
	})

	t.Run("kind restriction", func(t *testing.T) {
		node := FindFirst(roots, KindIs(KindSummary, TitleContains("expenses")), 0)
		require.NotNil(t, node)
		assert.Equal(t, "Total Operating Expenses", node.Title)
	})

	t.Run("not found is nil, not an error", func(t *testing.T) {
		assert.Nil(t, FindFirst(roots, TitleContains("no such section"), 0))
	})

	t.Run("nil roots", func(t *testing.T) {
		assert.Nil(t, FindFirst(nil, TitleContains("anything"), 0))
		assert.Nil(t, FindFirst([]*Node{nil}, TitleContains("anything"), 0))
	})
}

func TestFindAll(t *testing.T) {
	roots := sampleTree()

	rows := FindAll(roots, func(n *Node) bool { return n.Kind == KindRow }, 0)
	require.Len(t, rows, 3)
	assert.Equal(t, "Sales", rows[0].Title)
	assert.Equal(t, "Rent", rows[1].Title)
	assert.Equal(t, "Wages", rows[2].Title)

	assert.Empty(t, FindAll(roots, TitleEquals("nothing"), 0))
}

func TestAnyTitle(t *testing.T) {
	roots := sampleTree()

	node := FindFirst(roots, AnyTitle([]string{"Total Revenue", "Total Income"}), 0)
	require.NotNil(t, node)
	assert.Equal(t, "Total Income", node.Title)

	assert.Nil(t, FindFirst(roots, AnyTitle(nil), 0))
}

func TestDepthCeiling(t *testing.T) {
	// A pathological chain far deeper than the ceiling must terminate and
	// simply not find nodes below the cap.
	leaf := &Node{Kind: KindRow, Title: "buried"}
	root := leaf
	for i := 0; i < 500; i++ {
		root = &Node{Kind: KindSection, Title: "wrap", Children: []*Node{root}}
	}

	assert.Nil(t, FindFirst([]*Node{root}, TitleEquals("buried"), DefaultMaxDepth))

	shallow := FindFirst([]*Node{root}, TitleEquals("wrap"), DefaultMaxDepth)
	require.NotNil(t, shallow)
}

func TestNodeCells(t *testing.T) {
	n := &Node{Cells: []Cell{{Value: "Rent"}, {Value: "250.00"}}}
	assert.Equal(t, "Rent", n.FirstCell())
	assert.Equal(t, "250.00", n.LastCell())

	empty := &Node{}
	assert.Equal(t, "", empty.FirstCell())
	assert.Equal(t, "", empty.LastCell())
}
