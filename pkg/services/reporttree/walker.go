package reporttree

import "strings"

// DefaultMaxDepth bounds recursion on malformed payloads.
const DefaultMaxDepth = 64

// Match decides whether a node is the one a lookup is after.
type Match func(n *Node) bool

// TitleContains matches nodes whose title contains s, case-insensitively.
func TitleContains(s string) Match {
	needle := strings.ToLower(s)
	return func(n *Node) bool {
		return strings.Contains(strings.ToLower(n.Title), needle)
	}
}

// TitleEquals matches nodes whose title equals s, case-insensitively.
func TitleEquals(s string) Match {
	want := strings.ToLower(s)
	return func(n *Node) bool {
		return strings.ToLower(strings.TrimSpace(n.Title)) == want
	}
}

// KindIs restricts a match to nodes of the given kind.
func KindIs(k Kind, m Match) Match {
	return func(n *Node) bool {
		return n.Kind == k && m(n)
	}
}

// AnyTitle matches when any of the candidate titles matches per
// TitleContains. Candidates are tried in order.
func AnyTitle(titles []string) Match {
	matches := make([]Match, 0, len(titles))
	for _, t := range titles {
		matches = append(matches, TitleContains(t))
	}
	return func(n *Node) bool {
		for _, m := range matches {
			if m(n) {
				return true
			}
		}
		return false
	}
}

// FindFirst returns the first node (depth-first, document order) matching m,
// or nil when nothing matches.
func FindFirst(roots []*Node, m Match, maxDepth int) *Node {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	for _, root := range roots {
		if found := findFirst(root, m, maxDepth); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node matching m in document order.
func FindAll(roots []*Node, m Match, maxDepth int) []*Node {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	var out []*Node
	for _, root := range roots {
		out = findAll(root, m, maxDepth, out)
	}
	return out
}

func findFirst(n *Node, m Match, depth int) *Node {
	if n == nil || depth == 0 {
		return nil
	}
	if m(n) {
		return n
	}
	for _, child := range n.Children {
		if found := findFirst(child, m, depth-1); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *Node, m Match, depth int, acc []*Node) []*Node {
	if n == nil || depth == 0 {
		return acc
	}
	if m(n) {
		acc = append(acc, n)
	}
	for _, child := range n.Children {
		acc = findAll(child, m, depth-1, acc)
	}
	return acc
}
