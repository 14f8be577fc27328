package providers

import "strings"

// CategoryOther is assigned when no keyword rule matches.
const CategoryOther = "other"

// Categorizer classifies breakdown line items by keyword. Rule order is the
// match precedence.
type Categorizer struct {
	rules []categoryRule
}

type categoryRule struct {
	keyword  string
	category string
}

func DefaultCategorizer() *Categorizer {
	c := &Categorizer{}
	defaults := []categoryRule{
		{"subcontract", "subcontractor"},
		{"contractor", "subcontractor"},
		{"freelance", "subcontractor"},
		{"owner", "owner-related"},
		{"director", "owner-related"},
		{"drawings", "owner-related"},
		{"salaries", "payroll"},
		{"wages", "payroll"},
		{"payroll", "payroll"},
		{"rent", "facilities"},
		{"utilities", "facilities"},
		{"insurance", "facilities"},
		{"advertising", "marketing"},
		{"marketing", "marketing"},
		{"software", "tooling"},
		{"subscription", "tooling"},
	}
	for _, r := range defaults {
		c.Add(r.keyword, r.category)
	}
	return c
}

// Add appends keyword -> category.
func (c *Categorizer) Add(keyword, category string) {
	c.rules = append(c.rules, categoryRule{
		keyword:  strings.ToLower(keyword),
		category: category,
	})
}

// Override prepends keyword -> category so it takes precedence over the
// built-in table.
func (c *Categorizer) Override(keyword, category string) {
	rule := categoryRule{
		keyword:  strings.ToLower(keyword),
		category: category,
	}
	c.rules = append([]categoryRule{rule}, c.rules...)
}

func (c *Categorizer) Classify(name string) string {
	lower := strings.ToLower(name)
	for _, r := range c.rules {
		if strings.Contains(lower, r.keyword) {
			return r.category
		}
	}
	return CategoryOther
}
