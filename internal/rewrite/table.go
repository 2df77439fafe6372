package rewrite

import (
	"fmt"
	"strings"
)

// Rule replaces every occurrence of Pattern with Replacement.
type Rule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Table is an ordered list of rules.
type Table []Rule

// NewTable builds a table from alternating pattern/replacement strings.
// It panics on an odd argument count.
func NewTable(pairs ...string) Table {
	if len(pairs)%2 != 0 {
		panic("rewrite.NewTable: odd number of arguments")
	}

	t := make(Table, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		t = append(t, Rule{Pattern: pairs[i], Replacement: pairs[i+1]})
	}

	return t
}

// Validate reports the first rule with an empty pattern.
func (t Table) Validate() error {
	for i, r := range t {
		if r.Pattern == "" {
			return fmt.Errorf("rule %d: empty pattern", i)
		}
	}

	return nil
}

// Apply runs every rule over body in table order.
func (t Table) Apply(body string) string {
	for _, r := range t {
		if r.Pattern == "" {
			continue
		}

		body = strings.ReplaceAll(body, r.Pattern, r.Replacement)
	}

	return body
}
