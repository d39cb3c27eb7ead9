package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Fallback classification constants. Returned whenever no rule clears the
// minimum confidence threshold; kept identical across locales.
const (
	FallbackCode       = "9999"
	FallbackName       = "Unclassified Document"
	FallbackCategory   = "general"
	FallbackConfidence = 0.1
)

// Rule is a single classification target resolved for one locale: the
// canonical code/priority/category plus the locale's display name and
// keyword list.
type Rule struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Priority int      `json:"priority"`
	Category string   `json:"category"`
}

// Table is an immutable, ordered set of classification rules. Rules are
// kept sorted by ascending numeric code; that order is the canonical
// iteration order and therefore the tie-break order during scoring.
type Table struct {
	locale string
	rules  []Rule
	byCode map[string]int
}

// SupportedLocales returns the locales with a built-in rule table.
func SupportedLocales() []string {
	return []string{LocaleEN, LocaleDE}
}

// NewTable builds the built-in rule table for the given locale. It fails
// fast on an unknown locale or on any malformed rule so that a broken
// table can never silently change classification outcomes.
func NewTable(locale string) (*Table, error) {
	overlay, ok := localeOverlays[locale]
	if !ok {
		return nil, fmt.Errorf("unsupported locale: %q (supported: %v)", locale, SupportedLocales())
	}

	resolved := make([]Rule, 0, len(canonicalRules))
	for code, canon := range canonicalRules {
		text, ok := overlay[code]
		if !ok {
			return nil, fmt.Errorf("locale %q is missing rule %s", locale, code)
		}
		resolved = append(resolved, Rule{
			Code:     code,
			Name:     text.name,
			Keywords: text.keywords,
			Priority: canon.priority,
			Category: canon.category,
		})
	}

	for code := range overlay {
		if _, ok := canonicalRules[code]; !ok {
			return nil, fmt.Errorf("locale %q defines unknown rule %s", locale, code)
		}
	}

	return newTable(locale, resolved)
}

// NewTableFromRules builds a table from an explicit rule set. Used for
// custom rule files and for exercising the classifier against synthetic
// tables in tests.
func NewTableFromRules(locale string, ruleSet []Rule) (*Table, error) {
	resolved := make([]Rule, len(ruleSet))
	copy(resolved, ruleSet)
	return newTable(locale, resolved)
}

func newTable(locale string, resolved []Rule) (*Table, error) {
	sort.Slice(resolved, func(i, j int) bool {
		return codeLess(resolved[i].Code, resolved[j].Code)
	})

	byCode := make(map[string]int, len(resolved))
	for i, r := range resolved {
		if err := validateRule(r); err != nil {
			return nil, err
		}
		if _, dup := byCode[r.Code]; dup {
			return nil, fmt.Errorf("duplicate rule code %s", r.Code)
		}
		byCode[r.Code] = i
	}

	return &Table{locale: locale, rules: resolved, byCode: byCode}, nil
}

// codeLess orders codes numerically when possible, lexically otherwise.
func codeLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

func validateRule(r Rule) error {
	if r.Code == "" {
		return fmt.Errorf("rule with empty code")
	}
	if r.Code == FallbackCode {
		return fmt.Errorf("rule %s: code is reserved for the fallback result", r.Code)
	}
	if r.Name == "" {
		return fmt.Errorf("rule %s: name cannot be empty", r.Code)
	}
	if len(r.Keywords) == 0 {
		return fmt.Errorf("rule %s: keyword list cannot be empty", r.Code)
	}
	for _, kw := range r.Keywords {
		if kw == "" {
			return fmt.Errorf("rule %s: keyword cannot be empty", r.Code)
		}
	}
	if r.Priority <= 0 {
		return fmt.Errorf("rule %s: priority must be positive, got %d", r.Code, r.Priority)
	}
	if r.Category == "" {
		return fmt.Errorf("rule %s: category cannot be empty", r.Code)
	}
	return nil
}

// Locale returns the locale the table was resolved for.
func (t *Table) Locale() string {
	return t.locale
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns all rules in canonical (ascending code) order. The
// returned slice is shared and must not be modified.
func (t *Table) Rules() []Rule {
	return t.rules
}

// Lookup returns the rule with the given code.
func (t *Table) Lookup(code string) (Rule, bool) {
	i, ok := t.byCode[code]
	if !ok {
		return Rule{}, false
	}
	return t.rules[i], true
}

// ByCategory returns all rules tagged with the given category, in
// canonical order.
func (t *Table) ByCategory(category string) []Rule {
	var out []Rule
	for _, r := range t.rules {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Categories returns the distinct categories present in the table,
// sorted alphabetically.
func (t *Table) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.rules {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	sort.Strings(out)
	return out
}

// RuleSet is the on-disk format for custom rule files.
type RuleSet struct {
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	Rules       []Rule `json:"rules"`
}

// WithCustomRules returns a new table with the rules from the given JSON
// rule-set file appended. The merged set is re-sorted and re-validated,
// so a malformed custom file fails at load time rather than skewing
// results at classification time.
func (t *Table) WithCustomRules(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read custom rules file: %w", err)
	}

	var ruleSet RuleSet
	if err := json.Unmarshal(data, &ruleSet); err != nil {
		return nil, fmt.Errorf("failed to parse custom rules: %w", err)
	}

	merged := make([]Rule, 0, len(t.rules)+len(ruleSet.Rules))
	merged = append(merged, t.rules...)
	merged = append(merged, ruleSet.Rules...)

	return newTable(t.locale, merged)
}

// CategoryDescription returns a human-readable description for a
// category tag, or an empty string for unknown categories.
func CategoryDescription(category string) string {
	return categoryDescriptions[category]
}

var categoryDescriptions = map[string]string{
	"financial": "Financial statements, budgets, and accounting documents",
	"legal":     "Contracts, agreements, and legal documents",
	"reports":   "Business reports, analysis, and summaries",
	"billing":   "Invoices, receipts, and payment documents",
	"hr":        "Human resources and employee documents",
	"insurance": "Insurance policies and claims",
	"data":      "Data exports and analytics reports",
	"customer":  "Customer information and feedback",
	"general":   "Documents that could not be classified",
}
