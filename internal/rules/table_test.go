package rules

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestNewTableSupportedLocales(t *testing.T) {
	for _, locale := range SupportedLocales() {
		table, err := NewTable(locale)
		if err != nil {
			t.Fatalf("NewTable(%q) failed: %v", locale, err)
		}

		if table.Locale() != locale {
			t.Errorf("Expected locale %q, got %q", locale, table.Locale())
		}

		if table.Len() != len(canonicalRules) {
			t.Errorf("Expected %d rules for locale %q, got %d", len(canonicalRules), locale, table.Len())
		}
	}
}

func TestNewTableUnknownLocale(t *testing.T) {
	if _, err := NewTable("fr"); err == nil {
		t.Error("Expected error for unsupported locale")
	}
}

func TestRulesAreOrderedByAscendingCode(t *testing.T) {
	table, err := NewTable(LocaleEN)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	prev := -1
	for _, r := range table.Rules() {
		code, err := strconv.Atoi(r.Code)
		if err != nil {
			t.Fatalf("Built-in rule code %q is not numeric", r.Code)
		}
		if code <= prev {
			t.Errorf("Rules not in ascending code order: %d after %d", code, prev)
		}
		prev = code
	}
}

// Locale tables must never desynchronize: the same code set with the
// same priority and category in every locale.
func TestLocaleParity(t *testing.T) {
	reference, err := NewTable(LocaleEN)
	if err != nil {
		t.Fatalf("NewTable(en) failed: %v", err)
	}

	for _, locale := range SupportedLocales() {
		if locale == LocaleEN {
			continue
		}

		other, err := NewTable(locale)
		if err != nil {
			t.Fatalf("NewTable(%q) failed: %v", locale, err)
		}

		if other.Len() != reference.Len() {
			t.Errorf("Locale %q has %d rules, reference has %d", locale, other.Len(), reference.Len())
		}

		for _, ref := range reference.Rules() {
			r, ok := other.Lookup(ref.Code)
			if !ok {
				t.Errorf("Locale %q is missing code %s", locale, ref.Code)
				continue
			}
			if r.Priority != ref.Priority {
				t.Errorf("Code %s: priority %d in %q, %d in reference", ref.Code, r.Priority, locale, ref.Priority)
			}
			if r.Category != ref.Category {
				t.Errorf("Code %s: category %q in %q, %q in reference", ref.Code, r.Category, locale, ref.Category)
			}
			if r.Name == "" || len(r.Keywords) == 0 {
				t.Errorf("Code %s in locale %q has empty name or keywords", ref.Code, locale)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	table, err := NewTable(LocaleEN)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	invoice, ok := table.Lookup("4001")
	if !ok {
		t.Fatal("Expected rule 4001 to exist")
	}
	if invoice.Name != "Invoice" {
		t.Errorf("Expected name Invoice, got %q", invoice.Name)
	}
	if invoice.Priority != 170 {
		t.Errorf("Expected priority 170, got %d", invoice.Priority)
	}
	if invoice.Category != "billing" {
		t.Errorf("Expected category billing, got %q", invoice.Category)
	}

	if _, ok := table.Lookup("0000"); ok {
		t.Error("Expected lookup of unknown code to fail")
	}
}

func TestByCategory(t *testing.T) {
	table, err := NewTable(LocaleEN)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	billing := table.ByCategory("billing")
	if len(billing) != 4 {
		t.Errorf("Expected 4 billing rules, got %d", len(billing))
	}
	for _, r := range billing {
		if r.Category != "billing" {
			t.Errorf("Rule %s has category %q", r.Code, r.Category)
		}
	}

	if got := table.ByCategory("nonexistent"); len(got) != 0 {
		t.Errorf("Expected no rules for unknown category, got %d", len(got))
	}
}

func TestCategories(t *testing.T) {
	table, err := NewTable(LocaleEN)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	categories := table.Categories()
	expected := []string{"billing", "customer", "data", "financial", "hr", "insurance", "legal", "reports"}

	if len(categories) != len(expected) {
		t.Fatalf("Expected %d categories, got %d: %v", len(expected), len(categories), categories)
	}
	for i, cat := range expected {
		if categories[i] != cat {
			t.Errorf("Expected category %q at position %d, got %q", cat, i, categories[i])
		}
	}
}

func TestValidationRejectsMalformedRules(t *testing.T) {
	valid := Rule{Code: "0100", Name: "Test", Keywords: []string{"test"}, Priority: 100, Category: "test"}

	tests := []struct {
		name   string
		mutate func(Rule) Rule
	}{
		{"empty code", func(r Rule) Rule { r.Code = ""; return r }},
		{"reserved fallback code", func(r Rule) Rule { r.Code = FallbackCode; return r }},
		{"empty name", func(r Rule) Rule { r.Name = ""; return r }},
		{"empty keyword list", func(r Rule) Rule { r.Keywords = nil; return r }},
		{"empty keyword", func(r Rule) Rule { r.Keywords = []string{"test", ""}; return r }},
		{"zero priority", func(r Rule) Rule { r.Priority = 0; return r }},
		{"negative priority", func(r Rule) Rule { r.Priority = -10; return r }},
		{"empty category", func(r Rule) Rule { r.Category = ""; return r }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTableFromRules(LocaleEN, []Rule{tt.mutate(valid)}); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}

	if _, err := NewTableFromRules(LocaleEN, []Rule{valid}); err != nil {
		t.Errorf("Expected valid rule to pass validation, got %v", err)
	}
}

func TestValidationRejectsDuplicateCodes(t *testing.T) {
	ruleSet := []Rule{
		{Code: "0100", Name: "A", Keywords: []string{"a"}, Priority: 100, Category: "test"},
		{Code: "0100", Name: "B", Keywords: []string{"b"}, Priority: 100, Category: "test"},
	}

	if _, err := NewTableFromRules(LocaleEN, ruleSet); err == nil {
		t.Error("Expected error for duplicate codes")
	}
}

func TestWithCustomRules(t *testing.T) {
	table, err := NewTable(LocaleEN)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "custom.json")
	content := `{
		"version": "1",
		"rules": [
			{"code": "4101", "name": "Credit Note", "keywords": ["credit note", "credit memo"], "priority": 140, "category": "billing"}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write custom rules file: %v", err)
	}

	merged, err := table.WithCustomRules(path)
	if err != nil {
		t.Fatalf("WithCustomRules failed: %v", err)
	}

	if merged.Len() != table.Len()+1 {
		t.Errorf("Expected %d rules after merge, got %d", table.Len()+1, merged.Len())
	}

	custom, ok := merged.Lookup("4101")
	if !ok {
		t.Fatal("Expected custom rule 4101 to be present")
	}
	if custom.Name != "Credit Note" {
		t.Errorf("Expected custom rule name Credit Note, got %q", custom.Name)
	}

	// The merged table must stay in ascending code order
	codes := merged.Rules()
	for i := 1; i < len(codes); i++ {
		if !codeLess(codes[i-1].Code, codes[i].Code) {
			t.Errorf("Merged rules out of order: %s before %s", codes[i-1].Code, codes[i].Code)
		}
	}

	// The original table is unchanged
	if _, ok := table.Lookup("4101"); ok {
		t.Error("WithCustomRules must not mutate the receiver")
	}
}

func TestWithCustomRulesFailsFast(t *testing.T) {
	table, err := NewTable(LocaleEN)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{not json`},
		{"non-numeric priority", `{"rules": [{"code": "4101", "name": "X", "keywords": ["x"], "priority": "high", "category": "billing"}]}`},
		{"missing keywords", `{"rules": [{"code": "4101", "name": "X", "priority": 100, "category": "billing"}]}`},
		{"duplicate of builtin code", `{"rules": [{"code": "4001", "name": "X", "keywords": ["x"], "priority": 100, "category": "billing"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "custom.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("Failed to write custom rules file: %v", err)
			}
			if _, err := table.WithCustomRules(path); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}

	if _, err := table.WithCustomRules(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing custom rules file")
	}
}

func TestCategoryDescription(t *testing.T) {
	if desc := CategoryDescription("billing"); desc == "" {
		t.Error("Expected description for billing category")
	}
	if desc := CategoryDescription("nonexistent"); desc != "" {
		t.Errorf("Expected empty description for unknown category, got %q", desc)
	}
}
