package classify

import (
	"github.com/Ezark213/document-classifier-renamer/internal/rules"
)

// Result is the outcome of one classification call. It is created fresh
// per call and owned by the caller; Confidence is always within [0,1].
type Result struct {
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Confidence      float64  `json:"confidence"`
	Category        string   `json:"category"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// IsFallback reports whether the result is the fixed "could not classify
// confidently" outcome. Callers branch on this, never on an error.
func (r Result) IsFallback() bool {
	return r.Code == rules.FallbackCode
}

// Fallback returns the fixed result used when no rule clears the minimum
// confidence threshold.
func Fallback() Result {
	return Result{
		Code:            rules.FallbackCode,
		Name:            rules.FallbackName,
		Confidence:      rules.FallbackConfidence,
		Category:        rules.FallbackCategory,
		MatchedKeywords: []string{},
	}
}

// TabularType is the detected topic of a tabular data set.
type TabularType string

const (
	TabularTypeFinancial TabularType = "financial_data"
	TabularTypeCustomer  TabularType = "customer_data"
	TabularTypeInventory TabularType = "inventory_data"
	TabularTypeSales     TabularType = "sales_data"
	TabularTypeEmployee  TabularType = "employee_data"
	TabularTypeGeneral   TabularType = "general_data"
)

// TabularResult is the outcome of the column-header heuristic.
type TabularResult struct {
	DetectedType TabularType `json:"detected_type"`
	Confidence   float64     `json:"confidence"`
}
