package classify

import (
	"strings"

	"github.com/Ezark213/document-classifier-renamer/internal/rules"
)

// minConfidenceThreshold is the absolute score a rule must strictly
// exceed to win a classification. A tunable constant rather than a
// principled bound; 0.1 matches the fallback confidence.
const minConfidenceThreshold = 0.1

// Classifier scores free text against a rule table and returns the best
// match above the minimum confidence threshold. It holds no mutable
// state beyond the immutable table and is safe for concurrent use.
type Classifier struct {
	table *rules.Table
}

// NewClassifier creates a classifier over the given rule table.
func NewClassifier(table *rules.Table) *Classifier {
	return &Classifier{table: table}
}

// Table returns the rule table the classifier scores against.
func (c *Classifier) Table() *rules.Table {
	return c.table
}

// Classify classifies a document from its extracted text and filename.
// Empty text is valid input; classification then rests on the filename
// alone. Classify is total: it always returns a result, with the
// fallback standing in for "could not classify confidently".
//
// Rules are scored in the table's ascending-code order, and only a
// strictly higher score displaces the current best, so the first rule in
// canonical order wins ties deterministically.
func (c *Classifier) Classify(text, filename string) Result {
	content := strings.ToLower(filename + " " + text)

	var best rules.Rule
	var bestMatched []string
	highest := 0.0
	found := false

	for _, rule := range c.table.Rules() {
		score, matched := Score(content, rule)
		if score > highest {
			highest = score
			best = rule
			bestMatched = matched
			found = true
		}
	}

	if !found || highest <= minConfidenceThreshold {
		return Fallback()
	}

	confidence := highest
	if confidence > 1.0 {
		confidence = 1.0
	}

	return Result{
		Code:            best.Code,
		Name:            best.Name,
		Confidence:      confidence,
		Category:        best.Category,
		MatchedKeywords: bestMatched,
	}
}

// ClassifyTabular classifies spreadsheet-like input from a pre-joined
// string of filename and column-header tokens. The scoring algorithm is
// identical to Classify; only the content construction differs, and that
// is the caller's concern.
func (c *Classifier) ClassifyTabular(headersAndFilename string) Result {
	return c.Classify(headersAndFilename, "")
}

// ClassifyCSV classifies a tabular file from its column headers and
// filename. An empty column list is valid; the caller degrades to it
// when headers cannot be read, and classification then rests on the
// filename alone.
func (c *Classifier) ClassifyCSV(columns []string, filename string) Result {
	content := strings.ToLower(filename + " " + strings.Join(columns, " "))
	return c.ClassifyTabular(content)
}
