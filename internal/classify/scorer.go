package classify

import (
	"strings"

	"github.com/Ezark213/document-classifier-renamer/internal/rules"
)

// Score computes the match score of one rule against already
// lowercase-normalized content, and returns the matched keywords in the
// rule's keyword order.
//
// Each keyword hit contributes 1/len(keywords), so a rule's keyword
// matches can add up to at most 1.0 regardless of list length. The sum
// is then multiplied by priority/100, and a flat 0.2 bonus is added when
// the rule's display name itself appears in the content. The returned
// score is deliberately not clamped; the classifier clamps only the
// reported confidence.
func Score(content string, rule rules.Rule) (float64, []string) {
	matched := []string{}
	if len(rule.Keywords) == 0 {
		return 0, matched
	}

	keywordScore := 1.0 / float64(len(rule.Keywords))
	total := 0.0

	for _, keyword := range rule.Keywords {
		if strings.Contains(content, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
			total += keywordScore
		}
	}

	total *= float64(rule.Priority) / 100.0

	if strings.Contains(content, strings.ToLower(rule.Name)) {
		total += 0.2
	}

	return total, matched
}
