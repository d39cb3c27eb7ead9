package classify

import (
	"strings"
)

// tabularTopic is one fixed topic keyword-set of the column heuristic.
type tabularTopic struct {
	topic    TabularType
	keywords []string
}

// tabularTopics is evaluated in this fixed order; the first topic
// reaching the maximum normalized score wins ties.
var tabularTopics = []tabularTopic{
	{TabularTypeFinancial, []string{"amount", "price", "cost", "total", "balance", "payment", "invoice", "transaction"}},
	{TabularTypeCustomer, []string{"name", "email", "phone", "address", "customer", "client", "contact"}},
	{TabularTypeInventory, []string{"product", "item", "sku", "quantity", "stock", "inventory"}},
	{TabularTypeSales, []string{"sales", "revenue", "order", "purchase", "sold", "profit"}},
	{TabularTypeEmployee, []string{"employee", "staff", "payroll", "salary", "department"}},
}

// ClassifyColumns detects the topic of a tabular data set from its
// column names and filename. Each topic's keyword hit count is
// normalized by the topic's keyword-set size so larger sets are not
// favored; the winning score is scaled by 2 (capped at 1.0) to bring it
// onto a scale comparable with the document classifier's confidence.
// A maximum below 0.1 yields general_data at a fixed 0.1.
func ClassifyColumns(columnNames []string, filename string) TabularResult {
	content := strings.ToLower(filename) + " " + strings.ToLower(strings.Join(columnNames, " "))

	bestTopic := TabularTypeGeneral
	bestScore := 0.0

	for _, t := range tabularTopics {
		hits := 0
		for _, keyword := range t.keywords {
			if strings.Contains(content, keyword) {
				hits++
			}
		}
		score := float64(hits) / float64(len(t.keywords))
		if score > bestScore {
			bestScore = score
			bestTopic = t.topic
		}
	}

	if bestScore < 0.1 {
		return TabularResult{DetectedType: TabularTypeGeneral, Confidence: 0.1}
	}

	confidence := bestScore * 2.0
	if confidence > 1.0 {
		confidence = 1.0
	}

	return TabularResult{DetectedType: bestTopic, Confidence: confidence}
}
