package rules

// canonicalRule holds the locale-independent attributes of a rule. Codes,
// priorities, and category tags are the cross-locale contract: locale
// overlays only ever contribute display names and keyword lists.
type canonicalRule struct {
	priority int
	category string
}

// localeText is the locale-specific layer of a rule.
type localeText struct {
	name     string
	keywords []string
}

// canonicalRules maps every rule code to its priority and category.
// 1xxx financial, 2xxx legal, 3xxx reports, 4xxx billing, 5xxx hr,
// 6xxx insurance, 7xxx data, 8xxx customer.
var canonicalRules = map[string]canonicalRule{
	"1001": {priority: 150, category: "financial"},
	"1002": {priority: 140, category: "financial"},
	"1003": {priority: 140, category: "financial"},
	"1004": {priority: 130, category: "financial"},
	"1005": {priority: 120, category: "financial"},

	"2001": {priority: 160, category: "legal"},
	"2002": {priority: 150, category: "legal"},
	"2003": {priority: 130, category: "legal"},

	"3001": {priority: 140, category: "reports"},
	"3002": {priority: 130, category: "reports"},
	"3003": {priority: 120, category: "reports"},
	"3004": {priority: 125, category: "reports"},

	"4001": {priority: 170, category: "billing"},
	"4002": {priority: 160, category: "billing"},
	"4003": {priority: 150, category: "billing"},
	"4004": {priority: 130, category: "billing"},

	"5001": {priority: 150, category: "hr"},
	"5002": {priority: 140, category: "hr"},
	"5003": {priority: 130, category: "hr"},

	"6001": {priority: 140, category: "insurance"},
	"6002": {priority: 150, category: "insurance"},

	"7001": {priority: 100, category: "data"},
	"7002": {priority: 110, category: "data"},

	"8001": {priority: 120, category: "customer"},
	"8002": {priority: 110, category: "customer"},
}

// localeOverlays maps locale -> code -> display text. Every overlay must
// cover exactly the canonical code set; NewTable enforces this.
var localeOverlays = map[string]map[string]localeText{
	LocaleEN: localeEN,
	LocaleDE: localeDE,
}
