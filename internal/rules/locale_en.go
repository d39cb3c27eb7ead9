package rules

// LocaleEN is the English rule table locale.
const LocaleEN = "en"

var localeEN = map[string]localeText{
	// Financial documents
	"1001": {
		name: "Financial Statement",
		keywords: []string{
			"financial statement", "statement of financial position",
			"balance sheet", "income statement", "profit and loss",
			"cash flow statement", "financial report",
		},
	},
	"1002": {
		name: "Income Statement",
		keywords: []string{
			"income statement", "profit and loss statement", "p&l",
			"earnings report", "revenue statement", "operating income",
		},
	},
	"1003": {
		name: "Balance Sheet",
		keywords: []string{
			"balance sheet", "statement of financial position",
			"assets and liabilities", "shareholders equity",
		},
	},
	"1004": {
		name: "Cash Flow Statement",
		keywords: []string{
			"cash flow statement", "statement of cash flows",
			"cash flow report", "operating cash flow",
		},
	},
	"1005": {
		name: "Budget Report",
		keywords: []string{
			"budget", "budget report", "financial budget",
			"annual budget", "budget analysis",
		},
	},

	// Legal documents
	"2001": {
		name: "Contract",
		keywords: []string{
			"contract", "agreement", "service agreement",
			"terms and conditions", "legal agreement", "parties agree",
		},
	},
	"2002": {
		name: "Non-Disclosure Agreement",
		keywords: []string{
			"non-disclosure agreement", "nda", "confidentiality agreement",
			"confidential information", "proprietary information",
		},
	},
	"2003": {
		name: "Terms of Service",
		keywords: []string{
			"terms of service", "terms of use", "user agreement",
			"service terms", "website terms",
		},
	},

	// Business reports
	"3001": {
		name: "Annual Report",
		keywords: []string{
			"annual report", "yearly report", "year end report",
			"annual summary", "business review",
		},
	},
	"3002": {
		name: "Monthly Report",
		keywords: []string{
			"monthly report", "month end report", "monthly summary",
			"performance report", "status report",
		},
	},
	"3003": {
		name: "Project Report",
		keywords: []string{
			"project report", "project status", "project summary",
			"milestone report", "progress report",
		},
	},
	"3004": {
		name: "Market Research",
		keywords: []string{
			"market research", "market analysis", "industry report",
			"market survey", "competitive analysis",
		},
	},

	// Invoicing and billing
	"4001": {
		name: "Invoice",
		keywords: []string{
			"invoice", "bill", "invoice number", "amount due",
			"payment due", "billing", "invoice date",
		},
	},
	"4002": {
		name: "Receipt",
		keywords: []string{
			"receipt", "payment receipt", "transaction receipt",
			"proof of payment", "received payment",
		},
	},
	"4003": {
		name: "Purchase Order",
		keywords: []string{
			"purchase order", "po number", "order request",
			"purchase requisition", "procurement",
		},
	},
	"4004": {
		name: "Quote",
		keywords: []string{
			"quote", "quotation", "estimate", "pricing",
			"proposal", "cost estimate",
		},
	},

	// HR documents
	"5001": {
		name: "Employee Contract",
		keywords: []string{
			"employment contract", "job offer", "employment agreement",
			"employee handbook", "job description",
		},
	},
	"5002": {
		name: "Payroll Report",
		keywords: []string{
			"payroll", "salary report", "wage report",
			"payroll summary", "employee compensation",
		},
	},
	"5003": {
		name: "Performance Review",
		keywords: []string{
			"performance review", "employee evaluation", "annual review",
			"performance appraisal", "employee assessment",
		},
	},

	// Insurance documents
	"6001": {
		name: "Insurance Policy",
		keywords: []string{
			"insurance policy", "policy number", "coverage",
			"insurance certificate", "policy holder",
		},
	},
	"6002": {
		name: "Insurance Claim",
		keywords: []string{
			"insurance claim", "claim number", "claim form",
			"damage report", "incident report",
		},
	},

	// Data and analytics
	"7001": {
		name: "Data Export",
		keywords: []string{
			"data export", "database export", "data dump",
			"exported data", "data file",
		},
	},
	"7002": {
		name: "Analytics Report",
		keywords: []string{
			"analytics", "data analysis", "statistics",
			"metrics", "dashboard", "kpi",
		},
	},

	// Customer documents
	"8001": {
		name: "Customer Information",
		keywords: []string{
			"customer", "client", "contact information",
			"customer data", "client list",
		},
	},
	"8002": {
		name: "Customer Feedback",
		keywords: []string{
			"customer feedback", "survey", "review",
			"customer satisfaction", "testimonial",
		},
	},
}
