package rules

// LocaleDE is the German rule table locale. Codes, priorities, and
// categories are shared with the English table; only names and keywords
// differ.
const LocaleDE = "de"

var localeDE = map[string]localeText{
	// Finanzdokumente
	"1001": {
		name: "Finanzbericht",
		keywords: []string{
			"finanzbericht", "jahresabschluss", "bilanz",
			"gewinn- und verlustrechnung", "guv", "kapitalflussrechnung",
			"vermoegensuebersicht",
		},
	},
	"1002": {
		name: "Gewinn- und Verlustrechnung",
		keywords: []string{
			"gewinn- und verlustrechnung", "guv-rechnung", "ertragsrechnung",
			"ergebnisrechnung", "betriebsergebnis", "umsatzerloese",
		},
	},
	"1003": {
		name: "Bilanz",
		keywords: []string{
			"bilanz", "vermoegensaufstellung",
			"aktiva und passiva", "eigenkapital",
		},
	},
	"1004": {
		name: "Kapitalflussrechnung",
		keywords: []string{
			"kapitalflussrechnung", "cashflow-rechnung",
			"cashflow-bericht", "operativer cashflow",
		},
	},
	"1005": {
		name: "Budgetbericht",
		keywords: []string{
			"budget", "budgetbericht", "finanzbudget",
			"jahresbudget", "budgetanalyse",
		},
	},

	// Rechtsdokumente
	"2001": {
		name: "Vertrag",
		keywords: []string{
			"vertrag", "vereinbarung", "dienstleistungsvertrag",
			"allgemeine geschaeftsbedingungen", "rechtsvereinbarung",
			"vertragsparteien",
		},
	},
	"2002": {
		name: "Geheimhaltungsvereinbarung",
		keywords: []string{
			"geheimhaltungsvereinbarung", "nda", "vertraulichkeitsvereinbarung",
			"vertrauliche informationen", "geschaeftsgeheimnisse",
		},
	},
	"2003": {
		name: "Nutzungsbedingungen",
		keywords: []string{
			"nutzungsbedingungen", "servicebedingungen", "nutzervereinbarung",
			"dienstbedingungen", "website-bedingungen",
		},
	},

	// Geschaeftsberichte
	"3001": {
		name: "Jahresbericht",
		keywords: []string{
			"jahresbericht", "geschaeftsbericht", "jahresabschlussbericht",
			"jahresuebersicht", "geschaeftsrueckblick",
		},
	},
	"3002": {
		name: "Monatsbericht",
		keywords: []string{
			"monatsbericht", "monatsabschluss", "monatsuebersicht",
			"leistungsbericht", "statusbericht",
		},
	},
	"3003": {
		name: "Projektbericht",
		keywords: []string{
			"projektbericht", "projektstatus", "projektuebersicht",
			"meilensteinbericht", "fortschrittsbericht",
		},
	},
	"3004": {
		name: "Marktforschung",
		keywords: []string{
			"marktforschung", "marktanalyse", "branchenbericht",
			"marktumfrage", "wettbewerbsanalyse",
		},
	},

	// Rechnungswesen
	"4001": {
		name: "Rechnung",
		keywords: []string{
			"rechnung", "rechnungsnummer", "rechnungsbetrag",
			"zahlbar bis", "faelligkeitsdatum", "rechnungsdatum",
			"zahlungsziel",
		},
	},
	"4002": {
		name: "Quittung",
		keywords: []string{
			"quittung", "zahlungsbeleg", "transaktionsbeleg",
			"zahlungsnachweis", "zahlungseingang",
		},
	},
	"4003": {
		name: "Bestellung",
		keywords: []string{
			"bestellung", "bestellnummer", "auftragsanfrage",
			"bestellanforderung", "beschaffung",
		},
	},
	"4004": {
		name: "Angebot",
		keywords: []string{
			"angebot", "kostenvoranschlag", "preiskalkulation",
			"offerte", "preisangebot", "kostenschaetzung",
		},
	},

	// Personaldokumente
	"5001": {
		name: "Arbeitsvertrag",
		keywords: []string{
			"arbeitsvertrag", "stellenangebot", "anstellungsvertrag",
			"mitarbeiterhandbuch", "stellenbeschreibung",
		},
	},
	"5002": {
		name: "Lohnabrechnung",
		keywords: []string{
			"lohnabrechnung", "gehaltsabrechnung", "lohnbericht",
			"gehaltsuebersicht", "verguetungsuebersicht",
		},
	},
	"5003": {
		name: "Leistungsbeurteilung",
		keywords: []string{
			"leistungsbeurteilung", "mitarbeiterbewertung", "jahresgespraech",
			"leistungsbewertung", "mitarbeiterbeurteilung",
		},
	},

	// Versicherungsdokumente
	"6001": {
		name: "Versicherungspolice",
		keywords: []string{
			"versicherungspolice", "policennummer", "versicherungsschutz",
			"versicherungsschein", "versicherungsnehmer",
		},
	},
	"6002": {
		name: "Versicherungsanspruch",
		keywords: []string{
			"versicherungsanspruch", "schadensnummer", "schadensmeldung",
			"schadensbericht", "schadensfall",
		},
	},

	// Daten und Analysen
	"7001": {
		name: "Datenexport",
		keywords: []string{
			"datenexport", "datenbankexport", "datenauszug",
			"exportierte daten", "datendatei",
		},
	},
	"7002": {
		name: "Analysebericht",
		keywords: []string{
			"analysebericht", "datenanalyse", "statistik",
			"kennzahlen", "dashboard", "kpi",
		},
	},

	// Kundendokumente
	"8001": {
		name: "Kundeninformation",
		keywords: []string{
			"kunde", "klient", "kontaktinformation",
			"kundendaten", "kundenliste",
		},
	},
	"8002": {
		name: "Kundenfeedback",
		keywords: []string{
			"kundenfeedback", "umfrage", "bewertung",
			"kundenzufriedenheit", "erfahrungsbericht",
		},
	},
}
