package entity

// Labels fasst alle sprachabhängigen Beschriftungen einer Rechnung zusammen.
type Labels struct {
	Invoice       string
	InvoiceNumber string
	OrderNumber   string
	InvoiceDate   string
	DeliveryDate  string

	Position    string
	Description string
	Quantity    string
	Unit        string
	UnitPrice   string
	VAT         string
	TotalGross  string

	TotalNet     string
	VATAmount    string
	InvoiceTotal string
	Shipping     string
	Notes        string

	VATID     string
	TaxNumber string
	IBAN      string
	BIC       string
}

var labelsByLanguage = map[Language]Labels{
	LanguageGerman: {
		Invoice:       "RECHNUNG",
		InvoiceNumber: "Rechnungsnummer:",
		OrderNumber:   "Bestellnummer:",
		InvoiceDate:   "Rechnungsdatum:",
		DeliveryDate:  "Lieferdatum:",
		Position:      "Pos.",
		Description:   "Beschreibung",
		Quantity:      "Menge",
		Unit:          "Einheit",
		UnitPrice:     "Einzelpreis",
		VAT:           "USt.",
		TotalGross:    "Gesamt",
		TotalNet:      "Gesamt Netto:",
		VATAmount:     "Umsatzsteuer:",
		InvoiceTotal:  "Rechnungsbetrag:",
		Shipping:      "Versandkosten",
		Notes:         "HINWEISE",
		VATID:         "USt.-IdNr.:",
		TaxNumber:     "Steuernummer:",
		IBAN:          "IBAN:",
		BIC:           "BIC:",
	},
	LanguageEnglish: {
		Invoice:       "INVOICE",
		InvoiceNumber: "Invoice Number:",
		OrderNumber:   "Order Number:",
		InvoiceDate:   "Invoice Date:",
		DeliveryDate:  "Delivery Date:",
		Position:      "Pos.",
		Description:   "Description",
		Quantity:      "Qty",
		Unit:          "Unit",
		UnitPrice:     "Unit Price",
		VAT:           "VAT",
		TotalGross:    "Total",
		TotalNet:      "Total Net:",
		VATAmount:     "VAT:",
		InvoiceTotal:  "Invoice Total:",
		Shipping:      "Shipping",
		Notes:         "NOTES",
		VATID:         "VAT ID:",
		TaxNumber:     "Tax Number:",
		IBAN:          "IBAN:",
		BIC:           "BIC:",
	},
}

// LabelsFor liefert den Beschriftungssatz zur Sprache.
// Unbekannte oder leere Werte fallen auf Deutsch zurück.
func LabelsFor(lang Language) Labels {
	if l, ok := labelsByLanguage[lang]; ok {
		return l
	}
	return labelsByLanguage[LanguageGerman]
}

// unitTranslations übersetzt gebräuchliche deutsche Mengeneinheiten ins
// Englische. Unbekannte Einheiten werden unverändert übernommen.
var unitTranslations = map[string]string{
	"Stück":    "Piece",
	"Stk.":     "Pcs.",
	"Stunden":  "Hours",
	"Std.":     "Hrs.",
	"Tage":     "Days",
	"Pauschal": "Flat rate",
	"Monat":    "Month",
	"Monate":   "Months",
	"Jahr":     "Year",
	"Liter":    "Litre",
}

// TranslateUnit übersetzt eine Mengeneinheit in die Zielsprache.
func TranslateUnit(unit string, lang Language) string {
	if lang != LanguageEnglish {
		return unit
	}
	if translated, ok := unitTranslations[unit]; ok {
		return translated
	}
	return unit
}
