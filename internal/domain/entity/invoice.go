package entity

// Language wählt den Beschriftungssatz der Rechnung ("de" oder "en").
type Language string

const (
	LanguageGerman  Language = "de"
	LanguageEnglish Language = "en"
)

// SenderDetails Stammdaten des Rechnungsstellers.
type SenderDetails struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Website    string `json:"website,omitempty"`
}

// RecipientDetails Anschrift des Rechnungsempfängers.
type RecipientDetails struct {
	Name         string `json:"name"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Street       string `json:"street"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	Country      string `json:"country,omitempty"`
}

// TaxIdentifiers Steuerkennungen des Rechnungsstellers.
// Mindestens eine der beiden ist Pflicht (§14 UStG).
type TaxIdentifiers struct {
	Steuernummer string `json:"steuernummer,omitempty"`
	UstIDNr      string `json:"ustIdNr,omitempty"`
}

// BankDetails Bankverbindung für die Fußzeile.
type BankDetails struct {
	BankName      string `json:"bankName"`
	IBAN          string `json:"iban"`
	BIC           string `json:"bic"`
	AccountHolder string `json:"accountHolder,omitempty"`
}

// LegalInfo rechtliche Zusatzangaben (Handelsregister, Geschäftsführung).
// Wird eingelesen, aber derzeit nicht auf der Rechnung ausgegeben.
type LegalInfo struct {
	LegalForm        string `json:"legalForm,omitempty"`
	RegisterNumber   string `json:"registerNumber,omitempty"`
	RegisterCourt    string `json:"registerCourt,omitempty"`
	ManagingDirector string `json:"managingDirector,omitempty"`
}

// LineItem eine Rechnungsposition. Einzelpreis und Gesamtbetrag sind
// Bruttowerte; die Umsatzsteuer wird beim Summieren herausgerechnet.
type LineItem struct {
	Position    int     `json:"position,omitempty"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
	TaxRate     float64 `json:"taxRate"`
}

// ShippingCost optionale Versandkosten (brutto).
type ShippingCost struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// LogoConfig Logo-Quelle: Base64 (gewinnt) oder Dateipfad, plus Maximalmaße
// in pt für die proportionale Skalierung.
type LogoConfig struct {
	LogoPath   string  `json:"logoPath,omitempty"`
	LogoBase64 string  `json:"logoBase64,omitempty"`
	MaxWidth   float64 `json:"maxWidth,omitempty"`
	MaxHeight  float64 `json:"maxHeight,omitempty"`
}

// Logo aufgelöstes Logo: Rohbytes plus Format ("png" oder "jpg"),
// unabhängig davon, wie es später gezeichnet wird.
type Logo struct {
	Data      []byte
	Format    string
	MaxWidth  float64
	MaxHeight float64
}

// InvoiceData vollständige Eingabedaten einer Rechnung. Die JSON-Schlüssel
// entsprechen dem erwarteten Eingabeformat (camelCase).
type InvoiceData struct {
	Language       Language         `json:"language,omitempty"`
	InvoiceNumber  string           `json:"invoiceNumber"`
	OrderNumber    string           `json:"orderNumber,omitempty"`
	IssueDate      string           `json:"issueDate"`
	DeliveryDate   string           `json:"deliveryDate"`
	DueDate        string           `json:"dueDate,omitempty"`
	PaymentTerms   string           `json:"paymentTerms,omitempty"`
	Sender         SenderDetails    `json:"sender"`
	Recipient      RecipientDetails `json:"recipient"`
	TaxIdentifiers TaxIdentifiers   `json:"taxIdentifiers"`
	BankDetails    BankDetails      `json:"bankDetails"`
	LegalInfo      *LegalInfo       `json:"legalInfo,omitempty"`
	LineItems      []LineItem       `json:"lineItems"`
	Logo           *LogoConfig      `json:"logo,omitempty"`
	Currency       string           `json:"currency,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	AccentColor    string           `json:"accentColor,omitempty"`
	Shipping       *ShippingCost    `json:"shipping,omitempty"`
}
