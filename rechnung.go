// Package rechnung erzeugt deutsche Rechnungen als einseitige A4-PDFs aus
// strukturierten Rechnungsdaten: Pflichtangaben nach §14 UStG,
// Umsatzsteuer-Aufschlüsselung je Steuersatz und zweisprachige
// Beschriftungen (de/en).
//
// Die Fassade verdrahtet die Standardkomponenten; wer eigene Renderer oder
// Logger braucht, nutzt internal/application/billing direkt.
package rechnung

import (
	"context"

	"github.com/rechnungpro/rechnung-pro/internal/application/billing"
	"github.com/rechnungpro/rechnung-pro/internal/domain/entity"
	"github.com/rechnungpro/rechnung-pro/internal/infrastructure/logo"
	"github.com/rechnungpro/rechnung-pro/internal/infrastructure/pdf"
	"github.com/rechnungpro/rechnung-pro/pkg/logger"
)

// Re-Exporte der Datentypen für Bibliotheksnutzer.
type (
	InvoiceData      = entity.InvoiceData
	LineItem         = entity.LineItem
	SenderDetails    = entity.SenderDetails
	RecipientDetails = entity.RecipientDetails
	TaxIdentifiers   = entity.TaxIdentifiers
	BankDetails      = entity.BankDetails
	LegalInfo        = entity.LegalInfo
	ShippingCost     = entity.ShippingCost
	LogoConfig       = entity.LogoConfig
	InvoiceTotals    = entity.InvoiceTotals
	Language         = entity.Language
)

const (
	LanguageGerman  = entity.LanguageGerman
	LanguageEnglish = entity.LanguageEnglish
)

func defaultUseCase() *billing.GenerateInvoiceUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "warn"})
	return billing.NewGenerateInvoiceUseCase(pdf.NewRenderer(log), logo.NewResolver(log), log)
}

// GenerateInvoiceBuffer erzeugt die Rechnung als PDF-Bytes im Speicher.
func GenerateInvoiceBuffer(ctx context.Context, data *InvoiceData) ([]byte, error) {
	return defaultUseCase().GenerateBuffer(ctx, data)
}

// GenerateInvoice erzeugt die Rechnung und schreibt sie als Datei.
// Leerer outputPath → "Rechnung_<Nummer>.pdf". Liefert den Zielpfad.
func GenerateInvoice(ctx context.Context, data *InvoiceData, outputPath string) (string, error) {
	return defaultUseCase().GenerateFile(ctx, data, outputPath)
}

// LoadInvoiceFromFile liest eine Rechnung aus einer JSON-Datei.
func LoadInvoiceFromFile(path string) (*InvoiceData, error) {
	return billing.LoadInvoiceFromFile(path)
}

// Validate prüft die Pflichtangaben, ohne zu rendern.
func Validate(data *InvoiceData) error {
	return billing.Validate(data)
}

// ComputeTotals berechnet die Summen und die Umsatzsteuer je Steuersatz.
func ComputeTotals(items []LineItem, shipping *ShippingCost) *InvoiceTotals {
	return billing.ComputeTotals(items, shipping)
}
