package billing

import (
	"github.com/rechnungpro/rechnung-pro/internal/domain"
	"github.com/rechnungpro/rechnung-pro/internal/domain/entity"
)

// Validate prüft die deutschen Pflichtangaben, bevor Render-Ressourcen
// angefasst werden. Mehr wird hier bewusst nicht validiert; fehlende
// optionale Felder führen nur zu leeren Bereichen im Layout.
func Validate(data *entity.InvoiceData) error {
	if data.TaxIdentifiers.Steuernummer == "" && data.TaxIdentifiers.UstIDNr == "" {
		return domain.ErrMissingTaxIdentifier
	}
	if len(data.LineItems) == 0 {
		return domain.ErrNoLineItems
	}
	return nil
}
