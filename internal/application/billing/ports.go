package billing

import (
	"context"

	"github.com/rechnungpro/rechnung-pro/internal/domain/entity"
)

// DocumentRenderer erzeugt aus den Rechnungsdaten, den berechneten Summen und
// dem optionalen Logo das fertige Dokument als Bytes.
type DocumentRenderer interface {
	Render(ctx context.Context, data *entity.InvoiceData, totals *entity.InvoiceTotals, logo *entity.Logo) ([]byte, error)
}

// LogoResolver löst die optionale Logo-Konfiguration zu Rohbytes auf.
// nil bedeutet: ohne Logo rendern (kein Logo konfiguriert oder Quelle
// nicht lesbar).
type LogoResolver interface {
	Resolve(cfg *entity.LogoConfig) *entity.Logo
}
