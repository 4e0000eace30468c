package billing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rechnungpro/rechnung-pro/internal/application/billing"
	"github.com/rechnungpro/rechnung-pro/internal/domain"
	"github.com/rechnungpro/rechnung-pro/internal/domain/entity"
)

// validInvoice baut eine minimal gültige Rechnung.
func validInvoice() *entity.InvoiceData {
	return &entity.InvoiceData{
		InvoiceNumber:  "RE-2026-001",
		IssueDate:      "01.08.2026",
		TaxIdentifiers: entity.TaxIdentifiers{UstIDNr: "DE123456789"},
		LineItems:      []entity.LineItem{item(100, 19)},
	}
}

// Fall 1: Gültige Rechnung passiert die Prüfung.
func TestValidate_GueltigeRechnung(t *testing.T) {
	assert.NoError(t, billing.Validate(validInvoice()))
}

// Fall 2: Ohne jede Steuerkennung wird abgelehnt.
func TestValidate_OhneSteuerkennung(t *testing.T) {
	data := validInvoice()
	data.TaxIdentifiers = entity.TaxIdentifiers{}

	err := billing.Validate(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingTaxIdentifier)

	var ce *domain.ComplianceError
	require.True(t, errors.As(err, &ce), "der Fehler muss ein ComplianceError sein")
	assert.Contains(t, ce.Reason, "Steuerkennung")
}

// Fall 2b: Eine der beiden Kennungen genügt.
func TestValidate_EineKennungGenuegt(t *testing.T) {
	data := validInvoice()
	data.TaxIdentifiers = entity.TaxIdentifiers{Steuernummer: "12/345/67890"}
	assert.NoError(t, billing.Validate(data))
}

// Fall 3: Ohne Positionen wird abgelehnt.
func TestValidate_OhnePositionen(t *testing.T) {
	data := validInvoice()
	data.LineItems = nil

	err := billing.Validate(data)
	assert.ErrorIs(t, err, domain.ErrNoLineItems)
}

// Fall 4: Fehlende optionale Felder (Bank, Notizen, Logo) sind kein Fehler.
func TestValidate_OptionaleFelderLeer(t *testing.T) {
	data := validInvoice()
	data.BankDetails = entity.BankDetails{}
	data.Notes = ""
	data.Logo = nil
	assert.NoError(t, billing.Validate(data))
}
