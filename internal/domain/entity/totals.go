package entity

import "sort"

// ShippingTotals aufgeschlüsselte Versandkosten. TaxRate ist der dominante
// Steuersatz der Positionen, zu dem der Versand herausgerechnet wurde.
type ShippingTotals struct {
	Gross   float64
	Net     float64
	Tax     float64
	TaxRate float64
}

// InvoiceTotals abgeleitete Summen einer Rechnung. Wird ausschließlich
// berechnet, nie eingelesen. TaxAmounts hält den Steuerbetrag je Steuersatz
// (Schlüssel = Satz in Prozent, z. B. 19).
type InvoiceTotals struct {
	ItemsGrossTotal float64
	NetTotal        float64
	TaxAmounts      map[float64]float64
	GrossTotal      float64
	Shipping        ShippingTotals
}

// SortedTaxRates liefert die vorkommenden Steuersätze aufsteigend sortiert,
// für eine deterministische Ausgabe im Summenblock.
func (t *InvoiceTotals) SortedTaxRates() []float64 {
	rates := make([]float64, 0, len(t.TaxAmounts))
	for rate := range t.TaxAmounts {
		rates = append(rates, rate)
	}
	sort.Float64s(rates)
	return rates
}
