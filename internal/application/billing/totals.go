// Package billing enthält die Kernlogik der Rechnungserstellung:
// Pflichtangaben-Prüfung, Steuersummierung je Steuersatz und die
// Orchestrierung des Render-Durchlaufs.
//
// Alle Beträge werden als float64 ohne Zwischenrundung geführt; gerundet wird
// erst bei der Darstellung. Bei Rechnungen mit sehr vielen Positionen kann
// dadurch eine Cent-Abweichung gegenüber positionsweiser Rundung entstehen
// (bekannte Einschränkung).
package billing

import (
	"github.com/rechnungpro/rechnung-pro/internal/domain/entity"
)

// defaultTaxRate deutscher Regelsteuersatz, greift ohne Positionen.
const defaultTaxRate = 19.0

// DominantTaxRate ermittelt den Steuersatz mit der größten Bruttosumme über
// alle Positionen. Bei Gleichstand gewinnt der in der Eingabereihenfolge
// zuerst vorkommende Satz; ohne Positionen gilt der Regelsteuersatz.
func DominantTaxRate(items []entity.LineItem) float64 {
	grossByRate := make(map[float64]float64, len(items))
	// Reihenfolge des ersten Auftretens festhalten, damit der Gleichstand
	// nicht von der Map-Iteration abhängt.
	order := make([]float64, 0, len(items))
	for _, item := range items {
		if _, seen := grossByRate[item.TaxRate]; !seen {
			order = append(order, item.TaxRate)
		}
		grossByRate[item.TaxRate] += item.Quantity * item.UnitPrice
	}

	dominant := defaultTaxRate
	maxGross := 0.0
	for _, rate := range order {
		if grossByRate[rate] > maxGross {
			maxGross = grossByRate[rate]
			dominant = rate
		}
	}
	return dominant
}

// ComputeTotals summiert die Rechnung: Bruttobeträge je Position, daraus
// herausgerechnete Umsatzsteuer je Steuersatz, optional die Versandkosten
// zum dominanten Steuersatz. Es gilt NetTotal + Σ Steuer = GrossTotal.
func ComputeTotals(items []entity.LineItem, shipping *entity.ShippingCost) *entity.InvoiceTotals {
	itemsGross := 0.0
	taxAmounts := make(map[float64]float64)
	for _, item := range items {
		gross := item.Quantity * item.UnitPrice
		itemsGross += gross
		net := gross / (1 + item.TaxRate/100)
		taxAmounts[item.TaxRate] += gross - net
	}

	var shippingTotals entity.ShippingTotals
	if shipping != nil && shipping.Amount > 0 {
		rate := DominantTaxRate(items)
		net := shipping.Amount / (1 + rate/100)
		shippingTotals = entity.ShippingTotals{
			Gross:   shipping.Amount,
			Net:     net,
			Tax:     shipping.Amount - net,
			TaxRate: rate,
		}
		if shippingTotals.Tax > 0 {
			taxAmounts[rate] += shippingTotals.Tax
		}
	}

	grossTotal := itemsGross + shippingTotals.Gross
	totalTax := 0.0
	for _, amount := range taxAmounts {
		totalTax += amount
	}

	return &entity.InvoiceTotals{
		ItemsGrossTotal: itemsGross,
		NetTotal:        grossTotal - totalTax,
		TaxAmounts:      taxAmounts,
		GrossTotal:      grossTotal,
		Shipping:        shippingTotals,
	}
}
