// Package pdf implementiert die Layout-Engine für die Rechnung als
// einseitiges A4-Dokument (595.28 × 841.89 pt, Rand 50 pt).
//
// Seitenaufbau:
//
//	┌────────────────────────────────────────────────────────────┐
//	│  RECHNUNG                                       [Logo]     │
//	│  Absender · Straße · PLZ Ort                               │
//	│  Empfängerblock                 Rechnungsnummer: …         │
//	│                                 Rechnungsdatum:  …         │
//	│  ──────────────────────────────────────────────────────────│
//	│  Pos. │ Beschreibung │ Menge │ Einheit │ … │ USt. │ Gesamt │
//	│  ──────────────────────────────────────────────────────────│
//	│                              Versandkosten:        …       │
//	│                              Gesamt Netto:         …       │
//	│                              19% Umsatzsteuer:     …       │
//	│                              ═══ Rechnungsbetrag ═══       │
//	│  HINWEISE (optional)                                       │
//	│  ──────────────────────────────────────────────────────────│
//	│  Adresse        │ Steuernummern     │ Bankverbindung       │
//	└────────────────────────────────────────────────────────────┘
//
// Alle Zeichenoperationen laufen über die Surface-Abstraktion; gofpdf ist
// das konkrete Backend. Der Cursor wandert ausschließlich nach unten.
package pdf

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rechnungpro/rechnung-pro/internal/domain/entity"
	"github.com/rechnungpro/rechnung-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Maße und Farben
// ──────────────────────────────────────────────────────────────────────────────

const (
	pageWidth    = 595.28
	pageHeight   = 841.89
	margin       = 50.0
	contentWidth = pageWidth - 2*margin

	tableHeaderHeight = 28.0
	tableRowMinHeight = 22.0
	tableLineHeight   = 12.0
	tableCellPadding  = 5.0

	footerBaseline = pageHeight - 60.0
)

// Spaltenbreiten der Positionstabelle: Pos., Beschreibung (Rest), Menge,
// Einheit, Einzelpreis, USt., Gesamt.
var colWidths = [7]float64{30, contentWidth - 305, 40, 45, 70, 40, 80}

// colX linke Kante jeder Spalte.
var colX = func() [7]float64 {
	var x [7]float64
	x[0] = margin
	for i := 1; i < len(x); i++ {
		x[i] = x[i-1] + colWidths[i-1]
	}
	return x
}()

var (
	colorBlack = Color{R: 0, G: 0, B: 0}
	colorGray  = Color{R: 107, G: 114, B: 128}
	colorFill  = Color{R: 249, G: 250, B: 251}
	colorRule  = Color{R: 229, G: 231, B: 235}

	defaultAccent = Color{R: 55, G: 65, B: 81}
)

func regular(size float64, c Color) Font { return Font{Size: size, Color: c} }
func bold(size float64, c Color) Font    { return Font{Size: size, Bold: true, Color: c} }

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// parseAccentColor parst "#rrggbb"; ungültige oder leere Werte fallen auf
// die Standard-Akzentfarbe zurück.
func parseAccentColor(s string) Color {
	m := hexColor.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return defaultAccent
	}
	v, _ := strconv.ParseUint(m[1], 16, 32)
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

// wrapText bricht Text an Leerzeichen um, sodass jede Zeile in maxWidth
// passt. Wörter werden nie getrennt; ein einzelnes überlanges Wort bleibt
// auf seiner Zeile.
func wrapText(s Surface, text string, maxWidth float64, f Font) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if s.TextWidth(candidate, f) > maxWidth {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	return append(lines, current)
}

// ──────────────────────────────────────────────────────────────────────────────
// Renderer
// ──────────────────────────────────────────────────────────────────────────────

// Renderer implementiert billing.DocumentRenderer über eine gofpdf-Surface.
type Renderer struct {
	log *logger.Logger
}

// NewRenderer erstellt den PDF-Renderer.
func NewRenderer(log *logger.Logger) *Renderer {
	return &Renderer{log: log}
}

// Render erzeugt das fertige PDF als Bytes.
func (r *Renderer) Render(_ context.Context, data *entity.InvoiceData, totals *entity.InvoiceTotals, logo *entity.Logo) ([]byte, error) {
	s := newFpdfSurface()
	r.renderOn(s, data, totals, logo)
	return s.Output()
}

// renderOn führt den Layout-Durchlauf gegen eine beliebige Surface aus.
func (r *Renderer) renderOn(s Surface, data *entity.InvoiceData, totals *entity.InvoiceTotals, logo *entity.Logo) {
	l := &layout{
		s:      s,
		data:   data,
		totals: totals,
		labels: entity.LabelsFor(data.Language),
		fmt:    NewFormatter(data.Currency),
		accent: parseAccentColor(data.AccentColor),
		log:    r.log,
		y:      margin,
	}
	l.drawLogo(logo)
	l.drawHeader()
	l.drawMetadata()
	l.drawRecipient()
	l.drawItemTable()
	l.drawTotals()
	l.drawNotes()
	l.drawFooter()
}

// layout hält den Zustand eines einzelnen Durchlaufs; y ist der nach unten
// wandernde Cursor.
type layout struct {
	s      Surface
	data   *entity.InvoiceData
	totals *entity.InvoiceTotals
	labels entity.Labels
	fmt    *Formatter
	accent Color
	log    *logger.Logger
	y      float64
}

func (l *layout) text(x, y float64, txt string, f Font) {
	l.s.Text(x, y, txt, f)
}

// textRight zeichnet rechtsbündig: rightX ist die rechte Kante des Textes.
func (l *layout) textRight(rightX, y float64, txt string, f Font) {
	l.s.Text(rightX-l.s.TextWidth(txt, f), y, txt, f)
}

// ──────────────────────────────────────────────────────────────────────────────
// Abschnitte
// ──────────────────────────────────────────────────────────────────────────────

// drawLogo zeichnet das Logo oben rechts, proportional in die Maximalfläche
// skaliert. Ein Einbettungsfehler bricht die Generierung nicht ab.
func (l *layout) drawLogo(logo *entity.Logo) {
	if logo == nil {
		return
	}
	ref, err := l.s.AddImage(logo.Data, logo.Format)
	if err != nil {
		l.log.Warn().Err(err).Msg("logo konnte nicht eingebettet werden, rechnung wird ohne logo erzeugt")
		return
	}
	scale := math.Min(logo.MaxWidth/ref.Width, logo.MaxHeight/ref.Height)
	w := ref.Width * scale
	h := ref.Height * scale
	l.s.DrawImage(ref, pageWidth-margin-w, margin-15, w, h)
}

// drawHeader zeichnet den Titel und die kleine Absenderzeile darunter.
func (l *layout) drawHeader() {
	l.text(margin, l.y+20, l.labels.Invoice, regular(28, l.accent))
	l.y += 80

	sender := l.data.Sender
	senderLine := sender.Name + " · " + sender.Street + " · " + sender.PostalCode + " " + sender.City
	l.text(margin, l.y, senderLine, regular(8, colorGray))
	l.y += 20
}

// drawMetadata zeichnet den rechtsbündigen Metadatenblock. Er liegt in einem
// festen Bereich rechts oben und bewegt den Cursor nicht.
func (l *layout) drawMetadata() {
	labelX := pageWidth - margin - 180
	valueX := pageWidth - margin
	y := margin + 60.0

	row := func(label, value string) {
		l.text(labelX, y, label, regular(9, colorGray))
		l.textRight(valueX, y, value, bold(9, colorBlack))
		y += 14
	}

	row(l.labels.InvoiceNumber, l.data.InvoiceNumber)
	if l.data.OrderNumber != "" {
		row(l.labels.OrderNumber, l.data.OrderNumber)
	}
	row(l.labels.InvoiceDate, l.fmt.Date(l.data.IssueDate))
	if l.data.DeliveryDate != "" {
		// Lieferdatum unverändert übernehmen, es darf auch ein Zeitraum sein
		row(l.labels.DeliveryDate, l.data.DeliveryDate)
	}
}

// drawRecipient zeichnet den Empfängerblock.
func (l *layout) drawRecipient() {
	rec := l.data.Recipient

	l.text(margin, l.y, rec.Name, bold(11, colorBlack))
	l.y += 14

	body := regular(11, colorBlack)
	if rec.AddressLine2 != "" {
		l.text(margin, l.y, rec.AddressLine2, body)
		l.y += 14
	}
	l.text(margin, l.y, rec.Street, body)
	l.y += 14
	l.text(margin, l.y, rec.PostalCode+" "+rec.City, body)
	l.y += 14
	if rec.Country != "" {
		l.text(margin, l.y, rec.Country, body)
		l.y += 14
	}

	l.y += 40
}

// drawItemTable zeichnet Kopfzeile und Positionszeilen der Tabelle.
// Zeilen wachsen mit umbrochenen Beschreibungen; jede zweite Zeile ist
// hinterlegt.
func (l *layout) drawItemTable() {
	tableRight := margin + contentWidth

	// Kopfzeile
	l.s.FillRect(margin, l.y, contentWidth, tableHeaderHeight, colorFill)
	headerY := l.y + 18
	header := bold(9, colorGray)
	l.text(colX[0]+tableCellPadding, headerY, l.labels.Position, header)
	l.text(colX[1]+tableCellPadding, headerY, l.labels.Description, header)
	l.textRight(colX[2]+colWidths[2]-tableCellPadding, headerY, l.labels.Quantity, header)
	l.text(colX[3]+tableCellPadding, headerY, l.labels.Unit, header)
	l.textRight(colX[4]+colWidths[4]-tableCellPadding, headerY, l.labels.UnitPrice, header)
	l.textRight(colX[5]+colWidths[5]-tableCellPadding, headerY, l.labels.VAT, header)
	l.textRight(colX[6]+colWidths[6]-tableCellPadding, headerY, l.labels.TotalGross, header)
	l.y += tableHeaderHeight
	l.s.Line(margin, l.y, tableRight, l.y, 1, colorBlack)

	// Positionen
	body := regular(9, colorBlack)
	for i, item := range l.data.LineItems {
		descLines := wrapText(l.s, item.Description, colWidths[1]-2*tableCellPadding, body)
		rowHeight := tableRowMinHeight + float64(len(descLines)-1)*tableLineHeight

		if i%2 == 1 {
			l.s.FillRect(margin, l.y, contentWidth, rowHeight, colorFill)
		}

		position := item.Position
		if position == 0 {
			position = i + 1
		}

		cellY := l.y + 15
		l.text(colX[0]+10, cellY, strconv.Itoa(position), body)
		for j, line := range descLines {
			l.text(colX[1]+tableCellPadding, cellY+float64(j)*tableLineHeight, line, body)
		}
		l.textRight(colX[2]+colWidths[2]-tableCellPadding, cellY, formatNumber(item.Quantity), body)
		l.text(colX[3]+10, cellY, entity.TranslateUnit(item.Unit, l.data.Language), body)
		l.textRight(colX[4]+colWidths[4]-tableCellPadding, cellY, l.fmt.Money(item.UnitPrice), body)
		l.textRight(colX[5]+colWidths[5]-tableCellPadding, cellY, formatNumber(item.TaxRate)+"%", body)
		l.textRight(colX[6]+colWidths[6]-tableCellPadding, cellY, l.fmt.Money(item.Quantity*item.UnitPrice), body)

		l.y += rowHeight
		if i < len(l.data.LineItems)-1 {
			l.s.Line(margin, l.y, tableRight, l.y, 0.5, colorRule)
		}
	}

	l.s.Line(margin, l.y, tableRight, l.y, 1, colorBlack)
	l.y += 20
}

// drawTotals zeichnet den Summenblock unter den letzten beiden Spalten:
// optional Versandkosten, Netto, Umsatzsteuer je Satz aufsteigend, zum
// Schluss der unterstrichene Rechnungsbetrag.
func (l *layout) drawTotals() {
	sumLabelX := colX[5] + colWidths[5] - tableCellPadding
	sumValueX := colX[6] + colWidths[6] - tableCellPadding
	body := regular(9, colorBlack)

	if l.totals.Shipping.Gross > 0 {
		desc := l.labels.Shipping
		if l.data.Shipping != nil && l.data.Shipping.Description != "" {
			desc = l.data.Shipping.Description
		}
		l.textRight(sumLabelX, l.y, desc+":", body)
		l.textRight(sumValueX, l.y, l.fmt.Money(l.totals.Shipping.Gross), body)
		l.y += 14
	}

	l.textRight(sumLabelX, l.y, l.labels.TotalNet, body)
	l.textRight(sumValueX, l.y, l.fmt.Money(l.totals.NetTotal), body)
	l.y += 14

	for _, rate := range l.totals.SortedTaxRates() {
		l.textRight(sumLabelX, l.y, formatNumber(rate)+"% "+l.labels.VATAmount, body)
		l.textRight(sumValueX, l.y, l.fmt.Money(l.totals.TaxAmounts[rate]), body)
		l.y += 14
	}
	l.y += 6

	grand := bold(11, colorBlack)
	labelWidth := l.s.TextWidth(l.labels.InvoiceTotal, grand)
	l.s.Line(sumLabelX-labelWidth, l.y-4, sumValueX, l.y-4, 1, colorBlack)
	l.textRight(sumLabelX, l.y+8, l.labels.InvoiceTotal, grand)
	l.textRight(sumValueX, l.y+8, l.fmt.Money(l.totals.GrossTotal), grand)
	l.y += 40
}

// drawNotes zeichnet den optionalen Hinweisblock.
func (l *layout) drawNotes() {
	if l.data.Notes == "" {
		return
	}
	l.text(margin, l.y, l.labels.Notes, bold(11, l.accent))
	l.y += 16

	body := regular(9, colorBlack)
	for _, line := range wrapText(l.s, l.data.Notes, contentWidth, body) {
		l.text(margin, l.y, line, body)
		l.y += 12
	}
	l.y += 8
}

// drawFooter zeichnet die drei Fußzeilenspalten (Anschrift, Steuernummern,
// Bankverbindung) an fester Position am unteren Seitenrand.
func (l *layout) drawFooter() {
	l.s.Line(margin, footerBaseline-15, pageWidth-margin, footerBaseline-15, 0.5, colorRule)

	small := regular(8, colorGray)
	column := func(x float64, lines []string) {
		y := footerBaseline
		for _, line := range lines {
			l.text(x, y, line, small)
			y += 10
		}
	}

	sender := l.data.Sender
	address := []string{sender.Name, sender.Street, sender.PostalCode + " " + sender.City}
	if sender.Country != "" {
		address = append(address, sender.Country)
	}
	if sender.Email != "" {
		address = append(address, sender.Email)
	}

	var taxIDs []string
	if l.data.TaxIdentifiers.UstIDNr != "" {
		taxIDs = append(taxIDs, l.labels.VATID+" "+l.data.TaxIdentifiers.UstIDNr)
	}
	if l.data.TaxIdentifiers.Steuernummer != "" {
		taxIDs = append(taxIDs, l.labels.TaxNumber+" "+l.data.TaxIdentifiers.Steuernummer)
	}

	bank := l.data.BankDetails
	var bankLines []string
	if bank.BankName != "" {
		bankLines = append(bankLines, bank.BankName)
	}
	if bank.IBAN != "" {
		bankLines = append(bankLines, l.labels.IBAN+" "+bank.IBAN)
	}
	if bank.BIC != "" {
		bankLines = append(bankLines, l.labels.BIC+" "+bank.BIC)
	}
	if bank.AccountHolder != "" {
		bankLines = append(bankLines, bank.AccountHolder)
	}

	column(margin, address)
	column(margin+180, taxIDs)
	column(margin+360, bankLines)
}
