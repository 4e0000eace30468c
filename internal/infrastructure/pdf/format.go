package pdf

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter kapselt die lokalisierte Zahlen- und Datumsformatierung:
// deutsches Zahlenformat, Währungssymbol über den ISO-Code.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter erstellt einen Formatter für den Währungscode (leer = EUR).
// Unbekannte Codes werden unverändert als Symbol übernommen.
func NewFormatter(currencyCode string) *Formatter {
	if currencyCode == "" {
		currencyCode = "EUR"
	}
	symbol := currencyCode
	if unit, err := currency.ParseISO(currencyCode); err == nil {
		symbol = fmt.Sprint(currency.Symbol(unit))
	}
	return &Formatter{
		printer: message.NewPrinter(language.German),
		symbol:  symbol,
	}
}

// Money formatiert einen Betrag im deutschen Zahlenformat mit
// Währungssymbol, z. B. 1234.56 → "1.234,56 €" (geschütztes Leerzeichen).
func (f *Formatter) Money(amount float64) string {
	return f.printer.Sprintf("%v %s", number.Decimal(amount, number.Scale(2)), f.symbol)
}

var germanDate = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}`)

// Date liefert Daten im Format TT.MM.JJJJ. Bereits passende Werte werden
// unverändert durchgereicht; ISO-Formate werden umformatiert; alles andere
// bleibt wie eingegeben.
func (f *Formatter) Date(value string) string {
	if germanDate.MatchString(value) {
		return value
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02.01.2006")
		}
	}
	return value
}

// formatNumber gibt Mengen und Steuersätze ohne überflüssige
// Nachkommastellen aus (2 → "2", 2.5 → "2.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
