package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Fall 1: Beträge erscheinen im deutschen Zahlenformat mit Euro-Symbol
// (geschütztes Leerzeichen vor dem Symbol).
func TestMoney_DeutschesFormat(t *testing.T) {
	f := NewFormatter("")

	assert.Equal(t, "1.234,56 €", f.Money(1234.56))
	assert.Equal(t, "10,00 €", f.Money(10))
	assert.Equal(t, "0,50 €", f.Money(0.5))
}

// Fall 2: Unbekannte Währungscodes werden unverändert als Symbol verwendet.
func TestMoney_UnbekannterWaehrungscode(t *testing.T) {
	f := NewFormatter("ZZZ")
	assert.Equal(t, "10,00 ZZZ", f.Money(10))
}

// Fall 1: TT.MM.JJJJ wird unverändert durchgereicht.
func TestDate_DeutschesDatumBleibt(t *testing.T) {
	f := NewFormatter("")
	assert.Equal(t, "01.08.2026", f.Date("01.08.2026"))
}

// Fall 2: ISO-Formate werden nach TT.MM.JJJJ umformatiert.
func TestDate_ISOWirdUmformatiert(t *testing.T) {
	f := NewFormatter("")
	assert.Equal(t, "01.08.2026", f.Date("2026-08-01"))
	assert.Equal(t, "01.08.2026", f.Date("2026-08-01T10:30:00Z"))
}

// Fall 3: Nicht parsebare Werte bleiben wie eingegeben (z. B. Zeiträume).
func TestDate_UnparsebaresBleibt(t *testing.T) {
	f := NewFormatter("")
	assert.Equal(t, "KW 31/2026", f.Date("KW 31/2026"))
	assert.Equal(t, "", f.Date(""))
}

func TestFormatNumber_OhneUeberfluessigeNullen(t *testing.T) {
	assert.Equal(t, "2", formatNumber(2))
	assert.Equal(t, "2.5", formatNumber(2.5))
	assert.Equal(t, "19", formatNumber(19))
}
