package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/google/uuid"

	"github.com/rechnungpro/rechnung-pro/internal/domain/entity"
	"github.com/rechnungpro/rechnung-pro/pkg/logger"
)

// GenerateInvoiceUseCase orchestriert die Erzeugung einer Rechnung:
// Validierung → Summierung → Logo-Auflösung → Rendern.
type GenerateInvoiceUseCase struct {
	renderer DocumentRenderer
	logos    LogoResolver
	log      *logger.Logger
}

// NewGenerateInvoiceUseCase erstellt den Usecase mit seinen Abhängigkeiten.
func NewGenerateInvoiceUseCase(renderer DocumentRenderer, logos LogoResolver, log *logger.Logger) *GenerateInvoiceUseCase {
	return &GenerateInvoiceUseCase{renderer: renderer, logos: logos, log: log}
}

// GenerateBuffer erzeugt das fertige PDF im Speicher.
// Schlägt die Pflichtangaben-Prüfung fehl, wird nichts gerendert.
func (uc *GenerateInvoiceUseCase) GenerateBuffer(ctx context.Context, data *entity.InvoiceData) ([]byte, error) {
	// 1. Pflichtangaben prüfen
	if err := Validate(data); err != nil {
		return nil, err
	}

	log := uc.log.With().
		Str("run_id", uuid.NewString()).
		Str("rechnung", data.InvoiceNumber).
		Logger()

	// 2. Summen je Steuersatz berechnen
	totals := ComputeTotals(data.LineItems, data.Shipping)
	log.Debug().
		Int("positionen", len(data.LineItems)).
		Float64("brutto", totals.GrossTotal).
		Msg("summen berechnet")

	// 3. Logo auflösen (Fehlschlag ist nicht fatal)
	logo := uc.logos.Resolve(data.Logo)

	// 4. Dokument rendern
	pdfBytes, err := uc.renderer.Render(ctx, data, totals, logo)
	if err != nil {
		return nil, fmt.Errorf("rechnung %s: dokument rendern: %w", data.InvoiceNumber, err)
	}
	log.Debug().Int("bytes", len(pdfBytes)).Msg("dokument erzeugt")

	return pdfBytes, nil
}

// GenerateFile erzeugt das PDF und schreibt es erst nach vollständiger
// Assemblierung auf den Datenträger; bei Fehlern entsteht kein
// partielles Artefakt. Leerer outputPath → abgeleiteter Standardname.
func (uc *GenerateInvoiceUseCase) GenerateFile(ctx context.Context, data *entity.InvoiceData, outputPath string) (string, error) {
	pdfBytes, err := uc.GenerateBuffer(ctx, data)
	if err != nil {
		return "", err
	}

	path := outputPath
	if path == "" {
		path = DefaultFilename(data.InvoiceNumber)
	}
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return "", fmt.Errorf("rechnung %s: datei schreiben: %w", data.InvoiceNumber, err)
	}

	uc.log.Info().Str("rechnung", data.InvoiceNumber).Str("pfad", path).Msg("rechnung gespeichert")
	return path, nil
}

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// DefaultFilename leitet den Standard-Dateinamen aus der Rechnungsnummer ab:
// "Rechnung_<Nummer>.pdf", Sonderzeichen durch "_" ersetzt.
func DefaultFilename(invoiceNumber string) string {
	return "Rechnung_" + filenameSanitizer.ReplaceAllString(invoiceNumber, "_") + ".pdf"
}

// LoadInvoiceFromFile liest eine Rechnung aus einer JSON-Datei.
// Die inhaltliche Prüfung übernimmt Validate beim Generieren.
func LoadInvoiceFromFile(path string) (*entity.InvoiceData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("eingabedatei lesen: %w", err)
	}
	var data entity.InvoiceData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("eingabedatei %s: json parsen: %w", path, err)
	}
	return &data, nil
}
