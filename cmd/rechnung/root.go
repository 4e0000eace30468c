package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rechnungpro/rechnung-pro/internal/application/billing"
	"github.com/rechnungpro/rechnung-pro/internal/infrastructure/logo"
	"github.com/rechnungpro/rechnung-pro/internal/infrastructure/pdf"
	"github.com/rechnungpro/rechnung-pro/pkg/config"
	"github.com/rechnungpro/rechnung-pro/pkg/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rechnung [eingabedatei] [ausgabedatei]",
	Short: "Erzeugt deutsche Rechnungs-PDFs aus JSON-Eingaben",
	Long: `rechnung liest eine JSON-Rechnungsdatei, prüft die Pflichtangaben
(§14 UStG), rechnet die Umsatzsteuer je Steuersatz heraus und erzeugt ein
einseitiges A4-PDF mit Positionstabelle, Summenblock und Fußzeile
(Anschrift, Steuernummern, Bankverbindung).

Ohne Argumente wird die konfigurierte Standarddatei gelesen und der
Dateiname aus der Rechnungsnummer abgeleitet (Rechnung_<Nummer>.pdf).`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute startet die CLI; Fehler enden mit Exit-Code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "ausführliche Protokollausgabe")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("konfiguration laden: %w", err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level})

	inputFile := cfg.Output.DefaultInput
	if len(args) > 0 {
		inputFile = args[0]
	}
	outputFile := ""
	if len(args) > 1 {
		outputFile = args[1]
	}

	fmt.Println("Deutscher Rechnungs-Generator")
	fmt.Println("=============================")
	fmt.Printf("Lese Rechnungsdaten aus: %s\n", inputFile)

	data, err := billing.LoadInvoiceFromFile(inputFile)
	if err != nil {
		return err
	}
	fmt.Printf("  Rechnungsnummer: %s\n", data.InvoiceNumber)
	fmt.Printf("  Empfänger:       %s\n", data.Recipient.Name)
	fmt.Printf("  Positionen:      %d\n", len(data.LineItems))

	uc := billing.NewGenerateInvoiceUseCase(pdf.NewRenderer(log), logo.NewResolver(log), log)

	if outputFile == "" {
		outputFile = filepath.Join(cfg.Output.Dir, billing.DefaultFilename(data.InvoiceNumber))
	}

	fmt.Println("Erzeuge PDF ...")
	path, err := uc.GenerateFile(cmd.Context(), data, outputFile)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fmt.Printf("Fertig! Rechnung gespeichert unter: %s\n", abs)
	return nil
}
