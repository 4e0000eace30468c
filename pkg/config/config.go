package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config Konfiguration des Werkzeugs (Lesen via Viper aus Env und optional Datei).
type Config struct {
	App    AppConfig
	Log    LogConfig
	Output OutputConfig
}

// AppConfig allgemeine Anwendungskonfiguration.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig Protokollierung.
type LogConfig struct {
	Level string
}

// OutputConfig Standard-Eingabedatei und Zielverzeichnis der erzeugten PDFs.
type OutputConfig struct {
	DefaultInput string
	Dir          string
}

// Load liest die Konfiguration aus Umgebungsvariablen (und optional aus einer
// .env-/config-Datei). Env-Variablen haben Vorrang. Erwartete Namen:
// APP_ENV, LOG_LEVEL, RECHNUNG_DEFAULT_INPUT, RECHNUNG_OUTPUT_DIR.
func Load() (*Config, error) {
	v := viper.New()

	// Optional: Konfigurationsdatei (.env oder config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Fehler ignorieren, wenn keine Datei existiert

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "rechnung-pro"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Output: OutputConfig{
			DefaultInput: getString(v, "RECHNUNG_DEFAULT_INPUT", "invoice_input.json"),
			Dir:          getString(v, "RECHNUNG_OUTPUT_DIR", "."),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
