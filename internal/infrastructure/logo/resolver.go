// Package logo löst die Logo-Konfiguration einer Rechnung zu Rohbytes auf:
// Base64-Daten haben Vorrang, sonst wird der Dateipfad gelesen. Jeder
// Fehlschlag ist nicht fatal, die Rechnung wird dann ohne Logo erzeugt.
package logo

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/rechnungpro/rechnung-pro/internal/domain/entity"
	"github.com/rechnungpro/rechnung-pro/pkg/logger"
)

// Maximalmaße in pt, wenn die Konfiguration keine angibt.
const (
	defaultMaxWidth  = 150.0
	defaultMaxHeight = 60.0
)

// Resolver implementiert billing.LogoResolver.
type Resolver struct {
	log *logger.Logger
}

// NewResolver erstellt den Logo-Resolver.
func NewResolver(log *logger.Logger) *Resolver {
	return &Resolver{log: log}
}

// Resolve liefert das aufgelöste Logo oder nil (kein Logo konfiguriert oder
// Quelle nicht lesbar). Unbrauchbare Base64-Daten fallen nicht auf den
// Dateipfad zurück.
func (r *Resolver) Resolve(cfg *entity.LogoConfig) *entity.Logo {
	if cfg == nil {
		return nil
	}

	maxWidth := cfg.MaxWidth
	if maxWidth <= 0 {
		maxWidth = defaultMaxWidth
	}
	maxHeight := cfg.MaxHeight
	if maxHeight <= 0 {
		maxHeight = defaultMaxHeight
	}

	if cfg.LogoBase64 != "" {
		payload := cfg.LogoBase64
		// Data-URI-Präfix ("data:image/png;base64,...") abschneiden
		if strings.HasPrefix(payload, "data:") {
			if idx := strings.Index(payload, ","); idx >= 0 {
				payload = payload[idx+1:]
			}
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			r.log.Warn().Err(err).Msg("logoBase64 nicht dekodierbar, rechnung wird ohne logo erzeugt")
			return nil
		}
		format := "jpg"
		if strings.Contains(cfg.LogoBase64, "image/png") {
			format = "png"
		}
		return &entity.Logo{Data: data, Format: format, MaxWidth: maxWidth, MaxHeight: maxHeight}
	}

	if cfg.LogoPath != "" {
		data, err := os.ReadFile(cfg.LogoPath)
		if err != nil {
			r.log.Warn().Str("pfad", cfg.LogoPath).Err(err).Msg("logo-datei nicht lesbar, rechnung wird ohne logo erzeugt")
			return nil
		}
		format := "jpg"
		if strings.EqualFold(filepath.Ext(cfg.LogoPath), ".png") {
			format = "png"
		}
		return &entity.Logo{Data: data, Format: format, MaxWidth: maxWidth, MaxHeight: maxHeight}
	}

	return nil
}
