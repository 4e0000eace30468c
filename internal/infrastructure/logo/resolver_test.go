package logo_test

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rechnungpro/rechnung-pro/internal/domain/entity"
	"github.com/rechnungpro/rechnung-pro/internal/infrastructure/logo"
	"github.com/rechnungpro/rechnung-pro/pkg/logger"
)

func newResolver() *logo.Resolver {
	return logo.NewResolver(logger.New(logger.Config{Env: "development", Level: "error"}))
}

// Fall 1: Ohne Konfiguration gibt es kein Logo.
func TestResolve_OhneKonfiguration(t *testing.T) {
	assert.Nil(t, newResolver().Resolve(nil))
	assert.Nil(t, newResolver().Resolve(&entity.LogoConfig{}))
}

// Fall 2: Data-URI mit PNG-Kennung → Format "png", Präfix wird entfernt.
func TestResolve_Base64DataURI(t *testing.T) {
	raw := []byte("fake-image-bytes")
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	result := newResolver().Resolve(&entity.LogoConfig{LogoBase64: encoded})
	require.NotNil(t, result)
	assert.Equal(t, raw, result.Data)
	assert.Equal(t, "png", result.Format)
	assert.Equal(t, 150.0, result.MaxWidth, "ohne Angabe gelten die Standardmaße")
	assert.Equal(t, 60.0, result.MaxHeight)
}

// Fall 2b: Nacktes Base64 ohne PNG-Kennung wird als JPEG behandelt.
func TestResolve_Base64OhneKennungIstJpg(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff})

	result := newResolver().Resolve(&entity.LogoConfig{LogoBase64: encoded})
	require.NotNil(t, result)
	assert.Equal(t, "jpg", result.Format)
}

// Fall 3: Unbrauchbares Base64 → kein Logo, kein Rückfall auf den Pfad.
func TestResolve_KaputtesBase64KeinRueckfall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	result := newResolver().Resolve(&entity.LogoConfig{
		LogoBase64: "data:image/png;base64,!!!nicht-base64!!!",
		LogoPath:   path,
	})
	assert.Nil(t, result, "kaputtes Base64 darf nicht auf den Dateipfad zurückfallen")
}

// Fall 4: Dateipfad wird gelesen, Format folgt der Endung.
func TestResolve_Dateipfad(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "logo.PNG")
	jpgPath := filepath.Join(dir, "logo.jpeg")
	require.NoError(t, os.WriteFile(pngPath, []byte("png-bytes"), 0o644))
	require.NoError(t, os.WriteFile(jpgPath, []byte("jpg-bytes"), 0o644))

	png := newResolver().Resolve(&entity.LogoConfig{LogoPath: pngPath, MaxWidth: 200, MaxHeight: 80})
	require.NotNil(t, png)
	assert.Equal(t, "png", png.Format, "die Endung .PNG muss unabhängig von der Schreibweise erkannt werden")
	assert.Equal(t, []byte("png-bytes"), png.Data)
	assert.Equal(t, 200.0, png.MaxWidth)
	assert.Equal(t, 80.0, png.MaxHeight)

	jpg := newResolver().Resolve(&entity.LogoConfig{LogoPath: jpgPath})
	require.NotNil(t, jpg)
	assert.Equal(t, "jpg", jpg.Format)
}

// Fall 5: Nicht lesbare Datei → kein Logo, kein Fehler.
func TestResolve_DateiNichtLesbar(t *testing.T) {
	result := newResolver().Resolve(&entity.LogoConfig{LogoPath: filepath.Join(t.TempDir(), "fehlt.png")})
	assert.Nil(t, result)
}

// Fall 6: Base64 gewinnt gegen den Dateipfad.
func TestResolve_Base64HatVorrang(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("datei-bytes"), 0o644))

	raw := []byte("base64-bytes")
	result := newResolver().Resolve(&entity.LogoConfig{
		LogoBase64: base64.StdEncoding.EncodeToString(raw),
		LogoPath:   path,
	})
	require.NotNil(t, result)
	assert.Equal(t, raw, result.Data)
}
