package pdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Decoder für die Logo-Vorprüfung
	_ "image/png"

	"github.com/jung-kurt/gofpdf"
)

// Color RGB-Farbwerte (0–255).
type Color struct {
	R, G, B int
}

// Font Schriftschnitt für eine einzelne Zeichenoperation.
type Font struct {
	Size  float64
	Bold  bool
	Color Color
}

// ImageRef referenziert ein eingebettetes Bild samt intrinsischer Größe.
// Bei 72 dpi entspricht ein Pixel einem pt.
type ImageRef struct {
	name   string
	format string
	Width  float64
	Height float64
}

// Surface ist die Zeichenfläche, gegen die die Layout-Engine arbeitet.
// y wächst nach unten; Textkoordinaten bezeichnen die Grundlinie.
type Surface interface {
	Text(x, y float64, text string, f Font)
	TextWidth(text string, f Font) float64
	Line(x1, y1, x2, y2, width float64, c Color)
	FillRect(x, y, w, h float64, c Color)
	AddImage(data []byte, format string) (ImageRef, error)
	DrawImage(ref ImageRef, x, y, w, h float64)
}

// fpdfSurface implementiert Surface über gofpdf: eine A4-Seite, pt-Einheiten,
// kein automatischer Seitenumbruch.
type fpdfSurface struct {
	doc    *gofpdf.Fpdf
	tr     func(string) string // UTF-8 → cp1252 für die Standardschriften
	imgSeq int
}

func newFpdfSurface() *fpdfSurface {
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return &fpdfSurface{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
}

func (s *fpdfSurface) applyFont(f Font) {
	style := ""
	if f.Bold {
		style = "B"
	}
	s.doc.SetFont("Helvetica", style, f.Size)
	s.doc.SetTextColor(f.Color.R, f.Color.G, f.Color.B)
}

func (s *fpdfSurface) Text(x, y float64, text string, f Font) {
	s.applyFont(f)
	s.doc.Text(x, y, s.tr(text))
}

func (s *fpdfSurface) TextWidth(text string, f Font) float64 {
	s.applyFont(f)
	return s.doc.GetStringWidth(s.tr(text))
}

func (s *fpdfSurface) Line(x1, y1, x2, y2, width float64, c Color) {
	s.doc.SetLineWidth(width)
	s.doc.SetDrawColor(c.R, c.G, c.B)
	s.doc.Line(x1, y1, x2, y2)
}

func (s *fpdfSurface) FillRect(x, y, w, h float64, c Color) {
	s.doc.SetFillColor(c.R, c.G, c.B)
	s.doc.Rect(x, y, w, h, "F")
}

// AddImage prüft die Bilddaten und registriert sie im Dokument. Die Prüfung
// mit image.DecodeConfig fängt kaputte Daten ab, bevor gofpdf in seinen
// dokumentweiten Fehlerzustand läuft, und liefert zugleich die intrinsische
// Größe für die Skalierung.
func (s *fpdfSurface) AddImage(data []byte, format string) (ImageRef, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageRef{}, fmt.Errorf("bilddaten dekodieren: %w", err)
	}

	s.imgSeq++
	name := fmt.Sprintf("logo-%d", s.imgSeq)
	s.doc.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: format}, bytes.NewReader(data))
	if s.doc.Err() {
		return ImageRef{}, fmt.Errorf("bild registrieren: %w", s.doc.Error())
	}

	return ImageRef{
		name:   name,
		format: format,
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
	}, nil
}

func (s *fpdfSurface) DrawImage(ref ImageRef, x, y, w, h float64) {
	s.doc.ImageOptions(ref.name, x, y, w, h, false, gofpdf.ImageOptions{ImageType: ref.format}, 0, "")
}

// Output schließt die Seite ab und liefert das PDF als Bytes.
func (s *fpdfSurface) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf ausgeben: %w", err)
	}
	return buf.Bytes(), nil
}
