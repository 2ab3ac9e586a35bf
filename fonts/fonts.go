// Package fonts provides font resources and metrics for page stamps.
//
// Standard PDF fonts are referenced by name and measured with their built-in
// AFM widths. TrueType fonts are embedded and measured with metrics parsed from
// the font file.
package fonts

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"
)

// StandardType represents standard PDF fonts that are available in all PDF readers
// without embedding.
type StandardType int

const (
	// Helvetica is the standard sans-serif font.
	Helvetica StandardType = iota
	// HelveticaBold is bold Helvetica.
	HelveticaBold
	// HelveticaOblique is italic/oblique Helvetica.
	HelveticaOblique
	// HelveticaBoldOblique is bold oblique Helvetica.
	HelveticaBoldOblique
	// TimesRoman is the standard serif font.
	TimesRoman
	// TimesBold is bold Times Roman.
	TimesBold
	// TimesItalic is italic Times.
	TimesItalic
	// Courier is the standard monospace font.
	Courier
	// CourierBold is bold Courier.
	CourierBold
)

var standardNames = map[StandardType]string{
	Helvetica:            "Helvetica",
	HelveticaBold:        "Helvetica-Bold",
	HelveticaOblique:     "Helvetica-Oblique",
	HelveticaBoldOblique: "Helvetica-BoldOblique",
	TimesRoman:           "Times-Roman",
	TimesBold:            "Times-Bold",
	TimesItalic:          "Times-Italic",
	Courier:              "Courier",
	CourierBold:          "Courier-Bold",
}

// Font represents a font resource that can be used for stamp text.
type Font struct {
	Name     string   // PostScript name of the font
	Data     []byte   // TrueType font data (nil for standard fonts)
	Hash     string   // SHA256 hash of font data for deduplication
	Embedded bool     // Whether the font should be embedded in the PDF
	Metrics  *Metrics // Parsed metrics for accurate text measurement
}

// Standard returns a Font for a standard PDF font (no embedding required).
// These fonts are guaranteed to be available in all PDF readers.
func Standard(ft StandardType) *Font {
	return &Font{Name: standardNames[ft], Embedded: false}
}

// TrueType returns an embeddable font for TrueType data. Metrics are parsed
// from the data; an unparsable file is an error.
func TrueType(name string, data []byte) (*Font, error) {
	metrics, err := ParseTTFMetrics(data)
	if err != nil {
		return nil, err
	}

	h := sha256.Sum256(data)
	return &Font{
		Name:     sanitizeName(name),
		Data:     data,
		Hash:     hex.EncodeToString(h[:]),
		Embedded: true,
		Metrics:  metrics,
	}, nil
}

// family aliases, keyed by lower-case name without spaces, dashes or underscores
var familyAliases = map[string]StandardType{
	"helvetica":            Helvetica,
	"arial":                Helvetica,
	"sans":                 Helvetica,
	"sansserif":            Helvetica,
	"helveticabold":        HelveticaBold,
	"arialbold":            HelveticaBold,
	"helveticab":           HelveticaBold,
	"helveticaoblique":     HelveticaOblique,
	"helveticaitalic":      HelveticaOblique,
	"helveticai":           HelveticaOblique,
	"helveticaboldoblique": HelveticaBoldOblique,
	"helveticabi":          HelveticaBoldOblique,
	"times":                TimesRoman,
	"timesroman":           TimesRoman,
	"timesnewroman":        TimesRoman,
	"serif":                TimesRoman,
	"timesbold":            TimesBold,
	"timesb":               TimesBold,
	"timesitalic":          TimesItalic,
	"timesi":               TimesItalic,
	"courier":              Courier,
	"couriernew":           Courier,
	"monospace":            Courier,
	"courierbold":          CourierBold,
	"courierb":             CourierBold,
}

// ByName resolves a font family name such as "Helvetica", "times" or
// "Courier-Bold" to a standard font.
func ByName(family string) (*Font, bool) {
	key := strings.ToLower(family)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	ft, ok := familyAliases[key]
	if !ok {
		return nil, false
	}
	return Standard(ft), true
}

// StringWidth returns the width of text in points at the given size.
func (f *Font) StringWidth(text string, size float64) float64 {
	if f == nil {
		return float64(len(text)) * size * 0.5
	}
	if f.Metrics != nil {
		return f.Metrics.GetStringWidth(text, size)
	}
	if widths, ok := standardWidths[f.Name]; ok {
		return widths.stringWidth(text, size)
	}
	return float64(len(text)) * size * 0.5
}

// IsStandard reports whether f is one of the base fonts every reader provides.
func (f *Font) IsStandard() bool {
	if f == nil || f.Embedded {
		return false
	}
	_, ok := standardWidths[f.Name]
	return ok
}

// sanitizeName makes name usable as a PDF name object.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '+':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "EmbeddedFont"
	}
	return b.String()
}

// Metrics contains parsed font metrics for accurate text measurement.
type Metrics struct {
	UnitsPerEm  int
	GlyphWidths map[rune]int // Advance widths in font units
	font        *sfnt.Font
}

// ParseTTFMetrics parses a TrueType font file and extracts glyph metrics.
// This enables accurate text width calculations for layout.
func ParseTTFMetrics(data []byte) (*Metrics, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}

	unitsPerEm := f.UnitsPerEm()

	glyphWidths := make(map[rune]int)
	var buf sfnt.Buffer

	// Use unitsPerEm as the ppem so advances come out in font units
	ppem := fixed.Int26_6(unitsPerEm) << 6

	for c := 32; c <= 255; c++ {
		r := charmap.Windows1252.DecodeByte(byte(c))
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			continue
		}

		advance, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			continue
		}

		glyphWidths[r] = int(advance >> 6)
	}

	return &Metrics{
		UnitsPerEm:  int(unitsPerEm),
		GlyphWidths: glyphWidths,
		font:        f,
	}, nil
}

// GetStringWidth calculates the width of a string in points at the given font size.
func (m *Metrics) GetStringWidth(text string, fontSize float64) float64 {
	if m == nil || m.UnitsPerEm == 0 {
		return float64(len(text)) * fontSize * 0.5
	}

	var totalWidth int
	for _, r := range text {
		totalWidth += m.GetGlyphWidth(r)
	}

	return (float64(totalWidth) / float64(m.UnitsPerEm)) * fontSize
}

// GetGlyphWidth returns the width of a single rune in font units.
func (m *Metrics) GetGlyphWidth(r rune) int {
	if m == nil {
		return 0
	}
	if width, ok := m.GlyphWidths[r]; ok {
		return width
	}
	return m.UnitsPerEm / 2
}

// GetWidthsArray returns an array of widths for a PDF font dictionary (FirstChar=32, LastChar=255).
// Widths are scaled to 1000 units per em as per PDF specification and indexed
// by WinAnsiEncoding code, so codes 128-159 map to their Windows-1252 glyphs.
func (m *Metrics) GetWidthsArray() []int {
	widths := make([]int, 256-32)
	defaultWidth := 500

	if m != nil && m.UnitsPerEm > 0 {
		scale := 1000.0 / float64(m.UnitsPerEm)
		defaultWidth = int(float64(m.UnitsPerEm/2) * scale)

		for i := 32; i < 256; i++ {
			r := charmap.Windows1252.DecodeByte(byte(i))
			if w, ok := m.GlyphWidths[r]; ok {
				widths[i-32] = int(float64(w) * scale)
			} else {
				widths[i-32] = defaultWidth
			}
		}
	} else {
		for i := range widths {
			widths[i] = defaultWidth
		}
	}

	return widths
}
