// Package render draws page stamps as content stream operators.
package render

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/digitorus/pdfnumber/fonts"
	"github.com/digitorus/pdfnumber/placement"
	"github.com/digitorus/pdfnumber/stamp"
)

// DefaultFontSize is used when a Style has no positive size.
const DefaultFontSize = 12.0

// baselineRatio places the baseline this fraction of the font size below
// the resolved point, centering digits on it.
const baselineRatio = 0.3

// Style is the text style of a stamp.
type Style struct {
	Font  *fonts.Font
	Size  float64
	Color Color
}

func (s Style) withDefaults() Style {
	if s.Font == nil {
		s.Font = fonts.Standard(fonts.Helvetica)
	}
	if s.Size <= 0 {
		s.Size = DefaultFontSize
	}
	return s
}

// Layout is the position of the stamp text on the visible page, with the
// origin in the lower-left corner.
type Layout struct {
	X, Y  float64 // start of the baseline
	Width float64 // advance width of the text
}

// Measure lays out text on page with the given style and placement.
func Measure(text string, info PageGeometry, style Style, place placement.Placement) Layout {
	style = style.withDefaults()
	width := style.Font.StringWidth(text, style.Size)

	r := placement.Resolve(info.Width(), info.Height(), place)
	x := r.X
	switch r.Align {
	case placement.Center:
		x -= width / 2
	case placement.Right:
		x -= width
	}

	return Layout{
		X:     x,
		Y:     info.Height() - (r.Y + baselineRatio*style.Size),
		Width: width,
	}
}

// PageGeometry is the part of a page the layout depends on.
type PageGeometry interface {
	Width() float64
	Height() float64
	Matrix() [6]float64
}

// NewStampRenderer returns a stamp.Renderer drawing each page's text with
// style at place.
func NewStampRenderer(style Style, place placement.Placement) stamp.Renderer {
	style = style.withDefaults()

	return func(context *stamp.StampContext, page stamp.Page) ([]byte, error) {
		fontName, err := context.UseFont(page, style.Font)
		if err != nil {
			return nil, err
		}

		encoded := EncodeWinAnsi(page.Text)
		layout := Measure(DecodeWinAnsi(encoded), page.Info, style, place)

		var stream bytes.Buffer
		stream.WriteString("q\n")
		if m := page.Info.Matrix(); m != identity {
			fmt.Fprintf(&stream, "%s %s %s %s %s %s cm\n",
				num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5]))
		}
		stream.WriteString("BT\n")
		fmt.Fprintf(&stream, "/%s %s Tf\n", fontName, num(style.Size))
		stream.WriteString(style.Color.fill() + "\n")
		fmt.Fprintf(&stream, "%s %s Td\n", num(layout.X), num(layout.Y))
		fmt.Fprintf(&stream, "<%s> Tj\n", hex.EncodeToString(encoded))
		stream.WriteString("ET\nQ\n")

		return stream.Bytes(), nil
	}
}

var identity = [6]float64{1, 0, 0, 1, 0, 0}

// EncodeWinAnsi encodes text for a font with WinAnsiEncoding. Runes the
// encoding cannot represent become '?'.
func EncodeWinAnsi(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}

// DecodeWinAnsi is the inverse of EncodeWinAnsi.
func DecodeWinAnsi(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = charmap.Windows1252.DecodeByte(b)
	}
	return string(runes)
}

// num formats a number for a content stream with at most two decimals.
func num(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = trimZeros(s)
	if s == "-0" {
		return "0"
	}
	return s
}

func trimZeros(s string) string {
	if !bytes.ContainsRune([]byte(s), '.') {
		return s
	}
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
