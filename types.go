package pdfnumber

import (
	"errors"

	"github.com/digitorus/pdfnumber/common"
	"github.com/digitorus/pdfnumber/fonts"
	"github.com/digitorus/pdfnumber/internal/pdf"
	"github.com/digitorus/pdfnumber/internal/render"
	"github.com/digitorus/pdfnumber/placement"
	"github.com/digitorus/pdfnumber/stamp"
)

var (
	// ErrEncrypted is returned for password protected documents.
	ErrEncrypted = stamp.ErrEncrypted

	// ErrInvalidFontSize is returned for a font size that is not positive.
	ErrInvalidFontSize = errors.New("font size must be positive")

	// ErrUnknownFont is returned when a font family is neither a standard
	// font nor registered with AddFont.
	ErrUnknownFont = errors.New("unknown font family")

	// ErrInvalidColorFormat matches every InvalidColorFormatError.
	ErrInvalidColorFormat = render.ErrInvalidColorFormat

	// ErrUnknownAnchor is returned when an anchor name is not recognized.
	ErrUnknownAnchor = placement.ErrUnknownAnchor

	// ErrUnknownAlign is returned when an alignment name is not recognized.
	ErrUnknownAlign = placement.ErrUnknownAlign
)

// Result contains the result of a Write operation.
type Result struct {
	Document *Document
	Plan     []PageStamp
	// Stamped is the number of pages that received a number.
	Stamped int
}

// Page describes the geometry of one physical page.
type Page = pdf.PageInfo

// PageStamp is the planned outcome for one page.
type PageStamp = common.PageStamp

// Font represents a font resource.
type Font = fonts.Font

// FontMetrics contains parsed font metrics for accurate text measurement.
type FontMetrics = fonts.Metrics

// Color is an RGB text color.
type Color = render.Color

// InvalidColorFormatError is returned by ParseColor for malformed input.
type InvalidColorFormatError = render.InvalidColorFormatError

// Anchor is a symbolic stamp position.
type Anchor = placement.Anchor

// Align is the horizontal alignment of the stamp text.
type Align = placement.Align

// Margin is the distance kept from the page edges by anchored positions.
type Margin = placement.Margin

// Position is where the stamp is placed on a page.
type Position = placement.Position

const (
	BottomLeft   = placement.BottomLeft
	BottomCenter = placement.BottomCenter
	BottomRight  = placement.BottomRight
	TopLeft      = placement.TopLeft
	TopCenter    = placement.TopCenter
	TopRight     = placement.TopRight

	AlignLeft   = placement.Left
	AlignCenter = placement.Center
	AlignRight  = placement.Right
)

// StandardFontType represents standard PDF fonts.
type StandardFontType = fonts.StandardType

const (
	// Helvetica is the standard sans-serif font.
	Helvetica = fonts.Helvetica
	// HelveticaBold is bold Helvetica.
	HelveticaBold = fonts.HelveticaBold
	// HelveticaOblique is italic/oblique Helvetica.
	HelveticaOblique = fonts.HelveticaOblique
	// TimesRoman is the standard serif font.
	TimesRoman = fonts.TimesRoman
	// TimesBold is bold Times Roman.
	TimesBold = fonts.TimesBold
	// Courier is the standard monospace font.
	Courier = fonts.Courier
	// CourierBold is bold Courier.
	CourierBold = fonts.CourierBold
)

// StandardFont returns a standard PDF font that requires no embedding.
func StandardFont(ft StandardFontType) *Font {
	return fonts.Standard(ft)
}

// ParseTTFMetrics parses a TrueType font file and extracts glyph metrics.
func ParseTTFMetrics(data []byte) (*FontMetrics, error) {
	return fonts.ParseTTFMetrics(data)
}

// ParseColor parses #rrggbb or rrggbb.
func ParseColor(s string) (Color, error) {
	return render.ParseColor(s)
}

// ParseAnchor parses an anchor code such as "bc" or a name such as "top-right".
func ParseAnchor(s string) (Anchor, error) {
	return placement.ParseAnchor(s)
}

// ParseAlign parses "left", "center" or "right".
func ParseAlign(s string) (Align, error) {
	return placement.ParseAlign(s)
}
