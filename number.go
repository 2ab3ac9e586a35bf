package pdfnumber

import (
	"fmt"

	"github.com/digitorus/pdfnumber/internal/render"
	"github.com/digitorus/pdfnumber/numbering"
	"github.com/digitorus/pdfnumber/placement"
)

// NumberBuilder configures how pages are numbered. Obtain one with
// Document.Number; all setters return the builder for chaining.
//
// Configuration errors are kept and reported by Err, Plan and Write, so a
// bad value never produces output.
type NumberBuilder struct {
	doc *Document

	start  int
	ignore []int
	skip   []int
	format string

	font  *Font
	size  float64
	color Color

	anchor   *Anchor
	position *Position
	align    Align
	margin   *Margin

	err error
}

func newNumberBuilder(d *Document) *NumberBuilder {
	return &NumberBuilder{
		doc:    d,
		start:  numbering.DefaultStart,
		format: numbering.DefaultFormat,
		size:   render.DefaultFontSize,
		align:  placement.Center,
	}
}

// Start sets the number of the first stamped page. Defaults to 1.
func (b *NumberBuilder) Start(n int) *NumberBuilder {
	b.start = n
	return b
}

// Ignore excludes pages (1-based) from numbering; they are not counted.
func (b *NumberBuilder) Ignore(pages ...int) *NumberBuilder {
	b.ignore = append(b.ignore, pages...)
	return b
}

// Skip leaves pages (1-based) unstamped but still counts them.
func (b *NumberBuilder) Skip(pages ...int) *NumberBuilder {
	b.skip = append(b.skip, pages...)
	return b
}

// Format sets the stamp text template, see numbering.Format.
func (b *NumberBuilder) Format(template string) *NumberBuilder {
	b.format = template
	return b
}

// Font sets the font and its size in points. A nil font keeps the current
// font.
func (b *NumberBuilder) Font(f *Font, size float64) *NumberBuilder {
	if f != nil {
		b.font = f
	}
	return b.FontSize(size)
}

// FontSize sets the font size in points.
func (b *NumberBuilder) FontSize(size float64) *NumberBuilder {
	if size <= 0 {
		b.setErr(fmt.Errorf("%w: %v", ErrInvalidFontSize, size))
		return b
	}
	b.size = size
	return b
}

// FontFamily selects a standard font family or a font registered with
// Document.AddFont.
func (b *NumberBuilder) FontFamily(name string) *NumberBuilder {
	f, err := b.doc.UseFont(name)
	if err != nil {
		b.setErr(err)
		return b
	}
	b.font = f
	return b
}

// Color sets the text color.
func (b *NumberBuilder) Color(r, g, bl uint8) *NumberBuilder {
	b.color = Color{R: r, G: g, B: bl}
	return b
}

// HexColor sets the text color from #rrggbb.
func (b *NumberBuilder) HexColor(s string) *NumberBuilder {
	c, err := ParseColor(s)
	if err != nil {
		b.setErr(err)
		return b
	}
	b.color = c
	return b
}

// Anchor places the stamp at a symbolic position, which also sets the
// alignment. An anchor takes precedence over Position.
func (b *NumberBuilder) Anchor(a Anchor) *NumberBuilder {
	b.anchor = &a
	return b
}

// Position places the stamp with sign-encoded coordinates: non-negative
// values are offsets from the left or top margin, negative values count
// from the right or bottom margin, -1 being exactly at the margin.
func (b *NumberBuilder) Position(x, y float64) *NumberBuilder {
	p := placement.Signed(x, y)
	b.position = &p
	return b
}

// AbsolutePosition places the stamp at literal coordinates, measured from
// the top-left corner of the visible page. Margins do not apply.
func (b *NumberBuilder) AbsolutePosition(x, y float64) *NumberBuilder {
	p := placement.Absolute(x, y)
	b.position = &p
	return b
}

// Align sets the text alignment relative to the position.
func (b *NumberBuilder) Align(a Align) *NumberBuilder {
	b.align = a
	return b
}

// Margin sets the distance kept from the page edges. It defaults to 10
// horizontally and 10 plus half the font size vertically.
func (b *NumberBuilder) Margin(x, y float64) *NumberBuilder {
	b.margin = &Margin{X: x, Y: y}
	return b
}

// Err returns the first configuration error.
func (b *NumberBuilder) Err() error {
	return b.err
}

func (b *NumberBuilder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *NumberBuilder) numberingConfig() numbering.Config {
	return numbering.Config{
		Start:  b.start,
		Ignore: numbering.PagesFromOneBased(b.ignore...),
		Skip:   numbering.PagesFromOneBased(b.skip...),
		Format: b.format,
	}
}

func (b *NumberBuilder) style() render.Style {
	return render.Style{Font: b.font, Size: b.size, Color: b.color}
}

func (b *NumberBuilder) placement() placement.Placement {
	margin := placement.DefaultMargin(int(b.size))
	if b.margin != nil {
		margin = *b.margin
	}

	switch {
	case b.anchor != nil:
		return b.anchor.Placement(margin)
	case b.position != nil:
		return placement.Placement{Position: *b.position, Align: b.align, Margin: margin}
	default:
		return placement.BottomCenter.Placement(margin)
	}
}
