package render

import (
	"bytes"
	"compress/zlib"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"

	pdflib "github.com/digitorus/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitorus/pdfnumber/fonts"
	internalpdf "github.com/digitorus/pdfnumber/internal/pdf"
	"github.com/digitorus/pdfnumber/internal/testpdf"
	"github.com/digitorus/pdfnumber/placement"
	"github.com/digitorus/pdfnumber/stamp"
)

func TestParseColor(t *testing.T) {
	tests := map[string]Color{
		"#ff0000": {255, 0, 0},
		"ff0000":  {255, 0, 0},
		"#000000": {0, 0, 0},
		"#1A2b3C": {0x1a, 0x2b, 0x3c},
	}
	for in, want := range tests {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#xyz", "#fff", "#ff00000", "#gg0000", "red", "#+12345"} {
		_, err := ParseColor(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrInvalidColorFormat), in)

		var target *InvalidColorFormatError
		require.True(t, errors.As(err, &target), in)
		assert.Equal(t, in, target.Value)
	}
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "#ff8000", Color{255, 128, 0}.String())
	assert.Equal(t, "1.000 0.502 0.000 rg", Color{255, 128, 0}.fill())
	assert.Equal(t, "#000000", Black.String())
}

func TestEncodeWinAnsi(t *testing.T) {
	assert.Equal(t, []byte("Page 1"), EncodeWinAnsi("Page 1"))
	assert.Equal(t, []byte{0x80, 0xe9}, EncodeWinAnsi("€é"))
	assert.Equal(t, []byte("a?b"), EncodeWinAnsi("a世b"))
	assert.Equal(t, "€é", DecodeWinAnsi([]byte{0x80, 0xe9}))
}

func TestNum(t *testing.T) {
	tests := map[float64]string{0: "0", 1: "1", 12.5: "12.5", 300.333: "300.33", -0.001: "0", 595.276: "595.28", -90: "-90"}
	for in, want := range tests {
		assert.Equal(t, want, num(in), "%v", in)
	}
}

type geometry struct{ w, h float64 }

func (g geometry) Width() float64     { return g.w }
func (g geometry) Height() float64    { return g.h }
func (g geometry) Matrix() [6]float64 { return identity }

func TestMeasure(t *testing.T) {
	courier := fonts.Standard(fonts.Courier)
	page := geometry{600, 800}
	margin := placement.Margin{X: 10, Y: 15}
	style := Style{Font: courier, Size: 10}

	// "12" in Courier 10pt is 12pt wide.
	bc := Measure("12", page, style, placement.BottomCenter.Placement(margin))
	assert.InDelta(t, 12.0, bc.Width, 1e-9)
	assert.InDelta(t, 294.0, bc.X, 1e-9)
	assert.InDelta(t, 800-(785+3), bc.Y, 1e-9)

	tr := Measure("12", page, style, placement.TopRight.Placement(margin))
	assert.InDelta(t, 578.0, tr.X, 1e-9)
	assert.InDelta(t, 800-(15+3), tr.Y, 1e-9)

	bl := Measure("12", page, style, placement.BottomLeft.Placement(margin))
	assert.InDelta(t, 10.0, bl.X, 1e-9)

	abs := Measure("12", page, style, placement.Placement{Position: placement.Absolute(100, 200), Align: placement.Left})
	assert.InDelta(t, 100.0, abs.X, 1e-9)
	assert.InDelta(t, 597.0, abs.Y, 1e-9)
}

func TestMeasure_Defaults(t *testing.T) {
	l := Measure("1", geometry{100, 100}, Style{}, placement.Placement{Position: placement.Absolute(0, 0), Align: placement.Left})
	// Helvetica "1" at the default 12pt.
	assert.InDelta(t, 0.556*12, l.Width, 1e-9)
	assert.InDelta(t, 100-0.3*12, l.Y, 1e-9)
}

func stampWith(t *testing.T, input []byte, style Style, place placement.Placement, text string) *pdflib.Reader {
	t.Helper()
	rdr, err := pdflib.NewReader(testpdf.NewBytesReader(input), int64(len(input)))
	require.NoError(t, err)
	infos, err := internalpdf.Pages(rdr)
	require.NoError(t, err)

	var pages []stamp.Page
	for i, info := range infos {
		pages = append(pages, stamp.Page{Info: info, Number: i + 1, Text: strings.ReplaceAll(text, "#", string(rune('1'+i)))})
	}

	var out bytes.Buffer
	err = stamp.Stamp(bytes.NewReader(input), &out, rdr, stamp.StampData{
		Pages:         pages,
		Renderer:      NewStampRenderer(style, place),
		CompressLevel: zlib.NoCompression,
	})
	require.NoError(t, err)

	res, err := pdflib.NewReader(testpdf.NewBytesReader(out.Bytes()), int64(out.Len()))
	require.NoError(t, err)
	return res
}

func stampContent(t *testing.T, page pdflib.Value) string {
	t.Helper()
	contents := page.Key("Contents")
	require.Equal(t, pdflib.Array, contents.Kind())
	rc := contents.Index(contents.Len() - 1).Reader()
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestNewStampRenderer(t *testing.T) {
	input := testpdf.Build(testpdf.Options{Pages: []testpdf.Page{testpdf.Sized(600, 800)}})
	style := Style{Font: fonts.Standard(fonts.Courier), Size: 10, Color: Color{255, 0, 0}}

	rdr := stampWith(t, input, style, placement.BottomCenter.Placement(placement.Margin{X: 10, Y: 15}), "#")
	content := stampContent(t, rdr.Page(1).V)

	expected := "Q\nq\nBT\n/FPN1 10 Tf\n1.000 0.000 0.000 rg\n297 12 Td\n<" + hex.EncodeToString([]byte("1")) + "> Tj\nET\nQ\n"
	assert.Equal(t, expected, content)
	assert.Equal(t, "Courier", rdr.Page(1).V.Key("Resources").Key("Font").Key("FPN1").Key("BaseFont").Name())
}

func TestNewStampRenderer_Rotated(t *testing.T) {
	input := testpdf.Build(testpdf.Options{Pages: []testpdf.Page{
		{MediaBox: [4]float64{0, 0, 600, 800}, Rotate: 90},
		{MediaBox: [4]float64{0, 0, 600, 800}, Rotate: 180},
		{MediaBox: [4]float64{0, 0, 600, 800}, Rotate: 270},
	}})
	style := Style{Font: fonts.Standard(fonts.Courier), Size: 10}
	rdr := stampWith(t, input, style, placement.BottomLeft.Placement(placement.Margin{X: 10, Y: 15}), "#")

	// The visible page of a quarter turn is 800x600.
	assert.Contains(t, stampContent(t, rdr.Page(1).V), "0 1 -1 0 600 0 cm\nBT\n/FPN1 10 Tf\n0.000 0.000 0.000 rg\n10 12 Td\n")
	assert.Contains(t, stampContent(t, rdr.Page(2).V), "-1 0 0 -1 600 800 cm\n")
	assert.Contains(t, stampContent(t, rdr.Page(3).V), "0 -1 1 0 0 800 cm\n")
}

func TestNewStampRenderer_TrueType(t *testing.T) {
	input := testpdf.Simple(1)
	font := mustTrueType(t)

	rdr := stampWith(t, input, Style{Font: font, Size: 12}, placement.TopRight.Placement(placement.DefaultMargin(12)), "Page #")
	page := rdr.Page(1).V

	f := page.Key("Resources").Key("Font").Key("FPN1")
	assert.Equal(t, "TrueType", f.Key("Subtype").Name())
	assert.Equal(t, font.Name, f.Key("BaseFont").Name())
	assert.Equal(t, 224, f.Key("Widths").Len())
	assert.False(t, f.Key("FontDescriptor").Key("FontFile2").IsNull())

	assert.Contains(t, stampContent(t, page), "<"+hex.EncodeToString([]byte("Page 1"))+"> Tj")
}
