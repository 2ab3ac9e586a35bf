package pdfnumber

import (
	"fmt"
	"io"

	"github.com/digitorus/pdfnumber/internal/render"
	"github.com/digitorus/pdfnumber/numbering"
	"github.com/digitorus/pdfnumber/stamp"
)

// Plan evaluates the numbering for every page without writing anything.
func (d *Document) Plan() ([]PageStamp, error) {
	plan, _, err := d.plan()
	return plan, err
}

func (d *Document) plan() ([]PageStamp, []stamp.Page, error) {
	b := d.Number()
	if err := b.Err(); err != nil {
		return nil, nil, err
	}

	pages, err := d.Pages()
	if err != nil {
		return nil, nil, err
	}

	cfg := b.numberingConfig()
	style := b.style()
	place := b.placement()
	total := len(pages)

	plan := make([]PageStamp, 0, total)
	var stamps []stamp.Page
	for page, decision := range numbering.Sequence(pages, cfg) {
		entry := PageStamp{
			Page:   page.Index + 1,
			Index:  page.Index,
			Width:  page.Width(),
			Height: page.Height(),
			Rotate: page.Rotate,
		}

		if n, ok := decision.Number(); ok {
			text := numbering.Format(cfg.Format, n, total)
			layout := render.Measure(render.DecodeWinAnsi(render.EncodeWinAnsi(text)), page, style, place)

			entry.Stamped = true
			entry.Number = n
			entry.Text = text
			entry.X = layout.X
			entry.Y = layout.Y
			entry.Align = place.Align.String()

			stamps = append(stamps, stamp.Page{Info: page, Number: n, Text: text})
		}

		plan = append(plan, entry)
	}

	return plan, stamps, nil
}

// Write stamps the configured numbers and writes the resulting document.
// The original bytes are written unchanged, followed by an incremental update.
func (d *Document) Write(output io.Writer) (*Result, error) {
	plan, stamps, err := d.plan()
	if err != nil {
		return nil, err
	}

	b := d.Number()
	stampData := stamp.StampData{
		Pages:         stamps,
		Renderer:      render.NewStampRenderer(b.style(), b.placement()),
		ModDate:       d.modDate,
		CompressLevel: d.compressLevel,
	}

	input := io.NewSectionReader(d.reader, 0, d.size)
	if err := stamp.Stamp(input, output, d.rdr, stampData); err != nil {
		return nil, fmt.Errorf("failed to stamp document: %w", err)
	}

	return &Result{
		Document: d,
		Plan:     plan,
		Stamped:  len(stamps),
	}, nil
}
