package pdfnumber

import (
	"fmt"
	"sort"

	"github.com/digitorus/pdfnumber/fonts"
)

// Fonts returns all registered fonts in the document, sorted by name.
func (d *Document) Fonts() []*Font {
	names := make([]string, 0, len(d.fonts))
	for name := range d.fonts {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]*Font, 0, len(names))
	for _, name := range names {
		list = append(list, d.fonts[name])
	}
	return list
}

// Font returns a registered font by name, or nil if not found.
func (d *Document) Font(name string) *Font {
	return d.fonts[name]
}

// AddFont registers a TrueType font with the document under name.
// If a font with the same name already exists, the existing font is returned.
// The font data is parsed for metrics and embedded when used.
func (d *Document) AddFont(name string, data []byte) (*Font, error) {
	if existing, ok := d.fonts[name]; ok {
		return existing, nil
	}

	font, err := fonts.TrueType(name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}

	if d.fonts == nil {
		d.fonts = make(map[string]*Font)
	}
	d.fonts[name] = font
	return font, nil
}

// UseFont returns a registered font or the standard font for a family
// name such as "Helvetica", "times" or "Courier-Bold".
func (d *Document) UseFont(name string) (*Font, error) {
	if f := d.Font(name); f != nil {
		return f, nil
	}
	if f, ok := fonts.ByName(name); ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
}
