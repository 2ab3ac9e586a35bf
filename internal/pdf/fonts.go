package pdf

import (
	"fmt"

	pdflib "github.com/digitorus/pdf"
)

// FontInfo contains information about a font found in the PDF.
type FontInfo struct {
	Name     string
	ID       uint32
	Subtype  string
	Encoding string
	Embedded bool
}

// ScanFonts iterates through the page resources to find existing font objects.
// Only indirect font dictionaries are reported, as only those can be shared.
func ScanFonts(r *pdflib.Reader) ([]FontInfo, error) {
	if r == nil {
		return nil, nil
	}

	var found []FontInfo
	visited := make(map[uint32]bool)

	processFont := func(parent, val pdflib.Value) {
		ptr := val.GetPtr()
		if ptr.GetID() == parent.GetPtr().GetID() {
			// Direct dictionary, nothing to reference.
			return
		}
		id := ptr.GetID()
		if visited[id] {
			return
		}
		visited[id] = true

		info, err := ResolveFont(r, id)
		if err == nil && info.Name != "" {
			found = append(found, info)
		}
	}

	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		resources := Inherited(page.V, "Resources")
		if resources.IsNull() {
			continue
		}
		fonts := resources.Key("Font")
		for _, name := range fonts.Keys() {
			processFont(fonts, fonts.Key(name))
		}
	}

	return found, nil
}

// ResolveFont reads the font dictionary with the given object number.
func ResolveFont(r *pdflib.Reader, objID uint32) (FontInfo, error) {
	if r == nil {
		return FontInfo{}, fmt.Errorf("no reader available")
	}

	val, err := r.GetObject(objID)
	if err != nil {
		return FontInfo{}, fmt.Errorf("failed to get object %d: %w", objID, err)
	}

	if val.Kind() != pdflib.Dict {
		return FontInfo{}, fmt.Errorf("object %d is not a dict, got %v", objID, val.Kind())
	}

	info := FontInfo{ID: objID}
	if baseFont := val.Key("BaseFont"); baseFont.Kind() == pdflib.Name {
		info.Name = baseFont.Name()
	}
	info.Subtype = val.Key("Subtype").Name()
	info.Encoding = val.Key("Encoding").Name()

	descriptor := val.Key("FontDescriptor")
	info.Embedded = !descriptor.Key("FontFile").IsNull() ||
		!descriptor.Key("FontFile2").IsNull() ||
		!descriptor.Key("FontFile3").IsNull()

	return info, nil
}

// FindStandardFont returns the object number of an existing, non-embedded
// Type1 font named baseFont that uses WinAnsiEncoding, so it can be shared.
func FindStandardFont(fonts []FontInfo, baseFont string) (uint32, bool) {
	for _, f := range fonts {
		if f.Name == baseFont && f.Subtype == "Type1" && f.Encoding == "WinAnsiEncoding" && !f.Embedded {
			return f.ID, true
		}
	}
	return 0, false
}
