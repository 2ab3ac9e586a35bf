package stamp

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/digitorus/pdf"

	internalpdf "github.com/digitorus/pdfnumber/internal/pdf"
)

// createPageUpdate returns the new page dictionary: the original entries,
// resources extended with the stamp fonts, and the content array wrapped
// as [q, original..., stamp].
func (context *StampContext) createPageUpdate(page Page, stampID uint32) ([]byte, error) {
	v := page.Info.V
	if v.Kind() != pdf.Dict {
		return nil, fmt.Errorf("page object is %v, not a dictionary", v.Kind())
	}

	var b bytes.Buffer
	b.WriteString("<<")
	for _, key := range v.Keys() {
		if key == "Contents" || key == "Resources" {
			continue
		}
		b.WriteString(" " + pdfName(key) + " ")
		if err := context.writeValue(&b, v, v.Key(key)); err != nil {
			return nil, fmt.Errorf("failed to write page entry %s: %w", key, err)
		}
	}

	b.WriteString(" /Resources ")
	pageID, _ := page.Info.ObjectID()
	if err := context.writeResources(&b, page.Info.V, context.pageFonts[pageID]); err != nil {
		return nil, fmt.Errorf("failed to write page resources: %w", err)
	}

	fmt.Fprintf(&b, " /Contents [%d 0 R", context.saveStateID)
	contents := v.Key("Contents")
	switch contents.Kind() {
	case pdf.Array:
		for i := 0; i < contents.Len(); i++ {
			b.WriteString(" ")
			if err := context.writeValue(&b, contents, contents.Index(i)); err != nil {
				return nil, err
			}
		}
	case pdf.Stream:
		b.WriteString(" ")
		writeReference(&b, contents)
	}
	fmt.Fprintf(&b, " %d 0 R]", stampID)

	b.WriteString(" >>")
	return b.Bytes(), nil
}

// writeResources writes the page's effective resource dictionary, inherited
// or not, with extra added to its font dictionary.
func (context *StampContext) writeResources(b *bytes.Buffer, page pdf.Value, extra map[string]uint32) error {
	res := internalpdf.Inherited(page, "Resources")

	b.WriteString("<<")
	for _, key := range res.Keys() {
		if key == "Font" {
			continue
		}
		b.WriteString(" " + pdfName(key) + " ")
		if err := context.writeValue(b, res, res.Key(key)); err != nil {
			return err
		}
	}

	fontDict := res.Key("Font")
	if len(extra) == 0 {
		if !fontDict.IsNull() {
			b.WriteString(" /Font ")
			if err := context.writeValue(b, res, fontDict); err != nil {
				return err
			}
		}
		b.WriteString(" >>")
		return nil
	}

	b.WriteString(" /Font <<")
	for _, name := range fontDict.Keys() {
		b.WriteString(" " + pdfName(name) + " ")
		if err := context.writeValue(b, fontDict, fontDict.Key(name)); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(extra))
	for name := range extra {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(b, " %s %d 0 R", pdfName(name), extra[name])
	}
	b.WriteString(" >>")

	b.WriteString(" >>")
	return nil
}
