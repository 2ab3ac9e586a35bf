package stamp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/digitorus/pdfnumber/fonts"
	internalpdf "github.com/digitorus/pdfnumber/internal/pdf"
)

// UseFont makes f available to the content of page and returns the resource
// name to select it with Tf. Font objects are written once per document.
func (context *StampContext) UseFont(page Page, f *fonts.Font) (string, error) {
	if f == nil {
		f = fonts.Standard(fonts.Helvetica)
	}

	objID, err := context.registerFont(f)
	if err != nil {
		return "", err
	}

	pageID, _ := page.Info.ObjectID()
	names, ok := context.pageFonts[pageID]
	if !ok {
		names = make(map[string]uint32)
		context.pageFonts[pageID] = names
	}
	for name, id := range names {
		if id == objID {
			return name, nil
		}
	}

	existing := internalpdf.Inherited(page.Info.V, "Resources").Key("Font")
	for i := len(names) + 1; ; i++ {
		name := "FPN" + strconv.Itoa(i)
		if _, taken := names[name]; taken {
			continue
		}
		if !existing.Key(name).IsNull() {
			continue
		}
		names[name] = objID
		return name, nil
	}
}

func fontKey(f *fonts.Font) string {
	if f.Hash != "" {
		return f.Hash
	}
	return f.Name
}

// registerFont returns the object number of the font dictionary for f,
// reusing fonts already present in the document where possible.
func (context *StampContext) registerFont(f *fonts.Font) (uint32, error) {
	key := fontKey(f)
	if id, ok := context.fontObjects[key]; ok {
		return id, nil
	}

	if !f.Embedded {
		if !context.scannedFonts {
			// Scan failures only cost a duplicate font object.
			context.existingFonts, _ = internalpdf.ScanFonts(context.PDFReader)
			context.scannedFonts = true
		}
		if id, ok := internalpdf.FindStandardFont(context.existingFonts, f.Name); ok {
			context.fontObjects[key] = id
			return id, nil
		}
	}

	var id uint32
	var err error
	if f.Embedded && len(f.Data) > 0 {
		id, err = context.embedTrueType(f)
	} else {
		baseFont := "Helvetica"
		if f.Name != "" {
			baseFont = f.Name
		}
		fontDict := fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /WinAnsiEncoding >>", baseFont)
		id, err = context.AddObject([]byte(fontDict))
	}
	if err != nil {
		return 0, fmt.Errorf("failed to register font %s: %w", f.Name, err)
	}

	context.fontObjects[key] = id
	return id, nil
}

func (context *StampContext) embedTrueType(f *fonts.Font) (uint32, error) {
	fontData, filter, err := context.compress(f.Data)
	if err != nil {
		return 0, err
	}

	var stream bytes.Buffer
	fmt.Fprintf(&stream, "<< /Length %d /Length1 %d%s >>\nstream\n", len(fontData), len(f.Data), filter)
	stream.Write(fontData)
	stream.WriteString("\nendstream")
	fontStreamID, err := context.AddObject(stream.Bytes())
	if err != nil {
		return 0, err
	}

	fdDict := fmt.Sprintf("<< /Type /FontDescriptor /FontName /%s /Flags 32 /FontBBox [-500 -200 1000 900] /ItalicAngle 0 /Ascent 800 /Descent -200 /CapHeight 700 /StemV 80 /FontFile2 %d 0 R >>", f.Name, fontStreamID)
	descriptorID, err := context.AddObject([]byte(fdDict))
	if err != nil {
		return 0, err
	}

	var fontBuf bytes.Buffer
	fmt.Fprintf(&fontBuf, "<< /Type /Font /Subtype /TrueType /BaseFont /%s /FontDescriptor %d 0 R /FirstChar 32 /LastChar 255 /Encoding /WinAnsiEncoding /Widths [", f.Name, descriptorID)
	for _, w := range f.Metrics.GetWidthsArray() {
		fmt.Fprintf(&fontBuf, " %d", w)
	}
	fontBuf.WriteString(" ] >>")

	return context.AddObject(fontBuf.Bytes())
}
