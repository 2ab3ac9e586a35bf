// Package testpdf builds small, valid PDF documents for tests.
package testpdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// BytesReader implements io.ReaderAt for in-memory byte slices.
type BytesReader struct {
	Data []byte
}

func NewBytesReader(data []byte) *BytesReader {
	return &BytesReader{Data: data}
}

func (r *BytesReader) ReadAt(p []byte, off int64) (n int, err error) {
	if off >= int64(len(r.Data)) {
		return 0, io.EOF
	}
	n = copy(p, r.Data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Page describes one page of a generated document.
type Page struct {
	MediaBox [4]float64
	CropBox  *[4]float64
	Rotate   int
	Content  string

	// Annotated adds a direct text annotation whose /P points back at
	// the page object.
	Annotated bool
}

// Options control the generated document.
type Options struct {
	Pages []Page

	// InheritMediaBox moves the MediaBox of the first page onto the page
	// tree root and omits it from every page.
	InheritMediaBox bool
	// InheritRotate moves /Rotate of the first page onto the page tree root.
	InheritRotate bool
	// SharedFont adds an indirect Helvetica font, referenced as /F1 from
	// every page.
	SharedFont bool
	// XrefStream writes a cross-reference stream instead of a table.
	XrefStream bool
	// Encrypt adds a (bogus) standard security handler to the trailer.
	Encrypt bool
}

// Letter returns a portrait US Letter page.
func Letter() Page {
	return Page{MediaBox: [4]float64{0, 0, 612, 792}}
}

// Sized returns an unrotated page of the given size.
func Sized(w, h float64) Page {
	return Page{MediaBox: [4]float64{0, 0, w, h}}
}

// Simple returns a document with n letter pages.
func Simple(n int) []byte {
	pages := make([]Page, n)
	for i := range pages {
		pages[i] = Letter()
		pages[i].Content = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (Page %d) Tj ET", i+1)
	}
	return Build(Options{Pages: pages, SharedFont: true})
}

// Build generates the document described by opts.
func Build(opts Options) []byte {
	var objects []string
	add := func(body string) int {
		objects = append(objects, body)
		return len(objects)
	}

	catalog := add("")
	pagesID := add("")

	fontID := 0
	if opts.SharedFont {
		fontID = add("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	}

	var kids []string
	for i, p := range opts.Pages {
		content := add(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(p.Content)+1, p.Content))

		pageID := len(objects) + 1
		var page strings.Builder
		fmt.Fprintf(&page, "<< /Type /Page /Parent %d 0 R", pagesID)
		if !opts.InheritMediaBox {
			fmt.Fprintf(&page, " /MediaBox %s", rect(p.MediaBox))
		}
		if p.CropBox != nil {
			fmt.Fprintf(&page, " /CropBox %s", rect(*p.CropBox))
		}
		if p.Rotate != 0 && !(opts.InheritRotate && i == 0) {
			fmt.Fprintf(&page, " /Rotate %d", p.Rotate)
		}
		if fontID != 0 {
			fmt.Fprintf(&page, " /Resources << /Font << /F1 %d 0 R >> >>", fontID)
		} else {
			page.WriteString(" /Resources << >>")
		}
		if p.Annotated {
			fmt.Fprintf(&page, " /Annots [<< /Type /Annot /Subtype /Text /Rect [10 10 30 30] /Contents (note) /P %d 0 R >>]", pageID)
		}
		fmt.Fprintf(&page, " /Contents %d 0 R >>", content)

		id := add(page.String())
		kids = append(kids, fmt.Sprintf("%d 0 R", id))
	}

	objects[catalog-1] = fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesID)

	var tree strings.Builder
	fmt.Fprintf(&tree, "<< /Type /Pages /Kids [%s] /Count %d", strings.Join(kids, " "), len(kids))
	if opts.InheritMediaBox && len(opts.Pages) > 0 {
		fmt.Fprintf(&tree, " /MediaBox %s", rect(opts.Pages[0].MediaBox))
	}
	if opts.InheritRotate && len(opts.Pages) > 0 {
		fmt.Fprintf(&tree, " /Rotate %d", opts.Pages[0].Rotate)
	}
	tree.WriteString(" >>")
	objects[pagesID-1] = tree.String()

	infoID := add("<< /Producer (testpdf) >>")

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")

	offsets := make([]int, len(objects)+1)
	for i, body := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	trailer := fmt.Sprintf("/Root %d 0 R /Info %d 0 R /ID [<0123456789abcdef0123456789abcdef> <0123456789abcdef0123456789abcdef>]", catalog, infoID)
	if opts.Encrypt {
		trailer += " /Encrypt << /Filter /Standard /V 1 /R 2 /O <00> /U <00> /P -4 >>"
	}

	if opts.XrefStream {
		writeXrefStream(&buf, offsets, trailer)
	} else {
		writeXrefTable(&buf, offsets, trailer)
	}

	return buf.Bytes()
}

func writeXrefTable(buf *bytes.Buffer, offsets []int, trailer string) {
	start := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n", len(offsets))
	buf.WriteString("0000000000 65535 f\r\n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(buf, "%010d 00000 n\r\n", off)
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d %s >>\nstartxref\n%d\n%%%%EOF\n", len(offsets), trailer, start)
}

func writeXrefStream(buf *bytes.Buffer, offsets []int, trailer string) {
	id := len(offsets)
	start := buf.Len()
	offsets = append(offsets, start)

	var data bytes.Buffer
	data.Write([]byte{0, 0, 0, 0, 0, 0xff})
	for _, off := range offsets[1:] {
		data.Write([]byte{1, byte(off >> 24), byte(off >> 16), byte(off >> 8), byte(off), 0})
	}

	fmt.Fprintf(buf, "%d 0 obj\n<< /Type /XRef /Size %d /W [1 4 1] %s /Length %d >>\nstream\n",
		id, len(offsets), trailer, data.Len())
	buf.Write(data.Bytes())
	fmt.Fprintf(buf, "\nendstream\nendobj\nstartxref\n%d\n%%%%EOF\n", start)
}

func rect(r [4]float64) string {
	return fmt.Sprintf("[%g %g %g %g]", r[0], r[1], r[2], r[3])
}

// WriteFile writes data to a file in a fresh temporary directory and
// returns its path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
