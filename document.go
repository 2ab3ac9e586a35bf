// Package pdfnumber stamps page numbers onto existing PDF documents.
//
// Numbers are written as an incremental update: the original file is kept
// byte for byte and the stamped pages are appended as new revisions.
//
// Basic usage:
//
//	doc, err := pdfnumber.OpenFile("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc.Number().
//	    Start(1).
//	    Ignore(1).
//	    Format("Page {} of {}").
//	    Anchor(pdfnumber.BottomRight)
//
//	result, err := doc.Write(output)
package pdfnumber

import (
	"compress/zlib"
	"fmt"
	"io"
	"os"
	"time"

	pdflib "github.com/digitorus/pdf"

	"github.com/digitorus/pdfnumber/common"
	"github.com/digitorus/pdfnumber/internal/pdf"
)

// Document represents a PDF document that can be numbered.
type Document struct {
	reader io.ReaderAt
	size   int64
	rdr    *pdflib.Reader

	// Registered resources
	fonts map[string]*Font

	// Staged operation
	numbering *NumberBuilder

	// Document settings
	compressLevel int
	modDate       time.Time
}

// Open initializes a PDF Document from an io.ReaderAt (e.g., an open file or memory buffer).
// The size parameter must be the total size of the PDF in bytes.
func Open(reader io.ReaderAt, size int64) (*Document, error) {
	rdr, err := pdflib.NewReader(reader, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	if !rdr.Trailer().Key("Encrypt").IsNull() {
		return nil, ErrEncrypted
	}

	return &Document{
		reader:        reader,
		size:          size,
		rdr:           rdr,
		fonts:         make(map[string]*Font),
		compressLevel: zlib.DefaultCompression,
	}, nil
}

// OpenFile is a convenience method to initialize a PDF Document from a file on disk.
// The file stays open until Close is called.
func OpenFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	finfo, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	doc, err := Open(file, finfo.Size())
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return doc, nil
}

// Close releases the underlying reader when it is an io.Closer.
func (d *Document) Close() error {
	if c, ok := d.reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// SetCompression configures the zlib compression level for new objects added to the PDF.
// Supported levels are zlib.NoCompression, zlib.BestSpeed, zlib.BestCompression, or zlib.DefaultCompression.
func (d *Document) SetCompression(level int) {
	d.compressLevel = level
}

// SetModDate sets the modification date recorded in the document
// information. The time of writing is used by default.
func (d *Document) SetModDate(t time.Time) {
	d.modDate = t
}

// Reader returns the low-level PDF reader, allowing direct access to the PDF Cross-Reference (XRef) table and objects.
func (d *Document) Reader() *pdflib.Reader {
	return d.rdr
}

// Pages returns the geometry of every page in document order.
func (d *Document) Pages() ([]Page, error) {
	return pdf.Pages(d.rdr)
}

// Info returns the document information and page count.
func (d *Document) Info() common.DocumentInfo {
	return pdf.DocumentInfo(d.rdr)
}

// Number begins configuring the page numbering. Repeated calls return the
// same builder. The numbers are only written when doc.Write() is called.
func (d *Document) Number() *NumberBuilder {
	if d.numbering == nil {
		d.numbering = newNumberBuilder(d)
	}
	return d.numbering
}
