package stamp

import (
	"errors"
	"io"
	"time"

	"github.com/digitorus/pdf"
	"github.com/mattetti/filebuffer"

	internalpdf "github.com/digitorus/pdfnumber/internal/pdf"
)

// ErrEncrypted is returned for documents protected by a security handler.
var ErrEncrypted = errors.New("encrypted documents are not supported")

// ErrNoRenderer is returned when StampData has pages but no Renderer.
var ErrNoRenderer = errors.New("no stamp renderer configured")

// Page is a single page to stamp.
type Page struct {
	Info   internalpdf.PageInfo
	Number int
	Text   string
}

// Renderer produces the content stream operators that draw the stamp of a
// page. The operators must leave the graphics state balanced.
type Renderer func(context *StampContext, page Page) ([]byte, error)

type StampData struct {
	Pages    []Page
	Renderer Renderer

	// ModDate is written to the document information dictionary. The
	// current time is used when zero.
	ModDate time.Time

	// CompressLevel determines compression level (zlib) for stream objects.
	CompressLevel int
}

type xrefEntry struct {
	ID         uint32
	Offset     int64
	Generation uint16
}

type StampContext struct {
	InputFile    io.ReadSeeker
	OutputFile   io.Writer
	OutputBuffer *filebuffer.Buffer
	StampData    StampData
	PDFReader    *pdf.Reader
	NewXrefStart int64

	// CompressLevel determines compression level (zlib) for stream objects.
	CompressLevel int

	infoObjectID       uint32
	infoGeneration     uint16
	lastXrefID         uint32
	newXrefEntries     []xrefEntry
	updatedXrefEntries []xrefEntry

	// Font object ids by font key, shared by all pages.
	fontObjects map[string]uint32
	// Page object id to font resource name to font object id.
	pageFonts map[uint32]map[string]uint32

	existingFonts []internalpdf.FontInfo
	scannedFonts  bool

	// Stream holding a single "q", prepended to every stamped page.
	saveStateID uint32
}
