// Package stamp writes page stamps into an existing PDF as an incremental
// update. The original bytes are kept untouched; new and replaced objects,
// a cross-reference section and a trailer are appended.
package stamp

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/digitorus/pdf"
	"github.com/mattetti/filebuffer"
)

func StampFile(input string, output string, stamp_data StampData) error {
	input_file, err := os.Open(input)
	if err != nil {
		return err
	}
	defer func() {
		_ = input_file.Close()
	}()

	finfo, err := input_file.Stat()
	if err != nil {
		return err
	}

	rdr, err := pdf.NewReader(input_file, finfo.Size())
	if err != nil {
		return err
	}

	output_file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		_ = output_file.Close()
	}()

	return Stamp(input_file, output_file, rdr, stamp_data)
}

func Stamp(input io.ReadSeeker, output io.Writer, rdr *pdf.Reader, stamp_data StampData) error {
	if !rdr.Trailer().Key("Encrypt").IsNull() {
		return ErrEncrypted
	}

	context := StampContext{
		PDFReader:     rdr,
		InputFile:     input,
		OutputFile:    output,
		StampData:     stamp_data,
		CompressLevel: stamp_data.CompressLevel,
	}

	return context.StampPDF()
}

func (context *StampContext) StampPDF() error {
	if len(context.StampData.Pages) > 0 && context.StampData.Renderer == nil {
		return ErrNoRenderer
	}
	if context.StampData.ModDate.IsZero() {
		context.StampData.ModDate = time.Now()
	}

	context.newXrefEntries = nil
	context.updatedXrefEntries = nil
	context.fontObjects = make(map[string]uint32)
	context.pageFonts = make(map[uint32]map[string]uint32)
	context.saveStateID = 0
	context.NewXrefStart = 0

	context.lastXrefID = uint32(context.PDFReader.Trailer().Key("Size").Int64())
	if context.lastXrefID == 0 {
		context.lastXrefID = uint32(context.PDFReader.XrefInformation.ItemCount)
	}
	// Size is one more than the highest object number.
	if context.lastXrefID > 0 {
		context.lastXrefID--
	}

	_, err := context.InputFile.Seek(0, 0)
	if err != nil {
		return err
	}

	// Nothing to stamp: the output is the input.
	if len(context.StampData.Pages) == 0 {
		_, err := io.Copy(context.OutputFile, context.InputFile)
		return err
	}

	context.OutputBuffer = filebuffer.New([]byte{})

	// Copy old file into new buffer.
	if _, err := io.Copy(context.OutputBuffer, context.InputFile); err != nil {
		return err
	}

	// File always needs an empty line after %%EOF.
	if _, err := context.OutputBuffer.Write([]byte("\n")); err != nil {
		return err
	}

	context.saveStateID, err = context.addStream([]byte("q\n"))
	if err != nil {
		return fmt.Errorf("failed to add graphics state object: %w", err)
	}

	for _, page := range context.StampData.Pages {
		if err := context.stampPage(page); err != nil {
			return fmt.Errorf("failed to stamp page %d: %w", page.Info.Index+1, err)
		}
	}

	if err := context.updateInfo(); err != nil {
		return fmt.Errorf("failed to update document info: %w", err)
	}

	if err := context.writeXref(); err != nil {
		return fmt.Errorf("failed to write xref: %w", err)
	}

	if err := context.writeTrailer(); err != nil {
		return fmt.Errorf("failed to write trailer: %w", err)
	}

	// Write final output
	if _, err := context.OutputBuffer.Seek(0, 0); err != nil {
		return err
	}
	if _, err := context.OutputFile.Write(context.OutputBuffer.Buff.Bytes()); err != nil {
		return err
	}

	return nil
}

func (context *StampContext) stampPage(page Page) error {
	content, err := context.StampData.Renderer(context, page)
	if err != nil {
		return err
	}

	// Close the "q" that wraps the original content before drawing.
	stream := append([]byte("Q\n"), content...)
	stampID, err := context.addStream(stream)
	if err != nil {
		return fmt.Errorf("failed to add stamp content: %w", err)
	}

	update, err := context.createPageUpdate(page, stampID)
	if err != nil {
		return err
	}

	id, gen := page.Info.ObjectID()
	return context.UpdateObject(id, gen, update)
}

// AddObject appends a new indirect object and returns its object number.
// object is the body only, without the "obj" and "endobj" keywords.
func (context *StampContext) AddObject(object []byte) (uint32, error) {
	objectID := context.lastXrefID + uint32(len(context.newXrefEntries)) + 1
	context.newXrefEntries = append(context.newXrefEntries, xrefEntry{
		ID:     objectID,
		Offset: int64(context.OutputBuffer.Buff.Len()),
	})

	if err := context.writeObject(objectID, 0, object); err != nil {
		return 0, err
	}
	return objectID, nil
}

// UpdateObject appends a new revision of an existing object.
func (context *StampContext) UpdateObject(id uint32, gen uint16, object []byte) error {
	context.updatedXrefEntries = append(context.updatedXrefEntries, xrefEntry{
		ID:         id,
		Offset:     int64(context.OutputBuffer.Buff.Len()),
		Generation: gen,
	})

	return context.writeObject(id, gen, object)
}

func (context *StampContext) writeObject(id uint32, gen uint16, object []byte) error {
	if _, err := fmt.Fprintf(context.OutputBuffer, "%d %d obj\n", id, gen); err != nil {
		return err
	}
	if _, err := context.OutputBuffer.Write(object); err != nil {
		return err
	}
	if _, err := context.OutputBuffer.Write([]byte("\nendobj\n")); err != nil {
		return err
	}
	return nil
}

// addStream adds a stream object, compressed with the configured level.
func (context *StampContext) addStream(data []byte) (uint32, error) {
	data, filter, err := context.compress(data)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<< /Length %d%s >>\nstream\n", len(data), filter)
	buf.Write(data)
	buf.WriteString("\nendstream")

	return context.AddObject(buf.Bytes())
}

// compress returns data deflated at the context's compression level and the
// matching /Filter entry, or data unchanged when compression is disabled.
func (context *StampContext) compress(data []byte) ([]byte, string, error) {
	if context.CompressLevel == zlib.NoCompression {
		return data, "", nil
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, context.CompressLevel)
	if err != nil {
		return nil, "", err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, "", err
	}
	if err := zw.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), " /Filter /FlateDecode", nil
}
