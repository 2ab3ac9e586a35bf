package stamp

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
)

// writeXrefStream writes the cross-reference stream, which also carries the
// trailer entries, as the last new object.
func (context *StampContext) writeXrefStream() error {
	// The stream object indexes itself.
	xrefID := context.lastXrefID + uint32(len(context.newXrefEntries)) + 1
	context.newXrefEntries = append(context.newXrefEntries, xrefEntry{
		ID:     xrefID,
		Offset: context.NewXrefStart,
	})

	var buffer bytes.Buffer
	writeXrefStreamEntries(&buffer, context)

	streamBytes, err := encodeXrefStream(buffer.Bytes())
	if err != nil {
		return fmt.Errorf("failed to encode xref stream: %w", err)
	}

	var xrefStreamObject bytes.Buffer
	if err := context.writeXrefStreamHeader(&xrefStreamObject, len(streamBytes)); err != nil {
		return fmt.Errorf("failed to write xref stream header: %w", err)
	}
	if err := writeXrefStreamContent(&xrefStreamObject, streamBytes); err != nil {
		return fmt.Errorf("failed to write xref stream content: %w", err)
	}

	return context.writeObject(xrefID, 0, xrefStreamObject.Bytes())
}

// writeXrefStreamEntries writes the individual entries for the xref stream.
func writeXrefStreamEntries(buffer *bytes.Buffer, context *StampContext) {
	// Write updated entries first
	for _, entry := range context.updatedXrefEntries {
		writeXrefStreamLine(buffer, 1, entry.Offset, entry.Generation)
	}

	// Write new entries
	for _, entry := range context.newXrefEntries {
		writeXrefStreamLine(buffer, 1, entry.Offset, 0)
	}
}

// encodeXrefStream deflates the xref stream without prediction.
func encodeXrefStream(data []byte) ([]byte, error) {
	var b bytes.Buffer
	w := zlib.NewWriter(&b)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// writeXrefStreamHeader writes the header for the xref stream.
func (context *StampContext) writeXrefStreamHeader(buffer *bytes.Buffer, streamLength int) error {
	var indexArray []uint32
	for _, entry := range context.updatedXrefEntries {
		indexArray = append(indexArray, entry.ID, 1)
	}
	indexArray = append(indexArray, context.lastXrefID+1, uint32(len(context.newXrefEntries)))

	buffer.WriteString("<< /Type /XRef\n")
	fmt.Fprintf(buffer, "  /Length %d\n", streamLength)
	buffer.WriteString("  /Filter /FlateDecode\n")
	// Two generation bytes, pages may carry a generation above 255.
	buffer.WriteString("  /W [ 1 4 2 ]\n")
	buffer.WriteString("  /Index [")
	for _, idx := range indexArray {
		fmt.Fprintf(buffer, " %d", idx)
	}
	buffer.WriteString(" ]\n")

	if err := context.writeTrailerEntries(buffer); err != nil {
		return err
	}

	buffer.WriteString(">>\n")
	return nil
}

// writeXrefStreamContent writes the content of the xref stream.
func writeXrefStreamContent(buffer *bytes.Buffer, streamBytes []byte) error {
	if _, err := io.WriteString(buffer, "stream\n"); err != nil {
		return err
	}

	if _, err := buffer.Write(streamBytes); err != nil {
		return err
	}

	if _, err := io.WriteString(buffer, "\nendstream"); err != nil {
		return err
	}

	return nil
}

// writeXrefStreamLine writes a single line in the xref stream.
func writeXrefStreamLine(b *bytes.Buffer, xreftype byte, offset int64, gen uint16) {
	b.WriteByte(xreftype)

	offsetBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(offsetBytes, uint32(offset))
	b.Write(offsetBytes)

	genBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(genBytes, gen)
	b.Write(genBytes)
}
