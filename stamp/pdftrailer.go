package stamp

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

func (context *StampContext) writeTrailer() error {
	if context.PDFReader.XrefInformation.Type == "table" {
		var trailer bytes.Buffer
		trailer.WriteString("trailer\n<<\n")
		if err := context.writeTrailerEntries(&trailer); err != nil {
			return err
		}
		trailer.WriteString(">>\n")

		if _, err := context.OutputBuffer.Write(trailer.Bytes()); err != nil {
			return err
		}
	}

	if _, err := context.OutputBuffer.Write([]byte("startxref\n")); err != nil {
		return err
	}

	// Write the new xref start position.
	if _, err := context.OutputBuffer.Write([]byte(strconv.FormatInt(context.NewXrefStart, 10) + "\n")); err != nil {
		return err
	}

	// Write PDF ending.
	if _, err := context.OutputBuffer.Write([]byte("%%EOF\n")); err != nil {
		return err
	}

	return nil
}

// writeTrailerEntries writes the trailer keys shared by xref tables and
// xref streams.
func (context *StampContext) writeTrailerEntries(buffer *bytes.Buffer) error {
	root := context.PDFReader.Trailer().Key("Root")
	if root.IsNull() {
		return fmt.Errorf("document has no catalog")
	}
	rootPtr := root.GetPtr()

	fmt.Fprintf(buffer, "  /Size %d\n", context.size())
	fmt.Fprintf(buffer, "  /Root %d %d R\n", rootPtr.GetID(), rootPtr.GetGen())
	if context.infoObjectID != 0 {
		fmt.Fprintf(buffer, "  /Info %d %d R\n", context.infoObjectID, context.infoGeneration)
	}
	fmt.Fprintf(buffer, "  /Prev %d\n", context.PDFReader.XrefInformation.StartPos)

	id0, id1 := context.documentID()
	fmt.Fprintf(buffer, "  /ID [<%s><%s>]\n", id0, id1)
	return nil
}

// documentID keeps the permanent identifier of the document and replaces
// the changing one. Both are new when the document had no ID.
func (context *StampContext) documentID() (string, string) {
	next := uuid.New()
	id1 := hex.EncodeToString(next[:])

	id := context.PDFReader.Trailer().Key("ID")
	if first := id.Index(0).RawString(); first != "" {
		return hex.EncodeToString([]byte(first)), id1
	}
	return id1, id1
}
