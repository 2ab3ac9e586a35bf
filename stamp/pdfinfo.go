package stamp

import (
	"bytes"
)

// updateInfo writes the document information dictionary with a new
// ModDate. An indirect Info object is replaced, otherwise a new one is added.
func (context *StampContext) updateInfo() error {
	original_info := context.PDFReader.Trailer().Key("Info")

	var info bytes.Buffer
	info.WriteString("<<")
	for _, key := range original_info.Keys() {
		if key == "ModDate" {
			continue
		}
		info.WriteString(" " + pdfName(key) + " ")
		if err := context.writeValue(&info, original_info, original_info.Key(key)); err != nil {
			return err
		}
	}
	info.WriteString(" /ModDate " + pdfDateTime(context.StampData.ModDate))
	info.WriteString(" >>")

	ptr := original_info.GetPtr()
	if !original_info.IsNull() && ptr.GetID() != 0 {
		context.infoObjectID = ptr.GetID()
		context.infoGeneration = ptr.GetGen()
		return context.UpdateObject(ptr.GetID(), ptr.GetGen(), info.Bytes())
	}

	id, err := context.AddObject(info.Bytes())
	if err != nil {
		return err
	}
	context.infoObjectID = id
	context.infoGeneration = 0
	return nil
}
