package stamp

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/digitorus/pdf"
)

// maxValueDepth bounds the nesting of direct objects written inline.
const maxValueDepth = 64

// ErrNestingTooDeep is returned for direct objects nested deeper than
// maxValueDepth.
var ErrNestingTooDeep = errors.New("direct object nesting too deep")

// writeValue serializes v, an entry of the object parent. Values stored in
// other objects are written as indirect references.
func (context *StampContext) writeValue(b *bytes.Buffer, parent, v pdf.Value) error {
	return context.serialize(b, parent, v, 1)
}

func (context *StampContext) serialize(b *bytes.Buffer, parent, v pdf.Value, depth int) error {
	if depth > maxValueDepth {
		return ErrNestingTooDeep
	}
	if isIndirect(parent, v) || context.isObject(v) {
		writeReference(b, v)
		return nil
	}

	switch v.Kind() {
	case pdf.Null:
		b.WriteString("null")
	case pdf.Bool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case pdf.Integer:
		b.WriteString(strconv.FormatInt(v.Int64(), 10))
	case pdf.Real:
		b.WriteString(formatNumber(v.Float64()))
	case pdf.String:
		b.WriteString("<" + hex.EncodeToString([]byte(v.RawString())) + ">")
	case pdf.Name:
		b.WriteString(pdfName(v.Name()))
	case pdf.Array:
		b.WriteString("[")
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteString(" ")
			}
			if err := context.serialize(b, v, v.Index(i), depth+1); err != nil {
				return err
			}
		}
		b.WriteString("]")
	case pdf.Dict:
		b.WriteString("<<")
		for _, key := range v.Keys() {
			b.WriteString(" " + pdfName(key) + " ")
			if err := context.serialize(b, v, v.Key(key), depth+1); err != nil {
				return err
			}
		}
		b.WriteString(" >>")
	default:
		b.WriteString("null")
	}
	return nil
}

// isIndirect reports whether v lives in an object other than parent's.
// Streams are always indirect.
func isIndirect(parent, v pdf.Value) bool {
	if v.Kind() == pdf.Stream {
		return true
	}
	ptr := v.GetPtr()
	if ptr.GetID() == 0 {
		return false
	}
	pptr := parent.GetPtr()
	return ptr.GetID() != pptr.GetID() || ptr.GetGen() != pptr.GetGen()
}

// isObject reports whether the dictionary or array v is the whole object it
// was read from. Such a value nested in its own object is a reference back
// to that object, e.g. the /P entry of a direct annotation.
func (context *StampContext) isObject(v pdf.Value) bool {
	if v.Kind() != pdf.Dict && v.Kind() != pdf.Array {
		return false
	}
	ptr := v.GetPtr()
	if ptr.GetID() == 0 || context.PDFReader == nil {
		return false
	}
	obj, err := context.PDFReader.GetObject(ptr.GetID())
	if err != nil || obj.GetPtr() != ptr {
		return false
	}
	// A direct value never equals the object that contains it.
	return reflect.DeepEqual(obj, v)
}

func writeReference(b *bytes.Buffer, v pdf.Value) {
	ptr := v.GetPtr()
	fmt.Fprintf(b, "%d %d R", ptr.GetID(), ptr.GetGen())
}

// pdfName encodes name as a PDF name object, escaping delimiters and
// characters outside the printable ASCII range.
func pdfName(name string) string {
	var b bytes.Buffer
	b.WriteByte('/')
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c < '!' || c > '~', c == '#':
			fmt.Fprintf(&b, "#%02X", c)
		case bytes.IndexByte([]byte("()<>[]{}/%"), c) >= 0:
			fmt.Fprintf(&b, "#%02X", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
