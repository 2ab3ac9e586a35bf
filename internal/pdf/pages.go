// Package pdf reads the page geometry and resources the stamper needs from a
// parsed document.
package pdf

import (
	"errors"
	"fmt"
	"math"

	pdflib "github.com/digitorus/pdf"
)

// maxInheritDepth bounds the /Parent walk for inherited page attributes.
const maxInheritDepth = 64

// letter is used when neither the page nor its ancestors define a MediaBox.
var letter = [4]float64{0, 0, 612, 792}

// ErrNoPages is returned when the document has no page tree.
var ErrNoPages = errors.New("document has no pages")

// PageInfo describes one physical page.
type PageInfo struct {
	// Index is the zero-based position of the page in the document.
	Index int
	// Box is the visible area (CropBox, or MediaBox) as [llx lly urx ury].
	Box [4]float64
	// Rotate is the clockwise display rotation: 0, 90, 180 or 270.
	Rotate int
	// V is the page dictionary.
	V pdflib.Value
}

// PageIndex returns the zero-based page index.
func (p PageInfo) PageIndex() int {
	return p.Index
}

// Width returns the width of the page as displayed, in points.
func (p PageInfo) Width() float64 {
	if p.Rotate == 90 || p.Rotate == 270 {
		return p.Box[3] - p.Box[1]
	}
	return p.Box[2] - p.Box[0]
}

// Height returns the height of the page as displayed, in points.
func (p PageInfo) Height() float64 {
	if p.Rotate == 90 || p.Rotate == 270 {
		return p.Box[2] - p.Box[0]
	}
	return p.Box[3] - p.Box[1]
}

// ObjectID returns the object number and generation of the page dictionary.
func (p PageInfo) ObjectID() (uint32, uint16) {
	ptr := p.V.GetPtr()
	return ptr.GetID(), ptr.GetGen()
}

// Matrix returns the transformation from the displayed page, with its origin
// in the lower-left corner, to default user space.
func (p PageInfo) Matrix() [6]float64 {
	llx, lly := p.Box[0], p.Box[1]
	w, h := p.Box[2]-p.Box[0], p.Box[3]-p.Box[1]

	switch p.Rotate {
	case 90:
		return [6]float64{0, 1, -1, 0, llx + w, lly}
	case 180:
		return [6]float64{-1, 0, 0, -1, llx + w, lly + h}
	case 270:
		return [6]float64{0, -1, 1, 0, llx, lly + h}
	default:
		return [6]float64{1, 0, 0, 1, llx, lly}
	}
}

// Pages returns the geometry of every page in document order.
func Pages(r *pdflib.Reader) ([]PageInfo, error) {
	if r == nil {
		return nil, fmt.Errorf("no reader available")
	}
	if r.Trailer().Key("Root").Key("Pages").IsNull() {
		return nil, ErrNoPages
	}

	numPages := r.NumPage()
	pages := make([]PageInfo, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			return nil, fmt.Errorf("page %d not found", i)
		}
		pages = append(pages, NewPageInfo(i-1, page.V))
	}

	return pages, nil
}

// NewPageInfo reads the geometry of a single page dictionary.
func NewPageInfo(index int, page pdflib.Value) PageInfo {
	box, ok := readBox(Inherited(page, "CropBox"))
	if !ok {
		box, ok = readBox(Inherited(page, "MediaBox"))
	}
	if !ok {
		box = letter
	}

	return PageInfo{
		Index:  index,
		Box:    box,
		Rotate: normalizeRotation(Inherited(page, "Rotate").Int64()),
		V:      page,
	}
}

// Inherited looks key up on the page and, when absent, on its ancestors in
// the page tree.
func Inherited(page pdflib.Value, key string) pdflib.Value {
	val, _ := InheritedFrom(page, key)
	return val
}

// InheritedFrom is like Inherited but also returns the node of the page tree
// that holds the value. Both are null when no node defines key.
func InheritedFrom(page pdflib.Value, key string) (val, owner pdflib.Value) {
	v := page
	for depth := 0; depth < maxInheritDepth && !v.IsNull(); depth++ {
		if val := v.Key(key); !val.IsNull() {
			return val, v
		}
		v = v.Key("Parent")
	}
	return pdflib.Value{}, pdflib.Value{}
}

func readBox(v pdflib.Value) ([4]float64, bool) {
	var box [4]float64
	if v.Kind() != pdflib.Array || v.Len() < 4 {
		return box, false
	}
	for i := 0; i < 4; i++ {
		box[i] = v.Index(i).Float64()
	}

	// Rectangles may be given by any two opposite corners.
	box = [4]float64{
		math.Min(box[0], box[2]), math.Min(box[1], box[3]),
		math.Max(box[0], box[2]), math.Max(box[1], box[3]),
	}
	return box, true
}

func normalizeRotation(r int64) int {
	r %= 360
	if r < 0 {
		r += 360
	}
	// /Rotate must be a multiple of 90; round anything else down.
	return int(r - r%90)
}
