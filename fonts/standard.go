package fonts

// afmWidths holds advance widths in 1000ths of an em for the printable ASCII
// range (32-126). Other characters use missing.
type afmWidths struct {
	ascii   [95]int
	missing int
}

func (w *afmWidths) glyphWidth(r rune) int {
	if r >= 32 && r <= 126 {
		return w.ascii[r-32]
	}
	return w.missing
}

func (w *afmWidths) stringWidth(text string, size float64) float64 {
	var total int
	for _, r := range text {
		total += w.glyphWidth(r)
	}
	return float64(total) / 1000 * size
}

// StandardGlyphWidth returns the AFM width (1000 units per em) of r in the
// named standard font, and false when name is not a standard font.
func StandardGlyphWidth(name string, r rune) (int, bool) {
	w, ok := standardWidths[name]
	if !ok {
		return 0, false
	}
	return w.glyphWidth(r), true
}

var helveticaWidths = &afmWidths{
	ascii: [95]int{
		278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278, // space - /
		556, 556, 556, 556, 556, 556, 556, 556, 556, 556, // 0 - 9
		278, 278, 584, 584, 584, 556, 1015, // : - @
		667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, // A - M
		722, 778, 667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, // N - Z
		278, 278, 278, 469, 556, 333, // [ - `
		556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, // a - m
		556, 556, 556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, // n - z
		334, 260, 334, 584, // { - ~
	},
	missing: 556,
}

var helveticaBoldWidths = &afmWidths{
	ascii: [95]int{
		278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333, 278, 278,
		556, 556, 556, 556, 556, 556, 556, 556, 556, 556,
		333, 333, 584, 584, 584, 611, 975,
		722, 722, 722, 722, 667, 611, 778, 722, 278, 556, 722, 611, 833,
		722, 778, 667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611,
		333, 278, 333, 584, 556, 333,
		556, 611, 556, 611, 556, 333, 611, 611, 278, 278, 556, 278, 889,
		611, 611, 611, 611, 389, 556, 333, 611, 556, 778, 556, 556, 500,
		389, 280, 389, 584,
	},
	missing: 611,
}

var timesWidths = &afmWidths{
	ascii: [95]int{
		250, 333, 408, 500, 500, 833, 778, 180, 333, 333, 500, 564, 250, 333, 250, 278,
		500, 500, 500, 500, 500, 500, 500, 500, 500, 500,
		278, 278, 564, 564, 564, 444, 921,
		722, 667, 667, 722, 611, 556, 722, 722, 333, 389, 722, 611, 889,
		722, 722, 556, 722, 667, 556, 611, 722, 722, 944, 722, 722, 611,
		333, 278, 333, 469, 500, 333,
		444, 500, 444, 500, 444, 333, 500, 500, 278, 278, 500, 278, 778,
		500, 500, 500, 500, 333, 389, 278, 500, 500, 722, 500, 500, 444,
		480, 200, 480, 541,
	},
	missing: 500,
}

var timesBoldWidths = &afmWidths{
	ascii: [95]int{
		250, 333, 555, 500, 500, 1000, 833, 278, 333, 333, 500, 570, 250, 333, 250, 278,
		500, 500, 500, 500, 500, 500, 500, 500, 500, 500,
		333, 333, 570, 570, 570, 500, 930,
		722, 667, 722, 722, 667, 611, 778, 778, 389, 500, 778, 667, 944,
		722, 778, 611, 778, 722, 556, 667, 722, 722, 1000, 722, 722, 667,
		333, 278, 333, 581, 500, 333,
		500, 556, 444, 556, 444, 333, 500, 556, 278, 333, 556, 278, 833,
		556, 500, 556, 556, 444, 389, 333, 556, 500, 722, 500, 500, 444,
		394, 220, 394, 520,
	},
	missing: 500,
}

var courierWidths = func() *afmWidths {
	w := &afmWidths{missing: 600}
	for i := range w.ascii {
		w.ascii[i] = 600
	}
	return w
}()

// Standard 14 font names mapped to their widths. Oblique and italic variants
// share the upright metrics.
var standardWidths = map[string]*afmWidths{
	"Helvetica":             helveticaWidths,
	"Helvetica-Bold":        helveticaBoldWidths,
	"Helvetica-Oblique":     helveticaWidths,
	"Helvetica-BoldOblique": helveticaBoldWidths,
	"Times-Roman":           timesWidths,
	"Times-Bold":            timesBoldWidths,
	"Times-Italic":          timesWidths,
	"Times-BoldItalic":      timesBoldWidths,
	"Courier":               courierWidths,
	"Courier-Bold":          courierWidths,
	"Courier-Oblique":       courierWidths,
	"Courier-BoldOblique":   courierWidths,
}
