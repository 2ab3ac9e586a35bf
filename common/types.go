package common

import (
	"time"
)

// DocumentInfo contains document information that can be extracted from any PDF.
type DocumentInfo struct {
	Author   string `json:"author,omitempty" yaml:"author,omitempty"`
	Creator  string `json:"creator,omitempty" yaml:"creator,omitempty"`
	Producer string `json:"producer,omitempty" yaml:"producer,omitempty"`
	Subject  string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`

	Pages        int        `json:"pages" yaml:"pages"`
	ModDate      *time.Time `json:"mod_date,omitempty" yaml:"mod_date,omitempty"`
	CreationDate *time.Time `json:"creation_date,omitempty" yaml:"creation_date,omitempty"`
}

// PageStamp is the planned outcome for one page.
type PageStamp struct {
	// Page is the 1-based page number, Index the zero-based position.
	Page  int `json:"page" yaml:"page"`
	Index int `json:"index" yaml:"index"`

	Stamped bool `json:"stamped" yaml:"stamped"`
	// Number is the display number; zero when the page is not stamped.
	Number int    `json:"number,omitempty" yaml:"number,omitempty"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`

	// X and Y are the start of the text baseline on the visible page,
	// measured from its lower-left corner.
	X     float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y     float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Align string  `json:"align,omitempty" yaml:"align,omitempty"`

	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Rotate int     `json:"rotate,omitempty" yaml:"rotate,omitempty"`
}

// Plan is the stamping plan of a document.
type Plan struct {
	File     string       `json:"file,omitempty" yaml:"file,omitempty"`
	Document DocumentInfo `json:"document" yaml:"document"`
	Pages    []PageStamp  `json:"pages" yaml:"pages"`
}

// StampedPages returns the number of pages that receive a stamp.
func (p Plan) StampedPages() int {
	n := 0
	for _, page := range p.Pages {
		if page.Stamped {
			n++
		}
	}
	return n
}
