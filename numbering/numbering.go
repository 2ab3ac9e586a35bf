// Package numbering assigns display numbers to the physical pages of a document.
//
// Every page receives a Decision: either Skip (no stamp) or Stamp(n). A running
// counter starts at Config.Start and advances for every stamped page. Pages in
// the ignore set are excluded without consuming a number, pages in the skip set
// consume a number that is never shown.
//
//	cfg := numbering.Config{
//	    Start:  1,
//	    Ignore: numbering.NewPageSet(2),
//	    Skip:   numbering.NewPageSet(4),
//	}
//	for page, d := range numbering.Sequence(pages, cfg) {
//	    ...
//	}
package numbering

import (
	"iter"
	"slices"
	"strconv"
)

// DefaultStart is the number given to the first counted page.
const DefaultStart = 1

// Indexed is implemented by page descriptors that carry a zero-based page index.
type Indexed interface {
	PageIndex() int
}

// Index is a bare zero-based page index.
type Index int

// PageIndex implements Indexed.
func (i Index) PageIndex() int { return int(i) }

// Indices returns n consecutive page indices starting at zero.
func Indices(n int) []Index {
	if n <= 0 {
		return nil
	}
	idx := make([]Index, n)
	for i := range idx {
		idx[i] = Index(i)
	}
	return idx
}

// Decision is the numbering outcome for a single page.
type Decision struct {
	stamp  bool
	number int
}

// Skip returns the decision for a page that is not stamped.
func Skip() Decision {
	return Decision{}
}

// Stamp returns the decision for a page stamped with number n.
func Stamp(n int) Decision {
	return Decision{stamp: true, number: n}
}

// IsSkip reports whether the page receives no stamp.
func (d Decision) IsSkip() bool {
	return !d.stamp
}

// Number returns the display number and whether the page is stamped at all.
func (d Decision) Number() (int, bool) {
	return d.number, d.stamp
}

func (d Decision) String() string {
	if !d.stamp {
		return "Skip"
	}
	return "Stamp(" + strconv.Itoa(d.number) + ")"
}

// PageSet is a set of zero-based page indices.
type PageSet map[int]struct{}

// NewPageSet builds a set from zero-based page indices.
func NewPageSet(indices ...int) PageSet {
	s := make(PageSet, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

// PagesFromOneBased builds a set from page numbers as users see them (first page is 1).
func PagesFromOneBased(pages ...int) PageSet {
	s := make(PageSet, len(pages))
	for _, p := range pages {
		s[p-1] = struct{}{}
	}
	return s
}

// Contains reports whether index is a member. A nil set contains nothing.
func (s PageSet) Contains(index int) bool {
	_, ok := s[index]
	return ok
}

// Len returns the number of indices in the set.
func (s PageSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s PageSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Config controls how numbers are assigned.
type Config struct {
	// Start is the number given to the first counted page.
	Start int

	// Ignore holds pages that are neither stamped nor counted.
	Ignore PageSet

	// Skip holds pages that are counted but not stamped.
	Skip PageSet

	// Format is the stamp text template, see Format.
	Format string
}

// DefaultConfig returns a configuration that numbers every page from 1.
func DefaultConfig() Config {
	return Config{
		Start:  DefaultStart,
		Format: DefaultFormat,
	}
}

// Sequence yields every page together with its decision, in page order.
//
// The returned iterator holds no state between runs: ranging over it twice
// yields the same sequence.
func Sequence[P Indexed](pages []P, cfg Config) iter.Seq2[P, Decision] {
	return func(yield func(P, Decision) bool) {
		counter := cfg.Start
		for _, page := range pages {
			var d Decision
			// Ignore is tested first: a page in both sets does not consume a number.
			switch idx := page.PageIndex(); {
			case cfg.Ignore.Contains(idx):
				d = Skip()
			case cfg.Skip.Contains(idx):
				d = Skip()
				counter++
			default:
				d = Stamp(counter)
				counter++
			}
			if !yield(page, d) {
				return
			}
		}
	}
}

// Decisions collects Sequence into a slice with one entry per page.
func Decisions[P Indexed](pages []P, cfg Config) []Decision {
	out := make([]Decision, 0, len(pages))
	for _, d := range Sequence(pages, cfg) {
		out = append(out, d)
	}
	return out
}
