// Package placement resolves where a stamp is drawn on a page.
//
// Positions are either absolute coordinates or anchored to the page edges. An
// anchored position names, per axis, which edge it is measured from and how far
// it sits inside the page margin, so the same placement works on pages of any
// size:
//
//	p := placement.Placement{
//	    Position: placement.Anchored(placement.Axis{Edge: placement.Far}, placement.Axis{Edge: placement.Far}),
//	    Align:    placement.Right,
//	    Margin:   placement.Margin{X: 10, Y: 16},
//	}
//	r := placement.Resolve(595, 842, p) // r.X == 585, r.Y == 826
//
// Coordinates are in points with the origin at the top-left corner of the
// visible page; Y grows downward.
package placement

import (
	"math"
)

// Edge selects the reference line an anchored axis is measured from.
type Edge int

const (
	// Near is the left edge horizontally and the top edge vertically.
	Near Edge = iota
	// Middle is the center line of the page.
	Middle
	// Far is the right edge horizontally and the bottom edge vertically.
	Far
)

func (e Edge) String() string {
	switch e {
	case Near:
		return "near"
	case Middle:
		return "middle"
	case Far:
		return "far"
	}
	return "unknown"
}

// Axis anchors one coordinate to an edge. Offset moves the point further into
// the page, away from the edge (for Middle: toward the far edge).
type Axis struct {
	Edge   Edge
	Offset float64
}

// Margin is the distance kept from the page edges, in points.
type Margin struct {
	X, Y float64
}

// DefaultMargin returns the margin used when none is configured: 10 points
// horizontally and 10 plus half the (integer) font size vertically.
func DefaultMargin(fontSize int) Margin {
	return Margin{X: 10, Y: float64(10 + fontSize/2)}
}

type positionKind int

const (
	kindAnchored positionKind = iota
	kindAbsolute
)

// Position is either an absolute point or a pair of anchored axes. The zero
// value is anchored to the top-left corner inside the margin.
type Position struct {
	kind       positionKind
	x, y       float64
	horizontal Axis
	vertical   Axis
}

// Absolute places the stamp at x, y without applying the margin.
func Absolute(x, y float64) Position {
	return Position{kind: kindAbsolute, x: x, y: y}
}

// Anchored places the stamp relative to the page edges.
func Anchored(horizontal, vertical Axis) Position {
	return Position{kind: kindAnchored, horizontal: horizontal, vertical: vertical}
}

// Signed translates a sign-encoded coordinate pair into an anchored position.
//
// A component with a positive sign is measured from the left/top edge: the
// stamp sits p points inside the margin. A negative component is measured from
// the right/bottom edge, where -1 means exactly at the margin and every further
// point moves one point inward.
func Signed(px, py float64) Position {
	return Anchored(signedAxis(px), signedAxis(py))
}

func signedAxis(p float64) Axis {
	if math.Signbit(p) {
		// -0 and values above -1 sit exactly at the margin.
		return Axis{Edge: Far, Offset: math.Max(0, -p-1)}
	}
	return Axis{Edge: Near, Offset: p}
}

// IsAbsolute reports whether the position ignores the margin.
func (p Position) IsAbsolute() bool {
	return p.kind == kindAbsolute
}

// Axes returns the anchored axes. For absolute positions both axes are Near
// with the absolute coordinates as offsets.
func (p Position) Axes() (horizontal, vertical Axis) {
	if p.kind == kindAbsolute {
		return Axis{Edge: Near, Offset: p.x}, Axis{Edge: Near, Offset: p.y}
	}
	return p.horizontal, p.vertical
}

// Placement combines a position with the text alignment and page margin.
type Placement struct {
	Position Position
	Align    Align
	Margin   Margin
}

// Resolved is the absolute text insertion point on a page.
type Resolved struct {
	X, Y  float64
	Align Align
}

// Resolve computes the insertion point on a page of the given size.
//
// Resolve is pure arithmetic; zero or negative page sizes yield degenerate
// but well-defined coordinates.
func Resolve(width, height float64, p Placement) Resolved {
	if p.Position.kind == kindAbsolute {
		return Resolved{X: p.Position.x, Y: p.Position.y, Align: p.Align}
	}
	return Resolved{
		X:     resolveAxis(p.Position.horizontal, width, p.Margin.X),
		Y:     resolveAxis(p.Position.vertical, height, p.Margin.Y),
		Align: p.Align,
	}
}

func resolveAxis(a Axis, size, margin float64) float64 {
	switch a.Edge {
	case Middle:
		return size/2 + a.Offset
	case Far:
		return size - margin - a.Offset
	default:
		return margin + a.Offset
	}
}
