package placement

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAnchor is returned when an anchor name is not recognized.
	ErrUnknownAnchor = errors.New("unknown position anchor")
	// ErrUnknownAlign is returned when an alignment name is not recognized.
	ErrUnknownAlign = errors.New("unknown text alignment")
)

// Align is the horizontal alignment of the stamp text relative to the
// insertion point.
type Align int

const (
	// Center centers the text on the insertion point.
	Center Align = iota
	// Left starts the text at the insertion point.
	Left
	// Right ends the text at the insertion point.
	Right
)

func (a Align) String() string {
	switch a {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return "unknown"
}

// ParseAlign parses "left", "center" or "right" (or their first letter).
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "center", "centre", "c":
		return Center, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlign, s)
}

// Anchor is a symbolic placement shorthand.
type Anchor int

const (
	// BottomCenter is the default anchor.
	BottomCenter Anchor = iota
	BottomLeft
	BottomRight
	TopLeft
	TopCenter
	TopRight
)

var anchorNames = map[Anchor][2]string{
	BottomLeft:   {"bl", "bottom-left"},
	BottomCenter: {"bc", "bottom-center"},
	BottomRight:  {"br", "bottom-right"},
	TopLeft:      {"tl", "top-left"},
	TopCenter:    {"tc", "top-center"},
	TopRight:     {"tr", "top-right"},
}

func (a Anchor) String() string {
	if n, ok := anchorNames[a]; ok {
		return n[1]
	}
	return "unknown"
}

// Code returns the two-letter short form, e.g. "bc".
func (a Anchor) Code() string {
	if n, ok := anchorNames[a]; ok {
		return n[0]
	}
	return ""
}

// ParseAnchor accepts the short codes (bl, bc, br, tl, tc, tr) and the long
// names (bottom-left, ..., top-right).
func ParseAnchor(s string) (Anchor, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for a, n := range anchorNames {
		if key == n[0] || key == n[1] {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAnchor, s)
}

// Position returns the anchored position for a.
func (a Anchor) Position() Position {
	var h, v Edge
	switch a {
	case BottomLeft:
		h, v = Near, Far
	case BottomRight:
		h, v = Far, Far
	case TopLeft:
		h, v = Near, Near
	case TopCenter:
		h, v = Middle, Near
	case TopRight:
		h, v = Far, Near
	default:
		h, v = Middle, Far
	}
	return Anchored(Axis{Edge: h}, Axis{Edge: v})
}

// Align returns the text alignment that belongs to a.
func (a Anchor) Align() Align {
	switch a {
	case BottomLeft, TopLeft:
		return Left
	case BottomRight, TopRight:
		return Right
	default:
		return Center
	}
}

// Placement returns the complete placement for a with the given margin.
func (a Anchor) Placement(margin Margin) Placement {
	return Placement{Position: a.Position(), Align: a.Align(), Margin: margin}
}
