package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat matches every InvalidColorFormatError.
var ErrInvalidColorFormat = errors.New("invalid color format")

// InvalidColorFormatError is returned by ParseColor for malformed input.
type InvalidColorFormatError struct {
	Value string
	Err   error
}

func (e *InvalidColorFormatError) Error() string {
	msg := fmt.Sprintf("invalid color format %q, expected #rrggbb", e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidColorFormatError) Unwrap() error {
	return e.Err
}

func (e *InvalidColorFormatError) Is(target error) bool {
	return target == ErrInvalidColorFormat
}

// Color represents an RGB color.
type Color struct {
	R, G, B uint8
}

// Black is the default text color.
var Black = Color{}

// String returns the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// fill returns the nonstroking color operator for c.
func (c Color) fill() string {
	return fmt.Sprintf("%.3f %.3f %.3f rg", float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0)
}

// ParseColor parses a six digit hexadecimal color, with or without a
// leading '#'.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, &InvalidColorFormatError{Value: s}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, &InvalidColorFormatError{Value: s, Err: err}
	}

	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
