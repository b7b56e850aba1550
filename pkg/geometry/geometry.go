// Package geometry provides the integer value types used to lay out a plan:
// pixel coordinates, sizes, four-sided boxes, grid dimensions and cell
// addresses, plus the resolver that turns a cell address into a pixel box.
//
// All types are plain values. Nothing in this package mutates its inputs.
package geometry

import (
	"fmt"

	perr "github.com/matzehuels/dbdplan/pkg/errors"
)

// Coordinate is a pixel position.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coordinate) String() string { return fmt.Sprintf("Coordinate %dx%d", c.X, c.Y) }

// Size is a width and height in pixels. Both are non-negative.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewSize returns a Size, rejecting negative components.
func NewSize(width, height int) (Size, error) {
	if width < 0 || height < 0 {
		return Size{}, perr.New(perr.ErrCodeInvalidInput, "size must be non-negative, got %dx%d", width, height)
	}
	return Size{Width: width, Height: height}, nil
}

func (s Size) String() string { return fmt.Sprintf("Size %dx%d", s.Width, s.Height) }

// Fits reports whether s fits within other in both dimensions.
func (s Size) Fits(other Size) bool {
	return s.Width <= other.Width && s.Height <= other.Height
}

// Shrink returns s reduced by the total horizontal and vertical insets of b.
func (s Size) Shrink(b Box) Size {
	return Size{Width: s.Width - b.X(), Height: s.Height - b.Y()}
}

// Box holds one value per side. Depending on context it is either the edges
// of an absolute rectangle or a margin/padding specification.
type Box struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Square returns a box with every side set to n.
func Square(n int) (Box, error) {
	if n < 0 {
		return Box{}, perr.New(perr.ErrCodeInvalidInput, "box side must be non-negative, got %d", n)
	}
	return Box{Top: n, Right: n, Bottom: n, Left: n}, nil
}

// BoxFromInts expands CSS-style shorthand into a Box:
//   - 1 value: all sides
//   - 2 values: top/bottom, left/right
//   - 3 values: top, left/right, bottom
//   - 4 values: top, right, bottom, left
func BoxFromInts(values ...int) (Box, error) {
	for _, v := range values {
		if v < 0 {
			return Box{}, perr.New(perr.ErrCodeInvalidInput, "box side must be non-negative, got %d", v)
		}
	}
	switch len(values) {
	case 1:
		return Square(values[0])
	case 2:
		return Box{Top: values[0], Right: values[1], Bottom: values[0], Left: values[1]}, nil
	case 3:
		return Box{Top: values[0], Right: values[1], Bottom: values[2], Left: values[1]}, nil
	case 4:
		return Box{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}, nil
	default:
		return Box{}, perr.New(perr.ErrCodeInvalidInput, "box needs 1-4 values, got %d", len(values))
	}
}

// X returns the total horizontal inset (left + right).
func (b Box) X() int { return b.Left + b.Right }

// Y returns the total vertical inset (top + bottom).
func (b Box) Y() int { return b.Top + b.Bottom }

// Size returns the extent of b read as an absolute rectangle.
func (b Box) Size() Size {
	return Size{Width: b.Right - b.Left, Height: b.Bottom - b.Top}
}

func (b Box) String() string {
	return fmt.Sprintf("Box (%d,%d)x(%d,%d)", b.Left, b.Top, b.Right, b.Bottom)
}

// Dimensions is the body grid shape in rows and columns, header excluded.
type Dimensions struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

func (d Dimensions) String() string {
	return fmt.Sprintf("Dimensions (rows = %d, columns = %d)", d.Rows, d.Columns)
}

// PlanCell addresses one grid cell. Row 0 is the header row.
type PlanCell struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (c PlanCell) String() string {
	return fmt.Sprintf("Cell (row = %d, column = %d)", c.Row, c.Column)
}
