package geometry

import (
	perr "github.com/matzehuels/dbdplan/pkg/errors"
)

// Grid bundles everything needed to resolve cell boxes for one plan.
type Grid struct {
	Dimensions Dimensions
	CellSize   Size
	Margins    Box // outer plan margins
	Paddings   Box // inner padding of every cell
}

// CanvasSize returns the pixel size of the whole plan. One extra row is
// always reserved for the header.
func (g Grid) CanvasSize() Size {
	return Size{
		Width:  g.CellSize.Width*g.Dimensions.Columns + g.Margins.X(),
		Height: g.CellSize.Height*(g.Dimensions.Rows+1) + g.Margins.Y(),
	}
}

// InnerCellSize returns the cell size without paddings, the space available
// to anything drawn inside a cell.
func (g Grid) InnerCellSize() Size {
	return g.CellSize.Shrink(g.Paddings)
}

// CellBox returns the absolute pixel box of cell inside g.
func (g Grid) CellBox(cell PlanCell) (Box, error) {
	return CellBox(cell, g.Dimensions, g.CellSize, g.Margins, g.Paddings)
}

// CellBox computes the absolute pixel box of a grid cell, paddings applied.
//
// Row 0 is the header, body rows run 1..dims.Rows. The bounds check is
// inclusive on both axes: row == dims.Rows and column == dims.Columns pass.
func CellBox(cell PlanCell, dims Dimensions, cellSize Size, margins, paddings Box) (Box, error) {
	if cell.Row < 0 || cell.Row > dims.Rows {
		return Box{}, perr.New(perr.ErrCodeOutOfBounds, "row %d is out of bounds for %s", cell.Row, dims)
	}
	if cell.Column < 0 || cell.Column > dims.Columns {
		return Box{}, perr.New(perr.ErrCodeOutOfBounds, "column %d is out of bounds for %s", cell.Column, dims)
	}
	top := margins.Top + paddings.Top + cell.Row*cellSize.Height
	left := margins.Left + paddings.Left + cell.Column*cellSize.Width
	return Box{
		Top:    top,
		Right:  left + cellSize.Width - paddings.X(),
		Bottom: top + cellSize.Height - paddings.Y(),
		Left:   left,
	}, nil
}

// CenterInBox returns the top-left coordinate that centres an object of the
// given size in box. Odd slack rounds toward the top-left. Objects larger
// than the box in either dimension are rejected; nothing is clipped.
func CenterInBox(box Box, object Size) (Coordinate, error) {
	space := box.Size()
	if !object.Fits(space) {
		return Coordinate{}, perr.New(perr.ErrCodeTooLarge, "object does not fit: %s > %s", object, space)
	}
	return Coordinate{
		X: box.Left + (space.Width-object.Width)/2,
		Y: box.Top + (space.Height-object.Height)/2,
	}, nil
}
