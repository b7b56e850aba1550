package render

import (
	"image"
	"image/color"
	"image/draw"
	"reflect"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/dbdplan/pkg/cache"
	perr "github.com/matzehuels/dbdplan/pkg/errors"
	"github.com/matzehuels/dbdplan/pkg/fonts"
	"github.com/matzehuels/dbdplan/pkg/geometry"
)

// textOp is a label whose position has already been checked. at is the
// top-left corner of the ink box; originX is the pen offset from it.
type textOp struct {
	text    string
	face    font.Face
	color   color.Color
	at      geometry.Coordinate
	originX int
}

// imageOp is a resized placeholder whose position has already been checked.
type imageOp struct {
	img *image.NRGBA
	at  geometry.Coordinate
}

// DrawHeader draws one label per column into the header row.
func (r *Renderer) DrawHeader(headers []string, ref fonts.Ref) error {
	columns := r.grid.Dimensions.Columns
	if len(headers) != columns {
		return perr.New(perr.ErrCodeCountMismatch, "got %d headers for %d columns", len(headers), columns)
	}
	face, err := r.resolve(ref, r.settings.HeaderFont)
	if err != nil {
		return err
	}

	ops := make([]textOp, 0, columns)
	for c, header := range headers {
		box, err := r.grid.CellBox(geometry.PlanCell{Row: 0, Column: c})
		if err != nil {
			return err
		}
		op, err := placeText(header, face, r.settings.HeaderColor, box)
		if err != nil {
			return perr.Wrap(perr.GetCode(err), err, "header %q", header)
		}
		ops = append(ops, op)
	}

	for _, op := range ops {
		r.drawText(op)
	}
	return nil
}

// DrawPlan fills body cells in reading order starting at startFromColumn of
// the first body row. Element i goes over placeholders[i].
func (r *Renderer) DrawPlan(elements []string, placeholders []image.Image, ref fonts.Ref, startFromColumn int) error {
	if len(elements) != len(placeholders) {
		return perr.New(perr.ErrCodeCountMismatch, "got %d elements for %d placeholders", len(elements), len(placeholders))
	}
	columns := r.grid.Dimensions.Columns
	if startFromColumn < 0 || startFromColumn > columns {
		return perr.New(perr.ErrCodeOutOfRange, "start column %d not in [0, %d]", startFromColumn, columns)
	}
	face, err := r.resolve(ref, r.settings.BodyFont)
	if err != nil {
		return err
	}

	inner := r.grid.InnerCellSize()
	images := make([]imageOp, 0, len(elements))
	texts := make([]textOp, 0, len(elements))
	for i, element := range elements {
		shifted := i + startFromColumn
		cell := geometry.PlanCell{Row: shifted/columns + 1, Column: shifted % columns}

		box, err := r.grid.CellBox(cell)
		if err != nil {
			return err
		}
		if placeholders[i] == nil {
			return perr.New(perr.ErrCodeInvalidInput, "no placeholder for %s", cell)
		}
		resized, err := r.resize(placeholders[i], inner)
		if err != nil {
			return err
		}

		b := resized.Bounds()
		at, err := geometry.CenterInBox(box, geometry.Size{Width: b.Dx(), Height: b.Dy()})
		if err != nil {
			return perr.Wrap(perr.GetCode(err), err, "placeholder in %s", cell)
		}
		placed := geometry.Box{Top: at.Y, Left: at.X, Right: at.X + b.Dx(), Bottom: at.Y + b.Dy()}

		op, err := placeText(element, face, r.settings.BodyColor, placed)
		if err != nil {
			return perr.Wrap(perr.GetCode(err), err, "text %q in %s", element, cell)
		}
		images = append(images, imageOp{img: resized, at: at})
		texts = append(texts, op)
	}

	for i := range images {
		r.drawImage(images[i])
		r.drawText(texts[i])
	}
	r.logger.Debug("plan drawn", "cells", len(elements), "start", startFromColumn, "cached", r.resized.Len())
	return nil
}

// DrawTextInBox draws text centred in box.
func (r *Renderer) DrawTextInBox(text string, face font.Face, c color.Color, box geometry.Box) error {
	if face == nil {
		return perr.New(perr.ErrCodeInvalidInput, "no font face")
	}
	if c == nil {
		return perr.New(perr.ErrCodeInvalidInput, "no text colour")
	}
	op, err := placeText(text, face, c, box)
	if err != nil {
		return err
	}
	r.drawText(op)
	return nil
}

// TextSize measures text anchored at its top-left corner. The width covers
// the ink, including glyphs that reach left of the pen.
func TextSize(face font.Face, text string) geometry.Size {
	size, _ := measure(face, text)
	return size
}

// measure returns the text size and the pen offset from the left edge of
// the ink.
func measure(face font.Face, text string) (geometry.Size, int) {
	bounds, _ := font.BoundString(face, text)
	ascent := face.Metrics().Ascent.Ceil()
	left := min(bounds.Min.X.Floor(), 0)
	return geometry.Size{
		Width:  max(bounds.Max.X.Ceil()-left, 0),
		Height: max(ascent+bounds.Max.Y.Ceil(), 0),
	}, -left
}

func placeText(text string, face font.Face, c color.Color, box geometry.Box) (textOp, error) {
	size, originX := measure(face, text)
	at, err := geometry.CenterInBox(box, size)
	if err != nil {
		return textOp{}, err
	}
	return textOp{text: text, face: face, color: c, at: at, originX: originX}, nil
}

// resize shrinks src to fit target. Sources whose dynamic value cannot be a
// map key bypass the cache.
func (r *Renderer) resize(src image.Image, target geometry.Size) (*image.NRGBA, error) {
	fit := func() (*image.NRGBA, error) {
		return imaging.Fit(src, target.Width, target.Height, r.settings.Filter), nil
	}
	if !reflect.ValueOf(src).Comparable() {
		return fit()
	}
	img, _, err := cache.GetOrAdd(r.resized, src, fit)
	return img, err
}

func (r *Renderer) drawImage(op imageOp) {
	b := op.img.Bounds()
	dst := image.Rect(op.at.X, op.at.Y, op.at.X+b.Dx(), op.at.Y+b.Dy())
	draw.Draw(r.canvas, dst, op.img, b.Min, draw.Over)
}

func (r *Renderer) drawText(op textOp) {
	d := &font.Drawer{
		Dst:  r.canvas,
		Src:  image.NewUniform(op.color),
		Face: op.face,
		Dot:  fixed.P(op.at.X+op.originX, op.at.Y+op.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(op.text)
}
