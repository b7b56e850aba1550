// Package render composites a plan image: weekday labels in a header row,
// then one body cell per day holding a grade placeholder with the day number
// centred on top of it.
//
// # Grid
//
// A [Renderer] owns one NRGBA canvas sized from its [geometry.Grid]: columns
// times the cell width, rows plus one header row times the cell height,
// margins on top. Cell boxes come from [geometry.CellBox] and every object is
// placed with [geometry.CenterInBox].
//
//	r, err := render.New(geometry.Dimensions{Rows: 5, Columns: 7}, settings)
//	err = r.DrawHeader(calendar.Weekdays(), fonts.Default())
//	err = r.DrawPlan(days, images, fonts.Default(), startColumn)
//	err = r.Save("plan.png")
//
// # Placeholders
//
// Placeholders are shrunk to the padded cell with [imaging.Fit], which keeps
// the aspect ratio and never upscales. Each distinct source image is resized
// once per renderer; the result is composited with its own alpha.
//
// # Text
//
// Text is measured from the top-left of its line box: the width is the right
// edge of the inked glyphs, the height is the font ascent plus how far the
// ink reaches below the baseline.
//
// # Failure
//
// Draw calls check every precondition for all their cells before touching
// the canvas, so a failed call leaves the image as it was.
//
// [imaging.Fit]: https://pkg.go.dev/github.com/disintegration/imaging#Fit
package render
