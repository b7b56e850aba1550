package assets

import (
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	perr "github.com/matzehuels/dbdplan/pkg/errors"
	"github.com/matzehuels/dbdplan/pkg/grade"
)

// DefaultSize is the edge length of generated placeholders, matching the
// default cell size.
const DefaultSize = 360

// Colors used for generated placeholders.
var Colors = map[grade.Grade]color.RGBA{
	grade.Ash:        colornames.Dimgray,
	grade.Bronze:     colornames.Peru,
	grade.Silver:     colornames.Silver,
	grade.Gold:       colornames.Gold,
	grade.Iridescent: colornames.Mediumorchid,
}

// GenerateOptions controls Generate.
type GenerateOptions struct {
	Size      int  // edge length in pixels; DefaultSize when zero
	Overwrite bool // replace files that already exist
}

// Generate writes one disc-shaped placeholder per grade into dir, creating
// it if needed. It returns the paths written; existing files are skipped
// unless opts.Overwrite is set.
func Generate(dir string, opts GenerateOptions) ([]string, error) {
	size := opts.Size
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 {
		return nil, perr.New(perr.ErrCodeInvalidInput, "placeholder size must be positive, got %d", size)
	}
	if err := perr.ValidatePath(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, perr.Wrap(perr.ErrCodeInvalidPath, err, "create %s", dir)
	}

	var written []string
	for _, g := range grade.All() {
		path := filepath.Join(dir, Filename(g))
		if !opts.Overwrite {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		if err := imaging.Save(Disc(size, Colors[g]), path); err != nil {
			return written, perr.Wrap(perr.ErrCodeInvalidPath, err, "write %s", path)
		}
		written = append(written, path)
	}
	return written, nil
}

// Disc draws an anti-aliased filled circle of colour c on a transparent
// square of the given size.
func Disc(size int, c color.RGBA) *image.NRGBA {
	dc := gg.NewContext(size, size)
	center := float64(size) / 2
	dc.DrawCircle(center, center, max(center-1, 0))
	dc.SetColor(c)
	dc.Fill()
	return imaging.Clone(dc.Image())
}
