// Package assets loads the per-grade placeholder images a plan is drawn
// with, and can generate a default set when none exist yet.
//
// Placeholders live in one directory, one PNG per grade, named after the
// grade's slug: ash.png, bronze.png, silver.png, gold.png, iridescent.png.
package assets

import (
	"image"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	perr "github.com/matzehuels/dbdplan/pkg/errors"
	"github.com/matzehuels/dbdplan/pkg/grade"
)

// Ext is the file extension of placeholder images.
const Ext = ".png"

// Filename returns the placeholder file name for g.
func Filename(g grade.Grade) string { return g.Slug() + Ext }

// Loader reads placeholder images from Dir.
type Loader struct {
	Dir    string
	Logger *log.Logger
}

// Path returns where the placeholder for g is expected.
func (l Loader) Path(g grade.Grade) string {
	return filepath.Join(l.Dir, Filename(g))
}

// Placeholder loads the image for one grade.
func (l Loader) Placeholder(g grade.Grade) (image.Image, error) {
	if !g.Valid() {
		return nil, perr.New(perr.ErrCodeInvalidInput, "invalid grade %d", int(g))
	}
	path := l.Path(g)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, perr.Wrap(perr.ErrCodeFileNotFound, err, "placeholder for %s", g)
		}
		return nil, perr.Wrap(perr.ErrCodeInvalidPath, err, "placeholder for %s", g)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, perr.Wrap(perr.ErrCodeInvalidFormat, err, "decode placeholder %s", path)
	}
	l.logger().Debug("placeholder loaded", "grade", g, "path", path, "size", img.Bounds().Size())
	return img, nil
}

// Placeholders loads the images for every grade. A missing grade is an error.
func (l Loader) Placeholders() (map[grade.Grade]image.Image, error) {
	out := make(map[grade.Grade]image.Image, grade.Count)
	for _, g := range grade.All() {
		img, err := l.Placeholder(g)
		if err != nil {
			return nil, err
		}
		out[g] = img
	}
	return out, nil
}

// Missing lists the grades whose placeholder file does not exist.
func (l Loader) Missing() []grade.Grade {
	var missing []grade.Grade
	for _, g := range grade.All() {
		if _, err := os.Stat(l.Path(g)); err != nil {
			missing = append(missing, g)
		}
	}
	return missing
}

func (l Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}
