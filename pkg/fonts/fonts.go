// Package fonts loads TrueType/OpenType fonts and hands out sized faces.
//
// A [Library] parses each font file once and keeps one face per
// (path, size) pair. An empty path means the Go Regular font embedded in the
// binary, so plans can be drawn without any font files on disk.
//
// Draw calls take a [Ref] instead of a face. A Ref is one of three cases,
// resolved once per call:
//
//	fonts.Face(f)                                   // this exact face
//	fonts.Lookup(fonts.Descriptor{Path: p, Size: 48}) // ask the library
//	fonts.Default()                                 // the caller's default face
package fonts

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/dbdplan/pkg/cache"
	perr "github.com/matzehuels/dbdplan/pkg/errors"
)

// DPI used for every face. At 72 DPI one point is one pixel.
const DPI = 72

// Descriptor names a font file and a size in points.
type Descriptor struct {
	Path string  // empty for the embedded Go Regular font
	Size float64 // points
}

// Name returns the font file name, or "goregular" for the embedded font.
func (d Descriptor) Name() string {
	if d.Path == "" {
		return "goregular"
	}
	return filepath.Base(d.Path)
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s@%gpt", d.Name(), d.Size)
}

// Library parses fonts and builds faces, caching both.
// It is not safe for concurrent use.
type Library struct {
	fonts cache.Cache[string, *opentype.Font]
	faces cache.Cache[Descriptor, font.Face]
}

// Option configures a Library.
type Option func(*Library)

// WithoutCache disables caching: every call parses and builds from scratch.
func WithoutCache() Option {
	return func(l *Library) {
		l.fonts = cache.NewNull[string, *opentype.Font]("fonts")
		l.faces = cache.NewNull[Descriptor, font.Face]("faces")
	}
}

// NewLibrary creates an empty font library.
func NewLibrary(opts ...Option) *Library {
	l := &Library{
		fonts: cache.NewMemory[string, *opentype.Font]("fonts"),
		faces: cache.NewMemory[Descriptor, font.Face]("faces"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Parse returns the parsed font at path. An empty path yields the embedded
// Go Regular font.
func (l *Library) Parse(path string) (*opentype.Font, error) {
	f, _, err := cache.GetOrAdd(l.fonts, path, func() (*opentype.Font, error) {
		return parseFile(path)
	})
	return f, err
}

// Face returns a face for d, building it on first use.
func (l *Library) Face(d Descriptor) (font.Face, error) {
	if d.Size <= 0 {
		return nil, perr.New(perr.ErrCodeInvalidInput, "font size must be positive, got %g", d.Size)
	}
	face, _, err := cache.GetOrAdd(l.faces, d, func() (font.Face, error) {
		f, err := l.Parse(d.Path)
		if err != nil {
			return nil, err
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    d.Size,
			DPI:     DPI,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, perr.Wrap(perr.ErrCodeInvalidFormat, err, "create face %s", d)
		}
		return face, nil
	})
	return face, err
}

// DefaultFace returns the embedded Go Regular face at size points.
func (l *Library) DefaultFace(size float64) (font.Face, error) {
	return l.Face(Descriptor{Size: size})
}

// Len returns the number of cached faces.
func (l *Library) Len() int { return l.faces.Len() }

// Clear drops every cached font and face.
func (l *Library) Clear() {
	l.faces.Clear()
	l.fonts.Clear()
}

func parseFile(path string) (*opentype.Font, error) {
	if path == "" {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, perr.Wrap(perr.ErrCodeInternal, err, "parse embedded font")
		}
		return f, nil
	}
	if err := perr.ValidateFontPath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, perr.Wrap(perr.ErrCodeFileNotFound, err, "font %s", path)
	}
	if err != nil {
		return nil, perr.Wrap(perr.ErrCodeInvalidPath, err, "read font %s", path)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, perr.Wrap(perr.ErrCodeInvalidFormat, err, "parse font %s", path)
	}
	return f, nil
}
