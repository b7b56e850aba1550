package render

import (
	"image"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/matzehuels/dbdplan/pkg/cache"
	perr "github.com/matzehuels/dbdplan/pkg/errors"
	"github.com/matzehuels/dbdplan/pkg/fonts"
	"github.com/matzehuels/dbdplan/pkg/geometry"
)

// Settings holds everything the renderer needs to know about looks.
// The renderer never modifies it.
type Settings struct {
	HeaderFont  font.Face
	BodyFont    font.Face
	HeaderColor color.Color
	BodyColor   color.Color
	Background  color.Color
	CellSize    geometry.Size
	Margins     geometry.Box
	Paddings    geometry.Box
	Filter      imaging.ResampleFilter
}

// ResizeCache maps a source placeholder to its resized copy.
type ResizeCache = cache.Cache[image.Image, *image.NRGBA]

// Option configures a Renderer.
type Option func(*Renderer)

// WithResizeCache replaces the renderer's own resize cache.
func WithResizeCache(c ResizeCache) Option { return func(r *Renderer) { r.resized = c } }

// WithFonts sets the library used to resolve font lookups.
func WithFonts(lib *fonts.Library) Option { return func(r *Renderer) { r.fonts = lib } }

// WithLogger sets the logger for debug output.
func WithLogger(l *log.Logger) Option { return func(r *Renderer) { r.logger = l } }

// Renderer draws one plan onto its canvas. It is not safe for concurrent use.
type Renderer struct {
	grid     geometry.Grid
	settings Settings
	canvas   *image.NRGBA
	resized  ResizeCache
	fonts    *fonts.Library
	logger   *log.Logger
}

// New creates a renderer whose canvas fits dims plus the header row and is
// filled with the background colour.
func New(dims geometry.Dimensions, settings Settings, opts ...Option) (*Renderer, error) {
	if dims.Columns < 1 || dims.Rows < 0 {
		return nil, perr.New(perr.ErrCodeInvalidInput, "invalid plan %s", dims)
	}
	if settings.CellSize.Width <= 0 || settings.CellSize.Height <= 0 {
		return nil, perr.New(perr.ErrCodeInvalidInput, "cell size must be positive, got %s", settings.CellSize)
	}
	if settings.Paddings.X() >= settings.CellSize.Width || settings.Paddings.Y() >= settings.CellSize.Height {
		return nil, perr.New(perr.ErrCodeInvalidInput, "cell paddings %s leave no room in %s", settings.Paddings, settings.CellSize)
	}
	settings = settings.withDefaults()

	grid := geometry.Grid{
		Dimensions: dims,
		CellSize:   settings.CellSize,
		Margins:    settings.Margins,
		Paddings:   settings.Paddings,
	}
	size := grid.CanvasSize()

	r := &Renderer{
		grid:     grid,
		settings: settings,
		canvas:   imaging.New(size.Width, size.Height, settings.Background),
		resized:  cache.NewMemory[image.Image, *image.NRGBA]("resize"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	r.logger.Debug("canvas ready", "size", size, "dimensions", dims)
	return r, nil
}

func (s Settings) withDefaults() Settings {
	if s.Background == nil {
		s.Background = color.Transparent
	}
	if s.HeaderColor == nil {
		s.HeaderColor = color.White
	}
	if s.BodyColor == nil {
		s.BodyColor = color.White
	}
	return s
}

// Grid returns the geometry the renderer draws on.
func (r *Renderer) Grid() geometry.Grid { return r.grid }

// Image returns the canvas. It stays live: later draws show up in it.
func (r *Renderer) Image() *image.NRGBA { return r.canvas }

// CellBox returns the padded pixel box of cell.
func (r *Renderer) CellBox(cell geometry.PlanCell) (geometry.Box, error) {
	return r.grid.CellBox(cell)
}

// Save writes the canvas to path, encoded by its extension. Existing files
// are overwritten.
func (r *Renderer) Save(path string) error {
	if err := perr.ValidateImagePath(path); err != nil {
		return err
	}
	if err := imaging.Save(r.canvas, path, imaging.JPEGQuality(95)); err != nil {
		return perr.Wrap(perr.ErrCodeInvalidPath, err, "save plan to %s", path)
	}
	r.logger.Debug("plan saved", "path", path)
	return nil
}

// Encode writes the canvas to w in format ("png", "jpg", ...).
func (r *Renderer) Encode(w io.Writer, format string) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return perr.Wrap(perr.ErrCodeInvalidFormat, err, "unsupported format %q", format)
	}
	if err := imaging.Encode(w, r.canvas, f, imaging.JPEGQuality(95)); err != nil {
		return perr.Wrap(perr.ErrCodeInternal, err, "encode plan")
	}
	return nil
}

func (r *Renderer) resolve(ref fonts.Ref, fallback font.Face) (font.Face, error) {
	return ref.Resolve(r.fonts, fallback)
}
