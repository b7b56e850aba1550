// Package planner turns a date into a finished plan image.
//
// It finds the period containing the date, splits the period's days between
// the grades, loads placeholders and fonts as configured, draws the header
// and body cells, and writes the image to the plans directory.
//
//	p := planner.New(settings, logger)
//	result, err := p.Run(ctx, calendar.Today(), planner.Options{})
//	fmt.Println(result.Path)
package planner

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dbdplan/pkg/assets"
	"github.com/matzehuels/dbdplan/pkg/cache"
	"github.com/matzehuels/dbdplan/pkg/calendar"
	"github.com/matzehuels/dbdplan/pkg/config"
	perr "github.com/matzehuels/dbdplan/pkg/errors"
	"github.com/matzehuels/dbdplan/pkg/fonts"
	"github.com/matzehuels/dbdplan/pkg/observability"
	"github.com/matzehuels/dbdplan/pkg/render"
)

// Options tweak a single run.
type Options struct {
	Output  string // explicit output path; default is the plans dir
	Format  string // overrides the configured format when Output is empty
	NoCache bool   // resize every placeholder cell by cell
}

// Stats records how long each stage took.
type Stats struct {
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Result describes a written plan.
type Result struct {
	Path   string
	Period calendar.Period
	Layout Layout
	Stats  Stats
}

// Planner generates plans from one set of settings. It is not safe for
// concurrent use.
type Planner struct {
	Settings config.Settings
	Fonts    *fonts.Library
	Assets   assets.Loader
	Logger   *log.Logger
}

// New creates a planner reading placeholders from the configured directory.
func New(settings config.Settings, logger *log.Logger) *Planner {
	if logger == nil {
		logger = log.Default()
	}
	return &Planner{
		Settings: settings,
		Fonts:    fonts.NewLibrary(),
		Assets:   assets.Loader{Dir: settings.Paths.Placeholders, Logger: logger},
		Logger:   logger,
	}
}

// Run draws and saves the plan for the period containing date.
func (p *Planner) Run(ctx context.Context, date time.Time, opts Options) (*Result, error) {
	hooks := observability.Plan()
	per := calendar.PeriodFor(date)
	name := per.String()

	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, name)
	layout, err := p.layout(ctx, per)
	layoutTime := time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, name, layout.Cells(), layoutTime, err)
	if err != nil {
		return nil, err
	}
	p.Logger.Debug("layout ready",
		"period", name,
		"allocation", layout.Allocation,
		"dimensions", layout.Dimensions,
		"start", layout.StartColumn)

	path, err := p.outputPath(per, opts)
	if err != nil {
		return nil, err
	}

	renderStart := time.Now()
	hooks.OnRenderStart(ctx, name, layout.Cells())
	err = p.render(ctx, layout, path, opts)
	renderTime := time.Since(renderStart)
	hooks.OnRenderComplete(ctx, name, path, renderTime, err)
	if err != nil {
		return nil, err
	}

	return &Result{
		Path:   path,
		Period: per,
		Layout: layout,
		Stats:  Stats{LayoutTime: layoutTime, RenderTime: renderTime},
	}, nil
}

func (p *Planner) layout(ctx context.Context, per calendar.Period) (Layout, error) {
	if err := ctx.Err(); err != nil {
		return Layout{}, err
	}
	placeholders, err := p.Assets.Placeholders()
	if err != nil {
		return Layout{}, err
	}
	return BuildLayout(per, placeholders)
}

func (p *Planner) render(ctx context.Context, layout Layout, path string, opts Options) error {
	settings, err := p.RenderSettings()
	if err != nil {
		return err
	}
	renderOpts := []render.Option{render.WithFonts(p.Fonts), render.WithLogger(p.Logger)}
	if opts.NoCache {
		renderOpts = append(renderOpts, render.WithResizeCache(cache.NewNull[image.Image, *image.NRGBA]("resize")))
	}

	r, err := render.New(layout.Dimensions, settings, renderOpts...)
	if err != nil {
		return err
	}
	if err := r.DrawHeader(calendar.Weekdays(), fonts.Default()); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.DrawPlan(layout.Elements, layout.Placeholders, fonts.Default(), layout.StartColumn); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return perr.Wrap(perr.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	return r.Save(path)
}

// RenderSettings builds renderer settings from the configured customization,
// loading fonts through the planner's library.
func (p *Planner) RenderSettings() (render.Settings, error) {
	c := p.Settings.Customization
	header, err := p.Fonts.Face(c.HeaderFont.Descriptor(p.Settings.Paths.Fonts))
	if err != nil {
		return render.Settings{}, err
	}
	body, err := p.Fonts.Face(c.BodyFont.Descriptor(p.Settings.Paths.Fonts))
	if err != nil {
		return render.Settings{}, err
	}
	cell, err := c.CellSize.Size()
	if err != nil {
		return render.Settings{}, err
	}
	margins, err := c.PlanMargins.Box()
	if err != nil {
		return render.Settings{}, err
	}
	paddings, err := c.CellPaddings.Box()
	if err != nil {
		return render.Settings{}, err
	}
	filter, err := c.Resampling.Resample()
	if err != nil {
		return render.Settings{}, err
	}
	return render.Settings{
		HeaderFont:  header,
		BodyFont:    body,
		HeaderColor: c.HeaderTextColor,
		BodyColor:   c.BodyTextColor,
		Background:  c.BackgroundColor,
		CellSize:    cell,
		Margins:     margins,
		Paddings:    paddings,
		Filter:      filter,
	}, nil
}

func (p *Planner) outputPath(per calendar.Period, opts Options) (string, error) {
	path := opts.Output
	if path == "" {
		format := opts.Format
		if format == "" {
			format = p.Settings.Customization.Format
		}
		path = filepath.Join(p.Settings.Paths.Plans, Filename(per, format))
	}
	if err := perr.ValidateImagePath(path); err != nil {
		return "", err
	}
	return path, nil
}
