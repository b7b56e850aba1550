// Package pkg provides the libraries behind dbdplan, a generator for monthly
// grade plan images.
//
// # Overview
//
// A plan covers one period: the 13th of a month up to the 12th of the next.
// Its days are split between five grades, from Ash to Iridescent, and drawn as
// a weekday calendar with one placeholder image and one day number per cell.
//
// The data flow for one plan:
//
//	date
//	  ↓
//	[calendar] period containing the date
//	  ↓
//	[period] days per grade
//	  ↓
//	[planner] cells, placeholders and grid dimensions
//	  ↓
//	[render] header and body drawn onto a canvas
//	  ↓
//	PNG/JPEG/GIF/TIFF/BMP file
//
// # Quick Start
//
//	settings, _ := config.LoadOrDefault("")
//	p := planner.New(settings, nil)
//	result, err := p.Run(ctx, calendar.Today(), planner.Options{})
//
// # Main Packages
//
// [calendar] - Periods, weekdays and date parsing.
//
// [period] - Splitting a number of days between ordered tiers.
//
// [grade] - The five grades and their names.
//
// [geometry] - Sizes, boxes and the grid resolver that maps cells to
// canvas rectangles.
//
// [render] - The compositing renderer: text and images centred in cells.
//
// [planner] - Orchestration from date to written file.
//
// ## Supporting Packages
//
// [config] - The TOML settings file.
//
// [fonts] - Font loading, face caching and font references.
//
// [assets] - Placeholder images per grade, including generated defaults.
//
// [cache] - Small generic caches used for resized images and font faces.
//
// [errors] - Coded errors and path validation.
//
// [observability] - Hooks for plan and cache events.
//
// [buildinfo] - Version information.
//
// [calendar]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/calendar
// [period]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/period
// [grade]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/grade
// [geometry]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/geometry
// [render]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/render
// [planner]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/planner
// [config]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/config
// [fonts]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/fonts
// [assets]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/assets
// [cache]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dbdplan/pkg/buildinfo
package pkg
