// Package config loads dbdplan settings from a TOML file.
//
// A settings file has two tables. Every key is optional; missing keys keep
// their defaults, unknown keys are rejected.
//
//	[paths]
//	fonts = "fonts"
//	placeholders = "images"
//	plans = "plans"
//
//	[customization]
//	header_text_color = "white"
//	body_text_color = [255, 255, 255]
//	background_color = "#000000"
//	plan_margins = [0, 50]
//	cell_paddings = 0
//	cell_size = [360, 360]
//	resampling = "lanczos"
//	format = "png"
//
//	[customization.header_font]
//	name = "OpenSans-Regular"
//	size = 108
//
// Font names are looked up in the fonts directory; ".ttf" is appended when
// the name has no extension. An empty name selects the built-in font.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	perr "github.com/matzehuels/dbdplan/pkg/errors"
	"github.com/matzehuels/dbdplan/pkg/fonts"
)

// FileName is the settings file name looked up in the working and config
// directories.
const FileName = "settings.toml"

// AppName names the per-user config directory.
const AppName = "dbdplan"

// Settings is the whole settings file.
type Settings struct {
	Paths         Paths         `toml:"paths"`
	Customization Customization `toml:"customization"`

	// Source is the file the settings came from, empty for defaults.
	Source string `toml:"-"`
}

// Paths holds the directories dbdplan reads from and writes to.
type Paths struct {
	Fonts        string `toml:"fonts"`
	Placeholders string `toml:"placeholders"`
	Plans        string `toml:"plans"`
}

// Customization holds the look of the plan.
type Customization struct {
	HeaderFont      FontSpec `toml:"header_font"`
	BodyFont        FontSpec `toml:"body_font"`
	HeaderTextColor Color    `toml:"header_text_color"`
	BodyTextColor   Color    `toml:"body_text_color"`
	BackgroundColor Color    `toml:"background_color"`
	PlanMargins     BoxSpec  `toml:"plan_margins"`
	CellPaddings    BoxSpec  `toml:"cell_paddings"`
	CellSize        SizeSpec `toml:"cell_size"`
	Resampling      Filter   `toml:"resampling"`
	Format          string   `toml:"format"`
}

// FontSpec selects a font file and size.
type FontSpec struct {
	Name string  `toml:"name"`
	Size float64 `toml:"size"`
}

// Descriptor resolves the font name against dir.
func (f FontSpec) Descriptor(dir string) fonts.Descriptor {
	if f.Name == "" {
		return fonts.Descriptor{Size: f.Size}
	}
	name := f.Name
	if filepath.Ext(name) == "" {
		name += ".ttf"
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	return fonts.Descriptor{Path: name, Size: f.Size}
}

// Default returns the built-in settings.
func Default() Settings {
	white, _ := NamedColor("white")
	black, _ := NamedColor("black")
	return Settings{
		Paths: Paths{
			Fonts:        "fonts",
			Placeholders: "images",
			Plans:        "plans",
		},
		Customization: Customization{
			HeaderFont:      FontSpec{Size: 108},
			BodyFont:        FontSpec{Size: 108},
			HeaderTextColor: white,
			BodyTextColor:   white,
			BackgroundColor: black,
			PlanMargins:     BoxSpec{0, 50},
			CellPaddings:    BoxSpec{0},
			CellSize:        SizeSpec{360, 360},
			Resampling:      "lanczos",
			Format:          "png",
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Settings, error) {
	if err := perr.ValidateSettingsPath(path); err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{}, perr.Wrap(perr.ErrCodeFileNotFound, err, "settings file %s", path)
	}
	if err != nil {
		return Settings{}, perr.Wrap(perr.ErrCodeInvalidPath, err, "read settings %s", path)
	}

	s, err := Parse(string(data))
	if err != nil {
		return Settings{}, perr.Wrap(perr.GetCode(err), err, "settings %s", path)
	}
	s.Source = path
	return s, nil
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(data string) (Settings, error) {
	s := Default()
	md, err := toml.Decode(data, &s)
	if err != nil {
		return Settings{}, perr.Wrap(perr.ErrCodeInvalidConfig, err, "decode settings")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, perr.New(perr.ErrCodeInvalidConfig, "unknown settings keys: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Find returns the settings file to use. An explicit path always wins;
// otherwise ./settings.toml, then the per-user config file. An empty result
// means no file was found and defaults apply.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, candidate := range SearchPaths() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// SearchPaths lists where Find looks, in order.
func SearchPaths() []string {
	paths := []string{FileName}
	if p := UserPath(); p != "" {
		paths = append(paths, p)
	}
	return paths
}

// UserPath returns the per-user settings file path, or "" when the user
// config directory is unknown.
func UserPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, FileName)
}

// LoadOrDefault loads the file Find picks, or returns the defaults.
func LoadOrDefault(explicit string) (Settings, error) {
	path := Find(explicit)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate reports every problem with s at once.
func (s Settings) Validate() error {
	var issues []error
	add := func(format string, args ...any) {
		issues = append(issues, fmt.Errorf(format, args...))
	}

	if s.Paths.Fonts == "" {
		add("paths.fonts is empty")
	}
	if s.Paths.Placeholders == "" {
		add("paths.placeholders is empty")
	}
	if s.Paths.Plans == "" {
		add("paths.plans is empty")
	}

	c := s.Customization
	for name, f := range map[string]FontSpec{"header_font": c.HeaderFont, "body_font": c.BodyFont} {
		if f.Size <= 0 {
			add("customization.%s.size must be positive, got %g", name, f.Size)
		}
		if d := f.Descriptor(s.Paths.Fonts); d.Path != "" {
			if err := perr.ValidateFontPath(d.Path); err != nil {
				add("customization.%s.name: %s", name, perr.UserMessage(err))
			}
		}
	}

	cell, err := c.CellSize.Size()
	if err != nil {
		add("customization.cell_size: %s", perr.UserMessage(err))
	}
	if _, err := c.PlanMargins.Box(); err != nil {
		add("customization.plan_margins: %s", perr.UserMessage(err))
	}
	paddings, err := c.CellPaddings.Box()
	if err != nil {
		add("customization.cell_paddings: %s", perr.UserMessage(err))
	} else if cell.Width > 0 {
		if paddings.X() >= cell.Width {
			add("customization.cell_paddings: horizontal paddings %d leave no room in cell width %d", paddings.X(), cell.Width)
		}
		if paddings.Y() >= cell.Height {
			add("customization.cell_paddings: vertical paddings %d leave no room in cell height %d", paddings.Y(), cell.Height)
		}
	}

	if _, err := c.Resampling.Resample(); err != nil {
		add("customization.resampling: %s", perr.UserMessage(err))
	}
	if err := perr.ValidateImagePath("plan." + c.Format); err != nil {
		add("customization.format: unsupported format %q", c.Format)
	}

	if len(issues) == 0 {
		return nil
	}
	slices.SortFunc(issues, func(a, b error) int { return strings.Compare(a.Error(), b.Error()) })
	return perr.Wrap(perr.ErrCodeInvalidConfig, errors.Join(issues...), "invalid settings")
}

// CheckPaths verifies that the placeholder directory and any named font
// files exist. The plans directory is created on demand and not checked.
func (s Settings) CheckPaths() error {
	var missing []error
	check := func(label, path string, dir bool) {
		info, err := os.Stat(path)
		switch {
		case err != nil:
			missing = append(missing, fmt.Errorf("%s %q does not exist", label, path))
		case dir && !info.IsDir():
			missing = append(missing, fmt.Errorf("%s %q is not a directory", label, path))
		}
	}

	check("placeholders directory", s.Paths.Placeholders, true)
	for _, f := range []FontSpec{s.Customization.HeaderFont, s.Customization.BodyFont} {
		if d := f.Descriptor(s.Paths.Fonts); d.Path != "" {
			check("font", d.Path, false)
		}
	}

	if len(missing) == 0 {
		return nil
	}
	return perr.Wrap(perr.ErrCodeFileNotFound, errors.Join(missing...), "missing paths")
}

// Encode writes s as TOML.
func (s Settings) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	if err := enc.Encode(s); err != nil {
		return perr.Wrap(perr.ErrCodeInternal, err, "encode settings")
	}
	return nil
}
