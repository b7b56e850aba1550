package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	perr "github.com/matzehuels/dbdplan/pkg/errors"
	"github.com/matzehuels/dbdplan/pkg/geometry"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	margins, _ := s.Customization.PlanMargins.Box()
	if want := (geometry.Box{Top: 0, Right: 50, Bottom: 0, Left: 50}); margins != want {
		t.Errorf("default margins = %s, want %s", margins, want)
	}
	cell, _ := s.Customization.CellSize.Size()
	if want := (geometry.Size{Width: 360, Height: 360}); cell != want {
		t.Errorf("default cell = %s, want %s", cell, want)
	}
}

func TestParse(t *testing.T) {
	s, err := Parse(`
[paths]
placeholders = "art"

[customization]
header_text_color = "#ff8800"
body_text_color = [10, 20, 30, 128]
background_color = "navy"
plan_margins = 10
cell_paddings = [1, 2, 3, 4]
cell_size = [200, 100]
resampling = "CatmullRom"
format = "jpg"

[customization.body_font]
name = "OpenSans-Regular"
size = 64
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if s.Paths.Placeholders != "art" || s.Paths.Plans != "plans" {
		t.Errorf("paths = %+v, want placeholders overridden and plans defaulted", s.Paths)
	}

	c := s.Customization
	if c.HeaderTextColor.R != 0xff || c.HeaderTextColor.G != 0x88 || c.HeaderTextColor.A != 255 {
		t.Errorf("header colour = %v", c.HeaderTextColor)
	}
	if c.BodyTextColor.B != 30 || c.BodyTextColor.A != 128 {
		t.Errorf("body colour = %v", c.BodyTextColor)
	}
	if c.BackgroundColor.String() != "navy" {
		t.Errorf("background = %s, want navy", c.BackgroundColor)
	}

	margins, err := c.PlanMargins.Box()
	if err != nil || margins != (geometry.Box{Top: 10, Right: 10, Bottom: 10, Left: 10}) {
		t.Errorf("margins = %s, %v", margins, err)
	}
	paddings, err := c.CellPaddings.Box()
	if err != nil || paddings != (geometry.Box{Top: 1, Right: 2, Bottom: 3, Left: 4}) {
		t.Errorf("paddings = %s, %v", paddings, err)
	}
	if cell, _ := c.CellSize.Size(); cell != (geometry.Size{Width: 200, Height: 100}) {
		t.Errorf("cell size = %s", cell)
	}
	if f, err := c.Resampling.Resample(); err != nil || f.Support != imaging.CatmullRom.Support {
		t.Errorf("resampling = %v, %v", f, err)
	}

	d := c.BodyFont.Descriptor(s.Paths.Fonts)
	if d.Path != filepath.Join("fonts", "OpenSans-Regular.ttf") || d.Size != 64 {
		t.Errorf("body font = %+v", d)
	}
	if h := c.HeaderFont.Descriptor(s.Paths.Fonts); h.Path != "" || h.Size != 108 {
		t.Errorf("header font = %+v, want built-in at 108", h)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"syntax", `[paths`, "decode settings"},
		{"unknown key", "[customization]\nfont_colour = \"red\"", "customization.font_colour"},
		{"bad colour name", `customization.background_color = "blurple"`, "blurple"},
		{"bad hex", `customization.background_color = "#12"`, "#12"},
		{"colour component range", `customization.background_color = [0, 0, 300]`, "300"},
		{"colour arity", `customization.background_color = [0, 0]`, "3 or 4"},
		{"box arity", `customization.plan_margins = [1, 2, 3, 4, 5]`, "plan_margins"},
		{"negative box", `customization.cell_paddings = -1`, "cell_paddings"},
		{"box type", `customization.cell_paddings = "wide"`, "integer"},
		{"zero cell", `customization.cell_size = [0, 10]`, "cell_size"},
		{"paddings too wide", "[customization]\ncell_size = [20, 100]\ncell_paddings = [0, 10]", "horizontal paddings 20"},
		{"paddings too tall", "[customization]\ncell_size = [100, 20]\ncell_paddings = [15, 0, 5, 0]", "vertical paddings 20"},
		{"font size", "[customization.header_font]\nsize = 0", "header_font.size"},
		{"font extension", "[customization.body_font]\nname = \"font.woff\"", "body_font.name"},
		{"filter", `customization.resampling = "blurry"`, "blurry"},
		{"format", `customization.format = "svg"`, "svg"},
		{"empty path", `paths.plans = ""`, "paths.plans"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.toml)
			if !perr.Is(err, perr.ErrCodeInvalidConfig) {
				t.Fatalf("Parse error = %v, want INVALID_CONFIG", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateAggregates(t *testing.T) {
	s := Default()
	s.Customization.Resampling = "blurry"
	s.Customization.Format = "svg"
	s.Customization.HeaderFont.Size = -1

	err := s.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	msg := err.Error()
	for _, want := range []string{"resampling", "format", "header_font"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Validate error %q does not mention %q", msg, want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte("[paths]\nplans = \"out\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Paths.Plans != "out" || s.Source != path {
		t.Errorf("Load = %+v", s)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !perr.Is(err, perr.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
	if _, err := Load(filepath.Join(dir, "settings.yaml")); !perr.Is(err, perr.ErrCodeInvalidPath) {
		t.Errorf("wrong extension error = %v, want INVALID_PATH", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("customization.format = \"svg\""), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	if !perr.Is(err, perr.ErrCodeInvalidConfig) {
		t.Errorf("invalid file error = %v, want INVALID_CONFIG", err)
	}
	if !strings.Contains(perr.UserMessage(err), bad) {
		t.Errorf("error %q should name the file", perr.UserMessage(err))
	}
}

func TestFind(t *testing.T) {
	if got := Find("custom.toml"); got != "custom.toml" {
		t.Errorf("Find(explicit) = %q", got)
	}

	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)

	if got := Find(""); got != "" {
		t.Errorf("Find with no files = %q, want empty", got)
	}
	s, err := LoadOrDefault("")
	if err != nil || s.Source != "" {
		t.Errorf("LoadOrDefault = %+v, %v; want defaults", s, err)
	}

	user := UserPath()
	if err := os.MkdirAll(filepath.Dir(user), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Find(""); got != user {
		t.Errorf("Find = %q, want user file %q", got, user)
	}

	if err := os.WriteFile(FileName, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Find(""); got != FileName {
		t.Errorf("Find = %q, want local %q", got, FileName)
	}
}

func TestCheckPaths(t *testing.T) {
	dir := t.TempDir()
	s := Default()
	s.Paths.Placeholders = filepath.Join(dir, "images")
	s.Paths.Fonts = filepath.Join(dir, "fonts")
	s.Customization.HeaderFont.Name = "Title"

	err := s.CheckPaths()
	if !perr.Is(err, perr.ErrCodeFileNotFound) {
		t.Fatalf("CheckPaths error = %v, want FILE_NOT_FOUND", err)
	}
	for _, want := range []string{"images", "Title.ttf"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("CheckPaths error %q should mention %q", err, want)
		}
	}

	if err := os.MkdirAll(s.Paths.Placeholders, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(s.Paths.Fonts, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.Paths.Fonts, "Title.ttf"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.CheckPaths(); err != nil {
		t.Errorf("CheckPaths = %v, want nil", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	s := Default()
	s.Customization.BodyTextColor, _ = ParseColor("#10203080")
	s.Customization.BodyFont.Name = "OpenSans-Regular"

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`background_color = "black"`,
		`body_text_color = "#10203080"`,
		`plan_margins = [0, 50]`,
		`cell_paddings = 0`,
		`[customization.body_font]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded settings missing %q:\n%s", want, out)
		}
	}

	back, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse(Encode()): %v", err)
	}
	if back.Customization.BodyTextColor.NRGBA != s.Customization.BodyTextColor.NRGBA {
		t.Errorf("round trip colour = %v, want %v", back.Customization.BodyTextColor, s.Customization.BodyTextColor)
	}
	if back.Customization.BodyFont != s.Customization.BodyFont {
		t.Errorf("round trip font = %+v, want %+v", back.Customization.BodyFont, s.Customization.BodyFont)
	}
}
