package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/colornames"

	perr "github.com/matzehuels/dbdplan/pkg/errors"
	"github.com/matzehuels/dbdplan/pkg/geometry"
)

// BoxSpec is a box in CSS shorthand: one, two, three or four non-negative
// integers. In TOML it is either a single integer or an array.
type BoxSpec []int

// Box expands the shorthand.
func (b BoxSpec) Box() (geometry.Box, error) {
	return geometry.BoxFromInts(b...)
}

// UnmarshalTOML accepts an integer or an array of integers.
func (b *BoxSpec) UnmarshalTOML(v any) error {
	ints, err := tomlInts(v)
	if err != nil {
		return err
	}
	*b = ints
	return nil
}

// MarshalTOML writes a single value as a bare integer.
func (b BoxSpec) MarshalTOML() ([]byte, error) {
	return marshalInts(b), nil
}

// SizeSpec is a cell size: [width, height], or one integer for a square.
type SizeSpec []int

// Size returns the size. Both sides must be positive.
func (s SizeSpec) Size() (geometry.Size, error) {
	var w, h int
	switch len(s) {
	case 1:
		w, h = s[0], s[0]
	case 2:
		w, h = s[0], s[1]
	default:
		return geometry.Size{}, perr.New(perr.ErrCodeInvalidConfig, "size takes 1 or 2 values, got %d", len(s))
	}
	if w <= 0 || h <= 0 {
		return geometry.Size{}, perr.New(perr.ErrCodeInvalidConfig, "size must be positive, got %dx%d", w, h)
	}
	return geometry.Size{Width: w, Height: h}, nil
}

// UnmarshalTOML accepts an integer or an array of integers.
func (s *SizeSpec) UnmarshalTOML(v any) error {
	ints, err := tomlInts(v)
	if err != nil {
		return err
	}
	*s = ints
	return nil
}

// MarshalTOML writes the size as an array.
func (s SizeSpec) MarshalTOML() ([]byte, error) {
	return marshalInts(s), nil
}

// Color is an opaque or translucent colour. In TOML it is a colour name
// ("white"), a hex string ("#ff8800" or "#ff880080") or an array of 3 or 4
// integers in 0..255.
type Color struct {
	color.NRGBA
	name string
}

// NamedColor returns the colour registered under name.
func NamedColor(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, perr.New(perr.ErrCodeInvalidConfig, "unknown colour name %q", name)
	}
	return Color{NRGBA: color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, name: strings.ToLower(name)}, nil
}

// ParseColor parses a colour name or a hex string.
func ParseColor(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return NamedColor(s)
	}
	raw, err := hex.DecodeString(s[1:])
	if err != nil || (len(raw) != 3 && len(raw) != 4) {
		return Color{}, perr.New(perr.ErrCodeInvalidConfig, "invalid hex colour %q (want #rrggbb or #rrggbbaa)", s)
	}
	c := color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 255}
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return Color{NRGBA: c}, nil
}

func (c Color) String() string {
	if c.name != "" {
		return c.name
	}
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// UnmarshalTOML accepts a string or an array of 3 or 4 integers.
func (c *Color) UnmarshalTOML(v any) error {
	if s, ok := v.(string); ok {
		parsed, err := ParseColor(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	ints, err := tomlInts(v)
	if err != nil {
		return err
	}
	if len(ints) != 3 && len(ints) != 4 {
		return perr.New(perr.ErrCodeInvalidConfig, "colour takes 3 or 4 components, got %d", len(ints))
	}
	for _, n := range ints {
		if n < 0 || n > 255 {
			return perr.New(perr.ErrCodeInvalidConfig, "colour component %d not in 0..255", n)
		}
	}
	*c = Color{NRGBA: color.NRGBA{R: uint8(ints[0]), G: uint8(ints[1]), B: uint8(ints[2]), A: 255}}
	if len(ints) == 4 {
		c.A = uint8(ints[3])
	}
	return nil
}

// MarshalTOML writes the colour as a quoted string.
func (c Color) MarshalTOML() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

// filters maps resampling names to imaging filters.
var filters = map[string]imaging.ResampleFilter{
	"nearest":    imaging.NearestNeighbor,
	"box":        imaging.Box,
	"linear":     imaging.Linear,
	"hermite":    imaging.Hermite,
	"mitchell":   imaging.MitchellNetravali,
	"catmullrom": imaging.CatmullRom,
	"bspline":    imaging.BSpline,
	"gaussian":   imaging.Gaussian,
	"bartlett":   imaging.Bartlett,
	"lanczos":    imaging.Lanczos,
	"hann":       imaging.Hann,
	"hamming":    imaging.Hamming,
	"blackman":   imaging.Blackman,
	"welch":      imaging.Welch,
	"cosine":     imaging.Cosine,
}

// Filter names a resampling filter used when shrinking placeholders.
type Filter string

// Resample returns the imaging filter for f.
func (f Filter) Resample() (imaging.ResampleFilter, error) {
	rf, ok := filters[strings.ToLower(string(f))]
	if !ok {
		return imaging.ResampleFilter{}, perr.New(perr.ErrCodeInvalidConfig, "unknown resampling filter %q", string(f))
	}
	return rf, nil
}

// FilterNames returns every accepted filter name.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	return names
}

func tomlInts(v any) ([]int, error) {
	switch v := v.(type) {
	case int64:
		return []int{int(v)}, nil
	case []any:
		out := make([]int, len(v))
		for i, item := range v {
			n, ok := item.(int64)
			if !ok {
				return nil, perr.New(perr.ErrCodeInvalidConfig, "expected integer, got %T", item)
			}
			out[i] = int(n)
		}
		return out, nil
	default:
		return nil, perr.New(perr.ErrCodeInvalidConfig, "expected integer or array of integers, got %T", v)
	}
}

func marshalInts(ints []int) []byte {
	if len(ints) == 1 {
		return []byte(strconv.Itoa(ints[0]))
	}
	parts := make([]string, len(ints))
	for i, n := range ints {
		parts[i] = strconv.Itoa(n)
	}
	return []byte("[" + strings.Join(parts, ", ") + "]")
}
