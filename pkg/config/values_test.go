package config

import (
	"image/color"
	"slices"
	"testing"

	perr "github.com/matzehuels/dbdplan/pkg/errors"
	"github.com/matzehuels/dbdplan/pkg/geometry"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in     string
		want   color.NRGBA
		string string
	}{
		{"white", color.NRGBA{255, 255, 255, 255}, "white"},
		{"Black", color.NRGBA{0, 0, 0, 255}, "black"},
		{"#ff8800", color.NRGBA{255, 136, 0, 255}, "#ff8800"},
		{"#FF880080", color.NRGBA{255, 136, 0, 128}, "#ff880080"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if c.NRGBA != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, c.NRGBA, tt.want)
			}
			if c.String() != tt.string {
				t.Errorf("String() = %q, want %q", c.String(), tt.string)
			}
		})
	}

	for _, bad := range []string{"", "#", "#12345", "#gggggg", "no-such-colour"} {
		if _, err := ParseColor(bad); !perr.Is(err, perr.ErrCodeInvalidConfig) {
			t.Errorf("ParseColor(%q) error = %v, want INVALID_CONFIG", bad, err)
		}
	}
}

func TestColorUnmarshal(t *testing.T) {
	var c Color
	if err := c.UnmarshalTOML([]any{int64(1), int64(2), int64(3)}); err != nil {
		t.Fatal(err)
	}
	if c.NRGBA != (color.NRGBA{1, 2, 3, 255}) {
		t.Errorf("colour = %v", c.NRGBA)
	}
	if err := c.UnmarshalTOML(3.5); err == nil {
		t.Error("float colour should be rejected")
	}
}

func TestBoxSpec(t *testing.T) {
	var b BoxSpec
	if err := b.UnmarshalTOML(int64(5)); err != nil {
		t.Fatal(err)
	}
	box, err := b.Box()
	if err != nil || box != (geometry.Box{Top: 5, Right: 5, Bottom: 5, Left: 5}) {
		t.Errorf("Box() = %s, %v", box, err)
	}

	if err := b.UnmarshalTOML([]any{int64(1), int64(2), int64(3)}); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(b, BoxSpec{1, 2, 3}) {
		t.Errorf("spec = %v", b)
	}
	out, _ := b.MarshalTOML()
	if string(out) != "[1, 2, 3]" {
		t.Errorf("MarshalTOML = %s", out)
	}

	if err := b.UnmarshalTOML([]any{int64(1), "x"}); err == nil {
		t.Error("mixed array should be rejected")
	}
}

func TestSizeSpec(t *testing.T) {
	tests := []struct {
		spec SizeSpec
		want geometry.Size
		ok   bool
	}{
		{SizeSpec{10}, geometry.Size{Width: 10, Height: 10}, true},
		{SizeSpec{10, 20}, geometry.Size{Width: 10, Height: 20}, true},
		{SizeSpec{}, geometry.Size{}, false},
		{SizeSpec{1, 2, 3}, geometry.Size{}, false},
		{SizeSpec{-1, 2}, geometry.Size{}, false},
	}
	for _, tt := range tests {
		got, err := tt.spec.Size()
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("%v.Size() = %s, %v", tt.spec, got, err)
		}
	}
}

func TestFilter(t *testing.T) {
	for _, name := range FilterNames() {
		if _, err := Filter(name).Resample(); err != nil {
			t.Errorf("Filter(%q).Resample() = %v", name, err)
		}
	}
	if _, err := Filter("Lanczos").Resample(); err != nil {
		t.Error("filter names should be case-insensitive")
	}
	if _, err := Filter("").Resample(); err == nil {
		t.Error("empty filter should be rejected")
	}
}
