package geometry

import (
	"testing"

	perr "github.com/matzehuels/dbdplan/pkg/errors"
)

func TestBoxFromInts(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   Box
	}{
		{"one value", []int{5}, Box{Top: 5, Right: 5, Bottom: 5, Left: 5}},
		{"two values", []int{1, 2}, Box{Top: 1, Right: 2, Bottom: 1, Left: 2}},
		{"three values", []int{1, 2, 3}, Box{Top: 1, Right: 2, Bottom: 3, Left: 2}},
		{"four values", []int{1, 2, 3, 4}, Box{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{"zero", []int{0}, Box{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BoxFromInts(tt.values...)
			if err != nil {
				t.Fatalf("BoxFromInts(%v) error: %v", tt.values, err)
			}
			if got != tt.want {
				t.Errorf("BoxFromInts(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestBoxFromIntsErrors(t *testing.T) {
	tests := []struct {
		name   string
		values []int
	}{
		{"no values", nil},
		{"five values", []int{1, 2, 3, 4, 5}},
		{"negative", []int{1, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BoxFromInts(tt.values...)
			if !perr.Is(err, perr.ErrCodeInvalidInput) {
				t.Errorf("BoxFromInts(%v) error = %v, want %s", tt.values, err, perr.ErrCodeInvalidInput)
			}
		})
	}
}

func TestSquare(t *testing.T) {
	b, err := Square(7)
	if err != nil {
		t.Fatalf("Square(7) error: %v", err)
	}
	if b != (Box{Top: 7, Right: 7, Bottom: 7, Left: 7}) {
		t.Errorf("Square(7) = %v", b)
	}
	if _, err := Square(-1); err == nil {
		t.Error("Square(-1) should fail")
	}
}

func TestBoxDerived(t *testing.T) {
	boxes := []Box{
		{Top: 9, Right: 9, Bottom: 9, Left: 9},
		{Top: 8, Right: 10, Bottom: 8, Left: 10},
		{Top: 10, Right: 99, Bottom: 7, Left: 99},
		{Top: 11, Right: 56, Bottom: 65, Left: 10},
	}

	for _, b := range boxes {
		if got, want := b.Size(), (Size{Width: b.Right - b.Left, Height: b.Bottom - b.Top}); got != want {
			t.Errorf("%v.Size() = %v, want %v", b, got, want)
		}
		if got := b.X(); got != b.Left+b.Right {
			t.Errorf("%v.X() = %d, want %d", b, got, b.Left+b.Right)
		}
		if got := b.Y(); got != b.Top+b.Bottom {
			t.Errorf("%v.Y() = %d, want %d", b, got, b.Top+b.Bottom)
		}
	}
}

func TestNewSize(t *testing.T) {
	if _, err := NewSize(10, 0); err != nil {
		t.Errorf("NewSize(10, 0) error: %v", err)
	}
	if _, err := NewSize(-1, 10); err == nil {
		t.Error("NewSize(-1, 10) should fail")
	}
	if _, err := NewSize(10, -1); err == nil {
		t.Error("NewSize(10, -1) should fail")
	}
}

func TestSizeShrink(t *testing.T) {
	got := Size{Width: 300, Height: 250}.Shrink(Box{Top: 25, Right: 37, Bottom: 24, Left: 13})
	want := Size{Width: 250, Height: 201}
	if got != want {
		t.Errorf("Shrink = %v, want %v", got, want)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Coordinate{X: 10, Y: 20}.String(), "Coordinate 10x20"},
		{Size{Width: 10, Height: 10}.String(), "Size 10x10"},
		{Box{Top: 10, Right: 20, Bottom: 20, Left: 10}.String(), "Box (10,10)x(20,20)"},
		{Dimensions{Rows: 6, Columns: 7}.String(), "Dimensions (rows = 6, columns = 7)"},
		{PlanCell{Row: 1, Column: 2}.String(), "Cell (row = 1, column = 2)"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
