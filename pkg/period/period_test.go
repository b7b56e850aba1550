package period

import (
	"slices"
	"testing"

	perr "github.com/matzehuels/dbdplan/pkg/errors"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		tiers int
		days  int
		want  []int
	}{
		{5, 15, []int{1, 2, 3, 4, 5}},
		{5, 28, []int{3, 4, 5, 6, 10}},
		{5, 29, []int{3, 4, 5, 6, 11}},
		{5, 30, []int{4, 5, 6, 7, 8}},
		{5, 31, []int{4, 5, 6, 7, 9}},
		{1, 7, []int{7}},
		{3, 10, []int{2, 3, 5}},
	}

	for _, tt := range tests {
		got, err := Allocate(tt.tiers, tt.days)
		if err != nil {
			t.Fatalf("Allocate(%d, %d) error: %v", tt.tiers, tt.days, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("Allocate(%d, %d) = %v, want %v", tt.tiers, tt.days, got, tt.want)
		}
	}
}

func TestAllocateInvariants(t *testing.T) {
	for tiers := 1; tiers <= 8; tiers++ {
		for days := MinDays(tiers); days <= 62; days++ {
			spans, err := Allocate(tiers, days)
			if err != nil {
				t.Fatalf("Allocate(%d, %d) error: %v", tiers, days, err)
			}
			if len(spans) != tiers {
				t.Fatalf("Allocate(%d, %d) returned %d spans", tiers, days, len(spans))
			}

			sum := 0
			for i, s := range spans {
				sum += s
				if s < 1 {
					t.Errorf("Allocate(%d, %d)[%d] = %d, want >= 1", tiers, days, i, s)
				}
				// Only the last step may jump by more than one day.
				if i > 0 && i < tiers-1 && s != spans[i-1]+1 {
					t.Errorf("Allocate(%d, %d) = %v is not consecutive", tiers, days, spans)
				}
				if i == tiers-1 && i > 0 && s < spans[i-1]+1 {
					t.Errorf("Allocate(%d, %d) = %v last span too small", tiers, days, spans)
				}
			}
			if sum != days {
				t.Errorf("sum(Allocate(%d, %d)) = %d", tiers, days, sum)
			}
		}
	}
}

func TestAllocateErrors(t *testing.T) {
	tests := []struct {
		name  string
		tiers int
		days  int
	}{
		{"zero tiers", 0, 30},
		{"negative tiers", -1, 30},
		{"below triangular floor", 5, 14},
		{"zero days", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Allocate(tt.tiers, tt.days)
			if !perr.Is(err, perr.ErrCodeInvalidInput) {
				t.Errorf("Allocate(%d, %d) error = %v, want %s", tt.tiers, tt.days, err, perr.ErrCodeInvalidInput)
			}
		})
	}
}

func TestMinDays(t *testing.T) {
	for tiers, want := range map[int]int{1: 1, 2: 3, 5: 15, 7: 28} {
		if got := MinDays(tiers); got != want {
			t.Errorf("MinDays(%d) = %d, want %d", tiers, got, want)
		}
	}
}
