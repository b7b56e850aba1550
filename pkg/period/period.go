// Package period splits a number of days into consecutive spans for ordered
// tiers, where each tier needs at least one more day than the previous one.
package period

import (
	perr "github.com/matzehuels/dbdplan/pkg/errors"
)

// MinDays returns the smallest total that gives every one of tiers tiers at
// least one day: the triangular number tiers*(tiers+1)/2.
func MinDays(tiers int) int {
	return tiers * (tiers + 1) / 2
}

// Allocate returns how many consecutive days belong to each tier.
//
// Tier k starts from a baseline of k days. The days left over are shared
// evenly between all tiers and the remainder goes to the last tier, so the
// result is strictly increasing by one except for a possible larger jump at
// the end. The entries always sum to totalDays.
func Allocate(tiers, totalDays int) ([]int, error) {
	if tiers < 1 {
		return nil, perr.New(perr.ErrCodeInvalidInput, "tier count must be positive, got %d", tiers)
	}
	if floor := MinDays(tiers); totalDays < floor {
		return nil, perr.New(perr.ErrCodeInvalidInput, "%d tiers need at least %d days, got %d", tiers, floor, totalDays)
	}

	spans := make([]int, tiers)
	for i := range spans {
		spans[i] = i + 1
	}
	remaining := totalDays - MinDays(tiers)
	each, rest := remaining/tiers, remaining%tiers
	for i := range spans {
		spans[i] += each
	}
	spans[tiers-1] += rest
	return spans, nil
}
