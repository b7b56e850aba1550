// Package grade defines the five ordered progression tiers a plan is split
// into, from Ash (weakest) to Iridescent (strongest).
package grade

import (
	"strings"

	perr "github.com/matzehuels/dbdplan/pkg/errors"
)

// Grade is a progression tier. Grades are ordered by their integer rank.
type Grade int

const (
	Ash Grade = iota + 1
	Bronze
	Silver
	Gold
	Iridescent
)

// Count is the number of grades.
const Count = int(Iridescent)

var names = map[Grade]string{
	Ash:        "Ash",
	Bronze:     "Bronze",
	Silver:     "Silver",
	Gold:       "Gold",
	Iridescent: "Iridescent",
}

// All returns every grade in ascending order.
func All() []Grade {
	return []Grade{Ash, Bronze, Silver, Gold, Iridescent}
}

// Valid reports whether g is one of the defined grades.
func (g Grade) Valid() bool { return g >= Ash && g <= Iridescent }

func (g Grade) String() string {
	if n, ok := names[g]; ok {
		return n
	}
	return "Unknown"
}

// Slug returns the lower-case name used for placeholder asset files.
func (g Grade) Slug() string { return strings.ToLower(g.String()) }

// Parse returns the grade with the given name (case-insensitive).
func Parse(name string) (Grade, error) {
	for g, n := range names {
		if strings.EqualFold(n, name) {
			return g, nil
		}
	}
	return 0, perr.New(perr.ErrCodeInvalidInput, "unknown grade %q", name)
}
