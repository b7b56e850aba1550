package planner

import (
	"fmt"
	"image"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/dbdplan/pkg/calendar"
	perr "github.com/matzehuels/dbdplan/pkg/errors"
	"github.com/matzehuels/dbdplan/pkg/geometry"
	"github.com/matzehuels/dbdplan/pkg/grade"
	"github.com/matzehuels/dbdplan/pkg/period"
)

// Layout is everything the renderer needs to draw one period.
type Layout struct {
	Period       calendar.Period
	Allocation   []int // days per grade, Ash first
	Elements     []string
	Grades       []grade.Grade
	Placeholders []image.Image
	Dimensions   geometry.Dimensions
	StartColumn  int
}

// Cells returns the number of body cells that hold a day.
func (l Layout) Cells() int { return len(l.Elements) }

// BuildLayout assigns every day of p to a grade and sizes the grid. Days run
// from the 13th in order; the lowest grades come first.
func BuildLayout(p calendar.Period, placeholders map[grade.Grade]image.Image) (Layout, error) {
	allocation, err := period.Allocate(grade.Count, p.Days)
	if err != nil {
		return Layout{}, err
	}

	l := Layout{
		Period:       p,
		Allocation:   allocation,
		Elements:     make([]string, 0, p.Days),
		Grades:       make([]grade.Grade, 0, p.Days),
		Placeholders: make([]image.Image, 0, p.Days),
		StartColumn:  p.FirstColumn(),
	}

	day := 0
	for i, g := range grade.All() {
		img, ok := placeholders[g]
		if !ok || img == nil {
			return Layout{}, perr.New(perr.ErrCodeInvalidInput, "no placeholder for grade %s", g)
		}
		for n := 0; n < allocation[i]; n++ {
			l.Elements = append(l.Elements, strconv.Itoa(p.Day(day).Day()))
			l.Grades = append(l.Grades, g)
			l.Placeholders = append(l.Placeholders, img)
			day++
		}
	}

	columns := calendar.DaysInWeek
	l.Dimensions = geometry.Dimensions{
		Rows:    (len(l.Elements) + l.StartColumn + columns - 1) / columns,
		Columns: columns,
	}
	return l, nil
}

// Span is the run of days one grade covers.
type Span struct {
	Grade grade.Grade
	Days  int
	First time.Time
	Last  time.Time
}

// Schedule returns the grade spans of p in order.
func Schedule(p calendar.Period) ([]Span, error) {
	allocation, err := period.Allocate(grade.Count, p.Days)
	if err != nil {
		return nil, err
	}
	spans := make([]Span, len(allocation))
	offset := 0
	for i, g := range grade.All() {
		spans[i] = Span{
			Grade: g,
			Days:  allocation[i],
			First: p.Day(offset),
			Last:  p.Day(offset + allocation[i] - 1),
		}
		offset += allocation[i]
	}
	return spans, nil
}

// Filename returns the plan file name for p, e.g.
// "DBD plan September-October 2026.png".
func Filename(p calendar.Period, format string) string {
	ext := strings.ToLower(strings.TrimPrefix(format, "."))
	return fmt.Sprintf("DBD plan %s-%s %d.%s", p.StartMonth(), p.EndMonth(), p.Year(), ext)
}
