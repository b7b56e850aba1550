package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/dbdplan/pkg/calendar"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m PeriodListModel, msg tea.Msg) (PeriodListModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PeriodListModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm, cmd
}

func TestNewPeriodListModel(t *testing.T) {
	current := calendar.PeriodFor(calendar.Date(2026, time.September, 20))
	m := NewPeriodListModel(current)

	if len(m.Periods) != pickerBefore+1+pickerAfter {
		t.Fatalf("got %d periods", len(m.Periods))
	}
	if !m.Periods[m.Cursor].Start.Equal(current.Start) {
		t.Errorf("cursor on %s, want %s", m.Periods[m.Cursor], current)
	}
	if got := m.Periods[0].String(); got != "July-August 2026" {
		t.Errorf("first period = %q, want July-August 2026", got)
	}
	for i := 1; i < len(m.Periods); i++ {
		if !m.Periods[i].Start.Equal(m.Periods[i-1].End()) {
			t.Errorf("periods %d and %d are not consecutive", i-1, i)
		}
	}
}

func TestPeriodListModelSelect(t *testing.T) {
	m := NewPeriodListModel(calendar.PeriodFor(calendar.Date(2026, time.September, 20)))

	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("j"))
	m, _ = update(t, m, key("k"))
	if m.Cursor != pickerBefore+1 {
		t.Fatalf("Cursor = %d, want %d", m.Cursor, pickerBefore+1)
	}

	m, cmd := update(t, m, key("enter"))
	if cmd == nil {
		t.Error("enter should quit")
	}
	if m.Selected == nil || m.Selected.String() != "October-November 2026" {
		t.Errorf("Selected = %v, want October-November 2026", m.Selected)
	}
}

func TestPeriodListModelBounds(t *testing.T) {
	m := NewPeriodListModel(calendar.PeriodFor(calendar.Date(2026, time.March, 13)))

	for n := 0; n < len(m.Periods)+3; n++ {
		m, _ = update(t, m, key("up"))
	}
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("Cursor = %d Offset = %d after scrolling up", m.Cursor, m.Offset)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 12})
	for n := 0; n < len(m.Periods)+3; n++ {
		m, _ = update(t, m, key("down"))
	}
	if m.Cursor != len(m.Periods)-1 {
		t.Errorf("Cursor = %d, want last", m.Cursor)
	}
	if m.Offset != m.Cursor-m.Height+1 {
		t.Errorf("Offset = %d, want cursor in the last visible row", m.Offset)
	}
}

func TestPeriodListModelQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		m := NewPeriodListModel(calendar.PeriodFor(calendar.Date(2026, time.March, 13)))
		m, cmd := update(t, m, key(k))
		if cmd == nil {
			t.Errorf("%s should quit", k)
		}
		if m.Selected != nil {
			t.Errorf("%s should not select", k)
		}
	}
}

func TestPeriodListModelView(t *testing.T) {
	m := NewPeriodListModel(calendar.PeriodFor(calendar.Date(2026, time.September, 20)))
	view := m.View()

	for _, want := range []string{"Select Period", "September-October 2026", "Sun 13 Sep", "▸", "[3/12]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q:\n%s", want, view)
		}
	}
}
