package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/dbdplan/pkg/calendar"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	// pickerBefore and pickerAfter are how many periods the picker offers
	// around the current one.
	pickerBefore = 2
	pickerAfter  = 9
)

// =============================================================================
// PeriodListModel - Interactive period selection
// =============================================================================

// PeriodListModel is the bubbletea model for interactive period selection.
type PeriodListModel struct {
	Periods  []calendar.Period
	Cursor   int
	Selected *calendar.Period
	Height   int
	Offset   int
}

// NewPeriodListModel offers the periods around current with the cursor on
// current.
func NewPeriodListModel(current calendar.Period) PeriodListModel {
	first := current
	for n := 0; n < pickerBefore; n++ {
		first = first.Prev()
	}
	periods := periodsFrom(first, pickerBefore+1+pickerAfter)
	return PeriodListModel{
		Periods: periods,
		Cursor:  pickerBefore,
		Height:  len(periods),
	}
}

func (m PeriodListModel) Init() tea.Cmd {
	return nil
}

func (m PeriodListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Periods)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			p := m.Periods[m.Cursor]
			m.Selected = &p
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 3)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m PeriodListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Period"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Periods))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Periods[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			p.String(),
			p.Start.Format(dayFormat),
			p.Last().Format(dayFormat),
			fmt.Sprint(p.Days),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Period", "From", "To", "Days").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Periods))))

	return b.String()
}

// pickPeriod runs the picker around current. ok is false when the user quit
// without choosing.
func pickPeriod(current calendar.Period) (calendar.Period, bool, error) {
	final, err := tea.NewProgram(NewPeriodListModel(current)).Run()
	if err != nil {
		return calendar.Period{}, false, err
	}
	m, ok := final.(PeriodListModel)
	if !ok || m.Selected == nil {
		return calendar.Period{}, false, nil
	}
	return *m.Selected, true, nil
}
