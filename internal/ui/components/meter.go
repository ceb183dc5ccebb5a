package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymeter/internal/ui/theme"
)

// Meter is a row of dots with the first Filled dots highlighted.
type Meter struct {
	Label  string
	Filled int
	Total  int
	Style  lipgloss.Style
}

// NewMeter creates a meter with Total dots.
func NewMeter(label string, filled, total int) Meter {
	return Meter{
		Label:  label,
		Filled: filled,
		Total:  total,
		Style:  lipgloss.NewStyle().Foreground(theme.Secondary),
	}
}

// View renders the meter.
func (m Meter) View() string {
	filled := max(0, min(m.Filled, m.Total))

	dim := lipgloss.NewStyle().Foreground(theme.Border)
	var dots []string
	for i := 0; i < m.Total; i++ {
		if i < filled {
			dots = append(dots, m.Style.Render("●"))
		} else {
			dots = append(dots, dim.Render("●"))
		}
	}

	out := strings.Join(dots, " ")
	if m.Label != "" {
		out = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Label) + "  " + out
	}
	return out
}
