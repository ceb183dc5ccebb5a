package result

import (
	"fmt"
	"image/color"
	"math"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymeter/internal/quiz"
	"github.com/abhisek/happymeter/internal/screen"
	"github.com/abhisek/happymeter/internal/ui/components"
	"github.com/abhisek/happymeter/internal/ui/layout"
	"github.com/abhisek/happymeter/internal/ui/theme"
)

const scoreDots = 5

// ResultScreen shows the final score of a completed session.
type ResultScreen struct {
	snap  quiz.Snapshot
	again key.Binding
	quit  key.Binding
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for snap, which must be on the result screen.
func New(snap quiz.Snapshot) *ResultScreen {
	return &ResultScreen{
		snap:  snap,
		again: key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("Enter", "Try Again")),
		quit:  key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "Quit")),
	}
}

func (r *ResultScreen) Title() string {
	return "Your Result"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(r.again, r.quit)
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || kmsg.IsRepeat {
		return r, nil
	}

	switch {
	case key.Matches(kmsg, r.again):
		return r, screen.Emit(screen.TryAgainMsg{})
	case key.Matches(kmsg, r.quit):
		return r, tea.Quit
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	cat := r.snap.Category

	var sections []string

	sections = append(sections, lipgloss.NewStyle().Bold(true).Render(cat.Emoji))
	sections = append(sections, "")
	sections = append(sections, theme.Title.Render("Your Happiness Score"))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(categoryColor(cat.Name)).
		Bold(true).
		Render(FormatScore(r.snap.FinalScore)))
	sections = append(sections, "")

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-4, 60)).
		Align(lipgloss.Center).
		Render(cat.Message))
	sections = append(sections, "")

	meter := components.NewMeter("", ScoreDots(r.snap.FinalScore), scoreDots)
	meter.Style = lipgloss.NewStyle().Foreground(categoryColor(cat.Name))
	sections = append(sections, meter.View())
	sections = append(sections, "")

	sections = append(sections, components.NewButton("🔄 Try Again", true).View())

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// FormatScore renders a final score with one decimal, e.g. "3.4/5.0".
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f/5.0", score)
}

// ScoreDots returns how many of the five score dots are lit.
func ScoreDots(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	return max(0, min(int(math.Floor(score)), scoreDots))
}

func categoryColor(name string) color.Color {
	switch name {
	case quiz.CategoryVeryHappy:
		return theme.Success
	case quiz.CategoryContent:
		return theme.Primary
	case quiz.CategoryLow:
		return theme.Warning
	default:
		return theme.Calm
	}
}
