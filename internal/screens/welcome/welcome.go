package welcome

import (
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymeter/internal/screen"
	"github.com/abhisek/happymeter/internal/ui/components"
	"github.com/abhisek/happymeter/internal/ui/layout"
	"github.com/abhisek/happymeter/internal/ui/theme"
)

const tickInterval = 400 * time.Millisecond

// floating decorations cycle around the big smiley
var sparkleFrames = [][2]string{
	{"🌟", "🎉"},
	{"💖", "🌈"},
	{"✨", "😊"},
}

// lastID hands out screen IDs so a replaced screen's pending tick is dropped
// instead of re-arming on its successor.
var lastID atomic.Int64

type tickMsg struct {
	id int64
}

// WelcomeScreen invites the user to start a quiz.
type WelcomeScreen struct {
	id        int64
	menu      components.Menu
	notice    string
	tickCount int
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. notice is shown under the menu when non-empty,
// for example when the last start attempt failed.
func New(notice string) *WelcomeScreen {
	return &WelcomeScreen{
		id:     lastID.Add(1),
		notice: notice,
		menu: components.NewMenu([]components.MenuItem{
			{Label: "🚀 START QUIZ", Action: func() tea.Cmd {
				return screen.Emit(screen.StartQuizMsg{})
			}},
			{Label: "👋 QUIT", Action: func() tea.Cmd {
				return tea.Quit
			}},
		}),
	}
}

// SetNotice replaces the notice shown under the menu.
func (w *WelcomeScreen) SetNotice(notice string) {
	w.notice = notice
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(w.menu.Keys.Up, w.menu.Keys.Select)
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.id != w.id {
			return w, nil
		}
		w.tickCount++
		return w, w.tick()

	case tea.KeyPressMsg:
		if msg.IsRepeat {
			return w, nil
		}
		var cmd tea.Cmd
		w.menu, cmd = w.menu.Update(msg)
		return w, cmd
	}

	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	frame := sparkleFrames[w.tickCount%len(sparkleFrames)]
	sections = append(sections, frame[0]+"   😊   "+frame[1])
	sections = append(sections, "")
	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("How Happy Are You Today?"))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Let's find out your happiness level in under a minute!"))
	sections = append(sections, "")

	sections = append(sections, w.menu.View())

	if w.notice != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(w.notice))
	}

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("✨ Quick • Fun • Insightful ✨"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) tick() tea.Cmd {
	id := w.id
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}
