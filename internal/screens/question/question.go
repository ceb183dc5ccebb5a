package question

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymeter/internal/corpus"
	"github.com/abhisek/happymeter/internal/quiz"
	"github.com/abhisek/happymeter/internal/screen"
	"github.com/abhisek/happymeter/internal/ui/components"
	"github.com/abhisek/happymeter/internal/ui/layout"
	"github.com/abhisek/happymeter/internal/ui/theme"
)

const meterDots = 5

// KeyMap holds the bindings the question screen responds to.
type KeyMap struct {
	Pick   key.Binding
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quick  key.Binding
}

// DefaultKeys returns the question screen bindings.
func DefaultKeys() KeyMap {
	return KeyMap{
		Pick:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "Answer")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Choose: key.NewBinding(key.WithKeys("space"), key.WithHelp("Space", "Choose")),
		Quick:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Medium")),
	}
}

// QuestionScreen shows the current question of a running session.
type QuestionScreen struct {
	snap   quiz.Snapshot
	choice components.ScaleChoice
	keys   KeyMap
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen for snap, which must be in progress.
func New(snap quiz.Snapshot, scale corpus.Scale) *QuestionScreen {
	keys := DefaultKeys()
	if _, ok := scale.Middle(); !ok {
		keys.Quick.SetEnabled(false)
	}
	return &QuestionScreen{
		snap:   snap,
		choice: components.NewScaleChoice(scale),
		keys:   keys,
	}
}

func (q *QuestionScreen) Title() string {
	return fmt.Sprintf("Question %d of %d", q.snap.Number, q.snap.Total)
}

func (q *QuestionScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(q.keys.Pick, q.keys.Up, q.keys.Choose, q.keys.Quick)
}

func (q *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (q *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || kmsg.IsRepeat {
		return q, nil
	}

	switch {
	case key.Matches(kmsg, q.keys.Pick):
		score, err := strconv.Atoi(kmsg.String())
		if err != nil {
			return q, nil
		}
		return q, screen.Emit(screen.AnswerMsg{Score: score})

	case key.Matches(kmsg, q.keys.Up):
		q.choice = q.choice.Up()

	case key.Matches(kmsg, q.keys.Down):
		q.choice = q.choice.Down()

	case key.Matches(kmsg, q.keys.Choose):
		if opt, ok := q.choice.Current(); ok {
			return q, screen.Emit(screen.AnswerMsg{Score: opt.Score})
		}

	case key.Matches(kmsg, q.keys.Quick):
		return q, screen.Emit(screen.QuickAnswerMsg{})
	}

	return q, nil
}

func (q *QuestionScreen) View(width, height int) string {
	contentWidth := min(width-4, 70)

	var sections []string

	sections = append(sections, theme.Subtitle.Render(q.Title()))
	sections = append(sections, components.NewProgressBar("", q.snap.Progress(), true, contentWidth).View())
	sections = append(sections, "")

	card := theme.Card.Width(contentWidth).Render(
		lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Width(contentWidth - 4).
			Render(q.snap.Question.Text),
	)
	sections = append(sections, card)
	sections = append(sections, "")

	sections = append(sections, q.choice.View())
	sections = append(sections, "")

	if q.keys.Quick.Enabled() {
		sections = append(sections, theme.Hint.Render(`💡 Tip: Press Enter to select "Medium"`))
		sections = append(sections, "")
	}

	sections = append(sections, components.NewMeter("Happiness Meter", MeterLevel(q.snap.Progress()), meterDots).View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// MeterLevel converts answered progress into lit meter dots, one dot per 20%.
func MeterLevel(progress float64) int {
	return int(progress * 100 / 20)
}
