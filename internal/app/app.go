package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/happymeter/internal/chime"
	"github.com/abhisek/happymeter/internal/quiz"
	"github.com/abhisek/happymeter/internal/router"
	"github.com/abhisek/happymeter/internal/screen"
	"github.com/abhisek/happymeter/internal/screens/question"
	"github.com/abhisek/happymeter/internal/screens/result"
	"github.com/abhisek/happymeter/internal/screens/welcome"
	"github.com/abhisek/happymeter/internal/ui/layout"
)

const chimeTimeout = 2 * time.Second

const emptyCorpusNotice = "No questions are configured. Check --questions and try again."

// Options holds the dependencies of the app.
type Options struct {
	Controller *quiz.Controller
	Chimer     chime.Chimer
	Logger     *zap.Logger
}

// chimeDoneMsg reports the outcome of a chime.
type chimeDoneMsg struct {
	err error
}

// AppModel is the root Bubble Tea model. It is the only caller of the
// controller and rebuilds the active screen from each new snapshot.
type AppModel struct {
	ctrl   *quiz.Controller
	router *router.Router
	chimer chime.Chimer
	logger *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel showing the controller's current screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		ctrl:   opts.Controller,
		chimer: opts.Chimer,
		logger: opts.Logger,
	}
	if m.chimer == nil {
		m.chimer = chime.Nop{}
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	m.router = router.New(m.screenFor(m.ctrl.Snapshot(), ""))
	return m
}

func (m AppModel) Init() tea.Cmd {
	if s := m.router.Active(); s != nil {
		return s.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.StartQuizMsg:
		snap, err := m.ctrl.StartQuiz()
		return m, m.apply("start", snap, err)

	case screen.AnswerMsg:
		snap, err := m.ctrl.Answer(msg.Score)
		return m, m.apply("answer", snap, err)

	case screen.QuickAnswerMsg:
		snap, err := m.ctrl.QuickAnswer()
		return m, m.apply("quick answer", snap, err)

	case screen.TryAgainMsg:
		return m, m.apply("try again", m.ctrl.TryAgain(), nil)

	case chimeDoneMsg:
		if msg.err != nil {
			m.logger.Debug("chime failed", zap.Error(msg.err))
		}
		return m, nil
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// apply shows the screen for snap after a controller call. A rejected event
// leaves the active screen in place; a start on an empty corpus only adds a
// notice to the welcome screen.
func (m AppModel) apply(event string, snap quiz.Snapshot, err error) tea.Cmd {
	if err != nil {
		m.logger.Debug("controller rejected event", zap.String("event", event), zap.Error(err))
		if errors.Is(err, quiz.ErrEmptyCorpus) {
			if w, ok := m.router.Active().(*welcome.WelcomeScreen); ok {
				w.SetNotice(emptyCorpusNotice)
				return nil
			}
			return m.router.Replace(m.screenFor(snap, emptyCorpusNotice))
		}
		return nil
	}

	entering := snap.Screen == quiz.ScreenResult && !m.onResult()
	cmd := m.router.Replace(m.screenFor(snap, ""))
	if entering {
		return tea.Batch(cmd, m.playChime())
	}
	return cmd
}

func (m AppModel) onResult() bool {
	_, ok := m.router.Active().(*result.ResultScreen)
	return ok
}

func (m AppModel) screenFor(snap quiz.Snapshot, notice string) screen.Screen {
	switch snap.Screen {
	case quiz.ScreenInProgress:
		return question.New(snap, m.ctrl.Scale())
	case quiz.ScreenResult:
		return result.New(snap)
	default:
		return welcome.New(notice)
	}
}

func (m AppModel) playChime() tea.Cmd {
	c := m.chimer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chimeTimeout)
		defer cancel()
		return chimeDoneMsg{err: c.Play(ctx)}
	}
}

func (m AppModel) status() string {
	snap := m.ctrl.Snapshot()
	if snap.Screen != quiz.ScreenInProgress {
		return ""
	}
	return fmt.Sprintf("Q %d/%d", snap.Number, snap.Total)
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
