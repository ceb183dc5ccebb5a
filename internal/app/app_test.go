package app

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/happymeter/internal/corpus"
	"github.com/abhisek/happymeter/internal/quiz"
	"github.com/abhisek/happymeter/internal/screen"
	"github.com/abhisek/happymeter/internal/screens/question"
	"github.com/abhisek/happymeter/internal/screens/result"
	"github.com/abhisek/happymeter/internal/screens/welcome"
)

type countingChimer struct {
	calls int
	err   error
}

func (c *countingChimer) Play(context.Context) error {
	c.calls++
	return c.err
}

func testModel(t *testing.T, n int, c *countingChimer) AppModel {
	t.Helper()
	texts := make([]string, n)
	for i := range texts {
		texts[i] = "question " + string(rune('A'+i))
	}
	ctrl := quiz.NewController(corpus.New(texts), corpus.DefaultScale(),
		quiz.WithRand(rand.New(rand.NewPCG(1, 2))))
	return newAppModel(Options{Controller: ctrl, Chimer: c})
}

// send feeds msg to the model and returns the updated model and command.
func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

// run executes cmd, flattening batches, and returns the produced messages.
// Only call it on commands that do not contain timers.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestStartsOnWelcome(t *testing.T) {
	m := testModel(t, 8, &countingChimer{})
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
}

func TestFullSessionChimesOnce(t *testing.T) {
	c := &countingChimer{}
	m := testModel(t, 8, c)

	m, _ = send(t, m, screen.StartQuizMsg{})
	require.IsType(t, &question.QuestionScreen{}, m.router.Active())
	assert.Equal(t, "Q 1/5", m.status())

	for i, s := range []int{2, 3, 4, 3} {
		var cmd tea.Cmd
		m, cmd = send(t, m, screen.AnswerMsg{Score: s})
		assert.Empty(t, run(cmd), "answer %d should not chime", i)
		assert.IsType(t, &question.QuestionScreen{}, m.router.Active())
	}

	m, cmd := send(t, m, screen.QuickAnswerMsg{})
	require.IsType(t, &result.ResultScreen{}, m.router.Active())
	assert.Equal(t, 3.0, m.ctrl.Snapshot().FinalScore)

	msgs := run(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, 1, c.calls)

	// Feeding the outcome back is harmless.
	m, cmd = send(t, m, msgs[0])
	assert.Nil(t, cmd)

	// A stray answer on Result is rejected and does not chime again.
	m, cmd = send(t, m, screen.AnswerMsg{Score: 5})
	assert.Nil(t, cmd)
	assert.IsType(t, &result.ResultScreen{}, m.router.Active())
	assert.Equal(t, 1, c.calls)

	m, _ = send(t, m, screen.TryAgainMsg{})
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
	assert.Equal(t, quiz.ScreenWelcome, m.ctrl.Snapshot().Screen)
}

func TestChimeFailureIsSwallowed(t *testing.T) {
	c := &countingChimer{err: errors.New("no speaker")}
	m := testModel(t, 1, c)

	m, _ = send(t, m, screen.StartQuizMsg{})
	m, cmd := send(t, m, screen.AnswerMsg{Score: 4})
	require.IsType(t, &result.ResultScreen{}, m.router.Active())

	for _, msg := range run(cmd) {
		var next tea.Cmd
		m, next = send(t, m, msg)
		assert.Nil(t, next)
	}
	assert.Equal(t, 1, c.calls)
	assert.IsType(t, &result.ResultScreen{}, m.router.Active())
}

func TestEmptyCorpusShowsNotice(t *testing.T) {
	m := testModel(t, 0, &countingChimer{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	require.NotNil(t, m.Init(), "welcome animation should start once")
	first := m.router.Active()

	// Repeated starts keep the same welcome screen and schedule no new
	// ticks, so only the animation loop started by Init stays alive.
	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		m, cmd = send(t, m, screen.StartQuizMsg{})
		assert.Nil(t, cmd, "start %d scheduled a command", i)
		assert.Same(t, first, m.router.Active())
	}
	assert.Equal(t, quiz.ScreenWelcome, m.ctrl.Snapshot().Screen)
	assert.Contains(t, m.render(), "No questions are configured")
}

func TestInvalidScoreKeepsQuestion(t *testing.T) {
	m := testModel(t, 8, &countingChimer{})
	m, _ = send(t, m, screen.StartQuizMsg{})
	before := m.router.Active()

	m, cmd := send(t, m, screen.AnswerMsg{Score: 9})
	assert.Nil(t, cmd)
	assert.Same(t, before, m.router.Active())
	assert.Empty(t, m.ctrl.Snapshot().Scores)
}

func TestKeysReachActiveScreen(t *testing.T) {
	m := testModel(t, 8, &countingChimer{})
	m, _ = send(t, m, screen.StartQuizMsg{})

	_, cmd := send(t, m, tea.KeyPressMsg{Code: '4', Text: "4"})
	require.NotNil(t, cmd)
	assert.Equal(t, screen.AnswerMsg{Score: 4}, cmd())
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(t, 8, &countingChimer{})
	_, cmd := send(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := testModel(t, 8, &countingChimer{})
	assert.Empty(t, m.render())

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = send(t, m, screen.StartQuizMsg{})

	content := m.render()
	assert.Contains(t, content, "Happymeter")
	assert.Contains(t, content, "Q 1/5")
	assert.Contains(t, content, "Ctrl+C")
	assert.True(t, strings.Contains(content, "Question 1 of 5"))

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small!")
}
