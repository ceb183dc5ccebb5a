package screen

import tea "charm.land/bubbletea/v2"

// StartQuizMsg asks the controller to start a new session.
type StartQuizMsg struct{}

// AnswerMsg asks the controller to record Score for the current question.
type AnswerMsg struct {
	Score int
}

// QuickAnswerMsg asks the controller to answer with the middle option.
type QuickAnswerMsg struct{}

// TryAgainMsg asks the controller to discard the session.
type TryAgainMsg struct{}

// Emit wraps msg in a command.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
