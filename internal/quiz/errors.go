package quiz

import "errors"

var (
	// ErrInvalidEventSequence is returned when an event is not legal on the
	// current screen. The session is left untouched.
	ErrInvalidEventSequence = errors.New("event not allowed on current screen")
	// ErrInvalidScore is returned when an answer score is not on the scale.
	ErrInvalidScore = errors.New("score is not on the answer scale")
	// ErrEmptyCorpus is returned when a quiz is started with no questions.
	ErrEmptyCorpus = errors.New("question corpus is empty")
	// ErrNoMiddleOption is returned by QuickAnswer when the scale has no
	// "Medium" option to answer with.
	ErrNoMiddleOption = errors.New("answer scale has no middle option")
)
