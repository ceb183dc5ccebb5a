package corpus

import (
	"errors"
	"fmt"
)

// ScaleSize is the number of options on the answer scale.
const ScaleSize = 5

// MiddleLabel names the option picked by the quick-answer shortcut.
const MiddleLabel = "Medium"

// ErrInvalidScale is returned when a scale breaks its structural rules.
var ErrInvalidScale = errors.New("invalid answer scale")

// AnswerOption is one entry of the answer scale.
type AnswerOption struct {
	Label string
	Glyph string
	Score int
}

// Scale is the fixed set of answer options shared by every question.
type Scale struct {
	options []AnswerOption
}

var defaultOptions = []AnswerOption{
	{Label: "Very Low", Glyph: "😞", Score: 1},
	{Label: "Low", Glyph: "😐", Score: 2},
	{Label: MiddleLabel, Glyph: "🙂", Score: 3},
	{Label: "High", Glyph: "😄", Score: 4},
	{Label: "Very High", Glyph: "🤩", Score: 5},
}

// DefaultScale returns the standard five-point scale, Very Low through Very High.
func DefaultScale() Scale {
	s, err := NewScale(defaultOptions...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewScale validates and builds a scale. It needs exactly ScaleSize options
// with scores 1..ScaleSize in ascending order and distinct labels.
func NewScale(opts ...AnswerOption) (Scale, error) {
	if len(opts) != ScaleSize {
		return Scale{}, fmt.Errorf("%w: want %d options, got %d", ErrInvalidScale, ScaleSize, len(opts))
	}

	labels := make(map[string]bool, len(opts))
	for i, o := range opts {
		if o.Score != i+1 {
			return Scale{}, fmt.Errorf("%w: option %d (%q) has score %d, want %d", ErrInvalidScale, i, o.Label, o.Score, i+1)
		}
		if labels[o.Label] {
			return Scale{}, fmt.Errorf("%w: duplicate label %q", ErrInvalidScale, o.Label)
		}
		labels[o.Label] = true
	}

	cp := make([]AnswerOption, len(opts))
	copy(cp, opts)
	return Scale{options: cp}, nil
}

// Options returns a copy of the options in ascending score order.
func (s Scale) Options() []AnswerOption {
	out := make([]AnswerOption, len(s.options))
	copy(out, s.options)
	return out
}

// Contains reports whether score belongs to one of the options.
func (s Scale) Contains(score int) bool {
	for _, o := range s.options {
		if o.Score == score {
			return true
		}
	}
	return false
}

// Find returns the option with the given label.
func (s Scale) Find(label string) (AnswerOption, bool) {
	for _, o := range s.options {
		if o.Label == label {
			return o, true
		}
	}
	return AnswerOption{}, false
}

// Middle returns the option labelled MiddleLabel, if the scale has one.
func (s Scale) Middle() (AnswerOption, bool) {
	return s.Find(MiddleLabel)
}
