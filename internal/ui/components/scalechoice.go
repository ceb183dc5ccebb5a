package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/happymeter/internal/corpus"
	"github.com/abhisek/happymeter/internal/ui/theme"
)

// ScaleChoice lists the answer scale with a movable cursor.
type ScaleChoice struct {
	Options  []corpus.AnswerOption
	Selected int
}

// NewScaleChoice creates a selector with the cursor on the middle option
// when the scale has one.
func NewScaleChoice(scale corpus.Scale) ScaleChoice {
	opts := scale.Options()
	selected := 0
	for i, o := range opts {
		if o.Label == corpus.MiddleLabel {
			selected = i
			break
		}
	}
	return ScaleChoice{Options: opts, Selected: selected}
}

// Up moves the cursor one option up.
func (c ScaleChoice) Up() ScaleChoice {
	if c.Selected > 0 {
		c.Selected--
	}
	return c
}

// Down moves the cursor one option down.
func (c ScaleChoice) Down() ScaleChoice {
	if c.Selected < len(c.Options)-1 {
		c.Selected++
	}
	return c
}

// Current returns the option under the cursor.
func (c ScaleChoice) Current() (corpus.AnswerOption, bool) {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return corpus.AnswerOption{}, false
	}
	return c.Options[c.Selected], true
}

// View renders the options, one per line.
func (c ScaleChoice) View() string {
	var b strings.Builder
	for i, o := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s  %s", prefix, o.Score, o.Glyph, o.Label)

		if i == c.Selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		if i < len(c.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
