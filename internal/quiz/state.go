package quiz

import "github.com/abhisek/happymeter/internal/corpus"

// Screen identifies which screen the session is on.
type Screen int

const (
	ScreenWelcome    Screen = iota // Waiting for the user to start
	ScreenInProgress               // Answering questions
	ScreenResult                   // Showing the final score
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenInProgress:
		return "in-progress"
	case ScreenResult:
		return "result"
	default:
		return "unknown"
	}
}

// phase is the tagged session variant. Each screen carries only the fields
// that are meaningful on it.
type phase interface {
	screen() Screen
}

type welcomePhase struct{}

func (welcomePhase) screen() Screen { return ScreenWelcome }

// inProgressPhase holds a running session.
// Invariant: 0 <= index < len(questions) and len(scores) == index.
type inProgressPhase struct {
	id        string
	questions []corpus.Question
	index     int
	scores    []int
}

func (*inProgressPhase) screen() Screen { return ScreenInProgress }

// resultPhase holds a completed session. finalScore is computed once on entry.
type resultPhase struct {
	id         string
	questions  []corpus.Question
	scores     []int
	finalScore float64
}

func (*resultPhase) screen() Screen { return ScreenResult }

// Snapshot is a read-only copy of the session handed to the presentation
// layer. Fields that do not apply to Screen are zero.
type Snapshot struct {
	Screen    Screen
	SessionID string

	// In progress.
	Question corpus.Question
	Number   int // 1-based position of Question
	Total    int
	Answered int

	// In progress and result.
	Scores []int

	// Result.
	FinalScore float64
	Category   Category
}

// Progress returns the fraction of questions answered, in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Answered) / float64(s.Total)
}

func snapshotOf(p phase) Snapshot {
	switch p := p.(type) {
	case *inProgressPhase:
		return Snapshot{
			Screen:    ScreenInProgress,
			SessionID: p.id,
			Question:  p.questions[p.index],
			Number:    p.index + 1,
			Total:     len(p.questions),
			Answered:  len(p.scores),
			Scores:    append([]int(nil), p.scores...),
		}
	case *resultPhase:
		return Snapshot{
			Screen:     ScreenResult,
			SessionID:  p.id,
			Total:      len(p.questions),
			Answered:   len(p.scores),
			Scores:     append([]int(nil), p.scores...),
			FinalScore: p.finalScore,
			Category:   ResultCategory(p.finalScore),
		}
	default:
		return Snapshot{Screen: ScreenWelcome}
	}
}
