package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/happymeter/internal/corpus"
)

// Controller owns the quiz session and is its only writer. It is driven by
// one event at a time and is not safe for concurrent use.
type Controller struct {
	corpus *corpus.Corpus
	scale  corpus.Scale
	rng    *rand.Rand
	logger *zap.Logger
	newID  func() string

	phase phase
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used to sample questions.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// WithLogger sets the logger. Invalid scores are reported with DPanic, so a
// development logger turns them into panics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithIDFunc overrides how session IDs are generated.
func WithIDFunc(f func() string) Option {
	return func(c *Controller) { c.newID = f }
}

// NewController creates a controller on the Welcome screen.
func NewController(qs *corpus.Corpus, scale corpus.Scale, opts ...Option) *Controller {
	c := &Controller{
		corpus: qs,
		scale:  scale,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger: zap.NewNop(),
		newID:  func() string { return uuid.New().String() },
		phase:  welcomePhase{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scale returns the answer scale the controller accepts.
func (c *Controller) Scale() corpus.Scale {
	return c.scale
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() Snapshot {
	return snapshotOf(c.phase)
}

// StartQuiz samples a fresh set of questions and moves to the first one.
func (c *Controller) StartQuiz() (Snapshot, error) {
	if _, ok := c.phase.(welcomePhase); !ok {
		return c.reject("start", ErrInvalidEventSequence)
	}
	if c.corpus.Len() == 0 {
		return c.reject("start", ErrEmptyCorpus)
	}

	questions := Sample(c.corpus.Questions(), QuestionsPerSession, c.rng)
	p := &inProgressPhase{
		id:        c.newID(),
		questions: questions,
		scores:    make([]int, 0, len(questions)),
	}
	c.phase = p

	c.logger.Info("quiz started",
		zap.String("session_id", p.id),
		zap.Int("questions", len(questions)),
		zap.Int("corpus_size", c.corpus.Len()),
	)
	return c.Snapshot(), nil
}

// Answer records score for the current question. After the last question
// the session moves to Result with the mean of all recorded scores.
func (c *Controller) Answer(score int) (Snapshot, error) {
	if !c.scale.Contains(score) {
		c.logger.DPanic("answer score outside scale", zap.Int("score", score))
		return c.Snapshot(), fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}

	p, ok := c.phase.(*inProgressPhase)
	if !ok {
		return c.reject("answer", ErrInvalidEventSequence)
	}

	p.scores = append(p.scores, score)
	c.logger.Debug("answer recorded",
		zap.String("session_id", p.id),
		zap.Int("question", p.questions[p.index].Index),
		zap.Int("score", score),
	)

	if p.index < len(p.questions)-1 {
		p.index++
		return c.Snapshot(), nil
	}

	r := &resultPhase{
		id:         p.id,
		questions:  p.questions,
		scores:     p.scores,
		finalScore: mean(p.scores),
	}
	c.phase = r

	c.logger.Info("quiz finished",
		zap.String("session_id", r.id),
		zap.Float64("final_score", r.finalScore),
		zap.String("category", ResultCategory(r.finalScore).Name),
	)
	return c.Snapshot(), nil
}

// QuickAnswer answers the current question with the scale's middle option.
func (c *Controller) QuickAnswer() (Snapshot, error) {
	if _, ok := c.phase.(*inProgressPhase); !ok {
		return c.reject("quick answer", ErrInvalidEventSequence)
	}
	mid, ok := c.scale.Middle()
	if !ok {
		return c.reject("quick answer", ErrNoMiddleOption)
	}
	return c.Answer(mid.Score)
}

// TryAgain discards the session and returns to the Welcome screen. It is
// accepted from any screen.
func (c *Controller) TryAgain() Snapshot {
	if id := c.sessionID(); id != "" {
		c.logger.Info("quiz reset", zap.String("session_id", id))
	}
	c.phase = welcomePhase{}
	return c.Snapshot()
}

func (c *Controller) sessionID() string {
	switch p := c.phase.(type) {
	case *inProgressPhase:
		return p.id
	case *resultPhase:
		return p.id
	}
	return ""
}

func (c *Controller) reject(event string, err error) (Snapshot, error) {
	c.logger.Debug("event rejected",
		zap.String("event", event),
		zap.Stringer("screen", c.phase.screen()),
		zap.Error(err),
	)
	return c.Snapshot(), err
}

func mean(scores []int) float64 {
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}
