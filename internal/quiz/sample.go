package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/happymeter/internal/corpus"
)

// QuestionsPerSession is the maximum number of questions asked per session.
const QuestionsPerSession = 5

// Sample returns min(k, len(qs)) distinct questions in random order.
// It runs a partial Fisher-Yates shuffle over a copy, so qs is not modified
// and every ordered selection is equally likely.
func Sample(qs []corpus.Question, k int, rng *rand.Rand) []corpus.Question {
	n := len(qs)
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}

	pool := make([]corpus.Question, n)
	copy(pool, qs)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}
