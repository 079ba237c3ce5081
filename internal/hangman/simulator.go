package hangman

import (
	"errors"
	"fmt"
)

// ErrNoCandidates signals that the candidate pool emptied while the target
// was unresolved. The target is always a member of its own pool, so this
// means the dictionary is missing the target or the matcher is defective.
// It is fatal and never retried.
var ErrNoCandidates = errors.New("hangman: candidate pool empty with target unresolved")

// A Guess is one entry of a game's trace.
type Guess struct {
	Letter  byte
	Correct bool
}

// A Result is the outcome of one simulated game.
type Result struct {
	Won   bool
	Wrong int // wrong guesses, in [0, MaxWrong]
	Trace []Guess
}

// A Simulator plays dictionary words to completion under a fixed strategy.
// The dictionary is shared read-only state; a Simulator may be used from
// multiple goroutines.
type Simulator struct {
	Dict     *Dictionary
	MaxWrong int
}

// Play simulates one game for target under strategy. Each turn rebuilds
// the candidate pool from the current pattern and wrong-letter set, asks
// the scorer for a letter, then either reveals every occurrence at once or
// charges a wrong guess. The game ends when the pattern is complete (won)
// or the wrong-guess counter reaches MaxWrong (lost). Identical inputs
// yield identical traces.
func (s *Simulator) Play(target string, strategy Strategy) (Result, error) {
	if !ValidWord(target) {
		return Result{}, fmt.Errorf("%w: %q", ErrMalformedWord, target)
	}
	scorer := NewScorer(strategy)
	pool := NewPool(s.Dict.WordsOfLength(len(target)))
	pattern := NewPattern(len(target))
	var wrong LetterSet
	var trace []Guess
	wrongCount := 0

	for !pattern.Complete() {
		pool = pool.Narrow(pattern, wrong)
		if pool.Size() == 0 {
			return Result{}, fmt.Errorf("%w (target %q, pattern %q, wrong %q)",
				ErrNoCandidates, target, pattern, wrong)
		}
		letter, ok := scorer.Pick(pool, pattern.Revealed()|wrong)
		if !ok {
			return Result{}, fmt.Errorf("%w (target %q: no scorable letter)",
				ErrNoCandidates, target)
		}
		if pattern.Reveal(target, letter) {
			trace = append(trace, Guess{Letter: letter, Correct: true})
			continue
		}
		trace = append(trace, Guess{Letter: letter, Correct: false})
		wrong = wrong.With(letter)
		wrongCount++
		if wrongCount >= s.MaxWrong {
			break
		}
	}

	if wrongCount > s.MaxWrong {
		wrongCount = s.MaxWrong
	}
	return Result{Won: pattern.Complete(), Wrong: wrongCount, Trace: trace}, nil
}
