package hangman

import "fmt"

// Strategy selects one of the three fixed letter-selection heuristics. The
// set is closed on purpose; there is no plugin registration.
type Strategy int

const (
	// RawFrequency guesses the letter with the most total occurrences
	// across pool words, duplicates within a word counted.
	RawFrequency Strategy = iota
	// Coverage guesses the letter occurring in the most distinct pool
	// words.
	Coverage
	// InfoGain guesses the letter minimizing the expected surviving pool
	// size, partitioning by occurrence-position signature.
	InfoGain
)

var strategyNames = map[Strategy]string{
	RawFrequency: "freq_raw",
	Coverage:     "coverage",
	InfoGain:     "info_gain",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Strategies lists every supported strategy, in metric column order.
func Strategies() []Strategy {
	return []Strategy{RawFrequency, Coverage, InfoGain}
}

// ParseStrategy maps a configuration value to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("hangman: unknown strategy %q", name)
}

// A Scorer picks the next letter to guess from the current pool. used holds
// every letter already guessed, correct or wrong. The boolean result is
// false when no letter scores, which only happens with a defective pool.
type Scorer interface {
	Pick(pool *Pool, used LetterSet) (byte, bool)
}

// NewScorer returns the Scorer for a strategy.
func NewScorer(s Strategy) Scorer {
	switch s {
	case RawFrequency:
		return rawFrequencyScorer{}
	case Coverage:
		return coverageScorer{}
	case InfoGain:
		return infoGainScorer{}
	}
	panic(fmt.Sprintf("hangman: no scorer for %v", s))
}

type rawFrequencyScorer struct{}

func (rawFrequencyScorer) Pick(pool *Pool, used LetterSet) (byte, bool) {
	return argmax(pool.LetterCounts(used))
}

type coverageScorer struct{}

func (coverageScorer) Pick(pool *Pool, used LetterSet) (byte, bool) {
	return argmax(pool.LetterIncidence(used))
}

// argmax scans a..z in order and keeps strictly greater counts, so ties
// break toward the alphabetically first letter.
func argmax(counts [26]int) (byte, bool) {
	best, bestCount := byte(0), 0
	for i, n := range counts {
		if n > bestCount {
			best, bestCount = 'a'+byte(i), n
		}
	}
	return best, bestCount > 0
}

type infoGainScorer struct{}

// Pick chooses the unguessed letter whose reveal is expected to leave the
// smallest pool. For a letter l, pool words are grouped by the exact set of
// positions where l occurs (the empty signature meaning a miss); this is a
// multi-way partition, since two words can both contain l at different
// positions and those are distinguishable outcomes. The expected surviving
// size is sum(groupSize^2)/poolSize; the pool size divisor is constant per
// letter, so minimizing sum(groupSize^2) suffices. Ties break alphabetically.
func (infoGainScorer) Pick(pool *Pool, used LetterSet) (byte, bool) {
	words := pool.Words()
	if len(words) == 0 {
		return 0, false
	}
	best, bestScore := byte(0), -1
	var sig []byte
	for c := byte('a'); c <= 'z'; c++ {
		if used.Has(c) {
			continue
		}
		groups := make(map[string]int)
		for _, w := range words {
			sig = sig[:0]
			for i := 0; i < len(w); i++ {
				if w[i] == c {
					sig = append(sig, byte(i))
				}
			}
			groups[string(sig)]++
		}
		score := 0
		for _, n := range groups {
			score += n * n
		}
		if bestScore < 0 || score < bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore >= 0
}
