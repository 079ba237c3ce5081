package hangman

// A Pool is the live subset of a length-specific dictionary consistent with
// the current game state. Pools are never mutated; Narrow returns a fresh
// one, so narrowing from the previous pool always matches recomputing from
// the full length bin.
type Pool struct {
	words []string
}

func NewPool(words []string) *Pool {
	return &Pool{words: words}
}

// Narrow returns the pool of members compatible with pattern and wrong.
func (p *Pool) Narrow(pattern Pattern, wrong LetterSet) *Pool {
	kept := make([]string, 0, len(p.words))
	for _, w := range p.words {
		if Compatible(w, pattern, wrong) {
			kept = append(kept, w)
		}
	}
	return &Pool{words: kept}
}

func (p *Pool) Size() int {
	return len(p.words)
}

func (p *Pool) Words() []string {
	return p.words
}

// LetterCounts returns per-letter total occurrence counts across all pool
// words, duplicates within a word included. Excluded letters count zero.
func (p *Pool) LetterCounts(excluded LetterSet) [26]int {
	var counts [26]int
	for _, w := range p.words {
		for i := 0; i < len(w); i++ {
			if !excluded.Has(w[i]) {
				counts[w[i]-'a']++
			}
		}
	}
	return counts
}

// LetterIncidence returns, per letter, the number of distinct pool words
// containing the letter at least once. Excluded letters count zero.
func (p *Pool) LetterIncidence(excluded LetterSet) [26]int {
	var counts [26]int
	for _, w := range p.words {
		letters := WordLetters(w)
		for c := byte('a'); c <= 'z'; c++ {
			if letters.Has(c) && !excluded.Has(c) {
				counts[c-'a']++
			}
		}
	}
	return counts
}
