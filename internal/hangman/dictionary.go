package hangman

import (
	"fmt"
	"strings"
)

// ErrMalformedWord is returned when a dictionary word fails shape
// validation. A malformed dictionary aborts the whole run.
var ErrMalformedWord = fmt.Errorf("hangman: malformed word")

// ValidWord reports whether w is a nonempty string of lowercase ASCII
// letters.
func ValidWord(w string) bool {
	if len(w) == 0 {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// A Dictionary is a deduplicated, case-normalized word list partitioned by
// word length. It is built once and read-only thereafter, so concurrent
// readers need no locking.
type Dictionary struct {
	byLength map[int][]string
	size     int
}

// NewDictionary builds a Dictionary from words, lowercasing and
// deduplicating while preserving first-seen order within each length bin.
// Any entry that is not purely alphabetic fails the whole build.
func NewDictionary(words []string) (*Dictionary, error) {
	d := &Dictionary{byLength: make(map[int][]string)}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if !ValidWord(w) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedWord, w)
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		d.byLength[len(w)] = append(d.byLength[len(w)], w)
		d.size++
	}
	return d, nil
}

// WordsOfLength returns the words of the given length, in insertion order.
// Callers must not mutate the returned slice.
func (d *Dictionary) WordsOfLength(n int) []string {
	return d.byLength[n]
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	for _, cand := range d.byLength[len(w)] {
		if cand == w {
			return true
		}
	}
	return false
}

// Lengths returns the word lengths present in the dictionary, unsorted.
func (d *Dictionary) Lengths() []int {
	ls := make([]int, 0, len(d.byLength))
	for l := range d.byLength {
		ls = append(ls, l)
	}
	return ls
}

func (d *Dictionary) Size() int {
	return d.size
}
