package hangman

import "math/bits"

// A LetterSet is a set of lowercase ASCII letters packed into a uint32.
// The zero value is the empty set.
type LetterSet uint32

func (s LetterSet) Has(c byte) bool {
	return s&(1<<(c-'a')) != 0
}

func (s LetterSet) With(c byte) LetterSet {
	return s | 1<<(c-'a')
}

func (s LetterSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

func (s LetterSet) String() string {
	b := make([]byte, 0, s.Len())
	for c := byte('a'); c <= 'z'; c++ {
		if s.Has(c) {
			b = append(b, c)
		}
	}
	return string(b)
}

// WordLetters returns the set of distinct letters in w. The word must
// already be validated lowercase ASCII.
func WordLetters(w string) LetterSet {
	var s LetterSet
	for i := 0; i < len(w); i++ {
		s = s.With(w[i])
	}
	return s
}
