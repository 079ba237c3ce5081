package hangman

// Unknown marks a board position whose letter has not been revealed yet.
const Unknown = '.'

// A Pattern is the per-position reveal state of a target word. Revealed
// slots hold the letter itself; hidden slots hold Unknown.
type Pattern []byte

func NewPattern(length int) Pattern {
	p := make(Pattern, length)
	for i := range p {
		p[i] = Unknown
	}
	return p
}

// Complete reports whether every slot has been revealed.
func (p Pattern) Complete() bool {
	for _, c := range p {
		if c == Unknown {
			return false
		}
	}
	return true
}

// Revealed returns the set of letters occupying known slots.
func (p Pattern) Revealed() LetterSet {
	var s LetterSet
	for _, c := range p {
		if c != Unknown {
			s = s.With(c)
		}
	}
	return s
}

// Reveal fills in every position of target holding letter, all in one step,
// and reports whether any slot was revealed.
func (p Pattern) Reveal(target string, letter byte) bool {
	hit := false
	for i := 0; i < len(target); i++ {
		if target[i] == letter {
			p[i] = letter
			hit = true
		}
	}
	return hit
}

func (p Pattern) String() string {
	return string(p)
}
