package hangman

import (
	"fmt"
	"strings"
)

// A Game tracks one interactive Hangman game against a known target. It is
// the live-play counterpart of Simulator: the guesser is external and the
// Game only bookkeeps reveals, wrong guesses, and the end conditions.
type Game struct {
	target   string
	pattern  Pattern
	guessed  LetterSet
	wrong    LetterSet
	maxWrong int
}

func NewGame(target string, maxWrong int) (*Game, error) {
	target = strings.ToLower(target)
	if !ValidWord(target) {
		return nil, fmt.Errorf("%w: %q", ErrMalformedWord, target)
	}
	if maxWrong < 1 {
		return nil, fmt.Errorf("hangman: maxWrong must be positive, got %d", maxWrong)
	}
	return &Game{
		target:   target,
		pattern:  NewPattern(len(target)),
		maxWrong: maxWrong,
	}, nil
}

// Guess applies one letter guess. Repeated guesses are ignored, and guesses
// after the game is over are ignored. It reports whether the letter occurs
// in the target.
func (g *Game) Guess(letter byte) (correct bool, err error) {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	if letter < 'a' || letter > 'z' {
		return false, fmt.Errorf("hangman: guess must be a single letter, got %q", letter)
	}
	if g.Over() || g.guessed.Has(letter) {
		return g.pattern.Revealed().Has(letter), nil
	}
	g.guessed = g.guessed.With(letter)
	if g.pattern.Reveal(g.target, letter) {
		return true, nil
	}
	g.wrong = g.wrong.With(letter)
	return false, nil
}

// Board renders the current reveal state with unguessed letters as '_',
// space separated.
func (g *Game) Board() string {
	var b strings.Builder
	for i, c := range g.pattern {
		if i > 0 {
			b.WriteByte(' ')
		}
		if c == Unknown {
			b.WriteByte('_')
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func (g *Game) Target() string       { return g.target }
func (g *Game) Pattern() Pattern     { return g.pattern }
func (g *Game) WrongLetters() string { return g.wrong.String() }
func (g *Game) Remaining() int       { return g.maxWrong - g.wrong.Len() }
func (g *Game) Won() bool            { return g.pattern.Complete() }
func (g *Game) Lost() bool           { return g.wrong.Len() >= g.maxWrong && !g.Won() }
func (g *Game) Over() bool           { return g.Won() || g.Lost() }
func (g *Game) Guessed(c byte) bool  { return g.guessed.Has(c) }
