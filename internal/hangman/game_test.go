package hangman

import (
	"testing"

	"github.com/matryer/is"
)

func TestGamePlayThrough(t *testing.T) {
	is := is.New(t)
	g, err := NewGame("Banana", 3)
	is.NoErr(err)
	is.Equal(g.Board(), "_ _ _ _ _ _")

	correct, err := g.Guess('a')
	is.NoErr(err)
	is.True(correct)
	is.Equal(g.Board(), "_ a _ a _ a")

	correct, err = g.Guess('x')
	is.NoErr(err)
	is.True(!correct)
	is.Equal(g.Remaining(), 2)
	is.Equal(g.WrongLetters(), "x")

	// Repeated guesses are ignored.
	_, err = g.Guess('x')
	is.NoErr(err)
	is.Equal(g.Remaining(), 2)

	correct, err = g.Guess('B') // case-insensitive
	is.NoErr(err)
	is.True(correct)

	correct, err = g.Guess('n')
	is.NoErr(err)
	is.True(correct)
	is.True(g.Won())
	is.True(g.Over())
	is.True(!g.Lost())
}

func TestGameLoss(t *testing.T) {
	is := is.New(t)
	g, err := NewGame("cat", 2)
	is.NoErr(err)
	for _, c := range []byte{'x', 'y'} {
		_, err := g.Guess(c)
		is.NoErr(err)
	}
	is.True(g.Lost())
	is.True(g.Over())
	is.Equal(g.Remaining(), 0)

	// Guesses after the game is over change nothing.
	_, err = g.Guess('c')
	is.NoErr(err)
	is.Equal(g.Board(), "_ _ _")
}

func TestGameRejectsBadInput(t *testing.T) {
	is := is.New(t)
	_, err := NewGame("c4t", 3)
	is.True(err != nil)
	_, err = NewGame("cat", 0)
	is.True(err != nil)

	g, err := NewGame("cat", 3)
	is.NoErr(err)
	_, err = g.Guess('4')
	is.True(err != nil)
}
