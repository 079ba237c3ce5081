package difficulty

import (
	"testing"

	"github.com/matryer/is"

	"github.com/MattFisher/hangman-bench/internal/hangman"
)

func TestBuildIncidence(t *testing.T) {
	is := is.New(t)
	dict, err := hangman.NewDictionary([]string{"cat", "car", "bat", "toto"})
	is.NoErr(err)

	table := BuildIncidence(dict)
	is.Equal(len(table), 2)

	three := table[3]
	is.Equal(three['a'-'a'], 1.0)     // every length-3 word has an 'a'
	is.Equal(three['c'-'a'], 2.0/3.0) // cat, car
	is.Equal(three['z'-'a'], 0.0)

	four := table[4]
	is.Equal(four['t'-'a'], 1.0)
	is.Equal(four['o'-'a'], 1.0)

	// Incidence is binary per word; repeats don't inflate it.
	is.True(four['o'-'a'] <= 1.0)
}
