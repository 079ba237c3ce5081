package hangman

import (
	"testing"

	"github.com/matryer/is"
)

func TestPoolNarrow(t *testing.T) {
	is := is.New(t)
	pool := NewPool([]string{"cat", "car", "can", "bat"})

	// Empty state keeps everything.
	all := pool.Narrow(NewPattern(3), 0)
	is.Equal(all.Size(), 4)

	// 'a' revealed at position 1.
	pattern := Pattern(".a.")
	narrowed := all.Narrow(pattern, 0)
	is.Equal(narrowed.Size(), 4)

	// 'b' confirmed wrong drops "bat".
	narrowed = narrowed.Narrow(pattern, LetterSet(0).With('b'))
	is.Equal(narrowed.Words(), []string{"cat", "car", "can"})

	// Narrowing from the previous pool matches recomputing from scratch.
	recomputed := pool.Narrow(pattern, LetterSet(0).With('b'))
	is.Equal(narrowed.Words(), recomputed.Words())
}

func TestPoolLetterStats(t *testing.T) {
	is := is.New(t)
	pool := NewPool([]string{"banana", "cabana", "fedora"})

	counts := pool.LetterCounts(0)
	is.Equal(counts['a'-'a'], 7) // duplicates within words count
	is.Equal(counts['n'-'a'], 3)
	is.Equal(counts['f'-'a'], 1)

	incidence := pool.LetterIncidence(0)
	is.Equal(incidence['a'-'a'], 3) // distinct words only
	is.Equal(incidence['n'-'a'], 2)
	is.Equal(incidence['f'-'a'], 1)

	// Raw count is never below incidence, and incidence never exceeds the
	// pool size.
	for i := 0; i < 26; i++ {
		is.True(counts[i] >= incidence[i])
		is.True(incidence[i] <= pool.Size())
	}

	// Excluded letters score zero in both.
	excluded := LetterSet(0).With('a').With('n')
	is.Equal(pool.LetterCounts(excluded)['a'-'a'], 0)
	is.Equal(pool.LetterIncidence(excluded)['n'-'a'], 0)
}
