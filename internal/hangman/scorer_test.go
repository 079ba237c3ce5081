package hangman

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseStrategy(t *testing.T) {
	is := is.New(t)
	for _, s := range Strategies() {
		parsed, err := ParseStrategy(s.String())
		is.NoErr(err)
		is.Equal(parsed, s)
	}
	_, err := ParseStrategy("entropy")
	is.True(err != nil)
}

func TestRawFrequencyPick(t *testing.T) {
	is := is.New(t)
	pool := NewPool([]string{"cat", "car", "can", "bat"})

	// a:4 c:3 t:2 b:1 n:1 r:1
	letter, ok := NewScorer(RawFrequency).Pick(pool, 0)
	is.True(ok)
	is.Equal(letter, byte('a'))

	// With 'a' and 'c' used, 't' leads; ties below it break alphabetically.
	used := LetterSet(0).With('a').With('c')
	letter, ok = NewScorer(RawFrequency).Pick(pool, used)
	is.True(ok)
	is.Equal(letter, byte('t'))
}

func TestCoveragePick(t *testing.T) {
	is := is.New(t)
	// Raw frequency favors 'a' (3 occurrences, all in one word); coverage
	// counts distinct words, where 'b' wins with 2.
	pool := NewPool([]string{"aaa", "bcd", "bce"})
	letter, ok := NewScorer(Coverage).Pick(pool, 0)
	is.True(ok)
	is.Equal(letter, byte('b'))

	letter, ok = NewScorer(RawFrequency).Pick(pool, 0)
	is.True(ok)
	is.Equal(letter, byte('a'))
}

func TestTieBreakAlphabetical(t *testing.T) {
	is := is.New(t)
	pool := NewPool([]string{"zy"})
	// 'y' and 'z' both score 1; the alphabetically first wins.
	letter, ok := NewScorer(RawFrequency).Pick(pool, 0)
	is.True(ok)
	is.Equal(letter, byte('y'))
}

func TestInfoGainMultiWayPartition(t *testing.T) {
	is := is.New(t)
	// 'a' splits {"aa","ab","ba"} into three singleton position-signature
	// groups ({0,1}, {0}, {1}): score 3. A binary present/absent split
	// would lump all three together (score 9) and prefer 'b' (score 5).
	pool := NewPool([]string{"aa", "ab", "ba"})
	letter, ok := NewScorer(InfoGain).Pick(pool, 0)
	is.True(ok)
	is.Equal(letter, byte('a'))
}

func TestInfoGainGroupSizesSumToPool(t *testing.T) {
	is := is.New(t)
	words := []string{"cat", "car", "can", "bat", "tab", "act"}
	for c := byte('a'); c <= 'z'; c++ {
		groups := make(map[string]int)
		for _, w := range words {
			var sig []byte
			for i := 0; i < len(w); i++ {
				if w[i] == c {
					sig = append(sig, byte(i))
				}
			}
			groups[string(sig)]++
		}
		total := 0
		for _, n := range groups {
			total += n
		}
		is.Equal(total, len(words))
	}
}

func TestInfoGainMatchesBruteForce(t *testing.T) {
	is := is.New(t)
	words := []string{"cat", "car", "can", "bat", "tab", "act", "tac"}
	pool := NewPool(words)

	best, bestScore := byte(0), -1
	for c := byte('a'); c <= 'z'; c++ {
		groups := make(map[string]int)
		for _, w := range words {
			var sig []byte
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

	letter, ok := NewScorer(InfoGain).Pick(pool, 0)
	is.True(ok)
	is.Equal(letter, best)
}
