// Package difficulty scores dataset words by simulating Hangman games under
// every letter-selection strategy and bins the results into quantile tiers.
package difficulty

import "github.com/MattFisher/hangman-bench/internal/hangman"

// An IncidenceTable holds, per word length, the fraction of dictionary
// words of that length containing each letter at least once. It is built
// once over the full dictionary and treated as read-only shared state.
type IncidenceTable map[int][26]float64

// BuildIncidence computes the table for every length bin of dict.
func BuildIncidence(dict *hangman.Dictionary) IncidenceTable {
	table := make(IncidenceTable)
	for _, length := range dict.Lengths() {
		words := dict.WordsOfLength(length)
		var counts [26]int
		for _, w := range words {
			letters := hangman.WordLetters(w)
			for c := byte('a'); c <= 'z'; c++ {
				if letters.Has(c) {
					counts[c-'a']++
				}
			}
		}
		var fracs [26]float64
		for i, n := range counts {
			fracs[i] = float64(n) / float64(len(words))
		}
		table[length] = fracs
	}
	return table
}
