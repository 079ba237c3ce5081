package hangman

// Compatible reports whether word is still consistent with the revealed
// pattern and the set of confirmed-wrong letters. At every known slot the
// word must carry the pattern's letter. At every unknown slot the word must
// carry neither a wrong letter nor a letter already revealed elsewhere: a
// correct guess reveals all of its positions at once, so a revealed letter
// showing up under an unknown slot is a contradiction.
func Compatible(word string, pattern Pattern, wrong LetterSet) bool {
	if len(word) != len(pattern) {
		return false
	}
	revealed := pattern.Revealed()
	for i := 0; i < len(word); i++ {
		if pattern[i] != Unknown {
			if word[i] != pattern[i] {
				return false
			}
			continue
		}
		if wrong.Has(word[i]) || revealed.Has(word[i]) {
			return false
		}
	}
	return true
}
