package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	input := strings.Join([]string{
		"word\tlanguage\tdifficulty",
		"Apple\tenglish\tv_easy",
		"c4t\tenglish\teasy", // malformed, skipped
		"\tenglish\teasy",    // empty word, skipped
		"zebra\tenglish\thard",
	}, "\n")

	rows, err := parseRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Word: "apple", Language: "english", Difficulty: "v_easy"}, rows[0])
	assert.Equal(t, Row{Word: "zebra", Language: "english", Difficulty: "hard"}, rows[1])
	assert.Equal(t, []string{"apple", "zebra"}, Words(rows))
}

func TestParseRowsRequiresWordColumn(t *testing.T) {
	_, err := parseRows(strings.NewReader("language\tdifficulty\nenglish\teasy\n"))
	assert.Error(t, err)
}

func TestWordlistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, WriteWordlist([]string{"cat", "dog", "cat", "ox"}, path))

	words, err := ReadWordlist(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "ox"}, words)
}

func TestReadWordlistMalformedAborts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, WriteWordlist([]string{"cat"}, path))

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("cat\nc4t\ndog\n"), 0o644))
	_, err := ReadWordlist(bad)
	assert.Error(t, err)
}
