// Package dataset handles the flat tabular inputs and outputs of the
// difficulty pipeline: dataset rows, wordlists, simulation-data ingest, and
// the report, tier, and snippet writers.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/MattFisher/hangman-bench/internal/hangman"
)

// A Row is one dataset entry to be scored. Language and Difficulty are
// opaque labels; only the word's shape is validated.
type Row struct {
	Word       string
	Language   string
	Difficulty string
}

// A WordEntry pairs a word with its assigned difficulty tier. The emitted
// snippet is a slice of these.
type WordEntry struct {
	Word string
	Tier int
}

// ReadRows loads dataset rows from a headered TSV with columns
// word, language, difficulty. Rows whose word fails shape validation are
// skipped and logged; the rest keep their input order.
func ReadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseRows(f)
}

func parseRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	lines, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("dataset: no header row")
	}
	col := make(map[string]int, len(lines[0]))
	for i, name := range lines[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	wordCol, ok := col["word"]
	if !ok {
		return nil, fmt.Errorf("dataset: input must include a word column")
	}

	field := func(line []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(line) {
			return ""
		}
		return strings.TrimSpace(line[i])
	}

	var rows []Row
	for i, line := range lines[1:] {
		if wordCol >= len(line) {
			log.Warn().Int("line", i+2).Msg("dataset row too short, skipping")
			continue
		}
		w := strings.ToLower(strings.TrimSpace(line[wordCol]))
		if !hangman.ValidWord(w) {
			log.Warn().Int("line", i+2).Str("word", w).Msg("malformed dataset word, skipping")
			continue
		}
		rows = append(rows, Row{
			Word:       w,
			Language:   field(line, "language"),
			Difficulty: field(line, "difficulty"),
		})
	}
	return rows, nil
}

// Words projects rows onto their word column.
func Words(rows []Row) []string {
	words := make([]string, len(rows))
	for i, r := range rows {
		words[i] = r.Word
	}
	return words
}

// ReadWordlist loads a plain wordlist, one word per line, lowercased.
// Blank lines are ignored. Any malformed entry fails the load, since a
// defective dictionary aborts the whole run.
func ReadWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		if !hangman.ValidWord(w) {
			return nil, fmt.Errorf("%w: %q in %s", hangman.ErrMalformedWord, w, path)
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// WriteWordlist writes words one per line, dropping duplicates while
// preserving first-seen order.
func WriteWordlist(words []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	seen := make(map[string]bool, len(words))
	for _, word := range words {
		if seen[word] {
			continue
		}
		seen[word] = true
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return w.Flush()
}
