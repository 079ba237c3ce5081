package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MattFisher/hangman-bench/internal/difficulty"
)

var reportHeader = []string{
	"word", "length",
	"wrong_freq_raw", "wrong_coverage", "wrong_info_gain",
	"rare_score", "dup_factor", "structural_score",
}

// WriteReport writes one TSV row per difficulty record, in record order.
// Absent wrong-guess metrics are written as empty cells.
func WriteReport(records []difficulty.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	if err := w.Write(reportHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Word,
			strconv.Itoa(r.Length),
			formatWrong(r.WrongFreqRaw),
			formatWrong(r.WrongCoverage),
			formatWrong(r.WrongInfoGain),
			strconv.FormatFloat(r.RareScore, 'f', 3, 64),
			strconv.FormatFloat(r.DupFactor, 'f', 3, 64),
			strconv.FormatFloat(r.StructuralScore, 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatWrong(n int) string {
	if n == difficulty.MetricAbsent {
		return ""
	}
	return strconv.Itoa(n)
}

// ReadReport loads a report TSV back into records, for binning runs on a
// previously written report. Empty wrong-guess cells map to MetricAbsent.
func ReadReport(path string) ([]difficulty.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = '\t'
	lines, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("dataset: report %s has no header", path)
	}
	col := make(map[string]int, len(lines[0]))
	for i, name := range lines[0] {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["word"]; !ok {
		return nil, fmt.Errorf("dataset: report %s lacks a word column", path)
	}

	intField := func(line []string, name string) (int, error) {
		i, ok := col[name]
		if !ok || i >= len(line) || strings.TrimSpace(line[i]) == "" {
			return difficulty.MetricAbsent, nil
		}
		return strconv.Atoi(strings.TrimSpace(line[i]))
	}
	floatField := func(line []string, name string) (float64, error) {
		i, ok := col[name]
		if !ok || i >= len(line) || strings.TrimSpace(line[i]) == "" {
			return 0, nil
		}
		return strconv.ParseFloat(strings.TrimSpace(line[i]), 64)
	}

	records := make([]difficulty.Record, 0, len(lines)-1)
	for n, line := range lines[1:] {
		r := difficulty.Record{Word: strings.TrimSpace(line[col["word"]])}
		var err error
		if r.Length, err = intField(line, "length"); err == nil {
			if r.WrongFreqRaw, err = intField(line, "wrong_freq_raw"); err == nil {
				if r.WrongCoverage, err = intField(line, "wrong_coverage"); err == nil {
					r.WrongInfoGain, err = intField(line, "wrong_info_gain")
				}
			}
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: report %s line %d: %w", path, n+2, err)
		}
		if r.RareScore, err = floatField(line, "rare_score"); err == nil {
			if r.DupFactor, err = floatField(line, "dup_factor"); err == nil {
				r.StructuralScore, err = floatField(line, "structural_score")
			}
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: report %s line %d: %w", path, n+2, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// WriteBinned writes the word, metric, tier table in rank order.
func WriteBinned(rows []difficulty.TierRow, metric, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	if err := w.Write([]string{"word", metric, "tier"}); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{row.Word, strconv.Itoa(row.Value), strconv.Itoa(row.Tier)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteSnippet emits a Go source snippet assigning the tiered words to a
// WordEntry slice, for pasting into the dataset module.
func WriteSnippet(rows []difficulty.TierRow, metric, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated from the %s metric by bindiff. DO NOT EDIT.\n\n", metric)
	b.WriteString("package dataset\n\n")
	b.WriteString("var ReclassifiedWords = []WordEntry{\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "\t{Word: %q, Tier: %d},\n", row.Word, row.Tier)
	}
	b.WriteString("}\n")
	_, err = f.WriteString(b.String())
	return err
}
