package dataset

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// SimulationZipURL is the upstream archive holding SimulationData.txt, the
// raw per-word wrong-guess simulation lists.
const SimulationZipURL = "https://library.wolfram.com/infocenter/MathSource/7635/SimulationData.zip?file_id=7257"

// Entries look like {"word", {1, 2, 3}}, with the number list possibly
// spanning lines.
var simulationEntryRe = regexp.MustCompile(`\{\s*"([^"]+)"\s*,\s*\{([^}]*)\}\s*\}`)

var leadingIntRe = regexp.MustCompile(`^-?\d+`)

// A SimulationEntry is one parsed word with its simulated wrong-guess
// counts and their mean.
type SimulationEntry struct {
	Word         string
	WrongGuesses []int
	Mean         float64
}

// ParseSimulation extracts every entry from SimulationData-format input.
// The file is tens of megabytes; reading it whole is fine at that size.
func ParseSimulation(r io.Reader) ([]SimulationEntry, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var entries []SimulationEntry
	for _, m := range simulationEntryRe.FindAllStringSubmatch(string(text), -1) {
		word := strings.ToLower(m[1])
		var nums []int
		for _, part := range strings.Split(m[2], ",") {
			s := leadingIntRe.FindString(strings.TrimSpace(part))
			if s == "" {
				continue
			}
			n, err := strconv.Atoi(s)
			if err != nil {
				continue
			}
			nums = append(nums, n)
		}
		mean := 0.0
		if len(nums) > 0 {
			sum := 0
			for _, n := range nums {
				sum += n
			}
			mean = float64(sum) / float64(len(nums))
		}
		entries = append(entries, SimulationEntry{Word: word, WrongGuesses: nums, Mean: mean})
	}
	return entries, nil
}

// WriteSimulationTSV exports entries with columns word, wrong_guesses,
// mean_wrong_guesses; the guess list is rendered in brackets like the
// upstream format.
func WriteSimulationTSV(entries []SimulationEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	if err := w.Write([]string{"word", "wrong_guesses", "mean_wrong_guesses"}); err != nil {
		return err
	}
	for _, e := range entries {
		parts := make([]string, len(e.WrongGuesses))
		for i, n := range e.WrongGuesses {
			parts[i] = strconv.Itoa(n)
		}
		row := []string{
			e.Word,
			"[" + strings.Join(parts, ", ") + "]",
			strconv.FormatFloat(e.Mean, 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// SimulationWords returns the unique words of entries in first-seen order.
func SimulationWords(entries []SimulationEntry) []string {
	seen := make(map[string]bool, len(entries))
	var words []string
	for _, e := range entries {
		if !seen[e.Word] {
			seen[e.Word] = true
			words = append(words, e.Word)
		}
	}
	return words
}

// DownloadSimulation fetches the upstream ZIP and extracts
// SimulationData.txt to dest.
func DownloadSimulation(url, dest string) error {
	log.Info().Str("url", url).Msg("downloading simulation data")
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dataset: download failed: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return err
	}
	for _, zf := range zr.File {
		if filepath.Base(zf.Name) != "SimulationData.txt" {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		if dir := filepath.Dir(dest); dir != "." {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return err
			}
		}
		out, err := os.Create(dest)
		if err != nil {
			return err
		}
		defer out.Close()
		_, err = io.Copy(out, rc)
		return err
	}
	return fmt.Errorf("dataset: SimulationData.txt not found in archive")
}
