package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MattFisher/hangman-bench/internal/difficulty"
)

var testRecords = []difficulty.Record{
	{
		Word: "cat", Length: 3,
		WrongFreqRaw: 2, WrongCoverage: 1, WrongInfoGain: 0,
		RareScore: 1.5, DupFactor: 1, StructuralScore: 1.5,
	},
	{
		Word: "ox", Length: 2,
		WrongFreqRaw:  difficulty.MetricAbsent,
		WrongCoverage: difficulty.MetricAbsent,
		WrongInfoGain: difficulty.MetricAbsent,
		RareScore:     3.25, DupFactor: 1, StructuralScore: 3.25,
	},
}

func TestReportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.tsv")
	require.NoError(t, WriteReport(testRecords, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(reportHeader, "\t"), lines[0])
	assert.Equal(t, "cat\t3\t2\t1\t0\t1.500\t1.000\t1.500", lines[1])
	// Absent metrics round-trip through empty cells.
	assert.Equal(t, "ox\t2\t\t\t\t3.250\t1.000\t3.250", lines[2])

	records, err := ReadReport(path)
	require.NoError(t, err)
	assert.Equal(t, testRecords, records)
}

func TestWriteBinned(t *testing.T) {
	rows, err := difficulty.Bin(testRecords[:1], difficulty.MetricWrongCoverage, 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "binned.tsv")
	require.NoError(t, WriteBinned(rows, difficulty.MetricWrongCoverage, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "word\twrong_coverage\ttier\ncat\t1\t1\n", string(raw))
}

func TestWriteSnippet(t *testing.T) {
	rows := []difficulty.TierRow{
		{Word: "cat", Value: 1, Tier: 1},
		{Word: "zephyr", Value: 7, Tier: 5},
	}
	path := filepath.Join(t.TempDir(), "reclassified.go")
	require.NoError(t, WriteSnippet(rows, difficulty.MetricWrongCoverage, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	snippet := string(raw)
	assert.Contains(t, snippet, "package dataset")
	assert.Contains(t, snippet, "var ReclassifiedWords = []WordEntry{")
	assert.Contains(t, snippet, `{Word: "cat", Tier: 1},`)
	assert.Contains(t, snippet, `{Word: "zephyr", Tier: 5},`)
}
