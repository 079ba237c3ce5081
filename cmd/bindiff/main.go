// Bins a difficulty report into quantile tiers by a chosen wrong-guess
// metric, optionally emitting a Go snippet for the dataset module.
package main

import (
	"os"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MattFisher/hangman-bench/internal/dataset"
	"github.com/MattFisher/hangman-bench/internal/difficulty"
)

type Config struct {
	input    string
	metric   string
	fallback string
	tiers    int
	output   string
	snippet  string
	debug    bool
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("bindiff", flag.ContinueOnError)
	fs.StringVar(&c.input, "input", "difficulty_report.tsv", "Path to the difficulty report TSV")
	fs.StringVar(&c.metric, "metric", difficulty.MetricWrongCoverage, "Metric column to bin by")
	fs.StringVar(&c.fallback, "fallback-metric", difficulty.MetricWrongFreqRaw, "Metric column to fall back to when the primary was never simulated")
	fs.IntVar(&c.tiers, "tiers", difficulty.DefaultTiers, "Number of difficulty tiers")
	fs.StringVar(&c.output, "output", "difficulty_binned.tsv", "Path to the binned TSV")
	fs.StringVar(&c.snippet, "snippet", "", "Optional path for a Go WordEntry snippet")
	fs.BoolVar(&c.debug, "debug", false, "debug logging on")
	return fs.Parse(args)
}

func main() {
	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad flags")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Info().Interface("config", cfg).Msg("bindiff-started")

	records, err := dataset.ReadReport(cfg.input)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load report")
	}
	// Binning validates the metric before anything is written, so a bad
	// key never leaves partial output behind.
	rows, err := difficulty.BinFallback(records, cfg.metric, cfg.fallback, cfg.tiers)
	if err != nil {
		log.Fatal().Err(err).Msg("binning failed")
	}
	if err := dataset.WriteBinned(rows, cfg.metric, cfg.output); err != nil {
		log.Fatal().Err(err).Msg("cannot write binned TSV")
	}
	if cfg.snippet != "" {
		if err := dataset.WriteSnippet(rows, cfg.metric, cfg.snippet); err != nil {
			log.Fatal().Err(err).Msg("cannot write snippet")
		}
	}
	log.Info().Int("rows", len(rows)).Int("tiers", cfg.tiers).
		Str("metric", cfg.metric).Str("output", cfg.output).
		Msg("bindiff-done")
}
