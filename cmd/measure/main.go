// Scores every dataset word by playing it to completion under each
// letter-selection strategy and writes the per-word difficulty report.
package main

import (
	"os"
	"runtime"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/MattFisher/hangman-bench/internal/dataset"
	"github.com/MattFisher/hangman-bench/internal/difficulty"
	"github.com/MattFisher/hangman-bench/internal/hangman"
)

type Config struct {
	datasetPath string
	wordlist    string
	output      string
	maxWrong    int
	workers     int
	debug       bool
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("measure", flag.ContinueOnError)
	fs.StringVar(&c.datasetPath, "dataset", "dataset.tsv", "TSV of words to score (word, language, difficulty)")
	fs.StringVar(&c.wordlist, "wordlist", "wordlist.txt", "Reference dictionary wordlist, one word per line")
	fs.StringVar(&c.output, "output", "difficulty_report.tsv", "Path to the report TSV")
	fs.IntVar(&c.maxWrong, "maxwrong", 10, "Maximum wrong guesses per simulated game")
	fs.IntVar(&c.workers, "workers", runtime.NumCPU(), "Concurrent word scorers")
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
	log.Info().Interface("config", cfg).Msg("measure-started")

	words, err := dataset.ReadWordlist(cfg.wordlist)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load wordlist")
	}
	dict, err := hangman.NewDictionary(words)
	if err != nil {
		log.Fatal().Err(err).Msg("malformed dictionary")
	}
	rows, err := dataset.ReadRows(cfg.datasetPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load dataset")
	}
	log.Info().Int("dictionary", dict.Size()).Int("dataset", len(rows)).Msg("inputs loaded")

	bar := progressbar.Default(int64(len(rows)))
	agg := &difficulty.Aggregator{
		Dict:      dict,
		Incidence: difficulty.BuildIncidence(dict),
		MaxWrong:  cfg.maxWrong,
		Workers:   cfg.workers,
		Progress:  func() { bar.Add(1) },
	}
	records, err := agg.Run(dataset.Words(rows))
	if err != nil {
		log.Fatal().Err(err).Msg("aggregation failed")
	}
	if err := dataset.WriteReport(records, cfg.output); err != nil {
		log.Fatal().Err(err).Msg("cannot write report")
	}
	log.Info().Int("rows", len(records)).Str("output", cfg.output).Msg("measure-done")
}
