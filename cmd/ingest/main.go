// Ingests the raw Wolfram hangman simulation data into a per-word TSV and
// a plain wordlist for the difficulty pipeline.
package main

import (
	"os"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MattFisher/hangman-bench/internal/dataset"
)

type Config struct {
	input       string
	output      string
	wordlistOut string
	downloadURL string
	debug       bool
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("ingest", flag.ContinueOnError)
	fs.StringVar(&c.input, "input", "SimulationData.txt", "Path to SimulationData.txt; downloaded if missing")
	fs.StringVar(&c.output, "output", "SimulationData_parsed.tsv", "Path to the parsed TSV output")
	fs.StringVar(&c.wordlistOut, "wordlist", "wordlist.txt", "Path to the extracted wordlist output")
	fs.StringVar(&c.downloadURL, "url", dataset.SimulationZipURL, "Source archive URL")
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
	log.Info().Interface("config", cfg).Msg("ingest-started")

	if _, err := os.Stat(cfg.input); os.IsNotExist(err) {
		if err := dataset.DownloadSimulation(cfg.downloadURL, cfg.input); err != nil {
			log.Fatal().Err(err).Msg("download failed")
		}
	}

	f, err := os.Open(cfg.input)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open input")
	}
	entries, err := dataset.ParseSimulation(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("parse failed")
	}
	if err := dataset.WriteSimulationTSV(entries, cfg.output); err != nil {
		log.Fatal().Err(err).Msg("cannot write parsed TSV")
	}
	words := dataset.SimulationWords(entries)
	if err := dataset.WriteWordlist(words, cfg.wordlistOut); err != nil {
		log.Fatal().Err(err).Msg("cannot write wordlist")
	}
	log.Info().Int("entries", len(entries)).Int("words", len(words)).
		Str("output", cfg.output).Str("wordlist", cfg.wordlistOut).
		Msg("ingest-done")
}
