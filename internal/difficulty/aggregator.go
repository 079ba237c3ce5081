package difficulty

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/MattFisher/hangman-bench/internal/hangman"
)

// minIncidence clamps letter probabilities away from zero before taking
// logs, for letters never seen in a length bin.
const minIncidence = 1e-9

// MetricAbsent marks a wrong-guess column that could not be simulated
// because the dictionary has no words of the target's length.
const MetricAbsent = -1

// A Record holds every difficulty metric for one dataset word. Records are
// immutable once computed.
type Record struct {
	Word            string
	Length          int
	WrongFreqRaw    int
	WrongCoverage   int
	WrongInfoGain   int
	RareScore       float64
	DupFactor       float64
	StructuralScore float64
}

// An Aggregator runs the full metric suite over dataset words. Dict and
// Incidence are shared read-only state; Workers bounds the per-word
// fan-out (1 means fully sequential).
type Aggregator struct {
	Dict      *hangman.Dictionary
	Incidence IncidenceTable
	MaxWrong  int
	Workers   int

	// Progress, if set, is called once per finished word, possibly from
	// multiple goroutines.
	Progress func()
}

// Run produces one Record per word, in input order. Per-word scoring is
// independent, so words are fanned out across Workers goroutines; records
// land in an index-addressed slice to keep the ordering.
func (a *Aggregator) Run(words []string) ([]Record, error) {
	records := make([]Record, len(words))
	g := new(errgroup.Group)
	workers := a.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)
	for i, w := range words {
		g.Go(func() error {
			rec, err := a.scoreWord(w)
			if err != nil {
				return err
			}
			records[i] = rec
			if a.Progress != nil {
				a.Progress()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (a *Aggregator) scoreWord(w string) (Record, error) {
	if !hangman.ValidWord(w) {
		return Record{}, fmt.Errorf("%w: %q", hangman.ErrMalformedWord, w)
	}
	rec := Record{
		Word:          w,
		Length:        len(w),
		WrongFreqRaw:  MetricAbsent,
		WrongCoverage: MetricAbsent,
		WrongInfoGain: MetricAbsent,
	}
	rec.RareScore, rec.DupFactor, rec.StructuralScore = a.structuralScores(w)

	dict := a.Dict
	if len(dict.WordsOfLength(len(w))) == 0 {
		return rec, nil
	}
	// The simulator's never-empty-pool invariant requires the target to be
	// a member of its own length bin; extend the view for dataset words
	// missing from the dictionary.
	if !dict.Contains(w) {
		extended := append([]string{}, dict.WordsOfLength(len(w))...)
		var err error
		dict, err = hangman.NewDictionary(append(extended, w))
		if err != nil {
			return Record{}, err
		}
	}

	sim := &hangman.Simulator{Dict: dict, MaxWrong: a.MaxWrong}
	for _, strategy := range hangman.Strategies() {
		res, err := sim.Play(w, strategy)
		if err != nil {
			return Record{}, err
		}
		switch strategy {
		case hangman.RawFrequency:
			rec.WrongFreqRaw = res.Wrong
		case hangman.Coverage:
			rec.WrongCoverage = res.Wrong
		case hangman.InfoGain:
			rec.WrongInfoGain = res.Wrong
		}
	}
	return rec, nil
}

// structuralScores computes the static metrics for w:
//
//	rare_score = sum over distinct letters of -ln(p(letter | length))
//	dup_factor = length / distinct letter count
//	structural_score = rare_score / dup_factor
//
// rare_score grows with letter rarity in the reference dictionary and
// dup_factor with repeated-letter density. The exact constants are tunable
// defaults; monotonicity is the contract.
func (a *Aggregator) structuralScores(w string) (rare, dup, structural float64) {
	letters := hangman.WordLetters(w)
	probs := a.Incidence[len(w)]
	for c := byte('a'); c <= 'z'; c++ {
		if !letters.Has(c) {
			continue
		}
		p := probs[c-'a']
		if p < minIncidence {
			p = minIncidence
		}
		rare -= math.Log(p)
	}
	dup = float64(len(w)) / float64(letters.Len())
	structural = rare / dup
	return rare, dup, structural
}
