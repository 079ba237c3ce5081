package difficulty

import (
	"errors"
	"fmt"
	"sort"
)

// Metric keys accepted by Bin. They name the wrong-guess columns of a
// Record.
const (
	MetricWrongFreqRaw  = "wrong_freq_raw"
	MetricWrongCoverage = "wrong_coverage"
	MetricWrongInfoGain = "wrong_info_gain"
)

// ErrUnsupportedMetric is returned before any output is produced when the
// metric key does not name a wrong-guess column.
var ErrUnsupportedMetric = errors.New("difficulty: unsupported metric")

// DefaultTiers is the default tier count K.
const DefaultTiers = 5

// A TierRow assigns one word its difficulty tier for the chosen metric.
type TierRow struct {
	Word  string
	Value int
	Tier  int // 1..K
}

// MetricValue extracts the named wrong-guess column from r.
func MetricValue(r Record, metric string) (int, error) {
	switch metric {
	case MetricWrongFreqRaw:
		return r.WrongFreqRaw, nil
	case MetricWrongCoverage:
		return r.WrongCoverage, nil
	case MetricWrongInfoGain:
		return r.WrongInfoGain, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMetric, metric)
}

// Bin sorts records by metric ascending and assigns quantile tiers
// tier = ceil((rank+1)/N*K), so tier sizes differ by at most one. The sort
// is stable over the original input order, which makes tie handling, and
// therefore the whole assignment, reproducible across runs. Records whose
// metric is MetricAbsent were never simulated and are excluded rather than
// ranked below every real result. Rows are returned in rank order.
func Bin(records []Record, metric string, tiers int) ([]TierRow, error) {
	return BinFallback(records, metric, "", tiers)
}

// BinFallback bins like Bin, but a record whose primary metric is
// MetricAbsent falls back to the named metric before being excluded. An
// empty fallback disables the substitution.
func BinFallback(records []Record, metric, fallback string, tiers int) ([]TierRow, error) {
	if _, err := MetricValue(Record{}, metric); err != nil {
		return nil, err
	}
	if fallback != "" {
		if _, err := MetricValue(Record{}, fallback); err != nil {
			return nil, err
		}
	}
	if tiers < 1 {
		return nil, fmt.Errorf("difficulty: tier count must be positive, got %d", tiers)
	}
	var kept []int
	var values []int
	for i, r := range records {
		v, err := MetricValue(r, metric)
		if err != nil {
			return nil, err
		}
		if v == MetricAbsent && fallback != "" {
			v, err = MetricValue(r, fallback)
			if err != nil {
				return nil, err
			}
		}
		if v == MetricAbsent {
			continue
		}
		kept = append(kept, i)
		values = append(values, v)
	}
	order := make([]int, len(kept))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]] < values[order[j]]
	})

	n := len(kept)
	rows := make([]TierRow, n)
	for rank, idx := range order {
		rows[rank] = TierRow{
			Word:  records[kept[idx]].Word,
			Value: values[idx],
			Tier:  ((rank+1)*tiers + n - 1) / n,
		}
	}
	return rows, nil
}

// TierMap flattens rows into a word to tier lookup.
func TierMap(rows []TierRow) map[string]int {
	m := make(map[string]int, len(rows))
	for _, row := range rows {
		m[row.Word] = row.Tier
	}
	return m
}
