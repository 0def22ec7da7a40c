package simulation

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates reports across runs.
type Summary struct {
	Runs               int     `json:"runs" yaml:"runs"`
	MeanActual         float64 `json:"mean_actual" yaml:"mean_actual"`
	MeanCounterfactual float64 `json:"mean_counterfactual" yaml:"mean_counterfactual"`
	MeanReduction      float64 `json:"mean_reduction" yaml:"mean_reduction"`
	StdDevReduction    float64 `json:"stddev_reduction" yaml:"stddev_reduction"`
	MinReduction       float64 `json:"min_reduction" yaml:"min_reduction"`
	MaxReduction       float64 `json:"max_reduction" yaml:"max_reduction"`
}

// Summarize computes run statistics. The standard deviation is 0 for fewer
// than two reports; an empty input yields a zero Summary.
func Summarize(reports []*Report) Summary {
	var (
		actual         []float64
		counterfactual []float64
		reduction      []float64
	)
	for _, r := range reports {
		if r == nil {
			continue
		}
		actual = append(actual, float64(r.Actual))
		counterfactual = append(counterfactual, float64(r.Counterfactual))
		reduction = append(reduction, r.Reduction)
	}

	s := Summary{Runs: len(reduction)}
	if s.Runs == 0 {
		return s
	}

	s.MeanActual = stat.Mean(actual, nil)
	s.MeanCounterfactual = stat.Mean(counterfactual, nil)
	if s.Runs > 1 {
		s.MeanReduction, s.StdDevReduction = stat.MeanStdDev(reduction, nil)
	} else {
		s.MeanReduction = reduction[0]
	}
	s.MinReduction = floats.Min(reduction)
	s.MaxReduction = floats.Max(reduction)
	return s
}
