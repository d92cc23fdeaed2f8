package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary - сводка по серии партий.
type Summary struct {
	Runs         int
	Won          int
	Lost         int
	Unfinished   int
	MeanScore    float64
	StdDevScore  float64
	P10Score     float64
	P50Score     float64
	P90Score     float64
	MeanSteps    float64
	MeanAccuracy float64
}

func Summarize(records []RunRecord) Summary {
	s := Summary{Runs: len(records)}
	if len(records) == 0 {
		return s
	}

	scores := make([]float64, 0, len(records))
	steps := make([]float64, 0, len(records))
	accuracy := make([]float64, 0, len(records))
	for _, r := range records {
		switch r.Status {
		case "WON":
			s.Won++
		case "LOST":
			s.Lost++
		default:
			s.Unfinished++
		}
		scores = append(scores, float64(r.Score))
		steps = append(steps, float64(r.Steps))
		accuracy = append(accuracy, r.Accuracy)
	}

	s.MeanScore, s.StdDevScore = stat.MeanStdDev(scores, nil)
	if len(scores) < 2 {
		s.StdDevScore = 0
	}
	sort.Float64s(scores)
	s.P10Score = stat.Quantile(0.1, stat.Empirical, scores, nil)
	s.P50Score = stat.Quantile(0.5, stat.Empirical, scores, nil)
	s.P90Score = stat.Quantile(0.9, stat.Empirical, scores, nil)
	s.MeanSteps = stat.Mean(steps, nil)
	s.MeanAccuracy = stat.Mean(accuracy, nil)
	return s
}
