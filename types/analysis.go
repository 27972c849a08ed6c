package types

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Rewards extracts the total rewards of the records
func Rewards(records []EpisodeRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.TotalReward
	}
	return out
}

// LearningSummary compares the start and the end of a run
type LearningSummary struct {
	Episodes  int
	Mean      float64
	StdDev    float64
	FirstMean float64 // mean over the first fraction of the episodes
	LastMean  float64 // mean over the last fraction of the episodes
	Best      float64
	Worst     float64
}

// Improved is true when the end of the run did better than the start
func (s LearningSummary) Improved() bool {
	return s.LastMean > s.FirstMean
}

// Summarize computes the summary, fraction is the share of episodes
// averaged at each end of the run (at least one episode).
func Summarize(records []EpisodeRecord, fraction float64) LearningSummary {
	summary := LearningSummary{Episodes: len(records)}
	if len(records) == 0 {
		return summary
	}
	rewards := Rewards(records)

	window := int(math.Round(float64(len(rewards)) * fraction))
	if window < 1 {
		window = 1
	}
	if window > len(rewards) {
		window = len(rewards)
	}

	summary.Mean = stat.Mean(rewards, nil)
	if len(rewards) > 1 {
		summary.StdDev = stat.StdDev(rewards, nil)
	}
	summary.FirstMean = stat.Mean(rewards[:window], nil)
	summary.LastMean = stat.Mean(rewards[len(rewards)-window:], nil)
	summary.Best = rewards[0]
	summary.Worst = rewards[0]
	for _, r := range rewards[1:] {
		summary.Best = math.Max(summary.Best, r)
		summary.Worst = math.Min(summary.Worst, r)
	}
	return summary
}

// MovingAverage of the values over a trailing window. The first entries average what is available.
func MovingAverage(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(values))
	for i := range values {
		from := i - window + 1
		if from < 0 {
			from = 0
		}
		out[i] = stat.Mean(values[from:i+1], nil)
	}
	return out
}
