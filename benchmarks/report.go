package benchmarks

import (
	"path/filepath"
	"strconv"

	"github.com/zeu5/robby-rl/grid"
	"github.com/zeu5/robby-rl/policies"
	"github.com/zeu5/robby-rl/types"
	"github.com/zeu5/robby-rl/util"
)

const (
	EpisodesFile = "episodes.csv"
	WeightsFile  = "weights.csv"
	PlotFile     = "rewards.png"
	ChartFile    = "rewards.html"
	HeatMapFile  = "visits.png"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StageEpisodes stages one row per episode with its total reward
func StageEpisodes(outDir string, records []types.EpisodeRecord) (*util.StagedFile, error) {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{strconv.Itoa(r.Episode), formatFloat(r.TotalReward)}
	}
	return util.StageCSV(filepath.Join(outDir, EpisodesFile), []string{"episode", "total_reward"}, rows)
}

// StageWeights stages one row per percept, the percept components followed by one weight per action
func StageWeights(outDir string, table *policies.QTable) (*util.StagedFile, error) {
	header := []string{"percept", "current", "north", "south", "east", "west"}
	for _, a := range grid.AllMovements {
		header = append(header, a.Hash())
	}

	rows := make([][]string, table.States())
	for s := 0; s < table.States(); s++ {
		p := grid.DecodePercept(s)
		row := []string{
			strconv.Itoa(s),
			p.Current.String(),
			p.North.String(),
			p.South.String(),
			p.East.String(),
			p.West.String(),
		}
		for _, w := range table.Row(s) {
			row = append(row, formatFloat(w))
		}
		rows[s] = row
	}
	return util.StageCSV(filepath.Join(outDir, WeightsFile), header, rows)
}

// WriteReports writes episodes.csv and weights.csv together, a failure leaves neither in place
func WriteReports(outDir string, records []types.EpisodeRecord, table *policies.QTable, extra func() error) error {
	episodes, err := StageEpisodes(outDir, records)
	if err != nil {
		return err
	}
	weights, err := StageWeights(outDir, table)
	if err != nil {
		episodes.Discard()
		return err
	}
	if extra != nil {
		if err := extra(); err != nil {
			episodes.Discard()
			weights.Discard()
			return err
		}
	}
	return util.Commit(episodes, weights)
}

func rewardSeries(name string, records []types.EpisodeRecord) []util.Series {
	rewards := types.Rewards(records)
	window := max(1, len(rewards)/50)
	return []util.Series{
		{Name: name, Values: rewards},
		{Name: name + " (moving average " + strconv.Itoa(window) + ")", Values: types.MovingAverage(rewards, window)},
	}
}
