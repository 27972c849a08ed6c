package benchmarks

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/zeu5/robby-rl/grid"
	"github.com/zeu5/robby-rl/policies"
	"github.com/zeu5/robby-rl/types"
	"github.com/zeu5/robby-rl/util"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// share of episodes averaged at each end of the run for the summary
const summaryFraction = 0.1

// Result of a training run
type Result struct {
	Records  []types.EpisodeRecord
	Summary  types.LearningSummary
	Outcomes []grid.Outcomes
	Weights  *policies.QTable

	// only with the baseline enabled
	BaselineRecords []types.EpisodeRecord
	BaselineSummary types.LearningSummary
}

func schedule(config *Config) types.Schedule {
	if config.EpsilonSchedule == LinearSchedule {
		return &policies.LinearSchedule{
			Start:    config.Epsilon,
			End:      config.EpsilonMin,
			Episodes: config.Episodes,
		}
	}
	if config.EpsilonDecay > 0 {
		return &policies.StepDecaySchedule{
			Start: config.Epsilon,
			Step:  config.EpsilonDecay,
			Every: config.EpsilonDecayEvery,
			Min:   config.EpsilonMin,
		}
	}
	return policies.ConstantSchedule(config.Epsilon)
}

func canConfig(config *Config) grid.CanConfig {
	return grid.CanConfig{
		Size:    config.GridDimensions,
		Cans:    config.InitialCanCount,
		Rewards: grid.DefaultRewards(),
	}
}

// Run trains the robot and writes the reports to config.OutDir.
// Status lines go to out, the live progress to progress.
func Run(config *Config, out, progress io.Writer) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := util.EnsureDir(config.OutDir); err != nil {
		return nil, err
	}

	// a single source drives the grid and the exploration
	r := rand.New(rand.NewSource(config.Seed))
	env := grid.NewCanEnvironment(canConfig(config), r)
	policy := policies.NewQLearningPolicy(grid.NumPercepts, grid.NumMovements, config.Eta, config.Gamma, r)

	runConfig := &types.RunConfig{
		Episodes: config.Episodes,
		Horizon:  config.Horizon,
		Schedule: schedule(config),
	}
	if !config.Quiet {
		runConfig.Printer = types.NewTerminalPrinter(progress, config.Episodes/100)
	}

	c := types.NewComparison(runConfig)

	experiment := types.NewExperiment("QLearning", policy, env)
	outcomes := grid.NewOutcomeAnalyzer()
	experiment.AddAnalysis("Outcomes", outcomes, types.NoopReporter())
	if config.HeatMap {
		experiment.AddAnalysis("Visits", grid.NewVisitsAnalyzer(config.GridDimensions), grid.VisitsHeatMapReporter(filepath.Join(config.OutDir, HeatMapFile)))
	}
	c.AddExperiment(experiment)

	if config.Baseline {
		// separate source so the learning run does not depend on the baseline
		br := rand.New(rand.NewSource(config.Seed + 1))
		c.AddExperiment(types.NewExperiment("Random", types.NewRandomPolicy(br), grid.NewCanEnvironment(canConfig(config), br)))
	}

	fmt.Fprintf(out, "Running %d episodes of %d steps on a %dx%d grid with %d cans\n",
		config.Episodes, config.Horizon, config.GridDimensions, config.GridDimensions, config.InitialCanCount)
	results, err := c.Run()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Records:  results[0],
		Summary:  types.Summarize(results[0], summaryFraction),
		Outcomes: outcomes.DataSet().([]grid.Outcomes),
		Weights:  policy.QTable(),
	}
	if config.Baseline {
		result.BaselineRecords = results[1]
		result.BaselineSummary = types.Summarize(results[1], summaryFraction)
	}

	series := rewardSeries(experiment.Name, result.Records)
	if config.Baseline {
		series = append(series, rewardSeries("Random", result.BaselineRecords)...)
	}
	// the learning curves are written before the csv files are moved into place
	curves := func() error {
		if config.Plot {
			if err := util.PlotSeries(filepath.Join(config.OutDir, PlotFile), "Reward per episode", "Total reward", series...); err != nil {
				return err
			}
		}
		if config.Chart {
			if err := util.ChartSeries(filepath.Join(config.OutDir, ChartFile), "Reward per episode", series...); err != nil {
				return err
			}
		}
		return nil
	}
	if err := WriteReports(config.OutDir, result.Records, result.Weights, curves); err != nil {
		return nil, err
	}

	if config.ShowGrid {
		fmt.Fprintf(out, "Grid after the last episode:\n%s\n", env.Render(useColors(out, config.NoColor)))
	}
	printSummary(out, experiment.Name, result.Summary)
	printOutcomes(out, result.Outcomes)
	if config.Baseline {
		printSummary(out, "Random", result.BaselineSummary)
	}
	return result, nil
}

// useColors is true only when out is a terminal
func useColors(out io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printSummary(out io.Writer, name string, s types.LearningSummary) {
	fmt.Fprintf(out, "%s: mean reward %.2f (std %.2f), first %.0f%% %.2f, last %.0f%% %.2f, best %.0f, worst %.0f\n",
		name, s.Mean, s.StdDev, summaryFraction*100, s.FirstMean, summaryFraction*100, s.LastMean, s.Best, s.Worst)
}

func printOutcomes(out io.Writer, outcomes []grid.Outcomes) {
	if len(outcomes) == 0 {
		return
	}
	window := max(1, int(float64(len(outcomes))*summaryFraction))
	cans := make([]float64, 0, window)
	bumps := make([]float64, 0, window)
	for _, o := range outcomes[len(outcomes)-window:] {
		cans = append(cans, float64(o.CansCollected))
		bumps = append(bumps, float64(o.WallBumps))
	}
	fmt.Fprintf(out, "Last %d episodes: %.2f cans collected, %.2f wall bumps per episode\n",
		window, stat.Mean(cans, nil), stat.Mean(bumps, nil))
}
