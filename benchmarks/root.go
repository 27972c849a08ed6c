package benchmarks

import (
	"github.com/spf13/cobra"
)

// GetRootCommand builds the command line, running it trains the robot and writes the reports
func GetRootCommand() *cobra.Command {
	config := DefaultConfig()

	rootCommand := &cobra.Command{
		Use:           "robby",
		Short:         "Train a can collecting robot with tabular Q-learning",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			stop, err := startProfiling(config.CPUProfile)
			if err != nil {
				return err
			}
			defer stop()
			_, err = Run(config, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return err
		},
	}

	flags := rootCommand.Flags()
	// environment
	flags.IntVar(&config.GridDimensions, "grid-dimensions", config.GridDimensions, "Length of each side of the square grid")
	flags.IntVar(&config.InitialCanCount, "initial-can-count", config.InitialCanCount, "Number of cans placed on the grid at the start of each episode")
	// execution
	flags.IntVar(&config.Episodes, "n-episodes", config.Episodes, "Number of episodes")
	flags.IntVar(&config.Horizon, "m-steps", config.Horizon, "Number of steps in each episode")
	flags.Uint64Var(&config.Seed, "seed", config.Seed, "Seed of the random source, equal seeds reproduce equal runs")
	// learning
	flags.Float64Var(&config.Eta, "eta", config.Eta, "Learning rate")
	flags.Float64Var(&config.Gamma, "gamma", config.Gamma, "Discount factor")
	flags.Float64Var(&config.Epsilon, "epsilon", config.Epsilon, "Initial exploration rate")
	flags.Float64Var(&config.EpsilonDecay, "epsilon-decay", config.EpsilonDecay, "Decrease of the exploration rate every epsilon-decay-every episodes")
	flags.IntVar(&config.EpsilonDecayEvery, "epsilon-decay-every", config.EpsilonDecayEvery, "Episodes between two decreases of the exploration rate")
	flags.Float64Var(&config.EpsilonMin, "epsilon-min", config.EpsilonMin, "Lower bound of the exploration rate")
	flags.StringVar(&config.EpsilonSchedule, "epsilon-schedule", config.EpsilonSchedule, "Exploration schedule, step or linear (from epsilon to epsilon-min over all the episodes)")
	// output
	flags.StringVarP(&config.OutDir, "out", "o", config.OutDir, "Directory the reports are written to")
	flags.BoolVar(&config.Plot, "plot", false, "Save the learning curve as rewards.png")
	flags.BoolVar(&config.Chart, "chart", false, "Save the learning curve as rewards.html")
	flags.BoolVar(&config.HeatMap, "heatmap", false, "Save the robot visits as visits.png")
	flags.BoolVar(&config.ShowGrid, "show-grid", false, "Print the grid left after the last episode")
	flags.BoolVar(&config.NoColor, "no-color", false, "Print the grid without colours, they are also off when the output is not a terminal")
	flags.BoolVar(&config.Baseline, "baseline", false, "Also run a random policy and compare")
	flags.BoolVarP(&config.Quiet, "quiet", "q", false, "Do not print progress")
	flags.StringVar(&config.CPUProfile, "cpuprofile", "", "Write a CPU profile of the run to the file")
	return rootCommand
}
