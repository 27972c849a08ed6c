package types

import (
	"fmt"
)

// EpisodeRecord is the outcome of one episode
type EpisodeRecord struct {
	Episode     int
	TotalReward float64
}

// RunConfig configures a single run of an experiment
type RunConfig struct {
	Episodes int
	Horizon  int
	// exploration rate per episode, no exploration when nil
	Schedule Schedule
	// optional, receives a status line after every episode
	Printer *TerminalPrinter
}

// Generic Dataset that contains information after processing the traces
type DataSet interface{}

// Analyzer compresses the information in the traces to a DataSet
type Analyzer interface {
	// episode, trace
	Analyze(int, *Trace)
	// Resulting dataset
	DataSet() DataSet
}

// Reporter consumes the dataset of an analyzer once the run is over
type Reporter func(DataSet) error

func NoopReporter() Reporter {
	return func(DataSet) error { return nil }
}

type analysis struct {
	name     string
	analyzer Analyzer
	reporter Reporter
}

// Experiment encapsulates a policy, the environment it learns in and the analyses of its traces
type Experiment struct {
	Name        string
	policy      Policy
	environment Environment
	analyses    []analysis
}

// NewExperiment creates a new experiment instance
func NewExperiment(name string, policy Policy, environment Environment) *Experiment {
	return &Experiment{
		Name:        name,
		policy:      policy,
		environment: environment,
		analyses:    make([]analysis, 0),
	}
}

// AddAnalysis adds an analyzer fed with every episode trace and the reporter of its dataset.
// Reporters run in the order they are added.
func (e *Experiment) AddAnalysis(name string, analyzer Analyzer, reporter Reporter) {
	e.analyses = append(e.analyses, analysis{name: name, analyzer: analyzer, reporter: reporter})
}

// Run the experiment for the specified number of episodes.
// The policy is shared by all the episodes, a second call keeps training it.
func (e *Experiment) Run(config *RunConfig) ([]EpisodeRecord, error) {
	agent := NewAgent(&AgentConfig{
		Horizon:     config.Horizon,
		Policy:      e.policy,
		Environment: e.environment,
		Schedule:    config.Schedule,
	})

	records := make([]EpisodeRecord, 0, config.Episodes)
	for i := 0; i < config.Episodes; i++ {
		trace := agent.runEpisode(i)
		record := EpisodeRecord{Episode: i, TotalReward: trace.TotalReward()}
		records = append(records, record)

		for _, a := range e.analyses {
			a.analyzer.Analyze(i, trace)
		}

		if config.Printer != nil {
			config.Printer.Print(i+1, config.Episodes, fmt.Sprintf("Exp: %s, Episode: %d/%d, Reward: %.1f", e.Name, i+1, config.Episodes, record.TotalReward))
		}
	}
	if config.Printer != nil {
		config.Printer.Done()
	}

	for _, a := range e.analyses {
		if err := a.reporter(a.analyzer.DataSet()); err != nil {
			return records, fmt.Errorf("reporting %s: %w", a.name, err)
		}
	}
	return records, nil
}

// Comparison runs experiments one after the other and collects their records
type Comparison struct {
	Experiments []*Experiment
	config      *RunConfig
}

// NewComparison creates a comparison instance
func NewComparison(config *RunConfig) *Comparison {
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		config:      config,
	}
}

// Add experiments to compare
func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

// Run the comparison, the records are returned in the order the experiments were added
func (c *Comparison) Run() ([][]EpisodeRecord, error) {
	results := make([][]EpisodeRecord, len(c.Experiments))
	for i, e := range c.Experiments {
		records, err := e.Run(c.config)
		if err != nil {
			return nil, fmt.Errorf("experiment %s: %w", e.Name, err)
		}
		results[i] = records
	}
	return results, nil
}
