package benchmarks

import (
	"errors"
	"fmt"
	"math"
)

// Exploration schedules selectable with --epsilon-schedule.
// The step schedule stays constant without decay, the linear one goes from epsilon to epsilon-min over all the episodes.
const (
	StepSchedule   = "step"
	LinearSchedule = "linear"
)

// ErrInvalidFlag is wrapped by every validation error of the configuration
var ErrInvalidFlag = errors.New("invalid flag")

// Config of a training run
type Config struct {
	// environment
	GridDimensions  int
	InitialCanCount int

	// execution
	Episodes int // number of episodes
	Horizon  int // number of steps of each episode
	Seed     uint64

	// learning
	Eta               float64
	Gamma             float64
	Epsilon           float64
	EpsilonDecay      float64 // decrease of epsilon every EpsilonDecayEvery episodes
	EpsilonDecayEvery int
	EpsilonMin        float64
	EpsilonSchedule   string // step or linear

	// output
	OutDir     string
	Plot       bool   // learning curve png
	Chart      bool   // learning curve html
	HeatMap    bool   // visits heat map png
	ShowGrid   bool   // print the grid left after the last episode
	NoColor    bool   // never colour the printed grid
	Baseline   bool   // also run a random policy for comparison
	Quiet      bool
	CPUProfile string // write a cpu profile of the run to this file
}

func DefaultConfig() *Config {
	return &Config{
		GridDimensions:    10,
		InitialCanCount:   50,
		Episodes:          5000,
		Horizon:           200,
		Seed:              1,
		Eta:               0.2,
		Gamma:             0.9,
		Epsilon:           0.1,
		EpsilonDecay:      0,
		EpsilonDecayEvery: 50,
		EpsilonMin:        0,
		EpsilonSchedule:   StepSchedule,
		OutDir:            ".",
	}
}

func invalid(flag string, format string, args ...interface{}) error {
	return fmt.Errorf("%w --%s: %s", ErrInvalidFlag, flag, fmt.Sprintf(format, args...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks the ranges of every parameter
func (c *Config) Validate() error {
	if c.GridDimensions < 1 {
		return invalid("grid-dimensions", "must be at least 1, got %d", c.GridDimensions)
	}
	if c.InitialCanCount < 0 || c.InitialCanCount > c.GridDimensions*c.GridDimensions {
		return invalid("initial-can-count", "must be within [0, %d], got %d", c.GridDimensions*c.GridDimensions, c.InitialCanCount)
	}
	if c.Episodes < 1 {
		return invalid("n-episodes", "must be at least 1, got %d", c.Episodes)
	}
	if c.Horizon < 1 {
		return invalid("m-steps", "must be at least 1, got %d", c.Horizon)
	}
	if !finite(c.Eta) || c.Eta <= 0 || c.Eta > 1 {
		return invalid("eta", "must be within (0, 1], got %v", c.Eta)
	}
	if !finite(c.Gamma) || c.Gamma < 0 || c.Gamma > 1 {
		return invalid("gamma", "must be within [0, 1], got %v", c.Gamma)
	}
	if !finite(c.Epsilon) || c.Epsilon < 0 || c.Epsilon > 1 {
		return invalid("epsilon", "must be within [0, 1], got %v", c.Epsilon)
	}
	if !finite(c.EpsilonMin) || c.EpsilonMin < 0 || c.EpsilonMin > 1 {
		return invalid("epsilon-min", "must be within [0, 1], got %v", c.EpsilonMin)
	}
	if !finite(c.EpsilonDecay) || c.EpsilonDecay < 0 {
		return invalid("epsilon-decay", "must not be negative, got %v", c.EpsilonDecay)
	}
	if c.EpsilonDecayEvery < 1 {
		return invalid("epsilon-decay-every", "must be at least 1, got %d", c.EpsilonDecayEvery)
	}
	if c.EpsilonSchedule != StepSchedule && c.EpsilonSchedule != LinearSchedule {
		return invalid("epsilon-schedule", "must be %s or %s, got %q", StepSchedule, LinearSchedule, c.EpsilonSchedule)
	}
	if c.OutDir == "" {
		return invalid("out", "must not be empty")
	}
	return nil
}
