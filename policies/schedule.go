package policies

import (
	"math"

	"github.com/zeu5/robby-rl/types"
)

// ConstantSchedule explores at the same rate in every episode
type ConstantSchedule float64

var _ types.Schedule = ConstantSchedule(0)

func (c ConstantSchedule) Rate(_ int) float64 {
	return float64(c)
}

// StepDecaySchedule starts at Start and decreases by Step every Every episodes, never going below Min
type StepDecaySchedule struct {
	Start float64
	Step  float64
	Every int
	Min   float64
}

var _ types.Schedule = &StepDecaySchedule{}

func (s *StepDecaySchedule) Rate(episode int) float64 {
	every := s.Every
	if every < 1 {
		every = 1
	}
	rate := s.Start - float64(episode/every)*s.Step
	return math.Max(rate, s.Min)
}

// LinearSchedule interpolates from Start to End over Episodes episodes and stays at End afterwards
type LinearSchedule struct {
	Start    float64
	End      float64
	Episodes int
}

var _ types.Schedule = &LinearSchedule{}

func (l *LinearSchedule) Rate(episode int) float64 {
	if l.Episodes <= 0 || episode >= l.Episodes {
		return l.End
	}
	frac := float64(episode) / float64(l.Episodes)
	return l.Start + frac*(l.End-l.Start)
}
