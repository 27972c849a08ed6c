package policies

import (
	"math"
	"testing"
)

func TestConstantSchedule(t *testing.T) {
	s := ConstantSchedule(0.1)
	for _, e := range []int{0, 1, 4999} {
		if s.Rate(e) != 0.1 {
			t.Errorf("rate at %d is %v", e, s.Rate(e))
		}
	}
}

func TestStepDecaySchedule(t *testing.T) {
	s := &StepDecaySchedule{Start: 0.1, Step: 0.01, Every: 50, Min: 0.02}
	cases := map[int]float64{
		0:    0.1,
		49:   0.1,
		50:   0.09,
		149:  0.08,
		1000: 0.02,
	}
	for episode, expected := range cases {
		if got := s.Rate(episode); math.Abs(got-expected) > 1e-9 {
			t.Errorf("rate at %d is %v, expected %v", episode, got, expected)
		}
	}
}

func TestLinearSchedule(t *testing.T) {
	s := &LinearSchedule{Start: 1, End: 0, Episodes: 10}
	if s.Rate(0) != 1 {
		t.Errorf("start rate %v", s.Rate(0))
	}
	if math.Abs(s.Rate(5)-0.5) > 1e-9 {
		t.Errorf("middle rate %v", s.Rate(5))
	}
	if s.Rate(10) != 0 || s.Rate(100) != 0 {
		t.Errorf("rate after the schedule should stay at the end")
	}
}
