package types

import (
	"golang.org/x/exp/rand"
)

type Policy interface {
	// NextAction picks one of the actions, exploring with probability epsilon
	NextAction(step int, state State, actions []Action, epsilon float64) Action
	// Update learns from a single transition
	Update(state State, action Action, reward float64, nextState State)
}

// Schedule returns the exploration rate to use for an episode
type Schedule interface {
	Rate(episode int) float64
}

type RandomPolicy struct {
	rand *rand.Rand
}

var _ Policy = &RandomPolicy{}

func NewRandomPolicy(r *rand.Rand) *RandomPolicy {
	return &RandomPolicy{
		rand: r,
	}
}

func (r *RandomPolicy) NextAction(_ int, _ State, actions []Action, _ float64) Action {
	i := r.rand.Intn(len(actions))
	return actions[i]
}

func (r *RandomPolicy) Update(_ State, _ Action, _ float64, _ State) {}
