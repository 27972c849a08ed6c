package policies

import (
	"github.com/zeu5/robby-rl/types"
	"golang.org/x/exp/rand"
)

// QLearningPolicy is an epsilon-greedy policy over a QTable learnt with one-step temporal differences
type QLearningPolicy struct {
	qTable *QTable
	// learning rate
	eta float64
	// discount factor
	gamma float64
	rand  *rand.Rand
}

var _ types.Policy = &QLearningPolicy{}

func NewQLearningPolicy(states, actions int, eta, gamma float64, r *rand.Rand) *QLearningPolicy {
	return &QLearningPolicy{
		qTable: NewQTable(states, actions),
		eta:    eta,
		gamma:  gamma,
		rand:   r,
	}
}

// QTable is the live table of the policy
func (q *QLearningPolicy) QTable() *QTable {
	return q.qTable
}

// NextAction explores uniformly with probability epsilon, otherwise takes the highest valued action.
// Among equal values the first action in the list wins.
func (q *QLearningPolicy) NextAction(_ int, state types.State, actions []types.Action, epsilon float64) types.Action {
	if epsilon > 0 && q.rand.Float64() < epsilon {
		i := q.rand.Intn(len(actions))
		return actions[i]
	}

	best := actions[0]
	bestVal := q.qTable.Get(state.Index(), best.Index())
	for _, a := range actions[1:] {
		if val := q.qTable.Get(state.Index(), a.Index()); val > bestVal {
			best = a
			bestVal = val
		}
	}
	return best
}

// Update moves q[s,a] towards reward + gamma * max_a' q[s',a'] by a factor eta
func (q *QLearningPolicy) Update(state types.State, action types.Action, reward float64, nextState types.State) {
	s := state.Index()
	a := action.Index()
	_, nextStateVal := q.qTable.Max(nextState.Index())
	curVal := q.qTable.Get(s, a)

	newVal := curVal + q.eta*(reward+q.gamma*nextStateVal-curVal)
	q.qTable.Set(s, a, newVal)
}

// TDError is the difference between the update target and the current value
func (q *QLearningPolicy) TDError(state types.State, action types.Action, reward float64, nextState types.State) float64 {
	_, nextStateVal := q.qTable.Max(nextState.Index())
	return reward + q.gamma*nextStateVal - q.qTable.Get(state.Index(), action.Index())
}
