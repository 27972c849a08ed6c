package policies

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// QTable is a dense table of values indexed by state and action.
// It is allocated once and never grows.
type QTable struct {
	states  int
	actions int
	table   []float64
}

// NewQTable creates a zeroed table
func NewQTable(states, actions int) *QTable {
	return &QTable{
		states:  states,
		actions: actions,
		table:   make([]float64, states*actions),
	}
}

func (q *QTable) States() int {
	return q.states
}

func (q *QTable) Actions() int {
	return q.actions
}

func (q *QTable) Get(state, action int) float64 {
	return q.table[state*q.actions+action]
}

func (q *QTable) Set(state, action int, val float64) {
	q.table[state*q.actions+action] = val
}

func (q *QTable) row(state int) []float64 {
	return q.table[state*q.actions : (state+1)*q.actions]
}

// Row returns a copy of the values of the state
func (q *QTable) Row(state int) []float64 {
	out := make([]float64, q.actions)
	copy(out, q.row(state))
	return out
}

// Max returns the best action of the state and its value.
// Ties go to the lowest action index.
func (q *QTable) Max(state int) (int, float64) {
	row := q.row(state)
	i := floats.MaxIdx(row)
	return i, row[i]
}

// Finite is false when any value is NaN or infinite
func (q *QTable) Finite() bool {
	for _, v := range q.table {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
