package grid

import "github.com/zeu5/robby-rl/types"

// Movement is one of the actions available to the robot.
// The numeric value is the column of the action in the policy table.
type Movement int

const (
	MoveNorth Movement = iota
	MoveSouth
	MoveEast
	MoveWest
	PickUp
)

// NumMovements is the size of the action space
const NumMovements = 5

var _ types.Action = MoveNorth

func (m Movement) Hash() string {
	switch m {
	case MoveNorth:
		return "N"
	case MoveSouth:
		return "S"
	case MoveEast:
		return "E"
	case MoveWest:
		return "W"
	case PickUp:
		return "P"
	}
	return "?"
}

func (m Movement) Index() int {
	return int(m)
}

func (m Movement) String() string {
	return m.Hash()
}

// delta returns the change in row and column for a move. PickUp does not move.
func (m Movement) delta() (int, int) {
	switch m {
	case MoveNorth:
		return -1, 0
	case MoveSouth:
		return 1, 0
	case MoveEast:
		return 0, 1
	case MoveWest:
		return 0, -1
	}
	return 0, 0
}

var (
	// AllMovements in index order. Greedy selection walks this order, so ties go to the earliest entry.
	AllMovements []types.Action = []types.Action{
		MoveNorth,
		MoveSouth,
		MoveEast,
		MoveWest,
		PickUp,
	}
)
