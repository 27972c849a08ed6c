package grid

import (
	"fmt"

	"github.com/zeu5/robby-rl/types"
	"golang.org/x/exp/rand"
)

// Rewards paid out by the environment for each kind of step
type Rewards struct {
	Can         float64 // picking up a can
	EmptyPickup float64 // picking up on an empty cell
	WallBump    float64 // moving into the wall
	Move        float64 // any other move
}

func DefaultRewards() Rewards {
	return Rewards{
		Can:         10,
		EmptyPickup: -1,
		WallBump:    -5,
		Move:        0,
	}
}

type CanConfig struct {
	// length of each side of the square grid
	Size int
	// cans placed at every reset
	Cans    int
	Rewards Rewards
}

// CanEnvironment is a square grid with cans scattered on it and a robot collecting them.
// The robot cannot leave the grid, moves against the edge keep it in place.
type CanEnvironment struct {
	config CanConfig
	cells  [][]Cell
	CurPos Position
	rand   *rand.Rand
}

var _ types.Environment = &CanEnvironment{}

func NewCanEnvironment(config CanConfig, r *rand.Rand) *CanEnvironment {
	cells := make([][]Cell, config.Size)
	for i := range cells {
		cells[i] = make([]Cell, config.Size)
	}
	return &CanEnvironment{
		config: config,
		cells:  cells,
		CurPos: Position{0, 0},
		rand:   r,
	}
}

// Reset empties the grid, scatters the cans without replacement and drops the robot at a random cell
func (g *CanEnvironment) Reset() types.State {
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j] = Empty
		}
	}
	size := g.config.Size
	cans := min(g.config.Cans, size*size)
	for _, k := range g.rand.Perm(size * size)[:cans] {
		g.cells[k/size][k%size] = Can
	}
	g.CurPos = Position{I: g.rand.Intn(size), J: g.rand.Intn(size)}
	return g.observe()
}

// Step applies the action and returns the new observation with the reward for the step
func (g *CanEnvironment) Step(a types.Action) (types.State, float64) {
	movement := a.(Movement)
	reward := g.config.Rewards.Move

	switch movement {
	case PickUp:
		if g.cells[g.CurPos.I][g.CurPos.J] == Can {
			g.cells[g.CurPos.I][g.CurPos.J] = Empty
			reward = g.config.Rewards.Can
		} else {
			reward = g.config.Rewards.EmptyPickup
		}
	default:
		di, dj := movement.delta()
		newPos := Position{I: g.CurPos.I + di, J: g.CurPos.J + dj}
		if g.Contains(newPos) {
			g.CurPos = newPos
		} else {
			reward = g.config.Rewards.WallBump
		}
	}
	return g.observe(), reward
}

func (g *CanEnvironment) observe() *Observation {
	return &Observation{
		Percept:  Encode(g.cells, g.CurPos),
		Position: g.CurPos,
	}
}

func (g *CanEnvironment) Contains(p Position) bool {
	return p.I >= 0 && p.I < g.config.Size && p.J >= 0 && p.J < g.config.Size
}

// CellAt returns Wall for positions outside the grid
func (g *CanEnvironment) CellAt(p Position) Cell {
	return cellAt(g.cells, p.I, p.J)
}

// SetCell is used to build fixed layouts, positions outside the grid are ignored
func (g *CanEnvironment) SetCell(p Position, c Cell) {
	if !g.Contains(p) || c == Wall {
		return
	}
	g.cells[p.I][p.J] = c
}

func (g *CanEnvironment) CountCans() int {
	count := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == Can {
				count++
			}
		}
	}
	return count
}

type Position struct {
	I int
	J int
}

func (p Position) Hash() string {
	return fmt.Sprintf("(%d, %d)", p.I, p.J)
}
