package grid

import (
	"fmt"

	"github.com/zeu5/robby-rl/types"
)

// Cell is the content of a location as seen by the robot
type Cell int

const (
	Empty Cell = iota
	Can
	// Wall is never stored in the grid, it stands for an off-grid neighbour
	Wall
)

// numCellStates is the number of values a single percept component can take
const numCellStates = 3

// NumPercepts is the number of distinct percepts, 3^5
const NumPercepts = numCellStates * numCellStates * numCellStates * numCellStates * numCellStates

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Can:
		return "can"
	case Wall:
		return "wall"
	}
	return "unknown"
}

// Percept is what the robot senses: its own cell and the four cardinal neighbours
type Percept struct {
	Current Cell
	North   Cell
	South   Cell
	East    Cell
	West    Cell
}

var _ types.State = Percept{}

// Index maps the percept onto [0, NumPercepts) as a base-3 number
// with Current as the most significant digit.
func (p Percept) Index() int {
	return (((int(p.Current)*numCellStates+int(p.North))*numCellStates+int(p.South))*numCellStates+int(p.East))*numCellStates + int(p.West)
}

func (p Percept) Hash() string {
	return fmt.Sprintf("(%s, %s, %s, %s, %s)", p.Current, p.North, p.South, p.East, p.West)
}

func (p Percept) Actions() []types.Action {
	return AllMovements
}

// DecodePercept is the inverse of Percept.Index
func DecodePercept(index int) Percept {
	p := Percept{}
	p.West = Cell(index % numCellStates)
	index /= numCellStates
	p.East = Cell(index % numCellStates)
	index /= numCellStates
	p.South = Cell(index % numCellStates)
	index /= numCellStates
	p.North = Cell(index % numCellStates)
	index /= numCellStates
	p.Current = Cell(index % numCellStates)
	return p
}

// Encode reads the neighbourhood of pos. Neighbours outside the grid are walls.
func Encode(cells [][]Cell, pos Position) Percept {
	return Percept{
		Current: cellAt(cells, pos.I, pos.J),
		North:   cellAt(cells, pos.I-1, pos.J),
		South:   cellAt(cells, pos.I+1, pos.J),
		East:    cellAt(cells, pos.I, pos.J+1),
		West:    cellAt(cells, pos.I, pos.J-1),
	}
}

func cellAt(cells [][]Cell, i, j int) Cell {
	if i < 0 || i >= len(cells) || j < 0 || j >= len(cells[i]) {
		return Wall
	}
	return cells[i][j]
}

// Observation is the state handed out by the environment.
// Policies only see the embedded percept; the position is kept for analysis.
type Observation struct {
	Percept
	Position Position
}

var _ types.State = &Observation{}
