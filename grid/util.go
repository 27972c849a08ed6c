package grid

import (
	"fmt"

	"github.com/zeu5/robby-rl/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// GridDataSet counts how often the robot stood on each cell
type GridDataSet struct {
	Visits [][]int
	Size   int
}

var _ plotter.GridXYZ = &GridDataSet{}

func (g *GridDataSet) Dims() (int, int) {
	return g.Size, g.Size
}

// Z is indexed by column and row, rows are drawn top down
func (g *GridDataSet) Z(c, r int) float64 {
	return float64(g.Visits[g.Size-1-r][c])
}

func (g *GridDataSet) X(c int) float64 {
	return float64(c)
}

func (g *GridDataSet) Y(r int) float64 {
	return float64(r)
}

func (g *GridDataSet) Max() float64 {
	max := 0
	for _, vals := range g.Visits {
		for _, count := range vals {
			if count > max {
				max = count
			}
		}
	}
	return float64(max)
}

// VisitsAnalyzer accumulates the visits of every episode
type VisitsAnalyzer struct {
	size   int
	visits [][]int
}

var _ types.Analyzer = &VisitsAnalyzer{}

func NewVisitsAnalyzer(size int) *VisitsAnalyzer {
	visits := make([][]int, size)
	for i := range visits {
		visits[i] = make([]int, size)
	}
	return &VisitsAnalyzer{size: size, visits: visits}
}

func (v *VisitsAnalyzer) Analyze(_ int, trace *types.Trace) {
	for i := 0; i < trace.Len(); i++ {
		state, _, _, _, _ := trace.Get(i)
		obs, ok := state.(*Observation)
		if !ok {
			continue
		}
		v.visits[obs.Position.I][obs.Position.J] += 1
	}
}

func (v *VisitsAnalyzer) DataSet() types.DataSet {
	visits := make([][]int, v.size)
	for i := range visits {
		visits[i] = make([]int, v.size)
		copy(visits[i], v.visits[i])
	}
	return &GridDataSet{Visits: visits, Size: v.size}
}

// VisitsHeatMapReporter saves the visits dataset as a heat map
func VisitsHeatMapReporter(figPath string) types.Reporter {
	return func(ds types.DataSet) error {
		dataSet, ok := ds.(*GridDataSet)
		if !ok {
			return fmt.Errorf("unexpected dataset %T", ds)
		}
		return PlotVisits(figPath, dataSet)
	}
}

func PlotVisits(figPath string, dataSet *GridDataSet) error {
	p := plot.New()
	p.Title.Text = "Robot visits"
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row (top down)"
	p.Add(plotter.NewHeatMap(dataSet, palette.Heat(12, 1)))
	if err := p.Save(6*vg.Inch, 6*vg.Inch, figPath); err != nil {
		return fmt.Errorf("saving heat map: %w", err)
	}
	return nil
}

// Outcomes of the steps of one episode
type Outcomes struct {
	CansCollected int
	EmptyPickups  int
	WallBumps     int
}

// OutcomeAnalyzer classifies the steps of every episode from the trace alone
type OutcomeAnalyzer struct {
	outcomes []Outcomes
}

var _ types.Analyzer = &OutcomeAnalyzer{}

func NewOutcomeAnalyzer() *OutcomeAnalyzer {
	return &OutcomeAnalyzer{outcomes: make([]Outcomes, 0)}
}

func (o *OutcomeAnalyzer) Analyze(_ int, trace *types.Trace) {
	out := Outcomes{}
	for i := 0; i < trace.Len(); i++ {
		state, action, _, _, _ := trace.Get(i)
		percept, ok := perceptOf(state)
		if !ok {
			continue
		}
		switch action.(Movement) {
		case PickUp:
			if percept.Current == Can {
				out.CansCollected += 1
			} else {
				out.EmptyPickups += 1
			}
		case MoveNorth:
			if percept.North == Wall {
				out.WallBumps += 1
			}
		case MoveSouth:
			if percept.South == Wall {
				out.WallBumps += 1
			}
		case MoveEast:
			if percept.East == Wall {
				out.WallBumps += 1
			}
		case MoveWest:
			if percept.West == Wall {
				out.WallBumps += 1
			}
		}
	}
	o.outcomes = append(o.outcomes, out)
}

// DataSet is the []Outcomes of every episode in order
func (o *OutcomeAnalyzer) DataSet() types.DataSet {
	out := make([]Outcomes, len(o.outcomes))
	copy(out, o.outcomes)
	return out
}

func perceptOf(s types.State) (Percept, bool) {
	switch state := s.(type) {
	case *Observation:
		return state.Percept, true
	case Percept:
		return state, true
	}
	return Percept{}, false
}
