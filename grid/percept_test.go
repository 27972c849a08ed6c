package grid

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestPerceptIndexIsBijective(t *testing.T) {
	seen := make([]bool, NumPercepts)
	cells := []Cell{Empty, Can, Wall}
	for _, c := range cells {
		for _, n := range cells {
			for _, s := range cells {
				for _, e := range cells {
					for _, w := range cells {
						p := Percept{Current: c, North: n, South: s, East: e, West: w}
						i := p.Index()
						if i < 0 || i >= NumPercepts {
							t.Fatalf("index %d of %s out of range", i, p.Hash())
						}
						if seen[i] {
							t.Fatalf("index %d used twice", i)
						}
						seen[i] = true
						if DecodePercept(i) != p {
							t.Errorf("decoding %d gave %s, expected %s", i, DecodePercept(i).Hash(), p.Hash())
						}
					}
				}
			}
		}
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("index %d not reachable", i)
		}
	}
}

func TestEncodeCorners(t *testing.T) {
	env := NewCanEnvironment(CanConfig{Size: 3, Cans: 0, Rewards: DefaultRewards()}, rand.New(rand.NewSource(1)))
	env.SetCell(Position{I: 0, J: 1}, Can)
	env.SetCell(Position{I: 1, J: 0}, Can)

	p := Encode(env.cells, Position{I: 0, J: 0})
	expected := Percept{Current: Empty, North: Wall, South: Can, East: Can, West: Wall}
	if p != expected {
		t.Errorf("top left percept %s, expected %s", p.Hash(), expected.Hash())
	}

	p = Encode(env.cells, Position{I: 2, J: 2})
	expected = Percept{Current: Empty, North: Empty, South: Wall, East: Wall, West: Empty}
	if p != expected {
		t.Errorf("bottom right percept %s, expected %s", p.Hash(), expected.Hash())
	}

	p = Encode(env.cells, Position{I: 0, J: 1})
	if p.Current != Can || p.North != Wall || p.West != Empty || p.East != Empty {
		t.Errorf("unexpected percept %s", p.Hash())
	}
}

func TestEncodeIsTotalAndDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for size := 1; size <= 6; size++ {
		for cans := 0; cans <= size*size; cans += max(1, size) {
			env := NewCanEnvironment(CanConfig{Size: size, Cans: cans, Rewards: DefaultRewards()}, r)
			env.Reset()
			for i := 0; i < size; i++ {
				for j := 0; j < size; j++ {
					pos := Position{I: i, J: j}
					p := Encode(env.cells, pos)
					if p.Index() < 0 || p.Index() >= NumPercepts {
						t.Fatalf("percept index %d out of range", p.Index())
					}
					if p.Current == Wall {
						t.Errorf("current cell of %s is a wall", pos.Hash())
					}
					if Encode(env.cells, pos) != p {
						t.Errorf("encoding %s twice differs", pos.Hash())
					}
				}
			}
		}
	}
}

func TestSingleCellGridIsWalledIn(t *testing.T) {
	cells := [][]Cell{{Can}}
	p := Encode(cells, Position{})
	expected := Percept{Current: Can, North: Wall, South: Wall, East: Wall, West: Wall}
	if p != expected {
		t.Errorf("percept %s, expected %s", p.Hash(), expected.Hash())
	}
}
