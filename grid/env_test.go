package grid

import (
	"strings"
	"testing"

	"golang.org/x/exp/rand"
)

func newTestEnvironment(size, cans int, seed uint64) *CanEnvironment {
	return NewCanEnvironment(CanConfig{Size: size, Cans: cans, Rewards: DefaultRewards()}, rand.New(rand.NewSource(seed)))
}

func TestResetPlacesCans(t *testing.T) {
	for _, cans := range []int{0, 1, 20, 50, 100} {
		env := newTestEnvironment(10, cans, 3)
		for i := 0; i < 5; i++ {
			env.Reset()
			if env.CountCans() != cans {
				t.Errorf("expected %d cans, got %d", cans, env.CountCans())
			}
			if !env.Contains(env.CurPos) {
				t.Errorf("robot placed outside the grid at %s", env.CurPos.Hash())
			}
		}
	}
}

func TestResetIsReproducible(t *testing.T) {
	a := newTestEnvironment(8, 20, 11)
	b := newTestEnvironment(8, 20, 11)
	for i := 0; i < 3; i++ {
		a.Reset()
		b.Reset()
		if a.String() != b.String() {
			t.Fatalf("grids differ for the same seed:\n%s\n\n%s", a, b)
		}
	}
}

func TestPickUp(t *testing.T) {
	env := newTestEnvironment(3, 0, 1)
	env.Reset()
	env.CurPos = Position{I: 1, J: 1}
	env.SetCell(env.CurPos, Can)

	state, reward := env.Step(PickUp)
	if reward != 10 {
		t.Errorf("expected reward 10 for a can, got %v", reward)
	}
	if env.CellAt(env.CurPos) != Empty {
		t.Errorf("can not removed")
	}
	if state.(*Observation).Current != Empty {
		t.Errorf("observation still shows a can")
	}

	before := env.String()
	_, reward = env.Step(PickUp)
	if reward != -1 {
		t.Errorf("expected reward -1 for an empty pick up, got %v", reward)
	}
	if env.String() != before {
		t.Errorf("empty pick up changed the grid")
	}
	if env.CountCans() != 0 {
		t.Errorf("expected no cans, got %d", env.CountCans())
	}
}

func TestMovesStayOnGrid(t *testing.T) {
	env := newTestEnvironment(4, 0, 1)
	env.Reset()

	corners := []Position{{0, 0}, {0, 3}, {3, 0}, {3, 3}}
	for _, corner := range corners {
		for _, m := range []Movement{MoveNorth, MoveSouth, MoveEast, MoveWest} {
			env.CurPos = corner
			state, reward := env.Step(m)
			if !env.Contains(env.CurPos) {
				t.Fatalf("moved off grid to %s", env.CurPos.Hash())
			}
			obs := state.(*Observation)
			if obs.Position != env.CurPos {
				t.Errorf("observation at %s, robot at %s", obs.Position.Hash(), env.CurPos.Hash())
			}
			if env.CurPos == corner && reward != -5 {
				t.Errorf("bump from %s moving %s rewarded %v", corner.Hash(), m, reward)
			}
			if env.CurPos != corner && reward != 0 {
				t.Errorf("move from %s moving %s rewarded %v", corner.Hash(), m, reward)
			}
		}
	}
}

func TestMovementDirections(t *testing.T) {
	env := newTestEnvironment(3, 0, 1)
	env.Reset()
	expected := map[Movement]Position{
		MoveNorth: {0, 1},
		MoveSouth: {2, 1},
		MoveEast:  {1, 2},
		MoveWest:  {1, 0},
		PickUp:    {1, 1},
	}
	for m, pos := range expected {
		env.CurPos = Position{1, 1}
		env.Step(m)
		if env.CurPos != pos {
			t.Errorf("%s from (1, 1) reached %s, expected %s", m, env.CurPos.Hash(), pos.Hash())
		}
	}
}

func TestRandomWalkStaysOnGrid(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	env := newTestEnvironment(5, 5, 5)
	env.Reset()
	for i := 0; i < 1000; i++ {
		env.Step(AllMovements[r.Intn(len(AllMovements))])
		if !env.Contains(env.CurPos) {
			t.Fatalf("robot left the grid at %s", env.CurPos.Hash())
		}
	}
}

func TestRender(t *testing.T) {
	env := newTestEnvironment(2, 0, 1)
	env.Reset()
	env.CurPos = Position{0, 0}
	env.SetCell(Position{1, 1}, Can)
	expected := "R _\n_ C"
	if env.String() != expected {
		t.Errorf("rendered %q, expected %q", env.String(), expected)
	}
	if !strings.Contains(env.Render(true), "\x1b[") {
		t.Errorf("coloured render has no escape codes")
	}
}
