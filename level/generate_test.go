package level

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/pthm-cable/reef/puzzle"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(12, rand.New(rand.NewSource(77)))
	b := Generate(12, rand.New(rand.NewSource(77)))

	if !reflect.DeepEqual(a, b) {
		t.Error("same id and seed must reproduce the same level")
	}

	c := Generate(12, rand.New(rand.NewSource(78)))
	if reflect.DeepEqual(a.Blocks, c.Blocks) {
		t.Error("different seeds should produce different layouts")
	}
}

func TestGenerate_StructuralInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for id := 9; id <= 48; id++ {
		desc := Generate(id, rng)

		var starts, exits int
		seen := map[puzzle.Coord]bool{}
		for _, p := range desc.Blocks {
			if !desc.Dims.Contains(p.At) {
				t.Fatalf("level %d: block at %+v outside dims %+v", id, p.At, desc.Dims)
			}
			if seen[p.At] {
				t.Fatalf("level %d: duplicate coordinate %+v", id, p.At)
			}
			seen[p.At] = true

			switch p.Type {
			case puzzle.BlockStart:
				starts++
			case puzzle.BlockExit:
				exits++
			}
		}

		if starts != 1 || exits != 1 {
			t.Fatalf("level %d: expected one start and one exit, got %d/%d", id, starts, exits)
		}
	}
}

func TestGenerate_NeverBeginsSolved(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	for id := 9; id <= 30; id++ {
		desc := Generate(id, rng)

		for _, p := range desc.Blocks {
			if p.Type == puzzle.BlockStart && p.At == desc.Win.From {
				t.Fatalf("level %d: start spawned on its path target", id)
			}
			if p.Type == puzzle.BlockExit && p.At == desc.Win.To {
				t.Fatalf("level %d: exit spawned on its path target", id)
			}
		}
	}
}

func TestGenerate_DifficultyScales(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	early := Generate(9, rng)
	late := Generate(40, rng)

	if late.Dims.X <= early.Dims.X {
		t.Errorf("later levels should use larger grids: %d vs %d", late.Dims.X, early.Dims.X)
	}
	if late.MaxMoves <= early.MaxMoves {
		t.Errorf("later levels should grant more moves: %d vs %d", late.MaxMoves, early.MaxMoves)
	}
	if late.TargetScore <= early.TargetScore {
		t.Errorf("later levels should demand more score: %d vs %d", late.TargetScore, early.TargetScore)
	}
}

func TestNewCatalog_OnlyFirstUnlocked(t *testing.T) {
	c := newTestCatalog()

	if c.Len() != 12 {
		t.Fatalf("expected 8 authored + 4 generated levels, got %d", c.Len())
	}
	for _, d := range c.All() {
		if d.Unlocked != (d.ID == 1) {
			t.Errorf("level %d: unlocked=%v", d.ID, d.Unlocked)
		}
	}
}

func TestNewCatalog_SequentialIDs(t *testing.T) {
	c := newTestCatalog()

	for i, d := range c.All() {
		if d.ID != i+1 {
			t.Fatalf("expected id %d at position %d, got %d", i+1, i, d.ID)
		}
		got, ok := c.Get(d.ID)
		if !ok || got != d {
			t.Fatalf("Get(%d) should return the same descriptor", d.ID)
		}
	}
}
