package level

import (
	"math/rand"
	"testing"
)

func newTestCatalog() *Catalog {
	return NewCatalog(4, rand.New(rand.NewSource(1)))
}

func TestStarRating(t *testing.T) {
	tests := []struct {
		name               string
		moves, maxMoves    int
		score, targetScore int
		want               int
	}{
		{"perfect run", 2, 5, 120, 100, 3},
		{"half moves exact target", 3, 6, 100, 100, 3},
		{"efficient but under target", 2, 5, 90, 100, 2},
		{"two star boundary", 3, 4, 80, 100, 2},
		{"scraped through", 4, 5, 85, 100, 1},
		{"full budget min score", 5, 5, 60, 100, 1},
		{"over budget", 6, 5, 200, 100, 0},
		{"under score floor", 3, 10, 50, 100, 0},
		{"zero max moves", 3, 0, 100, 100, 0},
		{"zero target score", 3, 10, 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StarRating(tt.moves, tt.maxMoves, tt.score, tt.targetScore)
			if got != tt.want {
				t.Errorf("StarRating(%d, %d, %d, %d) = %d, want %d",
					tt.moves, tt.maxMoves, tt.score, tt.targetScore, got, tt.want)
			}
		})
	}
}

func TestTracker_StartLevelUnknown(t *testing.T) {
	tr := NewTracker(newTestCatalog())

	if tr.StartLevel(0) {
		t.Error("level 0 must not start")
	}
	if tr.StartLevel(9999) {
		t.Error("unknown level must not start")
	}
	if tr.State() != StateIdle {
		t.Errorf("failed start must leave the tracker idle, got %v", tr.State())
	}
}

func TestTracker_StartLevelLocked(t *testing.T) {
	tr := NewTracker(newTestCatalog())

	if tr.StartLevel(2) {
		t.Error("locked level must not start")
	}
	if tr.Current() != nil {
		t.Error("failed start must not set a current level")
	}
}

func TestTracker_CountersGatedByState(t *testing.T) {
	tr := NewTracker(newTestCatalog())

	// Idle: mutators are no-ops
	tr.RecordMove()
	tr.AddScore(50)
	if tr.Moves() != 0 || tr.Score() != 0 {
		t.Error("idle tracker must ignore counter mutations")
	}

	if !tr.StartLevel(1) {
		t.Fatal("level 1 should start")
	}
	tr.RecordMove()
	tr.RecordMove()
	tr.AddScore(25)

	if tr.Moves() != 2 {
		t.Errorf("expected 2 moves, got %d", tr.Moves())
	}
	if tr.Score() != 25 {
		t.Errorf("expected score 25, got %d", tr.Score())
	}

	tr.CompleteLevel()
	tr.RecordMove()
	if tr.Moves() != 2 {
		t.Error("completed tracker must ignore further moves")
	}
}

func TestTracker_CompleteUnlocksNext(t *testing.T) {
	tr := NewTracker(newTestCatalog())
	tr.StartLevel(1)

	// Level 1: 6 max moves, 100 target. 2 moves and 120 points earn 3 stars.
	tr.RecordMove()
	tr.RecordMove()
	tr.AddScore(120)

	res := tr.CompleteLevel()
	if res.Stars != 3 {
		t.Errorf("expected 3 stars, got %d", res.Stars)
	}
	if len(res.UnlockedIDs) != 1 || res.UnlockedIDs[0] != 2 {
		t.Errorf("expected unlock of level 2, got %v", res.UnlockedIDs)
	}

	if !tr.StartLevel(2) {
		t.Error("unlocked level 2 should now start")
	}
}

func TestTracker_ZeroStarsNoUnlock(t *testing.T) {
	tr := NewTracker(newTestCatalog())
	tr.StartLevel(1)

	// Burn the whole budget with no score
	for i := 0; i < 7; i++ {
		tr.RecordMove()
	}
	res := tr.CompleteLevel()

	if res.Stars != 0 {
		t.Fatalf("expected 0 stars, got %d", res.Stars)
	}
	if len(res.UnlockedIDs) != 0 {
		t.Errorf("zero stars must not unlock, got %v", res.UnlockedIDs)
	}
	if tr.StartLevel(2) {
		t.Error("level 2 must stay locked")
	}
}

func TestTracker_UnlockIsIdempotent(t *testing.T) {
	tr := NewTracker(newTestCatalog())

	solve := func() Result {
		tr.StartLevel(1)
		tr.RecordMove()
		tr.AddScore(150)
		return tr.CompleteLevel()
	}

	first := solve()
	if len(first.UnlockedIDs) != 1 {
		t.Fatalf("first solve should unlock one level, got %v", first.UnlockedIDs)
	}

	second := solve()
	if len(second.UnlockedIDs) != 0 {
		t.Errorf("replay must not report an already-unlocked level, got %v", second.UnlockedIDs)
	}
}

func TestTracker_BestStarsMonotonic(t *testing.T) {
	tr := NewTracker(newTestCatalog())

	tr.StartLevel(1)
	tr.RecordMove()
	tr.AddScore(150)
	tr.CompleteLevel()

	desc, _ := tr.Catalog().Get(1)
	if desc.BestStars != 3 {
		t.Fatalf("expected best of 3, got %d", desc.BestStars)
	}

	// A worse replay must not regress the best
	tr.StartLevel(1)
	for i := 0; i < 6; i++ {
		tr.RecordMove()
	}
	tr.AddScore(60)
	res := tr.CompleteLevel()

	if res.Stars != 1 {
		t.Fatalf("expected 1 star for the sloppy replay, got %d", res.Stars)
	}
	if desc.BestStars != 3 {
		t.Errorf("best stars must not regress, got %d", desc.BestStars)
	}
}

func TestTracker_ReplayResetsCounters(t *testing.T) {
	tr := NewTracker(newTestCatalog())

	tr.StartLevel(1)
	tr.RecordMove()
	tr.AddScore(120)
	tr.CompleteLevel()

	tr.StartLevel(1)
	if tr.Moves() != 0 || tr.Score() != 0 || tr.Stars() != 0 {
		t.Errorf("restart must reset counters: moves=%d score=%d stars=%d",
			tr.Moves(), tr.Score(), tr.Stars())
	}
	if tr.State() != StateInProgress {
		t.Errorf("expected in_progress, got %v", tr.State())
	}
}

func TestTracker_CompleteWithoutStart(t *testing.T) {
	tr := NewTracker(newTestCatalog())

	res := tr.CompleteLevel()
	if res.Stars != 0 || res.Score != 0 || len(res.UnlockedIDs) != 0 {
		t.Errorf("completing an idle tracker must yield a zero result, got %+v", res)
	}
}

func TestTracker_OverBudget(t *testing.T) {
	tr := NewTracker(newTestCatalog())
	tr.StartLevel(1)

	max := tr.Current().MaxMoves
	for i := 0; i < max; i++ {
		tr.RecordMove()
	}
	if tr.OverBudget() {
		t.Error("at exactly the budget the attempt is not over it")
	}

	tr.RecordMove()
	if !tr.OverBudget() {
		t.Error("one past the budget should report over")
	}
}
