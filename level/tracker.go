package level

// State is the progression lifecycle for one level attempt.
type State uint8

const (
	StateIdle State = iota
	StateInProgress
	StateCompleted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Result is the completion signal consumed by the presentation layer.
type Result struct {
	Stars       int
	Score       int
	UnlockedIDs []int
}

// Tracker owns progression state: the active level, move and score counters,
// star computation and unlock propagation. The grid reports through its
// mutators; nothing else writes these counters.
type Tracker struct {
	catalog *Catalog

	state   State
	current *Descriptor
	moves   int
	score   int
	stars   int
}

// NewTracker creates a tracker over the given catalog, in the Idle state.
func NewTracker(catalog *Catalog) *Tracker {
	return &Tracker{catalog: catalog}
}

// State returns the current lifecycle state.
func (t *Tracker) State() State {
	return t.state
}

// Current returns the active level descriptor, or nil when Idle.
func (t *Tracker) Current() *Descriptor {
	return t.current
}

// Moves returns the moves taken in the current attempt.
func (t *Tracker) Moves() int {
	return t.moves
}

// Score returns the score accumulated in the current attempt.
func (t *Tracker) Score() int {
	return t.score
}

// Stars returns the stars earned in the just-completed attempt.
func (t *Tracker) Stars() int {
	return t.stars
}

// Catalog returns the level catalog.
func (t *Tracker) Catalog() *Catalog {
	return t.catalog
}

// StartLevel activates a level, resetting move, score and star counters.
// Returns false without any state change when the id is unknown or the
// level is locked; the caller must not assume a level became active.
func (t *Tracker) StartLevel(id int) bool {
	desc, ok := t.catalog.Get(id)
	if !ok || !desc.Unlocked {
		return false
	}

	t.current = desc
	t.moves = 0
	t.score = 0
	t.stars = 0
	t.state = StateInProgress
	return true
}

// RecordMove increments the move counter. Exceeding MaxMoves is not fatal
// here; it is a soft signal for the lose-condition UI.
func (t *Tracker) RecordMove() {
	if t.state != StateInProgress {
		return
	}
	t.moves++
}

// AddScore adds points to the current attempt.
func (t *Tracker) AddScore(points int) {
	if t.state != StateInProgress {
		return
	}
	t.score += points
}

// OverBudget reports whether the attempt has exceeded the move budget.
func (t *Tracker) OverBudget() bool {
	return t.current != nil && t.moves > t.current.MaxMoves
}

// CompleteLevel transitions to Completed, computes the star rating, updates
// the level's best and unlocks the next sequential level when stars were
// earned. Re-entering InProgress requires StartLevel again; replays are
// non-cumulative.
func (t *Tracker) CompleteLevel() Result {
	if t.state != StateInProgress {
		return Result{}
	}

	t.state = StateCompleted
	t.stars = StarRating(t.moves, t.current.MaxMoves, t.score, t.current.TargetScore)

	if t.stars > t.current.BestStars {
		t.current.BestStars = t.stars
	}

	res := Result{Stars: t.stars, Score: t.score}
	if t.stars > 0 {
		if next, ok := t.catalog.Get(t.current.ID + 1); ok && !next.Unlocked {
			next.Unlocked = true
			res.UnlockedIDs = append(res.UnlockedIDs, next.ID)
		}
	}
	return res
}

// StarRating computes the 0-3 star rating from move efficiency and score
// attainment. Pure function of its inputs.
func StarRating(movesUsed, maxMoves, scoreAchieved, targetScore int) int {
	if maxMoves <= 0 || targetScore <= 0 {
		return 0
	}

	moveRatio := float64(movesUsed) / float64(maxMoves)
	scoreRatio := float64(scoreAchieved) / float64(targetScore)

	switch {
	case moveRatio <= 0.5 && scoreRatio >= 1.0:
		return 3
	case moveRatio <= 0.75 && scoreRatio >= 0.8:
		return 2
	case moveRatio <= 1.0 && scoreRatio >= 0.6:
		return 1
	}
	return 0
}
