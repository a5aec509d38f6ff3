// Package ladder implements the staking ladder: a run of compounding money
// targets that a player climbs with wins and descends with losses.
//
// A Ladder is owned by a single UI session and is not safe for concurrent use.
// State changes only through Start and Record; every accessor returns copies.
package ladder

import (
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/vovakirdan/ladderup/internal/money"
)

// DefaultGrowthRate is the per-level compounding rate (15%).
const DefaultGrowthRate = 0.15

var (
	// ErrNotStarted is returned by Record when no run with targets exists.
	ErrNotStarted = errors.New("ladder: no active run")

	// ErrUnknownResult is returned by Record for anything but Win or Loss.
	ErrUnknownResult = errors.New("ladder: unknown result")
)

// Ladder holds the state of one ladder run.
type Ladder struct {
	growthRate float64

	runID   uuid.UUID
	start   float64
	goal    float64
	targets []float64 // rounded at the money boundary; growth compounds unrounded

	level     int
	balance   float64
	history   []Entry
	completed bool
}

// Option configures a Ladder.
type Option func(*Ladder)

// WithGrowthRate overrides the per-level growth rate.
func WithGrowthRate(rate float64) Option {
	return func(l *Ladder) {
		l.growthRate = rate
	}
}

// New creates an empty ladder. Record fails until Start is called.
func New(opts ...Option) *Ladder {
	l := &Ladder{growthRate: DefaultGrowthRate}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start begins a new run from startingBalance towards goalMultiplier times
// that balance, replacing any previous run.
//
// Degenerate input never fails: a goal of 1 or less, a non-positive growth
// rate or a non-finite balance produces an empty run, and a non-positive
// balance produces zero or negative targets. Targets that overflow float64
// stay +Inf.
func (l *Ladder) Start(startingBalance, goalMultiplier float64) {
	n := LevelCount(goalMultiplier, l.growthRate)
	if math.IsNaN(startingBalance) || math.IsInf(startingBalance, 0) {
		n = 0
	}

	l.targets = make([]float64, 0, n)
	amt := startingBalance
	for range n {
		amt *= 1 + l.growthRate
		l.targets = append(l.targets, money.Round2(amt))
	}

	l.runID = uuid.New()
	l.start = startingBalance
	l.goal = goalMultiplier
	l.level = 0
	l.balance = startingBalance
	l.history = nil
	l.completed = false
}

// Record applies a win or loss to the current run.
//
// A win banks the target of the level being attempted and moves up one level
// (staying put at the top). A loss moves down one level (staying put at the
// bottom) and banks the target of the level landed on.
func (l *Ladder) Record(result Result) error {
	if len(l.targets) == 0 {
		return ErrNotStarted
	}

	top := len(l.targets) - 1
	var newLevel int
	var newBalance float64

	switch result {
	case Win:
		newBalance = l.targets[l.level]
		newLevel = min(l.level+1, top)
	case Loss:
		newLevel = max(l.level-1, 0)
		newBalance = l.targets[newLevel]
	default:
		return ErrUnknownResult
	}

	l.level = newLevel
	l.balance = newBalance
	l.history = append(l.history, Entry{Level: newLevel, Balance: newBalance, Result: result})

	if newLevel == top && result == Win {
		l.completed = true
	}
	return nil
}

// LevelCount returns the smallest number of compounding steps at rate whose
// product reaches goal, i.e. the L with (1+rate)^(L-1) < goal <= (1+rate)^L.
// It returns 0 when goal <= 1, rate <= 0, or either is not finite.
func LevelCount(goal, rate float64) int {
	if !(goal > 1) || !(rate > 0) || math.IsInf(goal, 0) || math.IsInf(rate, 0) {
		return 0
	}

	base := 1 + rate
	n := int(math.Ceil(math.Log(goal) / math.Log(base)))

	// Logarithms can land a hair off for exact powers of base.
	for n > 1 && math.Pow(base, float64(n-1)) >= goal {
		n--
	}
	for math.Pow(base, float64(n)) < goal {
		n++
	}
	return n
}

// Started reports whether the current run has at least one target.
func (l *Ladder) Started() bool {
	return len(l.targets) > 0
}

// Targets returns the run's targets rounded to cents.
func (l *Ladder) Targets() []float64 {
	out := make([]float64, len(l.targets))
	copy(out, l.targets)
	return out
}

// Target returns the target at level i and whether i is in range.
func (l *Ladder) Target(i int) (float64, bool) {
	if i < 0 || i >= len(l.targets) {
		return 0, false
	}
	return l.targets[i], true
}

// FinalTarget returns the last target of the run, or 0 when there is none.
func (l *Ladder) FinalTarget() float64 {
	if len(l.targets) == 0 {
		return 0
	}
	return l.targets[len(l.targets)-1]
}

// Level returns the 0-based index of the level currently being attempted.
func (l *Ladder) Level() int {
	return l.level
}

// Balance returns the balance banked at the current level.
func (l *Ladder) Balance() float64 {
	return l.balance
}

// StartingBalance returns the balance the run was started with.
func (l *Ladder) StartingBalance() float64 {
	return l.start
}

// Goal returns the goal multiplier of the run.
func (l *Ladder) Goal() float64 {
	return l.goal
}

// GrowthRate returns the per-level growth rate.
func (l *Ladder) GrowthRate() float64 {
	return l.growthRate
}

// RunID identifies the current run. It is uuid.Nil before the first Start.
func (l *Ladder) RunID() uuid.UUID {
	return l.runID
}

// Completed reports whether the top level has been reached with a win.
func (l *Ladder) Completed() bool {
	return l.completed
}

// History returns the outcomes recorded in this run, oldest first.
func (l *Ladder) History() []Entry {
	out := make([]Entry, len(l.history))
	copy(out, l.history)
	return out
}

// OutcomeAt returns the first history entry that landed on level i.
func (l *Ladder) OutcomeAt(i int) (Entry, bool) {
	for _, e := range l.history {
		if e.Level == i {
			return e, true
		}
	}
	return Entry{}, false
}

// WinRate returns the percentage of recorded outcomes that are wins,
// rounded to one decimal. It is 0 when nothing has been recorded.
func (l *Ladder) WinRate() float64 {
	if len(l.history) == 0 {
		return 0
	}
	wins := 0
	for _, e := range l.history {
		if e.Result == Win {
			wins++
		}
	}
	return money.Round1(float64(wins) / float64(len(l.history)) * 100)
}
