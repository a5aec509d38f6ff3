package ladder

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestLevelCountBounds(t *testing.T) {
	goals := []float64{1.01, 1.15, 1.3225, 2, 5, 10, 20, 50, 100, 1000, 12345.6}
	base := 1 + DefaultGrowthRate

	for _, goal := range goals {
		n := LevelCount(goal, DefaultGrowthRate)
		if n < 1 {
			t.Fatalf("LevelCount(%v) = %d, want >= 1", goal, n)
		}
		lower := math.Pow(base, float64(n-1))
		upper := math.Pow(base, float64(n))
		if !(lower < goal && goal <= upper) {
			t.Errorf("LevelCount(%v) = %d: want %v < %v <= %v", goal, n, lower, goal, upper)
		}
	}
}

func TestLevelCountDegenerate(t *testing.T) {
	tests := []struct {
		name string
		goal float64
		rate float64
	}{
		{"goal one", 1, 0.15},
		{"goal below one", 0.5, 0.15},
		{"goal zero", 0, 0.15},
		{"negative goal", -5, 0.15},
		{"nan goal", math.NaN(), 0.15},
		{"infinite goal", math.Inf(1), 0.15},
		{"zero rate", 5, 0},
		{"negative rate", 5, -0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n := LevelCount(tt.goal, tt.rate); n != 0 {
				t.Errorf("LevelCount(%v, %v) = %d, want 0", tt.goal, tt.rate, n)
			}
		})
	}
}

func TestStartScenario(t *testing.T) {
	l := New()
	l.Start(100, 5)

	targets := l.Targets()
	if len(targets) != 12 {
		t.Fatalf("len(targets) = %d, want 12", len(targets))
	}
	if targets[0] != 115.00 {
		t.Errorf("targets[0] = %v, want 115.00", targets[0])
	}
	if targets[1] != 132.25 {
		t.Errorf("targets[1] = %v, want 132.25", targets[1])
	}
	if targets[11] != 535.03 {
		t.Errorf("targets[11] = %v, want 535.03", targets[11])
	}
	if l.FinalTarget() != targets[11] {
		t.Errorf("FinalTarget() = %v, want %v", l.FinalTarget(), targets[11])
	}

	if err := l.Record(Win); err != nil {
		t.Fatalf("Record(Win) failed: %v", err)
	}
	if l.Level() != 1 {
		t.Errorf("Level() = %d, want 1", l.Level())
	}
	if l.Balance() != 115.00 {
		t.Errorf("Balance() = %v, want 115.00", l.Balance())
	}

	history := l.History()
	want := []Entry{{Level: 1, Balance: 115.00, Result: Win}}
	if len(history) != 1 || history[0] != want[0] {
		t.Errorf("History() = %v, want %v", history, want)
	}
}

func TestStartResetsState(t *testing.T) {
	l := New()
	l.Start(100, 5)
	for range 20 {
		l.Record(Win)
	}
	if !l.Completed() {
		t.Fatal("expected run to be completed before restart")
	}
	firstRun := l.RunID()

	l.Start(250, 10)

	if l.Level() != 0 {
		t.Errorf("Level() = %d, want 0", l.Level())
	}
	if len(l.History()) != 0 {
		t.Errorf("History() has %d entries, want 0", len(l.History()))
	}
	if l.Completed() {
		t.Error("Completed() = true after restart")
	}
	if l.Balance() != 250 {
		t.Errorf("Balance() = %v, want 250", l.Balance())
	}
	if l.StartingBalance() != 250 || l.Goal() != 10 {
		t.Errorf("StartingBalance/Goal = %v/%v, want 250/10", l.StartingBalance(), l.Goal())
	}
	if l.RunID() == firstRun || l.RunID() == uuid.Nil {
		t.Errorf("RunID() = %v, want a fresh id", l.RunID())
	}
}

func TestTargetsStrictlyIncreasing(t *testing.T) {
	for _, goal := range []float64{5, 10, 20, 50, 100, 1000} {
		l := New()
		l.Start(37.5, goal)
		targets := l.Targets()
		for i := 1; i < len(targets); i++ {
			if !(targets[i-1] < targets[i]) {
				t.Errorf("goal %v: targets[%d]=%v >= targets[%d]=%v", goal, i-1, targets[i-1], i, targets[i])
			}
		}
	}
}

func TestTargetsDoNotCompoundRounding(t *testing.T) {
	l := New()
	l.Start(1, 1000)

	targets := l.Targets()
	last := targets[len(targets)-1]
	want := math.Round(math.Pow(1.15, float64(len(targets)))*100) / 100
	if last != want {
		t.Errorf("last target = %v, want %v", last, want)
	}
}

func TestRepeatedWinsComplete(t *testing.T) {
	l := New()
	l.Start(100, 5)
	top := len(l.Targets()) - 1

	for i := 0; i < top; i++ {
		if l.Completed() {
			t.Fatalf("completed early at level %d", l.Level())
		}
		if err := l.Record(Win); err != nil {
			t.Fatalf("Record(Win) failed: %v", err)
		}
	}

	if l.Level() != top {
		t.Fatalf("Level() = %d, want %d", l.Level(), top)
	}
	if !l.Completed() {
		t.Error("Completed() = false after reaching the top with a win")
	}
}

func TestRepeatedTopWinsAppendHistory(t *testing.T) {
	l := New()
	l.Start(100, 1.3) // two levels
	targets := l.Targets()
	if len(targets) != 2 {
		t.Fatalf("len(targets) = %d, want 2", len(targets))
	}

	l.Record(Win)
	l.Record(Win)
	l.Record(Win)

	history := l.History()
	if len(history) != 3 {
		t.Fatalf("len(history) = %d, want 3", len(history))
	}
	for i, e := range history[1:] {
		if e.Level != 1 || e.Balance != targets[1] || e.Result != Win {
			t.Errorf("history[%d] = %+v, want top-level win banking %v", i+1, e, targets[1])
		}
	}
	if !l.Completed() {
		t.Error("Completed() = false after top-level wins")
	}
}

func TestLossAtBottom(t *testing.T) {
	l := New()
	l.Start(100, 5)

	if err := l.Record(Loss); err != nil {
		t.Fatalf("Record(Loss) failed: %v", err)
	}
	if l.Level() != 0 {
		t.Errorf("Level() = %d, want 0", l.Level())
	}
	if l.Balance() != l.Targets()[0] {
		t.Errorf("Balance() = %v, want %v", l.Balance(), l.Targets()[0])
	}
}

func TestLossStepsDown(t *testing.T) {
	l := New()
	l.Start(100, 5)
	l.Record(Win)
	l.Record(Win)
	l.Record(Win) // level 3

	if err := l.Record(Loss); err != nil {
		t.Fatalf("Record(Loss) failed: %v", err)
	}
	targets := l.Targets()
	if l.Level() != 2 {
		t.Errorf("Level() = %d, want 2", l.Level())
	}
	if l.Balance() != targets[2] {
		t.Errorf("Balance() = %v, want targets[2] = %v", l.Balance(), targets[2])
	}
	if l.Completed() {
		t.Error("Completed() = true after a loss mid-ladder")
	}
}

func TestRecordBeforeStart(t *testing.T) {
	l := New()

	if err := l.Record(Win); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Record(Win) error = %v, want ErrNotStarted", err)
	}
	if len(l.History()) != 0 || l.Level() != 0 {
		t.Error("state changed after rejected Record")
	}
}

func TestRecordEmptyRun(t *testing.T) {
	l := New()
	l.Start(100, 1)

	if l.Started() {
		t.Fatal("Started() = true for a goal of 1")
	}
	if err := l.Record(Loss); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Record(Loss) error = %v, want ErrNotStarted", err)
	}
	if l.WinRate() != 0 {
		t.Errorf("WinRate() = %v, want 0", l.WinRate())
	}
	if l.Balance() != 100 {
		t.Errorf("Balance() = %v, want 100", l.Balance())
	}
}

func TestRecordUnknownResult(t *testing.T) {
	l := New()
	l.Start(100, 5)

	if err := l.Record(Result("draw")); !errors.Is(err, ErrUnknownResult) {
		t.Errorf("Record(draw) error = %v, want ErrUnknownResult", err)
	}
	if len(l.History()) != 0 {
		t.Error("history grew after an unknown result")
	}
}

func TestZeroBalance(t *testing.T) {
	l := New()
	l.Start(0, 5)

	for i, v := range l.Targets() {
		if v != 0 {
			t.Errorf("targets[%d] = %v, want 0", i, v)
		}
	}
	if err := l.Record(Win); err != nil {
		t.Errorf("Record(Win) failed: %v", err)
	}
}

func TestWinRate(t *testing.T) {
	l := New()
	l.Start(100, 5)

	if l.WinRate() != 0 {
		t.Errorf("WinRate() on empty history = %v, want 0", l.WinRate())
	}

	l.Record(Win)
	l.Record(Win)
	l.Record(Win)
	l.Record(Loss)

	if got := l.WinRate(); got != 75.0 {
		t.Errorf("WinRate() = %v, want 75.0", got)
	}
	if a, b := l.WinRate(), l.WinRate(); a != b {
		t.Errorf("WinRate() not idempotent: %v then %v", a, b)
	}

	l.Record(Loss)
	l.Record(Loss)
	if got := l.WinRate(); got != 50.0 {
		t.Errorf("WinRate() = %v, want 50.0", got)
	}
	l.Record(Loss)
	// 3 of 7
	if got := l.WinRate(); got != 42.9 {
		t.Errorf("WinRate() = %v, want 42.9", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	l := New()
	l.Start(100, 5)
	l.Record(Win)

	targets := l.Targets()
	targets[0] = -1
	history := l.History()
	history[0].Balance = -1

	if l.Targets()[0] != 115 {
		t.Error("mutating Targets() result changed ladder state")
	}
	if l.History()[0].Balance != 115 {
		t.Error("mutating History() result changed ladder state")
	}
}

func TestOutcomeAt(t *testing.T) {
	l := New()
	l.Start(100, 5)
	l.Record(Win)  // level 1
	l.Record(Loss) // level 0
	l.Record(Win)  // level 1 again

	e, ok := l.OutcomeAt(1)
	if !ok || e.Result != Win {
		t.Errorf("OutcomeAt(1) = %+v, %v; want first win", e, ok)
	}
	e, ok = l.OutcomeAt(0)
	if !ok || e.Result != Loss {
		t.Errorf("OutcomeAt(0) = %+v, %v; want loss", e, ok)
	}
	if _, ok := l.OutcomeAt(5); ok {
		t.Error("OutcomeAt(5) found an entry for an unvisited level")
	}
}

func TestWithGrowthRate(t *testing.T) {
	l := New(WithGrowthRate(1))
	l.Start(10, 8)

	targets := l.Targets()
	want := []float64{20, 40, 80}
	if len(targets) != len(want) {
		t.Fatalf("targets = %v, want %v", targets, want)
	}
	for i := range want {
		if targets[i] != want[i] {
			t.Errorf("targets[%d] = %v, want %v", i, targets[i], want[i])
		}
	}
	if l.GrowthRate() != 1 {
		t.Errorf("GrowthRate() = %v, want 1", l.GrowthRate())
	}
}

func TestTarget(t *testing.T) {
	l := New()
	if _, ok := l.Target(0); ok {
		t.Error("Target(0) ok before start")
	}
	l.Start(100, 5)
	if v, ok := l.Target(0); !ok || v != 115 {
		t.Errorf("Target(0) = %v, %v; want 115, true", v, ok)
	}
	if _, ok := l.Target(12); ok {
		t.Error("Target(12) ok past the end")
	}
}

func TestParseResult(t *testing.T) {
	tests := []struct {
		in      string
		want    Result
		wantErr bool
	}{
		{"win", Win, false},
		{"W", Win, false},
		{" Loss ", Loss, false},
		{"l", Loss, false},
		{"draw", "", true},
	}

	for _, tt := range tests {
		got, err := ParseResult(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseResult(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseResult(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStartExtremeBalance(t *testing.T) {
	tests := []struct {
		name       string
		balance    float64
		wantLevels int
	}{
		{"overflowing balance", 1e308, 12},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
		{"not a number", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			l.Start(tt.balance, 5)

			if got := len(l.Targets()); got != tt.wantLevels {
				t.Fatalf("levels = %d, want %d", got, tt.wantLevels)
			}
			if tt.wantLevels == 0 {
				if err := l.Record(Win); !errors.Is(err, ErrNotStarted) {
					t.Errorf("Record on empty run: got %v, want ErrNotStarted", err)
				}
				return
			}

			if got := l.FinalTarget(); !math.IsInf(got, 1) {
				t.Errorf("FinalTarget() = %v, want +Inf", got)
			}
			if err := l.Record(Win); err != nil {
				t.Fatalf("Record(Win): %v", err)
			}
			_ = l.Snapshot()
		})
	}
}

func TestSingleLevelRun(t *testing.T) {
	tests := []struct {
		name          string
		result        Result
		wantBalance   float64
		wantCompleted bool
	}{
		{"win completes at once", Win, 115, true},
		{"loss stays at bottom", Loss, 115, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			l.Start(100, 1.1)
			if got := len(l.Targets()); got != 1 {
				t.Fatalf("levels = %d, want 1", got)
			}

			if err := l.Record(tt.result); err != nil {
				t.Fatalf("Record(%s): %v", tt.result, err)
			}
			if l.Level() != 0 {
				t.Errorf("Level() = %d, want 0", l.Level())
			}
			if l.Balance() != tt.wantBalance {
				t.Errorf("Balance() = %v, want %v", l.Balance(), tt.wantBalance)
			}
			if l.Completed() != tt.wantCompleted {
				t.Errorf("Completed() = %v, want %v", l.Completed(), tt.wantCompleted)
			}
		})
	}
}
