package ladder

// RunState summarises where a run stands.
type RunState string

const (
	StateIdle      RunState = "idle"
	StateClimbing  RunState = "climbing"
	StateCompleted RunState = "completed"
)

// Snapshot captures the complete ladder state for display and export.
type Snapshot struct {
	RunID           string    `yaml:"run_id,omitempty"`
	State           RunState  `yaml:"state"`
	StartingBalance float64   `yaml:"starting_balance"`
	Goal            float64   `yaml:"goal"`
	GrowthRate      float64   `yaml:"growth_rate"`
	Level           int       `yaml:"level"` // 1-indexed for display, 0 when idle
	Levels          int       `yaml:"levels"`
	Balance         float64   `yaml:"balance"`
	FinalTarget     float64   `yaml:"final_target"`
	WinRate         float64   `yaml:"win_rate"`
	Targets         []float64 `yaml:"targets"`
	History         []Entry   `yaml:"history,omitempty"`
}

// Snapshot returns a copy of the current state.
func (l *Ladder) Snapshot() Snapshot {
	state := StateIdle
	level := 0
	switch {
	case l.completed:
		state = StateCompleted
		level = l.level + 1
	case l.Started():
		state = StateClimbing
		level = l.level + 1
	}

	runID := ""
	if l.Started() {
		runID = l.runID.String()
	}

	return Snapshot{
		RunID:           runID,
		State:           state,
		StartingBalance: l.start,
		Goal:            l.goal,
		GrowthRate:      l.growthRate,
		Level:           level,
		Levels:          len(l.targets),
		Balance:         l.balance,
		FinalTarget:     l.FinalTarget(),
		WinRate:         l.WinRate(),
		Targets:         l.Targets(),
		History:         l.History(),
	}
}
