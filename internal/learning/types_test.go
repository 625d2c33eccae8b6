package learning

import "testing"

func TestPaceStepUp(t *testing.T) {
	tests := []struct {
		from Pace
		want Pace
	}{
		{PaceSlow, PaceNormal},
		{PaceNormal, PaceFast},
		{PaceFast, PaceFast},
	}
	for _, tt := range tests {
		if got := tt.from.StepUp(); got != tt.want {
			t.Errorf("%s.StepUp() = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestPaceStepDown(t *testing.T) {
	tests := []struct {
		from Pace
		want Pace
	}{
		{PaceFast, PaceNormal},
		{PaceNormal, PaceSlow},
		{PaceSlow, PaceSlow},
	}
	for _, tt := range tests {
		if got := tt.from.StepDown(); got != tt.want {
			t.Errorf("%s.StepDown() = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestClampDifficulty(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 1},
		{1, 1},
		{3, 3},
		{5, 5},
		{9, 5},
	}
	for _, tt := range tests {
		if got := ClampDifficulty(tt.in); got != tt.want {
			t.Errorf("ClampDifficulty(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStatusTransition(t *testing.T) {
	tests := []struct {
		from    SessionStatus
		to      SessionStatus
		wantErr bool
	}{
		{StatusPlanned, StatusInProgress, false},
		{StatusInProgress, StatusCompleted, false},
		{StatusInProgress, StatusAbandoned, false},
		{StatusCompleted, StatusInProgress, true},
		{StatusAbandoned, StatusCompleted, true},
		{StatusCompleted, StatusAbandoned, true},
		{StatusPlanned, StatusCompleted, true},
	}
	for _, tt := range tests {
		_, err := tt.from.Transition(tt.to)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s → %s: err = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
		}
	}
}

func TestOverridable(t *testing.T) {
	if !AdaptPace.Overridable() || !AdaptDifficulty.Overridable() {
		t.Error("pace and difficulty must be overridable")
	}
	if AdaptRecovery.Overridable() || AdaptCurriculum.Overridable() {
		t.Error("recovery and curriculum must not be overridable")
	}
}
