package adapt

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/metrics"
	"github.com/ayinesh/studycoach/internal/store"
)

type recoveryRecorder struct {
	calls []int
}

func (r *recoveryRecorder) InitiateRecovery(_ context.Context, _ uuid.UUID, daysMissed int) error {
	r.calls = append(r.calls, daysMissed)
	return nil
}

func newTestService(t *testing.T) (*Service, *metrics.Service, store.Repos, *recoveryRecorder, uuid.UUID) {
	t.Helper()
	repos := store.NewMemory()
	m := metrics.NewService(repos.Metrics)
	rec := &recoveryRecorder{}
	return NewService(m, repos.Events, rec), m, repos, rec, uuid.New()
}

func recordQuizScores(t *testing.T, m *metrics.Service, userID uuid.UUID, scores ...float64) {
	t.Helper()
	for _, s := range scores {
		if _, err := m.RecordQuizScore(context.Background(), userID, s); err != nil {
			t.Fatalf("RecordQuizScore(%v): %v", s, err)
		}
	}
}

func recordDialogueScores(t *testing.T, m *metrics.Service, userID uuid.UUID, scores ...float64) {
	t.Helper()
	for _, s := range scores {
		if _, err := m.RecordDialogueScore(context.Background(), userID, s); err != nil {
			t.Fatalf("RecordDialogueScore(%v): %v", s, err)
		}
	}
}

func TestCheckTriggersNoHistory(t *testing.T) {
	svc, _, _, _, userID := newTestService(t)

	triggers, err := svc.CheckTriggers(context.Background(), userID)
	if err != nil {
		t.Fatalf("CheckTriggers: %v", err)
	}
	if len(triggers) != 0 {
		t.Errorf("triggers for fresh user = %v, want none", triggers)
	}
}

func TestCheckTriggersNeedsThreeDataPoints(t *testing.T) {
	svc, m, _, _, userID := newTestService(t)
	recordQuizScores(t, m, userID, 0.95, 0.95)

	triggers, err := svc.CheckTriggers(context.Background(), userID)
	if err != nil {
		t.Fatalf("CheckTriggers: %v", err)
	}
	if len(triggers) != 0 {
		t.Errorf("triggers with 2 scores = %v, want none", triggers)
	}
}

func TestPaceUpTriggerAndApply(t *testing.T) {
	svc, m, repos, _, userID := newTestService(t)
	ctx := context.Background()
	recordQuizScores(t, m, userID, 0.9, 0.92, 0.95)

	triggers, err := svc.CheckTriggers(ctx, userID)
	if err != nil {
		t.Fatalf("CheckTriggers: %v", err)
	}
	if len(triggers) != 1 {
		t.Fatalf("got %d triggers, want 1", len(triggers))
	}
	trig := triggers[0]
	if trig.Type != learning.AdaptPace || trig.Severity != 0.6 {
		t.Errorf("trigger = %s/%v, want pace_adjustment/0.6", trig.Type, trig.Severity)
	}
	if trig.Data["recommended_pace"] != "fast" {
		t.Errorf("recommended pace = %v, want fast", trig.Data["recommended_pace"])
	}

	result, err := svc.Apply(ctx, userID, trig)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !result.Success {
		t.Error("Apply result not successful")
	}

	got, _ := m.Get(ctx, userID)
	if got.Pace != learning.PaceFast {
		t.Errorf("pace after apply = %s, want fast", got.Pace)
	}

	events, _ := repos.Events.AdaptationHistory(ctx, userID, 0)
	if len(events) != 1 {
		t.Fatalf("event count = %d, want exactly 1", len(events))
	}
	if events[0].Type != learning.AdaptPace {
		t.Errorf("event type = %s, want pace_adjustment", events[0].Type)
	}
}

func TestPaceDownTrigger(t *testing.T) {
	svc, m, _, _, userID := newTestService(t)
	recordQuizScores(t, m, userID, 0.5, 0.45, 0.4)

	triggers, _ := svc.CheckTriggers(context.Background(), userID)
	if len(triggers) != 1 {
		t.Fatalf("got %d triggers, want 1", len(triggers))
	}
	if triggers[0].Severity != 0.7 {
		t.Errorf("severity = %v, want 0.7", triggers[0].Severity)
	}
	if triggers[0].Data["recommended_pace"] != "slow" {
		t.Errorf("recommended pace = %v, want slow", triggers[0].Data["recommended_pace"])
	}
}

func TestPaceNeverSkipsSteps(t *testing.T) {
	svc, m, _, _, userID := newTestService(t)
	ctx := context.Background()

	if _, err := m.SetPace(ctx, userID, learning.PaceSlow); err != nil {
		t.Fatalf("SetPace: %v", err)
	}
	recordQuizScores(t, m, userID, 0.95, 0.95, 0.95)

	triggers, _ := svc.CheckTriggers(ctx, userID)
	if len(triggers) != 1 {
		t.Fatalf("got %d triggers, want 1", len(triggers))
	}
	if triggers[0].Data["recommended_pace"] != "normal" {
		t.Errorf("recommended pace from slow = %v, want normal", triggers[0].Data["recommended_pace"])
	}
}

func TestDifficultyTriggersRespectBounds(t *testing.T) {
	svc, m, _, _, userID := newTestService(t)
	ctx := context.Background()

	recordDialogueScores(t, m, userID, 0.95, 0.95, 0.95)
	triggers, _ := svc.CheckTriggers(ctx, userID)
	if len(triggers) != 1 || triggers[0].Type != learning.AdaptDifficulty {
		t.Fatalf("triggers = %v, want one difficulty trigger", triggers)
	}
	if got, _ := triggers[0].Data["recommended_difficulty"].(int); got != 4 {
		t.Errorf("recommended difficulty = %v, want 4", triggers[0].Data["recommended_difficulty"])
	}

	// At max difficulty the up rule must not fire.
	if _, err := m.SetDifficulty(ctx, userID, 5); err != nil {
		t.Fatalf("SetDifficulty: %v", err)
	}
	triggers, _ = svc.CheckTriggers(ctx, userID)
	if len(triggers) != 0 {
		t.Errorf("triggers at max difficulty = %v, want none", triggers)
	}
}

func TestRecoveryTriggerAndApplyDelegates(t *testing.T) {
	svc, _, repos, rec, userID := newTestService(t)
	ctx := context.Background()

	seedMissedDays(t, repos, userID, 4)

	triggers, err := svc.CheckTriggers(ctx, userID)
	if err != nil {
		t.Fatalf("CheckTriggers: %v", err)
	}
	var recovery *Trigger
	for i := range triggers {
		if triggers[i].Type == learning.AdaptRecovery {
			recovery = &triggers[i]
		}
	}
	if recovery == nil {
		t.Fatalf("no recovery trigger in %v", triggers)
	}
	if recovery.Severity != 0.8 {
		t.Errorf("severity = %v, want 0.8", recovery.Severity)
	}

	result, err := svc.Apply(ctx, userID, *recovery)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !result.Success {
		t.Error("Apply result not successful")
	}
	if result.NewValue["recovery_initiated"] != true {
		t.Errorf("new value = %v, want recovery_initiated=true", result.NewValue)
	}
	if len(rec.calls) != 1 || rec.calls[0] != 4 {
		t.Errorf("recovery initiator calls = %v, want [4]", rec.calls)
	}
}

func TestTriggersSortedBySeverityDescending(t *testing.T) {
	svc, m, repos, _, userID := newTestService(t)
	ctx := context.Background()

	// Fire pace down (0.7), difficulty down (0.6), recovery (0.8).
	recordQuizScores(t, m, userID, 0.4, 0.4, 0.4)
	recordDialogueScores(t, m, userID, 0.3, 0.3, 0.3)
	seedMissedDays(t, repos, userID, 5)

	triggers, err := svc.CheckTriggers(ctx, userID)
	if err != nil {
		t.Fatalf("CheckTriggers: %v", err)
	}
	if len(triggers) != 3 {
		t.Fatalf("got %d triggers, want 3", len(triggers))
	}
	if !sort.SliceIsSorted(triggers, func(i, j int) bool {
		return triggers[i].Severity > triggers[j].Severity
	}) {
		t.Errorf("triggers not sorted by severity: %v", triggers)
	}
	if triggers[0].Type != learning.AdaptRecovery {
		t.Errorf("most urgent trigger = %s, want recovery_plan", triggers[0].Type)
	}
}

func TestOverride(t *testing.T) {
	svc, m, _, _, userID := newTestService(t)
	ctx := context.Background()

	result, err := svc.Override(ctx, userID, learning.AdaptPace, "slow", "feeling overwhelmed")
	if err != nil {
		t.Fatalf("Override: %v", err)
	}
	if !result.Success {
		t.Error("pace override not successful")
	}
	got, _ := m.Get(ctx, userID)
	if got.Pace != learning.PaceSlow {
		t.Errorf("pace = %s, want slow", got.Pace)
	}

	events, _ := svc.History(ctx, userID, 1)
	if len(events) != 1 {
		t.Fatalf("event count = %d, want 1", len(events))
	}
	if want := "User override: feeling overwhelmed"; events[0].Reason != want {
		t.Errorf("reason = %q, want %q", events[0].Reason, want)
	}

	// Recovery plans are reported, not applied.
	result, err = svc.Override(ctx, userID, learning.AdaptRecovery, true, "whatever")
	if err != nil {
		t.Fatalf("Override recovery: %v", err)
	}
	if result.Success {
		t.Error("recovery override succeeded, want failure")
	}
}

func TestPredictNext(t *testing.T) {
	svc, m, _, _, userID := newTestService(t)
	ctx := context.Background()

	// No history: nothing predicted.
	trig, err := svc.PredictNext(ctx, userID)
	if err != nil {
		t.Fatalf("PredictNext: %v", err)
	}
	if trig != nil {
		t.Errorf("prediction for fresh user = %v, want nil", trig)
	}

	// Approaching the pace-up threshold (avg 0.82 >= 0.85-0.05).
	recordQuizScores(t, m, userID, 0.82, 0.82)
	trig, err = svc.PredictNext(ctx, userID)
	if err != nil {
		t.Fatalf("PredictNext: %v", err)
	}
	if trig == nil || trig.Type != learning.AdaptPace {
		t.Fatalf("prediction = %v, want pace trigger", trig)
	}
	if trig.Data["predicted_direction"] != "faster" {
		t.Errorf("direction = %v, want faster", trig.Data["predicted_direction"])
	}
	if trig.Severity != 0.3 {
		t.Errorf("severity = %v, want 0.3", trig.Severity)
	}
}

func TestPredictNextRecoveryWarning(t *testing.T) {
	svc, m, repos, _, userID := newTestService(t)
	ctx := context.Background()

	recordQuizScores(t, m, userID, 0.7, 0.7)
	seedMissedDays(t, repos, userID, 2)

	trig, err := svc.PredictNext(ctx, userID)
	if err != nil {
		t.Fatalf("PredictNext: %v", err)
	}
	if trig == nil || trig.Type != learning.AdaptRecovery {
		t.Fatalf("prediction = %v, want recovery warning", trig)
	}
	if trig.Severity != 0.4 {
		t.Errorf("severity = %v, want 0.4", trig.Severity)
	}
}

// seedMissedDays backdates the last session so the derived missed-day
// count equals days.
func seedMissedDays(t *testing.T, repos store.Repos, userID uuid.UUID, days int) {
	t.Helper()
	last := time.Now().AddDate(0, 0, -(days + 1))
	_, err := repos.Metrics.Update(context.Background(), userID, func(rec *store.LearnerMetrics) error {
		rec.LastSessionDate = &last
		return nil
	})
	if err != nil {
		t.Fatalf("seed missed days: %v", err)
	}
}
