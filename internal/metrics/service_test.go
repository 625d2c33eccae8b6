package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/store"
)

func newTestService() (*Service, uuid.UUID) {
	repos := store.NewMemory()
	return NewService(repos.Metrics), uuid.New()
}

func TestRecordQuizScoreBoundsHistory(t *testing.T) {
	svc, userID := newTestService()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		if _, err := svc.RecordQuizScore(ctx, userID, 0.5); err != nil {
			t.Fatalf("RecordQuizScore: %v", err)
		}
	}
	m, err := svc.RecordQuizScore(ctx, userID, 1.0)
	if err != nil {
		t.Fatalf("RecordQuizScore: %v", err)
	}
	if len(m.QuizScores) != store.MaxScoreHistory {
		t.Errorf("history length = %d, want %d", len(m.QuizScores), store.MaxScoreHistory)
	}
	if m.QuizScores[len(m.QuizScores)-1] != 1.0 {
		t.Errorf("newest score = %v, want 1.0", m.QuizScores[len(m.QuizScores)-1])
	}
	want := (0.5*9 + 1.0) / 10
	if diff := m.AvgQuizScore - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("avg = %v, want %v", m.AvgQuizScore, want)
	}
}

func TestRecordScoreRejectsOutOfRange(t *testing.T) {
	svc, userID := newTestService()
	ctx := context.Background()

	if _, err := svc.RecordQuizScore(ctx, userID, 1.5); err == nil {
		t.Error("quiz score 1.5 accepted, want error")
	}
	if _, err := svc.RecordDialogueScore(ctx, userID, -0.1); err == nil {
		t.Error("dialogue score -0.1 accepted, want error")
	}
}

func TestGapRecordAndResolve(t *testing.T) {
	svc, userID := newTestService()
	ctx := context.Background()

	for _, topic := range []string{"pointers", "slices", "pointers"} {
		if err := svc.RecordGap(ctx, userID, topic); err != nil {
			t.Fatalf("RecordGap: %v", err)
		}
	}
	m, _ := svc.Get(ctx, userID)
	if len(m.Gaps) != 2 {
		t.Fatalf("gaps = %v, want 2 unique entries", m.Gaps)
	}

	if err := svc.ResolveGap(ctx, userID, "pointers"); err != nil {
		t.Fatalf("ResolveGap: %v", err)
	}
	m, _ = svc.Get(ctx, userID)
	if len(m.Gaps) != 1 || m.Gaps[0] != "slices" {
		t.Errorf("gaps after resolve = %v, want [slices]", m.Gaps)
	}
}

func TestAbsenceRefresh(t *testing.T) {
	svc, userID := newTestService()
	ctx := context.Background()

	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return now })

	tests := []struct {
		daysAgo int
		want    int
	}{
		{0, 0}, // session today
		{1, 0}, // session yesterday, nothing missed yet
		{2, 1},
		{6, 5},
	}
	for _, tt := range tests {
		last := now.AddDate(0, 0, -tt.daysAgo)
		if _, err := svc.repo.Update(ctx, userID, func(m *store.LearnerMetrics) error {
			m.LastSessionDate = &last
			return nil
		}); err != nil {
			t.Fatalf("seed last session date: %v", err)
		}

		m, err := svc.Get(ctx, userID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if m.ConsecutiveMissedDays != tt.want {
			t.Errorf("last session %d days ago: missed = %d, want %d",
				tt.daysAgo, m.ConsecutiveMissedDays, tt.want)
		}
	}
}

func TestAnalyzePatternsDefaults(t *testing.T) {
	svc, userID := newTestService()

	report, err := svc.AnalyzePatterns(context.Background(), userID)
	if err != nil {
		t.Fatalf("AnalyzePatterns: %v", err)
	}
	if report.QuizTrend != "stable" || report.DialogueTrend != "stable" {
		t.Errorf("trends = %s/%s, want stable/stable", report.QuizTrend, report.DialogueTrend)
	}
	if report.CompletionRate != 0.8 {
		t.Errorf("default completion rate = %v, want 0.8", report.CompletionRate)
	}
	if report.Pace != "normal" || report.DifficultyLevel != 3 {
		t.Errorf("settings = %s/%d, want normal/3", report.Pace, report.DifficultyLevel)
	}
}
