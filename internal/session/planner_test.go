package session

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/store"
)

func baseMetrics() *store.LearnerMetrics {
	return store.NewLearnerMetrics(uuid.New())
}

func TestDetermineKindPriority(t *testing.T) {
	tests := []struct {
		name string
		prep func(*store.LearnerMetrics)
		want PlanKind
	}{
		{"fresh user", func(m *store.LearnerMetrics) {}, PlanRegular},
		{"recovery wins", func(m *store.LearnerMetrics) {
			m.ConsecutiveMissedDays = 4
			m.Gaps = []string{"a", "b", "c"}
			m.AvgQuizScore = 0.9
			m.Pace = learning.PaceFast
		}, PlanRecovery},
		{"review on gaps", func(m *store.LearnerMetrics) {
			m.Gaps = []string{"a", "b", "c"}
		}, PlanReview},
		{"review on declining trend", func(m *store.LearnerMetrics) {
			m.QuizScores = []float64{0.9, 0.9, 0.9, 0.5, 0.5, 0.5}
		}, PlanReview},
		{"drill for fast high performers", func(m *store.LearnerMetrics) {
			m.AvgQuizScore = 0.9
			m.Pace = learning.PaceFast
		}, PlanDrill},
		{"high score alone is not drill", func(m *store.LearnerMetrics) {
			m.AvgQuizScore = 0.9
		}, PlanRegular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := baseMetrics()
			tt.prep(m)
			if got := DetermineKind(m); got != tt.want {
				t.Errorf("DetermineKind = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecommendDuration(t *testing.T) {
	tests := []struct {
		name string
		prep func(*store.LearnerMetrics)
		kind PlanKind
		want int
	}{
		{"regular default", func(m *store.LearnerMetrics) {}, PlanRegular, 30},
		{"recovery shorter", func(m *store.LearnerMetrics) {}, PlanRecovery, 21},
		{"drill shorter", func(m *store.LearnerMetrics) {}, PlanDrill, 24},
		{"review slightly shorter", func(m *store.LearnerMetrics) {}, PlanReview, 27},
		{"low completion shortens", func(m *store.LearnerMetrics) {
			m.SessionsStarted = 10
			m.SessionsCompleted = 5
		}, PlanRegular, 24},
		{"perfect completion lengthens", func(m *store.LearnerMetrics) {
			m.SessionsStarted = 10
			m.SessionsCompleted = 10
		}, PlanRegular, 33},
		{"clamped low", func(m *store.LearnerMetrics) {
			m.AvgSessionMinutes = 12
		}, PlanRecovery, 15},
		{"clamped high", func(m *store.LearnerMetrics) {
			m.AvgSessionMinutes = 200
		}, PlanRegular, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := baseMetrics()
			tt.prep(m)
			if got := RecommendDuration(m, tt.kind); got != tt.want {
				t.Errorf("RecommendDuration = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReviewRatio(t *testing.T) {
	tests := []struct {
		name string
		prep func(*store.LearnerMetrics)
		kind PlanKind
		want float64
	}{
		{"regular base", func(m *store.LearnerMetrics) {}, PlanRegular, 0.4},
		{"recovery base", func(m *store.LearnerMetrics) {}, PlanRecovery, 0.8},
		{"review base", func(m *store.LearnerMetrics) {}, PlanReview, 0.7},
		{"drill base", func(m *store.LearnerMetrics) {}, PlanDrill, 0.3},
		{"declining adds review", func(m *store.LearnerMetrics) {
			m.QuizScores = []float64{0.9, 0.9, 0.9, 0.5, 0.5, 0.5}
		}, PlanRegular, 0.55},
		{"improving trims review", func(m *store.LearnerMetrics) {
			m.QuizScores = []float64{0.5, 0.5, 0.5, 0.9, 0.9, 0.9}
		}, PlanRegular, 0.3},
		{"gap adjustment capped", func(m *store.LearnerMetrics) {
			m.Gaps = []string{"a", "b", "c", "d", "e", "f"}
		}, PlanRegular, 0.6},
		{"clamped high", func(m *store.LearnerMetrics) {
			m.QuizScores = []float64{0.9, 0.9, 0.9, 0.5, 0.5, 0.5}
			m.Gaps = []string{"a", "b", "c", "d"}
		}, PlanRecovery, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := baseMetrics()
			tt.prep(m)
			got := ReviewRatio(m, tt.kind)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("ReviewRatio = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildPlanNeverOverrunsBudget(t *testing.T) {
	kinds := []PlanKind{PlanRegular, PlanDrill, PlanReview, PlanRecovery}
	variants := []func(*store.LearnerMetrics){
		func(m *store.LearnerMetrics) {},
		func(m *store.LearnerMetrics) { m.Gaps = []string{"a", "b"}; m.CurrentStreak = 3 },
		func(m *store.LearnerMetrics) {
			m.QuizScores = []float64{0.9, 0.9, 0.9, 0.4, 0.4, 0.4}
			m.Gaps = []string{"a", "b", "c", "d", "e"}
		},
	}

	for _, kind := range kinds {
		for vi, variant := range variants {
			for budget := 15; budget <= 180; budget++ {
				m := baseMetrics()
				variant(m)
				plan := BuildPlan(uuid.New(), kind, budget, m)
				if got := plan.PlannedMinutes(); got > budget {
					t.Fatalf("kind=%s variant=%d budget=%d: planned %d minutes", kind, vi, budget, got)
				}
				for _, item := range plan.Items {
					if item.DurationMinutes < 0 {
						t.Fatalf("kind=%s budget=%d: negative duration item %+v", kind, budget, item)
					}
				}
			}
		}
	}
}

func TestBuildPlanRegularShape(t *testing.T) {
	m := baseMetrics()
	m.Gaps = []string{"pointers"}
	m.CurrentStreak = 2

	plan := BuildPlan(uuid.New(), PlanRegular, 60, m)

	if !plan.IncludesReview {
		t.Error("IncludesReview = false, want true with gaps and streak")
	}
	if len(plan.Items) == 0 {
		t.Fatal("empty plan")
	}
	if plan.Items[0].Activity != learning.ActivityDrill || plan.Items[0].TopicID != "pointers" {
		t.Errorf("first item = %+v, want warm-up drill on pointers", plan.Items[0])
	}
	last := plan.Items[len(plan.Items)-1]
	if last.Activity != learning.ActivityReflection || last.DurationMinutes != 2 {
		t.Errorf("last item = %+v, want 2-minute reflection", last)
	}
	if plan.TopicsCovered[0] != "pointers" {
		t.Errorf("topics covered = %v, want [pointers]", plan.TopicsCovered)
	}

	for i, item := range plan.Items {
		if item.Order != i {
			t.Errorf("item %d has order %d", i, item.Order)
		}
	}
}

func TestBuildPlanNoReviewForFreshUser(t *testing.T) {
	plan := BuildPlan(uuid.New(), PlanRegular, 40, baseMetrics())
	if plan.IncludesReview {
		t.Error("IncludesReview = true for user with no gaps and no streak")
	}
	for _, item := range plan.Items {
		if item.Activity == learning.ActivityDrill {
			t.Errorf("fresh user plan contains a warm-up drill: %+v", item)
		}
	}
}

func TestBuildPlanDrillShape(t *testing.T) {
	plan := BuildPlan(uuid.New(), PlanDrill, 40, baseMetrics())
	if len(plan.Items) != 3 {
		t.Fatalf("drill plan has %d items, want 3", len(plan.Items))
	}
	if plan.Items[0].Activity != learning.ActivityQuiz || plan.Items[0].DurationMinutes != 4 {
		t.Errorf("warm-up = %+v, want 4-minute quiz", plan.Items[0])
	}
	if plan.Items[1].Activity != learning.ActivityDrill || plan.Items[1].DurationMinutes != 34 {
		t.Errorf("drill block = %+v, want 34 minutes", plan.Items[1])
	}
	if plan.PlannedMinutes() != 40 {
		t.Errorf("drill plan sums to %d, want 40", plan.PlannedMinutes())
	}
}

func TestBuildPlanRequestedTopics(t *testing.T) {
	plan := BuildPlan(uuid.New(), PlanRegular, 60, baseMetrics(), "generics", "context")

	topicFor := func(activity learning.ActivityType) string {
		for _, item := range plan.Items {
			if item.Activity == activity {
				return item.TopicID
			}
		}
		t.Fatalf("no %s item in plan %+v", activity, plan.Items)
		return ""
	}
	if got := topicFor(learning.ActivityContentRead); got != "generics" {
		t.Errorf("content topic = %q, want generics", got)
	}
	if got := topicFor(learning.ActivityDialogue); got != "context" {
		t.Errorf("dialogue topic = %q, want context", got)
	}
	// Two topics across three main blocks: the quiz cycles back to the first.
	if got := topicFor(learning.ActivityQuiz); got != "generics" {
		t.Errorf("quiz topic = %q, want generics", got)
	}
	if len(plan.TopicsCovered) != 2 {
		t.Errorf("topics covered = %v, want [generics context]", plan.TopicsCovered)
	}
}

func TestBuildPlanDrillRequestedTopic(t *testing.T) {
	plan := BuildPlan(uuid.New(), PlanDrill, 40, baseMetrics(), "sorting")
	if plan.Items[0].TopicID != "sorting" || plan.Items[1].TopicID != "sorting" {
		t.Errorf("drill topics = %q/%q, want sorting", plan.Items[0].TopicID, plan.Items[1].TopicID)
	}
	if len(plan.TopicsCovered) != 1 || plan.TopicsCovered[0] != "sorting" {
		t.Errorf("topics covered = %v, want [sorting]", plan.TopicsCovered)
	}
}

func TestBuildPlanRecoveryShape(t *testing.T) {
	plan := BuildPlan(uuid.New(), PlanRecovery, 30, baseMetrics())
	if len(plan.Items) != 3 {
		t.Fatalf("recovery plan has %d items, want 3", len(plan.Items))
	}
	if plan.Items[0].Activity != learning.ActivityDrill || plan.Items[0].DurationMinutes != 18 {
		t.Errorf("review block = %+v, want 18 minutes", plan.Items[0])
	}
	if plan.Items[1].Activity != learning.ActivityContentRead || plan.Items[1].DurationMinutes != 9 {
		t.Errorf("learn block = %+v, want 9 minutes", plan.Items[1])
	}
	if plan.PlannedMinutes() != 30 {
		t.Errorf("recovery plan sums to %d, want 30", plan.PlannedMinutes())
	}
}

func TestKindTypeRoundTrip(t *testing.T) {
	if PlanRecovery.SessionType() != learning.SessionCatchup {
		t.Error("recovery should run as a catchup session")
	}
	if KindForType(learning.SessionCatchup) != PlanRecovery {
		t.Error("catchup sessions should plan as recovery")
	}
	if PlanReview.SessionType() != learning.SessionRegular {
		t.Error("review should run as a regular session")
	}
}

func TestStreakAtRisk(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	m := baseMetrics()
	if streakAtRisk(m, now) {
		t.Error("fresh user at risk")
	}

	yesterday := now.AddDate(0, 0, -1)
	m.LastSessionDate = &yesterday
	m.CurrentStreak = 3
	if !streakAtRisk(m, now) {
		t.Error("streak with last session yesterday should be at risk")
	}

	today := now.Add(-time.Hour)
	m.LastSessionDate = &today
	if streakAtRisk(m, now) {
		t.Error("streak with session today should not be at risk")
	}
}
