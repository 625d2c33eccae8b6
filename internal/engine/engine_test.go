package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/quizgen"
	"github.com/ayinesh/studycoach/internal/session"
	"github.com/ayinesh/studycoach/internal/store"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestEngine(t *testing.T) (*Engine, *fakeClock, uuid.UUID) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	eng, err := New(Options{Repos: store.NewMemory(), Clock: clock.Now})
	require.NoError(t, err)
	return eng, clock, uuid.New()
}

func TestNewRequiresRepos(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestFullSessionFlow(t *testing.T) {
	eng, clock, userID := newTestEngine(t)
	ctx := context.Background()

	sess, err := eng.StartSession(ctx, userID, 40, session.PlanRegular)
	require.NoError(t, err)

	plan, err := eng.GetSessionPlan(ctx, sess.ID)
	require.NoError(t, err)
	assert.LessOrEqual(t, plan.PlannedMinutes(), 40)

	act, err := eng.RecordActivity(ctx, sess.ID, learning.ActivityQuiz, "slices", "", nil)
	require.NoError(t, err)
	_, err = eng.CompleteActivity(ctx, act.ID, map[string]any{"score": 0.9})
	require.NoError(t, err)

	clock.Advance(35 * time.Minute)
	summary, err := eng.EndSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 35, summary.DurationMinutes)
	require.NotNil(t, summary.QuizScore)
	assert.InDelta(t, 0.9, *summary.QuizScore, 1e-9)

	streak, err := eng.GetStreakInfo(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.Current)

	history, err := eng.GetSessionHistory(ctx, userID, 10, false)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, learning.StatusCompleted, history[0].Status)

	activities, err := eng.GetSessionActivities(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
}

func TestConcurrentStartOneWins(t *testing.T) {
	eng, _, userID := newTestEngine(t)
	ctx := context.Background()

	const n = 8
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := eng.StartSession(ctx, userID, 30, session.PlanRegular)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok int
	for err := range errs {
		if err == nil {
			ok++
		} else if !errors.Is(err, store.ErrActiveSession) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
}

func TestHighScoresDriveFasterPace(t *testing.T) {
	eng, _, userID := newTestEngine(t)
	ctx := context.Background()

	for _, s := range []float64{0.9, 0.92, 0.95} {
		_, err := eng.RecordQuizScore(ctx, userID, s)
		require.NoError(t, err)
	}

	triggers, err := eng.CheckTriggers(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, triggers)
	assert.Equal(t, learning.AdaptPace, triggers[0].Type)

	rec, err := eng.GetPaceRecommendation(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, learning.PaceNormal, rec.Current)
	assert.Equal(t, learning.PaceFast, rec.Recommended)

	result, err := eng.ApplyAdaptation(ctx, userID, triggers[0])
	require.NoError(t, err)
	assert.True(t, result.Success)

	m, err := eng.GetMetrics(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, learning.PaceFast, m.Pace)

	events, err := eng.GetAdaptationHistory(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, learning.AdaptPace, events[0].Type)
}

func TestPaceRecommendationStableByDefault(t *testing.T) {
	eng, _, userID := newTestEngine(t)

	rec, err := eng.GetPaceRecommendation(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, rec.Current, rec.Recommended)
}

func TestOverrideAdaptation(t *testing.T) {
	eng, _, userID := newTestEngine(t)
	ctx := context.Background()

	result, err := eng.OverrideAdaptation(ctx, userID, learning.AdaptPace, "slow", "feeling overwhelmed")
	require.NoError(t, err)
	assert.True(t, result.Success)

	m, err := eng.GetMetrics(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, learning.PaceSlow, m.Pace)
}

func TestRecoveryPlanAfterAbsence(t *testing.T) {
	eng, clock, userID := newTestEngine(t)
	ctx := context.Background()

	sess, err := eng.StartSession(ctx, userID, 30, session.PlanRegular)
	require.NoError(t, err)
	clock.Advance(20 * time.Minute)
	_, err = eng.EndSession(ctx, sess.ID)
	require.NoError(t, err)

	require.NoError(t, eng.RecordGap(ctx, userID, "goroutines"))

	// Six days away: metrics should report 5 missed days, and the derived
	// plan should reduce new content over 2 sessions.
	clock.Advance(6 * 24 * time.Hour)

	plan, err := eng.GenerateRecoveryPlan(ctx, userID, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, plan.DaysMissed)
	assert.True(t, plan.ReducedNewContent)
	assert.Equal(t, 2, plan.SuggestedSessionCount)
	assert.Contains(t, plan.ReviewTopics, "goroutines")
	assert.NotEmpty(t, plan.Message)
}

func TestReviewScheduleRoundTrip(t *testing.T) {
	eng, _, userID := newTestEngine(t)
	ctx := context.Background()

	item, err := eng.UpdateReviewSchedule(ctx, userID, "interfaces", true, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, item.IntervalDays)

	due, err := eng.GetDueReviews(ctx, userID, 10)
	require.NoError(t, err)
	assert.Empty(t, due, "freshly reviewed topic should not be due")
}

func TestGapLifecycle(t *testing.T) {
	eng, _, userID := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.RecordGap(ctx, userID, "channels"))
	m, err := eng.GetMetrics(ctx, userID)
	require.NoError(t, err)
	assert.True(t, m.HasGap("channels"))

	require.NoError(t, eng.ResolveGap(ctx, userID, "channels"))
	m, err = eng.GetMetrics(ctx, userID)
	require.NoError(t, err)
	assert.False(t, m.HasGap("channels"))
}

func TestAnalyzePatterns(t *testing.T) {
	eng, _, userID := newTestEngine(t)
	ctx := context.Background()

	for _, s := range []float64{0.5, 0.55, 0.6, 0.8, 0.85, 0.9} {
		_, err := eng.RecordQuizScore(ctx, userID, s)
		require.NoError(t, err)
	}

	report, err := eng.AnalyzePatterns(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, learning.TrendImproving, report.QuizTrend)
}

func TestQuizQuestionWithoutProvider(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	q, err := eng.GenerateQuizQuestion(context.Background(), quizgen.GenerateInput{TopicID: "testing"})
	require.NoError(t, err)
	assert.Len(t, q.Choices, 4)
	assert.Contains(t, q.Choices, q.Answer)
}

func TestPredictNextAdaptation(t *testing.T) {
	eng, _, userID := newTestEngine(t)
	ctx := context.Background()

	pred, err := eng.PredictNextAdaptation(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, pred, "fresh user has nothing brewing")

	for _, s := range []float64{0.82, 0.82} {
		_, err := eng.RecordQuizScore(ctx, userID, s)
		require.NoError(t, err)
	}
	pred, err = eng.PredictNextAdaptation(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, pred)
	assert.Equal(t, learning.AdaptPace, pred.Type)
	assert.Equal(t, "faster", pred.Data["predicted_direction"])
}
