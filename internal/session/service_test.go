package session

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
	"github.com/ayinesh/studycoach/internal/metrics"
	"github.com/ayinesh/studycoach/internal/store"
)

// testClock is a settable time source shared by the services under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*Service, store.Repos, *testClock, uuid.UUID) {
	t.Helper()
	clock := newTestClock()
	repos := store.NewMemory()
	m := metrics.NewService(repos.Metrics).WithClock(clock.Now)
	svc := NewService(repos, m).WithClock(clock.Now)
	return svc, repos, clock, uuid.New()
}

func TestStartRejectsInvalidKind(t *testing.T) {
	svc, _, _, userID := newTestService(t)
	_, err := svc.Start(context.Background(), userID, 30, PlanKind("sprint"))
	assert.Error(t, err)
}

func TestStartClampsRequestedMinutes(t *testing.T) {
	svc, _, _, userID := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, userID, 5, PlanRegular)
	require.NoError(t, err)
	assert.Equal(t, 10, sess.PlannedMinutes)

	require.NoError(t, svc.Abandon(ctx, sess.ID, "test"))

	sess, err = svc.Start(ctx, userID, 600, PlanRegular)
	require.NoError(t, err)
	assert.Equal(t, 180, sess.PlannedMinutes)
}

func TestStartDefaultsFromMetrics(t *testing.T) {
	svc, _, _, userID := newTestService(t)

	sess, err := svc.Start(context.Background(), userID, 0, "")
	require.NoError(t, err)
	assert.Equal(t, learning.SessionRegular, sess.Type)
	assert.Equal(t, 30, sess.PlannedMinutes)
	assert.Equal(t, learning.StatusInProgress, sess.Status)
}

func TestStartConcurrentExactlyOneWins(t *testing.T) {
	svc, _, _, userID := newTestService(t)
	ctx := context.Background()

	const n = 10
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Start(ctx, userID, 30, PlanRegular)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, busy int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, store.ErrActiveSession):
			busy++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, busy)
}

func TestStartCountsSessionsStarted(t *testing.T) {
	svc, repos, _, userID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, userID, 30, PlanRegular)
	require.NoError(t, err)

	m, err := repos.Metrics.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, m.SessionsStarted)
}

func TestGetPlanCachesUntilSessionEnds(t *testing.T) {
	svc, _, clock, userID := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, userID, 45, PlanRegular)
	require.NoError(t, err)

	first, err := svc.GetPlan(ctx, sess.ID)
	require.NoError(t, err)
	second, err := svc.GetPlan(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, first, second)

	clock.Advance(40 * time.Minute)
	_, err = svc.End(ctx, sess.ID)
	require.NoError(t, err)

	svc.mu.Lock()
	_, cached := svc.plans[sess.ID]
	svc.mu.Unlock()
	assert.False(t, cached, "plan should be dropped when the session ends")
}

func TestGetPlanDroppedOnAbandon(t *testing.T) {
	svc, _, _, userID := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, userID, 45, PlanDrill)
	require.NoError(t, err)
	_, err = svc.GetPlan(ctx, sess.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(ctx, sess.ID, "interrupted"))

	svc.mu.Lock()
	_, cached := svc.plans[sess.ID]
	svc.mu.Unlock()
	assert.False(t, cached)
}

func TestGetPlanMatchesSessionType(t *testing.T) {
	svc, _, _, userID := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, userID, 40, PlanDrill)
	require.NoError(t, err)
	plan, err := svc.GetPlan(ctx, sess.ID)
	require.NoError(t, err)

	assert.Equal(t, PlanDrill, plan.Kind)
	assert.LessOrEqual(t, plan.PlannedMinutes(), 40)
}

func TestStartPreservesReviewKindInPlan(t *testing.T) {
	svc, repos, _, userID := newTestService(t)
	ctx := context.Background()

	_, err := repos.Metrics.Update(ctx, userID, func(m *store.LearnerMetrics) error {
		m.Gaps = []string{"slices", "maps", "channels"}
		return nil
	})
	require.NoError(t, err)

	// Three gaps make the planner choose a review session, but the stored
	// record only knows the coarser regular type.
	sess, err := svc.Start(ctx, userID, 30, "")
	require.NoError(t, err)
	assert.Equal(t, learning.SessionRegular, sess.Type)

	plan, err := svc.GetPlan(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, PlanReview, plan.Kind)
	// Review base 0.7 plus 0.05 per gap.
	assert.InDelta(t, 0.85, plan.ReviewRatio, 1e-9)
}

func TestStartRequestedTopicsFlowIntoPlan(t *testing.T) {
	svc, _, _, userID := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, userID, 60, PlanRegular, "generics", "context")
	require.NoError(t, err)

	plan, err := svc.GetPlan(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"generics", "context"}, plan.TopicsCovered)
}

func TestRecordActivityRequiresInProgress(t *testing.T) {
	svc, _, clock, userID := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, userID, 30, PlanRegular)
	require.NoError(t, err)
	clock.Advance(20 * time.Minute)
	_, err = svc.End(ctx, sess.ID)
	require.NoError(t, err)

	_, err = svc.RecordActivity(ctx, sess.ID, learning.ActivityQuiz, "t1", "", nil)
	assert.ErrorIs(t, err, ErrNotInProgress)
}

func TestCompleteActivityTwiceFails(t *testing.T) {
	svc, _, _, userID := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, userID, 30, PlanRegular)
	require.NoError(t, err)
	act, err := svc.RecordActivity(ctx, sess.ID, learning.ActivityQuiz, "t1", "", nil)
	require.NoError(t, err)

	_, err = svc.CompleteActivity(ctx, act.ID, map[string]any{"score": 0.9})
	require.NoError(t, err)
	_, err = svc.CompleteActivity(ctx, act.ID, nil)
	assert.Error(t, err)
}

func TestEndTwiceFails(t *testing.T) {
	svc, _, clock, userID := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, userID, 30, PlanRegular)
	require.NoError(t, err)
	clock.Advance(25 * time.Minute)
	_, err = svc.End(ctx, sess.ID)
	require.NoError(t, err)
	_, err = svc.End(ctx, sess.ID)
	assert.Error(t, err)
}

func TestEndAfterAbandonFails(t *testing.T) {
	svc, _, _, userID := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, userID, 30, PlanRegular)
	require.NoError(t, err)
	require.NoError(t, svc.Abandon(ctx, sess.ID, "phone call"))
	_, err = svc.End(ctx, sess.ID)
	assert.Error(t, err)
}

func TestEndAggregatesActivities(t *testing.T) {
	svc, repos, clock, userID := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, userID, 30, PlanRegular)
	require.NoError(t, err)
	_, err = svc.GetPlan(ctx, sess.ID)
	require.NoError(t, err)

	read, err := svc.RecordActivity(ctx, sess.ID, learning.ActivityContentRead, "slices", "ch3", nil)
	require.NoError(t, err)
	_, err = svc.CompleteActivity(ctx, read.ID, nil)
	require.NoError(t, err)

	quiz, err := svc.RecordActivity(ctx, sess.ID, learning.ActivityQuiz, "slices", "", nil)
	require.NoError(t, err)
	_, err = svc.CompleteActivity(ctx, quiz.ID, map[string]any{
		"score": 0.8,
		"gaps":  []string{"append semantics"},
	})
	require.NoError(t, err)

	clock.Advance(25 * time.Minute)
	summary, err := svc.End(ctx, sess.ID)
	require.NoError(t, err)

	assert.Equal(t, 25, summary.DurationMinutes)
	assert.Equal(t, 2, summary.ActivitiesCompleted)
	assert.Equal(t, 1, summary.ContentConsumed)
	require.NotNil(t, summary.QuizScore)
	assert.InDelta(t, 0.8, *summary.QuizScore, 1e-9)
	assert.Equal(t, []string{"append semantics"}, summary.NewGaps)
	assert.True(t, summary.StreakUpdated)
	assert.Contains(t, summary.NextSessionPreview, "append semantics")

	m, err := repos.Metrics.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, m.SessionsCompleted)
	assert.Equal(t, 1, m.SessionsLast7Days)
	assert.Equal(t, 1, m.SessionsLast30Days)
	assert.Equal(t, 25, m.AvgSessionMinutes)
	assert.Equal(t, []string{"append semantics"}, m.Gaps)
	require.Len(t, m.QuizScores, 1)
	assert.InDelta(t, 0.8, m.QuizScores[0], 1e-9)
	assert.InDelta(t, 0.8, m.AvgQuizScore, 1e-9)
}

func TestEndAveragesSessionDuration(t *testing.T) {
	svc, repos, clock, userID := newTestService(t)
	ctx := context.Background()

	for _, minutes := range []int{20, 40} {
		sess, err := svc.Start(ctx, userID, 60, PlanRegular)
		require.NoError(t, err)
		clock.Advance(time.Duration(minutes) * time.Minute)
		_, err = svc.End(ctx, sess.ID)
		require.NoError(t, err)
	}

	m, err := repos.Metrics.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 30, m.AvgSessionMinutes)
}

func TestStreakGrowsOnConsecutiveDays(t *testing.T) {
	svc, _, clock, userID := newTestService(t)
	ctx := context.Background()

	endOne := func() {
		sess, err := svc.Start(ctx, userID, 30, PlanRegular)
		require.NoError(t, err)
		clock.Advance(20 * time.Minute)
		_, err = svc.End(ctx, sess.ID)
		require.NoError(t, err)
	}

	for day := 0; day < 3; day++ {
		endOne()
		clock.Advance(24 * time.Hour)
	}

	info, err := svc.Streak(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, info.Current)
	assert.Equal(t, 3, info.Longest)
}

func TestStreakSecondSessionSameDayNoChange(t *testing.T) {
	svc, _, clock, userID := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		sess, err := svc.Start(ctx, userID, 30, PlanRegular)
		require.NoError(t, err)
		clock.Advance(10 * time.Minute)
		summary, err := svc.End(ctx, sess.ID)
		require.NoError(t, err)
		if i == 0 {
			assert.True(t, summary.StreakUpdated)
		} else {
			assert.False(t, summary.StreakUpdated)
		}
	}

	info, err := svc.Streak(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Current)
}

func TestStreakResetsAfterSkippedDay(t *testing.T) {
	svc, _, clock, userID := newTestService(t)
	ctx := context.Background()

	endOne := func() {
		sess, err := svc.Start(ctx, userID, 30, PlanRegular)
		require.NoError(t, err)
		clock.Advance(15 * time.Minute)
		_, err = svc.End(ctx, sess.ID)
		require.NoError(t, err)
	}

	// Three consecutive days, then a two-day gap.
	for day := 0; day < 3; day++ {
		endOne()
		clock.Advance(24 * time.Hour)
	}
	clock.Advance(24 * time.Hour)
	endOne()

	info, err := svc.Streak(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Current, "skipping a day resets the streak")
	assert.Equal(t, 3, info.Longest, "longest streak never decreases")
}

func TestStreakAtRiskAfterADayAway(t *testing.T) {
	svc, _, clock, userID := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, userID, 30, PlanRegular)
	require.NoError(t, err)
	clock.Advance(20 * time.Minute)
	_, err = svc.End(ctx, sess.ID)
	require.NoError(t, err)

	info, err := svc.Streak(ctx, userID)
	require.NoError(t, err)
	assert.False(t, info.AtRisk)

	clock.Advance(24 * time.Hour)
	info, err = svc.Streak(ctx, userID)
	require.NoError(t, err)
	assert.True(t, info.AtRisk)
}

func TestAbandonKeepsSessionOutOfDefaultHistory(t *testing.T) {
	svc, _, _, userID := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, userID, 30, PlanRegular)
	require.NoError(t, err)
	require.NoError(t, svc.Abandon(ctx, sess.ID, "lost focus"))

	history, err := svc.History(ctx, userID, 10, false)
	require.NoError(t, err)
	assert.Empty(t, history)

	history, err = svc.History(ctx, userID, 10, true)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, learning.StatusAbandoned, history[0].Status)
	assert.Equal(t, "lost focus", history[0].AbandonReason)
}

func TestCurrentReturnsActiveSession(t *testing.T) {
	svc, _, clock, userID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Current(ctx, userID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	sess, err := svc.Start(ctx, userID, 30, PlanRegular)
	require.NoError(t, err)

	current, err := svc.Current(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, current.ID)

	clock.Advance(10 * time.Minute)
	_, err = svc.End(ctx, sess.ID)
	require.NoError(t, err)

	_, err = svc.Current(ctx, userID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
