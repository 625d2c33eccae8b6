package recovery

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayinesh/studycoach/internal/llm"
	"github.com/ayinesh/studycoach/internal/metrics"
	"github.com/ayinesh/studycoach/internal/store"
)

func newTestGenerator(t *testing.T, provider llm.Provider) (*Generator, store.Repos, uuid.UUID) {
	t.Helper()
	repos := store.NewMemory()
	m := metrics.NewService(repos.Metrics)
	return NewGenerator(m, repos.Reviews, provider), repos, uuid.New()
}

func TestGenerateBrackets(t *testing.T) {
	tests := []struct {
		days         int
		wantReduced  bool
		wantSessions int
	}{
		{0, false, 1},
		{2, false, 1},
		{3, true, 2},
		{7, true, 2},
		{8, true, 2},
		{9, true, 3},
		{12, true, 4},
		{15, true, 5},
		{30, true, 5},
	}
	for _, tt := range tests {
		gen, _, userID := newTestGenerator(t, nil)
		plan, err := gen.Generate(context.Background(), userID, tt.days)
		require.NoError(t, err, "days=%d", tt.days)
		assert.Equal(t, tt.wantReduced, plan.ReducedNewContent, "days=%d", tt.days)
		assert.Equal(t, tt.wantSessions, plan.SuggestedSessionCount, "days=%d", tt.days)
	}
}

func TestGenerateRejectsNegativeDays(t *testing.T) {
	gen, _, userID := newTestGenerator(t, nil)
	_, err := gen.Generate(context.Background(), userID, -1)
	assert.Error(t, err)
}

func TestReviewTopicsWeakestFirst(t *testing.T) {
	gen, repos, userID := newTestGenerator(t, nil)
	ctx := context.Background()

	proficiencies := map[string]float64{
		"maps": 0.9, "slices": 0.2, "channels": 0.5,
		"interfaces": 0.1, "generics": 0.7, "errors": 0.3, "embedding": 0.6,
	}
	for topic, p := range proficiencies {
		_, err := repos.Reviews.Upsert(ctx, userID, topic, func(item *store.ReviewItem) error {
			item.Proficiency = p
			return nil
		})
		require.NoError(t, err)
	}

	plan, err := gen.Generate(ctx, userID, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"interfaces", "slices", "errors", "channels", "embedding"}, plan.ReviewTopics)
}

func TestReviewTopicsFallBackToGaps(t *testing.T) {
	gen, repos, userID := newTestGenerator(t, nil)
	ctx := context.Background()

	_, err := repos.Metrics.Update(ctx, userID, func(m *store.LearnerMetrics) error {
		m.Gaps = []string{"goroutines", "select", "mutexes", "atomics"}
		return nil
	})
	require.NoError(t, err)

	plan, err := gen.Generate(ctx, userID, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"goroutines", "select", "mutexes", "atomics"}, plan.ReviewTopics)
	assert.Equal(t, []string{"goroutines", "select", "mutexes"}, plan.PriorityGaps)
}

func TestMessageFromProvider(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Great to have you back!`)},
	)
	gen, _, userID := newTestGenerator(t, mock)

	plan, err := gen.Generate(context.Background(), userID, 5)
	require.NoError(t, err)
	assert.Equal(t, "Great to have you back!", plan.Message)
	assert.Equal(t, 1, mock.CallCount())
}

func TestMessageFallsBackOnProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	gen, _, userID := newTestGenerator(t, mock)

	plan, err := gen.Generate(context.Background(), userID, 10)
	require.NoError(t, err, "provider failure must not fail the plan")
	assert.Equal(t,
		"Welcome back! Don't worry about the break - we'll ease back in with review sessions.",
		plan.Message)
}

func TestCannedMessagesPerBracket(t *testing.T) {
	gen, _, userID := newTestGenerator(t, nil)
	ctx := context.Background()

	short, err := gen.Generate(ctx, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Welcome back! Let's do a quick review and continue learning.", short.Message)

	medium, err := gen.Generate(ctx, userID, 5)
	require.NoError(t, err)
	assert.Equal(t, "Good to see you again! We'll focus on reviewing before adding new material.", medium.Message)
}

func TestInitiateRecoveryDelegates(t *testing.T) {
	gen, _, userID := newTestGenerator(t, nil)
	assert.NoError(t, gen.InitiateRecovery(context.Background(), userID, 6))
	assert.Error(t, gen.InitiateRecovery(context.Background(), userID, -2))
}
