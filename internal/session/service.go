package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/metrics"
	"github.com/ayinesh/studycoach/internal/store"
)

// Requested-duration bounds in minutes. Explicit requests outside this
// range are clamped rather than rejected.
const (
	minSessionMinutes = 10
	maxSessionMinutes = 180
)

// ErrNotInProgress is returned by operations that require an in-progress
// session.
var ErrNotInProgress = errors.New("session: not in progress")

// Service runs the session lifecycle.
type Service struct {
	repos   store.Repos
	metrics *metrics.Service
	now     func() time.Time

	// Plan cache, keyed by session id. Plans are derived values owned by
	// their session; they are dropped when the session reaches a terminal
	// state and are never persisted.
	mu    sync.Mutex
	plans map[uuid.UUID]*Plan
}

// NewService creates a session service.
func NewService(repos store.Repos, m *metrics.Service) *Service {
	return &Service{
		repos:   repos,
		metrics: m,
		now:     time.Now,
		plans:   make(map[uuid.UUID]*Plan),
	}
}

// WithClock overrides the time source. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Start begins a new session. minutes <= 0 requests a recommended
// duration; kind "" lets the planner choose; requested topics bias the
// plan's blocks toward them. Returns store.ErrActiveSession if the user
// already has one in progress — the check and the insert are atomic, so
// of two concurrent calls exactly one succeeds.
//
// The plan is built and cached here, while the chosen kind is still
// known: review and recovery kinds fold into coarser stored session
// types, so a plan rebuilt later from the record alone would lose them.
func (s *Service) Start(ctx context.Context, userID uuid.UUID, minutes int, kind PlanKind, requestedTopics ...string) (*store.Session, error) {
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("invalid session kind %q", kind)
	}

	m, err := s.metrics.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		kind = DetermineKind(m)
	}
	if minutes <= 0 {
		minutes = RecommendDuration(m, kind)
	} else {
		minutes = clampInt(minutes, minSessionMinutes, maxSessionMinutes)
	}

	sess := &store.Session{
		ID:             uuid.New(),
		UserID:         userID,
		Type:           kind.SessionType(),
		Status:         learning.StatusInProgress,
		PlannedMinutes: minutes,
		StartedAt:      s.now(),
	}
	if err := s.repos.Sessions.CreateIfNoneActive(ctx, sess); err != nil {
		return nil, err
	}

	if _, err := s.repos.Metrics.Update(ctx, userID, func(m *store.LearnerMetrics) error {
		m.SessionsStarted++
		return nil
	}); err != nil {
		return nil, err
	}

	plan := BuildPlan(sess.ID, kind, minutes, m, requestedTopics...)
	s.mu.Lock()
	s.plans[sess.ID] = plan
	s.mu.Unlock()

	return sess, nil
}

// GetPlan returns the session's plan. Plans are cached at Start; the
// rebuild below only covers sessions started by an earlier process, and
// approximates the kind from the stored session type.
func (s *Service) GetPlan(ctx context.Context, sessionID uuid.UUID) (*Plan, error) {
	s.mu.Lock()
	if plan, ok := s.plans[sessionID]; ok {
		s.mu.Unlock()
		return plan, nil
	}
	s.mu.Unlock()

	sess, err := s.repos.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	m, err := s.metrics.Get(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	plan := BuildPlan(sessionID, KindForType(sess.Type), sess.PlannedMinutes, m)

	s.mu.Lock()
	defer s.mu.Unlock()
	// A concurrent call may have cached first; keep the winner.
	if cached, ok := s.plans[sessionID]; ok {
		return cached, nil
	}
	s.plans[sessionID] = plan
	return plan, nil
}

// RecordActivity opens a new activity in an in-progress session.
func (s *Service) RecordActivity(ctx context.Context, sessionID uuid.UUID, activityType learning.ActivityType, topicID, contentID string, perf map[string]any) (*store.SessionActivity, error) {
	sess, err := s.repos.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != learning.StatusInProgress {
		return nil, fmt.Errorf("record activity on %s session: %w", sess.Status, ErrNotInProgress)
	}

	if perf == nil {
		perf = map[string]any{}
	}
	activity := &store.SessionActivity{
		ID:          uuid.New(),
		SessionID:   sessionID,
		Type:        activityType,
		TopicID:     topicID,
		ContentID:   contentID,
		StartedAt:   s.now(),
		Performance: perf,
	}
	if err := s.repos.Sessions.CreateActivity(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// CompleteActivity closes an activity, merging any final performance data.
// Completing an already-completed activity is an error.
func (s *Service) CompleteActivity(ctx context.Context, activityID uuid.UUID, perf map[string]any) (*store.SessionActivity, error) {
	return s.repos.Sessions.UpdateActivity(ctx, activityID, func(a *store.SessionActivity) error {
		if a.EndedAt != nil {
			return fmt.Errorf("activity %s already completed", activityID)
		}
		now := s.now()
		a.EndedAt = &now
		for k, v := range perf {
			a.Performance[k] = v
		}
		return nil
	})
}

// Summary aggregates one completed session.
type Summary struct {
	SessionID           uuid.UUID
	DurationMinutes     int
	ActivitiesCompleted int
	TopicsCovered       []string
	QuizScore           *float64
	DialogueScore       *float64
	ContentConsumed     int
	NewGaps             []string
	StreakUpdated       bool
	NextSessionPreview  string
}

// End completes an in-progress session: it recomputes the actual duration
// from wall-clock time, aggregates activity performance, folds the
// results into the user's metrics and streak, and drops the cached plan.
func (s *Service) End(ctx context.Context, sessionID uuid.UUID) (*Summary, error) {
	now := s.now()

	sess, err := s.repos.Sessions.Update(ctx, sessionID, func(sess *store.Session) error {
		next, err := sess.Status.Transition(learning.StatusCompleted)
		if err != nil {
			return fmt.Errorf("end session: %w", err)
		}
		sess.Status = next
		sess.EndedAt = &now
		sess.ActualMinutes = int(now.Sub(sess.StartedAt).Minutes())
		return nil
	})
	if err != nil {
		return nil, err
	}

	activities, err := s.repos.Sessions.Activities(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		SessionID:       sessionID,
		DurationMinutes: sess.ActualMinutes,
	}
	for _, a := range activities {
		if a.EndedAt != nil {
			summary.ActivitiesCompleted++
		}
		switch a.Type {
		case learning.ActivityQuiz:
			if score, ok := floatValue(a.Performance["score"]); ok {
				summary.QuizScore = &score
			}
		case learning.ActivityDialogue:
			if score, ok := floatValue(a.Performance["score"]); ok {
				summary.DialogueScore = &score
			}
		case learning.ActivityContentRead:
			summary.ContentConsumed++
		}
		summary.NewGaps = append(summary.NewGaps, gapList(a.Performance["gaps"])...)
	}

	s.mu.Lock()
	if plan, ok := s.plans[sessionID]; ok {
		summary.TopicsCovered = plan.TopicsCovered
		delete(s.plans, sessionID)
	}
	s.mu.Unlock()

	m, err := s.repos.Metrics.Update(ctx, sess.UserID, func(m *store.LearnerMetrics) error {
		m.SessionsLast7Days++
		m.SessionsLast30Days++
		m.SessionsCompleted++
		m.ConsecutiveMissedDays = 0

		n := m.SessionsLast30Days
		m.AvgSessionMinutes = (m.AvgSessionMinutes*(n-1) + sess.ActualMinutes) / n

		summary.StreakUpdated = applyStreak(m, now)

		for _, gap := range summary.NewGaps {
			if !m.HasGap(gap) {
				m.Gaps = append(m.Gaps, gap)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if summary.QuizScore != nil {
		if _, err := s.metrics.RecordQuizScore(ctx, sess.UserID, clamp01(*summary.QuizScore)); err != nil {
			return nil, err
		}
	}
	if summary.DialogueScore != nil {
		if _, err := s.metrics.RecordDialogueScore(ctx, sess.UserID, clamp01(*summary.DialogueScore)); err != nil {
			return nil, err
		}
	}

	summary.NextSessionPreview = nextPreview(m)
	return summary, nil
}

// Abandon marks an in-progress session abandoned and drops its plan. The
// session still counts as started but not completed.
func (s *Service) Abandon(ctx context.Context, sessionID uuid.UUID, reason string) error {
	now := s.now()
	_, err := s.repos.Sessions.Update(ctx, sessionID, func(sess *store.Session) error {
		next, err := sess.Status.Transition(learning.StatusAbandoned)
		if err != nil {
			return fmt.Errorf("abandon session: %w", err)
		}
		sess.Status = next
		sess.EndedAt = &now
		sess.ActualMinutes = int(now.Sub(sess.StartedAt).Minutes())
		sess.AbandonReason = reason
		return nil
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.plans, sessionID)
	s.mu.Unlock()
	return nil
}

// Current returns the user's in-progress session, or store.ErrNotFound.
func (s *Service) Current(ctx context.Context, userID uuid.UUID) (*store.Session, error) {
	return s.repos.Sessions.Active(ctx, userID)
}

// History returns the user's sessions, newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit int, includeAbandoned bool) ([]*store.Session, error) {
	return s.repos.Sessions.ByUser(ctx, userID, limit, includeAbandoned)
}

// Activities returns a session's activities in creation order.
func (s *Service) Activities(ctx context.Context, sessionID uuid.UUID) ([]*store.SessionActivity, error) {
	return s.repos.Sessions.Activities(ctx, sessionID)
}

// Streak returns the user's streak snapshot.
func (s *Service) Streak(ctx context.Context, userID uuid.UUID) (*StreakInfo, error) {
	m, err := s.metrics.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &StreakInfo{
		Current:  m.CurrentStreak,
		Longest:  m.LongestStreak,
		LastDate: m.LastSessionDate,
		AtRisk:   streakAtRisk(m, s.now()),
	}, nil
}

// nextPreview builds a short deterministic preview of the next session.
func nextPreview(m *store.LearnerMetrics) string {
	if len(m.Gaps) > 0 {
		return fmt.Sprintf("Next: Review %s and continue learning", m.Gaps[len(m.Gaps)-1])
	}
	return "Next: Continue where you left off"
}

func floatValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	}
	return 0, false
}

func gapList(v any) []string {
	switch gaps := v.(type) {
	case []string:
		return gaps
	case []any:
		var out []string
		for _, g := range gaps {
			if s, ok := g.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
