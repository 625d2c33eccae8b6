// Package engine composes the coaching subsystems behind one facade:
// session lifecycle, learning metrics, spaced review, adaptation, and
// recovery planning. Commands talk to the Engine; the Engine owns the
// per-user write ordering.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/adapt"
	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/llm"
	"github.com/ayinesh/studycoach/internal/metrics"
	"github.com/ayinesh/studycoach/internal/quizgen"
	"github.com/ayinesh/studycoach/internal/recovery"
	"github.com/ayinesh/studycoach/internal/review"
	"github.com/ayinesh/studycoach/internal/session"
	"github.com/ayinesh/studycoach/internal/store"
)

// Options configures an Engine. Repos is required; Provider and Clock are
// optional (no provider means canned messages and fallback quizzes).
type Options struct {
	Repos    store.Repos
	Provider llm.Provider
	Clock    func() time.Time
}

// Engine is the facade over all coaching subsystems. All mutating
// operations for one user are serialized through a per-user lock, so
// metric updates, adaptations, and session transitions never interleave.
type Engine struct {
	repos    store.Repos
	metrics  *metrics.Service
	reviews  *review.Scheduler
	sessions *session.Service
	adapt    *adapt.Service
	recovery *recovery.Generator
	quizzes  *quizgen.Generator

	mu        sync.Mutex
	userLocks map[uuid.UUID]*sync.Mutex
}

// New wires up an Engine from the given options.
func New(opts Options) (*Engine, error) {
	if opts.Repos.Metrics == nil || opts.Repos.Reviews == nil || opts.Repos.Sessions == nil || opts.Repos.Events == nil {
		return nil, fmt.Errorf("engine: incomplete repository set")
	}

	m := metrics.NewService(opts.Repos.Metrics)
	sched := review.NewScheduler(opts.Repos.Reviews)
	sessions := session.NewService(opts.Repos, m)
	if opts.Clock != nil {
		m.WithClock(opts.Clock)
		sched.WithClock(opts.Clock)
		sessions.WithClock(opts.Clock)
	}

	rec := recovery.NewGenerator(m, opts.Repos.Reviews, opts.Provider)

	return &Engine{
		repos:     opts.Repos,
		metrics:   m,
		reviews:   sched,
		sessions:  sessions,
		adapt:     adapt.NewService(m, opts.Repos.Events, rec),
		recovery:  rec,
		quizzes:   quizgen.New(opts.Provider, quizgen.DefaultConfig()),
		userLocks: make(map[uuid.UUID]*sync.Mutex),
	}, nil
}

// userLock returns the mutex serializing writes for one user.
func (e *Engine) userLock(userID uuid.UUID) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		e.userLocks[userID] = lock
	}
	return lock
}

// --- Sessions ---

// StartSession begins a session for the user. minutes <= 0 requests a
// recommended duration; kind "" lets the planner choose; requested
// topics bias the plan toward them. At most one session per user is in
// progress at a time.
func (e *Engine) StartSession(ctx context.Context, userID uuid.UUID, minutes int, kind session.PlanKind, requestedTopics ...string) (*store.Session, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return e.sessions.Start(ctx, userID, minutes, kind, requestedTopics...)
}

// GetSessionPlan returns the time-boxed activity plan for a session.
func (e *Engine) GetSessionPlan(ctx context.Context, sessionID uuid.UUID) (*session.Plan, error) {
	return e.sessions.GetPlan(ctx, sessionID)
}

// RecordActivity opens a new activity in an in-progress session.
func (e *Engine) RecordActivity(ctx context.Context, sessionID uuid.UUID, activityType learning.ActivityType, topicID, contentID string, perf map[string]any) (*store.SessionActivity, error) {
	return e.sessions.RecordActivity(ctx, sessionID, activityType, topicID, contentID, perf)
}

// CompleteActivity closes an activity, merging final performance data.
func (e *Engine) CompleteActivity(ctx context.Context, activityID uuid.UUID, perf map[string]any) (*store.SessionActivity, error) {
	return e.sessions.CompleteActivity(ctx, activityID, perf)
}

// EndSession completes a session and folds its results into the user's
// metrics and streak.
func (e *Engine) EndSession(ctx context.Context, sessionID uuid.UUID) (*session.Summary, error) {
	sess, err := e.repos.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	lock := e.userLock(sess.UserID)
	lock.Lock()
	defer lock.Unlock()
	return e.sessions.End(ctx, sessionID)
}

// AbandonSession marks a session abandoned.
func (e *Engine) AbandonSession(ctx context.Context, sessionID uuid.UUID, reason string) error {
	sess, err := e.repos.Sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	lock := e.userLock(sess.UserID)
	lock.Lock()
	defer lock.Unlock()
	return e.sessions.Abandon(ctx, sessionID, reason)
}

// GetCurrentSession returns the user's in-progress session, or
// store.ErrNotFound when there is none.
func (e *Engine) GetCurrentSession(ctx context.Context, userID uuid.UUID) (*store.Session, error) {
	return e.sessions.Current(ctx, userID)
}

// GetSessionHistory returns the user's sessions, newest first.
func (e *Engine) GetSessionHistory(ctx context.Context, userID uuid.UUID, limit int, includeAbandoned bool) ([]*store.Session, error) {
	return e.sessions.History(ctx, userID, limit, includeAbandoned)
}

// GetSessionActivities returns a session's activities in creation order.
func (e *Engine) GetSessionActivities(ctx context.Context, sessionID uuid.UUID) ([]*store.SessionActivity, error) {
	return e.sessions.Activities(ctx, sessionID)
}

// GetStreakInfo returns the user's streak snapshot.
func (e *Engine) GetStreakInfo(ctx context.Context, userID uuid.UUID) (*session.StreakInfo, error) {
	return e.sessions.Streak(ctx, userID)
}

// --- Adaptation ---

// CheckTriggers evaluates the user's metrics against all adaptation
// rules, most severe first.
func (e *Engine) CheckTriggers(ctx context.Context, userID uuid.UUID) ([]adapt.Trigger, error) {
	return e.adapt.CheckTriggers(ctx, userID)
}

// ApplyAdaptation applies one trigger and records it in the audit log.
func (e *Engine) ApplyAdaptation(ctx context.Context, userID uuid.UUID, trigger adapt.Trigger) (*adapt.Result, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return e.adapt.Apply(ctx, userID, trigger)
}

// OverrideAdaptation lets the user set pace or difficulty directly,
// recorded as an override in the audit log.
func (e *Engine) OverrideAdaptation(ctx context.Context, userID uuid.UUID, adaptationType learning.AdaptationType, newValue any, reason string) (*adapt.Result, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return e.adapt.Override(ctx, userID, adaptationType, newValue, reason)
}

// GetAdaptationHistory returns the user's adaptation events, newest first.
func (e *Engine) GetAdaptationHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*store.AdaptationEvent, error) {
	return e.adapt.History(ctx, userID, limit)
}

// PredictNextAdaptation forecasts the adaptation most likely to fire
// next, or nil when nothing is brewing.
func (e *Engine) PredictNextAdaptation(ctx context.Context, userID uuid.UUID) (*adapt.Trigger, error) {
	return e.adapt.PredictNext(ctx, userID)
}

// AnalyzePatterns summarizes the user's learning patterns.
func (e *Engine) AnalyzePatterns(ctx context.Context, userID uuid.UUID) (*metrics.PatternReport, error) {
	return e.metrics.AnalyzePatterns(ctx, userID)
}

// PaceRecommendation pairs the user's current pace with the recommended
// one and the reason for it.
type PaceRecommendation struct {
	Current     learning.Pace
	Recommended learning.Pace
	Reason      string
}

// GetPaceRecommendation reports whether the user's recent quiz results
// call for a pace change.
func (e *Engine) GetPaceRecommendation(ctx context.Context, userID uuid.UUID) (*PaceRecommendation, error) {
	m, err := e.metrics.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	triggers, err := e.adapt.CheckTriggers(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec := &PaceRecommendation{
		Current:     m.Pace,
		Recommended: m.Pace,
		Reason:      "Current pace is working well",
	}
	for _, t := range triggers {
		if t.Type != learning.AdaptPace {
			continue
		}
		if p := learning.Pace(fmt.Sprint(t.Data["recommended_pace"])); p.Valid() {
			rec.Recommended = p
			rec.Reason = t.Reason
		}
		break
	}
	return rec, nil
}

// --- Review ---

// UpdateReviewSchedule records one review outcome and reschedules the
// topic.
func (e *Engine) UpdateReviewSchedule(ctx context.Context, userID uuid.UUID, topicID string, correct bool, quality int) (*store.ReviewItem, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return e.reviews.UpdateSchedule(ctx, userID, topicID, correct, quality)
}

// GetDueReviews returns topics due for review, most overdue first.
func (e *Engine) GetDueReviews(ctx context.Context, userID uuid.UUID, limit int) ([]*store.ReviewItem, error) {
	return e.reviews.DueReviews(ctx, userID, limit)
}

// --- Recovery ---

// GenerateRecoveryPlan builds a come-back plan. daysMissed <= 0 derives
// the absence length from the user's metrics.
func (e *Engine) GenerateRecoveryPlan(ctx context.Context, userID uuid.UUID, daysMissed int) (*recovery.Plan, error) {
	if daysMissed <= 0 {
		m, err := e.metrics.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		daysMissed = m.ConsecutiveMissedDays
	}
	return e.recovery.Generate(ctx, userID, daysMissed)
}

// --- Metrics ---

// RecordQuizScore appends a quiz score in [0, 1] to the user's history.
func (e *Engine) RecordQuizScore(ctx context.Context, userID uuid.UUID, score float64) (*store.LearnerMetrics, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return e.metrics.RecordQuizScore(ctx, userID, score)
}

// RecordDialogueScore appends a dialogue score in [0, 1] to the user's
// history.
func (e *Engine) RecordDialogueScore(ctx context.Context, userID uuid.UUID, score float64) (*store.LearnerMetrics, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return e.metrics.RecordDialogueScore(ctx, userID, score)
}

// RecordGap adds a knowledge gap to the user's list.
func (e *Engine) RecordGap(ctx context.Context, userID uuid.UUID, topicID string) error {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return e.metrics.RecordGap(ctx, userID, topicID)
}

// ResolveGap removes a knowledge gap from the user's list.
func (e *Engine) ResolveGap(ctx context.Context, userID uuid.UUID, topicID string) error {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return e.metrics.ResolveGap(ctx, userID, topicID)
}

// GetMetrics returns the user's current learning metrics.
func (e *Engine) GetMetrics(ctx context.Context, userID uuid.UUID) (*store.LearnerMetrics, error) {
	return e.metrics.Get(ctx, userID)
}

// --- Quizzes ---

// GenerateQuizQuestion produces one quiz question for a topic, falling
// back to the static bank when no provider is configured.
func (e *Engine) GenerateQuizQuestion(ctx context.Context, input quizgen.GenerateInput) (*quizgen.Question, error) {
	return e.quizzes.Generate(ctx, input)
}
