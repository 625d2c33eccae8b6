package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/learning"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrActiveSession is returned by CreateIfNoneActive when the user
	// already has a session in progress.
	ErrActiveSession = errors.New("store: user already has an active session")
)

// MaxScoreHistory bounds the rolling score histories kept per user.
const MaxScoreHistory = 10

// LearnerMetrics is the per-user mutable record of performance and
// engagement signals. One per user, owned by the MetricsRepo.
type LearnerMetrics struct {
	UserID uuid.UUID

	// Rolling score histories, newest last, bounded to MaxScoreHistory.
	QuizScores     []float64
	DialogueScores []float64

	// Derived averages, recomputed on each append.
	AvgQuizScore     float64
	AvgDialogueScore float64

	// Engagement counters.
	SessionsLast7Days  int
	SessionsLast30Days int
	AvgSessionMinutes  int
	SessionsStarted    int
	SessionsCompleted  int

	// Adaptive settings.
	Pace            learning.Pace
	DifficultyLevel int

	// Absence tracking. LastSessionDate is truncated to a calendar date.
	LastSessionDate       *time.Time
	ConsecutiveMissedDays int

	// Streak bookkeeping.
	CurrentStreak int
	LongestStreak int
	TotalSessions int

	// Identified gap topic ids, insertion order, no duplicates.
	Gaps []string
}

// NewLearnerMetrics returns the default metrics record for a user that has
// no history yet.
func NewLearnerMetrics(userID uuid.UUID) *LearnerMetrics {
	return &LearnerMetrics{
		UserID:            userID,
		AvgQuizScore:      0.7,
		AvgDialogueScore:  0.7,
		AvgSessionMinutes: 30,
		Pace:              learning.PaceNormal,
		DifficultyLevel:   3,
	}
}

// CompletionRate returns the fraction of started sessions that completed.
// Defaults to 0.8 until the user has started at least one session.
func (m *LearnerMetrics) CompletionRate() float64 {
	if m.SessionsStarted == 0 {
		return 0.8
	}
	return float64(m.SessionsCompleted) / float64(m.SessionsStarted)
}

// HasGap reports whether topicID is already an identified gap.
func (m *LearnerMetrics) HasGap(topicID string) bool {
	for _, g := range m.Gaps {
		if g == topicID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Repos hand out clones so callers never share
// mutable state with the store.
func (m *LearnerMetrics) Clone() *LearnerMetrics {
	cp := *m
	cp.QuizScores = append([]float64(nil), m.QuizScores...)
	cp.DialogueScores = append([]float64(nil), m.DialogueScores...)
	cp.Gaps = append([]string(nil), m.Gaps...)
	if m.LastSessionDate != nil {
		d := *m.LastSessionDate
		cp.LastSessionDate = &d
	}
	return &cp
}

// ReviewItem is the SM-2 state for one (user, topic) pair.
type ReviewItem struct {
	UserID         uuid.UUID
	TopicID        string
	LastReviewedAt time.Time
	NextReviewAt   time.Time
	IntervalDays   int
	EaseFactor     float64
	ReviewCount    int
	Proficiency    float64
}

// Clone returns a copy of the item.
func (r *ReviewItem) Clone() *ReviewItem {
	cp := *r
	return &cp
}

// Session is one learning session.
type Session struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Type           learning.SessionType
	Status         learning.SessionStatus
	PlannedMinutes int
	ActualMinutes  int
	StartedAt      time.Time
	EndedAt        *time.Time
	AbandonReason  string
}

// Clone returns a copy of the session.
func (s *Session) Clone() *Session {
	cp := *s
	if s.EndedAt != nil {
		t := *s.EndedAt
		cp.EndedAt = &t
	}
	return &cp
}

// SessionActivity is one activity inside a session.
type SessionActivity struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	Type        learning.ActivityType
	TopicID     string
	ContentID   string
	StartedAt   time.Time
	EndedAt     *time.Time
	Performance map[string]any
}

// Clone returns a deep copy of the activity.
func (a *SessionActivity) Clone() *SessionActivity {
	cp := *a
	if a.EndedAt != nil {
		t := *a.EndedAt
		cp.EndedAt = &t
	}
	cp.Performance = make(map[string]any, len(a.Performance))
	for k, v := range a.Performance {
		cp.Performance[k] = v
	}
	return &cp
}

// AdaptationEvent is one immutable entry in the per-user adaptation log.
type AdaptationEvent struct {
	ID        uuid.UUID
	Sequence  int64
	UserID    uuid.UUID
	Type      learning.AdaptationType
	Reason    string
	OldValue  map[string]any
	NewValue  map[string]any
	Timestamp time.Time
}

// LLMRequestEventData captures one LLM API call for the audit log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// MetricsRepo stores LearnerMetrics keyed by user id. Records are lazily
// created with defaults on first access. Update runs the mutate closure as
// a read-modify-write unit scoped to the user's record.
type MetricsRepo interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*LearnerMetrics, error)
	Update(ctx context.Context, userID uuid.UUID, mutate func(*LearnerMetrics) error) (*LearnerMetrics, error)
}

// ReviewRepo stores ReviewItems keyed by (user, topic). Upsert runs mutate
// against the existing item, or against a zero-count fresh item when the
// topic has never been reviewed, as one read-modify-write unit.
type ReviewRepo interface {
	Get(ctx context.Context, userID uuid.UUID, topicID string) (*ReviewItem, error)
	Upsert(ctx context.Context, userID uuid.UUID, topicID string, mutate func(*ReviewItem) error) (*ReviewItem, error)
	ByUser(ctx context.Context, userID uuid.UUID) ([]*ReviewItem, error)
}

// SessionRepo stores sessions and their activities.
type SessionRepo interface {
	// CreateIfNoneActive inserts the session only if the user has no
	// in-progress session; otherwise it returns ErrActiveSession. The
	// check and the insert are a single atomic unit.
	CreateIfNoneActive(ctx context.Context, s *Session) error

	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Update(ctx context.Context, id uuid.UUID, mutate func(*Session) error) (*Session, error)
	Active(ctx context.Context, userID uuid.UUID) (*Session, error)
	ByUser(ctx context.Context, userID uuid.UUID, limit int, includeAbandoned bool) ([]*Session, error)

	CreateActivity(ctx context.Context, a *SessionActivity) error
	GetActivity(ctx context.Context, id uuid.UUID) (*SessionActivity, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, mutate func(*SessionActivity) error) (*SessionActivity, error)
	Activities(ctx context.Context, sessionID uuid.UUID) ([]*SessionActivity, error)
}

// EventRepo provides append access to the immutable event logs.
type EventRepo interface {
	AppendAdaptationEvent(ctx context.Context, ev *AdaptationEvent) error
	AdaptationHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*AdaptationEvent, error)
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// Repos bundles the four repositories. The engine receives one Repos,
// backed either by memory or by the ent/SQLite store — the variant is
// chosen once, at the composition point.
type Repos struct {
	Metrics  MetricsRepo
	Reviews  ReviewRepo
	Sessions SessionRepo
	Events   EventRepo
}
