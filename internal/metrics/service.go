package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/store"
)

// Service maintains per-user learning metrics: rolling score histories,
// engagement counters, identified gaps, and absence tracking.
type Service struct {
	repo store.MetricsRepo
	now  func() time.Time
}

// NewService creates a metrics service over the given repo.
func NewService(repo store.MetricsRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the time source. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Get returns the user's metrics with absence tracking brought up to date.
// The record is lazily created with defaults on first access.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*store.LearnerMetrics, error) {
	return s.repo.Update(ctx, userID, func(m *store.LearnerMetrics) error {
		s.refreshAbsence(m)
		return nil
	})
}

// RecordQuizScore appends a quiz score to the rolling history and
// recomputes the average. Scores are fractions in [0,1].
func (s *Service) RecordQuizScore(ctx context.Context, userID uuid.UUID, score float64) (*store.LearnerMetrics, error) {
	if score < 0 || score > 1 {
		return nil, fmt.Errorf("quiz score %v out of range [0,1]", score)
	}
	return s.repo.Update(ctx, userID, func(m *store.LearnerMetrics) error {
		m.QuizScores = appendBounded(m.QuizScores, score)
		m.AvgQuizScore = mean(m.QuizScores)
		return nil
	})
}

// RecordDialogueScore appends an explanation-dialogue score to the rolling
// history and recomputes the average.
func (s *Service) RecordDialogueScore(ctx context.Context, userID uuid.UUID, score float64) (*store.LearnerMetrics, error) {
	if score < 0 || score > 1 {
		return nil, fmt.Errorf("dialogue score %v out of range [0,1]", score)
	}
	return s.repo.Update(ctx, userID, func(m *store.LearnerMetrics) error {
		m.DialogueScores = appendBounded(m.DialogueScores, score)
		m.AvgDialogueScore = mean(m.DialogueScores)
		return nil
	})
}

// SetPace changes the user's pace and returns the previous value.
func (s *Service) SetPace(ctx context.Context, userID uuid.UUID, pace learning.Pace) (learning.Pace, error) {
	if !pace.Valid() {
		return "", fmt.Errorf("invalid pace %q", pace)
	}
	var old learning.Pace
	_, err := s.repo.Update(ctx, userID, func(m *store.LearnerMetrics) error {
		old = m.Pace
		m.Pace = pace
		return nil
	})
	return old, err
}

// SetDifficulty changes the user's difficulty level, clamped to the 1-5
// scale, and returns the previous value.
func (s *Service) SetDifficulty(ctx context.Context, userID uuid.UUID, level int) (int, error) {
	var old int
	_, err := s.repo.Update(ctx, userID, func(m *store.LearnerMetrics) error {
		old = m.DifficultyLevel
		m.DifficultyLevel = learning.ClampDifficulty(level)
		return nil
	})
	return old, err
}

// RecordGap marks a topic as an identified weak area. Duplicates are ignored.
func (s *Service) RecordGap(ctx context.Context, userID uuid.UUID, topicID string) error {
	if topicID == "" {
		return fmt.Errorf("empty gap topic id")
	}
	_, err := s.repo.Update(ctx, userID, func(m *store.LearnerMetrics) error {
		if !m.HasGap(topicID) {
			m.Gaps = append(m.Gaps, topicID)
		}
		return nil
	})
	return err
}

// ResolveGap removes a topic from the identified gaps. Unknown topics are a
// no-op.
func (s *Service) ResolveGap(ctx context.Context, userID uuid.UUID, topicID string) error {
	_, err := s.repo.Update(ctx, userID, func(m *store.LearnerMetrics) error {
		for i, g := range m.Gaps {
			if g == topicID {
				m.Gaps = append(m.Gaps[:i], m.Gaps[i+1:]...)
				break
			}
		}
		return nil
	})
	return err
}

// PatternReport is a read-only snapshot of a user's learning patterns.
type PatternReport struct {
	UserID uuid.UUID

	// Performance.
	AvgQuizScore     float64
	QuizTrend        learning.Trend
	AvgDialogueScore float64
	DialogueTrend    learning.Trend

	// Engagement.
	SessionsLast7Days  int
	SessionsLast30Days int
	AvgSessionMinutes  int
	CompletionRate     float64

	// Current adaptive settings.
	Pace            learning.Pace
	DifficultyLevel int

	// Gaps and absence.
	GapsCount       int
	LastSessionDate *time.Time
	MissedDays      int
}

// AnalyzePatterns derives trends from the score histories and returns a
// structured report. Trends are always recomputed, never stored.
func (s *Service) AnalyzePatterns(ctx context.Context, userID uuid.UUID) (*PatternReport, error) {
	m, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &PatternReport{
		UserID:             m.UserID,
		AvgQuizScore:       m.AvgQuizScore,
		QuizTrend:          AnalyzeTrend(m.QuizScores),
		AvgDialogueScore:   m.AvgDialogueScore,
		DialogueTrend:      AnalyzeTrend(m.DialogueScores),
		SessionsLast7Days:  m.SessionsLast7Days,
		SessionsLast30Days: m.SessionsLast30Days,
		AvgSessionMinutes:  m.AvgSessionMinutes,
		CompletionRate:     m.CompletionRate(),
		Pace:               m.Pace,
		DifficultyLevel:    m.DifficultyLevel,
		GapsCount:          len(m.Gaps),
		LastSessionDate:    m.LastSessionDate,
		MissedDays:         m.ConsecutiveMissedDays,
	}, nil
}

// refreshAbsence derives consecutive missed days from the last session
// date: a session yesterday means zero missed days, a session N days ago
// means N-1 full days without one.
func (s *Service) refreshAbsence(m *store.LearnerMetrics) {
	if m.LastSessionDate == nil {
		m.ConsecutiveMissedDays = 0
		return
	}
	days := calendarDaysBetween(*m.LastSessionDate, s.now())
	if days <= 1 {
		m.ConsecutiveMissedDays = 0
		return
	}
	m.ConsecutiveMissedDays = days - 1
}

// calendarDaysBetween counts whole calendar days from a to b in local time.
func calendarDaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, b.Location())
	return int(bd.Sub(ad).Hours() / 24)
}

func appendBounded(scores []float64, score float64) []float64 {
	scores = append(scores, score)
	if len(scores) > store.MaxScoreHistory {
		scores = scores[len(scores)-store.MaxScoreHistory:]
	}
	return scores
}
