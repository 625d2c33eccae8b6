package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/ent"
	"github.com/ayinesh/studycoach/ent/learnermetrics"
	"github.com/ayinesh/studycoach/internal/learning"
)

// entMetricsRepo implements MetricsRepo on the ent client.
type entMetricsRepo struct {
	s *Store
}

func (r *entMetricsRepo) GetOrCreate(ctx context.Context, userID uuid.UUID) (*LearnerMetrics, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, err := r.fetchOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return metricsFromRow(row), nil
}

func (r *entMetricsRepo) Update(ctx context.Context, userID uuid.UUID, mutate func(*LearnerMetrics) error) (*LearnerMetrics, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, err := r.fetchOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	rec := metricsFromRow(row)
	if err := mutate(rec); err != nil {
		return nil, err
	}

	upd := row.Update().
		SetQuizScores(rec.QuizScores).
		SetDialogueScores(rec.DialogueScores).
		SetAvgQuizScore(rec.AvgQuizScore).
		SetAvgDialogueScore(rec.AvgDialogueScore).
		SetSessionsLast7Days(rec.SessionsLast7Days).
		SetSessionsLast30Days(rec.SessionsLast30Days).
		SetAvgSessionMinutes(rec.AvgSessionMinutes).
		SetSessionsStarted(rec.SessionsStarted).
		SetSessionsCompleted(rec.SessionsCompleted).
		SetPace(string(rec.Pace)).
		SetDifficultyLevel(rec.DifficultyLevel).
		SetConsecutiveMissedDays(rec.ConsecutiveMissedDays).
		SetCurrentStreak(rec.CurrentStreak).
		SetLongestStreak(rec.LongestStreak).
		SetTotalSessions(rec.TotalSessions).
		SetGaps(rec.Gaps)
	if rec.LastSessionDate != nil {
		upd = upd.SetLastSessionDate(*rec.LastSessionDate)
	} else {
		upd = upd.ClearLastSessionDate()
	}
	row, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update metrics: %w", err)
	}
	return metricsFromRow(row), nil
}

func (r *entMetricsRepo) fetchOrCreate(ctx context.Context, userID uuid.UUID) (*ent.LearnerMetrics, error) {
	row, err := r.s.client.LearnerMetrics.Query().
		Where(learnermetrics.UserID(userID.String())).
		Only(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query metrics: %w", err)
	}

	def := NewLearnerMetrics(userID)
	row, err = r.s.client.LearnerMetrics.Create().
		SetUserID(userID.String()).
		SetAvgQuizScore(def.AvgQuizScore).
		SetAvgDialogueScore(def.AvgDialogueScore).
		SetAvgSessionMinutes(def.AvgSessionMinutes).
		SetPace(string(def.Pace)).
		SetDifficultyLevel(def.DifficultyLevel).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create metrics: %w", err)
	}
	return row, nil
}

func metricsFromRow(row *ent.LearnerMetrics) *LearnerMetrics {
	userID, _ := uuid.Parse(row.UserID)
	m := &LearnerMetrics{
		UserID:                userID,
		QuizScores:            append([]float64(nil), row.QuizScores...),
		DialogueScores:        append([]float64(nil), row.DialogueScores...),
		AvgQuizScore:          row.AvgQuizScore,
		AvgDialogueScore:      row.AvgDialogueScore,
		SessionsLast7Days:     row.SessionsLast7Days,
		SessionsLast30Days:    row.SessionsLast30Days,
		AvgSessionMinutes:     row.AvgSessionMinutes,
		SessionsStarted:       row.SessionsStarted,
		SessionsCompleted:     row.SessionsCompleted,
		Pace:                  learning.Pace(row.Pace),
		DifficultyLevel:       row.DifficultyLevel,
		ConsecutiveMissedDays: row.ConsecutiveMissedDays,
		CurrentStreak:         row.CurrentStreak,
		LongestStreak:         row.LongestStreak,
		TotalSessions:         row.TotalSessions,
		Gaps:                  append([]string(nil), row.Gaps...),
	}
	if row.LastSessionDate != nil {
		d := *row.LastSessionDate
		m.LastSessionDate = &d
	}
	return m
}
