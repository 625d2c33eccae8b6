// Package adapt evaluates threshold-based adaptation triggers against a
// user's metrics and applies the resulting pace, difficulty, and recovery
// adaptations, recording each one in the append-only event log.
package adapt

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/store"
)

// Trigger thresholds. These are fixed design parameters, not tunables.
const (
	PaceUpThreshold       = 0.85
	PaceDownThreshold     = 0.55
	DifficultyUpThreshold = 0.90
	DifficultyDownThresh  = 0.50
	RecoveryTriggerDays   = 3

	// minDataPoints is how many scores a rule needs before it may fire.
	minDataPoints = 3

	// predictBand widens the pace thresholds for early-warning prediction.
	predictBand = 0.05
)

// Trigger is one candidate adaptation produced by an evaluation pass.
// Triggers are created fresh on every call and never mutated.
type Trigger struct {
	Type     learning.AdaptationType
	Reason   string
	Severity float64
	Data     map[string]any
}

// CheckTriggers evaluates every rule against the user's current metrics
// and returns the fired triggers sorted by severity, most urgent first.
// Ties keep discovery order. A user with no history fires nothing.
func (s *Service) CheckTriggers(ctx context.Context, userID uuid.UUID) ([]Trigger, error) {
	m, err := s.metrics.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	var triggers []Trigger
	if t := paceTrigger(m); t != nil {
		triggers = append(triggers, *t)
	}
	if t := difficultyTrigger(m); t != nil {
		triggers = append(triggers, *t)
	}
	if t := recoveryTrigger(m); t != nil {
		triggers = append(triggers, *t)
	}

	sort.SliceStable(triggers, func(i, j int) bool {
		return triggers[i].Severity > triggers[j].Severity
	})
	return triggers, nil
}

func paceTrigger(m *store.LearnerMetrics) *Trigger {
	if len(m.QuizScores) < minDataPoints {
		return nil
	}
	recentAvg := lastNAvg(m.QuizScores, minDataPoints)

	if recentAvg >= PaceUpThreshold && m.Pace != learning.PaceFast {
		return &Trigger{
			Type:     learning.AdaptPace,
			Reason:   fmt.Sprintf("Quiz scores consistently above %.0f%%", PaceUpThreshold*100),
			Severity: 0.6,
			Data: map[string]any{
				"current_pace":     string(m.Pace),
				"recommended_pace": string(m.Pace.StepUp()),
				"recent_avg":       recentAvg,
			},
		}
	}

	if recentAvg <= PaceDownThreshold && m.Pace != learning.PaceSlow {
		return &Trigger{
			Type:     learning.AdaptPace,
			Reason:   fmt.Sprintf("Quiz scores consistently below %.0f%%", PaceDownThreshold*100),
			Severity: 0.7,
			Data: map[string]any{
				"current_pace":     string(m.Pace),
				"recommended_pace": string(m.Pace.StepDown()),
				"recent_avg":       recentAvg,
			},
		}
	}
	return nil
}

func difficultyTrigger(m *store.LearnerMetrics) *Trigger {
	if len(m.DialogueScores) < minDataPoints {
		return nil
	}
	recentAvg := lastNAvg(m.DialogueScores, minDataPoints)

	if recentAvg >= DifficultyUpThreshold && m.DifficultyLevel < learning.MaxDifficulty {
		return &Trigger{
			Type:     learning.AdaptDifficulty,
			Reason:   "Consistently high dialogue scores indicate readiness for harder content",
			Severity: 0.5,
			Data: map[string]any{
				"current_difficulty":     m.DifficultyLevel,
				"recommended_difficulty": learning.ClampDifficulty(m.DifficultyLevel + 1),
				"recent_avg":             recentAvg,
			},
		}
	}

	if recentAvg <= DifficultyDownThresh && m.DifficultyLevel > learning.MinDifficulty {
		return &Trigger{
			Type:     learning.AdaptDifficulty,
			Reason:   "Lower dialogue scores suggest content may be too challenging",
			Severity: 0.6,
			Data: map[string]any{
				"current_difficulty":     m.DifficultyLevel,
				"recommended_difficulty": learning.ClampDifficulty(m.DifficultyLevel - 1),
				"recent_avg":             recentAvg,
			},
		}
	}
	return nil
}

func recoveryTrigger(m *store.LearnerMetrics) *Trigger {
	if m.ConsecutiveMissedDays < RecoveryTriggerDays {
		return nil
	}
	data := map[string]any{
		"days_missed": m.ConsecutiveMissedDays,
	}
	if m.LastSessionDate != nil {
		data["last_session"] = m.LastSessionDate.Format("2006-01-02")
	}
	return &Trigger{
		Type:     learning.AdaptRecovery,
		Reason:   fmt.Sprintf("User has missed %d consecutive days", m.ConsecutiveMissedDays),
		Severity: 0.8,
		Data:     data,
	}
}

// PredictNext surfaces an early warning when a trigger is close to firing:
// the last two quiz scores average within predictBand of a pace threshold,
// or the user is one missed day away from the recovery threshold. Returns
// nil when no adaptation is expected soon.
func (s *Service) PredictNext(ctx context.Context, userID uuid.UUID) (*Trigger, error) {
	m, err := s.metrics.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(m.QuizScores) >= 2 {
		recentAvg := lastNAvg(m.QuizScores, 2)
		if recentAvg >= PaceUpThreshold-predictBand {
			return &Trigger{
				Type:     learning.AdaptPace,
				Reason:   "Performance trending towards pace increase threshold",
				Severity: 0.3,
				Data:     map[string]any{"predicted_direction": "faster"},
			}, nil
		}
		if recentAvg <= PaceDownThreshold+predictBand {
			return &Trigger{
				Type:     learning.AdaptPace,
				Reason:   "Performance trending towards pace decrease threshold",
				Severity: 0.3,
				Data:     map[string]any{"predicted_direction": "slower"},
			}, nil
		}
	}

	if m.ConsecutiveMissedDays == RecoveryTriggerDays-1 {
		return &Trigger{
			Type:     learning.AdaptRecovery,
			Reason:   fmt.Sprintf("May need recovery plan if another day is missed (%d days already missed)", m.ConsecutiveMissedDays),
			Severity: 0.4,
			Data:     map[string]any{"days_missed": m.ConsecutiveMissedDays},
		}, nil
	}

	return nil, nil
}

func lastNAvg(scores []float64, n int) float64 {
	if len(scores) < n {
		n = len(scores)
	}
	if n == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores[len(scores)-n:] {
		sum += s
	}
	return sum / float64(n)
}
