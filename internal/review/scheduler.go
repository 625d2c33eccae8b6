package review

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/store"
)

// proficiencyStep is how far one review nudges the proficiency estimate.
const proficiencyStep = 0.1

// Scheduler maintains the per-topic SM-2 state for every user.
type Scheduler struct {
	repo store.ReviewRepo
	now  func() time.Time
}

// NewScheduler creates a scheduler over the given repo.
func NewScheduler(repo store.ReviewRepo) *Scheduler {
	return &Scheduler{repo: repo, now: time.Now}
}

// WithClock overrides the time source. Tests only.
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// UpdateSchedule records one review of a topic and reschedules it. The item
// is created on first review; quality must be in [0,5].
func (s *Scheduler) UpdateSchedule(ctx context.Context, userID uuid.UUID, topicID string, correct bool, quality int) (*store.ReviewItem, error) {
	if topicID == "" {
		return nil, fmt.Errorf("empty topic id")
	}
	if !learning.ValidQuality(quality) {
		return nil, fmt.Errorf("quality %d out of range [%d,%d]", quality, learning.MinQuality, learning.MaxQuality)
	}

	now := s.now()
	return s.repo.Upsert(ctx, userID, topicID, func(item *store.ReviewItem) error {
		if item.ReviewCount == 0 {
			item.EaseFactor = DefaultEase
			item.Proficiency = 0.5
		}

		// Ease adapts first; the new interval grows from the updated ease.
		item.EaseFactor = NextEase(item.EaseFactor, quality)
		item.IntervalDays = NextInterval(item.IntervalDays, item.EaseFactor, item.ReviewCount, quality)

		if correct {
			item.Proficiency = clamp01(item.Proficiency + proficiencyStep)
		} else {
			item.Proficiency = clamp01(item.Proficiency - proficiencyStep)
		}

		item.ReviewCount++
		item.LastReviewedAt = now
		item.NextReviewAt = now.AddDate(0, 0, item.IntervalDays)
		return nil
	})
}

// DueReviews returns the user's items due at or before now, most overdue
// first. limit <= 0 means no limit.
func (s *Scheduler) DueReviews(ctx context.Context, userID uuid.UUID, limit int) ([]*store.ReviewItem, error) {
	items, err := s.repo.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	due := items[:0]
	for _, item := range items {
		if !item.NextReviewAt.After(now) {
			due = append(due, item)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextReviewAt.Before(due[j].NextReviewAt)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

// ByUser returns all of the user's review items.
func (s *Scheduler) ByUser(ctx context.Context, userID uuid.UUID) ([]*store.ReviewItem, error) {
	return s.repo.ByUser(ctx, userID)
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
