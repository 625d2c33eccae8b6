package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/learning"
)

func TestMetricsGetOrCreateDefaults(t *testing.T) {
	repos := NewMemory()
	userID := uuid.New()

	m, err := repos.Metrics.GetOrCreate(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if m.AvgQuizScore != 0.7 || m.AvgDialogueScore != 0.7 {
		t.Errorf("default averages = %v/%v, want 0.7/0.7", m.AvgQuizScore, m.AvgDialogueScore)
	}
	if m.Pace != learning.PaceNormal || m.DifficultyLevel != 3 {
		t.Errorf("default settings = %s/%d, want normal/3", m.Pace, m.DifficultyLevel)
	}
	if m.AvgSessionMinutes != 30 {
		t.Errorf("default session minutes = %d, want 30", m.AvgSessionMinutes)
	}
}

func TestMetricsUpdateIsolation(t *testing.T) {
	repos := NewMemory()
	userID := uuid.New()
	ctx := context.Background()

	updated, err := repos.Metrics.Update(ctx, userID, func(m *LearnerMetrics) error {
		m.QuizScores = append(m.QuizScores, 0.9)
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Mutating the returned clone must not touch stored state.
	updated.QuizScores[0] = 0.1
	got, _ := repos.Metrics.GetOrCreate(ctx, userID)
	if got.QuizScores[0] != 0.9 {
		t.Errorf("stored score = %v, want 0.9 (clone leaked)", got.QuizScores[0])
	}
}

func TestReviewUpsertFreshAndExisting(t *testing.T) {
	repos := NewMemory()
	userID := uuid.New()
	ctx := context.Background()

	if _, err := repos.Reviews.Get(ctx, userID, "algebra"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty store: err = %v, want ErrNotFound", err)
	}

	item, err := repos.Reviews.Upsert(ctx, userID, "algebra", func(r *ReviewItem) error {
		if r.ReviewCount != 0 {
			t.Errorf("fresh item count = %d, want 0", r.ReviewCount)
		}
		r.ReviewCount++
		r.IntervalDays = 1
		return nil
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if item.ReviewCount != 1 {
		t.Errorf("count = %d, want 1", item.ReviewCount)
	}

	item, err = repos.Reviews.Upsert(ctx, userID, "algebra", func(r *ReviewItem) error {
		r.ReviewCount++
		return nil
	})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if item.ReviewCount != 2 {
		t.Errorf("count after second upsert = %d, want 2", item.ReviewCount)
	}
}

func TestCreateIfNoneActiveCAS(t *testing.T) {
	repos := NewMemory()
	userID := uuid.New()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repos.Sessions.CreateIfNoneActive(ctx, &Session{
				ID:        uuid.New(),
				UserID:    userID,
				Type:      learning.SessionRegular,
				Status:    learning.StatusInProgress,
				StartedAt: time.Now(),
			})
		}(i)
	}
	wg.Wait()

	var ok, conflict int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrActiveSession):
			conflict++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflict != 9 {
		t.Errorf("got %d successes and %d conflicts, want 1 and 9", ok, conflict)
	}
}

func TestActiveClearedOnTerminal(t *testing.T) {
	repos := NewMemory()
	userID := uuid.New()
	ctx := context.Background()

	s := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      learning.SessionRegular,
		Status:    learning.StatusInProgress,
		StartedAt: time.Now(),
	}
	if err := repos.Sessions.CreateIfNoneActive(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repos.Sessions.Active(ctx, userID); err != nil {
		t.Fatalf("Active: %v", err)
	}

	_, err := repos.Sessions.Update(ctx, s.ID, func(s *Session) error {
		s.Status = learning.StatusCompleted
		now := time.Now()
		s.EndedAt = &now
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := repos.Sessions.Active(ctx, userID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Active after completion: err = %v, want ErrNotFound", err)
	}

	// A new session can start now.
	err = repos.Sessions.CreateIfNoneActive(ctx, &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    learning.StatusInProgress,
		StartedAt: time.Now(),
	})
	if err != nil {
		t.Errorf("create after completion: %v", err)
	}
}

func TestSessionsByUserFiltersAbandoned(t *testing.T) {
	repos := NewMemory()
	userID := uuid.New()
	ctx := context.Background()

	mk := func(status learning.SessionStatus) {
		s := &Session{ID: uuid.New(), UserID: userID, Status: learning.StatusInProgress, StartedAt: time.Now()}
		if err := repos.Sessions.CreateIfNoneActive(ctx, s); err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := repos.Sessions.Update(ctx, s.ID, func(s *Session) error {
			s.Status = status
			return nil
		}); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	mk(learning.StatusCompleted)
	mk(learning.StatusAbandoned)
	mk(learning.StatusCompleted)

	got, err := repos.Sessions.ByUser(ctx, userID, 0, false)
	if err != nil {
		t.Fatalf("ByUser: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("filtered history has %d sessions, want 2", len(got))
	}

	all, err := repos.Sessions.ByUser(ctx, userID, 0, true)
	if err != nil {
		t.Fatalf("ByUser: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("full history has %d sessions, want 3", len(all))
	}

	limited, _ := repos.Sessions.ByUser(ctx, userID, 1, true)
	if len(limited) != 1 {
		t.Errorf("limited history has %d sessions, want 1", len(limited))
	}
}

func TestAdaptationHistoryNewestFirst(t *testing.T) {
	repos := NewMemory()
	userID := uuid.New()
	ctx := context.Background()

	for _, reason := range []string{"first", "second", "third"} {
		err := repos.Events.AppendAdaptationEvent(ctx, &AdaptationEvent{
			ID:     uuid.New(),
			UserID: userID,
			Type:   learning.AdaptPace,
			Reason: reason,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repos.Events.AdaptationHistory(ctx, userID, 2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("history has %d events, want 2", len(events))
	}
	if events[0].Reason != "third" || events[1].Reason != "second" {
		t.Errorf("order = %s, %s; want third, second", events[0].Reason, events[1].Reason)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("sequence not monotonic: %d then %d", events[0].Sequence, events[1].Sequence)
	}
}
