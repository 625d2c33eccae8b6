package review

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/store"
)

func newTestScheduler() (*Scheduler, uuid.UUID) {
	repos := store.NewMemory()
	return NewScheduler(repos.Reviews), uuid.New()
}

func TestUpdateScheduleRoundTrip(t *testing.T) {
	sched, userID := newTestScheduler()
	ctx := context.Background()

	item, err := sched.UpdateSchedule(ctx, userID, "goroutines", true, 4)
	if err != nil {
		t.Fatalf("first review: %v", err)
	}
	if item.ReviewCount != 1 || item.IntervalDays != 1 {
		t.Errorf("after first review: count=%d interval=%d, want 1/1", item.ReviewCount, item.IntervalDays)
	}

	item, err = sched.UpdateSchedule(ctx, userID, "goroutines", true, 4)
	if err != nil {
		t.Fatalf("second review: %v", err)
	}
	if item.ReviewCount != 2 || item.IntervalDays != 6 {
		t.Errorf("after second review: count=%d interval=%d, want 2/6", item.ReviewCount, item.IntervalDays)
	}
}

func TestUpdateScheduleFailureResetsInterval(t *testing.T) {
	sched, userID := newTestScheduler()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := sched.UpdateSchedule(ctx, userID, "channels", true, 5); err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
	}
	item, _ := sched.repo.Get(ctx, userID, "channels")
	if item.IntervalDays <= 6 {
		t.Fatalf("interval after 4 good reviews = %d, want > 6", item.IntervalDays)
	}

	item, err := sched.UpdateSchedule(ctx, userID, "channels", false, 1)
	if err != nil {
		t.Fatalf("failed review: %v", err)
	}
	if item.IntervalDays != 1 {
		t.Errorf("interval after failure = %d, want 1", item.IntervalDays)
	}
	if item.ReviewCount != 5 {
		t.Errorf("count after failure = %d, want 5", item.ReviewCount)
	}
}

func TestUpdateScheduleThirdReviewUsesEase(t *testing.T) {
	sched, userID := newTestScheduler()
	ctx := context.Background()

	sched.UpdateSchedule(ctx, userID, "interfaces", true, 4)
	sched.UpdateSchedule(ctx, userID, "interfaces", true, 4)
	before, _ := sched.repo.Get(ctx, userID, "interfaces")

	item, err := sched.UpdateSchedule(ctx, userID, "interfaces", true, 4)
	if err != nil {
		t.Fatalf("third review: %v", err)
	}
	wantEase := NextEase(before.EaseFactor, 4)
	want := NextInterval(before.IntervalDays, wantEase, 2, 4)
	if item.IntervalDays != want {
		t.Errorf("third interval = %d, want %d", item.IntervalDays, want)
	}
}

func TestUpdateScheduleProficiencyClamped(t *testing.T) {
	sched, userID := newTestScheduler()
	ctx := context.Background()

	var item *store.ReviewItem
	var err error
	for i := 0; i < 10; i++ {
		item, err = sched.UpdateSchedule(ctx, userID, "maps", true, 5)
		if err != nil {
			t.Fatalf("review: %v", err)
		}
	}
	if item.Proficiency != 1.0 {
		t.Errorf("proficiency after 10 correct = %v, want 1.0", item.Proficiency)
	}

	for i := 0; i < 15; i++ {
		item, err = sched.UpdateSchedule(ctx, userID, "maps", false, 0)
		if err != nil {
			t.Fatalf("review: %v", err)
		}
	}
	if item.Proficiency != 0.0 {
		t.Errorf("proficiency after 15 incorrect = %v, want 0.0", item.Proficiency)
	}
}

func TestUpdateScheduleRejectsBadQuality(t *testing.T) {
	sched, userID := newTestScheduler()
	ctx := context.Background()

	if _, err := sched.UpdateSchedule(ctx, userID, "topic", true, 6); err == nil {
		t.Error("quality 6 accepted, want error")
	}
	if _, err := sched.UpdateSchedule(ctx, userID, "topic", true, -1); err == nil {
		t.Error("quality -1 accepted, want error")
	}
	if _, err := sched.UpdateSchedule(ctx, userID, "", true, 4); err == nil {
		t.Error("empty topic accepted, want error")
	}
}

func TestDueReviewsOrderedMostOverdueFirst(t *testing.T) {
	sched, userID := newTestScheduler()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	sched.WithClock(func() time.Time { return base })

	// Three topics reviewed at the same moment, intervals all 1 day.
	for _, topic := range []string{"a", "b", "c"} {
		if _, err := sched.UpdateSchedule(ctx, userID, topic, true, 4); err != nil {
			t.Fatalf("seed %s: %v", topic, err)
		}
	}
	// Review "c" again later so it is due later than the others.
	sched.WithClock(func() time.Time { return base.Add(26 * time.Hour) })
	if _, err := sched.UpdateSchedule(ctx, userID, "c", true, 4); err != nil {
		t.Fatalf("re-review c: %v", err)
	}

	sched.WithClock(func() time.Time { return base.AddDate(0, 0, 20) })
	due, err := sched.DueReviews(ctx, userID, 0)
	if err != nil {
		t.Fatalf("DueReviews: %v", err)
	}
	if len(due) != 3 {
		t.Fatalf("due count = %d, want 3", len(due))
	}
	if due[2].TopicID != "c" {
		t.Errorf("last due topic = %s, want c (least overdue)", due[2].TopicID)
	}

	limited, _ := sched.DueReviews(ctx, userID, 2)
	if len(limited) != 2 {
		t.Errorf("limited due count = %d, want 2", len(limited))
	}

	// Nothing due when the clock is before every next_review_at.
	sched.WithClock(func() time.Time { return base })
	none, _ := sched.DueReviews(ctx, userID, 0)
	if len(none) != 0 {
		t.Errorf("due before schedule = %d items, want 0", len(none))
	}
}
