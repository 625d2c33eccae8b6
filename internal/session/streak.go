package session

import (
	"time"

	"github.com/ayinesh/studycoach/internal/store"
)

// applyStreak updates streak bookkeeping after a completed session on the
// given day. The comparison is by calendar date: a session yesterday
// extends the streak, a second session today changes nothing, and any
// longer gap (or a first-ever session) restarts the streak at 1. Longest
// streak never decreases. Reports whether the current streak changed.
func applyStreak(m *store.LearnerMetrics, today time.Time) bool {
	day := truncateToDay(today)
	updated := false

	switch {
	case m.LastSessionDate == nil:
		m.CurrentStreak = 1
		updated = true
	case sameDay(*m.LastSessionDate, day):
		// Already studied today.
	case sameDay(*m.LastSessionDate, day.AddDate(0, 0, -1)):
		m.CurrentStreak++
		updated = true
	default:
		m.CurrentStreak = 1
		updated = true
	}

	if m.CurrentStreak > m.LongestStreak {
		m.LongestStreak = m.CurrentStreak
	}

	m.LastSessionDate = &day
	m.TotalSessions++
	return updated
}

// StreakInfo is the streak snapshot exposed to callers.
type StreakInfo struct {
	Current  int
	Longest  int
	LastDate *time.Time
	AtRisk   bool
}

// streakAtRisk reports whether the streak will break unless the user
// studies today: at least one day has passed since the last session and
// there is a streak to lose.
func streakAtRisk(m *store.LearnerMetrics, now time.Time) bool {
	if m.LastSessionDate == nil || m.CurrentStreak == 0 {
		return false
	}
	return daysBetween(*m.LastSessionDate, now) >= 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func daysBetween(a, b time.Time) int {
	return int(truncateToDay(b).Sub(truncateToDay(a)).Hours() / 24)
}
