// Package learning defines the shared vocabulary of the engine: paces,
// trends, session and activity kinds, and the closed status machines for
// sessions and adaptations. Keeping these in one leaf package lets the
// store and the domain services share them without import cycles.
package learning

import "fmt"

// Pace is the rate at which new content is introduced.
type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceNormal Pace = "normal"
	PaceFast   Pace = "fast"
)

// Valid reports whether p is one of the three enumerated paces.
func (p Pace) Valid() bool {
	return p == PaceSlow || p == PaceNormal || p == PaceFast
}

// StepUp returns the next faster pace. Fast stays fast; steps are never
// skipped (slow → normal → fast).
func (p Pace) StepUp() Pace {
	switch p {
	case PaceSlow:
		return PaceNormal
	case PaceNormal:
		return PaceFast
	}
	return PaceFast
}

// StepDown returns the next slower pace. Slow stays slow.
func (p Pace) StepDown() Pace {
	switch p {
	case PaceFast:
		return PaceNormal
	case PaceNormal:
		return PaceSlow
	}
	return PaceSlow
}

// Difficulty bounds for the 1-5 difficulty scale.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// ClampDifficulty forces d into [MinDifficulty, MaxDifficulty].
func ClampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

// Trend describes the direction of a score history.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// SessionType is the flavor of a planned session.
type SessionType string

const (
	SessionRegular SessionType = "regular"
	SessionDrill   SessionType = "drill"
	SessionCatchup SessionType = "catchup"
)

// SessionStatus is the session lifecycle state.
type SessionStatus string

const (
	StatusPlanned    SessionStatus = "planned"
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusAbandoned  SessionStatus = "abandoned"
)

// Terminal reports whether the status is final.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// Transition validates a status change. Terminal states never transition;
// in_progress may only move to a terminal state.
func (s SessionStatus) Transition(to SessionStatus) (SessionStatus, error) {
	switch {
	case s == StatusPlanned && to == StatusInProgress:
		return to, nil
	case s == StatusInProgress && to.Terminal():
		return to, nil
	}
	return s, fmt.Errorf("invalid session transition %s → %s", s, to)
}

// ActivityType is the kind of work done inside a session.
type ActivityType string

const (
	ActivityContentRead ActivityType = "content_read"
	ActivityQuiz        ActivityType = "quiz"
	ActivityDialogue    ActivityType = "dialogue"
	ActivityDrill       ActivityType = "drill"
	ActivityReflection  ActivityType = "reflection"
)

// AdaptationType classifies an adaptation trigger or event.
type AdaptationType string

const (
	AdaptPace       AdaptationType = "pace_adjustment"
	AdaptDifficulty AdaptationType = "difficulty_change"
	AdaptRecovery   AdaptationType = "recovery_plan"
	AdaptCurriculum AdaptationType = "curriculum_change"
)

// Overridable reports whether the type has a directly settable field that a
// manual override can write. Recovery and curriculum changes are reported,
// not applied.
func (t AdaptationType) Overridable() bool {
	return t == AdaptPace || t == AdaptDifficulty
}

// Review quality bounds (SM-2 recall quality).
const (
	MinQuality = 0
	MaxQuality = 5
)

// ValidQuality reports whether q is a legal SM-2 quality value.
func ValidQuality(q int) bool {
	return q >= MinQuality && q <= MaxQuality
}
