// Package session manages the learning-session lifecycle: planning,
// activity recording, completion summaries, and streak bookkeeping.
package session

import (
	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/learning"
)

// PlanKind is the planner's session flavor. It is richer than the stored
// session type: review and recovery plans both run as sessions of an
// existing stored type with a different activity mix.
type PlanKind string

const (
	PlanRegular  PlanKind = "regular"
	PlanDrill    PlanKind = "drill"
	PlanReview   PlanKind = "review"
	PlanRecovery PlanKind = "recovery"
)

// Valid reports whether k is one of the four plan kinds.
func (k PlanKind) Valid() bool {
	switch k {
	case PlanRegular, PlanDrill, PlanReview, PlanRecovery:
		return true
	}
	return false
}

// SessionType maps the plan kind onto the stored session type. Recovery
// plans run as catch-up sessions; review plans use the regular structure
// with a heavier review allocation.
func (k PlanKind) SessionType() learning.SessionType {
	switch k {
	case PlanDrill:
		return learning.SessionDrill
	case PlanRecovery:
		return learning.SessionCatchup
	}
	return learning.SessionRegular
}

// KindForType is the inverse mapping used when a session was started with
// an explicit stored type.
func KindForType(t learning.SessionType) PlanKind {
	switch t {
	case learning.SessionDrill:
		return PlanDrill
	case learning.SessionCatchup:
		return PlanRecovery
	}
	return PlanRegular
}

// PlanItem is one time-boxed activity in a session plan.
type PlanItem struct {
	Order           int
	Activity        learning.ActivityType
	DurationMinutes int
	TopicID         string
	Description     string
}

// Plan is the ordered, time-boxed activity list for one session. It is a
// derived, disposable value: computed once per session, cached in memory,
// and discarded when the session ends.
type Plan struct {
	SessionID          uuid.UUID
	Kind               PlanKind
	TotalMinutes       int
	ConsumptionMinutes int
	ProductionMinutes  int
	ReviewRatio        float64
	Items              []PlanItem
	TopicsCovered      []string
	IncludesReview     bool
}

// PlannedMinutes returns the sum of item durations. It never exceeds
// TotalMinutes.
func (p *Plan) PlannedMinutes() int {
	var sum int
	for _, item := range p.Items {
		sum += item.DurationMinutes
	}
	return sum
}
