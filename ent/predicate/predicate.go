// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdaptationEvent is the predicate function for adaptationevent builders.
type AdaptationEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearnerMetrics is the predicate function for learnermetrics builders.
type LearnerMetrics func(*sql.Selector)

// ReviewItem is the predicate function for reviewitem builders.
type ReviewItem func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SessionActivity is the predicate function for sessionactivity builders.
type SessionActivity func(*sql.Selector)
