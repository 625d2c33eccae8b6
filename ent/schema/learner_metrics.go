package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnerMetrics is the one-row-per-user record of rolling performance
// and engagement signals plus the current adaptive settings.
type LearnerMetrics struct {
	ent.Schema
}

func (LearnerMetrics) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty().
			Comment("UUID of the learner"),
		field.JSON("quiz_scores", []float64{}).
			Optional().
			Comment("Rolling quiz score history, newest last, max 10"),
		field.JSON("dialogue_scores", []float64{}).
			Optional().
			Comment("Rolling dialogue score history, newest last, max 10"),
		field.Float("avg_quiz_score").
			Default(0.7),
		field.Float("avg_dialogue_score").
			Default(0.7),
		field.Int("sessions_last_7_days").
			Default(0),
		field.Int("sessions_last_30_days").
			Default(0),
		field.Int("avg_session_minutes").
			Default(30),
		field.Int("sessions_started").
			Default(0),
		field.Int("sessions_completed").
			Default(0),
		field.String("pace").
			Default("normal").
			Comment("slow, normal, or fast"),
		field.Int("difficulty_level").
			Default(3).
			Comment("1-5 scale"),
		field.Time("last_session_date").
			Optional().
			Nillable().
			Comment("Calendar date of the most recent session"),
		field.Int("consecutive_missed_days").
			Default(0),
		field.Int("current_streak").
			Default(0),
		field.Int("longest_streak").
			Default(0),
		field.Int("total_sessions").
			Default(0),
		field.JSON("gaps", []string{}).
			Optional().
			Comment("Identified gap topic ids, insertion order"),
	}
}

func (LearnerMetrics) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
