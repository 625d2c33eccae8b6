package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdaptationEvent records every applied adaptation (pace change,
// difficulty change, recovery plan, manual override) for the audit trail.
type AdaptationEvent struct {
	ent.Schema
}

func (AdaptationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AdaptationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			NotEmpty().
			Comment("UUID of the event"),
		field.String("user_id").
			NotEmpty(),
		field.String("adaptation_type").
			Comment("pace_adjustment, difficulty_change, recovery_plan, curriculum_change"),
		field.String("reason").
			Default(""),
		field.JSON("old_value", map[string]any{}).
			Optional(),
		field.JSON("new_value", map[string]any{}).
			Optional(),
	}
}

func (AdaptationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("adaptation_type"),
	}
}
