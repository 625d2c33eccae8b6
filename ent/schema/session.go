package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one learning session with its lifecycle state.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("UUID of the session"),
		field.String("user_id").
			NotEmpty(),
		field.String("session_type").
			Comment("regular, drill, or catchup"),
		field.String("status").
			Comment("planned, in_progress, completed, or abandoned"),
		field.Int("planned_minutes").
			Default(0),
		field.Int("actual_minutes").
			Default(0),
		field.Time("started_at"),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.String("abandon_reason").
			Default(""),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").Unique(),
		index.Fields("user_id", "status"),
		index.Fields("user_id", "started_at"),
	}
}
