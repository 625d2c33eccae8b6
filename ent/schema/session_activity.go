package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionActivity is one unit of work recorded inside a session.
type SessionActivity struct {
	ent.Schema
}

func (SessionActivity) Fields() []ent.Field {
	return []ent.Field{
		field.String("activity_id").
			Unique().
			NotEmpty().
			Comment("UUID of the activity"),
		field.String("session_id").
			NotEmpty(),
		field.String("activity_type").
			Comment("content_read, quiz, dialogue, drill, or reflection"),
		field.String("topic_id").
			Default(""),
		field.String("content_id").
			Default(""),
		field.Time("started_at"),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.JSON("performance", map[string]any{}).
			Optional().
			Comment("Free-form performance data, e.g. score, gaps"),
	}
}

func (SessionActivity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activity_id").Unique(),
		index.Fields("session_id"),
	}
}
