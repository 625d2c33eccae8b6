package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewItem is the spaced-repetition state for one (user, topic) pair.
type ReviewItem struct {
	ent.Schema
}

func (ReviewItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.Time("last_reviewed_at"),
		field.Time("next_review_at"),
		field.Int("interval_days").
			Default(0),
		field.Float("ease_factor").
			Default(2.5),
		field.Int("review_count").
			Default(0),
		field.Float("proficiency").
			Default(0.5).
			Comment("Self-estimated mastery in [0,1]"),
	}
}

func (ReviewItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").Unique(),
		index.Fields("user_id", "next_review_at"),
	}
}
