// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdaptationEventsColumns holds the columns for the "adaptation_events" table.
	AdaptationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "adaptation_type", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "old_value", Type: field.TypeJSON, Nullable: true},
		{Name: "new_value", Type: field.TypeJSON, Nullable: true},
	}
	// AdaptationEventsTable holds the schema information for the "adaptation_events" table.
	AdaptationEventsTable = &schema.Table{
		Name:       "adaptation_events",
		Columns:    AdaptationEventsColumns,
		PrimaryKey: []*schema.Column{AdaptationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adaptationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[1]},
			},
			{
				Name:    "adaptationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[2]},
			},
			{
				Name:    "adaptationevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[4]},
			},
			{
				Name:    "adaptationevent_adaptation_type",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearnerMetricsColumns holds the columns for the "learner_metrics" table.
	LearnerMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "quiz_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "dialogue_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "avg_quiz_score", Type: field.TypeFloat64, Default: 0.7},
		{Name: "avg_dialogue_score", Type: field.TypeFloat64, Default: 0.7},
		{Name: "sessions_last_7_days", Type: field.TypeInt, Default: 0},
		{Name: "sessions_last_30_days", Type: field.TypeInt, Default: 0},
		{Name: "avg_session_minutes", Type: field.TypeInt, Default: 30},
		{Name: "sessions_started", Type: field.TypeInt, Default: 0},
		{Name: "sessions_completed", Type: field.TypeInt, Default: 0},
		{Name: "pace", Type: field.TypeString, Default: "normal"},
		{Name: "difficulty_level", Type: field.TypeInt, Default: 3},
		{Name: "last_session_date", Type: field.TypeTime, Nullable: true},
		{Name: "consecutive_missed_days", Type: field.TypeInt, Default: 0},
		{Name: "current_streak", Type: field.TypeInt, Default: 0},
		{Name: "longest_streak", Type: field.TypeInt, Default: 0},
		{Name: "total_sessions", Type: field.TypeInt, Default: 0},
		{Name: "gaps", Type: field.TypeJSON, Nullable: true},
	}
	// LearnerMetricsTable holds the schema information for the "learner_metrics" table.
	LearnerMetricsTable = &schema.Table{
		Name:       "learner_metrics",
		Columns:    LearnerMetricsColumns,
		PrimaryKey: []*schema.Column{LearnerMetricsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learnermetrics_user_id",
				Unique:  true,
				Columns: []*schema.Column{LearnerMetricsColumns[1]},
			},
		},
	}
	// ReviewItemsColumns holds the columns for the "review_items" table.
	ReviewItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "last_reviewed_at", Type: field.TypeTime},
		{Name: "next_review_at", Type: field.TypeTime},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "proficiency", Type: field.TypeFloat64, Default: 0.5},
	}
	// ReviewItemsTable holds the schema information for the "review_items" table.
	ReviewItemsTable = &schema.Table{
		Name:       "review_items",
		Columns:    ReviewItemsColumns,
		PrimaryKey: []*schema.Column{ReviewItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewitem_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[2]},
			},
			{
				Name:    "reviewitem_user_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[4]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "planned_minutes", Type: field.TypeInt, Default: 0},
		{Name: "actual_minutes", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "abandon_reason", Type: field.TypeString, Default: ""},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_session_id",
				Unique:  true,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2], SessionsColumns[4]},
			},
			{
				Name:    "session_user_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2], SessionsColumns[7]},
			},
		},
	}
	// SessionActivitiesColumns holds the columns for the "session_activities" table.
	SessionActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "activity_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "activity_type", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString, Default: ""},
		{Name: "content_id", Type: field.TypeString, Default: ""},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "performance", Type: field.TypeJSON, Nullable: true},
	}
	// SessionActivitiesTable holds the schema information for the "session_activities" table.
	SessionActivitiesTable = &schema.Table{
		Name:       "session_activities",
		Columns:    SessionActivitiesColumns,
		PrimaryKey: []*schema.Column{SessionActivitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionactivity_activity_id",
				Unique:  true,
				Columns: []*schema.Column{SessionActivitiesColumns[1]},
			},
			{
				Name:    "sessionactivity_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionActivitiesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdaptationEventsTable,
		LlmRequestEventsTable,
		LearnerMetricsTable,
		ReviewItemsTable,
		SessionsTable,
		SessionActivitiesTable,
	}
)

func init() {
}
