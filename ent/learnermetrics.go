// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ayinesh/studycoach/ent/learnermetrics"
)

// LearnerMetrics is the model entity for the LearnerMetrics schema.
type LearnerMetrics struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the learner
	UserID string `json:"user_id,omitempty"`
	// Rolling quiz score history, newest last, max 10
	QuizScores []float64 `json:"quiz_scores,omitempty"`
	// Rolling dialogue score history, newest last, max 10
	DialogueScores []float64 `json:"dialogue_scores,omitempty"`
	// AvgQuizScore holds the value of the "avg_quiz_score" field.
	AvgQuizScore float64 `json:"avg_quiz_score,omitempty"`
	// AvgDialogueScore holds the value of the "avg_dialogue_score" field.
	AvgDialogueScore float64 `json:"avg_dialogue_score,omitempty"`
	// SessionsLast7Days holds the value of the "sessions_last_7_days" field.
	SessionsLast7Days int `json:"sessions_last_7_days,omitempty"`
	// SessionsLast30Days holds the value of the "sessions_last_30_days" field.
	SessionsLast30Days int `json:"sessions_last_30_days,omitempty"`
	// AvgSessionMinutes holds the value of the "avg_session_minutes" field.
	AvgSessionMinutes int `json:"avg_session_minutes,omitempty"`
	// SessionsStarted holds the value of the "sessions_started" field.
	SessionsStarted int `json:"sessions_started,omitempty"`
	// SessionsCompleted holds the value of the "sessions_completed" field.
	SessionsCompleted int `json:"sessions_completed,omitempty"`
	// slow, normal, or fast
	Pace string `json:"pace,omitempty"`
	// 1-5 scale
	DifficultyLevel int `json:"difficulty_level,omitempty"`
	// Calendar date of the most recent session
	LastSessionDate *time.Time `json:"last_session_date,omitempty"`
	// ConsecutiveMissedDays holds the value of the "consecutive_missed_days" field.
	ConsecutiveMissedDays int `json:"consecutive_missed_days,omitempty"`
	// CurrentStreak holds the value of the "current_streak" field.
	CurrentStreak int `json:"current_streak,omitempty"`
	// LongestStreak holds the value of the "longest_streak" field.
	LongestStreak int `json:"longest_streak,omitempty"`
	// TotalSessions holds the value of the "total_sessions" field.
	TotalSessions int `json:"total_sessions,omitempty"`
	// Identified gap topic ids, insertion order
	Gaps         []string `json:"gaps,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerMetrics) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnermetrics.FieldQuizScores, learnermetrics.FieldDialogueScores, learnermetrics.FieldGaps:
			values[i] = new([]byte)
		case learnermetrics.FieldAvgQuizScore, learnermetrics.FieldAvgDialogueScore:
			values[i] = new(sql.NullFloat64)
		case learnermetrics.FieldID, learnermetrics.FieldSessionsLast7Days, learnermetrics.FieldSessionsLast30Days, learnermetrics.FieldAvgSessionMinutes, learnermetrics.FieldSessionsStarted, learnermetrics.FieldSessionsCompleted, learnermetrics.FieldDifficultyLevel, learnermetrics.FieldConsecutiveMissedDays, learnermetrics.FieldCurrentStreak, learnermetrics.FieldLongestStreak, learnermetrics.FieldTotalSessions:
			values[i] = new(sql.NullInt64)
		case learnermetrics.FieldUserID, learnermetrics.FieldPace:
			values[i] = new(sql.NullString)
		case learnermetrics.FieldLastSessionDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerMetrics fields.
func (_m *LearnerMetrics) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnermetrics.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learnermetrics.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learnermetrics.FieldQuizScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuizScores); err != nil {
					return fmt.Errorf("unmarshal field quiz_scores: %w", err)
				}
			}
		case learnermetrics.FieldDialogueScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dialogue_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DialogueScores); err != nil {
					return fmt.Errorf("unmarshal field dialogue_scores: %w", err)
				}
			}
		case learnermetrics.FieldAvgQuizScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_quiz_score", values[i])
			} else if value.Valid {
				_m.AvgQuizScore = value.Float64
			}
		case learnermetrics.FieldAvgDialogueScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_dialogue_score", values[i])
			} else if value.Valid {
				_m.AvgDialogueScore = value.Float64
			}
		case learnermetrics.FieldSessionsLast7Days:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_last_7_days", values[i])
			} else if value.Valid {
				_m.SessionsLast7Days = int(value.Int64)
			}
		case learnermetrics.FieldSessionsLast30Days:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_last_30_days", values[i])
			} else if value.Valid {
				_m.SessionsLast30Days = int(value.Int64)
			}
		case learnermetrics.FieldAvgSessionMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_session_minutes", values[i])
			} else if value.Valid {
				_m.AvgSessionMinutes = int(value.Int64)
			}
		case learnermetrics.FieldSessionsStarted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_started", values[i])
			} else if value.Valid {
				_m.SessionsStarted = int(value.Int64)
			}
		case learnermetrics.FieldSessionsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_completed", values[i])
			} else if value.Valid {
				_m.SessionsCompleted = int(value.Int64)
			}
		case learnermetrics.FieldPace:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pace", values[i])
			} else if value.Valid {
				_m.Pace = value.String
			}
		case learnermetrics.FieldDifficultyLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_level", values[i])
			} else if value.Valid {
				_m.DifficultyLevel = int(value.Int64)
			}
		case learnermetrics.FieldLastSessionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_session_date", values[i])
			} else if value.Valid {
				_m.LastSessionDate = new(time.Time)
				*_m.LastSessionDate = value.Time
			}
		case learnermetrics.FieldConsecutiveMissedDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_missed_days", values[i])
			} else if value.Valid {
				_m.ConsecutiveMissedDays = int(value.Int64)
			}
		case learnermetrics.FieldCurrentStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_streak", values[i])
			} else if value.Valid {
				_m.CurrentStreak = int(value.Int64)
			}
		case learnermetrics.FieldLongestStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field longest_streak", values[i])
			} else if value.Valid {
				_m.LongestStreak = int(value.Int64)
			}
		case learnermetrics.FieldTotalSessions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_sessions", values[i])
			} else if value.Valid {
				_m.TotalSessions = int(value.Int64)
			}
		case learnermetrics.FieldGaps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field gaps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Gaps); err != nil {
					return fmt.Errorf("unmarshal field gaps: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerMetrics.
// This includes values selected through modifiers, order, etc.
func (_m *LearnerMetrics) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerMetrics.
// Note that you need to call LearnerMetrics.Unwrap() before calling this method if this LearnerMetrics
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnerMetrics) Update() *LearnerMetricsUpdateOne {
	return NewLearnerMetricsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnerMetrics entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnerMetrics) Unwrap() *LearnerMetrics {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerMetrics is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnerMetrics) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerMetrics(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("quiz_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizScores))
	builder.WriteString(", ")
	builder.WriteString("dialogue_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.DialogueScores))
	builder.WriteString(", ")
	builder.WriteString("avg_quiz_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgQuizScore))
	builder.WriteString(", ")
	builder.WriteString("avg_dialogue_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgDialogueScore))
	builder.WriteString(", ")
	builder.WriteString("sessions_last_7_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsLast7Days))
	builder.WriteString(", ")
	builder.WriteString("sessions_last_30_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsLast30Days))
	builder.WriteString(", ")
	builder.WriteString("avg_session_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgSessionMinutes))
	builder.WriteString(", ")
	builder.WriteString("sessions_started=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsStarted))
	builder.WriteString(", ")
	builder.WriteString("sessions_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsCompleted))
	builder.WriteString(", ")
	builder.WriteString("pace=")
	builder.WriteString(_m.Pace)
	builder.WriteString(", ")
	builder.WriteString("difficulty_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyLevel))
	builder.WriteString(", ")
	if v := _m.LastSessionDate; v != nil {
		builder.WriteString("last_session_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("consecutive_missed_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveMissedDays))
	builder.WriteString(", ")
	builder.WriteString("current_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStreak))
	builder.WriteString(", ")
	builder.WriteString("longest_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.LongestStreak))
	builder.WriteString(", ")
	builder.WriteString("total_sessions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSessions))
	builder.WriteString(", ")
	builder.WriteString("gaps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Gaps))
	builder.WriteByte(')')
	return builder.String()
}

// LearnerMetricsSlice is a parsable slice of LearnerMetrics.
type LearnerMetricsSlice []*LearnerMetrics
