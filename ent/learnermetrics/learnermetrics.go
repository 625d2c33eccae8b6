// Code generated by ent, DO NOT EDIT.

package learnermetrics

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnermetrics type in the database.
	Label = "learner_metrics"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuizScores holds the string denoting the quiz_scores field in the database.
	FieldQuizScores = "quiz_scores"
	// FieldDialogueScores holds the string denoting the dialogue_scores field in the database.
	FieldDialogueScores = "dialogue_scores"
	// FieldAvgQuizScore holds the string denoting the avg_quiz_score field in the database.
	FieldAvgQuizScore = "avg_quiz_score"
	// FieldAvgDialogueScore holds the string denoting the avg_dialogue_score field in the database.
	FieldAvgDialogueScore = "avg_dialogue_score"
	// FieldSessionsLast7Days holds the string denoting the sessions_last_7_days field in the database.
	FieldSessionsLast7Days = "sessions_last_7_days"
	// FieldSessionsLast30Days holds the string denoting the sessions_last_30_days field in the database.
	FieldSessionsLast30Days = "sessions_last_30_days"
	// FieldAvgSessionMinutes holds the string denoting the avg_session_minutes field in the database.
	FieldAvgSessionMinutes = "avg_session_minutes"
	// FieldSessionsStarted holds the string denoting the sessions_started field in the database.
	FieldSessionsStarted = "sessions_started"
	// FieldSessionsCompleted holds the string denoting the sessions_completed field in the database.
	FieldSessionsCompleted = "sessions_completed"
	// FieldPace holds the string denoting the pace field in the database.
	FieldPace = "pace"
	// FieldDifficultyLevel holds the string denoting the difficulty_level field in the database.
	FieldDifficultyLevel = "difficulty_level"
	// FieldLastSessionDate holds the string denoting the last_session_date field in the database.
	FieldLastSessionDate = "last_session_date"
	// FieldConsecutiveMissedDays holds the string denoting the consecutive_missed_days field in the database.
	FieldConsecutiveMissedDays = "consecutive_missed_days"
	// FieldCurrentStreak holds the string denoting the current_streak field in the database.
	FieldCurrentStreak = "current_streak"
	// FieldLongestStreak holds the string denoting the longest_streak field in the database.
	FieldLongestStreak = "longest_streak"
	// FieldTotalSessions holds the string denoting the total_sessions field in the database.
	FieldTotalSessions = "total_sessions"
	// FieldGaps holds the string denoting the gaps field in the database.
	FieldGaps = "gaps"
	// Table holds the table name of the learnermetrics in the database.
	Table = "learner_metrics"
)

// Columns holds all SQL columns for learnermetrics fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldQuizScores,
	FieldDialogueScores,
	FieldAvgQuizScore,
	FieldAvgDialogueScore,
	FieldSessionsLast7Days,
	FieldSessionsLast30Days,
	FieldAvgSessionMinutes,
	FieldSessionsStarted,
	FieldSessionsCompleted,
	FieldPace,
	FieldDifficultyLevel,
	FieldLastSessionDate,
	FieldConsecutiveMissedDays,
	FieldCurrentStreak,
	FieldLongestStreak,
	FieldTotalSessions,
	FieldGaps,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultAvgQuizScore holds the default value on creation for the "avg_quiz_score" field.
	DefaultAvgQuizScore float64
	// DefaultAvgDialogueScore holds the default value on creation for the "avg_dialogue_score" field.
	DefaultAvgDialogueScore float64
	// DefaultSessionsLast7Days holds the default value on creation for the "sessions_last_7_days" field.
	DefaultSessionsLast7Days int
	// DefaultSessionsLast30Days holds the default value on creation for the "sessions_last_30_days" field.
	DefaultSessionsLast30Days int
	// DefaultAvgSessionMinutes holds the default value on creation for the "avg_session_minutes" field.
	DefaultAvgSessionMinutes int
	// DefaultSessionsStarted holds the default value on creation for the "sessions_started" field.
	DefaultSessionsStarted int
	// DefaultSessionsCompleted holds the default value on creation for the "sessions_completed" field.
	DefaultSessionsCompleted int
	// DefaultPace holds the default value on creation for the "pace" field.
	DefaultPace string
	// DefaultDifficultyLevel holds the default value on creation for the "difficulty_level" field.
	DefaultDifficultyLevel int
	// DefaultConsecutiveMissedDays holds the default value on creation for the "consecutive_missed_days" field.
	DefaultConsecutiveMissedDays int
	// DefaultCurrentStreak holds the default value on creation for the "current_streak" field.
	DefaultCurrentStreak int
	// DefaultLongestStreak holds the default value on creation for the "longest_streak" field.
	DefaultLongestStreak int
	// DefaultTotalSessions holds the default value on creation for the "total_sessions" field.
	DefaultTotalSessions int
)

// OrderOption defines the ordering options for the LearnerMetrics queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAvgQuizScore orders the results by the avg_quiz_score field.
func ByAvgQuizScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgQuizScore, opts...).ToFunc()
}

// ByAvgDialogueScore orders the results by the avg_dialogue_score field.
func ByAvgDialogueScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgDialogueScore, opts...).ToFunc()
}

// BySessionsLast7Days orders the results by the sessions_last_7_days field.
func BySessionsLast7Days(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsLast7Days, opts...).ToFunc()
}

// BySessionsLast30Days orders the results by the sessions_last_30_days field.
func BySessionsLast30Days(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsLast30Days, opts...).ToFunc()
}

// ByAvgSessionMinutes orders the results by the avg_session_minutes field.
func ByAvgSessionMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgSessionMinutes, opts...).ToFunc()
}

// BySessionsStarted orders the results by the sessions_started field.
func BySessionsStarted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsStarted, opts...).ToFunc()
}

// BySessionsCompleted orders the results by the sessions_completed field.
func BySessionsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsCompleted, opts...).ToFunc()
}

// ByPace orders the results by the pace field.
func ByPace(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPace, opts...).ToFunc()
}

// ByDifficultyLevel orders the results by the difficulty_level field.
func ByDifficultyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyLevel, opts...).ToFunc()
}

// ByLastSessionDate orders the results by the last_session_date field.
func ByLastSessionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSessionDate, opts...).ToFunc()
}

// ByConsecutiveMissedDays orders the results by the consecutive_missed_days field.
func ByConsecutiveMissedDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveMissedDays, opts...).ToFunc()
}

// ByCurrentStreak orders the results by the current_streak field.
func ByCurrentStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStreak, opts...).ToFunc()
}

// ByLongestStreak orders the results by the longest_streak field.
func ByLongestStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongestStreak, opts...).ToFunc()
}

// ByTotalSessions orders the results by the total_sessions field.
func ByTotalSessions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSessions, opts...).ToFunc()
}
