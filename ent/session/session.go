// Code generated by ent, DO NOT EDIT.

package session

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionType holds the string denoting the session_type field in the database.
	FieldSessionType = "session_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPlannedMinutes holds the string denoting the planned_minutes field in the database.
	FieldPlannedMinutes = "planned_minutes"
	// FieldActualMinutes holds the string denoting the actual_minutes field in the database.
	FieldActualMinutes = "actual_minutes"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldAbandonReason holds the string denoting the abandon_reason field in the database.
	FieldAbandonReason = "abandon_reason"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldUserID,
	FieldSessionType,
	FieldStatus,
	FieldPlannedMinutes,
	FieldActualMinutes,
	FieldStartedAt,
	FieldEndedAt,
	FieldAbandonReason,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultPlannedMinutes holds the default value on creation for the "planned_minutes" field.
	DefaultPlannedMinutes int
	// DefaultActualMinutes holds the default value on creation for the "actual_minutes" field.
	DefaultActualMinutes int
	// DefaultAbandonReason holds the default value on creation for the "abandon_reason" field.
	DefaultAbandonReason string
)

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionType orders the results by the session_type field.
func BySessionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPlannedMinutes orders the results by the planned_minutes field.
func ByPlannedMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlannedMinutes, opts...).ToFunc()
}

// ByActualMinutes orders the results by the actual_minutes field.
func ByActualMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualMinutes, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByAbandonReason orders the results by the abandon_reason field.
func ByAbandonReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbandonReason, opts...).ToFunc()
}
