// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ayinesh/studycoach/ent/learnermetrics"
	"github.com/ayinesh/studycoach/ent/predicate"
)

// LearnerMetricsUpdate is the builder for updating LearnerMetrics entities.
type LearnerMetricsUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerMetricsMutation
}

// Where appends a list predicates to the LearnerMetricsUpdate builder.
func (_u *LearnerMetricsUpdate) Where(ps ...predicate.LearnerMetrics) *LearnerMetricsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearnerMetricsUpdate) SetUserID(v string) *LearnerMetricsUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableUserID(v *string) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuizScores sets the "quiz_scores" field.
func (_u *LearnerMetricsUpdate) SetQuizScores(v []float64) *LearnerMetricsUpdate {
	_u.mutation.SetQuizScores(v)
	return _u
}

// AppendQuizScores appends value to the "quiz_scores" field.
func (_u *LearnerMetricsUpdate) AppendQuizScores(v []float64) *LearnerMetricsUpdate {
	_u.mutation.AppendQuizScores(v)
	return _u
}

// ClearQuizScores clears the value of the "quiz_scores" field.
func (_u *LearnerMetricsUpdate) ClearQuizScores() *LearnerMetricsUpdate {
	_u.mutation.ClearQuizScores()
	return _u
}

// SetDialogueScores sets the "dialogue_scores" field.
func (_u *LearnerMetricsUpdate) SetDialogueScores(v []float64) *LearnerMetricsUpdate {
	_u.mutation.SetDialogueScores(v)
	return _u
}

// AppendDialogueScores appends value to the "dialogue_scores" field.
func (_u *LearnerMetricsUpdate) AppendDialogueScores(v []float64) *LearnerMetricsUpdate {
	_u.mutation.AppendDialogueScores(v)
	return _u
}

// ClearDialogueScores clears the value of the "dialogue_scores" field.
func (_u *LearnerMetricsUpdate) ClearDialogueScores() *LearnerMetricsUpdate {
	_u.mutation.ClearDialogueScores()
	return _u
}

// SetAvgQuizScore sets the "avg_quiz_score" field.
func (_u *LearnerMetricsUpdate) SetAvgQuizScore(v float64) *LearnerMetricsUpdate {
	_u.mutation.ResetAvgQuizScore()
	_u.mutation.SetAvgQuizScore(v)
	return _u
}

// SetNillableAvgQuizScore sets the "avg_quiz_score" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableAvgQuizScore(v *float64) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetAvgQuizScore(*v)
	}
	return _u
}

// AddAvgQuizScore adds value to the "avg_quiz_score" field.
func (_u *LearnerMetricsUpdate) AddAvgQuizScore(v float64) *LearnerMetricsUpdate {
	_u.mutation.AddAvgQuizScore(v)
	return _u
}

// SetAvgDialogueScore sets the "avg_dialogue_score" field.
func (_u *LearnerMetricsUpdate) SetAvgDialogueScore(v float64) *LearnerMetricsUpdate {
	_u.mutation.ResetAvgDialogueScore()
	_u.mutation.SetAvgDialogueScore(v)
	return _u
}

// SetNillableAvgDialogueScore sets the "avg_dialogue_score" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableAvgDialogueScore(v *float64) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetAvgDialogueScore(*v)
	}
	return _u
}

// AddAvgDialogueScore adds value to the "avg_dialogue_score" field.
func (_u *LearnerMetricsUpdate) AddAvgDialogueScore(v float64) *LearnerMetricsUpdate {
	_u.mutation.AddAvgDialogueScore(v)
	return _u
}

// SetSessionsLast7Days sets the "sessions_last_7_days" field.
func (_u *LearnerMetricsUpdate) SetSessionsLast7Days(v int) *LearnerMetricsUpdate {
	_u.mutation.ResetSessionsLast7Days()
	_u.mutation.SetSessionsLast7Days(v)
	return _u
}

// SetNillableSessionsLast7Days sets the "sessions_last_7_days" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableSessionsLast7Days(v *int) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetSessionsLast7Days(*v)
	}
	return _u
}

// AddSessionsLast7Days adds value to the "sessions_last_7_days" field.
func (_u *LearnerMetricsUpdate) AddSessionsLast7Days(v int) *LearnerMetricsUpdate {
	_u.mutation.AddSessionsLast7Days(v)
	return _u
}

// SetSessionsLast30Days sets the "sessions_last_30_days" field.
func (_u *LearnerMetricsUpdate) SetSessionsLast30Days(v int) *LearnerMetricsUpdate {
	_u.mutation.ResetSessionsLast30Days()
	_u.mutation.SetSessionsLast30Days(v)
	return _u
}

// SetNillableSessionsLast30Days sets the "sessions_last_30_days" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableSessionsLast30Days(v *int) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetSessionsLast30Days(*v)
	}
	return _u
}

// AddSessionsLast30Days adds value to the "sessions_last_30_days" field.
func (_u *LearnerMetricsUpdate) AddSessionsLast30Days(v int) *LearnerMetricsUpdate {
	_u.mutation.AddSessionsLast30Days(v)
	return _u
}

// SetAvgSessionMinutes sets the "avg_session_minutes" field.
func (_u *LearnerMetricsUpdate) SetAvgSessionMinutes(v int) *LearnerMetricsUpdate {
	_u.mutation.ResetAvgSessionMinutes()
	_u.mutation.SetAvgSessionMinutes(v)
	return _u
}

// SetNillableAvgSessionMinutes sets the "avg_session_minutes" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableAvgSessionMinutes(v *int) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetAvgSessionMinutes(*v)
	}
	return _u
}

// AddAvgSessionMinutes adds value to the "avg_session_minutes" field.
func (_u *LearnerMetricsUpdate) AddAvgSessionMinutes(v int) *LearnerMetricsUpdate {
	_u.mutation.AddAvgSessionMinutes(v)
	return _u
}

// SetSessionsStarted sets the "sessions_started" field.
func (_u *LearnerMetricsUpdate) SetSessionsStarted(v int) *LearnerMetricsUpdate {
	_u.mutation.ResetSessionsStarted()
	_u.mutation.SetSessionsStarted(v)
	return _u
}

// SetNillableSessionsStarted sets the "sessions_started" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableSessionsStarted(v *int) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetSessionsStarted(*v)
	}
	return _u
}

// AddSessionsStarted adds value to the "sessions_started" field.
func (_u *LearnerMetricsUpdate) AddSessionsStarted(v int) *LearnerMetricsUpdate {
	_u.mutation.AddSessionsStarted(v)
	return _u
}

// SetSessionsCompleted sets the "sessions_completed" field.
func (_u *LearnerMetricsUpdate) SetSessionsCompleted(v int) *LearnerMetricsUpdate {
	_u.mutation.ResetSessionsCompleted()
	_u.mutation.SetSessionsCompleted(v)
	return _u
}

// SetNillableSessionsCompleted sets the "sessions_completed" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableSessionsCompleted(v *int) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetSessionsCompleted(*v)
	}
	return _u
}

// AddSessionsCompleted adds value to the "sessions_completed" field.
func (_u *LearnerMetricsUpdate) AddSessionsCompleted(v int) *LearnerMetricsUpdate {
	_u.mutation.AddSessionsCompleted(v)
	return _u
}

// SetPace sets the "pace" field.
func (_u *LearnerMetricsUpdate) SetPace(v string) *LearnerMetricsUpdate {
	_u.mutation.SetPace(v)
	return _u
}

// SetNillablePace sets the "pace" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillablePace(v *string) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetPace(*v)
	}
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *LearnerMetricsUpdate) SetDifficultyLevel(v int) *LearnerMetricsUpdate {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableDifficultyLevel(v *int) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *LearnerMetricsUpdate) AddDifficultyLevel(v int) *LearnerMetricsUpdate {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetLastSessionDate sets the "last_session_date" field.
func (_u *LearnerMetricsUpdate) SetLastSessionDate(v time.Time) *LearnerMetricsUpdate {
	_u.mutation.SetLastSessionDate(v)
	return _u
}

// SetNillableLastSessionDate sets the "last_session_date" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableLastSessionDate(v *time.Time) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetLastSessionDate(*v)
	}
	return _u
}

// ClearLastSessionDate clears the value of the "last_session_date" field.
func (_u *LearnerMetricsUpdate) ClearLastSessionDate() *LearnerMetricsUpdate {
	_u.mutation.ClearLastSessionDate()
	return _u
}

// SetConsecutiveMissedDays sets the "consecutive_missed_days" field.
func (_u *LearnerMetricsUpdate) SetConsecutiveMissedDays(v int) *LearnerMetricsUpdate {
	_u.mutation.ResetConsecutiveMissedDays()
	_u.mutation.SetConsecutiveMissedDays(v)
	return _u
}

// SetNillableConsecutiveMissedDays sets the "consecutive_missed_days" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableConsecutiveMissedDays(v *int) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetConsecutiveMissedDays(*v)
	}
	return _u
}

// AddConsecutiveMissedDays adds value to the "consecutive_missed_days" field.
func (_u *LearnerMetricsUpdate) AddConsecutiveMissedDays(v int) *LearnerMetricsUpdate {
	_u.mutation.AddConsecutiveMissedDays(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *LearnerMetricsUpdate) SetCurrentStreak(v int) *LearnerMetricsUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableCurrentStreak(v *int) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *LearnerMetricsUpdate) AddCurrentStreak(v int) *LearnerMetricsUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *LearnerMetricsUpdate) SetLongestStreak(v int) *LearnerMetricsUpdate {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableLongestStreak(v *int) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *LearnerMetricsUpdate) AddLongestStreak(v int) *LearnerMetricsUpdate {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetTotalSessions sets the "total_sessions" field.
func (_u *LearnerMetricsUpdate) SetTotalSessions(v int) *LearnerMetricsUpdate {
	_u.mutation.ResetTotalSessions()
	_u.mutation.SetTotalSessions(v)
	return _u
}

// SetNillableTotalSessions sets the "total_sessions" field if the given value is not nil.
func (_u *LearnerMetricsUpdate) SetNillableTotalSessions(v *int) *LearnerMetricsUpdate {
	if v != nil {
		_u.SetTotalSessions(*v)
	}
	return _u
}

// AddTotalSessions adds value to the "total_sessions" field.
func (_u *LearnerMetricsUpdate) AddTotalSessions(v int) *LearnerMetricsUpdate {
	_u.mutation.AddTotalSessions(v)
	return _u
}

// SetGaps sets the "gaps" field.
func (_u *LearnerMetricsUpdate) SetGaps(v []string) *LearnerMetricsUpdate {
	_u.mutation.SetGaps(v)
	return _u
}

// AppendGaps appends value to the "gaps" field.
func (_u *LearnerMetricsUpdate) AppendGaps(v []string) *LearnerMetricsUpdate {
	_u.mutation.AppendGaps(v)
	return _u
}

// ClearGaps clears the value of the "gaps" field.
func (_u *LearnerMetricsUpdate) ClearGaps() *LearnerMetricsUpdate {
	_u.mutation.ClearGaps()
	return _u
}

// Mutation returns the LearnerMetricsMutation object of the builder.
func (_u *LearnerMetricsUpdate) Mutation() *LearnerMetricsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerMetricsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerMetricsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerMetricsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerMetricsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerMetricsUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learnermetrics.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnerMetrics.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerMetricsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnermetrics.Table, learnermetrics.Columns, sqlgraph.NewFieldSpec(learnermetrics.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learnermetrics.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizScores(); ok {
		_spec.SetField(learnermetrics.FieldQuizScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuizScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnermetrics.FieldQuizScores, value)
		})
	}
	if _u.mutation.QuizScoresCleared() {
		_spec.ClearField(learnermetrics.FieldQuizScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.DialogueScores(); ok {
		_spec.SetField(learnermetrics.FieldDialogueScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDialogueScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnermetrics.FieldDialogueScores, value)
		})
	}
	if _u.mutation.DialogueScoresCleared() {
		_spec.ClearField(learnermetrics.FieldDialogueScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvgQuizScore(); ok {
		_spec.SetField(learnermetrics.FieldAvgQuizScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgQuizScore(); ok {
		_spec.AddField(learnermetrics.FieldAvgQuizScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgDialogueScore(); ok {
		_spec.SetField(learnermetrics.FieldAvgDialogueScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgDialogueScore(); ok {
		_spec.AddField(learnermetrics.FieldAvgDialogueScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionsLast7Days(); ok {
		_spec.SetField(learnermetrics.FieldSessionsLast7Days, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsLast7Days(); ok {
		_spec.AddField(learnermetrics.FieldSessionsLast7Days, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsLast30Days(); ok {
		_spec.SetField(learnermetrics.FieldSessionsLast30Days, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsLast30Days(); ok {
		_spec.AddField(learnermetrics.FieldSessionsLast30Days, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgSessionMinutes(); ok {
		_spec.SetField(learnermetrics.FieldAvgSessionMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgSessionMinutes(); ok {
		_spec.AddField(learnermetrics.FieldAvgSessionMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsStarted(); ok {
		_spec.SetField(learnermetrics.FieldSessionsStarted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsStarted(); ok {
		_spec.AddField(learnermetrics.FieldSessionsStarted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsCompleted(); ok {
		_spec.SetField(learnermetrics.FieldSessionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsCompleted(); ok {
		_spec.AddField(learnermetrics.FieldSessionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Pace(); ok {
		_spec.SetField(learnermetrics.FieldPace, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(learnermetrics.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(learnermetrics.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSessionDate(); ok {
		_spec.SetField(learnermetrics.FieldLastSessionDate, field.TypeTime, value)
	}
	if _u.mutation.LastSessionDateCleared() {
		_spec.ClearField(learnermetrics.FieldLastSessionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ConsecutiveMissedDays(); ok {
		_spec.SetField(learnermetrics.FieldConsecutiveMissedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveMissedDays(); ok {
		_spec.AddField(learnermetrics.FieldConsecutiveMissedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(learnermetrics.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(learnermetrics.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(learnermetrics.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(learnermetrics.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSessions(); ok {
		_spec.SetField(learnermetrics.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSessions(); ok {
		_spec.AddField(learnermetrics.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Gaps(); ok {
		_spec.SetField(learnermetrics.FieldGaps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGaps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnermetrics.FieldGaps, value)
		})
	}
	if _u.mutation.GapsCleared() {
		_spec.ClearField(learnermetrics.FieldGaps, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnermetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerMetricsUpdateOne is the builder for updating a single LearnerMetrics entity.
type LearnerMetricsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerMetricsMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearnerMetricsUpdateOne) SetUserID(v string) *LearnerMetricsUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableUserID(v *string) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuizScores sets the "quiz_scores" field.
func (_u *LearnerMetricsUpdateOne) SetQuizScores(v []float64) *LearnerMetricsUpdateOne {
	_u.mutation.SetQuizScores(v)
	return _u
}

// AppendQuizScores appends value to the "quiz_scores" field.
func (_u *LearnerMetricsUpdateOne) AppendQuizScores(v []float64) *LearnerMetricsUpdateOne {
	_u.mutation.AppendQuizScores(v)
	return _u
}

// ClearQuizScores clears the value of the "quiz_scores" field.
func (_u *LearnerMetricsUpdateOne) ClearQuizScores() *LearnerMetricsUpdateOne {
	_u.mutation.ClearQuizScores()
	return _u
}

// SetDialogueScores sets the "dialogue_scores" field.
func (_u *LearnerMetricsUpdateOne) SetDialogueScores(v []float64) *LearnerMetricsUpdateOne {
	_u.mutation.SetDialogueScores(v)
	return _u
}

// AppendDialogueScores appends value to the "dialogue_scores" field.
func (_u *LearnerMetricsUpdateOne) AppendDialogueScores(v []float64) *LearnerMetricsUpdateOne {
	_u.mutation.AppendDialogueScores(v)
	return _u
}

// ClearDialogueScores clears the value of the "dialogue_scores" field.
func (_u *LearnerMetricsUpdateOne) ClearDialogueScores() *LearnerMetricsUpdateOne {
	_u.mutation.ClearDialogueScores()
	return _u
}

// SetAvgQuizScore sets the "avg_quiz_score" field.
func (_u *LearnerMetricsUpdateOne) SetAvgQuizScore(v float64) *LearnerMetricsUpdateOne {
	_u.mutation.ResetAvgQuizScore()
	_u.mutation.SetAvgQuizScore(v)
	return _u
}

// SetNillableAvgQuizScore sets the "avg_quiz_score" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableAvgQuizScore(v *float64) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetAvgQuizScore(*v)
	}
	return _u
}

// AddAvgQuizScore adds value to the "avg_quiz_score" field.
func (_u *LearnerMetricsUpdateOne) AddAvgQuizScore(v float64) *LearnerMetricsUpdateOne {
	_u.mutation.AddAvgQuizScore(v)
	return _u
}

// SetAvgDialogueScore sets the "avg_dialogue_score" field.
func (_u *LearnerMetricsUpdateOne) SetAvgDialogueScore(v float64) *LearnerMetricsUpdateOne {
	_u.mutation.ResetAvgDialogueScore()
	_u.mutation.SetAvgDialogueScore(v)
	return _u
}

// SetNillableAvgDialogueScore sets the "avg_dialogue_score" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableAvgDialogueScore(v *float64) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetAvgDialogueScore(*v)
	}
	return _u
}

// AddAvgDialogueScore adds value to the "avg_dialogue_score" field.
func (_u *LearnerMetricsUpdateOne) AddAvgDialogueScore(v float64) *LearnerMetricsUpdateOne {
	_u.mutation.AddAvgDialogueScore(v)
	return _u
}

// SetSessionsLast7Days sets the "sessions_last_7_days" field.
func (_u *LearnerMetricsUpdateOne) SetSessionsLast7Days(v int) *LearnerMetricsUpdateOne {
	_u.mutation.ResetSessionsLast7Days()
	_u.mutation.SetSessionsLast7Days(v)
	return _u
}

// SetNillableSessionsLast7Days sets the "sessions_last_7_days" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableSessionsLast7Days(v *int) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetSessionsLast7Days(*v)
	}
	return _u
}

// AddSessionsLast7Days adds value to the "sessions_last_7_days" field.
func (_u *LearnerMetricsUpdateOne) AddSessionsLast7Days(v int) *LearnerMetricsUpdateOne {
	_u.mutation.AddSessionsLast7Days(v)
	return _u
}

// SetSessionsLast30Days sets the "sessions_last_30_days" field.
func (_u *LearnerMetricsUpdateOne) SetSessionsLast30Days(v int) *LearnerMetricsUpdateOne {
	_u.mutation.ResetSessionsLast30Days()
	_u.mutation.SetSessionsLast30Days(v)
	return _u
}

// SetNillableSessionsLast30Days sets the "sessions_last_30_days" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableSessionsLast30Days(v *int) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetSessionsLast30Days(*v)
	}
	return _u
}

// AddSessionsLast30Days adds value to the "sessions_last_30_days" field.
func (_u *LearnerMetricsUpdateOne) AddSessionsLast30Days(v int) *LearnerMetricsUpdateOne {
	_u.mutation.AddSessionsLast30Days(v)
	return _u
}

// SetAvgSessionMinutes sets the "avg_session_minutes" field.
func (_u *LearnerMetricsUpdateOne) SetAvgSessionMinutes(v int) *LearnerMetricsUpdateOne {
	_u.mutation.ResetAvgSessionMinutes()
	_u.mutation.SetAvgSessionMinutes(v)
	return _u
}

// SetNillableAvgSessionMinutes sets the "avg_session_minutes" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableAvgSessionMinutes(v *int) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetAvgSessionMinutes(*v)
	}
	return _u
}

// AddAvgSessionMinutes adds value to the "avg_session_minutes" field.
func (_u *LearnerMetricsUpdateOne) AddAvgSessionMinutes(v int) *LearnerMetricsUpdateOne {
	_u.mutation.AddAvgSessionMinutes(v)
	return _u
}

// SetSessionsStarted sets the "sessions_started" field.
func (_u *LearnerMetricsUpdateOne) SetSessionsStarted(v int) *LearnerMetricsUpdateOne {
	_u.mutation.ResetSessionsStarted()
	_u.mutation.SetSessionsStarted(v)
	return _u
}

// SetNillableSessionsStarted sets the "sessions_started" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableSessionsStarted(v *int) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetSessionsStarted(*v)
	}
	return _u
}

// AddSessionsStarted adds value to the "sessions_started" field.
func (_u *LearnerMetricsUpdateOne) AddSessionsStarted(v int) *LearnerMetricsUpdateOne {
	_u.mutation.AddSessionsStarted(v)
	return _u
}

// SetSessionsCompleted sets the "sessions_completed" field.
func (_u *LearnerMetricsUpdateOne) SetSessionsCompleted(v int) *LearnerMetricsUpdateOne {
	_u.mutation.ResetSessionsCompleted()
	_u.mutation.SetSessionsCompleted(v)
	return _u
}

// SetNillableSessionsCompleted sets the "sessions_completed" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableSessionsCompleted(v *int) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetSessionsCompleted(*v)
	}
	return _u
}

// AddSessionsCompleted adds value to the "sessions_completed" field.
func (_u *LearnerMetricsUpdateOne) AddSessionsCompleted(v int) *LearnerMetricsUpdateOne {
	_u.mutation.AddSessionsCompleted(v)
	return _u
}

// SetPace sets the "pace" field.
func (_u *LearnerMetricsUpdateOne) SetPace(v string) *LearnerMetricsUpdateOne {
	_u.mutation.SetPace(v)
	return _u
}

// SetNillablePace sets the "pace" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillablePace(v *string) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetPace(*v)
	}
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *LearnerMetricsUpdateOne) SetDifficultyLevel(v int) *LearnerMetricsUpdateOne {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableDifficultyLevel(v *int) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *LearnerMetricsUpdateOne) AddDifficultyLevel(v int) *LearnerMetricsUpdateOne {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetLastSessionDate sets the "last_session_date" field.
func (_u *LearnerMetricsUpdateOne) SetLastSessionDate(v time.Time) *LearnerMetricsUpdateOne {
	_u.mutation.SetLastSessionDate(v)
	return _u
}

// SetNillableLastSessionDate sets the "last_session_date" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableLastSessionDate(v *time.Time) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetLastSessionDate(*v)
	}
	return _u
}

// ClearLastSessionDate clears the value of the "last_session_date" field.
func (_u *LearnerMetricsUpdateOne) ClearLastSessionDate() *LearnerMetricsUpdateOne {
	_u.mutation.ClearLastSessionDate()
	return _u
}

// SetConsecutiveMissedDays sets the "consecutive_missed_days" field.
func (_u *LearnerMetricsUpdateOne) SetConsecutiveMissedDays(v int) *LearnerMetricsUpdateOne {
	_u.mutation.ResetConsecutiveMissedDays()
	_u.mutation.SetConsecutiveMissedDays(v)
	return _u
}

// SetNillableConsecutiveMissedDays sets the "consecutive_missed_days" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableConsecutiveMissedDays(v *int) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetConsecutiveMissedDays(*v)
	}
	return _u
}

// AddConsecutiveMissedDays adds value to the "consecutive_missed_days" field.
func (_u *LearnerMetricsUpdateOne) AddConsecutiveMissedDays(v int) *LearnerMetricsUpdateOne {
	_u.mutation.AddConsecutiveMissedDays(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *LearnerMetricsUpdateOne) SetCurrentStreak(v int) *LearnerMetricsUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableCurrentStreak(v *int) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *LearnerMetricsUpdateOne) AddCurrentStreak(v int) *LearnerMetricsUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *LearnerMetricsUpdateOne) SetLongestStreak(v int) *LearnerMetricsUpdateOne {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableLongestStreak(v *int) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *LearnerMetricsUpdateOne) AddLongestStreak(v int) *LearnerMetricsUpdateOne {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetTotalSessions sets the "total_sessions" field.
func (_u *LearnerMetricsUpdateOne) SetTotalSessions(v int) *LearnerMetricsUpdateOne {
	_u.mutation.ResetTotalSessions()
	_u.mutation.SetTotalSessions(v)
	return _u
}

// SetNillableTotalSessions sets the "total_sessions" field if the given value is not nil.
func (_u *LearnerMetricsUpdateOne) SetNillableTotalSessions(v *int) *LearnerMetricsUpdateOne {
	if v != nil {
		_u.SetTotalSessions(*v)
	}
	return _u
}

// AddTotalSessions adds value to the "total_sessions" field.
func (_u *LearnerMetricsUpdateOne) AddTotalSessions(v int) *LearnerMetricsUpdateOne {
	_u.mutation.AddTotalSessions(v)
	return _u
}

// SetGaps sets the "gaps" field.
func (_u *LearnerMetricsUpdateOne) SetGaps(v []string) *LearnerMetricsUpdateOne {
	_u.mutation.SetGaps(v)
	return _u
}

// AppendGaps appends value to the "gaps" field.
func (_u *LearnerMetricsUpdateOne) AppendGaps(v []string) *LearnerMetricsUpdateOne {
	_u.mutation.AppendGaps(v)
	return _u
}

// ClearGaps clears the value of the "gaps" field.
func (_u *LearnerMetricsUpdateOne) ClearGaps() *LearnerMetricsUpdateOne {
	_u.mutation.ClearGaps()
	return _u
}

// Mutation returns the LearnerMetricsMutation object of the builder.
func (_u *LearnerMetricsUpdateOne) Mutation() *LearnerMetricsMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerMetricsUpdate builder.
func (_u *LearnerMetricsUpdateOne) Where(ps ...predicate.LearnerMetrics) *LearnerMetricsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerMetricsUpdateOne) Select(field string, fields ...string) *LearnerMetricsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerMetrics entity.
func (_u *LearnerMetricsUpdateOne) Save(ctx context.Context) (*LearnerMetrics, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerMetricsUpdateOne) SaveX(ctx context.Context) *LearnerMetrics {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerMetricsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerMetricsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerMetricsUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learnermetrics.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnerMetrics.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerMetricsUpdateOne) sqlSave(ctx context.Context) (_node *LearnerMetrics, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnermetrics.Table, learnermetrics.Columns, sqlgraph.NewFieldSpec(learnermetrics.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerMetrics.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnermetrics.FieldID)
		for _, f := range fields {
			if !learnermetrics.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnermetrics.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learnermetrics.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizScores(); ok {
		_spec.SetField(learnermetrics.FieldQuizScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuizScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnermetrics.FieldQuizScores, value)
		})
	}
	if _u.mutation.QuizScoresCleared() {
		_spec.ClearField(learnermetrics.FieldQuizScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.DialogueScores(); ok {
		_spec.SetField(learnermetrics.FieldDialogueScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDialogueScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnermetrics.FieldDialogueScores, value)
		})
	}
	if _u.mutation.DialogueScoresCleared() {
		_spec.ClearField(learnermetrics.FieldDialogueScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvgQuizScore(); ok {
		_spec.SetField(learnermetrics.FieldAvgQuizScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgQuizScore(); ok {
		_spec.AddField(learnermetrics.FieldAvgQuizScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgDialogueScore(); ok {
		_spec.SetField(learnermetrics.FieldAvgDialogueScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgDialogueScore(); ok {
		_spec.AddField(learnermetrics.FieldAvgDialogueScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionsLast7Days(); ok {
		_spec.SetField(learnermetrics.FieldSessionsLast7Days, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsLast7Days(); ok {
		_spec.AddField(learnermetrics.FieldSessionsLast7Days, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsLast30Days(); ok {
		_spec.SetField(learnermetrics.FieldSessionsLast30Days, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsLast30Days(); ok {
		_spec.AddField(learnermetrics.FieldSessionsLast30Days, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgSessionMinutes(); ok {
		_spec.SetField(learnermetrics.FieldAvgSessionMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgSessionMinutes(); ok {
		_spec.AddField(learnermetrics.FieldAvgSessionMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsStarted(); ok {
		_spec.SetField(learnermetrics.FieldSessionsStarted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsStarted(); ok {
		_spec.AddField(learnermetrics.FieldSessionsStarted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsCompleted(); ok {
		_spec.SetField(learnermetrics.FieldSessionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsCompleted(); ok {
		_spec.AddField(learnermetrics.FieldSessionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Pace(); ok {
		_spec.SetField(learnermetrics.FieldPace, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(learnermetrics.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(learnermetrics.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSessionDate(); ok {
		_spec.SetField(learnermetrics.FieldLastSessionDate, field.TypeTime, value)
	}
	if _u.mutation.LastSessionDateCleared() {
		_spec.ClearField(learnermetrics.FieldLastSessionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ConsecutiveMissedDays(); ok {
		_spec.SetField(learnermetrics.FieldConsecutiveMissedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveMissedDays(); ok {
		_spec.AddField(learnermetrics.FieldConsecutiveMissedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(learnermetrics.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(learnermetrics.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(learnermetrics.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(learnermetrics.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSessions(); ok {
		_spec.SetField(learnermetrics.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSessions(); ok {
		_spec.AddField(learnermetrics.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Gaps(); ok {
		_spec.SetField(learnermetrics.FieldGaps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGaps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnermetrics.FieldGaps, value)
		})
	}
	if _u.mutation.GapsCleared() {
		_spec.ClearField(learnermetrics.FieldGaps, field.TypeJSON)
	}
	_node = &LearnerMetrics{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnermetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
