// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ayinesh/studycoach/ent/learnermetrics"
)

// LearnerMetricsCreate is the builder for creating a LearnerMetrics entity.
type LearnerMetricsCreate struct {
	config
	mutation *LearnerMetricsMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearnerMetricsCreate) SetUserID(v string) *LearnerMetricsCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuizScores sets the "quiz_scores" field.
func (_c *LearnerMetricsCreate) SetQuizScores(v []float64) *LearnerMetricsCreate {
	_c.mutation.SetQuizScores(v)
	return _c
}

// SetDialogueScores sets the "dialogue_scores" field.
func (_c *LearnerMetricsCreate) SetDialogueScores(v []float64) *LearnerMetricsCreate {
	_c.mutation.SetDialogueScores(v)
	return _c
}

// SetAvgQuizScore sets the "avg_quiz_score" field.
func (_c *LearnerMetricsCreate) SetAvgQuizScore(v float64) *LearnerMetricsCreate {
	_c.mutation.SetAvgQuizScore(v)
	return _c
}

// SetNillableAvgQuizScore sets the "avg_quiz_score" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableAvgQuizScore(v *float64) *LearnerMetricsCreate {
	if v != nil {
		_c.SetAvgQuizScore(*v)
	}
	return _c
}

// SetAvgDialogueScore sets the "avg_dialogue_score" field.
func (_c *LearnerMetricsCreate) SetAvgDialogueScore(v float64) *LearnerMetricsCreate {
	_c.mutation.SetAvgDialogueScore(v)
	return _c
}

// SetNillableAvgDialogueScore sets the "avg_dialogue_score" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableAvgDialogueScore(v *float64) *LearnerMetricsCreate {
	if v != nil {
		_c.SetAvgDialogueScore(*v)
	}
	return _c
}

// SetSessionsLast7Days sets the "sessions_last_7_days" field.
func (_c *LearnerMetricsCreate) SetSessionsLast7Days(v int) *LearnerMetricsCreate {
	_c.mutation.SetSessionsLast7Days(v)
	return _c
}

// SetNillableSessionsLast7Days sets the "sessions_last_7_days" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableSessionsLast7Days(v *int) *LearnerMetricsCreate {
	if v != nil {
		_c.SetSessionsLast7Days(*v)
	}
	return _c
}

// SetSessionsLast30Days sets the "sessions_last_30_days" field.
func (_c *LearnerMetricsCreate) SetSessionsLast30Days(v int) *LearnerMetricsCreate {
	_c.mutation.SetSessionsLast30Days(v)
	return _c
}

// SetNillableSessionsLast30Days sets the "sessions_last_30_days" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableSessionsLast30Days(v *int) *LearnerMetricsCreate {
	if v != nil {
		_c.SetSessionsLast30Days(*v)
	}
	return _c
}

// SetAvgSessionMinutes sets the "avg_session_minutes" field.
func (_c *LearnerMetricsCreate) SetAvgSessionMinutes(v int) *LearnerMetricsCreate {
	_c.mutation.SetAvgSessionMinutes(v)
	return _c
}

// SetNillableAvgSessionMinutes sets the "avg_session_minutes" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableAvgSessionMinutes(v *int) *LearnerMetricsCreate {
	if v != nil {
		_c.SetAvgSessionMinutes(*v)
	}
	return _c
}

// SetSessionsStarted sets the "sessions_started" field.
func (_c *LearnerMetricsCreate) SetSessionsStarted(v int) *LearnerMetricsCreate {
	_c.mutation.SetSessionsStarted(v)
	return _c
}

// SetNillableSessionsStarted sets the "sessions_started" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableSessionsStarted(v *int) *LearnerMetricsCreate {
	if v != nil {
		_c.SetSessionsStarted(*v)
	}
	return _c
}

// SetSessionsCompleted sets the "sessions_completed" field.
func (_c *LearnerMetricsCreate) SetSessionsCompleted(v int) *LearnerMetricsCreate {
	_c.mutation.SetSessionsCompleted(v)
	return _c
}

// SetNillableSessionsCompleted sets the "sessions_completed" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableSessionsCompleted(v *int) *LearnerMetricsCreate {
	if v != nil {
		_c.SetSessionsCompleted(*v)
	}
	return _c
}

// SetPace sets the "pace" field.
func (_c *LearnerMetricsCreate) SetPace(v string) *LearnerMetricsCreate {
	_c.mutation.SetPace(v)
	return _c
}

// SetNillablePace sets the "pace" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillablePace(v *string) *LearnerMetricsCreate {
	if v != nil {
		_c.SetPace(*v)
	}
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *LearnerMetricsCreate) SetDifficultyLevel(v int) *LearnerMetricsCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableDifficultyLevel(v *int) *LearnerMetricsCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// SetLastSessionDate sets the "last_session_date" field.
func (_c *LearnerMetricsCreate) SetLastSessionDate(v time.Time) *LearnerMetricsCreate {
	_c.mutation.SetLastSessionDate(v)
	return _c
}

// SetNillableLastSessionDate sets the "last_session_date" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableLastSessionDate(v *time.Time) *LearnerMetricsCreate {
	if v != nil {
		_c.SetLastSessionDate(*v)
	}
	return _c
}

// SetConsecutiveMissedDays sets the "consecutive_missed_days" field.
func (_c *LearnerMetricsCreate) SetConsecutiveMissedDays(v int) *LearnerMetricsCreate {
	_c.mutation.SetConsecutiveMissedDays(v)
	return _c
}

// SetNillableConsecutiveMissedDays sets the "consecutive_missed_days" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableConsecutiveMissedDays(v *int) *LearnerMetricsCreate {
	if v != nil {
		_c.SetConsecutiveMissedDays(*v)
	}
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *LearnerMetricsCreate) SetCurrentStreak(v int) *LearnerMetricsCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableCurrentStreak(v *int) *LearnerMetricsCreate {
	if v != nil {
		_c.SetCurrentStreak(*v)
	}
	return _c
}

// SetLongestStreak sets the "longest_streak" field.
func (_c *LearnerMetricsCreate) SetLongestStreak(v int) *LearnerMetricsCreate {
	_c.mutation.SetLongestStreak(v)
	return _c
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableLongestStreak(v *int) *LearnerMetricsCreate {
	if v != nil {
		_c.SetLongestStreak(*v)
	}
	return _c
}

// SetTotalSessions sets the "total_sessions" field.
func (_c *LearnerMetricsCreate) SetTotalSessions(v int) *LearnerMetricsCreate {
	_c.mutation.SetTotalSessions(v)
	return _c
}

// SetNillableTotalSessions sets the "total_sessions" field if the given value is not nil.
func (_c *LearnerMetricsCreate) SetNillableTotalSessions(v *int) *LearnerMetricsCreate {
	if v != nil {
		_c.SetTotalSessions(*v)
	}
	return _c
}

// SetGaps sets the "gaps" field.
func (_c *LearnerMetricsCreate) SetGaps(v []string) *LearnerMetricsCreate {
	_c.mutation.SetGaps(v)
	return _c
}

// Mutation returns the LearnerMetricsMutation object of the builder.
func (_c *LearnerMetricsCreate) Mutation() *LearnerMetricsMutation {
	return _c.mutation
}

// Save creates the LearnerMetrics in the database.
func (_c *LearnerMetricsCreate) Save(ctx context.Context) (*LearnerMetrics, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerMetricsCreate) SaveX(ctx context.Context) *LearnerMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerMetricsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerMetricsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerMetricsCreate) defaults() {
	if _, ok := _c.mutation.AvgQuizScore(); !ok {
		v := learnermetrics.DefaultAvgQuizScore
		_c.mutation.SetAvgQuizScore(v)
	}
	if _, ok := _c.mutation.AvgDialogueScore(); !ok {
		v := learnermetrics.DefaultAvgDialogueScore
		_c.mutation.SetAvgDialogueScore(v)
	}
	if _, ok := _c.mutation.SessionsLast7Days(); !ok {
		v := learnermetrics.DefaultSessionsLast7Days
		_c.mutation.SetSessionsLast7Days(v)
	}
	if _, ok := _c.mutation.SessionsLast30Days(); !ok {
		v := learnermetrics.DefaultSessionsLast30Days
		_c.mutation.SetSessionsLast30Days(v)
	}
	if _, ok := _c.mutation.AvgSessionMinutes(); !ok {
		v := learnermetrics.DefaultAvgSessionMinutes
		_c.mutation.SetAvgSessionMinutes(v)
	}
	if _, ok := _c.mutation.SessionsStarted(); !ok {
		v := learnermetrics.DefaultSessionsStarted
		_c.mutation.SetSessionsStarted(v)
	}
	if _, ok := _c.mutation.SessionsCompleted(); !ok {
		v := learnermetrics.DefaultSessionsCompleted
		_c.mutation.SetSessionsCompleted(v)
	}
	if _, ok := _c.mutation.Pace(); !ok {
		v := learnermetrics.DefaultPace
		_c.mutation.SetPace(v)
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		v := learnermetrics.DefaultDifficultyLevel
		_c.mutation.SetDifficultyLevel(v)
	}
	if _, ok := _c.mutation.ConsecutiveMissedDays(); !ok {
		v := learnermetrics.DefaultConsecutiveMissedDays
		_c.mutation.SetConsecutiveMissedDays(v)
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		v := learnermetrics.DefaultCurrentStreak
		_c.mutation.SetCurrentStreak(v)
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		v := learnermetrics.DefaultLongestStreak
		_c.mutation.SetLongestStreak(v)
	}
	if _, ok := _c.mutation.TotalSessions(); !ok {
		v := learnermetrics.DefaultTotalSessions
		_c.mutation.SetTotalSessions(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerMetricsCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearnerMetrics.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learnermetrics.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnerMetrics.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AvgQuizScore(); !ok {
		return &ValidationError{Name: "avg_quiz_score", err: errors.New(`ent: missing required field "LearnerMetrics.avg_quiz_score"`)}
	}
	if _, ok := _c.mutation.AvgDialogueScore(); !ok {
		return &ValidationError{Name: "avg_dialogue_score", err: errors.New(`ent: missing required field "LearnerMetrics.avg_dialogue_score"`)}
	}
	if _, ok := _c.mutation.SessionsLast7Days(); !ok {
		return &ValidationError{Name: "sessions_last_7_days", err: errors.New(`ent: missing required field "LearnerMetrics.sessions_last_7_days"`)}
	}
	if _, ok := _c.mutation.SessionsLast30Days(); !ok {
		return &ValidationError{Name: "sessions_last_30_days", err: errors.New(`ent: missing required field "LearnerMetrics.sessions_last_30_days"`)}
	}
	if _, ok := _c.mutation.AvgSessionMinutes(); !ok {
		return &ValidationError{Name: "avg_session_minutes", err: errors.New(`ent: missing required field "LearnerMetrics.avg_session_minutes"`)}
	}
	if _, ok := _c.mutation.SessionsStarted(); !ok {
		return &ValidationError{Name: "sessions_started", err: errors.New(`ent: missing required field "LearnerMetrics.sessions_started"`)}
	}
	if _, ok := _c.mutation.SessionsCompleted(); !ok {
		return &ValidationError{Name: "sessions_completed", err: errors.New(`ent: missing required field "LearnerMetrics.sessions_completed"`)}
	}
	if _, ok := _c.mutation.Pace(); !ok {
		return &ValidationError{Name: "pace", err: errors.New(`ent: missing required field "LearnerMetrics.pace"`)}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "LearnerMetrics.difficulty_level"`)}
	}
	if _, ok := _c.mutation.ConsecutiveMissedDays(); !ok {
		return &ValidationError{Name: "consecutive_missed_days", err: errors.New(`ent: missing required field "LearnerMetrics.consecutive_missed_days"`)}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "LearnerMetrics.current_streak"`)}
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		return &ValidationError{Name: "longest_streak", err: errors.New(`ent: missing required field "LearnerMetrics.longest_streak"`)}
	}
	if _, ok := _c.mutation.TotalSessions(); !ok {
		return &ValidationError{Name: "total_sessions", err: errors.New(`ent: missing required field "LearnerMetrics.total_sessions"`)}
	}
	return nil
}

func (_c *LearnerMetricsCreate) sqlSave(ctx context.Context) (*LearnerMetrics, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearnerMetricsCreate) createSpec() (*LearnerMetrics, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerMetrics{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnermetrics.Table, sqlgraph.NewFieldSpec(learnermetrics.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learnermetrics.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuizScores(); ok {
		_spec.SetField(learnermetrics.FieldQuizScores, field.TypeJSON, value)
		_node.QuizScores = value
	}
	if value, ok := _c.mutation.DialogueScores(); ok {
		_spec.SetField(learnermetrics.FieldDialogueScores, field.TypeJSON, value)
		_node.DialogueScores = value
	}
	if value, ok := _c.mutation.AvgQuizScore(); ok {
		_spec.SetField(learnermetrics.FieldAvgQuizScore, field.TypeFloat64, value)
		_node.AvgQuizScore = value
	}
	if value, ok := _c.mutation.AvgDialogueScore(); ok {
		_spec.SetField(learnermetrics.FieldAvgDialogueScore, field.TypeFloat64, value)
		_node.AvgDialogueScore = value
	}
	if value, ok := _c.mutation.SessionsLast7Days(); ok {
		_spec.SetField(learnermetrics.FieldSessionsLast7Days, field.TypeInt, value)
		_node.SessionsLast7Days = value
	}
	if value, ok := _c.mutation.SessionsLast30Days(); ok {
		_spec.SetField(learnermetrics.FieldSessionsLast30Days, field.TypeInt, value)
		_node.SessionsLast30Days = value
	}
	if value, ok := _c.mutation.AvgSessionMinutes(); ok {
		_spec.SetField(learnermetrics.FieldAvgSessionMinutes, field.TypeInt, value)
		_node.AvgSessionMinutes = value
	}
	if value, ok := _c.mutation.SessionsStarted(); ok {
		_spec.SetField(learnermetrics.FieldSessionsStarted, field.TypeInt, value)
		_node.SessionsStarted = value
	}
	if value, ok := _c.mutation.SessionsCompleted(); ok {
		_spec.SetField(learnermetrics.FieldSessionsCompleted, field.TypeInt, value)
		_node.SessionsCompleted = value
	}
	if value, ok := _c.mutation.Pace(); ok {
		_spec.SetField(learnermetrics.FieldPace, field.TypeString, value)
		_node.Pace = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(learnermetrics.FieldDifficultyLevel, field.TypeInt, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.LastSessionDate(); ok {
		_spec.SetField(learnermetrics.FieldLastSessionDate, field.TypeTime, value)
		_node.LastSessionDate = &value
	}
	if value, ok := _c.mutation.ConsecutiveMissedDays(); ok {
		_spec.SetField(learnermetrics.FieldConsecutiveMissedDays, field.TypeInt, value)
		_node.ConsecutiveMissedDays = value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(learnermetrics.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.LongestStreak(); ok {
		_spec.SetField(learnermetrics.FieldLongestStreak, field.TypeInt, value)
		_node.LongestStreak = value
	}
	if value, ok := _c.mutation.TotalSessions(); ok {
		_spec.SetField(learnermetrics.FieldTotalSessions, field.TypeInt, value)
		_node.TotalSessions = value
	}
	if value, ok := _c.mutation.Gaps(); ok {
		_spec.SetField(learnermetrics.FieldGaps, field.TypeJSON, value)
		_node.Gaps = value
	}
	return _node, _spec
}

// LearnerMetricsCreateBulk is the builder for creating many LearnerMetrics entities in bulk.
type LearnerMetricsCreateBulk struct {
	config
	err      error
	builders []*LearnerMetricsCreate
}

// Save creates the LearnerMetrics entities in the database.
func (_c *LearnerMetricsCreateBulk) Save(ctx context.Context) ([]*LearnerMetrics, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerMetrics, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerMetricsMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearnerMetricsCreateBulk) SaveX(ctx context.Context) []*LearnerMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerMetricsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerMetricsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
