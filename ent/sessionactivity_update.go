// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ayinesh/studycoach/ent/predicate"
	"github.com/ayinesh/studycoach/ent/sessionactivity"
)

// SessionActivityUpdate is the builder for updating SessionActivity entities.
type SessionActivityUpdate struct {
	config
	hooks    []Hook
	mutation *SessionActivityMutation
}

// Where appends a list predicates to the SessionActivityUpdate builder.
func (_u *SessionActivityUpdate) Where(ps ...predicate.SessionActivity) *SessionActivityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *SessionActivityUpdate) SetActivityID(v string) *SessionActivityUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *SessionActivityUpdate) SetNillableActivityID(v *string) *SessionActivityUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionActivityUpdate) SetSessionID(v string) *SessionActivityUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionActivityUpdate) SetNillableSessionID(v *string) *SessionActivityUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *SessionActivityUpdate) SetActivityType(v string) *SessionActivityUpdate {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *SessionActivityUpdate) SetNillableActivityType(v *string) *SessionActivityUpdate {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *SessionActivityUpdate) SetTopicID(v string) *SessionActivityUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SessionActivityUpdate) SetNillableTopicID(v *string) *SessionActivityUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetContentID sets the "content_id" field.
func (_u *SessionActivityUpdate) SetContentID(v string) *SessionActivityUpdate {
	_u.mutation.SetContentID(v)
	return _u
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_u *SessionActivityUpdate) SetNillableContentID(v *string) *SessionActivityUpdate {
	if v != nil {
		_u.SetContentID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionActivityUpdate) SetStartedAt(v time.Time) *SessionActivityUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionActivityUpdate) SetNillableStartedAt(v *time.Time) *SessionActivityUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionActivityUpdate) SetEndedAt(v time.Time) *SessionActivityUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionActivityUpdate) SetNillableEndedAt(v *time.Time) *SessionActivityUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionActivityUpdate) ClearEndedAt() *SessionActivityUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetPerformance sets the "performance" field.
func (_u *SessionActivityUpdate) SetPerformance(v map[string]interface{}) *SessionActivityUpdate {
	_u.mutation.SetPerformance(v)
	return _u
}

// ClearPerformance clears the value of the "performance" field.
func (_u *SessionActivityUpdate) ClearPerformance() *SessionActivityUpdate {
	_u.mutation.ClearPerformance()
	return _u
}

// Mutation returns the SessionActivityMutation object of the builder.
func (_u *SessionActivityUpdate) Mutation() *SessionActivityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionActivityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionActivityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionActivityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionActivityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionActivityUpdate) check() error {
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := sessionactivity.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "SessionActivity.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionactivity.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionActivity.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionActivityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionactivity.Table, sessionactivity.Columns, sqlgraph.NewFieldSpec(sessionactivity.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(sessionactivity.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionactivity.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(sessionactivity.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(sessionactivity.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentID(); ok {
		_spec.SetField(sessionactivity.FieldContentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionactivity.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(sessionactivity.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(sessionactivity.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Performance(); ok {
		_spec.SetField(sessionactivity.FieldPerformance, field.TypeJSON, value)
	}
	if _u.mutation.PerformanceCleared() {
		_spec.ClearField(sessionactivity.FieldPerformance, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionactivity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionActivityUpdateOne is the builder for updating a single SessionActivity entity.
type SessionActivityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionActivityMutation
}

// SetActivityID sets the "activity_id" field.
func (_u *SessionActivityUpdateOne) SetActivityID(v string) *SessionActivityUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *SessionActivityUpdateOne) SetNillableActivityID(v *string) *SessionActivityUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionActivityUpdateOne) SetSessionID(v string) *SessionActivityUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionActivityUpdateOne) SetNillableSessionID(v *string) *SessionActivityUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *SessionActivityUpdateOne) SetActivityType(v string) *SessionActivityUpdateOne {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *SessionActivityUpdateOne) SetNillableActivityType(v *string) *SessionActivityUpdateOne {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *SessionActivityUpdateOne) SetTopicID(v string) *SessionActivityUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SessionActivityUpdateOne) SetNillableTopicID(v *string) *SessionActivityUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetContentID sets the "content_id" field.
func (_u *SessionActivityUpdateOne) SetContentID(v string) *SessionActivityUpdateOne {
	_u.mutation.SetContentID(v)
	return _u
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_u *SessionActivityUpdateOne) SetNillableContentID(v *string) *SessionActivityUpdateOne {
	if v != nil {
		_u.SetContentID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionActivityUpdateOne) SetStartedAt(v time.Time) *SessionActivityUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionActivityUpdateOne) SetNillableStartedAt(v *time.Time) *SessionActivityUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionActivityUpdateOne) SetEndedAt(v time.Time) *SessionActivityUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionActivityUpdateOne) SetNillableEndedAt(v *time.Time) *SessionActivityUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionActivityUpdateOne) ClearEndedAt() *SessionActivityUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetPerformance sets the "performance" field.
func (_u *SessionActivityUpdateOne) SetPerformance(v map[string]interface{}) *SessionActivityUpdateOne {
	_u.mutation.SetPerformance(v)
	return _u
}

// ClearPerformance clears the value of the "performance" field.
func (_u *SessionActivityUpdateOne) ClearPerformance() *SessionActivityUpdateOne {
	_u.mutation.ClearPerformance()
	return _u
}

// Mutation returns the SessionActivityMutation object of the builder.
func (_u *SessionActivityUpdateOne) Mutation() *SessionActivityMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionActivityUpdate builder.
func (_u *SessionActivityUpdateOne) Where(ps ...predicate.SessionActivity) *SessionActivityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionActivityUpdateOne) Select(field string, fields ...string) *SessionActivityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionActivity entity.
func (_u *SessionActivityUpdateOne) Save(ctx context.Context) (*SessionActivity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionActivityUpdateOne) SaveX(ctx context.Context) *SessionActivity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionActivityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionActivityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionActivityUpdateOne) check() error {
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := sessionactivity.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "SessionActivity.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionactivity.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionActivity.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionActivityUpdateOne) sqlSave(ctx context.Context) (_node *SessionActivity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionactivity.Table, sessionactivity.Columns, sqlgraph.NewFieldSpec(sessionactivity.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionActivity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionactivity.FieldID)
		for _, f := range fields {
			if !sessionactivity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionactivity.FieldID {
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
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(sessionactivity.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionactivity.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(sessionactivity.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(sessionactivity.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentID(); ok {
		_spec.SetField(sessionactivity.FieldContentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionactivity.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(sessionactivity.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(sessionactivity.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Performance(); ok {
		_spec.SetField(sessionactivity.FieldPerformance, field.TypeJSON, value)
	}
	if _u.mutation.PerformanceCleared() {
		_spec.ClearField(sessionactivity.FieldPerformance, field.TypeJSON)
	}
	_node = &SessionActivity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionactivity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
