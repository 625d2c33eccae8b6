// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ayinesh/studycoach/ent/adaptationevent"
	"github.com/ayinesh/studycoach/ent/predicate"
)

// AdaptationEventUpdate is the builder for updating AdaptationEvent entities.
type AdaptationEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdate) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *AdaptationEventUpdate) SetEventID(v string) *AdaptationEventUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableEventID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AdaptationEventUpdate) SetUserID(v string) *AdaptationEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableUserID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAdaptationType sets the "adaptation_type" field.
func (_u *AdaptationEventUpdate) SetAdaptationType(v string) *AdaptationEventUpdate {
	_u.mutation.SetAdaptationType(v)
	return _u
}

// SetNillableAdaptationType sets the "adaptation_type" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableAdaptationType(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetAdaptationType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AdaptationEventUpdate) SetReason(v string) *AdaptationEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableReason(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetOldValue sets the "old_value" field.
func (_u *AdaptationEventUpdate) SetOldValue(v map[string]interface{}) *AdaptationEventUpdate {
	_u.mutation.SetOldValue(v)
	return _u
}

// ClearOldValue clears the value of the "old_value" field.
func (_u *AdaptationEventUpdate) ClearOldValue() *AdaptationEventUpdate {
	_u.mutation.ClearOldValue()
	return _u
}

// SetNewValue sets the "new_value" field.
func (_u *AdaptationEventUpdate) SetNewValue(v map[string]interface{}) *AdaptationEventUpdate {
	_u.mutation.SetNewValue(v)
	return _u
}

// ClearNewValue clears the value of the "new_value" field.
func (_u *AdaptationEventUpdate) ClearNewValue() *AdaptationEventUpdate {
	_u.mutation.ClearNewValue()
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdate) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdaptationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdaptationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdate) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := adaptationevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := adaptationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(adaptationevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(adaptationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdaptationType(); ok {
		_spec.SetField(adaptationevent.FieldAdaptationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldValue(); ok {
		_spec.SetField(adaptationevent.FieldOldValue, field.TypeJSON, value)
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(adaptationevent.FieldOldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.NewValue(); ok {
		_spec.SetField(adaptationevent.FieldNewValue, field.TypeJSON, value)
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(adaptationevent.FieldNewValue, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdaptationEventUpdateOne is the builder for updating a single AdaptationEvent entity.
type AdaptationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// SetEventID sets the "event_id" field.
func (_u *AdaptationEventUpdateOne) SetEventID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableEventID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AdaptationEventUpdateOne) SetUserID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableUserID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAdaptationType sets the "adaptation_type" field.
func (_u *AdaptationEventUpdateOne) SetAdaptationType(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetAdaptationType(v)
	return _u
}

// SetNillableAdaptationType sets the "adaptation_type" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableAdaptationType(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetAdaptationType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AdaptationEventUpdateOne) SetReason(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableReason(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetOldValue sets the "old_value" field.
func (_u *AdaptationEventUpdateOne) SetOldValue(v map[string]interface{}) *AdaptationEventUpdateOne {
	_u.mutation.SetOldValue(v)
	return _u
}

// ClearOldValue clears the value of the "old_value" field.
func (_u *AdaptationEventUpdateOne) ClearOldValue() *AdaptationEventUpdateOne {
	_u.mutation.ClearOldValue()
	return _u
}

// SetNewValue sets the "new_value" field.
func (_u *AdaptationEventUpdateOne) SetNewValue(v map[string]interface{}) *AdaptationEventUpdateOne {
	_u.mutation.SetNewValue(v)
	return _u
}

// ClearNewValue clears the value of the "new_value" field.
func (_u *AdaptationEventUpdateOne) ClearNewValue() *AdaptationEventUpdateOne {
	_u.mutation.ClearNewValue()
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdateOne) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdateOne) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdaptationEventUpdateOne) Select(field string, fields ...string) *AdaptationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdaptationEvent entity.
func (_u *AdaptationEventUpdateOne) Save(ctx context.Context) (*AdaptationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) SaveX(ctx context.Context) *AdaptationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdaptationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := adaptationevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := adaptationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdateOne) sqlSave(ctx context.Context) (_node *AdaptationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdaptationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adaptationevent.FieldID)
		for _, f := range fields {
			if !adaptationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adaptationevent.FieldID {
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
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(adaptationevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(adaptationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdaptationType(); ok {
		_spec.SetField(adaptationevent.FieldAdaptationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldValue(); ok {
		_spec.SetField(adaptationevent.FieldOldValue, field.TypeJSON, value)
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(adaptationevent.FieldOldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.NewValue(); ok {
		_spec.SetField(adaptationevent.FieldNewValue, field.TypeJSON, value)
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(adaptationevent.FieldNewValue, field.TypeJSON)
	}
	_node = &AdaptationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
