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
	"github.com/ayinesh/studycoach/ent/reviewitem"
)

// ReviewItemUpdate is the builder for updating ReviewItem entities.
type ReviewItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewItemMutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdate) Where(ps ...predicate.ReviewItem) *ReviewItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewItemUpdate) SetUserID(v string) *ReviewItemUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableUserID(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ReviewItemUpdate) SetTopicID(v string) *ReviewItemUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableTopicID(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ReviewItemUpdate) SetLastReviewedAt(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableLastReviewedAt(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewItemUpdate) SetNextReviewAt(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableNextReviewAt(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewItemUpdate) SetIntervalDays(v int) *ReviewItemUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableIntervalDays(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewItemUpdate) AddIntervalDays(v int) *ReviewItemUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewItemUpdate) SetEaseFactor(v float64) *ReviewItemUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableEaseFactor(v *float64) *ReviewItemUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewItemUpdate) AddEaseFactor(v float64) *ReviewItemUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ReviewItemUpdate) SetReviewCount(v int) *ReviewItemUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableReviewCount(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ReviewItemUpdate) AddReviewCount(v int) *ReviewItemUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetProficiency sets the "proficiency" field.
func (_u *ReviewItemUpdate) SetProficiency(v float64) *ReviewItemUpdate {
	_u.mutation.ResetProficiency()
	_u.mutation.SetProficiency(v)
	return _u
}

// SetNillableProficiency sets the "proficiency" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableProficiency(v *float64) *ReviewItemUpdate {
	if v != nil {
		_u.SetProficiency(*v)
	}
	return _u
}

// AddProficiency adds value to the "proficiency" field.
func (_u *ReviewItemUpdate) AddProficiency(v float64) *ReviewItemUpdate {
	_u.mutation.AddProficiency(v)
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdate) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reviewitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := reviewitem.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewitem.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(reviewitem.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewitem.FieldLastReviewedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewitem.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(reviewitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(reviewitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Proficiency(); ok {
		_spec.SetField(reviewitem.FieldProficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProficiency(); ok {
		_spec.AddField(reviewitem.FieldProficiency, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewItemUpdateOne is the builder for updating a single ReviewItem entity.
type ReviewItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewItemMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReviewItemUpdateOne) SetUserID(v string) *ReviewItemUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableUserID(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ReviewItemUpdateOne) SetTopicID(v string) *ReviewItemUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableTopicID(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ReviewItemUpdateOne) SetLastReviewedAt(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableLastReviewedAt(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewItemUpdateOne) SetNextReviewAt(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableNextReviewAt(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewItemUpdateOne) SetIntervalDays(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableIntervalDays(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewItemUpdateOne) AddIntervalDays(v int) *ReviewItemUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewItemUpdateOne) SetEaseFactor(v float64) *ReviewItemUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableEaseFactor(v *float64) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewItemUpdateOne) AddEaseFactor(v float64) *ReviewItemUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ReviewItemUpdateOne) SetReviewCount(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableReviewCount(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ReviewItemUpdateOne) AddReviewCount(v int) *ReviewItemUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetProficiency sets the "proficiency" field.
func (_u *ReviewItemUpdateOne) SetProficiency(v float64) *ReviewItemUpdateOne {
	_u.mutation.ResetProficiency()
	_u.mutation.SetProficiency(v)
	return _u
}

// SetNillableProficiency sets the "proficiency" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableProficiency(v *float64) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetProficiency(*v)
	}
	return _u
}

// AddProficiency adds value to the "proficiency" field.
func (_u *ReviewItemUpdateOne) AddProficiency(v float64) *ReviewItemUpdateOne {
	_u.mutation.AddProficiency(v)
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdateOne) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdateOne) Where(ps ...predicate.ReviewItem) *ReviewItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewItemUpdateOne) Select(field string, fields ...string) *ReviewItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewItem entity.
func (_u *ReviewItemUpdateOne) Save(ctx context.Context) (*ReviewItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) SaveX(ctx context.Context) *ReviewItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reviewitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := reviewitem.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdateOne) sqlSave(ctx context.Context) (_node *ReviewItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewitem.FieldID)
		for _, f := range fields {
			if !reviewitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewitem.FieldID {
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
		_spec.SetField(reviewitem.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(reviewitem.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewitem.FieldLastReviewedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewitem.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(reviewitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(reviewitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Proficiency(); ok {
		_spec.SetField(reviewitem.FieldProficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProficiency(); ok {
		_spec.AddField(reviewitem.FieldProficiency, field.TypeFloat64, value)
	}
	_node = &ReviewItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
