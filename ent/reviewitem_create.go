// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ayinesh/studycoach/ent/reviewitem"
)

// ReviewItemCreate is the builder for creating a ReviewItem entity.
type ReviewItemCreate struct {
	config
	mutation *ReviewItemMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ReviewItemCreate) SetUserID(v string) *ReviewItemCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *ReviewItemCreate) SetTopicID(v string) *ReviewItemCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *ReviewItemCreate) SetLastReviewedAt(v time.Time) *ReviewItemCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *ReviewItemCreate) SetNextReviewAt(v time.Time) *ReviewItemCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewItemCreate) SetIntervalDays(v int) *ReviewItemCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableIntervalDays(v *int) *ReviewItemCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ReviewItemCreate) SetEaseFactor(v float64) *ReviewItemCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableEaseFactor(v *float64) *ReviewItemCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *ReviewItemCreate) SetReviewCount(v int) *ReviewItemCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableReviewCount(v *int) *ReviewItemCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetProficiency sets the "proficiency" field.
func (_c *ReviewItemCreate) SetProficiency(v float64) *ReviewItemCreate {
	_c.mutation.SetProficiency(v)
	return _c
}

// SetNillableProficiency sets the "proficiency" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableProficiency(v *float64) *ReviewItemCreate {
	if v != nil {
		_c.SetProficiency(*v)
	}
	return _c
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_c *ReviewItemCreate) Mutation() *ReviewItemMutation {
	return _c.mutation
}

// Save creates the ReviewItem in the database.
func (_c *ReviewItemCreate) Save(ctx context.Context) (*ReviewItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewItemCreate) SaveX(ctx context.Context) *ReviewItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewItemCreate) defaults() {
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewitem.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := reviewitem.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := reviewitem.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.Proficiency(); !ok {
		v := reviewitem.DefaultProficiency
		_c.mutation.SetProficiency(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewItemCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewItem.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := reviewitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "ReviewItem.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := reviewitem.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastReviewedAt(); !ok {
		return &ValidationError{Name: "last_reviewed_at", err: errors.New(`ent: missing required field "ReviewItem.last_reviewed_at"`)}
	}
	if _, ok := _c.mutation.NextReviewAt(); !ok {
		return &ValidationError{Name: "next_review_at", err: errors.New(`ent: missing required field "ReviewItem.next_review_at"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewItem.interval_days"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ReviewItem.ease_factor"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "ReviewItem.review_count"`)}
	}
	if _, ok := _c.mutation.Proficiency(); !ok {
		return &ValidationError{Name: "proficiency", err: errors.New(`ent: missing required field "ReviewItem.proficiency"`)}
	}
	return nil
}

func (_c *ReviewItemCreate) sqlSave(ctx context.Context) (*ReviewItem, error) {
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

func (_c *ReviewItemCreate) createSpec() (*ReviewItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewitem.Table, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reviewitem.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(reviewitem.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewitem.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewitem.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(reviewitem.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.Proficiency(); ok {
		_spec.SetField(reviewitem.FieldProficiency, field.TypeFloat64, value)
		_node.Proficiency = value
	}
	return _node, _spec
}

// ReviewItemCreateBulk is the builder for creating many ReviewItem entities in bulk.
type ReviewItemCreateBulk struct {
	config
	err      error
	builders []*ReviewItemCreate
}

// Save creates the ReviewItem entities in the database.
func (_c *ReviewItemCreateBulk) Save(ctx context.Context) ([]*ReviewItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewItemMutation)
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
func (_c *ReviewItemCreateBulk) SaveX(ctx context.Context) []*ReviewItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
