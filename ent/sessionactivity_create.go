// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ayinesh/studycoach/ent/sessionactivity"
)

// SessionActivityCreate is the builder for creating a SessionActivity entity.
type SessionActivityCreate struct {
	config
	mutation *SessionActivityMutation
	hooks    []Hook
}

// SetActivityID sets the "activity_id" field.
func (_c *SessionActivityCreate) SetActivityID(v string) *SessionActivityCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionActivityCreate) SetSessionID(v string) *SessionActivityCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetActivityType sets the "activity_type" field.
func (_c *SessionActivityCreate) SetActivityType(v string) *SessionActivityCreate {
	_c.mutation.SetActivityType(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *SessionActivityCreate) SetTopicID(v string) *SessionActivityCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *SessionActivityCreate) SetNillableTopicID(v *string) *SessionActivityCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetContentID sets the "content_id" field.
func (_c *SessionActivityCreate) SetContentID(v string) *SessionActivityCreate {
	_c.mutation.SetContentID(v)
	return _c
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_c *SessionActivityCreate) SetNillableContentID(v *string) *SessionActivityCreate {
	if v != nil {
		_c.SetContentID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionActivityCreate) SetStartedAt(v time.Time) *SessionActivityCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *SessionActivityCreate) SetEndedAt(v time.Time) *SessionActivityCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *SessionActivityCreate) SetNillableEndedAt(v *time.Time) *SessionActivityCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetPerformance sets the "performance" field.
func (_c *SessionActivityCreate) SetPerformance(v map[string]interface{}) *SessionActivityCreate {
	_c.mutation.SetPerformance(v)
	return _c
}

// Mutation returns the SessionActivityMutation object of the builder.
func (_c *SessionActivityCreate) Mutation() *SessionActivityMutation {
	return _c.mutation
}

// Save creates the SessionActivity in the database.
func (_c *SessionActivityCreate) Save(ctx context.Context) (*SessionActivity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionActivityCreate) SaveX(ctx context.Context) *SessionActivity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionActivityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionActivityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionActivityCreate) defaults() {
	if _, ok := _c.mutation.TopicID(); !ok {
		v := sessionactivity.DefaultTopicID
		_c.mutation.SetTopicID(v)
	}
	if _, ok := _c.mutation.ContentID(); !ok {
		v := sessionactivity.DefaultContentID
		_c.mutation.SetContentID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionActivityCreate) check() error {
	if _, ok := _c.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`ent: missing required field "SessionActivity.activity_id"`)}
	}
	if v, ok := _c.mutation.ActivityID(); ok {
		if err := sessionactivity.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "SessionActivity.activity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionActivity.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionactivity.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionActivity.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActivityType(); !ok {
		return &ValidationError{Name: "activity_type", err: errors.New(`ent: missing required field "SessionActivity.activity_type"`)}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "SessionActivity.topic_id"`)}
	}
	if _, ok := _c.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "SessionActivity.content_id"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SessionActivity.started_at"`)}
	}
	return nil
}

func (_c *SessionActivityCreate) sqlSave(ctx context.Context) (*SessionActivity, error) {
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

func (_c *SessionActivityCreate) createSpec() (*SessionActivity, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionActivity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionactivity.Table, sqlgraph.NewFieldSpec(sessionactivity.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(sessionactivity.FieldActivityID, field.TypeString, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionactivity.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ActivityType(); ok {
		_spec.SetField(sessionactivity.FieldActivityType, field.TypeString, value)
		_node.ActivityType = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(sessionactivity.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.ContentID(); ok {
		_spec.SetField(sessionactivity.FieldContentID, field.TypeString, value)
		_node.ContentID = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sessionactivity.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(sessionactivity.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.Performance(); ok {
		_spec.SetField(sessionactivity.FieldPerformance, field.TypeJSON, value)
		_node.Performance = value
	}
	return _node, _spec
}

// SessionActivityCreateBulk is the builder for creating many SessionActivity entities in bulk.
type SessionActivityCreateBulk struct {
	config
	err      error
	builders []*SessionActivityCreate
}

// Save creates the SessionActivity entities in the database.
func (_c *SessionActivityCreateBulk) Save(ctx context.Context) ([]*SessionActivity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionActivity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionActivityMutation)
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
func (_c *SessionActivityCreateBulk) SaveX(ctx context.Context) []*SessionActivity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionActivityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionActivityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
