// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ayinesh/studycoach/ent/adaptationevent"
	"github.com/ayinesh/studycoach/ent/learnermetrics"
	"github.com/ayinesh/studycoach/ent/llmrequestevent"
	"github.com/ayinesh/studycoach/ent/predicate"
	"github.com/ayinesh/studycoach/ent/reviewitem"
	"github.com/ayinesh/studycoach/ent/session"
	"github.com/ayinesh/studycoach/ent/sessionactivity"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdaptationEvent = "AdaptationEvent"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeLearnerMetrics  = "LearnerMetrics"
	TypeReviewItem      = "ReviewItem"
	TypeSession         = "Session"
	TypeSessionActivity = "SessionActivity"
)

// AdaptationEventMutation represents an operation that mutates the AdaptationEvent nodes in the graph.
type AdaptationEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	sequence        *int64
	addsequence     *int64
	timestamp       *time.Time
	event_id        *string
	user_id         *string
	adaptation_type *string
	reason          *string
	old_value       *map[string]interface{}
	new_value       *map[string]interface{}
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*AdaptationEvent, error)
	predicates      []predicate.AdaptationEvent
}

var _ ent.Mutation = (*AdaptationEventMutation)(nil)

// adaptationeventOption allows management of the mutation configuration using functional options.
type adaptationeventOption func(*AdaptationEventMutation)

// newAdaptationEventMutation creates new mutation for the AdaptationEvent entity.
func newAdaptationEventMutation(c config, op Op, opts ...adaptationeventOption) *AdaptationEventMutation {
	m := &AdaptationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAdaptationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdaptationEventID sets the ID field of the mutation.
func withAdaptationEventID(id int) adaptationeventOption {
	return func(m *AdaptationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AdaptationEvent
		)
		m.oldValue = func(ctx context.Context) (*AdaptationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdaptationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdaptationEvent sets the old AdaptationEvent of the mutation.
func withAdaptationEvent(node *AdaptationEvent) adaptationeventOption {
	return func(m *AdaptationEventMutation) {
		m.oldValue = func(context.Context) (*AdaptationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdaptationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdaptationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdaptationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdaptationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdaptationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AdaptationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AdaptationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AdaptationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AdaptationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AdaptationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AdaptationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AdaptationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AdaptationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetEventID sets the "event_id" field.
func (m *AdaptationEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *AdaptationEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *AdaptationEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AdaptationEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AdaptationEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AdaptationEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetAdaptationType sets the "adaptation_type" field.
func (m *AdaptationEventMutation) SetAdaptationType(s string) {
	m.adaptation_type = &s
}

// AdaptationType returns the value of the "adaptation_type" field in the mutation.
func (m *AdaptationEventMutation) AdaptationType() (r string, exists bool) {
	v := m.adaptation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAdaptationType returns the old "adaptation_type" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldAdaptationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdaptationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdaptationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdaptationType: %w", err)
	}
	return oldValue.AdaptationType, nil
}

// ResetAdaptationType resets all changes to the "adaptation_type" field.
func (m *AdaptationEventMutation) ResetAdaptationType() {
	m.adaptation_type = nil
}

// SetReason sets the "reason" field.
func (m *AdaptationEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AdaptationEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *AdaptationEventMutation) ResetReason() {
	m.reason = nil
}

// SetOldValue sets the "old_value" field.
func (m *AdaptationEventMutation) SetOldValue(value map[string]interface{}) {
	m.old_value = &value
}

// OldValue returns the value of the "old_value" field in the mutation.
func (m *AdaptationEventMutation) OldValue() (r map[string]interface{}, exists bool) {
	v := m.old_value
	if v == nil {
		return
	}
	return *v, true
}

// OldOldValue returns the old "old_value" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldOldValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldValue: %w", err)
	}
	return oldValue.OldValue, nil
}

// ClearOldValue clears the value of the "old_value" field.
func (m *AdaptationEventMutation) ClearOldValue() {
	m.old_value = nil
	m.clearedFields[adaptationevent.FieldOldValue] = struct{}{}
}

// OldValueCleared returns if the "old_value" field was cleared in this mutation.
func (m *AdaptationEventMutation) OldValueCleared() bool {
	_, ok := m.clearedFields[adaptationevent.FieldOldValue]
	return ok
}

// ResetOldValue resets all changes to the "old_value" field.
func (m *AdaptationEventMutation) ResetOldValue() {
	m.old_value = nil
	delete(m.clearedFields, adaptationevent.FieldOldValue)
}

// SetNewValue sets the "new_value" field.
func (m *AdaptationEventMutation) SetNewValue(value map[string]interface{}) {
	m.new_value = &value
}

// NewValue returns the value of the "new_value" field in the mutation.
func (m *AdaptationEventMutation) NewValue() (r map[string]interface{}, exists bool) {
	v := m.new_value
	if v == nil {
		return
	}
	return *v, true
}

// OldNewValue returns the old "new_value" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldNewValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewValue: %w", err)
	}
	return oldValue.NewValue, nil
}

// ClearNewValue clears the value of the "new_value" field.
func (m *AdaptationEventMutation) ClearNewValue() {
	m.new_value = nil
	m.clearedFields[adaptationevent.FieldNewValue] = struct{}{}
}

// NewValueCleared returns if the "new_value" field was cleared in this mutation.
func (m *AdaptationEventMutation) NewValueCleared() bool {
	_, ok := m.clearedFields[adaptationevent.FieldNewValue]
	return ok
}

// ResetNewValue resets all changes to the "new_value" field.
func (m *AdaptationEventMutation) ResetNewValue() {
	m.new_value = nil
	delete(m.clearedFields, adaptationevent.FieldNewValue)
}

// Where appends a list predicates to the AdaptationEventMutation builder.
func (m *AdaptationEventMutation) Where(ps ...predicate.AdaptationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdaptationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdaptationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdaptationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdaptationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdaptationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdaptationEvent).
func (m *AdaptationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdaptationEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, adaptationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, adaptationevent.FieldTimestamp)
	}
	if m.event_id != nil {
		fields = append(fields, adaptationevent.FieldEventID)
	}
	if m.user_id != nil {
		fields = append(fields, adaptationevent.FieldUserID)
	}
	if m.adaptation_type != nil {
		fields = append(fields, adaptationevent.FieldAdaptationType)
	}
	if m.reason != nil {
		fields = append(fields, adaptationevent.FieldReason)
	}
	if m.old_value != nil {
		fields = append(fields, adaptationevent.FieldOldValue)
	}
	if m.new_value != nil {
		fields = append(fields, adaptationevent.FieldNewValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdaptationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adaptationevent.FieldSequence:
		return m.Sequence()
	case adaptationevent.FieldTimestamp:
		return m.Timestamp()
	case adaptationevent.FieldEventID:
		return m.EventID()
	case adaptationevent.FieldUserID:
		return m.UserID()
	case adaptationevent.FieldAdaptationType:
		return m.AdaptationType()
	case adaptationevent.FieldReason:
		return m.Reason()
	case adaptationevent.FieldOldValue:
		return m.OldValue()
	case adaptationevent.FieldNewValue:
		return m.NewValue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdaptationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adaptationevent.FieldSequence:
		return m.OldSequence(ctx)
	case adaptationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case adaptationevent.FieldEventID:
		return m.OldEventID(ctx)
	case adaptationevent.FieldUserID:
		return m.OldUserID(ctx)
	case adaptationevent.FieldAdaptationType:
		return m.OldAdaptationType(ctx)
	case adaptationevent.FieldReason:
		return m.OldReason(ctx)
	case adaptationevent.FieldOldValue:
		return m.OldOldValue(ctx)
	case adaptationevent.FieldNewValue:
		return m.OldNewValue(ctx)
	}
	return nil, fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdaptationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adaptationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case adaptationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case adaptationevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case adaptationevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case adaptationevent.FieldAdaptationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdaptationType(v)
		return nil
	case adaptationevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case adaptationevent.FieldOldValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldValue(v)
		return nil
	case adaptationevent.FieldNewValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewValue(v)
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdaptationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, adaptationevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdaptationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case adaptationevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdaptationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case adaptationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdaptationEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(adaptationevent.FieldOldValue) {
		fields = append(fields, adaptationevent.FieldOldValue)
	}
	if m.FieldCleared(adaptationevent.FieldNewValue) {
		fields = append(fields, adaptationevent.FieldNewValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdaptationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdaptationEventMutation) ClearField(name string) error {
	switch name {
	case adaptationevent.FieldOldValue:
		m.ClearOldValue()
		return nil
	case adaptationevent.FieldNewValue:
		m.ClearNewValue()
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdaptationEventMutation) ResetField(name string) error {
	switch name {
	case adaptationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case adaptationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case adaptationevent.FieldEventID:
		m.ResetEventID()
		return nil
	case adaptationevent.FieldUserID:
		m.ResetUserID()
		return nil
	case adaptationevent.FieldAdaptationType:
		m.ResetAdaptationType()
		return nil
	case adaptationevent.FieldReason:
		m.ResetReason()
		return nil
	case adaptationevent.FieldOldValue:
		m.ResetOldValue()
		return nil
	case adaptationevent.FieldNewValue:
		m.ResetNewValue()
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdaptationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdaptationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdaptationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdaptationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdaptationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdaptationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdaptationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdaptationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdaptationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdaptationEvent edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// LearnerMetricsMutation represents an operation that mutates the LearnerMetrics nodes in the graph.
type LearnerMetricsMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	user_id                    *string
	quiz_scores                *[]float64
	appendquiz_scores          []float64
	dialogue_scores            *[]float64
	appenddialogue_scores      []float64
	avg_quiz_score             *float64
	addavg_quiz_score          *float64
	avg_dialogue_score         *float64
	addavg_dialogue_score      *float64
	sessions_last_7_days       *int
	addsessions_last_7_days    *int
	sessions_last_30_days      *int
	addsessions_last_30_days   *int
	avg_session_minutes        *int
	addavg_session_minutes     *int
	sessions_started           *int
	addsessions_started        *int
	sessions_completed         *int
	addsessions_completed      *int
	pace                       *string
	difficulty_level           *int
	adddifficulty_level        *int
	last_session_date          *time.Time
	consecutive_missed_days    *int
	addconsecutive_missed_days *int
	current_streak             *int
	addcurrent_streak          *int
	longest_streak             *int
	addlongest_streak          *int
	total_sessions             *int
	addtotal_sessions          *int
	gaps                       *[]string
	appendgaps                 []string
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*LearnerMetrics, error)
	predicates                 []predicate.LearnerMetrics
}

var _ ent.Mutation = (*LearnerMetricsMutation)(nil)

// learnermetricsOption allows management of the mutation configuration using functional options.
type learnermetricsOption func(*LearnerMetricsMutation)

// newLearnerMetricsMutation creates new mutation for the LearnerMetrics entity.
func newLearnerMetricsMutation(c config, op Op, opts ...learnermetricsOption) *LearnerMetricsMutation {
	m := &LearnerMetricsMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnerMetrics,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerMetricsID sets the ID field of the mutation.
func withLearnerMetricsID(id int) learnermetricsOption {
	return func(m *LearnerMetricsMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnerMetrics
		)
		m.oldValue = func(ctx context.Context) (*LearnerMetrics, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnerMetrics.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnerMetrics sets the old LearnerMetrics of the mutation.
func withLearnerMetrics(node *LearnerMetrics) learnermetricsOption {
	return func(m *LearnerMetricsMutation) {
		m.oldValue = func(context.Context) (*LearnerMetrics, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerMetricsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerMetricsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerMetricsMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerMetricsMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnerMetrics.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LearnerMetricsMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LearnerMetricsMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LearnerMetricsMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuizScores sets the "quiz_scores" field.
func (m *LearnerMetricsMutation) SetQuizScores(f []float64) {
	m.quiz_scores = &f
	m.appendquiz_scores = nil
}

// QuizScores returns the value of the "quiz_scores" field in the mutation.
func (m *LearnerMetricsMutation) QuizScores() (r []float64, exists bool) {
	v := m.quiz_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizScores returns the old "quiz_scores" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldQuizScores(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizScores: %w", err)
	}
	return oldValue.QuizScores, nil
}

// AppendQuizScores adds f to the "quiz_scores" field.
func (m *LearnerMetricsMutation) AppendQuizScores(f []float64) {
	m.appendquiz_scores = append(m.appendquiz_scores, f...)
}

// AppendedQuizScores returns the list of values that were appended to the "quiz_scores" field in this mutation.
func (m *LearnerMetricsMutation) AppendedQuizScores() ([]float64, bool) {
	if len(m.appendquiz_scores) == 0 {
		return nil, false
	}
	return m.appendquiz_scores, true
}

// ClearQuizScores clears the value of the "quiz_scores" field.
func (m *LearnerMetricsMutation) ClearQuizScores() {
	m.quiz_scores = nil
	m.appendquiz_scores = nil
	m.clearedFields[learnermetrics.FieldQuizScores] = struct{}{}
}

// QuizScoresCleared returns if the "quiz_scores" field was cleared in this mutation.
func (m *LearnerMetricsMutation) QuizScoresCleared() bool {
	_, ok := m.clearedFields[learnermetrics.FieldQuizScores]
	return ok
}

// ResetQuizScores resets all changes to the "quiz_scores" field.
func (m *LearnerMetricsMutation) ResetQuizScores() {
	m.quiz_scores = nil
	m.appendquiz_scores = nil
	delete(m.clearedFields, learnermetrics.FieldQuizScores)
}

// SetDialogueScores sets the "dialogue_scores" field.
func (m *LearnerMetricsMutation) SetDialogueScores(f []float64) {
	m.dialogue_scores = &f
	m.appenddialogue_scores = nil
}

// DialogueScores returns the value of the "dialogue_scores" field in the mutation.
func (m *LearnerMetricsMutation) DialogueScores() (r []float64, exists bool) {
	v := m.dialogue_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldDialogueScores returns the old "dialogue_scores" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldDialogueScores(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDialogueScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDialogueScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDialogueScores: %w", err)
	}
	return oldValue.DialogueScores, nil
}

// AppendDialogueScores adds f to the "dialogue_scores" field.
func (m *LearnerMetricsMutation) AppendDialogueScores(f []float64) {
	m.appenddialogue_scores = append(m.appenddialogue_scores, f...)
}

// AppendedDialogueScores returns the list of values that were appended to the "dialogue_scores" field in this mutation.
func (m *LearnerMetricsMutation) AppendedDialogueScores() ([]float64, bool) {
	if len(m.appenddialogue_scores) == 0 {
		return nil, false
	}
	return m.appenddialogue_scores, true
}

// ClearDialogueScores clears the value of the "dialogue_scores" field.
func (m *LearnerMetricsMutation) ClearDialogueScores() {
	m.dialogue_scores = nil
	m.appenddialogue_scores = nil
	m.clearedFields[learnermetrics.FieldDialogueScores] = struct{}{}
}

// DialogueScoresCleared returns if the "dialogue_scores" field was cleared in this mutation.
func (m *LearnerMetricsMutation) DialogueScoresCleared() bool {
	_, ok := m.clearedFields[learnermetrics.FieldDialogueScores]
	return ok
}

// ResetDialogueScores resets all changes to the "dialogue_scores" field.
func (m *LearnerMetricsMutation) ResetDialogueScores() {
	m.dialogue_scores = nil
	m.appenddialogue_scores = nil
	delete(m.clearedFields, learnermetrics.FieldDialogueScores)
}

// SetAvgQuizScore sets the "avg_quiz_score" field.
func (m *LearnerMetricsMutation) SetAvgQuizScore(f float64) {
	m.avg_quiz_score = &f
	m.addavg_quiz_score = nil
}

// AvgQuizScore returns the value of the "avg_quiz_score" field in the mutation.
func (m *LearnerMetricsMutation) AvgQuizScore() (r float64, exists bool) {
	v := m.avg_quiz_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgQuizScore returns the old "avg_quiz_score" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldAvgQuizScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgQuizScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgQuizScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgQuizScore: %w", err)
	}
	return oldValue.AvgQuizScore, nil
}

// AddAvgQuizScore adds f to the "avg_quiz_score" field.
func (m *LearnerMetricsMutation) AddAvgQuizScore(f float64) {
	if m.addavg_quiz_score != nil {
		*m.addavg_quiz_score += f
	} else {
		m.addavg_quiz_score = &f
	}
}

// AddedAvgQuizScore returns the value that was added to the "avg_quiz_score" field in this mutation.
func (m *LearnerMetricsMutation) AddedAvgQuizScore() (r float64, exists bool) {
	v := m.addavg_quiz_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgQuizScore resets all changes to the "avg_quiz_score" field.
func (m *LearnerMetricsMutation) ResetAvgQuizScore() {
	m.avg_quiz_score = nil
	m.addavg_quiz_score = nil
}

// SetAvgDialogueScore sets the "avg_dialogue_score" field.
func (m *LearnerMetricsMutation) SetAvgDialogueScore(f float64) {
	m.avg_dialogue_score = &f
	m.addavg_dialogue_score = nil
}

// AvgDialogueScore returns the value of the "avg_dialogue_score" field in the mutation.
func (m *LearnerMetricsMutation) AvgDialogueScore() (r float64, exists bool) {
	v := m.avg_dialogue_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgDialogueScore returns the old "avg_dialogue_score" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldAvgDialogueScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgDialogueScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgDialogueScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgDialogueScore: %w", err)
	}
	return oldValue.AvgDialogueScore, nil
}

// AddAvgDialogueScore adds f to the "avg_dialogue_score" field.
func (m *LearnerMetricsMutation) AddAvgDialogueScore(f float64) {
	if m.addavg_dialogue_score != nil {
		*m.addavg_dialogue_score += f
	} else {
		m.addavg_dialogue_score = &f
	}
}

// AddedAvgDialogueScore returns the value that was added to the "avg_dialogue_score" field in this mutation.
func (m *LearnerMetricsMutation) AddedAvgDialogueScore() (r float64, exists bool) {
	v := m.addavg_dialogue_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgDialogueScore resets all changes to the "avg_dialogue_score" field.
func (m *LearnerMetricsMutation) ResetAvgDialogueScore() {
	m.avg_dialogue_score = nil
	m.addavg_dialogue_score = nil
}

// SetSessionsLast7Days sets the "sessions_last_7_days" field.
func (m *LearnerMetricsMutation) SetSessionsLast7Days(i int) {
	m.sessions_last_7_days = &i
	m.addsessions_last_7_days = nil
}

// SessionsLast7Days returns the value of the "sessions_last_7_days" field in the mutation.
func (m *LearnerMetricsMutation) SessionsLast7Days() (r int, exists bool) {
	v := m.sessions_last_7_days
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionsLast7Days returns the old "sessions_last_7_days" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldSessionsLast7Days(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionsLast7Days is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionsLast7Days requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionsLast7Days: %w", err)
	}
	return oldValue.SessionsLast7Days, nil
}

// AddSessionsLast7Days adds i to the "sessions_last_7_days" field.
func (m *LearnerMetricsMutation) AddSessionsLast7Days(i int) {
	if m.addsessions_last_7_days != nil {
		*m.addsessions_last_7_days += i
	} else {
		m.addsessions_last_7_days = &i
	}
}

// AddedSessionsLast7Days returns the value that was added to the "sessions_last_7_days" field in this mutation.
func (m *LearnerMetricsMutation) AddedSessionsLast7Days() (r int, exists bool) {
	v := m.addsessions_last_7_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionsLast7Days resets all changes to the "sessions_last_7_days" field.
func (m *LearnerMetricsMutation) ResetSessionsLast7Days() {
	m.sessions_last_7_days = nil
	m.addsessions_last_7_days = nil
}

// SetSessionsLast30Days sets the "sessions_last_30_days" field.
func (m *LearnerMetricsMutation) SetSessionsLast30Days(i int) {
	m.sessions_last_30_days = &i
	m.addsessions_last_30_days = nil
}

// SessionsLast30Days returns the value of the "sessions_last_30_days" field in the mutation.
func (m *LearnerMetricsMutation) SessionsLast30Days() (r int, exists bool) {
	v := m.sessions_last_30_days
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionsLast30Days returns the old "sessions_last_30_days" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldSessionsLast30Days(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionsLast30Days is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionsLast30Days requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionsLast30Days: %w", err)
	}
	return oldValue.SessionsLast30Days, nil
}

// AddSessionsLast30Days adds i to the "sessions_last_30_days" field.
func (m *LearnerMetricsMutation) AddSessionsLast30Days(i int) {
	if m.addsessions_last_30_days != nil {
		*m.addsessions_last_30_days += i
	} else {
		m.addsessions_last_30_days = &i
	}
}

// AddedSessionsLast30Days returns the value that was added to the "sessions_last_30_days" field in this mutation.
func (m *LearnerMetricsMutation) AddedSessionsLast30Days() (r int, exists bool) {
	v := m.addsessions_last_30_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionsLast30Days resets all changes to the "sessions_last_30_days" field.
func (m *LearnerMetricsMutation) ResetSessionsLast30Days() {
	m.sessions_last_30_days = nil
	m.addsessions_last_30_days = nil
}

// SetAvgSessionMinutes sets the "avg_session_minutes" field.
func (m *LearnerMetricsMutation) SetAvgSessionMinutes(i int) {
	m.avg_session_minutes = &i
	m.addavg_session_minutes = nil
}

// AvgSessionMinutes returns the value of the "avg_session_minutes" field in the mutation.
func (m *LearnerMetricsMutation) AvgSessionMinutes() (r int, exists bool) {
	v := m.avg_session_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgSessionMinutes returns the old "avg_session_minutes" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldAvgSessionMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgSessionMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgSessionMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgSessionMinutes: %w", err)
	}
	return oldValue.AvgSessionMinutes, nil
}

// AddAvgSessionMinutes adds i to the "avg_session_minutes" field.
func (m *LearnerMetricsMutation) AddAvgSessionMinutes(i int) {
	if m.addavg_session_minutes != nil {
		*m.addavg_session_minutes += i
	} else {
		m.addavg_session_minutes = &i
	}
}

// AddedAvgSessionMinutes returns the value that was added to the "avg_session_minutes" field in this mutation.
func (m *LearnerMetricsMutation) AddedAvgSessionMinutes() (r int, exists bool) {
	v := m.addavg_session_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgSessionMinutes resets all changes to the "avg_session_minutes" field.
func (m *LearnerMetricsMutation) ResetAvgSessionMinutes() {
	m.avg_session_minutes = nil
	m.addavg_session_minutes = nil
}

// SetSessionsStarted sets the "sessions_started" field.
func (m *LearnerMetricsMutation) SetSessionsStarted(i int) {
	m.sessions_started = &i
	m.addsessions_started = nil
}

// SessionsStarted returns the value of the "sessions_started" field in the mutation.
func (m *LearnerMetricsMutation) SessionsStarted() (r int, exists bool) {
	v := m.sessions_started
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionsStarted returns the old "sessions_started" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldSessionsStarted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionsStarted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionsStarted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionsStarted: %w", err)
	}
	return oldValue.SessionsStarted, nil
}

// AddSessionsStarted adds i to the "sessions_started" field.
func (m *LearnerMetricsMutation) AddSessionsStarted(i int) {
	if m.addsessions_started != nil {
		*m.addsessions_started += i
	} else {
		m.addsessions_started = &i
	}
}

// AddedSessionsStarted returns the value that was added to the "sessions_started" field in this mutation.
func (m *LearnerMetricsMutation) AddedSessionsStarted() (r int, exists bool) {
	v := m.addsessions_started
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionsStarted resets all changes to the "sessions_started" field.
func (m *LearnerMetricsMutation) ResetSessionsStarted() {
	m.sessions_started = nil
	m.addsessions_started = nil
}

// SetSessionsCompleted sets the "sessions_completed" field.
func (m *LearnerMetricsMutation) SetSessionsCompleted(i int) {
	m.sessions_completed = &i
	m.addsessions_completed = nil
}

// SessionsCompleted returns the value of the "sessions_completed" field in the mutation.
func (m *LearnerMetricsMutation) SessionsCompleted() (r int, exists bool) {
	v := m.sessions_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionsCompleted returns the old "sessions_completed" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldSessionsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionsCompleted: %w", err)
	}
	return oldValue.SessionsCompleted, nil
}

// AddSessionsCompleted adds i to the "sessions_completed" field.
func (m *LearnerMetricsMutation) AddSessionsCompleted(i int) {
	if m.addsessions_completed != nil {
		*m.addsessions_completed += i
	} else {
		m.addsessions_completed = &i
	}
}

// AddedSessionsCompleted returns the value that was added to the "sessions_completed" field in this mutation.
func (m *LearnerMetricsMutation) AddedSessionsCompleted() (r int, exists bool) {
	v := m.addsessions_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionsCompleted resets all changes to the "sessions_completed" field.
func (m *LearnerMetricsMutation) ResetSessionsCompleted() {
	m.sessions_completed = nil
	m.addsessions_completed = nil
}

// SetPace sets the "pace" field.
func (m *LearnerMetricsMutation) SetPace(s string) {
	m.pace = &s
}

// Pace returns the value of the "pace" field in the mutation.
func (m *LearnerMetricsMutation) Pace() (r string, exists bool) {
	v := m.pace
	if v == nil {
		return
	}
	return *v, true
}

// OldPace returns the old "pace" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldPace(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPace: %w", err)
	}
	return oldValue.Pace, nil
}

// ResetPace resets all changes to the "pace" field.
func (m *LearnerMetricsMutation) ResetPace() {
	m.pace = nil
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *LearnerMetricsMutation) SetDifficultyLevel(i int) {
	m.difficulty_level = &i
	m.adddifficulty_level = nil
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *LearnerMetricsMutation) DifficultyLevel() (r int, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldDifficultyLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// AddDifficultyLevel adds i to the "difficulty_level" field.
func (m *LearnerMetricsMutation) AddDifficultyLevel(i int) {
	if m.adddifficulty_level != nil {
		*m.adddifficulty_level += i
	} else {
		m.adddifficulty_level = &i
	}
}

// AddedDifficultyLevel returns the value that was added to the "difficulty_level" field in this mutation.
func (m *LearnerMetricsMutation) AddedDifficultyLevel() (r int, exists bool) {
	v := m.adddifficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *LearnerMetricsMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
	m.adddifficulty_level = nil
}

// SetLastSessionDate sets the "last_session_date" field.
func (m *LearnerMetricsMutation) SetLastSessionDate(t time.Time) {
	m.last_session_date = &t
}

// LastSessionDate returns the value of the "last_session_date" field in the mutation.
func (m *LearnerMetricsMutation) LastSessionDate() (r time.Time, exists bool) {
	v := m.last_session_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSessionDate returns the old "last_session_date" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldLastSessionDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSessionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSessionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSessionDate: %w", err)
	}
	return oldValue.LastSessionDate, nil
}

// ClearLastSessionDate clears the value of the "last_session_date" field.
func (m *LearnerMetricsMutation) ClearLastSessionDate() {
	m.last_session_date = nil
	m.clearedFields[learnermetrics.FieldLastSessionDate] = struct{}{}
}

// LastSessionDateCleared returns if the "last_session_date" field was cleared in this mutation.
func (m *LearnerMetricsMutation) LastSessionDateCleared() bool {
	_, ok := m.clearedFields[learnermetrics.FieldLastSessionDate]
	return ok
}

// ResetLastSessionDate resets all changes to the "last_session_date" field.
func (m *LearnerMetricsMutation) ResetLastSessionDate() {
	m.last_session_date = nil
	delete(m.clearedFields, learnermetrics.FieldLastSessionDate)
}

// SetConsecutiveMissedDays sets the "consecutive_missed_days" field.
func (m *LearnerMetricsMutation) SetConsecutiveMissedDays(i int) {
	m.consecutive_missed_days = &i
	m.addconsecutive_missed_days = nil
}

// ConsecutiveMissedDays returns the value of the "consecutive_missed_days" field in the mutation.
func (m *LearnerMetricsMutation) ConsecutiveMissedDays() (r int, exists bool) {
	v := m.consecutive_missed_days
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveMissedDays returns the old "consecutive_missed_days" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldConsecutiveMissedDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveMissedDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveMissedDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveMissedDays: %w", err)
	}
	return oldValue.ConsecutiveMissedDays, nil
}

// AddConsecutiveMissedDays adds i to the "consecutive_missed_days" field.
func (m *LearnerMetricsMutation) AddConsecutiveMissedDays(i int) {
	if m.addconsecutive_missed_days != nil {
		*m.addconsecutive_missed_days += i
	} else {
		m.addconsecutive_missed_days = &i
	}
}

// AddedConsecutiveMissedDays returns the value that was added to the "consecutive_missed_days" field in this mutation.
func (m *LearnerMetricsMutation) AddedConsecutiveMissedDays() (r int, exists bool) {
	v := m.addconsecutive_missed_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveMissedDays resets all changes to the "consecutive_missed_days" field.
func (m *LearnerMetricsMutation) ResetConsecutiveMissedDays() {
	m.consecutive_missed_days = nil
	m.addconsecutive_missed_days = nil
}

// SetCurrentStreak sets the "current_streak" field.
func (m *LearnerMetricsMutation) SetCurrentStreak(i int) {
	m.current_streak = &i
	m.addcurrent_streak = nil
}

// CurrentStreak returns the value of the "current_streak" field in the mutation.
func (m *LearnerMetricsMutation) CurrentStreak() (r int, exists bool) {
	v := m.current_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStreak returns the old "current_streak" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldCurrentStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStreak: %w", err)
	}
	return oldValue.CurrentStreak, nil
}

// AddCurrentStreak adds i to the "current_streak" field.
func (m *LearnerMetricsMutation) AddCurrentStreak(i int) {
	if m.addcurrent_streak != nil {
		*m.addcurrent_streak += i
	} else {
		m.addcurrent_streak = &i
	}
}

// AddedCurrentStreak returns the value that was added to the "current_streak" field in this mutation.
func (m *LearnerMetricsMutation) AddedCurrentStreak() (r int, exists bool) {
	v := m.addcurrent_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStreak resets all changes to the "current_streak" field.
func (m *LearnerMetricsMutation) ResetCurrentStreak() {
	m.current_streak = nil
	m.addcurrent_streak = nil
}

// SetLongestStreak sets the "longest_streak" field.
func (m *LearnerMetricsMutation) SetLongestStreak(i int) {
	m.longest_streak = &i
	m.addlongest_streak = nil
}

// LongestStreak returns the value of the "longest_streak" field in the mutation.
func (m *LearnerMetricsMutation) LongestStreak() (r int, exists bool) {
	v := m.longest_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldLongestStreak returns the old "longest_streak" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldLongestStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongestStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongestStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongestStreak: %w", err)
	}
	return oldValue.LongestStreak, nil
}

// AddLongestStreak adds i to the "longest_streak" field.
func (m *LearnerMetricsMutation) AddLongestStreak(i int) {
	if m.addlongest_streak != nil {
		*m.addlongest_streak += i
	} else {
		m.addlongest_streak = &i
	}
}

// AddedLongestStreak returns the value that was added to the "longest_streak" field in this mutation.
func (m *LearnerMetricsMutation) AddedLongestStreak() (r int, exists bool) {
	v := m.addlongest_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongestStreak resets all changes to the "longest_streak" field.
func (m *LearnerMetricsMutation) ResetLongestStreak() {
	m.longest_streak = nil
	m.addlongest_streak = nil
}

// SetTotalSessions sets the "total_sessions" field.
func (m *LearnerMetricsMutation) SetTotalSessions(i int) {
	m.total_sessions = &i
	m.addtotal_sessions = nil
}

// TotalSessions returns the value of the "total_sessions" field in the mutation.
func (m *LearnerMetricsMutation) TotalSessions() (r int, exists bool) {
	v := m.total_sessions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSessions returns the old "total_sessions" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldTotalSessions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSessions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSessions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSessions: %w", err)
	}
	return oldValue.TotalSessions, nil
}

// AddTotalSessions adds i to the "total_sessions" field.
func (m *LearnerMetricsMutation) AddTotalSessions(i int) {
	if m.addtotal_sessions != nil {
		*m.addtotal_sessions += i
	} else {
		m.addtotal_sessions = &i
	}
}

// AddedTotalSessions returns the value that was added to the "total_sessions" field in this mutation.
func (m *LearnerMetricsMutation) AddedTotalSessions() (r int, exists bool) {
	v := m.addtotal_sessions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSessions resets all changes to the "total_sessions" field.
func (m *LearnerMetricsMutation) ResetTotalSessions() {
	m.total_sessions = nil
	m.addtotal_sessions = nil
}

// SetGaps sets the "gaps" field.
func (m *LearnerMetricsMutation) SetGaps(s []string) {
	m.gaps = &s
	m.appendgaps = nil
}

// Gaps returns the value of the "gaps" field in the mutation.
func (m *LearnerMetricsMutation) Gaps() (r []string, exists bool) {
	v := m.gaps
	if v == nil {
		return
	}
	return *v, true
}

// OldGaps returns the old "gaps" field's value of the LearnerMetrics entity.
// If the LearnerMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMetricsMutation) OldGaps(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGaps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGaps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGaps: %w", err)
	}
	return oldValue.Gaps, nil
}

// AppendGaps adds s to the "gaps" field.
func (m *LearnerMetricsMutation) AppendGaps(s []string) {
	m.appendgaps = append(m.appendgaps, s...)
}

// AppendedGaps returns the list of values that were appended to the "gaps" field in this mutation.
func (m *LearnerMetricsMutation) AppendedGaps() ([]string, bool) {
	if len(m.appendgaps) == 0 {
		return nil, false
	}
	return m.appendgaps, true
}

// ClearGaps clears the value of the "gaps" field.
func (m *LearnerMetricsMutation) ClearGaps() {
	m.gaps = nil
	m.appendgaps = nil
	m.clearedFields[learnermetrics.FieldGaps] = struct{}{}
}

// GapsCleared returns if the "gaps" field was cleared in this mutation.
func (m *LearnerMetricsMutation) GapsCleared() bool {
	_, ok := m.clearedFields[learnermetrics.FieldGaps]
	return ok
}

// ResetGaps resets all changes to the "gaps" field.
func (m *LearnerMetricsMutation) ResetGaps() {
	m.gaps = nil
	m.appendgaps = nil
	delete(m.clearedFields, learnermetrics.FieldGaps)
}

// Where appends a list predicates to the LearnerMetricsMutation builder.
func (m *LearnerMetricsMutation) Where(ps ...predicate.LearnerMetrics) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerMetricsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerMetricsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnerMetrics, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerMetricsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerMetricsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnerMetrics).
func (m *LearnerMetricsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerMetricsMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.user_id != nil {
		fields = append(fields, learnermetrics.FieldUserID)
	}
	if m.quiz_scores != nil {
		fields = append(fields, learnermetrics.FieldQuizScores)
	}
	if m.dialogue_scores != nil {
		fields = append(fields, learnermetrics.FieldDialogueScores)
	}
	if m.avg_quiz_score != nil {
		fields = append(fields, learnermetrics.FieldAvgQuizScore)
	}
	if m.avg_dialogue_score != nil {
		fields = append(fields, learnermetrics.FieldAvgDialogueScore)
	}
	if m.sessions_last_7_days != nil {
		fields = append(fields, learnermetrics.FieldSessionsLast7Days)
	}
	if m.sessions_last_30_days != nil {
		fields = append(fields, learnermetrics.FieldSessionsLast30Days)
	}
	if m.avg_session_minutes != nil {
		fields = append(fields, learnermetrics.FieldAvgSessionMinutes)
	}
	if m.sessions_started != nil {
		fields = append(fields, learnermetrics.FieldSessionsStarted)
	}
	if m.sessions_completed != nil {
		fields = append(fields, learnermetrics.FieldSessionsCompleted)
	}
	if m.pace != nil {
		fields = append(fields, learnermetrics.FieldPace)
	}
	if m.difficulty_level != nil {
		fields = append(fields, learnermetrics.FieldDifficultyLevel)
	}
	if m.last_session_date != nil {
		fields = append(fields, learnermetrics.FieldLastSessionDate)
	}
	if m.consecutive_missed_days != nil {
		fields = append(fields, learnermetrics.FieldConsecutiveMissedDays)
	}
	if m.current_streak != nil {
		fields = append(fields, learnermetrics.FieldCurrentStreak)
	}
	if m.longest_streak != nil {
		fields = append(fields, learnermetrics.FieldLongestStreak)
	}
	if m.total_sessions != nil {
		fields = append(fields, learnermetrics.FieldTotalSessions)
	}
	if m.gaps != nil {
		fields = append(fields, learnermetrics.FieldGaps)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerMetricsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnermetrics.FieldUserID:
		return m.UserID()
	case learnermetrics.FieldQuizScores:
		return m.QuizScores()
	case learnermetrics.FieldDialogueScores:
		return m.DialogueScores()
	case learnermetrics.FieldAvgQuizScore:
		return m.AvgQuizScore()
	case learnermetrics.FieldAvgDialogueScore:
		return m.AvgDialogueScore()
	case learnermetrics.FieldSessionsLast7Days:
		return m.SessionsLast7Days()
	case learnermetrics.FieldSessionsLast30Days:
		return m.SessionsLast30Days()
	case learnermetrics.FieldAvgSessionMinutes:
		return m.AvgSessionMinutes()
	case learnermetrics.FieldSessionsStarted:
		return m.SessionsStarted()
	case learnermetrics.FieldSessionsCompleted:
		return m.SessionsCompleted()
	case learnermetrics.FieldPace:
		return m.Pace()
	case learnermetrics.FieldDifficultyLevel:
		return m.DifficultyLevel()
	case learnermetrics.FieldLastSessionDate:
		return m.LastSessionDate()
	case learnermetrics.FieldConsecutiveMissedDays:
		return m.ConsecutiveMissedDays()
	case learnermetrics.FieldCurrentStreak:
		return m.CurrentStreak()
	case learnermetrics.FieldLongestStreak:
		return m.LongestStreak()
	case learnermetrics.FieldTotalSessions:
		return m.TotalSessions()
	case learnermetrics.FieldGaps:
		return m.Gaps()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerMetricsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnermetrics.FieldUserID:
		return m.OldUserID(ctx)
	case learnermetrics.FieldQuizScores:
		return m.OldQuizScores(ctx)
	case learnermetrics.FieldDialogueScores:
		return m.OldDialogueScores(ctx)
	case learnermetrics.FieldAvgQuizScore:
		return m.OldAvgQuizScore(ctx)
	case learnermetrics.FieldAvgDialogueScore:
		return m.OldAvgDialogueScore(ctx)
	case learnermetrics.FieldSessionsLast7Days:
		return m.OldSessionsLast7Days(ctx)
	case learnermetrics.FieldSessionsLast30Days:
		return m.OldSessionsLast30Days(ctx)
	case learnermetrics.FieldAvgSessionMinutes:
		return m.OldAvgSessionMinutes(ctx)
	case learnermetrics.FieldSessionsStarted:
		return m.OldSessionsStarted(ctx)
	case learnermetrics.FieldSessionsCompleted:
		return m.OldSessionsCompleted(ctx)
	case learnermetrics.FieldPace:
		return m.OldPace(ctx)
	case learnermetrics.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	case learnermetrics.FieldLastSessionDate:
		return m.OldLastSessionDate(ctx)
	case learnermetrics.FieldConsecutiveMissedDays:
		return m.OldConsecutiveMissedDays(ctx)
	case learnermetrics.FieldCurrentStreak:
		return m.OldCurrentStreak(ctx)
	case learnermetrics.FieldLongestStreak:
		return m.OldLongestStreak(ctx)
	case learnermetrics.FieldTotalSessions:
		return m.OldTotalSessions(ctx)
	case learnermetrics.FieldGaps:
		return m.OldGaps(ctx)
	}
	return nil, fmt.Errorf("unknown LearnerMetrics field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMetricsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnermetrics.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case learnermetrics.FieldQuizScores:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizScores(v)
		return nil
	case learnermetrics.FieldDialogueScores:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDialogueScores(v)
		return nil
	case learnermetrics.FieldAvgQuizScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgQuizScore(v)
		return nil
	case learnermetrics.FieldAvgDialogueScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgDialogueScore(v)
		return nil
	case learnermetrics.FieldSessionsLast7Days:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionsLast7Days(v)
		return nil
	case learnermetrics.FieldSessionsLast30Days:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionsLast30Days(v)
		return nil
	case learnermetrics.FieldAvgSessionMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgSessionMinutes(v)
		return nil
	case learnermetrics.FieldSessionsStarted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionsStarted(v)
		return nil
	case learnermetrics.FieldSessionsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionsCompleted(v)
		return nil
	case learnermetrics.FieldPace:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPace(v)
		return nil
	case learnermetrics.FieldDifficultyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	case learnermetrics.FieldLastSessionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSessionDate(v)
		return nil
	case learnermetrics.FieldConsecutiveMissedDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveMissedDays(v)
		return nil
	case learnermetrics.FieldCurrentStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStreak(v)
		return nil
	case learnermetrics.FieldLongestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongestStreak(v)
		return nil
	case learnermetrics.FieldTotalSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSessions(v)
		return nil
	case learnermetrics.FieldGaps:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGaps(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerMetrics field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerMetricsMutation) AddedFields() []string {
	var fields []string
	if m.addavg_quiz_score != nil {
		fields = append(fields, learnermetrics.FieldAvgQuizScore)
	}
	if m.addavg_dialogue_score != nil {
		fields = append(fields, learnermetrics.FieldAvgDialogueScore)
	}
	if m.addsessions_last_7_days != nil {
		fields = append(fields, learnermetrics.FieldSessionsLast7Days)
	}
	if m.addsessions_last_30_days != nil {
		fields = append(fields, learnermetrics.FieldSessionsLast30Days)
	}
	if m.addavg_session_minutes != nil {
		fields = append(fields, learnermetrics.FieldAvgSessionMinutes)
	}
	if m.addsessions_started != nil {
		fields = append(fields, learnermetrics.FieldSessionsStarted)
	}
	if m.addsessions_completed != nil {
		fields = append(fields, learnermetrics.FieldSessionsCompleted)
	}
	if m.adddifficulty_level != nil {
		fields = append(fields, learnermetrics.FieldDifficultyLevel)
	}
	if m.addconsecutive_missed_days != nil {
		fields = append(fields, learnermetrics.FieldConsecutiveMissedDays)
	}
	if m.addcurrent_streak != nil {
		fields = append(fields, learnermetrics.FieldCurrentStreak)
	}
	if m.addlongest_streak != nil {
		fields = append(fields, learnermetrics.FieldLongestStreak)
	}
	if m.addtotal_sessions != nil {
		fields = append(fields, learnermetrics.FieldTotalSessions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerMetricsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learnermetrics.FieldAvgQuizScore:
		return m.AddedAvgQuizScore()
	case learnermetrics.FieldAvgDialogueScore:
		return m.AddedAvgDialogueScore()
	case learnermetrics.FieldSessionsLast7Days:
		return m.AddedSessionsLast7Days()
	case learnermetrics.FieldSessionsLast30Days:
		return m.AddedSessionsLast30Days()
	case learnermetrics.FieldAvgSessionMinutes:
		return m.AddedAvgSessionMinutes()
	case learnermetrics.FieldSessionsStarted:
		return m.AddedSessionsStarted()
	case learnermetrics.FieldSessionsCompleted:
		return m.AddedSessionsCompleted()
	case learnermetrics.FieldDifficultyLevel:
		return m.AddedDifficultyLevel()
	case learnermetrics.FieldConsecutiveMissedDays:
		return m.AddedConsecutiveMissedDays()
	case learnermetrics.FieldCurrentStreak:
		return m.AddedCurrentStreak()
	case learnermetrics.FieldLongestStreak:
		return m.AddedLongestStreak()
	case learnermetrics.FieldTotalSessions:
		return m.AddedTotalSessions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMetricsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learnermetrics.FieldAvgQuizScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgQuizScore(v)
		return nil
	case learnermetrics.FieldAvgDialogueScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgDialogueScore(v)
		return nil
	case learnermetrics.FieldSessionsLast7Days:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionsLast7Days(v)
		return nil
	case learnermetrics.FieldSessionsLast30Days:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionsLast30Days(v)
		return nil
	case learnermetrics.FieldAvgSessionMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgSessionMinutes(v)
		return nil
	case learnermetrics.FieldSessionsStarted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionsStarted(v)
		return nil
	case learnermetrics.FieldSessionsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionsCompleted(v)
		return nil
	case learnermetrics.FieldDifficultyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyLevel(v)
		return nil
	case learnermetrics.FieldConsecutiveMissedDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveMissedDays(v)
		return nil
	case learnermetrics.FieldCurrentStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStreak(v)
		return nil
	case learnermetrics.FieldLongestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongestStreak(v)
		return nil
	case learnermetrics.FieldTotalSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSessions(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerMetrics numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerMetricsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learnermetrics.FieldQuizScores) {
		fields = append(fields, learnermetrics.FieldQuizScores)
	}
	if m.FieldCleared(learnermetrics.FieldDialogueScores) {
		fields = append(fields, learnermetrics.FieldDialogueScores)
	}
	if m.FieldCleared(learnermetrics.FieldLastSessionDate) {
		fields = append(fields, learnermetrics.FieldLastSessionDate)
	}
	if m.FieldCleared(learnermetrics.FieldGaps) {
		fields = append(fields, learnermetrics.FieldGaps)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerMetricsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerMetricsMutation) ClearField(name string) error {
	switch name {
	case learnermetrics.FieldQuizScores:
		m.ClearQuizScores()
		return nil
	case learnermetrics.FieldDialogueScores:
		m.ClearDialogueScores()
		return nil
	case learnermetrics.FieldLastSessionDate:
		m.ClearLastSessionDate()
		return nil
	case learnermetrics.FieldGaps:
		m.ClearGaps()
		return nil
	}
	return fmt.Errorf("unknown LearnerMetrics nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerMetricsMutation) ResetField(name string) error {
	switch name {
	case learnermetrics.FieldUserID:
		m.ResetUserID()
		return nil
	case learnermetrics.FieldQuizScores:
		m.ResetQuizScores()
		return nil
	case learnermetrics.FieldDialogueScores:
		m.ResetDialogueScores()
		return nil
	case learnermetrics.FieldAvgQuizScore:
		m.ResetAvgQuizScore()
		return nil
	case learnermetrics.FieldAvgDialogueScore:
		m.ResetAvgDialogueScore()
		return nil
	case learnermetrics.FieldSessionsLast7Days:
		m.ResetSessionsLast7Days()
		return nil
	case learnermetrics.FieldSessionsLast30Days:
		m.ResetSessionsLast30Days()
		return nil
	case learnermetrics.FieldAvgSessionMinutes:
		m.ResetAvgSessionMinutes()
		return nil
	case learnermetrics.FieldSessionsStarted:
		m.ResetSessionsStarted()
		return nil
	case learnermetrics.FieldSessionsCompleted:
		m.ResetSessionsCompleted()
		return nil
	case learnermetrics.FieldPace:
		m.ResetPace()
		return nil
	case learnermetrics.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	case learnermetrics.FieldLastSessionDate:
		m.ResetLastSessionDate()
		return nil
	case learnermetrics.FieldConsecutiveMissedDays:
		m.ResetConsecutiveMissedDays()
		return nil
	case learnermetrics.FieldCurrentStreak:
		m.ResetCurrentStreak()
		return nil
	case learnermetrics.FieldLongestStreak:
		m.ResetLongestStreak()
		return nil
	case learnermetrics.FieldTotalSessions:
		m.ResetTotalSessions()
		return nil
	case learnermetrics.FieldGaps:
		m.ResetGaps()
		return nil
	}
	return fmt.Errorf("unknown LearnerMetrics field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerMetricsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerMetricsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerMetricsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerMetricsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerMetricsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerMetricsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerMetricsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnerMetrics unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerMetricsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnerMetrics edge %s", name)
}

// ReviewItemMutation represents an operation that mutates the ReviewItem nodes in the graph.
type ReviewItemMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *string
	topic_id         *string
	last_reviewed_at *time.Time
	next_review_at   *time.Time
	interval_days    *int
	addinterval_days *int
	ease_factor      *float64
	addease_factor   *float64
	review_count     *int
	addreview_count  *int
	proficiency      *float64
	addproficiency   *float64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ReviewItem, error)
	predicates       []predicate.ReviewItem
}

var _ ent.Mutation = (*ReviewItemMutation)(nil)

// reviewitemOption allows management of the mutation configuration using functional options.
type reviewitemOption func(*ReviewItemMutation)

// newReviewItemMutation creates new mutation for the ReviewItem entity.
func newReviewItemMutation(c config, op Op, opts ...reviewitemOption) *ReviewItemMutation {
	m := &ReviewItemMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewItemID sets the ID field of the mutation.
func withReviewItemID(id int) reviewitemOption {
	return func(m *ReviewItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewItem
		)
		m.oldValue = func(ctx context.Context) (*ReviewItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewItem sets the old ReviewItem of the mutation.
func withReviewItem(node *ReviewItem) reviewitemOption {
	return func(m *ReviewItemMutation) {
		m.oldValue = func(context.Context) (*ReviewItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReviewItemMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReviewItemMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReviewItemMutation) ResetUserID() {
	m.user_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *ReviewItemMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *ReviewItemMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *ReviewItemMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (m *ReviewItemMutation) SetLastReviewedAt(t time.Time) {
	m.last_reviewed_at = &t
}

// LastReviewedAt returns the value of the "last_reviewed_at" field in the mutation.
func (m *ReviewItemMutation) LastReviewedAt() (r time.Time, exists bool) {
	v := m.last_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedAt returns the old "last_reviewed_at" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldLastReviewedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedAt: %w", err)
	}
	return oldValue.LastReviewedAt, nil
}

// ResetLastReviewedAt resets all changes to the "last_reviewed_at" field.
func (m *ReviewItemMutation) ResetLastReviewedAt() {
	m.last_reviewed_at = nil
}

// SetNextReviewAt sets the "next_review_at" field.
func (m *ReviewItemMutation) SetNextReviewAt(t time.Time) {
	m.next_review_at = &t
}

// NextReviewAt returns the value of the "next_review_at" field in the mutation.
func (m *ReviewItemMutation) NextReviewAt() (r time.Time, exists bool) {
	v := m.next_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewAt returns the old "next_review_at" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldNextReviewAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewAt: %w", err)
	}
	return oldValue.NextReviewAt, nil
}

// ResetNextReviewAt resets all changes to the "next_review_at" field.
func (m *ReviewItemMutation) ResetNextReviewAt() {
	m.next_review_at = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ReviewItemMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ReviewItemMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ReviewItemMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ReviewItemMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ReviewItemMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetEaseFactor sets the "ease_factor" field.
func (m *ReviewItemMutation) SetEaseFactor(f float64) {
	m.ease_factor = &f
	m.addease_factor = nil
}

// EaseFactor returns the value of the "ease_factor" field in the mutation.
func (m *ReviewItemMutation) EaseFactor() (r float64, exists bool) {
	v := m.ease_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseFactor returns the old "ease_factor" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldEaseFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseFactor: %w", err)
	}
	return oldValue.EaseFactor, nil
}

// AddEaseFactor adds f to the "ease_factor" field.
func (m *ReviewItemMutation) AddEaseFactor(f float64) {
	if m.addease_factor != nil {
		*m.addease_factor += f
	} else {
		m.addease_factor = &f
	}
}

// AddedEaseFactor returns the value that was added to the "ease_factor" field in this mutation.
func (m *ReviewItemMutation) AddedEaseFactor() (r float64, exists bool) {
	v := m.addease_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseFactor resets all changes to the "ease_factor" field.
func (m *ReviewItemMutation) ResetEaseFactor() {
	m.ease_factor = nil
	m.addease_factor = nil
}

// SetReviewCount sets the "review_count" field.
func (m *ReviewItemMutation) SetReviewCount(i int) {
	m.review_count = &i
	m.addreview_count = nil
}

// ReviewCount returns the value of the "review_count" field in the mutation.
func (m *ReviewItemMutation) ReviewCount() (r int, exists bool) {
	v := m.review_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewCount returns the old "review_count" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldReviewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewCount: %w", err)
	}
	return oldValue.ReviewCount, nil
}

// AddReviewCount adds i to the "review_count" field.
func (m *ReviewItemMutation) AddReviewCount(i int) {
	if m.addreview_count != nil {
		*m.addreview_count += i
	} else {
		m.addreview_count = &i
	}
}

// AddedReviewCount returns the value that was added to the "review_count" field in this mutation.
func (m *ReviewItemMutation) AddedReviewCount() (r int, exists bool) {
	v := m.addreview_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewCount resets all changes to the "review_count" field.
func (m *ReviewItemMutation) ResetReviewCount() {
	m.review_count = nil
	m.addreview_count = nil
}

// SetProficiency sets the "proficiency" field.
func (m *ReviewItemMutation) SetProficiency(f float64) {
	m.proficiency = &f
	m.addproficiency = nil
}

// Proficiency returns the value of the "proficiency" field in the mutation.
func (m *ReviewItemMutation) Proficiency() (r float64, exists bool) {
	v := m.proficiency
	if v == nil {
		return
	}
	return *v, true
}

// OldProficiency returns the old "proficiency" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldProficiency(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProficiency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProficiency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProficiency: %w", err)
	}
	return oldValue.Proficiency, nil
}

// AddProficiency adds f to the "proficiency" field.
func (m *ReviewItemMutation) AddProficiency(f float64) {
	if m.addproficiency != nil {
		*m.addproficiency += f
	} else {
		m.addproficiency = &f
	}
}

// AddedProficiency returns the value that was added to the "proficiency" field in this mutation.
func (m *ReviewItemMutation) AddedProficiency() (r float64, exists bool) {
	v := m.addproficiency
	if v == nil {
		return
	}
	return *v, true
}

// ResetProficiency resets all changes to the "proficiency" field.
func (m *ReviewItemMutation) ResetProficiency() {
	m.proficiency = nil
	m.addproficiency = nil
}

// Where appends a list predicates to the ReviewItemMutation builder.
func (m *ReviewItemMutation) Where(ps ...predicate.ReviewItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewItem).
func (m *ReviewItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewItemMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, reviewitem.FieldUserID)
	}
	if m.topic_id != nil {
		fields = append(fields, reviewitem.FieldTopicID)
	}
	if m.last_reviewed_at != nil {
		fields = append(fields, reviewitem.FieldLastReviewedAt)
	}
	if m.next_review_at != nil {
		fields = append(fields, reviewitem.FieldNextReviewAt)
	}
	if m.interval_days != nil {
		fields = append(fields, reviewitem.FieldIntervalDays)
	}
	if m.ease_factor != nil {
		fields = append(fields, reviewitem.FieldEaseFactor)
	}
	if m.review_count != nil {
		fields = append(fields, reviewitem.FieldReviewCount)
	}
	if m.proficiency != nil {
		fields = append(fields, reviewitem.FieldProficiency)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewitem.FieldUserID:
		return m.UserID()
	case reviewitem.FieldTopicID:
		return m.TopicID()
	case reviewitem.FieldLastReviewedAt:
		return m.LastReviewedAt()
	case reviewitem.FieldNextReviewAt:
		return m.NextReviewAt()
	case reviewitem.FieldIntervalDays:
		return m.IntervalDays()
	case reviewitem.FieldEaseFactor:
		return m.EaseFactor()
	case reviewitem.FieldReviewCount:
		return m.ReviewCount()
	case reviewitem.FieldProficiency:
		return m.Proficiency()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewitem.FieldUserID:
		return m.OldUserID(ctx)
	case reviewitem.FieldTopicID:
		return m.OldTopicID(ctx)
	case reviewitem.FieldLastReviewedAt:
		return m.OldLastReviewedAt(ctx)
	case reviewitem.FieldNextReviewAt:
		return m.OldNextReviewAt(ctx)
	case reviewitem.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case reviewitem.FieldEaseFactor:
		return m.OldEaseFactor(ctx)
	case reviewitem.FieldReviewCount:
		return m.OldReviewCount(ctx)
	case reviewitem.FieldProficiency:
		return m.OldProficiency(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewitem.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reviewitem.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case reviewitem.FieldLastReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedAt(v)
		return nil
	case reviewitem.FieldNextReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewAt(v)
		return nil
	case reviewitem.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case reviewitem.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseFactor(v)
		return nil
	case reviewitem.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewCount(v)
		return nil
	case reviewitem.FieldProficiency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProficiency(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewItemMutation) AddedFields() []string {
	var fields []string
	if m.addinterval_days != nil {
		fields = append(fields, reviewitem.FieldIntervalDays)
	}
	if m.addease_factor != nil {
		fields = append(fields, reviewitem.FieldEaseFactor)
	}
	if m.addreview_count != nil {
		fields = append(fields, reviewitem.FieldReviewCount)
	}
	if m.addproficiency != nil {
		fields = append(fields, reviewitem.FieldProficiency)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewitem.FieldIntervalDays:
		return m.AddedIntervalDays()
	case reviewitem.FieldEaseFactor:
		return m.AddedEaseFactor()
	case reviewitem.FieldReviewCount:
		return m.AddedReviewCount()
	case reviewitem.FieldProficiency:
		return m.AddedProficiency()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewitem.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case reviewitem.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseFactor(v)
		return nil
	case reviewitem.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewCount(v)
		return nil
	case reviewitem.FieldProficiency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProficiency(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewItemMutation) ResetField(name string) error {
	switch name {
	case reviewitem.FieldUserID:
		m.ResetUserID()
		return nil
	case reviewitem.FieldTopicID:
		m.ResetTopicID()
		return nil
	case reviewitem.FieldLastReviewedAt:
		m.ResetLastReviewedAt()
		return nil
	case reviewitem.FieldNextReviewAt:
		m.ResetNextReviewAt()
		return nil
	case reviewitem.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case reviewitem.FieldEaseFactor:
		m.ResetEaseFactor()
		return nil
	case reviewitem.FieldReviewCount:
		m.ResetReviewCount()
		return nil
	case reviewitem.FieldProficiency:
		m.ResetProficiency()
		return nil
	}
	return fmt.Errorf("unknown ReviewItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewItem edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	session_id         *string
	user_id            *string
	session_type       *string
	status             *string
	planned_minutes    *int
	addplanned_minutes *int
	actual_minutes     *int
	addactual_minutes  *int
	started_at         *time.Time
	ended_at           *time.Time
	abandon_reason     *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Session, error)
	predicates         []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id int) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionType sets the "session_type" field.
func (m *SessionMutation) SetSessionType(s string) {
	m.session_type = &s
}

// SessionType returns the value of the "session_type" field in the mutation.
func (m *SessionMutation) SessionType() (r string, exists bool) {
	v := m.session_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionType returns the old "session_type" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionType: %w", err)
	}
	return oldValue.SessionType, nil
}

// ResetSessionType resets all changes to the "session_type" field.
func (m *SessionMutation) ResetSessionType() {
	m.session_type = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (m *SessionMutation) SetPlannedMinutes(i int) {
	m.planned_minutes = &i
	m.addplanned_minutes = nil
}

// PlannedMinutes returns the value of the "planned_minutes" field in the mutation.
func (m *SessionMutation) PlannedMinutes() (r int, exists bool) {
	v := m.planned_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannedMinutes returns the old "planned_minutes" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPlannedMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannedMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannedMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannedMinutes: %w", err)
	}
	return oldValue.PlannedMinutes, nil
}

// AddPlannedMinutes adds i to the "planned_minutes" field.
func (m *SessionMutation) AddPlannedMinutes(i int) {
	if m.addplanned_minutes != nil {
		*m.addplanned_minutes += i
	} else {
		m.addplanned_minutes = &i
	}
}

// AddedPlannedMinutes returns the value that was added to the "planned_minutes" field in this mutation.
func (m *SessionMutation) AddedPlannedMinutes() (r int, exists bool) {
	v := m.addplanned_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlannedMinutes resets all changes to the "planned_minutes" field.
func (m *SessionMutation) ResetPlannedMinutes() {
	m.planned_minutes = nil
	m.addplanned_minutes = nil
}

// SetActualMinutes sets the "actual_minutes" field.
func (m *SessionMutation) SetActualMinutes(i int) {
	m.actual_minutes = &i
	m.addactual_minutes = nil
}

// ActualMinutes returns the value of the "actual_minutes" field in the mutation.
func (m *SessionMutation) ActualMinutes() (r int, exists bool) {
	v := m.actual_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldActualMinutes returns the old "actual_minutes" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldActualMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualMinutes: %w", err)
	}
	return oldValue.ActualMinutes, nil
}

// AddActualMinutes adds i to the "actual_minutes" field.
func (m *SessionMutation) AddActualMinutes(i int) {
	if m.addactual_minutes != nil {
		*m.addactual_minutes += i
	} else {
		m.addactual_minutes = &i
	}
}

// AddedActualMinutes returns the value that was added to the "actual_minutes" field in this mutation.
func (m *SessionMutation) AddedActualMinutes() (r int, exists bool) {
	v := m.addactual_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetActualMinutes resets all changes to the "actual_minutes" field.
func (m *SessionMutation) ResetActualMinutes() {
	m.actual_minutes = nil
	m.addactual_minutes = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *SessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *SessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *SessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[session.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *SessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *SessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, session.FieldEndedAt)
}

// SetAbandonReason sets the "abandon_reason" field.
func (m *SessionMutation) SetAbandonReason(s string) {
	m.abandon_reason = &s
}

// AbandonReason returns the value of the "abandon_reason" field in the mutation.
func (m *SessionMutation) AbandonReason() (r string, exists bool) {
	v := m.abandon_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldAbandonReason returns the old "abandon_reason" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAbandonReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbandonReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbandonReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbandonReason: %w", err)
	}
	return oldValue.AbandonReason, nil
}

// ResetAbandonReason resets all changes to the "abandon_reason" field.
func (m *SessionMutation) ResetAbandonReason() {
	m.abandon_reason = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session_id != nil {
		fields = append(fields, session.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.session_type != nil {
		fields = append(fields, session.FieldSessionType)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.planned_minutes != nil {
		fields = append(fields, session.FieldPlannedMinutes)
	}
	if m.actual_minutes != nil {
		fields = append(fields, session.FieldActualMinutes)
	}
	if m.started_at != nil {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, session.FieldEndedAt)
	}
	if m.abandon_reason != nil {
		fields = append(fields, session.FieldAbandonReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldSessionID:
		return m.SessionID()
	case session.FieldUserID:
		return m.UserID()
	case session.FieldSessionType:
		return m.SessionType()
	case session.FieldStatus:
		return m.Status()
	case session.FieldPlannedMinutes:
		return m.PlannedMinutes()
	case session.FieldActualMinutes:
		return m.ActualMinutes()
	case session.FieldStartedAt:
		return m.StartedAt()
	case session.FieldEndedAt:
		return m.EndedAt()
	case session.FieldAbandonReason:
		return m.AbandonReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldSessionID:
		return m.OldSessionID(ctx)
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldSessionType:
		return m.OldSessionType(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldPlannedMinutes:
		return m.OldPlannedMinutes(ctx)
	case session.FieldActualMinutes:
		return m.OldActualMinutes(ctx)
	case session.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case session.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case session.FieldAbandonReason:
		return m.OldAbandonReason(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case session.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldSessionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionType(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldPlannedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannedMinutes(v)
		return nil
	case session.FieldActualMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualMinutes(v)
		return nil
	case session.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case session.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case session.FieldAbandonReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbandonReason(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addplanned_minutes != nil {
		fields = append(fields, session.FieldPlannedMinutes)
	}
	if m.addactual_minutes != nil {
		fields = append(fields, session.FieldActualMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldPlannedMinutes:
		return m.AddedPlannedMinutes()
	case session.FieldActualMinutes:
		return m.AddedActualMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldPlannedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlannedMinutes(v)
		return nil
	case session.FieldActualMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldEndedAt) {
		fields = append(fields, session.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldSessionID:
		m.ResetSessionID()
		return nil
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldSessionType:
		m.ResetSessionType()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldPlannedMinutes:
		m.ResetPlannedMinutes()
		return nil
	case session.FieldActualMinutes:
		m.ResetActualMinutes()
		return nil
	case session.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case session.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case session.FieldAbandonReason:
		m.ResetAbandonReason()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}

// SessionActivityMutation represents an operation that mutates the SessionActivity nodes in the graph.
type SessionActivityMutation struct {
	config
	op            Op
	typ           string
	id            *int
	activity_id   *string
	session_id    *string
	activity_type *string
	topic_id      *string
	content_id    *string
	started_at    *time.Time
	ended_at      *time.Time
	performance   *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SessionActivity, error)
	predicates    []predicate.SessionActivity
}

var _ ent.Mutation = (*SessionActivityMutation)(nil)

// sessionactivityOption allows management of the mutation configuration using functional options.
type sessionactivityOption func(*SessionActivityMutation)

// newSessionActivityMutation creates new mutation for the SessionActivity entity.
func newSessionActivityMutation(c config, op Op, opts ...sessionactivityOption) *SessionActivityMutation {
	m := &SessionActivityMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionActivity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionActivityID sets the ID field of the mutation.
func withSessionActivityID(id int) sessionactivityOption {
	return func(m *SessionActivityMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionActivity
		)
		m.oldValue = func(ctx context.Context) (*SessionActivity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionActivity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionActivity sets the old SessionActivity of the mutation.
func withSessionActivity(node *SessionActivity) sessionactivityOption {
	return func(m *SessionActivityMutation) {
		m.oldValue = func(context.Context) (*SessionActivity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionActivityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionActivityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionActivityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionActivityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionActivity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActivityID sets the "activity_id" field.
func (m *SessionActivityMutation) SetActivityID(s string) {
	m.activity_id = &s
}

// ActivityID returns the value of the "activity_id" field in the mutation.
func (m *SessionActivityMutation) ActivityID() (r string, exists bool) {
	v := m.activity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityID returns the old "activity_id" field's value of the SessionActivity entity.
// If the SessionActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionActivityMutation) OldActivityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityID: %w", err)
	}
	return oldValue.ActivityID, nil
}

// ResetActivityID resets all changes to the "activity_id" field.
func (m *SessionActivityMutation) ResetActivityID() {
	m.activity_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionActivityMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionActivityMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionActivity entity.
// If the SessionActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionActivityMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionActivityMutation) ResetSessionID() {
	m.session_id = nil
}

// SetActivityType sets the "activity_type" field.
func (m *SessionActivityMutation) SetActivityType(s string) {
	m.activity_type = &s
}

// ActivityType returns the value of the "activity_type" field in the mutation.
func (m *SessionActivityMutation) ActivityType() (r string, exists bool) {
	v := m.activity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityType returns the old "activity_type" field's value of the SessionActivity entity.
// If the SessionActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionActivityMutation) OldActivityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityType: %w", err)
	}
	return oldValue.ActivityType, nil
}

// ResetActivityType resets all changes to the "activity_type" field.
func (m *SessionActivityMutation) ResetActivityType() {
	m.activity_type = nil
}

// SetTopicID sets the "topic_id" field.
func (m *SessionActivityMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *SessionActivityMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the SessionActivity entity.
// If the SessionActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionActivityMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *SessionActivityMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetContentID sets the "content_id" field.
func (m *SessionActivityMutation) SetContentID(s string) {
	m.content_id = &s
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *SessionActivityMutation) ContentID() (r string, exists bool) {
	v := m.content_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the SessionActivity entity.
// If the SessionActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionActivityMutation) OldContentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// ResetContentID resets all changes to the "content_id" field.
func (m *SessionActivityMutation) ResetContentID() {
	m.content_id = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SessionActivityMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionActivityMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SessionActivity entity.
// If the SessionActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionActivityMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionActivityMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *SessionActivityMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *SessionActivityMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the SessionActivity entity.
// If the SessionActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionActivityMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *SessionActivityMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[sessionactivity.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *SessionActivityMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[sessionactivity.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *SessionActivityMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, sessionactivity.FieldEndedAt)
}

// SetPerformance sets the "performance" field.
func (m *SessionActivityMutation) SetPerformance(value map[string]interface{}) {
	m.performance = &value
}

// Performance returns the value of the "performance" field in the mutation.
func (m *SessionActivityMutation) Performance() (r map[string]interface{}, exists bool) {
	v := m.performance
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformance returns the old "performance" field's value of the SessionActivity entity.
// If the SessionActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionActivityMutation) OldPerformance(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformance: %w", err)
	}
	return oldValue.Performance, nil
}

// ClearPerformance clears the value of the "performance" field.
func (m *SessionActivityMutation) ClearPerformance() {
	m.performance = nil
	m.clearedFields[sessionactivity.FieldPerformance] = struct{}{}
}

// PerformanceCleared returns if the "performance" field was cleared in this mutation.
func (m *SessionActivityMutation) PerformanceCleared() bool {
	_, ok := m.clearedFields[sessionactivity.FieldPerformance]
	return ok
}

// ResetPerformance resets all changes to the "performance" field.
func (m *SessionActivityMutation) ResetPerformance() {
	m.performance = nil
	delete(m.clearedFields, sessionactivity.FieldPerformance)
}

// Where appends a list predicates to the SessionActivityMutation builder.
func (m *SessionActivityMutation) Where(ps ...predicate.SessionActivity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionActivityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionActivityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionActivity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionActivityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionActivityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionActivity).
func (m *SessionActivityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionActivityMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.activity_id != nil {
		fields = append(fields, sessionactivity.FieldActivityID)
	}
	if m.session_id != nil {
		fields = append(fields, sessionactivity.FieldSessionID)
	}
	if m.activity_type != nil {
		fields = append(fields, sessionactivity.FieldActivityType)
	}
	if m.topic_id != nil {
		fields = append(fields, sessionactivity.FieldTopicID)
	}
	if m.content_id != nil {
		fields = append(fields, sessionactivity.FieldContentID)
	}
	if m.started_at != nil {
		fields = append(fields, sessionactivity.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, sessionactivity.FieldEndedAt)
	}
	if m.performance != nil {
		fields = append(fields, sessionactivity.FieldPerformance)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionActivityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionactivity.FieldActivityID:
		return m.ActivityID()
	case sessionactivity.FieldSessionID:
		return m.SessionID()
	case sessionactivity.FieldActivityType:
		return m.ActivityType()
	case sessionactivity.FieldTopicID:
		return m.TopicID()
	case sessionactivity.FieldContentID:
		return m.ContentID()
	case sessionactivity.FieldStartedAt:
		return m.StartedAt()
	case sessionactivity.FieldEndedAt:
		return m.EndedAt()
	case sessionactivity.FieldPerformance:
		return m.Performance()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionActivityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionactivity.FieldActivityID:
		return m.OldActivityID(ctx)
	case sessionactivity.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionactivity.FieldActivityType:
		return m.OldActivityType(ctx)
	case sessionactivity.FieldTopicID:
		return m.OldTopicID(ctx)
	case sessionactivity.FieldContentID:
		return m.OldContentID(ctx)
	case sessionactivity.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case sessionactivity.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case sessionactivity.FieldPerformance:
		return m.OldPerformance(ctx)
	}
	return nil, fmt.Errorf("unknown SessionActivity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionActivityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionactivity.FieldActivityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityID(v)
		return nil
	case sessionactivity.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionactivity.FieldActivityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityType(v)
		return nil
	case sessionactivity.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case sessionactivity.FieldContentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case sessionactivity.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case sessionactivity.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case sessionactivity.FieldPerformance:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformance(v)
		return nil
	}
	return fmt.Errorf("unknown SessionActivity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionActivityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionActivityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionActivityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionActivity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionActivityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionactivity.FieldEndedAt) {
		fields = append(fields, sessionactivity.FieldEndedAt)
	}
	if m.FieldCleared(sessionactivity.FieldPerformance) {
		fields = append(fields, sessionactivity.FieldPerformance)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionActivityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionActivityMutation) ClearField(name string) error {
	switch name {
	case sessionactivity.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case sessionactivity.FieldPerformance:
		m.ClearPerformance()
		return nil
	}
	return fmt.Errorf("unknown SessionActivity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionActivityMutation) ResetField(name string) error {
	switch name {
	case sessionactivity.FieldActivityID:
		m.ResetActivityID()
		return nil
	case sessionactivity.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionactivity.FieldActivityType:
		m.ResetActivityType()
		return nil
	case sessionactivity.FieldTopicID:
		m.ResetTopicID()
		return nil
	case sessionactivity.FieldContentID:
		m.ResetContentID()
		return nil
	case sessionactivity.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case sessionactivity.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case sessionactivity.FieldPerformance:
		m.ResetPerformance()
		return nil
	}
	return fmt.Errorf("unknown SessionActivity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionActivityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionActivityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionActivityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionActivityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionActivityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionActivityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionActivityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionActivity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionActivityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionActivity edge %s", name)
}
