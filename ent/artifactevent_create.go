// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dkasab/unveil/ent/artifactevent"
)

// ArtifactEventCreate is the builder for creating a ArtifactEvent entity.
type ArtifactEventCreate struct {
	config
	mutation *ArtifactEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ArtifactEventCreate) SetSequence(v int64) *ArtifactEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ArtifactEventCreate) SetTimestamp(v time.Time) *ArtifactEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ArtifactEventCreate) SetNillableTimestamp(v *time.Time) *ArtifactEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *ArtifactEventCreate) SetConversationID(v string) *ArtifactEventCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetArtifactID sets the "artifact_id" field.
func (_c *ArtifactEventCreate) SetArtifactID(v string) *ArtifactEventCreate {
	_c.mutation.SetArtifactID(v)
	return _c
}

// SetSlotKey sets the "slot_key" field.
func (_c *ArtifactEventCreate) SetSlotKey(v string) *ArtifactEventCreate {
	_c.mutation.SetSlotKey(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ArtifactEventCreate) SetTitle(v string) *ArtifactEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ArtifactEventCreate) SetNillableTitle(v *string) *ArtifactEventCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *ArtifactEventCreate) SetLanguage(v string) *ArtifactEventCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *ArtifactEventCreate) SetNillableLanguage(v *string) *ArtifactEventCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ArtifactEventCreate) SetVersion(v int) *ArtifactEventCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetLineCount sets the "line_count" field.
func (_c *ArtifactEventCreate) SetLineCount(v int) *ArtifactEventCreate {
	_c.mutation.SetLineCount(v)
	return _c
}

// SetNillableLineCount sets the "line_count" field if the given value is not nil.
func (_c *ArtifactEventCreate) SetNillableLineCount(v *int) *ArtifactEventCreate {
	if v != nil {
		_c.SetLineCount(*v)
	}
	return _c
}

// SetTruncated sets the "truncated" field.
func (_c *ArtifactEventCreate) SetTruncated(v bool) *ArtifactEventCreate {
	_c.mutation.SetTruncated(v)
	return _c
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_c *ArtifactEventCreate) SetNillableTruncated(v *bool) *ArtifactEventCreate {
	if v != nil {
		_c.SetTruncated(*v)
	}
	return _c
}

// Mutation returns the ArtifactEventMutation object of the builder.
func (_c *ArtifactEventCreate) Mutation() *ArtifactEventMutation {
	return _c.mutation
}

// Save creates the ArtifactEvent in the database.
func (_c *ArtifactEventCreate) Save(ctx context.Context) (*ArtifactEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArtifactEventCreate) SaveX(ctx context.Context) *ArtifactEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArtifactEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := artifactevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Title(); !ok {
		v := artifactevent.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := artifactevent.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.LineCount(); !ok {
		v := artifactevent.DefaultLineCount
		_c.mutation.SetLineCount(v)
	}
	if _, ok := _c.mutation.Truncated(); !ok {
		v := artifactevent.DefaultTruncated
		_c.mutation.SetTruncated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArtifactEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ArtifactEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ArtifactEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "ArtifactEvent.conversation_id"`)}
	}
	if v, ok := _c.mutation.ConversationID(); ok {
		if err := artifactevent.ConversationIDValidator(v); err != nil {
			return &ValidationError{Name: "conversation_id", err: fmt.Errorf(`ent: validator failed for field "ArtifactEvent.conversation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ArtifactID(); !ok {
		return &ValidationError{Name: "artifact_id", err: errors.New(`ent: missing required field "ArtifactEvent.artifact_id"`)}
	}
	if v, ok := _c.mutation.ArtifactID(); ok {
		if err := artifactevent.ArtifactIDValidator(v); err != nil {
			return &ValidationError{Name: "artifact_id", err: fmt.Errorf(`ent: validator failed for field "ArtifactEvent.artifact_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SlotKey(); !ok {
		return &ValidationError{Name: "slot_key", err: errors.New(`ent: missing required field "ArtifactEvent.slot_key"`)}
	}
	if v, ok := _c.mutation.SlotKey(); ok {
		if err := artifactevent.SlotKeyValidator(v); err != nil {
			return &ValidationError{Name: "slot_key", err: fmt.Errorf(`ent: validator failed for field "ArtifactEvent.slot_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ArtifactEvent.title"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "ArtifactEvent.language"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ArtifactEvent.version"`)}
	}
	if _, ok := _c.mutation.LineCount(); !ok {
		return &ValidationError{Name: "line_count", err: errors.New(`ent: missing required field "ArtifactEvent.line_count"`)}
	}
	if _, ok := _c.mutation.Truncated(); !ok {
		return &ValidationError{Name: "truncated", err: errors.New(`ent: missing required field "ArtifactEvent.truncated"`)}
	}
	return nil
}

func (_c *ArtifactEventCreate) sqlSave(ctx context.Context) (*ArtifactEvent, error) {
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

func (_c *ArtifactEventCreate) createSpec() (*ArtifactEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ArtifactEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(artifactevent.Table, sqlgraph.NewFieldSpec(artifactevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(artifactevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(artifactevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(artifactevent.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.ArtifactID(); ok {
		_spec.SetField(artifactevent.FieldArtifactID, field.TypeString, value)
		_node.ArtifactID = value
	}
	if value, ok := _c.mutation.SlotKey(); ok {
		_spec.SetField(artifactevent.FieldSlotKey, field.TypeString, value)
		_node.SlotKey = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(artifactevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(artifactevent.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(artifactevent.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.LineCount(); ok {
		_spec.SetField(artifactevent.FieldLineCount, field.TypeInt, value)
		_node.LineCount = value
	}
	if value, ok := _c.mutation.Truncated(); ok {
		_spec.SetField(artifactevent.FieldTruncated, field.TypeBool, value)
		_node.Truncated = value
	}
	return _node, _spec
}

// ArtifactEventCreateBulk is the builder for creating many ArtifactEvent entities in bulk.
type ArtifactEventCreateBulk struct {
	config
	err      error
	builders []*ArtifactEventCreate
}

// Save creates the ArtifactEvent entities in the database.
func (_c *ArtifactEventCreateBulk) Save(ctx context.Context) ([]*ArtifactEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ArtifactEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArtifactEventMutation)
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
func (_c *ArtifactEventCreateBulk) SaveX(ctx context.Context) []*ArtifactEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
