// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dkasab/unveil/ent/artifactevent"
	"github.com/dkasab/unveil/ent/predicate"
)

// ArtifactEventUpdate is the builder for updating ArtifactEvent entities.
type ArtifactEventUpdate struct {
	config
	hooks    []Hook
	mutation *ArtifactEventMutation
}

// Where appends a list predicates to the ArtifactEventUpdate builder.
func (_u *ArtifactEventUpdate) Where(ps ...predicate.ArtifactEvent) *ArtifactEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *ArtifactEventUpdate) SetConversationID(v string) *ArtifactEventUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *ArtifactEventUpdate) SetNillableConversationID(v *string) *ArtifactEventUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *ArtifactEventUpdate) SetArtifactID(v string) *ArtifactEventUpdate {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *ArtifactEventUpdate) SetNillableArtifactID(v *string) *ArtifactEventUpdate {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// SetSlotKey sets the "slot_key" field.
func (_u *ArtifactEventUpdate) SetSlotKey(v string) *ArtifactEventUpdate {
	_u.mutation.SetSlotKey(v)
	return _u
}

// SetNillableSlotKey sets the "slot_key" field if the given value is not nil.
func (_u *ArtifactEventUpdate) SetNillableSlotKey(v *string) *ArtifactEventUpdate {
	if v != nil {
		_u.SetSlotKey(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArtifactEventUpdate) SetTitle(v string) *ArtifactEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArtifactEventUpdate) SetNillableTitle(v *string) *ArtifactEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ArtifactEventUpdate) SetLanguage(v string) *ArtifactEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ArtifactEventUpdate) SetNillableLanguage(v *string) *ArtifactEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ArtifactEventUpdate) SetVersion(v int) *ArtifactEventUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ArtifactEventUpdate) SetNillableVersion(v *int) *ArtifactEventUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ArtifactEventUpdate) AddVersion(v int) *ArtifactEventUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetLineCount sets the "line_count" field.
func (_u *ArtifactEventUpdate) SetLineCount(v int) *ArtifactEventUpdate {
	_u.mutation.ResetLineCount()
	_u.mutation.SetLineCount(v)
	return _u
}

// SetNillableLineCount sets the "line_count" field if the given value is not nil.
func (_u *ArtifactEventUpdate) SetNillableLineCount(v *int) *ArtifactEventUpdate {
	if v != nil {
		_u.SetLineCount(*v)
	}
	return _u
}

// AddLineCount adds value to the "line_count" field.
func (_u *ArtifactEventUpdate) AddLineCount(v int) *ArtifactEventUpdate {
	_u.mutation.AddLineCount(v)
	return _u
}

// SetTruncated sets the "truncated" field.
func (_u *ArtifactEventUpdate) SetTruncated(v bool) *ArtifactEventUpdate {
	_u.mutation.SetTruncated(v)
	return _u
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_u *ArtifactEventUpdate) SetNillableTruncated(v *bool) *ArtifactEventUpdate {
	if v != nil {
		_u.SetTruncated(*v)
	}
	return _u
}

// Mutation returns the ArtifactEventMutation object of the builder.
func (_u *ArtifactEventUpdate) Mutation() *ArtifactEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArtifactEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArtifactEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArtifactEventUpdate) check() error {
	if v, ok := _u.mutation.ConversationID(); ok {
		if err := artifactevent.ConversationIDValidator(v); err != nil {
			return &ValidationError{Name: "conversation_id", err: fmt.Errorf(`ent: validator failed for field "ArtifactEvent.conversation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArtifactID(); ok {
		if err := artifactevent.ArtifactIDValidator(v); err != nil {
			return &ValidationError{Name: "artifact_id", err: fmt.Errorf(`ent: validator failed for field "ArtifactEvent.artifact_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlotKey(); ok {
		if err := artifactevent.SlotKeyValidator(v); err != nil {
			return &ValidationError{Name: "slot_key", err: fmt.Errorf(`ent: validator failed for field "ArtifactEvent.slot_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ArtifactEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(artifactevent.Table, artifactevent.Columns, sqlgraph.NewFieldSpec(artifactevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(artifactevent.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(artifactevent.FieldArtifactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotKey(); ok {
		_spec.SetField(artifactevent.FieldSlotKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(artifactevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(artifactevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(artifactevent.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(artifactevent.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LineCount(); ok {
		_spec.SetField(artifactevent.FieldLineCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineCount(); ok {
		_spec.AddField(artifactevent.FieldLineCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Truncated(); ok {
		_spec.SetField(artifactevent.FieldTruncated, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifactevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArtifactEventUpdateOne is the builder for updating a single ArtifactEvent entity.
type ArtifactEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArtifactEventMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *ArtifactEventUpdateOne) SetConversationID(v string) *ArtifactEventUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *ArtifactEventUpdateOne) SetNillableConversationID(v *string) *ArtifactEventUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *ArtifactEventUpdateOne) SetArtifactID(v string) *ArtifactEventUpdateOne {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *ArtifactEventUpdateOne) SetNillableArtifactID(v *string) *ArtifactEventUpdateOne {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// SetSlotKey sets the "slot_key" field.
func (_u *ArtifactEventUpdateOne) SetSlotKey(v string) *ArtifactEventUpdateOne {
	_u.mutation.SetSlotKey(v)
	return _u
}

// SetNillableSlotKey sets the "slot_key" field if the given value is not nil.
func (_u *ArtifactEventUpdateOne) SetNillableSlotKey(v *string) *ArtifactEventUpdateOne {
	if v != nil {
		_u.SetSlotKey(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArtifactEventUpdateOne) SetTitle(v string) *ArtifactEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArtifactEventUpdateOne) SetNillableTitle(v *string) *ArtifactEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ArtifactEventUpdateOne) SetLanguage(v string) *ArtifactEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ArtifactEventUpdateOne) SetNillableLanguage(v *string) *ArtifactEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ArtifactEventUpdateOne) SetVersion(v int) *ArtifactEventUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ArtifactEventUpdateOne) SetNillableVersion(v *int) *ArtifactEventUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ArtifactEventUpdateOne) AddVersion(v int) *ArtifactEventUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetLineCount sets the "line_count" field.
func (_u *ArtifactEventUpdateOne) SetLineCount(v int) *ArtifactEventUpdateOne {
	_u.mutation.ResetLineCount()
	_u.mutation.SetLineCount(v)
	return _u
}

// SetNillableLineCount sets the "line_count" field if the given value is not nil.
func (_u *ArtifactEventUpdateOne) SetNillableLineCount(v *int) *ArtifactEventUpdateOne {
	if v != nil {
		_u.SetLineCount(*v)
	}
	return _u
}

// AddLineCount adds value to the "line_count" field.
func (_u *ArtifactEventUpdateOne) AddLineCount(v int) *ArtifactEventUpdateOne {
	_u.mutation.AddLineCount(v)
	return _u
}

// SetTruncated sets the "truncated" field.
func (_u *ArtifactEventUpdateOne) SetTruncated(v bool) *ArtifactEventUpdateOne {
	_u.mutation.SetTruncated(v)
	return _u
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_u *ArtifactEventUpdateOne) SetNillableTruncated(v *bool) *ArtifactEventUpdateOne {
	if v != nil {
		_u.SetTruncated(*v)
	}
	return _u
}

// Mutation returns the ArtifactEventMutation object of the builder.
func (_u *ArtifactEventUpdateOne) Mutation() *ArtifactEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArtifactEventUpdate builder.
func (_u *ArtifactEventUpdateOne) Where(ps ...predicate.ArtifactEvent) *ArtifactEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArtifactEventUpdateOne) Select(field string, fields ...string) *ArtifactEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArtifactEvent entity.
func (_u *ArtifactEventUpdateOne) Save(ctx context.Context) (*ArtifactEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactEventUpdateOne) SaveX(ctx context.Context) *ArtifactEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArtifactEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArtifactEventUpdateOne) check() error {
	if v, ok := _u.mutation.ConversationID(); ok {
		if err := artifactevent.ConversationIDValidator(v); err != nil {
			return &ValidationError{Name: "conversation_id", err: fmt.Errorf(`ent: validator failed for field "ArtifactEvent.conversation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArtifactID(); ok {
		if err := artifactevent.ArtifactIDValidator(v); err != nil {
			return &ValidationError{Name: "artifact_id", err: fmt.Errorf(`ent: validator failed for field "ArtifactEvent.artifact_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlotKey(); ok {
		if err := artifactevent.SlotKeyValidator(v); err != nil {
			return &ValidationError{Name: "slot_key", err: fmt.Errorf(`ent: validator failed for field "ArtifactEvent.slot_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ArtifactEventUpdateOne) sqlSave(ctx context.Context) (_node *ArtifactEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(artifactevent.Table, artifactevent.Columns, sqlgraph.NewFieldSpec(artifactevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArtifactEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, artifactevent.FieldID)
		for _, f := range fields {
			if !artifactevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != artifactevent.FieldID {
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
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(artifactevent.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(artifactevent.FieldArtifactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotKey(); ok {
		_spec.SetField(artifactevent.FieldSlotKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(artifactevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(artifactevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(artifactevent.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(artifactevent.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LineCount(); ok {
		_spec.SetField(artifactevent.FieldLineCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineCount(); ok {
		_spec.AddField(artifactevent.FieldLineCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Truncated(); ok {
		_spec.SetField(artifactevent.FieldTruncated, field.TypeBool, value)
	}
	_node = &ArtifactEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifactevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
