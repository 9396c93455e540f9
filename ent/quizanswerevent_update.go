// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dkasab/unveil/ent/predicate"
	"github.com/dkasab/unveil/ent/quizanswerevent"
)

// QuizAnswerEventUpdate is the builder for updating QuizAnswerEvent entities.
type QuizAnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAnswerEventMutation
}

// Where appends a list predicates to the QuizAnswerEventUpdate builder.
func (_u *QuizAnswerEventUpdate) Where(ps ...predicate.QuizAnswerEvent) *QuizAnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *QuizAnswerEventUpdate) SetConversationID(v string) *QuizAnswerEventUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableConversationID(v *string) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *QuizAnswerEventUpdate) SetArtifactID(v string) *QuizAnswerEventUpdate {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableArtifactID(v *string) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizAnswerEventUpdate) SetQuizID(v string) *QuizAnswerEventUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableQuizID(v *string) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuizAnswerEventUpdate) SetQuestion(v string) *QuizAnswerEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableQuestion(v *string) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *QuizAnswerEventUpdate) SetUserAnswer(v string) *QuizAnswerEventUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableUserAnswer(v *string) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizAnswerEventUpdate) SetCorrect(v bool) *QuizAnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableCorrect(v *bool) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetGateLevel sets the "gate_level" field.
func (_u *QuizAnswerEventUpdate) SetGateLevel(v int) *QuizAnswerEventUpdate {
	_u.mutation.ResetGateLevel()
	_u.mutation.SetGateLevel(v)
	return _u
}

// SetNillableGateLevel sets the "gate_level" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableGateLevel(v *int) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetGateLevel(*v)
	}
	return _u
}

// AddGateLevel adds value to the "gate_level" field.
func (_u *QuizAnswerEventUpdate) AddGateLevel(v int) *QuizAnswerEventUpdate {
	_u.mutation.AddGateLevel(v)
	return _u
}

// SetTurn sets the "turn" field.
func (_u *QuizAnswerEventUpdate) SetTurn(v int) *QuizAnswerEventUpdate {
	_u.mutation.ResetTurn()
	_u.mutation.SetTurn(v)
	return _u
}

// SetNillableTurn sets the "turn" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableTurn(v *int) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetTurn(*v)
	}
	return _u
}

// AddTurn adds value to the "turn" field.
func (_u *QuizAnswerEventUpdate) AddTurn(v int) *QuizAnswerEventUpdate {
	_u.mutation.AddTurn(v)
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *QuizAnswerEventUpdate) SetFallback(v bool) *QuizAnswerEventUpdate {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableFallback(v *bool) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the QuizAnswerEventMutation object of the builder.
func (_u *QuizAnswerEventUpdate) Mutation() *QuizAnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAnswerEventUpdate) check() error {
	if v, ok := _u.mutation.ConversationID(); ok {
		if err := quizanswerevent.ConversationIDValidator(v); err != nil {
			return &ValidationError{Name: "conversation_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.conversation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArtifactID(); ok {
		if err := quizanswerevent.ArtifactIDValidator(v); err != nil {
			return &ValidationError{Name: "artifact_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.artifact_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizanswerevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := quizanswerevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAnswer(); ok {
		if err := quizanswerevent.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.user_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizanswerevent.Table, quizanswerevent.Columns, sqlgraph.NewFieldSpec(quizanswerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(quizanswerevent.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(quizanswerevent.FieldArtifactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizanswerevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(quizanswerevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(quizanswerevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizanswerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GateLevel(); ok {
		_spec.SetField(quizanswerevent.FieldGateLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGateLevel(); ok {
		_spec.AddField(quizanswerevent.FieldGateLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Turn(); ok {
		_spec.SetField(quizanswerevent.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurn(); ok {
		_spec.AddField(quizanswerevent.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(quizanswerevent.FieldFallback, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizanswerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAnswerEventUpdateOne is the builder for updating a single QuizAnswerEvent entity.
type QuizAnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAnswerEventMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *QuizAnswerEventUpdateOne) SetConversationID(v string) *QuizAnswerEventUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableConversationID(v *string) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *QuizAnswerEventUpdateOne) SetArtifactID(v string) *QuizAnswerEventUpdateOne {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableArtifactID(v *string) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizAnswerEventUpdateOne) SetQuizID(v string) *QuizAnswerEventUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableQuizID(v *string) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuizAnswerEventUpdateOne) SetQuestion(v string) *QuizAnswerEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableQuestion(v *string) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *QuizAnswerEventUpdateOne) SetUserAnswer(v string) *QuizAnswerEventUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableUserAnswer(v *string) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizAnswerEventUpdateOne) SetCorrect(v bool) *QuizAnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableCorrect(v *bool) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetGateLevel sets the "gate_level" field.
func (_u *QuizAnswerEventUpdateOne) SetGateLevel(v int) *QuizAnswerEventUpdateOne {
	_u.mutation.ResetGateLevel()
	_u.mutation.SetGateLevel(v)
	return _u
}

// SetNillableGateLevel sets the "gate_level" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableGateLevel(v *int) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetGateLevel(*v)
	}
	return _u
}

// AddGateLevel adds value to the "gate_level" field.
func (_u *QuizAnswerEventUpdateOne) AddGateLevel(v int) *QuizAnswerEventUpdateOne {
	_u.mutation.AddGateLevel(v)
	return _u
}

// SetTurn sets the "turn" field.
func (_u *QuizAnswerEventUpdateOne) SetTurn(v int) *QuizAnswerEventUpdateOne {
	_u.mutation.ResetTurn()
	_u.mutation.SetTurn(v)
	return _u
}

// SetNillableTurn sets the "turn" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableTurn(v *int) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetTurn(*v)
	}
	return _u
}

// AddTurn adds value to the "turn" field.
func (_u *QuizAnswerEventUpdateOne) AddTurn(v int) *QuizAnswerEventUpdateOne {
	_u.mutation.AddTurn(v)
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *QuizAnswerEventUpdateOne) SetFallback(v bool) *QuizAnswerEventUpdateOne {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableFallback(v *bool) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the QuizAnswerEventMutation object of the builder.
func (_u *QuizAnswerEventUpdateOne) Mutation() *QuizAnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAnswerEventUpdate builder.
func (_u *QuizAnswerEventUpdateOne) Where(ps ...predicate.QuizAnswerEvent) *QuizAnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAnswerEventUpdateOne) Select(field string, fields ...string) *QuizAnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAnswerEvent entity.
func (_u *QuizAnswerEventUpdateOne) Save(ctx context.Context) (*QuizAnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAnswerEventUpdateOne) SaveX(ctx context.Context) *QuizAnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.ConversationID(); ok {
		if err := quizanswerevent.ConversationIDValidator(v); err != nil {
			return &ValidationError{Name: "conversation_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.conversation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArtifactID(); ok {
		if err := quizanswerevent.ArtifactIDValidator(v); err != nil {
			return &ValidationError{Name: "artifact_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.artifact_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizanswerevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := quizanswerevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAnswer(); ok {
		if err := quizanswerevent.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.user_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizAnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizanswerevent.Table, quizanswerevent.Columns, sqlgraph.NewFieldSpec(quizanswerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizanswerevent.FieldID)
		for _, f := range fields {
			if !quizanswerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizanswerevent.FieldID {
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
		_spec.SetField(quizanswerevent.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(quizanswerevent.FieldArtifactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizanswerevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(quizanswerevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(quizanswerevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizanswerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GateLevel(); ok {
		_spec.SetField(quizanswerevent.FieldGateLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGateLevel(); ok {
		_spec.AddField(quizanswerevent.FieldGateLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Turn(); ok {
		_spec.SetField(quizanswerevent.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurn(); ok {
		_spec.AddField(quizanswerevent.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(quizanswerevent.FieldFallback, field.TypeBool, value)
	}
	_node = &QuizAnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizanswerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
