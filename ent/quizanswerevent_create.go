// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dkasab/unveil/ent/quizanswerevent"
)

// QuizAnswerEventCreate is the builder for creating a QuizAnswerEvent entity.
type QuizAnswerEventCreate struct {
	config
	mutation *QuizAnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizAnswerEventCreate) SetSequence(v int64) *QuizAnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizAnswerEventCreate) SetTimestamp(v time.Time) *QuizAnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizAnswerEventCreate) SetNillableTimestamp(v *time.Time) *QuizAnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *QuizAnswerEventCreate) SetConversationID(v string) *QuizAnswerEventCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetArtifactID sets the "artifact_id" field.
func (_c *QuizAnswerEventCreate) SetArtifactID(v string) *QuizAnswerEventCreate {
	_c.mutation.SetArtifactID(v)
	return _c
}

// SetQuizID sets the "quiz_id" field.
func (_c *QuizAnswerEventCreate) SetQuizID(v string) *QuizAnswerEventCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *QuizAnswerEventCreate) SetQuestion(v string) *QuizAnswerEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *QuizAnswerEventCreate) SetUserAnswer(v string) *QuizAnswerEventCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *QuizAnswerEventCreate) SetCorrect(v bool) *QuizAnswerEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetGateLevel sets the "gate_level" field.
func (_c *QuizAnswerEventCreate) SetGateLevel(v int) *QuizAnswerEventCreate {
	_c.mutation.SetGateLevel(v)
	return _c
}

// SetTurn sets the "turn" field.
func (_c *QuizAnswerEventCreate) SetTurn(v int) *QuizAnswerEventCreate {
	_c.mutation.SetTurn(v)
	return _c
}

// SetNillableTurn sets the "turn" field if the given value is not nil.
func (_c *QuizAnswerEventCreate) SetNillableTurn(v *int) *QuizAnswerEventCreate {
	if v != nil {
		_c.SetTurn(*v)
	}
	return _c
}

// SetFallback sets the "fallback" field.
func (_c *QuizAnswerEventCreate) SetFallback(v bool) *QuizAnswerEventCreate {
	_c.mutation.SetFallback(v)
	return _c
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_c *QuizAnswerEventCreate) SetNillableFallback(v *bool) *QuizAnswerEventCreate {
	if v != nil {
		_c.SetFallback(*v)
	}
	return _c
}

// Mutation returns the QuizAnswerEventMutation object of the builder.
func (_c *QuizAnswerEventCreate) Mutation() *QuizAnswerEventMutation {
	return _c.mutation
}

// Save creates the QuizAnswerEvent in the database.
func (_c *QuizAnswerEventCreate) Save(ctx context.Context) (*QuizAnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAnswerEventCreate) SaveX(ctx context.Context) *QuizAnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizanswerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Turn(); !ok {
		v := quizanswerevent.DefaultTurn
		_c.mutation.SetTurn(v)
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		v := quizanswerevent.DefaultFallback
		_c.mutation.SetFallback(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizAnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizAnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "QuizAnswerEvent.conversation_id"`)}
	}
	if v, ok := _c.mutation.ConversationID(); ok {
		if err := quizanswerevent.ConversationIDValidator(v); err != nil {
			return &ValidationError{Name: "conversation_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.conversation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ArtifactID(); !ok {
		return &ValidationError{Name: "artifact_id", err: errors.New(`ent: missing required field "QuizAnswerEvent.artifact_id"`)}
	}
	if v, ok := _c.mutation.ArtifactID(); ok {
		if err := quizanswerevent.ArtifactIDValidator(v); err != nil {
			return &ValidationError{Name: "artifact_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.artifact_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizID(); !ok {
		return &ValidationError{Name: "quiz_id", err: errors.New(`ent: missing required field "QuizAnswerEvent.quiz_id"`)}
	}
	if v, ok := _c.mutation.QuizID(); ok {
		if err := quizanswerevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.quiz_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "QuizAnswerEvent.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := quizanswerevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "QuizAnswerEvent.user_answer"`)}
	}
	if v, ok := _c.mutation.UserAnswer(); ok {
		if err := quizanswerevent.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.user_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "QuizAnswerEvent.correct"`)}
	}
	if _, ok := _c.mutation.GateLevel(); !ok {
		return &ValidationError{Name: "gate_level", err: errors.New(`ent: missing required field "QuizAnswerEvent.gate_level"`)}
	}
	if _, ok := _c.mutation.Turn(); !ok {
		return &ValidationError{Name: "turn", err: errors.New(`ent: missing required field "QuizAnswerEvent.turn"`)}
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		return &ValidationError{Name: "fallback", err: errors.New(`ent: missing required field "QuizAnswerEvent.fallback"`)}
	}
	return nil
}

func (_c *QuizAnswerEventCreate) sqlSave(ctx context.Context) (*QuizAnswerEvent, error) {
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

func (_c *QuizAnswerEventCreate) createSpec() (*QuizAnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizanswerevent.Table, sqlgraph.NewFieldSpec(quizanswerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizanswerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizanswerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(quizanswerevent.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.ArtifactID(); ok {
		_spec.SetField(quizanswerevent.FieldArtifactID, field.TypeString, value)
		_node.ArtifactID = value
	}
	if value, ok := _c.mutation.QuizID(); ok {
		_spec.SetField(quizanswerevent.FieldQuizID, field.TypeString, value)
		_node.QuizID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(quizanswerevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(quizanswerevent.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(quizanswerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.GateLevel(); ok {
		_spec.SetField(quizanswerevent.FieldGateLevel, field.TypeInt, value)
		_node.GateLevel = value
	}
	if value, ok := _c.mutation.Turn(); ok {
		_spec.SetField(quizanswerevent.FieldTurn, field.TypeInt, value)
		_node.Turn = value
	}
	if value, ok := _c.mutation.Fallback(); ok {
		_spec.SetField(quizanswerevent.FieldFallback, field.TypeBool, value)
		_node.Fallback = value
	}
	return _node, _spec
}

// QuizAnswerEventCreateBulk is the builder for creating many QuizAnswerEvent entities in bulk.
type QuizAnswerEventCreateBulk struct {
	config
	err      error
	builders []*QuizAnswerEventCreate
}

// Save creates the QuizAnswerEvent entities in the database.
func (_c *QuizAnswerEventCreateBulk) Save(ctx context.Context) ([]*QuizAnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAnswerEventMutation)
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
func (_c *QuizAnswerEventCreateBulk) SaveX(ctx context.Context) []*QuizAnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
