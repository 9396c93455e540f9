// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dkasab/unveil/ent/predicate"
	"github.com/dkasab/unveil/ent/quizanswerevent"
)

// QuizAnswerEventDelete is the builder for deleting a QuizAnswerEvent entity.
type QuizAnswerEventDelete struct {
	config
	hooks    []Hook
	mutation *QuizAnswerEventMutation
}

// Where appends a list predicates to the QuizAnswerEventDelete builder.
func (_d *QuizAnswerEventDelete) Where(ps ...predicate.QuizAnswerEvent) *QuizAnswerEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QuizAnswerEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuizAnswerEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QuizAnswerEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(quizanswerevent.Table, sqlgraph.NewFieldSpec(quizanswerevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// QuizAnswerEventDeleteOne is the builder for deleting a single QuizAnswerEvent entity.
type QuizAnswerEventDeleteOne struct {
	_d *QuizAnswerEventDelete
}

// Where appends a list predicates to the QuizAnswerEventDelete builder.
func (_d *QuizAnswerEventDeleteOne) Where(ps ...predicate.QuizAnswerEvent) *QuizAnswerEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QuizAnswerEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{quizanswerevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuizAnswerEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
