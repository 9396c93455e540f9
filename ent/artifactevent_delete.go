// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dkasab/unveil/ent/artifactevent"
	"github.com/dkasab/unveil/ent/predicate"
)

// ArtifactEventDelete is the builder for deleting a ArtifactEvent entity.
type ArtifactEventDelete struct {
	config
	hooks    []Hook
	mutation *ArtifactEventMutation
}

// Where appends a list predicates to the ArtifactEventDelete builder.
func (_d *ArtifactEventDelete) Where(ps ...predicate.ArtifactEvent) *ArtifactEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ArtifactEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArtifactEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ArtifactEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(artifactevent.Table, sqlgraph.NewFieldSpec(artifactevent.FieldID, field.TypeInt))
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

// ArtifactEventDeleteOne is the builder for deleting a single ArtifactEvent entity.
type ArtifactEventDeleteOne struct {
	_d *ArtifactEventDelete
}

// Where appends a list predicates to the ArtifactEventDelete builder.
func (_d *ArtifactEventDeleteOne) Where(ps ...predicate.ArtifactEvent) *ArtifactEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ArtifactEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{artifactevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArtifactEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
