// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oselot/stitchpath/ent/contentmastery"
	"github.com/oselot/stitchpath/ent/predicate"
)

// ContentMasteryDelete is the builder for deleting a ContentMastery entity.
type ContentMasteryDelete struct {
	config
	hooks    []Hook
	mutation *ContentMasteryMutation
}

// Where appends a list predicates to the ContentMasteryDelete builder.
func (cmd *ContentMasteryDelete) Where(ps ...predicate.ContentMastery) *ContentMasteryDelete {
	cmd.mutation.Where(ps...)
	return cmd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cmd *ContentMasteryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cmd.sqlExec, cmd.mutation, cmd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cmd *ContentMasteryDelete) ExecX(ctx context.Context) int {
	n, err := cmd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cmd *ContentMasteryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(contentmastery.Table, sqlgraph.NewFieldSpec(contentmastery.FieldID, field.TypeInt))
	if ps := cmd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cmd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cmd.mutation.done = true
	return affected, err
}

// ContentMasteryDeleteOne is the builder for deleting a single ContentMastery entity.
type ContentMasteryDeleteOne struct {
	cmd *ContentMasteryDelete
}

// Where appends a list predicates to the ContentMasteryDelete builder.
func (cmdo *ContentMasteryDeleteOne) Where(ps ...predicate.ContentMastery) *ContentMasteryDeleteOne {
	cmdo.cmd.mutation.Where(ps...)
	return cmdo
}

// Exec executes the deletion query.
func (cmdo *ContentMasteryDeleteOne) Exec(ctx context.Context) error {
	n, err := cmdo.cmd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{contentmastery.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cmdo *ContentMasteryDeleteOne) ExecX(ctx context.Context) {
	if err := cmdo.Exec(ctx); err != nil {
		panic(err)
	}
}
