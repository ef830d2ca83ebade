// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oselot/stitchpath/ent/learner"
	"github.com/oselot/stitchpath/ent/predicate"
)

// LearnerUpdate is the builder for updating Learner entities.
type LearnerUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerMutation
}

// Where appends a list predicates to the LearnerUpdate builder.
func (lu *LearnerUpdate) Where(ps ...predicate.Learner) *LearnerUpdate {
	lu.mutation.Where(ps...)
	return lu
}

// SetDisplayName sets the "display_name" field.
func (lu *LearnerUpdate) SetDisplayName(s string) *LearnerUpdate {
	lu.mutation.SetDisplayName(s)
	return lu
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (lu *LearnerUpdate) SetNillableDisplayName(s *string) *LearnerUpdate {
	if s != nil {
		lu.SetDisplayName(*s)
	}
	return lu
}

// ClearDisplayName clears the value of the "display_name" field.
func (lu *LearnerUpdate) ClearDisplayName() *LearnerUpdate {
	lu.mutation.ClearDisplayName()
	return lu
}

// Mutation returns the LearnerMutation object of the builder.
func (lu *LearnerUpdate) Mutation() *LearnerMutation {
	return lu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (lu *LearnerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, lu.sqlSave, lu.mutation, lu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lu *LearnerUpdate) SaveX(ctx context.Context) int {
	affected, err := lu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (lu *LearnerUpdate) Exec(ctx context.Context) error {
	_, err := lu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lu *LearnerUpdate) ExecX(ctx context.Context) {
	if err := lu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (lu *LearnerUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learner.Table, learner.Columns, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeInt))
	if ps := lu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lu.mutation.DisplayName(); ok {
		_spec.SetField(learner.FieldDisplayName, field.TypeString, value)
	}
	if lu.mutation.DisplayNameCleared() {
		_spec.ClearField(learner.FieldDisplayName, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, lu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	lu.mutation.done = true
	return n, nil
}

// LearnerUpdateOne is the builder for updating a single Learner entity.
type LearnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerMutation
}

// SetDisplayName sets the "display_name" field.
func (luo *LearnerUpdateOne) SetDisplayName(s string) *LearnerUpdateOne {
	luo.mutation.SetDisplayName(s)
	return luo
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (luo *LearnerUpdateOne) SetNillableDisplayName(s *string) *LearnerUpdateOne {
	if s != nil {
		luo.SetDisplayName(*s)
	}
	return luo
}

// ClearDisplayName clears the value of the "display_name" field.
func (luo *LearnerUpdateOne) ClearDisplayName() *LearnerUpdateOne {
	luo.mutation.ClearDisplayName()
	return luo
}

// Mutation returns the LearnerMutation object of the builder.
func (luo *LearnerUpdateOne) Mutation() *LearnerMutation {
	return luo.mutation
}

// Where appends a list predicates to the LearnerUpdate builder.
func (luo *LearnerUpdateOne) Where(ps ...predicate.Learner) *LearnerUpdateOne {
	luo.mutation.Where(ps...)
	return luo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (luo *LearnerUpdateOne) Select(field string, fields ...string) *LearnerUpdateOne {
	luo.fields = append([]string{field}, fields...)
	return luo
}

// Save executes the query and returns the updated Learner entity.
func (luo *LearnerUpdateOne) Save(ctx context.Context) (*Learner, error) {
	return withHooks(ctx, luo.sqlSave, luo.mutation, luo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (luo *LearnerUpdateOne) SaveX(ctx context.Context) *Learner {
	node, err := luo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (luo *LearnerUpdateOne) Exec(ctx context.Context) error {
	_, err := luo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (luo *LearnerUpdateOne) ExecX(ctx context.Context) {
	if err := luo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (luo *LearnerUpdateOne) sqlSave(ctx context.Context) (_node *Learner, err error) {
	_spec := sqlgraph.NewUpdateSpec(learner.Table, learner.Columns, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeInt))
	id, ok := luo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Learner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := luo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learner.FieldID)
		for _, f := range fields {
			if !learner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learner.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := luo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := luo.mutation.DisplayName(); ok {
		_spec.SetField(learner.FieldDisplayName, field.TypeString, value)
	}
	if luo.mutation.DisplayNameCleared() {
		_spec.ClearField(learner.FieldDisplayName, field.TypeString)
	}
	_node = &Learner{config: luo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, luo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	luo.mutation.done = true
	return _node, nil
}
