// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oselot/stitchpath/ent/userprogress"
)

// UserProgressCreate is the builder for creating a UserProgress entity.
type UserProgressCreate struct {
	config
	mutation *UserProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (upc *UserProgressCreate) SetUserID(s string) *UserProgressCreate {
	upc.mutation.SetUserID(s)
	return upc
}

// SetOverallCompletion sets the "overall_completion" field.
func (upc *UserProgressCreate) SetOverallCompletion(f float64) *UserProgressCreate {
	upc.mutation.SetOverallCompletion(f)
	return upc
}

// SetNillableOverallCompletion sets the "overall_completion" field if the given value is not nil.
func (upc *UserProgressCreate) SetNillableOverallCompletion(f *float64) *UserProgressCreate {
	if f != nil {
		upc.SetOverallCompletion(*f)
	}
	return upc
}

// SetPerPathCompletion sets the "per_path_completion" field.
func (upc *UserProgressCreate) SetPerPathCompletion(m map[string]float64) *UserProgressCreate {
	upc.mutation.SetPerPathCompletion(m)
	return upc
}

// SetMasteredItemCount sets the "mastered_item_count" field.
func (upc *UserProgressCreate) SetMasteredItemCount(i int) *UserProgressCreate {
	upc.mutation.SetMasteredItemCount(i)
	return upc
}

// SetNillableMasteredItemCount sets the "mastered_item_count" field if the given value is not nil.
func (upc *UserProgressCreate) SetNillableMasteredItemCount(i *int) *UserProgressCreate {
	if i != nil {
		upc.SetMasteredItemCount(*i)
	}
	return upc
}

// SetTotalItemCount sets the "total_item_count" field.
func (upc *UserProgressCreate) SetTotalItemCount(i int) *UserProgressCreate {
	upc.mutation.SetTotalItemCount(i)
	return upc
}

// SetNillableTotalItemCount sets the "total_item_count" field if the given value is not nil.
func (upc *UserProgressCreate) SetNillableTotalItemCount(i *int) *UserProgressCreate {
	if i != nil {
		upc.SetTotalItemCount(*i)
	}
	return upc
}

// SetLastUpdate sets the "last_update" field.
func (upc *UserProgressCreate) SetLastUpdate(t time.Time) *UserProgressCreate {
	upc.mutation.SetLastUpdate(t)
	return upc
}

// Mutation returns the UserProgressMutation object of the builder.
func (upc *UserProgressCreate) Mutation() *UserProgressMutation {
	return upc.mutation
}

// Save creates the UserProgress in the database.
func (upc *UserProgressCreate) Save(ctx context.Context) (*UserProgress, error) {
	upc.defaults()
	return withHooks(ctx, upc.sqlSave, upc.mutation, upc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (upc *UserProgressCreate) SaveX(ctx context.Context) *UserProgress {
	v, err := upc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (upc *UserProgressCreate) Exec(ctx context.Context) error {
	_, err := upc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (upc *UserProgressCreate) ExecX(ctx context.Context) {
	if err := upc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (upc *UserProgressCreate) defaults() {
	if _, ok := upc.mutation.OverallCompletion(); !ok {
		v := userprogress.DefaultOverallCompletion
		upc.mutation.SetOverallCompletion(v)
	}
	if _, ok := upc.mutation.MasteredItemCount(); !ok {
		v := userprogress.DefaultMasteredItemCount
		upc.mutation.SetMasteredItemCount(v)
	}
	if _, ok := upc.mutation.TotalItemCount(); !ok {
		v := userprogress.DefaultTotalItemCount
		upc.mutation.SetTotalItemCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (upc *UserProgressCreate) check() error {
	if _, ok := upc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserProgress.user_id"`)}
	}
	if v, ok := upc.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	if _, ok := upc.mutation.OverallCompletion(); !ok {
		return &ValidationError{Name: "overall_completion", err: errors.New(`ent: missing required field "UserProgress.overall_completion"`)}
	}
	if _, ok := upc.mutation.PerPathCompletion(); !ok {
		return &ValidationError{Name: "per_path_completion", err: errors.New(`ent: missing required field "UserProgress.per_path_completion"`)}
	}
	if _, ok := upc.mutation.MasteredItemCount(); !ok {
		return &ValidationError{Name: "mastered_item_count", err: errors.New(`ent: missing required field "UserProgress.mastered_item_count"`)}
	}
	if _, ok := upc.mutation.TotalItemCount(); !ok {
		return &ValidationError{Name: "total_item_count", err: errors.New(`ent: missing required field "UserProgress.total_item_count"`)}
	}
	if _, ok := upc.mutation.LastUpdate(); !ok {
		return &ValidationError{Name: "last_update", err: errors.New(`ent: missing required field "UserProgress.last_update"`)}
	}
	return nil
}

func (upc *UserProgressCreate) sqlSave(ctx context.Context) (*UserProgress, error) {
	if err := upc.check(); err != nil {
		return nil, err
	}
	_node, _spec := upc.createSpec()
	if err := sqlgraph.CreateNode(ctx, upc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	upc.mutation.id = &_node.ID
	upc.mutation.done = true
	return _node, nil
}

func (upc *UserProgressCreate) createSpec() (*UserProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &UserProgress{config: upc.config}
		_spec = sqlgraph.NewCreateSpec(userprogress.Table, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	)
	if value, ok := upc.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := upc.mutation.OverallCompletion(); ok {
		_spec.SetField(userprogress.FieldOverallCompletion, field.TypeFloat64, value)
		_node.OverallCompletion = value
	}
	if value, ok := upc.mutation.PerPathCompletion(); ok {
		_spec.SetField(userprogress.FieldPerPathCompletion, field.TypeJSON, value)
		_node.PerPathCompletion = value
	}
	if value, ok := upc.mutation.MasteredItemCount(); ok {
		_spec.SetField(userprogress.FieldMasteredItemCount, field.TypeInt, value)
		_node.MasteredItemCount = value
	}
	if value, ok := upc.mutation.TotalItemCount(); ok {
		_spec.SetField(userprogress.FieldTotalItemCount, field.TypeInt, value)
		_node.TotalItemCount = value
	}
	if value, ok := upc.mutation.LastUpdate(); ok {
		_spec.SetField(userprogress.FieldLastUpdate, field.TypeTime, value)
		_node.LastUpdate = value
	}
	return _node, _spec
}

// UserProgressCreateBulk is the builder for creating many UserProgress entities in bulk.
type UserProgressCreateBulk struct {
	config
	err      error
	builders []*UserProgressCreate
}

// Save creates the UserProgress entities in the database.
func (upcb *UserProgressCreateBulk) Save(ctx context.Context) ([]*UserProgress, error) {
	if upcb.err != nil {
		return nil, upcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(upcb.builders))
	nodes := make([]*UserProgress, len(upcb.builders))
	mutators := make([]Mutator, len(upcb.builders))
	for i := range upcb.builders {
		func(i int, root context.Context) {
			builder := upcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserProgressMutation)
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
					_, err = mutators[i+1].Mutate(root, upcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, upcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, upcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (upcb *UserProgressCreateBulk) SaveX(ctx context.Context) []*UserProgress {
	v, err := upcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (upcb *UserProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := upcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (upcb *UserProgressCreateBulk) ExecX(ctx context.Context) {
	if err := upcb.Exec(ctx); err != nil {
		panic(err)
	}
}
