// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oselot/stitchpath/ent/pathprogress"
	"github.com/oselot/stitchpath/ent/schema"
)

// PathProgressCreate is the builder for creating a PathProgress entity.
type PathProgressCreate struct {
	config
	mutation *PathProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (ppc *PathProgressCreate) SetUserID(s string) *PathProgressCreate {
	ppc.mutation.SetUserID(s)
	return ppc
}

// SetPathID sets the "path_id" field.
func (ppc *PathProgressCreate) SetPathID(s string) *PathProgressCreate {
	ppc.mutation.SetPathID(s)
	return ppc
}

// SetCompletion sets the "completion" field.
func (ppc *PathProgressCreate) SetCompletion(f float64) *PathProgressCreate {
	ppc.mutation.SetCompletion(f)
	return ppc
}

// SetNillableCompletion sets the "completion" field if the given value is not nil.
func (ppc *PathProgressCreate) SetNillableCompletion(f *float64) *PathProgressCreate {
	if f != nil {
		ppc.SetCompletion(*f)
	}
	return ppc
}

// SetPerItemState sets the "per_item_state" field.
func (ppc *PathProgressCreate) SetPerItemState(msd map[string]schema.ItemStateData) *PathProgressCreate {
	ppc.mutation.SetPerItemState(msd)
	return ppc
}

// SetMasteredCount sets the "mastered_count" field.
func (ppc *PathProgressCreate) SetMasteredCount(i int) *PathProgressCreate {
	ppc.mutation.SetMasteredCount(i)
	return ppc
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (ppc *PathProgressCreate) SetNillableMasteredCount(i *int) *PathProgressCreate {
	if i != nil {
		ppc.SetMasteredCount(*i)
	}
	return ppc
}

// SetLastUpdate sets the "last_update" field.
func (ppc *PathProgressCreate) SetLastUpdate(t time.Time) *PathProgressCreate {
	ppc.mutation.SetLastUpdate(t)
	return ppc
}

// SetNillableLastUpdate sets the "last_update" field if the given value is not nil.
func (ppc *PathProgressCreate) SetNillableLastUpdate(t *time.Time) *PathProgressCreate {
	if t != nil {
		ppc.SetLastUpdate(*t)
	}
	return ppc
}

// Mutation returns the PathProgressMutation object of the builder.
func (ppc *PathProgressCreate) Mutation() *PathProgressMutation {
	return ppc.mutation
}

// Save creates the PathProgress in the database.
func (ppc *PathProgressCreate) Save(ctx context.Context) (*PathProgress, error) {
	ppc.defaults()
	return withHooks(ctx, ppc.sqlSave, ppc.mutation, ppc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ppc *PathProgressCreate) SaveX(ctx context.Context) *PathProgress {
	v, err := ppc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ppc *PathProgressCreate) Exec(ctx context.Context) error {
	_, err := ppc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ppc *PathProgressCreate) ExecX(ctx context.Context) {
	if err := ppc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ppc *PathProgressCreate) defaults() {
	if _, ok := ppc.mutation.Completion(); !ok {
		v := pathprogress.DefaultCompletion
		ppc.mutation.SetCompletion(v)
	}
	if _, ok := ppc.mutation.MasteredCount(); !ok {
		v := pathprogress.DefaultMasteredCount
		ppc.mutation.SetMasteredCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ppc *PathProgressCreate) check() error {
	if _, ok := ppc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PathProgress.user_id"`)}
	}
	if v, ok := ppc.mutation.UserID(); ok {
		if err := pathprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PathProgress.user_id": %w`, err)}
		}
	}
	if _, ok := ppc.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "PathProgress.path_id"`)}
	}
	if v, ok := ppc.mutation.PathID(); ok {
		if err := pathprogress.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "PathProgress.path_id": %w`, err)}
		}
	}
	if _, ok := ppc.mutation.Completion(); !ok {
		return &ValidationError{Name: "completion", err: errors.New(`ent: missing required field "PathProgress.completion"`)}
	}
	if _, ok := ppc.mutation.PerItemState(); !ok {
		return &ValidationError{Name: "per_item_state", err: errors.New(`ent: missing required field "PathProgress.per_item_state"`)}
	}
	if _, ok := ppc.mutation.MasteredCount(); !ok {
		return &ValidationError{Name: "mastered_count", err: errors.New(`ent: missing required field "PathProgress.mastered_count"`)}
	}
	return nil
}

func (ppc *PathProgressCreate) sqlSave(ctx context.Context) (*PathProgress, error) {
	if err := ppc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ppc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ppc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ppc.mutation.id = &_node.ID
	ppc.mutation.done = true
	return _node, nil
}

func (ppc *PathProgressCreate) createSpec() (*PathProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &PathProgress{config: ppc.config}
		_spec = sqlgraph.NewCreateSpec(pathprogress.Table, sqlgraph.NewFieldSpec(pathprogress.FieldID, field.TypeInt))
	)
	if value, ok := ppc.mutation.UserID(); ok {
		_spec.SetField(pathprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := ppc.mutation.PathID(); ok {
		_spec.SetField(pathprogress.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := ppc.mutation.Completion(); ok {
		_spec.SetField(pathprogress.FieldCompletion, field.TypeFloat64, value)
		_node.Completion = value
	}
	if value, ok := ppc.mutation.PerItemState(); ok {
		_spec.SetField(pathprogress.FieldPerItemState, field.TypeJSON, value)
		_node.PerItemState = value
	}
	if value, ok := ppc.mutation.MasteredCount(); ok {
		_spec.SetField(pathprogress.FieldMasteredCount, field.TypeInt, value)
		_node.MasteredCount = value
	}
	if value, ok := ppc.mutation.LastUpdate(); ok {
		_spec.SetField(pathprogress.FieldLastUpdate, field.TypeTime, value)
		_node.LastUpdate = value
	}
	return _node, _spec
}

// PathProgressCreateBulk is the builder for creating many PathProgress entities in bulk.
type PathProgressCreateBulk struct {
	config
	err      error
	builders []*PathProgressCreate
}

// Save creates the PathProgress entities in the database.
func (ppcb *PathProgressCreateBulk) Save(ctx context.Context) ([]*PathProgress, error) {
	if ppcb.err != nil {
		return nil, ppcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ppcb.builders))
	nodes := make([]*PathProgress, len(ppcb.builders))
	mutators := make([]Mutator, len(ppcb.builders))
	for i := range ppcb.builders {
		func(i int, root context.Context) {
			builder := ppcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathProgressMutation)
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
					_, err = mutators[i+1].Mutate(root, ppcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ppcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ppcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ppcb *PathProgressCreateBulk) SaveX(ctx context.Context) []*PathProgress {
	v, err := ppcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ppcb *PathProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := ppcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ppcb *PathProgressCreateBulk) ExecX(ctx context.Context) {
	if err := ppcb.Exec(ctx); err != nil {
		panic(err)
	}
}
