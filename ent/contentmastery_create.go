// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oselot/stitchpath/ent/contentmastery"
)

// ContentMasteryCreate is the builder for creating a ContentMastery entity.
type ContentMasteryCreate struct {
	config
	mutation *ContentMasteryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (cmc *ContentMasteryCreate) SetUserID(s string) *ContentMasteryCreate {
	cmc.mutation.SetUserID(s)
	return cmc
}

// SetContentID sets the "content_id" field.
func (cmc *ContentMasteryCreate) SetContentID(s string) *ContentMasteryCreate {
	cmc.mutation.SetContentID(s)
	return cmc
}

// SetMasteryLevel sets the "mastery_level" field.
func (cmc *ContentMasteryCreate) SetMasteryLevel(f float64) *ContentMasteryCreate {
	cmc.mutation.SetMasteryLevel(f)
	return cmc
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (cmc *ContentMasteryCreate) SetNillableMasteryLevel(f *float64) *ContentMasteryCreate {
	if f != nil {
		cmc.SetMasteryLevel(*f)
	}
	return cmc
}

// SetAttemptCount sets the "attempt_count" field.
func (cmc *ContentMasteryCreate) SetAttemptCount(i int) *ContentMasteryCreate {
	cmc.mutation.SetAttemptCount(i)
	return cmc
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (cmc *ContentMasteryCreate) SetNillableAttemptCount(i *int) *ContentMasteryCreate {
	if i != nil {
		cmc.SetAttemptCount(*i)
	}
	return cmc
}

// SetLastAttemptTime sets the "last_attempt_time" field.
func (cmc *ContentMasteryCreate) SetLastAttemptTime(t time.Time) *ContentMasteryCreate {
	cmc.mutation.SetLastAttemptTime(t)
	return cmc
}

// SetNillableLastAttemptTime sets the "last_attempt_time" field if the given value is not nil.
func (cmc *ContentMasteryCreate) SetNillableLastAttemptTime(t *time.Time) *ContentMasteryCreate {
	if t != nil {
		cmc.SetLastAttemptTime(*t)
	}
	return cmc
}

// SetNextReviewTime sets the "next_review_time" field.
func (cmc *ContentMasteryCreate) SetNextReviewTime(t time.Time) *ContentMasteryCreate {
	cmc.mutation.SetNextReviewTime(t)
	return cmc
}

// SetNillableNextReviewTime sets the "next_review_time" field if the given value is not nil.
func (cmc *ContentMasteryCreate) SetNillableNextReviewTime(t *time.Time) *ContentMasteryCreate {
	if t != nil {
		cmc.SetNextReviewTime(*t)
	}
	return cmc
}

// Mutation returns the ContentMasteryMutation object of the builder.
func (cmc *ContentMasteryCreate) Mutation() *ContentMasteryMutation {
	return cmc.mutation
}

// Save creates the ContentMastery in the database.
func (cmc *ContentMasteryCreate) Save(ctx context.Context) (*ContentMastery, error) {
	cmc.defaults()
	return withHooks(ctx, cmc.sqlSave, cmc.mutation, cmc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cmc *ContentMasteryCreate) SaveX(ctx context.Context) *ContentMastery {
	v, err := cmc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cmc *ContentMasteryCreate) Exec(ctx context.Context) error {
	_, err := cmc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cmc *ContentMasteryCreate) ExecX(ctx context.Context) {
	if err := cmc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cmc *ContentMasteryCreate) defaults() {
	if _, ok := cmc.mutation.MasteryLevel(); !ok {
		v := contentmastery.DefaultMasteryLevel
		cmc.mutation.SetMasteryLevel(v)
	}
	if _, ok := cmc.mutation.AttemptCount(); !ok {
		v := contentmastery.DefaultAttemptCount
		cmc.mutation.SetAttemptCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cmc *ContentMasteryCreate) check() error {
	if _, ok := cmc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ContentMastery.user_id"`)}
	}
	if v, ok := cmc.mutation.UserID(); ok {
		if err := contentmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ContentMastery.user_id": %w`, err)}
		}
	}
	if _, ok := cmc.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "ContentMastery.content_id"`)}
	}
	if v, ok := cmc.mutation.ContentID(); ok {
		if err := contentmastery.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "ContentMastery.content_id": %w`, err)}
		}
	}
	if _, ok := cmc.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "ContentMastery.mastery_level"`)}
	}
	if _, ok := cmc.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "ContentMastery.attempt_count"`)}
	}
	return nil
}

func (cmc *ContentMasteryCreate) sqlSave(ctx context.Context) (*ContentMastery, error) {
	if err := cmc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cmc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cmc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	cmc.mutation.id = &_node.ID
	cmc.mutation.done = true
	return _node, nil
}

func (cmc *ContentMasteryCreate) createSpec() (*ContentMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentMastery{config: cmc.config}
		_spec = sqlgraph.NewCreateSpec(contentmastery.Table, sqlgraph.NewFieldSpec(contentmastery.FieldID, field.TypeInt))
	)
	if value, ok := cmc.mutation.UserID(); ok {
		_spec.SetField(contentmastery.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := cmc.mutation.ContentID(); ok {
		_spec.SetField(contentmastery.FieldContentID, field.TypeString, value)
		_node.ContentID = value
	}
	if value, ok := cmc.mutation.MasteryLevel(); ok {
		_spec.SetField(contentmastery.FieldMasteryLevel, field.TypeFloat64, value)
		_node.MasteryLevel = value
	}
	if value, ok := cmc.mutation.AttemptCount(); ok {
		_spec.SetField(contentmastery.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := cmc.mutation.LastAttemptTime(); ok {
		_spec.SetField(contentmastery.FieldLastAttemptTime, field.TypeTime, value)
		_node.LastAttemptTime = value
	}
	if value, ok := cmc.mutation.NextReviewTime(); ok {
		_spec.SetField(contentmastery.FieldNextReviewTime, field.TypeTime, value)
		_node.NextReviewTime = value
	}
	return _node, _spec
}

// ContentMasteryCreateBulk is the builder for creating many ContentMastery entities in bulk.
type ContentMasteryCreateBulk struct {
	config
	err      error
	builders []*ContentMasteryCreate
}

// Save creates the ContentMastery entities in the database.
func (cmcb *ContentMasteryCreateBulk) Save(ctx context.Context) ([]*ContentMastery, error) {
	if cmcb.err != nil {
		return nil, cmcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cmcb.builders))
	nodes := make([]*ContentMastery, len(cmcb.builders))
	mutators := make([]Mutator, len(cmcb.builders))
	for i := range cmcb.builders {
		func(i int, root context.Context) {
			builder := cmcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentMasteryMutation)
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
					_, err = mutators[i+1].Mutate(root, cmcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cmcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cmcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cmcb *ContentMasteryCreateBulk) SaveX(ctx context.Context) []*ContentMastery {
	v, err := cmcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cmcb *ContentMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := cmcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cmcb *ContentMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := cmcb.Exec(ctx); err != nil {
		panic(err)
	}
}
