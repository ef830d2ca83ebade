// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oselot/stitchpath/ent/predicate"
	"github.com/oselot/stitchpath/ent/userprogress"
)

// UserProgressUpdate is the builder for updating UserProgress entities.
type UserProgressUpdate struct {
	config
	hooks    []Hook
	mutation *UserProgressMutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (upu *UserProgressUpdate) Where(ps ...predicate.UserProgress) *UserProgressUpdate {
	upu.mutation.Where(ps...)
	return upu
}

// SetUserID sets the "user_id" field.
func (upu *UserProgressUpdate) SetUserID(s string) *UserProgressUpdate {
	upu.mutation.SetUserID(s)
	return upu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (upu *UserProgressUpdate) SetNillableUserID(s *string) *UserProgressUpdate {
	if s != nil {
		upu.SetUserID(*s)
	}
	return upu
}

// SetOverallCompletion sets the "overall_completion" field.
func (upu *UserProgressUpdate) SetOverallCompletion(f float64) *UserProgressUpdate {
	upu.mutation.ResetOverallCompletion()
	upu.mutation.SetOverallCompletion(f)
	return upu
}

// SetNillableOverallCompletion sets the "overall_completion" field if the given value is not nil.
func (upu *UserProgressUpdate) SetNillableOverallCompletion(f *float64) *UserProgressUpdate {
	if f != nil {
		upu.SetOverallCompletion(*f)
	}
	return upu
}

// AddOverallCompletion adds f to the "overall_completion" field.
func (upu *UserProgressUpdate) AddOverallCompletion(f float64) *UserProgressUpdate {
	upu.mutation.AddOverallCompletion(f)
	return upu
}

// SetPerPathCompletion sets the "per_path_completion" field.
func (upu *UserProgressUpdate) SetPerPathCompletion(m map[string]float64) *UserProgressUpdate {
	upu.mutation.SetPerPathCompletion(m)
	return upu
}

// SetMasteredItemCount sets the "mastered_item_count" field.
func (upu *UserProgressUpdate) SetMasteredItemCount(i int) *UserProgressUpdate {
	upu.mutation.ResetMasteredItemCount()
	upu.mutation.SetMasteredItemCount(i)
	return upu
}

// SetNillableMasteredItemCount sets the "mastered_item_count" field if the given value is not nil.
func (upu *UserProgressUpdate) SetNillableMasteredItemCount(i *int) *UserProgressUpdate {
	if i != nil {
		upu.SetMasteredItemCount(*i)
	}
	return upu
}

// AddMasteredItemCount adds i to the "mastered_item_count" field.
func (upu *UserProgressUpdate) AddMasteredItemCount(i int) *UserProgressUpdate {
	upu.mutation.AddMasteredItemCount(i)
	return upu
}

// SetTotalItemCount sets the "total_item_count" field.
func (upu *UserProgressUpdate) SetTotalItemCount(i int) *UserProgressUpdate {
	upu.mutation.ResetTotalItemCount()
	upu.mutation.SetTotalItemCount(i)
	return upu
}

// SetNillableTotalItemCount sets the "total_item_count" field if the given value is not nil.
func (upu *UserProgressUpdate) SetNillableTotalItemCount(i *int) *UserProgressUpdate {
	if i != nil {
		upu.SetTotalItemCount(*i)
	}
	return upu
}

// AddTotalItemCount adds i to the "total_item_count" field.
func (upu *UserProgressUpdate) AddTotalItemCount(i int) *UserProgressUpdate {
	upu.mutation.AddTotalItemCount(i)
	return upu
}

// SetLastUpdate sets the "last_update" field.
func (upu *UserProgressUpdate) SetLastUpdate(t time.Time) *UserProgressUpdate {
	upu.mutation.SetLastUpdate(t)
	return upu
}

// SetNillableLastUpdate sets the "last_update" field if the given value is not nil.
func (upu *UserProgressUpdate) SetNillableLastUpdate(t *time.Time) *UserProgressUpdate {
	if t != nil {
		upu.SetLastUpdate(*t)
	}
	return upu
}

// Mutation returns the UserProgressMutation object of the builder.
func (upu *UserProgressUpdate) Mutation() *UserProgressMutation {
	return upu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (upu *UserProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, upu.sqlSave, upu.mutation, upu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (upu *UserProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := upu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (upu *UserProgressUpdate) Exec(ctx context.Context) error {
	_, err := upu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (upu *UserProgressUpdate) ExecX(ctx context.Context) {
	if err := upu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (upu *UserProgressUpdate) check() error {
	if v, ok := upu.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	return nil
}

func (upu *UserProgressUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := upu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	if ps := upu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := upu.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := upu.mutation.OverallCompletion(); ok {
		_spec.SetField(userprogress.FieldOverallCompletion, field.TypeFloat64, value)
	}
	if value, ok := upu.mutation.AddedOverallCompletion(); ok {
		_spec.AddField(userprogress.FieldOverallCompletion, field.TypeFloat64, value)
	}
	if value, ok := upu.mutation.PerPathCompletion(); ok {
		_spec.SetField(userprogress.FieldPerPathCompletion, field.TypeJSON, value)
	}
	if value, ok := upu.mutation.MasteredItemCount(); ok {
		_spec.SetField(userprogress.FieldMasteredItemCount, field.TypeInt, value)
	}
	if value, ok := upu.mutation.AddedMasteredItemCount(); ok {
		_spec.AddField(userprogress.FieldMasteredItemCount, field.TypeInt, value)
	}
	if value, ok := upu.mutation.TotalItemCount(); ok {
		_spec.SetField(userprogress.FieldTotalItemCount, field.TypeInt, value)
	}
	if value, ok := upu.mutation.AddedTotalItemCount(); ok {
		_spec.AddField(userprogress.FieldTotalItemCount, field.TypeInt, value)
	}
	if value, ok := upu.mutation.LastUpdate(); ok {
		_spec.SetField(userprogress.FieldLastUpdate, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, upu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	upu.mutation.done = true
	return n, nil
}

// UserProgressUpdateOne is the builder for updating a single UserProgress entity.
type UserProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProgressMutation
}

// SetUserID sets the "user_id" field.
func (upuo *UserProgressUpdateOne) SetUserID(s string) *UserProgressUpdateOne {
	upuo.mutation.SetUserID(s)
	return upuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (upuo *UserProgressUpdateOne) SetNillableUserID(s *string) *UserProgressUpdateOne {
	if s != nil {
		upuo.SetUserID(*s)
	}
	return upuo
}

// SetOverallCompletion sets the "overall_completion" field.
func (upuo *UserProgressUpdateOne) SetOverallCompletion(f float64) *UserProgressUpdateOne {
	upuo.mutation.ResetOverallCompletion()
	upuo.mutation.SetOverallCompletion(f)
	return upuo
}

// SetNillableOverallCompletion sets the "overall_completion" field if the given value is not nil.
func (upuo *UserProgressUpdateOne) SetNillableOverallCompletion(f *float64) *UserProgressUpdateOne {
	if f != nil {
		upuo.SetOverallCompletion(*f)
	}
	return upuo
}

// AddOverallCompletion adds f to the "overall_completion" field.
func (upuo *UserProgressUpdateOne) AddOverallCompletion(f float64) *UserProgressUpdateOne {
	upuo.mutation.AddOverallCompletion(f)
	return upuo
}

// SetPerPathCompletion sets the "per_path_completion" field.
func (upuo *UserProgressUpdateOne) SetPerPathCompletion(m map[string]float64) *UserProgressUpdateOne {
	upuo.mutation.SetPerPathCompletion(m)
	return upuo
}

// SetMasteredItemCount sets the "mastered_item_count" field.
func (upuo *UserProgressUpdateOne) SetMasteredItemCount(i int) *UserProgressUpdateOne {
	upuo.mutation.ResetMasteredItemCount()
	upuo.mutation.SetMasteredItemCount(i)
	return upuo
}

// SetNillableMasteredItemCount sets the "mastered_item_count" field if the given value is not nil.
func (upuo *UserProgressUpdateOne) SetNillableMasteredItemCount(i *int) *UserProgressUpdateOne {
	if i != nil {
		upuo.SetMasteredItemCount(*i)
	}
	return upuo
}

// AddMasteredItemCount adds i to the "mastered_item_count" field.
func (upuo *UserProgressUpdateOne) AddMasteredItemCount(i int) *UserProgressUpdateOne {
	upuo.mutation.AddMasteredItemCount(i)
	return upuo
}

// SetTotalItemCount sets the "total_item_count" field.
func (upuo *UserProgressUpdateOne) SetTotalItemCount(i int) *UserProgressUpdateOne {
	upuo.mutation.ResetTotalItemCount()
	upuo.mutation.SetTotalItemCount(i)
	return upuo
}

// SetNillableTotalItemCount sets the "total_item_count" field if the given value is not nil.
func (upuo *UserProgressUpdateOne) SetNillableTotalItemCount(i *int) *UserProgressUpdateOne {
	if i != nil {
		upuo.SetTotalItemCount(*i)
	}
	return upuo
}

// AddTotalItemCount adds i to the "total_item_count" field.
func (upuo *UserProgressUpdateOne) AddTotalItemCount(i int) *UserProgressUpdateOne {
	upuo.mutation.AddTotalItemCount(i)
	return upuo
}

// SetLastUpdate sets the "last_update" field.
func (upuo *UserProgressUpdateOne) SetLastUpdate(t time.Time) *UserProgressUpdateOne {
	upuo.mutation.SetLastUpdate(t)
	return upuo
}

// SetNillableLastUpdate sets the "last_update" field if the given value is not nil.
func (upuo *UserProgressUpdateOne) SetNillableLastUpdate(t *time.Time) *UserProgressUpdateOne {
	if t != nil {
		upuo.SetLastUpdate(*t)
	}
	return upuo
}

// Mutation returns the UserProgressMutation object of the builder.
func (upuo *UserProgressUpdateOne) Mutation() *UserProgressMutation {
	return upuo.mutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (upuo *UserProgressUpdateOne) Where(ps ...predicate.UserProgress) *UserProgressUpdateOne {
	upuo.mutation.Where(ps...)
	return upuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (upuo *UserProgressUpdateOne) Select(field string, fields ...string) *UserProgressUpdateOne {
	upuo.fields = append([]string{field}, fields...)
	return upuo
}

// Save executes the query and returns the updated UserProgress entity.
func (upuo *UserProgressUpdateOne) Save(ctx context.Context) (*UserProgress, error) {
	return withHooks(ctx, upuo.sqlSave, upuo.mutation, upuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (upuo *UserProgressUpdateOne) SaveX(ctx context.Context) *UserProgress {
	node, err := upuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (upuo *UserProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := upuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (upuo *UserProgressUpdateOne) ExecX(ctx context.Context) {
	if err := upuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (upuo *UserProgressUpdateOne) check() error {
	if v, ok := upuo.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	return nil
}

func (upuo *UserProgressUpdateOne) sqlSave(ctx context.Context) (_node *UserProgress, err error) {
	if err := upuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	id, ok := upuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := upuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprogress.FieldID)
		for _, f := range fields {
			if !userprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := upuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := upuo.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := upuo.mutation.OverallCompletion(); ok {
		_spec.SetField(userprogress.FieldOverallCompletion, field.TypeFloat64, value)
	}
	if value, ok := upuo.mutation.AddedOverallCompletion(); ok {
		_spec.AddField(userprogress.FieldOverallCompletion, field.TypeFloat64, value)
	}
	if value, ok := upuo.mutation.PerPathCompletion(); ok {
		_spec.SetField(userprogress.FieldPerPathCompletion, field.TypeJSON, value)
	}
	if value, ok := upuo.mutation.MasteredItemCount(); ok {
		_spec.SetField(userprogress.FieldMasteredItemCount, field.TypeInt, value)
	}
	if value, ok := upuo.mutation.AddedMasteredItemCount(); ok {
		_spec.AddField(userprogress.FieldMasteredItemCount, field.TypeInt, value)
	}
	if value, ok := upuo.mutation.TotalItemCount(); ok {
		_spec.SetField(userprogress.FieldTotalItemCount, field.TypeInt, value)
	}
	if value, ok := upuo.mutation.AddedTotalItemCount(); ok {
		_spec.AddField(userprogress.FieldTotalItemCount, field.TypeInt, value)
	}
	if value, ok := upuo.mutation.LastUpdate(); ok {
		_spec.SetField(userprogress.FieldLastUpdate, field.TypeTime, value)
	}
	_node = &UserProgress{config: upuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, upuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	upuo.mutation.done = true
	return _node, nil
}
