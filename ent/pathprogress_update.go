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
	"github.com/oselot/stitchpath/ent/pathprogress"
	"github.com/oselot/stitchpath/ent/predicate"
	"github.com/oselot/stitchpath/ent/schema"
)

// PathProgressUpdate is the builder for updating PathProgress entities.
type PathProgressUpdate struct {
	config
	hooks    []Hook
	mutation *PathProgressMutation
}

// Where appends a list predicates to the PathProgressUpdate builder.
func (ppu *PathProgressUpdate) Where(ps ...predicate.PathProgress) *PathProgressUpdate {
	ppu.mutation.Where(ps...)
	return ppu
}

// SetUserID sets the "user_id" field.
func (ppu *PathProgressUpdate) SetUserID(s string) *PathProgressUpdate {
	ppu.mutation.SetUserID(s)
	return ppu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ppu *PathProgressUpdate) SetNillableUserID(s *string) *PathProgressUpdate {
	if s != nil {
		ppu.SetUserID(*s)
	}
	return ppu
}

// SetPathID sets the "path_id" field.
func (ppu *PathProgressUpdate) SetPathID(s string) *PathProgressUpdate {
	ppu.mutation.SetPathID(s)
	return ppu
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (ppu *PathProgressUpdate) SetNillablePathID(s *string) *PathProgressUpdate {
	if s != nil {
		ppu.SetPathID(*s)
	}
	return ppu
}

// SetCompletion sets the "completion" field.
func (ppu *PathProgressUpdate) SetCompletion(f float64) *PathProgressUpdate {
	ppu.mutation.ResetCompletion()
	ppu.mutation.SetCompletion(f)
	return ppu
}

// SetNillableCompletion sets the "completion" field if the given value is not nil.
func (ppu *PathProgressUpdate) SetNillableCompletion(f *float64) *PathProgressUpdate {
	if f != nil {
		ppu.SetCompletion(*f)
	}
	return ppu
}

// AddCompletion adds f to the "completion" field.
func (ppu *PathProgressUpdate) AddCompletion(f float64) *PathProgressUpdate {
	ppu.mutation.AddCompletion(f)
	return ppu
}

// SetPerItemState sets the "per_item_state" field.
func (ppu *PathProgressUpdate) SetPerItemState(msd map[string]schema.ItemStateData) *PathProgressUpdate {
	ppu.mutation.SetPerItemState(msd)
	return ppu
}

// SetMasteredCount sets the "mastered_count" field.
func (ppu *PathProgressUpdate) SetMasteredCount(i int) *PathProgressUpdate {
	ppu.mutation.ResetMasteredCount()
	ppu.mutation.SetMasteredCount(i)
	return ppu
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (ppu *PathProgressUpdate) SetNillableMasteredCount(i *int) *PathProgressUpdate {
	if i != nil {
		ppu.SetMasteredCount(*i)
	}
	return ppu
}

// AddMasteredCount adds i to the "mastered_count" field.
func (ppu *PathProgressUpdate) AddMasteredCount(i int) *PathProgressUpdate {
	ppu.mutation.AddMasteredCount(i)
	return ppu
}

// SetLastUpdate sets the "last_update" field.
func (ppu *PathProgressUpdate) SetLastUpdate(t time.Time) *PathProgressUpdate {
	ppu.mutation.SetLastUpdate(t)
	return ppu
}

// SetNillableLastUpdate sets the "last_update" field if the given value is not nil.
func (ppu *PathProgressUpdate) SetNillableLastUpdate(t *time.Time) *PathProgressUpdate {
	if t != nil {
		ppu.SetLastUpdate(*t)
	}
	return ppu
}

// ClearLastUpdate clears the value of the "last_update" field.
func (ppu *PathProgressUpdate) ClearLastUpdate() *PathProgressUpdate {
	ppu.mutation.ClearLastUpdate()
	return ppu
}

// Mutation returns the PathProgressMutation object of the builder.
func (ppu *PathProgressUpdate) Mutation() *PathProgressMutation {
	return ppu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ppu *PathProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ppu.sqlSave, ppu.mutation, ppu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ppu *PathProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := ppu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ppu *PathProgressUpdate) Exec(ctx context.Context) error {
	_, err := ppu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ppu *PathProgressUpdate) ExecX(ctx context.Context) {
	if err := ppu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ppu *PathProgressUpdate) check() error {
	if v, ok := ppu.mutation.UserID(); ok {
		if err := pathprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PathProgress.user_id": %w`, err)}
		}
	}
	if v, ok := ppu.mutation.PathID(); ok {
		if err := pathprogress.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "PathProgress.path_id": %w`, err)}
		}
	}
	return nil
}

func (ppu *PathProgressUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ppu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathprogress.Table, pathprogress.Columns, sqlgraph.NewFieldSpec(pathprogress.FieldID, field.TypeInt))
	if ps := ppu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ppu.mutation.UserID(); ok {
		_spec.SetField(pathprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := ppu.mutation.PathID(); ok {
		_spec.SetField(pathprogress.FieldPathID, field.TypeString, value)
	}
	if value, ok := ppu.mutation.Completion(); ok {
		_spec.SetField(pathprogress.FieldCompletion, field.TypeFloat64, value)
	}
	if value, ok := ppu.mutation.AddedCompletion(); ok {
		_spec.AddField(pathprogress.FieldCompletion, field.TypeFloat64, value)
	}
	if value, ok := ppu.mutation.PerItemState(); ok {
		_spec.SetField(pathprogress.FieldPerItemState, field.TypeJSON, value)
	}
	if value, ok := ppu.mutation.MasteredCount(); ok {
		_spec.SetField(pathprogress.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := ppu.mutation.AddedMasteredCount(); ok {
		_spec.AddField(pathprogress.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := ppu.mutation.LastUpdate(); ok {
		_spec.SetField(pathprogress.FieldLastUpdate, field.TypeTime, value)
	}
	if ppu.mutation.LastUpdateCleared() {
		_spec.ClearField(pathprogress.FieldLastUpdate, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ppu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ppu.mutation.done = true
	return n, nil
}

// PathProgressUpdateOne is the builder for updating a single PathProgress entity.
type PathProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathProgressMutation
}

// SetUserID sets the "user_id" field.
func (ppuo *PathProgressUpdateOne) SetUserID(s string) *PathProgressUpdateOne {
	ppuo.mutation.SetUserID(s)
	return ppuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ppuo *PathProgressUpdateOne) SetNillableUserID(s *string) *PathProgressUpdateOne {
	if s != nil {
		ppuo.SetUserID(*s)
	}
	return ppuo
}

// SetPathID sets the "path_id" field.
func (ppuo *PathProgressUpdateOne) SetPathID(s string) *PathProgressUpdateOne {
	ppuo.mutation.SetPathID(s)
	return ppuo
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (ppuo *PathProgressUpdateOne) SetNillablePathID(s *string) *PathProgressUpdateOne {
	if s != nil {
		ppuo.SetPathID(*s)
	}
	return ppuo
}

// SetCompletion sets the "completion" field.
func (ppuo *PathProgressUpdateOne) SetCompletion(f float64) *PathProgressUpdateOne {
	ppuo.mutation.ResetCompletion()
	ppuo.mutation.SetCompletion(f)
	return ppuo
}

// SetNillableCompletion sets the "completion" field if the given value is not nil.
func (ppuo *PathProgressUpdateOne) SetNillableCompletion(f *float64) *PathProgressUpdateOne {
	if f != nil {
		ppuo.SetCompletion(*f)
	}
	return ppuo
}

// AddCompletion adds f to the "completion" field.
func (ppuo *PathProgressUpdateOne) AddCompletion(f float64) *PathProgressUpdateOne {
	ppuo.mutation.AddCompletion(f)
	return ppuo
}

// SetPerItemState sets the "per_item_state" field.
func (ppuo *PathProgressUpdateOne) SetPerItemState(msd map[string]schema.ItemStateData) *PathProgressUpdateOne {
	ppuo.mutation.SetPerItemState(msd)
	return ppuo
}

// SetMasteredCount sets the "mastered_count" field.
func (ppuo *PathProgressUpdateOne) SetMasteredCount(i int) *PathProgressUpdateOne {
	ppuo.mutation.ResetMasteredCount()
	ppuo.mutation.SetMasteredCount(i)
	return ppuo
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (ppuo *PathProgressUpdateOne) SetNillableMasteredCount(i *int) *PathProgressUpdateOne {
	if i != nil {
		ppuo.SetMasteredCount(*i)
	}
	return ppuo
}

// AddMasteredCount adds i to the "mastered_count" field.
func (ppuo *PathProgressUpdateOne) AddMasteredCount(i int) *PathProgressUpdateOne {
	ppuo.mutation.AddMasteredCount(i)
	return ppuo
}

// SetLastUpdate sets the "last_update" field.
func (ppuo *PathProgressUpdateOne) SetLastUpdate(t time.Time) *PathProgressUpdateOne {
	ppuo.mutation.SetLastUpdate(t)
	return ppuo
}

// SetNillableLastUpdate sets the "last_update" field if the given value is not nil.
func (ppuo *PathProgressUpdateOne) SetNillableLastUpdate(t *time.Time) *PathProgressUpdateOne {
	if t != nil {
		ppuo.SetLastUpdate(*t)
	}
	return ppuo
}

// ClearLastUpdate clears the value of the "last_update" field.
func (ppuo *PathProgressUpdateOne) ClearLastUpdate() *PathProgressUpdateOne {
	ppuo.mutation.ClearLastUpdate()
	return ppuo
}

// Mutation returns the PathProgressMutation object of the builder.
func (ppuo *PathProgressUpdateOne) Mutation() *PathProgressMutation {
	return ppuo.mutation
}

// Where appends a list predicates to the PathProgressUpdate builder.
func (ppuo *PathProgressUpdateOne) Where(ps ...predicate.PathProgress) *PathProgressUpdateOne {
	ppuo.mutation.Where(ps...)
	return ppuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ppuo *PathProgressUpdateOne) Select(field string, fields ...string) *PathProgressUpdateOne {
	ppuo.fields = append([]string{field}, fields...)
	return ppuo
}

// Save executes the query and returns the updated PathProgress entity.
func (ppuo *PathProgressUpdateOne) Save(ctx context.Context) (*PathProgress, error) {
	return withHooks(ctx, ppuo.sqlSave, ppuo.mutation, ppuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ppuo *PathProgressUpdateOne) SaveX(ctx context.Context) *PathProgress {
	node, err := ppuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ppuo *PathProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := ppuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ppuo *PathProgressUpdateOne) ExecX(ctx context.Context) {
	if err := ppuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ppuo *PathProgressUpdateOne) check() error {
	if v, ok := ppuo.mutation.UserID(); ok {
		if err := pathprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PathProgress.user_id": %w`, err)}
		}
	}
	if v, ok := ppuo.mutation.PathID(); ok {
		if err := pathprogress.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "PathProgress.path_id": %w`, err)}
		}
	}
	return nil
}

func (ppuo *PathProgressUpdateOne) sqlSave(ctx context.Context) (_node *PathProgress, err error) {
	if err := ppuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathprogress.Table, pathprogress.Columns, sqlgraph.NewFieldSpec(pathprogress.FieldID, field.TypeInt))
	id, ok := ppuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ppuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathprogress.FieldID)
		for _, f := range fields {
			if !pathprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ppuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ppuo.mutation.UserID(); ok {
		_spec.SetField(pathprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := ppuo.mutation.PathID(); ok {
		_spec.SetField(pathprogress.FieldPathID, field.TypeString, value)
	}
	if value, ok := ppuo.mutation.Completion(); ok {
		_spec.SetField(pathprogress.FieldCompletion, field.TypeFloat64, value)
	}
	if value, ok := ppuo.mutation.AddedCompletion(); ok {
		_spec.AddField(pathprogress.FieldCompletion, field.TypeFloat64, value)
	}
	if value, ok := ppuo.mutation.PerItemState(); ok {
		_spec.SetField(pathprogress.FieldPerItemState, field.TypeJSON, value)
	}
	if value, ok := ppuo.mutation.MasteredCount(); ok {
		_spec.SetField(pathprogress.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := ppuo.mutation.AddedMasteredCount(); ok {
		_spec.AddField(pathprogress.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := ppuo.mutation.LastUpdate(); ok {
		_spec.SetField(pathprogress.FieldLastUpdate, field.TypeTime, value)
	}
	if ppuo.mutation.LastUpdateCleared() {
		_spec.ClearField(pathprogress.FieldLastUpdate, field.TypeTime)
	}
	_node = &PathProgress{config: ppuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ppuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ppuo.mutation.done = true
	return _node, nil
}
