// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oselot/stitchpath/ent/masteryevent"
	"github.com/oselot/stitchpath/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (meu *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	meu.mutation.Where(ps...)
	return meu
}

// SetUserID sets the "user_id" field.
func (meu *MasteryEventUpdate) SetUserID(s string) *MasteryEventUpdate {
	meu.mutation.SetUserID(s)
	return meu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableUserID(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetUserID(*s)
	}
	return meu
}

// SetContentID sets the "content_id" field.
func (meu *MasteryEventUpdate) SetContentID(s string) *MasteryEventUpdate {
	meu.mutation.SetContentID(s)
	return meu
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableContentID(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetContentID(*s)
	}
	return meu
}

// SetPathID sets the "path_id" field.
func (meu *MasteryEventUpdate) SetPathID(s string) *MasteryEventUpdate {
	meu.mutation.SetPathID(s)
	return meu
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillablePathID(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetPathID(*s)
	}
	return meu
}

// SetFromBand sets the "from_band" field.
func (meu *MasteryEventUpdate) SetFromBand(s string) *MasteryEventUpdate {
	meu.mutation.SetFromBand(s)
	return meu
}

// SetNillableFromBand sets the "from_band" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableFromBand(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetFromBand(*s)
	}
	return meu
}

// SetToBand sets the "to_band" field.
func (meu *MasteryEventUpdate) SetToBand(s string) *MasteryEventUpdate {
	meu.mutation.SetToBand(s)
	return meu
}

// SetNillableToBand sets the "to_band" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableToBand(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetToBand(*s)
	}
	return meu
}

// SetMasteryLevel sets the "mastery_level" field.
func (meu *MasteryEventUpdate) SetMasteryLevel(f float64) *MasteryEventUpdate {
	meu.mutation.ResetMasteryLevel()
	meu.mutation.SetMasteryLevel(f)
	return meu
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableMasteryLevel(f *float64) *MasteryEventUpdate {
	if f != nil {
		meu.SetMasteryLevel(*f)
	}
	return meu
}

// AddMasteryLevel adds f to the "mastery_level" field.
func (meu *MasteryEventUpdate) AddMasteryLevel(f float64) *MasteryEventUpdate {
	meu.mutation.AddMasteryLevel(f)
	return meu
}

// SetSessionID sets the "session_id" field.
func (meu *MasteryEventUpdate) SetSessionID(s string) *MasteryEventUpdate {
	meu.mutation.SetSessionID(s)
	return meu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableSessionID(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetSessionID(*s)
	}
	return meu
}

// ClearSessionID clears the value of the "session_id" field.
func (meu *MasteryEventUpdate) ClearSessionID() *MasteryEventUpdate {
	meu.mutation.ClearSessionID()
	return meu
}

// Mutation returns the MasteryEventMutation object of the builder.
func (meu *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return meu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (meu *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, meu.sqlSave, meu.mutation, meu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (meu *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := meu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (meu *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := meu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (meu *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := meu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (meu *MasteryEventUpdate) check() error {
	if v, ok := meu.mutation.UserID(); ok {
		if err := masteryevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.user_id": %w`, err)}
		}
	}
	if v, ok := meu.mutation.ContentID(); ok {
		if err := masteryevent.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.content_id": %w`, err)}
		}
	}
	if v, ok := meu.mutation.PathID(); ok {
		if err := masteryevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.path_id": %w`, err)}
		}
	}
	if v, ok := meu.mutation.FromBand(); ok {
		if err := masteryevent.FromBandValidator(v); err != nil {
			return &ValidationError{Name: "from_band", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_band": %w`, err)}
		}
	}
	if v, ok := meu.mutation.ToBand(); ok {
		if err := masteryevent.ToBandValidator(v); err != nil {
			return &ValidationError{Name: "to_band", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_band": %w`, err)}
		}
	}
	return nil
}

func (meu *MasteryEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := meu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := meu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := meu.mutation.UserID(); ok {
		_spec.SetField(masteryevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := meu.mutation.ContentID(); ok {
		_spec.SetField(masteryevent.FieldContentID, field.TypeString, value)
	}
	if value, ok := meu.mutation.PathID(); ok {
		_spec.SetField(masteryevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := meu.mutation.FromBand(); ok {
		_spec.SetField(masteryevent.FieldFromBand, field.TypeString, value)
	}
	if value, ok := meu.mutation.ToBand(); ok {
		_spec.SetField(masteryevent.FieldToBand, field.TypeString, value)
	}
	if value, ok := meu.mutation.MasteryLevel(); ok {
		_spec.SetField(masteryevent.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := meu.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(masteryevent.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := meu.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if meu.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, meu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	meu.mutation.done = true
	return n, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetUserID sets the "user_id" field.
func (meuo *MasteryEventUpdateOne) SetUserID(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetUserID(s)
	return meuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableUserID(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetUserID(*s)
	}
	return meuo
}

// SetContentID sets the "content_id" field.
func (meuo *MasteryEventUpdateOne) SetContentID(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetContentID(s)
	return meuo
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableContentID(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetContentID(*s)
	}
	return meuo
}

// SetPathID sets the "path_id" field.
func (meuo *MasteryEventUpdateOne) SetPathID(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetPathID(s)
	return meuo
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillablePathID(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetPathID(*s)
	}
	return meuo
}

// SetFromBand sets the "from_band" field.
func (meuo *MasteryEventUpdateOne) SetFromBand(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetFromBand(s)
	return meuo
}

// SetNillableFromBand sets the "from_band" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableFromBand(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetFromBand(*s)
	}
	return meuo
}

// SetToBand sets the "to_band" field.
func (meuo *MasteryEventUpdateOne) SetToBand(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetToBand(s)
	return meuo
}

// SetNillableToBand sets the "to_band" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableToBand(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetToBand(*s)
	}
	return meuo
}

// SetMasteryLevel sets the "mastery_level" field.
func (meuo *MasteryEventUpdateOne) SetMasteryLevel(f float64) *MasteryEventUpdateOne {
	meuo.mutation.ResetMasteryLevel()
	meuo.mutation.SetMasteryLevel(f)
	return meuo
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableMasteryLevel(f *float64) *MasteryEventUpdateOne {
	if f != nil {
		meuo.SetMasteryLevel(*f)
	}
	return meuo
}

// AddMasteryLevel adds f to the "mastery_level" field.
func (meuo *MasteryEventUpdateOne) AddMasteryLevel(f float64) *MasteryEventUpdateOne {
	meuo.mutation.AddMasteryLevel(f)
	return meuo
}

// SetSessionID sets the "session_id" field.
func (meuo *MasteryEventUpdateOne) SetSessionID(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetSessionID(s)
	return meuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableSessionID(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetSessionID(*s)
	}
	return meuo
}

// ClearSessionID clears the value of the "session_id" field.
func (meuo *MasteryEventUpdateOne) ClearSessionID() *MasteryEventUpdateOne {
	meuo.mutation.ClearSessionID()
	return meuo
}

// Mutation returns the MasteryEventMutation object of the builder.
func (meuo *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return meuo.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (meuo *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	meuo.mutation.Where(ps...)
	return meuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (meuo *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	meuo.fields = append([]string{field}, fields...)
	return meuo
}

// Save executes the query and returns the updated MasteryEvent entity.
func (meuo *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, meuo.sqlSave, meuo.mutation, meuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (meuo *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := meuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (meuo *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := meuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (meuo *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := meuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (meuo *MasteryEventUpdateOne) check() error {
	if v, ok := meuo.mutation.UserID(); ok {
		if err := masteryevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.user_id": %w`, err)}
		}
	}
	if v, ok := meuo.mutation.ContentID(); ok {
		if err := masteryevent.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.content_id": %w`, err)}
		}
	}
	if v, ok := meuo.mutation.PathID(); ok {
		if err := masteryevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.path_id": %w`, err)}
		}
	}
	if v, ok := meuo.mutation.FromBand(); ok {
		if err := masteryevent.FromBandValidator(v); err != nil {
			return &ValidationError{Name: "from_band", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_band": %w`, err)}
		}
	}
	if v, ok := meuo.mutation.ToBand(); ok {
		if err := masteryevent.ToBandValidator(v); err != nil {
			return &ValidationError{Name: "to_band", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_band": %w`, err)}
		}
	}
	return nil
}

func (meuo *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := meuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := meuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := meuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := meuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := meuo.mutation.UserID(); ok {
		_spec.SetField(masteryevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := meuo.mutation.ContentID(); ok {
		_spec.SetField(masteryevent.FieldContentID, field.TypeString, value)
	}
	if value, ok := meuo.mutation.PathID(); ok {
		_spec.SetField(masteryevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := meuo.mutation.FromBand(); ok {
		_spec.SetField(masteryevent.FieldFromBand, field.TypeString, value)
	}
	if value, ok := meuo.mutation.ToBand(); ok {
		_spec.SetField(masteryevent.FieldToBand, field.TypeString, value)
	}
	if value, ok := meuo.mutation.MasteryLevel(); ok {
		_spec.SetField(masteryevent.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := meuo.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(masteryevent.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := meuo.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if meuo.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	_node = &MasteryEvent{config: meuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, meuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	meuo.mutation.done = true
	return _node, nil
}
