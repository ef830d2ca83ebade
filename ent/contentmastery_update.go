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
	"github.com/oselot/stitchpath/ent/contentmastery"
	"github.com/oselot/stitchpath/ent/predicate"
)

// ContentMasteryUpdate is the builder for updating ContentMastery entities.
type ContentMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *ContentMasteryMutation
}

// Where appends a list predicates to the ContentMasteryUpdate builder.
func (cmu *ContentMasteryUpdate) Where(ps ...predicate.ContentMastery) *ContentMasteryUpdate {
	cmu.mutation.Where(ps...)
	return cmu
}

// SetUserID sets the "user_id" field.
func (cmu *ContentMasteryUpdate) SetUserID(s string) *ContentMasteryUpdate {
	cmu.mutation.SetUserID(s)
	return cmu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (cmu *ContentMasteryUpdate) SetNillableUserID(s *string) *ContentMasteryUpdate {
	if s != nil {
		cmu.SetUserID(*s)
	}
	return cmu
}

// SetContentID sets the "content_id" field.
func (cmu *ContentMasteryUpdate) SetContentID(s string) *ContentMasteryUpdate {
	cmu.mutation.SetContentID(s)
	return cmu
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (cmu *ContentMasteryUpdate) SetNillableContentID(s *string) *ContentMasteryUpdate {
	if s != nil {
		cmu.SetContentID(*s)
	}
	return cmu
}

// SetMasteryLevel sets the "mastery_level" field.
func (cmu *ContentMasteryUpdate) SetMasteryLevel(f float64) *ContentMasteryUpdate {
	cmu.mutation.ResetMasteryLevel()
	cmu.mutation.SetMasteryLevel(f)
	return cmu
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (cmu *ContentMasteryUpdate) SetNillableMasteryLevel(f *float64) *ContentMasteryUpdate {
	if f != nil {
		cmu.SetMasteryLevel(*f)
	}
	return cmu
}

// AddMasteryLevel adds f to the "mastery_level" field.
func (cmu *ContentMasteryUpdate) AddMasteryLevel(f float64) *ContentMasteryUpdate {
	cmu.mutation.AddMasteryLevel(f)
	return cmu
}

// SetAttemptCount sets the "attempt_count" field.
func (cmu *ContentMasteryUpdate) SetAttemptCount(i int) *ContentMasteryUpdate {
	cmu.mutation.ResetAttemptCount()
	cmu.mutation.SetAttemptCount(i)
	return cmu
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (cmu *ContentMasteryUpdate) SetNillableAttemptCount(i *int) *ContentMasteryUpdate {
	if i != nil {
		cmu.SetAttemptCount(*i)
	}
	return cmu
}

// AddAttemptCount adds i to the "attempt_count" field.
func (cmu *ContentMasteryUpdate) AddAttemptCount(i int) *ContentMasteryUpdate {
	cmu.mutation.AddAttemptCount(i)
	return cmu
}

// SetLastAttemptTime sets the "last_attempt_time" field.
func (cmu *ContentMasteryUpdate) SetLastAttemptTime(t time.Time) *ContentMasteryUpdate {
	cmu.mutation.SetLastAttemptTime(t)
	return cmu
}

// SetNillableLastAttemptTime sets the "last_attempt_time" field if the given value is not nil.
func (cmu *ContentMasteryUpdate) SetNillableLastAttemptTime(t *time.Time) *ContentMasteryUpdate {
	if t != nil {
		cmu.SetLastAttemptTime(*t)
	}
	return cmu
}

// ClearLastAttemptTime clears the value of the "last_attempt_time" field.
func (cmu *ContentMasteryUpdate) ClearLastAttemptTime() *ContentMasteryUpdate {
	cmu.mutation.ClearLastAttemptTime()
	return cmu
}

// SetNextReviewTime sets the "next_review_time" field.
func (cmu *ContentMasteryUpdate) SetNextReviewTime(t time.Time) *ContentMasteryUpdate {
	cmu.mutation.SetNextReviewTime(t)
	return cmu
}

// SetNillableNextReviewTime sets the "next_review_time" field if the given value is not nil.
func (cmu *ContentMasteryUpdate) SetNillableNextReviewTime(t *time.Time) *ContentMasteryUpdate {
	if t != nil {
		cmu.SetNextReviewTime(*t)
	}
	return cmu
}

// ClearNextReviewTime clears the value of the "next_review_time" field.
func (cmu *ContentMasteryUpdate) ClearNextReviewTime() *ContentMasteryUpdate {
	cmu.mutation.ClearNextReviewTime()
	return cmu
}

// Mutation returns the ContentMasteryMutation object of the builder.
func (cmu *ContentMasteryUpdate) Mutation() *ContentMasteryMutation {
	return cmu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cmu *ContentMasteryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, cmu.sqlSave, cmu.mutation, cmu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cmu *ContentMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := cmu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cmu *ContentMasteryUpdate) Exec(ctx context.Context) error {
	_, err := cmu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cmu *ContentMasteryUpdate) ExecX(ctx context.Context) {
	if err := cmu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cmu *ContentMasteryUpdate) check() error {
	if v, ok := cmu.mutation.UserID(); ok {
		if err := contentmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ContentMastery.user_id": %w`, err)}
		}
	}
	if v, ok := cmu.mutation.ContentID(); ok {
		if err := contentmastery.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "ContentMastery.content_id": %w`, err)}
		}
	}
	return nil
}

func (cmu *ContentMasteryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cmu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentmastery.Table, contentmastery.Columns, sqlgraph.NewFieldSpec(contentmastery.FieldID, field.TypeInt))
	if ps := cmu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cmu.mutation.UserID(); ok {
		_spec.SetField(contentmastery.FieldUserID, field.TypeString, value)
	}
	if value, ok := cmu.mutation.ContentID(); ok {
		_spec.SetField(contentmastery.FieldContentID, field.TypeString, value)
	}
	if value, ok := cmu.mutation.MasteryLevel(); ok {
		_spec.SetField(contentmastery.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := cmu.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(contentmastery.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := cmu.mutation.AttemptCount(); ok {
		_spec.SetField(contentmastery.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := cmu.mutation.AddedAttemptCount(); ok {
		_spec.AddField(contentmastery.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := cmu.mutation.LastAttemptTime(); ok {
		_spec.SetField(contentmastery.FieldLastAttemptTime, field.TypeTime, value)
	}
	if cmu.mutation.LastAttemptTimeCleared() {
		_spec.ClearField(contentmastery.FieldLastAttemptTime, field.TypeTime)
	}
	if value, ok := cmu.mutation.NextReviewTime(); ok {
		_spec.SetField(contentmastery.FieldNextReviewTime, field.TypeTime, value)
	}
	if cmu.mutation.NextReviewTimeCleared() {
		_spec.ClearField(contentmastery.FieldNextReviewTime, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cmu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cmu.mutation.done = true
	return n, nil
}

// ContentMasteryUpdateOne is the builder for updating a single ContentMastery entity.
type ContentMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentMasteryMutation
}

// SetUserID sets the "user_id" field.
func (cmuo *ContentMasteryUpdateOne) SetUserID(s string) *ContentMasteryUpdateOne {
	cmuo.mutation.SetUserID(s)
	return cmuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (cmuo *ContentMasteryUpdateOne) SetNillableUserID(s *string) *ContentMasteryUpdateOne {
	if s != nil {
		cmuo.SetUserID(*s)
	}
	return cmuo
}

// SetContentID sets the "content_id" field.
func (cmuo *ContentMasteryUpdateOne) SetContentID(s string) *ContentMasteryUpdateOne {
	cmuo.mutation.SetContentID(s)
	return cmuo
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (cmuo *ContentMasteryUpdateOne) SetNillableContentID(s *string) *ContentMasteryUpdateOne {
	if s != nil {
		cmuo.SetContentID(*s)
	}
	return cmuo
}

// SetMasteryLevel sets the "mastery_level" field.
func (cmuo *ContentMasteryUpdateOne) SetMasteryLevel(f float64) *ContentMasteryUpdateOne {
	cmuo.mutation.ResetMasteryLevel()
	cmuo.mutation.SetMasteryLevel(f)
	return cmuo
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (cmuo *ContentMasteryUpdateOne) SetNillableMasteryLevel(f *float64) *ContentMasteryUpdateOne {
	if f != nil {
		cmuo.SetMasteryLevel(*f)
	}
	return cmuo
}

// AddMasteryLevel adds f to the "mastery_level" field.
func (cmuo *ContentMasteryUpdateOne) AddMasteryLevel(f float64) *ContentMasteryUpdateOne {
	cmuo.mutation.AddMasteryLevel(f)
	return cmuo
}

// SetAttemptCount sets the "attempt_count" field.
func (cmuo *ContentMasteryUpdateOne) SetAttemptCount(i int) *ContentMasteryUpdateOne {
	cmuo.mutation.ResetAttemptCount()
	cmuo.mutation.SetAttemptCount(i)
	return cmuo
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (cmuo *ContentMasteryUpdateOne) SetNillableAttemptCount(i *int) *ContentMasteryUpdateOne {
	if i != nil {
		cmuo.SetAttemptCount(*i)
	}
	return cmuo
}

// AddAttemptCount adds i to the "attempt_count" field.
func (cmuo *ContentMasteryUpdateOne) AddAttemptCount(i int) *ContentMasteryUpdateOne {
	cmuo.mutation.AddAttemptCount(i)
	return cmuo
}

// SetLastAttemptTime sets the "last_attempt_time" field.
func (cmuo *ContentMasteryUpdateOne) SetLastAttemptTime(t time.Time) *ContentMasteryUpdateOne {
	cmuo.mutation.SetLastAttemptTime(t)
	return cmuo
}

// SetNillableLastAttemptTime sets the "last_attempt_time" field if the given value is not nil.
func (cmuo *ContentMasteryUpdateOne) SetNillableLastAttemptTime(t *time.Time) *ContentMasteryUpdateOne {
	if t != nil {
		cmuo.SetLastAttemptTime(*t)
	}
	return cmuo
}

// ClearLastAttemptTime clears the value of the "last_attempt_time" field.
func (cmuo *ContentMasteryUpdateOne) ClearLastAttemptTime() *ContentMasteryUpdateOne {
	cmuo.mutation.ClearLastAttemptTime()
	return cmuo
}

// SetNextReviewTime sets the "next_review_time" field.
func (cmuo *ContentMasteryUpdateOne) SetNextReviewTime(t time.Time) *ContentMasteryUpdateOne {
	cmuo.mutation.SetNextReviewTime(t)
	return cmuo
}

// SetNillableNextReviewTime sets the "next_review_time" field if the given value is not nil.
func (cmuo *ContentMasteryUpdateOne) SetNillableNextReviewTime(t *time.Time) *ContentMasteryUpdateOne {
	if t != nil {
		cmuo.SetNextReviewTime(*t)
	}
	return cmuo
}

// ClearNextReviewTime clears the value of the "next_review_time" field.
func (cmuo *ContentMasteryUpdateOne) ClearNextReviewTime() *ContentMasteryUpdateOne {
	cmuo.mutation.ClearNextReviewTime()
	return cmuo
}

// Mutation returns the ContentMasteryMutation object of the builder.
func (cmuo *ContentMasteryUpdateOne) Mutation() *ContentMasteryMutation {
	return cmuo.mutation
}

// Where appends a list predicates to the ContentMasteryUpdate builder.
func (cmuo *ContentMasteryUpdateOne) Where(ps ...predicate.ContentMastery) *ContentMasteryUpdateOne {
	cmuo.mutation.Where(ps...)
	return cmuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cmuo *ContentMasteryUpdateOne) Select(field string, fields ...string) *ContentMasteryUpdateOne {
	cmuo.fields = append([]string{field}, fields...)
	return cmuo
}

// Save executes the query and returns the updated ContentMastery entity.
func (cmuo *ContentMasteryUpdateOne) Save(ctx context.Context) (*ContentMastery, error) {
	return withHooks(ctx, cmuo.sqlSave, cmuo.mutation, cmuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cmuo *ContentMasteryUpdateOne) SaveX(ctx context.Context) *ContentMastery {
	node, err := cmuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cmuo *ContentMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := cmuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cmuo *ContentMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := cmuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cmuo *ContentMasteryUpdateOne) check() error {
	if v, ok := cmuo.mutation.UserID(); ok {
		if err := contentmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ContentMastery.user_id": %w`, err)}
		}
	}
	if v, ok := cmuo.mutation.ContentID(); ok {
		if err := contentmastery.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "ContentMastery.content_id": %w`, err)}
		}
	}
	return nil
}

func (cmuo *ContentMasteryUpdateOne) sqlSave(ctx context.Context) (_node *ContentMastery, err error) {
	if err := cmuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentmastery.Table, contentmastery.Columns, sqlgraph.NewFieldSpec(contentmastery.FieldID, field.TypeInt))
	id, ok := cmuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cmuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentmastery.FieldID)
		for _, f := range fields {
			if !contentmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentmastery.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cmuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cmuo.mutation.UserID(); ok {
		_spec.SetField(contentmastery.FieldUserID, field.TypeString, value)
	}
	if value, ok := cmuo.mutation.ContentID(); ok {
		_spec.SetField(contentmastery.FieldContentID, field.TypeString, value)
	}
	if value, ok := cmuo.mutation.MasteryLevel(); ok {
		_spec.SetField(contentmastery.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := cmuo.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(contentmastery.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := cmuo.mutation.AttemptCount(); ok {
		_spec.SetField(contentmastery.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := cmuo.mutation.AddedAttemptCount(); ok {
		_spec.AddField(contentmastery.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := cmuo.mutation.LastAttemptTime(); ok {
		_spec.SetField(contentmastery.FieldLastAttemptTime, field.TypeTime, value)
	}
	if cmuo.mutation.LastAttemptTimeCleared() {
		_spec.ClearField(contentmastery.FieldLastAttemptTime, field.TypeTime)
	}
	if value, ok := cmuo.mutation.NextReviewTime(); ok {
		_spec.SetField(contentmastery.FieldNextReviewTime, field.TypeTime, value)
	}
	if cmuo.mutation.NextReviewTimeCleared() {
		_spec.ClearField(contentmastery.FieldNextReviewTime, field.TypeTime)
	}
	_node = &ContentMastery{config: cmuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cmuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cmuo.mutation.done = true
	return _node, nil
}
