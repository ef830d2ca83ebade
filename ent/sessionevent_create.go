// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oselot/stitchpath/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (sec *SessionEventCreate) SetSequence(i int64) *SessionEventCreate {
	sec.mutation.SetSequence(i)
	return sec
}

// SetTimestamp sets the "timestamp" field.
func (sec *SessionEventCreate) SetTimestamp(t time.Time) *SessionEventCreate {
	sec.mutation.SetTimestamp(t)
	return sec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableTimestamp(t *time.Time) *SessionEventCreate {
	if t != nil {
		sec.SetTimestamp(*t)
	}
	return sec
}

// SetSessionID sets the "session_id" field.
func (sec *SessionEventCreate) SetSessionID(s string) *SessionEventCreate {
	sec.mutation.SetSessionID(s)
	return sec
}

// SetUserID sets the "user_id" field.
func (sec *SessionEventCreate) SetUserID(s string) *SessionEventCreate {
	sec.mutation.SetUserID(s)
	return sec
}

// SetPathID sets the "path_id" field.
func (sec *SessionEventCreate) SetPathID(s string) *SessionEventCreate {
	sec.mutation.SetPathID(s)
	return sec
}

// SetContentID sets the "content_id" field.
func (sec *SessionEventCreate) SetContentID(s string) *SessionEventCreate {
	sec.mutation.SetContentID(s)
	return sec
}

// SetQuestionCount sets the "question_count" field.
func (sec *SessionEventCreate) SetQuestionCount(i int) *SessionEventCreate {
	sec.mutation.SetQuestionCount(i)
	return sec
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableQuestionCount(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetQuestionCount(*i)
	}
	return sec
}

// SetFtcCount sets the "ftc_count" field.
func (sec *SessionEventCreate) SetFtcCount(i int) *SessionEventCreate {
	sec.mutation.SetFtcCount(i)
	return sec
}

// SetNillableFtcCount sets the "ftc_count" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableFtcCount(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetFtcCount(*i)
	}
	return sec
}

// SetEcCount sets the "ec_count" field.
func (sec *SessionEventCreate) SetEcCount(i int) *SessionEventCreate {
	sec.mutation.SetEcCount(i)
	return sec
}

// SetNillableEcCount sets the "ec_count" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableEcCount(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetEcCount(*i)
	}
	return sec
}

// SetIncorrectCount sets the "incorrect_count" field.
func (sec *SessionEventCreate) SetIncorrectCount(i int) *SessionEventCreate {
	sec.mutation.SetIncorrectCount(i)
	return sec
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableIncorrectCount(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetIncorrectCount(*i)
	}
	return sec
}

// SetDurationMs sets the "duration_ms" field.
func (sec *SessionEventCreate) SetDurationMs(i int) *SessionEventCreate {
	sec.mutation.SetDurationMs(i)
	return sec
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableDurationMs(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetDurationMs(*i)
	}
	return sec
}

// SetBasePoints sets the "base_points" field.
func (sec *SessionEventCreate) SetBasePoints(i int) *SessionEventCreate {
	sec.mutation.SetBasePoints(i)
	return sec
}

// SetNillableBasePoints sets the "base_points" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableBasePoints(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetBasePoints(*i)
	}
	return sec
}

// SetBonusMultiplier sets the "bonus_multiplier" field.
func (sec *SessionEventCreate) SetBonusMultiplier(f float64) *SessionEventCreate {
	sec.mutation.SetBonusMultiplier(f)
	return sec
}

// SetNillableBonusMultiplier sets the "bonus_multiplier" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableBonusMultiplier(f *float64) *SessionEventCreate {
	if f != nil {
		sec.SetBonusMultiplier(*f)
	}
	return sec
}

// SetTotalPoints sets the "total_points" field.
func (sec *SessionEventCreate) SetTotalPoints(i int) *SessionEventCreate {
	sec.mutation.SetTotalPoints(i)
	return sec
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableTotalPoints(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetTotalPoints(*i)
	}
	return sec
}

// SetEvolution sets the "evolution" field.
func (sec *SessionEventCreate) SetEvolution(i int) *SessionEventCreate {
	sec.mutation.SetEvolution(i)
	return sec
}

// SetNillableEvolution sets the "evolution" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableEvolution(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetEvolution(*i)
	}
	return sec
}

// SetMasteryAfter sets the "mastery_after" field.
func (sec *SessionEventCreate) SetMasteryAfter(f float64) *SessionEventCreate {
	sec.mutation.SetMasteryAfter(f)
	return sec
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableMasteryAfter(f *float64) *SessionEventCreate {
	if f != nil {
		sec.SetMasteryAfter(*f)
	}
	return sec
}

// SetDayStreak sets the "day_streak" field.
func (sec *SessionEventCreate) SetDayStreak(i int) *SessionEventCreate {
	sec.mutation.SetDayStreak(i)
	return sec
}

// SetNillableDayStreak sets the "day_streak" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableDayStreak(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetDayStreak(*i)
	}
	return sec
}

// Mutation returns the SessionEventMutation object of the builder.
func (sec *SessionEventCreate) Mutation() *SessionEventMutation {
	return sec.mutation
}

// Save creates the SessionEvent in the database.
func (sec *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	sec.defaults()
	return withHooks(ctx, sec.sqlSave, sec.mutation, sec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sec *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := sec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sec *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := sec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sec *SessionEventCreate) ExecX(ctx context.Context) {
	if err := sec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sec *SessionEventCreate) defaults() {
	if _, ok := sec.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		sec.mutation.SetTimestamp(v)
	}
	if _, ok := sec.mutation.QuestionCount(); !ok {
		v := sessionevent.DefaultQuestionCount
		sec.mutation.SetQuestionCount(v)
	}
	if _, ok := sec.mutation.FtcCount(); !ok {
		v := sessionevent.DefaultFtcCount
		sec.mutation.SetFtcCount(v)
	}
	if _, ok := sec.mutation.EcCount(); !ok {
		v := sessionevent.DefaultEcCount
		sec.mutation.SetEcCount(v)
	}
	if _, ok := sec.mutation.IncorrectCount(); !ok {
		v := sessionevent.DefaultIncorrectCount
		sec.mutation.SetIncorrectCount(v)
	}
	if _, ok := sec.mutation.DurationMs(); !ok {
		v := sessionevent.DefaultDurationMs
		sec.mutation.SetDurationMs(v)
	}
	if _, ok := sec.mutation.BasePoints(); !ok {
		v := sessionevent.DefaultBasePoints
		sec.mutation.SetBasePoints(v)
	}
	if _, ok := sec.mutation.BonusMultiplier(); !ok {
		v := sessionevent.DefaultBonusMultiplier
		sec.mutation.SetBonusMultiplier(v)
	}
	if _, ok := sec.mutation.TotalPoints(); !ok {
		v := sessionevent.DefaultTotalPoints
		sec.mutation.SetTotalPoints(v)
	}
	if _, ok := sec.mutation.Evolution(); !ok {
		v := sessionevent.DefaultEvolution
		sec.mutation.SetEvolution(v)
	}
	if _, ok := sec.mutation.MasteryAfter(); !ok {
		v := sessionevent.DefaultMasteryAfter
		sec.mutation.SetMasteryAfter(v)
	}
	if _, ok := sec.mutation.DayStreak(); !ok {
		v := sessionevent.DefaultDayStreak
		sec.mutation.SetDayStreak(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sec *SessionEventCreate) check() error {
	if _, ok := sec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionEvent.sequence"`)}
	}
	if _, ok := sec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := sec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := sec.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionEvent.user_id"`)}
	}
	if v, ok := sec.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "SessionEvent.path_id"`)}
	}
	if v, ok := sec.mutation.PathID(); ok {
		if err := sessionevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.path_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "SessionEvent.content_id"`)}
	}
	if v, ok := sec.mutation.ContentID(); ok {
		if err := sessionevent.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.content_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "SessionEvent.question_count"`)}
	}
	if _, ok := sec.mutation.FtcCount(); !ok {
		return &ValidationError{Name: "ftc_count", err: errors.New(`ent: missing required field "SessionEvent.ftc_count"`)}
	}
	if _, ok := sec.mutation.EcCount(); !ok {
		return &ValidationError{Name: "ec_count", err: errors.New(`ent: missing required field "SessionEvent.ec_count"`)}
	}
	if _, ok := sec.mutation.IncorrectCount(); !ok {
		return &ValidationError{Name: "incorrect_count", err: errors.New(`ent: missing required field "SessionEvent.incorrect_count"`)}
	}
	if _, ok := sec.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "SessionEvent.duration_ms"`)}
	}
	if _, ok := sec.mutation.BasePoints(); !ok {
		return &ValidationError{Name: "base_points", err: errors.New(`ent: missing required field "SessionEvent.base_points"`)}
	}
	if _, ok := sec.mutation.BonusMultiplier(); !ok {
		return &ValidationError{Name: "bonus_multiplier", err: errors.New(`ent: missing required field "SessionEvent.bonus_multiplier"`)}
	}
	if _, ok := sec.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`ent: missing required field "SessionEvent.total_points"`)}
	}
	if _, ok := sec.mutation.Evolution(); !ok {
		return &ValidationError{Name: "evolution", err: errors.New(`ent: missing required field "SessionEvent.evolution"`)}
	}
	if _, ok := sec.mutation.MasteryAfter(); !ok {
		return &ValidationError{Name: "mastery_after", err: errors.New(`ent: missing required field "SessionEvent.mastery_after"`)}
	}
	if _, ok := sec.mutation.DayStreak(); !ok {
		return &ValidationError{Name: "day_streak", err: errors.New(`ent: missing required field "SessionEvent.day_streak"`)}
	}
	return nil
}

func (sec *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
	if err := sec.check(); err != nil {
		return nil, err
	}
	_node, _spec := sec.createSpec()
	if err := sqlgraph.CreateNode(ctx, sec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sec.mutation.id = &_node.ID
	sec.mutation.done = true
	return _node, nil
}

func (sec *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: sec.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	if value, ok := sec.mutation.Sequence(); ok {
		_spec.SetField(sessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := sec.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := sec.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := sec.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := sec.mutation.PathID(); ok {
		_spec.SetField(sessionevent.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := sec.mutation.ContentID(); ok {
		_spec.SetField(sessionevent.FieldContentID, field.TypeString, value)
		_node.ContentID = value
	}
	if value, ok := sec.mutation.QuestionCount(); ok {
		_spec.SetField(sessionevent.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := sec.mutation.FtcCount(); ok {
		_spec.SetField(sessionevent.FieldFtcCount, field.TypeInt, value)
		_node.FtcCount = value
	}
	if value, ok := sec.mutation.EcCount(); ok {
		_spec.SetField(sessionevent.FieldEcCount, field.TypeInt, value)
		_node.EcCount = value
	}
	if value, ok := sec.mutation.IncorrectCount(); ok {
		_spec.SetField(sessionevent.FieldIncorrectCount, field.TypeInt, value)
		_node.IncorrectCount = value
	}
	if value, ok := sec.mutation.DurationMs(); ok {
		_spec.SetField(sessionevent.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := sec.mutation.BasePoints(); ok {
		_spec.SetField(sessionevent.FieldBasePoints, field.TypeInt, value)
		_node.BasePoints = value
	}
	if value, ok := sec.mutation.BonusMultiplier(); ok {
		_spec.SetField(sessionevent.FieldBonusMultiplier, field.TypeFloat64, value)
		_node.BonusMultiplier = value
	}
	if value, ok := sec.mutation.TotalPoints(); ok {
		_spec.SetField(sessionevent.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := sec.mutation.Evolution(); ok {
		_spec.SetField(sessionevent.FieldEvolution, field.TypeInt, value)
		_node.Evolution = value
	}
	if value, ok := sec.mutation.MasteryAfter(); ok {
		_spec.SetField(sessionevent.FieldMasteryAfter, field.TypeFloat64, value)
		_node.MasteryAfter = value
	}
	if value, ok := sec.mutation.DayStreak(); ok {
		_spec.SetField(sessionevent.FieldDayStreak, field.TypeInt, value)
		_node.DayStreak = value
	}
	return _node, _spec
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
}

// Save creates the SessionEvent entities in the database.
func (secb *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if secb.err != nil {
		return nil, secb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(secb.builders))
	nodes := make([]*SessionEvent, len(secb.builders))
	mutators := make([]Mutator, len(secb.builders))
	for i := range secb.builders {
		func(i int, root context.Context) {
			builder := secb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
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
					_, err = mutators[i+1].Mutate(root, secb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, secb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, secb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (secb *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := secb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (secb *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := secb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (secb *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := secb.Exec(ctx); err != nil {
		panic(err)
	}
}
