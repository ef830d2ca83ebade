// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oselot/stitchpath/ent/predicate"
	"github.com/oselot/stitchpath/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (seu *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	seu.mutation.Where(ps...)
	return seu
}

// SetSessionID sets the "session_id" field.
func (seu *SessionEventUpdate) SetSessionID(s string) *SessionEventUpdate {
	seu.mutation.SetSessionID(s)
	return seu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableSessionID(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetSessionID(*s)
	}
	return seu
}

// SetUserID sets the "user_id" field.
func (seu *SessionEventUpdate) SetUserID(s string) *SessionEventUpdate {
	seu.mutation.SetUserID(s)
	return seu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableUserID(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetUserID(*s)
	}
	return seu
}

// SetPathID sets the "path_id" field.
func (seu *SessionEventUpdate) SetPathID(s string) *SessionEventUpdate {
	seu.mutation.SetPathID(s)
	return seu
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillablePathID(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetPathID(*s)
	}
	return seu
}

// SetContentID sets the "content_id" field.
func (seu *SessionEventUpdate) SetContentID(s string) *SessionEventUpdate {
	seu.mutation.SetContentID(s)
	return seu
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableContentID(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetContentID(*s)
	}
	return seu
}

// SetQuestionCount sets the "question_count" field.
func (seu *SessionEventUpdate) SetQuestionCount(i int) *SessionEventUpdate {
	seu.mutation.ResetQuestionCount()
	seu.mutation.SetQuestionCount(i)
	return seu
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableQuestionCount(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetQuestionCount(*i)
	}
	return seu
}

// AddQuestionCount adds i to the "question_count" field.
func (seu *SessionEventUpdate) AddQuestionCount(i int) *SessionEventUpdate {
	seu.mutation.AddQuestionCount(i)
	return seu
}

// SetFtcCount sets the "ftc_count" field.
func (seu *SessionEventUpdate) SetFtcCount(i int) *SessionEventUpdate {
	seu.mutation.ResetFtcCount()
	seu.mutation.SetFtcCount(i)
	return seu
}

// SetNillableFtcCount sets the "ftc_count" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableFtcCount(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetFtcCount(*i)
	}
	return seu
}

// AddFtcCount adds i to the "ftc_count" field.
func (seu *SessionEventUpdate) AddFtcCount(i int) *SessionEventUpdate {
	seu.mutation.AddFtcCount(i)
	return seu
}

// SetEcCount sets the "ec_count" field.
func (seu *SessionEventUpdate) SetEcCount(i int) *SessionEventUpdate {
	seu.mutation.ResetEcCount()
	seu.mutation.SetEcCount(i)
	return seu
}

// SetNillableEcCount sets the "ec_count" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableEcCount(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetEcCount(*i)
	}
	return seu
}

// AddEcCount adds i to the "ec_count" field.
func (seu *SessionEventUpdate) AddEcCount(i int) *SessionEventUpdate {
	seu.mutation.AddEcCount(i)
	return seu
}

// SetIncorrectCount sets the "incorrect_count" field.
func (seu *SessionEventUpdate) SetIncorrectCount(i int) *SessionEventUpdate {
	seu.mutation.ResetIncorrectCount()
	seu.mutation.SetIncorrectCount(i)
	return seu
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableIncorrectCount(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetIncorrectCount(*i)
	}
	return seu
}

// AddIncorrectCount adds i to the "incorrect_count" field.
func (seu *SessionEventUpdate) AddIncorrectCount(i int) *SessionEventUpdate {
	seu.mutation.AddIncorrectCount(i)
	return seu
}

// SetDurationMs sets the "duration_ms" field.
func (seu *SessionEventUpdate) SetDurationMs(i int) *SessionEventUpdate {
	seu.mutation.ResetDurationMs()
	seu.mutation.SetDurationMs(i)
	return seu
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableDurationMs(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetDurationMs(*i)
	}
	return seu
}

// AddDurationMs adds i to the "duration_ms" field.
func (seu *SessionEventUpdate) AddDurationMs(i int) *SessionEventUpdate {
	seu.mutation.AddDurationMs(i)
	return seu
}

// SetBasePoints sets the "base_points" field.
func (seu *SessionEventUpdate) SetBasePoints(i int) *SessionEventUpdate {
	seu.mutation.ResetBasePoints()
	seu.mutation.SetBasePoints(i)
	return seu
}

// SetNillableBasePoints sets the "base_points" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableBasePoints(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetBasePoints(*i)
	}
	return seu
}

// AddBasePoints adds i to the "base_points" field.
func (seu *SessionEventUpdate) AddBasePoints(i int) *SessionEventUpdate {
	seu.mutation.AddBasePoints(i)
	return seu
}

// SetBonusMultiplier sets the "bonus_multiplier" field.
func (seu *SessionEventUpdate) SetBonusMultiplier(f float64) *SessionEventUpdate {
	seu.mutation.ResetBonusMultiplier()
	seu.mutation.SetBonusMultiplier(f)
	return seu
}

// SetNillableBonusMultiplier sets the "bonus_multiplier" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableBonusMultiplier(f *float64) *SessionEventUpdate {
	if f != nil {
		seu.SetBonusMultiplier(*f)
	}
	return seu
}

// AddBonusMultiplier adds f to the "bonus_multiplier" field.
func (seu *SessionEventUpdate) AddBonusMultiplier(f float64) *SessionEventUpdate {
	seu.mutation.AddBonusMultiplier(f)
	return seu
}

// SetTotalPoints sets the "total_points" field.
func (seu *SessionEventUpdate) SetTotalPoints(i int) *SessionEventUpdate {
	seu.mutation.ResetTotalPoints()
	seu.mutation.SetTotalPoints(i)
	return seu
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableTotalPoints(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetTotalPoints(*i)
	}
	return seu
}

// AddTotalPoints adds i to the "total_points" field.
func (seu *SessionEventUpdate) AddTotalPoints(i int) *SessionEventUpdate {
	seu.mutation.AddTotalPoints(i)
	return seu
}

// SetEvolution sets the "evolution" field.
func (seu *SessionEventUpdate) SetEvolution(i int) *SessionEventUpdate {
	seu.mutation.ResetEvolution()
	seu.mutation.SetEvolution(i)
	return seu
}

// SetNillableEvolution sets the "evolution" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableEvolution(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetEvolution(*i)
	}
	return seu
}

// AddEvolution adds i to the "evolution" field.
func (seu *SessionEventUpdate) AddEvolution(i int) *SessionEventUpdate {
	seu.mutation.AddEvolution(i)
	return seu
}

// SetMasteryAfter sets the "mastery_after" field.
func (seu *SessionEventUpdate) SetMasteryAfter(f float64) *SessionEventUpdate {
	seu.mutation.ResetMasteryAfter()
	seu.mutation.SetMasteryAfter(f)
	return seu
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableMasteryAfter(f *float64) *SessionEventUpdate {
	if f != nil {
		seu.SetMasteryAfter(*f)
	}
	return seu
}

// AddMasteryAfter adds f to the "mastery_after" field.
func (seu *SessionEventUpdate) AddMasteryAfter(f float64) *SessionEventUpdate {
	seu.mutation.AddMasteryAfter(f)
	return seu
}

// SetDayStreak sets the "day_streak" field.
func (seu *SessionEventUpdate) SetDayStreak(i int) *SessionEventUpdate {
	seu.mutation.ResetDayStreak()
	seu.mutation.SetDayStreak(i)
	return seu
}

// SetNillableDayStreak sets the "day_streak" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableDayStreak(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetDayStreak(*i)
	}
	return seu
}

// AddDayStreak adds i to the "day_streak" field.
func (seu *SessionEventUpdate) AddDayStreak(i int) *SessionEventUpdate {
	seu.mutation.AddDayStreak(i)
	return seu
}

// Mutation returns the SessionEventMutation object of the builder.
func (seu *SessionEventUpdate) Mutation() *SessionEventMutation {
	return seu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (seu *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, seu.sqlSave, seu.mutation, seu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seu *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := seu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (seu *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := seu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seu *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := seu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seu *SessionEventUpdate) check() error {
	if v, ok := seu.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := seu.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := seu.mutation.PathID(); ok {
		if err := sessionevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.path_id": %w`, err)}
		}
	}
	if v, ok := seu.mutation.ContentID(); ok {
		if err := sessionevent.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.content_id": %w`, err)}
		}
	}
	return nil
}

func (seu *SessionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := seu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := seu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seu.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := seu.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := seu.mutation.PathID(); ok {
		_spec.SetField(sessionevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := seu.mutation.ContentID(); ok {
		_spec.SetField(sessionevent.FieldContentID, field.TypeString, value)
	}
	if value, ok := seu.mutation.QuestionCount(); ok {
		_spec.SetField(sessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedQuestionCount(); ok {
		_spec.AddField(sessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.FtcCount(); ok {
		_spec.SetField(sessionevent.FieldFtcCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedFtcCount(); ok {
		_spec.AddField(sessionevent.FieldFtcCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.EcCount(); ok {
		_spec.SetField(sessionevent.FieldEcCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedEcCount(); ok {
		_spec.AddField(sessionevent.FieldEcCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.IncorrectCount(); ok {
		_spec.SetField(sessionevent.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(sessionevent.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.DurationMs(); ok {
		_spec.SetField(sessionevent.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedDurationMs(); ok {
		_spec.AddField(sessionevent.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := seu.mutation.BasePoints(); ok {
		_spec.SetField(sessionevent.FieldBasePoints, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedBasePoints(); ok {
		_spec.AddField(sessionevent.FieldBasePoints, field.TypeInt, value)
	}
	if value, ok := seu.mutation.BonusMultiplier(); ok {
		_spec.SetField(sessionevent.FieldBonusMultiplier, field.TypeFloat64, value)
	}
	if value, ok := seu.mutation.AddedBonusMultiplier(); ok {
		_spec.AddField(sessionevent.FieldBonusMultiplier, field.TypeFloat64, value)
	}
	if value, ok := seu.mutation.TotalPoints(); ok {
		_spec.SetField(sessionevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedTotalPoints(); ok {
		_spec.AddField(sessionevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := seu.mutation.Evolution(); ok {
		_spec.SetField(sessionevent.FieldEvolution, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedEvolution(); ok {
		_spec.AddField(sessionevent.FieldEvolution, field.TypeInt, value)
	}
	if value, ok := seu.mutation.MasteryAfter(); ok {
		_spec.SetField(sessionevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := seu.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(sessionevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := seu.mutation.DayStreak(); ok {
		_spec.SetField(sessionevent.FieldDayStreak, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedDayStreak(); ok {
		_spec.AddField(sessionevent.FieldDayStreak, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, seu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	seu.mutation.done = true
	return n, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (seuo *SessionEventUpdateOne) SetSessionID(s string) *SessionEventUpdateOne {
	seuo.mutation.SetSessionID(s)
	return seuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableSessionID(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetSessionID(*s)
	}
	return seuo
}

// SetUserID sets the "user_id" field.
func (seuo *SessionEventUpdateOne) SetUserID(s string) *SessionEventUpdateOne {
	seuo.mutation.SetUserID(s)
	return seuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableUserID(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetUserID(*s)
	}
	return seuo
}

// SetPathID sets the "path_id" field.
func (seuo *SessionEventUpdateOne) SetPathID(s string) *SessionEventUpdateOne {
	seuo.mutation.SetPathID(s)
	return seuo
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillablePathID(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetPathID(*s)
	}
	return seuo
}

// SetContentID sets the "content_id" field.
func (seuo *SessionEventUpdateOne) SetContentID(s string) *SessionEventUpdateOne {
	seuo.mutation.SetContentID(s)
	return seuo
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableContentID(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetContentID(*s)
	}
	return seuo
}

// SetQuestionCount sets the "question_count" field.
func (seuo *SessionEventUpdateOne) SetQuestionCount(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetQuestionCount()
	seuo.mutation.SetQuestionCount(i)
	return seuo
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableQuestionCount(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetQuestionCount(*i)
	}
	return seuo
}

// AddQuestionCount adds i to the "question_count" field.
func (seuo *SessionEventUpdateOne) AddQuestionCount(i int) *SessionEventUpdateOne {
	seuo.mutation.AddQuestionCount(i)
	return seuo
}

// SetFtcCount sets the "ftc_count" field.
func (seuo *SessionEventUpdateOne) SetFtcCount(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetFtcCount()
	seuo.mutation.SetFtcCount(i)
	return seuo
}

// SetNillableFtcCount sets the "ftc_count" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableFtcCount(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetFtcCount(*i)
	}
	return seuo
}

// AddFtcCount adds i to the "ftc_count" field.
func (seuo *SessionEventUpdateOne) AddFtcCount(i int) *SessionEventUpdateOne {
	seuo.mutation.AddFtcCount(i)
	return seuo
}

// SetEcCount sets the "ec_count" field.
func (seuo *SessionEventUpdateOne) SetEcCount(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetEcCount()
	seuo.mutation.SetEcCount(i)
	return seuo
}

// SetNillableEcCount sets the "ec_count" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableEcCount(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetEcCount(*i)
	}
	return seuo
}

// AddEcCount adds i to the "ec_count" field.
func (seuo *SessionEventUpdateOne) AddEcCount(i int) *SessionEventUpdateOne {
	seuo.mutation.AddEcCount(i)
	return seuo
}

// SetIncorrectCount sets the "incorrect_count" field.
func (seuo *SessionEventUpdateOne) SetIncorrectCount(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetIncorrectCount()
	seuo.mutation.SetIncorrectCount(i)
	return seuo
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableIncorrectCount(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetIncorrectCount(*i)
	}
	return seuo
}

// AddIncorrectCount adds i to the "incorrect_count" field.
func (seuo *SessionEventUpdateOne) AddIncorrectCount(i int) *SessionEventUpdateOne {
	seuo.mutation.AddIncorrectCount(i)
	return seuo
}

// SetDurationMs sets the "duration_ms" field.
func (seuo *SessionEventUpdateOne) SetDurationMs(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetDurationMs()
	seuo.mutation.SetDurationMs(i)
	return seuo
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableDurationMs(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetDurationMs(*i)
	}
	return seuo
}

// AddDurationMs adds i to the "duration_ms" field.
func (seuo *SessionEventUpdateOne) AddDurationMs(i int) *SessionEventUpdateOne {
	seuo.mutation.AddDurationMs(i)
	return seuo
}

// SetBasePoints sets the "base_points" field.
func (seuo *SessionEventUpdateOne) SetBasePoints(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetBasePoints()
	seuo.mutation.SetBasePoints(i)
	return seuo
}

// SetNillableBasePoints sets the "base_points" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableBasePoints(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetBasePoints(*i)
	}
	return seuo
}

// AddBasePoints adds i to the "base_points" field.
func (seuo *SessionEventUpdateOne) AddBasePoints(i int) *SessionEventUpdateOne {
	seuo.mutation.AddBasePoints(i)
	return seuo
}

// SetBonusMultiplier sets the "bonus_multiplier" field.
func (seuo *SessionEventUpdateOne) SetBonusMultiplier(f float64) *SessionEventUpdateOne {
	seuo.mutation.ResetBonusMultiplier()
	seuo.mutation.SetBonusMultiplier(f)
	return seuo
}

// SetNillableBonusMultiplier sets the "bonus_multiplier" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableBonusMultiplier(f *float64) *SessionEventUpdateOne {
	if f != nil {
		seuo.SetBonusMultiplier(*f)
	}
	return seuo
}

// AddBonusMultiplier adds f to the "bonus_multiplier" field.
func (seuo *SessionEventUpdateOne) AddBonusMultiplier(f float64) *SessionEventUpdateOne {
	seuo.mutation.AddBonusMultiplier(f)
	return seuo
}

// SetTotalPoints sets the "total_points" field.
func (seuo *SessionEventUpdateOne) SetTotalPoints(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetTotalPoints()
	seuo.mutation.SetTotalPoints(i)
	return seuo
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableTotalPoints(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetTotalPoints(*i)
	}
	return seuo
}

// AddTotalPoints adds i to the "total_points" field.
func (seuo *SessionEventUpdateOne) AddTotalPoints(i int) *SessionEventUpdateOne {
	seuo.mutation.AddTotalPoints(i)
	return seuo
}

// SetEvolution sets the "evolution" field.
func (seuo *SessionEventUpdateOne) SetEvolution(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetEvolution()
	seuo.mutation.SetEvolution(i)
	return seuo
}

// SetNillableEvolution sets the "evolution" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableEvolution(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetEvolution(*i)
	}
	return seuo
}

// AddEvolution adds i to the "evolution" field.
func (seuo *SessionEventUpdateOne) AddEvolution(i int) *SessionEventUpdateOne {
	seuo.mutation.AddEvolution(i)
	return seuo
}

// SetMasteryAfter sets the "mastery_after" field.
func (seuo *SessionEventUpdateOne) SetMasteryAfter(f float64) *SessionEventUpdateOne {
	seuo.mutation.ResetMasteryAfter()
	seuo.mutation.SetMasteryAfter(f)
	return seuo
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableMasteryAfter(f *float64) *SessionEventUpdateOne {
	if f != nil {
		seuo.SetMasteryAfter(*f)
	}
	return seuo
}

// AddMasteryAfter adds f to the "mastery_after" field.
func (seuo *SessionEventUpdateOne) AddMasteryAfter(f float64) *SessionEventUpdateOne {
	seuo.mutation.AddMasteryAfter(f)
	return seuo
}

// SetDayStreak sets the "day_streak" field.
func (seuo *SessionEventUpdateOne) SetDayStreak(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetDayStreak()
	seuo.mutation.SetDayStreak(i)
	return seuo
}

// SetNillableDayStreak sets the "day_streak" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableDayStreak(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetDayStreak(*i)
	}
	return seuo
}

// AddDayStreak adds i to the "day_streak" field.
func (seuo *SessionEventUpdateOne) AddDayStreak(i int) *SessionEventUpdateOne {
	seuo.mutation.AddDayStreak(i)
	return seuo
}

// Mutation returns the SessionEventMutation object of the builder.
func (seuo *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return seuo.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (seuo *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	seuo.mutation.Where(ps...)
	return seuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (seuo *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	seuo.fields = append([]string{field}, fields...)
	return seuo
}

// Save executes the query and returns the updated SessionEvent entity.
func (seuo *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, seuo.sqlSave, seuo.mutation, seuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seuo *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := seuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (seuo *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := seuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seuo *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := seuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seuo *SessionEventUpdateOne) check() error {
	if v, ok := seuo.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.PathID(); ok {
		if err := sessionevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.path_id": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.ContentID(); ok {
		if err := sessionevent.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.content_id": %w`, err)}
		}
	}
	return nil
}

func (seuo *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := seuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := seuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := seuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := seuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seuo.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.PathID(); ok {
		_spec.SetField(sessionevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.ContentID(); ok {
		_spec.SetField(sessionevent.FieldContentID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.QuestionCount(); ok {
		_spec.SetField(sessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedQuestionCount(); ok {
		_spec.AddField(sessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.FtcCount(); ok {
		_spec.SetField(sessionevent.FieldFtcCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedFtcCount(); ok {
		_spec.AddField(sessionevent.FieldFtcCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.EcCount(); ok {
		_spec.SetField(sessionevent.FieldEcCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedEcCount(); ok {
		_spec.AddField(sessionevent.FieldEcCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.IncorrectCount(); ok {
		_spec.SetField(sessionevent.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(sessionevent.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.DurationMs(); ok {
		_spec.SetField(sessionevent.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedDurationMs(); ok {
		_spec.AddField(sessionevent.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.BasePoints(); ok {
		_spec.SetField(sessionevent.FieldBasePoints, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedBasePoints(); ok {
		_spec.AddField(sessionevent.FieldBasePoints, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.BonusMultiplier(); ok {
		_spec.SetField(sessionevent.FieldBonusMultiplier, field.TypeFloat64, value)
	}
	if value, ok := seuo.mutation.AddedBonusMultiplier(); ok {
		_spec.AddField(sessionevent.FieldBonusMultiplier, field.TypeFloat64, value)
	}
	if value, ok := seuo.mutation.TotalPoints(); ok {
		_spec.SetField(sessionevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedTotalPoints(); ok {
		_spec.AddField(sessionevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.Evolution(); ok {
		_spec.SetField(sessionevent.FieldEvolution, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedEvolution(); ok {
		_spec.AddField(sessionevent.FieldEvolution, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.MasteryAfter(); ok {
		_spec.SetField(sessionevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := seuo.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(sessionevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := seuo.mutation.DayStreak(); ok {
		_spec.SetField(sessionevent.FieldDayStreak, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedDayStreak(); ok {
		_spec.AddField(sessionevent.FieldDayStreak, field.TypeInt, value)
	}
	_node = &SessionEvent{config: seuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, seuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	seuo.mutation.done = true
	return _node, nil
}
