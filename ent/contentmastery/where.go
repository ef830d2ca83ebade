// Code generated by ent, DO NOT EDIT.

package contentmastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/oselot/stitchpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldUserID, v))
}

// ContentID applies equality check predicate on the "content_id" field. It's identical to ContentIDEQ.
func ContentID(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldContentID, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v float64) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldMasteryLevel, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldAttemptCount, v))
}

// LastAttemptTime applies equality check predicate on the "last_attempt_time" field. It's identical to LastAttemptTimeEQ.
func LastAttemptTime(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldLastAttemptTime, v))
}

// NextReviewTime applies equality check predicate on the "next_review_time" field. It's identical to NextReviewTimeEQ.
func NextReviewTime(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldNextReviewTime, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldContainsFold(FieldUserID, v))
}

// ContentIDEQ applies the EQ predicate on the "content_id" field.
func ContentIDEQ(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldContentID, v))
}

// ContentIDNEQ applies the NEQ predicate on the "content_id" field.
func ContentIDNEQ(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNEQ(FieldContentID, v))
}

// ContentIDIn applies the In predicate on the "content_id" field.
func ContentIDIn(vs ...string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldIn(FieldContentID, vs...))
}

// ContentIDNotIn applies the NotIn predicate on the "content_id" field.
func ContentIDNotIn(vs ...string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNotIn(FieldContentID, vs...))
}

// ContentIDGT applies the GT predicate on the "content_id" field.
func ContentIDGT(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGT(FieldContentID, v))
}

// ContentIDGTE applies the GTE predicate on the "content_id" field.
func ContentIDGTE(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGTE(FieldContentID, v))
}

// ContentIDLT applies the LT predicate on the "content_id" field.
func ContentIDLT(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLT(FieldContentID, v))
}

// ContentIDLTE applies the LTE predicate on the "content_id" field.
func ContentIDLTE(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLTE(FieldContentID, v))
}

// ContentIDContains applies the Contains predicate on the "content_id" field.
func ContentIDContains(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldContains(FieldContentID, v))
}

// ContentIDHasPrefix applies the HasPrefix predicate on the "content_id" field.
func ContentIDHasPrefix(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldHasPrefix(FieldContentID, v))
}

// ContentIDHasSuffix applies the HasSuffix predicate on the "content_id" field.
func ContentIDHasSuffix(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldHasSuffix(FieldContentID, v))
}

// ContentIDEqualFold applies the EqualFold predicate on the "content_id" field.
func ContentIDEqualFold(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEqualFold(FieldContentID, v))
}

// ContentIDContainsFold applies the ContainsFold predicate on the "content_id" field.
func ContentIDContainsFold(v string) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldContainsFold(FieldContentID, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v float64) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v float64) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...float64) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...float64) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v float64) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v float64) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v float64) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v float64) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLTE(FieldMasteryLevel, v))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLTE(FieldAttemptCount, v))
}

// LastAttemptTimeEQ applies the EQ predicate on the "last_attempt_time" field.
func LastAttemptTimeEQ(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldLastAttemptTime, v))
}

// LastAttemptTimeNEQ applies the NEQ predicate on the "last_attempt_time" field.
func LastAttemptTimeNEQ(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNEQ(FieldLastAttemptTime, v))
}

// LastAttemptTimeIn applies the In predicate on the "last_attempt_time" field.
func LastAttemptTimeIn(vs ...time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldIn(FieldLastAttemptTime, vs...))
}

// LastAttemptTimeNotIn applies the NotIn predicate on the "last_attempt_time" field.
func LastAttemptTimeNotIn(vs ...time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNotIn(FieldLastAttemptTime, vs...))
}

// LastAttemptTimeGT applies the GT predicate on the "last_attempt_time" field.
func LastAttemptTimeGT(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGT(FieldLastAttemptTime, v))
}

// LastAttemptTimeGTE applies the GTE predicate on the "last_attempt_time" field.
func LastAttemptTimeGTE(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGTE(FieldLastAttemptTime, v))
}

// LastAttemptTimeLT applies the LT predicate on the "last_attempt_time" field.
func LastAttemptTimeLT(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLT(FieldLastAttemptTime, v))
}

// LastAttemptTimeLTE applies the LTE predicate on the "last_attempt_time" field.
func LastAttemptTimeLTE(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLTE(FieldLastAttemptTime, v))
}

// LastAttemptTimeIsNil applies the IsNil predicate on the "last_attempt_time" field.
func LastAttemptTimeIsNil() predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldIsNull(FieldLastAttemptTime))
}

// LastAttemptTimeNotNil applies the NotNil predicate on the "last_attempt_time" field.
func LastAttemptTimeNotNil() predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNotNull(FieldLastAttemptTime))
}

// NextReviewTimeEQ applies the EQ predicate on the "next_review_time" field.
func NextReviewTimeEQ(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldEQ(FieldNextReviewTime, v))
}

// NextReviewTimeNEQ applies the NEQ predicate on the "next_review_time" field.
func NextReviewTimeNEQ(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNEQ(FieldNextReviewTime, v))
}

// NextReviewTimeIn applies the In predicate on the "next_review_time" field.
func NextReviewTimeIn(vs ...time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldIn(FieldNextReviewTime, vs...))
}

// NextReviewTimeNotIn applies the NotIn predicate on the "next_review_time" field.
func NextReviewTimeNotIn(vs ...time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNotIn(FieldNextReviewTime, vs...))
}

// NextReviewTimeGT applies the GT predicate on the "next_review_time" field.
func NextReviewTimeGT(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGT(FieldNextReviewTime, v))
}

// NextReviewTimeGTE applies the GTE predicate on the "next_review_time" field.
func NextReviewTimeGTE(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldGTE(FieldNextReviewTime, v))
}

// NextReviewTimeLT applies the LT predicate on the "next_review_time" field.
func NextReviewTimeLT(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLT(FieldNextReviewTime, v))
}

// NextReviewTimeLTE applies the LTE predicate on the "next_review_time" field.
func NextReviewTimeLTE(v time.Time) predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldLTE(FieldNextReviewTime, v))
}

// NextReviewTimeIsNil applies the IsNil predicate on the "next_review_time" field.
func NextReviewTimeIsNil() predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldIsNull(FieldNextReviewTime))
}

// NextReviewTimeNotNil applies the NotNil predicate on the "next_review_time" field.
func NextReviewTimeNotNil() predicate.ContentMastery {
	return predicate.ContentMastery(sql.FieldNotNull(FieldNextReviewTime))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentMastery) predicate.ContentMastery {
	return predicate.ContentMastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentMastery) predicate.ContentMastery {
	return predicate.ContentMastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentMastery) predicate.ContentMastery {
	return predicate.ContentMastery(sql.NotPredicates(p))
}
