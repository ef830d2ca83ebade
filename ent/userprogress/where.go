// Code generated by ent, DO NOT EDIT.

package userprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/oselot/stitchpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldUserID, v))
}

// OverallCompletion applies equality check predicate on the "overall_completion" field. It's identical to OverallCompletionEQ.
func OverallCompletion(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldOverallCompletion, v))
}

// MasteredItemCount applies equality check predicate on the "mastered_item_count" field. It's identical to MasteredItemCountEQ.
func MasteredItemCount(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldMasteredItemCount, v))
}

// TotalItemCount applies equality check predicate on the "total_item_count" field. It's identical to TotalItemCountEQ.
func TotalItemCount(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldTotalItemCount, v))
}

// LastUpdate applies equality check predicate on the "last_update" field. It's identical to LastUpdateEQ.
func LastUpdate(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldLastUpdate, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContainsFold(FieldUserID, v))
}

// OverallCompletionEQ applies the EQ predicate on the "overall_completion" field.
func OverallCompletionEQ(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldOverallCompletion, v))
}

// OverallCompletionNEQ applies the NEQ predicate on the "overall_completion" field.
func OverallCompletionNEQ(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldOverallCompletion, v))
}

// OverallCompletionIn applies the In predicate on the "overall_completion" field.
func OverallCompletionIn(vs ...float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldOverallCompletion, vs...))
}

// OverallCompletionNotIn applies the NotIn predicate on the "overall_completion" field.
func OverallCompletionNotIn(vs ...float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldOverallCompletion, vs...))
}

// OverallCompletionGT applies the GT predicate on the "overall_completion" field.
func OverallCompletionGT(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldOverallCompletion, v))
}

// OverallCompletionGTE applies the GTE predicate on the "overall_completion" field.
func OverallCompletionGTE(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldOverallCompletion, v))
}

// OverallCompletionLT applies the LT predicate on the "overall_completion" field.
func OverallCompletionLT(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldOverallCompletion, v))
}

// OverallCompletionLTE applies the LTE predicate on the "overall_completion" field.
func OverallCompletionLTE(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldOverallCompletion, v))
}

// MasteredItemCountEQ applies the EQ predicate on the "mastered_item_count" field.
func MasteredItemCountEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldMasteredItemCount, v))
}

// MasteredItemCountNEQ applies the NEQ predicate on the "mastered_item_count" field.
func MasteredItemCountNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldMasteredItemCount, v))
}

// MasteredItemCountIn applies the In predicate on the "mastered_item_count" field.
func MasteredItemCountIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldMasteredItemCount, vs...))
}

// MasteredItemCountNotIn applies the NotIn predicate on the "mastered_item_count" field.
func MasteredItemCountNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldMasteredItemCount, vs...))
}

// MasteredItemCountGT applies the GT predicate on the "mastered_item_count" field.
func MasteredItemCountGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldMasteredItemCount, v))
}

// MasteredItemCountGTE applies the GTE predicate on the "mastered_item_count" field.
func MasteredItemCountGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldMasteredItemCount, v))
}

// MasteredItemCountLT applies the LT predicate on the "mastered_item_count" field.
func MasteredItemCountLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldMasteredItemCount, v))
}

// MasteredItemCountLTE applies the LTE predicate on the "mastered_item_count" field.
func MasteredItemCountLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldMasteredItemCount, v))
}

// TotalItemCountEQ applies the EQ predicate on the "total_item_count" field.
func TotalItemCountEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldTotalItemCount, v))
}

// TotalItemCountNEQ applies the NEQ predicate on the "total_item_count" field.
func TotalItemCountNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldTotalItemCount, v))
}

// TotalItemCountIn applies the In predicate on the "total_item_count" field.
func TotalItemCountIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldTotalItemCount, vs...))
}

// TotalItemCountNotIn applies the NotIn predicate on the "total_item_count" field.
func TotalItemCountNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldTotalItemCount, vs...))
}

// TotalItemCountGT applies the GT predicate on the "total_item_count" field.
func TotalItemCountGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldTotalItemCount, v))
}

// TotalItemCountGTE applies the GTE predicate on the "total_item_count" field.
func TotalItemCountGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldTotalItemCount, v))
}

// TotalItemCountLT applies the LT predicate on the "total_item_count" field.
func TotalItemCountLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldTotalItemCount, v))
}

// TotalItemCountLTE applies the LTE predicate on the "total_item_count" field.
func TotalItemCountLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldTotalItemCount, v))
}

// LastUpdateEQ applies the EQ predicate on the "last_update" field.
func LastUpdateEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldLastUpdate, v))
}

// LastUpdateNEQ applies the NEQ predicate on the "last_update" field.
func LastUpdateNEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldLastUpdate, v))
}

// LastUpdateIn applies the In predicate on the "last_update" field.
func LastUpdateIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldLastUpdate, vs...))
}

// LastUpdateNotIn applies the NotIn predicate on the "last_update" field.
func LastUpdateNotIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldLastUpdate, vs...))
}

// LastUpdateGT applies the GT predicate on the "last_update" field.
func LastUpdateGT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldLastUpdate, v))
}

// LastUpdateGTE applies the GTE predicate on the "last_update" field.
func LastUpdateGTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldLastUpdate, v))
}

// LastUpdateLT applies the LT predicate on the "last_update" field.
func LastUpdateLT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldLastUpdate, v))
}

// LastUpdateLTE applies the LTE predicate on the "last_update" field.
func LastUpdateLTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldLastUpdate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.NotPredicates(p))
}
