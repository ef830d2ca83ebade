// Code generated by ent, DO NOT EDIT.

package pathprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/oselot/stitchpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEQ(FieldUserID, v))
}

// PathID applies equality check predicate on the "path_id" field. It's identical to PathIDEQ.
func PathID(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEQ(FieldPathID, v))
}

// Completion applies equality check predicate on the "completion" field. It's identical to CompletionEQ.
func Completion(v float64) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEQ(FieldCompletion, v))
}

// MasteredCount applies equality check predicate on the "mastered_count" field. It's identical to MasteredCountEQ.
func MasteredCount(v int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEQ(FieldMasteredCount, v))
}

// LastUpdate applies equality check predicate on the "last_update" field. It's identical to LastUpdateEQ.
func LastUpdate(v time.Time) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEQ(FieldLastUpdate, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldContainsFold(FieldUserID, v))
}

// PathIDEQ applies the EQ predicate on the "path_id" field.
func PathIDEQ(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEQ(FieldPathID, v))
}

// PathIDNEQ applies the NEQ predicate on the "path_id" field.
func PathIDNEQ(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNEQ(FieldPathID, v))
}

// PathIDIn applies the In predicate on the "path_id" field.
func PathIDIn(vs ...string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldIn(FieldPathID, vs...))
}

// PathIDNotIn applies the NotIn predicate on the "path_id" field.
func PathIDNotIn(vs ...string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNotIn(FieldPathID, vs...))
}

// PathIDGT applies the GT predicate on the "path_id" field.
func PathIDGT(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldGT(FieldPathID, v))
}

// PathIDGTE applies the GTE predicate on the "path_id" field.
func PathIDGTE(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldGTE(FieldPathID, v))
}

// PathIDLT applies the LT predicate on the "path_id" field.
func PathIDLT(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldLT(FieldPathID, v))
}

// PathIDLTE applies the LTE predicate on the "path_id" field.
func PathIDLTE(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldLTE(FieldPathID, v))
}

// PathIDContains applies the Contains predicate on the "path_id" field.
func PathIDContains(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldContains(FieldPathID, v))
}

// PathIDHasPrefix applies the HasPrefix predicate on the "path_id" field.
func PathIDHasPrefix(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldHasPrefix(FieldPathID, v))
}

// PathIDHasSuffix applies the HasSuffix predicate on the "path_id" field.
func PathIDHasSuffix(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldHasSuffix(FieldPathID, v))
}

// PathIDEqualFold applies the EqualFold predicate on the "path_id" field.
func PathIDEqualFold(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEqualFold(FieldPathID, v))
}

// PathIDContainsFold applies the ContainsFold predicate on the "path_id" field.
func PathIDContainsFold(v string) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldContainsFold(FieldPathID, v))
}

// CompletionEQ applies the EQ predicate on the "completion" field.
func CompletionEQ(v float64) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEQ(FieldCompletion, v))
}

// CompletionNEQ applies the NEQ predicate on the "completion" field.
func CompletionNEQ(v float64) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNEQ(FieldCompletion, v))
}

// CompletionIn applies the In predicate on the "completion" field.
func CompletionIn(vs ...float64) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldIn(FieldCompletion, vs...))
}

// CompletionNotIn applies the NotIn predicate on the "completion" field.
func CompletionNotIn(vs ...float64) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNotIn(FieldCompletion, vs...))
}

// CompletionGT applies the GT predicate on the "completion" field.
func CompletionGT(v float64) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldGT(FieldCompletion, v))
}

// CompletionGTE applies the GTE predicate on the "completion" field.
func CompletionGTE(v float64) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldGTE(FieldCompletion, v))
}

// CompletionLT applies the LT predicate on the "completion" field.
func CompletionLT(v float64) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldLT(FieldCompletion, v))
}

// CompletionLTE applies the LTE predicate on the "completion" field.
func CompletionLTE(v float64) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldLTE(FieldCompletion, v))
}

// MasteredCountEQ applies the EQ predicate on the "mastered_count" field.
func MasteredCountEQ(v int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEQ(FieldMasteredCount, v))
}

// MasteredCountNEQ applies the NEQ predicate on the "mastered_count" field.
func MasteredCountNEQ(v int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNEQ(FieldMasteredCount, v))
}

// MasteredCountIn applies the In predicate on the "mastered_count" field.
func MasteredCountIn(vs ...int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldIn(FieldMasteredCount, vs...))
}

// MasteredCountNotIn applies the NotIn predicate on the "mastered_count" field.
func MasteredCountNotIn(vs ...int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNotIn(FieldMasteredCount, vs...))
}

// MasteredCountGT applies the GT predicate on the "mastered_count" field.
func MasteredCountGT(v int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldGT(FieldMasteredCount, v))
}

// MasteredCountGTE applies the GTE predicate on the "mastered_count" field.
func MasteredCountGTE(v int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldGTE(FieldMasteredCount, v))
}

// MasteredCountLT applies the LT predicate on the "mastered_count" field.
func MasteredCountLT(v int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldLT(FieldMasteredCount, v))
}

// MasteredCountLTE applies the LTE predicate on the "mastered_count" field.
func MasteredCountLTE(v int) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldLTE(FieldMasteredCount, v))
}

// LastUpdateEQ applies the EQ predicate on the "last_update" field.
func LastUpdateEQ(v time.Time) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldEQ(FieldLastUpdate, v))
}

// LastUpdateNEQ applies the NEQ predicate on the "last_update" field.
func LastUpdateNEQ(v time.Time) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNEQ(FieldLastUpdate, v))
}

// LastUpdateIn applies the In predicate on the "last_update" field.
func LastUpdateIn(vs ...time.Time) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldIn(FieldLastUpdate, vs...))
}

// LastUpdateNotIn applies the NotIn predicate on the "last_update" field.
func LastUpdateNotIn(vs ...time.Time) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNotIn(FieldLastUpdate, vs...))
}

// LastUpdateGT applies the GT predicate on the "last_update" field.
func LastUpdateGT(v time.Time) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldGT(FieldLastUpdate, v))
}

// LastUpdateGTE applies the GTE predicate on the "last_update" field.
func LastUpdateGTE(v time.Time) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldGTE(FieldLastUpdate, v))
}

// LastUpdateLT applies the LT predicate on the "last_update" field.
func LastUpdateLT(v time.Time) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldLT(FieldLastUpdate, v))
}

// LastUpdateLTE applies the LTE predicate on the "last_update" field.
func LastUpdateLTE(v time.Time) predicate.PathProgress {
	return predicate.PathProgress(sql.FieldLTE(FieldLastUpdate, v))
}

// LastUpdateIsNil applies the IsNil predicate on the "last_update" field.
func LastUpdateIsNil() predicate.PathProgress {
	return predicate.PathProgress(sql.FieldIsNull(FieldLastUpdate))
}

// LastUpdateNotNil applies the NotNil predicate on the "last_update" field.
func LastUpdateNotNil() predicate.PathProgress {
	return predicate.PathProgress(sql.FieldNotNull(FieldLastUpdate))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathProgress) predicate.PathProgress {
	return predicate.PathProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathProgress) predicate.PathProgress {
	return predicate.PathProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathProgress) predicate.PathProgress {
	return predicate.PathProgress(sql.NotPredicates(p))
}
