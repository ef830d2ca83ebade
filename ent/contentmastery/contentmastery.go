// Code generated by ent, DO NOT EDIT.

package contentmastery

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contentmastery type in the database.
	Label = "content_mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldContentID holds the string denoting the content_id field in the database.
	FieldContentID = "content_id"
	// FieldMasteryLevel holds the string denoting the mastery_level field in the database.
	FieldMasteryLevel = "mastery_level"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldLastAttemptTime holds the string denoting the last_attempt_time field in the database.
	FieldLastAttemptTime = "last_attempt_time"
	// FieldNextReviewTime holds the string denoting the next_review_time field in the database.
	FieldNextReviewTime = "next_review_time"
	// Table holds the table name of the contentmastery in the database.
	Table = "content_masteries"
)

// Columns holds all SQL columns for contentmastery fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldContentID,
	FieldMasteryLevel,
	FieldAttemptCount,
	FieldLastAttemptTime,
	FieldNextReviewTime,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ContentIDValidator is a validator for the "content_id" field. It is called by the builders before save.
	ContentIDValidator func(string) error
	// DefaultMasteryLevel holds the default value on creation for the "mastery_level" field.
	DefaultMasteryLevel float64
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
)

// OrderOption defines the ordering options for the ContentMastery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByContentID orders the results by the content_id field.
func ByContentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentID, opts...).ToFunc()
}

// ByMasteryLevel orders the results by the mastery_level field.
func ByMasteryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryLevel, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByLastAttemptTime orders the results by the last_attempt_time field.
func ByLastAttemptTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptTime, opts...).ToFunc()
}

// ByNextReviewTime orders the results by the next_review_time field.
func ByNextReviewTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewTime, opts...).ToFunc()
}
