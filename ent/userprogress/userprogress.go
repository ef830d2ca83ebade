// Code generated by ent, DO NOT EDIT.

package userprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userprogress type in the database.
	Label = "user_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldOverallCompletion holds the string denoting the overall_completion field in the database.
	FieldOverallCompletion = "overall_completion"
	// FieldPerPathCompletion holds the string denoting the per_path_completion field in the database.
	FieldPerPathCompletion = "per_path_completion"
	// FieldMasteredItemCount holds the string denoting the mastered_item_count field in the database.
	FieldMasteredItemCount = "mastered_item_count"
	// FieldTotalItemCount holds the string denoting the total_item_count field in the database.
	FieldTotalItemCount = "total_item_count"
	// FieldLastUpdate holds the string denoting the last_update field in the database.
	FieldLastUpdate = "last_update"
	// Table holds the table name of the userprogress in the database.
	Table = "user_progresses"
)

// Columns holds all SQL columns for userprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldOverallCompletion,
	FieldPerPathCompletion,
	FieldMasteredItemCount,
	FieldTotalItemCount,
	FieldLastUpdate,
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
	// DefaultOverallCompletion holds the default value on creation for the "overall_completion" field.
	DefaultOverallCompletion float64
	// DefaultMasteredItemCount holds the default value on creation for the "mastered_item_count" field.
	DefaultMasteredItemCount int
	// DefaultTotalItemCount holds the default value on creation for the "total_item_count" field.
	DefaultTotalItemCount int
)

// OrderOption defines the ordering options for the UserProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByOverallCompletion orders the results by the overall_completion field.
func ByOverallCompletion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallCompletion, opts...).ToFunc()
}

// ByMasteredItemCount orders the results by the mastered_item_count field.
func ByMasteredItemCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteredItemCount, opts...).ToFunc()
}

// ByTotalItemCount orders the results by the total_item_count field.
func ByTotalItemCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalItemCount, opts...).ToFunc()
}

// ByLastUpdate orders the results by the last_update field.
func ByLastUpdate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdate, opts...).ToFunc()
}
