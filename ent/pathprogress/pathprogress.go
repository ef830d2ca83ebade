// Code generated by ent, DO NOT EDIT.

package pathprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pathprogress type in the database.
	Label = "path_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPathID holds the string denoting the path_id field in the database.
	FieldPathID = "path_id"
	// FieldCompletion holds the string denoting the completion field in the database.
	FieldCompletion = "completion"
	// FieldPerItemState holds the string denoting the per_item_state field in the database.
	FieldPerItemState = "per_item_state"
	// FieldMasteredCount holds the string denoting the mastered_count field in the database.
	FieldMasteredCount = "mastered_count"
	// FieldLastUpdate holds the string denoting the last_update field in the database.
	FieldLastUpdate = "last_update"
	// Table holds the table name of the pathprogress in the database.
	Table = "path_progresses"
)

// Columns holds all SQL columns for pathprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldPathID,
	FieldCompletion,
	FieldPerItemState,
	FieldMasteredCount,
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
	// PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	PathIDValidator func(string) error
	// DefaultCompletion holds the default value on creation for the "completion" field.
	DefaultCompletion float64
	// DefaultMasteredCount holds the default value on creation for the "mastered_count" field.
	DefaultMasteredCount int
)

// OrderOption defines the ordering options for the PathProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPathID orders the results by the path_id field.
func ByPathID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathID, opts...).ToFunc()
}

// ByCompletion orders the results by the completion field.
func ByCompletion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletion, opts...).ToFunc()
}

// ByMasteredCount orders the results by the mastered_count field.
func ByMasteredCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteredCount, opts...).ToFunc()
}

// ByLastUpdate orders the results by the last_update field.
func ByLastUpdate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdate, opts...).ToFunc()
}
