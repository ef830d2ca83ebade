// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPathID holds the string denoting the path_id field in the database.
	FieldPathID = "path_id"
	// FieldContentID holds the string denoting the content_id field in the database.
	FieldContentID = "content_id"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldFtcCount holds the string denoting the ftc_count field in the database.
	FieldFtcCount = "ftc_count"
	// FieldEcCount holds the string denoting the ec_count field in the database.
	FieldEcCount = "ec_count"
	// FieldIncorrectCount holds the string denoting the incorrect_count field in the database.
	FieldIncorrectCount = "incorrect_count"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldBasePoints holds the string denoting the base_points field in the database.
	FieldBasePoints = "base_points"
	// FieldBonusMultiplier holds the string denoting the bonus_multiplier field in the database.
	FieldBonusMultiplier = "bonus_multiplier"
	// FieldTotalPoints holds the string denoting the total_points field in the database.
	FieldTotalPoints = "total_points"
	// FieldEvolution holds the string denoting the evolution field in the database.
	FieldEvolution = "evolution"
	// FieldMasteryAfter holds the string denoting the mastery_after field in the database.
	FieldMasteryAfter = "mastery_after"
	// FieldDayStreak holds the string denoting the day_streak field in the database.
	FieldDayStreak = "day_streak"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldUserID,
	FieldPathID,
	FieldContentID,
	FieldQuestionCount,
	FieldFtcCount,
	FieldEcCount,
	FieldIncorrectCount,
	FieldDurationMs,
	FieldBasePoints,
	FieldBonusMultiplier,
	FieldTotalPoints,
	FieldEvolution,
	FieldMasteryAfter,
	FieldDayStreak,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	PathIDValidator func(string) error
	// ContentIDValidator is a validator for the "content_id" field. It is called by the builders before save.
	ContentIDValidator func(string) error
	// DefaultQuestionCount holds the default value on creation for the "question_count" field.
	DefaultQuestionCount int
	// DefaultFtcCount holds the default value on creation for the "ftc_count" field.
	DefaultFtcCount int
	// DefaultEcCount holds the default value on creation for the "ec_count" field.
	DefaultEcCount int
	// DefaultIncorrectCount holds the default value on creation for the "incorrect_count" field.
	DefaultIncorrectCount int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int
	// DefaultBasePoints holds the default value on creation for the "base_points" field.
	DefaultBasePoints int
	// DefaultBonusMultiplier holds the default value on creation for the "bonus_multiplier" field.
	DefaultBonusMultiplier float64
	// DefaultTotalPoints holds the default value on creation for the "total_points" field.
	DefaultTotalPoints int
	// DefaultEvolution holds the default value on creation for the "evolution" field.
	DefaultEvolution int
	// DefaultMasteryAfter holds the default value on creation for the "mastery_after" field.
	DefaultMasteryAfter float64
	// DefaultDayStreak holds the default value on creation for the "day_streak" field.
	DefaultDayStreak int
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPathID orders the results by the path_id field.
func ByPathID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathID, opts...).ToFunc()
}

// ByContentID orders the results by the content_id field.
func ByContentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentID, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByFtcCount orders the results by the ftc_count field.
func ByFtcCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFtcCount, opts...).ToFunc()
}

// ByEcCount orders the results by the ec_count field.
func ByEcCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEcCount, opts...).ToFunc()
}

// ByIncorrectCount orders the results by the incorrect_count field.
func ByIncorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectCount, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByBasePoints orders the results by the base_points field.
func ByBasePoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBasePoints, opts...).ToFunc()
}

// ByBonusMultiplier orders the results by the bonus_multiplier field.
func ByBonusMultiplier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBonusMultiplier, opts...).ToFunc()
}

// ByTotalPoints orders the results by the total_points field.
func ByTotalPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPoints, opts...).ToFunc()
}

// ByEvolution orders the results by the evolution field.
func ByEvolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvolution, opts...).ToFunc()
}

// ByMasteryAfter orders the results by the mastery_after field.
func ByMasteryAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryAfter, opts...).ToFunc()
}

// ByDayStreak orders the results by the day_streak field.
func ByDayStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayStreak, opts...).ToFunc()
}
