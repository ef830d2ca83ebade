// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oselot/stitchpath/ent/contentmastery"
)

// ContentMastery is the model entity for the ContentMastery schema.
type ContentMastery struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ContentID holds the value of the "content_id" field.
	ContentID string `json:"content_id,omitempty"`
	// Current level in [0,1] after decay and blending
	MasteryLevel float64 `json:"mastery_level,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// Zero until the first attempt
	LastAttemptTime time.Time `json:"last_attempt_time,omitempty"`
	// Zero until the first attempt
	NextReviewTime time.Time `json:"next_review_time,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContentMastery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contentmastery.FieldMasteryLevel:
			values[i] = new(sql.NullFloat64)
		case contentmastery.FieldID, contentmastery.FieldAttemptCount:
			values[i] = new(sql.NullInt64)
		case contentmastery.FieldUserID, contentmastery.FieldContentID:
			values[i] = new(sql.NullString)
		case contentmastery.FieldLastAttemptTime, contentmastery.FieldNextReviewTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContentMastery fields.
func (cm *ContentMastery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contentmastery.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			cm.ID = int(value.Int64)
		case contentmastery.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				cm.UserID = value.String
			}
		case contentmastery.FieldContentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value.Valid {
				cm.ContentID = value.String
			}
		case contentmastery.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				cm.MasteryLevel = value.Float64
			}
		case contentmastery.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				cm.AttemptCount = int(value.Int64)
			}
		case contentmastery.FieldLastAttemptTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempt_time", values[i])
			} else if value.Valid {
				cm.LastAttemptTime = value.Time
			}
		case contentmastery.FieldNextReviewTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_time", values[i])
			} else if value.Valid {
				cm.NextReviewTime = value.Time
			}
		default:
			cm.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContentMastery.
// This includes values selected through modifiers, order, etc.
func (cm *ContentMastery) Value(name string) (ent.Value, error) {
	return cm.selectValues.Get(name)
}

// Update returns a builder for updating this ContentMastery.
// Note that you need to call ContentMastery.Unwrap() before calling this method if this ContentMastery
// was returned from a transaction, and the transaction was committed or rolled back.
func (cm *ContentMastery) Update() *ContentMasteryUpdateOne {
	return NewContentMasteryClient(cm.config).UpdateOne(cm)
}

// Unwrap unwraps the ContentMastery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cm *ContentMastery) Unwrap() *ContentMastery {
	_tx, ok := cm.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContentMastery is not a transactional entity")
	}
	cm.config.driver = _tx.drv
	return cm
}

// String implements the fmt.Stringer.
func (cm *ContentMastery) String() string {
	var builder strings.Builder
	builder.WriteString("ContentMastery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cm.ID))
	builder.WriteString("user_id=")
	builder.WriteString(cm.UserID)
	builder.WriteString(", ")
	builder.WriteString("content_id=")
	builder.WriteString(cm.ContentID)
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(fmt.Sprintf("%v", cm.MasteryLevel))
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", cm.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("last_attempt_time=")
	builder.WriteString(cm.LastAttemptTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("next_review_time=")
	builder.WriteString(cm.NextReviewTime.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContentMasteries is a parsable slice of ContentMastery.
type ContentMasteries []*ContentMastery
