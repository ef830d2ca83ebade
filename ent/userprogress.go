// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oselot/stitchpath/ent/userprogress"
)

// UserProgress is the model entity for the UserProgress schema.
type UserProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Weight-normalized average of per-path completions
	OverallCompletion float64 `json:"overall_completion,omitempty"`
	// Completion fraction keyed by path id
	PerPathCompletion map[string]float64 `json:"per_path_completion,omitempty"`
	// MasteredItemCount holds the value of the "mastered_item_count" field.
	MasteredItemCount int `json:"mastered_item_count,omitempty"`
	// TotalItemCount holds the value of the "total_item_count" field.
	TotalItemCount int `json:"total_item_count,omitempty"`
	// LastUpdate holds the value of the "last_update" field.
	LastUpdate   time.Time `json:"last_update,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userprogress.FieldPerPathCompletion:
			values[i] = new([]byte)
		case userprogress.FieldOverallCompletion:
			values[i] = new(sql.NullFloat64)
		case userprogress.FieldID, userprogress.FieldMasteredItemCount, userprogress.FieldTotalItemCount:
			values[i] = new(sql.NullInt64)
		case userprogress.FieldUserID:
			values[i] = new(sql.NullString)
		case userprogress.FieldLastUpdate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserProgress fields.
func (up *UserProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			up.ID = int(value.Int64)
		case userprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				up.UserID = value.String
			}
		case userprogress.FieldOverallCompletion:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_completion", values[i])
			} else if value.Valid {
				up.OverallCompletion = value.Float64
			}
		case userprogress.FieldPerPathCompletion:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field per_path_completion", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &up.PerPathCompletion); err != nil {
					return fmt.Errorf("unmarshal field per_path_completion: %w", err)
				}
			}
		case userprogress.FieldMasteredItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastered_item_count", values[i])
			} else if value.Valid {
				up.MasteredItemCount = int(value.Int64)
			}
		case userprogress.FieldTotalItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_item_count", values[i])
			} else if value.Valid {
				up.TotalItemCount = int(value.Int64)
			}
		case userprogress.FieldLastUpdate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_update", values[i])
			} else if value.Valid {
				up.LastUpdate = value.Time
			}
		default:
			up.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserProgress.
// This includes values selected through modifiers, order, etc.
func (up *UserProgress) Value(name string) (ent.Value, error) {
	return up.selectValues.Get(name)
}

// Update returns a builder for updating this UserProgress.
// Note that you need to call UserProgress.Unwrap() before calling this method if this UserProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (up *UserProgress) Update() *UserProgressUpdateOne {
	return NewUserProgressClient(up.config).UpdateOne(up)
}

// Unwrap unwraps the UserProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (up *UserProgress) Unwrap() *UserProgress {
	_tx, ok := up.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserProgress is not a transactional entity")
	}
	up.config.driver = _tx.drv
	return up
}

// String implements the fmt.Stringer.
func (up *UserProgress) String() string {
	var builder strings.Builder
	builder.WriteString("UserProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", up.ID))
	builder.WriteString("user_id=")
	builder.WriteString(up.UserID)
	builder.WriteString(", ")
	builder.WriteString("overall_completion=")
	builder.WriteString(fmt.Sprintf("%v", up.OverallCompletion))
	builder.WriteString(", ")
	builder.WriteString("per_path_completion=")
	builder.WriteString(fmt.Sprintf("%v", up.PerPathCompletion))
	builder.WriteString(", ")
	builder.WriteString("mastered_item_count=")
	builder.WriteString(fmt.Sprintf("%v", up.MasteredItemCount))
	builder.WriteString(", ")
	builder.WriteString("total_item_count=")
	builder.WriteString(fmt.Sprintf("%v", up.TotalItemCount))
	builder.WriteString(", ")
	builder.WriteString("last_update=")
	builder.WriteString(up.LastUpdate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserProgresses is a parsable slice of UserProgress.
type UserProgresses []*UserProgress
