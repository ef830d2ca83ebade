// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oselot/stitchpath/ent/pathprogress"
	"github.com/oselot/stitchpath/ent/schema"
)

// PathProgress is the model entity for the PathProgress schema.
type PathProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// PathID holds the value of the "path_id" field.
	PathID string `json:"path_id,omitempty"`
	// Mastered items over total items in the path
	Completion float64 `json:"completion,omitempty"`
	// Item state keyed by content id
	PerItemState map[string]schema.ItemStateData `json:"per_item_state,omitempty"`
	// MasteredCount holds the value of the "mastered_count" field.
	MasteredCount int `json:"mastered_count,omitempty"`
	// Latest attempt time across the path
	LastUpdate   time.Time `json:"last_update,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathprogress.FieldPerItemState:
			values[i] = new([]byte)
		case pathprogress.FieldCompletion:
			values[i] = new(sql.NullFloat64)
		case pathprogress.FieldID, pathprogress.FieldMasteredCount:
			values[i] = new(sql.NullInt64)
		case pathprogress.FieldUserID, pathprogress.FieldPathID:
			values[i] = new(sql.NullString)
		case pathprogress.FieldLastUpdate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathProgress fields.
func (pp *PathProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pp.ID = int(value.Int64)
		case pathprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				pp.UserID = value.String
			}
		case pathprogress.FieldPathID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path_id", values[i])
			} else if value.Valid {
				pp.PathID = value.String
			}
		case pathprogress.FieldCompletion:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completion", values[i])
			} else if value.Valid {
				pp.Completion = value.Float64
			}
		case pathprogress.FieldPerItemState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field per_item_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &pp.PerItemState); err != nil {
					return fmt.Errorf("unmarshal field per_item_state: %w", err)
				}
			}
		case pathprogress.FieldMasteredCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastered_count", values[i])
			} else if value.Valid {
				pp.MasteredCount = int(value.Int64)
			}
		case pathprogress.FieldLastUpdate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_update", values[i])
			} else if value.Valid {
				pp.LastUpdate = value.Time
			}
		default:
			pp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathProgress.
// This includes values selected through modifiers, order, etc.
func (pp *PathProgress) Value(name string) (ent.Value, error) {
	return pp.selectValues.Get(name)
}

// Update returns a builder for updating this PathProgress.
// Note that you need to call PathProgress.Unwrap() before calling this method if this PathProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (pp *PathProgress) Update() *PathProgressUpdateOne {
	return NewPathProgressClient(pp.config).UpdateOne(pp)
}

// Unwrap unwraps the PathProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pp *PathProgress) Unwrap() *PathProgress {
	_tx, ok := pp.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathProgress is not a transactional entity")
	}
	pp.config.driver = _tx.drv
	return pp
}

// String implements the fmt.Stringer.
func (pp *PathProgress) String() string {
	var builder strings.Builder
	builder.WriteString("PathProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pp.ID))
	builder.WriteString("user_id=")
	builder.WriteString(pp.UserID)
	builder.WriteString(", ")
	builder.WriteString("path_id=")
	builder.WriteString(pp.PathID)
	builder.WriteString(", ")
	builder.WriteString("completion=")
	builder.WriteString(fmt.Sprintf("%v", pp.Completion))
	builder.WriteString(", ")
	builder.WriteString("per_item_state=")
	builder.WriteString(fmt.Sprintf("%v", pp.PerItemState))
	builder.WriteString(", ")
	builder.WriteString("mastered_count=")
	builder.WriteString(fmt.Sprintf("%v", pp.MasteredCount))
	builder.WriteString(", ")
	builder.WriteString("last_update=")
	builder.WriteString(pp.LastUpdate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PathProgresses is a parsable slice of PathProgress.
type PathProgresses []*PathProgress
