// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dkasab/unveil/ent/artifactevent"
)

// ArtifactEvent is the model entity for the ArtifactEvent schema.
type ArtifactEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Owning conversation
	ConversationID string `json:"conversation_id,omitempty"`
	// Content-fingerprint id of this version
	ArtifactID string `json:"artifact_id,omitempty"`
	// Logical slot: title/language or ordinal fallback
	SlotKey string `json:"slot_key,omitempty"`
	// Marker title, may be empty
	Title string `json:"title,omitempty"`
	// Marker language, may be empty
	Language string `json:"language,omitempty"`
	// Version within the slot, starting at 1
	Version int `json:"version,omitempty"`
	// Lines in the body
	LineCount int `json:"line_count,omitempty"`
	// Whether the body looked cut off
	Truncated    bool `json:"truncated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ArtifactEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case artifactevent.FieldTruncated:
			values[i] = new(sql.NullBool)
		case artifactevent.FieldID, artifactevent.FieldSequence, artifactevent.FieldVersion, artifactevent.FieldLineCount:
			values[i] = new(sql.NullInt64)
		case artifactevent.FieldConversationID, artifactevent.FieldArtifactID, artifactevent.FieldSlotKey, artifactevent.FieldTitle, artifactevent.FieldLanguage:
			values[i] = new(sql.NullString)
		case artifactevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ArtifactEvent fields.
func (_m *ArtifactEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case artifactevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case artifactevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case artifactevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case artifactevent.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case artifactevent.FieldArtifactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_id", values[i])
			} else if value.Valid {
				_m.ArtifactID = value.String
			}
		case artifactevent.FieldSlotKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slot_key", values[i])
			} else if value.Valid {
				_m.SlotKey = value.String
			}
		case artifactevent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case artifactevent.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case artifactevent.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case artifactevent.FieldLineCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field line_count", values[i])
			} else if value.Valid {
				_m.LineCount = int(value.Int64)
			}
		case artifactevent.FieldTruncated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field truncated", values[i])
			} else if value.Valid {
				_m.Truncated = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ArtifactEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ArtifactEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ArtifactEvent.
// Note that you need to call ArtifactEvent.Unwrap() before calling this method if this ArtifactEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ArtifactEvent) Update() *ArtifactEventUpdateOne {
	return NewArtifactEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ArtifactEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ArtifactEvent) Unwrap() *ArtifactEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ArtifactEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ArtifactEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ArtifactEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("artifact_id=")
	builder.WriteString(_m.ArtifactID)
	builder.WriteString(", ")
	builder.WriteString("slot_key=")
	builder.WriteString(_m.SlotKey)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("line_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineCount))
	builder.WriteString(", ")
	builder.WriteString("truncated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Truncated))
	builder.WriteByte(')')
	return builder.String()
}

// ArtifactEvents is a parsable slice of ArtifactEvent.
type ArtifactEvents []*ArtifactEvent
