// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dkasab/unveil/ent/quizanswerevent"
)

// QuizAnswerEvent is the model entity for the QuizAnswerEvent schema.
type QuizAnswerEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Owning conversation
	ConversationID string `json:"conversation_id,omitempty"`
	// Artifact version the quiz was about
	ArtifactID string `json:"artifact_id,omitempty"`
	// Quiz the answer was submitted against
	QuizID string `json:"quiz_id,omitempty"`
	// The question shown
	Question string `json:"question,omitempty"`
	// What the learner submitted
	UserAnswer string `json:"user_answer,omitempty"`
	// Whether the answer passed the gate
	Correct bool `json:"correct,omitempty"`
	// Gate the quiz guarded (0-based)
	GateLevel int `json:"gate_level,omitempty"`
	// Conversation turn the answer was given at
	Turn int `json:"turn,omitempty"`
	// Whether the quiz was locally synthesized
	Fallback     bool `json:"fallback,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizAnswerEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizanswerevent.FieldCorrect, quizanswerevent.FieldFallback:
			values[i] = new(sql.NullBool)
		case quizanswerevent.FieldID, quizanswerevent.FieldSequence, quizanswerevent.FieldGateLevel, quizanswerevent.FieldTurn:
			values[i] = new(sql.NullInt64)
		case quizanswerevent.FieldConversationID, quizanswerevent.FieldArtifactID, quizanswerevent.FieldQuizID, quizanswerevent.FieldQuestion, quizanswerevent.FieldUserAnswer:
			values[i] = new(sql.NullString)
		case quizanswerevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizAnswerEvent fields.
func (_m *QuizAnswerEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizanswerevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizanswerevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case quizanswerevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case quizanswerevent.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case quizanswerevent.FieldArtifactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_id", values[i])
			} else if value.Valid {
				_m.ArtifactID = value.String
			}
		case quizanswerevent.FieldQuizID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_id", values[i])
			} else if value.Valid {
				_m.QuizID = value.String
			}
		case quizanswerevent.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case quizanswerevent.FieldUserAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_answer", values[i])
			} else if value.Valid {
				_m.UserAnswer = value.String
			}
		case quizanswerevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case quizanswerevent.FieldGateLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gate_level", values[i])
			} else if value.Valid {
				_m.GateLevel = int(value.Int64)
			}
		case quizanswerevent.FieldTurn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn", values[i])
			} else if value.Valid {
				_m.Turn = int(value.Int64)
			}
		case quizanswerevent.FieldFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fallback", values[i])
			} else if value.Valid {
				_m.Fallback = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizAnswerEvent.
// This includes values selected through modifiers, order, etc.
func (_m *QuizAnswerEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizAnswerEvent.
// Note that you need to call QuizAnswerEvent.Unwrap() before calling this method if this QuizAnswerEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizAnswerEvent) Update() *QuizAnswerEventUpdateOne {
	return NewQuizAnswerEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizAnswerEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizAnswerEvent) Unwrap() *QuizAnswerEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizAnswerEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizAnswerEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuizAnswerEvent(")
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
	builder.WriteString("quiz_id=")
	builder.WriteString(_m.QuizID)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("user_answer=")
	builder.WriteString(_m.UserAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("gate_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.GateLevel))
	builder.WriteString(", ")
	builder.WriteString("turn=")
	builder.WriteString(fmt.Sprintf("%v", _m.Turn))
	builder.WriteString(", ")
	builder.WriteString("fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fallback))
	builder.WriteByte(')')
	return builder.String()
}

// QuizAnswerEvents is a parsable slice of QuizAnswerEvent.
type QuizAnswerEvents []*QuizAnswerEvent
