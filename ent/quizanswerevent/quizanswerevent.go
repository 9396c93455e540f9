// Code generated by ent, DO NOT EDIT.

package quizanswerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizanswerevent type in the database.
	Label = "quiz_answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldArtifactID holds the string denoting the artifact_id field in the database.
	FieldArtifactID = "artifact_id"
	// FieldQuizID holds the string denoting the quiz_id field in the database.
	FieldQuizID = "quiz_id"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldUserAnswer holds the string denoting the user_answer field in the database.
	FieldUserAnswer = "user_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldGateLevel holds the string denoting the gate_level field in the database.
	FieldGateLevel = "gate_level"
	// FieldTurn holds the string denoting the turn field in the database.
	FieldTurn = "turn"
	// FieldFallback holds the string denoting the fallback field in the database.
	FieldFallback = "fallback"
	// Table holds the table name of the quizanswerevent in the database.
	Table = "quiz_answer_events"
)

// Columns holds all SQL columns for quizanswerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldConversationID,
	FieldArtifactID,
	FieldQuizID,
	FieldQuestion,
	FieldUserAnswer,
	FieldCorrect,
	FieldGateLevel,
	FieldTurn,
	FieldFallback,
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
	// ConversationIDValidator is a validator for the "conversation_id" field. It is called by the builders before save.
	ConversationIDValidator func(string) error
	// ArtifactIDValidator is a validator for the "artifact_id" field. It is called by the builders before save.
	ArtifactIDValidator func(string) error
	// QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	QuizIDValidator func(string) error
	// QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	QuestionValidator func(string) error
	// UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	UserAnswerValidator func(string) error
	// DefaultTurn holds the default value on creation for the "turn" field.
	DefaultTurn int
	// DefaultFallback holds the default value on creation for the "fallback" field.
	DefaultFallback bool
)

// OrderOption defines the ordering options for the QuizAnswerEvent queries.
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

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByArtifactID orders the results by the artifact_id field.
func ByArtifactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactID, opts...).ToFunc()
}

// ByQuizID orders the results by the quiz_id field.
func ByQuizID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizID, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByUserAnswer orders the results by the user_answer field.
func ByUserAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByGateLevel orders the results by the gate_level field.
func ByGateLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGateLevel, opts...).ToFunc()
}

// ByTurn orders the results by the turn field.
func ByTurn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurn, opts...).ToFunc()
}

// ByFallback orders the results by the fallback field.
func ByFallback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallback, opts...).ToFunc()
}
