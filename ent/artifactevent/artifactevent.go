// Code generated by ent, DO NOT EDIT.

package artifactevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the artifactevent type in the database.
	Label = "artifact_event"
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
	// FieldSlotKey holds the string denoting the slot_key field in the database.
	FieldSlotKey = "slot_key"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldLineCount holds the string denoting the line_count field in the database.
	FieldLineCount = "line_count"
	// FieldTruncated holds the string denoting the truncated field in the database.
	FieldTruncated = "truncated"
	// Table holds the table name of the artifactevent in the database.
	Table = "artifact_events"
)

// Columns holds all SQL columns for artifactevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldConversationID,
	FieldArtifactID,
	FieldSlotKey,
	FieldTitle,
	FieldLanguage,
	FieldVersion,
	FieldLineCount,
	FieldTruncated,
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
	// SlotKeyValidator is a validator for the "slot_key" field. It is called by the builders before save.
	SlotKeyValidator func(string) error
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultLineCount holds the default value on creation for the "line_count" field.
	DefaultLineCount int
	// DefaultTruncated holds the default value on creation for the "truncated" field.
	DefaultTruncated bool
)

// OrderOption defines the ordering options for the ArtifactEvent queries.
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

// BySlotKey orders the results by the slot_key field.
func BySlotKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotKey, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByLineCount orders the results by the line_count field.
func ByLineCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineCount, opts...).ToFunc()
}

// ByTruncated orders the results by the truncated field.
func ByTruncated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTruncated, opts...).ToFunc()
}
