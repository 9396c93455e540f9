// Code generated by ent, DO NOT EDIT.

package artifactevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dkasab/unveil/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldConversationID, v))
}

// ArtifactID applies equality check predicate on the "artifact_id" field. It's identical to ArtifactIDEQ.
func ArtifactID(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldArtifactID, v))
}

// SlotKey applies equality check predicate on the "slot_key" field. It's identical to SlotKeyEQ.
func SlotKey(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldSlotKey, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldTitle, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldLanguage, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldVersion, v))
}

// LineCount applies equality check predicate on the "line_count" field. It's identical to LineCountEQ.
func LineCount(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldLineCount, v))
}

// Truncated applies equality check predicate on the "truncated" field. It's identical to TruncatedEQ.
func Truncated(v bool) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldTruncated, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldContainsFold(FieldConversationID, v))
}

// ArtifactIDEQ applies the EQ predicate on the "artifact_id" field.
func ArtifactIDEQ(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldArtifactID, v))
}

// ArtifactIDNEQ applies the NEQ predicate on the "artifact_id" field.
func ArtifactIDNEQ(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNEQ(FieldArtifactID, v))
}

// ArtifactIDIn applies the In predicate on the "artifact_id" field.
func ArtifactIDIn(vs ...string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldIn(FieldArtifactID, vs...))
}

// ArtifactIDNotIn applies the NotIn predicate on the "artifact_id" field.
func ArtifactIDNotIn(vs ...string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNotIn(FieldArtifactID, vs...))
}

// ArtifactIDGT applies the GT predicate on the "artifact_id" field.
func ArtifactIDGT(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGT(FieldArtifactID, v))
}

// ArtifactIDGTE applies the GTE predicate on the "artifact_id" field.
func ArtifactIDGTE(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGTE(FieldArtifactID, v))
}

// ArtifactIDLT applies the LT predicate on the "artifact_id" field.
func ArtifactIDLT(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLT(FieldArtifactID, v))
}

// ArtifactIDLTE applies the LTE predicate on the "artifact_id" field.
func ArtifactIDLTE(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLTE(FieldArtifactID, v))
}

// ArtifactIDContains applies the Contains predicate on the "artifact_id" field.
func ArtifactIDContains(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldContains(FieldArtifactID, v))
}

// ArtifactIDHasPrefix applies the HasPrefix predicate on the "artifact_id" field.
func ArtifactIDHasPrefix(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldHasPrefix(FieldArtifactID, v))
}

// ArtifactIDHasSuffix applies the HasSuffix predicate on the "artifact_id" field.
func ArtifactIDHasSuffix(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldHasSuffix(FieldArtifactID, v))
}

// ArtifactIDEqualFold applies the EqualFold predicate on the "artifact_id" field.
func ArtifactIDEqualFold(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEqualFold(FieldArtifactID, v))
}

// ArtifactIDContainsFold applies the ContainsFold predicate on the "artifact_id" field.
func ArtifactIDContainsFold(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldContainsFold(FieldArtifactID, v))
}

// SlotKeyEQ applies the EQ predicate on the "slot_key" field.
func SlotKeyEQ(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldSlotKey, v))
}

// SlotKeyNEQ applies the NEQ predicate on the "slot_key" field.
func SlotKeyNEQ(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNEQ(FieldSlotKey, v))
}

// SlotKeyIn applies the In predicate on the "slot_key" field.
func SlotKeyIn(vs ...string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldIn(FieldSlotKey, vs...))
}

// SlotKeyNotIn applies the NotIn predicate on the "slot_key" field.
func SlotKeyNotIn(vs ...string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNotIn(FieldSlotKey, vs...))
}

// SlotKeyGT applies the GT predicate on the "slot_key" field.
func SlotKeyGT(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGT(FieldSlotKey, v))
}

// SlotKeyGTE applies the GTE predicate on the "slot_key" field.
func SlotKeyGTE(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGTE(FieldSlotKey, v))
}

// SlotKeyLT applies the LT predicate on the "slot_key" field.
func SlotKeyLT(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLT(FieldSlotKey, v))
}

// SlotKeyLTE applies the LTE predicate on the "slot_key" field.
func SlotKeyLTE(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLTE(FieldSlotKey, v))
}

// SlotKeyContains applies the Contains predicate on the "slot_key" field.
func SlotKeyContains(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldContains(FieldSlotKey, v))
}

// SlotKeyHasPrefix applies the HasPrefix predicate on the "slot_key" field.
func SlotKeyHasPrefix(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldHasPrefix(FieldSlotKey, v))
}

// SlotKeyHasSuffix applies the HasSuffix predicate on the "slot_key" field.
func SlotKeyHasSuffix(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldHasSuffix(FieldSlotKey, v))
}

// SlotKeyEqualFold applies the EqualFold predicate on the "slot_key" field.
func SlotKeyEqualFold(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEqualFold(FieldSlotKey, v))
}

// SlotKeyContainsFold applies the ContainsFold predicate on the "slot_key" field.
func SlotKeyContainsFold(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldContainsFold(FieldSlotKey, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldContainsFold(FieldTitle, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldContainsFold(FieldLanguage, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLTE(FieldVersion, v))
}

// LineCountEQ applies the EQ predicate on the "line_count" field.
func LineCountEQ(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldLineCount, v))
}

// LineCountNEQ applies the NEQ predicate on the "line_count" field.
func LineCountNEQ(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNEQ(FieldLineCount, v))
}

// LineCountIn applies the In predicate on the "line_count" field.
func LineCountIn(vs ...int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldIn(FieldLineCount, vs...))
}

// LineCountNotIn applies the NotIn predicate on the "line_count" field.
func LineCountNotIn(vs ...int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNotIn(FieldLineCount, vs...))
}

// LineCountGT applies the GT predicate on the "line_count" field.
func LineCountGT(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGT(FieldLineCount, v))
}

// LineCountGTE applies the GTE predicate on the "line_count" field.
func LineCountGTE(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldGTE(FieldLineCount, v))
}

// LineCountLT applies the LT predicate on the "line_count" field.
func LineCountLT(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLT(FieldLineCount, v))
}

// LineCountLTE applies the LTE predicate on the "line_count" field.
func LineCountLTE(v int) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldLTE(FieldLineCount, v))
}

// TruncatedEQ applies the EQ predicate on the "truncated" field.
func TruncatedEQ(v bool) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldEQ(FieldTruncated, v))
}

// TruncatedNEQ applies the NEQ predicate on the "truncated" field.
func TruncatedNEQ(v bool) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.FieldNEQ(FieldTruncated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ArtifactEvent) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ArtifactEvent) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ArtifactEvent) predicate.ArtifactEvent {
	return predicate.ArtifactEvent(sql.NotPredicates(p))
}
