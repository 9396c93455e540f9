// Code generated by ent, DO NOT EDIT.

package quizanswerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dkasab/unveil/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldConversationID, v))
}

// ArtifactID applies equality check predicate on the "artifact_id" field. It's identical to ArtifactIDEQ.
func ArtifactID(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldArtifactID, v))
}

// QuizID applies equality check predicate on the "quiz_id" field. It's identical to QuizIDEQ.
func QuizID(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldQuizID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldQuestion, v))
}

// UserAnswer applies equality check predicate on the "user_answer" field. It's identical to UserAnswerEQ.
func UserAnswer(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldUserAnswer, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// GateLevel applies equality check predicate on the "gate_level" field. It's identical to GateLevelEQ.
func GateLevel(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldGateLevel, v))
}

// Turn applies equality check predicate on the "turn" field. It's identical to TurnEQ.
func Turn(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTurn, v))
}

// Fallback applies equality check predicate on the "fallback" field. It's identical to FallbackEQ.
func Fallback(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldFallback, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldConversationID, v))
}

// ArtifactIDEQ applies the EQ predicate on the "artifact_id" field.
func ArtifactIDEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldArtifactID, v))
}

// ArtifactIDNEQ applies the NEQ predicate on the "artifact_id" field.
func ArtifactIDNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldArtifactID, v))
}

// ArtifactIDIn applies the In predicate on the "artifact_id" field.
func ArtifactIDIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldArtifactID, vs...))
}

// ArtifactIDNotIn applies the NotIn predicate on the "artifact_id" field.
func ArtifactIDNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldArtifactID, vs...))
}

// ArtifactIDGT applies the GT predicate on the "artifact_id" field.
func ArtifactIDGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldArtifactID, v))
}

// ArtifactIDGTE applies the GTE predicate on the "artifact_id" field.
func ArtifactIDGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldArtifactID, v))
}

// ArtifactIDLT applies the LT predicate on the "artifact_id" field.
func ArtifactIDLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldArtifactID, v))
}

// ArtifactIDLTE applies the LTE predicate on the "artifact_id" field.
func ArtifactIDLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldArtifactID, v))
}

// ArtifactIDContains applies the Contains predicate on the "artifact_id" field.
func ArtifactIDContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldArtifactID, v))
}

// ArtifactIDHasPrefix applies the HasPrefix predicate on the "artifact_id" field.
func ArtifactIDHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldArtifactID, v))
}

// ArtifactIDHasSuffix applies the HasSuffix predicate on the "artifact_id" field.
func ArtifactIDHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldArtifactID, v))
}

// ArtifactIDEqualFold applies the EqualFold predicate on the "artifact_id" field.
func ArtifactIDEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldArtifactID, v))
}

// ArtifactIDContainsFold applies the ContainsFold predicate on the "artifact_id" field.
func ArtifactIDContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldArtifactID, v))
}

// QuizIDEQ applies the EQ predicate on the "quiz_id" field.
func QuizIDEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldQuizID, v))
}

// QuizIDNEQ applies the NEQ predicate on the "quiz_id" field.
func QuizIDNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldQuizID, v))
}

// QuizIDIn applies the In predicate on the "quiz_id" field.
func QuizIDIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldQuizID, vs...))
}

// QuizIDNotIn applies the NotIn predicate on the "quiz_id" field.
func QuizIDNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldQuizID, vs...))
}

// QuizIDGT applies the GT predicate on the "quiz_id" field.
func QuizIDGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldQuizID, v))
}

// QuizIDGTE applies the GTE predicate on the "quiz_id" field.
func QuizIDGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldQuizID, v))
}

// QuizIDLT applies the LT predicate on the "quiz_id" field.
func QuizIDLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldQuizID, v))
}

// QuizIDLTE applies the LTE predicate on the "quiz_id" field.
func QuizIDLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldQuizID, v))
}

// QuizIDContains applies the Contains predicate on the "quiz_id" field.
func QuizIDContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldQuizID, v))
}

// QuizIDHasPrefix applies the HasPrefix predicate on the "quiz_id" field.
func QuizIDHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldQuizID, v))
}

// QuizIDHasSuffix applies the HasSuffix predicate on the "quiz_id" field.
func QuizIDHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldQuizID, v))
}

// QuizIDEqualFold applies the EqualFold predicate on the "quiz_id" field.
func QuizIDEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldQuizID, v))
}

// QuizIDContainsFold applies the ContainsFold predicate on the "quiz_id" field.
func QuizIDContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldQuizID, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldQuestion, v))
}

// UserAnswerEQ applies the EQ predicate on the "user_answer" field.
func UserAnswerEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldUserAnswer, v))
}

// UserAnswerNEQ applies the NEQ predicate on the "user_answer" field.
func UserAnswerNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldUserAnswer, v))
}

// UserAnswerIn applies the In predicate on the "user_answer" field.
func UserAnswerIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldUserAnswer, vs...))
}

// UserAnswerNotIn applies the NotIn predicate on the "user_answer" field.
func UserAnswerNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldUserAnswer, vs...))
}

// UserAnswerGT applies the GT predicate on the "user_answer" field.
func UserAnswerGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldUserAnswer, v))
}

// UserAnswerGTE applies the GTE predicate on the "user_answer" field.
func UserAnswerGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldUserAnswer, v))
}

// UserAnswerLT applies the LT predicate on the "user_answer" field.
func UserAnswerLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldUserAnswer, v))
}

// UserAnswerLTE applies the LTE predicate on the "user_answer" field.
func UserAnswerLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldUserAnswer, v))
}

// UserAnswerContains applies the Contains predicate on the "user_answer" field.
func UserAnswerContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldUserAnswer, v))
}

// UserAnswerHasPrefix applies the HasPrefix predicate on the "user_answer" field.
func UserAnswerHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldUserAnswer, v))
}

// UserAnswerHasSuffix applies the HasSuffix predicate on the "user_answer" field.
func UserAnswerHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldUserAnswer, v))
}

// UserAnswerEqualFold applies the EqualFold predicate on the "user_answer" field.
func UserAnswerEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldUserAnswer, v))
}

// UserAnswerContainsFold applies the ContainsFold predicate on the "user_answer" field.
func UserAnswerContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldUserAnswer, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldCorrect, v))
}

// GateLevelEQ applies the EQ predicate on the "gate_level" field.
func GateLevelEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldGateLevel, v))
}

// GateLevelNEQ applies the NEQ predicate on the "gate_level" field.
func GateLevelNEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldGateLevel, v))
}

// GateLevelIn applies the In predicate on the "gate_level" field.
func GateLevelIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldGateLevel, vs...))
}

// GateLevelNotIn applies the NotIn predicate on the "gate_level" field.
func GateLevelNotIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldGateLevel, vs...))
}

// GateLevelGT applies the GT predicate on the "gate_level" field.
func GateLevelGT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldGateLevel, v))
}

// GateLevelGTE applies the GTE predicate on the "gate_level" field.
func GateLevelGTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldGateLevel, v))
}

// GateLevelLT applies the LT predicate on the "gate_level" field.
func GateLevelLT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldGateLevel, v))
}

// GateLevelLTE applies the LTE predicate on the "gate_level" field.
func GateLevelLTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldGateLevel, v))
}

// TurnEQ applies the EQ predicate on the "turn" field.
func TurnEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTurn, v))
}

// TurnNEQ applies the NEQ predicate on the "turn" field.
func TurnNEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldTurn, v))
}

// TurnIn applies the In predicate on the "turn" field.
func TurnIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldTurn, vs...))
}

// TurnNotIn applies the NotIn predicate on the "turn" field.
func TurnNotIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldTurn, vs...))
}

// TurnGT applies the GT predicate on the "turn" field.
func TurnGT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldTurn, v))
}

// TurnGTE applies the GTE predicate on the "turn" field.
func TurnGTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldTurn, v))
}

// TurnLT applies the LT predicate on the "turn" field.
func TurnLT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldTurn, v))
}

// TurnLTE applies the LTE predicate on the "turn" field.
func TurnLTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldTurn, v))
}

// FallbackEQ applies the EQ predicate on the "fallback" field.
func FallbackEQ(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldFallback, v))
}

// FallbackNEQ applies the NEQ predicate on the "fallback" field.
func FallbackNEQ(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldFallback, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAnswerEvent) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAnswerEvent) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAnswerEvent) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.NotPredicates(p))
}
