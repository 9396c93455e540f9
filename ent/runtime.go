// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dkasab/unveil/ent/artifactevent"
	"github.com/dkasab/unveil/ent/llmrequestevent"
	"github.com/dkasab/unveil/ent/quizanswerevent"
	"github.com/dkasab/unveil/ent/schema"
	"github.com/dkasab/unveil/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artifacteventMixin := schema.ArtifactEvent{}.Mixin()
	artifacteventMixinFields0 := artifacteventMixin[0].Fields()
	_ = artifacteventMixinFields0
	artifacteventFields := schema.ArtifactEvent{}.Fields()
	_ = artifacteventFields
	// artifacteventDescTimestamp is the schema descriptor for timestamp field.
	artifacteventDescTimestamp := artifacteventMixinFields0[1].Descriptor()
	// artifactevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	artifactevent.DefaultTimestamp = artifacteventDescTimestamp.Default.(func() time.Time)
	// artifacteventDescConversationID is the schema descriptor for conversation_id field.
	artifacteventDescConversationID := artifacteventFields[0].Descriptor()
	// artifactevent.ConversationIDValidator is a validator for the "conversation_id" field. It is called by the builders before save.
	artifactevent.ConversationIDValidator = artifacteventDescConversationID.Validators[0].(func(string) error)
	// artifacteventDescArtifactID is the schema descriptor for artifact_id field.
	artifacteventDescArtifactID := artifacteventFields[1].Descriptor()
	// artifactevent.ArtifactIDValidator is a validator for the "artifact_id" field. It is called by the builders before save.
	artifactevent.ArtifactIDValidator = artifacteventDescArtifactID.Validators[0].(func(string) error)
	// artifacteventDescSlotKey is the schema descriptor for slot_key field.
	artifacteventDescSlotKey := artifacteventFields[2].Descriptor()
	// artifactevent.SlotKeyValidator is a validator for the "slot_key" field. It is called by the builders before save.
	artifactevent.SlotKeyValidator = artifacteventDescSlotKey.Validators[0].(func(string) error)
	// artifacteventDescTitle is the schema descriptor for title field.
	artifacteventDescTitle := artifacteventFields[3].Descriptor()
	// artifactevent.DefaultTitle holds the default value on creation for the title field.
	artifactevent.DefaultTitle = artifacteventDescTitle.Default.(string)
	// artifacteventDescLanguage is the schema descriptor for language field.
	artifacteventDescLanguage := artifacteventFields[4].Descriptor()
	// artifactevent.DefaultLanguage holds the default value on creation for the language field.
	artifactevent.DefaultLanguage = artifacteventDescLanguage.Default.(string)
	// artifacteventDescLineCount is the schema descriptor for line_count field.
	artifacteventDescLineCount := artifacteventFields[6].Descriptor()
	// artifactevent.DefaultLineCount holds the default value on creation for the line_count field.
	artifactevent.DefaultLineCount = artifacteventDescLineCount.Default.(int)
	// artifacteventDescTruncated is the schema descriptor for truncated field.
	artifacteventDescTruncated := artifacteventFields[7].Descriptor()
	// artifactevent.DefaultTruncated holds the default value on creation for the truncated field.
	artifactevent.DefaultTruncated = artifacteventDescTruncated.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizanswereventMixin := schema.QuizAnswerEvent{}.Mixin()
	quizanswereventMixinFields0 := quizanswereventMixin[0].Fields()
	_ = quizanswereventMixinFields0
	quizanswereventFields := schema.QuizAnswerEvent{}.Fields()
	_ = quizanswereventFields
	// quizanswereventDescTimestamp is the schema descriptor for timestamp field.
	quizanswereventDescTimestamp := quizanswereventMixinFields0[1].Descriptor()
	// quizanswerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizanswerevent.DefaultTimestamp = quizanswereventDescTimestamp.Default.(func() time.Time)
	// quizanswereventDescConversationID is the schema descriptor for conversation_id field.
	quizanswereventDescConversationID := quizanswereventFields[0].Descriptor()
	// quizanswerevent.ConversationIDValidator is a validator for the "conversation_id" field. It is called by the builders before save.
	quizanswerevent.ConversationIDValidator = quizanswereventDescConversationID.Validators[0].(func(string) error)
	// quizanswereventDescArtifactID is the schema descriptor for artifact_id field.
	quizanswereventDescArtifactID := quizanswereventFields[1].Descriptor()
	// quizanswerevent.ArtifactIDValidator is a validator for the "artifact_id" field. It is called by the builders before save.
	quizanswerevent.ArtifactIDValidator = quizanswereventDescArtifactID.Validators[0].(func(string) error)
	// quizanswereventDescQuizID is the schema descriptor for quiz_id field.
	quizanswereventDescQuizID := quizanswereventFields[2].Descriptor()
	// quizanswerevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quizanswerevent.QuizIDValidator = quizanswereventDescQuizID.Validators[0].(func(string) error)
	// quizanswereventDescQuestion is the schema descriptor for question field.
	quizanswereventDescQuestion := quizanswereventFields[3].Descriptor()
	// quizanswerevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	quizanswerevent.QuestionValidator = quizanswereventDescQuestion.Validators[0].(func(string) error)
	// quizanswereventDescUserAnswer is the schema descriptor for user_answer field.
	quizanswereventDescUserAnswer := quizanswereventFields[4].Descriptor()
	// quizanswerevent.UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	quizanswerevent.UserAnswerValidator = quizanswereventDescUserAnswer.Validators[0].(func(string) error)
	// quizanswereventDescTurn is the schema descriptor for turn field.
	quizanswereventDescTurn := quizanswereventFields[7].Descriptor()
	// quizanswerevent.DefaultTurn holds the default value on creation for the turn field.
	quizanswerevent.DefaultTurn = quizanswereventDescTurn.Default.(int)
	// quizanswereventDescFallback is the schema descriptor for fallback field.
	quizanswereventDescFallback := quizanswereventFields[8].Descriptor()
	// quizanswerevent.DefaultFallback holds the default value on creation for the fallback field.
	quizanswerevent.DefaultFallback = quizanswereventDescFallback.Default.(bool)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescConversationID is the schema descriptor for conversation_id field.
	snapshotDescConversationID := snapshotFields[0].Descriptor()
	// snapshot.ConversationIDValidator is a validator for the "conversation_id" field. It is called by the builders before save.
	snapshot.ConversationIDValidator = snapshotDescConversationID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
