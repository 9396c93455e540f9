// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtifactEventsColumns holds the columns for the "artifact_events" table.
	ArtifactEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "artifact_id", Type: field.TypeString},
		{Name: "slot_key", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "version", Type: field.TypeInt},
		{Name: "line_count", Type: field.TypeInt, Default: 0},
		{Name: "truncated", Type: field.TypeBool, Default: false},
	}
	// ArtifactEventsTable holds the schema information for the "artifact_events" table.
	ArtifactEventsTable = &schema.Table{
		Name:       "artifact_events",
		Columns:    ArtifactEventsColumns,
		PrimaryKey: []*schema.Column{ArtifactEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "artifactevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ArtifactEventsColumns[1]},
			},
			{
				Name:    "artifactevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ArtifactEventsColumns[2]},
			},
			{
				Name:    "artifactevent_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{ArtifactEventsColumns[3]},
			},
			{
				Name:    "artifactevent_slot_key",
				Unique:  false,
				Columns: []*schema.Column{ArtifactEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuizAnswerEventsColumns holds the columns for the "quiz_answer_events" table.
	QuizAnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "artifact_id", Type: field.TypeString},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "gate_level", Type: field.TypeInt},
		{Name: "turn", Type: field.TypeInt, Default: 0},
		{Name: "fallback", Type: field.TypeBool, Default: false},
	}
	// QuizAnswerEventsTable holds the schema information for the "quiz_answer_events" table.
	QuizAnswerEventsTable = &schema.Table{
		Name:       "quiz_answer_events",
		Columns:    QuizAnswerEventsColumns,
		PrimaryKey: []*schema.Column{QuizAnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizanswerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[1]},
			},
			{
				Name:    "quizanswerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[2]},
			},
			{
				Name:    "quizanswerevent_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[3]},
			},
			{
				Name:    "quizanswerevent_artifact_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[4]},
			},
			{
				Name:    "quizanswerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[8]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeBytes},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_conversation_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtifactEventsTable,
		LlmRequestEventsTable,
		QuizAnswerEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
