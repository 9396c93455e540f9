package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Snapshot is a point-in-time capture of one conversation's unlock state.
// The payload is opaque to the store; the session layer owns its shape.
type Snapshot struct {
	ID             int
	ConversationID string
	Sequence       int64
	Timestamp      time.Time
	Data           json.RawMessage
}

// SnapshotRepo is the persistence contract the session manager depends on:
// an opaque save/load keyed by conversation.
type SnapshotRepo interface {
	// Save stores a new snapshot for the conversation.
	Save(ctx context.Context, conversationID string, data json.RawMessage) error

	// Latest returns the conversation's most recent snapshot, or nil if
	// none exists.
	Latest(ctx context.Context, conversationID string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots of a conversation.
	Prune(ctx context.Context, conversationID string, keep int) error

	// Delete removes every snapshot of a conversation and reports how many
	// were deleted.
	Delete(ctx context.Context, conversationID string) (int, error)
}

// ArtifactEventData records one extracted artifact version.
type ArtifactEventData struct {
	ConversationID string
	ArtifactID     string
	SlotKey        string
	Title          string
	Language       string
	Version        int
	LineCount      int
	Truncated      bool
}

// QuizAnswerEventData records one answered comprehension question.
type QuizAnswerEventData struct {
	ConversationID string
	ArtifactID     string
	QuizID         string
	Question       string
	UserAnswer     string
	Correct        bool
	GateLevel      int
	Turn           int
	Fallback       bool
}

// LLMRequestEventData captures the data for a single oracle API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored oracle call, as returned by queries.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStats aggregates oracle usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates oracle usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendArtifact records an extracted artifact version.
	AppendArtifact(ctx context.Context, data ArtifactEventData) error

	// AppendQuizAnswer records an answered quiz.
	AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error

	// AppendLLMRequest records an oracle API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent oracle calls, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one oracle call by id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
