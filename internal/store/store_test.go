package store

import (
	"context"
	"encoding/json"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "conv-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	data := json.RawMessage(`{"version":1,"conversationId":"conv-1"}`)
	if err := repo.Save(ctx, "conv-1", data); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "conv-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.ConversationID != "conv-1" {
		t.Errorf("conversation id = %q", snap.ConversationID)
	}
	if string(snap.Data) != string(data) {
		t.Errorf("data = %s", snap.Data)
	}
	if snap.Sequence < 1 {
		t.Errorf("sequence = %d", snap.Sequence)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		data, _ := json.Marshal(map[string]int{"turn": i})
		if err := repo.Save(ctx, "conv-1", data); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx, "conv-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	var payload struct {
		Turn int `json:"turn"`
	}
	if err := json.Unmarshal(snap.Data, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Turn != 2 {
		t.Errorf("latest turn = %d, want 2", payload.Turn)
	}
}

func TestSnapshotIsolationAcrossConversations(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "conv-a", json.RawMessage(`{"who":"a"}`)); err != nil {
		t.Fatalf("save a: %v", err)
	}
	if err := repo.Save(ctx, "conv-b", json.RawMessage(`{"who":"b"}`)); err != nil {
		t.Fatalf("save b: %v", err)
	}

	snap, err := repo.Latest(ctx, "conv-a")
	if err != nil {
		t.Fatalf("latest a: %v", err)
	}
	if string(snap.Data) != `{"who":"a"}` {
		t.Errorf("conversation a got %s", snap.Data)
	}

	snap, err = repo.Latest(ctx, "conv-missing")
	if err != nil {
		t.Fatalf("latest missing: %v", err)
	}
	if snap != nil {
		t.Error("unknown conversation returned a snapshot")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		data, _ := json.Marshal(map[string]int{"turn": i})
		if err := repo.Save(ctx, "conv-1", data); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	// A second conversation's snapshots must survive the prune.
	if err := repo.Save(ctx, "conv-2", json.RawMessage(`{}`)); err != nil {
		t.Fatalf("save other: %v", err)
	}

	if err := repo.Prune(ctx, "conv-1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 6 { // 5 kept + 1 from conv-2
		t.Errorf("remaining snapshots = %d, want 6", count)
	}

	snap, err := repo.Latest(ctx, "conv-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	var payload struct {
		Turn int `json:"turn"`
	}
	if err := json.Unmarshal(snap.Data, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Turn != 6 {
		t.Errorf("latest turn after prune = %d, want 6", payload.Turn)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.Save(ctx, "conv-1", json.RawMessage(`{}`)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "conv-1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestArtifactEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendArtifact(ctx, ArtifactEventData{
		ConversationID: "conv-1",
		ArtifactID:     "art-abc-0",
		SlotKey:        "Adder/javascript",
		Title:          "Adder",
		Language:       "javascript",
		Version:        1,
		LineCount:      9,
		Truncated:      false,
	})
	if err != nil {
		t.Fatalf("append artifact: %v", err)
	}

	count, err := s.Client().ArtifactEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("artifact events = %d, want 1", count)
	}
}

func TestQuizAnswerEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuizAnswer(ctx, QuizAnswerEventData{
		ConversationID: "conv-1",
		ArtifactID:     "art-abc-0",
		QuizID:         "q-1",
		Question:       "What does add return?",
		UserAnswer:     "A",
		Correct:        true,
		GateLevel:      0,
		Turn:           3,
	})
	if err != nil {
		t.Fatalf("append quiz answer: %v", err)
	}

	count, err := s.Client().QuizAnswerEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("quiz answer events = %d, want 1", count)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"quiz-gen", "grading", "quiz-gen"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    12,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].InputTokens != 102 {
		t.Errorf("newest input tokens = %d, want 102", events[0].InputTokens)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "quiz-gen" {
		t.Errorf("get = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "artifact_events", "quiz_answer_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing: %v", table, err)
		}
	}
}
