package convo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dkasab/unveil/internal/quiz"
)

func TestManager_DebouncedFlush(t *testing.T) {
	persister := newMemPersister()
	m := New(Options{
		ConversationID: "conv-flush",
		Quizzes:        quiz.NewService(&countingOracle{}),
		Persister:      persister,
		FlushDelay:     20 * time.Millisecond,
	})
	t.Cleanup(func() { m.Close(context.Background()) })

	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if persister.saveCount() != 0 {
		t.Error("flush ran before the debounce window")
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) && persister.saveCount() == 0 {
		time.Sleep(5 * time.Millisecond)
	}
	if persister.saveCount() == 0 {
		t.Fatal("debounced flush never ran")
	}

	data, err := persister.Load(context.Background(), "conv-flush")
	if err != nil || data == nil {
		t.Fatalf("load: %v", err)
	}
	state, err := UnmarshalState(data)
	if err != nil {
		t.Fatalf("persisted snapshot invalid: %v", err)
	}
	if _, ok := state.Artifacts["Adder/javascript"]; !ok {
		t.Error("persisted snapshot missing the artifact")
	}
}

func TestManager_UnlockFlushesSynchronously(t *testing.T) {
	persister := newMemPersister()
	m := New(Options{
		ConversationID: "conv-sync",
		Quizzes:        quiz.NewService(&countingOracle{}),
		Persister:      persister,
		FlushDelay:     time.Hour, // debounce never fires during the test
	})
	t.Cleanup(func() { m.Close(context.Background()) })

	if err := m.IngestAssistantText(wrapBlock("Tiny", "python", "def f():\n    return 1"), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	q := waitForQuiz(t, m, "Tiny/python")

	before := persister.saveCount()
	if _, err := m.AnswerQuiz(t.Context(), "Tiny/python", q.ID, "A"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if persister.saveCount() <= before {
		t.Error("unlock transition did not flush synchronously")
	}
}

func TestManager_CloseFlushesDirtyState(t *testing.T) {
	persister := newMemPersister()
	m := New(Options{
		ConversationID: "conv-close",
		Persister:      persister,
		FlushDelay:     time.Hour,
	})

	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if err := m.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if persister.saveCount() == 0 {
		t.Error("close did not flush dirty state")
	}
}

func TestLoadOrNew_RoundTrip(t *testing.T) {
	persister := newMemPersister()
	first := New(Options{
		ConversationID: "conv-rt",
		Quizzes:        quiz.NewService(&countingOracle{}),
		Persister:      persister,
		FlushDelay:     time.Hour,
	})
	if err := first.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if err := first.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := LoadOrNew(t.Context(), Options{
		ConversationID: "conv-rt",
		Persister:      persister,
	})
	if err != nil {
		t.Fatalf("LoadOrNew: %v", err)
	}
	t.Cleanup(func() { second.Close(context.Background()) })

	views := second.Artifacts()
	if len(views) != 1 || views[0].Slot != "Adder/javascript" {
		t.Fatalf("restored artifacts = %+v", views)
	}
	if views[0].Progress.TotalGates != 3 {
		t.Errorf("restored gates = %d", views[0].Progress.TotalGates)
	}
}

func TestLoadOrNew_CorruptSnapshotFallsBackFresh(t *testing.T) {
	persister := newMemPersister()
	persister.data["conv-bad"] = []byte("{not json")

	m, err := LoadOrNew(t.Context(), Options{
		ConversationID: "conv-bad",
		Persister:      persister,
	})
	t.Cleanup(func() { m.Close(context.Background()) })

	var rerr *RestoreError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RestoreError, got %v", err)
	}

	// The manager is still usable with a fresh state.
	if m.ConversationID() != "conv-bad" {
		t.Errorf("conversation id = %q", m.ConversationID())
	}
	if len(m.Artifacts()) != 0 {
		t.Error("fresh fallback state is not empty")
	}
	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Errorf("ingest on fallback manager: %v", err)
	}
}

func TestLoadOrNew_NoSnapshotIsFresh(t *testing.T) {
	m, err := LoadOrNew(t.Context(), Options{
		ConversationID: "conv-new",
		Persister:      newMemPersister(),
	})
	if err != nil {
		t.Fatalf("LoadOrNew: %v", err)
	}
	t.Cleanup(func() { m.Close(context.Background()) })
	if len(m.Artifacts()) != 0 {
		t.Error("expected empty fresh state")
	}
}
