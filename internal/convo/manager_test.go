package convo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dkasab/unveil/internal/artifact"
	"github.com/dkasab/unveil/internal/quiz"
	"github.com/dkasab/unveil/internal/unlock"
	"github.com/dkasab/unveil/internal/visibility"
)

// countingOracle serves a fixed quiz set and records call counts.
type countingOracle struct {
	mu        sync.Mutex
	genCalls  int
	genErr    error
	gradeErr  error
	gradeOK   bool
	gradeText string
}

func (o *countingOracle) GenerateQuizzes(_ context.Context, _, _ string, gateCount int) ([]quiz.Quiz, error) {
	o.mu.Lock()
	o.genCalls++
	o.mu.Unlock()
	if o.genErr != nil {
		return nil, o.genErr
	}
	quizzes := make([]quiz.Quiz, gateCount)
	for i := range quizzes {
		quizzes[i] = quiz.Quiz{
			ID:        fmt.Sprintf("q-%d", i),
			GateLevel: i,
			Question:  fmt.Sprintf("Question for gate %d?", i),
			Options: []quiz.Option{
				{Label: "A", Text: "Right"},
				{Label: "B", Text: "Wrong"},
			},
			CorrectLabel: "A",
		}
	}
	return quizzes, nil
}

func (o *countingOracle) GradeFreeform(_ context.Context, _, _, _ string) (*quiz.GradeResult, error) {
	if o.gradeErr != nil {
		return nil, o.gradeErr
	}
	return &quiz.GradeResult{IsCorrect: o.gradeOK, Feedback: o.gradeText}, nil
}

func (o *countingOracle) calls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.genCalls
}

// memPersister is an in-memory Persister.
type memPersister struct {
	mu    sync.Mutex
	saves int
	data  map[string][]byte
}

func newMemPersister() *memPersister {
	return &memPersister{data: make(map[string][]byte)}
}

func (p *memPersister) Save(_ context.Context, id string, snapshot []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves++
	p.data[id] = append([]byte(nil), snapshot...)
	return nil
}

func (p *memPersister) Load(_ context.Context, id string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data[id], nil
}

func (p *memPersister) saveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}

// stallingOracle parks generation until release is closed, modelling a call
// still in flight when the process goes away.
type stallingOracle struct {
	release chan struct{}
}

func (o *stallingOracle) GenerateQuizzes(_ context.Context, _, _ string, _ int) ([]quiz.Quiz, error) {
	<-o.release
	return nil, errors.New("abandoned")
}

func (o *stallingOracle) GradeFreeform(_ context.Context, _, _, _ string) (*quiz.GradeResult, error) {
	return nil, errors.New("abandoned")
}

// bigBody has enough lines for the full gate count.
const bigBody = `function add(a, b) {
  // sum two numbers
  const result = a + b;
  if (result < 0) {
    throw new Error("negative");
  }
  console.log(result);
  return result;
}`

func wrapBlock(title, language, body string) string {
	return fmt.Sprintf("Here you go:\n<artifact title=%q language=%q>\n%s\n</artifact>\nDone.", title, language, body)
}

func newTestManager(t *testing.T, oracle *countingOracle) *Manager {
	t.Helper()
	m := New(Options{
		ConversationID: "conv-test",
		Quizzes:        quiz.NewService(oracle),
		FlushDelay:     time.Hour,
	})
	t.Cleanup(func() { m.Close(context.Background()) })
	return m
}

func waitForQuiz(t *testing.T, m *Manager, ref string) *quiz.Quiz {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		q, err := m.CurrentQuiz(ref)
		if err != nil {
			t.Fatalf("CurrentQuiz: %v", err)
		}
		if q != nil {
			return q
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no quiz attached before deadline")
	return nil
}

func TestManager_IngestExtractsAndGates(t *testing.T) {
	oracle := &countingOracle{}
	m := newTestManager(t, oracle)

	if m.Phase() != unlock.PhaseInitial {
		t.Errorf("fresh phase = %q", m.Phase())
	}

	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	views := m.Artifacts()
	if len(views) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(views))
	}
	v := views[0]
	if v.Slot != "Adder/javascript" {
		t.Errorf("slot = %q", v.Slot)
	}
	if v.Artifact.Content != bigBody {
		t.Errorf("content mismatch")
	}
	if v.Progress.TotalGates != unlock.DefaultGates {
		t.Errorf("gates = %d, want %d", v.Progress.TotalGates, unlock.DefaultGates)
	}
	if !v.Active {
		t.Error("first artifact should become active")
	}

	waitForQuiz(t, m, "Adder/javascript")
	if m.Phase() != unlock.PhaseUnlocking {
		t.Errorf("phase = %q, want unlocking", m.Phase())
	}
}

func TestManager_SmallArtifactGetsOneGate(t *testing.T) {
	m := newTestManager(t, &countingOracle{})
	if err := m.IngestAssistantText(wrapBlock("Tiny", "python", "def f():\n    return 1"), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	p, err := m.GetProgress("Tiny/python")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if p.TotalGates != 1 {
		t.Errorf("gates = %d, want 1", p.TotalGates)
	}
}

func TestManager_StreamingIngestIdempotent(t *testing.T) {
	full := wrapBlock("Adder", "javascript", bigBody)

	streamed := newTestManager(t, &countingOracle{})
	for _, cut := range []int{10, len(full) / 3, len(full) / 2, 3 * len(full) / 4} {
		if err := streamed.IngestAssistantText(full[:cut], false); err != nil {
			t.Fatalf("partial ingest: %v", err)
		}
	}
	if err := streamed.IngestAssistantText(full, true); err != nil {
		t.Fatalf("final ingest: %v", err)
	}

	oneShot := newTestManager(t, &countingOracle{})
	if err := oneShot.IngestAssistantText(full, true); err != nil {
		t.Fatalf("one-shot ingest: %v", err)
	}

	a, b := streamed.Artifacts(), oneShot.Artifacts()
	if len(a) != len(b) {
		t.Fatalf("artifact counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Artifact.ID != b[i].Artifact.ID || a[i].Artifact.Version != b[i].Artifact.Version {
			t.Errorf("artifact %d differs: %+v vs %+v", i, a[i].Artifact, b[i].Artifact)
		}
	}
}

func TestManager_NoDuplicateAutoGeneration(t *testing.T) {
	oracle := &countingOracle{}
	m := newTestManager(t, oracle)
	text := wrapBlock("Adder", "javascript", bigBody)

	for i := 0; i < 3; i++ {
		if err := m.IngestAssistantText(text, true); err != nil {
			t.Fatalf("ingest %d: %v", i, err)
		}
	}
	waitForQuiz(t, m, "Adder/javascript")

	if oracle.calls() != 1 {
		t.Errorf("oracle called %d times, want 1", oracle.calls())
	}
}

func TestManager_CorrectAnswerProgression(t *testing.T) {
	m := newTestManager(t, &countingOracle{})
	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	ref := "Adder/javascript"

	for gate := 0; gate < 3; gate++ {
		q := waitForQuiz(t, m, ref)
		result, err := m.AnswerQuiz(t.Context(), ref, q.ID, "A")
		if err != nil {
			t.Fatalf("gate %d: %v", gate, err)
		}
		if !result.IsCorrect {
			t.Fatalf("gate %d: correct answer graded wrong", gate)
		}

		p, _ := m.GetProgress(ref)
		if p.UnlockLevel != gate+1 {
			t.Fatalf("after gate %d: level %d", gate, p.UnlockLevel)
		}
		if gate < 2 && p.Unlocked {
			t.Fatalf("unlocked early at gate %d", gate)
		}
	}

	p, _ := m.GetProgress(ref)
	if !p.Unlocked || p.Percent != 100 {
		t.Errorf("final progress = %+v", p)
	}
	if m.Phase() != unlock.PhaseUnlocked {
		t.Errorf("phase = %q, want unlocked", m.Phase())
	}
}

func TestManager_IncorrectAnswerRetainsQuiz(t *testing.T) {
	m := newTestManager(t, &countingOracle{})
	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	ref := "Adder/javascript"
	q := waitForQuiz(t, m, ref)

	result, err := m.AnswerQuiz(t.Context(), ref, q.ID, "B")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if result.IsCorrect {
		t.Fatal("wrong answer graded correct")
	}

	p, _ := m.GetProgress(ref)
	if p.UnlockLevel != 0 {
		t.Errorf("level = %d, want 0", p.UnlockLevel)
	}
	again, _ := m.CurrentQuiz(ref)
	if again == nil || again.ID != q.ID {
		t.Error("incorrect answer must keep the same current quiz")
	}

	history, _ := m.History(ref)
	if len(history) != 1 || history[0].IsCorrect {
		t.Errorf("history = %+v", history)
	}
}

func TestManager_StaleQuizRejected(t *testing.T) {
	m := newTestManager(t, &countingOracle{})
	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	ref := "Adder/javascript"
	waitForQuiz(t, m, ref)

	_, err := m.AnswerQuiz(t.Context(), ref, "q-stale", "A")
	var stale *unlock.StaleQuizError
	if !errors.As(err, &stale) {
		t.Fatalf("expected StaleQuizError, got %v", err)
	}

	history, _ := m.History(ref)
	if len(history) != 0 {
		t.Error("stale submission must not be recorded")
	}
}

func TestManager_UnknownArtifact(t *testing.T) {
	m := newTestManager(t, &countingOracle{})
	if _, err := m.AnswerQuiz(t.Context(), "ghost", "q", "A"); !errors.Is(err, ErrUnknownArtifact) {
		t.Errorf("AnswerQuiz = %v", err)
	}
	if _, err := m.GetVisibleCode("ghost"); !errors.Is(err, ErrUnknownArtifact) {
		t.Errorf("GetVisibleCode = %v", err)
	}
	if err := m.SetActiveArtifact("ghost"); !errors.Is(err, ErrUnknownArtifact) {
		t.Errorf("SetActiveArtifact = %v", err)
	}
}

func TestManager_FallbackQuizWhenOracleFails(t *testing.T) {
	oracle := &countingOracle{genErr: errors.New("oracle down")}
	m := newTestManager(t, oracle)
	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	q := waitForQuiz(t, m, "Adder/javascript")
	if !q.Fallback {
		t.Error("expected a fallback quiz after oracle failure")
	}
	// The fallback still unlocks the gate.
	result, err := m.AnswerQuiz(t.Context(), "Adder/javascript", q.ID, q.CorrectLabel)
	if err != nil || !result.IsCorrect {
		t.Fatalf("fallback answer: %v, %+v", err, result)
	}
}

func TestManager_VersionBumpPreservesProgress(t *testing.T) {
	m := newTestManager(t, &countingOracle{})
	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	ref := "Adder/javascript"
	q := waitForQuiz(t, m, ref)
	if _, err := m.AnswerQuiz(t.Context(), ref, q.ID, "A"); err != nil {
		t.Fatalf("answer: %v", err)
	}

	updated := bigBody + "\n// v2"
	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", updated), true); err != nil {
		t.Fatalf("second ingest: %v", err)
	}

	views := m.Artifacts()
	if len(views) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(views))
	}
	if views[0].Artifact.Version != 2 {
		t.Errorf("version = %d, want 2", views[0].Artifact.Version)
	}
	if views[0].Artifact.Content != updated {
		t.Error("latest version content not stored")
	}

	p, _ := m.GetProgress(ref)
	if p.UnlockLevel != 1 {
		t.Errorf("level = %d, want 1 preserved across versions", p.UnlockLevel)
	}
}

func TestManager_SkipPolicy(t *testing.T) {
	m := newTestManager(t, &countingOracle{})
	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if err := m.Skip(t.Context(), "Adder/javascript"); !errors.Is(err, ErrSkipNotAllowed) {
		t.Errorf("Skip = %v, want ErrSkipNotAllowed", err)
	}
}

func TestManager_SkipBypassesGates(t *testing.T) {
	m := newTestManager(t, &countingOracle{})

	// A skip-allowed session restored mid-way with a gated artifact.
	state := NewState("conv-test", true)
	art := &artifact.Artifact{ID: "art-x-0", Title: "Adder", Language: "javascript", Content: bigBody, Version: 1}
	state.Artifacts["Adder/javascript"] = art
	state.Progress["Adder/javascript"] = &unlock.Progress{TotalGates: 4}
	state.ActiveSlot = "Adder/javascript"
	data, err := state.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := m.Restore(data); err != nil {
		t.Fatalf("restore: %v", err)
	}

	if err := m.Skip(t.Context(), "Adder/javascript"); err != nil {
		t.Fatalf("skip: %v", err)
	}

	p, _ := m.GetProgress("Adder/javascript")
	if p.UnlockLevel != 4 || !p.Unlocked {
		t.Errorf("progress after skip = %+v", p)
	}
	history, _ := m.History("Adder/javascript")
	if len(history) != 0 {
		t.Error("skip must not synthesize history records")
	}
}

func TestManager_SkipAllowedPreUnlocksArtifacts(t *testing.T) {
	oracle := &countingOracle{}
	m := New(Options{ConversationID: "conv-test", SkipAllowed: true, Quizzes: quiz.NewService(oracle)})
	t.Cleanup(func() { m.Close(context.Background()) })

	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	p, _ := m.GetProgress("Adder/javascript")
	if p.TotalGates != 0 || !p.Unlocked {
		t.Errorf("progress = %+v, want pre-unlocked", p)
	}
	time.Sleep(50 * time.Millisecond)
	if oracle.calls() != 0 {
		t.Error("no quiz flow should run for a pre-unlocked artifact")
	}
	if m.Phase() != unlock.PhaseUnlocked {
		t.Errorf("phase = %q", m.Phase())
	}
}

func TestManager_FreeformGrading(t *testing.T) {
	oracle := &countingOracle{gradeOK: true, gradeText: "Well put."}
	m := newTestManager(t, oracle)

	state := NewState("conv-test", false)
	state.Artifacts["Adder/javascript"] = &artifact.Artifact{ID: "art-x-0", Title: "Adder", Language: "javascript", Content: bigBody, Version: 1}
	p := &unlock.Progress{TotalGates: 2}
	p.CurrentQuiz = &quiz.Quiz{ID: "q-free", Question: "Explain the guard clause."}
	state.Progress["Adder/javascript"] = p
	state.ActiveSlot = "Adder/javascript"
	data, _ := state.Marshal()
	if err := m.Restore(data); err != nil {
		t.Fatalf("restore: %v", err)
	}

	result, err := m.AnswerQuiz(t.Context(), "Adder/javascript", "q-free", "It rejects negative sums.")
	if err != nil {
		t.Fatalf("freeform answer: %v", err)
	}
	if !result.IsCorrect || result.Feedback != "Well put." {
		t.Errorf("result = %+v", result)
	}

	got, _ := m.GetProgress("Adder/javascript")
	if got.UnlockLevel != 1 {
		t.Errorf("level = %d, want 1", got.UnlockLevel)
	}
}

func TestManager_FreeformGradingErrorHasNoSideEffects(t *testing.T) {
	oracle := &countingOracle{gradeErr: errors.New("grader down")}
	m := newTestManager(t, oracle)

	state := NewState("conv-test", false)
	state.Artifacts["Adder/javascript"] = &artifact.Artifact{ID: "art-x-0", Title: "Adder", Language: "javascript", Content: bigBody, Version: 1}
	p := &unlock.Progress{TotalGates: 2}
	p.CurrentQuiz = &quiz.Quiz{ID: "q-free", Question: "Explain the guard clause."}
	state.Progress["Adder/javascript"] = p
	state.ActiveSlot = "Adder/javascript"
	data, _ := state.Marshal()
	if err := m.Restore(data); err != nil {
		t.Fatalf("restore: %v", err)
	}

	_, err := m.AnswerQuiz(t.Context(), "Adder/javascript", "q-free", "An attempt.")
	var oerr *OracleError
	if !errors.As(err, &oerr) {
		t.Fatalf("expected OracleError, got %v", err)
	}

	got, _ := m.GetProgress("Adder/javascript")
	if got.UnlockLevel != 0 {
		t.Error("grading failure must not advance the level")
	}
	history, _ := m.History("Adder/javascript")
	if len(history) != 0 {
		t.Error("grading failure must not record the attempt")
	}
	q, _ := m.CurrentQuiz("Adder/javascript")
	if q == nil || q.ID != "q-free" {
		t.Error("grading failure must keep the quiz current for retry")
	}
}

func TestManager_GetVisibleCodeRedacts(t *testing.T) {
	m := newTestManager(t, &countingOracle{})
	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	code, err := m.GetVisibleCode("Adder/javascript")
	if err != nil {
		t.Fatalf("GetVisibleCode: %v", err)
	}
	if !strings.Contains(code, visibility.RedactedGlyph) {
		t.Error("gated artifact rendered without redactions")
	}
	if !strings.Contains(code, "function add(a, b) {") {
		t.Error("signature line hidden at level 0")
	}
	if strings.Contains(code, "console.log") {
		t.Error("logic line visible at level 0")
	}
	if lines := strings.Split(code, "\n"); len(lines) != strings.Count(bigBody, "\n")+1 {
		t.Errorf("rendered line count %d differs from source", len(lines))
	}
}

func TestManager_SwitchActiveArtifactIsPure(t *testing.T) {
	m := newTestManager(t, &countingOracle{})
	text := wrapBlock("One", "go", bigBody) + "\n" + wrapBlock("Two", "go", "package two\n\nvar x = 1")
	if err := m.IngestAssistantText(text, true); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	before, _ := m.Snapshot()
	if err := m.SetActiveArtifact("Two/go"); err != nil {
		t.Fatalf("switch: %v", err)
	}

	active := m.ActiveArtifact()
	if active == nil || active.Slot != "Two/go" {
		t.Fatalf("active = %+v", active)
	}

	// Only the pointer moved.
	var was, now State
	after, _ := m.Snapshot()
	if err := json.Unmarshal(before, &was); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(after, &now); err != nil {
		t.Fatal(err)
	}
	for slot, p := range was.Progress {
		if now.Progress[slot].UnlockLevel != p.UnlockLevel {
			t.Errorf("slot %q progress mutated by switch", slot)
		}
	}
}

func TestManager_RestoreIsExact(t *testing.T) {
	m := newTestManager(t, &countingOracle{})
	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	ref := "Adder/javascript"
	q := waitForQuiz(t, m, ref)
	if _, err := m.AnswerQuiz(t.Context(), ref, q.ID, "B"); err != nil {
		t.Fatalf("answer: %v", err)
	}

	snap, err := m.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	// Mutate further, then restore.
	if _, err := m.AnswerQuiz(t.Context(), ref, q.ID, "A"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := m.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}

	again, err := m.Snapshot()
	if err != nil {
		t.Fatalf("snapshot after restore: %v", err)
	}
	if string(snap) != string(again) {
		t.Errorf("restore is not exact:\n%s\nvs\n%s", snap, again)
	}

	p, _ := m.GetProgress(ref)
	if p.UnlockLevel != 0 {
		t.Errorf("restored level = %d, want 0", p.UnlockLevel)
	}
	history, _ := m.History(ref)
	if len(history) != 1 {
		t.Errorf("restored history length = %d, want 1", len(history))
	}
}

func TestManager_LoadOrNewResumesQuizGeneration(t *testing.T) {
	persister := newMemPersister()

	// First run: the snapshot is flushed while generation is still in
	// flight, so it holds a gated artifact with no quiz attached.
	stall := &stallingOracle{release: make(chan struct{})}
	first := New(Options{
		ConversationID: "conv-resume",
		Quizzes:        quiz.NewService(stall),
		Persister:      persister,
		FlushDelay:     time.Hour,
	})
	if err := first.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if q, _ := first.CurrentQuiz("Adder/javascript"); q != nil {
		t.Fatal("quiz attached while the oracle call was pending")
	}
	if err := first.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	close(stall.release)

	// Second run: loading must re-request generation for the gated slot, or
	// the learner stays stuck with nothing to answer.
	m, err := LoadOrNew(context.Background(), Options{
		ConversationID: "conv-resume",
		Quizzes:        quiz.NewService(&countingOracle{}),
		Persister:      persister,
		FlushDelay:     time.Hour,
	})
	if err != nil {
		t.Fatalf("LoadOrNew: %v", err)
	}
	t.Cleanup(func() { m.Close(context.Background()) })

	q := waitForQuiz(t, m, "Adder/javascript")
	if q.GateLevel != 0 {
		t.Errorf("resumed quiz gate level = %d, want 0", q.GateLevel)
	}
	p, _ := m.GetProgress("Adder/javascript")
	if p.UnlockLevel != 0 {
		t.Errorf("resumed level = %d, want 0", p.UnlockLevel)
	}
}

func TestManager_RestoreMarksDirtyAndResumes(t *testing.T) {
	// Source manager: snapshot taken while generation is parked, so the
	// gated slot carries no quiz.
	stall := &stallingOracle{release: make(chan struct{})}
	src := New(Options{
		ConversationID: "conv-restore-dirty",
		Quizzes:        quiz.NewService(stall),
		FlushDelay:     time.Hour,
	})
	if err := src.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	snap, err := src.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	src.Close(context.Background())
	close(stall.release)

	persister := newMemPersister()
	m := New(Options{
		ConversationID: "conv-restore-dirty",
		Quizzes:        quiz.NewService(&countingOracle{}),
		Persister:      persister,
		FlushDelay:     time.Hour,
	})
	t.Cleanup(func() { m.Close(context.Background()) })
	if err := m.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}

	// The restored state must reach the persister even when no further
	// mutation follows.
	if err := m.Flush(context.Background()); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if persister.saveCount() == 0 {
		t.Error("restore did not mark the state dirty")
	}

	// And the gated quizless slot resumes generation.
	waitForQuiz(t, m, "Adder/javascript")
}

func TestManager_RegenerateQuizzes(t *testing.T) {
	oracle := &countingOracle{}
	m := newTestManager(t, oracle)
	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	ref := "Adder/javascript"
	waitForQuiz(t, m, ref)

	if err := m.RegenerateQuizzes(t.Context(), ref); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	waitForQuiz(t, m, ref)

	if oracle.calls() != 2 {
		t.Errorf("oracle called %d times, want 2 after regenerate", oracle.calls())
	}
}

func TestManager_ObserversNotified(t *testing.T) {
	m := newTestManager(t, &countingOracle{})

	var mu sync.Mutex
	reasons := make(map[string]int)
	m.Subscribe(func(c Change) {
		mu.Lock()
		reasons[c.Reason]++
		mu.Unlock()
	})

	if err := m.IngestAssistantText(wrapBlock("Adder", "javascript", bigBody), true); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	q := waitForQuiz(t, m, "Adder/javascript")
	if _, err := m.AnswerQuiz(t.Context(), "Adder/javascript", q.ID, "A"); err != nil {
		t.Fatalf("answer: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if reasons["artifact"] == 0 {
		t.Error("no artifact notification")
	}
	if reasons["quiz"] == 0 {
		t.Error("no quiz notification")
	}
	if reasons["progress"] == 0 {
		t.Error("no progress notification")
	}
}

func TestManager_ClosedRejectsMutations(t *testing.T) {
	m := New(Options{ConversationID: "conv-test"})
	if err := m.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	if err := m.IngestAssistantText("text", true); !errors.Is(err, ErrClosed) {
		t.Errorf("ingest after close = %v", err)
	}
	if _, err := m.AnswerQuiz(t.Context(), "x", "q", "A"); !errors.Is(err, ErrClosed) {
		t.Errorf("answer after close = %v", err)
	}
	if err := m.Close(context.Background()); err != nil {
		t.Errorf("second close = %v", err)
	}
}
