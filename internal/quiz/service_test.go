package quiz

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dkasab/unveil/internal/artifact"
)

// stubOracle returns a fixed quiz set (or error) and counts calls.
type stubOracle struct {
	mu       sync.Mutex
	quizzes  []Quiz
	err      error
	genCalls int
}

func (s *stubOracle) GenerateQuizzes(_ context.Context, _, _ string, _ int) ([]Quiz, error) {
	s.mu.Lock()
	s.genCalls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.quizzes, nil
}

func (s *stubOracle) GradeFreeform(_ context.Context, _, _, _ string) (*GradeResult, error) {
	return &GradeResult{IsCorrect: true, Feedback: "ok"}, nil
}

func (s *stubOracle) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.genCalls
}

// blockingOracle parks generation calls until release is closed, signalling
// served as each call returns.
type blockingOracle struct {
	quizzes []Quiz
	release chan struct{}
	served  chan struct{}
}

func (o *blockingOracle) GenerateQuizzes(_ context.Context, _, _ string, _ int) ([]Quiz, error) {
	<-o.release
	o.served <- struct{}{}
	return o.quizzes, nil
}

func (o *blockingOracle) GradeFreeform(_ context.Context, _, _, _ string) (*GradeResult, error) {
	return &GradeResult{}, nil
}

func testArtifact() *artifact.Artifact {
	return &artifact.Artifact{
		ID:       "art-test-0",
		Title:    "Adder",
		Language: "javascript",
		Content:  "function add(a,b) {\n  return a + b;\n}",
		Version:  1,
	}
}

func generatedQuizzes() []Quiz {
	return []Quiz{
		{
			ID:        "q-0",
			GateLevel: 0,
			Question:  "What does add return?",
			Options: []Option{
				{Label: "A", Text: "The sum"},
				{Label: "B", Text: "Nothing"},
			},
			CorrectLabel: "A",
		},
		{
			ID:        "q-1",
			GateLevel: 1,
			Question:  "How many parameters?",
			Options: []Option{
				{Label: "A", Text: "Two"},
				{Label: "B", Text: "Three"},
			},
			CorrectLabel: "A",
		},
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestService_GenerationCachesQuizzes(t *testing.T) {
	oracle := &stubOracle{quizzes: generatedQuizzes()}
	svc := NewService(oracle)
	art := testArtifact()

	started := svc.RequestGeneration(t.Context(), "Adder/javascript", art, 2, false, nil)
	if !started {
		t.Fatal("expected generation to start")
	}

	waitFor(t, func() bool { return svc.HasQuiz("Adder/javascript", 0) })

	q := svc.QuizFor("Adder/javascript", art, 0)
	if q.ID != "q-0" {
		t.Errorf("level 0 quiz = %q", q.ID)
	}
	if q.ArtifactID != art.ID {
		t.Errorf("artifact id not stamped: %q", q.ArtifactID)
	}
	if q.Fallback {
		t.Error("generated quiz flagged as fallback")
	}
}

func TestService_AtMostOnceAutomaticGeneration(t *testing.T) {
	oracle := &stubOracle{quizzes: generatedQuizzes()}
	svc := NewService(oracle)
	art := testArtifact()

	if !svc.RequestGeneration(t.Context(), "slot", art, 2, false, nil) {
		t.Fatal("first request should start generation")
	}
	// Re-entry is rejected immediately, even while the first call is still
	// in flight.
	for i := 0; i < 5; i++ {
		if svc.RequestGeneration(t.Context(), "slot", art, 2, false, nil) {
			t.Fatal("duplicate automatic generation started")
		}
	}

	waitFor(t, func() bool { return svc.HasQuiz("slot", 0) })
	if oracle.calls() != 1 {
		t.Errorf("oracle called %d times, want 1", oracle.calls())
	}
}

func TestService_ForceBypassesMarker(t *testing.T) {
	oracle := &stubOracle{quizzes: generatedQuizzes()}
	svc := NewService(oracle)
	art := testArtifact()

	svc.RequestGeneration(t.Context(), "slot", art, 2, false, nil)
	waitFor(t, func() bool { return svc.HasQuiz("slot", 0) })

	if !svc.RequestGeneration(t.Context(), "slot", art, 2, true, nil) {
		t.Error("force request should start generation")
	}
	waitFor(t, func() bool { return oracle.calls() == 2 })
}

func TestService_FallbackWhenOracleFails(t *testing.T) {
	oracle := &stubOracle{err: errors.New("oracle down")}
	svc := NewService(oracle)
	art := testArtifact()

	done := make(chan error, 1)
	svc.RequestGeneration(t.Context(), "slot", art, 2, false, func(_ []Quiz, err error) {
		done <- err
	})
	if err := <-done; err == nil {
		t.Fatal("expected generation error")
	}

	q := svc.QuizFor("slot", art, 0)
	if !q.Fallback {
		t.Error("expected a fallback quiz")
	}
	if err := q.Validate(); err != nil {
		t.Errorf("fallback quiz invalid: %v", err)
	}
	if !svc.FallbackUsed("slot") {
		t.Error("FallbackUsed not recorded")
	}

	// The fallback is synthesized once and reused.
	again := svc.QuizFor("slot", art, 0)
	if again.ID != q.ID {
		t.Error("fallback synthesized twice for the same level")
	}
}

func TestService_Reset(t *testing.T) {
	oracle := &stubOracle{quizzes: generatedQuizzes()}
	svc := NewService(oracle)
	art := testArtifact()

	svc.RequestGeneration(t.Context(), "slot", art, 2, false, nil)
	waitFor(t, func() bool { return svc.Attempted("slot") })

	svc.Reset("slot")
	if svc.Attempted("slot") {
		t.Error("Reset did not clear the attempted marker")
	}
	if !svc.RequestGeneration(t.Context(), "slot", art, 2, false, nil) {
		t.Error("generation after Reset should start")
	}
}

func TestService_ResetDropsInFlightGeneration(t *testing.T) {
	oracle := &blockingOracle{
		quizzes: generatedQuizzes(),
		release: make(chan struct{}),
		served:  make(chan struct{}, 2),
	}
	svc := NewService(oracle)
	art := testArtifact()

	staleDone := make(chan struct{}, 1)
	svc.RequestGeneration(t.Context(), "slot", art, 2, false, func([]Quiz, error) {
		staleDone <- struct{}{}
	})

	// Reset while the oracle call is parked, then let it finish.
	svc.Reset("slot")
	close(oracle.release)
	<-oracle.served

	// The completion predates the reset: nothing may be cached, the slot
	// stays unconcluded, and the callback must not fire.
	time.Sleep(50 * time.Millisecond)
	select {
	case <-staleDone:
		t.Fatal("callback fired for a generation superseded by Reset")
	default:
	}
	if svc.HasQuiz("slot", 0) {
		t.Error("stale quizzes cached after Reset")
	}
	if svc.Concluded("slot") {
		t.Error("reset slot reported as concluded")
	}

	// A fresh generation after the reset proceeds normally.
	if !svc.RequestGeneration(t.Context(), "slot", art, 2, false, nil) {
		t.Fatal("generation after Reset should start")
	}
	waitFor(t, func() bool { return svc.HasQuiz("slot", 0) })
	if !svc.Concluded("slot") {
		t.Error("finished generation not reported as concluded")
	}
}

func TestService_Grade(t *testing.T) {
	svc := NewService(&stubOracle{})
	result, err := svc.Grade(t.Context(), "What does it do?", "adds numbers", "code")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if !result.IsCorrect {
		t.Error("expected stub to grade correct")
	}
}
