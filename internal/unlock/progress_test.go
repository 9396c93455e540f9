package unlock

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dkasab/unveil/internal/quiz"
)

func gateQuiz(id string, level int) quiz.Quiz {
	return quiz.Quiz{
		ID:        id,
		GateLevel: level,
		Question:  "What does it do?",
		Options: []quiz.Option{
			{Label: "A", Text: "Right"},
			{Label: "B", Text: "Wrong"},
		},
		CorrectLabel: "A",
	}
}

func TestProgress_CorrectAnswerProgression(t *testing.T) {
	p := NewProgress(3)

	for gate := 0; gate < 3; gate++ {
		if p.IsUnlocked() {
			t.Fatalf("unlocked before gate %d", gate)
		}
		if !p.AttachQuiz(gateQuiz(fmt.Sprintf("q-%d", gate), gate)) {
			t.Fatalf("AttachQuiz rejected at gate %d", gate)
		}
		p.RecordAnswer("A", true, gate+1)
		if p.UnlockLevel != gate+1 {
			t.Fatalf("after gate %d: level %d, want %d", gate, p.UnlockLevel, gate+1)
		}
		if p.CurrentQuiz != nil {
			t.Fatalf("after gate %d: current quiz not cleared", gate)
		}
	}

	if !p.IsUnlocked() {
		t.Error("expected unlocked after three correct answers")
	}
	if len(p.History) != 3 {
		t.Errorf("history length = %d, want 3", len(p.History))
	}
}

func TestProgress_IncorrectAnswerRetainsQuiz(t *testing.T) {
	p := NewProgress(3)
	p.AttachQuiz(gateQuiz("q-0", 0))
	p.RecordAnswer("A", true, 1)

	p.AttachQuiz(gateQuiz("q-1", 1))
	p.RecordAnswer("B", false, 2)

	if p.UnlockLevel != 1 {
		t.Errorf("level = %d, want 1 after incorrect answer", p.UnlockLevel)
	}
	if p.CurrentQuiz == nil || p.CurrentQuiz.ID != "q-1" {
		t.Error("incorrect answer must retain the same current quiz")
	}
	if len(p.History) != 2 {
		t.Errorf("history length = %d, want 2", len(p.History))
	}
	if p.History[1].IsCorrect {
		t.Error("incorrect answer recorded as correct")
	}

	// The same question can be retried.
	p.RecordAnswer("A", true, 3)
	if p.UnlockLevel != 2 {
		t.Errorf("level = %d, want 2 after retry", p.UnlockLevel)
	}
}

func TestProgress_LevelBound(t *testing.T) {
	p := NewProgress(2)
	for i := 0; i < 10; i++ {
		p.AttachQuiz(gateQuiz(fmt.Sprintf("q-%d", i), i))
		p.RecordAnswer("A", true, i)
		if p.UnlockLevel < 0 || p.UnlockLevel > p.TotalGates {
			t.Fatalf("level %d outside [0, %d]", p.UnlockLevel, p.TotalGates)
		}
	}
	if p.UnlockLevel != 2 {
		t.Errorf("level = %d, want capped at 2", p.UnlockLevel)
	}
}

func TestProgress_SkipLeavesHistoryUnchanged(t *testing.T) {
	p := NewProgress(4)
	p.AttachQuiz(gateQuiz("q-0", 0))
	p.RecordAnswer("B", false, 1)
	before := len(p.History)

	p.Skip()

	if p.UnlockLevel != 4 {
		t.Errorf("level = %d, want 4 after skip", p.UnlockLevel)
	}
	if !p.IsUnlocked() {
		t.Error("expected unlocked after skip")
	}
	if p.CurrentQuiz != nil {
		t.Error("skip must clear the current quiz")
	}
	if len(p.History) != before {
		t.Errorf("skip added history records: %d -> %d", before, len(p.History))
	}
}

func TestProgress_ZeroGatesAlwaysUnlocked(t *testing.T) {
	p := NewProgress(0)
	if !p.IsUnlocked() {
		t.Error("zero gates must be unlocked")
	}
	if p.AttachQuiz(gateQuiz("q-0", 0)) {
		t.Error("AttachQuiz must refuse on an unlocked artifact")
	}
}

func TestProgress_AttachQuizRefusesWhenOccupied(t *testing.T) {
	p := NewProgress(3)
	if !p.AttachQuiz(gateQuiz("q-0", 0)) {
		t.Fatal("first attach rejected")
	}
	if p.AttachQuiz(gateQuiz("q-other", 0)) {
		t.Error("second attach must be refused while a quiz is pending")
	}
	if p.CurrentQuiz.ID != "q-0" {
		t.Errorf("current quiz = %q, want q-0", p.CurrentQuiz.ID)
	}
}

func TestProgress_CurrentQuizMatches(t *testing.T) {
	p := NewProgress(3)
	p.AttachQuiz(gateQuiz("q-0", 0))

	if err := p.CurrentQuizMatches("q-0"); err != nil {
		t.Errorf("matching id rejected: %v", err)
	}

	err := p.CurrentQuizMatches("q-stale")
	var stale *StaleQuizError
	if !errors.As(err, &stale) {
		t.Fatalf("expected StaleQuizError, got %v", err)
	}
	if stale.SubmittedQuizID != "q-stale" || stale.CurrentQuizID != "q-0" {
		t.Errorf("stale error ids = %q/%q", stale.SubmittedQuizID, stale.CurrentQuizID)
	}

	p.CurrentQuiz = nil
	if err := p.CurrentQuizMatches("q-0"); err == nil {
		t.Error("expected error when no quiz is attached")
	}
}

func TestProgress_HistorySnapshotsQuiz(t *testing.T) {
	p := NewProgress(1)
	p.AttachQuiz(gateQuiz("q-0", 0))
	p.RecordAnswer("A", true, 1)

	rec := p.History[0]
	if rec.Quiz.ID != "q-0" || rec.Quiz.Question == "" {
		t.Error("history record must snapshot the answered quiz")
	}
	if rec.AnsweredAtTurn != 1 {
		t.Errorf("turn = %d, want 1", rec.AnsweredAtTurn)
	}
}

func TestProgress_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       Progress
		wantErr bool
	}{
		{"fresh", Progress{TotalGates: 3}, false},
		{"unlocked", Progress{UnlockLevel: 3, TotalGates: 3}, false},
		{"negative gates", Progress{TotalGates: -1}, true},
		{"level above gates", Progress{UnlockLevel: 4, TotalGates: 3}, true},
		{"negative level", Progress{UnlockLevel: -1, TotalGates: 3}, true},
	}
	for _, tt := range tests {
		err := tt.p.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestGateCount(t *testing.T) {
	tests := []struct {
		lines       int
		preUnlocked bool
		want        int
	}{
		{3, false, 1},
		{7, false, 1},
		{8, false, 3},
		{200, false, 3},
		{200, true, 0},
		{3, true, 0},
	}
	for _, tt := range tests {
		if got := GateCount(tt.lines, tt.preUnlocked); got != tt.want {
			t.Errorf("GateCount(%d, %v) = %d, want %d", tt.lines, tt.preUnlocked, got, tt.want)
		}
	}
}

func TestProjectPhase(t *testing.T) {
	gated := NewProgress(3)
	quizzed := NewProgress(3)
	quizzed.AttachQuiz(gateQuiz("q-0", 0))
	open := NewProgress(0)

	tests := []struct {
		name         string
		planning     bool
		hasArtifacts bool
		active       *Progress
		want         Phase
	}{
		{"fresh", false, false, nil, PhaseInitial},
		{"planning", true, false, nil, PhasePlanning},
		{"artifact no progress", false, true, nil, PhaseCoding},
		{"gated no quiz yet", false, true, gated, PhaseCoding},
		{"quiz pending", false, true, quizzed, PhaseUnlocking},
		{"ungated", false, true, open, PhaseUnlocked},
	}
	for _, tt := range tests {
		if got := ProjectPhase(tt.planning, tt.hasArtifacts, tt.active); got != tt.want {
			t.Errorf("%s: phase = %q, want %q", tt.name, got, tt.want)
		}
	}
}
