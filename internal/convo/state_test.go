package convo

import (
	"errors"
	"testing"

	"github.com/dkasab/unveil/internal/artifact"
	"github.com/dkasab/unveil/internal/quiz"
	"github.com/dkasab/unveil/internal/unlock"
)

func validState() *State {
	s := NewState("conv-1", false)
	s.Artifacts["Adder/javascript"] = &artifact.Artifact{
		ID: "art-abc-0", Title: "Adder", Language: "javascript",
		Content: "function add(a,b){return a+b;}", Version: 1,
	}
	s.Progress["Adder/javascript"] = &unlock.Progress{TotalGates: 3, UnlockLevel: 1}
	s.ActiveSlot = "Adder/javascript"
	return s
}

func TestState_MarshalRoundTrip(t *testing.T) {
	s := validState()
	s.Progress["Adder/javascript"].CurrentQuiz = &quiz.Quiz{
		ID: "q-1", Question: "Why?",
		Options: []quiz.Option{
			{Label: "A", Text: "Because"},
			{Label: "B", Text: "No reason"},
		},
		CorrectLabel: "A",
	}
	s.Progress["Adder/javascript"].History = []unlock.AnswerRecord{
		{QuizID: "q-0", UserAnswer: "B", IsCorrect: false, AnsweredAtTurn: 1},
	}

	data, err := s.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalState(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.ConversationID != "conv-1" || got.ActiveSlot != "Adder/javascript" {
		t.Errorf("identity fields lost: %+v", got)
	}
	p := got.Progress["Adder/javascript"]
	if p.UnlockLevel != 1 || p.TotalGates != 3 {
		t.Errorf("progress = %+v", p)
	}
	if p.CurrentQuiz == nil || p.CurrentQuiz.ID != "q-1" {
		t.Error("current quiz lost")
	}
	if len(p.History) != 1 || p.History[0].QuizID != "q-0" {
		t.Error("history lost")
	}
}

func TestUnmarshalState_Rejections(t *testing.T) {
	corrupt := func(mutate func(*State)) []byte {
		s := validState()
		mutate(s)
		data, err := s.Marshal()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return data
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"not json", []byte("{broken")},
		{"wrong version", corrupt(func(s *State) { s.Version = 99 })},
		{"missing conversation id", corrupt(func(s *State) { s.ConversationID = "" })},
		{"artifact without id", corrupt(func(s *State) { s.Artifacts["Adder/javascript"].ID = "" })},
		{"level above gates", corrupt(func(s *State) { s.Progress["Adder/javascript"].UnlockLevel = 9 })},
		{"active slot without artifact", corrupt(func(s *State) { s.ActiveSlot = "ghost" })},
		{"invalid attached quiz", corrupt(func(s *State) {
			s.Progress["Adder/javascript"].CurrentQuiz = &quiz.Quiz{
				ID: "q-bad", Question: "?",
				Options:      []quiz.Option{{Label: "A", Text: "only one"}},
				CorrectLabel: "A",
			}
		})},
	}

	for _, tt := range tests {
		_, err := UnmarshalState(tt.data)
		var rerr *RestoreError
		if !errors.As(err, &rerr) {
			t.Errorf("%s: expected RestoreError, got %v", tt.name, err)
		}
	}
}

func TestUnmarshalState_DuplicateAttachedQuiz(t *testing.T) {
	s := validState()
	s.Artifacts["Other/go"] = &artifact.Artifact{ID: "art-def-1", Title: "Other", Language: "go", Content: "package other", Version: 1}
	dup := &quiz.Quiz{
		ID: "q-dup", Question: "Shared?",
		Options: []quiz.Option{
			{Label: "A", Text: "Yes"},
			{Label: "B", Text: "No"},
		},
		CorrectLabel: "A",
	}
	s.Progress["Adder/javascript"].CurrentQuiz = dup
	s.Progress["Other/go"] = &unlock.Progress{TotalGates: 2, CurrentQuiz: dup}

	data, err := s.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := UnmarshalState(data); err == nil {
		t.Error("expected rejection of one quiz attached to two slots")
	}
}

func TestState_FindSlot(t *testing.T) {
	s := validState()

	if slot, ok := s.findSlot("Adder/javascript"); !ok || slot != "Adder/javascript" {
		t.Errorf("by key: %q, %v", slot, ok)
	}
	if slot, ok := s.findSlot("art-abc-0"); !ok || slot != "Adder/javascript" {
		t.Errorf("by artifact id: %q, %v", slot, ok)
	}
	if _, ok := s.findSlot("nope"); ok {
		t.Error("unknown ref resolved")
	}
}

func TestState_Phase(t *testing.T) {
	s := NewState("conv-1", false)
	if s.Phase() != unlock.PhaseInitial {
		t.Errorf("empty state phase = %q", s.Phase())
	}
	s.Planning = true
	if s.Phase() != unlock.PhasePlanning {
		t.Errorf("planning phase = %q", s.Phase())
	}

	s = validState()
	if s.Phase() != unlock.PhaseCoding {
		t.Errorf("gated-no-quiz phase = %q", s.Phase())
	}
	s.Progress["Adder/javascript"].UnlockLevel = 3
	if s.Phase() != unlock.PhaseUnlocked {
		t.Errorf("unlocked phase = %q", s.Phase())
	}
}
