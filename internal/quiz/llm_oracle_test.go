package quiz

import (
	"encoding/json"
	"testing"

	"github.com/dkasab/unveil/internal/llm"
)

func validQuizSetJSON() json.RawMessage {
	return json.RawMessage(`{
		"quizzes": [
			{
				"question": "What does add return?",
				"options": [
					{"label": "A", "text": "The sum", "explanation": ""},
					{"label": "B", "text": "Nothing", "explanation": ""}
				],
				"correct_label": "A",
				"hint": "Check the return statement",
				"detailed_explanation": "The function returns a + b.",
				"code_snippet": "return a + b;"
			},
			{
				"question": "When does the guard run?",
				"options": [
					{"label": "A", "text": "Always", "explanation": ""},
					{"label": "B", "text": "When the result is negative", "explanation": ""}
				],
				"correct_label": "B",
				"hint": "",
				"detailed_explanation": "",
				"code_snippet": ""
			}
		]
	}`)
}

func TestLLMOracle_GenerateQuizzes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizSetJSON()})
	oracle := NewLLMOracle(mock, DefaultConfig())

	quizzes, err := oracle.GenerateQuizzes(t.Context(), "function add(a,b) { return a + b; }", "javascript", 3)
	if err != nil {
		t.Fatalf("GenerateQuizzes: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("expected 2 quizzes, got %d", len(quizzes))
	}

	if quizzes[0].GateLevel != 0 || quizzes[1].GateLevel != 1 {
		t.Errorf("gate levels = %d, %d", quizzes[0].GateLevel, quizzes[1].GateLevel)
	}
	if quizzes[0].Question != "What does add return?" {
		t.Errorf("question = %q", quizzes[0].Question)
	}
	if quizzes[0].ID == "" || quizzes[0].ID == quizzes[1].ID {
		t.Error("expected distinct non-empty quiz ids")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "unlock-quiz-set" {
		t.Error("expected schema name 'unlock-quiz-set'")
	}
}

func TestLLMOracle_TrimsToGateCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizSetJSON()})
	oracle := NewLLMOracle(mock, DefaultConfig())

	quizzes, err := oracle.GenerateQuizzes(t.Context(), "x", "go", 1)
	if err != nil {
		t.Fatalf("GenerateQuizzes: %v", err)
	}
	if len(quizzes) != 1 {
		t.Fatalf("expected 1 quiz after trim, got %d", len(quizzes))
	}
}

func TestLLMOracle_DropsInvalidQuizzes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"quizzes": [
			{
				"question": "",
				"options": [
					{"label": "A", "text": "x", "explanation": ""},
					{"label": "B", "text": "y", "explanation": ""}
				],
				"correct_label": "A",
				"hint": "", "detailed_explanation": "", "code_snippet": ""
			},
			{
				"question": "Which label survives?",
				"options": [
					{"label": "A", "text": "This one", "explanation": ""},
					{"label": "B", "text": "Not this", "explanation": ""}
				],
				"correct_label": "A",
				"hint": "", "detailed_explanation": "", "code_snippet": ""
			}
		]
	}`)})
	oracle := NewLLMOracle(mock, DefaultConfig())

	quizzes, err := oracle.GenerateQuizzes(t.Context(), "x", "go", 3)
	if err != nil {
		t.Fatalf("GenerateQuizzes: %v", err)
	}
	if len(quizzes) != 1 {
		t.Fatalf("expected invalid quiz dropped, got %d quizzes", len(quizzes))
	}
	if quizzes[0].Question != "Which label survives?" {
		t.Errorf("survivor = %q", quizzes[0].Question)
	}
}

func TestLLMOracle_RecoversFromFreeText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		"Sure! Here you go:\n" +
			"1. What does add return?\n" +
			"A) The sum\n" +
			"B) Nothing\n" +
			"Answer: A\n",
	)})
	oracle := NewLLMOracle(mock, DefaultConfig())

	quizzes, err := oracle.GenerateQuizzes(t.Context(), "x", "go", 3)
	if err != nil {
		t.Fatalf("GenerateQuizzes: %v", err)
	}
	if len(quizzes) != 1 {
		t.Fatalf("expected 1 recovered quiz, got %d", len(quizzes))
	}
	if quizzes[0].CorrectLabel != "A" {
		t.Errorf("correct = %q", quizzes[0].CorrectLabel)
	}
}

func TestLLMOracle_UnusableResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("no questions here")})
	oracle := NewLLMOracle(mock, DefaultConfig())

	if _, err := oracle.GenerateQuizzes(t.Context(), "x", "go", 3); err == nil {
		t.Error("expected error for unusable response")
	}
}

func TestLLMOracle_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	oracle := NewLLMOracle(mock, DefaultConfig())

	if _, err := oracle.GenerateQuizzes(t.Context(), "x", "go", 3); err == nil {
		t.Error("expected provider error to propagate")
	}
}

func TestLLMOracle_GradeFreeform(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"is_correct": true, "feedback": "Exactly right."}`,
	)})
	oracle := NewLLMOracle(mock, DefaultConfig())

	result, err := oracle.GradeFreeform(t.Context(), "What does add do?", "It sums two numbers", "function add(a,b){return a+b;}")
	if err != nil {
		t.Fatalf("GradeFreeform: %v", err)
	}
	if !result.IsCorrect {
		t.Error("expected correct judgment")
	}
	if result.Feedback != "Exactly right." {
		t.Errorf("feedback = %q", result.Feedback)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "freeform-grade" {
		t.Error("expected schema name 'freeform-grade'")
	}
}
