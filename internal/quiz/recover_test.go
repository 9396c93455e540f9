package quiz

import "testing"

func TestRecoverFromText_NumberedQuestions(t *testing.T) {
	text := `Here are your questions:

1. What does the add function return?
A) The sum of its arguments
B) The difference of its arguments
Answer: A
Hint: look at the operator

2. When does the guard branch run?
A. Never
B. When the result is negative
C. Always
Correct answer: (B)
The condition checks result < 0 before entering.`

	quizzes := RecoverFromText(text)
	if len(quizzes) != 2 {
		t.Fatalf("expected 2 quizzes, got %d", len(quizzes))
	}

	q := quizzes[0]
	if q.Question != "What does the add function return?" {
		t.Errorf("question = %q", q.Question)
	}
	if len(q.Options) != 2 || q.Options[0].Text != "The sum of its arguments" {
		t.Errorf("options = %+v", q.Options)
	}
	if q.CorrectLabel != "A" {
		t.Errorf("correct = %q", q.CorrectLabel)
	}
	if q.Hint != "look at the operator" {
		t.Errorf("hint = %q", q.Hint)
	}

	q = quizzes[1]
	if q.CorrectLabel != "B" {
		t.Errorf("second correct = %q", q.CorrectLabel)
	}
	if q.DetailedExplanation == "" {
		t.Error("expected trailing explanation to be captured")
	}
}

func TestRecoverFromText_BareQuestionLine(t *testing.T) {
	text := `What is the time complexity?
A) O(n)
B) O(1)
Answer: A`

	quizzes := RecoverFromText(text)
	if len(quizzes) != 1 {
		t.Fatalf("expected 1 quiz, got %d", len(quizzes))
	}
	if quizzes[0].Question != "What is the time complexity?" {
		t.Errorf("question = %q", quizzes[0].Question)
	}
}

func TestRecoverFromText_DropsIncomplete(t *testing.T) {
	// Missing answer line and a question with a single option: neither
	// validates, so nothing is recovered.
	text := `1. A question with no options?

2. A question with one option?
A) Only choice`

	if quizzes := RecoverFromText(text); len(quizzes) != 0 {
		t.Errorf("expected no quizzes from unusable text, got %d", len(quizzes))
	}
}

func TestRecoverFromText_Prose(t *testing.T) {
	if quizzes := RecoverFromText("I could not generate questions for this code."); len(quizzes) != 0 {
		t.Errorf("expected no quizzes from prose, got %d", len(quizzes))
	}
}
