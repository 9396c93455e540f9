package quiz

import "testing"

func validQuiz() Quiz {
	return Quiz{
		ID:       "q-1",
		Question: "What does the function return?",
		Options: []Option{
			{Label: "A", Text: "The sum of a and b"},
			{Label: "B", Text: "Nothing"},
			{Label: "C", Text: "The product of a and b"},
		},
		CorrectLabel: "A",
	}
}

func TestQuiz_Validate(t *testing.T) {
	q := validQuiz()
	if err := q.Validate(); err != nil {
		t.Errorf("valid quiz rejected: %v", err)
	}
}

func TestQuiz_ValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Quiz)
	}{
		{"empty question", func(q *Quiz) { q.Question = "" }},
		{"one option", func(q *Quiz) { q.Options = q.Options[:1] }},
		{"five options", func(q *Quiz) {
			q.Options = append(q.Options,
				Option{Label: "D", Text: "d"},
				Option{Label: "E", Text: "e"})
		}},
		{"duplicate labels", func(q *Quiz) { q.Options[1].Label = "A" }},
		{"correct label matches nothing", func(q *Quiz) { q.CorrectLabel = "Z" }},
		{"empty option text", func(q *Quiz) { q.Options[2].Text = "" }},
	}

	for _, tt := range tests {
		q := validQuiz()
		tt.mutate(&q)
		if err := q.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestQuiz_ValidateFreeform(t *testing.T) {
	q := Quiz{ID: "q-f", Question: "Explain what the guard clause does."}
	if err := q.Validate(); err != nil {
		t.Errorf("freeform quiz rejected: %v", err)
	}

	q.CorrectLabel = "A"
	if err := q.Validate(); err == nil {
		t.Error("freeform quiz with a correct label must be rejected")
	}
}

func TestCheckAnswer(t *testing.T) {
	q := validQuiz()
	tests := []struct {
		answer string
		want   bool
	}{
		{"A", true},
		{"a", true},
		{"  A  ", true},
		{"The sum of a and b", true},
		{"the sum of A and B", true},
		{"B", false},
		{"Nothing", false},
		{"", false},
		{"E", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(&q, tt.answer); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestQuiz_HasOption(t *testing.T) {
	q := validQuiz()
	if !q.HasOption("B") {
		t.Error("expected option B to exist")
	}
	if q.HasOption("D") {
		t.Error("expected no option D")
	}
}
