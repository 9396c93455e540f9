package quiz

import (
	"fmt"
	"strings"
)

// Option is a single answer choice.
type Option struct {
	// Label is the choice letter shown to the learner ("A".."D").
	Label string `json:"label"`

	// Text is the choice body.
	Text string `json:"text"`

	// Explanation optionally says why this choice is right or wrong.
	Explanation string `json:"explanation,omitempty"`
}

// Quiz is one comprehension check tied to an artifact version and gate level.
type Quiz struct {
	ID string `json:"id"`

	// ArtifactID is the artifact version this quiz was generated against.
	ArtifactID string `json:"artifactId"`

	// GateLevel is the gate this quiz unlocks (0-based).
	GateLevel int `json:"gateLevel"`

	Question     string   `json:"question"`
	Options      []Option `json:"options"`
	CorrectLabel string   `json:"correctLabel"`

	Hint                string `json:"hint,omitempty"`
	DetailedExplanation string `json:"detailedExplanation,omitempty"`

	// CodeSnippet optionally quotes the lines the question is about.
	CodeSnippet string `json:"codeSnippet,omitempty"`

	// Fallback is true when the quiz was synthesized locally because the
	// oracle produced nothing usable.
	Fallback bool `json:"fallback,omitempty"`
}

// GradeResult is the oracle's judgment of a free-form answer.
type GradeResult struct {
	IsCorrect bool   `json:"isCorrect"`
	Feedback  string `json:"feedback"`
}

// Validate enforces the structural invariants. A quiz with no options is
// freeform (graded by the oracle) and carries no correct label; a
// multiple-choice quiz needs 2-4 options with unique labels and exactly one
// option matching CorrectLabel.
func (q *Quiz) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("quiz %s: question is empty", q.ID)
	}
	if len(q.Options) == 0 {
		if q.CorrectLabel != "" {
			return fmt.Errorf("quiz %s: correct label %q without options", q.ID, q.CorrectLabel)
		}
		return nil
	}
	if len(q.Options) < 2 || len(q.Options) > 4 {
		return fmt.Errorf("quiz %s: %d options, want 2-4", q.ID, len(q.Options))
	}

	seen := make(map[string]bool, len(q.Options))
	correct := 0
	for _, o := range q.Options {
		if o.Label == "" || o.Text == "" {
			return fmt.Errorf("quiz %s: option with empty label or text", q.ID)
		}
		if seen[o.Label] {
			return fmt.Errorf("quiz %s: duplicate option label %q", q.ID, o.Label)
		}
		seen[o.Label] = true
		if o.Label == q.CorrectLabel {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("quiz %s: correct label %q matches %d options, want exactly 1", q.ID, q.CorrectLabel, correct)
	}
	return nil
}

// CheckAnswer grades a multiple-choice answer locally. The answer may be an
// option label ("B") or the full option text; comparison is case-insensitive.
func CheckAnswer(q *Quiz, answer string) bool {
	answer = normalize(answer)
	if answer == normalize(q.CorrectLabel) {
		return true
	}
	for _, o := range q.Options {
		if o.Label == q.CorrectLabel && answer == normalize(o.Text) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// HasOption reports whether label names one of the quiz's options.
func (q *Quiz) HasOption(label string) bool {
	for _, o := range q.Options {
		if o.Label == label {
			return true
		}
	}
	return false
}
