package unlock

import (
	"fmt"

	"github.com/dkasab/unveil/internal/quiz"
)

// AnswerRecord is one append-only history entry. It snapshots the quiz it
// answers so history survives quiz object churn.
type AnswerRecord struct {
	QuizID     string `json:"quizId"`
	UserAnswer string `json:"userAnswer"`
	IsCorrect  bool   `json:"isCorrect"`

	// AnsweredAtTurn anchors the record to its position in the transcript.
	AnsweredAtTurn int `json:"answeredAtTurn"`

	Quiz quiz.Quiz `json:"quiz"`
}

// Progress tracks gating state for one artifact identity. New versions of
// the artifact keep the same Progress; gates are never re-locked.
type Progress struct {
	// UnlockLevel counts gates passed: 0 ≤ UnlockLevel ≤ TotalGates.
	// Non-decreasing except that Skip jumps it straight to TotalGates.
	UnlockLevel int `json:"unlockLevel"`

	// TotalGates is the number of comprehension checks required.
	// 0 means no gating: the artifact is always fully visible.
	TotalGates int `json:"totalGates"`

	// CurrentQuiz is the question the learner must answer next, if any.
	CurrentQuiz *quiz.Quiz `json:"currentQuiz,omitempty"`

	// History records every answered question, correct or not.
	History []AnswerRecord `json:"history"`
}

// StaleQuizError reports an answer submitted against a quiz that is no
// longer current. The submission causes no state change.
type StaleQuizError struct {
	SubmittedQuizID string
	CurrentQuizID   string // empty when no quiz is attached
}

func (e *StaleQuizError) Error() string {
	if e.CurrentQuizID == "" {
		return fmt.Sprintf("quiz %s is no longer current (no quiz attached)", e.SubmittedQuizID)
	}
	return fmt.Sprintf("quiz %s is no longer current (current is %s)", e.SubmittedQuizID, e.CurrentQuizID)
}

// NewProgress creates gating state with the given gate count.
func NewProgress(totalGates int) *Progress {
	if totalGates < 0 {
		totalGates = 0
	}
	return &Progress{TotalGates: totalGates}
}

// IsUnlocked reports whether the artifact is fully visible.
func (p *Progress) IsUnlocked() bool {
	return p.TotalGates == 0 || p.UnlockLevel >= p.TotalGates
}

// CurrentQuizMatches checks that quizID names the attached quiz. Returns a
// StaleQuizError otherwise.
func (p *Progress) CurrentQuizMatches(quizID string) error {
	if p.CurrentQuiz == nil {
		return &StaleQuizError{SubmittedQuizID: quizID}
	}
	if p.CurrentQuiz.ID != quizID {
		return &StaleQuizError{SubmittedQuizID: quizID, CurrentQuizID: p.CurrentQuiz.ID}
	}
	return nil
}

// RecordAnswer applies a graded answer to the progress. The caller must
// have verified the quiz is current (CurrentQuizMatches) and completed
// grading; a grading failure never reaches this method, so a failed oracle
// call can be retried without side effects.
//
// Correct answers advance the level by one (capped at TotalGates) and clear
// the current quiz. Incorrect answers are recorded but leave the level and
// the current quiz untouched, so the same question can be retried without
// limit.
func (p *Progress) RecordAnswer(userAnswer string, isCorrect bool, turn int) {
	if p.CurrentQuiz == nil {
		return
	}

	p.History = append(p.History, AnswerRecord{
		QuizID:         p.CurrentQuiz.ID,
		UserAnswer:     userAnswer,
		IsCorrect:      isCorrect,
		AnsweredAtTurn: turn,
		Quiz:           *p.CurrentQuiz,
	})

	if !isCorrect {
		return
	}

	if p.UnlockLevel < p.TotalGates {
		p.UnlockLevel++
	}
	p.CurrentQuiz = nil
}

// Skip jumps straight to fully unlocked. Skipped gates leave no history;
// the record only contains questions actually answered.
func (p *Progress) Skip() {
	p.UnlockLevel = p.TotalGates
	p.CurrentQuiz = nil
}

// AttachQuiz sets the pending question. No-op when the artifact is already
// unlocked or another quiz is attached; completion handlers for in-flight
// generation calls rely on this re-check.
func (p *Progress) AttachQuiz(q quiz.Quiz) bool {
	if p.IsUnlocked() || p.CurrentQuiz != nil {
		return false
	}
	p.CurrentQuiz = &q
	return true
}

// Validate checks structural invariants after a restore. Violations are
// fatal to the operation that discovered them.
func (p *Progress) Validate() error {
	if p.TotalGates < 0 {
		return fmt.Errorf("negative totalGates %d", p.TotalGates)
	}
	if p.UnlockLevel < 0 || p.UnlockLevel > p.TotalGates {
		return fmt.Errorf("unlockLevel %d outside [0, %d]", p.UnlockLevel, p.TotalGates)
	}
	if p.CurrentQuiz != nil {
		if err := p.CurrentQuiz.Validate(); err != nil {
			return err
		}
	}
	return nil
}
