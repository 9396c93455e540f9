package quiz

import (
	"context"
	"errors"
)

// ErrOracleUnavailable reports that no oracle backend is configured.
var ErrOracleUnavailable = errors.New("quiz oracle unavailable")

// Oracle is the external question-generation and grading capability.
// The engine treats it as a black box: calls are asynchronous from the
// session's point of view and may fail at any time.
type Oracle interface {
	// GenerateQuizzes produces one quiz per gate for the given code.
	// The returned quizzes are keyed by GateLevel (0..gateCount-1).
	GenerateQuizzes(ctx context.Context, content, language string, gateCount int) ([]Quiz, error)

	// GradeFreeform judges a free-form answer against the question and the
	// code it was asked about.
	GradeFreeform(ctx context.Context, question, userAnswer, codeContext string) (*GradeResult, error)
}

// UnavailableOracle fails every call with ErrOracleUnavailable. Used when
// no LLM provider is configured; the service's fallback quizzes take over.
type UnavailableOracle struct{}

func (UnavailableOracle) GenerateQuizzes(ctx context.Context, content, language string, gateCount int) ([]Quiz, error) {
	return nil, ErrOracleUnavailable
}

func (UnavailableOracle) GradeFreeform(ctx context.Context, question, userAnswer, codeContext string) (*GradeResult, error) {
	return nil, ErrOracleUnavailable
}
