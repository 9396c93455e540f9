package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkasab/unveil/internal/llm"
)

// Config controls the behavior of the LLMOracle.
type Config struct {
	// GenerateMaxTokens is the token budget for quiz generation.
	GenerateMaxTokens int

	// GradeMaxTokens is the token budget for free-form grading.
	GradeMaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns recommended oracle defaults.
func DefaultConfig() Config {
	return Config{
		GenerateMaxTokens: 2048,
		GradeMaxTokens:    256,
		Temperature:       0.7,
	}
}

// LLMOracle implements Oracle using the LLM provider.
type LLMOracle struct {
	provider llm.Provider
	config   Config
}

// NewLLMOracle creates an oracle backed by the given provider.
func NewLLMOracle(provider llm.Provider, cfg Config) *LLMOracle {
	return &LLMOracle{provider: provider, config: cfg}
}

// quizSetOutput is the raw LLM response before validation.
type quizSetOutput struct {
	Quizzes []quizOutput `json:"quizzes"`
}

type quizOutput struct {
	Question            string         `json:"question"`
	Options             []optionOutput `json:"options"`
	CorrectLabel        string         `json:"correct_label"`
	Hint                string         `json:"hint"`
	DetailedExplanation string         `json:"detailed_explanation"`
	CodeSnippet         string         `json:"code_snippet"`
}

type optionOutput struct {
	Label       string `json:"label"`
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
}

// GenerateQuizzes produces one quiz per gate for the given code. Quizzes
// that fail structural validation are dropped rather than failing the batch;
// the caller falls back when nothing survives.
func (o *LLMOracle) GenerateQuizzes(ctx context.Context, content, language string, gateCount int) ([]Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGenerateMessage(content, language, gateCount)},
		},
		Schema:      QuizSetSchema,
		MaxTokens:   o.config.GenerateMaxTokens,
		Temperature: o.config.Temperature,
	}

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var raw quizSetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		// Some providers wrap or mangle the structured output; try to
		// recover a usable quiz set from the text before giving up.
		recovered := RecoverFromText(string(resp.Content))
		if len(recovered) == 0 {
			return nil, fmt.Errorf("parse quiz response: %w", err)
		}
		return numberQuizzes(recovered, gateCount), nil
	}

	quizzes := make([]Quiz, 0, len(raw.Quizzes))
	for _, q := range raw.Quizzes {
		quiz := Quiz{
			ID:                  uuid.NewString(),
			Question:            q.Question,
			CorrectLabel:        q.CorrectLabel,
			Hint:                q.Hint,
			DetailedExplanation: q.DetailedExplanation,
			CodeSnippet:         q.CodeSnippet,
		}
		for _, opt := range q.Options {
			quiz.Options = append(quiz.Options, Option{
				Label:       opt.Label,
				Text:        opt.Text,
				Explanation: opt.Explanation,
			})
		}
		if err := quiz.Validate(); err != nil {
			continue
		}
		quizzes = append(quizzes, quiz)
	}

	return numberQuizzes(quizzes, gateCount), nil
}

// GradeFreeform judges a free-form answer.
func (o *LLMOracle) GradeFreeform(ctx context.Context, question, userAnswer, codeContext string) (*GradeResult, error) {
	ctx = llm.WithPurpose(ctx, "grading")

	req := llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradeMessage(question, userAnswer, codeContext)},
		},
		Schema:    GradeSchema,
		MaxTokens: o.config.GradeMaxTokens,
	}

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grading: %w", err)
	}

	var out struct {
		IsCorrect bool   `json:"is_correct"`
		Feedback  string `json:"feedback"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse grade response: %w", err)
	}

	return &GradeResult{IsCorrect: out.IsCorrect, Feedback: out.Feedback}, nil
}

// numberQuizzes assigns gate levels in order and trims to gateCount.
func numberQuizzes(quizzes []Quiz, gateCount int) []Quiz {
	if len(quizzes) > gateCount {
		quizzes = quizzes[:gateCount]
	}
	for i := range quizzes {
		quizzes[i].GateLevel = i
	}
	return quizzes
}
