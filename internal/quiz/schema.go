package quiz

import "github.com/dkasab/unveil/internal/llm"

// QuizSetSchema defines the JSON schema for LLM quiz generation responses.
var QuizSetSchema = &llm.Schema{
	Name:        "unlock-quiz-set",
	Description: "Comprehension questions about a piece of generated source code, one per unlock gate",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quizzes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The comprehension question shown to the learner",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"label": map[string]any{
										"type":        "string",
										"description": "Choice letter: A, B, C, or D",
									},
									"text": map[string]any{
										"type":        "string",
										"description": "Choice body",
									},
									"explanation": map[string]any{
										"type":        "string",
										"description": "Why this choice is right or wrong. May be empty.",
									},
								},
								"required":             []any{"label", "text", "explanation"},
								"additionalProperties": false,
							},
							"description": "2 to 4 answer choices with unique labels",
						},
						"correct_label": map[string]any{
							"type":        "string",
							"description": "Label of the single correct option",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "Short nudge toward the answer. May be empty.",
						},
						"detailed_explanation": map[string]any{
							"type":        "string",
							"description": "Worked explanation shown after answering. May be empty.",
						},
						"code_snippet": map[string]any{
							"type":        "string",
							"description": "The lines of code the question refers to. May be empty.",
						},
					},
					"required":             []any{"question", "options", "correct_label", "hint", "detailed_explanation", "code_snippet"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"quizzes"},
		"additionalProperties": false,
	},
}

// GradeSchema defines the JSON schema for free-form grading responses.
var GradeSchema = &llm.Schema{
	Name:        "freeform-grade",
	Description: "Judgment of a learner's free-form answer to a code comprehension question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer demonstrates understanding",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences of feedback for the learner",
			},
		},
		"required":             []any{"is_correct", "feedback"},
		"additionalProperties": false,
	},
}
