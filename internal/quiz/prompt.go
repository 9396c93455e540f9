package quiz

import (
	"fmt"
	"strings"
)

const generateSystemPrompt = `You are a programming tutor. You write short multiple-choice
comprehension questions about a piece of source code a learner is studying.
Questions must be answerable from the code alone, progress from structural
("what does this function take?") to behavioral ("what happens when...?"),
and never require knowledge the code does not show. Each question has 2-4
choices labeled A-D with exactly one correct choice.`

const gradeSystemPrompt = `You are a programming tutor grading a learner's free-form answer
to a comprehension question about code. Judge understanding, not wording.
Accept paraphrases and partial notation differences. Be encouraging but
honest in feedback.`

// buildGenerateMessage assembles the user message for quiz generation.
func buildGenerateMessage(content, language string, gateCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write exactly %d comprehension questions about this %s code.\n", gateCount, languageOrCode(language))
	b.WriteString("Order them from easiest (overall structure) to hardest (specific behavior).\n\n")
	b.WriteString("```")
	b.WriteString(language)
	b.WriteString("\n")
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")

	return b.String()
}

// buildGradeMessage assembles the user message for free-form grading.
func buildGradeMessage(question, userAnswer, codeContext string) string {
	var b strings.Builder

	b.WriteString("Question:\n")
	b.WriteString(question)
	b.WriteString("\n\nLearner's answer:\n")
	b.WriteString(userAnswer)

	if codeContext != "" {
		b.WriteString("\n\nThe code the question is about:\n```\n")
		b.WriteString(codeContext)
		if !strings.HasSuffix(codeContext, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("```\n")
	}

	return b.String()
}

func languageOrCode(language string) string {
	if language == "" {
		return "code"
	}
	return language
}
