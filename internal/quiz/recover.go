package quiz

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Free-text recovery. When the oracle returns prose instead of the
// structured object, try to pull question/option/answer triples back out:
//
//	1. What does the function return?
//	A) The sum
//	B) Nothing
//	Answer: A
//
// Anything that doesn't validate is dropped.

var (
	optionLineRe = regexp.MustCompile(`^\s*([A-D])[).:]\s+(.*\S)\s*$`)
	answerLineRe = regexp.MustCompile(`(?i)^\s*(?:correct\s+)?answer\s*[:=]?\s*\(?([A-D])\)?`)
	numberedRe   = regexp.MustCompile(`^\s*(?:\d+[.)]|[Qq](?:uestion)?\s*\d*[.:])\s*(.*\S)\s*$`)
	hintLineRe   = regexp.MustCompile(`(?i)^\s*hint\s*[:=]\s*(.*\S)\s*$`)
)

// RecoverFromText attempts to rebuild structured quizzes from free text.
// Returns only quizzes that pass validation; an empty slice means the text
// was unusable and the caller should synthesize a fallback.
func RecoverFromText(text string) []Quiz {
	var quizzes []Quiz
	var current *Quiz

	flush := func() {
		if current == nil {
			return
		}
		// Only multiple-choice shapes are recoverable; a bare question line
		// with no options is prose, not a freeform quiz.
		if len(current.Options) > 0 {
			if err := current.Validate(); err == nil {
				quizzes = append(quizzes, *current)
			}
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if m := numberedRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &Quiz{ID: uuid.NewString(), Question: m[1]}
			continue
		}
		if current == nil {
			// A bare question line before any numbering.
			if trimmed := strings.TrimSpace(line); strings.HasSuffix(trimmed, "?") {
				current = &Quiz{ID: uuid.NewString(), Question: trimmed}
			}
			continue
		}
		if m := optionLineRe.FindStringSubmatch(line); m != nil {
			current.Options = append(current.Options, Option{Label: m[1], Text: m[2]})
			continue
		}
		if m := answerLineRe.FindStringSubmatch(line); m != nil {
			current.CorrectLabel = strings.ToUpper(m[1])
			continue
		}
		if m := hintLineRe.FindStringSubmatch(line); m != nil {
			current.Hint = m[1]
			continue
		}
		// Explanatory tail after the answer line.
		if current.CorrectLabel != "" && strings.TrimSpace(line) != "" {
			if current.DetailedExplanation != "" {
				current.DetailedExplanation += " "
			}
			current.DetailedExplanation += strings.TrimSpace(line)
		}
	}
	flush()

	return quizzes
}
