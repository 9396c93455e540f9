package classify

import (
	"regexp"
	"strings"
)

// Importance ranks how structurally load-bearing a line of code is.
// Higher-importance lines are revealed earlier by the visibility planner.
type Importance string

const (
	// ImportanceSignature marks declarations: function/type/module headers,
	// import and export statements, and the final closing line of a block.
	ImportanceSignature Importance = "signature"

	// ImportanceStructure marks control flow and closing-bracket-only lines.
	ImportanceStructure Importance = "structure"

	// ImportanceLogic marks assignments and call-bearing lines.
	ImportanceLogic Importance = "logic"

	// ImportanceDetail is everything else: comments, literals, blank lines.
	ImportanceDetail Importance = "detail"
)

// Line is a single classified source line.
type Line struct {
	// Index is the zero-based position of the line in the artifact.
	Index int

	// Content is the raw line text, without the trailing newline.
	Content string

	// Importance is the heuristic tag for this line.
	Importance Importance

	// Blank is true when the line is empty or whitespace-only. Blank lines
	// keep their Importance tag but are always visible regardless of level,
	// so the shape of the code never collapses.
	Blank bool
}

// Pattern tables. This is a deliberate heuristic over common C-family,
// Python, and Go surface syntax, not a parser. Misclassification is
// acceptable; crashing is not.
var (
	signatureRe = regexp.MustCompile(strings.Join([]string{
		`^\s*(export\s+)?(default\s+)?(async\s+)?function\b`,
		`^\s*(public|private|protected|internal|static|abstract|final|override)\b.*\(`,
		`^\s*(export\s+)?(abstract\s+)?(class|interface|struct|enum|trait|impl|protocol|module|namespace)\b`,
		`^\s*(def|fn|func|sub|procedure)\b`,
		`^\s*(import|from\s+\S+\s+import|export\s+\{|export\s+\*|require\s*\(|use\s+\w|#include|package|using)\b`,
		`^\s*(export\s+)?(const|let|var)\s+\w+(\s*:\s*[\w<>\[\]. ]+)?\s*=\s*(async\b|\(|function\b|\w+\s*=>)`,
		`^\s*type\s+\w+`,
	}, "|"))

	structureRe = regexp.MustCompile(strings.Join([]string{
		`^\s*(if|else|elif|elsif|for|foreach|while|do|switch|match|case|default|try|catch|except|finally|rescue|ensure|return|throw|raise|break|continue|yield|defer|select|guard|when)\b`,
		`^\s*\}?\s*(else|catch|finally|elif|except)\b`,
	}, "|"))

	// A line consisting only of closing brackets (plus trailing punctuation).
	closingRe = regexp.MustCompile(`^\s*[}\])]+[;,]?\s*$`)

	assignmentRe = regexp.MustCompile(`(:=|\+=|-=|\*=|/=|%=|\|\|=|&&=|\?\?=|\|=|&=|\^=|<<=|>>=|(^|[^=!<>+\-*/%&|^])=($|[^=]))`)

	callRe = regexp.MustCompile(`[\w\]\)]\s*\(`)
)

// Classify tags every line of content with its structural importance in a
// single pass. Precedence when multiple patterns match:
// signature > structure > logic > detail. The final non-blank line of the
// block is always a signature so the outermost frame is visible from the
// start. Empty or unmatched lines fall through to detail.
func Classify(content string) []Line {
	if content == "" {
		return nil
	}

	raw := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	lines := make([]Line, len(raw))

	lastNonBlank := -1
	for i, text := range raw {
		if strings.TrimSpace(text) != "" {
			lastNonBlank = i
		}
	}

	for i, text := range raw {
		lines[i] = Line{
			Index:      i,
			Content:    text,
			Importance: classifyLine(text, i == lastNonBlank),
			Blank:      strings.TrimSpace(text) == "",
		}
	}
	return lines
}

func classifyLine(text string, isFinal bool) Importance {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ImportanceDetail
	}
	if isFinal {
		return ImportanceSignature
	}
	switch {
	case signatureRe.MatchString(text):
		return ImportanceSignature
	case structureRe.MatchString(text) || closingRe.MatchString(trimmed):
		return ImportanceStructure
	case assignmentRe.MatchString(text) || callRe.MatchString(text):
		return ImportanceLogic
	default:
		return ImportanceDetail
	}
}
