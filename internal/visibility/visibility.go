package visibility

import (
	"strings"

	"github.com/dkasab/unveil/internal/classify"
)

// RedactedGlyph replaces every character of a hidden line so the reader can
// see the shape of what is still locked without reading it.
const RedactedGlyph = "░"

// VisibleIndices computes the set of line indices the learner may currently
// see. Reveal is banded on progress = unlockLevel/totalGates:
//
//	progress == 0      → signature lines only
//	0 < p ≤ 1/3        → + structure
//	1/3 < p ≤ 2/3      → + logic
//	p > 2/3            → everything
//
// Blank lines are always visible. totalGates == 0 means the artifact is not
// gated and everything shows. For fixed lines and gates the result is
// monotone in unlockLevel: raising the level never hides a line.
func VisibleIndices(lines []classify.Line, unlockLevel, totalGates int) map[int]bool {
	visible := make(map[int]bool, len(lines))

	if totalGates <= 0 || unlockLevel >= totalGates {
		for _, l := range lines {
			visible[l.Index] = true
		}
		return visible
	}

	if unlockLevel < 0 {
		unlockLevel = 0
	}
	progress := float64(unlockLevel) / float64(totalGates)

	for _, l := range lines {
		if l.Blank {
			visible[l.Index] = true
			continue
		}
		switch l.Importance {
		case classify.ImportanceSignature:
			visible[l.Index] = true
		case classify.ImportanceStructure:
			if progress > 0 {
				visible[l.Index] = true
			}
		case classify.ImportanceLogic:
			if progress > 1.0/3.0 {
				visible[l.Index] = true
			}
		default:
			if progress > 2.0/3.0 {
				visible[l.Index] = true
			}
		}
	}
	return visible
}

// Render produces the learner-facing view of the artifact: visible lines
// verbatim, hidden lines replaced by a redaction bar of the same width.
func Render(lines []classify.Line, unlockLevel, totalGates int) string {
	visible := VisibleIndices(lines, unlockLevel, totalGates)

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if visible[l.Index] {
			b.WriteString(l.Content)
		} else {
			b.WriteString(redact(l.Content))
		}
	}
	return b.String()
}

// redact keeps leading indentation and masks the rest of the line.
func redact(content string) string {
	indent := len(content) - len(strings.TrimLeft(content, " \t"))
	masked := len([]rune(content)) - indent
	if masked < 1 {
		masked = 1
	}
	return content[:indent] + strings.Repeat(RedactedGlyph, masked)
}

// Percent reports unlock progress as a 0–100 integer. Ungated artifacts are
// always 100.
func Percent(unlockLevel, totalGates int) int {
	if totalGates <= 0 {
		return 100
	}
	if unlockLevel >= totalGates {
		return 100
	}
	if unlockLevel < 0 {
		return 0
	}
	return unlockLevel * 100 / totalGates
}
