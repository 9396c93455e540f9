package visibility

import (
	"strings"
	"testing"

	"github.com/dkasab/unveil/internal/classify"
)

const sampleFunction = "export function add(a,b) {\n" +
	"  // sum two numbers\n" +
	"  const result = a + b;\n" +
	"  if (result < 0) {\n" +
	"  }\n" +
	"}"

func TestVisibleIndices_RevealBands(t *testing.T) {
	lines := classify.Classify(sampleFunction)

	tests := []struct {
		level int
		want  []int
	}{
		// Level 0: signatures only (line 5, the block's final line, counts
		// as a signature).
		{0, []int{0, 5}},
		// Level 1 of 3: structure joins.
		{1, []int{0, 3, 4, 5}},
		// Level 2 of 3: logic joins.
		{2, []int{0, 2, 3, 4, 5}},
		// Level 3 of 3: everything, including the comment.
		{3, []int{0, 1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		visible := VisibleIndices(lines, tt.level, 3)
		if len(visible) != len(tt.want) {
			t.Errorf("level %d: %d visible lines, want %d (%v)", tt.level, len(visible), len(tt.want), visible)
			continue
		}
		for _, idx := range tt.want {
			if !visible[idx] {
				t.Errorf("level %d: line %d should be visible", tt.level, idx)
			}
		}
	}
}

func TestVisibleIndices_MonotonicReveal(t *testing.T) {
	lines := classify.Classify(sampleFunction)

	for gates := 1; gates <= 5; gates++ {
		prev := map[int]bool{}
		for level := 0; level <= gates; level++ {
			visible := VisibleIndices(lines, level, gates)
			for idx := range prev {
				if !visible[idx] {
					t.Errorf("gates=%d: line %d visible at level %d but hidden at %d", gates, idx, level-1, level)
				}
			}
			prev = visible
		}
	}
}

func TestVisibleIndices_UngatedShowsEverything(t *testing.T) {
	lines := classify.Classify(sampleFunction)
	visible := VisibleIndices(lines, 0, 0)
	for _, l := range lines {
		if !visible[l.Index] {
			t.Errorf("ungated artifact hides line %d", l.Index)
		}
	}
}

func TestVisibleIndices_BlankLinesAlwaysVisible(t *testing.T) {
	lines := classify.Classify("def f():\n\n    x = 1\n    return x")
	visible := VisibleIndices(lines, 0, 3)
	if !visible[1] {
		t.Error("blank line hidden at level 0")
	}
	if visible[2] {
		t.Error("logic line visible at level 0")
	}
}

func TestRender_RedactsHiddenLines(t *testing.T) {
	lines := classify.Classify(sampleFunction)
	out := Render(lines, 0, 3)

	rendered := strings.Split(out, "\n")
	if len(rendered) != 6 {
		t.Fatalf("expected 6 rendered lines, got %d", len(rendered))
	}
	if rendered[0] != "export function add(a,b) {" {
		t.Errorf("signature line altered: %q", rendered[0])
	}
	if rendered[5] != "}" {
		t.Errorf("final line altered: %q", rendered[5])
	}
	if !strings.Contains(rendered[2], RedactedGlyph) {
		t.Errorf("hidden line not redacted: %q", rendered[2])
	}
	if strings.Contains(rendered[2], "result") {
		t.Errorf("hidden content leaked: %q", rendered[2])
	}
	if !strings.HasPrefix(rendered[2], "  ") {
		t.Errorf("indentation not preserved: %q", rendered[2])
	}
}

func TestRender_FullyUnlockedIsVerbatim(t *testing.T) {
	lines := classify.Classify(sampleFunction)
	if out := Render(lines, 3, 3); out != sampleFunction {
		t.Errorf("fully unlocked render differs from source:\n%s", out)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		level, gates, want int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 66},
		{3, 3, 100},
		{0, 0, 100},
		{5, 3, 100},
		{-1, 3, 0},
		{2, 4, 50},
	}
	for _, tt := range tests {
		if got := Percent(tt.level, tt.gates); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.level, tt.gates, got, tt.want)
		}
	}
}
