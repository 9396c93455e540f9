package artifact

import (
	"errors"
	"strings"
	"testing"
)

func TestExtract_SingleBlock(t *testing.T) {
	var x Extractor
	text := "Here is the function:\n" +
		"<artifact title=\"Adder\" language=\"javascript\">\n" +
		"function add(a, b) {\n" +
		"  return a + b;\n" +
		"}\n" +
		"</artifact>\n" +
		"Let me know if you have questions."

	blocks, errs := x.Extract(text, true)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}

	b := blocks[0]
	if b.Title != "Adder" || b.Language != "javascript" {
		t.Errorf("metadata = %q/%q", b.Title, b.Language)
	}
	if b.Content != "function add(a, b) {\n  return a + b;\n}" {
		t.Errorf("content = %q", b.Content)
	}
	if b.Truncated {
		t.Error("complete block flagged truncated")
	}
	if b.Version != 1 || b.Ordinal != 0 {
		t.Errorf("version/ordinal = %d/%d", b.Version, b.Ordinal)
	}
	if !strings.HasPrefix(b.ID, "art-") {
		t.Errorf("id = %q", b.ID)
	}
}

func TestExtract_MultipleBlocks(t *testing.T) {
	var x Extractor
	text := "<artifact title=\"One\" language=\"go\">\npackage one\n</artifact>\n" +
		"Some prose.\n" +
		"<artifact title=\"Two\" language=\"go\">\npackage two\n</artifact>"

	blocks, errs := x.Extract(text, true)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Ordinal != 0 || blocks[1].Ordinal != 1 {
		t.Errorf("ordinals = %d, %d", blocks[0].Ordinal, blocks[1].Ordinal)
	}
	if blocks[1].Title != "Two" {
		t.Errorf("second title = %q", blocks[1].Title)
	}
}

func TestExtract_UnclosedBlockIgnoredWhileStreaming(t *testing.T) {
	var x Extractor
	text := "<artifact title=\"WIP\" language=\"python\">\ndef partial("

	blocks, errs := x.Extract(text, false)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(blocks) != 0 {
		t.Fatalf("streaming extraction emitted %d blocks for an open marker", len(blocks))
	}
}

func TestExtract_UnclosedBlockTruncatedOnFinal(t *testing.T) {
	var x Extractor
	text := "<artifact title=\"WIP\" language=\"python\">\ndef partial(n):\n    return"

	blocks, _ := x.Extract(text, true)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if !blocks[0].Truncated {
		t.Error("unclosed block at end of final message not flagged truncated")
	}
	if blocks[0].Content != "def partial(n):\n    return" {
		t.Errorf("content = %q", blocks[0].Content)
	}
}

func TestExtract_IdempotentOverGrowingPrefixes(t *testing.T) {
	full := "Intro.\n" +
		"<artifact title=\"A\" language=\"go\">\npackage a\n</artifact>\n" +
		"Middle.\n" +
		"<artifact title=\"B\" language=\"go\">\npackage b\n</artifact>\nOutro."

	var x Extractor
	want, _ := x.Extract(full, true)

	// Re-extracting every prefix, as a streaming caller would, never yields
	// a block absent from the final set.
	for cut := 1; cut < len(full); cut++ {
		partial, _ := x.Extract(full[:cut], false)
		if len(partial) > len(want) {
			t.Fatalf("prefix of %d bytes yielded %d blocks, final has %d", cut, len(partial), len(want))
		}
		for i, b := range partial {
			if b.ID != want[i].ID {
				t.Fatalf("prefix of %d bytes: block %d id %q, final id %q", cut, i, b.ID, want[i].ID)
			}
		}
	}

	// And the final call matches a one-shot extraction.
	again, _ := x.Extract(full, true)
	if len(again) != len(want) {
		t.Fatalf("re-extraction yielded %d blocks, want %d", len(again), len(want))
	}
	for i := range want {
		if again[i] != want[i] {
			t.Errorf("block %d differs across extractions", i)
		}
	}
}

func TestExtract_SentinelMarksTruncation(t *testing.T) {
	var x Extractor
	text := "<artifact title=\"Big\" language=\"go\">\npackage big\n[output truncated]\n</artifact>"

	blocks, _ := x.Extract(text, true)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if !blocks[0].Truncated {
		t.Error("sentinel body not flagged truncated")
	}
}

func TestExtract_CustomSentinel(t *testing.T) {
	x := Extractor{Sentinel: "<<CUT>>"}
	text := "<artifact title=\"Big\" language=\"go\">\npackage big\n<<CUT>>\n</artifact>"

	blocks, _ := x.Extract(text, true)
	if len(blocks) != 1 || !blocks[0].Truncated {
		t.Error("custom sentinel not honored")
	}
}

func TestExtract_UnbalancedFenceMarksTruncation(t *testing.T) {
	var x Extractor
	text := "<artifact title=\"Doc\" language=\"markdown\">\nUsage:\n```go\npackage main\n</artifact>"

	blocks, _ := x.Extract(text, true)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if !blocks[0].Truncated {
		t.Error("odd fence count not flagged truncated")
	}

	balanced := "<artifact title=\"Doc\" language=\"markdown\">\nUsage:\n```go\npackage main\n```\n</artifact>"
	blocks, _ = x.Extract(balanced, true)
	if len(blocks) != 1 || blocks[0].Truncated {
		t.Error("balanced fences wrongly flagged truncated")
	}
}

func TestExtract_MalformedAttributesSkipped(t *testing.T) {
	var x Extractor
	text := "<artifact title=\"broken language=\"go\">\nbad\n</artifact>\n" +
		"<artifact title=\"Good\" language=\"go\">\npackage good\n</artifact>"

	blocks, errs := x.Extract(text, true)
	if len(errs) == 0 {
		t.Error("expected an extraction error for the malformed marker")
	}
	// The good block downstream still extracts.
	found := false
	for _, b := range blocks {
		if b.Title == "Good" {
			found = true
		}
	}
	if !found {
		t.Error("well-formed block after a malformed one was lost")
	}
}

func TestExtract_MissingCloseResyncsAtNextBlock(t *testing.T) {
	var x Extractor
	text := "<artifact title=\"Broken\" language=\"go\">\npackage broken\n" +
		"<artifact title=\"Whole\" language=\"go\">\npackage whole\n</artifact>"

	blocks, errs := x.Extract(text, true)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	var xerr *ExtractionError
	if !errors.As(errs[0], &xerr) || xerr.Reason != "missing closing marker" {
		t.Errorf("error = %v", errs[0])
	}

	// The unclosed block must not swallow the next block's open marker and
	// claim its closing marker as its own.
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.Title != "Whole" {
		t.Errorf("title = %q, want %q", b.Title, "Whole")
	}
	if b.Content != "package whole" {
		t.Errorf("content = %q", b.Content)
	}
	if b.Ordinal != 0 {
		t.Errorf("ordinal = %d, want 0", b.Ordinal)
	}
	if b.Truncated {
		t.Error("intact block flagged truncated")
	}
}

func TestExtract_BareMarkerNoAttributes(t *testing.T) {
	var x Extractor
	blocks, errs := x.Extract("<artifact>\nanonymous body\n</artifact>", true)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Title != "" || blocks[0].Language != "" {
		t.Errorf("metadata = %q/%q, want empty", blocks[0].Title, blocks[0].Language)
	}
}

func TestExtract_NoMarkers(t *testing.T) {
	var x Extractor
	blocks, errs := x.Extract("just prose, no code at all", true)
	if len(blocks) != 0 || len(errs) != 0 {
		t.Errorf("got %d blocks, %d errors from plain prose", len(blocks), len(errs))
	}
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		title, language string
		ordinal         int
		want            string
	}{
		{"Adder", "javascript", 0, "Adder/javascript"},
		{"Adder", "", 2, "#2"},
		{"", "go", 1, "#1"},
		{"", "", 0, "#0"},
	}
	for _, tt := range tests {
		got := KeyFor(tt.title, tt.language, tt.ordinal).String()
		if got != tt.want {
			t.Errorf("KeyFor(%q, %q, %d) = %q, want %q", tt.title, tt.language, tt.ordinal, got, tt.want)
		}
	}
}

func TestNewID_StableForSameContent(t *testing.T) {
	a := NewID("package main", 0)
	b := NewID("package main", 0)
	if a != b {
		t.Errorf("ids differ for identical input: %q vs %q", a, b)
	}
	if NewID("package main", 1) == a {
		t.Error("ordinal not part of identity")
	}
	if NewID("package other", 0) == a {
		t.Error("content not part of identity")
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"one", 1},
		{"one\ntwo", 2},
		{"one\ntwo\nthree", 3},
	}
	for _, tt := range tests {
		a := Artifact{Content: tt.content}
		if got := a.LineCount(); got != tt.want {
			t.Errorf("LineCount(%q) = %d, want %d", tt.content, got, tt.want)
		}
	}
}
