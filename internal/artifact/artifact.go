package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Artifact is one immutable version of a generated code block. A later
// occurrence of the same logical slot with new content produces a fresh
// Artifact record with a bumped Version; records are never edited in place.
type Artifact struct {
	// ID is derived from the content fingerprint and the block's ordinal
	// position, so identical content in the same position always gets the
	// same id across re-extractions of a growing stream.
	ID string `json:"id"`

	// Title is the human-readable name carried on the marker, may be empty.
	Title string `json:"title"`

	// Language is the source language carried on the marker, may be empty.
	Language string `json:"language"`

	// Content is the full body text of the block.
	Content string `json:"content"`

	// Version starts at 1 and increases each time the same slot reappears
	// with different content.
	Version int `json:"version"`

	// Truncated is true when the enclosing message ended while this block
	// was still open, or the body looks cut off by a length limit.
	Truncated bool `json:"truncated"`

	// Ordinal is the block's position among blocks of the same message.
	Ordinal int `json:"ordinal"`
}

// Key identifies a logical artifact slot. Slots with a title and language
// are keyed by both; anonymous blocks fall back to their ordinal position
// in the message lineage.
type Key struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Ordinal  int    `json:"ordinal"`
}

// KeyFor derives the slot key for a block.
func KeyFor(title, language string, ordinal int) Key {
	if title != "" && language != "" {
		return Key{Title: title, Language: language}
	}
	return Key{Ordinal: ordinal}
}

// String renders the key in a stable, map-friendly form.
func (k Key) String() string {
	if k.Title != "" || k.Language != "" {
		return k.Title + "/" + k.Language
	}
	return fmt.Sprintf("#%d", k.Ordinal)
}

// Fingerprint returns a short stable hash of content.
func Fingerprint(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])[:12]
}

// NewID builds the artifact id from the content fingerprint and ordinal.
func NewID(content string, ordinal int) string {
	return fmt.Sprintf("art-%s-%d", Fingerprint(content), ordinal)
}

// LineCount reports the number of lines in the artifact body.
func (a *Artifact) LineCount() int {
	if a.Content == "" {
		return 0
	}
	n := 1
	for _, r := range a.Content {
		if r == '\n' {
			n++
		}
	}
	return n
}
