package artifact

import (
	"fmt"
	"regexp"
	"strings"
)

// Assistant messages carry generated code in marker pairs:
//
//	<artifact title="Fibonacci" language="python">
//	def fib(n): ...
//	</artifact>
//
// Extraction must be safe to run repeatedly on growing prefixes of the same
// message: a block whose closing marker has not arrived yet is ignored until
// the message is known to be final.

var (
	openTagRe = regexp.MustCompile(`<artifact\b([^>]*)>`)
	attrRe    = regexp.MustCompile(`(\w+)\s*=\s*"([^"]*)"`)
)

const closeTag = "</artifact>"

// ExtractionError reports a malformed marker pair. The offending block is
// skipped; the rest of the text is still processed.
type ExtractionError struct {
	Offset int
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("artifact marker at offset %d: %s", e.Offset, e.Reason)
}

// Extractor parses artifact blocks out of assistant text. The zero value is
// usable; Sentinel defaults to DefaultSentinel.
type Extractor struct {
	// Sentinel is the length-limit marker the model emits when its output
	// was cut short. Matching it is an approximation, not a guarantee.
	Sentinel string
}

// DefaultSentinel is the length-limit marker checked by the truncation
// heuristic when none is configured.
const DefaultSentinel = "[output truncated]"

// Extract parses all recognizable artifact blocks from text. Pure: the
// caller owns persistence and versioning of the results.
//
// When final is false, only blocks with a closing marker are returned, so
// partial tags on a still-streaming message never emit an artifact. When
// final is true, a trailing unclosed block is returned with Truncated set,
// and closed blocks are checked against the truncation heuristic.
//
// Malformed markers are reported through errs and skipped without aborting
// the pass.
func (x *Extractor) Extract(text string, final bool) (blocks []Artifact, errs []error) {
	ordinal := 0
	rest := text
	base := 0

	for {
		loc := openTagRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}

		attrText := rest[loc[2]:loc[3]]
		bodyStart := loc[1]
		title, language, attrErr := parseAttrs(attrText)
		if attrErr != nil {
			errs = append(errs, &ExtractionError{Offset: base + loc[0], Reason: attrErr.Error()})
			rest = rest[bodyStart:]
			base += bodyStart
			continue
		}

		end := strings.Index(rest[bodyStart:], closeTag)
		if end < 0 {
			// Closing marker not seen yet.
			if final {
				blocks = append(blocks, Artifact{
					ID:        NewID(trimBody(rest[bodyStart:]), ordinal),
					Title:     title,
					Language:  language,
					Content:   trimBody(rest[bodyStart:]),
					Version:   1,
					Truncated: true,
					Ordinal:   ordinal,
				})
			}
			return blocks, errs
		}

		if next := openTagRe.FindStringIndex(rest[bodyStart : bodyStart+end]); next != nil {
			// Another block opens before this one closes: the closing
			// marker we found belongs to that later block, so this one
			// never closed. Report it and resync at the next open marker.
			errs = append(errs, &ExtractionError{Offset: base + loc[0], Reason: "missing closing marker"})
			advance := bodyStart + next[0]
			rest = rest[advance:]
			base += advance
			continue
		}

		body := trimBody(rest[bodyStart : bodyStart+end])
		a := Artifact{
			ID:       NewID(body, ordinal),
			Title:    title,
			Language: language,
			Content:  body,
			Version:  1,
			Ordinal:  ordinal,
		}
		if final && x.looksTruncated(body) {
			a.Truncated = true
		}
		blocks = append(blocks, a)
		ordinal++

		advance := bodyStart + end + len(closeTag)
		rest = rest[advance:]
		base += advance
	}

	return blocks, errs
}

// looksTruncated guesses whether a closed body was cut off anyway: the
// provider's length-limit sentinel appears, or a code fence was opened and
// never closed. Deliberately approximate.
func (x *Extractor) looksTruncated(body string) bool {
	sentinel := x.Sentinel
	if sentinel == "" {
		sentinel = DefaultSentinel
	}
	if strings.Contains(body, sentinel) {
		return true
	}

	fences := 0
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			fences++
		}
	}
	return fences%2 == 1
}

func parseAttrs(attrText string) (title, language string, err error) {
	trimmed := strings.TrimSpace(attrText)
	if trimmed == "" {
		return "", "", nil
	}

	matches := attrRe.FindAllStringSubmatch(trimmed, -1)
	consumed := 0
	for _, m := range matches {
		consumed += len(m[0])
		switch m[1] {
		case "title":
			title = m[2]
		case "language":
			language = m[2]
		}
	}

	// Attribute text that isn't fully attribute-shaped means the marker is
	// malformed (unterminated quote, stray tokens).
	leftover := trimmed
	for _, m := range matches {
		leftover = strings.Replace(leftover, m[0], "", 1)
	}
	if strings.TrimSpace(leftover) != "" {
		return "", "", fmt.Errorf("unparseable attributes %q", trimmed)
	}
	return title, language, nil
}

// trimBody drops the newline hugging each marker so the stored content is
// just the code itself.
func trimBody(body string) string {
	body = strings.TrimPrefix(body, "\n")
	return strings.TrimSuffix(body, "\n")
}
