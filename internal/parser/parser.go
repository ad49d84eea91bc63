// Package parser extracts front-matter and asset links from markdown notes.
package parser

import (
	"bytes"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/83bytes/bloggy/internal/frontmatter"
	"github.com/83bytes/bloggy/internal/models"
)

// Inline markdown links: [text](target), single line, non-nested.
var inlineLinkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)

const delim = "---"

// Result holds the output of parsing a note.
type Result struct {
	Frontmatter frontmatter.Mapping
	Body        string
}

// Parse splits raw note bytes into front-matter and body. A missing opening
// marker, an unclosed block, or invalid YAML all degrade to an empty mapping
// with the whole input as body; a single bad note must never abort a scan.
func Parse(data []byte) *Result {
	fm, body := splitFrontmatter(data)
	return &Result{Frontmatter: fm, Body: body}
}

// splitFrontmatter separates the metadata block (between leading ---
// delimiters) from the markdown body.
func splitFrontmatter(data []byte) (frontmatter.Mapping, string) {
	if !bytes.HasPrefix(data, []byte(delim)) {
		return frontmatter.Mapping{}, string(data)
	}

	rest := data[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// Opening marker with no closing marker.
		return frontmatter.Mapping{}, string(data)
	}

	block := rest[:idx]
	after := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(after), "\n\r")

	var raw map[string]any
	if err := yaml.Unmarshal(block, &raw); err != nil {
		return frontmatter.Mapping{}, string(data)
	}

	fm := make(frontmatter.Mapping, len(raw))
	for k, v := range raw {
		fm[strings.TrimSpace(k)] = frontmatter.Normalize(v)
	}
	return fm, body
}

// IsPublic reports whether front-matter marks the note for publication:
// a "public" key whose value equals "true", case-insensitively.
func IsPublic(fm frontmatter.Mapping) bool {
	v, ok := fm.Get("public")
	if !ok {
		return false
	}
	return strings.EqualFold(v.Scalar(), "true")
}

// IsNow reports whether the "tags" field contains the exact token "now".
// A longer tag such as "nowhere" does not match.
func IsNow(fm frontmatter.Mapping) bool {
	v, ok := fm.Get("tags")
	if !ok {
		return false
	}
	for _, tag := range v.Strings() {
		if strings.EqualFold(tag, "now") {
			return true
		}
	}
	return false
}

// AssetLinks returns the inline links in body whose target contains marker,
// in order of appearance. Duplicates within one note are kept; callers
// dedupe when aggregating across notes.
func AssetLinks(body, marker string) []models.LinkRef {
	var out []models.LinkRef
	for _, line := range strings.Split(body, "\n") {
		for _, m := range inlineLinkRe.FindAllStringSubmatch(line, -1) {
			if strings.Contains(m[2], marker) {
				out = append(out, models.LinkRef{Text: m[1], Target: m[2]})
			}
		}
	}
	return out
}
