package profile

import (
	"fmt"
	"strings"
)

// HeaderSeparator splits the canonical header line into name and title.
const HeaderSeparator = "—"

// UnknownField is returned by ParseHeader when a chunk carries no parsable
// header line.
const UnknownField = "Unknown"

// CanonicalText projects the profile into the single text representation
// that gets chunked and embedded. The header line is always emitted; the
// remaining sections only when they have content. Sections are separated by
// a blank line. The projection is deterministic: the same record always
// yields the same bytes.
func (p *Profile) CanonicalText() string {
	parts := []string{fmt.Sprintf("%s %s %s", p.Name, HeaderSeparator, p.Position)}

	if p.About != "" {
		parts = append(parts, p.About)
	}
	if curr := p.CurrentCompanyName(); curr != "" {
		parts = append(parts, "Current: "+curr)
	}

	var entries []string
	for _, e := range p.Experience {
		if e.Title != "" && e.Company != "" {
			entries = append(entries, fmt.Sprintf("%s at %s", e.Title, e.Company))
		}
	}
	if len(entries) > 0 {
		parts = append(parts, "Experience: "+strings.Join(entries, "; "))
	}

	return strings.Join(parts, "\n\n")
}

// ParseHeader recovers name and title from a chunk's first line. Chunks
// produced past the first token boundary have no header; both fields fall
// back to UnknownField.
func ParseHeader(text string) (name, title string) {
	firstLine := text
	if i := strings.Index(text, "\n\n"); i >= 0 {
		firstLine = text[:i]
	}
	if !strings.Contains(firstLine, HeaderSeparator) {
		return UnknownField, UnknownField
	}
	name, title, _ = strings.Cut(firstLine, HeaderSeparator)
	return strings.TrimSpace(name), strings.TrimSpace(title)
}
