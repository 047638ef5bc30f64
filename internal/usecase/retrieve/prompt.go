package retrieve

import (
	"fmt"
	"strings"
)

const (
	memoriesHeading = "## Relevant memories"
	notesHeading    = "## Reference notes"
)

// BuildPrompt renders a retrieval result as a markdown context block for
// prompt construction. Empty input yields the empty string; each section
// appears only when its input is non-empty, memories first.
func BuildPrompt(res Result) string {
	if len(res.Memories) == 0 && len(res.Notes) == 0 {
		return ""
	}

	var sections []string

	if len(res.Memories) > 0 {
		var b strings.Builder
		b.WriteString(memoriesHeading + "\n")
		for _, m := range res.Memories {
			meta := m.TimeAgo
			if m.Channel != "" {
				meta = fmt.Sprintf("channel: %s, %s", m.Channel, meta)
			}
			content := strings.ReplaceAll(m.Content, "\n", "\n  ")
			fmt.Fprintf(&b, "\n- %s\n  (%s)\n", content, meta)
		}
		sections = append(sections, b.String())
	}

	if len(res.Notes) > 0 {
		var b strings.Builder
		b.WriteString(notesHeading + "\n")
		for _, n := range res.Notes {
			fmt.Fprintf(&b, "\n### %s\n%s\n", n.Path, strings.TrimRight(n.Content, "\n"))
		}
		sections = append(sections, b.String())
	}

	return strings.Join(sections, "\n")
}
