package subtitle

import (
	"fmt"
	"strings"
)

// Render serializes a document back to SubRip text: one blank line between
// entries, none before the first or after the last. Exact inverse of Parse
// for any document Parse produced.
func Render(doc *Document) string {
	var sb strings.Builder
	for i, entry := range doc.Entries {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s", entry.Index, entry.Start, entry.End, entry.Text)
	}
	return sb.String()
}
