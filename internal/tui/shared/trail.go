package shared

import (
	"strings"
)

// RenderTrail renders the most recently emitted paths, oldest first, with the
// last one marked as current. If maxEntries > 0, only the most recent N
// entries are shown and a dimmed count stands in for the rest.
func RenderTrail(title string, entries []string, maxEntries int) string {
	var builder strings.Builder

	// Whitespace-only titles count as empty
	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle != "" {
		builder.WriteString(RenderLabel(trimmedTitle))
		builder.WriteString("\n")

		if len(entries) > 0 {
			builder.WriteString("\n")
		}
	}

	if len(entries) == 0 {
		return builder.String()
	}

	startIdx := 0
	if maxEntries > 0 && maxEntries < len(entries) {
		// 5 entries, maxEntries=3 → entries[2:5]
		startIdx = len(entries) - maxEntries

		builder.WriteString(RenderDim(strings.Repeat(".", EllipsisLength)))
		builder.WriteString("\n")
	}

	last := len(entries) - 1
	for i := startIdx; i < len(entries); i++ {
		if i == last {
			builder.WriteString(CurrentStyle().Render(PromptArrow + entries[i]))
			break
		}

		builder.WriteString("  ")
		builder.WriteString(FileStyle().Render(entries[i]))
		builder.WriteString("\n")
	}

	return builder.String()
}

// TruncatePath shortens a path to maxWidth characters, keeping its end.
func TruncatePath(path string, maxWidth int) string {
	if maxWidth <= EllipsisLength || len(path) <= maxWidth {
		return path
	}

	return strings.Repeat(".", EllipsisLength) + path[len(path)-(maxWidth-EllipsisLength):]
}
