package tui

import (
	"strings"

	"github.com/joe/dir-iter/internal/tui/shared"
)

// View renders the browser
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(shared.RenderTitle("dir-iter"))
	builder.WriteString("\n")
	builder.WriteString(shared.RenderRoot(m.root))
	builder.WriteString("\n")

	width := m.pathWidth()

	trail := make([]string, 0, len(m.trail))
	for _, path := range m.trail {
		trail = append(trail, shared.TruncatePath(path, width))
	}

	content := shared.RenderTrail("Visited", trail, shared.TrailLength)
	content += "\n\n" + m.renderUpcoming(width)
	builder.WriteString(shared.RenderBox(content))
	builder.WriteString("\n")

	switch {
	case m.err != nil:
		builder.WriteString(shared.RenderError(m.err, m.root, width))
	case m.warn:
		builder.WriteString(shared.RenderWarning(m.status))
	default:
		builder.WriteString(shared.RenderDim(m.status))
	}

	builder.WriteString("\n\n")
	builder.WriteString(m.help.View(m.keys))

	return builder.String()
}

func (m Model) renderUpcoming(width int) string {
	label := shared.RenderLabel("Up next: ")

	switch {
	case m.err != nil:
		return label + shared.RenderDim("(stopped)")
	case m.upcoming == nil:
		return label + shared.RenderSuccess("end of tree")
	default:
		return label + shared.TruncatePath(m.Upcoming(), width)
	}
}
