package shared

import "github.com/charmbracelet/lipgloss"

const (
	// DefaultPadding is the horizontal padding inside the browser box
	DefaultPadding = 2
	// TrailLength is how many recently emitted files the browser shows
	TrailLength = 10
	// EllipsisLength is the length of the "..." used when shortening
	EllipsisLength = 3

	// KeyCtrlC quits the browser
	KeyCtrlC = "ctrl+c"
	// PromptArrow marks the file most recently emitted
	PromptArrow = "▶ "
	// ErrorSymbolText precedes the error that stopped the walk
	ErrorSymbolText = "✗"
)

// Palette, as 256-color codes.
const (
	frameColor   lipgloss.Color = "62"  // blue
	mutedColor   lipgloss.Color = "240" // dark gray
	rootColor    lipgloss.Color = "241" // medium gray
	fileColor    lipgloss.Color = "252" // light gray
	currentColor lipgloss.Color = "86"  // cyan
	titleColor   lipgloss.Color = "205" // pink
	failColor    lipgloss.Color = "196" // red
	doneColor    lipgloss.Color = "42"  // green
	noticeColor  lipgloss.Color = "214" // orange
)

// BoxStyle frames the trail and the preview.
func BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(frameColor).
		Padding(1, DefaultPadding)
}

// CurrentStyle marks the most recently emitted file.
func CurrentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentColor).Bold(true)
}

// DimStyle is used for status lines, elided trail entries and suggestions.
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(mutedColor)
}

// ErrorStyle renders the error that stopped the walk.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(failColor).Bold(true)
}

// ErrorSymbol returns the styled error marker
func ErrorSymbol() string {
	return ErrorStyle().Render(ErrorSymbolText)
}

// FileStyle renders older trail entries.
func FileStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fileColor)
}

// LabelStyle renders section labels such as "Visited" and "Up next:".
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentColor).Bold(true)
}

// RootStyle renders the directory being browsed under the title.
func RootStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(rootColor).MarginBottom(1)
}

// SuccessStyle renders the end of the tree.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(doneColor).Bold(true)
}

// TitleStyle renders the program name.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(titleColor).MarginBottom(1)
}

// WarningStyle renders a step that could not be taken.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(noticeColor).Bold(true)
}

func RenderBox(content string) string  { return BoxStyle().Render(content) }
func RenderDim(text string) string     { return DimStyle().Render(text) }
func RenderLabel(text string) string   { return LabelStyle().Render(text) }
func RenderRoot(text string) string    { return RootStyle().Render(text) }
func RenderSuccess(text string) string { return SuccessStyle().Render(text) }
func RenderTitle(text string) string   { return TitleStyle().Render(text) }
func RenderWarning(text string) string { return WarningStyle().Render(text) }
