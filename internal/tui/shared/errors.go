package shared

import (
	"fmt"
	"strings"

	"github.com/joe/dir-iter/pkg/errors"
)

// RenderError renders an error enriched with actionable suggestions. The
// message is truncated to maxWidth when maxWidth > 0.
func RenderError(err error, affectedPath string, maxWidth int) string {
	if err == nil {
		return ""
	}

	enrichedErr := errors.NewEnricher().Enrich(err, affectedPath)

	errMsg := enrichedErr.Error()
	if maxWidth > EllipsisLength && len(errMsg) > maxWidth {
		errMsg = errMsg[:maxWidth-EllipsisLength] + strings.Repeat(".", EllipsisLength)
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "%s %s", ErrorSymbol(), ErrorStyle().Render(errMsg))

	if suggestions := errors.FormatSuggestions(enrichedErr); suggestions != "" {
		builder.WriteString("\n")
		builder.WriteString(RenderDim(suggestions))
	}

	return builder.String()
}
