// Package errors provides actionable error handling with context-aware suggestions.
//
// This package enriches errors met while walking a tree with a category and
// suggestions that help users resolve them. Errors from the diriter package
// (bad patterns, unknown or misbehaving filters) are recognised by identity;
// everything else (permissions, missing paths, SSH failures) by message.
//
// Basic Usage:
//
//	enricher := errors.NewEnricher()
//	if err := finder.Each(printEntry); err != nil {
//	    actionableErr := enricher.Enrich(err, finder.Root())
//	    fmt.Println(actionableErr.Error())
//	    fmt.Println(errors.FormatSuggestions(actionableErr))
//	}
//
// The enricher extracts paths from error messages when not explicitly provided:
//
//	err := errors.New("open /home/user/notes: permission denied")
//	enriched := enricher.Enrich(err, "") // Path will be extracted from error message
//
// Integration with the browser:
//
//	The FormatSuggestions helper formats suggestions with bullet points for display:
//	formatted := errors.FormatSuggestions(actionableErr)
//	fmt.Println(formatted) // Displays: "  • suggestion 1\n  • suggestion 2"
package errors

import (
	"errors"
	"strings"
)

// Exported constants.
const (
	CategoryConnection ErrorCategory = "connection"
	CategoryFilter     ErrorCategory = "filter"
	CategoryPath       ErrorCategory = "path"
	CategoryPattern    ErrorCategory = "pattern"
	CategoryPermission ErrorCategory = "permission"
	CategoryUnknown    ErrorCategory = "unknown"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	originalError string,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		originalError: originalError,
		category:      category,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
	}
}

// wrapActionable is NewActionableError for a real error value, which stays
// reachable through errors.Is and errors.As.
func wrapActionable(cause error, category ErrorCategory, suggestions []string, affectedPath string) ActionableError {
	return &actionableError{
		originalError: cause.Error(),
		category:      category,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
		cause:         cause,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list
// for display in the browser or on stderr. Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	var actionable ActionableError
	if !errors.As(err, &actionable) {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	// Format as bulleted list with two-space indent
	// Use strings.Builder for efficient string concatenation
	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	originalError string
	category      ErrorCategory
	suggestions   []string
	affectedPath  string
	cause         error
}

// AffectedPath returns the file path affected by this error.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.originalError
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	return e.originalError
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}

// Unwrap returns the enriched error, if there was one.
func (e *actionableError) Unwrap() error {
	return e.cause
}
