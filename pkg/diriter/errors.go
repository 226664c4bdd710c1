package diriter

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Detailed errors wrap one of these, so callers can test
// with errors.Is.
var (
	// ErrInvalidFilterProvider is returned when a provider cannot resolve a
	// filter name that is already registered.
	ErrInvalidFilterProvider = errors.New("invalid filter provider")

	// ErrInvalidFilterResult is returned when a filter produces entries that
	// were not in its input.
	ErrInvalidFilterResult = errors.New("invalid filter result")

	// ErrUnknownFilter is returned when adding a filter name the current
	// provider cannot resolve.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrBadPattern is returned for malformed glob patterns.
	ErrBadPattern = errors.New("bad pattern")
)

// FilterProviderError names the registered filters a provider lacks.
type FilterProviderError struct {
	Missing []string
}

func (e *FilterProviderError) Error() string {
	if len(e.Missing) == 0 {
		return ErrInvalidFilterProvider.Error()
	}

	return fmt.Sprintf("%s: missing filters %s", ErrInvalidFilterProvider, strings.Join(e.Missing, ", "))
}

func (e *FilterProviderError) Unwrap() error {
	return ErrInvalidFilterProvider
}

// FilterResultError reports a filter that returned entries absent from its
// input, or returned an input entry more than once.
type FilterResultError struct {
	Filter     string
	Unexpected []string
}

func (e *FilterResultError) Error() string {
	return fmt.Sprintf("%s: filter %q returned unexpected paths: %s",
		ErrInvalidFilterResult, e.Filter, strings.Join(e.Unexpected, ","))
}

func (e *FilterResultError) Unwrap() error {
	return ErrInvalidFilterResult
}
