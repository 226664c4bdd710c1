package errors

import (
	"errors"
	"strings"

	"github.com/joe/dir-iter/pkg/diriter"
)

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
// Categories are tried in order; the first one with a matching pattern wins.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		patterns: []categoryPatterns{
			{CategoryFilter, []string{
				"invalid filter result",
				"invalid filter provider",
				"unknown filter",
			}},
			{CategoryPattern, []string{
				"bad pattern",
				"syntax error in pattern",
			}},
			{CategoryPermission, []string{
				"permission denied",
				"access denied",
				"operation not permitted",
			}},
			{CategoryConnection, []string{
				"ssh connection",
				"ssh: handshake failed",
				"unable to authenticate",
				"no ssh authentication methods",
				"knownhosts: key mismatch",
				"knownhosts: key is unknown",
				"connection refused",
				"sftp session",
			}},
			{CategoryPath, []string{
				"no such file or directory",
				"file does not exist",
				"file not found",
				"not a directory",
				"path does not exist",
			}},
		},
	}
}

type categoryPatterns struct {
	category ErrorCategory
	patterns []string
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	patterns []categoryPatterns
}

// Match returns the error category based on pattern matching.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, entry := range m.patterns {
		for _, pattern := range entry.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return entry.category
			}
		}
	}

	// No match found
	return CategoryUnknown
}

// categorize checks well-known error values before falling back to the
// message.
func categorize(err error, matcher PatternMatcher) ErrorCategory {
	switch {
	case errors.Is(err, diriter.ErrInvalidFilterResult),
		errors.Is(err, diriter.ErrInvalidFilterProvider),
		errors.Is(err, diriter.ErrUnknownFilter):
		return CategoryFilter
	case errors.Is(err, diriter.ErrBadPattern):
		return CategoryPattern
	default:
		return matcher.Match(err.Error())
	}
}
