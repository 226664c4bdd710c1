package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryFilter:
		return g.generateFilterSuggestions(affectedPath)
	case CategoryPattern:
		return g.generatePatternSuggestions(affectedPath)
	case CategoryConnection:
		return g.generateConnectionSuggestions(affectedPath)
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateConnectionSuggestions(_ string) []string {
	return []string{
		"Check the host name, port and user in the sftp:// location",
		"Make sure your key is loaded with 'ssh-add -l' or present in ~/.ssh",
		"Try connecting with 'ssh' directly to confirm the server accepts your key",
		"If the host key changed, update ~/.ssh/known_hosts",
	}
}

func (g *suggestionGenerator) generateFilterSuggestions(_ string) []string {
	return []string{
		"Use one of: files-first, directories-first, order-by-mtime-asc, order-by-mtime-desc, order-by-name, reverse",
		"Custom filters may reorder or drop entries but must not add or repeat them",
	}
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"Verify the path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
		suggestions = append(suggestions, "Make sure "+path+" is a directory")
	} else {
		suggestions = append(suggestions, "Make sure the root is a directory")
	}

	return suggestions
}

func (g *suggestionGenerator) generatePatternSuggestions(_ string) []string {
	return []string{
		"Check the pattern for unclosed brackets or braces",
		"Supported syntax: *, ?, [abc], {a,b} and ** across directories",
		"Quote patterns in the shell so it does not expand them first",
	}
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read and execute permission on the directories being walked",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -la' on the affected path")
	}

	suggestions = append(suggestions, "Try running with appropriate permissions or as a privileged user")

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Verify file and directory permissions",
		"Run again with --verbose to log each directory scan",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}
