package boxflow

import "github.com/grindlemire/go-boxflow/internal/stylesheet"

// StyleResolutionError reports a style key whose value could not be resolved.
type StyleResolutionError = stylesheet.StyleResolutionError

// Stylesheet maps class names to style dictionaries.
type Stylesheet = stylesheet.Sheet

// ParseStyle converts a style dictionary into a Style. Keys that fail to
// resolve are left unset and reported as joined *StyleResolutionError values;
// the returned Style is always usable.
func ParseStyle(dict map[string]any) (Style, error) {
	return stylesheet.Parse(dict)
}

// MustParseStyle is ParseStyle for literals known to be valid.
func MustParseStyle(dict map[string]any) Style {
	return stylesheet.MustParse(dict)
}
