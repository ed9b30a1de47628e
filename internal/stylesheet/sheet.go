package stylesheet

import (
	"errors"
	"maps"
	"strings"

	"github.com/grindlemire/go-boxflow/internal/layout"
)

// Sheet maps class names to style dictionaries.
type Sheet map[string]map[string]any

// Merge returns the union of dicts, later dictionaries overriding earlier ones.
func Merge(dicts ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, d := range dicts {
		maps.Copy(out, d)
	}
	return out
}

// Dict returns the merged dictionary for a space separated class list and an
// inline dictionary. Classes apply left to right and inline keys win.
// Unknown classes are reported alongside the merged result.
func (s Sheet) Dict(class string, inline map[string]any) (map[string]any, []string) {
	var (
		layers  []map[string]any
		missing []string
	)
	for _, name := range strings.Fields(class) {
		d, ok := s[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		layers = append(layers, d)
	}
	layers = append(layers, inline)
	return Merge(layers...), missing
}

// Resolve merges the class dictionaries with inline and parses the result.
// An unknown class is reported as a *StyleResolutionError on key "class".
func (s Sheet) Resolve(class string, inline map[string]any) (layout.Style, error) {
	dict, missing := s.Dict(class, inline)
	style, err := Parse(dict)
	errs := []error{err}
	for _, name := range missing {
		errs = append(errs, newError("class", name, "unknown class"))
	}
	return style, errors.Join(errs...)
}
