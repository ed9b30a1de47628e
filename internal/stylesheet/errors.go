package stylesheet

import "fmt"

// StyleResolutionError reports a style key whose value could not be resolved.
// The key is left unset in the returned style.
type StyleResolutionError struct {
	Key    string
	Value  any
	Reason string
}

func (e *StyleResolutionError) Error() string {
	return fmt.Sprintf("style %q: %s (got %v)", e.Key, e.Reason, e.Value)
}

func newError(key string, value any, format string, args ...any) *StyleResolutionError {
	return &StyleResolutionError{Key: key, Value: value, Reason: fmt.Sprintf(format, args...)}
}
