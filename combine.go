package status

import "strings"

// CombineStatuses merges another status into this container:
//
//  1. If other is invalid, each of its errors is re-headered with this
//     container's header as prefix (producing chains like "parent>child")
//     and appended in other's original order. The child's errors are copied,
//     never mutated.
//  2. If this container is still valid afterwards and other's message is not
//     the default success message, other's message is adopted. Once a
//     container has errors, its computed failure message is authoritative
//     and a child's message never overwrites it.
//  3. If this container has no status code of its own, other's code is
//     adopted. Across a chain of combines the first code wins; a code once
//     set is never overwritten by a later child.
//
// Combination is associative over the error sequence: combining children one
// at a time or through intermediate parents yields the same errors in the
// same order, with header chains reflecting the nesting. A nil other is a
// no-op.
func (s *Handler) CombineStatuses(other Status) *Handler {
	if other == nil {
		return s
	}
	if other.HasErrors() {
		for _, err := range other.Errors() {
			s.errs = append(s.errs, err.WithPrefix(s.header))
		}
	}
	if s.IsValid() && other.Message() != DefaultSuccessMessage {
		s.successMessage = other.Message()
	}
	if !s.hasCode {
		if code, ok := other.StatusCode(); ok {
			s.SetStatusCode(code)
		}
	}
	return s
}

// GetAllErrors returns the rendered form of every accumulated error joined
// by separator, which defaults to "\n". The second return value is false
// when the container has no errors.
func (s *Handler) GetAllErrors(separator ...string) (string, bool) {
	if len(s.errs) == 0 {
		return "", false
	}
	sep := "\n"
	if len(separator) > 0 {
		sep = separator[0]
	}
	rendered := make([]string, len(s.errs))
	for i, err := range s.errs {
		rendered[i] = err.Error()
	}
	return strings.Join(rendered, sep), true
}

// GetLastStatusCode returns the status code attached to the most recently
// appended error. If that error carries no code the result is absent; there
// is no fallback to earlier errors' codes. When the container has no errors
// at all, the container's own code is returned instead.
func (s *Handler) GetLastStatusCode() (int, bool) {
	if n := len(s.errs); n > 0 {
		return s.errs[n-1].ErrorCode()
	}
	return s.StatusCode()
}
