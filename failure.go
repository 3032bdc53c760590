package status

// ValidationFailure holds the user-facing content of a single validation
// problem: a message and the names of the fields it affects.
//
// Failures are typically produced by a validation layer and handed to a
// status container via AddValidationFailure(s). The field-name order is
// preserved as given.
type ValidationFailure struct {
	message    string
	fieldNames []string
}

// NewValidationFailure creates a ValidationFailure for the given message and
// affected field names. The field-name list may be empty.
//
// An empty message is a programming error, not a runtime condition, and
// panics immediately rather than producing an unreportable failure.
func NewValidationFailure(message string, fieldNames ...string) ValidationFailure {
	if message == "" {
		panic("status: validation failure message must not be empty")
	}
	return ValidationFailure{
		message:    message,
		fieldNames: cloneStrings(fieldNames),
	}
}

// Message returns the user-facing failure message. Never empty.
func (f ValidationFailure) Message() string {
	return f.message
}

// FieldNames returns a copy of the affected field names, in their original
// order. Returns nil if no fields were recorded.
func (f ValidationFailure) FieldNames() []string {
	return cloneStrings(f.fieldNames)
}

// mustFailure rejects failures constructed around NewValidationFailure, such
// as the exported zero value. An empty message is a programming error and
// must fail immediately rather than store an unreportable error.
func mustFailure(f ValidationFailure) ValidationFailure {
	if f.message == "" {
		panic("status: validation failure message must not be empty")
	}
	return f
}

// cloneStrings returns a defensive copy of a string slice, or nil for an
// empty input.
func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
