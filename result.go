package status

// ResultHandler is a status container that additionally carries a typed
// result value. It composes Handler rather than specializing it: all
// accumulation and combination semantics are identical, and the accumulation
// methods are re-exposed here so call chains keep the result-typed receiver.
//
// The result is observable only while the container is valid. Adding an
// error hides it (Result returns the zero value of T), but the stored value
// is retained, not cleared, so logic that stored a result before detecting a
// problem never reads a silently wiped slot after the fact.
type ResultHandler[T any] struct {
	Handler
	result T
}

// NewResult creates a ResultHandler with no header.
func NewResult[T any]() *ResultHandler[T] {
	return NewResultWithHeader[T]("")
}

// NewResultWithHeader creates a ResultHandler whose errors are scoped by
// header.
func NewResultWithHeader[T any](header string) *ResultHandler[T] {
	return &ResultHandler[T]{Handler: *NewWithHeader(header)}
}

// Result returns the stored result while the container is valid, and the
// zero value of T otherwise.
func (s *ResultHandler[T]) Result() T {
	if s.HasErrors() {
		var zero T
		return zero
	}
	return s.result
}

// SetResult stores a result value. Validity is unchanged; if the container
// is (or later becomes) invalid the value stays hidden.
func (s *ResultHandler[T]) SetResult(value T) *ResultHandler[T] {
	s.result = value
	return s
}

// SetResultWithCode stores a result value and sets the container-level
// status code in one call.
func (s *ResultHandler[T]) SetResultWithCode(code int, value T) *ResultHandler[T] {
	s.result = value
	s.Handler.SetStatusCode(code)
	return s
}

// CombineStatuses merges another status into this container using the same
// algorithm as Handler.CombineStatuses. Results are never merged: this
// container's own result stays authoritative regardless of what other
// carries.
func (s *ResultHandler[T]) CombineStatuses(other Status) *ResultHandler[T] {
	s.Handler.CombineStatuses(other)
	return s
}

// The remaining methods shadow their Handler counterparts so fluent chains
// keep the result-typed receiver.

// SetHeader replaces the container's scope label.
func (s *ResultHandler[T]) SetHeader(header string) *ResultHandler[T] {
	s.Handler.SetHeader(header)
	return s
}

// SetMessage replaces the success message.
func (s *ResultHandler[T]) SetMessage(message string) *ResultHandler[T] {
	s.Handler.SetMessage(message)
	return s
}

// SetStatusCode sets the container-level status code.
func (s *ResultHandler[T]) SetStatusCode(code int) *ResultHandler[T] {
	s.Handler.SetStatusCode(code)
	return s
}

// AddError appends an error with the given message and affected field names.
func (s *ResultHandler[T]) AddError(message string, fieldNames ...string) *ResultHandler[T] {
	s.Handler.AddError(message, fieldNames...)
	return s
}

// AddErrorWithCode is AddError with a status code attached to the new error.
func (s *ResultHandler[T]) AddErrorWithCode(code int, message string, fieldNames ...string) *ResultHandler[T] {
	s.Handler.AddErrorWithCode(code, message, fieldNames...)
	return s
}

// AddErrorWithCause is AddError with diagnostic text captured from cause.
func (s *ResultHandler[T]) AddErrorWithCause(cause error, message string, fieldNames ...string) *ResultHandler[T] {
	s.Handler.AddErrorWithCause(cause, message, fieldNames...)
	return s
}

// AddValidationFailure appends a pre-built failure.
func (s *ResultHandler[T]) AddValidationFailure(failure ValidationFailure) *ResultHandler[T] {
	s.Handler.AddValidationFailure(failure)
	return s
}

// AddValidationFailures appends pre-built failures in order.
func (s *ResultHandler[T]) AddValidationFailures(failures ...ValidationFailure) *ResultHandler[T] {
	s.Handler.AddValidationFailures(failures...)
	return s
}

// AddValidationFailureWithCode appends a pre-built failure with a status
// code attached to the new error.
func (s *ResultHandler[T]) AddValidationFailureWithCode(code int, failure ValidationFailure) *ResultHandler[T] {
	s.Handler.AddValidationFailureWithCode(code, failure)
	return s
}

// AddValidationFailuresWithCode appends pre-built failures in order, each
// carrying the same status code.
func (s *ResultHandler[T]) AddValidationFailuresWithCode(code int, failures ...ValidationFailure) *ResultHandler[T] {
	s.Handler.AddValidationFailuresWithCode(code, failures...)
	return s
}
