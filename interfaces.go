package status

// Status is the read/combine contract exposed by a status container. Callers
// that only inspect or merge statuses should depend on this interface rather
// than on a concrete handler, so producers remain free to return either the
// plain or the result-carrying form.
type Status interface {
	// IsValid reports whether no errors have been accumulated.
	IsValid() bool

	// HasErrors reports whether at least one error has been accumulated.
	HasErrors() bool

	// Errors returns the accumulated errors in insertion order. The returned
	// slice is a copy; mutating it does not affect the container.
	Errors() []Error

	// Message returns the success message while valid, or the computed
	// "Failed with N error(s)" summary once errors exist.
	Message() string

	// StatusCode returns the container-level status code, if one is set.
	StatusCode() (int, bool)

	// GetAllErrors returns every error's rendered form joined by the given
	// separator (default "\n"). The second return value is false when there
	// are no errors.
	GetAllErrors(separator ...string) (string, bool)

	// GetLastStatusCode returns the code attached to the most recently
	// appended error (absent if that error carries none), or the container's
	// own code when there are no errors.
	GetLastStatusCode() (int, bool)
}

// StatusWithResult is the capability view of a result-carrying status
// container: everything Status offers plus access to the typed result.
type StatusWithResult[T any] interface {
	Status

	// Result returns the stored result while the status is valid, and the
	// zero value of T otherwise.
	Result() T
}

// compile-time guarantees that the concrete handlers satisfy their contracts
var (
	_ Status                  = (*Handler)(nil)
	_ Status                  = (*ResultHandler[int])(nil)
	_ StatusWithResult[int]   = (*ResultHandler[int])(nil)
	_ StatusWithResult[error] = (*ResultHandler[error])(nil)
)
