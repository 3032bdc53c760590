package status

import (
	"fmt"
	"strconv"
)

// DefaultSuccessMessage is the message a freshly constructed container
// reports while valid. CombineStatuses only transfers a child's message when
// it differs from this default.
const DefaultSuccessMessage = "Success"

// Handler is the standard status container. A unit of business logic creates
// one, accumulates errors while it runs, and returns it (or its Status view)
// to the caller, who inspects it or combines it into its own container.
//
// The error list is append-only: validity is monotonic, and a container that
// has become invalid never becomes valid again. Handler is not safe for
// concurrent mutation; confine a container to one goroutine and combine
// afterwards.
type Handler struct {
	header         string
	errs           []Error
	successMessage string
	code           int
	hasCode        bool
}

// New creates a Handler with no header.
func New() *Handler {
	return NewWithHeader("")
}

// NewWithHeader creates a Handler whose errors are scoped by header. The
// header is prefixed to every error this container accumulates, and chains
// with ">" when the container is combined into a parent.
func NewWithHeader(header string) *Handler {
	return &Handler{
		header:         header,
		successMessage: DefaultSuccessMessage,
	}
}

// Header returns the container's scope label.
func (s *Handler) Header() string {
	return s.header
}

// SetHeader replaces the container's scope label. Errors already accumulated
// keep the header they were created with.
func (s *Handler) SetHeader(header string) *Handler {
	s.header = header
	return s
}

// IsValid reports whether no errors have been accumulated.
func (s *Handler) IsValid() bool {
	return len(s.errs) == 0
}

// HasErrors reports whether at least one error has been accumulated.
func (s *Handler) HasErrors() bool {
	return len(s.errs) > 0
}

// Errors returns a copy of the accumulated errors in insertion order.
func (s *Handler) Errors() []Error {
	if len(s.errs) == 0 {
		return nil
	}
	out := make([]Error, len(s.errs))
	copy(out, s.errs)
	return out
}

// Message returns the success message while the container is valid. Once
// errors exist it returns "Failed with N error" (pluralized), overriding any
// message set via SetMessage.
func (s *Handler) Message() string {
	n := len(s.errs)
	if n == 0 {
		return s.successMessage
	}
	msg := "Failed with " + strconv.Itoa(n) + " error"
	if n != 1 {
		msg += "s"
	}
	return msg
}

// SetMessage replaces the success message. It has no visible effect while
// the container is invalid.
func (s *Handler) SetMessage(message string) *Handler {
	s.successMessage = message
	return s
}

// StatusCode returns the container-level status code, if one is set. This is
// distinct from any per-error code; see GetLastStatusCode.
func (s *Handler) StatusCode() (int, bool) {
	return s.code, s.hasCode
}

// SetStatusCode sets the container-level status code.
func (s *Handler) SetStatusCode(code int) *Handler {
	s.code = code
	s.hasCode = true
	return s
}

// clearStatusCode removes the container-level status code.
func (s *Handler) clearStatusCode() {
	s.code = 0
	s.hasCode = false
}

// AddError appends an error with the given message and affected field names,
// scoped by the container's header. No status code is attached. Panics if
// message is empty: a reportable failure without a message is a programming
// error.
func (s *Handler) AddError(message string, fieldNames ...string) *Handler {
	s.errs = append(s.errs, newError(s.header, NewValidationFailure(message, fieldNames...)))
	return s
}

// AddErrorWithCode is AddError with a status code attached to the new error.
// The container-level code is not touched.
func (s *Handler) AddErrorWithCode(code int, message string, fieldNames ...string) *Handler {
	s.errs = append(s.errs, newErrorWithCode(s.header, code, NewValidationFailure(message, fieldNames...)))
	return s
}

// AddErrorWithCause is AddError with diagnostic text captured from cause:
// the cause's message, the current stack trace, and any metadata the cause
// exposes via DataProvider. The captured text is available through the
// error's DebugData and is never rendered to users.
func (s *Handler) AddErrorWithCause(cause error, message string, fieldNames ...string) *Handler {
	err := newError(s.header, NewValidationFailure(message, fieldNames...))
	s.errs = append(s.errs, err.withDebug(buildDebugData(cause)))
	return s
}

// addCapturedError appends an error built from a caught cause, using the
// cause's own message and optionally attaching a per-error code. Used by the
// RunAndCatch wrappers. A cause with an empty message is runtime input, not
// a construction defect, so it gets a fallback message naming the cause's
// type instead of tripping the empty-message panic.
func (s *Handler) addCapturedError(cause error, code int, hasCode bool) {
	msg := cause.Error()
	if msg == "" {
		msg = fmt.Sprintf("error of type %T", cause)
	}
	failure := NewValidationFailure(msg)
	var err Error
	if hasCode {
		err = newErrorWithCode(s.header, code, failure)
	} else {
		err = newError(s.header, failure)
	}
	s.errs = append(s.errs, err.withDebug(buildDebugData(cause)))
}

// AddValidationFailure appends a pre-built failure as an error scoped by the
// container's header, with no status code. Panics if the failure has an
// empty message (a zero-value ValidationFailure, bypassing the constructor).
func (s *Handler) AddValidationFailure(failure ValidationFailure) *Handler {
	s.errs = append(s.errs, newError(s.header, mustFailure(failure)))
	return s
}

// AddValidationFailures appends pre-built failures in order, each scoped by
// the container's header, with no status codes. Panics if any failure has an
// empty message.
func (s *Handler) AddValidationFailures(failures ...ValidationFailure) *Handler {
	for _, f := range failures {
		s.errs = append(s.errs, newError(s.header, mustFailure(f)))
	}
	return s
}

// AddValidationFailureWithCode appends a pre-built failure with a status
// code attached to the new error. Panics if the failure has an empty
// message.
func (s *Handler) AddValidationFailureWithCode(code int, failure ValidationFailure) *Handler {
	s.errs = append(s.errs, newErrorWithCode(s.header, code, mustFailure(failure)))
	return s
}

// AddValidationFailuresWithCode appends pre-built failures in order, each
// carrying the same status code. Panics if any failure has an empty message.
func (s *Handler) AddValidationFailuresWithCode(code int, failures ...ValidationFailure) *Handler {
	for _, f := range failures {
		s.errs = append(s.errs, newErrorWithCode(s.header, code, mustFailure(f)))
	}
	return s
}
