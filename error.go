package status

// Error is a single accumulated status error: a validation failure scoped by
// an optional header, optionally carrying its own status code and diagnostic
// debug text.
//
// Error values are immutable once created. Re-headering during combination
// goes through WithPrefix, which produces a new value and never touches the
// original; this keeps combination side-effect-free across repeated calls.
type Error struct {
	header  string
	failure ValidationFailure
	code    int
	hasCode bool
	debug   string
}

// compile-time guarantee that Error satisfies the standard error interface
var _ error = Error{}

// newError creates an Error scoped by header, with no status code attached.
func newError(header string, failure ValidationFailure) Error {
	return Error{header: header, failure: failure}
}

// newErrorWithCode creates an Error scoped by header, carrying its own
// status code.
func newErrorWithCode(header string, code int, failure ValidationFailure) Error {
	return Error{header: header, failure: failure, code: code, hasCode: true}
}

// Error returns the rendered form of the error: "header: message" when a
// header is present, otherwise just the message.
func (e Error) Error() string {
	if e.header != "" {
		return e.header + ": " + e.failure.Message()
	}
	return e.failure.Message()
}

// Header returns the logical scope label of the error. May be empty.
func (e Error) Header() string {
	return e.header
}

// Failure returns the validation content of the error.
func (e Error) Failure() ValidationFailure {
	return e.failure
}

// Message returns the user-facing failure message.
func (e Error) Message() string {
	return e.failure.Message()
}

// FieldNames returns a copy of the field names affected by the error.
func (e Error) FieldNames() []string {
	return e.failure.FieldNames()
}

// ErrorCode returns the status code attached to this specific error, if any.
// The second return value reports whether a code is present.
func (e Error) ErrorCode() (int, bool) {
	return e.code, e.hasCode
}

// DebugData returns the diagnostic text captured from an underlying error,
// or an empty string for errors that did not originate from one. The text is
// not user-facing; it is intended for logs and diagnostics only.
func (e Error) DebugData() string {
	return e.debug
}

// WithPrefix returns a copy of the error whose header has prefix prepended:
// an empty prefix leaves the header unchanged, a prefix over an empty header
// replaces it, and otherwise the two are joined as "prefix>header". All other
// fields are copied unchanged.
func (e Error) WithPrefix(prefix string) Error {
	out := e
	switch {
	case prefix == "":
		// keep header as-is
	case e.header == "":
		out.header = prefix
	default:
		out.header = prefix + ">" + e.header
	}
	return out
}

// withDebug returns a copy of the error with debug text attached.
func (e Error) withDebug(debug string) Error {
	out := e
	out.debug = debug
	return out
}
