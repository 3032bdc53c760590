package status

import "encoding/json"

// ErrorEntry is the JSON shape of a single accumulated error. Debug data is
// intentionally excluded: it may contain stack traces and internal details
// that must not leak through API responses.
type ErrorEntry struct {
	// Header is the scope chain of the error, e.g. "Order>Item".
	Header string `json:"header,omitempty"`

	// Message is the user-facing failure message.
	Message string `json:"message"`

	// Fields lists the affected field names, in order.
	Fields []string `json:"fields,omitempty"`

	// Code is the per-error status code, when one is attached.
	Code *int `json:"code,omitempty"`
}

// Response is the JSON shape of a whole status, suitable for API endpoints.
type Response struct {
	// Success mirrors IsValid.
	Success bool `json:"success"`

	// Message is the status message (success message or failure summary).
	Message string `json:"message"`

	// Code is the container-level status code, when one is set.
	Code *int `json:"code,omitempty"`

	// Errors holds the accumulated errors in insertion order. Omitted when
	// the status is valid.
	Errors []ErrorEntry `json:"errors,omitempty"`
}

// ToJSON converts any status into a Response for JSON serialization.
// Returns nil if s is nil.
//
// Example:
//
//	func writeStatus(w http.ResponseWriter, s status.Status) {
//	    w.Header().Set("Content-Type", "application/json")
//	    if code, ok := s.GetLastStatusCode(); ok {
//	        w.WriteHeader(code)
//	    }
//	    json.NewEncoder(w).Encode(status.ToJSON(s))
//	}
func ToJSON(s Status) *Response {
	if s == nil {
		return nil
	}
	resp := &Response{
		Success: s.IsValid(),
		Message: s.Message(),
	}
	if code, ok := s.StatusCode(); ok {
		resp.Code = &code
	}
	for _, err := range s.Errors() {
		resp.Errors = append(resp.Errors, errorEntry(err))
	}
	return resp
}

func errorEntry(err Error) ErrorEntry {
	entry := ErrorEntry{
		Header:  err.Header(),
		Message: err.Message(),
		Fields:  err.FieldNames(),
	}
	if code, ok := err.ErrorCode(); ok {
		entry.Code = &code
	}
	return entry
}

// MarshalJSON implements json.Marshaler, so an Error can be embedded in API
// payloads directly.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorEntry(e))
}

// MarshalJSON implements json.Marshaler for Handler and, via embedding, for
// ResultHandler. The result value is deliberately not serialized; carry it
// in the surrounding payload if the API needs it.
func (s *Handler) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(s))
}
