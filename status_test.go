package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New()

	require.True(t, s.IsValid())
	require.False(t, s.HasErrors())
	require.Empty(t, s.Errors())
	require.Equal(t, "Success", s.Message())
	require.Empty(t, s.Header())

	_, ok := s.StatusCode()
	require.False(t, ok)
}

func TestNewWithHeader(t *testing.T) {
	s := NewWithHeader("MyClass")
	require.Equal(t, "MyClass", s.Header())
	require.True(t, s.IsValid())
}

func TestHandler_AddError(t *testing.T) {
	s := New()
	got := s.AddError("This is an error.")

	require.Same(t, s, got)
	require.False(t, s.IsValid())
	require.True(t, s.HasErrors())
	require.Len(t, s.Errors(), 1)
	require.Equal(t, "Failed with 1 error", s.Message())

	all, ok := s.GetAllErrors()
	require.True(t, ok)
	require.Equal(t, "This is an error.", all)
}

func TestHandler_AddError_HeaderRendering(t *testing.T) {
	s := NewWithHeader("MyClass")
	s.AddError("This is an error.")

	require.Equal(t, "MyClass: This is an error.", s.Errors()[0].Error())
}

func TestHandler_AddError_EmptyMessagePanics(t *testing.T) {
	s := New()
	require.Panics(t, func() {
		s.AddError("")
	})
}

func TestHandler_AddError_FieldNames(t *testing.T) {
	s := New()
	s.AddError("bad value", "First", "Second")

	require.Equal(t, []string{"First", "Second"}, s.Errors()[0].FieldNames())
}

func TestHandler_AddErrorWithCode(t *testing.T) {
	s := New()
	s.AddErrorWithCode(400, "bad request", "Body")

	err := s.Errors()[0]
	code, ok := err.ErrorCode()
	require.True(t, ok)
	require.Equal(t, 400, code)

	// the container-level code is untouched
	_, ok = s.StatusCode()
	require.False(t, ok)
}

func TestHandler_MessagePluralization(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  string
	}{
		{"one error", 1, "Failed with 1 error"},
		{"two errors", 2, "Failed with 2 errors"},
		{"five errors", 5, "Failed with 5 errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			for i := 0; i < tt.count; i++ {
				s.AddError("an error")
			}
			require.Equal(t, tt.want, s.Message())
		})
	}
}

func TestHandler_FailureMessageOverridesSetMessage(t *testing.T) {
	s := New()
	s.SetMessage("custom success")
	require.Equal(t, "custom success", s.Message())

	s.AddError("boom")
	require.Equal(t, "Failed with 1 error", s.Message())

	// setting a message while invalid has no visible effect
	s.SetMessage("still custom")
	require.Equal(t, "Failed with 1 error", s.Message())
}

func TestHandler_ValidityIsMonotonic(t *testing.T) {
	s := New()
	require.True(t, s.IsValid())

	s.AddError("first")
	require.False(t, s.IsValid())

	// no accumulation path restores validity
	s.AddError("second")
	s.SetMessage("does not help")
	s.CombineStatuses(New())
	require.False(t, s.IsValid())
	require.Len(t, s.Errors(), 2)
}

func TestHandler_ErrorsOrderAndDuplicates(t *testing.T) {
	s := New()
	s.AddError("same").AddError("same").AddError("other")

	errs := s.Errors()
	require.Len(t, errs, 3)
	require.Equal(t, "same", errs[0].Message())
	require.Equal(t, "same", errs[1].Message())
	require.Equal(t, "other", errs[2].Message())
}

func TestHandler_ErrorsIsACopy(t *testing.T) {
	s := New().AddError("original")

	view := s.Errors()
	view[0] = newError("X", NewValidationFailure("tampered"))

	require.Equal(t, "original", s.Errors()[0].Message())
}

func TestHandler_SetHeaderAffectsLaterErrorsOnly(t *testing.T) {
	s := New()
	s.AddError("before")
	s.SetHeader("Scope")
	s.AddError("after")

	errs := s.Errors()
	require.Empty(t, errs[0].Header())
	require.Equal(t, "Scope", errs[1].Header())
}

func TestHandler_SetStatusCode(t *testing.T) {
	s := New().SetStatusCode(200)

	code, ok := s.StatusCode()
	require.True(t, ok)
	require.Equal(t, 200, code)
}

func TestHandler_AddValidationFailure(t *testing.T) {
	s := NewWithHeader("Form")
	got := s.AddValidationFailure(NewValidationFailure("email is invalid", "Email"))

	require.Same(t, s, got)
	err := s.Errors()[0]
	require.Equal(t, "Form", err.Header())
	require.Equal(t, "email is invalid", err.Message())
	_, ok := err.ErrorCode()
	require.False(t, ok)
}

func TestHandler_AddValidationFailures(t *testing.T) {
	s := New()
	s.AddValidationFailures(
		NewValidationFailure("first", "A"),
		NewValidationFailure("second", "B"),
	)

	errs := s.Errors()
	require.Len(t, errs, 2)
	require.Equal(t, "first", errs[0].Message())
	require.Equal(t, "second", errs[1].Message())
	require.Equal(t, "Failed with 2 errors", s.Message())
}

func TestHandler_AddValidationFailureWithCode(t *testing.T) {
	s := New()
	s.AddValidationFailureWithCode(422, NewValidationFailure("bad", "F"))

	code, ok := s.Errors()[0].ErrorCode()
	require.True(t, ok)
	require.Equal(t, 422, code)
}

func TestHandler_AddValidationFailuresWithCode(t *testing.T) {
	s := New()
	s.AddValidationFailuresWithCode(400,
		NewValidationFailure("first"),
		NewValidationFailure("second"),
	)

	for _, err := range s.Errors() {
		code, ok := err.ErrorCode()
		require.True(t, ok)
		require.Equal(t, 400, code)
	}
}

func TestHandler_Chaining(t *testing.T) {
	s := NewWithHeader("Chain").
		AddError("one").
		AddErrorWithCode(400, "two").
		AddValidationFailure(NewValidationFailure("three")).
		SetMessage("ignored").
		SetStatusCode(500)

	require.Len(t, s.Errors(), 3)
	require.Equal(t, "Failed with 3 errors", s.Message())
}
