package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidationFailure(t *testing.T) {
	f := NewValidationFailure("name is required", "Name")

	require.Equal(t, "name is required", f.Message())
	require.Equal(t, []string{"Name"}, f.FieldNames())
}

func TestNewValidationFailure_NoFields(t *testing.T) {
	f := NewValidationFailure("something went wrong")

	require.Equal(t, "something went wrong", f.Message())
	require.Nil(t, f.FieldNames())
}

func TestNewValidationFailure_EmptyMessagePanics(t *testing.T) {
	require.Panics(t, func() {
		NewValidationFailure("")
	})
}

func TestValidationFailure_FieldNamesAreCopied(t *testing.T) {
	input := []string{"A", "B"}
	f := NewValidationFailure("msg", input...)

	input[0] = "mutated"
	require.Equal(t, []string{"A", "B"}, f.FieldNames())

	view := f.FieldNames()
	view[1] = "mutated"
	require.Equal(t, []string{"A", "B"}, f.FieldNames())
}

func TestValidationFailure_FieldOrderPreserved(t *testing.T) {
	f := NewValidationFailure("msg", "Z", "A", "M")
	require.Equal(t, []string{"Z", "A", "M"}, f.FieldNames())
}
