package test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"student-portal-system/internal/global/response"
)

// ErrorEqual asserts the handler failed with the given predefined error.
func ErrorEqual(t *testing.T, expected *response.Error, status int, env Envelope) {
	t.Helper()
	require.Equal(t, int(expected.GetCode()), status)
	require.False(t, env.Success)
	require.Equal(t, expected.Message, env.Error)
}

// NoError asserts the envelope reports success.
func NoError(t *testing.T, env Envelope) {
	t.Helper()
	require.True(t, env.Success, "expected success, got error: %s", env.Error)
}
