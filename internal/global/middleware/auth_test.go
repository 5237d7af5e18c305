package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"student-portal-system/internal/global/jwt"
	"student-portal-system/test"
)

func doAuth(t *testing.T, minRole, authHeader string) (int, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	reached := false
	Auth(minRole)(c)
	if !c.IsAborted() {
		reached = true
	}
	return w.Code, reached
}

func TestAuthRejectsMissingAndMalformedTokens(t *testing.T) {
	test.SetupDB(t)

	status, reached := doAuth(t, jwt.RoleAdmin, "")
	require.Equal(t, http.StatusUnauthorized, status)
	require.False(t, reached)

	status, reached = doAuth(t, jwt.RoleAdmin, "Token abc")
	require.Equal(t, http.StatusUnauthorized, status)
	require.False(t, reached)

	status, reached = doAuth(t, jwt.RoleAdmin, "Bearer not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, status)
	require.False(t, reached)
}

func TestAuthRoleGate(t *testing.T) {
	test.SetupDB(t)

	studentToken := jwt.CreateToken(jwt.Payload{Subject: "CS/001/2024", Role: jwt.RoleStudent})
	adminToken := jwt.CreateToken(jwt.Payload{Subject: "admin", Role: jwt.RoleAdmin})

	// Student tokens cannot pass an admin gate.
	status, reached := doAuth(t, jwt.RoleAdmin, "Bearer "+studentToken)
	require.Equal(t, http.StatusUnauthorized, status)
	require.False(t, reached)

	_, reached = doAuth(t, jwt.RoleAdmin, "Bearer "+adminToken)
	require.True(t, reached)

	// Admin tokens pass student gates too.
	_, reached = doAuth(t, jwt.RoleStudent, "Bearer "+adminToken)
	require.True(t, reached)

	_, reached = doAuth(t, jwt.RoleStudent, "Bearer "+studentToken)
	require.True(t, reached)
}
