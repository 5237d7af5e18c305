package login

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"student-portal-system/internal/global/response"
	"student-portal-system/internal/global/store"
	"student-portal-system/internal/model"
	"student-portal-system/test"
)

func setup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	test.SetupDB(t)
	(&ModuleLogin{}).Init()
}

func seedStudent(t *testing.T, regNumber, idNumber string) model.Student {
	student := model.Student{
		FirstName: "John",
		LastName:  "Otieno",
		RegNumber: regNumber,
		IDNumber:  idNumber,
		Email:     "john.otieno@example.com",
		Course:    "Economics",
		Username:  regNumber,
		Password:  idNumber,
		Status:    model.StatusActive,
	}
	require.NoError(t, store.Insert(&student))
	return student
}

func TestSuperadminLogin(t *testing.T) {
	setup(t)

	// Any casing of the reserved username works.
	for _, regNo := range []string{"admin", "ADMIN", " Admin "} {
		status, env := test.DoRequest(t, Login, http.MethodPost, map[string]string{
			"regNo":    regNo,
			"idNumber": "admin123",
		}, nil)
		require.Equal(t, http.StatusOK, status)
		test.NoError(t, env)

		var profile model.Profile
		test.Decode(t, env.User, &profile)
		require.True(t, profile.IsAdmin)
		require.Equal(t, "admin", profile.ID)
		require.Equal(t, "ADMIN", profile.RegNumber)
		require.NotEmpty(t, profile.Token)
	}
}

func TestStudentLogin(t *testing.T) {
	setup(t)
	seedStudent(t, "CS/010/2023", "A1234567")

	status, env := test.DoRequest(t, Login, http.MethodPost, map[string]string{
		"regNo":    " cs/010/2023 ",
		"idNumber": "A1234567",
	}, nil)
	require.Equal(t, http.StatusOK, status)
	test.NoError(t, env)

	var profile model.Profile
	test.Decode(t, env.User, &profile)
	require.False(t, profile.IsAdmin)
	require.Equal(t, "CS/010/2023", profile.RegNumber)
	require.Equal(t, "John", profile.FirstName)
	require.NotEmpty(t, profile.Token)
}

func TestLoginWrongIDNumber(t *testing.T) {
	setup(t)
	seedStudent(t, "CS/010/2023", "A1234567")

	status, env := test.DoRequest(t, Login, http.MethodPost, map[string]string{
		"regNo":    "CS/010/2023",
		"idNumber": "WRONG123",
	}, nil)
	test.ErrorEqual(t, response.ErrInvalidCredentials, status, env)
}

func TestLoginUnknownRegNumber(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Login, http.MethodPost, map[string]string{
		"regNo":    "NOPE/000/0000",
		"idNumber": "A1234567",
	}, nil)
	test.ErrorEqual(t, response.ErrInvalidCredentials, status, env)
}

func TestLoginMissingFields(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Login, http.MethodPost, map[string]string{
		"regNo": "CS/010/2023",
	}, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.False(t, env.Success)
}

func TestSuperadminMissFallsThroughToStudent(t *testing.T) {
	setup(t)

	// A student whose reg number collides with the reserved username can
	// still log in with their own credential.
	seedStudent(t, "ADMIN", "ST123456")

	status, env := test.DoRequest(t, Login, http.MethodPost, map[string]string{
		"regNo":    "admin",
		"idNumber": "ST123456",
	}, nil)
	require.Equal(t, http.StatusOK, status)
	test.NoError(t, env)

	var profile model.Profile
	test.Decode(t, env.User, &profile)
	require.False(t, profile.IsAdmin)
	require.Equal(t, "John", profile.FirstName)
}
