package admin

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
	(&ModuleAdmin{}).Init()
}

func validCreateReq() map[string]string {
	return map[string]string{
		"firstName": "Grace",
		"lastName":  "Njeri",
		"email":     "Grace.Njeri@Example.com",
		"username":  "GNjeri",
		"password":  "s3cret-pass",
	}
}

func TestSuperadminLogin(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Login, http.MethodGet, nil, map[string]string{
		"username": "Admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, status)
	test.NoError(t, env)

	var views []adminView
	test.Decode(t, env.Data, &views)
	require.Len(t, views, 1)
	require.Equal(t, "admin001", views[0].ID)
	require.Equal(t, "superadmin", views[0].Role)
	require.NotEmpty(t, views[0].Token)
}

func TestLoginUnknownAdmin(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Login, http.MethodGet, nil, map[string]string{
		"username": "nobody",
		"password": "whatever",
	})
	test.ErrorEqual(t, response.ErrAdminNotFound, status, env)
}

func TestLoginMissingCredentials(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Login, http.MethodGet, nil, map[string]string{
		"username": "admin",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.False(t, env.Success)
}

func TestCreateAndLogin(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Create, http.MethodPost, validCreateReq(), nil)
	require.Equal(t, http.StatusCreated, status)
	test.NoError(t, env)

	var created model.Admin
	test.Decode(t, env.Data, &created)
	require.Equal(t, "gnjeri", created.Username)
	require.Equal(t, "grace.njeri@example.com", created.Email)

	// The stored password is a hash, never echoed on the wire.
	admins, err := store.Where[model.Admin]("username", "gnjeri")
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.NotEqual(t, "s3cret-pass", admins[0].Password)
	require.NotContains(t, string(env.Data), "s3cret-pass")

	status, env = test.DoRequest(t, Login, http.MethodGet, nil, map[string]string{
		"username": "gnjeri",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, status)
	test.NoError(t, env)

	var views []adminView
	test.Decode(t, env.Data, &views)
	require.Len(t, views, 1)
	require.Equal(t, "admin", views[0].Role)
	require.NotEmpty(t, views[0].Token)
}

func TestCreateDuplicateUsername(t *testing.T) {
	setup(t)

	status, _ := test.DoRequest(t, Create, http.MethodPost, validCreateReq(), nil)
	require.Equal(t, http.StatusCreated, status)

	dup := validCreateReq()
	dup["email"] = "other@example.com"
	status, env := test.DoRequest(t, Create, http.MethodPost, dup, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.False(t, env.Success)
	require.Contains(t, env.Error, "Username already exists")
}

func TestCreateDuplicateEmail(t *testing.T) {
	setup(t)

	status, _ := test.DoRequest(t, Create, http.MethodPost, validCreateReq(), nil)
	require.Equal(t, http.StatusCreated, status)

	dup := validCreateReq()
	dup["username"] = "other"
	status, env := test.DoRequest(t, Create, http.MethodPost, dup, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.False(t, env.Success)
	require.Contains(t, env.Error, "Email already exists")
}

func TestDeleteSuperadminRefused(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Delete, http.MethodDelete, nil, map[string]string{
		"username": "ADMIN",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, env.Error, "Cannot delete super admin")
}

func TestDeleteByUsername(t *testing.T) {
	setup(t)

	status, _ := test.DoRequest(t, Create, http.MethodPost, validCreateReq(), nil)
	require.Equal(t, http.StatusCreated, status)

	status, env := test.DoRequest(t, Delete, http.MethodDelete, nil, map[string]string{
		"username": "gnjeri",
	})
	require.Equal(t, http.StatusOK, status)
	test.NoError(t, env)

	admins, err := store.Where[model.Admin]("username", "gnjeri")
	require.NoError(t, err)
	require.Empty(t, admins)
}

func TestDeleteMissingSelector(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Delete, http.MethodDelete, nil, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.False(t, env.Success)
}
