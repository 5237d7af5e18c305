package student

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"student-portal-system/internal/global/jwt"
	"student-portal-system/internal/global/response"
	"student-portal-system/internal/model"
	"student-portal-system/test"
)

func setup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	test.SetupDB(t)
	(&ModuleStudent{}).Init()
}

func validCreateReq() map[string]any {
	return map[string]any{
		"firstName":             "Jane",
		"lastName":              "Wanjiku",
		"regNumber":             "cs/001/2024",
		"idNumber":              "12345678",
		"email":                 "Jane.Wanjiku@Example.com",
		"phone":                 "0712345678",
		"course":                "Computer Science",
		"yearOfStudy":           "2",
		"dateOfBirth":           "2000-01-15",
		"emergencyContactName":  "Mary Wanjiku",
		"emergencyContactPhone": "+254712345679",
	}
}

func TestCreateAndList(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Create, http.MethodPost, validCreateReq(), nil)
	require.Equal(t, http.StatusCreated, status)
	test.NoError(t, env)

	var created model.Student
	test.Decode(t, env.Data, &created)
	require.Equal(t, "CS/001/2024", created.RegNumber)
	require.Equal(t, "CS/001/2024", created.Username)
	require.Equal(t, "12345678", created.Password)
	require.Equal(t, "jane.wanjiku@example.com", created.Email)
	require.Equal(t, "+254712345678", created.Phone)
	require.Equal(t, "+254712345679", created.EmergencyContactPhone)
	require.Equal(t, model.StatusActive, created.Status)
	require.NotEmpty(t, created.ID)

	status, env = test.DoRequest(t, List, http.MethodGet, nil, nil)
	require.Equal(t, http.StatusOK, status)
	test.NoError(t, env)

	var students []model.Student
	test.Decode(t, env.Data, &students)
	require.Len(t, students, 1)
	require.Equal(t, created.ID, students[0].ID)
}

func TestCreateRecordsCreatingAdmin(t *testing.T) {
	setup(t)

	raw, err := json.Marshal(validCreateReq())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("payload", &jwt.Claims{Payload: jwt.Payload{Subject: "gnjeri", Role: jwt.RoleAdmin}})

	Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var env test.Envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	var created model.Student
	test.Decode(t, env.Data, &created)
	require.Equal(t, "gnjeri", created.CreatedBy)
}

func TestCreateDuplicateRegNumber(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Create, http.MethodPost, validCreateReq(), nil)
	require.Equal(t, http.StatusCreated, status)
	test.NoError(t, env)

	// Same reg number in a different case is still a duplicate.
	dup := validCreateReq()
	dup["regNumber"] = "CS/001/2024"
	dup["idNumber"] = "87654321"
	status, env = test.DoRequest(t, Create, http.MethodPost, dup, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.False(t, env.Success)
	require.Contains(t, env.Error, "already exists")
}

func TestCreateValidation(t *testing.T) {
	setup(t)

	cases := []struct {
		name  string
		field string
		value string
	}{
		{"id number too short", "idNumber", "123"},
		{"id number with symbols", "idNumber", "1234-5678"},
		{"bad phone", "phone", "12345"},
		{"bad emergency phone", "emergencyContactPhone", "0812345678"},
		{"under age", "dateOfBirth", "2020-01-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateReq()
			req[tc.field] = tc.value
			status, env := test.DoRequest(t, Create, http.MethodPost, req, nil)
			require.Equal(t, http.StatusBadRequest, status)
			require.False(t, env.Success)
		})
	}
}

func TestCreateMissingRequiredFields(t *testing.T) {
	setup(t)

	req := validCreateReq()
	delete(req, "regNumber")
	status, env := test.DoRequest(t, Create, http.MethodPost, req, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.False(t, env.Success)
}

func TestUpdateMergesFields(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Create, http.MethodPost, validCreateReq(), nil)
	require.Equal(t, http.StatusCreated, status)
	var created model.Student
	test.Decode(t, env.Data, &created)

	status, env = test.DoRequest(t, Update, http.MethodPut, map[string]any{
		"phone":    "0722000000",
		"course":   "Software Engineering",
		"likes":    99,
		"password": "should-be-ignored",
	}, map[string]string{"id": created.ID})
	require.Equal(t, http.StatusOK, status)
	test.NoError(t, env)

	status, env = test.DoRequest(t, List, http.MethodGet, nil, nil)
	require.Equal(t, http.StatusOK, status)
	var students []model.Student
	test.Decode(t, env.Data, &students)
	require.Len(t, students, 1)
	require.Equal(t, "+254722000000", students[0].Phone)
	require.Equal(t, "Software Engineering", students[0].Course)
	require.Equal(t, "12345678", students[0].Password)
}

func TestUpdateRejectsInvalidField(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Create, http.MethodPost, validCreateReq(), nil)
	require.Equal(t, http.StatusCreated, status)
	var created model.Student
	test.Decode(t, env.Data, &created)

	status, env = test.DoRequest(t, Update, http.MethodPut, map[string]any{
		"idNumber": "!!",
	}, map[string]string{"id": created.ID})
	require.Equal(t, http.StatusBadRequest, status)
	require.False(t, env.Success)
}

func TestUpdateMissingID(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Update, http.MethodPut, map[string]any{"course": "Law"}, nil)
	test.ErrorEqual(t, response.ErrInvalidRequest.WithTips("Student ID required"), status, env)
}

func TestDeleteIdempotent(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Delete, http.MethodDelete, nil, map[string]string{"id": "no-such-id"})
	require.Equal(t, http.StatusOK, status)
	test.NoError(t, env)
}

func TestDeleteMissingID(t *testing.T) {
	setup(t)

	status, env := test.DoRequest(t, Delete, http.MethodDelete, nil, nil)
	test.ErrorEqual(t, response.ErrInvalidRequest.WithTips("Student ID required"), status, env)
}
