package test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the wire envelope with raw payload fields so tests can
// decode data/user into whatever shape the handler returns.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	User    json.RawMessage `json:"user"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// DoRequest runs a handler with a JSON body and returns the status code and
// decoded envelope. A nil body sends an empty request.
func DoRequest(t *testing.T, handler gin.HandlerFunc, method string, body any, query map[string]string) (int, Envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	target := "/test"
	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, v)
		}
		target += "?" + values.Encode()
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, reader)
	if body != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	handler(c)

	var env Envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return w.Code, env
}

// Decode unmarshals a raw envelope field into out.
func Decode(t *testing.T, raw json.RawMessage, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, out))
}
