package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"student-portal-system/config"
)

// ErrorContextKey stores the failed request's error in the gin context for
// the Sentry middleware to pick up.
const ErrorContextKey = "error"

// Body is the uniform wire envelope. Every endpoint answers with it:
// {success, data|user|message|error}.
type Body struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	User    any    `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Origin  string `json:"origin,omitempty"`
}

// Success answers 200 with an optional data payload.
func Success(c *gin.Context, data ...any) {
	body := Body{Success: true}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Message answers 200 with a human-readable confirmation.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Body{Success: true, Message: message})
}

// Created answers 201 with the created record.
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Body{Success: true, Message: message, Data: data})
}

// User answers 200 with an authenticated profile under the "user" key,
// which is the shape the login page consumes.
func User(c *gin.Context, user any) {
	c.JSON(http.StatusOK, Body{Success: true, User: user})
}

// Fail answers with the error's status and its public message. Anything
// that is not a *response.Error becomes a generic 500; the cause is kept on
// the context for Sentry and, in debug mode, echoed in the origin field.
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrDatabase.WithOrigin(err)
	}

	c.Set(ErrorContextKey, e)

	body := Body{Success: false, Error: e.Message}
	if config.Get().Mode == config.ModeDebug {
		body.Origin = e.Origin
	}
	c.JSON(e.Status, body)
}

// MethodNotAllowed is installed as the gin NoMethod handler: every verb a
// resource does not implement answers 405 with the failure envelope.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, Body{Success: false, Error: ErrMethodNotAllowed.Message})
}

// NotFoundRoute is installed as the gin NoRoute handler.
func NotFoundRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, Body{Success: false, Error: ErrNotFound.Message})
}
