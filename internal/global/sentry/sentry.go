package sentry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"student-portal-system/config"
	"student-portal-system/internal/global/response"
)

// CodedError lets us report only server faults, not business failures.
type CodedError interface {
	error
	GetCode() int32
}

// Init initializes the Sentry SDK. A missing DSN disables everything.
func Init() error {
	cfg := config.Get()

	if cfg.Sentry.Dsn == "" {
		return nil
	}

	tracesSampleRate := cfg.Sentry.SampleRate
	if tracesSampleRate <= 0 {
		tracesSampleRate = 1.0
	}

	environment := cfg.Sentry.Environment
	if environment == "" {
		environment = string(cfg.Mode)
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.Dsn,
		Environment:      environment,
		Release:          "student-portal-system@1.0.0",
		SampleRate:       1.0,
		EnableTracing:    true,
		TracesSampleRate: tracesSampleRate,
		EnableLogs:       true,
	})

	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}

	return nil
}

// Middleware returns the Sentry gin middleware, or a pass-through when no
// DSN is configured.
func Middleware() gin.HandlerFunc {
	cfg := config.Get()

	if cfg.Sentry.Dsn == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
}

// ErrorCapture reports request errors left on the context by response.Fail.
// Only 5xx errors become Sentry events.
func ErrorCapture() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		v, exists := c.Get(response.ErrorContextKey)
		if !exists {
			return
		}
		err, ok := v.(error)
		if !ok {
			return
		}
		CaptureException(c, err)
	}
}

// CaptureException reports a server error with request context attached.
func CaptureException(c *gin.Context, err error) {
	cfg := config.Get()
	if cfg.Sentry.Dsn == "" {
		return
	}

	if !shouldReport(err) {
		return
	}

	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetRequest(c.Request)
			scope.SetTag("path", c.Request.URL.Path)
			scope.SetTag("method", c.Request.Method)
			scope.SetUser(sentry.User{IPAddress: c.ClientIP()})

			hub.CaptureException(err)
		})
	}
}

func shouldReport(err error) bool {
	if e, ok := err.(CodedError); ok {
		return e.GetCode() >= 500 && e.GetCode() < 600
	}
	return true
}

// Flush drains the Sentry buffer; call before exit.
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}
