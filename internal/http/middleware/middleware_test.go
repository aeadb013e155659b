package middleware

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))
	})

	t.Run("should replace oversized request id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("a", 300))

		resp, _ := app.Test(req)

		assert.Len(t, resp.Header.Get(RequestIDHeader), 36)
	})
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()

	app.Use(RequestID())
	app.Use(Logger(zap.New(core)))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "down")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "http_request", entries[0].Message)
	assert.NotEmpty(t, fields["request_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/test", fields["path"])
	assert.Equal(t, int64(fiber.StatusAccepted), fields["status"])
	assert.Contains(t, fields, "latency")

	req = httptest.NewRequest("GET", "/fail", nil)
	app.Test(req)

	failed := logs.FilterField(zap.String("path", "/fail")).All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Equal(t, int64(fiber.StatusServiceUnavailable), failed[0].ContextMap()["status"])
}

func TestBearerAuth(t *testing.T) {
	newApp := func(cfg AuthConfig) *fiber.App {
		app := fiber.New()
		app.Use(BearerAuth(cfg))
		app.Post("/tool", func(c *fiber.Ctx) error { return c.SendString("ran") })
		return app
	}

	tests := []struct {
		name   string
		cfg    AuthConfig
		header string
		target string
		want   int
	}{
		{"valid token", AuthConfig{Token: "s3cret"}, "Bearer s3cret", "/tool", fiber.StatusOK},
		{"lowercase scheme", AuthConfig{Token: "s3cret"}, "bearer s3cret", "/tool", fiber.StatusOK},
		{"wrong token", AuthConfig{Token: "s3cret"}, "Bearer nope", "/tool", fiber.StatusUnauthorized},
		{"missing header", AuthConfig{Token: "s3cret"}, "", "/tool", fiber.StatusUnauthorized},
		{"basic scheme", AuthConfig{Token: "s3cret"}, "Basic s3cret", "/tool", fiber.StatusUnauthorized},
		{"token prefix only", AuthConfig{Token: "s3cret"}, "Bearer s3cre", "/tool", fiber.StatusUnauthorized},
		{"query fallback enabled", AuthConfig{Token: "s3cret", QueryParam: "token"}, "", "/tool?token=s3cret", fiber.StatusOK},
		{"query fallback disabled", AuthConfig{Token: "s3cret"}, "", "/tool?token=s3cret", fiber.StatusUnauthorized},
		{"header wins over query", AuthConfig{Token: "s3cret", QueryParam: "token"}, "Bearer nope", "/tool?token=s3cret", fiber.StatusUnauthorized},
		{"empty configured token", AuthConfig{}, "Bearer ", "/tool", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := newApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
