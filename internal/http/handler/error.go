package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"rentdocs/internal/http/middleware"
	"rentdocs/internal/publish"
	"rentdocs/internal/schema"
	"rentdocs/internal/service"
	"rentdocs/internal/template"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []schema.FieldError `json:"fields,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "VALIDATION_FAILED", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorFields(c, status, code, message, nil)
}

func writeErrorFields(c *fiber.Ctx, status int, code, message string, fields []schema.FieldError) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Fields:  fields,
		},
	}
	return c.Status(status).JSON(res)
}

// writeDocumentError maps validation, rendering, layout and publishing
// failures to their HTTP status. Server-side failures are logged with the cause.
func writeDocumentError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var (
		validationErr *schema.ValidationError
		missingErr    *template.MissingFieldError
		notFoundErr   *template.NotFoundError
		writeErr      *publish.WriteError
	)

	if errors.As(err, &validationErr) {
		return writeErrorFields(c, fiber.StatusBadRequest, "VALIDATION_FAILED",
			"missing or invalid fields: "+strings.Join(validationErr.FieldNames(), ", "),
			validationErr.Errors)
	}

	log.Error("document_request_failed",
		zap.String("request_id", requestIDFromCtx(c)),
		zap.String("path", c.Path()),
		zap.Error(err),
	)

	switch {
	case errors.As(err, &missingErr):
		return writeError(c, fiber.StatusInternalServerError, "TEMPLATE_RENDER_FAILED", "template could not be filled")
	case errors.As(err, &notFoundErr), errors.Is(err, service.ErrUnknownTemplate):
		return writeError(c, fiber.StatusInternalServerError, "TEMPLATE_NOT_FOUND", "template not available")
	case errors.As(err, &writeErr):
		return writeError(c, fiber.StatusInternalServerError, "WRITE_FAILED", "document could not be stored")
	case errors.Is(err, service.ErrGenerationFailed):
		return writeError(c, fiber.StatusInternalServerError, "GENERATION_FAILED", "document could not be generated")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "invalid or missing bearer token")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "BODY_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
