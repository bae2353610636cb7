package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"vendorhub/internal/delivery/api/response"
	deliverycontext "vendorhub/internal/delivery/context"
	domainerrors "vendorhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnexpected(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, message := httpErrorCode(httpErr)
		var details any
		if code == domainerrors.ErrValidationFailed.ErrorCode() {
			details = []string{message}
			message = domainerrors.ErrValidationFailed.Message()
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnexpected(c, err)
		}
		_ = response.Error(c, httpErr.Code, code, message, details)

		return
	}

	m.logUnexpected(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}

func (m *ErrorMiddleware) logUnexpected(c echo.Context, err error) {
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

// httpErrorCode maps framework errors onto the API error codes.
func httpErrorCode(httpErr *echo.HTTPError) (string, string) {
	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	} else if httpErr.Message != nil {
		message = fmt.Sprint(httpErr.Message)
	}

	switch httpErr.Code {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return domainerrors.ErrValidationFailed.ErrorCode(), message
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode(), "Route not found"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED", "Method not allowed"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE", "Request body too large"
	case http.StatusUnauthorized:
		return domainerrors.ErrMissingCredentials.ErrorCode(), message
	case http.StatusForbidden:
		return domainerrors.ErrForbidden.ErrorCode(), message
	}
	if httpErr.Code >= http.StatusInternalServerError {
		return domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later"
	}

	return "HTTP_ERROR", message
}
