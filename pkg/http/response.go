package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// OKResponse writes a success payload. The payload struct is expected to
// carry its own ok:true field (see internal/domain/models).
func OKResponse(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusOK, payload)
}

// ErrorResponse writes an ok:false envelope with the given status.
func ErrorResponse(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, Envelope{OK: false, Error: msg})
}

// BadRequestResponse writes a 400 with field-level validation details.
func BadRequestResponse(c echo.Context, fields []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		OK:     false,
		Error:  "invalid request body",
		Fields: fields,
	})
}

// UnauthorizedResponse writes a 401 envelope.
func UnauthorizedResponse(c echo.Context, msg string) error {
	return ErrorResponse(c, http.StatusUnauthorized, msg)
}

// InternalServerErrorResponse writes a 500 envelope.
func InternalServerErrorResponse(c echo.Context, msg string) error {
	return ErrorResponse(c, http.StatusInternalServerError, msg)
}

// AppErrorResponse maps an application error to its HTTP status.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Message)
	}
	return InternalServerErrorResponse(c, "internal error")
}
