package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes data as a bare 200 JSON document.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ErrorResponse writes {"error": message} with the given status.
func ErrorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody{Error: message})
}

// InternalServerErrorResponse writes a generic 500 error body.
func InternalServerErrorResponse(c echo.Context) error {
	return ErrorResponse(c, http.StatusInternalServerError, "Something went wrong")
}

// AppErrorResponse writes an application error response.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{
			Error: appErr.Message,
			Code:  appErr.Code,
			Field: appErr.Field,
		})
	}
	return InternalServerErrorResponse(c)
}
