package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorBody is the wire shape of every failed request.
type errorBody struct {
	Error string `json:"error"`
}

// SuccessResponse writes the payload as-is with 200.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ErrorResponse writes {"error": message} with the given status.
func ErrorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, errorBody{Error: message})
}

// InternalServerErrorResponse writes a 500 error body.
func InternalServerErrorResponse(c echo.Context) error {
	return ErrorResponse(c, http.StatusInternalServerError, "something went wrong")
}

// AppErrorResponse writes an application error response, falling back to a
// generic 500 for unclassified errors.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Message)
	}
	return InternalServerErrorResponse(c)
}
