package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uhastre/EV-app/internal/domain"
	"github.com/uhastre/EV-app/internal/pkg/constants"
)

// httpErrorHandler разворачивает цепочку до первого CodedError; всё
// остальное — единый грубый 500 без частичных ответов.
func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError

	var coded *constants.CodedError
	if errors.As(err, &coded) {
		code = coded.Code()
	} else if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
