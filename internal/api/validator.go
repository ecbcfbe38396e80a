package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type structValidator struct {
	validate *validator.Validate
}

func NewValidator() echo.Validator {
	return &structValidator{validate: validator.New()}
}

func (v *structValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

type validatingBinder struct {
	binder echo.DefaultBinder
}

// NewBinder возвращает Binder, который после биндинга сразу валидирует структуру.
func NewBinder() echo.Binder {
	return &validatingBinder{}
}

func (b *validatingBinder) Bind(i interface{}, ctx echo.Context) error {
	if err := b.binder.Bind(i, ctx); err != nil {
		return err
	}

	return ctx.Validate(i)
}
