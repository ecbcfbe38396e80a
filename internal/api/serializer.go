package api

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

type sonicSerializer struct{}

// NewSonicSerializer заменяет стандартный encoding/json сериализатор echo на sonic.
func NewSonicSerializer() echo.JSONSerializer {
	return sonicSerializer{}
}

func (sonicSerializer) Serialize(ctx echo.Context, i interface{}, indent string) error {
	enc := sonic.ConfigDefault.NewEncoder(ctx.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}

	return enc.Encode(i)
}

func (sonicSerializer) Deserialize(ctx echo.Context, i interface{}) error {
	dec := sonic.ConfigDefault.NewDecoder(ctx.Request().Body)
	if err := dec.Decode(i); err != nil {
		return fmt.Errorf("Deserialize: %w", err)
	}

	return nil
}
