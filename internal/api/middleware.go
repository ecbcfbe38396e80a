package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/uhastre/EV-app/internal/pkg/logger"
)

// RequestIDMiddleware проставляет request_id в контекст запроса и в ответный заголовок.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		rid := ctx.Request().Header.Get(echo.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx.Response().Header().Set(echo.HeaderXRequestID, rid)

		req := ctx.Request()
		ctx.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), rid)))

		return next(ctx)
	}
}
