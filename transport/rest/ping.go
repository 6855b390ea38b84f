package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type PingHandler interface {
	Ping(ctx echo.Context) error
	Health(ctx echo.Context) error
}

type pingHandler struct{}

func NewPingHandler() PingHandler {
	return &pingHandler{}
}

func (that *pingHandler) Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

func (that *pingHandler) Health(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}
