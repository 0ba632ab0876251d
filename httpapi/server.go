// Package httpapi exposes the REST and WebSocket surface of the portal
// messaging system over echo.
package httpapi

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"campus-chat/auth"
	"campus-chat/gateway"
	"campus-chat/services"
)

type Options struct {
	Addr    string
	Log     *slog.Logger
	Tokens  *auth.TokenManager
	AuthSvc services.IAuthService
	ChatSvc services.IChatService
	WS      *gateway.WSHandler
}

type Server struct {
	addr   string
	log    *slog.Logger
	router *echo.Echo
}

func NewServer(opts Options) *Server {
	router := echo.New()
	router.HideBanner = true
	router.Use(middleware.Recover())

	jwt := JWTMiddleware(opts.Tokens)

	api := router.Group("/api")
	registerAuthAPI(api, opts.AuthSvc)
	registerChatAPI(api, jwt, opts.ChatSvc)

	// The WebSocket endpoint authenticates itself via the token query
	// parameter; the upgrade handshake cannot carry a bearer header from
	// browsers.
	router.GET("/ws", opts.WS.Handle)

	return &Server{addr: opts.Addr, log: opts.Log, router: router}
}

func (s *Server) Start() error {
	s.log.Info("http server listening", "addr", s.addr)
	return s.router.Start(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.router.Shutdown(ctx)
}
