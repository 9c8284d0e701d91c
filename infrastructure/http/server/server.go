package server

import (
	"context"
	"log/slog"
	"time"

	"chat-relay/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Config struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server exposes the chat log over HTTP/JSON plus the embedded web page.
// Handlers return errors; the fiber error handler renders every failure
// as {"error": ...} so the process survives any malformed input.
type Server struct {
	app         *fiber.App
	log         *slog.Logger
	chatService services.IChatService
}

func NewServer(log *slog.Logger, chatService services.IChatService, cfg Config) *Server {
	s := &Server{log: log, chatService: chatService}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.renderError,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
	})

	s.app.Use(recover.New())
	s.app.Use(s.allowAnyOrigin)
	s.app.Use(s.logRequest)
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.app.Get("/", s.handleHome)
	s.app.Get("/messages", s.handleMessages)
	s.app.Get("/status", s.handleStatus)
	s.app.Post("/send", s.handleSend)

	// Everything else, wrong methods included, falls through here.
	s.app.Use(s.handleUnknownRoute)
}

// allowAnyOrigin lets the web page be served from anywhere during development.
func (s *Server) allowAnyOrigin(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	return c.Next()
}

func (s *Server) logRequest(c *fiber.Ctx) error {
	err := c.Next()
	s.log.Debug("HTTP request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
	)
	return err
}

// Listen blocks serving on addr until Shutdown or a listener error.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber application for in-process tests and custom listeners.
func (s *Server) App() *fiber.App {
	return s.app
}
