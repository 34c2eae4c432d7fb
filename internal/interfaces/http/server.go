package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

// ServerConfig parámetros de la app Fiber.
type ServerConfig struct {
	AppName   string
	BodyLimit int // bytes; 0 = default de Fiber
}

// NewApp construye la app Fiber con ErrorHandler, logging de peticiones, recover y /health.
func NewApp(cfg ServerConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		BodyLimit:    cfg.BodyLimit,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: NewErrorHandler(log),
	})
	app.Use(RequestLogger(log))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})
	return app
}
