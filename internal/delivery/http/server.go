package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "github.com/transport-catalogue/docs"
	"github.com/transport-catalogue/internal/config"
	"github.com/transport-catalogue/internal/delivery/http/handler"
	"github.com/transport-catalogue/internal/delivery/http/middleware"
	"github.com/transport-catalogue/internal/pkg/errors"
	"github.com/transport-catalogue/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	catalogueHandler *handler.CatalogueHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	catalogueHandler *handler.CatalogueHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Transport Catalogue",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		// имена остановок содержат пробелы и кириллицу
		UnescapePath: true,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		catalogueHandler: catalogueHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api/v1")

	api.Get("/health", s.catalogueHandler.Health)

	// Catalogue
	api.Get("/buses/:name", s.catalogueHandler.GetBus)
	api.Get("/stops/:name", s.catalogueHandler.GetStop)
	api.Get("/stops/:name/buses", s.catalogueHandler.GetStopBuses)

	// Routing
	api.Get("/route", s.catalogueHandler.GetRoute)
	api.Get("/routing/settings", s.catalogueHandler.GetRoutingSettings)
	api.Put("/routing/settings", s.catalogueHandler.UpdateRoutingSettings)
}

// App - fiber приложение, используется в тестах
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404 маршрута, 405) отдаются в формате AppError
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code := errors.ErrInvalidRequest.Code
			switch {
			case fe.Code == fiber.StatusNotFound:
				code = errors.ErrNotFound.Code
			case fe.Code >= fiber.StatusInternalServerError:
				code = errors.ErrInternalServer.Code
			}
			appErr := errors.New(code, fe.Message, fe.Code)
			return c.Status(fe.Code).JSON(utils.ErrorResponse{Error: appErr})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
