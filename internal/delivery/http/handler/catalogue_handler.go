package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/pkg/errors"
	"github.com/transport-catalogue/internal/pkg/utils"
	"github.com/transport-catalogue/internal/pkg/validator"
	"github.com/transport-catalogue/internal/usecase"
	"github.com/transport-catalogue/internal/usecase/dto"
	"github.com/transport-catalogue/internal/worker"
)

// WorkerStatusProvider - состояние воркеров перезагрузки каталога
type WorkerStatusProvider interface {
	Statuses() []worker.Status
	Healthy() bool
}

// CatalogueHandler обрабатывает запросы к каталогу и маршрутизации
type CatalogueHandler struct {
	catalogueUC *usecase.CatalogueUseCase
	workers     WorkerStatusProvider
	logger      *zap.Logger
}

// NewCatalogueHandler создает новый экземпляр CatalogueHandler.
// workers может быть nil, если воркеры выключены.
func NewCatalogueHandler(catalogueUC *usecase.CatalogueUseCase, workers WorkerStatusProvider, logger *zap.Logger) *CatalogueHandler {
	return &CatalogueHandler{
		catalogueUC: catalogueUC,
		workers:     workers,
		logger:      logger,
	}
}

// GetBus godoc
// @Summary Get bus line statistics
// @Description Возвращает число остановок, длину и извилистость маршрута
// @Tags Catalogue
// @Produce json
// @Param name path string true "Bus name"
// @Success 200 {object} utils.SuccessResponse{data=dto.BusResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/buses/{name} [get]
func (h *CatalogueHandler) GetBus(c *fiber.Ctx) error {
	name := c.Params("name")

	info, err := h.catalogueUC.GetRouteInfo(c.Context(), name)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewBusResponse(info), nil)
}

// GetStop godoc
// @Summary Get stop
// @Description Возвращает координаты остановки и маршруты через нее
// @Tags Catalogue
// @Produce json
// @Param name path string true "Stop name"
// @Success 200 {object} utils.SuccessResponse{data=dto.StopResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stops/{name} [get]
func (h *CatalogueHandler) GetStop(c *fiber.Ctx) error {
	name := c.Params("name")
	ctx := c.Context()

	stop, err := h.catalogueUC.GetStop(ctx, name)
	if err != nil {
		return utils.SendError(c, err)
	}
	buses, err := h.catalogueUC.GetBusesOnStop(ctx, name)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.StopResponse{
		Name:      stop.Name,
		Latitude:  stop.Coordinates.Lat,
		Longitude: stop.Coordinates.Lon,
		Buses:     buses,
	}, &utils.Meta{Total: len(buses)})
}

// GetStopBuses godoc
// @Summary Get buses on stop
// @Tags Catalogue
// @Produce json
// @Param name path string true "Stop name"
// @Success 200 {object} utils.SuccessResponse{data=dto.StopBusesResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stops/{name}/buses [get]
func (h *CatalogueHandler) GetStopBuses(c *fiber.Ctx) error {
	name := c.Params("name")

	buses, err := h.catalogueUC.GetBusesOnStop(c.Context(), name)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.StopBusesResponse{Stop: name, Buses: buses}, &utils.Meta{
		Total: len(buses),
	})
}

// GetRoute godoc
// @Summary Find the fastest route
// @Description Ищет самый быстрый путь между остановками. Если пути нет, found=false
// @Tags Routing
// @Produce json
// @Param from query string true "Departure stop"
// @Param to query string true "Arrival stop"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/route [get]
func (h *CatalogueHandler) GetRoute(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"error": err.Error(),
		}))
	}
	if err := validator.ValidateRequest(&req); err != nil {
		return utils.SendError(c, err)
	}

	it, found, err := h.catalogueUC.BuildRoute(c.Context(), req.From, req.To)
	if err != nil {
		return utils.SendError(c, err)
	}
	if !found {
		h.logger.Debug("No route between stops", zap.String("from", req.From), zap.String("to", req.To))
		it = nil
	}

	resp := dto.NewRouteResponse(req.From, req.To, it)
	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Segments)})
}

// GetRoutingSettings godoc
// @Summary Get routing settings
// @Tags Routing
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RoutingSettingsResponse}
// @Router /api/v1/routing/settings [get]
func (h *CatalogueHandler) GetRoutingSettings(c *fiber.Ctx) error {
	resp := dto.RoutingSettingsResponse{Generation: h.catalogueUC.Generation()}
	if s := h.catalogueUC.RoutingSettings(); s != nil {
		resp.Configured = true
		resp.BusWaitTime = s.BusWaitTime
		resp.BusVelocity = s.BusVelocity
	}
	return utils.SendSuccess(c, resp, nil)
}

// UpdateRoutingSettings godoc
// @Summary Update routing settings
// @Description Перестраивает граф текущего каталога с новыми параметрами
// @Tags Routing
// @Accept json
// @Produce json
// @Param request body dto.RoutingSettingsRequest true "Routing settings"
// @Success 200 {object} utils.SuccessResponse{data=dto.RoutingSettingsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/routing/settings [put]
func (h *CatalogueHandler) UpdateRoutingSettings(c *fiber.Ctx) error {
	var req dto.RoutingSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"error": "invalid request body",
		}))
	}
	if err := validator.ValidateRequest(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.catalogueUC.UpdateRoutingSettings(c.Context(), req.ToDomain()); err != nil {
		h.logger.Error("Failed to update routing settings", zap.Error(err))
		return utils.SendError(c, err)
	}

	return h.GetRoutingSettings(c)
}

// Health godoc
// @Summary Health check
// @Description degraded - воркер перезагрузки упал, ответы идут по последнему загруженному снимку
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *CatalogueHandler) Health(c *fiber.Ctx) error {
	stops, busLines := h.catalogueUC.Stats()
	resp := dto.HealthResponse{
		Status:     dto.HealthStatusHealthy,
		Stops:      stops,
		BusLines:   busLines,
		Routing:    h.catalogueUC.RoutingSettings() != nil,
		Generation: h.catalogueUC.Generation(),
	}
	if h.workers != nil {
		resp.Workers = h.workers.Statuses()
		if !h.workers.Healthy() {
			resp.Status = dto.HealthStatusDegraded
		}
	}
	return c.JSON(resp)
}
