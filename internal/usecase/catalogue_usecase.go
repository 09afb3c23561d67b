package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/catalogue"
	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/domain/repository"
	"github.com/transport-catalogue/internal/pkg/errors"
	"github.com/transport-catalogue/internal/pkg/metrics"
	"github.com/transport-catalogue/internal/routeinfo"
	"github.com/transport-catalogue/internal/router"
)

// network - неизменяемый снимок сети: каталог, параметры графа и роутер.
// Читатели берут указатель один раз на запрос и дальше работают с ним,
// поэтому замена снимка не влияет на запросы в процессе.
type network struct {
	catalogue  *catalogue.Catalogue
	settings   *domain.RoutingSettings
	router     *router.Router
	generation uint64
}

// CatalogueConfig - параметры use case
type CatalogueConfig struct {
	RouteInfoTTL  time.Duration
	ItineraryTTL  time.Duration
	SkipSelfLoops bool
}

type CatalogueUseCase struct {
	cacheRepo repository.CacheRepository
	cfg       CatalogueConfig
	logger    *zap.Logger

	current atomic.Pointer[network]
	// writeMu упорядочивает замены снимка
	writeMu sync.Mutex
}

// NewCatalogueUseCase создает use case с пустым каталогом без маршрутизации.
// cacheRepo может быть nil, тогда кеш не используется.
func NewCatalogueUseCase(
	cacheRepo repository.CacheRepository,
	cfg CatalogueConfig,
	logger *zap.Logger,
) *CatalogueUseCase {
	uc := &CatalogueUseCase{
		cacheRepo: cacheRepo,
		cfg:       cfg,
		logger:    logger,
	}
	uc.current.Store(&network{catalogue: catalogue.New(), generation: nextGeneration(0)})
	return uc
}

// nextGeneration возвращает монотонно растущий номер снимка. Основа - время,
// чтобы ключи кеша не пересекались между перезапусками процесса.
func nextGeneration(prev uint64) uint64 {
	next := uint64(time.Now().UnixNano())
	if next <= prev {
		next = prev + 1
	}
	return next
}

// ReplaceCatalogue делает cat текущим каталогом. Если settings != nil, строится граф.
// После вызова cat нельзя изменять.
func (uc *CatalogueUseCase) ReplaceCatalogue(ctx context.Context, cat *catalogue.Catalogue, settings *domain.RoutingSettings) error {
	if cat == nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"catalogue": "nil"})
	}

	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	return uc.swap(ctx, cat, settings)
}

// UpdateRoutingSettings перестраивает граф текущего каталога с новыми параметрами
func (uc *CatalogueUseCase) UpdateRoutingSettings(ctx context.Context, settings domain.RoutingSettings) error {
	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	return uc.swap(ctx, uc.current.Load().catalogue, &settings)
}

// LoadSnapshot загружает каталог из репозитория и делает его текущим.
// Параметры графа берутся из снимка, при их отсутствии - fallback.
func (uc *CatalogueUseCase) LoadSnapshot(
	ctx context.Context,
	repo repository.SnapshotRepository,
	fallback *domain.RoutingSettings,
) error {
	snap, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	cat, err := catalogue.FromSnapshot(snap)
	if err != nil {
		return fmt.Errorf("restore catalogue: %w", err)
	}

	settings := snap.Routing
	if settings == nil {
		settings = fallback
	}
	return uc.ReplaceCatalogue(ctx, cat, settings)
}

func (uc *CatalogueUseCase) swap(ctx context.Context, cat *catalogue.Catalogue, settings *domain.RoutingSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	next := &network{catalogue: cat}
	if settings != nil {
		s := *settings
		r, err := uc.buildRouter(cat, s)
		if err != nil {
			return err
		}
		next.settings = &s
		next.router = r
	}

	prev := uc.current.Load()
	next.generation = nextGeneration(prev.generation)
	uc.current.Store(next)
	metrics.SnapshotSwaps.Inc()

	uc.logger.Info("Network snapshot swapped",
		zap.Uint64("generation", next.generation),
		zap.Int("stops", cat.StopCount()),
		zap.Int("bus_lines", len(cat.BusLines())),
		zap.Bool("routing", next.router != nil))
	return nil
}

func (uc *CatalogueUseCase) buildRouter(cat *catalogue.Catalogue, settings domain.RoutingSettings) (*router.Router, error) {
	start := time.Now()
	g, err := router.BuildGraph(cat, settings, router.WithSkipSelfLoops(uc.cfg.SkipSelfLoops))
	if err != nil {
		uc.logger.Error("Failed to build transit graph", zap.Error(err))
		return nil, err
	}
	elapsed := time.Since(start)

	metrics.GraphBuildDuration.Observe(elapsed.Seconds())
	metrics.GraphEdges.Set(float64(g.EdgeCount()))

	uc.logger.Info("Transit graph built",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("bus_wait_time", settings.BusWaitTime),
		zap.Float64("bus_velocity", settings.BusVelocity),
		zap.Duration("took", elapsed))
	return router.NewRouter(g), nil
}

// GetRouteInfo возвращает статистику маршрута
func (uc *CatalogueUseCase) GetRouteInfo(ctx context.Context, bus string) (*domain.RouteInfo, error) {
	net := uc.current.Load()

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetRouteInfo(ctx, net.generation, bus)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues("route_info", "error").Inc()
			uc.logger.Warn("Route info cache lookup failed", zap.String("bus", bus), zap.Error(err))
		case cached != nil:
			metrics.CacheLookups.WithLabelValues("route_info", "hit").Inc()
			return cached, nil
		default:
			metrics.CacheLookups.WithLabelValues("route_info", "miss").Inc()
		}
	}

	info, err := routeinfo.Compute(net.catalogue, bus)
	if err != nil {
		if !stderrors.Is(err, errors.ErrNotFound) {
			uc.logger.Warn("Failed to compute route info", zap.String("bus", bus), zap.Error(err))
		}
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetRouteInfo(ctx, net.generation, info, uc.cfg.RouteInfoTTL); err != nil {
			uc.logger.Warn("Failed to cache route info", zap.String("bus", bus), zap.Error(err))
		}
	}
	return info, nil
}

// GetStop возвращает остановку по имени
func (uc *CatalogueUseCase) GetStop(ctx context.Context, name string) (domain.Stop, error) {
	return uc.current.Load().catalogue.Stop(name)
}

// GetBusesOnStop возвращает отсортированные имена маршрутов через остановку
func (uc *CatalogueUseCase) GetBusesOnStop(ctx context.Context, name string) ([]string, error) {
	return uc.current.Load().catalogue.BusesThroughStop(name)
}

// BuildRoute ищет самый быстрый путь. found == false - пути нет.
// Без параметров маршрутизации - ErrRoutingNotConfigured.
func (uc *CatalogueUseCase) BuildRoute(ctx context.Context, from, to string) (*domain.Itinerary, bool, error) {
	net := uc.current.Load()
	if net.router == nil {
		return nil, false, errors.ErrRoutingNotConfigured
	}

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetItinerary(ctx, net.generation, from, to)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues("itinerary", "error").Inc()
			uc.logger.Warn("Itinerary cache lookup failed",
				zap.String("from", from), zap.String("to", to), zap.Error(err))
		case cached != nil:
			metrics.CacheLookups.WithLabelValues("itinerary", "hit").Inc()
			metrics.RouteQueries.WithLabelValues(outcomeOf(cached, true)).Inc()
			return cached, true, nil
		default:
			metrics.CacheLookups.WithLabelValues("itinerary", "miss").Inc()
		}
	}

	start := time.Now()
	it, found, err := net.router.Query(from, to)
	metrics.RouteQueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RouteQueries.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, false, err
	}
	metrics.RouteQueries.WithLabelValues(outcomeOf(&it, found)).Inc()
	if !found {
		return nil, false, nil
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetItinerary(ctx, net.generation, &it, uc.cfg.ItineraryTTL); err != nil {
			uc.logger.Warn("Failed to cache itinerary",
				zap.String("from", from), zap.String("to", to), zap.Error(err))
		}
	}
	return &it, true, nil
}

func outcomeOf(it *domain.Itinerary, found bool) string {
	switch {
	case !found:
		return metrics.OutcomeNoRoute
	case len(it.Segments) == 0:
		return metrics.OutcomeSameStop
	default:
		return metrics.OutcomeFound
	}
}

// RoutingSettings - текущие параметры графа, nil если маршрутизация не настроена
func (uc *CatalogueUseCase) RoutingSettings() *domain.RoutingSettings {
	s := uc.current.Load().settings
	if s == nil {
		return nil
	}
	out := *s
	return &out
}

// Generation - номер текущего снимка сети
func (uc *CatalogueUseCase) Generation() uint64 {
	return uc.current.Load().generation
}

// Stats - размер текущего каталога
func (uc *CatalogueUseCase) Stats() (stops, busLines int) {
	cat := uc.current.Load().catalogue
	return cat.StopCount(), len(cat.BusLines())
}

// Snapshot выгружает текущий каталог вместе с параметрами графа
func (uc *CatalogueUseCase) Snapshot() *domain.Snapshot {
	net := uc.current.Load()
	snap := net.catalogue.Snapshot()
	if net.settings != nil {
		s := *net.settings
		snap.Routing = &s
	}
	return snap
}
