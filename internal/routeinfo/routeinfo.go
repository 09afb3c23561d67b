// Package routeinfo считает статистику маршрута по данным каталога.
package routeinfo

import (
	"fmt"

	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/pkg/errors"
	"github.com/transport-catalogue/internal/pkg/utils"
)

// Source - то, что нужно от каталога для расчета статистики
type Source interface {
	BusLine(name string) (domain.BusLine, error)
	StopByID(id domain.StopID) domain.Stop
	DistanceBetween(from, to domain.StopID) (int, error)
}

// Compute считает статистику маршрута. Чистая функция от состояния каталога.
// Ошибки каталога (ErrNotFound, ErrDistanceUnknown) возвращаются как есть,
// нулевая геометрическая длина - ErrDegenerateRoute.
func Compute(src Source, name string) (*domain.RouteInfo, error) {
	bus, err := src.BusLine(name)
	if err != nil {
		return nil, err
	}

	traversal := bus.Traversal()
	info := &domain.RouteInfo{
		Name:            bus.Name,
		Topology:        bus.Topology,
		StopCount:       len(traversal),
		UniqueStopCount: uniqueStops(bus.Stops),
	}

	for i := 1; i < len(traversal); i++ {
		from, to := traversal[i-1], traversal[i]

		d, err := src.DistanceBetween(from, to)
		if err != nil {
			return nil, fmt.Errorf("route length of bus %q: %w", bus.Name, err)
		}
		info.RouteLength += d

		a, b := src.StopByID(from).Coordinates, src.StopByID(to).Coordinates
		info.GeoLength += utils.GreatCircleMeters(a.Lat, a.Lon, b.Lat, b.Lon)
	}

	if info.GeoLength == 0 {
		return nil, errors.ErrDegenerateRoute.WithDetails(map[string]interface{}{
			"bus":          bus.Name,
			"route_length": info.RouteLength,
		})
	}
	info.Curvature = float64(info.RouteLength) / info.GeoLength

	return info, nil
}

func uniqueStops(stops []domain.StopID) int {
	seen := make(map[domain.StopID]struct{}, len(stops))
	for _, id := range stops {
		seen[id] = struct{}{}
	}
	return len(seen)
}
