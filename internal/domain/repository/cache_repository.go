package repository

import (
	"context"
	"time"

	"github.com/transport-catalogue/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу. Промах кеша - (nil, nil)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetRouteInfo получает метрики маршрута для поколения снимка сети
	GetRouteInfo(ctx context.Context, generation uint64, bus string) (*domain.RouteInfo, error)

	// SetRouteInfo сохраняет метрики маршрута
	SetRouteInfo(ctx context.Context, generation uint64, info *domain.RouteInfo, ttl time.Duration) error

	// GetItinerary получает найденный путь from -> to
	GetItinerary(ctx context.Context, generation uint64, from, to string) (*domain.Itinerary, error)

	// SetItinerary сохраняет найденный путь
	SetItinerary(ctx context.Context, generation uint64, itinerary *domain.Itinerary, ttl time.Duration) error
}
