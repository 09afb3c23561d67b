package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/domain/repository"
	"github.com/transport-catalogue/internal/pkg/errors"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, cacheError("get", key, err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return cacheError("set", key, err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return cacheError("delete", key, err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, cacheError("exists", key, err)
	}

	return val > 0, nil
}

// RouteInfoKey - ключ метрик маршрута. Поколение снимка в ключе отсекает
// записи, посчитанные по предыдущей версии сети.
func RouteInfoKey(generation uint64, bus string) string {
	return fmt.Sprintf("catalogue:%d:bus:%s", generation, bus)
}

// ItineraryKey - ключ найденного пути
func ItineraryKey(generation uint64, from, to string) string {
	return fmt.Sprintf("catalogue:%d:route:%s:%s", generation, from, to)
}

func (r *cacheRepository) GetRouteInfo(ctx context.Context, generation uint64, bus string) (*domain.RouteInfo, error) {
	var info domain.RouteInfo
	ok, err := r.getJSON(ctx, RouteInfoKey(generation, bus), &info)
	if err != nil || !ok {
		return nil, err
	}
	return &info, nil
}

func (r *cacheRepository) SetRouteInfo(ctx context.Context, generation uint64, info *domain.RouteInfo, ttl time.Duration) error {
	return r.setJSON(ctx, RouteInfoKey(generation, info.Name), info, ttl)
}

func (r *cacheRepository) GetItinerary(ctx context.Context, generation uint64, from, to string) (*domain.Itinerary, error) {
	var it domain.Itinerary
	ok, err := r.getJSON(ctx, ItineraryKey(generation, from, to), &it)
	if err != nil || !ok {
		return nil, err
	}
	return &it, nil
}

func (r *cacheRepository) SetItinerary(ctx context.Context, generation uint64, itinerary *domain.Itinerary, ttl time.Duration) error {
	return r.setJSON(ctx, ItineraryKey(generation, itinerary.From, itinerary.To), itinerary, ttl)
}

func (r *cacheRepository) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false, cacheError("unmarshal", key, err)
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return cacheError("marshal", key, err)
	}
	return r.Set(ctx, key, data, ttl)
}

// cacheError оборачивает ошибку Redis или кодирования в ErrCacheError
func cacheError(op, key string, err error) error {
	return fmt.Errorf("cache %s %s: %w", op, key, errors.ErrCacheError.WithDetails(map[string]interface{}{
		"op":    op,
		"key":   key,
		"error": err.Error(),
	}))
}
