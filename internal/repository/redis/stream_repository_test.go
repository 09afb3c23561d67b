package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/domain"
	redisRepo "github.com/transport-catalogue/internal/repository/redis"
)

const testStream = "test:stream:catalogue:updated"

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testStream)
	t.Cleanup(func() {
		client.Del(context.Background(), testStream)
		_ = client.Close()
	})

	return client
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	err := repo.CreateConsumerGroup(ctx, testStream, "test-group")
	require.NoError(t, err)

	groups, err := client.XInfoGroups(ctx, testStream).Result()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)

	// Creating again should not error (BUSYGROUP handled)
	err = repo.CreateConsumerGroup(ctx, testStream, "test-group")
	assert.NoError(t, err)
}

func TestStreamRepository_PublishAndConsumeBatch(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-batch-group"))

	// пустой стрим
	messages, err := repo.ConsumeBatch(ctx, testStream, "test-batch-group", "consumer-1", 10)
	require.NoError(t, err)
	assert.Empty(t, messages)

	event := domain.CatalogueUpdatedEvent{
		EventID:     uuid.New(),
		Source:      domain.SnapshotSourceFile,
		Stops:       10,
		BusLines:    3,
		PublishedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))

	messages, err = repo.ConsumeBatch(ctx, testStream, "test-batch-group", "consumer-1", 1)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	var received domain.CatalogueUpdatedEvent
	require.NoError(t, json.Unmarshal([]byte(messages[0].Data), &received))
	assert.Equal(t, event.EventID, received.EventID)
	assert.Equal(t, domain.SnapshotSourceFile, received.Source)
	assert.Equal(t, 10, received.Stops)
	assert.True(t, event.PublishedAt.Equal(received.PublishedAt))

	messages, err = repo.ConsumeBatch(ctx, testStream, "test-batch-group", "consumer-1", 10)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestStreamRepository_AckMessages(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	group := "test-ack-group"

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, group))
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.PublishToStream(ctx, testStream, map[string]int{"n": i}))
	}

	messages, err := repo.ConsumeBatch(ctx, testStream, group, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	pending, err := client.XPending(ctx, testStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(3), pending.Count)

	require.NoError(t, repo.AckMessage(ctx, testStream, group, messages[0].ID))
	require.NoError(t, repo.AckMessages(ctx, testStream, group, []string{messages[1].ID, messages[2].ID}))
	require.NoError(t, repo.AckMessages(ctx, testStream, group, nil))

	pending, err = client.XPending(ctx, testStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

func TestStreamRepository_MessageWithoutData(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-raw-group"))
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: testStream,
		Values: map[string]interface{}{"other": "x"},
	}).Err())

	messages, err := repo.ConsumeBatch(ctx, testStream, "test-raw-group", "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.NotEmpty(t, messages[0].ID)
	assert.Empty(t, messages[0].Data)
}
