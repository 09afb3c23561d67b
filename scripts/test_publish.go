//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CatalogueUpdatedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Source      string    `json:"source"`
	Stops       int       `json:"stops"`
	BusLines    int       `json:"bus_lines"`
	PublishedAt time.Time `json:"published_at"`
}

const stream = "stream:catalogue:updated"

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	source := flag.String("source", "file", "snapshot source: file or postgres")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := CatalogueUpdatedEvent{
		EventID:     uuid.New(),
		Source:      *source,
		PublishedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", stream)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Event ID: %s\n", event.EventID)
	fmt.Printf("   Source: %s\n", event.Source)

	// группы воркеров и число непрочитанных событий
	groups, err := client.XInfoGroups(ctx, stream).Result()
	if err != nil {
		log.Printf("Failed to read consumer groups: %v", err)
		return
	}
	for _, g := range groups {
		fmt.Printf("   Group %s: consumers=%d pending=%d\n", g.Name, g.Consumers, g.Pending)
	}
}
