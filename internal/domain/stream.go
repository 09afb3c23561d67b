package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamCatalogueUpdated = "stream:catalogue:updated"
)

// Источники снимка каталога
const (
	SnapshotSourceFile     = "file"
	SnapshotSourcePostgres = "postgres"
)

// CatalogueUpdatedEvent - публикуется после сохранения новой базы (make_base)
type CatalogueUpdatedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Source      string    `json:"source"`
	Stops       int       `json:"stops"`
	BusLines    int       `json:"bus_lines"`
	PublishedAt time.Time `json:"published_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
