package dto

import (
	"encoding/json"

	"github.com/transport-catalogue/internal/domain"
)

// Типы запросов входного документа
const (
	RequestTypeStop  = "Stop"
	RequestTypeBus   = "Bus"
	RequestTypeRoute = "Route"
	RequestTypeMap   = "Map"
)

// Document - входной JSON документ make_base / process_requests.
// render_settings принимается для совместимости формата, но не используется.
type Document struct {
	BaseRequests          []BaseRequest           `json:"base_requests" validate:"dive"`
	StatRequests          []StatRequest           `json:"stat_requests" validate:"dive"`
	RoutingSettings       *domain.RoutingSettings `json:"routing_settings,omitempty"`
	SerializationSettings *SerializationSettings  `json:"serialization_settings,omitempty"`
	RenderSettings        json.RawMessage         `json:"render_settings,omitempty"`
}

// BaseRequest - описание остановки (type=Stop) или маршрута (type=Bus)
type BaseRequest struct {
	Type string `json:"type" validate:"required,oneof=Stop Bus"`
	Name string `json:"name" validate:"required"`

	// Stop
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	RoadDistances map[string]int `json:"road_distances,omitempty"`

	// Bus
	Stops       []string `json:"stops,omitempty"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

// StatRequest - запрос к базе
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type" validate:"required,oneof=Bus Stop Route Map"`
	Name string `json:"name,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// SerializationSettings - куда сохраняется база
type SerializationSettings struct {
	File string `json:"file" validate:"required"`
}

// RouteRequest - запрос пути через HTTP
type RouteRequest struct {
	From string `query:"from" validate:"required"`
	To   string `query:"to" validate:"required"`
}

// RoutingSettingsRequest - новые параметры графа
type RoutingSettingsRequest struct {
	BusWaitTime int     `json:"bus_wait_time" validate:"gte=0,lte=1000"`
	BusVelocity float64 `json:"bus_velocity" validate:"gt=0,lte=1000"`
}

// ToDomain переводит запрос в domain.RoutingSettings
func (r RoutingSettingsRequest) ToDomain() domain.RoutingSettings {
	return domain.RoutingSettings{BusWaitTime: r.BusWaitTime, BusVelocity: r.BusVelocity}
}
