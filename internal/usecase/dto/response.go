package dto

import (
	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/worker"
)

// Типы элементов пути
const (
	RouteItemWait = "Wait"
	RouteItemBus  = "Bus"
)

// BusResponse - статистика маршрута
type BusResponse struct {
	Name            string  `json:"name"`
	Topology        string  `json:"topology"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
	RouteLength     int     `json:"route_length"` // meters
	GeoLength       float64 `json:"geo_length"`   // meters
	Curvature       float64 `json:"curvature"`
}

// NewBusResponse конвертирует domain.RouteInfo
func NewBusResponse(info *domain.RouteInfo) BusResponse {
	return BusResponse{
		Name:            info.Name,
		Topology:        info.Topology.String(),
		StopCount:       info.StopCount,
		UniqueStopCount: info.UniqueStopCount,
		RouteLength:     info.RouteLength,
		GeoLength:       info.GeoLength,
		Curvature:       info.Curvature,
	}
}

// StopResponse - остановка и маршруты через нее
type StopResponse struct {
	Name      string   `json:"name"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Buses     []string `json:"buses"`
}

// StopBusesResponse - маршруты через остановку
type StopBusesResponse struct {
	Stop  string   `json:"stop"`
	Buses []string `json:"buses"`
}

// RouteItem - шаг пути: ожидание на остановке или поездка
type RouteItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"` // minutes
}

// NewRouteItems раскладывает каждый сегмент на ожидание и поездку
func NewRouteItems(it *domain.Itinerary) []RouteItem {
	items := make([]RouteItem, 0, 2*len(it.Segments))
	for _, seg := range it.Segments {
		items = append(items,
			RouteItem{Type: RouteItemWait, StopName: seg.FromStop, Time: seg.WaitTime},
			RouteItem{Type: RouteItemBus, Bus: seg.Bus, SpanCount: seg.SpanCount, Time: seg.RideTime},
		)
	}
	return items
}

// RouteResponse - ответ на запрос пути
type RouteResponse struct {
	From      string           `json:"from"`
	To        string           `json:"to"`
	Found     bool             `json:"found"`
	TotalTime float64          `json:"total_time"` // minutes
	Items     []RouteItem      `json:"items"`
	Segments  []domain.Segment `json:"segments"`
}

// NewRouteResponse собирает ответ. it == nil - пути нет
func NewRouteResponse(from, to string, it *domain.Itinerary) RouteResponse {
	if it == nil {
		return RouteResponse{From: from, To: to, Items: []RouteItem{}, Segments: []domain.Segment{}}
	}
	return RouteResponse{
		From:      from,
		To:        to,
		Found:     true,
		TotalTime: it.TotalTime,
		Items:     NewRouteItems(it),
		Segments:  it.Segments,
	}
}

// RoutingSettingsResponse - текущие параметры графа
type RoutingSettingsResponse struct {
	Configured  bool    `json:"configured"`
	BusWaitTime int     `json:"bus_wait_time,omitempty"`
	BusVelocity float64 `json:"bus_velocity,omitempty"`
	Generation  uint64  `json:"generation"`
}

// Состояния сервиса в /health
const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
)

// HealthResponse - состояние сервиса
type HealthResponse struct {
	Status     string          `json:"status"`
	Stops      int             `json:"stops"`
	BusLines   int             `json:"bus_lines"`
	Routing    bool            `json:"routing"`
	Generation uint64          `json:"generation"`
	Workers    []worker.Status `json:"workers,omitempty"`
}
