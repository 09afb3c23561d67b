package domain

// RouteInfo - статистика маршрута, вычисляется по запросу
type RouteInfo struct {
	Name            string   `json:"name"`
	Topology        Topology `json:"topology"`
	StopCount       int      `json:"stop_count"`
	UniqueStopCount int      `json:"unique_stop_count"`
	RouteLength     int      `json:"route_length"`
	GeoLength       float64  `json:"geo_length"`
	Curvature       float64  `json:"curvature"`
}
