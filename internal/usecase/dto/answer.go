package dto

// Ответы на stat_requests. Каждый ответ содержит request_id исходного запроса.

const (
	ErrorMessageNotFound     = "not found"
	ErrorMessageNotSupported = "not supported"
)

type BusAnswer struct {
	RequestID       int     `json:"request_id"`
	Curvature       float64 `json:"curvature"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

type StopAnswer struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

type RouteAnswer struct {
	RequestID int         `json:"request_id"`
	Items     []RouteItem `json:"items"`
	TotalTime float64     `json:"total_time"`
}

type ErrorAnswer struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}
