package domain

// Segment - поездка на одном автобусе без пересадок
type Segment struct {
	Bus       string `json:"bus"`
	FromStop  string `json:"from_stop"`
	ToStop    string `json:"to_stop"`
	SpanCount int    `json:"span_count"`
	// WaitTime и RideTime - вклад сегмента, в минутах
	WaitTime float64 `json:"wait_time"`
	RideTime float64 `json:"ride_time"`
	// ElapsedTime - время от начала поездки до выхода на ToStop
	ElapsedTime float64 `json:"elapsed_time"`
}

// Itinerary - ответ на запрос маршрута
type Itinerary struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Segments  []Segment `json:"segments"`
	TotalTime float64   `json:"total_time"`
}
