package domain

// SnapshotBusLine - маршрут в снимке, остановки по именам
type SnapshotBusLine struct {
	Name      string   `json:"name" db:"name"`
	Roundtrip bool     `json:"is_roundtrip" db:"is_roundtrip"`
	Stops     []string `json:"stops" db:"stops"`
}

// Snapshot - все состояние каталога, достаточное для его восстановления
// без повторного разбора исходных данных
type Snapshot struct {
	Stops     []Stop            `json:"stops"`
	BusLines  []SnapshotBusLine `json:"bus_lines"`
	Distances []DistanceEntry   `json:"distances"`
	Routing   *RoutingSettings  `json:"routing,omitempty"`
}
