package domain

// StopID - плотный индекс остановки в каталоге (порядок добавления).
// Он же является номером вершины транспортного графа.
type StopID int

// Coordinates - географические координаты в градусах
type Coordinates struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// Stop - остановка. После создания не меняется
type Stop struct {
	ID          StopID      `json:"-"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
}

// Topology - тип маршрута
type Topology int

const (
	// Linear - маршрут "туда и обратно"
	Linear Topology = iota
	// Circular - кольцевой маршрут, первая остановка совпадает с последней
	Circular
)

func (t Topology) String() string {
	switch t {
	case Circular:
		return "circular"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

// IsRoundtrip - в исходных данных кольцевой маршрут помечается is_roundtrip=true
func (t Topology) IsRoundtrip() bool {
	return t == Circular
}

// TopologyFromRoundtrip переводит флаг is_roundtrip в Topology
func TopologyFromRoundtrip(roundtrip bool) Topology {
	if roundtrip {
		return Circular
	}
	return Linear
}

// BusLine - автобусный маршрут. Stops хранит остановки ровно в том виде,
// в котором они заданы: обратный ход линейного маршрута не разворачивается.
type BusLine struct {
	Name     string   `json:"name"`
	Topology Topology `json:"topology"`
	Stops    []StopID `json:"stops"`
}

// Traversal возвращает полный проход маршрута.
// Для Circular - остановки как есть, для Linear - вперед и обратно без повтора конечной.
func (b BusLine) Traversal() []StopID {
	if b.Topology == Circular || len(b.Stops) == 0 {
		out := make([]StopID, len(b.Stops))
		copy(out, b.Stops)
		return out
	}

	n := len(b.Stops)
	out := make([]StopID, 0, 2*n-1)
	out = append(out, b.Stops...)
	for i := n - 2; i >= 0; i-- {
		out = append(out, b.Stops[i])
	}
	return out
}

// DistanceEntry - дорожное расстояние между остановками в метрах (направленное)
type DistanceEntry struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Meters int    `json:"meters"`
}
