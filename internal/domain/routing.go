package domain

// kmhToMetersPerMinute - перевод км/ч в м/мин
const kmhToMetersPerMinute = 1000.0 / 60.0

// RoutingSettings - параметры построения графа
type RoutingSettings struct {
	// BusWaitTime - время ожидания автобуса на остановке, минуты
	BusWaitTime int `json:"bus_wait_time" validate:"gte=0,lte=1000"`
	// BusVelocity - скорость автобуса, км/ч
	BusVelocity float64 `json:"bus_velocity" validate:"gt=0,lte=1000"`
}

// MetersPerMinute - скорость в единицах, согласованных с расстояниями каталога
func (s RoutingSettings) MetersPerMinute() float64 {
	return s.BusVelocity * kmhToMetersPerMinute
}
