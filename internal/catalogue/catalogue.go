// Package catalogue хранит транспортную сеть: остановки, маршруты и дорожные расстояния.
//
// Каталог заполняется один раз при загрузке данных и дальше используется только на чтение.
// Внутренней синхронизации нет: после загрузки каталог можно разделять между горутинами,
// пока никто его не меняет.
package catalogue

import (
	"sort"

	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/pkg/errors"
	"github.com/transport-catalogue/internal/pkg/utils"
)

type stopPair struct {
	from, to domain.StopID
}

// Catalogue - хранилище транспортной сети
type Catalogue struct {
	stops      []domain.Stop
	stopByName map[string]domain.StopID

	buses     []domain.BusLine
	busByName map[string]int

	// busesByStop[id] - множество маршрутов через остановку
	busesByStop []map[string]struct{}

	distances map[stopPair]int
}

// New создает пустой каталог
func New() *Catalogue {
	return &Catalogue{
		stopByName: make(map[string]domain.StopID),
		busByName:  make(map[string]int),
		distances:  make(map[stopPair]int),
	}
}

// AddStop добавляет остановку. Повторное имя - ErrDuplicateStop
func (c *Catalogue) AddStop(name string, coords domain.Coordinates) (domain.StopID, error) {
	if _, ok := c.stopByName[name]; ok {
		return 0, errors.ErrDuplicateStop.WithDetails(map[string]interface{}{"stop": name})
	}
	if !utils.ValidateCoordinates(coords.Lat, coords.Lon) {
		return 0, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"stop":      name,
			"latitude":  coords.Lat,
			"longitude": coords.Lon,
		})
	}

	id := domain.StopID(len(c.stops))
	c.stops = append(c.stops, domain.Stop{ID: id, Name: name, Coordinates: coords})
	c.stopByName[name] = id
	c.busesByStop = append(c.busesByStop, make(map[string]struct{}))
	return id, nil
}

// AddBusLine добавляет маршрут, разрешая имена остановок.
// Для Circular первая и последняя остановка должны совпадать.
func (c *Catalogue) AddBusLine(name string, topology domain.Topology, stopNames []string) error {
	if _, ok := c.busByName[name]; ok {
		return errors.ErrDuplicateBus.WithDetails(map[string]interface{}{"bus": name})
	}
	if len(stopNames) == 0 {
		return errors.ErrInvalidTopology.WithDetails(map[string]interface{}{
			"bus":    name,
			"reason": "bus line has no stops",
		})
	}
	if topology == domain.Circular && stopNames[0] != stopNames[len(stopNames)-1] {
		return errors.ErrInvalidTopology.WithDetails(map[string]interface{}{
			"bus":    name,
			"reason": "first and last stops of a circular line must be the same",
			"first":  stopNames[0],
			"last":   stopNames[len(stopNames)-1],
		})
	}

	ids := make([]domain.StopID, len(stopNames))
	for i, stopName := range stopNames {
		id, ok := c.stopByName[stopName]
		if !ok {
			return errors.ErrUnknownStop.WithDetails(map[string]interface{}{
				"bus":  name,
				"stop": stopName,
			})
		}
		ids[i] = id
	}

	c.busByName[name] = len(c.buses)
	c.buses = append(c.buses, domain.BusLine{Name: name, Topology: topology, Stops: ids})
	for _, id := range ids {
		c.busesByStop[id][name] = struct{}{}
	}
	return nil
}

// SetDistance записывает расстояние from -> to. Повторная запись перезаписывает значение
func (c *Catalogue) SetDistance(from, to string, meters int) error {
	fromID, ok := c.stopByName[from]
	if !ok {
		return errors.ErrUnknownStop.WithDetails(map[string]interface{}{"stop": from})
	}
	toID, ok := c.stopByName[to]
	if !ok {
		return errors.ErrUnknownStop.WithDetails(map[string]interface{}{"stop": to})
	}
	if meters < 0 {
		return errors.ErrInvalidDistance.WithDetails(map[string]interface{}{
			"from":   from,
			"to":     to,
			"meters": meters,
		})
	}

	c.distances[stopPair{fromID, toID}] = meters
	return nil
}

// Distance возвращает расстояние from -> to, при его отсутствии - to -> from
func (c *Catalogue) Distance(from, to string) (int, error) {
	fromID, ok := c.stopByName[from]
	if !ok {
		return 0, errors.ErrNotFound.WithDetails(map[string]interface{}{"stop": from})
	}
	toID, ok := c.stopByName[to]
	if !ok {
		return 0, errors.ErrNotFound.WithDetails(map[string]interface{}{"stop": to})
	}
	return c.DistanceBetween(fromID, toID)
}

// DistanceBetween - то же, что Distance, но по индексам остановок
func (c *Catalogue) DistanceBetween(from, to domain.StopID) (int, error) {
	if d, ok := c.distances[stopPair{from, to}]; ok {
		return d, nil
	}
	if d, ok := c.distances[stopPair{to, from}]; ok {
		return d, nil
	}
	return 0, errors.ErrDistanceUnknown.WithDetails(map[string]interface{}{
		"from": c.stopName(from),
		"to":   c.stopName(to),
	})
}

// Stop возвращает остановку по имени
func (c *Catalogue) Stop(name string) (domain.Stop, error) {
	id, ok := c.stopByName[name]
	if !ok {
		return domain.Stop{}, errors.ErrNotFound.WithDetails(map[string]interface{}{"stop": name})
	}
	return c.stops[id], nil
}

// StopByID возвращает остановку по индексу. Индекс должен быть выдан этим каталогом
func (c *Catalogue) StopByID(id domain.StopID) domain.Stop {
	return c.stops[id]
}

// BusLine возвращает маршрут по имени
func (c *Catalogue) BusLine(name string) (domain.BusLine, error) {
	idx, ok := c.busByName[name]
	if !ok {
		return domain.BusLine{}, errors.ErrNotFound.WithDetails(map[string]interface{}{"bus": name})
	}
	return c.buses[idx], nil
}

// BusesThroughStop возвращает отсортированные имена маршрутов через остановку.
// Для существующей остановки без маршрутов - пустой, но не nil срез.
func (c *Catalogue) BusesThroughStop(name string) ([]string, error) {
	id, ok := c.stopByName[name]
	if !ok {
		return nil, errors.ErrNotFound.WithDetails(map[string]interface{}{"stop": name})
	}

	buses := make([]string, 0, len(c.busesByStop[id]))
	for bus := range c.busesByStop[id] {
		buses = append(buses, bus)
	}
	sort.Strings(buses)
	return buses, nil
}

// Stops возвращает все остановки в порядке добавления
func (c *Catalogue) Stops() []domain.Stop {
	out := make([]domain.Stop, len(c.stops))
	copy(out, c.stops)
	return out
}

// StopCount - число остановок
func (c *Catalogue) StopCount() int {
	return len(c.stops)
}

// BusLines возвращает все маршруты в порядке добавления
func (c *Catalogue) BusLines() []domain.BusLine {
	out := make([]domain.BusLine, len(c.buses))
	copy(out, c.buses)
	return out
}

// Distances возвращает все записанные расстояния, упорядоченные по (from, to)
func (c *Catalogue) Distances() []domain.DistanceEntry {
	pairs := make([]stopPair, 0, len(c.distances))
	for p := range c.distances {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].from != pairs[j].from {
			return pairs[i].from < pairs[j].from
		}
		return pairs[i].to < pairs[j].to
	})

	out := make([]domain.DistanceEntry, len(pairs))
	for i, p := range pairs {
		out[i] = domain.DistanceEntry{
			From:   c.stops[p.from].Name,
			To:     c.stops[p.to].Name,
			Meters: c.distances[p],
		}
	}
	return out
}

func (c *Catalogue) stopName(id domain.StopID) string {
	if int(id) < 0 || int(id) >= len(c.stops) {
		return ""
	}
	return c.stops[id].Name
}
