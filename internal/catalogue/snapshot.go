package catalogue

import (
	"fmt"

	"github.com/transport-catalogue/internal/domain"
)

// Snapshot выгружает состояние каталога для внешнего сериализатора
func (c *Catalogue) Snapshot() *domain.Snapshot {
	snap := &domain.Snapshot{
		Stops:     c.Stops(),
		BusLines:  make([]domain.SnapshotBusLine, 0, len(c.buses)),
		Distances: c.Distances(),
	}

	for _, bus := range c.buses {
		names := make([]string, len(bus.Stops))
		for i, id := range bus.Stops {
			names[i] = c.stops[id].Name
		}
		snap.BusLines = append(snap.BusLines, domain.SnapshotBusLine{
			Name:      bus.Name,
			Roundtrip: bus.Topology.IsRoundtrip(),
			Stops:     names,
		})
	}
	return snap
}

// FromSnapshot восстанавливает каталог. Порядок остановок сохраняется,
// поэтому индексы остановок совпадают с исходным каталогом.
func FromSnapshot(snap *domain.Snapshot) (*Catalogue, error) {
	c := New()
	if snap == nil {
		return c, nil
	}

	for _, stop := range snap.Stops {
		if _, err := c.AddStop(stop.Name, stop.Coordinates); err != nil {
			return nil, fmt.Errorf("restore stop %q: %w", stop.Name, err)
		}
	}
	for _, d := range snap.Distances {
		if err := c.SetDistance(d.From, d.To, d.Meters); err != nil {
			return nil, fmt.Errorf("restore distance %q -> %q: %w", d.From, d.To, err)
		}
	}
	for _, bus := range snap.BusLines {
		if err := c.AddBusLine(bus.Name, domain.TopologyFromRoundtrip(bus.Roundtrip), bus.Stops); err != nil {
			return nil, fmt.Errorf("restore bus %q: %w", bus.Name, err)
		}
	}
	return c, nil
}
