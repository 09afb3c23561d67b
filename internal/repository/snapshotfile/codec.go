package snapshotfile

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/proto"

	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/repository/snapshotfile/pb"
)

// formatVersion пишется в Snapshot.version и проверяется при чтении
const formatVersion = 1

var marshalOptions = proto.MarshalOptions{Deterministic: true}

// Marshal кодирует снимок в pb.Snapshot. Остановки маршрутов и концы
// расстояний заменяются индексами в списке остановок.
func Marshal(snap *domain.Snapshot) ([]byte, error) {
	msg, err := toProto(snap)
	if err != nil {
		return nil, err
	}
	return marshalOptions.Marshal(msg)
}

// Unmarshal декодирует снимок. Неизвестные поля пропускаются.
func Unmarshal(b []byte) (*domain.Snapshot, error) {
	var msg pb.Snapshot
	if err := proto.Unmarshal(b, &msg); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if msg.GetVersion() != formatVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", msg.GetVersion())
	}
	return fromProto(&msg)
}

func toProto(snap *domain.Snapshot) (*pb.Snapshot, error) {
	msg := &pb.Snapshot{
		Stops:     make([]*pb.Stop, len(snap.Stops)),
		BusLines:  make([]*pb.BusLine, len(snap.BusLines)),
		Distances: make([]*pb.Distance, len(snap.Distances)),
		Version:   formatVersion,
	}

	index := make(map[string]uint32, len(snap.Stops))
	for i, s := range snap.Stops {
		index[s.Name] = uint32(i)
		msg.Stops[i] = &pb.Stop{Name: s.Name, Lat: s.Coordinates.Lat, Lon: s.Coordinates.Lon}
	}
	lookup := func(name string) (uint32, error) {
		i, ok := index[name]
		if !ok {
			return 0, fmt.Errorf("stop %q is not part of the snapshot", name)
		}
		return i, nil
	}

	for i, bus := range snap.BusLines {
		stops := make([]uint32, len(bus.Stops))
		for j, name := range bus.Stops {
			id, err := lookup(name)
			if err != nil {
				return nil, fmt.Errorf("bus %q: %w", bus.Name, err)
			}
			stops[j] = id
		}
		msg.BusLines[i] = &pb.BusLine{Name: bus.Name, Roundtrip: bus.Roundtrip, Stops: stops}
	}

	for i, d := range snap.Distances {
		from, err := lookup(d.From)
		if err != nil {
			return nil, fmt.Errorf("distance: %w", err)
		}
		to, err := lookup(d.To)
		if err != nil {
			return nil, fmt.Errorf("distance: %w", err)
		}
		if d.Meters < 0 {
			return nil, fmt.Errorf("distance %q -> %q is negative", d.From, d.To)
		}
		msg.Distances[i] = &pb.Distance{From: from, To: to, Meters: uint64(d.Meters)}
	}

	if snap.Routing != nil {
		if snap.Routing.BusWaitTime < 0 {
			return nil, fmt.Errorf("bus wait time %d is negative", snap.Routing.BusWaitTime)
		}
		msg.Routing = &pb.RoutingSettings{
			BusWaitTime: uint32(snap.Routing.BusWaitTime),
			BusVelocity: snap.Routing.BusVelocity,
		}
	}
	return msg, nil
}

func fromProto(msg *pb.Snapshot) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}

	stops := msg.GetStops()
	stopName := func(i uint32) (string, error) {
		if int(i) >= len(stops) {
			return "", fmt.Errorf("stop index %d out of range", i)
		}
		return stops[i].GetName(), nil
	}

	for i, s := range stops {
		snap.Stops = append(snap.Stops, domain.Stop{
			ID:          domain.StopID(i),
			Name:        s.GetName(),
			Coordinates: domain.Coordinates{Lat: s.GetLat(), Lon: s.GetLon()},
		})
	}

	for i, b := range msg.GetBusLines() {
		bus := domain.SnapshotBusLine{Name: b.GetName(), Roundtrip: b.GetRoundtrip()}
		for _, id := range b.GetStops() {
			name, err := stopName(id)
			if err != nil {
				return nil, fmt.Errorf("bus line #%d: %w", i, err)
			}
			bus.Stops = append(bus.Stops, name)
		}
		snap.BusLines = append(snap.BusLines, bus)
	}

	for i, d := range msg.GetDistances() {
		if d.GetMeters() > math.MaxInt32 {
			return nil, fmt.Errorf("distance #%d: %d is too large", i, d.GetMeters())
		}
		from, err := stopName(d.GetFrom())
		if err != nil {
			return nil, fmt.Errorf("distance #%d: %w", i, err)
		}
		to, err := stopName(d.GetTo())
		if err != nil {
			return nil, fmt.Errorf("distance #%d: %w", i, err)
		}
		snap.Distances = append(snap.Distances, domain.DistanceEntry{From: from, To: to, Meters: int(d.GetMeters())})
	}

	if r := msg.GetRouting(); r != nil {
		snap.Routing = &domain.RoutingSettings{
			BusWaitTime: int(r.GetBusWaitTime()),
			BusVelocity: r.GetBusVelocity(),
		}
	}
	return snap, nil
}
