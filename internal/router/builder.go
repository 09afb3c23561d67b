package router

import (
	"fmt"

	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/pkg/errors"
	"github.com/transport-catalogue/internal/pkg/validator"
)

// GraphSource - данные каталога, нужные для построения графа
type GraphSource interface {
	Stops() []domain.Stop
	BusLines() []domain.BusLine
	DistanceBetween(from, to domain.StopID) (int, error)
}

type buildOptions struct {
	skipSelfLoops bool
}

// BuildOption настраивает построение графа
type BuildOption func(*buildOptions)

// WithSkipSelfLoops - не добавлять ребра, у которых посадка и высадка на одной остановке
// (соседние повторы остановки, полный круг кольцевого маршрута). По умолчанию включено.
func WithSkipSelfLoops(skip bool) BuildOption {
	return func(o *buildOptions) {
		o.skipSelfLoops = skip
	}
}

// BuildGraph строит граф по всем маршрутам каталога.
//
// Для каждого маршрута добавляется ребро на каждую пару (i, j), i < j, прохода вперед,
// для Linear - еще и на каждую пару обратного прохода. Число ребер растет как квадрат
// длины маршрута: для реальных сетей это приемлемо, очень длинные маршруты надо
// учитывать при оценке памяти.
func BuildGraph(src GraphSource, settings domain.RoutingSettings, opts ...BuildOption) (*Graph, error) {
	if err := validator.Validate(settings); err != nil {
		return nil, errors.ErrInvalidRoutingSettings.WithDetails(map[string]interface{}{
			"bus_wait_time": settings.BusWaitTime,
			"bus_velocity":  settings.BusVelocity,
			"error":         err.Error(),
		})
	}

	o := buildOptions{skipSelfLoops: true}
	for _, opt := range opts {
		opt(&o)
	}

	g := newGraph(src.Stops(), settings)
	b := &builder{
		src:      src,
		graph:    g,
		opts:     o,
		wait:     float64(settings.BusWaitTime),
		velocity: settings.MetersPerMinute(),
	}

	for _, bus := range src.BusLines() {
		if err := b.addSequence(bus.Name, bus.Stops); err != nil {
			return nil, err
		}
		if bus.Topology == domain.Linear {
			if err := b.addSequence(bus.Name, reversed(bus.Stops)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

type builder struct {
	src      GraphSource
	graph    *Graph
	opts     buildOptions
	wait     float64
	velocity float64
}

// addSequence добавляет ребра для всех пар i < j последовательности остановок
func (b *builder) addSequence(bus string, seq []domain.StopID) error {
	// prefix[k] - дорожное расстояние от seq[0] до seq[k]
	prefix := make([]int, len(seq))
	for k := 1; k < len(seq); k++ {
		d, err := b.src.DistanceBetween(seq[k-1], seq[k])
		if err != nil {
			return fmt.Errorf("build edges of bus %q: %w", bus, err)
		}
		prefix[k] = prefix[k-1] + d
	}

	for i := 0; i < len(seq)-1; i++ {
		for j := i + 1; j < len(seq); j++ {
			if b.opts.skipSelfLoops && seq[i] == seq[j] {
				continue
			}
			b.graph.addEdge(Edge{
				From:      seq[i],
				To:        seq[j],
				Bus:       bus,
				SpanCount: j - i,
				WaitTime:  b.wait,
				RideTime:  float64(prefix[j]-prefix[i]) / b.velocity,
			})
		}
	}
	return nil
}

func reversed(stops []domain.StopID) []domain.StopID {
	out := make([]domain.StopID, len(stops))
	for i, id := range stops {
		out[len(stops)-1-i] = id
	}
	return out
}
