package router_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transport-catalogue/internal/catalogue"
	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/pkg/errors"
	"github.com/transport-catalogue/internal/router"
)

// 60 км/ч = 1000 м/мин
var defaultSettings = domain.RoutingSettings{BusWaitTime: 5, BusVelocity: 60}

func ringCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	c := catalogue.New()
	for i, name := range []string{"S1", "S2", "S3"} {
		_, err := c.AddStop(name, domain.Coordinates{Lat: 55.6, Lon: 37.6 + float64(i)*0.01})
		require.NoError(t, err)
	}
	require.NoError(t, c.SetDistance("S1", "S2", 1000))
	require.NoError(t, c.SetDistance("S2", "S3", 1000))
	require.NoError(t, c.SetDistance("S3", "S1", 1000))
	require.NoError(t, c.AddBusLine("1", domain.Circular, []string{"S1", "S2", "S3", "S1"}))
	return c
}

func buildRouter(t *testing.T, c *catalogue.Catalogue, settings domain.RoutingSettings, opts ...router.BuildOption) *router.Router {
	t.Helper()
	g, err := router.BuildGraph(c, settings, opts...)
	require.NoError(t, err)
	return router.NewRouter(g)
}

func TestRouter_SingleRideOverTwoSpans(t *testing.T) {
	r := buildRouter(t, ringCatalogue(t), defaultSettings)

	it, found, err := r.Query("S1", "S3")
	require.NoError(t, err)
	require.True(t, found)

	require.Len(t, it.Segments, 1)
	seg := it.Segments[0]
	assert.Equal(t, "1", seg.Bus)
	assert.Equal(t, "S1", seg.FromStop)
	assert.Equal(t, "S3", seg.ToStop)
	assert.Equal(t, 2, seg.SpanCount)
	assert.InDelta(t, 5.0, seg.WaitTime, 1e-9)
	assert.InDelta(t, 2.0, seg.RideTime, 1e-9)
	assert.InDelta(t, 7.0, seg.ElapsedTime, 1e-9)
	assert.InDelta(t, 7.0, it.TotalTime, 1e-9)
}

func TestRouter_SameStop(t *testing.T) {
	r := buildRouter(t, ringCatalogue(t), defaultSettings)

	for _, stop := range []string{"S1", "S2", "S3"} {
		it, found, err := r.Query(stop, stop)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Empty(t, it.Segments)
		assert.Equal(t, 0.0, it.TotalTime)
	}
}

func TestRouter_UnknownStop(t *testing.T) {
	r := buildRouter(t, ringCatalogue(t), defaultSettings)

	_, found, err := r.Query("S1", "Nowhere")
	assert.False(t, found)
	assert.True(t, stderrors.Is(err, errors.ErrUnknownStop))

	_, _, err = r.Query("Nowhere", "Nowhere")
	assert.True(t, stderrors.Is(err, errors.ErrUnknownStop))
}

func TestRouter_NoPath(t *testing.T) {
	c := ringCatalogue(t)
	_, err := c.AddStop("Island", domain.Coordinates{Lat: 55.7, Lon: 37.7})
	require.NoError(t, err)
	r := buildRouter(t, c, defaultSettings)

	it, found, err := r.Query("S1", "Island")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, it.Segments)
}

func TestRouter_LinearLineRunsBothWays(t *testing.T) {
	c := catalogue.New()
	for i, name := range []string{"A", "B", "C"} {
		_, err := c.AddStop(name, domain.Coordinates{Lat: 0, Lon: float64(i)})
		require.NoError(t, err)
	}
	require.NoError(t, c.SetDistance("A", "B", 100))
	require.NoError(t, c.SetDistance("B", "C", 200))
	require.NoError(t, c.SetDistance("C", "B", 300))
	require.NoError(t, c.AddBusLine("X", domain.Linear, []string{"A", "B", "C"}))

	g, err := router.BuildGraph(c, domain.RoutingSettings{BusWaitTime: 1, BusVelocity: 6})
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	r := router.NewRouter(g)

	// 6 км/ч = 100 м/мин; обратно C->B берется из записи C->B, B->A из записи A->B
	it, found, err := r.Query("C", "A")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, it.Segments, 1)
	assert.Equal(t, 2, it.Segments[0].SpanCount)
	assert.InDelta(t, 1+4.0, it.TotalTime, 1e-9)

	it, found, err = r.Query("A", "C")
	require.NoError(t, err)
	require.True(t, found)
	assert.InDelta(t, 1+3.0, it.TotalTime, 1e-9)
}

func TestRouter_TransferBetweenLines(t *testing.T) {
	c := catalogue.New()
	for i, name := range []string{"A", "B", "C", "D"} {
		_, err := c.AddStop(name, domain.Coordinates{Lat: 10, Lon: float64(i)})
		require.NoError(t, err)
	}
	require.NoError(t, c.SetDistance("A", "B", 2000))
	require.NoError(t, c.SetDistance("B", "C", 1000))
	require.NoError(t, c.SetDistance("C", "D", 3000))
	require.NoError(t, c.AddBusLine("red", domain.Linear, []string{"A", "B", "C"}))
	require.NoError(t, c.AddBusLine("blue", domain.Linear, []string{"C", "D"}))

	r := buildRouter(t, c, defaultSettings)

	it, found, err := r.Query("A", "D")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, it.Segments, 2)

	assert.Equal(t, "red", it.Segments[0].Bus)
	assert.Equal(t, "A", it.Segments[0].FromStop)
	assert.Equal(t, "C", it.Segments[0].ToStop)
	assert.Equal(t, 2, it.Segments[0].SpanCount)
	assert.InDelta(t, 8.0, it.Segments[0].ElapsedTime, 1e-9)

	assert.Equal(t, "blue", it.Segments[1].Bus)
	assert.Equal(t, "C", it.Segments[1].FromStop)
	assert.Equal(t, "D", it.Segments[1].ToStop)
	assert.Equal(t, 1, it.Segments[1].SpanCount)
	// elapsed накапливается: 8 + (5 + 3)
	assert.InDelta(t, 16.0, it.Segments[1].ElapsedTime, 1e-9)
	assert.InDelta(t, 16.0, it.TotalTime, 1e-9)
}

func TestRouter_Deterministic(t *testing.T) {
	c := catalogue.New()
	for i, name := range []string{"A", "B", "C", "D"} {
		_, err := c.AddStop(name, domain.Coordinates{Lat: 20, Lon: float64(i)})
		require.NoError(t, err)
	}
	// два равных по времени пути A->D: через B и через C
	require.NoError(t, c.SetDistance("A", "B", 1000))
	require.NoError(t, c.SetDistance("B", "D", 1000))
	require.NoError(t, c.SetDistance("A", "C", 1000))
	require.NoError(t, c.SetDistance("C", "D", 1000))
	require.NoError(t, c.AddBusLine("b1", domain.Linear, []string{"A", "B"}))
	require.NoError(t, c.AddBusLine("b2", domain.Linear, []string{"B", "D"}))
	require.NoError(t, c.AddBusLine("c1", domain.Linear, []string{"A", "C"}))
	require.NoError(t, c.AddBusLine("c2", domain.Linear, []string{"C", "D"}))

	first := buildRouter(t, c, defaultSettings)
	second := buildRouter(t, c, defaultSettings)

	names := []string{"A", "B", "C", "D"}
	for _, from := range names {
		for _, to := range names {
			a, foundA, errA := first.Query(from, to)
			b, foundB, errB := second.Query(from, to)
			require.NoError(t, errA)
			require.NoError(t, errB)
			assert.Equal(t, foundA, foundB)
			assert.Equal(t, a, b, "%s -> %s", from, to)
		}
	}

	// повторный запрос к тому же роутеру дает тот же ответ
	a, _, _ := first.Query("A", "D")
	b, _, _ := first.Query("A", "D")
	assert.Equal(t, a, b)
	assert.InDelta(t, 12.0, a.TotalTime, 1e-9)
}

func TestBuildGraph_SelfLoops(t *testing.T) {
	c := ringCatalogue(t)

	g, err := router.BuildGraph(c, defaultSettings)
	require.NoError(t, err)
	// 6 пар (i, j) у [S1 S2 S3 S1], пара S1->S1 отброшена
	assert.Equal(t, 5, g.EdgeCount())
	for _, id := range g.IncidentEdges(0) {
		assert.NotEqual(t, g.Edge(id).From, g.Edge(id).To)
	}

	g, err = router.BuildGraph(c, defaultSettings, router.WithSkipSelfLoops(false))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	// петли не меняют ответы
	it, found, err := router.NewRouter(g).Query("S1", "S3")
	require.NoError(t, err)
	require.True(t, found)
	assert.InDelta(t, 7.0, it.TotalTime, 1e-9)
}

func TestBuildGraph_AdjacentDuplicateStops(t *testing.T) {
	c := catalogue.New()
	for i, name := range []string{"A", "B"} {
		_, err := c.AddStop(name, domain.Coordinates{Lat: 0, Lon: float64(i)})
		require.NoError(t, err)
	}
	require.NoError(t, c.SetDistance("A", "A", 100))
	require.NoError(t, c.SetDistance("A", "B", 1000))
	require.NoError(t, c.AddBusLine("dup", domain.Linear, []string{"A", "A", "B"}))

	g, err := router.BuildGraph(c, defaultSettings)
	require.NoError(t, err)
	// вперед A->B дважды (span 1 и 2), назад B->A дважды
	assert.Equal(t, 4, g.EdgeCount())

	it, found, err := router.NewRouter(g).Query("A", "B")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, it.Segments, 1)
	assert.Equal(t, 1, it.Segments[0].SpanCount)
	assert.InDelta(t, 6.0, it.TotalTime, 1e-9)
}

func TestBuildGraph_Errors(t *testing.T) {
	t.Run("invalid settings", func(t *testing.T) {
		_, err := router.BuildGraph(ringCatalogue(t), domain.RoutingSettings{BusWaitTime: 1, BusVelocity: 0})
		assert.True(t, stderrors.Is(err, errors.ErrInvalidRoutingSettings))

		_, err = router.BuildGraph(ringCatalogue(t), domain.RoutingSettings{BusWaitTime: -1, BusVelocity: 40})
		assert.True(t, stderrors.Is(err, errors.ErrInvalidRoutingSettings))
	})

	t.Run("missing distance", func(t *testing.T) {
		c := catalogue.New()
		_, err := c.AddStop("A", domain.Coordinates{})
		require.NoError(t, err)
		_, err = c.AddStop("B", domain.Coordinates{Lat: 1})
		require.NoError(t, err)
		require.NoError(t, c.AddBusLine("X", domain.Linear, []string{"A", "B"}))

		_, err = router.BuildGraph(c, defaultSettings)
		assert.True(t, stderrors.Is(err, errors.ErrDistanceUnknown))
	})
}

func TestGraph_Accessors(t *testing.T) {
	g, err := router.BuildGraph(ringCatalogue(t), defaultSettings)
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, defaultSettings, g.Settings())

	v, ok := g.Vertex("S2")
	require.True(t, ok)
	assert.Equal(t, domain.StopID(1), v)
	assert.Equal(t, "S2", g.StopName(v))

	_, ok = g.Vertex("S9")
	assert.False(t, ok)
}
