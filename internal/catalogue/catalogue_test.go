package catalogue_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transport-catalogue/internal/catalogue"
	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/pkg/errors"
)

func newTestCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	c := catalogue.New()

	_, err := c.AddStop("Tolstopaltsevo", domain.Coordinates{Lat: 55.611087, Lon: 37.20829})
	require.NoError(t, err)
	_, err = c.AddStop("Marushkino", domain.Coordinates{Lat: 55.595884, Lon: 37.209755})
	require.NoError(t, err)
	_, err = c.AddStop("Rasskazovka", domain.Coordinates{Lat: 55.632761, Lon: 37.333324})
	require.NoError(t, err)
	_, err = c.AddStop("Biryulyovo Zapadnoye", domain.Coordinates{Lat: 55.574371, Lon: 37.6517})
	require.NoError(t, err)

	require.NoError(t, c.SetDistance("Tolstopaltsevo", "Marushkino", 3900))
	require.NoError(t, c.SetDistance("Marushkino", "Rasskazovka", 9900))
	require.NoError(t, c.SetDistance("Marushkino", "Marushkino", 100))

	require.NoError(t, c.AddBusLine("750", domain.Linear,
		[]string{"Tolstopaltsevo", "Marushkino", "Marushkino", "Rasskazovka"}))
	return c
}

func TestCatalogue_AddStop(t *testing.T) {
	c := catalogue.New()

	id, err := c.AddStop("A", domain.Coordinates{Lat: 0, Lon: 0})
	require.NoError(t, err)
	assert.Equal(t, domain.StopID(0), id)

	id, err = c.AddStop("B", domain.Coordinates{Lat: 0, Lon: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.StopID(1), id)

	t.Run("duplicate name is rejected", func(t *testing.T) {
		_, err := c.AddStop("A", domain.Coordinates{Lat: 10, Lon: 10})
		assert.True(t, stderrors.Is(err, errors.ErrDuplicateStop))

		stop, err := c.Stop("A")
		require.NoError(t, err)
		assert.Equal(t, 0.0, stop.Coordinates.Lat, "original stop must stay intact")
		assert.Equal(t, 2, c.StopCount())
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		_, err := c.AddStop("C", domain.Coordinates{Lat: 91, Lon: 0})
		assert.True(t, stderrors.Is(err, errors.ErrInvalidCoordinates))
		_, err = c.Stop("C")
		assert.True(t, stderrors.Is(err, errors.ErrNotFound))
	})
}

func TestCatalogue_AddBusLine(t *testing.T) {
	c := newTestCatalogue(t)

	t.Run("unknown stop", func(t *testing.T) {
		err := c.AddBusLine("1", domain.Linear, []string{"Tolstopaltsevo", "Nowhere"})
		assert.True(t, stderrors.Is(err, errors.ErrUnknownStop))
		_, err = c.BusLine("1")
		assert.True(t, stderrors.Is(err, errors.ErrNotFound))
	})

	t.Run("circular with different endpoints", func(t *testing.T) {
		err := c.AddBusLine("2", domain.Circular, []string{"Tolstopaltsevo", "Marushkino"})
		assert.True(t, stderrors.Is(err, errors.ErrInvalidTopology))
	})

	t.Run("empty stop list", func(t *testing.T) {
		err := c.AddBusLine("3", domain.Linear, nil)
		assert.True(t, stderrors.Is(err, errors.ErrInvalidTopology))
	})

	t.Run("duplicate bus", func(t *testing.T) {
		err := c.AddBusLine("750", domain.Linear, []string{"Tolstopaltsevo"})
		assert.True(t, stderrors.Is(err, errors.ErrDuplicateBus))
	})

	t.Run("circular line", func(t *testing.T) {
		err := c.AddBusLine("256", domain.Circular,
			[]string{"Biryulyovo Zapadnoye", "Rasskazovka", "Biryulyovo Zapadnoye"})
		require.NoError(t, err)

		line, err := c.BusLine("256")
		require.NoError(t, err)
		assert.Equal(t, domain.Circular, line.Topology)
		assert.Equal(t, []domain.StopID{3, 2, 3}, line.Stops)
	})
}

func TestCatalogue_Distance(t *testing.T) {
	c := newTestCatalogue(t)

	t.Run("direct entry", func(t *testing.T) {
		d, err := c.Distance("Tolstopaltsevo", "Marushkino")
		require.NoError(t, err)
		assert.Equal(t, 3900, d)
	})

	t.Run("falls back to reverse entry", func(t *testing.T) {
		d, err := c.Distance("Rasskazovka", "Marushkino")
		require.NoError(t, err)
		assert.Equal(t, 9900, d)
	})

	t.Run("asymmetric entries are kept apart", func(t *testing.T) {
		require.NoError(t, c.SetDistance("Rasskazovka", "Marushkino", 9500))
		forward, err := c.Distance("Marushkino", "Rasskazovka")
		require.NoError(t, err)
		backward, err := c.Distance("Rasskazovka", "Marushkino")
		require.NoError(t, err)
		assert.Equal(t, 9900, forward)
		assert.Equal(t, 9500, backward)
	})

	t.Run("last write wins", func(t *testing.T) {
		require.NoError(t, c.SetDistance("Tolstopaltsevo", "Marushkino", 4000))
		d, err := c.Distance("Tolstopaltsevo", "Marushkino")
		require.NoError(t, err)
		assert.Equal(t, 4000, d)
	})

	t.Run("self distance is never implicit", func(t *testing.T) {
		d, err := c.Distance("Marushkino", "Marushkino")
		require.NoError(t, err)
		assert.Equal(t, 100, d)

		_, err = c.Distance("Rasskazovka", "Rasskazovka")
		assert.True(t, stderrors.Is(err, errors.ErrDistanceUnknown))
	})

	t.Run("unknown distance", func(t *testing.T) {
		_, err := c.Distance("Tolstopaltsevo", "Biryulyovo Zapadnoye")
		assert.True(t, stderrors.Is(err, errors.ErrDistanceUnknown))
	})

	t.Run("unknown stop", func(t *testing.T) {
		_, err := c.Distance("Tolstopaltsevo", "Nowhere")
		assert.True(t, stderrors.Is(err, errors.ErrNotFound))

		err = c.SetDistance("Nowhere", "Tolstopaltsevo", 10)
		assert.True(t, stderrors.Is(err, errors.ErrUnknownStop))
	})

	t.Run("negative distance", func(t *testing.T) {
		err := c.SetDistance("Tolstopaltsevo", "Rasskazovka", -1)
		assert.True(t, stderrors.Is(err, errors.ErrInvalidDistance))
	})
}

func TestCatalogue_BusesThroughStop(t *testing.T) {
	c := newTestCatalogue(t)
	require.NoError(t, c.AddBusLine("101", domain.Linear, []string{"Marushkino", "Rasskazovka"}))

	buses, err := c.BusesThroughStop("Marushkino")
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "750"}, buses)

	t.Run("stop without buses", func(t *testing.T) {
		buses, err := c.BusesThroughStop("Biryulyovo Zapadnoye")
		require.NoError(t, err)
		assert.NotNil(t, buses)
		assert.Empty(t, buses)
	})

	t.Run("missing stop", func(t *testing.T) {
		buses, err := c.BusesThroughStop("Nowhere")
		assert.Nil(t, buses)
		assert.True(t, stderrors.Is(err, errors.ErrNotFound))
	})
}

func TestCatalogue_Iteration(t *testing.T) {
	c := newTestCatalogue(t)

	stops := c.Stops()
	require.Len(t, stops, 4)
	for i, s := range stops {
		assert.Equal(t, domain.StopID(i), s.ID)
	}
	assert.Equal(t, "Tolstopaltsevo", stops[0].Name)

	lines := c.BusLines()
	require.Len(t, lines, 1)
	assert.Equal(t, "750", lines[0].Name)

	assert.Equal(t, []domain.DistanceEntry{
		{From: "Tolstopaltsevo", To: "Marushkino", Meters: 3900},
		{From: "Marushkino", To: "Marushkino", Meters: 100},
		{From: "Marushkino", To: "Rasskazovka", Meters: 9900},
	}, c.Distances())
}

func TestCatalogue_SnapshotRoundTrip(t *testing.T) {
	c := newTestCatalogue(t)
	require.NoError(t, c.AddBusLine("256", domain.Circular,
		[]string{"Biryulyovo Zapadnoye", "Rasskazovka", "Biryulyovo Zapadnoye"}))

	snap := c.Snapshot()
	require.Len(t, snap.BusLines, 2)
	assert.False(t, snap.BusLines[0].Roundtrip)
	assert.True(t, snap.BusLines[1].Roundtrip)

	restored, err := catalogue.FromSnapshot(snap)
	require.NoError(t, err)

	assert.Equal(t, c.Stops(), restored.Stops())
	assert.Equal(t, c.BusLines(), restored.BusLines())
	assert.Equal(t, c.Distances(), restored.Distances())

	buses, err := restored.BusesThroughStop("Rasskazovka")
	require.NoError(t, err)
	assert.Equal(t, []string{"256", "750"}, buses)
}

func TestFromSnapshot_InvalidData(t *testing.T) {
	_, err := catalogue.FromSnapshot(&domain.Snapshot{
		Stops:    []domain.Stop{{Name: "A"}},
		BusLines: []domain.SnapshotBusLine{{Name: "1", Stops: []string{"A", "B"}}},
	})
	assert.True(t, stderrors.Is(err, errors.ErrUnknownStop))

	empty, err := catalogue.FromSnapshot(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.StopCount())
}
