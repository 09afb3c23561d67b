package loader_test

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/catalogue"
	"github.com/transport-catalogue/internal/loader"
	"github.com/transport-catalogue/internal/pkg/errors"
	"github.com/transport-catalogue/internal/usecase"
	"github.com/transport-catalogue/internal/usecase/dto"
)

func decodeTestDocument(t *testing.T) *dto.Document {
	t.Helper()
	f, err := os.Open("testdata/document.json")
	require.NoError(t, err)
	defer f.Close()

	doc, err := loader.Decode(f)
	require.NoError(t, err)
	return doc
}

func TestDecode(t *testing.T) {
	doc := decodeTestDocument(t)

	assert.Len(t, doc.BaseRequests, 8)
	assert.Len(t, doc.StatRequests, 9)
	require.NotNil(t, doc.RoutingSettings)
	assert.Equal(t, 6, doc.RoutingSettings.BusWaitTime)
	assert.Equal(t, 40.0, doc.RoutingSettings.BusVelocity)
	require.NotNil(t, doc.SerializationSettings)
	assert.Equal(t, "transport_catalogue.db", doc.SerializationSettings.File)
	assert.NotEmpty(t, doc.RenderSettings)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"base_requests": [`},
		{name: "unknown base request type", body: `{"base_requests": [{"type": "Tram", "name": "T"}]}`},
		{name: "missing name", body: `{"base_requests": [{"type": "Stop"}]}`},
		{name: "unknown stat request type", body: `{"stat_requests": [{"id": 1, "type": "Taxi"}]}`},
		{name: "zero velocity", body: `{"routing_settings": {"bus_wait_time": 1, "bus_velocity": 0}}`},
		{name: "empty serialization file", body: `{"serialization_settings": {"file": ""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Decode(strings.NewReader(tt.body))
			assert.True(t, stderrors.Is(err, errors.ErrInvalidRequest), "got %v", err)
		})
	}
}

func TestPopulate(t *testing.T) {
	cat, err := loader.Build(decodeTestDocument(t))
	require.NoError(t, err)

	assert.Equal(t, 6, cat.StopCount())
	assert.Len(t, cat.BusLines(), 2)

	d, err := cat.Distance("Universam", "Biryulyovo Zapadnoye")
	require.NoError(t, err)
	assert.Equal(t, 2400, d, "reverse direction falls back to the recorded entry")

	buses, err := cat.BusesThroughStop("Biryulyovo Zapadnoye")
	require.NoError(t, err)
	assert.Equal(t, []string{"256", "828"}, buses)
}

func TestPopulate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		requests []dto.BaseRequest
		want     error
	}{
		{
			name: "bus with unknown stop",
			requests: []dto.BaseRequest{
				{Type: dto.RequestTypeStop, Name: "A"},
				{Type: dto.RequestTypeBus, Name: "1", Stops: []string{"A", "B"}},
			},
			want: errors.ErrUnknownStop,
		},
		{
			name: "distance to unknown stop",
			requests: []dto.BaseRequest{
				{Type: dto.RequestTypeStop, Name: "A", RoadDistances: map[string]int{"B": 10}},
			},
			want: errors.ErrUnknownStop,
		},
		{
			name: "duplicate stop",
			requests: []dto.BaseRequest{
				{Type: dto.RequestTypeStop, Name: "A"},
				{Type: dto.RequestTypeStop, Name: "A", Latitude: 1},
			},
			want: errors.ErrDuplicateStop,
		},
		{
			name: "roundtrip with different endpoints",
			requests: []dto.BaseRequest{
				{Type: dto.RequestTypeStop, Name: "A"},
				{Type: dto.RequestTypeStop, Name: "B", Latitude: 1},
				{Type: dto.RequestTypeBus, Name: "1", Stops: []string{"A", "B"}, IsRoundtrip: true},
			},
			want: errors.ErrInvalidTopology,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Populate(catalogue.New(), tt.requests)
			assert.True(t, stderrors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestAnswer(t *testing.T) {
	doc := decodeTestDocument(t)
	cat, err := loader.Build(doc)
	require.NoError(t, err)

	uc := usecase.NewCatalogueUseCase(nil, usecase.CatalogueConfig{SkipSelfLoops: true}, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, uc.ReplaceCatalogue(ctx, cat, doc.RoutingSettings))

	answers, err := loader.Answer(ctx, uc, doc.StatRequests)
	require.NoError(t, err)
	require.Len(t, answers, 9)

	bus, ok := answers[0].(dto.BusAnswer)
	require.True(t, ok)
	assert.Equal(t, 1, bus.RequestID)
	assert.Equal(t, 6, bus.StopCount)
	assert.Equal(t, 5, bus.UniqueStopCount)
	assert.Equal(t, 5950, bus.RouteLength)
	assert.InDelta(t, 1.36124, bus.Curvature, 1e-4)

	assert.Equal(t, dto.ErrorAnswer{RequestID: 2, ErrorMessage: "not found"}, answers[1])
	assert.Equal(t, dto.StopAnswer{RequestID: 3, Buses: []string{"256", "828"}}, answers[2])
	assert.Equal(t, dto.StopAnswer{RequestID: 4, Buses: []string{}}, answers[3])
	assert.Equal(t, dto.ErrorAnswer{RequestID: 5, ErrorMessage: "not found"}, answers[4])

	// 40 км/ч = 666.(6) м/мин; 828 едет напрямую 2400 м: 6 + 3.6
	route, ok := answers[5].(dto.RouteAnswer)
	require.True(t, ok)
	assert.InDelta(t, 9.6, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 2)
	assert.Equal(t, dto.RouteItem{Type: "Wait", StopName: "Biryulyovo Zapadnoye", Time: 6}, route.Items[0])
	assert.Equal(t, "Bus", route.Items[1].Type)
	assert.Equal(t, "828", route.Items[1].Bus)
	assert.Equal(t, 1, route.Items[1].SpanCount)
	assert.InDelta(t, 3.6, route.Items[1].Time, 1e-9)

	assert.Equal(t, dto.ErrorAnswer{RequestID: 7, ErrorMessage: "not found"}, answers[6])
	assert.Equal(t, dto.RouteAnswer{RequestID: 8, Items: []dto.RouteItem{}, TotalTime: 0}, answers[7])
	assert.Equal(t, dto.ErrorAnswer{RequestID: 9, ErrorMessage: "not supported"}, answers[8])
}

func TestAnswer_RoutingNotConfigured(t *testing.T) {
	doc := decodeTestDocument(t)
	cat, err := loader.Build(doc)
	require.NoError(t, err)

	uc := usecase.NewCatalogueUseCase(nil, usecase.CatalogueConfig{}, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, uc.ReplaceCatalogue(ctx, cat, nil))

	answers, err := loader.Answer(ctx, uc, []dto.StatRequest{
		{ID: 1, Type: dto.RequestTypeRoute, From: "Universam", To: "Biryusinka"},
	})
	require.NoError(t, err)
	assert.Equal(t, dto.ErrorAnswer{RequestID: 1, ErrorMessage: errors.ErrRoutingNotConfigured.Message}, answers[0])
}

func TestAnswer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := usecase.NewCatalogueUseCase(nil, usecase.CatalogueConfig{}, zap.NewNop())
	_, err := loader.Answer(ctx, uc, []dto.StatRequest{{ID: 1, Type: dto.RequestTypeBus, Name: "1"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteAnswers(t *testing.T) {
	var buf bytes.Buffer
	err := loader.WriteAnswers(&buf, []interface{}{
		dto.StopAnswer{RequestID: 1, Buses: []string{}},
		dto.ErrorAnswer{RequestID: 2, ErrorMessage: "not found"},
	})
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, float64(1), decoded[0]["request_id"])
	assert.Equal(t, []interface{}{}, decoded[0]["buses"])
	assert.Equal(t, "not found", decoded[1]["error_message"])
}
