// Package loader разбирает входной JSON документ, заполняет каталог
// и отвечает на stat_requests.
package loader

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/transport-catalogue/internal/catalogue"
	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/pkg/errors"
	"github.com/transport-catalogue/internal/pkg/validator"
	"github.com/transport-catalogue/internal/usecase/dto"
)

// Decode читает и валидирует документ
func Decode(r io.Reader) (*dto.Document, error) {
	var doc dto.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"error": fmt.Sprintf("decode document: %v", err),
		})
	}
	if err := validator.ValidateRequest(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Populate добавляет в каталог остановки, затем расстояния, затем маршруты,
// поэтому порядок запросов в документе не важен.
func Populate(cat *catalogue.Catalogue, requests []dto.BaseRequest) error {
	for _, req := range requests {
		if req.Type != dto.RequestTypeStop {
			continue
		}
		coords := domain.Coordinates{Lat: req.Latitude, Lon: req.Longitude}
		if _, err := cat.AddStop(req.Name, coords); err != nil {
			return fmt.Errorf("stop %q: %w", req.Name, err)
		}
	}

	for _, req := range requests {
		if req.Type != dto.RequestTypeStop {
			continue
		}
		for _, to := range sortedKeys(req.RoadDistances) {
			if err := cat.SetDistance(req.Name, to, req.RoadDistances[to]); err != nil {
				return fmt.Errorf("road distance %q -> %q: %w", req.Name, to, err)
			}
		}
	}

	for _, req := range requests {
		if req.Type != dto.RequestTypeBus {
			continue
		}
		topology := domain.TopologyFromRoundtrip(req.IsRoundtrip)
		if err := cat.AddBusLine(req.Name, topology, req.Stops); err != nil {
			return fmt.Errorf("bus %q: %w", req.Name, err)
		}
	}
	return nil
}

// Build создает каталог по base_requests документа
func Build(doc *dto.Document) (*catalogue.Catalogue, error) {
	cat := catalogue.New()
	if err := Populate(cat, doc.BaseRequests); err != nil {
		return nil, err
	}
	return cat, nil
}

// Querier - операции, нужные для ответов на stat_requests
type Querier interface {
	GetRouteInfo(ctx context.Context, bus string) (*domain.RouteInfo, error)
	GetBusesOnStop(ctx context.Context, name string) ([]string, error)
	BuildRoute(ctx context.Context, from, to string) (*domain.Itinerary, bool, error)
}

// Answer отвечает на запросы по порядку. Ошибка одного запроса превращается
// в error_message этого ответа, ошибка возвращается только при отмене ctx.
func Answer(ctx context.Context, q Querier, requests []dto.StatRequest) ([]interface{}, error) {
	answers := make([]interface{}, 0, len(requests))
	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		answers = append(answers, answerOne(ctx, q, req))
	}
	return answers, nil
}

func answerOne(ctx context.Context, q Querier, req dto.StatRequest) interface{} {
	switch req.Type {
	case dto.RequestTypeBus:
		info, err := q.GetRouteInfo(ctx, req.Name)
		if err != nil {
			return errorAnswer(req.ID, err)
		}
		return dto.BusAnswer{
			RequestID:       req.ID,
			Curvature:       info.Curvature,
			RouteLength:     info.RouteLength,
			StopCount:       info.StopCount,
			UniqueStopCount: info.UniqueStopCount,
		}

	case dto.RequestTypeStop:
		buses, err := q.GetBusesOnStop(ctx, req.Name)
		if err != nil {
			return errorAnswer(req.ID, err)
		}
		return dto.StopAnswer{RequestID: req.ID, Buses: buses}

	case dto.RequestTypeRoute:
		it, found, err := q.BuildRoute(ctx, req.From, req.To)
		if err != nil {
			return errorAnswer(req.ID, err)
		}
		if !found {
			return dto.ErrorAnswer{RequestID: req.ID, ErrorMessage: dto.ErrorMessageNotFound}
		}
		return dto.RouteAnswer{RequestID: req.ID, Items: dto.NewRouteItems(it), TotalTime: it.TotalTime}

	default:
		return dto.ErrorAnswer{RequestID: req.ID, ErrorMessage: dto.ErrorMessageNotSupported}
	}
}

// errorAnswer: отсутствующие сущности - "not found", остальное - текст ошибки
func errorAnswer(id int, err error) dto.ErrorAnswer {
	if stderrors.Is(err, errors.ErrNotFound) || stderrors.Is(err, errors.ErrUnknownStop) {
		return dto.ErrorAnswer{RequestID: id, ErrorMessage: dto.ErrorMessageNotFound}
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return dto.ErrorAnswer{RequestID: id, ErrorMessage: appErr.Message}
	}
	return dto.ErrorAnswer{RequestID: id, ErrorMessage: err.Error()}
}

// WriteAnswers печатает ответы JSON массивом
func WriteAnswers(w io.Writer, answers []interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(answers)
}
