package loader

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/transport-catalogue/internal/pkg/errors"
	"github.com/transport-catalogue/internal/pkg/validator"
	"github.com/transport-catalogue/internal/usecase/dto"
)

// Текстовый формат:
//
//	3
//	Stop Tolstopaltsevo: 55.611087, 37.208290, 3900m to Marushkino
//	Stop Marushkino: 55.595884, 37.209755
//	Bus 750: Tolstopaltsevo - Marushkino
//	2
//	Bus 750
//	Stop Marushkino
//
// "a > b > a" - кольцевой маршрут, "a - b" - маршрут туда и обратно.
const (
	stopPrefix       = "Stop "
	busPrefix        = "Bus "
	distanceInfix    = "m to "
	roundtripDivider = " > "
	linearDivider    = " - "
)

// DecodeText читает текстовый формат: число запросов на заполнение базы,
// сами запросы, затем число запросов к базе и запросы. Результат - такой же
// документ, как из JSON; request id запроса к базе равен его номеру.
func DecodeText(r io.Reader) (*dto.Document, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	doc := &dto.Document{}

	baseCount, err := lr.count()
	if err == io.EOF {
		return nil, lr.fail(errUnexpectedEnd)
	} else if err != nil {
		return nil, err
	}
	for i := 0; i < baseCount; i++ {
		line, err := lr.required()
		if err != nil {
			return nil, err
		}
		req, err := parseBaseLine(line)
		if err != nil {
			return nil, lr.fail(err)
		}
		doc.BaseRequests = append(doc.BaseRequests, req)
	}

	// запросов к базе может не быть
	statCount, err := lr.count()
	if err == io.EOF {
		statCount = 0
	} else if err != nil {
		return nil, err
	}
	for i := 0; i < statCount; i++ {
		line, err := lr.required()
		if err != nil {
			return nil, err
		}
		req, err := parseStatLine(i, line)
		if err != nil {
			return nil, lr.fail(err)
		}
		doc.StatRequests = append(doc.StatRequests, req)
	}

	if err := validator.ValidateRequest(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// next возвращает следующую непустую строку
func (lr *lineReader) next() (string, error) {
	for lr.sc.Scan() {
		lr.line++
		if line := strings.TrimSpace(lr.sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return "", lr.fail(err)
	}
	return "", io.EOF
}

var errUnexpectedEnd = stderrors.New("unexpected end of input")

// required - как next, но конец ввода считается ошибкой
func (lr *lineReader) required() (string, error) {
	line, err := lr.next()
	if err == io.EOF {
		return "", lr.fail(errUnexpectedEnd)
	}
	return line, err
}

func (lr *lineReader) count() (int, error) {
	line, err := lr.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 {
		return 0, lr.fail(fmt.Errorf("expected request count, got %q", line))
	}
	return n, nil
}

func (lr *lineReader) fail(err error) error {
	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
		"line":  lr.line,
		"error": err.Error(),
	})
}

func parseBaseLine(line string) (dto.BaseRequest, error) {
	switch {
	case strings.HasPrefix(line, stopPrefix):
		return parseStop(strings.TrimPrefix(line, stopPrefix))
	case strings.HasPrefix(line, busPrefix):
		return parseBus(strings.TrimPrefix(line, busPrefix))
	default:
		return dto.BaseRequest{}, fmt.Errorf("unknown request %q", line)
	}
}

// parseStop разбирает "Name: lat, lon[, Dm to Other]..."
func parseStop(s string) (dto.BaseRequest, error) {
	name, rest, ok := strings.Cut(s, ":")
	if !ok {
		return dto.BaseRequest{}, fmt.Errorf("stop %q: missing ':'", s)
	}
	req := dto.BaseRequest{Type: dto.RequestTypeStop, Name: strings.TrimSpace(name)}

	parts := strings.Split(rest, ",")
	if len(parts) < 2 {
		return dto.BaseRequest{}, fmt.Errorf("stop %q: expected latitude and longitude", req.Name)
	}
	var err error
	if req.Latitude, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return dto.BaseRequest{}, fmt.Errorf("stop %q: latitude: %w", req.Name, err)
	}
	if req.Longitude, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return dto.BaseRequest{}, fmt.Errorf("stop %q: longitude: %w", req.Name, err)
	}

	for _, part := range parts[2:] {
		meters, to, ok := strings.Cut(strings.TrimSpace(part), distanceInfix)
		if !ok {
			return dto.BaseRequest{}, fmt.Errorf("stop %q: bad distance %q", req.Name, part)
		}
		d, err := strconv.Atoi(meters)
		if err != nil {
			return dto.BaseRequest{}, fmt.Errorf("stop %q: bad distance %q", req.Name, part)
		}
		if req.RoadDistances == nil {
			req.RoadDistances = make(map[string]int)
		}
		req.RoadDistances[strings.TrimSpace(to)] = d
	}
	return req, nil
}

// parseBus разбирает "Name: a > b > a" или "Name: a - b"
func parseBus(s string) (dto.BaseRequest, error) {
	name, rest, ok := strings.Cut(s, ":")
	if !ok {
		return dto.BaseRequest{}, fmt.Errorf("bus %q: missing ':'", s)
	}
	req := dto.BaseRequest{Type: dto.RequestTypeBus, Name: strings.TrimSpace(name)}

	divider := roundtripDivider
	req.IsRoundtrip = true
	if strings.Contains(rest, linearDivider) {
		divider = linearDivider
		req.IsRoundtrip = false
	}
	for _, stop := range strings.Split(rest, divider) {
		stop = strings.TrimSpace(stop)
		if stop == "" {
			return dto.BaseRequest{}, fmt.Errorf("bus %q: empty stop name", req.Name)
		}
		req.Stops = append(req.Stops, stop)
	}
	return req, nil
}

func parseStatLine(id int, line string) (dto.StatRequest, error) {
	switch {
	case strings.HasPrefix(line, stopPrefix):
		return dto.StatRequest{ID: id, Type: dto.RequestTypeStop, Name: strings.TrimSpace(strings.TrimPrefix(line, stopPrefix))}, nil
	case strings.HasPrefix(line, busPrefix):
		return dto.StatRequest{ID: id, Type: dto.RequestTypeBus, Name: strings.TrimSpace(strings.TrimPrefix(line, busPrefix))}, nil
	default:
		return dto.StatRequest{}, fmt.Errorf("unknown stat request %q", line)
	}
}

// WriteTextAnswers печатает ответы построчно. answers идут в порядке requests,
// как их возвращает Answer.
func WriteTextAnswers(w io.Writer, requests []dto.StatRequest, answers []interface{}) error {
	if len(requests) != len(answers) {
		return fmt.Errorf("%d answers for %d requests", len(answers), len(requests))
	}

	bw := bufio.NewWriter(w)
	for i, req := range requests {
		fmt.Fprintf(bw, "%s %s: %s\n", req.Type, req.Name, textAnswer(answers[i]))
	}
	return bw.Flush()
}

func textAnswer(answer interface{}) string {
	switch a := answer.(type) {
	case dto.BusAnswer:
		return fmt.Sprintf("%d stops on route, %d unique stops, %d route length, %s curvature",
			a.StopCount, a.UniqueStopCount, a.RouteLength, strconv.FormatFloat(a.Curvature, 'g', 6, 64))
	case dto.StopAnswer:
		if len(a.Buses) == 0 {
			return "no buses"
		}
		return "buses " + strings.Join(a.Buses, " ")
	case dto.ErrorAnswer:
		return a.ErrorMessage
	default:
		return dto.ErrorMessageNotSupported
	}
}
