package router

import (
	"container/heap"
	"math"

	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/pkg/errors"
)

// Router отвечает на запросы кратчайшего по времени пути.
// Поиск выполняется на каждый запрос, предварительных расчетов нет.
// Каждый запрос выделяет свое рабочее состояние, поэтому Query безопасен
// для конкурентного вызова.
type Router struct {
	graph *Graph
}

// NewRouter оборачивает построенный граф
func NewRouter(g *Graph) *Router {
	return &Router{graph: g}
}

// Graph возвращает граф роутера
func (r *Router) Graph() *Graph {
	return r.graph
}

// Query ищет самый быстрый путь from -> to.
// Неизвестная остановка - ErrUnknownStop. Если пути нет, found == false и ошибки нет.
func (r *Router) Query(from, to string) (itinerary domain.Itinerary, found bool, err error) {
	src, ok := r.graph.Vertex(from)
	if !ok {
		return domain.Itinerary{}, false, errors.ErrUnknownStop.WithDetails(map[string]interface{}{"stop": from})
	}
	dst, ok := r.graph.Vertex(to)
	if !ok {
		return domain.Itinerary{}, false, errors.ErrUnknownStop.WithDetails(map[string]interface{}{"stop": to})
	}

	itinerary = domain.Itinerary{From: from, To: to, Segments: []domain.Segment{}}
	if src == dst {
		return itinerary, true, nil
	}

	edges, ok := r.shortestPath(src, dst)
	if !ok {
		return domain.Itinerary{}, false, nil
	}

	elapsed := 0.0
	for _, id := range edges {
		e := r.graph.Edge(id)
		elapsed += e.Weight()
		itinerary.Segments = append(itinerary.Segments, domain.Segment{
			Bus:         e.Bus,
			FromStop:    r.graph.StopName(e.From),
			ToStop:      r.graph.StopName(e.To),
			SpanCount:   e.SpanCount,
			WaitTime:    e.WaitTime,
			RideTime:    e.RideTime,
			ElapsedTime: elapsed,
		})
	}
	itinerary.TotalTime = elapsed

	return itinerary, true, nil
}

// shortestPath - Дейкстра. При равных расстояниях первой извлекается вершина
// с меньшим индексом, предшественник меняется только при строгом улучшении.
func (r *Router) shortestPath(src, dst domain.StopID) ([]EdgeID, bool) {
	n := r.graph.VertexCount()
	dist := make([]float64, n)
	prev := make([]EdgeID, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[src] = 0

	pq := &priorityQueue{}
	heap.Push(pq, &pqItem{vertex: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		if item.dist > dist[item.vertex] {
			continue
		}
		if item.vertex == dst {
			break
		}

		for _, id := range r.graph.IncidentEdges(item.vertex) {
			e := r.graph.Edge(id)
			candidate := item.dist + e.Weight()
			if candidate < dist[e.To] {
				dist[e.To] = candidate
				prev[e.To] = id
				heap.Push(pq, &pqItem{vertex: e.To, dist: candidate})
			}
		}
	}

	if math.IsInf(dist[dst], 1) {
		return nil, false
	}

	var path []EdgeID
	for v := dst; v != src; {
		id := prev[v]
		path = append(path, id)
		v = r.graph.Edge(id).From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

type pqItem struct {
	vertex domain.StopID
	dist   float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].vertex < pq[j].vertex
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
