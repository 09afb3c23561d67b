// Package router строит транспортный граф по маршрутам каталога и ищет
// самый быстрый путь между остановками.
//
// Вершина графа - остановка (domain.StopID), ребро - поездка на одном автобусе
// от остановки i до остановки j без выхода, для любых i < j вдоль прохода маршрута.
// Вес ребра = ожидание автобуса + время в пути. Граф неизменяем после построения,
// поэтому его можно читать из нескольких горутин одновременно.
package router

import (
	"github.com/transport-catalogue/internal/domain"
)

// EdgeID - индекс ребра в графе
type EdgeID int

// Edge - поездка на автобусе Bus от From до To через SpanCount перегонов
type Edge struct {
	From      domain.StopID
	To        domain.StopID
	Bus       string
	SpanCount int
	WaitTime  float64
	RideTime  float64
}

// Weight - вес ребра в минутах
func (e Edge) Weight() float64 {
	return e.WaitTime + e.RideTime
}

// Graph - ориентированный взвешенный граф
type Graph struct {
	stops     []domain.Stop
	vertexOf  map[string]domain.StopID
	edges     []Edge
	incidence [][]EdgeID
	settings  domain.RoutingSettings
}

func newGraph(stops []domain.Stop, settings domain.RoutingSettings) *Graph {
	g := &Graph{
		stops:     stops,
		vertexOf:  make(map[string]domain.StopID, len(stops)),
		incidence: make([][]EdgeID, len(stops)),
		settings:  settings,
	}
	for _, s := range stops {
		g.vertexOf[s.Name] = s.ID
	}
	return g
}

func (g *Graph) addEdge(e Edge) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)
	return id
}

// VertexCount - число вершин
func (g *Graph) VertexCount() int {
	return len(g.stops)
}

// EdgeCount - число ребер
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Edge возвращает ребро по индексу
func (g *Graph) Edge(id EdgeID) Edge {
	return g.edges[id]
}

// IncidentEdges - исходящие ребра вершины в порядке добавления
func (g *Graph) IncidentEdges(v domain.StopID) []EdgeID {
	return g.incidence[v]
}

// Vertex ищет вершину по имени остановки
func (g *Graph) Vertex(stop string) (domain.StopID, bool) {
	v, ok := g.vertexOf[stop]
	return v, ok
}

// StopName - имя остановки вершины
func (g *Graph) StopName(v domain.StopID) string {
	return g.stops[v].Name
}

// Settings - параметры, с которыми построен граф
func (g *Graph) Settings() domain.RoutingSettings {
	return g.settings
}
