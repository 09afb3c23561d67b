// Package docs Transport Catalogue API.
//
// Справочник транспортной сети: остановки, автобусные маршруты и дорожные
// расстояния. Предоставляет статистику маршрутов, список маршрутов через
// остановку и поиск самого быстрого пути с пересадками.
//
//	Schemes: http
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
