package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/buses/{name}": {
            "get": {
                "description": "Возвращает число остановок, длину и извилистость маршрута",
                "produces": ["application/json"],
                "tags": ["Catalogue"],
                "summary": "Get bus line statistics",
                "parameters": [
                    {"type": "string", "description": "Bus name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stops/{name}": {
            "get": {
                "description": "Возвращает координаты остановки и маршруты через нее",
                "produces": ["application/json"],
                "tags": ["Catalogue"],
                "summary": "Get stop",
                "parameters": [
                    {"type": "string", "description": "Stop name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StopResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stops/{name}/buses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalogue"],
                "summary": "Get buses on stop",
                "parameters": [
                    {"type": "string", "description": "Stop name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StopBusesResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/route": {
            "get": {
                "description": "Ищет самый быстрый путь между остановками. Если пути нет, found=false",
                "produces": ["application/json"],
                "tags": ["Routing"],
                "summary": "Find the fastest route",
                "parameters": [
                    {"type": "string", "description": "Departure stop", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "Arrival stop", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RouteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/routing/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Routing"],
                "summary": "Get routing settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RoutingSettingsResponse"}}
                }
            },
            "put": {
                "description": "Перестраивает граф текущего каталога с новыми параметрами",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Routing"],
                "summary": "Update routing settings",
                "parameters": [
                    {"description": "Routing settings", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RoutingSettingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RoutingSettingsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.BusResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "topology": {"type": "string"},
                "stop_count": {"type": "integer"},
                "unique_stop_count": {"type": "integer"},
                "route_length": {"type": "integer"},
                "geo_length": {"type": "number"},
                "curvature": {"type": "number"}
            }
        },
        "dto.StopResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "buses": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.StopBusesResponse": {
            "type": "object",
            "properties": {
                "stop": {"type": "string"},
                "buses": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.RouteItem": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "stop_name": {"type": "string"},
                "bus": {"type": "string"},
                "span_count": {"type": "integer"},
                "time": {"type": "number"}
            }
        },
        "dto.RouteResponse": {
            "type": "object",
            "properties": {
                "from": {"type": "string"},
                "to": {"type": "string"},
                "found": {"type": "boolean"},
                "total_time": {"type": "number"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.RouteItem"}}
            }
        },
        "dto.RoutingSettingsRequest": {
            "type": "object",
            "properties": {
                "bus_wait_time": {"type": "integer", "minimum": 0},
                "bus_velocity": {"type": "number"}
            }
        },
        "dto.RoutingSettingsResponse": {
            "type": "object",
            "properties": {
                "configured": {"type": "boolean"},
                "bus_wait_time": {"type": "integer"},
                "bus_velocity": {"type": "number"},
                "generation": {"type": "integer"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "stops": {"type": "integer"},
                "bus_lines": {"type": "integer"},
                "routing": {"type": "boolean"},
                "generation": {"type": "integer"},
                "workers": {"type": "array", "items": {"$ref": "#/definitions/worker.Status"}}
            }
        },
        "worker.Status": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "consumer_group": {"type": "string"},
                "state": {"type": "string", "enum": ["registered", "running", "stopped", "failed"]},
                "reloads": {"type": "integer"},
                "failures": {"type": "integer"},
                "skipped": {"type": "integer"},
                "last_source": {"type": "string"},
                "last_reload_at": {"type": "string", "format": "date-time"},
                "last_error": {"type": "string"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Transport Catalogue API",
	Description:      "Справочник транспортной сети и поиск самого быстрого пути",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
