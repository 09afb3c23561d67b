package errors

import "net/http"

// Ошибки каталога и маршрутизации
var (
	ErrNotFound = New(
		"NOT_FOUND",
		"Entity not found",
		http.StatusNotFound,
	)

	ErrDuplicateStop = New(
		"DUPLICATE_STOP",
		"Stop already exists",
		http.StatusConflict,
	)

	ErrDuplicateBus = New(
		"DUPLICATE_BUS",
		"Bus line already exists",
		http.StatusConflict,
	)

	ErrInvalidTopology = New(
		"INVALID_TOPOLOGY",
		"Invalid bus line topology",
		http.StatusBadRequest,
	)

	ErrDistanceUnknown = New(
		"DISTANCE_UNKNOWN",
		"No distance recorded between stops",
		http.StatusUnprocessableEntity,
	)

	ErrUnknownStop = New(
		"UNKNOWN_STOP",
		"Stop is not registered",
		http.StatusBadRequest,
	)

	ErrDegenerateRoute = New(
		"DEGENERATE_ROUTE",
		"Geometric route length is zero, curvature is undefined",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidDistance = New(
		"INVALID_DISTANCE",
		"Distance must be non-negative",
		http.StatusBadRequest,
	)

	ErrInvalidRoutingSettings = New(
		"INVALID_ROUTING_SETTINGS",
		"Invalid routing settings",
		http.StatusBadRequest,
	)

	ErrRoutingNotConfigured = New(
		"ROUTING_NOT_CONFIGURED",
		"Routing settings are not configured",
		http.StatusServiceUnavailable,
	)
)

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
