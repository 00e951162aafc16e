// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"adinas/internal/delivery/http/middleware"
	"adinas/internal/delivery/http/response"
	"adinas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// actorFrom retrieves the authenticated actor set by the auth middleware.
// On routes behind OptionalAuthenticate the zero actor means anonymous.
func actorFrom(c echo.Context) entity.Actor {
	actor, _ := middleware.ActorFromContext(c)

	return actor
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" parameter")
	}

	return id, nil
}

// queryUUID parses an optional UUID query parameter. Absent or malformed
// values yield uuid.Nil.
func queryUUID(c echo.Context, name string) uuid.UUID {
	id, err := uuid.Parse(c.QueryParam(name))
	if err != nil {
		return uuid.Nil
	}

	return id
}

// queryInt parses an optional integer query parameter.
func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return v
}

// queryFloat parses an optional float query parameter.
func queryFloat(c echo.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.QueryParam(name), 64)
	if err != nil {
		return 0
	}

	return v
}

// queryBool parses an optional boolean query parameter.
func queryBool(c echo.Context, name string) bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	if err != nil {
		return false
	}

	return v
}

// queryDate parses an optional ISO date (2006-01-02) query parameter.
// Absent or malformed values yield the zero time.
func queryDate(c echo.Context, name string) time.Time {
	t, err := time.Parse("2006-01-02", c.QueryParam(name))
	if err != nil {
		return time.Time{}
	}

	return t
}
