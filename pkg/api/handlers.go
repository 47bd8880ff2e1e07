package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/arisng/agent-research/pkg/dbadmin"
)

const serviceName = "agent-research"

// searchRequestHandler handles POST /api/search.
func (s *Server) searchRequestHandler(c *echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
	}

	result, err := s.searchHandler.Handle(c.Request().Context(), req.Query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, &ResultResponse{Result: result})
}

// databaseRequestHandler handles POST /api/database.
func (s *Server) databaseRequestHandler(c *echo.Context) error {
	var req DatabaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
	}

	result, err := s.databaseHandler.Handle(c.Request().Context(), req.Request)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, &ResultResponse{Result: result})
}

// agentRequestHandler handles POST /api/agent, dispatching through the
// coordinator.
func (s *Server) agentRequestHandler(c *echo.Context) error {
	var req AgentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
	}

	result, err := s.coordinator.Dispatch(c.Request().Context(), req.Request)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, &ResultResponse{Result: result})
}

// healthHandler handles GET /api/health. Database unreachability degrades
// the status but the endpoint itself stays available.
func (s *Server) healthHandler(c *echo.Context) error {
	resp := &HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   serviceName,
	}

	if s.dbClient != nil {
		reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		dbHealth, err := dbadmin.Health(reqCtx, s.dbClient.DB())
		resp.Database = dbHealth
		if err != nil {
			resp.Status = "degraded"
		}
	}

	return c.JSON(http.StatusOK, resp)
}
