// Package api exposes the HTTP boundary: three POST endpoints routing
// into the handlers plus a health endpoint.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/arisng/agent-research/pkg/agent"
	"github.com/arisng/agent-research/pkg/dbadmin"
)

// Dispatcher is the coordinator capability the server depends on.
type Dispatcher interface {
	Dispatch(ctx context.Context, request string) (string, error)
}

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	coordinator     Dispatcher
	searchHandler   agent.Handler
	databaseHandler agent.Handler
	dbClient        *dbadmin.Client // nil in tests without a database
}

// NewServer creates the API server and registers routes and middleware.
func NewServer(coordinator Dispatcher, searchHandler, databaseHandler agent.Handler, dbClient *dbadmin.Client) *Server {
	s := &Server{
		echo:            echo.New(),
		coordinator:     coordinator,
		searchHandler:   searchHandler,
		databaseHandler: databaseHandler,
		dbClient:        dbClient,
	}

	s.echo.Use(securityHeaders())
	s.echo.Use(requestID())
	s.echo.Use(requestLogger())

	api := s.echo.Group("/api")
	api.POST("/search", s.searchRequestHandler)
	api.POST("/database", s.databaseRequestHandler)
	api.POST("/agent", s.agentRequestHandler)
	api.GET("/health", s.healthHandler)

	return s
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
