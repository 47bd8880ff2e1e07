package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/arisng/agent-research/pkg/agent"
	"github.com/arisng/agent-research/pkg/dbadmin"
	"github.com/arisng/agent-research/pkg/search"
)

// writeError renders a fault as the {error} response shape. Structured
// errors propagate through the handlers and become text only here, at
// the outermost boundary. Validation-class faults map to 400.
func writeError(c *echo.Context, err error) error {
	status := http.StatusInternalServerError

	var validErr *agent.ValidationError
	switch {
	case errors.As(err, &validErr):
		status = http.StatusBadRequest
	case errors.Is(err, dbadmin.ErrInvalidIdentifier):
		status = http.StatusBadRequest
	case errors.Is(err, dbadmin.ErrNotSelect):
		status = http.StatusBadRequest
	case errors.Is(err, search.ErrEmptyQuery):
		status = http.StatusBadRequest
	default:
		slog.Error("Request failed", "error", err)
	}

	return c.JSON(status, &ErrorResponse{Error: err.Error()})
}
