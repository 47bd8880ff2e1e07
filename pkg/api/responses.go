package api

import "github.com/arisng/agent-research/pkg/dbadmin"

// ResultResponse is the success shape shared by the three POST endpoints.
type ResultResponse struct {
	Result string `json:"result"`
}

// ErrorResponse is the failure shape shared by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string                `json:"status"`
	Timestamp string                `json:"timestamp"`
	Service   string                `json:"service"`
	Database  *dbadmin.HealthStatus `json:"database,omitempty"`
}
