package api

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query string `json:"query"`
}

// DatabaseRequest is the body of POST /api/database.
type DatabaseRequest struct {
	Request string `json:"request"`
}

// AgentRequest is the body of POST /api/agent.
type AgentRequest struct {
	Request string `json:"request"`
}
