package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arisng/agent-research/pkg/dbadmin"
	"github.com/arisng/agent-research/pkg/llm"
)

// Extraction fallbacks used when the LLM reply yields nothing usable.
const (
	fallbackDatabaseName = "TestDB"
	fallbackTableName    = "TestTable"
	fallbackTableColumns = "Id INT PRIMARY KEY"
	fallbackSQL          = "SELECT 1"
)

// databaseHelpText is returned when no operation matches; no delegated
// call is made in that case.
const databaseHelpText = `I can help with database operations:
- "list databases" or "show databases"
- "list tables" or "show tables"
- "create database <name>"
- "create table <name> with <columns>"
- "query select ..." to run a SELECT statement`

// DatabaseAdmin is the database-client capability the handler depends on.
type DatabaseAdmin interface {
	CreateDatabase(ctx context.Context, name string) (string, error)
	CreateTable(ctx context.Context, name, columnDefs string) (string, error)
	Query(ctx context.Context, sqlText string) (string, error)
	ListDatabases(ctx context.Context) (string, error)
	ListTables(ctx context.Context) (string, error)
}

// DatabaseHandler interprets free-text database requests. Classification
// is first-match-wins over an ordered set of substring predicates on the
// lowercased request; structured parameters are extracted via the LLM.
type DatabaseHandler struct {
	db  DatabaseAdmin
	llm llm.Client
	// friendlyOutput re-formats the final result through a second LLM call.
	friendlyOutput bool
	logger         *slog.Logger
}

// NewDatabaseHandler creates a database handler.
func NewDatabaseHandler(db DatabaseAdmin, llmClient llm.Client, friendlyOutput bool) *DatabaseHandler {
	return &DatabaseHandler{
		db:             db,
		llm:            llmClient,
		friendlyOutput: friendlyOutput,
		logger:         slog.Default(),
	}
}

// Handle classifies and executes the request. Rule order matters: listing
// rules are checked before the query rule so a request mentioning both
// routes to the listing operation.
func (h *DatabaseHandler) Handle(ctx context.Context, request string) (string, error) {
	if strings.TrimSpace(request) == "" {
		return "", NewValidationError("request", "must not be empty")
	}

	lower := strings.ToLower(request)

	var (
		result string
		err    error
	)
	switch {
	case strings.Contains(lower, "list database") || strings.Contains(lower, "show database"):
		result, err = h.db.ListDatabases(ctx)

	case strings.Contains(lower, "list table") || strings.Contains(lower, "show table"):
		result, err = h.db.ListTables(ctx)

	case strings.Contains(lower, "create database"):
		name := h.extractDatabaseName(ctx, request)
		result, err = h.db.CreateDatabase(ctx, name)

	case strings.Contains(lower, "create table"):
		name, columns := h.extractTableDef(ctx, request)
		result, err = h.db.CreateTable(ctx, name, columns)

	case strings.Contains(lower, "select ") || strings.Contains(lower, "query"):
		sqlText := h.extractSQL(ctx, request)
		result, err = h.db.Query(ctx, sqlText)

	default:
		return databaseHelpText, nil
	}
	if err != nil {
		return "", err
	}

	if h.friendlyOutput {
		return h.reformat(ctx, result)
	}
	return result, nil
}

// extractDatabaseName asks the LLM for the database name, falling back to
// a fixed default when the reply is not a usable identifier.
func (h *DatabaseHandler) extractDatabaseName(ctx context.Context, request string) string {
	reply, err := h.llm.Complete(ctx, llm.UserMessage(fmt.Sprintf(extractDatabaseNamePrompt, request)))
	if err != nil {
		h.logger.Warn("Database name extraction failed, using fallback", "error", err)
		return fallbackDatabaseName
	}
	return usableIdentifier(reply, fallbackDatabaseName)
}

// extractTableDef asks the LLM for a "name|columns" pair. A missing
// column list falls back to a single-column default.
func (h *DatabaseHandler) extractTableDef(ctx context.Context, request string) (string, string) {
	reply, err := h.llm.Complete(ctx, llm.UserMessage(fmt.Sprintf(extractTableDefPrompt, request)))
	if err != nil {
		h.logger.Warn("Table definition extraction failed, using fallback", "error", err)
		reply = fallbackTableName + "|" + "Id INT"
	}

	cleaned := cleanReply(reply)
	name, columns := cleaned, ""
	if idx := strings.Index(cleaned, "|"); idx >= 0 {
		name, columns = cleaned[:idx], cleaned[idx+1:]
	}

	name = usableIdentifier(name, fallbackTableName)
	columns = strings.TrimSpace(columns)
	if columns == "" {
		columns = fallbackTableColumns
	}
	return name, columns
}

// extractSQL asks the LLM for the SQL statement. Content is not validated
// here; the database client enforces the SELECT-only guard.
func (h *DatabaseHandler) extractSQL(ctx context.Context, request string) string {
	reply, err := h.llm.Complete(ctx, llm.UserMessage(fmt.Sprintf(extractSQLPrompt, request)))
	if err != nil {
		h.logger.Warn("SQL extraction failed, using fallback", "error", err)
		return fallbackSQL
	}
	cleaned := cleanReply(reply)
	if cleaned == "" {
		return fallbackSQL
	}
	return cleaned
}

// reformat runs the friendly-output pass. An empty reply keeps the raw text.
func (h *DatabaseHandler) reformat(ctx context.Context, result string) (string, error) {
	reply, err := h.llm.Complete(ctx, llm.UserMessage(fmt.Sprintf(friendlyResultPrompt, result)))
	if err != nil {
		return "", fmt.Errorf("reformat result: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return result, nil
	}
	return reply, nil
}

// cleanReply strips markdown code fences and surrounding whitespace from
// an LLM reply.
func cleanReply(reply string) string {
	cleaned := strings.TrimSpace(reply)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```sql")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return strings.Trim(cleaned, "\"'`")
}

// usableIdentifier returns the first whitespace-separated token of the
// reply if it passes the identifier whitelist, else the fallback.
func usableIdentifier(reply, fallback string) string {
	fields := strings.Fields(cleanReply(reply))
	if len(fields) == 0 {
		return fallback
	}
	candidate := strings.Trim(fields[0], ".,;:")
	if err := dbadmin.ValidateIdentifier(candidate); err != nil {
		return fallback
	}
	return candidate
}
