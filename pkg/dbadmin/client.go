package dbadmin

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
)

const (
	// queryTimeout is the fixed server-side budget for Query.
	queryTimeout = 30 * time.Second

	// maxQueryRows caps rendered query results regardless of caller input.
	maxQueryRows = 100
)

// Client executes the five administrative operations against PostgreSQL.
// Every operation returns human-readable text on success; faults propagate
// as errors and are rendered only at the HTTP boundary.
type Client struct {
	db     *stdsql.DB
	dbName string
	logger *slog.Logger
}

// NewClient opens a pooled connection and verifies it with a ping.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := stdsql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{
		db:     db,
		dbName: cfg.Database,
		logger: slog.Default(),
	}, nil
}

// DB returns the underlying pool for health checks.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// CreateDatabase creates a database after validating the name. Creating a
// database that already exists is a no-op with a distinct message.
func (c *Client) CreateDatabase(ctx context.Context, name string) (string, error) {
	if err := ValidateIdentifier(name); err != nil {
		return "", err
	}

	var count int
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pg_database WHERE datname = $1", name).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("check database existence: %w", err)
	}
	if count > 0 {
		return fmt.Sprintf("Database '%s' already exists", name), nil
	}

	// DDL cannot be parameterized; the identifier passed the whitelist
	// above and is additionally quoted.
	if _, err := c.db.ExecContext(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		return "", fmt.Errorf("create database %s: %w", name, err)
	}

	c.logger.Info("Database created", "name", name)
	return fmt.Sprintf("Database '%s' created successfully", name), nil
}

// CreateTable creates a table in the connected database. Only the table
// name is validated; column definitions are embedded verbatim into the
// DDL (acknowledged trust boundary).
func (c *Client) CreateTable(ctx context.Context, name, columnDefs string) (string, error) {
	if err := ValidateIdentifier(name); err != nil {
		return "", err
	}

	var count int
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'public' AND table_name = $1",
		name).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("check table existence: %w", err)
	}
	if count > 0 {
		return fmt.Sprintf("Table '%s' already exists", name), nil
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (%s)", pgx.Identifier{name}.Sanitize(), columnDefs)
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return "", fmt.Errorf("create table %s: %w", name, err)
	}

	c.logger.Info("Table created", "name", name)
	return fmt.Sprintf("Table '%s' created successfully", name), nil
}

// Query runs a SELECT statement with a fixed timeout and renders up to
// maxQueryRows rows as a pipe-delimited table. Acceptance is solely on
// the case-insensitive leading token being SELECT.
func (c *Client) Query(ctx context.Context, sqlText string) (string, error) {
	if err := checkSelectOnly(sqlText); err != nil {
		return "", err
	}

	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := c.db.QueryContext(queryCtx, sqlText)
	if err != nil {
		return "", fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("read result columns: %w", err)
	}

	var rendered [][]string
	capped := false
	for rows.Next() {
		if len(rendered) == maxQueryRows {
			capped = true
			break
		}
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return "", fmt.Errorf("scan result row: %w", err)
		}
		rendered = append(rendered, formatRow(values))
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate result rows: %w", err)
	}

	return renderTable(columns, rendered, capped), nil
}

// ListDatabases renders all non-template databases as a bullet list.
func (c *Client) ListDatabases(ctx context.Context) (string, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT datname FROM pg_database WHERE datistemplate = false AND datname <> 'postgres' ORDER BY datname")
	if err != nil {
		return "", fmt.Errorf("list databases: %w", err)
	}
	defer rows.Close()

	names, err := scanNames(rows)
	if err != nil {
		return "", err
	}
	return renderBulletList(names, "No user databases found"), nil
}

// ListTables renders the public-schema tables of the connected database.
func (c *Client) ListTables(ctx context.Context) (string, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' AND table_type = 'BASE TABLE' ORDER BY table_name")
	if err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	names, err := scanNames(rows)
	if err != nil {
		return "", err
	}
	c.logger.Debug("Listed tables", "database", c.dbName, "count", len(names))
	return renderBulletList(names, "No tables found in database"), nil
}

func scanNames(rows *stdsql.Rows) ([]string, error) {
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate names: %w", err)
	}
	return names, nil
}

// formatRow converts scanned values into display strings. NULL renders as
// the literal NULL; byte slices are shown as text.
func formatRow(values []any) []string {
	cells := make([]string, len(values))
	for i, v := range values {
		switch val := v.(type) {
		case nil:
			cells[i] = "NULL"
		case []byte:
			cells[i] = string(val)
		case time.Time:
			cells[i] = val.Format(time.RFC3339)
		default:
			cells[i] = fmt.Sprintf("%v", val)
		}
	}
	return cells
}
