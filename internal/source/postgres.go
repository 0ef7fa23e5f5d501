package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lib/pq"
)

var tableName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// PostgresSource reads records straight from the table backing a path:
// "/goleiros" maps to table "goleiros". Rows are returned as JSON objects,
// so the document has the same shape the REST API serves.
type PostgresSource struct {
	db *sql.DB
}

// NewPostgresSource opens and pings a connection pool
func NewPostgresSource(dsn string) (*PostgresSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewPostgresSourceFromDB(db), nil
}

// NewPostgresSourceFromDB wraps an open pool
func NewPostgresSourceFromDB(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// TableForPath maps a logical path to a table identifier
func TableForPath(path string) (string, error) {
	name := strings.Trim(path, "/")
	if !tableName.MatchString(name) {
		return "", fmt.Errorf("path %q does not map to a table", path)
	}
	return name, nil
}

// Query returns the statement used to read path
func Query(path string) (string, error) {
	table, err := TableForPath(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		`SELECT COALESCE(json_agg(row_to_json(t)), '[]'::json) FROM %s t`,
		pq.QuoteIdentifier(table),
	), nil
}

// Request aggregates the table's rows into a JSON array
func (s *PostgresSource) Request(ctx context.Context, path string) (interface{}, error) {
	query, err := Query(path)
	if err != nil {
		return nil, err
	}

	var doc []byte
	if err := s.db.QueryRowContext(ctx, query).Scan(&doc); err != nil {
		return nil, fmt.Errorf("querying %s: %w", path, err)
	}

	return decodeJSONBytes(doc)
}

// Ping checks the database connection
func (s *PostgresSource) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the pool
func (s *PostgresSource) Close() error {
	return s.db.Close()
}
