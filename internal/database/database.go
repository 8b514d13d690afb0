// Package database provides the database abstraction layer for the camp API.
//
// The Database interface abstracts SurrealDB operations so repositories stay
// independent of the driver. Three query methods cover every access pattern:
//
//   - Query: returns multiple results (SELECT queries returning lists)
//   - QueryOne: returns a single result (SELECT by ID)
//   - Execute: no return value (UPDATE/DELETE mutations)
//
// Multi-statement writes that must succeed or fail together (record creation
// with a counter increment, cascade deletes) are built with AtomicBatch, which
// wraps the statements in BEGIN TRANSACTION / COMMIT TRANSACTION at execute
// time. See batch.go.
//
// Standard errors are defined for common failure cases and should be checked
// with errors.Is:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // handle missing record
//	}
package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, invalid reference, etc.).
	ErrQuery = errors.New("query error")
)

// Database defines the interface for database operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds database configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
