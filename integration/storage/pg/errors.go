package pg

import "errors"

// Domain-specific Postgres errors for consistent error handling across the
// application. Use errors.Is() to check error types.
var (
	ErrFailedToParseConnString = errors.New("failed to parse postgres connection string")
	ErrEmptyConnectionURL      = errors.New("empty postgres connection URL")
	ErrPostgresNotReady        = errors.New("postgres did not become ready within the given time period")
	ErrHealthcheckFailed       = errors.New("postgres healthcheck failed")
	ErrSchemaSetupFailed       = errors.New("credential schema setup failed")
)
