package pg

import "errors"

var (
	ErrEmptyConnectionString = errors.New("empty postgres connection string")
	ErrFailedToParseConfig   = errors.New("failed to parse postgres connection string")
	ErrDatabaseNotReady      = errors.New("postgres did not become ready within the given time period")
	ErrHealthcheckFailed     = errors.New("postgres healthcheck failed")
	ErrNilQuerier            = errors.New("postgres querier is required")
	ErrInvalidTable          = errors.New("invalid bundle table name")
)
