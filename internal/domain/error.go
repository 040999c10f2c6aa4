package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound           = errors.New("entity not found")
	ErrAlreadyExists      = errors.New("entity already exists")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrScrapeFailed       = errors.New("source scrape failed")
	ErrInvalidLogin       = errors.New("invalid email or password")
	ErrForbidden          = errors.New("staff role not permitted")
	ErrReadDatabaseRow    = errors.New("failed to read database row")
	ErrInvalidExecContext = errors.New("invalid executor context")
)
