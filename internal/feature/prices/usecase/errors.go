// Package usecase implements the business logic for the prices feature.
package usecase

import "errors"

var (
	// ErrNoData is returned when the provider has no price bars for a symbol
	// in any of the queried windows. It is distinct from a provider failure:
	// callers translate it to "not found" rather than "error".
	ErrNoData = errors.New("no data available")
)
