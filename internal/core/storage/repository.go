package storage

import (
	"context"
	"errors"

	v1 "github.com/dab97/stats-rgsu/internal/api/v1"
)

var (
	// ErrNotConfigured is returned when the source is missing the settings it
	// needs (credentials, dataset identifier, DSN). No I/O is attempted.
	ErrNotConfigured = errors.New("application source not configured")

	// ErrUnavailable wraps every failure of a configured source: network,
	// auth, unexpected status or an undecodable response.
	ErrUnavailable = errors.New("application source unavailable")
)

// ApplicationSource retrieves every admissions application from an upstream
// store, following its pagination until exhausted.
type ApplicationSource interface {
	FetchApplications(ctx context.Context) ([]v1.Application, error)
}
