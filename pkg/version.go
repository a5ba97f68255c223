// Package namenest holds version information and the top-level
// interfaces that glue the pure packages to their I/O implementations.
package namenest

import "context"

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)

// Fetcher retrieves the raw name feed from its remote location.
// A returned error is routine: callers are expected to fall back
// to mock data instead of aborting.
type Fetcher interface {
	// Fetch performs a single attempt to download the feed.
	Fetch(ctx context.Context) ([]byte, error)

	// URL returns the endpoint the fetcher reads from.
	URL() string
}
