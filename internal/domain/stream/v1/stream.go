package streamv1

import "context"

// Entry is one record of an append-only stream.
type Entry struct {
	ID     ID
	Fields map[string]string
}

// Reader reads entries strictly after a cursor.
//
//go:generate mockgen -source stream.go -destination=mock/stream_mock.go -package=streamv1_mock
type Reader interface {
	// Read returns at most the configured count of entries with id > after, oldest first.
	// An empty slice with a nil error means nothing new arrived within the block window.
	// Entries whose id cannot be parsed are dropped by the reader.
	Read(ctx context.Context, stream string, after ID) ([]Entry, error)
}
