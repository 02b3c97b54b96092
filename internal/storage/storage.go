package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a storage path resolves to nothing.
var ErrNotFound = errors.New("storage: object not found")

// Fetcher reads stored document bytes by the path recorded on the document
// row. The pipeline only ever reads; uploads go through a different surface.
type Fetcher interface {
	Fetch(ctx context.Context, storagePath string) ([]byte, error)
}
