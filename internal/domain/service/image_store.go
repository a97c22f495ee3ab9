package service

import (
	"context"

	"nutriledger/internal/errors"
)

// ErrImageNotFound is returned when a stored image does not exist.
var ErrImageNotFound = errors.New("image not found")

// ImageStore keeps the raw meal photos. Keys are opaque to callers.
type ImageStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, string, error)
	Delete(ctx context.Context, key string) error
}
