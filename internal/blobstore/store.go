// Package blobstore moves opaque encrypted file payloads to and from an
// object store. Payloads arrive already encrypted; the store never sees
// plaintext and never needs to.
package blobstore

import "context"

// Store is a minimal byte-blob store keyed by storage key.
type Store interface {
	// Put uploads the payload under key.
	Put(ctx context.Context, key string, data []byte) error

	// Get downloads the payload stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the payload stored under key.
	Delete(ctx context.Context, key string) error
}
