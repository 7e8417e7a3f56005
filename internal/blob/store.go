// Package blob defines the storage contract for raw attachment bytes.
package blob

import "context"

// Store persists raw bytes under a caller-supplied logical name and returns a
// locator usable for later retrieval. Callers namespace names by entry ID plus
// original filename; the store enforces no uniqueness beyond that, so saving
// the same name twice overwrites the earlier bytes.
//
// Save must never return a locator for data that was not fully written: a
// partial write surfaces as an error.
type Store interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}
