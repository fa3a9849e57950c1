package storefront

import "context"

// PublicFileStore looks up publicly stored files (product images) in object
// storage. Implemented by the S3 store and a stub for tests.
type PublicFileStore interface {
	// Exists reports whether a public file exists under the given key
	Exists(ctx context.Context, fileKey string) (bool, error)
	// PublicURL returns the public URL for a stored file key
	PublicURL(fileKey string) string
}
