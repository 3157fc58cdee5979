package storage

import (
	"context"
	"io"
)

// FileStorage archives the raw spreadsheets an import was built from, so
// a reconciled batch can always be traced back to its source file.
type FileStorage interface {
	// Upload stores a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a previously archived file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
