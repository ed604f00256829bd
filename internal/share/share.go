// Package share hands exported files to whatever lets the operator get them
// off the device: nothing at all, an S3 bucket, or a small download server.
package share

import (
	"context"
	"errors"
	"time"
)

var ErrSharingUnavailable = errors.New("sharing is not available")

// Link points at a shared file.
type Link struct {
	URL string
	// ExpiresAt is zero when the link does not expire.
	ExpiresAt time.Time
}

// Sharer publishes the file at path.
type Sharer interface {
	Share(ctx context.Context, path, mimeType string) (Link, error)
}

// Local leaves files on disk. It is the share target when nothing else is
// configured.
type Local struct{}

func (Local) Share(context.Context, string, string) (Link, error) {
	return Link{}, ErrSharingUnavailable
}
