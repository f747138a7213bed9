package pinpoint

import (
	"context"
	"time"
)

// Snapshot is a fetched page preserved for offline re-resolution. Only the
// page input is stored — resolution results are never persisted, since the
// live DOM they point into has no identity outside a resolution call.
type Snapshot struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	HTML        string    `json:"html"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "snapshot URL required")
	}
	if s.HTML == "" {
		return Errorf(EINVALID, "snapshot HTML required")
	}
	return nil
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SnapshotService represents a service for managing page snapshots.
type SnapshotService interface {
	// CreateSnapshot stores a fetched page, replacing any previous
	// snapshot of the same URL.
	CreateSnapshot(ctx context.Context, snapshot *Snapshot) error

	// FindSnapshotByURL retrieves the most recent snapshot of a URL.
	// Returns ENOTFOUND if no snapshot exists.
	FindSnapshotByURL(ctx context.Context, url string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot by URL.
	// Returns ENOTFOUND if no snapshot exists.
	DeleteSnapshot(ctx context.Context, url string) error
}
