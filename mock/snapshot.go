package mock

import (
	"context"

	"github.com/fwojciec/pinpoint"
)

var _ pinpoint.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of pinpoint.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn    func(ctx context.Context, snapshot *pinpoint.Snapshot) error
	FindSnapshotByURLFn func(ctx context.Context, url string) (*pinpoint.Snapshot, error)
	FindSnapshotsFn     func(ctx context.Context, filter pinpoint.SnapshotFilter) ([]*pinpoint.Snapshot, error)
	DeleteSnapshotFn    func(ctx context.Context, url string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *pinpoint.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snapshot)
}

func (s *SnapshotService) FindSnapshotByURL(ctx context.Context, url string) (*pinpoint.Snapshot, error) {
	return s.FindSnapshotByURLFn(ctx, url)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter pinpoint.SnapshotFilter) ([]*pinpoint.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, url string) error {
	return s.DeleteSnapshotFn(ctx, url)
}
