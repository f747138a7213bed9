package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pinpoint"
	main "github.com/fwojciec/pinpoint/cmd/pinpoint"
	"github.com/fwojciec/pinpoint/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists snapshots with timestamp, URL, and title", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, _ pinpoint.SnapshotFilter) ([]*pinpoint.Snapshot, error) {
				return []*pinpoint.Snapshot{
					{
						ID:        "snap-123",
						URL:       "https://example.com/pricing",
						Title:     "Pricing",
						FetchedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:        "snap-456",
						URL:       "https://example.com/docs",
						Title:     "Docs",
						FetchedAt: time.Date(2026, 8, 2, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		cmd := &main.PagesListCmd{}
		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "https://example.com/pricing")
		assert.Contains(t, output, "Pricing")
		assert.Contains(t, output, "https://example.com/docs")
		assert.Contains(t, output, "2026-08-01T10:00:00Z")
	})

	t.Run("prints hint when no snapshots exist", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, _ pinpoint.SnapshotFilter) ([]*pinpoint.Snapshot, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		cmd := &main.PagesListCmd{}
		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No snapshots stored")
	})
}

func TestPagesDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		deleteCalled := false
		snapshots := &mock.SnapshotService{
			DeleteSnapshotFn: func(_ context.Context, _ string) error {
				deleteCalled = true
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		cmd := &main.PagesDeleteCmd{URL: "https://example.com/pricing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pinpoint.EINVALID, pinpoint.ErrorCode(err))
		assert.False(t, deleteCalled)
	})

	t.Run("deletes snapshot with --force", func(t *testing.T) {
		t.Parallel()

		var deletedURL string
		snapshots := &mock.SnapshotService{
			DeleteSnapshotFn: func(_ context.Context, url string) error {
				deletedURL = url
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		cmd := &main.PagesDeleteCmd{URL: "https://example.com/pricing", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/pricing", deletedURL)
		assert.Contains(t, stdout.String(), "Deleted snapshot")
	})

	t.Run("reports missing snapshot with hint", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			DeleteSnapshotFn: func(_ context.Context, url string) error {
				return pinpoint.Errorf(pinpoint.ENOTFOUND, "no snapshot of %q", url)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: snapshots,
		}

		cmd := &main.PagesDeleteCmd{URL: "https://example.com/missing", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pinpoint.ENOTFOUND, pinpoint.ErrorCode(err))
		assert.Contains(t, stderr.String(), "pages list")
	})
}
