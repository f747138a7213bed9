package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pinpoint"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pinpoint.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements pinpoint.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateSnapshot stores a fetched page, replacing any previous snapshot of
// the same URL.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *pinpoint.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	snapshot.ID = uuid.New().String()
	snapshot.FetchedAt = time.Now().UTC()
	snapshot.ContentHash = hashContent(snapshot.HTML)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, url, title, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			id = excluded.id,
			title = excluded.title,
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, snapshot.ID, snapshot.URL, snapshot.Title, snapshot.HTML, snapshot.ContentHash,
		snapshot.FetchedAt.Format(time.RFC3339))

	return err
}

// FindSnapshotByURL retrieves the snapshot of a URL.
func (s *SnapshotService) FindSnapshotByURL(ctx context.Context, url string) (*pinpoint.Snapshot, error) {
	var snapshot pinpoint.Snapshot
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, html, content_hash, fetched_at
		FROM snapshots
		WHERE url = ?
	`, url).Scan(&snapshot.ID, &snapshot.URL, &snapshot.Title, &snapshot.HTML,
		&snapshot.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, pinpoint.Errorf(pinpoint.ENOTFOUND, "no snapshot of %q", url)
	}
	if err != nil {
		return nil, err
	}

	snapshot.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
// The html column is included, so listing many large snapshots is best done
// with a limit.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter pinpoint.SnapshotFilter) ([]*pinpoint.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, html, content_hash, fetched_at FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*pinpoint.Snapshot
	for rows.Next() {
		var snapshot pinpoint.Snapshot
		var fetchedAt string

		if err := rows.Scan(&snapshot.ID, &snapshot.URL, &snapshot.Title, &snapshot.HTML,
			&snapshot.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		snapshot.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		snapshots = append(snapshots, &snapshot)
	}

	return snapshots, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot by URL.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, url string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE url = ?", url)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pinpoint.Errorf(pinpoint.ENOTFOUND, "no snapshot of %q", url)
	}

	return nil
}
