// Package store persists volume snapshots so a lock survives restarts:
// when the application comes back up it re-pins each device at the
// level recorded when the lock was taken.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"volumelock/common"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id         TEXT PRIMARY KEY,
	device_id  TEXT NOT NULL,
	level      INTEGER NOT NULL,
	locked_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_device ON snapshots(device_id, locked_at DESC);
`

// Store is the SQLite-backed SnapshotStore.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the snapshot database at path.
func Open(path string) (*Store, error) {
	dsn := path + "?_journal_mode=WAL&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}
	// A single writer keeps WAL happy and sidesteps SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating snapshot db: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveSnapshot records the level a device was locked at.
func (s *Store) SaveSnapshot(ctx context.Context, deviceID string, level int) (*common.Snapshot, error) {
	snap := &common.Snapshot{
		ID:       uuid.NewString(),
		DeviceID: deviceID,
		Level:    common.ClampVolume(level),
		LockedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, device_id, level, locked_at) VALUES (?, ?, ?, ?)`,
		snap.ID, snap.DeviceID, snap.Level, snap.LockedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("saving snapshot for %s: %w", deviceID, err)
	}
	return snap, nil
}

// LatestSnapshots returns the most recent snapshot per device.
func (s *Store) LatestSnapshots(ctx context.Context) ([]*common.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.device_id, s.level, s.locked_at
		FROM snapshots s
		JOIN (
			SELECT device_id, MAX(locked_at) AS latest
			FROM snapshots
			GROUP BY device_id
		) m ON s.device_id = m.device_id AND s.locked_at = m.latest
		ORDER BY s.device_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var out []*common.Snapshot
	for rows.Next() {
		snap := &common.Snapshot{}
		if err := rows.Scan(&snap.ID, &snap.DeviceID, &snap.Level, &snap.LockedAt); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// DeleteDevice removes every snapshot for a device, typically when the
// user unlocks it.
func (s *Store) DeleteDevice(ctx context.Context, deviceID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE device_id = ?`, deviceID)
	if err != nil {
		return fmt.Errorf("deleting snapshots for %s: %w", deviceID, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
