// Package common provides shared constants, types, and utilities
// used across the Volume Lock application.
package common

import (
	"context"
	"time"
)

// DeviceInfo describes an audio output device known to the host mixer.
type DeviceInfo struct {
	// ID is the stable platform identifier of the device.
	ID string
	// Name is the human-readable device name.
	Name string
}

// VolumeController abstracts the host audio mixer. The tray subsystem
// treats volume control as an external collaborator; implementations
// may bind the platform mixer or be in-memory fakes.
type VolumeController interface {
	// Devices enumerates the available output devices.
	Devices() ([]DeviceInfo, error)
	// Volume returns the current level (0-100) of a device.
	Volume(deviceID string) (int, error)
	// SetVolume sets the level (0-100) of a device.
	SetVolume(deviceID string, level int) error
}

// Snapshot records the level a device was pinned at when locking.
type Snapshot struct {
	ID       string
	DeviceID string
	Level    int
	LockedAt time.Time
}

// SnapshotStore persists pinned volume levels across restarts.
type SnapshotStore interface {
	// SaveSnapshot records the current level for a device.
	SaveSnapshot(ctx context.Context, deviceID string, level int) (*Snapshot, error)
	// LatestSnapshots returns the most recent snapshot per device.
	LatestSnapshots(ctx context.Context) ([]*Snapshot, error)
	// DeleteDevice removes all snapshots for a device.
	DeleteDevice(ctx context.Context, deviceID string) error
	// Close releases the underlying storage.
	Close() error
}

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// Notify sends a notification with the given title and message.
	Notify(title, message string) error
}

// Logger defines the interface for leveled logging.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}
