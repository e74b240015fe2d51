package tray

import "volumelock/common"

// ScreenLayout exposes the shell geometry queries the positioning
// algorithm needs. Implementations query the live desktop; tests
// substitute fabricated rectangles.
type ScreenLayout interface {
	// TaskbarBounds returns the taskbar window rectangle, or an error
	// wrapping common.ErrGeometryUnavailable when the shell cannot be
	// queried.
	TaskbarBounds() (common.Rect, error)

	// NotificationAreaBounds returns the notification-area rectangle
	// inside the taskbar.
	NotificationAreaBounds() (common.Rect, error)

	// MonitorBoundsAt returns the bounds of the monitor containing p,
	// or an error wrapping common.ErrMonitorUnavailable.
	MonitorBoundsAt(p common.Point) (common.Rect, error)
}
