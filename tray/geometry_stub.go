//go:build !windows

package tray

import "volumelock/common"

// stubLayout reports geometry as unavailable. The positioning
// algorithm degrades to the raw click point, which is the correct
// behavior on shells whose taskbar cannot be queried.
type stubLayout struct{}

// NewScreenLayout returns the geometry source for the current platform.
func NewScreenLayout() ScreenLayout {
	return stubLayout{}
}

func (stubLayout) TaskbarBounds() (common.Rect, error) {
	return common.Rect{}, common.WrapError(common.ErrGeometryUnavailable, "no taskbar query on this platform")
}

func (stubLayout) NotificationAreaBounds() (common.Rect, error) {
	return common.Rect{}, common.WrapError(common.ErrGeometryUnavailable, "no notification area query on this platform")
}

func (stubLayout) MonitorBoundsAt(p common.Point) (common.Rect, error) {
	return common.Rect{}, common.WrapError(common.ErrMonitorUnavailable, "no monitor query on this platform")
}
