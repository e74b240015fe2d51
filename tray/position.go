package tray

import "volumelock/common"

// Orientation is the screen edge the taskbar currently occupies.
type Orientation int

const (
	OrientationBottom Orientation = iota
	OrientationTop
	OrientationLeft
	OrientationRight
)

func (o Orientation) String() string {
	switch o {
	case OrientationBottom:
		return "bottom"
	case OrientationTop:
		return "top"
	case OrientationLeft:
		return "left"
	case OrientationRight:
		return "right"
	default:
		return "unknown"
	}
}

// classifyOrientation derives the taskbar edge from its rectangle and
// the containing monitor's rectangle. A taskbar spanning at least 80%
// of the monitor width is horizontal; horizontal splits into top or
// bottom by whether its top edge sits within 10px of the monitor top.
// Vertical splits into left or right the same way on the x axis.
func classifyOrientation(taskbar, monitor common.Rect) Orientation {
	horizontal := float64(taskbar.Width) >= common.HorizontalSpanRatio*float64(monitor.Width)
	if horizontal {
		if abs(taskbar.Y-monitor.Y) <= common.EdgeTolerance {
			return OrientationTop
		}
		return OrientationBottom
	}
	if abs(taskbar.X-monitor.X) <= common.EdgeTolerance {
		return OrientationLeft
	}
	return OrientationRight
}

// ComputeMenuPosition computes the top-left point at which a popup of
// the given size should appear for a tray interaction at click. The
// result is always fully contained in the monitor holding the click
// point. Geometry is queried fresh on every call since the user may
// move the taskbar between invocations. Any geometry failure degrades
// to the raw click point.
func ComputeMenuPosition(layout ScreenLayout, click common.Point, popup common.Size) common.Point {
	taskbar, err := layout.TaskbarBounds()
	if err != nil {
		common.LogWarn("tray: taskbar geometry unavailable, using click point: %v", err)
		return click
	}

	monitor, err := layout.MonitorBoundsAt(click)
	if err != nil {
		common.LogWarn("tray: monitor bounds unavailable, using click point: %v", err)
		return click
	}

	// The notification-area rectangle is narrower than the taskbar and
	// would anchor the popup closer to the icon cluster, but offsets
	// are computed from the taskbar rectangle alone. Log when a click
	// lands outside the cluster so the discrepancy stays visible.
	if area, err := layout.NotificationAreaBounds(); err == nil && !area.Contains(click) {
		common.LogDebug("tray: click %s outside notification area %s", click, area)
	}

	var candidate common.Point
	switch classifyOrientation(taskbar, monitor) {
	case OrientationBottom:
		candidate = common.Point{
			X: click.X - popup.Width/2,
			Y: taskbar.Y - common.TaskbarGap - popup.Height,
		}
	case OrientationTop:
		candidate = common.Point{
			X: click.X - popup.Width/2,
			Y: taskbar.Bottom() + common.TaskbarGap,
		}
	case OrientationLeft:
		candidate = common.Point{
			X: click.X + common.SideOffset,
			Y: click.Y - popup.Height/2,
		}
	case OrientationRight:
		candidate = common.Point{
			X: click.X - popup.Width - common.SideOffset,
			Y: click.Y - popup.Height/2,
		}
	}

	return common.RectAt(candidate, popup).ClampInto(monitor).TopLeft()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
