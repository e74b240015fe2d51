//go:build windows

package tray

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"volumelock/common"
)

// shellLayout answers geometry queries against the live desktop shell.
// Every query hits the shell fresh; the taskbar can move between calls.
type shellLayout struct{}

// NewScreenLayout returns the shell-backed geometry source.
func NewScreenLayout() ScreenLayout {
	return shellLayout{}
}

func (shellLayout) TaskbarBounds() (common.Rect, error) {
	taskbar := findTaskbarWindow()
	if taskbar == 0 {
		return common.Rect{}, common.WrapError(common.ErrGeometryUnavailable, "taskbar window not found")
	}
	return windowRect(taskbar)
}

func (shellLayout) NotificationAreaBounds() (common.Rect, error) {
	taskbar := findTaskbarWindow()
	if taskbar == 0 {
		return common.Rect{}, common.WrapError(common.ErrGeometryUnavailable, "taskbar window not found")
	}
	className, _ := windows.UTF16PtrFromString("TrayNotifyWnd")
	area, _, _ := pFindWindowEx.Call(uintptr(taskbar), 0, uintptr(unsafe.Pointer(className)), 0)
	if area == 0 {
		return common.Rect{}, common.WrapError(common.ErrGeometryUnavailable, "notification area window not found")
	}
	return windowRect(windows.Handle(area))
}

func (shellLayout) MonitorBoundsAt(p common.Point) (common.Rect, error) {
	// MonitorFromPoint takes POINT by value, which the x64 ABI packs
	// into a single 8-byte argument.
	pt := uintptr(uint32(int32(p.X))) | uintptr(uint32(int32(p.Y)))<<32
	monitor, _, _ := pMonitorFromPoint.Call(pt, uintptr(monitorDefaultToNearest))
	if monitor == 0 {
		return common.Rect{}, common.WrapError(common.ErrMonitorUnavailable, "no monitor contains the point")
	}

	mi := monitorInfo{Size: uint32(unsafe.Sizeof(monitorInfo{}))}
	ok, _, _ := pGetMonitorInfo.Call(monitor, uintptr(unsafe.Pointer(&mi)))
	if ok == 0 {
		return common.Rect{}, common.WrapError(common.ErrMonitorUnavailable, "GetMonitorInfo failed")
	}
	return rectFromWin(mi.Monitor), nil
}

func findTaskbarWindow() windows.Handle {
	className, _ := windows.UTF16PtrFromString("Shell_TrayWnd")
	h, _, _ := pFindWindow.Call(uintptr(unsafe.Pointer(className)), 0)
	return windows.Handle(h)
}

func windowRect(h windows.Handle) (common.Rect, error) {
	var r winRect
	ok, _, _ := pGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return common.Rect{}, common.WrapError(common.ErrGeometryUnavailable, "GetWindowRect failed")
	}
	return rectFromWin(r), nil
}

func rectFromWin(r winRect) common.Rect {
	return common.Rect{
		X:      int(r.Left),
		Y:      int(r.Top),
		Width:  int(r.Right - r.Left),
		Height: int(r.Bottom - r.Top),
	}
}
