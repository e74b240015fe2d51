//go:build windows

package tray

import (
	"golang.org/x/sys/windows"
)

// Win32 surface used by the native tray host and the shell geometry
// queries. Everything is resolved lazily so a missing entry point only
// fails the call that needs it.
var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	shell32  = windows.NewLazySystemDLL("shell32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	pRegisterClassEx    = user32.NewProc("RegisterClassExW")
	pCreateWindowEx     = user32.NewProc("CreateWindowExW")
	pDefWindowProc      = user32.NewProc("DefWindowProcW")
	pDestroyWindow      = user32.NewProc("DestroyWindow")
	pGetMessage         = user32.NewProc("GetMessageW")
	pTranslateMessage   = user32.NewProc("TranslateMessage")
	pDispatchMessage    = user32.NewProc("DispatchMessageW")
	pPostMessage        = user32.NewProc("PostMessageW")
	pPostQuitMessage    = user32.NewProc("PostQuitMessage")
	pCreatePopupMenu    = user32.NewProc("CreatePopupMenu")
	pAppendMenu         = user32.NewProc("AppendMenuW")
	pDestroyMenu        = user32.NewProc("DestroyMenu")
	pTrackPopupMenu     = user32.NewProc("TrackPopupMenu")
	pSetMenuItemBitmaps = user32.NewProc("SetMenuItemBitmaps")
	pSetForegroundWnd   = user32.NewProc("SetForegroundWindow")
	pGetCursorPos       = user32.NewProc("GetCursorPos")
	pGetSystemMetrics   = user32.NewProc("GetSystemMetrics")
	pFindWindow         = user32.NewProc("FindWindowW")
	pFindWindowEx       = user32.NewProc("FindWindowExW")
	pGetWindowRect      = user32.NewProc("GetWindowRect")
	pMonitorFromPoint   = user32.NewProc("MonitorFromPoint")
	pGetMonitorInfo     = user32.NewProc("GetMonitorInfoW")
	pCreateIconIndirect = user32.NewProc("CreateIconIndirect")
	pDestroyIcon        = user32.NewProc("DestroyIcon")

	pShellNotifyIcon = shell32.NewProc("Shell_NotifyIconW")

	pCreateBitmap = gdi32.NewProc("CreateBitmap")
	pDeleteObject = gdi32.NewProc("DeleteObject")

	pGetModuleHandle = kernel32.NewProc("GetModuleHandleW")
)

const (
	wmDestroy       = 0x0002
	wmClose         = 0x0010
	wmCommand       = 0x0111
	wmLButtonDblClk = 0x0203
	wmRButtonUp     = 0x0205
	wmContextMenu   = 0x007B
	wmApp           = 0x8000

	// Private messages on the hidden window.
	wmDispatch = wmApp + 1
	wmTrayCb   = wmApp + 2

	nimAdd        = 0x00000000
	nimModify     = 0x00000001
	nimDelete     = 0x00000002
	nimSetVersion = 0x00000004

	nifMessage = 0x00000001
	nifIcon    = 0x00000002
	nifTip     = 0x00000004

	notifyIconVersion = 4

	mfString    = 0x00000000
	mfGrayed    = 0x00000001
	mfSeparator = 0x00000800

	tpmReturnCmd   = 0x0100
	tpmRightButton = 0x0002
	tpmNoNotify    = 0x0080

	smCYMenu = 15

	monitorDefaultToNearest = 0x00000002

	trayIconID = 1
)

// Shell_NotifyIcon payload, matching NOTIFYICONDATAW. The Timeout
// field doubles as the version for NIM_SETVERSION (they share a union
// in the native layout).
type notifyIconData struct {
	Size                       uint32
	Wnd                        windows.Handle
	ID, Flags, CallbackMessage uint32
	Icon                       windows.Handle
	Tip                        [128]uint16
	State, StateMask           uint32
	Info                       [256]uint16
	Timeout                    uint32
	InfoTitle                  [64]uint16
	InfoFlags                  uint32
	GuidItem                   windows.GUID
	BalloonIcon                windows.Handle
}

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

type winMsg struct {
	Wnd     windows.Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      winPoint
}

type winPoint struct {
	X, Y int32
}

type winRect struct {
	Left, Top, Right, Bottom int32
}

type monitorInfo struct {
	Size    uint32
	Monitor winRect
	Work    winRect
	Flags   uint32
}

type iconInfo struct {
	FIcon    int32
	XHotspot uint32
	YHotspot uint32
	Mask     windows.Handle
	Color    windows.Handle
}
