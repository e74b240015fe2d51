//go:build windows

package tray

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"volumelock/common"
	"volumelock/iconfont"
)

const trayWindowClass = "VolumeLockTrayWnd"

// winHost is the native tray backend. A hidden window pumps messages
// on a locked OS thread; that thread is the UI thread, and every
// mutation of tray state runs there via Dispatch.
type winHost struct {
	layout   ScreenLayout
	resolver *iconfont.Resolver

	hwnd windows.Handle
	inst windows.Handle

	dispatch chan func()
	ready    chan struct{}
	done     chan struct{}
	closing  sync.Once

	loopErr error

	// UI-thread-only state below. No locks: only wndProc touches it.
	nid       notifyIconData
	icon      windows.Handle
	created   bool
	versioned bool
	menu      *Menu
	onDouble  func()
}

// trayEvent extracts the mouse event from a tray callback. Under
// NOTIFYICON_VERSION_4 the shell packs the event into LOWORD(lParam)
// with the icon ID in HIWORD; before setversion lParam is the bare
// event, for which the mask is the identity.
func trayEvent(lparam uintptr) uint32 {
	return uint32(lparam) & 0xFFFF
}

// eventAnchor returns the interaction point a versioned callback
// carries in wParam (signed 16-bit x/y). Reports false before
// setversion, when wParam holds the icon ID instead.
func (h *winHost) eventAnchor(wparam uintptr) (common.Point, bool) {
	if !h.versioned {
		return common.Point{}, false
	}
	return common.Point{
		X: int(int16(uint16(wparam & 0xFFFF))),
		Y: int(int16(uint16((wparam >> 16) & 0xFFFF))),
	}, true
}

// NewHost starts the native tray backend. The message loop is running
// when NewHost returns; failure to bring it up within the start
// timeout is a hard error.
func NewHost(layout ScreenLayout, resolver *iconfont.Resolver) (Host, error) {
	if layout == nil {
		layout = NewScreenLayout()
	}
	h := &winHost{
		layout:   layout,
		resolver: resolver,
		dispatch: make(chan func(), common.DispatchQueueSize),
		ready:    make(chan struct{}),
		done:     make(chan struct{}),
	}

	go h.run()

	select {
	case <-h.ready:
		return h, nil
	case <-h.done:
		return nil, common.WrapError(common.ErrTrayUnavailable, h.loopErr.Error())
	}
}

// run owns the UI thread for the life of the host.
func (h *winHost) run() {
	runtime.LockOSThread()
	defer close(h.done)

	inst, _, callErr := pGetModuleHandle.Call(0)
	if inst == 0 {
		h.loopErr = fmt.Errorf("GetModuleHandle: %v", callErr)
		return
	}
	h.inst = windows.Handle(inst)

	className, _ := windows.UTF16PtrFromString(trayWindowClass)
	wc := wndClassEx{
		Size:      uint32(unsafe.Sizeof(wndClassEx{})),
		WndProc:   windows.NewCallback(h.wndProc),
		Instance:  h.inst,
		ClassName: className,
	}
	if atom, _, callErr := pRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
		h.loopErr = fmt.Errorf("RegisterClassEx: %v", callErr)
		return
	}

	windowName, _ := windows.UTF16PtrFromString(common.AppName)
	hwnd, _, callErr := pCreateWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(windowName)),
		0, 0, 0, 0, 0, 0, 0,
		inst,
		0,
	)
	if hwnd == 0 {
		h.loopErr = fmt.Errorf("CreateWindowEx: %v", callErr)
		return
	}
	h.hwnd = windows.Handle(hwnd)
	close(h.ready)

	var m winMsg
	for {
		ret, _, _ := pGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(ret) {
		case 0, -1:
			return
		}
		pTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		pDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// wndProc must take uintptr-sized parameters only; NewCallback rejects
// anything narrower.
func (h *winHost) wndProc(hwnd, msg, wparam, lparam uintptr) uintptr {
	switch uint32(msg) {
	case wmDispatch:
		h.drainDispatch()
		return 0
	case wmTrayCb:
		switch trayEvent(lparam) {
		case wmLButtonDblClk:
			if h.onDouble != nil {
				h.onDouble()
			}
		case wmRButtonUp, wmContextMenu:
			h.showMenu(h.eventAnchor(wparam))
		}
		return 0
	case wmClose:
		pDestroyWindow.Call(hwnd)
		return 0
	case wmDestroy:
		if h.created {
			h.nid.call(nimDelete)
			h.created = false
		}
		destroyIconHandle(h.icon)
		h.icon = 0
		pPostQuitMessage.Call(0)
		return 0
	}
	ret, _, _ := pDefWindowProc.Call(hwnd, msg, wparam, lparam)
	return ret
}

func (h *winHost) drainDispatch() {
	for {
		select {
		case fn := <-h.dispatch:
			fn()
		default:
			return
		}
	}
}

// Dispatch queues fn onto the UI thread. Safe from any goroutine.
func (h *winHost) Dispatch(fn func()) {
	h.dispatch <- fn
	pPostMessage.Call(uintptr(h.hwnd), wmDispatch, 0, 0)
}

func (h *winHost) Create(tooltip string) error {
	if h.created {
		return nil
	}
	h.nid = notifyIconData{
		Size:            uint32(unsafe.Sizeof(notifyIconData{})),
		Wnd:             h.hwnd,
		ID:              trayIconID,
		Flags:           nifMessage | nifTip,
		CallbackMessage: wmTrayCb,
	}
	tip, err := windows.UTF16FromString(tooltip)
	if err != nil {
		return err
	}
	copy(h.nid.Tip[:], tip)

	if err := h.nid.call(nimAdd); err != nil {
		return fmt.Errorf("Shell_NotifyIcon add: %w", err)
	}
	h.created = true
	return nil
}

func (h *winHost) SetIcon(img image.Image) error {
	if !h.created {
		return errors.New("tray icon not created")
	}
	icon, err := iconFromImage(img)
	if err != nil {
		return err
	}

	destroyIconHandle(h.icon)
	h.icon = icon
	h.nid.Icon = icon
	h.nid.Flags |= nifIcon
	if err := h.nid.call(nimModify); err != nil {
		return fmt.Errorf("Shell_NotifyIcon modify: %w", err)
	}
	return nil
}

func (h *winHost) SetMenu(m *Menu) error {
	h.menu = m
	return nil
}

// ForceVisible opts the icon into versioned callback behavior, which
// also makes the shell materialize it immediately rather than parking
// it in the overflow area.
func (h *winHost) ForceVisible() error {
	if !h.created {
		return errors.New("tray icon not created")
	}
	h.nid.Timeout = notifyIconVersion
	if err := h.nid.call(nimSetVersion); err != nil {
		return fmt.Errorf("Shell_NotifyIcon setversion: %w", err)
	}
	h.versioned = true
	return nil
}

func (h *winHost) SetDoubleClickHandler(fn func()) {
	h.onDouble = fn
}

func (h *winHost) DestroyIcon() {
	if !h.created {
		return
	}
	if err := h.nid.call(nimDelete); err != nil {
		common.LogWarn("tray: Shell_NotifyIcon delete: %v", err)
	}
	destroyIconHandle(h.icon)
	h.icon = 0
	h.created = false
	h.versioned = false
}

func (h *winHost) Close() {
	h.closing.Do(func() {
		pPostMessage.Call(uintptr(h.hwnd), wmClose, 0, 0)
		<-h.done
	})
}

// showMenu pops the context menu at the position computed from the
// interaction point and taskbar geometry. Runs on the UI thread. The
// cursor position stands in when the callback carried no anchor.
func (h *winHost) showMenu(anchor common.Point, haveAnchor bool) {
	if h.menu == nil || len(h.menu.Items) == 0 {
		return
	}

	click := anchor
	if !haveAnchor {
		var cursor winPoint
		if ok, _, _ := pGetCursorPos.Call(uintptr(unsafe.Pointer(&cursor))); ok == 0 {
			return
		}
		click = common.Point{X: int(cursor.X), Y: int(cursor.Y)}
	}

	hmenu, _, _ := pCreatePopupMenu.Call()
	if hmenu == 0 {
		common.LogError("tray: CreatePopupMenu failed")
		return
	}
	defer pDestroyMenu.Call(hmenu)

	bitmaps := h.populateMenu(hmenu)
	defer func() {
		for _, bmp := range bitmaps {
			pDeleteObject.Call(uintptr(bmp))
		}
	}()

	itemHeight, _, _ := pGetSystemMetrics.Call(smCYMenu)
	size := h.menu.EstimateSize(int(itemHeight))
	pos := ComputeMenuPosition(h.layout, click, size)

	// Required so the menu dismisses when the user clicks elsewhere.
	pSetForegroundWnd.Call(uintptr(h.hwnd))
	cmd, _, _ := pTrackPopupMenu.Call(
		hmenu,
		tpmReturnCmd|tpmRightButton|tpmNoNotify,
		uintptr(int32(pos.X)),
		uintptr(int32(pos.Y)),
		0,
		uintptr(h.hwnd),
		0,
	)
	pPostMessage.Call(uintptr(h.hwnd), 0, 0, 0)

	if idx := int(cmd) - 1; idx >= 0 && idx < len(h.menu.Items) {
		if handler := h.menu.Items[idx].Handler; handler != nil {
			handler()
		}
	}
}

// populateMenu appends the model's items to hmenu and returns the glyph
// bitmaps it allocated, for release after the menu closes.
func (h *winHost) populateMenu(hmenu uintptr) []windows.Handle {
	var bitmaps []windows.Handle
	for i, item := range h.menu.Items {
		if item.Separator {
			pAppendMenu.Call(hmenu, mfSeparator, 0, 0)
			continue
		}

		flags := uintptr(mfString)
		if item.Disabled {
			flags |= mfGrayed
		}
		id := uintptr(i + 1)
		title, err := windows.UTF16PtrFromString(item.Title)
		if err != nil {
			continue
		}
		pAppendMenu.Call(hmenu, flags, id, uintptr(unsafe.Pointer(title)))

		if item.Glyph == 0 || h.resolver == nil {
			continue
		}
		img, err := h.resolver.RenderMenuGlyph(iconfont.Glyph{Codepoint: item.Glyph})
		if err != nil {
			common.LogWarn("tray: menu glyph for %q: %v", item.Title, err)
			continue
		}
		bmp, err := bitmapFromImage(img)
		if err != nil {
			common.LogWarn("tray: menu glyph bitmap for %q: %v", item.Title, err)
			continue
		}
		bitmaps = append(bitmaps, bmp)
		pSetMenuItemBitmaps.Call(hmenu, id, 0, uintptr(bmp), uintptr(bmp))
	}
	return bitmaps
}

func (nid *notifyIconData) call(op uintptr) error {
	res, _, err := pShellNotifyIcon.Call(op, uintptr(unsafe.Pointer(nid)))
	if res == 0 {
		return err
	}
	return nil
}
