//go:build !windows

package tray

import (
	"errors"
	"image"
	"sync"
	"time"

	"fyne.io/systray"

	"volumelock/common"
	"volumelock/iconfont"
)

// Library entry points behind vars so tests can exercise the host
// lifecycle without a desktop shell.
var (
	systrayRun        = systray.Run
	systrayQuit       = systray.Quit
	systraySetTitle   = systray.SetTitle
	systraySetTooltip = systray.SetTooltip
	systraySetIcon    = systray.SetIcon
	systrayResetMenu  = systray.ResetMenu
)

// systrayHost is the tray backend for shells without a native taskbar
// query. It adapts the systray library to the Host surface; the menu is
// rebuilt by the library, so popup positioning is delegated to the
// desktop shell.
//
// The library's event loop cannot restart once quit, so the loop stays
// alive for the whole host lifetime: DestroyIcon blanks the icon and
// menu instead of quitting, and Close is the only place the loop dies.
type systrayHost struct {
	layout   ScreenLayout
	resolver *iconfont.Resolver

	dispatch chan func()
	done     chan struct{}
	closing  sync.Once

	mu          sync.Mutex
	loopRunning bool
	created     bool
	onDouble    func()
	clickWG     sync.WaitGroup
}

// NewHost starts the systray-backed tray backend.
func NewHost(layout ScreenLayout, resolver *iconfont.Resolver) (Host, error) {
	if layout == nil {
		layout = NewScreenLayout()
	}
	h := &systrayHost{
		layout:   layout,
		resolver: resolver,
		dispatch: make(chan func(), common.DispatchQueueSize),
		done:     make(chan struct{}),
	}
	// The library serializes its own native access; the dispatch worker
	// stands in for the UI thread so callers get the same ordering
	// guarantees as the native backend.
	go h.dispatchLoop()
	return h, nil
}

func (h *systrayHost) dispatchLoop() {
	for {
		select {
		case fn := <-h.dispatch:
			fn()
		case <-h.done:
			return
		}
	}
}

func (h *systrayHost) Dispatch(fn func()) {
	select {
	case h.dispatch <- fn:
	case <-h.done:
	}
}

func (h *systrayHost) Create(tooltip string) error {
	h.mu.Lock()
	if h.created {
		h.mu.Unlock()
		return nil
	}
	needStart := !h.loopRunning
	h.mu.Unlock()

	if needStart {
		readyCh := make(chan struct{})
		go systrayRun(func() { close(readyCh) }, func() {})

		select {
		case <-readyCh:
		case <-time.After(common.TrayStartTimeout):
			return errors.New("tray start timeout")
		}

		h.mu.Lock()
		h.loopRunning = true
		h.mu.Unlock()
	}

	systraySetTitle(common.AppName)
	systraySetTooltip(tooltip)

	h.mu.Lock()
	h.created = true
	h.mu.Unlock()
	return nil
}

func (h *systrayHost) SetIcon(img image.Image) error {
	data, err := iconfont.EncodePNG(img)
	if err != nil {
		return err
	}
	systraySetIcon(data)
	return nil
}

func (h *systrayHost) SetMenu(m *Menu) error {
	systrayResetMenu()
	for i := range m.Items {
		item := &m.Items[i]
		if item.Separator {
			systray.AddSeparator()
			continue
		}
		mi := systray.AddMenuItem(item.Title, item.Title)
		if item.Disabled {
			mi.Disable()
		}
		if item.Glyph != 0 && h.resolver != nil {
			if img, err := h.resolver.RenderMenuGlyph(iconfont.Glyph{Codepoint: item.Glyph}); err == nil {
				if data, err := iconfont.EncodePNG(img); err == nil {
					mi.SetIcon(data)
				}
			} else {
				common.LogWarn("tray: menu glyph for %q: %v", item.Title, err)
			}
		}
		if item.Handler == nil {
			continue
		}
		h.clickWG.Add(1)
		go func(mi *systray.MenuItem, handler func()) {
			defer h.clickWG.Done()
			for {
				select {
				case _, ok := <-mi.ClickedCh:
					if !ok {
						return
					}
					h.Dispatch(handler)
				case <-h.done:
					return
				}
			}
		}(mi, item.Handler)
	}
	return nil
}

// ForceVisible is a no-op: the library shows the icon as soon as it is
// set and this shell has no overflow-area API.
func (h *systrayHost) ForceVisible() error {
	return nil
}

// SetDoubleClickHandler stores the handler. The library reports no
// double clicks on most shells, so the action may be reachable only
// through the menu.
func (h *systrayHost) SetDoubleClickHandler(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onDouble = fn
}

// DestroyIcon blanks the icon and menu while the event loop keeps
// running, so a later Create can bring the presence back.
func (h *systrayHost) DestroyIcon() {
	h.mu.Lock()
	created := h.created
	h.created = false
	h.mu.Unlock()
	if !created {
		return
	}

	systrayResetMenu()
	if data, err := blankIcon(); err == nil {
		systraySetIcon(data)
	} else {
		common.LogWarn("tray: rendering blank icon: %v", err)
	}
}

func (h *systrayHost) Close() {
	h.closing.Do(func() {
		h.mu.Lock()
		running := h.loopRunning
		h.loopRunning = false
		h.created = false
		h.mu.Unlock()

		if running {
			systrayQuit()
		}
		close(h.done)
		h.clickWG.Wait()
	})
}

// blankIcon renders the fully transparent icon shown while hidden.
func blankIcon() ([]byte, error) {
	return iconfont.EncodePNG(image.NewRGBA(image.Rect(0, 0, common.MenuGlyphSize, common.MenuGlyphSize)))
}
