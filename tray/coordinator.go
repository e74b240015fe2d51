package tray

import (
	"fmt"
	"image"
	"sync"

	"volumelock/common"
)

// State is the lifecycle state of the tray presence.
type State int

const (
	StateUninitialized State = iota
	StateActive
	StateHidden
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateHidden:
		return "hidden"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// Host is a platform backend owning the native tray icon. All methods
// except Dispatch must only be called from the host's UI thread; the
// Coordinator enforces that by routing every call through Dispatch.
type Host interface {
	// Create materializes the native icon object with the given tooltip.
	// Failure here is the one hard error of the subsystem.
	Create(tooltip string) error

	// SetIcon swaps the displayed image.
	SetIcon(img image.Image) error

	// SetMenu attaches the context menu shown on right click.
	SetMenu(m *Menu) error

	// ForceVisible asks the shell to materialize the icon immediately
	// instead of hiding it in the overflow area. Best effort.
	ForceVisible() error

	// SetDoubleClickHandler registers the double-click action.
	SetDoubleClickHandler(fn func())

	// Dispatch runs fn on the UI thread. Callable from any goroutine.
	Dispatch(fn func())

	// DestroyIcon removes the native icon object, leaving the host able
	// to Create again.
	DestroyIcon()

	// Close shuts the host down entirely.
	Close()
}

// IconLoader supplies the icon images shown in the tray.
type IconLoader interface {
	// TryLoadIcon renders and applies the initial icon. A false return
	// means the icon could not be rendered; the tray keeps running
	// without a custom image.
	TryLoadIcon(h Host) bool

	// UpdateIconState swaps the icon to reflect the paused flag.
	UpdateIconState(h Host, paused bool)
}

// MenuBuilder constructs the tray context menu.
type MenuBuilder interface {
	CreateMainContextMenu() (*Menu, error)
}

// Coordinator owns the single tray icon for the process lifetime and
// serializes every mutation onto the host's UI thread.
type Coordinator struct {
	host    Host
	loader  IconLoader
	builder MenuBuilder

	// onShowWindow runs when the user double-clicks the icon.
	onShowWindow func()

	mu    sync.Mutex
	state State
}

// NewCoordinator wires a coordinator over the given host and
// collaborators. The coordinator starts Uninitialized; nothing touches
// the shell until Initialize.
func NewCoordinator(host Host, loader IconLoader, builder MenuBuilder) *Coordinator {
	return &Coordinator{host: host, loader: loader, builder: builder}
}

// SetShowWindowHandler registers the action run on icon double-click.
// Must be called before Initialize.
func (c *Coordinator) SetShowWindowHandler(fn func()) {
	c.onShowWindow = fn
}

// State returns the current lifecycle state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Initialize creates the tray presence. Valid only from Uninitialized
// or Hidden. Icon creation failure propagates; icon rendering, menu
// construction, and force-create failures are logged and absorbed.
// When the icon image cannot be loaded, the remaining cosmetic steps
// are skipped and the tray still comes up Active.
func (c *Coordinator) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateDisposed:
		return common.WrapError(common.ErrTrayDisposed, "initialize")
	case StateActive:
		return fmt.Errorf("initialize from %s: %w", c.state, common.ErrTrayState)
	}

	var createErr error
	c.dispatchWait(func() {
		if createErr = c.host.Create(common.AppName); createErr != nil {
			return
		}

		if !c.loader.TryLoadIcon(c.host) {
			common.LogError("tray: icon image could not be loaded, skipping menu and force-create")
			return
		}

		if err := c.host.ForceVisible(); err != nil {
			common.LogWarn("tray: force-create failed: %v", err)
		}

		c.host.SetDoubleClickHandler(func() {
			if c.onShowWindow != nil {
				c.onShowWindow()
			}
		})

		menu, err := c.builder.CreateMainContextMenu()
		if err != nil {
			common.LogError("tray: building context menu: %v", err)
			return
		}
		if err := c.host.SetMenu(menu); err != nil {
			common.LogError("tray: attaching context menu: %v", err)
		}
	})

	if createErr != nil {
		return common.WrapError(common.ErrTrayUnavailable, createErr.Error())
	}

	c.state = StateActive
	common.LogInfo("tray: presence initialized")
	return nil
}

// UpdateTrayIcon swaps the displayed icon to match the paused flag.
// Fire and forget: it queues the update onto the UI thread and returns
// immediately. A no-op unless the tray is Active.
func (c *Coordinator) UpdateTrayIcon(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return
	}
	c.host.Dispatch(func() {
		c.loader.UpdateIconState(c.host, paused)
	})
}

// Hide removes the icon from the notification area. Idempotent; the
// coordinator transitions to Hidden and Show re-creates from scratch.
func (c *Coordinator) Hide() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return
	}
	c.dispatchWait(c.host.DestroyIcon)
	c.state = StateHidden
	common.LogInfo("tray: presence hidden")
}

// Show restores the tray presence after Hide by running Initialize
// again. A no-op while Active.
func (c *Coordinator) Show() error {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	switch state {
	case StateActive:
		return nil
	case StateDisposed:
		return common.WrapError(common.ErrTrayDisposed, "show")
	}
	return c.Initialize()
}

// Dispose tears the tray presence down permanently. Idempotent;
// Disposed is terminal and Initialize/Show fail afterwards.
func (c *Coordinator) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateDisposed {
		return
	}
	if c.state == StateActive {
		c.dispatchWait(c.host.DestroyIcon)
	}
	c.host.Close()
	c.state = StateDisposed
	common.LogInfo("tray: presence disposed")
}

// dispatchWait runs fn on the UI thread and blocks until it returns.
// Used for the lifecycle transitions that must complete synchronously
// from the caller's perspective.
func (c *Coordinator) dispatchWait(fn func()) {
	done := make(chan struct{})
	c.host.Dispatch(func() {
		defer close(done)
		fn()
	})
	<-done
}
