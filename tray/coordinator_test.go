package tray

import (
	"errors"
	"image"
	"testing"

	"volumelock/common"
)

// fakeHost records calls and runs dispatched work inline, standing in
// for the UI thread.
type fakeHost struct {
	createErr  error
	setIconErr error
	menuErr    error
	forceErr   error

	createCalls  int
	destroyCalls int
	closeCalls   int
	icons        []image.Image
	menu         *Menu
	forceCalls   int
	onDouble     func()
}

func (f *fakeHost) Create(tooltip string) error {
	f.createCalls++
	return f.createErr
}

func (f *fakeHost) SetIcon(img image.Image) error {
	if f.setIconErr != nil {
		return f.setIconErr
	}
	f.icons = append(f.icons, img)
	return nil
}

func (f *fakeHost) SetMenu(m *Menu) error {
	if f.menuErr != nil {
		return f.menuErr
	}
	f.menu = m
	return nil
}

func (f *fakeHost) ForceVisible() error {
	f.forceCalls++
	return f.forceErr
}

func (f *fakeHost) SetDoubleClickHandler(fn func()) { f.onDouble = fn }
func (f *fakeHost) Dispatch(fn func())              { fn() }
func (f *fakeHost) DestroyIcon()                    { f.destroyCalls++ }
func (f *fakeHost) Close()                          { f.closeCalls++ }

// stubLoader reports a fixed load result and records updates.
type stubLoader struct {
	loadOK  bool
	loads   int
	updates []bool
}

func (s *stubLoader) TryLoadIcon(h Host) bool {
	s.loads++
	if !s.loadOK {
		return false
	}
	h.SetIcon(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	return true
}

func (s *stubLoader) UpdateIconState(h Host, paused bool) {
	s.updates = append(s.updates, paused)
}

type stubBuilder struct {
	menu *Menu
	err  error
}

func (s *stubBuilder) CreateMainContextMenu() (*Menu, error) {
	return s.menu, s.err
}

func newTestCoordinator(host *fakeHost, loader *stubLoader, builder *stubBuilder) *Coordinator {
	if loader == nil {
		loader = &stubLoader{loadOK: true}
	}
	if builder == nil {
		builder = &stubBuilder{menu: &Menu{Items: []MenuItem{{Title: "Exit"}}}}
	}
	return NewCoordinator(host, loader, builder)
}

func TestCoordinator_Initialize(t *testing.T) {
	host := &fakeHost{}
	c := newTestCoordinator(host, nil, nil)

	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if c.State() != StateActive {
		t.Errorf("state = %v, want active", c.State())
	}
	if host.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", host.createCalls)
	}
	if host.menu == nil {
		t.Error("menu was not attached")
	}
	if host.forceCalls != 1 {
		t.Errorf("forceCalls = %d, want 1", host.forceCalls)
	}
	if host.onDouble == nil {
		t.Error("double-click handler was not registered")
	}
}

func TestCoordinator_InitializeCreateFailure(t *testing.T) {
	host := &fakeHost{createErr: errors.New("shell refused")}
	c := newTestCoordinator(host, nil, nil)

	err := c.Initialize()
	if !errors.Is(err, common.ErrTrayUnavailable) {
		t.Fatalf("Initialize() error = %v, want ErrTrayUnavailable", err)
	}
	if c.State() != StateUninitialized {
		t.Errorf("state = %v, want uninitialized after create failure", c.State())
	}
}

func TestCoordinator_InitializeIconFailureSkipsRest(t *testing.T) {
	host := &fakeHost{}
	loader := &stubLoader{loadOK: false}
	c := newTestCoordinator(host, loader, nil)

	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v, want nil for icon-load failure", err)
	}
	if c.State() != StateActive {
		t.Errorf("state = %v, want active despite icon failure", c.State())
	}
	if host.menu != nil {
		t.Error("menu attached after icon-load failure, want skipped")
	}
	if host.forceCalls != 0 {
		t.Errorf("forceCalls = %d, want 0 after icon-load failure", host.forceCalls)
	}
}

func TestCoordinator_InitializeMenuFailureTolerated(t *testing.T) {
	host := &fakeHost{}
	builder := &stubBuilder{err: errors.New("builder broken")}
	c := newTestCoordinator(host, nil, builder)

	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v, want nil for menu failure", err)
	}
	if c.State() != StateActive {
		t.Errorf("state = %v, want active", c.State())
	}
}

func TestCoordinator_InitializeTwice(t *testing.T) {
	host := &fakeHost{}
	c := newTestCoordinator(host, nil, nil)

	if err := c.Initialize(); err != nil {
		t.Fatal(err)
	}
	if err := c.Initialize(); !errors.Is(err, common.ErrTrayState) {
		t.Errorf("second Initialize() error = %v, want ErrTrayState", err)
	}
	if host.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", host.createCalls)
	}
}

func TestCoordinator_UpdateTrayIcon(t *testing.T) {
	host := &fakeHost{}
	loader := &stubLoader{loadOK: true}
	c := newTestCoordinator(host, loader, nil)

	// No-op before Initialize.
	c.UpdateTrayIcon(true)
	if len(loader.updates) != 0 {
		t.Fatalf("updates before Initialize = %v, want none", loader.updates)
	}

	if err := c.Initialize(); err != nil {
		t.Fatal(err)
	}
	c.UpdateTrayIcon(true)
	c.UpdateTrayIcon(false)
	if len(loader.updates) != 2 || !loader.updates[0] || loader.updates[1] {
		t.Errorf("updates = %v, want [true false]", loader.updates)
	}

	c.Hide()
	c.UpdateTrayIcon(true)
	if len(loader.updates) != 2 {
		t.Errorf("update while hidden reached the loader: %v", loader.updates)
	}
}

func TestCoordinator_HideShow(t *testing.T) {
	host := &fakeHost{}
	c := newTestCoordinator(host, nil, nil)

	if err := c.Initialize(); err != nil {
		t.Fatal(err)
	}

	c.Hide()
	if c.State() != StateHidden {
		t.Fatalf("state = %v, want hidden", c.State())
	}
	if host.destroyCalls != 1 {
		t.Errorf("destroyCalls = %d, want 1", host.destroyCalls)
	}

	// Idempotent.
	c.Hide()
	if host.destroyCalls != 1 {
		t.Errorf("destroyCalls after second Hide = %d, want 1", host.destroyCalls)
	}

	// Show re-creates from scratch.
	if err := c.Show(); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if c.State() != StateActive {
		t.Errorf("state = %v, want active", c.State())
	}
	if host.createCalls != 2 {
		t.Errorf("createCalls = %d, want 2 (full re-creation)", host.createCalls)
	}

	// Show while active is a no-op.
	if err := c.Show(); err != nil {
		t.Fatal(err)
	}
	if host.createCalls != 2 {
		t.Errorf("createCalls after redundant Show = %d, want 2", host.createCalls)
	}
}

func TestCoordinator_Dispose(t *testing.T) {
	host := &fakeHost{}
	c := newTestCoordinator(host, nil, nil)

	if err := c.Initialize(); err != nil {
		t.Fatal(err)
	}

	c.Dispose()
	if c.State() != StateDisposed {
		t.Fatalf("state = %v, want disposed", c.State())
	}
	if host.destroyCalls != 1 || host.closeCalls != 1 {
		t.Errorf("destroyCalls = %d closeCalls = %d, want 1 and 1", host.destroyCalls, host.closeCalls)
	}

	// Idempotent; terminal.
	c.Dispose()
	if host.closeCalls != 1 {
		t.Errorf("closeCalls after second Dispose = %d, want 1", host.closeCalls)
	}
	if err := c.Initialize(); !errors.Is(err, common.ErrTrayDisposed) {
		t.Errorf("Initialize() after Dispose error = %v, want ErrTrayDisposed", err)
	}
	if err := c.Show(); !errors.Is(err, common.ErrTrayDisposed) {
		t.Errorf("Show() after Dispose error = %v, want ErrTrayDisposed", err)
	}
}

func TestCoordinator_DoubleClickHandler(t *testing.T) {
	host := &fakeHost{}
	c := newTestCoordinator(host, nil, nil)

	shown := false
	c.SetShowWindowHandler(func() { shown = true })

	if err := c.Initialize(); err != nil {
		t.Fatal(err)
	}
	host.onDouble()
	if !shown {
		t.Error("double click did not invoke the show-window handler")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateUninitialized, "uninitialized"},
		{StateActive, "active"},
		{StateHidden, "hidden"},
		{StateDisposed, "disposed"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
