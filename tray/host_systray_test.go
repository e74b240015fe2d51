//go:build !windows

package tray

import (
	"sync"
	"testing"
)

// systrayCalls records library entry-point invocations for a test.
type systrayCalls struct {
	mu       sync.Mutex
	runs     int
	quits    int
	resets   int
	icons    [][]byte
	tooltips []string
}

// stubSystray swaps the library entry points for recording fakes and
// restores them when the test ends.
func stubSystray(t *testing.T) *systrayCalls {
	t.Helper()
	c := &systrayCalls{}

	oldRun, oldQuit := systrayRun, systrayQuit
	oldTitle, oldTooltip := systraySetTitle, systraySetTooltip
	oldIcon, oldReset := systraySetIcon, systrayResetMenu
	t.Cleanup(func() {
		systrayRun, systrayQuit = oldRun, oldQuit
		systraySetTitle, systraySetTooltip = oldTitle, oldTooltip
		systraySetIcon, systrayResetMenu = oldIcon, oldReset
	})

	systrayRun = func(onReady, onExit func()) {
		c.mu.Lock()
		c.runs++
		c.mu.Unlock()
		onReady()
	}
	systrayQuit = func() {
		c.mu.Lock()
		c.quits++
		c.mu.Unlock()
	}
	systraySetTitle = func(string) {}
	systraySetTooltip = func(tooltip string) {
		c.mu.Lock()
		c.tooltips = append(c.tooltips, tooltip)
		c.mu.Unlock()
	}
	systraySetIcon = func(data []byte) {
		c.mu.Lock()
		c.icons = append(c.icons, data)
		c.mu.Unlock()
	}
	systrayResetMenu = func() {
		c.mu.Lock()
		c.resets++
		c.mu.Unlock()
	}
	return c
}

func (c *systrayCalls) snapshot() (runs, quits, resets, icons int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runs, c.quits, c.resets, len(c.icons)
}

func TestSystrayHost_HideShowCycle(t *testing.T) {
	calls := stubSystray(t)

	h, err := NewHost(stubLayout{}, nil)
	if err != nil {
		t.Fatalf("NewHost() error = %v", err)
	}

	if err := h.Create("Volume Lock"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if runs, _, _, _ := calls.snapshot(); runs != 1 {
		t.Fatalf("runs = %d after first Create, want 1", runs)
	}

	// Idempotent while created.
	if err := h.Create("Volume Lock"); err != nil {
		t.Fatalf("redundant Create() error = %v", err)
	}
	if runs, _, _, _ := calls.snapshot(); runs != 1 {
		t.Errorf("runs = %d after redundant Create, want 1", runs)
	}

	// Hiding blanks the presence but keeps the loop alive.
	h.DestroyIcon()
	if _, quits, resets, icons := calls.snapshot(); quits != 0 || resets != 1 || icons != 1 {
		t.Errorf("after DestroyIcon: quits=%d resets=%d icons=%d, want 0, 1, 1", quits, resets, icons)
	}

	// Show after Hide re-creates without restarting the loop.
	if err := h.Create("Volume Lock"); err != nil {
		t.Fatalf("Create() after DestroyIcon error = %v", err)
	}
	if runs, quits, _, _ := calls.snapshot(); runs != 1 || quits != 0 {
		t.Errorf("after re-Create: runs=%d quits=%d, want 1 and 0", runs, quits)
	}

	// Close is where the loop dies, exactly once.
	h.Close()
	h.Close()
	if _, quits, _, _ := calls.snapshot(); quits != 1 {
		t.Errorf("quits = %d after Close, want 1", quits)
	}
}

func TestSystrayHost_DestroyBeforeCreate(t *testing.T) {
	calls := stubSystray(t)

	h, err := NewHost(stubLayout{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	h.DestroyIcon()
	if _, _, resets, icons := calls.snapshot(); resets != 0 || icons != 0 {
		t.Errorf("DestroyIcon before Create touched the shell: resets=%d icons=%d", resets, icons)
	}
}

func TestSystrayHost_CloseWithoutCreate(t *testing.T) {
	calls := stubSystray(t)

	h, err := NewHost(stubLayout{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	h.Close()
	if _, quits, _, _ := calls.snapshot(); quits != 0 {
		t.Errorf("quits = %d for a never-started loop, want 0", quits)
	}
}
