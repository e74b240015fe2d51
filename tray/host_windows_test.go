//go:build windows

package tray

import (
	"testing"

	"volumelock/common"
)

func TestTrayEvent(t *testing.T) {
	tests := []struct {
		name   string
		lparam uintptr
		want   uint32
	}{
		{"legacy right-up", wmRButtonUp, wmRButtonUp},
		{"legacy double-click", wmLButtonDblClk, wmLButtonDblClk},
		// Versioned callbacks carry the icon ID in HIWORD.
		{"versioned right-up", uintptr(trayIconID)<<16 | wmRButtonUp, wmRButtonUp},
		{"versioned double-click", uintptr(trayIconID)<<16 | wmLButtonDblClk, wmLButtonDblClk},
		{"versioned context menu", uintptr(trayIconID)<<16 | wmContextMenu, wmContextMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trayEvent(tt.lparam); got != tt.want {
				t.Errorf("trayEvent(%#x) = %#x, want %#x", tt.lparam, got, tt.want)
			}
		})
	}
}

func TestEventAnchor(t *testing.T) {
	h := &winHost{versioned: true}

	wparam := uintptr(uint16(400)) | uintptr(uint16(1070))<<16
	pt, ok := h.eventAnchor(wparam)
	if !ok {
		t.Fatal("eventAnchor() reported no anchor on a versioned host")
	}
	if (pt != common.Point{X: 400, Y: 1070}) {
		t.Errorf("eventAnchor() = %s, want (400,1070)", pt)
	}

	// Monitors left of the primary produce negative coordinates.
	wparam = uintptr(uint16(int16(-100))) | uintptr(uint16(int16(-5)))<<16
	pt, ok = h.eventAnchor(wparam)
	if !ok {
		t.Fatal("eventAnchor() reported no anchor")
	}
	if (pt != common.Point{X: -100, Y: -5}) {
		t.Errorf("eventAnchor() = %s, want (-100,-5)", pt)
	}
}

func TestEventAnchor_BeforeSetVersion(t *testing.T) {
	h := &winHost{}
	// Pre-version callbacks put the icon ID in wParam, not a point.
	if _, ok := h.eventAnchor(trayIconID); ok {
		t.Error("eventAnchor() produced an anchor before setversion")
	}
}
