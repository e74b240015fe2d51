package tray

import (
	"testing"

	"volumelock/common"
)

func TestMenuEstimateSize(t *testing.T) {
	menu := &Menu{Items: []MenuItem{
		{Title: "Lock Volume"},
		{Title: "Show Window"},
		Separator(),
		{Title: "Exit"},
	}}

	size := menu.EstimateSize(20)
	wantHeight := 2*common.MenuFramePadding + 3*20 + 10
	if size.Height != wantHeight {
		t.Errorf("height = %d, want %d", size.Height, wantHeight)
	}
	if size.Width != common.DefaultMenuWidth {
		t.Errorf("width = %d, want %d", size.Width, common.DefaultMenuWidth)
	}
}

func TestMenuEstimateSize_DefaultMetric(t *testing.T) {
	menu := &Menu{Items: []MenuItem{{Title: "Exit"}}}

	size := menu.EstimateSize(0)
	want := 2*common.MenuFramePadding + common.DefaultMenuItemHeight
	if size.Height != want {
		t.Errorf("height = %d, want %d from default item metric", size.Height, want)
	}
}

func TestSeparator(t *testing.T) {
	s := Separator()
	if !s.Separator || s.Title != "" || s.Handler != nil {
		t.Errorf("Separator() = %+v, want bare separator item", s)
	}
}
