package tray

import "volumelock/common"

// MenuItem is one entry in the tray context menu. A Separator item
// carries no title, glyph, or handler.
type MenuItem struct {
	Title     string
	Glyph     rune
	Disabled  bool
	Separator bool
	Handler   func()
}

// Menu is the tray context menu model handed to a Host. Hosts render
// it natively; the model itself is platform-free.
type Menu struct {
	Items []MenuItem
}

// Separator returns a separator item.
func Separator() MenuItem {
	return MenuItem{Separator: true}
}

// EstimateSize predicts the on-screen popup size before the shell has
// measured it. Item height comes from the host metric when available
// and a conventional default otherwise. The estimate feeds the
// positioning algorithm; a few pixels of error only shifts the popup,
// never breaks containment, since clamping runs on the final rect.
func (m *Menu) EstimateSize(itemHeight int) common.Size {
	if itemHeight <= 0 {
		itemHeight = common.DefaultMenuItemHeight
	}
	height := 2 * common.MenuFramePadding
	for _, item := range m.Items {
		if item.Separator {
			height += itemHeight / 2
			continue
		}
		height += itemHeight
	}
	return common.Size{Width: common.DefaultMenuWidth, Height: height}
}
