// Package common provides shared constants, types, and utilities
// used across the Volume Lock application.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.volumelock.app"
	// AppName is the display name of the application.
	AppName = "Volume Lock"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "volumelock"
)

// File names used by the application.
const (
	ConfigFileName   = "config.yaml"
	SnapshotDBName   = "snapshots.db"
	LogFileName      = "volumelock.log"
	IconFontFileName = "fa-solid-900.ttf"
)

// Default timeouts and intervals.
const (
	// TrayStartTimeout is the maximum time to wait for the tray host to
	// come up before Initialize reports a hard failure.
	TrayStartTimeout = 8 * time.Second
	// KeeperInterval is how often the volume keeper reasserts locked levels.
	KeeperInterval = 1 * time.Second
	// DispatchQueueSize is the depth of the UI-thread dispatch queue.
	DispatchQueueSize = 32
)

// Icon rendering constants.
const (
	// TrayIconSize is the canvas size of the notification-area icon.
	TrayIconSize = 32
	// MenuGlyphSize is the fixed canvas size of menu item glyphs.
	MenuGlyphSize = 16
	// MenuGlyphFontSize is the font size used for menu glyphs. It is a
	// fixed constant tuned to the surrounding menu text so glyph
	// baselines line up, independent of MenuGlyphSize.
	MenuGlyphFontSize = 12
)

// Taskbar geometry constants.
const (
	// HorizontalSpanRatio is the fraction of the monitor width a taskbar
	// must cover to be classified as horizontal.
	HorizontalSpanRatio = 0.8
	// EdgeTolerance is how close (in pixels) a taskbar edge must be to
	// the monitor edge to count as docked on that edge.
	EdgeTolerance = 10
	// TaskbarGap is the vertical gap between the popup and a horizontal
	// taskbar.
	TaskbarGap = 2
	// SideOffset is the horizontal offset from the click point used for
	// vertical taskbars.
	SideOffset = 10
)

// Popup menu size estimation. The shell measures the real menu only
// after it is shown, so placement works from these conventional
// metrics when no host metric is available.
const (
	DefaultMenuWidth      = 200
	DefaultMenuItemHeight = 22
	MenuFramePadding      = 4
)

// Icon font glyph codepoints (Font Awesome solid set).
const (
	GlyphVolumeHigh = ''
	GlyphVolumeMute = ''
	GlyphLock       = ''
	GlyphLockOpen   = ''
	GlyphPlay       = ''
	GlyphPause      = ''
	GlyphCircle     = ''
	GlyphGear       = ''
	GlyphPower      = ''
	GlyphWindow     = ''
)

// Volume bounds.
const (
	MinVolume = 0
	MaxVolume = 100
)
