// Package tray provides the notification-area presence for Volume
// Lock. It covers:
//   - Popup menu placement relative to the taskbar, correct for all
//     four screen edges and clamped to the containing monitor
//   - A lifecycle coordinator owning the single tray icon for the
//     process, with all native mutation marshaled onto the UI thread
//   - Host backends: a native shell backend on Windows and a
//     systray-based backend elsewhere
//
// # Usage
//
//	layout := tray.NewScreenLayout()
//	host, err := tray.NewHost(layout, resolver)
//	if err != nil {
//	    return err
//	}
//	coord := tray.NewCoordinator(host, loader, builder)
//	if err := coord.Initialize(); err != nil {
//	    return err
//	}
//	defer coord.Dispose()
package tray
