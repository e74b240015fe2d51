// Package common provides shared constants, types, utilities, and interfaces
// used throughout the Volume Lock application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: Application-wide constants like glyph codepoints, icon sizes,
//     taskbar geometry thresholds, and file names
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Geometry: Point/Size/Rect value types shared by the tray positioner
//     and the platform hosts
//   - Interfaces: Abstractions for volume control, snapshot persistence,
//     and logging
//   - Logger: Leveled logging with optional rotating file output
//   - Utils: Common utility functions for file and path handling
//
// # Usage
//
// Import the package to access shared functionality:
//
//	import "volumelock/common"
//
//	// Use constants
//	size := common.TrayIconSize
//
//	// Use logger
//	common.LogInfo("Locking volume on %s", deviceName)
//
//	// Check errors
//	if errors.Is(err, common.ErrGeometryUnavailable) {
//	    // Fall back to the raw click point
//	}
package common
