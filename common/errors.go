// Package common provides shared constants, types, and utilities
// used across the Volume Lock application.
package common

import "errors"

// Sentinel errors for tray and rendering operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Icon font errors.
	ErrFontUnavailable  = errors.New("icon font unavailable")
	ErrGlyphUnavailable = errors.New("no font tier could render the glyph")

	// Geometry errors.
	ErrGeometryUnavailable = errors.New("taskbar geometry unavailable")
	ErrMonitorUnavailable  = errors.New("monitor bounds unavailable")

	// Tray lifecycle errors.
	ErrTrayUnavailable = errors.New("tray icon could not be created")
	ErrTrayDisposed    = errors.New("tray coordinator already disposed")
	ErrTrayState       = errors.New("operation not valid in current tray state")

	// Device errors.
	ErrDeviceNotFound = errors.New("audio device not found")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
