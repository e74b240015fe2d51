// Package main provides the entry point for Volume Lock.
// Volume Lock is a tray-resident utility that pins audio device
// volumes at a chosen level and restores them when another process
// changes them.
//
// Features:
//   - Persistent notification-area icon with a themed popup menu
//   - Icon-font glyph rendering with procedural fallback shapes
//   - Popup placement aware of the taskbar edge on every monitor
//   - Volume snapshots so a lock survives restarts
//   - Command-line interface for scripting and automation
//
// Usage:
//
//	volumelock [options]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"volumelock/cli"
	"volumelock/common"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// GUI/General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")

	// CLI flags
	listDevices = flag.Bool("devices", false, "List audio devices")
	showStatus  = flag.Bool("status", false, "Show lock status")
	lockNow     = flag.Bool("lock", false, "Lock devices at their current levels")
	unlockNow   = flag.Bool("unlock", false, "Release the lock")
)

func main() {
	flag.Parse()

	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  true,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	if *listDevices || *showStatus || *lockNow || *unlockNow {
		runCLI(ctx)
		return
	}

	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	app, err := newApplication()
	if err != nil {
		common.LogError("Startup failed: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := app.Run(ctx); err != nil {
		common.LogError("Application error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runCLI handles command-line interface operations.
func runCLI(ctx context.Context) {
	cliApp, err := cli.New(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cliApp.Close()

	select {
	case <-ctx.Done():
		common.LogInfo("Operation cancelled before execution")
		return
	default:
	}

	var cliErr error
	switch {
	case *listDevices:
		cliErr = cliApp.ListDevices()
	case *showStatus:
		cliErr = cliApp.Status()
	case *lockNow:
		cliErr = cliApp.Lock()
	case *unlockNow:
		cliErr = cliApp.Unlock()
	}

	if cliErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
		os.Exit(1)
	}
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
		cancel()
	}()
}
