// Package cli provides command-line access to Volume Lock. This allows
// users to inspect devices and toggle the lock from the terminal
// without the tray presence.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"volumelock/audio"
	"volumelock/common"
	"volumelock/config"
	"volumelock/store"
)

// CLI represents the command-line interface.
type CLI struct {
	controller common.VolumeController
	cfg        *config.Config
	snapshots  common.SnapshotStore
}

// New creates a new CLI instance over the given controller. A nil
// controller selects the built-in mock backend.
func New(controller common.VolumeController) (*CLI, error) {
	if controller == nil {
		controller = audio.NewMockController(50,
			common.DeviceInfo{ID: "default", Name: "Default Output"},
		)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dataDir, err := common.GetDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	snapshots, err := store.Open(filepath.Join(dataDir, common.SnapshotDBName))
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	return &CLI{
		controller: controller,
		cfg:        cfg,
		snapshots:  snapshots,
	}, nil
}

// Close releases the snapshot store.
func (c *CLI) Close() error {
	return c.snapshots.Close()
}

// ListDevices lists the audio devices the controller reports.
func (c *CLI) ListDevices() error {
	devices, err := c.controller.Devices()
	if err != nil {
		return fmt.Errorf("failed to enumerate devices: %w", err)
	}

	if len(devices) == 0 {
		fmt.Println("No audio devices found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVOLUME\tLOCKED")
	fmt.Fprintln(w, "--\t----\t------\t------")

	for _, device := range devices {
		volume := "?"
		if level, err := c.controller.Volume(device.ID); err == nil {
			volume = fmt.Sprintf("%d%%", level)
		}

		locked := "No"
		if c.cfg.Locked && (len(c.cfg.Devices) == 0 || c.cfg.HasDevice(device.ID)) {
			locked = "Yes"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", device.ID, device.Name, volume, locked)
	}

	w.Flush()
	return nil
}

// Status prints the current lock state.
func (c *CLI) Status() error {
	fmt.Printf("Volume Lock\n")
	fmt.Printf("  Locked:        %v\n", c.cfg.Locked)
	fmt.Printf("  Target volume: %d%%\n", c.cfg.TargetVolume)
	if len(c.cfg.Devices) > 0 {
		fmt.Printf("  Devices:       %v\n", c.cfg.Devices)
	} else {
		fmt.Printf("  Devices:       all\n")
	}

	latest, err := c.snapshots.LatestSnapshots(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read snapshots: %w", err)
	}
	if len(latest) == 0 {
		return nil
	}

	fmt.Println("\nLast locked levels:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEVICE\tLEVEL\tLOCKED AT")
	for _, snap := range latest {
		fmt.Fprintf(w, "%s\t%d%%\t%s\n", snap.DeviceID, snap.Level, snap.LockedAt.Local().Format("2006-01-02 15:04:05"))
	}
	w.Flush()
	return nil
}

// Lock pins every configured device at its current level and records a
// snapshot of each.
func (c *CLI) Lock() error {
	devices, err := c.lockTargets()
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, id := range devices {
		level, err := c.controller.Volume(id)
		if err != nil {
			common.LogWarn("cli: reading %s before lock: %v", id, err)
			continue
		}
		if _, err := c.snapshots.SaveSnapshot(ctx, id, level); err != nil {
			return fmt.Errorf("failed to snapshot %s: %w", id, err)
		}
		fmt.Printf("Locked %s at %d%%\n", id, level)
	}

	c.cfg.Locked = true
	if err := c.cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	return nil
}

// Unlock releases the lock and clears the recorded snapshots.
func (c *CLI) Unlock() error {
	devices, err := c.lockTargets()
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, id := range devices {
		if err := c.snapshots.DeleteDevice(ctx, id); err != nil {
			common.LogWarn("cli: clearing snapshots for %s: %v", id, err)
		}
	}

	c.cfg.Locked = false
	if err := c.cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	fmt.Println("Volume lock released.")
	return nil
}

// lockTargets resolves the device IDs the lock applies to.
func (c *CLI) lockTargets() ([]string, error) {
	if len(c.cfg.Devices) > 0 {
		return c.cfg.Devices, nil
	}
	devices, err := c.controller.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate devices: %w", err)
	}
	ids := make([]string, len(devices))
	for i, d := range devices {
		ids[i] = d.ID
	}
	return ids, nil
}

// PrintHelp prints the command-line usage.
func PrintHelp() {
	fmt.Printf(`%s - pin audio device volumes

Usage:
  volumelock              Launch the tray application
  volumelock -devices     List audio devices
  volumelock -status      Show lock status
  volumelock -lock        Lock devices at their current levels
  volumelock -unlock      Release the lock
  volumelock -version     Show version information
  volumelock -verbose     Launch with debug logging
  volumelock -help        Show this help

`, common.AppName)
}
