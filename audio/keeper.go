// Package audio provides volume-pinning domain logic.
// This file contains the Keeper, the loop that holds locked devices at
// their target level.
package audio

import (
	"sync"
	"time"

	"volumelock/common"
)

// KeeperConfig holds configuration for the volume keeper.
type KeeperConfig struct {
	// Interval is how often locked levels are reasserted.
	Interval time.Duration
	// TargetVolume is the level devices are held at.
	TargetVolume int
	// Devices are the device IDs to hold. Empty means every device the
	// controller reports.
	Devices []string
}

// DefaultKeeperConfig returns sensible defaults for volume keeping.
func DefaultKeeperConfig() KeeperConfig {
	return KeeperConfig{
		Interval:     common.KeeperInterval,
		TargetVolume: 50,
	}
}

// Keeper periodically reasserts the target volume on locked devices.
type Keeper struct {
	mu         sync.RWMutex
	config     KeeperConfig
	controller common.VolumeController
	running    bool
	stopChan   chan struct{}
	restores   int
	onRestore  func(deviceID string, from, to int)
}

// NewKeeper creates a keeper driving the given controller.
func NewKeeper(controller common.VolumeController, config KeeperConfig) *Keeper {
	config.TargetVolume = common.ClampVolume(config.TargetVolume)
	if config.Interval <= 0 {
		config.Interval = common.KeeperInterval
	}
	return &Keeper{
		config:     config,
		controller: controller,
		stopChan:   make(chan struct{}),
	}
}

// SetOnRestore sets a callback invoked after each corrected drift.
func (k *Keeper) SetOnRestore(callback func(deviceID string, from, to int)) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.onRestore = callback
}

// SetTargetVolume changes the level devices are held at.
func (k *Keeper) SetTargetVolume(level int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.config.TargetVolume = common.ClampVolume(level)
}

// TargetVolume returns the current hold level.
func (k *Keeper) TargetVolume() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.config.TargetVolume
}

// Start begins the keeping loop.
func (k *Keeper) Start() {
	k.mu.Lock()
	if k.running {
		k.mu.Unlock()
		return
	}
	k.running = true
	k.stopChan = make(chan struct{})
	k.mu.Unlock()

	common.LogInfo("Volume keeper started (interval: %v, target: %d)", k.config.Interval, k.TargetVolume())

	go k.runLoop()
}

// Stop stops the keeping loop.
func (k *Keeper) Stop() {
	k.mu.Lock()
	if !k.running {
		k.mu.Unlock()
		return
	}
	k.running = false
	close(k.stopChan)
	k.mu.Unlock()

	common.LogInfo("Volume keeper stopped")
}

// IsRunning returns whether the keeping loop is active.
func (k *Keeper) IsRunning() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.running
}

// Restores returns how many drift corrections the keeper has applied.
func (k *Keeper) Restores() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.restores
}

func (k *Keeper) runLoop() {
	k.mu.RLock()
	interval := k.config.Interval
	stopChan := k.stopChan
	k.mu.RUnlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Assert once on start so a drift that happened while unlocked is
	// corrected immediately.
	k.Sweep()

	for {
		select {
		case <-stopChan:
			return
		case <-ticker.C:
			k.Sweep()
		}
	}
}

// Sweep checks every held device once and restores any that drifted.
// Exported so callers can force an immediate assertion after changing
// the target.
func (k *Keeper) Sweep() {
	for _, id := range k.heldDevices() {
		k.holdDevice(id)
	}
}

// heldDevices resolves the device ID set for this sweep.
func (k *Keeper) heldDevices() []string {
	k.mu.RLock()
	configured := k.config.Devices
	k.mu.RUnlock()

	if len(configured) > 0 {
		return configured
	}

	devices, err := k.controller.Devices()
	if err != nil {
		common.LogWarn("Volume keeper: enumerating devices: %v", err)
		return nil
	}
	ids := make([]string, len(devices))
	for i, d := range devices {
		ids[i] = d.ID
	}
	return ids
}

func (k *Keeper) holdDevice(id string) {
	target := k.TargetVolume()

	current, err := k.controller.Volume(id)
	if err != nil {
		common.LogWarn("Volume keeper: reading %s: %v", id, err)
		return
	}
	if current == target {
		return
	}

	if err := k.controller.SetVolume(id, target); err != nil {
		common.LogWarn("Volume keeper: restoring %s: %v", id, err)
		return
	}

	common.LogDebug("Volume keeper: %s drifted to %d, restored to %d", id, current, target)

	k.mu.Lock()
	k.restores++
	callback := k.onRestore
	k.mu.Unlock()

	if callback != nil {
		callback(id, current, target)
	}
}
