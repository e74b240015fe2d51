package audio

import (
	"sync"

	"volumelock/common"
)

// MockController is an in-memory VolumeController for tests and for
// platforms without an audio backend.
type MockController struct {
	mu      sync.Mutex
	devices []common.DeviceInfo
	levels  map[string]int

	// Error injection for tests.
	DevicesErr   error
	VolumeErr    error
	SetVolumeErr error

	// SetCalls counts SetVolume invocations, including failed ones.
	SetCalls int
}

// NewMockController seeds a controller with the given devices, all at
// the given starting level.
func NewMockController(level int, devices ...common.DeviceInfo) *MockController {
	levels := make(map[string]int, len(devices))
	for _, d := range devices {
		levels[d.ID] = level
	}
	return &MockController{devices: devices, levels: levels}
}

func (m *MockController) Devices() ([]common.DeviceInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DevicesErr != nil {
		return nil, m.DevicesErr
	}
	out := make([]common.DeviceInfo, len(m.devices))
	copy(out, m.devices)
	return out, nil
}

func (m *MockController) Volume(deviceID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.VolumeErr != nil {
		return 0, m.VolumeErr
	}
	level, ok := m.levels[deviceID]
	if !ok {
		return 0, common.WrapError(common.ErrDeviceNotFound, deviceID)
	}
	return level, nil
}

func (m *MockController) SetVolume(deviceID string, level int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.SetVolumeErr != nil {
		return m.SetVolumeErr
	}
	if _, ok := m.levels[deviceID]; !ok {
		return common.WrapError(common.ErrDeviceNotFound, deviceID)
	}
	m.levels[deviceID] = common.ClampVolume(level)
	return nil
}

// Drift simulates an external volume change, bypassing clamping checks
// the real mixer would apply.
func (m *MockController) Drift(deviceID string, level int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.levels[deviceID]; ok {
		m.levels[deviceID] = level
	}
}
