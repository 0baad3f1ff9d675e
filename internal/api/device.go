package api

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"
)

// DeviceInfo identifies this device to the server. The server attributes
// the workout session lock to a device id, so the id must be stable across
// restarts.
type DeviceInfo struct {
	DeviceID   string
	DeviceName string
	OS         string
}

// GetDeviceInfo returns the current device identity, generating and
// persisting an id on first use.
func GetDeviceInfo() *DeviceInfo {
	return &DeviceInfo{
		DeviceID:   getOrCreateDeviceID(),
		DeviceName: getDeviceName(),
		OS:         runtime.GOOS,
	}
}

func getOrCreateDeviceID() string {
	dir, err := stateDir()
	if err != nil {
		// No persistent home; a per-process id still lets logging work.
		return uuid.New().String()
	}
	deviceFile := filepath.Join(dir, "device_id")

	if data, err := os.ReadFile(deviceFile); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id
		}
	}

	id := uuid.New().String()
	_ = os.WriteFile(deviceFile, []byte(id), 0600)
	return id
}

func getDeviceName() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "Unknown Device"
	}
	return hostname
}
