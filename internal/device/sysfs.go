package device

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/five82/spriteclock/internal/state"
	"github.com/five82/spriteclock/internal/status"
)

// SysfsSource reads a Linux power_supply battery directory and the bluetooth
// class directory.
type SysfsSource struct {
	BatteryDir   string // e.g. /sys/class/power_supply/BAT0
	BluetoothDir string // e.g. /sys/class/bluetooth
}

// Read implements Source.
func (s SysfsSource) Read(ctx context.Context) (state.Sample, error) {
	if err := ctx.Err(); err != nil {
		return state.Sample{}, err
	}
	battery, err := readBattery(s.BatteryDir)
	if err != nil {
		return state.Sample{}, err
	}
	connected, err := readConnected(s.BluetoothDir)
	if err != nil {
		return state.Sample{}, err
	}
	return state.Sample{Battery: battery, Connected: connected}, nil
}

func readBattery(dir string) (status.Battery, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "capacity"))
	if err != nil {
		return status.Battery{}, fmt.Errorf("read battery capacity: %w", err)
	}
	percent, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return status.Battery{}, fmt.Errorf("parse battery capacity: %w", err)
	}

	raw, err = os.ReadFile(filepath.Join(dir, "status"))
	if err != nil {
		return status.Battery{}, fmt.Errorf("read battery status: %w", err)
	}
	plugged, charging := parseSupplyStatus(string(raw))

	return status.Battery{ChargePercent: percent, Plugged: plugged, Charging: charging}.Clamped(), nil
}

// parseSupplyStatus maps the power_supply status attribute to plugged and
// charging flags. "Full" and "Not charging" mean on power but not charging.
func parseSupplyStatus(raw string) (plugged, charging bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "charging":
		return true, true
	case "full", "not charging":
		return true, false
	default:
		return false, false
	}
}

// readConnected reports whether any bluetooth connection is up. The kernel
// adds an "hciN:handle" entry to the class directory for each connection.
func readConnected(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read bluetooth dir: %w", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "hci") && strings.Contains(entry.Name(), ":") {
			return true, nil
		}
	}
	return false, nil
}
