package device

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/spriteclock/internal/status"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestSysfsSource_Read(t *testing.T) {
	battery := t.TempDir()
	bluetooth := t.TempDir()
	writeFile(t, filepath.Join(battery, "capacity"), "55\n")
	writeFile(t, filepath.Join(battery, "status"), "Discharging\n")
	if err := os.Mkdir(filepath.Join(bluetooth, "hci0"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	src := SysfsSource{BatteryDir: battery, BluetoothDir: bluetooth}
	sample, err := src.Read(context.Background())
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	want := status.Battery{ChargePercent: 55}
	if sample.Battery != want || sample.Connected {
		t.Fatalf("sample = %+v, want battery %+v disconnected", sample, want)
	}

	if err := os.Mkdir(filepath.Join(bluetooth, "hci0:256"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	writeFile(t, filepath.Join(battery, "status"), "Charging\n")
	sample, err = src.Read(context.Background())
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !sample.Connected || !sample.Battery.Plugged || !sample.Battery.Charging {
		t.Fatalf("sample = %+v, want connected and charging", sample)
	}
}

func TestSysfsSource_MissingBluetoothDirIsDisconnected(t *testing.T) {
	battery := t.TempDir()
	writeFile(t, filepath.Join(battery, "capacity"), "100")
	writeFile(t, filepath.Join(battery, "status"), "Full")

	src := SysfsSource{BatteryDir: battery, BluetoothDir: filepath.Join(t.TempDir(), "absent")}
	sample, err := src.Read(context.Background())
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if sample.Connected {
		t.Fatalf("Connected = true, want false")
	}
	if got := status.BatteryIcon(sample.Battery); got != status.IconBattOK {
		t.Fatalf("icon = %q, want %q", got, status.IconBattOK)
	}
}

func TestSysfsSource_Errors(t *testing.T) {
	battery := t.TempDir()
	src := SysfsSource{BatteryDir: battery, BluetoothDir: t.TempDir()}

	if _, err := src.Read(context.Background()); err == nil || !strings.Contains(err.Error(), "read battery capacity") {
		t.Fatalf("Read error = %v, want read battery capacity", err)
	}

	writeFile(t, filepath.Join(battery, "capacity"), "lots")
	if _, err := src.Read(context.Background()); err == nil || !strings.Contains(err.Error(), "parse battery capacity") {
		t.Fatalf("Read error = %v, want parse battery capacity", err)
	}

	writeFile(t, filepath.Join(battery, "capacity"), "140")
	if _, err := src.Read(context.Background()); err == nil || !strings.Contains(err.Error(), "read battery status") {
		t.Fatalf("Read error = %v, want read battery status", err)
	}

	writeFile(t, filepath.Join(battery, "status"), "Unknown")
	sample, err := src.Read(context.Background())
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if sample.Battery.ChargePercent != 100 {
		t.Fatalf("ChargePercent = %d, want clamped 100", sample.Battery.ChargePercent)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.Read(ctx); err == nil {
		t.Fatalf("Read with cancelled context returned nil error")
	}
}

func TestParseSupplyStatus(t *testing.T) {
	cases := []struct {
		in                string
		plugged, charging bool
	}{
		{"Charging\n", true, true},
		{"Full", true, false},
		{"Not charging", true, false},
		{"Discharging", false, false},
		{"Unknown", false, false},
		{"", false, false},
	}
	for _, tc := range cases {
		plugged, charging := parseSupplyStatus(tc.in)
		if plugged != tc.plugged || charging != tc.charging {
			t.Fatalf("parseSupplyStatus(%q) = %v, %v, want %v, %v", tc.in, plugged, charging, tc.plugged, tc.charging)
		}
	}
}

func TestSimSource_Cycle(t *testing.T) {
	src := NewSimSource(20)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		sample, err := src.Read(ctx)
		if err != nil {
			t.Fatalf("Read returned error: %v", err)
		}
		b := sample.Battery
		if b.ChargePercent < 0 || b.ChargePercent > 100 {
			t.Fatalf("step %d: ChargePercent = %d out of range", i, b.ChargePercent)
		}
		if b.Charging && !b.Plugged {
			t.Fatalf("step %d: charging while unplugged", i)
		}
		seen[string(status.BatteryIcon(b))] = true
		seen[string(status.ConnectivityIcon(sample.Connected))] = true
	}

	for _, icon := range []string{"batt_ok", "batt_charging", "batt_full", "batt_med", "batt_low", "batt_critical", "phone_ok", "phone_x"} {
		if !seen[icon] {
			t.Fatalf("simulation never produced %s", icon)
		}
	}
}

func TestSimSource_FirstReadIsStartingState(t *testing.T) {
	src := NewSimSource(150)
	sample, err := src.Read(context.Background())
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if sample.Battery.ChargePercent != 100 || sample.Battery.Plugged || !sample.Connected {
		t.Fatalf("first sample = %+v, want 100%% unplugged connected", sample)
	}
}
