package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/spriteclock/internal/theme"
)

// Device sources.
const (
	SourceSysfs = "sysfs"
	SourceSim   = "sim"
)

// Config holds everything spriteclock reads from its config file.
type Config struct {
	Location *time.Location
	LogPath  string
	Seed     uint64

	DayStart   int
	NightStart int
	Palette    theme.Palette

	Source       string
	BatteryDir   string
	BluetoothDir string
	PollInterval time.Duration
}

const (
	defaultConfigPath   = "~/.config/spriteclock/config.toml"
	defaultLogPath      = "~/.local/state/spriteclock/spriteclock.log"
	defaultBatteryDir   = "/sys/class/power_supply/BAT0"
	defaultBluetoothDir = "/sys/class/bluetooth"
	defaultPollInterval = 5 * time.Second
	defaultInk          = "#1b1b1b"
	defaultPaper        = "#f4f1e8"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type rawConfig struct {
	Location string `toml:"location"`
	LogPath  string `toml:"log_path"`
	Seed     uint64 `toml:"seed"`
	Theme    struct {
		DayStart   *int   `toml:"day_start"`
		NightStart *int   `toml:"night_start"`
		Ink        string `toml:"ink"`
		Paper      string `toml:"paper"`
	} `toml:"theme"`
	Device struct {
		Source       string `toml:"source"`
		BatteryDir   string `toml:"battery_dir"`
		BluetoothDir string `toml:"bluetooth_dir"`
		PollInterval string `toml:"poll_interval"`
	} `toml:"device"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Location:     time.Local,
		LogPath:      mustExpand(defaultLogPath),
		DayStart:     theme.DayStart,
		NightStart:   theme.NightStart,
		Palette:      theme.Palette{Ink: defaultInk, Paper: defaultPaper},
		Source:       SourceSysfs,
		BatteryDir:   defaultBatteryDir,
		BluetoothDir: defaultBluetoothDir,
		PollInterval: defaultPollInterval,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := apply(&cfg, raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func apply(cfg *Config, raw rawConfig) error {
	if loc := strings.TrimSpace(raw.Location); loc != "" {
		zone, err := time.LoadLocation(loc)
		if err != nil {
			return fmt.Errorf("location: %w", err)
		}
		cfg.Location = zone
	}
	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		expanded, err := expandPath(logPath)
		if err != nil {
			return fmt.Errorf("log_path: %w", err)
		}
		cfg.LogPath = expanded
	}
	cfg.Seed = raw.Seed

	if raw.Theme.DayStart != nil {
		cfg.DayStart = *raw.Theme.DayStart
	}
	if raw.Theme.NightStart != nil {
		cfg.NightStart = *raw.Theme.NightStart
	}
	if cfg.DayStart < 0 || cfg.DayStart >= cfg.NightStart || cfg.NightStart > 24 {
		return fmt.Errorf("theme hours: need 0 <= day_start < night_start <= 24, got %d and %d", cfg.DayStart, cfg.NightStart)
	}
	for _, c := range []struct {
		name  string
		value string
		dst   *theme.Color
	}{
		{"ink", raw.Theme.Ink, &cfg.Palette.Ink},
		{"paper", raw.Theme.Paper, &cfg.Palette.Paper},
	} {
		v := strings.TrimSpace(c.value)
		if v == "" {
			continue
		}
		if !hexColor.MatchString(v) {
			return fmt.Errorf("theme %s: %q is not a #rrggbb color", c.name, v)
		}
		*c.dst = theme.Color(strings.ToLower(v))
	}

	if src := strings.ToLower(strings.TrimSpace(raw.Device.Source)); src != "" {
		if src != SourceSysfs && src != SourceSim {
			return fmt.Errorf("device source: %q, want %q or %q", src, SourceSysfs, SourceSim)
		}
		cfg.Source = src
	}
	if dir := strings.TrimSpace(raw.Device.BatteryDir); dir != "" {
		cfg.BatteryDir = mustExpand(dir)
	}
	if dir := strings.TrimSpace(raw.Device.BluetoothDir); dir != "" {
		cfg.BluetoothDir = mustExpand(dir)
	}
	if interval := strings.TrimSpace(raw.Device.PollInterval); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("device poll_interval: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("device poll_interval: must be positive, got %s", d)
		}
		cfg.PollInterval = d
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
