package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/spriteclock/internal/config"
	"github.com/five82/spriteclock/internal/device"
	"github.com/five82/spriteclock/internal/prefs"
	"github.com/five82/spriteclock/internal/sprite"
	"github.com/five82/spriteclock/internal/state"
	"github.com/five82/spriteclock/internal/ui"
)

// simStartPercent is the charge the simulated battery starts with.
const simStartPercent = 80

// Options configure the spriteclock application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/spriteclock/prefs.toml
	Sim        bool   // force the simulated device source
	Seed       uint64 // non-zero overrides the config seed
}

// Run boots the clock until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Sim {
		cfg.Source = config.SourceSim
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}

	logFile, err := setupLogging(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	store := &state.Store{}
	watcher := device.NewWatcher(store, newSource(cfg), cfg.PollInterval)

	// Read once before the face starts so its first peek sees real data.
	if err := watcher.Prime(ctx); err != nil {
		log.Printf("initial device read failed: %v", err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	watcher.Start(watchCtx)

	start := spriteStart(cfg.Seed)
	log.Printf("spriteclock starting: source=%s sprite=%d zone=%s", cfg.Source, start, cfg.Location)

	return ui.Run(ui.Options{
		Context:     ctx,
		Store:       store,
		Events:      watcher.Events(),
		Config:      cfg,
		Prefs:       userPrefs,
		PrefsPath:   opts.PrefsPath,
		SpriteStart: start,
	})
}

// setupLogging sends the standard logger to path so log lines never land on
// the alt screen.
func setupLogging(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return tea.LogToFile(path, "spriteclock")
}

func newSource(cfg config.Config) device.Source {
	if cfg.Source == config.SourceSim {
		return device.NewSimSource(simStartPercent)
	}
	return device.SysfsSource{
		BatteryDir:   cfg.BatteryDir,
		BluetoothDir: cfg.BluetoothDir,
	}
}

// spriteStart picks the first sprite. Seed zero draws from the global source;
// any other seed always yields the same index.
func spriteStart(seed uint64) int {
	if seed == 0 {
		return sprite.RandomStart(nil, sprite.Size)
	}
	return sprite.RandomStart(rand.New(rand.NewPCG(seed, seed)), sprite.Size)
}
