package ui

import (
	"strings"
	"testing"

	"github.com/five82/spriteclock/internal/art"
	"github.com/five82/spriteclock/internal/asset"
	"github.com/five82/spriteclock/internal/render"
	"github.com/five82/spriteclock/internal/status"
	"github.com/five82/spriteclock/internal/theme"
)

func TestHalfBlocks(t *testing.T) {
	b := asset.ParseBitmap(
		"#  #",
		"# # ",
		"##",
	)

	tests := []struct {
		name     string
		inverted bool
		scale    int
		want     []string
	}{
		{"normal", false, 1, []string{"█ ▄▀", "▀▀  "}},
		{"inverted", true, 1, []string{" █▀▄", "▄▄██"}},
		{"scaled", false, 2, []string{"██  ▄▄▀▀", "▀▀▀▀    "}},
		{"zero scale", false, 0, []string{"█ ▄▀", "▀▀  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := halfBlocks(b, tt.inverted, tt.scale)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("halfBlocks = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreen_FlushRedrawsOnlyDirtyLayers(t *testing.T) {
	s := newScreen(theme.DefaultPalette)

	s.SetText(render.LayerTime, "07:00")
	s.MarkDirty(render.LayerTime)
	if n := s.flush(); n != 1 {
		t.Fatalf("flush = %d, want 1", n)
	}
	if !strings.Contains(s.cache[render.LayerTime], "0 7 : 0 0") {
		t.Fatalf("time cache = %q, want spaced 07:00", s.cache[render.LayerTime])
	}
	if n := s.flush(); n != 0 {
		t.Fatalf("second flush = %d, want 0", n)
	}
	if s.redraws[render.LayerTime] != 1 {
		t.Fatalf("time redraws = %d, want 1", s.redraws[render.LayerTime])
	}
}

func TestScreen_WithCommitter(t *testing.T) {
	s := newScreen(theme.DefaultPalette)
	ledger := asset.NewLedger(art.Load)
	c := render.NewCommitter(s, ledger)

	c.Theme(theme.DefaultPalette.Day())
	c.Bitmap(render.LayerBattery, status.IconBattMed)
	if n := s.flush(); n != len(render.Layers) {
		t.Fatalf("flush after theme = %d, want %d", n, len(render.Layers))
	}

	c.Bitmap(render.LayerBattery, status.IconBattMed)
	if n := s.flush(); n != 0 {
		t.Fatalf("flush after repeated bitmap = %d, want 0", n)
	}

	c.Bitmap(render.LayerBattery, status.IconBattLow)
	if n := s.flush(); n != 1 {
		t.Fatalf("flush after new bitmap = %d, want 1", n)
	}
	if s.redraws[render.LayerBattery] != 2 {
		t.Fatalf("battery redraws = %d, want 2", s.redraws[render.LayerBattery])
	}
	if s.cache[render.LayerBattery] == "" {
		t.Fatalf("battery cache is empty")
	}

	c.Close()
	if live := ledger.Live(); len(live) != 0 {
		t.Fatalf("live assets after Close = %v, want none", live)
	}
}

func TestScreen_NightInvertsBitmaps(t *testing.T) {
	s := newScreen(theme.DefaultPalette)
	ledger := asset.NewLedger(art.Load)
	c := render.NewCommitter(s, ledger)

	c.Bitmap(render.LayerBluetooth, status.IconPhoneOK)
	c.Theme(theme.DefaultPalette.Day())
	s.flush()
	day := s.cache[render.LayerBluetooth]

	c.Theme(theme.DefaultPalette.Night())
	s.flush()
	night := s.cache[render.LayerBluetooth]

	if day == night {
		t.Fatalf("bluetooth glyph unchanged after switching to night")
	}
	fg, bg := s.windowColors()
	if fg != "#ffffff" || bg != "#000000" {
		t.Fatalf("window colors = %s on %s, want #ffffff on #000000", fg, bg)
	}
	c.Close()
}

func TestSpaced(t *testing.T) {
	if got := spaced("07:01"); got != "0 7 : 0 1" {
		t.Fatalf("spaced = %q, want %q", got, "0 7 : 0 1")
	}
	if got := spaced(""); got != "" {
		t.Fatalf("spaced(\"\") = %q, want empty", got)
	}
}
