package render_test

import (
	"reflect"
	"testing"

	"github.com/five82/spriteclock/internal/art"
	"github.com/five82/spriteclock/internal/asset"
	"github.com/five82/spriteclock/internal/render"
	"github.com/five82/spriteclock/internal/render/rendertest"
	"github.com/five82/spriteclock/internal/status"
	"github.com/five82/spriteclock/internal/theme"
)

func newCommitter() (*render.Committer, *rendertest.Sink, *asset.Ledger) {
	sink := rendertest.NewSink()
	ledger := asset.NewLedger(art.Load)
	return render.NewCommitter(sink, ledger), sink, ledger
}

func TestText_SkipsUnchanged(t *testing.T) {
	c, sink, _ := newCommitter()

	if !c.Text(render.LayerTime, "07:00") {
		t.Fatalf("first Text should report a change")
	}
	if sink.Layers[render.LayerTime].Text != "07:00" {
		t.Fatalf("layer text = %q, want 07:00", sink.Layers[render.LayerTime].Text)
	}
	sink.Reset()

	if c.Text(render.LayerTime, "07:00") {
		t.Fatalf("same Text should not report a change")
	}
	if len(sink.Calls) != 0 {
		t.Fatalf("unchanged Text made calls: %v", sink.Calls)
	}

	c.Text(render.LayerTime, "07:01")
	want := []string{`text time "07:01"`, "dirty time"}
	if !reflect.DeepEqual(sink.Calls, want) {
		t.Fatalf("calls = %v, want %v", sink.Calls, want)
	}
}

func TestBitmap_ReleasesBeforeInstalling(t *testing.T) {
	c, sink, ledger := newCommitter()

	c.Bitmap(render.LayerBattery, status.IconBattFull)
	first := sink.Layers[render.LayerBattery].Bitmap
	sink.Reset()

	if !c.Bitmap(render.LayerBattery, status.IconBattMed) {
		t.Fatalf("new bitmap should report a change")
	}
	want := []string{
		"bitmap battery ",
		"bitmap battery batt_med",
		"dirty battery",
	}
	if !reflect.DeepEqual(sink.Calls, want) {
		t.Fatalf("calls = %v, want %v", sink.Calls, want)
	}
	if got := ledger.Live(); !reflect.DeepEqual(got, []asset.ID{status.IconBattMed}) {
		t.Fatalf("live handles = %v, want only batt_med", got)
	}

	// The replaced handle is no longer usable.
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic reading released handle")
		}
	}()
	_ = first.Bitmap()
}

func TestBitmap_SameAssetIsNoop(t *testing.T) {
	c, sink, ledger := newCommitter()

	c.Bitmap(render.LayerBluetooth, status.IconPhoneOK)
	sink.Reset()

	if c.Bitmap(render.LayerBluetooth, status.IconPhoneOK) {
		t.Fatalf("same bitmap should not report a change")
	}
	if len(sink.Calls) != 0 {
		t.Fatalf("unchanged Bitmap made calls: %v", sink.Calls)
	}
	if loads, releases := ledger.Counts(); loads != 1 || releases != 0 {
		t.Fatalf("Counts() = %d, %d, want 1, 0", loads, releases)
	}
}

func TestBitmap_TouchesOnlyItsLayer(t *testing.T) {
	c, sink, _ := newCommitter()
	c.Bitmap(render.LayerSprite, "kby_fire")

	for id, n := range sink.Dirty {
		if id != render.LayerSprite {
			t.Fatalf("layer %s marked dirty %d times", id, n)
		}
	}
	if sink.Dirty[render.LayerSprite] != 1 {
		t.Fatalf("sprite dirty count = %d, want 1", sink.Dirty[render.LayerSprite])
	}
}

func TestTheme_AppliesOnceAndSwaps(t *testing.T) {
	c, sink, _ := newCommitter()
	p := theme.Palette{Ink: "#000000", Paper: "#ffffff"}

	if !c.Theme(p.Day()) {
		t.Fatalf("first Theme should report a change")
	}
	if l := sink.Layers[render.LayerTime]; l.Foreground != "#000000" || l.Background != "#ffffff" {
		t.Fatalf("time colors = %s/%s, want #000000/#ffffff", l.Foreground, l.Background)
	}
	if l := sink.Layers[render.LayerWindow]; l.Background != "#ffffff" {
		t.Fatalf("window background = %s, want #ffffff", l.Background)
	}
	sink.Reset()

	if c.Theme(p.Day()) {
		t.Fatalf("same Theme should not report a change")
	}
	if len(sink.Calls) != 0 {
		t.Fatalf("unchanged Theme made calls: %v", sink.Calls)
	}

	c.Theme(p.Night())
	if l := sink.Layers[render.LayerDate]; l.Foreground != "#ffffff" || l.Background != "#000000" {
		t.Fatalf("date colors = %s/%s, want #ffffff/#000000", l.Foreground, l.Background)
	}
	for _, id := range []render.LayerID{render.LayerBluetooth, render.LayerBattery, render.LayerSprite} {
		if sink.Layers[id].Compositing != theme.Inverted {
			t.Fatalf("layer %s compositing = %s, want inverted", id, sink.Layers[id].Compositing)
		}
	}
	for _, id := range render.Layers {
		if sink.Dirty[id] != 1 {
			t.Fatalf("layer %s dirty count = %d, want 1", id, sink.Dirty[id])
		}
	}
}

func TestClose_ReleasesEverything(t *testing.T) {
	c, sink, ledger := newCommitter()
	c.Bitmap(render.LayerBluetooth, status.IconPhoneX)
	c.Bitmap(render.LayerBattery, status.IconBattLow)
	c.Bitmap(render.LayerSprite, "kby_ufo")
	c.Bitmap(render.LayerSprite, "kby_wheel")

	c.Close()
	if got := ledger.Live(); len(got) != 0 {
		t.Fatalf("live handles after Close = %v, want none", got)
	}
	if loads, releases := ledger.Counts(); loads != releases {
		t.Fatalf("loads = %d, releases = %d, want equal", loads, releases)
	}
	if id := sink.BitmapID(render.LayerSprite); id != "" {
		t.Fatalf("sprite layer still shows %q after Close", id)
	}
	if _, ok := c.Current(render.LayerSprite); ok {
		t.Fatalf("Current(sprite) should be empty after Close")
	}

	// Closing twice must not double release.
	c.Close()
}

func TestLayerIDString(t *testing.T) {
	if render.LayerSprite.String() != "sprite" {
		t.Fatalf("String() = %q, want sprite", render.LayerSprite.String())
	}
	if got := render.LayerID(42).String(); got != "LayerID(42)" {
		t.Fatalf("String() = %q, want LayerID(42)", got)
	}
	if !render.IsBitmapLayer(render.LayerBattery) || render.IsBitmapLayer(render.LayerTime) {
		t.Fatalf("IsBitmapLayer misclassified layers")
	}
}
