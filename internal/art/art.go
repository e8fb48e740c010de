// Package art provides the bitmaps behind every asset ID the clock face uses.
package art

import (
	"fmt"
	"hash/fnv"

	"github.com/five82/spriteclock/internal/asset"
	"github.com/five82/spriteclock/internal/sprite"
	"github.com/five82/spriteclock/internal/status"
)

// Sprite bitmap size in pixels.
const (
	SpriteWidth  = 16
	SpriteHeight = 12
)

var glyphs = map[asset.ID]asset.Bitmap{
	status.IconPhoneOK: asset.ParseBitmap(
		"#####     ",
		"#   #    #",
		"#   #   # ",
		"# # #  #  ",
		"#   # #   ",
		"#####     ",
	),
	status.IconPhoneX: asset.ParseBitmap(
		"#####     ",
		"#   # #  #",
		"#   #  ## ",
		"# # #  ## ",
		"#   # #  #",
		"#####     ",
	),
	status.IconBattOK: asset.ParseBitmap(
		"##########  ",
		"# ###### ###",
		"# ###### ###",
		"# ###### ###",
		"##########  ",
		"     ###    ",
	),
	status.IconBattCharging: asset.ParseBitmap(
		"##########  ",
		"#    ##  ## ",
		"#  ####### #",
		"#  ##    ## ",
		"##########  ",
		"     ###    ",
	),
	status.IconBattFull: asset.ParseBitmap(
		"##########  ",
		"# ###### ## ",
		"# ###### ## ",
		"# ###### ## ",
		"##########  ",
	),
	status.IconBattMed: asset.ParseBitmap(
		"##########  ",
		"# ####   ## ",
		"# ####   ## ",
		"# ####   ## ",
		"##########  ",
	),
	status.IconBattLow: asset.ParseBitmap(
		"##########  ",
		"# ##     ## ",
		"# ##     ## ",
		"# ##     ## ",
		"##########  ",
	),
	status.IconBattCritical: asset.ParseBitmap(
		"##########  ",
		"#    #   ## ",
		"#    #   ## ",
		"#        ## ",
		"#    #   ## ",
		"##########  ",
	),
}

var sprites = func() map[asset.ID]bool {
	set := make(map[asset.ID]bool, sprite.Size)
	for _, id := range sprite.Catalog() {
		set[id] = true
	}
	return set
}()

// Load returns the bitmap for id. It satisfies asset.Loader.
func Load(id asset.ID) (asset.Bitmap, error) {
	if b, ok := glyphs[id]; ok {
		return b, nil
	}
	if sprites[id] {
		return Identicon(string(id), SpriteWidth, SpriteHeight), nil
	}
	return asset.Bitmap{}, fmt.Errorf("unknown asset %q", id)
}

// Identicon builds a horizontally mirrored bitmap from the bits of an FNV-128a
// hash of seed. The same seed always produces the same bitmap.
func Identicon(seed string, width, height int) asset.Bitmap {
	h := fnv.New128a()
	_, _ = h.Write([]byte(seed))
	sum := h.Sum(nil)

	half := (width + 1) / 2
	rows := make([]string, height)
	bit := 0
	for y := 0; y < height; y++ {
		row := make([]byte, width)
		for x := 0; x < half; x++ {
			px := byte(' ')
			if sum[(bit/8)%len(sum)]&(1<<(bit%8)) != 0 {
				px = asset.Ink
			}
			bit++
			row[x] = px
			row[width-1-x] = px
		}
		rows[y] = string(row)
	}
	return asset.ParseBitmap(rows...)
}
