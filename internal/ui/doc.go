// Package ui hosts the clock face in a terminal using Bubble Tea.
//
// # Architecture Overview
//
// The Model owns one watchface.Watchface and the host services it subscribes
// to. Every platform event reaches the face through Update, so the face's
// handlers always run on the Bubble Tea goroutine:
//
//   - minuteMsg: fired by tea.Every on each wall-clock minute boundary and
//     fanned out to OnMinuteTick subscribers
//   - deviceMsg: one device.Event read from the watcher channel and fanned
//     out to battery or connectivity subscribers
//   - tea.KeyMsg: the 12h/24h toggle, help and log overlays, quit
//
// # Rendering
//
// screen implements render.Sink. It records what each layer shows and redraws
// a layer's cells only after the committer marked it dirty; View composes the
// cached blocks. Bitmaps are drawn with half-block characters, two pixel rows
// per terminal row, in the palette's ink and paper. Inverted compositing
// swaps which pixels are inked, so sprites read light on dark at night.
//
// The footer, help and log overlays use a chrome Theme derived from the
// face's live theme.
//
// # Key Bindings
//
//   - t: Toggle 12h/24h display (saved to prefs)
//   - L: Log overlay (/ filters, esc closes)
//   - h or ?: Help
//   - q or Ctrl+C: Quit
package ui
