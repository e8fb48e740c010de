// Package app is the composition root for spriteclock.
//
// Run wires the pieces together in this order:
//
//  1. Load config (~/.config/spriteclock/config.toml), apply flag overrides
//  2. Redirect the standard logger to the log file with tea.LogToFile
//  3. Load prefs for the 12h/24h preference
//  4. Build the device source (sysfs or sim) and a device.Watcher over a
//     shared state.Store
//  5. Prime the store, then start the watcher goroutine
//  6. Pick the first sprite from the seed and run the ui until exit
//
// A failed initial device read is logged, not fatal: the watcher keeps
// retrying with backoff and the footer shows the device error.
package app
