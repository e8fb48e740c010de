// Package config loads the spriteclock TOML configuration.
//
// # Discovery
//
// Load resolves the path as follows:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/spriteclock/config.toml
//  3. If the file doesn't exist, return Default()
//
// Fields left empty in the file keep their default values.
//
// # TOML Format
//
//	location = "Europe/Berlin"
//	log_path = "~/.local/state/spriteclock/spriteclock.log"
//	seed = 0
//
//	[theme]
//	day_start = 6
//	night_start = 18
//	ink = "#1b1b1b"
//	paper = "#f4f1e8"
//
//	[device]
//	source = "sysfs"
//	battery_dir = "/sys/class/power_supply/BAT0"
//	bluetooth_dir = "/sys/class/bluetooth"
//	poll_interval = "5s"
//
// A seed of zero picks the first sprite at random. Any other value makes the
// starting sprite reproducible.
//
// # Validation
//
// Load rejects hours outside 0 <= day_start < night_start <= 24, colors not in
// #rrggbb form, unknown device sources, unknown time zones and non-positive
// poll intervals. A missing file is not an error.
package config
