// Package logtail reads the tail of the spriteclock log file for the in-app
// log overlay.
//
// Read keeps a ring of the last maxLines lines so large logs are scanned
// once without being held in memory. A missing file yields no lines and no
// error, since the log is only created after the first message.
//
// Classify sorts a line into a Severity so the overlay can color poll
// failures and asset errors apart from routine messages. Lines are expected
// in the standard library log format with the spriteclock prefix:
//
//	spriteclock 2026/10/18 07:01:00 device poll failed (2 in a row): read battery capacity: ...
package logtail
