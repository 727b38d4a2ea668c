// Package config loads Pulse's dashboard settings.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pulse/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists, zero or missing fields keep their defaults
//
// # TOML Format
//
//	page_size = 5
//	activity_interval_seconds = 7
//	activity_capacity = 12
//	activity_visible = 6
//	counter_steps = 50
//	counter_duration_ms = 1300
//	log_path = "~/.local/state/pulse/pulse.log"
//	seed_path = ""
//	prefs_path = ""
//	panels = ["overview", "contacts", "tasks", "pipeline", "activity"]
//
// An explicit empty panels list disables every pane. Paths accept ~ and
// are made absolute.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML parse failures and
// settings rejected by Validate. A missing file is not an error.
package config
